package classify

// Lexicon holds the fixed keyword tables the heuristic scores against.
// Strong indicators weigh x3 per occurrence, moderate indicators x1.
// Keeping the tables in one named structure keeps the decision policy
// auditable and testable away from any presentation code.
type Lexicon struct {
	StrongMisinfo    []string
	ModerateMisinfo  []string
	StrongReliable   []string
	ModerateReliable []string
}

// DefaultLexicon returns the built-in COVID-19 keyword tables.
// Matching is case-insensitive on punctuation-stripped text, so entries
// may carry hyphens and apostrophes in their display form.
func DefaultLexicon() Lexicon {
	return Lexicon{
		StrongMisinfo: []string{
			"plandemic",
			"scamdemic",
			"hoax",
			"microchip",
			"5g",
			"bill gates",
			"new world order",
			"depopulation",
			"sheeple",
			"mind control",
			"population control",
			"bioweapon",
			"fake virus",
		},
		ModerateMisinfo: []string{
			"dangerous",
			"untested",
			"experimental",
			"side effects",
			"big pharma",
			"cover up",
			"mainstream media",
			"do your own research",
			"they don't want",
			"natural immunity",
			"wake up",
		},
		StrongReliable: []string{
			"cdc",
			"who",
			"world health organization",
			"peer-reviewed",
			"clinical trial",
			"fda",
			"nih",
			"johns hopkins",
			"randomized controlled",
			"lancet",
		},
		ModerateReliable: []string{
			"vaccine",
			"study",
			"research",
			"evidence",
			"data",
			"scientists",
			"doctors",
			"health officials",
			"published",
			"journal",
			"experts",
			"immunization",
		},
	}
}
