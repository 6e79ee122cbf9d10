package model

// Verdict is one of the five labels the heuristic can emit
type Verdict string

const (
	VerdictUnknown         Verdict = "Unknown"
	VerdictLikelyMisinfo   Verdict = "Likely Misinformation"
	VerdictLikelyReliable  Verdict = "Likely Reliable"
	VerdictPossibleMisinfo Verdict = "Possibly Misinformation"
	VerdictInsufficient    Verdict = "Insufficient Information"
)

// ScoreResult is the complete output of one classification.
// Confidence is a percentage reported to one decimal place.
//
// The counters expose the full arithmetic so the aggregate scores are
// recomputable by the caller:
//
//	MisinfoIndicators  = StrongMisinfo + moderate hits + ExcessivePunct + caps penalty
//	ReliableIndicators = StrongReliable + moderate hits
//
// where StrongMisinfo/StrongReliable already carry the x3 weighting and
// the caps penalty is 2 when CapsWords > 2, otherwise 0.
type ScoreResult struct {
	Verdict    Verdict `json:"verdict"`
	Confidence float64 `json:"confidence"`

	StrongReliable     int `json:"strong_reliable"`
	StrongMisinfo      int `json:"strong_misinfo"`
	ReliableIndicators int `json:"reliable_indicators"`
	MisinfoIndicators  int `json:"misinformation_indicators"`

	ExcessivePunct int `json:"excessive_punctuation"`
	CapsWords      int `json:"caps_words"`
	WordCount      int `json:"word_count"`
}

// Misleading reports whether the verdict leans toward misinformation
func (r ScoreResult) Misleading() bool {
	return r.Verdict == VerdictLikelyMisinfo || r.Verdict == VerdictPossibleMisinfo
}

// CapsPenalty returns the penalty term that was folded into
// MisinfoIndicators for shouting-style text
func (r ScoreResult) CapsPenalty() int {
	if r.CapsWords > 2 {
		return 2
	}
	return 0
}
