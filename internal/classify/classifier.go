package classify

import (
	"math"
	"regexp"
	"strings"
	"unicode"

	"github.com/covlens/covlens/internal/model"
)

const (
	strongWeight = 3 // per occurrence of a strong indicator

	// Shouting penalty: added to the misinformation total when the
	// original text carries more than capsWordLimit all-caps words.
	capsWordLimit = 2
	capsPenalty   = 2
)

var (
	// Runs of three or more ! or ? on the ORIGINAL text
	punctRunRe = regexp.MustCompile(`[!?]{3,}`)

	// Whole-word tokens of three or more uppercase letters,
	// case-sensitive, also on the original text
	capsWordRe = regexp.MustCompile(`\b[A-Z]{3,}\b`)
)

// Classifier scores free text against the fixed keyword tables.
// It is stateless after construction and safe for concurrent use.
type Classifier struct {
	strongMisinfo    []string
	moderateMisinfo  []string
	strongReliable   []string
	moderateReliable []string
}

// New creates a classifier with the built-in lexicon
func New() *Classifier {
	return NewWithLexicon(DefaultLexicon())
}

// NewWithLexicon creates a classifier with a custom lexicon.
// Keywords are normalized the same way input text is, so an entry like
// "peer-reviewed" matches the stripped form "peerreviewed".
func NewWithLexicon(lex Lexicon) *Classifier {
	return &Classifier{
		strongMisinfo:    normalizeKeywords(lex.StrongMisinfo),
		moderateMisinfo:  normalizeKeywords(lex.ModerateMisinfo),
		strongReliable:   normalizeKeywords(lex.StrongReliable),
		moderateReliable: normalizeKeywords(lex.ModerateReliable),
	}
}

// Classify scores a text snippet. It is a pure function of its input
// and never fails: empty input yields the dedicated Unknown verdict
// instead of an error.
func (c *Classifier) Classify(text string) model.ScoreResult {
	if strings.TrimSpace(text) == "" {
		return model.ScoreResult{Verdict: model.VerdictUnknown, Confidence: 0}
	}

	// Keyword counting runs on a lowercased, punctuation-stripped
	// variant; the quality signals below run on the original text.
	norm := normalizeText(text)

	strongMisinfo := strongWeight * countOccurrences(norm, c.strongMisinfo)
	strongReliable := strongWeight * countOccurrences(norm, c.strongReliable)
	moderateMisinfo := countOccurrences(norm, c.moderateMisinfo)
	moderateReliable := countOccurrences(norm, c.moderateReliable)

	punctRuns := len(punctRunRe.FindAllString(text, -1))
	capsWords := len(capsWordRe.FindAllString(text, -1))
	wordCount := len(strings.Fields(text))

	shouting := 0
	if capsWords > capsWordLimit {
		shouting = capsPenalty
	}

	totalMisinfo := strongMisinfo + moderateMisinfo + punctRuns + shouting
	totalReliable := strongReliable + moderateReliable

	verdict, confidence := decide(strongMisinfo, strongReliable, totalMisinfo, totalReliable, wordCount)

	return model.ScoreResult{
		Verdict:            verdict,
		Confidence:         round1(confidence),
		StrongReliable:     strongReliable,
		StrongMisinfo:      strongMisinfo,
		ReliableIndicators: totalReliable,
		MisinfoIndicators:  totalMisinfo,
		ExcessivePunct:     punctRuns,
		CapsWords:          capsWords,
		WordCount:          wordCount,
	}
}

// decide maps the aggregate scores through the fixed thresholds.
// The branches are evaluated strictly in this order: strong signals
// override aggregate signals, so reordering would change the policy.
func decide(strongMisinfo, strongReliable, totalMisinfo, totalReliable, wordCount int) (model.Verdict, float64) {
	switch {
	case strongMisinfo >= 3:
		return model.VerdictLikelyMisinfo, math.Min(95, float64(70+5*strongMisinfo))
	case strongReliable >= 3:
		return model.VerdictLikelyReliable, math.Min(95, float64(75+3*strongReliable))
	case totalMisinfo > totalReliable && totalMisinfo >= 5:
		return model.VerdictPossibleMisinfo, math.Min(85, float64(60+3*(totalMisinfo-totalReliable)))
	case totalReliable > 0 || wordCount >= 20:
		return model.VerdictLikelyReliable, math.Min(90, float64(65+2*totalReliable))
	case wordCount < 10:
		return model.VerdictInsufficient, 40
	default:
		return model.VerdictLikelyReliable, 60
	}
}

// normalizeText lowercases the text and strips everything that is not
// ASCII alphanumeric or whitespace. Punctuation is removed, not
// replaced, so "peer-reviewed" collapses to "peerreviewed".
func normalizeText(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}

func normalizeKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if n := normalizeText(kw); n != "" {
			out = append(out, n)
		}
	}
	return out
}

// countOccurrences sums substring occurrences of every keyword.
// Counts are not deduplicated across keywords: "new england journal"
// and "journal" both count against the same span.
func countOccurrences(norm string, keywords []string) int {
	total := 0
	for _, kw := range keywords {
		total += strings.Count(norm, kw)
	}
	return total
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
