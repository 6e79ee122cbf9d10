package classify

import (
	"strings"
	"testing"

	"github.com/covlens/covlens/internal/model"
)

func TestClassify_StrongReliableSignals(t *testing.T) {
	c := New()

	result := c.Classify("The CDC and WHO confirm peer-reviewed clinical trial results.")

	if result.Verdict != model.VerdictLikelyReliable {
		t.Errorf("Expected verdict %q, got %q", model.VerdictLikelyReliable, result.Verdict)
	}

	// cdc, who, peer-reviewed, clinical trial: 4 strong hits x3 = 12
	if result.StrongReliable < 12 {
		t.Errorf("Expected strong-reliable subtotal >= 12, got %d", result.StrongReliable)
	}

	// min(95, 75 + 3*12) caps at 95
	if result.Confidence != 95.0 {
		t.Errorf("Expected confidence 95.0, got %.1f", result.Confidence)
	}
}

func TestClassify_StrongMisinfoSignals(t *testing.T) {
	c := New()

	result := c.Classify("This is a plandemic using microchip and 5g to control population control.")

	if result.Verdict != model.VerdictLikelyMisinfo {
		t.Errorf("Expected verdict %q, got %q", model.VerdictLikelyMisinfo, result.Verdict)
	}

	if result.StrongMisinfo < 9 {
		t.Errorf("Expected strong-misinfo subtotal >= 9, got %d", result.StrongMisinfo)
	}

	if result.Confidence != 95.0 {
		t.Errorf("Expected confidence 95.0, got %.1f", result.Confidence)
	}
}

func TestClassify_EmptyInput(t *testing.T) {
	c := New()

	for _, input := range []string{"", "   ", "\n\t"} {
		result := c.Classify(input)

		if result.Verdict != model.VerdictUnknown {
			t.Errorf("Input %q: expected verdict %q, got %q", input, model.VerdictUnknown, result.Verdict)
		}
		if result.Confidence != 0 {
			t.Errorf("Input %q: expected confidence 0, got %.1f", input, result.Confidence)
		}
		if result.MisinfoIndicators != 0 || result.ReliableIndicators != 0 || result.WordCount != 0 {
			t.Errorf("Input %q: expected zero breakdown, got %+v", input, result)
		}
	}
}

func TestClassify_InsufficientInformation(t *testing.T) {
	c := New()

	result := c.Classify("Something happened yesterday maybe.")

	if result.Verdict != model.VerdictInsufficient {
		t.Errorf("Expected verdict %q, got %q", model.VerdictInsufficient, result.Verdict)
	}
	if result.Confidence != 40.0 {
		t.Errorf("Expected confidence 40.0, got %.1f", result.Confidence)
	}
}

func TestClassify_LongNeutralText(t *testing.T) {
	c := New()

	// 20+ neutral words, no keyword hits: word count alone carries it
	text := "The committee gathered on Tuesday afternoon to talk about the planning calendar and agreed to meet again next month after reviewing notes from earlier sessions together."

	result := c.Classify(text)

	if result.ReliableIndicators != 0 {
		t.Fatalf("Expected no reliable indicators in neutral text, got %d", result.ReliableIndicators)
	}
	if result.WordCount < 20 {
		t.Fatalf("Test text must be at least 20 words, got %d", result.WordCount)
	}
	if result.Verdict != model.VerdictLikelyReliable {
		t.Errorf("Expected verdict %q, got %q", model.VerdictLikelyReliable, result.Verdict)
	}
	if result.Confidence != 65.0 {
		t.Errorf("Expected confidence 65.0, got %.1f", result.Confidence)
	}
}

func TestClassify_PossiblyMisinformation(t *testing.T) {
	c := New()

	// Only moderate indicators: no strong subtotal can short-circuit
	result := c.Classify("These untested experimental shots are dangerous with terrible side effects, a big pharma cover up!!!")

	if result.StrongMisinfo != 0 {
		t.Fatalf("Expected no strong misinfo hits, got %d", result.StrongMisinfo)
	}
	if result.Verdict != model.VerdictPossibleMisinfo {
		t.Errorf("Expected verdict %q, got %q", model.VerdictPossibleMisinfo, result.Verdict)
	}
	if result.MisinfoIndicators < 5 {
		t.Errorf("Expected misinfo total >= 5, got %d", result.MisinfoIndicators)
	}
	if result.Confidence > 85.0 {
		t.Errorf("Expected confidence capped at 85, got %.1f", result.Confidence)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := New()
	text := "BREAKING!!! The CDC covers up dangerous vaccine side effects, wake up sheeple!"

	first := c.Classify(text)
	second := c.Classify(text)

	if first != second {
		t.Errorf("Expected identical results for identical input:\n  first:  %+v\n  second: %+v", first, second)
	}
}

func TestClassify_CaseInsensitiveMatching(t *testing.T) {
	c := New()

	upper := c.Classify("CDC says vaccination data supports the evidence.")
	lower := c.Classify("cdc says vaccination data supports the evidence.")

	if upper.StrongReliable != lower.StrongReliable {
		t.Errorf("Case should not affect strong counts: %d vs %d", upper.StrongReliable, lower.StrongReliable)
	}
	if upper.ReliableIndicators != lower.ReliableIndicators {
		t.Errorf("Case should not affect totals: %d vs %d", upper.ReliableIndicators, lower.ReliableIndicators)
	}

	// Caps-word detection DOES see the original casing
	if upper.CapsWords == lower.CapsWords {
		t.Errorf("Expected caps-word counts to differ (%d vs %d)", upper.CapsWords, lower.CapsWords)
	}
}

func TestClassify_PunctuationStripping(t *testing.T) {
	c := New()

	hyphenated := c.Classify("A peer-reviewed clinical trial was published.")
	if hyphenated.StrongReliable < 6 {
		t.Errorf("Hyphenated keywords should match stripped text, got strong subtotal %d", hyphenated.StrongReliable)
	}

	noisy := c.Classify("A p.e.e.r reviewed, 'clinical' trial was published.")
	// Stripping removes punctuation without inserting spaces, so
	// "'clinical' trial" still matches while "p.e.e.r reviewed" does not
	// become "peer-reviewed" ("peer reviewed" keeps its space).
	if noisy.StrongReliable < 3 {
		t.Errorf("Expected 'clinical trial' to survive punctuation, got strong subtotal %d", noisy.StrongReliable)
	}
}

func TestClassify_CapsAndPunctuationSignals(t *testing.T) {
	c := New()

	result := c.Classify("READ THIS NOW!!! They don't want you to know what is inside")

	if result.CapsWords != 3 {
		t.Errorf("Expected 3 caps words, got %d", result.CapsWords)
	}
	if result.ExcessivePunct != 1 {
		t.Errorf("Expected 1 punctuation run, got %d", result.ExcessivePunct)
	}
	if result.CapsPenalty() != 2 {
		t.Errorf("Expected caps penalty 2, got %d", result.CapsPenalty())
	}

	// total = strong(0) + moderate("they don't want" = 1) + punct(1) + penalty(2)
	if result.MisinfoIndicators != 4 {
		t.Errorf("Expected misinfo total 4, got %d", result.MisinfoIndicators)
	}
}

func TestClassify_ConfidenceBounds(t *testing.T) {
	c := New()

	inputs := []string{
		"",
		"ok",
		"The CDC and WHO confirm peer-reviewed clinical trial results.",
		"plandemic microchip 5g bill gates depopulation hoax sheeple",
		"Some perfectly ordinary sentence about nothing in particular at all.",
		strings.Repeat("word ", 50),
		"日本語のテキスト!!! with MIXED content and no indicators",
	}

	for _, input := range inputs {
		result := c.Classify(input)
		if result.Confidence < 0 || result.Confidence > 100 {
			t.Errorf("Input %q: confidence %.2f out of [0,100]", input, result.Confidence)
		}
		// Exactly one decimal place
		scaled := result.Confidence * 10
		if scaled != float64(int64(scaled)) {
			t.Errorf("Input %q: confidence %.4f not rounded to one decimal", input, result.Confidence)
		}
	}
}

func TestClassify_BreakdownRoundTrip(t *testing.T) {
	c := New()

	inputs := []string{
		"The CDC and WHO confirm peer-reviewed clinical trial results.",
		"WAKE UP SHEEPLE!!! The plandemic is a hoax they don't want exposed!!!",
		"A new study published in a journal reports vaccination data.",
		"Nothing to see here.",
	}

	for _, input := range inputs {
		r := c.Classify(input)

		moderateMisinfo := r.MisinfoIndicators - r.StrongMisinfo - r.ExcessivePunct - r.CapsPenalty()
		if moderateMisinfo < 0 {
			t.Errorf("Input %q: misinfo total %d not recomputable (moderate component %d)", input, r.MisinfoIndicators, moderateMisinfo)
		}

		moderateReliable := r.ReliableIndicators - r.StrongReliable
		if moderateReliable < 0 {
			t.Errorf("Input %q: reliable total %d below strong subtotal %d", input, r.ReliableIndicators, r.StrongReliable)
		}
	}
}

func TestClassify_NonASCIIInputDoesNotPanic(t *testing.T) {
	c := New()

	inputs := []string{
		"Впервые сообщается о вакцине",
		"疫苗的临床试验数据",
		"🦠🦠🦠 virus!!! 🦠🦠🦠",
		string([]byte{0xff, 0xfe, 0xfd}),
	}

	for _, input := range inputs {
		result := c.Classify(input)
		if result.Verdict == "" {
			t.Errorf("Input %q: expected a verdict, got empty", input)
		}
	}
}

func TestDecide_BranchOrdering(t *testing.T) {
	// A strong misinfo subtotal must win even when reliable totals are larger
	verdict, conf := decide(3, 30, 3, 30, 100)
	if verdict != model.VerdictLikelyMisinfo {
		t.Errorf("Strong misinfo should take precedence, got %q", verdict)
	}
	if conf != 85 {
		t.Errorf("Expected confidence 70+5*3=85, got %.1f", conf)
	}

	// Aggregate misinfo only fires when it beats the reliable total
	verdict, _ = decide(0, 0, 5, 5, 15)
	if verdict == model.VerdictPossibleMisinfo {
		t.Error("Tied totals should not classify as possibly-misinformation")
	}

	// Fallback: 10-19 words, no indicators
	verdict, conf = decide(0, 0, 0, 0, 12)
	if verdict != model.VerdictLikelyReliable || conf != 60 {
		t.Errorf("Expected fallback (Likely Reliable, 60), got (%q, %.1f)", verdict, conf)
	}
}
