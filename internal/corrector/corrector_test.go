package corrector

import (
	"strings"
	"testing"

	"github.com/keertigurusiddanavar76-ops/skywrite/internal/types"
)

func TestCorrect_RuleOrdering(t *testing.T) {
	c := NewDefault(nil)

	// Subject-verb agreement and contraction repair compose in rule order.
	got := c.Correct("He are happy and their going home", types.ToneOriginal, true)

	want := "He is happy and they're going home"
	if got.CorrectedText != want {
		t.Errorf("CorrectedText = %q, want %q", got.CorrectedText, want)
	}

	if len(got.Improvements) != 2 {
		t.Fatalf("Improvements = %d, want 2: %+v", len(got.Improvements), got.Improvements)
	}
	if got.Improvements[0].Original != "He are" || got.Improvements[0].Fixed != "He is" {
		t.Errorf("first improvement = %+v, want He are -> He is", got.Improvements[0])
	}
	if got.Improvements[1].Original != "their going" || got.Improvements[1].Fixed != "they're going" {
		t.Errorf("second improvement = %+v, want their going -> they're going", got.Improvements[1])
	}
}

func TestCorrect_SpellingScenario(t *testing.T) {
	c := NewDefault(nil)

	got := c.Correct("I recieve seperate occured events", types.ToneOriginal, true)

	want := "I receive separate occurred events"
	if got.CorrectedText != want {
		t.Errorf("CorrectedText = %q, want %q", got.CorrectedText, want)
	}
	if len(got.Improvements) != 3 {
		t.Fatalf("Improvements = %d, want 3: %+v", len(got.Improvements), got.Improvements)
	}
	for _, imp := range got.Improvements {
		if !strings.HasPrefix(imp.Reason, "Spelling:") {
			t.Errorf("improvement %+v has non-spelling reason", imp)
		}
	}
}

func TestCorrect_Deduplication(t *testing.T) {
	c := NewDefault(nil)

	got := c.Correct("i am i am", types.ToneOriginal, true)

	if got.CorrectedText != "I am I am" {
		t.Errorf("CorrectedText = %q, want %q", got.CorrectedText, "I am I am")
	}
	if len(got.Improvements) != 1 {
		t.Fatalf("Improvements = %d, want 1 (deduplicated): %+v", len(got.Improvements), got.Improvements)
	}
	if got.Improvements[0].Original != "i" || got.Improvements[0].Fixed != "I" {
		t.Errorf("improvement = %+v, want i -> I", got.Improvements[0])
	}
}

func TestCorrect_Deterministic(t *testing.T) {
	c := NewDefault(nil)
	input := "i definately should of went accross the street  and he have two dogs"

	first := c.Correct(input, types.ToneCasual, true)
	for i := 0; i < 5; i++ {
		again := c.Correct(input, types.ToneCasual, true)
		if again.CorrectedText != first.CorrectedText {
			t.Fatalf("run %d: CorrectedText = %q, want %q", i, again.CorrectedText, first.CorrectedText)
		}
		if len(again.Improvements) != len(first.Improvements) {
			t.Fatalf("run %d: %d improvements, want %d", i, len(again.Improvements), len(first.Improvements))
		}
		for j := range again.Improvements {
			if again.Improvements[j] != first.Improvements[j] {
				t.Fatalf("run %d: improvement %d = %+v, want %+v", i, j, again.Improvements[j], first.Improvements[j])
			}
		}
	}
}

func TestCorrect_CleanTextYieldsNoImprovements(t *testing.T) {
	c := NewDefault(nil)

	for _, input := range []string{
		"I am happy",
		"He is happy and they're going home",
		"I receive separate occurred events",
	} {
		got := c.Correct(input, types.ToneOriginal, true)
		if got.CorrectedText != input {
			t.Errorf("Correct(%q) changed text to %q", input, got.CorrectedText)
		}
		if len(got.Improvements) != 0 {
			t.Errorf("Correct(%q) reported improvements on clean text: %+v", input, got.Improvements)
		}
	}
}

func TestCorrect_IdempotentOnOwnOutput(t *testing.T) {
	c := NewDefault(nil)

	first := c.Correct("i recieve seperate  things and he are sure", types.ToneOriginal, true)
	second := c.Correct(first.CorrectedText, types.ToneOriginal, true)

	if second.CorrectedText != first.CorrectedText {
		t.Errorf("second pass changed text: %q -> %q", first.CorrectedText, second.CorrectedText)
	}
	if len(second.Improvements) != 0 {
		t.Errorf("second pass reported improvements: %+v", second.Improvements)
	}
}

func TestCorrect_ImprovementsCapped(t *testing.T) {
	c := NewDefault(nil)

	// 12 distinct originals across spelling and capitalization rules.
	input := "i recieve. we recieve, occured twice, seperate rooms, neccessary steps, " +
		"definately so, accross town, wether or not, would of, could of, should of, he are"
	got := c.Correct(input, types.ToneOriginal, true)

	if len(got.Improvements) > types.MaxImprovements {
		t.Errorf("Improvements = %d, want <= %d", len(got.Improvements), types.MaxImprovements)
	}
	if len(got.Improvements) != types.MaxImprovements {
		t.Errorf("Improvements = %d, want exactly %d for this input", len(got.Improvements), types.MaxImprovements)
	}
}

func TestCorrect_NoExplanations(t *testing.T) {
	c := NewDefault(nil)

	got := c.Correct("i definately should of known", types.ToneOriginal, false)

	if got.CorrectedText != "I definitely should have known" {
		t.Errorf("CorrectedText = %q", got.CorrectedText)
	}
	if len(got.Improvements) != 0 {
		t.Errorf("Improvements = %+v, want none when explanations are off", got.Improvements)
	}
	if got.Improvements == nil {
		t.Error("Improvements is nil, want empty slice for JSON encoding")
	}
}

func TestCorrect_WhitespaceHandling(t *testing.T) {
	c := NewDefault(nil)

	got := c.Correct("  too  many   spaces  ", types.ToneOriginal, true)
	if got.CorrectedText != "too many spaces" {
		t.Errorf("CorrectedText = %q, want %q", got.CorrectedText, "too many spaces")
	}
}

func TestCorrect_ToneIgnoredLocally(t *testing.T) {
	c := NewDefault(nil)
	input := "she have a seperate plan"

	base := c.Correct(input, types.ToneOriginal, true)
	for _, tone := range []types.Tone{types.ToneProfessional, types.ToneCasual, types.ToneAcademic, types.Tone("bogus")} {
		got := c.Correct(input, tone, true)
		if got.CorrectedText != base.CorrectedText {
			t.Errorf("tone %q changed output: %q vs %q", tone, got.CorrectedText, base.CorrectedText)
		}
	}
}

func TestNew_SkipsMalformedRules(t *testing.T) {
	rules := []Rule{
		{`\brecieve\b`, "receive", "first"},
		{`(unclosed`, "x", "broken"},
		{`\bwether\b`, "whether", "last"},
	}
	c := New(rules, nil)

	got := c.Correct("wether they recieve it", types.ToneOriginal, true)
	if got.CorrectedText != "whether they receive it" {
		t.Errorf("CorrectedText = %q; malformed rule should be skipped, not abort", got.CorrectedText)
	}
	if len(got.Improvements) != 2 {
		t.Errorf("Improvements = %d, want 2", len(got.Improvements))
	}
}

func TestCorrect_CascadingRules(t *testing.T) {
	c := NewDefault(nil)

	// The capitalization rule rewrites "i" first; the agreement rule then
	// matches against the already-capitalized text.
	got := c.Correct("i is tired", types.ToneOriginal, true)
	if got.CorrectedText != "I are tired" {
		t.Errorf("CorrectedText = %q, want %q (rules cascade in declaration order)", got.CorrectedText, "I are tired")
	}
	if len(got.Improvements) != 2 {
		t.Fatalf("Improvements = %d, want 2: %+v", len(got.Improvements), got.Improvements)
	}
	if got.Improvements[1].Original != "I is" {
		t.Errorf("agreement rule saw %q, want %q (current text, not original)", got.Improvements[1].Original, "I is")
	}
}
