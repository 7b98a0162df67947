package coach

import (
	"strings"
	"testing"

	"github.com/reviewgym/reviewgym/internal/finding"
	"github.com/reviewgym/reviewgym/internal/history"
	"github.com/reviewgym/reviewgym/internal/scoring"
)

func roundWith(card *scoring.Scorecard) *history.Round {
	return &history.Round{Index: 0, Difficulty: 2, Scorecard: card}
}

func pair() scoring.MatchedPair {
	f := finding.Finding{ID: "gt-1", Category: "injection", Severity: finding.SeverityHigh, Location: "a.go:1"}
	return scoring.MatchedPair{Submitted: f, Truth: f}
}

func miss(category string) finding.Finding {
	return finding.Finding{ID: "gt-9", Category: category, Severity: finding.SeverityMedium, Location: "a.go:9"}
}

func TestTrapAdviser_Fires(t *testing.T) {
	a := &TrapAdviser{}
	card := &scoring.Scorecard{
		TrapHits: []finding.Finding{{Category: "concurrency", Location: "a.go:7"}},
	}
	advice := a.Advise(&AdviceInput{Round: roundWith(card)})
	if advice == nil {
		t.Fatal("expected advice")
	}
	if advice.Focus != FocusPrecision {
		t.Errorf("got focus %q, want %q", advice.Focus, FocusPrecision)
	}
	if !strings.Contains(advice.Detail, "a.go:7") {
		t.Errorf("expected trap location in detail: %q", advice.Detail)
	}
}

func TestTrapAdviser_NoHits(t *testing.T) {
	a := &TrapAdviser{}
	if advice := a.Advise(&AdviceInput{Round: roundWith(&scoring.Scorecard{})}); advice != nil {
		t.Errorf("expected nil, got %+v", advice)
	}
}

func TestCategoryGapAdviser_Fires(t *testing.T) {
	a := &CategoryGapAdviser{}
	card := &scoring.Scorecard{
		FalseNegatives: []finding.Finding{miss("injection"), miss("injection"), miss("logic")},
	}
	advice := a.Advise(&AdviceInput{Round: roundWith(card)})
	if advice == nil {
		t.Fatal("expected advice")
	}
	if advice.Focus != FocusCategory {
		t.Errorf("got focus %q, want %q", advice.Focus, FocusCategory)
	}
	if !strings.Contains(advice.Headline, "Injection") {
		t.Errorf("expected category label in headline: %q", advice.Headline)
	}
}

func TestCategoryGapAdviser_BelowMinimum(t *testing.T) {
	a := &CategoryGapAdviser{}
	card := &scoring.Scorecard{
		FalseNegatives: []finding.Finding{miss("injection"), miss("logic")},
	}
	if advice := a.Advise(&AdviceInput{Round: roundWith(card)}); advice != nil {
		t.Errorf("expected nil for scattered misses, got %+v", advice)
	}
}

func TestRecallAdviser_Fires(t *testing.T) {
	a := &RecallAdviser{}
	card := &scoring.Scorecard{
		TruePositives:  []scoring.MatchedPair{pair()},
		FalseNegatives: []finding.Finding{miss("logic"), miss("injection"), miss("concurrency")},
		Recall:         0.25,
	}
	advice := a.Advise(&AdviceInput{Round: roundWith(card)})
	if advice == nil {
		t.Fatal("expected advice")
	}
	if !strings.Contains(advice.Detail, "1 of 4") {
		t.Errorf("expected found/total tally in detail: %q", advice.Detail)
	}
}

func TestRecallAdviser_AtThreshold(t *testing.T) {
	a := &RecallAdviser{}
	card := &scoring.Scorecard{
		FalseNegatives: []finding.Finding{miss("logic"), miss("injection")},
		Recall:         LowRecallThreshold,
	}
	if advice := a.Advise(&AdviceInput{Round: roundWith(card)}); advice != nil {
		t.Errorf("expected nil at threshold, got %+v", advice)
	}
}

func TestPrecisionAdviser_Fires(t *testing.T) {
	a := &PrecisionAdviser{}
	card := &scoring.Scorecard{
		TruePositives:  []scoring.MatchedPair{pair()},
		FalsePositives: []finding.Finding{miss("logic"), miss("logic"), miss("logic")},
		Precision:      0.25,
	}
	advice := a.Advise(&AdviceInput{Round: roundWith(card)})
	if advice == nil {
		t.Fatal("expected advice")
	}
	if advice.Focus != FocusPrecision {
		t.Errorf("got focus %q, want %q", advice.Focus, FocusPrecision)
	}
}

func TestPrecisionAdviser_SingleFalseAlarm(t *testing.T) {
	a := &PrecisionAdviser{}
	card := &scoring.Scorecard{
		FalsePositives: []finding.Finding{miss("logic")},
		Precision:      0.0,
	}
	if advice := a.Advise(&AdviceInput{Round: roundWith(card)}); advice != nil {
		t.Errorf("expected nil for one false alarm, got %+v", advice)
	}
}

func TestSeverityAdviser_Fires(t *testing.T) {
	a := &SeverityAdviser{}
	card := &scoring.Scorecard{
		TruePositives:    []scoring.MatchedPair{pair(), pair()},
		SeverityAccuracy: 0.0,
	}
	advice := a.Advise(&AdviceInput{Round: roundWith(card)})
	if advice == nil {
		t.Fatal("expected advice")
	}
	if advice.Focus != FocusSeverity {
		t.Errorf("got focus %q, want %q", advice.Focus, FocusSeverity)
	}
}

func TestSeverityAdviser_TooFewHits(t *testing.T) {
	a := &SeverityAdviser{}
	card := &scoring.Scorecard{
		TruePositives:    []scoring.MatchedPair{pair()},
		SeverityAccuracy: 0.0,
	}
	if advice := a.Advise(&AdviceInput{Round: roundWith(card)}); advice != nil {
		t.Errorf("expected nil for a single hit, got %+v", advice)
	}
}

func TestRunAdvisers_TrapPriority(t *testing.T) {
	// Both the trap rule and the category-gap rule match. Trap wins.
	card := &scoring.Scorecard{
		TrapHits:       []finding.Finding{{Category: "logic", Location: "a.go:3"}},
		FalseNegatives: []finding.Finding{miss("injection"), miss("injection")},
	}
	advice := RunAdvisers(DefaultAdvisers(), &AdviceInput{Round: roundWith(card)})
	if advice == nil {
		t.Fatal("expected advice")
	}
	if advice.AdviserName != "trap" {
		t.Errorf("got adviser %q, want trap", advice.AdviserName)
	}
}

func TestRunAdvisers_NoMatch(t *testing.T) {
	card := &scoring.Scorecard{
		TruePositives:    []scoring.MatchedPair{pair(), pair()},
		Precision:        1.0,
		Recall:           1.0,
		SeverityAccuracy: 1.0,
	}
	if advice := RunAdvisers(DefaultAdvisers(), &AdviceInput{Round: roundWith(card)}); advice != nil {
		t.Errorf("expected nil for a clean round, got %+v", advice)
	}
}

func TestRunAdvisers_NilScorecard(t *testing.T) {
	if advice := RunAdvisers(DefaultAdvisers(), &AdviceInput{Round: &history.Round{}}); advice != nil {
		t.Errorf("expected nil for missing scorecard, got %+v", advice)
	}
}

func TestDefaultAdvisers_Order(t *testing.T) {
	advisers := DefaultAdvisers()
	want := []string{"trap", "category-gap", "recall", "precision", "severity"}
	if len(advisers) != len(want) {
		t.Fatalf("got %d advisers, want %d", len(advisers), len(want))
	}
	for i, name := range want {
		if advisers[i].Name() != name {
			t.Errorf("adviser %d is %q, want %q", i, advisers[i].Name(), name)
		}
	}
}
