package calibration

import (
	"testing"

	"github.com/reviewgym/reviewgym/internal/history"
	"github.com/reviewgym/reviewgym/internal/scoring"
)

func roundAt(level int, f1, precision float64, perCategory map[string]float64) history.Round {
	return history.Round{
		Difficulty: level,
		Scorecard: &scoring.Scorecard{
			F1:                f1,
			Precision:         precision,
			Recall:            f1,
			PerCategoryRecall: perCategory,
		},
	}
}

// allAnchorsStrong marks every default anchor category as fully
// recalled, so gate checks pass unless a test overrides them.
func allAnchorsStrong() map[string]float64 {
	m := make(map[string]float64)
	for _, anchor := range DefaultAnchorCategories() {
		m[anchor] = 1.0
	}
	return m
}

func TestNext_AdvancesOnThreeStrongRounds(t *testing.T) {
	h := history.New()
	for i := 0; i < 3; i++ {
		h.Append(roundAt(2, 0.90, 0.80, nil))
	}

	got := New(DefaultConfig()).Next(h, 2)
	if got != 3 {
		t.Errorf("Next() = %d, want 3", got)
	}
}

func TestNext_RetreatsOnTwoWeakRounds(t *testing.T) {
	h := history.New()
	h.Append(roundAt(3, 0.10, 0.10, nil))
	h.Append(roundAt(3, 0.10, 0.10, nil))

	got := New(DefaultConfig()).Next(h, 3)
	if got != 2 {
		t.Errorf("Next() = %d, want 2", got)
	}
}

func TestNext_HoldsOnMixedRecord(t *testing.T) {
	h := history.New()
	h.Append(roundAt(2, 0.90, 0.80, nil))
	h.Append(roundAt(2, 0.20, 0.30, nil))
	h.Append(roundAt(2, 0.90, 0.80, nil))

	got := New(DefaultConfig()).Next(h, 2)
	if got != 2 {
		t.Errorf("Next() = %d, want 2 (hold)", got)
	}
}

func TestNext_SparseHistoryNeverErrorsAndHolds(t *testing.T) {
	cal := New(DefaultConfig())

	empty := history.New()
	if got := cal.Next(empty, 2); got != 2 {
		t.Errorf("Next(empty) = %d, want 2", got)
	}

	// Two strong rounds are one short of the advance window.
	h := history.New()
	h.Append(roundAt(2, 0.95, 0.90, nil))
	h.Append(roundAt(2, 0.95, 0.90, nil))
	if got := cal.Next(h, 2); got != 2 {
		t.Errorf("Next(two strong) = %d, want 2 (window not filled)", got)
	}

	// One weak round is one short of the retreat window.
	h2 := history.New()
	h2.Append(roundAt(2, 0.05, 0.10, nil))
	if got := cal.Next(h2, 2); got != 2 {
		t.Errorf("Next(one weak) = %d, want 2 (window not filled)", got)
	}
}

func TestNext_WindowFiltersByCurrentLevel(t *testing.T) {
	// Three strong level-2 rounds with a level-1 round wedged between
	// them. The window is over rounds at the current level, so the
	// interleaved round does not reset it.
	h := history.New()
	h.Append(roundAt(2, 0.90, 0.80, nil))
	h.Append(roundAt(2, 0.90, 0.80, nil))
	h.Append(roundAt(1, 0.10, 0.10, nil))
	h.Append(roundAt(2, 0.90, 0.80, nil))

	got := New(DefaultConfig()).Next(h, 2)
	if got != 3 {
		t.Errorf("Next() = %d, want 3", got)
	}
}

func TestNext_AdvancePriorityOverRetreat(t *testing.T) {
	// Two weak rounds followed by three strong ones. The advance rule
	// is evaluated first and wins.
	h := history.New()
	h.Append(roundAt(2, 0.10, 0.10, nil))
	h.Append(roundAt(2, 0.10, 0.10, nil))
	h.Append(roundAt(2, 0.90, 0.80, nil))
	h.Append(roundAt(2, 0.90, 0.80, nil))
	h.Append(roundAt(2, 0.90, 0.80, nil))

	got := New(DefaultConfig()).Next(h, 2)
	if got != 3 {
		t.Errorf("Next() = %d, want 3", got)
	}
}

func TestNext_AnchorGateHoldsAtLevelThree(t *testing.T) {
	// Aggregate score clears the advance gates, but one anchor category
	// never rises above 0.20 in the window.
	perCat := map[string]float64{
		"access-control":  1.0,
		"injection":       1.0,
		"crypto-defaults": 0.20,
	}
	h := history.New()
	for i := 0; i < 3; i++ {
		h.Append(roundAt(3, 0.80, 0.80, perCat))
	}

	got := New(DefaultConfig()).Next(h, 3)
	if got != 3 {
		t.Errorf("Next() = %d, want 3 (anchor gate holds)", got)
	}
}

func TestNext_AnchorGatePassesWhenEachClearsOnce(t *testing.T) {
	// Each anchor clears 0.50 in at least one round, not necessarily
	// the same round.
	h := history.New()
	h.Append(roundAt(3, 0.80, 0.80, map[string]float64{"access-control": 0.6, "injection": 0.1, "crypto-defaults": 0.1}))
	h.Append(roundAt(3, 0.80, 0.80, map[string]float64{"access-control": 0.1, "injection": 0.7, "crypto-defaults": 0.1}))
	h.Append(roundAt(3, 0.80, 0.80, map[string]float64{"access-control": 0.1, "injection": 0.1, "crypto-defaults": 0.5}))

	got := New(DefaultConfig()).Next(h, 3)
	if got != 4 {
		t.Errorf("Next() = %d, want 4", got)
	}
}

func TestNext_AnchorGateIgnoredBelowGateLevel(t *testing.T) {
	// At level 2 the anchors are irrelevant even when absent entirely.
	h := history.New()
	for i := 0; i < 3; i++ {
		h.Append(roundAt(2, 0.90, 0.80, map[string]float64{"logic": 1.0}))
	}

	got := New(DefaultConfig()).Next(h, 2)
	if got != 3 {
		t.Errorf("Next() = %d, want 3", got)
	}
}

func TestNext_AnchorGateAppliesAboveGateLevel(t *testing.T) {
	// Moving 4 -> 5 is still past the gate; anchors must have cleared.
	perCat := map[string]float64{"access-control": 1.0, "injection": 1.0}
	h := history.New()
	for i := 0; i < 3; i++ {
		h.Append(roundAt(4, 0.90, 0.80, perCat)) // crypto-defaults never planted
	}

	got := New(DefaultConfig()).Next(h, 4)
	if got != 4 {
		t.Errorf("Next() = %d, want 4 (anchor never observed)", got)
	}
}

func TestNext_ClampsAtBounds(t *testing.T) {
	cal := New(DefaultConfig())

	top := history.New()
	for i := 0; i < 3; i++ {
		top.Append(roundAt(5, 0.95, 0.95, allAnchorsStrong()))
	}
	if got := cal.Next(top, 5); got != 5 {
		t.Errorf("Next(at max) = %d, want 5", got)
	}

	bottom := history.New()
	bottom.Append(roundAt(1, 0.05, 0.05, nil))
	bottom.Append(roundAt(1, 0.05, 0.05, nil))
	if got := cal.Next(bottom, 1); got != 1 {
		t.Errorf("Next(at min) = %d, want 1", got)
	}
}

func TestNext_ZeroConfigUsesDefaults(t *testing.T) {
	h := history.New()
	for i := 0; i < 3; i++ {
		h.Append(roundAt(2, 0.90, 0.80, nil))
	}
	if got := New(Config{}).Next(h, 2); got != 3 {
		t.Errorf("Next() with zero config = %d, want 3", got)
	}
}

func TestNext_PrecisionGateBlocksAdvance(t *testing.T) {
	// High F1 alone is not enough; each round must also clear precision.
	h := history.New()
	h.Append(roundAt(2, 0.80, 0.80, nil))
	h.Append(roundAt(2, 0.80, 0.55, nil))
	h.Append(roundAt(2, 0.80, 0.80, nil))

	if got := New(DefaultConfig()).Next(h, 2); got != 2 {
		t.Errorf("Next() = %d, want 2 (precision gate)", got)
	}
}
