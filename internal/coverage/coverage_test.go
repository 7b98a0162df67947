package coverage

import (
	"math"
	"reflect"
	"testing"

	"github.com/reviewgym/reviewgym/internal/finding"
	"github.com/reviewgym/reviewgym/internal/history"
	"github.com/reviewgym/reviewgym/internal/scoring"
)

// roundWith builds a sealed round whose scorecard carries the given
// per-category recalls. Lifetime tallies are synthesized as 1 planted
// finding per category so weight ordering stays predictable.
func roundWith(perCategory map[string]float64, weights map[string]float64) history.Round {
	card := &scoring.Scorecard{PerCategoryRecall: perCategory}
	for cat, recall := range perCategory {
		f := finding.Finding{
			ID:             "gt-" + cat,
			Category:       cat,
			Severity:       finding.SeverityMedium,
			Location:       cat + ".go:1",
			InterestWeight: weights[cat],
		}
		if recall > 0 {
			card.TruePositives = append(card.TruePositives, scoring.MatchedPair{Submitted: f, Truth: f})
		} else {
			card.FalseNegatives = append(card.FalseNegatives, f)
		}
	}
	return history.Round{Difficulty: 2, Scorecard: card}
}

func TestWeakCategories_BelowThresholdOverWindow(t *testing.T) {
	h := history.New()
	// injection appears 3 times with recalls 0.0, 0.5, 0.0 -> mean 0.1667.
	h.Append(roundWith(map[string]float64{"injection": 0.0}, nil))
	h.Append(roundWith(map[string]float64{"injection": 0.5}, nil))
	h.Append(roundWith(map[string]float64{"injection": 0.0}, nil))

	weak := New(DefaultConfig()).WeakCategories(h)
	if !reflect.DeepEqual(weak, []string{"injection"}) {
		t.Errorf("WeakCategories = %v, want [injection]", weak)
	}
}

func TestWeakCategories_InsufficientDataIsNotWeak(t *testing.T) {
	h := history.New()
	// One appearance with zero recall, then two rounds without it.
	h.Append(roundWith(map[string]float64{"injection": 0.0}, nil))
	h.Append(roundWith(map[string]float64{"logic": 1.0}, nil))
	h.Append(roundWith(map[string]float64{"logic": 1.0}, nil))

	weak := New(DefaultConfig()).WeakCategories(h)
	if len(weak) != 0 {
		t.Errorf("WeakCategories = %v, want empty (only 1 appearance)", weak)
	}
}

func TestWeakCategories_WindowIsOverAppearancesNotRounds(t *testing.T) {
	h := history.New()
	// crypto-defaults appears in rounds 0, 2 and 4; the gaps don't matter.
	h.Append(roundWith(map[string]float64{"crypto-defaults": 0.0}, nil))
	h.Append(roundWith(map[string]float64{"logic": 1.0}, nil))
	h.Append(roundWith(map[string]float64{"crypto-defaults": 0.0}, nil))
	h.Append(roundWith(map[string]float64{"logic": 1.0}, nil))
	h.Append(roundWith(map[string]float64{"crypto-defaults": 0.0}, nil))

	weak := New(DefaultConfig()).WeakCategories(h)
	if !reflect.DeepEqual(weak, []string{"crypto-defaults"}) {
		t.Errorf("WeakCategories = %v, want [crypto-defaults]", weak)
	}
}

func TestWeakCategories_MeanUsesMostRecentWindow(t *testing.T) {
	h := history.New()
	// Early disasters, then three clean appearances. Only the recent
	// window counts, so the category is strong, not weak.
	h.Append(roundWith(map[string]float64{"injection": 0.0}, nil))
	h.Append(roundWith(map[string]float64{"injection": 0.0}, nil))
	h.Append(roundWith(map[string]float64{"injection": 1.0}, nil))
	h.Append(roundWith(map[string]float64{"injection": 1.0}, nil))
	h.Append(roundWith(map[string]float64{"injection": 1.0}, nil))

	tracker := New(DefaultConfig())
	if weak := tracker.WeakCategories(h); len(weak) != 0 {
		t.Errorf("WeakCategories = %v, want empty", weak)
	}
	strong := tracker.StrongCategories(h)
	if !reflect.DeepEqual(strong, []string{"injection"}) {
		t.Errorf("StrongCategories = %v, want [injection]", strong)
	}
}

func TestStrongCategories_RequiresWindowToo(t *testing.T) {
	h := history.New()
	h.Append(roundWith(map[string]float64{"logic": 1.0}, nil))
	h.Append(roundWith(map[string]float64{"logic": 1.0}, nil))

	strong := New(DefaultConfig()).StrongCategories(h)
	if len(strong) != 0 {
		t.Errorf("StrongCategories = %v, want empty (2 of 3 appearances)", strong)
	}
}

func TestSnapshot_OrderedByWeightThenName(t *testing.T) {
	weights := map[string]float64{"injection": 5.0, "access-control": 5.0, "logic": 1.0}
	h := history.New()
	for i := 0; i < 3; i++ {
		h.Append(roundWith(map[string]float64{
			"injection":      1.0,
			"access-control": 1.0,
			"logic":          0.0,
		}, weights))
	}

	stats := New(DefaultConfig()).Snapshot(h)
	if len(stats) != 3 {
		t.Fatalf("Snapshot length = %d, want 3", len(stats))
	}
	// Equal weights tie-break by name; lighter category comes last.
	gotOrder := []string{stats[0].Category, stats[1].Category, stats[2].Category}
	wantOrder := []string{"access-control", "injection", "logic"}
	if !reflect.DeepEqual(gotOrder, wantOrder) {
		t.Errorf("order = %v, want %v", gotOrder, wantOrder)
	}
}

func TestSnapshot_StatusAndTallies(t *testing.T) {
	h := history.New()
	h.Append(roundWith(map[string]float64{"injection": 1.0}, nil))
	h.Append(roundWith(map[string]float64{"injection": 0.0}, nil))
	h.Append(roundWith(map[string]float64{"injection": 1.0}, nil))
	h.Append(roundWith(map[string]float64{"fresh": 0.0}, nil))

	stats := New(DefaultConfig()).Snapshot(h)
	byName := make(map[string]CategoryStat)
	for _, s := range stats {
		byName[s.Category] = s
	}

	inj := byName["injection"]
	if inj.Status != StatusSteady {
		t.Errorf("injection status = %q, want steady", inj.Status)
	}
	// mean of last 3 appearances: (1.0 + 0.0 + 1.0) / 3
	if math.Abs(inj.MeanRecall-2.0/3.0) > 0.0001 {
		t.Errorf("injection mean = %f, want 0.6667", inj.MeanRecall)
	}
	if inj.Found != 2 || inj.Total != 3 {
		t.Errorf("injection found/total = %d/%d, want 2/3", inj.Found, inj.Total)
	}

	fresh := byName["fresh"]
	if fresh.Status != StatusUntested {
		t.Errorf("fresh status = %q, want untested", fresh.Status)
	}
	if fresh.MeanRecall != 0 {
		t.Errorf("fresh mean = %f, want 0 (not judged)", fresh.MeanRecall)
	}
}
