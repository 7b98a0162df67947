package history

import (
	"math"
	"reflect"
	"testing"

	"github.com/reviewgym/reviewgym/internal/finding"
	"github.com/reviewgym/reviewgym/internal/scoring"
)

func sealedRound(index, difficulty int, tags ...string) Round {
	return Round{
		Index:          index,
		Difficulty:     difficulty,
		CategoryTags:   tags,
		Scorecard:      &scoring.Scorecard{Precision: 1, Recall: 1, F1: 1},
		ReflectionText: "I trusted the helper's name instead of reading its body.",
	}
}

func TestLastN(t *testing.T) {
	h := New()
	for i := 0; i < 5; i++ {
		h.Append(sealedRound(i, 1, "injection"))
	}

	last2 := h.LastN(2)
	if len(last2) != 2 {
		t.Fatalf("LastN(2) length = %d, want 2", len(last2))
	}
	if last2[0].Index != 3 || last2[1].Index != 4 {
		t.Errorf("LastN(2) indices = %d,%d, want 3,4 (oldest first)", last2[0].Index, last2[1].Index)
	}

	if got := h.LastN(10); len(got) != 5 {
		t.Errorf("LastN(10) length = %d, want 5", len(got))
	}
	if got := h.LastN(0); got != nil {
		t.Errorf("LastN(0) = %v, want nil", got)
	}
}

func TestAllReturnsCopy(t *testing.T) {
	h := New()
	h.Append(sealedRound(0, 2, "injection"))

	all := h.All()
	all[0].Index = 99

	if h.All()[0].Index != 0 {
		t.Error("mutating All() result leaked into the history")
	}
}

func TestAppendCopiesAndSortsTags(t *testing.T) {
	h := New()
	tags := []string{"injection", "access-control"}
	h.Append(sealedRound(0, 1, tags...))

	tags[0] = "mutated"
	got := h.All()[0].CategoryTags
	want := []string{"access-control", "injection"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CategoryTags = %v, want %v", got, want)
	}
}

func TestSeed(t *testing.T) {
	prior := []Round{sealedRound(0, 1, "injection"), sealedRound(1, 2, "logic")}
	h := Seed(prior)
	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
	prior[0].Index = 42
	if h.All()[0].Index != 0 {
		t.Error("mutating the seed slice leaked into the history")
	}
}

func TestCategoryTotals(t *testing.T) {
	inj1 := finding.Finding{ID: "gt-1", Category: "injection", Severity: finding.SeverityHigh, Location: "a.go:1", InterestWeight: 2.0}
	inj2 := finding.Finding{ID: "gt-2", Category: "injection", Severity: finding.SeverityLow, Location: "a.go:9", InterestWeight: 1.0}
	ac := finding.Finding{ID: "gt-3", Category: "access-control", Severity: finding.SeverityCritical, Location: "b.go:7", InterestWeight: 3.0}

	h := New()
	h.Append(Round{
		Index:      0,
		Difficulty: 1,
		Scorecard: &scoring.Scorecard{
			TruePositives:  []scoring.MatchedPair{{Submitted: inj1, Truth: inj1}},
			FalseNegatives: []finding.Finding{inj2, ac},
		},
	})
	h.Append(Round{
		Index:      1,
		Difficulty: 1,
		Scorecard: &scoring.Scorecard{
			TruePositives:  []scoring.MatchedPair{{Submitted: ac, Truth: ac}},
			FalseNegatives: []finding.Finding{inj1},
		},
	})

	totals := h.CategoryTotals()

	// injection: round 1 planted 2 (found 1), round 2 planted 1 (found 0).
	inj := totals["injection"]
	if inj.Found != 1 || inj.Total != 3 {
		t.Errorf("injection found/total = %d/%d, want 1/3", inj.Found, inj.Total)
	}
	// weights: 2.0 + 1.0 from round 1, 2.0 again from round 2.
	if math.Abs(inj.Weight-5.0) > 0.0001 {
		t.Errorf("injection weight = %f, want 5.0", inj.Weight)
	}

	acTotal := totals["access-control"]
	if acTotal.Found != 1 || acTotal.Total != 2 {
		t.Errorf("access-control found/total = %d/%d, want 1/2", acTotal.Found, acTotal.Total)
	}
}
