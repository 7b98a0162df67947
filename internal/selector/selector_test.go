package selector

import (
	"reflect"
	"testing"

	"github.com/reviewgym/reviewgym/internal/history"
)

var knownCategories = []string{
	"access-control", "crypto-defaults", "error-handling", "injection", "logic",
}

func taggedRound(index int, tags ...string) history.Round {
	return history.Round{Index: index, Difficulty: 2, CategoryTags: tags}
}

func TestSelect_WeakCategoriesAreRequired(t *testing.T) {
	s := New(knownCategories)
	h := history.New()

	req := s.Select(h, 3, []string{"injection", "logic"}, []string{"access-control"})

	if req.Difficulty != 3 {
		t.Errorf("Difficulty = %d, want 3", req.Difficulty)
	}
	if !reflect.DeepEqual(req.RequiredCategories, []string{"injection", "logic"}) {
		t.Errorf("RequiredCategories = %v, want weak set", req.RequiredCategories)
	}
	// Strong categories are never excluded while something is weak.
	if len(req.ExcludedCategories) != 0 {
		t.Errorf("ExcludedCategories = %v, want empty", req.ExcludedCategories)
	}
}

func TestSelect_RotationPickWhenNothingWeak(t *testing.T) {
	s := New(knownCategories)
	h := history.New()
	h.Append(taggedRound(0, "injection"))
	h.Append(taggedRound(1, "logic"))

	req := s.Select(h, 2, nil, nil)

	// Candidates not seen in the last 2 rounds, sorted:
	// access-control, crypto-defaults, error-handling. Two sealed
	// rounds, so index 2 % 3 = 2.
	want := []string{"error-handling"}
	if !reflect.DeepEqual(req.RequiredCategories, want) {
		t.Errorf("RequiredCategories = %v, want %v", req.RequiredCategories, want)
	}
}

func TestSelect_RotationAdvancesWithHistory(t *testing.T) {
	s := New([]string{"a", "b", "c", "d", "e"})

	h := history.New()
	h.Append(taggedRound(0, "d"))
	h.Append(taggedRound(1, "e"))
	// candidates = [a b c], 2 % 3 = 2 -> c
	if got := s.Select(h, 1, nil, nil).RequiredCategories; !reflect.DeepEqual(got, []string{"c"}) {
		t.Errorf("pick = %v, want [c]", got)
	}

	h.Append(taggedRound(2, "c"))
	// last 2 rounds tag e and c; candidates = [a b d], 3 % 3 = 0 -> a
	if got := s.Select(h, 1, nil, nil).RequiredCategories; !reflect.DeepEqual(got, []string{"a"}) {
		t.Errorf("pick = %v, want [a]", got)
	}
}

func TestSelect_StrongExcludedOnlyWhenNothingWeak(t *testing.T) {
	s := New(knownCategories)
	h := history.New()
	h.Append(taggedRound(0, "injection"))
	h.Append(taggedRound(1, "injection"))

	req := s.Select(h, 2, nil, []string{"injection", "logic"})

	for _, excluded := range req.ExcludedCategories {
		for _, required := range req.RequiredCategories {
			if excluded == required {
				t.Errorf("category %q is both required and excluded", excluded)
			}
		}
	}
	if len(req.ExcludedCategories) == 0 {
		t.Error("ExcludedCategories empty, want strong categories excluded")
	}
}

func TestSelect_RequiredPickTrumpsExclusion(t *testing.T) {
	// Every category except "logic" was seen recently, and "logic" is
	// strong. The rotation must still pick it, and it must not appear
	// in the exclusions.
	s := New([]string{"a", "b", "logic"})
	h := history.New()
	h.Append(taggedRound(0, "a"))
	h.Append(taggedRound(1, "b"))

	req := s.Select(h, 2, nil, []string{"logic"})

	if !reflect.DeepEqual(req.RequiredCategories, []string{"logic"}) {
		t.Fatalf("RequiredCategories = %v, want [logic]", req.RequiredCategories)
	}
	for _, excluded := range req.ExcludedCategories {
		if excluded == "logic" {
			t.Error("rotation pick also excluded")
		}
	}
}

func TestSelect_NoCandidatesLeavesRequestOpen(t *testing.T) {
	s := New([]string{"a", "b"})
	h := history.New()
	h.Append(taggedRound(0, "a"))
	h.Append(taggedRound(1, "b"))

	req := s.Select(h, 2, nil, nil)
	if len(req.RequiredCategories) != 0 {
		t.Errorf("RequiredCategories = %v, want empty when everything was just seen", req.RequiredCategories)
	}
}

func TestSelect_EmptyHistoryPicksFirstKnown(t *testing.T) {
	s := New(knownCategories)
	req := s.Select(history.New(), 1, nil, nil)

	// No rounds yet: every category is a candidate, 0 % 5 = 0.
	want := []string{"access-control"}
	if !reflect.DeepEqual(req.RequiredCategories, want) {
		t.Errorf("RequiredCategories = %v, want %v", req.RequiredCategories, want)
	}
}
