package challenge

import (
	"context"
	"testing"
)

func TestBuiltin_BankIsWellFormed(t *testing.T) {
	structural := &StructuralValidator{}
	levels := make(map[int]int)
	for i := range bank {
		entry := &bank[i]
		if verr := structural.Validate(entry, SelectionRequest{}); verr != nil {
			t.Errorf("bank entry %q: %v", entry.ID, verr)
		}
		levels[entry.Difficulty]++
	}
	for level := 1; level <= 5; level++ {
		if levels[level] == 0 {
			t.Errorf("no bank entry at difficulty %d", level)
		}
	}
}

func TestBuiltin_MatchesRequestedDifficulty(t *testing.T) {
	p := NewBuiltin()
	for level := 1; level <= 5; level++ {
		ch, err := p.Generate(context.Background(), SelectionRequest{Difficulty: level})
		if err != nil {
			t.Fatalf("level %d: %v", level, err)
		}
		if ch.Difficulty != level {
			t.Errorf("requested level %d, got %d (%s)", level, ch.Difficulty, ch.ID)
		}
	}
}

func TestBuiltin_PrefersRequiredCategories(t *testing.T) {
	p := NewBuiltin()
	ch, err := p.Generate(context.Background(), SelectionRequest{
		Difficulty:         3,
		RequiredCategories: []string{"dependency-risk"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, f := range ch.GroundTruth {
		if f.Category == "dependency-risk" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a dependency-risk finding, got %q", ch.ID)
	}
}

func TestBuiltin_AvoidsExcludedCategories(t *testing.T) {
	p := NewBuiltin()
	ch, err := p.Generate(context.Background(), SelectionRequest{
		Difficulty:         1,
		ExcludedCategories: []string{"injection"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, f := range ch.GroundTruth {
		if f.Category == "injection" {
			t.Errorf("entry %q plants excluded category", ch.ID)
		}
	}
}

func TestBuiltin_RotatesOnRepeat(t *testing.T) {
	p := NewBuiltin()
	req := SelectionRequest{Difficulty: 1}

	first, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("second: %v", err)
	}
	third, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("third: %v", err)
	}

	if first.ID == second.ID {
		t.Errorf("expected rotation, got %q twice", first.ID)
	}
	if third.ID != first.ID {
		t.Errorf("expected cycle back to %q, got %q", first.ID, third.ID)
	}
}

func TestBuiltin_ReturnsCopies(t *testing.T) {
	p := NewBuiltin()
	req := SelectionRequest{Difficulty: 4}

	ch, err := p.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	originalCategory := ch.GroundTruth[0].Category
	ch.GroundTruth[0].Category = "mutated"

	// The same entry comes back once its sibling has been served.
	for i := 0; i < 2; i++ {
		again, err := p.Generate(context.Background(), req)
		if err != nil {
			t.Fatalf("repeat generate: %v", err)
		}
		if again.ID != ch.ID {
			continue
		}
		if again.GroundTruth[0].Category != originalCategory {
			t.Errorf("bank entry mutated through a served copy")
		}
		return
	}
	t.Fatalf("entry %q never served again", ch.ID)
}
