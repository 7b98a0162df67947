package challenge

import (
	"strings"
	"testing"

	"github.com/reviewgym/reviewgym/internal/finding"
)

func wellFormedChallenge() *Challenge {
	return &Challenge{
		ID:         "ch-1",
		Title:      "Token refresh handler",
		Language:   "go",
		PromptText: "package auth\n\nfunc Refresh() {}\n",
		Difficulty: 3,
		GroundTruth: []finding.Finding{
			{ID: "gt-1", Category: "injection", Severity: finding.SeverityHigh, Location: "auth.go:3", Description: "d", InterestWeight: 3},
			{ID: "gt-2", Category: "concurrency", Severity: finding.SeverityMedium, Location: "auth.go:7", Description: "d", InterestWeight: 2},
		},
		Traps: []finding.Finding{
			{ID: "trap-1", Category: "logic", Severity: finding.SeverityLow, Location: "auth.go:5", Description: "d", InterestWeight: 1},
		},
	}
}

func TestStructuralValidator_Accepts(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(wellFormedChallenge(), SelectionRequest{}); err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}
}

func TestStructuralValidator_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(ch *Challenge)
		wantMsg string
	}{
		{
			name:    "empty title",
			mutate:  func(ch *Challenge) { ch.Title = "" },
			wantMsg: "title",
		},
		{
			name:    "empty code",
			mutate:  func(ch *Challenge) { ch.PromptText = "" },
			wantMsg: "code listing is empty",
		},
		{
			name:    "oversized code",
			mutate:  func(ch *Challenge) { ch.PromptText = strings.Repeat("x", maxPromptChars+1) },
			wantMsg: "exceeds",
		},
		{
			name:    "difficulty out of range",
			mutate:  func(ch *Challenge) { ch.Difficulty = 6 },
			wantMsg: "difficulty",
		},
		{
			name:    "no findings",
			mutate:  func(ch *Challenge) { ch.GroundTruth = nil },
			wantMsg: "plants no findings",
		},
		{
			name:    "finding without ID",
			mutate:  func(ch *Challenge) { ch.GroundTruth[1].ID = "" },
			wantMsg: "finding 1",
		},
		{
			name:    "finding with bad severity",
			mutate:  func(ch *Challenge) { ch.GroundTruth[0].Severity = "catastrophic" },
			wantMsg: "finding 0",
		},
		{
			name:    "unknown category",
			mutate:  func(ch *Challenge) { ch.GroundTruth[0].Category = "vibes" },
			wantMsg: "unknown category",
		},
		{
			name:    "trap without location",
			mutate:  func(ch *Challenge) { ch.Traps[0].Location = "" },
			wantMsg: "trap 0",
		},
		{
			name: "trap colliding with finding location",
			mutate: func(ch *Challenge) {
				// Collision is checked on the normalized form.
				ch.Traps[0].Location = "  AUTH.go:3 "
			},
			wantMsg: "reuses finding location",
		},
	}

	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := wellFormedChallenge()
			tt.mutate(ch)
			verr := v.Validate(ch, SelectionRequest{})
			if verr == nil {
				t.Fatal("expected rejection")
			}
			if verr.Validator != "structural" {
				t.Errorf("expected structural validator, got %q", verr.Validator)
			}
			if !verr.Retryable {
				t.Error("expected retryable rejection")
			}
			if !strings.Contains(verr.Message, tt.wantMsg) {
				t.Errorf("expected message containing %q, got %q", tt.wantMsg, verr.Message)
			}
		})
	}
}

func TestConstraintValidator_Accepts(t *testing.T) {
	v := &ConstraintValidator{}
	req := SelectionRequest{
		Difficulty:         3,
		RequiredCategories: []string{"injection"},
		ExcludedCategories: []string{"crypto-defaults"},
	}
	if err := v.Validate(wellFormedChallenge(), req); err != nil {
		t.Fatalf("unexpected rejection: %v", err)
	}
}

func TestConstraintValidator_DifficultyMismatch(t *testing.T) {
	v := &ConstraintValidator{}
	verr := v.Validate(wellFormedChallenge(), SelectionRequest{Difficulty: 5})
	if verr == nil {
		t.Fatal("expected rejection")
	}
	if !strings.Contains(verr.Message, "difficulty") {
		t.Errorf("unexpected message: %q", verr.Message)
	}
}

func TestConstraintValidator_ZeroDifficultySkipsCheck(t *testing.T) {
	v := &ConstraintValidator{}
	if verr := v.Validate(wellFormedChallenge(), SelectionRequest{}); verr != nil {
		t.Fatalf("unexpected rejection: %v", verr)
	}
}

func TestConstraintValidator_MissingRequired(t *testing.T) {
	v := &ConstraintValidator{}
	req := SelectionRequest{Difficulty: 3, RequiredCategories: []string{"resource-leaks"}}
	verr := v.Validate(wellFormedChallenge(), req)
	if verr == nil {
		t.Fatal("expected rejection")
	}
	if !strings.Contains(verr.Message, "resource-leaks") {
		t.Errorf("unexpected message: %q", verr.Message)
	}
}

func TestConstraintValidator_PlantedExcluded(t *testing.T) {
	v := &ConstraintValidator{}
	req := SelectionRequest{Difficulty: 3, ExcludedCategories: []string{"concurrency"}}
	verr := v.Validate(wellFormedChallenge(), req)
	if verr == nil {
		t.Fatal("expected rejection")
	}
	if !strings.Contains(verr.Message, "concurrency") {
		t.Errorf("unexpected message: %q", verr.Message)
	}
}
