package challenge

import (
	"fmt"

	"github.com/reviewgym/reviewgym/internal/catalog"
	"github.com/reviewgym/reviewgym/internal/finding"
)

// maxPromptChars caps the code listing size so one challenge cannot
// flood the terminal or the event store.
const maxPromptChars = 8000

// StructuralValidator checks that a challenge is internally
// well-formed: text present and bounded, findings valid, categories
// known, no location shared between a finding and a trap.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(ch *Challenge, _ SelectionRequest) *ValidationError {
	if ch.Title == "" {
		return v.fail("title is empty")
	}
	if ch.PromptText == "" {
		return v.fail("code listing is empty")
	}
	if len(ch.PromptText) > maxPromptChars {
		return v.fail(fmt.Sprintf("code listing exceeds %d characters", maxPromptChars))
	}
	if ch.Difficulty < 1 || ch.Difficulty > 5 {
		return v.fail("difficulty must be between 1 and 5")
	}
	if len(ch.GroundTruth) == 0 {
		return v.fail("challenge plants no findings")
	}

	if i, err := finding.ValidateAll(ch.GroundTruth, true); err != nil {
		return v.fail(fmt.Sprintf("finding %d: %v", i, err))
	}
	if i, err := finding.ValidateAll(ch.Traps, true); err != nil {
		return v.fail(fmt.Sprintf("trap %d: %v", i, err))
	}

	for _, f := range ch.GroundTruth {
		if _, err := catalog.Get(f.Category); err != nil {
			return v.fail(fmt.Sprintf("finding %q uses unknown category %q", f.ID, f.Category))
		}
	}

	// A trap sharing a location with a planted finding would make the
	// default matcher treat a correct claim as a trap hit.
	planted := make(map[string]bool, len(ch.GroundTruth))
	for _, f := range ch.GroundTruth {
		planted[finding.NormalizeLocation(f.Location)] = true
	}
	for _, trap := range ch.Traps {
		if planted[finding.NormalizeLocation(trap.Location)] {
			return v.fail(fmt.Sprintf("trap %q reuses finding location %q", trap.ID, trap.Location))
		}
	}

	return nil
}

func (v *StructuralValidator) fail(msg string) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: msg, Retryable: true}
}

// ConstraintValidator checks the challenge against the selection
// request: required categories planted, excluded categories absent,
// difficulty as requested.
type ConstraintValidator struct{}

func (v *ConstraintValidator) Name() string { return "constraints" }

func (v *ConstraintValidator) Validate(ch *Challenge, req SelectionRequest) *ValidationError {
	if req.Difficulty != 0 && ch.Difficulty != req.Difficulty {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("difficulty %d, requested %d", ch.Difficulty, req.Difficulty),
			Retryable: true,
		}
	}

	present := make(map[string]bool)
	for _, f := range ch.GroundTruth {
		present[f.Category] = true
	}

	for _, required := range req.RequiredCategories {
		if !present[required] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("required category %q not planted", required),
				Retryable: true,
			}
		}
	}
	for _, excluded := range req.ExcludedCategories {
		if present[excluded] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("excluded category %q was planted", excluded),
				Retryable: true,
			}
		}
	}

	return nil
}
