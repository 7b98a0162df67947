package challenge

import (
	"context"
	"sort"

	"github.com/reviewgym/reviewgym/internal/finding"
)

// SelectionRequest is what the session engine asks a provider for: a
// difficulty level plus category constraints derived from the learner's
// coverage record.
type SelectionRequest struct {
	// Difficulty is the calibrated level (1..5) for the next challenge.
	Difficulty int

	// RequiredCategories must each contribute at least one ground-truth
	// finding. Empty means no category is forced.
	RequiredCategories []string

	// ExcludedCategories should not appear in ground truth. Only set
	// when no category is required; a required category is never also
	// excluded.
	ExcludedCategories []string
}

// Challenge is one reviewable artifact plus its hidden answer key.
type Challenge struct {
	// ID identifies the challenge for event logging.
	ID string

	// Title is a short display name, e.g. "Token refresh handler".
	Title string

	// Language is the language of the code under review, e.g. "go".
	Language string

	// PromptText is the full artifact the learner reviews: code,
	// config, or a diff, presented verbatim.
	PromptText string

	// Difficulty is the level (1..5) the challenge was authored at.
	Difficulty int

	// GroundTruth is the authoritative set of planted findings. Hidden
	// from the learner until scoring.
	GroundTruth []finding.Finding

	// Traps are plausible-looking spots that are actually fine. Never
	// part of ground truth; flagging one costs precision like any other
	// false positive, but trap hits are reported separately.
	Traps []finding.Finding
}

// Categories returns the distinct ground-truth categories, sorted.
func (c *Challenge) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, f := range c.GroundTruth {
		if !seen[f.Category] {
			seen[f.Category] = true
			cats = append(cats, f.Category)
		}
	}
	sort.Strings(cats)
	return cats
}

// Provider produces challenges on demand.
type Provider interface {
	// Generate returns a challenge honoring the selection request.
	// All configured validators run before returning.
	Generate(ctx context.Context, req SelectionRequest) (*Challenge, error)
}
