package history

import "github.com/reviewgym/reviewgym/internal/scoring"

// Round is one sealed pass through the challenge cycle. Rounds are
// created when a submission is scored and sealed when the learner's
// reflection is accepted; after sealing they are never mutated.
type Round struct {
	// Index is the zero-based position of the round within its session.
	Index int `json:"index"`
	// Difficulty is the level (1..5) the round's challenge was issued at.
	Difficulty int `json:"difficulty"`
	// CategoryTags are the distinct ground-truth categories present in
	// the round's challenge, sorted.
	CategoryTags []string `json:"category_tags"`
	// Scorecard is the immutable scoring result.
	Scorecard *scoring.Scorecard `json:"scorecard"`
	// ReflectionText is the learner's accepted reflection.
	ReflectionText string `json:"reflection_text"`
}
