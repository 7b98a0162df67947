package coach

import "github.com/reviewgym/reviewgym/internal/history"

// FocusArea names what a round's results say the learner should work on.
type FocusArea string

const (
	FocusPrecision FocusArea = "precision"    // too many false alarms
	FocusRecall    FocusArea = "recall"       // most planted defects missed
	FocusCategory  FocusArea = "category-gap" // misses concentrated in one category
	FocusSeverity  FocusArea = "severity"     // right spots, wrong impact calls
	FocusGeneral   FocusArea = "general"
)

// AdviceInput holds the context for rule-based advice.
type AdviceInput struct {
	Round          *history.Round
	WeakCategories []string // from the coverage tracker, may be empty
}

// Advice is one coaching note attached to a sealed round.
type Advice struct {
	Focus       FocusArea
	Headline    string // one line, shown inline after the reflection
	Detail      string // a sentence or two of concrete direction
	AdviserName string // which adviser or LLM produced this
	Reasoning   string // LLM reasoning (empty for rule-based)
}
