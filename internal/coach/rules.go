package coach

import (
	"fmt"

	"github.com/reviewgym/reviewgym/internal/catalog"
)

const (
	// LowRecallThreshold is the recall (exclusive) below which a round
	// reads as "missed most of it".
	LowRecallThreshold = 0.35

	// LowPrecisionThreshold is the precision (exclusive) below which
	// false alarms dominate.
	LowPrecisionThreshold = 0.50

	// LowSeverityAccuracy is the severity accuracy (exclusive) below
	// which impact judgment needs work.
	LowSeverityAccuracy = 0.50

	// CategoryGapMinMisses is how many misses must share a category
	// before it is called out.
	CategoryGapMinMisses = 2
)

// Adviser is a rule-based advice source.
// Returns nil if the rule doesn't apply to this round.
type Adviser interface {
	Name() string
	Advise(input *AdviceInput) *Advice
}

// DefaultAdvisers returns advisers in priority order.
// Trap hits come first since flagging correct code is the most specific
// signal; a category gap beats generic recall advice because it names
// what to study.
func DefaultAdvisers() []Adviser {
	return []Adviser{
		&TrapAdviser{},
		&CategoryGapAdviser{},
		&RecallAdviser{},
		&PrecisionAdviser{},
		&SeverityAdviser{},
	}
}

// RunAdvisers executes rule-based advisers in order.
// Returns the first match with its adviser name filled in, or nil.
func RunAdvisers(advisers []Adviser, input *AdviceInput) *Advice {
	if input.Round == nil || input.Round.Scorecard == nil {
		return nil
	}
	for _, a := range advisers {
		if advice := a.Advise(input); advice != nil {
			advice.AdviserName = a.Name()
			return advice
		}
	}
	return nil
}

// TrapAdviser fires when the learner flagged code that was planted as
// correct-but-suspicious.
type TrapAdviser struct{}

func (a *TrapAdviser) Name() string { return "trap" }

func (a *TrapAdviser) Advise(input *AdviceInput) *Advice {
	hits := input.Round.Scorecard.TrapHits
	if len(hits) == 0 {
		return nil
	}
	return &Advice{
		Focus:    FocusPrecision,
		Headline: "You flagged code that was actually correct",
		Detail: fmt.Sprintf("%d of your reports landed on deliberately suspicious-looking but sound code (first at %s). Before reporting, ask what concrete input or schedule makes the line misbehave.",
			len(hits), hits[0].Location),
	}
}

// CategoryGapAdviser fires when several misses share one category.
type CategoryGapAdviser struct{}

func (a *CategoryGapAdviser) Name() string { return "category-gap" }

func (a *CategoryGapAdviser) Advise(input *AdviceInput) *Advice {
	misses := make(map[string]int)
	for _, f := range input.Round.Scorecard.FalseNegatives {
		misses[f.Category]++
	}

	worst, worstCount := "", 0
	for cat, n := range misses {
		if n > worstCount || (n == worstCount && cat < worst) {
			worst, worstCount = cat, n
		}
	}
	if worstCount < CategoryGapMinMisses {
		return nil
	}
	return &Advice{
		Focus:    FocusCategory,
		Headline: fmt.Sprintf("%s defects keep getting past you", catalog.Label(worst)),
		Detail: fmt.Sprintf("You missed %d %s findings this round. Do one pass over the listing looking for nothing but that.",
			worstCount, catalog.Label(worst)),
	}
}

// RecallAdviser fires when most planted defects were missed.
type RecallAdviser struct{}

func (a *RecallAdviser) Name() string { return "recall" }

func (a *RecallAdviser) Advise(input *AdviceInput) *Advice {
	card := input.Round.Scorecard
	if card.Recall >= LowRecallThreshold || card.FN() < 2 {
		return nil
	}
	return &Advice{
		Focus:    FocusRecall,
		Headline: "Most of the planted defects got past you",
		Detail: fmt.Sprintf("You found %d of %d. Slow down and read every function twice before writing anything up.",
			card.TP(), card.TP()+card.FN()),
	}
}

// PrecisionAdviser fires when false alarms dominate the submission.
type PrecisionAdviser struct{}

func (a *PrecisionAdviser) Name() string { return "precision" }

func (a *PrecisionAdviser) Advise(input *AdviceInput) *Advice {
	card := input.Round.Scorecard
	if card.Precision >= LowPrecisionThreshold || card.FP() < 2 {
		return nil
	}
	return &Advice{
		Focus:    FocusPrecision,
		Headline: "More false alarms than real findings",
		Detail: fmt.Sprintf("%d of your %d reports didn't hold up. Each report should name the input or sequence that triggers the failure.",
			card.FP(), card.TP()+card.FP()),
	}
}

// SeverityAdviser fires when the spots were right but the impact calls
// were not.
type SeverityAdviser struct{}

func (a *SeverityAdviser) Name() string { return "severity" }

func (a *SeverityAdviser) Advise(input *AdviceInput) *Advice {
	card := input.Round.Scorecard
	if card.TP() < 2 || card.SeverityAccuracy >= LowSeverityAccuracy {
		return nil
	}
	return &Advice{
		Focus:    FocusSeverity,
		Headline: "Right findings, wrong impact calls",
		Detail:   "You located the defects but misjudged how bad they are. Rate severity by what ships to production, not by how hard the bug was to spot.",
	}
}
