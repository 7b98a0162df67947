package history

import "sort"

// History is the append-only record of a session's sealed rounds.
// There is no mutation or deletion API: a correction is a new round, so
// the full audit trail survives. One History belongs to exactly one
// session and has a single writer; readers get copies.
type History struct {
	rounds []Round
}

// New returns an empty history.
func New() *History {
	return &History{}
}

// Seed returns a history pre-populated with previously sealed rounds,
// ordered oldest first. Used when resuming a learner across processes.
func Seed(rounds []Round) *History {
	h := &History{rounds: make([]Round, len(rounds))}
	copy(h.rounds, rounds)
	return h
}

// Append adds a sealed round. The round's tag slice is copied so later
// caller mutation cannot reach into the history.
func (h *History) Append(r Round) {
	if len(r.CategoryTags) > 0 {
		tags := make([]string, len(r.CategoryTags))
		copy(tags, r.CategoryTags)
		sort.Strings(tags)
		r.CategoryTags = tags
	}
	h.rounds = append(h.rounds, r)
}

// Len returns the number of sealed rounds.
func (h *History) Len() int {
	return len(h.rounds)
}

// LastN returns up to n most recent rounds, oldest first.
func (h *History) LastN(n int) []Round {
	if n <= 0 {
		return nil
	}
	if n > len(h.rounds) {
		n = len(h.rounds)
	}
	out := make([]Round, n)
	copy(out, h.rounds[len(h.rounds)-n:])
	return out
}

// All returns every sealed round, oldest first.
func (h *History) All() []Round {
	out := make([]Round, len(h.rounds))
	copy(out, h.rounds)
	return out
}

// CategoryTotal aggregates one category's lifetime tally.
type CategoryTotal struct {
	// Found is how many ground-truth findings in this category the
	// learner has located across all rounds.
	Found int
	// Total is how many ground-truth findings in this category have
	// been planted across all rounds.
	Total int
	// Weight is the summed interest weight of the planted findings.
	Weight float64
}

// CategoryTotals aggregates found/total counts per category across the
// whole history, reconstructed from each round's scorecard.
func (h *History) CategoryTotals() map[string]CategoryTotal {
	totals := make(map[string]CategoryTotal)
	for _, r := range h.rounds {
		if r.Scorecard == nil {
			continue
		}
		for _, pair := range r.Scorecard.TruePositives {
			ct := totals[pair.Truth.Category]
			ct.Found++
			ct.Total++
			ct.Weight += pair.Truth.InterestWeight
			totals[pair.Truth.Category] = ct
		}
		for _, missed := range r.Scorecard.FalseNegatives {
			ct := totals[missed.Category]
			ct.Total++
			ct.Weight += missed.InterestWeight
			totals[missed.Category] = ct
		}
	}
	return totals
}
