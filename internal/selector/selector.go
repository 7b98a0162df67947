package selector

import (
	"sort"

	"github.com/reviewgym/reviewgym/internal/challenge"
	"github.com/reviewgym/reviewgym/internal/history"
)

// RecencyWindow is how many recent rounds a category must have sat out
// before the round-robin fallback will pick it again.
const RecencyWindow = 2

// Selector turns a calibrated difficulty and the coverage verdicts into
// a selection request for the content provider. It never authors
// challenge content itself.
type Selector struct {
	known []string
}

// New returns a selector that draws round-robin picks from the given
// set of known categories.
func New(knownCategories []string) *Selector {
	known := make([]string, len(knownCategories))
	copy(known, knownCategories)
	sort.Strings(known)
	return &Selector{known: known}
}

// Select builds the next selection request. Weak categories are always
// required. When there are none, one category the learner has not seen
// in the last RecencyWindow rounds is picked round-robin so coverage
// keeps rotating, and strong categories are excluded; a required
// category is never excluded.
func (s *Selector) Select(h *history.History, difficulty int, weak, strong []string) challenge.SelectionRequest {
	req := challenge.SelectionRequest{Difficulty: difficulty}

	if len(weak) > 0 {
		req.RequiredCategories = append(req.RequiredCategories, weak...)
		return req
	}

	if pick, ok := s.rotationPick(h); ok {
		req.RequiredCategories = []string{pick}
	}
	for _, cat := range strong {
		if len(req.RequiredCategories) == 1 && req.RequiredCategories[0] == cat {
			continue
		}
		req.ExcludedCategories = append(req.ExcludedCategories, cat)
	}
	return req
}

// rotationPick chooses one known category that has not been tagged in
// the last RecencyWindow rounds. The pick walks the candidate list by
// round count, so consecutive calls rotate rather than repeat.
func (s *Selector) rotationPick(h *history.History) (string, bool) {
	recent := make(map[string]bool)
	for _, r := range h.LastN(RecencyWindow) {
		for _, tag := range r.CategoryTags {
			recent[tag] = true
		}
	}

	var candidates []string
	for _, cat := range s.known {
		if !recent[cat] {
			candidates = append(candidates, cat)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	return candidates[h.Len()%len(candidates)], true
}
