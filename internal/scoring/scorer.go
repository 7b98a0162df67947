package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/reviewgym/reviewgym/internal/finding"
)

// InvalidSubmissionError reports a malformed finding handed to the
// scorer, in either the submission or the ground-truth set. The scorer
// never coerces bad input into a partial score.
type InvalidSubmissionError struct {
	// Source is "submission" or "ground truth".
	Source string
	// Index is the position of the malformed finding within its set.
	Index int
	Err   error
}

func (e *InvalidSubmissionError) Error() string {
	return fmt.Sprintf("invalid %s finding at index %d: %v", e.Source, e.Index, e.Err)
}

func (e *InvalidSubmissionError) Unwrap() error { return e.Err }

// Score matches a submission against ground truth and computes the full
// Scorecard. Pure function: no side effects, deterministic for a given
// (submission, groundTruth, match) triple regardless of ground-truth
// ordering. Matching is greedy one-to-one in submission order; each
// ground-truth finding can be claimed at most once, by the earliest
// submitted finding that matches it.
func Score(submission, groundTruth []finding.Finding, match finding.Matcher) (*Scorecard, error) {
	return ScoreWithTraps(submission, groundTruth, nil, match)
}

// ScoreWithTraps scores like Score and additionally records which false
// positives matched a planted trap finding. Traps never change the
// metrics; a submitted finding that only matches a trap is still a
// false positive.
func ScoreWithTraps(submission, groundTruth, traps []finding.Finding, match finding.Matcher) (*Scorecard, error) {
	if match == nil {
		match = finding.DefaultMatcher
	}
	if i, err := finding.ValidateAll(groundTruth, true); err != nil {
		return nil, &InvalidSubmissionError{Source: "ground truth", Index: i, Err: err}
	}
	if i, err := finding.ValidateAll(submission, false); err != nil {
		return nil, &InvalidSubmissionError{Source: "submission", Index: i, Err: err}
	}

	// Scan ground truth in a canonical order so permuting the input
	// slice cannot change which item an ambiguous submission claims.
	pool := canonicalOrder(groundTruth)
	claimed := make(map[int]bool, len(groundTruth))

	card := &Scorecard{
		PerCategoryRecall: make(map[string]float64),
	}

	for _, sub := range submission {
		matchedIdx := -1
		for _, gi := range pool {
			if claimed[gi] {
				continue
			}
			if match(sub, groundTruth[gi]) {
				matchedIdx = gi
				break
			}
		}
		if matchedIdx >= 0 {
			claimed[matchedIdx] = true
			card.TruePositives = append(card.TruePositives, MatchedPair{
				Submitted: sub,
				Truth:     groundTruth[matchedIdx],
			})
		} else {
			card.FalsePositives = append(card.FalsePositives, sub)
		}
	}

	for _, gi := range pool {
		if !claimed[gi] {
			card.FalseNegatives = append(card.FalseNegatives, groundTruth[gi])
		}
	}

	computeMetrics(card, groundTruth)

	if len(traps) > 0 {
		card.TrapHits = trapHits(card.FalsePositives, traps, match)
	}

	return card, nil
}

func computeMetrics(card *Scorecard, groundTruth []finding.Finding) {
	tp := float64(card.TP())
	fp := float64(card.FP())
	fn := float64(card.FN())

	// Empty submission is not penalized for precision, only for recall.
	card.Precision = 1.0
	if tp+fp > 0 {
		card.Precision = tp / (tp + fp)
	}

	// Empty ground truth is vacuously fully recalled.
	card.Recall = 1.0
	if tp+fn > 0 {
		card.Recall = tp / (tp + fn)
	}

	if card.Precision+card.Recall > 0 {
		card.F1 = 2 * card.Precision * card.Recall / (card.Precision + card.Recall)
	}

	if tp > 0 {
		sevHits, catHits := 0, 0
		for _, pair := range card.TruePositives {
			if pair.Submitted.Severity == pair.Truth.Severity {
				sevHits++
			}
			if sameCategory(pair.Submitted.Category, pair.Truth.Category) {
				catHits++
			}
		}
		card.SeverityAccuracy = float64(sevHits) / tp
		card.CategoryAccuracy = float64(catHits) / tp
	}

	// Recall per category, keyed by the ground-truth category of each
	// planted finding. Every category present in ground truth gets an
	// entry, found or not.
	totals := make(map[string]int)
	for _, gt := range groundTruth {
		totals[gt.Category]++
	}
	found := make(map[string]int)
	for _, pair := range card.TruePositives {
		found[pair.Truth.Category]++
	}
	for cat, total := range totals {
		card.PerCategoryRecall[cat] = float64(found[cat]) / float64(total)
	}
}

// trapHits replays greedy one-to-one matching of the false positives
// against the trap pool. Each trap can absorb at most one hit.
func trapHits(falsePositives, traps []finding.Finding, match finding.Matcher) []finding.Finding {
	pool := canonicalOrder(traps)
	claimed := make(map[int]bool, len(traps))

	var hits []finding.Finding
	for _, fp := range falsePositives {
		for _, ti := range pool {
			if claimed[ti] {
				continue
			}
			if match(fp, traps[ti]) {
				claimed[ti] = true
				hits = append(hits, fp)
				break
			}
		}
	}
	return hits
}

// canonicalOrder returns indices into fs sorted by a stable key so the
// scan order does not depend on how the caller happened to order the
// slice.
func canonicalOrder(fs []finding.Finding) []int {
	idx := make([]int, len(fs))
	for i := range fs {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		fa, fb := fs[idx[a]], fs[idx[b]]
		if fa.ID != fb.ID {
			return fa.ID < fb.ID
		}
		if fa.Category != fb.Category {
			return fa.Category < fb.Category
		}
		la, lb := finding.NormalizeLocation(fa.Location), finding.NormalizeLocation(fb.Location)
		if la != lb {
			return la < lb
		}
		return fa.Severity < fb.Severity
	})
	return idx
}

func sameCategory(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
