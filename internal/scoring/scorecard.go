package scoring

import "github.com/reviewgym/reviewgym/internal/finding"

// MatchedPair records a true positive: the learner's submitted finding
// together with the ground-truth finding it claimed.
type MatchedPair struct {
	Submitted finding.Finding `json:"submitted"`
	Truth     finding.Finding `json:"truth"`
}

// Scorecard is the immutable scoring result for one round. It is
// computed once by Score and never mutated afterwards; everything else
// in the engine holds it read-only.
type Scorecard struct {
	TruePositives  []MatchedPair     `json:"true_positives"`
	FalsePositives []finding.Finding `json:"false_positives"`
	FalseNegatives []finding.Finding `json:"false_negatives"`

	Precision        float64 `json:"precision"`
	Recall           float64 `json:"recall"`
	F1               float64 `json:"f1"`
	SeverityAccuracy float64 `json:"severity_accuracy"`
	CategoryAccuracy float64 `json:"category_accuracy"`

	// PerCategoryRecall maps each category present in ground truth to
	// the fraction of its findings the learner located. Categories with
	// no ground-truth findings do not appear.
	PerCategoryRecall map[string]float64 `json:"per_category_recall"`

	// TrapHits is the subset of false positives that matched a planted
	// trap finding. Purely diagnostic; trap hits are already counted in
	// FalsePositives and in the metrics above.
	TrapHits []finding.Finding `json:"trap_hits,omitempty"`
}

// TP returns the true positive count.
func (s *Scorecard) TP() int { return len(s.TruePositives) }

// FP returns the false positive count.
func (s *Scorecard) FP() int { return len(s.FalsePositives) }

// FN returns the false negative count (missed ground-truth findings).
func (s *Scorecard) FN() int { return len(s.FalseNegatives) }
