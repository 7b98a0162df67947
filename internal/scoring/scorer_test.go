package scoring

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/reviewgym/reviewgym/internal/finding"
)

const epsilon = 0.0001

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func truth(id, category string, severity finding.Severity, location string) finding.Finding {
	return finding.Finding{
		ID:       id,
		Category: category,
		Severity: severity,
		Location: location,
	}
}

func claim(id, category string, severity finding.Severity, location string) finding.Finding {
	return finding.Finding{
		ID:       id,
		Category: category,
		Severity: severity,
		Location: location,
	}
}

func TestScore_OneHitOneFalseAlarm(t *testing.T) {
	gt := []finding.Finding{
		truth("gt-a", "injection", finding.SeverityHigh, "db.go:10"),
		truth("gt-b", "access-control", finding.SeverityCritical, "auth.go:22"),
	}
	sub := []finding.Finding{
		claim("gt-a", "injection", finding.SeverityHigh, "db.go:10"),
		claim("", "logic", finding.SeverityLow, "util.go:5"),
	}

	card, err := Score(sub, gt, finding.DefaultMatcher)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if card.TP() != 1 || card.FP() != 1 || card.FN() != 1 {
		t.Errorf("TP/FP/FN = %d/%d/%d, want 1/1/1", card.TP(), card.FP(), card.FN())
	}
	if !almostEqual(card.Precision, 0.5) {
		t.Errorf("Precision = %f, want 0.5", card.Precision)
	}
	if !almostEqual(card.Recall, 0.5) {
		t.Errorf("Recall = %f, want 0.5", card.Recall)
	}
	if !almostEqual(card.F1, 0.5) {
		t.Errorf("F1 = %f, want 0.5", card.F1)
	}
	if card.FalseNegatives[0].ID != "gt-b" {
		t.Errorf("missed finding = %q, want gt-b", card.FalseNegatives[0].ID)
	}
}

func TestScore_EmptySubmission(t *testing.T) {
	gt := []finding.Finding{
		truth("gt-1", "injection", finding.SeverityHigh, "a.go:1"),
		truth("gt-2", "crypto-defaults", finding.SeverityMedium, "b.go:2"),
		truth("gt-3", "access-control", finding.SeverityCritical, "c.go:3"),
	}

	card, err := Score(nil, gt, finding.DefaultMatcher)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if card.TP() != 0 || card.FP() != 0 || card.FN() != 3 {
		t.Errorf("TP/FP/FN = %d/%d/%d, want 0/0/3", card.TP(), card.FP(), card.FN())
	}
	// No claims at all: precision is vacuously perfect, recall takes the hit.
	if card.Precision != 1.0 {
		t.Errorf("Precision = %f, want 1.0", card.Precision)
	}
	if card.Recall != 0.0 {
		t.Errorf("Recall = %f, want 0.0", card.Recall)
	}
	if card.F1 != 0.0 {
		t.Errorf("F1 = %f, want 0.0", card.F1)
	}
	if card.SeverityAccuracy != 0.0 || card.CategoryAccuracy != 0.0 {
		t.Errorf("accuracies = %f/%f, want 0/0 with no true positives",
			card.SeverityAccuracy, card.CategoryAccuracy)
	}
}

func TestScore_EmptyGroundTruth(t *testing.T) {
	sub := []finding.Finding{
		claim("", "logic", finding.SeverityLow, "x.go:9"),
	}

	card, err := Score(sub, nil, finding.DefaultMatcher)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if card.TP() != 0 || card.FP() != 1 || card.FN() != 0 {
		t.Errorf("TP/FP/FN = %d/%d/%d, want 0/1/0", card.TP(), card.FP(), card.FN())
	}
	if card.Precision != 0.0 {
		t.Errorf("Precision = %f, want 0.0", card.Precision)
	}
	if card.Recall != 1.0 {
		t.Errorf("Recall = %f, want 1.0 (vacuous)", card.Recall)
	}
	if len(card.PerCategoryRecall) != 0 {
		t.Errorf("PerCategoryRecall has %d entries, want 0", len(card.PerCategoryRecall))
	}
}

func TestScore_BothEmpty(t *testing.T) {
	card, err := Score(nil, nil, finding.DefaultMatcher)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if card.Precision != 1.0 || card.Recall != 1.0 {
		t.Errorf("Precision/Recall = %f/%f, want 1.0/1.0", card.Precision, card.Recall)
	}
	if !almostEqual(card.F1, 1.0) {
		t.Errorf("F1 = %f, want 1.0", card.F1)
	}
}

func TestScore_CountIdentities(t *testing.T) {
	gt := []finding.Finding{
		truth("gt-1", "injection", finding.SeverityHigh, "a.go:1"),
		truth("gt-2", "injection", finding.SeverityLow, "a.go:40"),
		truth("gt-3", "access-control", finding.SeverityCritical, "b.go:7"),
	}
	sub := []finding.Finding{
		claim("gt-2", "injection", finding.SeverityLow, "a.go:40"),
		claim("", "crypto-defaults", finding.SeverityMedium, "c.go:3"),
		claim("", "injection", finding.SeverityHigh, "a.go:1"),
		claim("", "logic", finding.SeverityLow, "d.go:12"),
	}

	card, err := Score(sub, gt, finding.DefaultMatcher)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if card.TP()+card.FN() != len(gt) {
		t.Errorf("TP+FN = %d, want |ground truth| = %d", card.TP()+card.FN(), len(gt))
	}
	if card.TP()+card.FP() != len(sub) {
		t.Errorf("TP+FP = %d, want |submission| = %d", card.TP()+card.FP(), len(sub))
	}
}

func TestScore_GroundTruthOrderIndependent(t *testing.T) {
	gt := []finding.Finding{
		truth("gt-1", "injection", finding.SeverityHigh, "a.go:1"),
		truth("gt-2", "access-control", finding.SeverityCritical, "b.go:7"),
		truth("gt-3", "crypto-defaults", finding.SeverityMedium, "c.go:3"),
	}
	permuted := []finding.Finding{gt[2], gt[0], gt[1]}
	sub := []finding.Finding{
		claim("gt-3", "crypto-defaults", finding.SeverityMedium, "c.go:3"),
		claim("", "logic", finding.SeverityLow, "d.go:1"),
	}

	a, err := Score(sub, gt, finding.DefaultMatcher)
	if err != nil {
		t.Fatalf("Score(original) error = %v", err)
	}
	b, err := Score(sub, permuted, finding.DefaultMatcher)
	if err != nil {
		t.Fatalf("Score(permuted) error = %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("permuting ground truth changed the scorecard:\n  %+v\nvs\n  %+v", a, b)
	}
}

func TestScore_FirstSubmissionClaimsSharedMatch(t *testing.T) {
	gt := []finding.Finding{
		truth("gt-1", "injection", finding.SeverityHigh, "a.go:1"),
	}
	// Both submitted findings match gt-1 by ID. Only the first may claim it.
	sub := []finding.Finding{
		claim("gt-1", "injection", finding.SeverityHigh, "a.go:1"),
		claim("gt-1", "injection", finding.SeverityMedium, "a.go:2"),
	}

	card, err := Score(sub, gt, finding.DefaultMatcher)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if card.TP() != 1 || card.FP() != 1 {
		t.Errorf("TP/FP = %d/%d, want 1/1", card.TP(), card.FP())
	}
	if card.TruePositives[0].Submitted.Severity != finding.SeverityHigh {
		t.Errorf("claiming finding severity = %q, want the first submitted (high)",
			card.TruePositives[0].Submitted.Severity)
	}
}

func TestScore_SeverityAndCategoryAccuracy(t *testing.T) {
	gt := []finding.Finding{
		truth("gt-1", "injection", finding.SeverityHigh, "a.go:1"),
		truth("gt-2", "access-control", finding.SeverityCritical, "b.go:7"),
	}
	// Both found: first with the right severity and category, second with
	// both graded wrong (matched by ID regardless).
	sub := []finding.Finding{
		claim("gt-1", "injection", finding.SeverityHigh, "a.go:1"),
		claim("gt-2", "logic", finding.SeverityLow, "b.go:7"),
	}

	card, err := Score(sub, gt, finding.DefaultMatcher)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if card.TP() != 2 {
		t.Fatalf("TP = %d, want 2", card.TP())
	}
	// 1 of 2 severities correct, 1 of 2 categories correct.
	if !almostEqual(card.SeverityAccuracy, 0.5) {
		t.Errorf("SeverityAccuracy = %f, want 0.5", card.SeverityAccuracy)
	}
	if !almostEqual(card.CategoryAccuracy, 0.5) {
		t.Errorf("CategoryAccuracy = %f, want 0.5", card.CategoryAccuracy)
	}
}

func TestScore_PerCategoryRecall(t *testing.T) {
	gt := []finding.Finding{
		truth("gt-1", "injection", finding.SeverityHigh, "a.go:1"),
		truth("gt-2", "injection", finding.SeverityLow, "a.go:40"),
		truth("gt-3", "access-control", finding.SeverityCritical, "b.go:7"),
	}
	sub := []finding.Finding{
		claim("gt-1", "injection", finding.SeverityHigh, "a.go:1"),
	}

	card, err := Score(sub, gt, finding.DefaultMatcher)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if got := card.PerCategoryRecall["injection"]; !almostEqual(got, 0.5) {
		t.Errorf("PerCategoryRecall[injection] = %f, want 0.5", got)
	}
	// Untouched category still appears, at zero.
	if got, ok := card.PerCategoryRecall["access-control"]; !ok || got != 0.0 {
		t.Errorf("PerCategoryRecall[access-control] = %f (present=%v), want 0.0 present", got, ok)
	}
	if _, ok := card.PerCategoryRecall["logic"]; ok {
		t.Error("PerCategoryRecall contains a category absent from ground truth")
	}
}

func TestScore_MalformedInput(t *testing.T) {
	goodGT := []finding.Finding{
		truth("gt-1", "injection", finding.SeverityHigh, "a.go:1"),
	}

	badSub := []finding.Finding{
		{Category: "injection", Severity: "bogus", Location: "a.go:1"},
	}
	_, err := Score(badSub, goodGT, finding.DefaultMatcher)
	var subErr *InvalidSubmissionError
	if !errors.As(err, &subErr) {
		t.Fatalf("Score(bad submission) error = %v, want *InvalidSubmissionError", err)
	}
	if subErr.Source != "submission" || subErr.Index != 0 {
		t.Errorf("error source/index = %q/%d, want submission/0", subErr.Source, subErr.Index)
	}

	// Ground truth missing an ID is malformed too.
	badGT := []finding.Finding{
		{Category: "injection", Severity: finding.SeverityHigh, Location: "a.go:1"},
	}
	_, err = Score(nil, badGT, finding.DefaultMatcher)
	if !errors.As(err, &subErr) {
		t.Fatalf("Score(bad ground truth) error = %v, want *InvalidSubmissionError", err)
	}
	if subErr.Source != "ground truth" {
		t.Errorf("error source = %q, want ground truth", subErr.Source)
	}
}

func TestScoreWithTraps_RecordsHitsWithoutChangingMetrics(t *testing.T) {
	gt := []finding.Finding{
		truth("gt-1", "injection", finding.SeverityHigh, "a.go:1"),
	}
	traps := []finding.Finding{
		truth("trap-1", "injection", finding.SeverityHigh, "a.go:99"),
	}
	sub := []finding.Finding{
		claim("", "injection", finding.SeverityHigh, "a.go:1"),
		claim("", "injection", finding.SeverityHigh, "a.go:99"), // bites the trap
		claim("", "logic", finding.SeverityLow, "z.go:1"),
	}

	withTraps, err := ScoreWithTraps(sub, gt, traps, finding.DefaultMatcher)
	if err != nil {
		t.Fatalf("ScoreWithTraps() error = %v", err)
	}
	plain, err := Score(sub, gt, finding.DefaultMatcher)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}

	if len(withTraps.TrapHits) != 1 {
		t.Fatalf("TrapHits = %d, want 1", len(withTraps.TrapHits))
	}
	if withTraps.TrapHits[0].Location != "a.go:99" {
		t.Errorf("trap hit location = %q, want a.go:99", withTraps.TrapHits[0].Location)
	}
	if withTraps.TP() != plain.TP() || withTraps.FP() != plain.FP() || withTraps.FN() != plain.FN() {
		t.Errorf("traps changed counts: %d/%d/%d vs %d/%d/%d",
			withTraps.TP(), withTraps.FP(), withTraps.FN(),
			plain.TP(), plain.FP(), plain.FN())
	}
	if !almostEqual(withTraps.Precision, plain.Precision) || !almostEqual(withTraps.F1, plain.F1) {
		t.Errorf("traps changed metrics: precision %f vs %f, f1 %f vs %f",
			withTraps.Precision, plain.Precision, withTraps.F1, plain.F1)
	}
}

func TestScore_NilMatcherFallsBackToDefault(t *testing.T) {
	gt := []finding.Finding{
		truth("gt-1", "injection", finding.SeverityHigh, "a.go:1"),
	}
	sub := []finding.Finding{
		claim("gt-1", "injection", finding.SeverityHigh, "a.go:1"),
	}
	card, err := Score(sub, gt, nil)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if card.TP() != 1 {
		t.Errorf("TP = %d, want 1", card.TP())
	}
}
