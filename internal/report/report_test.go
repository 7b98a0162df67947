package report

import (
	"strings"
	"testing"

	"github.com/reviewgym/reviewgym/internal/coverage"
	"github.com/reviewgym/reviewgym/internal/finding"
	"github.com/reviewgym/reviewgym/internal/history"
	"github.com/reviewgym/reviewgym/internal/scoring"
)

func sampleCard() *scoring.Scorecard {
	return &scoring.Scorecard{
		TruePositives: []scoring.MatchedPair{{
			Submitted: finding.Finding{Category: "injection", Severity: finding.SeverityHigh, Location: "db.go:10"},
			Truth:     finding.Finding{ID: "gt-1", Category: "injection", Severity: finding.SeverityHigh, Location: "db.go:10", Description: "query built by string concat"},
		}},
		FalsePositives: []finding.Finding{
			{Category: "logic", Severity: finding.SeverityLow, Location: "main.go:5"},
		},
		FalseNegatives: []finding.Finding{
			{ID: "gt-2", Category: "access-control", Severity: finding.SeverityCritical, Location: "auth.go:42", Description: "missing ownership check"},
		},
		Precision:         0.5,
		Recall:            0.5,
		F1:                0.5,
		SeverityAccuracy:  1.0,
		CategoryAccuracy:  1.0,
		PerCategoryRecall: map[string]float64{"injection": 1.0, "access-control": 0.0},
		TrapHits: []finding.Finding{
			{Category: "logic", Severity: finding.SeverityLow, Location: "main.go:5"},
		},
	}
}

func TestScorecardSections(t *testing.T) {
	out := Scorecard(sampleCard())

	for _, want := range []string{
		"## Scorecard",
		"| Precision | 50% |",
		"| Recall | 50% |",
		"### Found",
		"### Missed",
		"### False alarms",
		"missing ownership check",
		"planted traps",
		"### Recall by category",
		"- Access Control: 0%",
		"- Injection: 100%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("scorecard missing %q\n%s", want, out)
		}
	}
}

func TestRoundIncludesReflection(t *testing.T) {
	r := &history.Round{
		Index:          2,
		Difficulty:     3,
		CategoryTags:   []string{"injection"},
		Scorecard:      sampleCard(),
		ReflectionText: "I read the handlers but never traced where user input entered the query builder.",
	}
	out := Round(r)

	if !strings.Contains(out, "# Round 3 (level 3)") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "Categories: Injection") {
		t.Errorf("missing category line:\n%s", out)
	}
	if !strings.Contains(out, "## Reflection") || !strings.Contains(out, "query builder") {
		t.Errorf("missing reflection:\n%s", out)
	}
}

func TestRoundsJoinsWithRule(t *testing.T) {
	rounds := []history.Round{
		{Index: 0, Difficulty: 1, Scorecard: sampleCard(), ReflectionText: "a"},
		{Index: 1, Difficulty: 1, Scorecard: sampleCard(), ReflectionText: "b"},
	}
	out := Rounds(rounds)
	if strings.Count(out, "# Round") != 2 {
		t.Errorf("expected two round headers:\n%s", out)
	}
	if !strings.Contains(out, "\n---\n") {
		t.Errorf("expected separator between rounds:\n%s", out)
	}
}

func TestCoverageTable(t *testing.T) {
	out := Coverage([]coverage.CategoryStat{
		{Category: "injection", Appearances: 4, MeanRecall: 0.9, Found: 7, Total: 8, Status: coverage.StatusStrong},
		{Category: "concurrency", Appearances: 1, Found: 0, Total: 2, Status: coverage.StatusUntested},
	})

	if !strings.Contains(out, "| Injection | 4 | 7 / 8 | 90% | strong |") {
		t.Errorf("missing strong row:\n%s", out)
	}
	// Untested categories show a dash instead of a misleading 0%.
	if !strings.Contains(out, "| Concurrency | 1 | 0 / 2 | - | untested |") {
		t.Errorf("missing untested row:\n%s", out)
	}
}

func TestCoverageEmpty(t *testing.T) {
	if out := Coverage(nil); !strings.Contains(out, "No rounds played yet") {
		t.Errorf("unexpected empty output: %q", out)
	}
}
