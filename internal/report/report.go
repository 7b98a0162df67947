// Package report renders engine outputs as markdown. It only reads the
// immutable structures the engine exposes; nothing here feeds back into
// scoring or calibration.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/reviewgym/reviewgym/internal/catalog"
	"github.com/reviewgym/reviewgym/internal/coverage"
	"github.com/reviewgym/reviewgym/internal/finding"
	"github.com/reviewgym/reviewgym/internal/history"
	"github.com/reviewgym/reviewgym/internal/scoring"
)

// Scorecard renders one round's scoring result as a markdown section.
func Scorecard(card *scoring.Scorecard) string {
	var b strings.Builder

	b.WriteString("## Scorecard\n\n")
	fmt.Fprintf(&b, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Found | %d |\n", card.TP())
	fmt.Fprintf(&b, "| Missed | %d |\n", card.FN())
	fmt.Fprintf(&b, "| False alarms | %d |\n", card.FP())
	fmt.Fprintf(&b, "| Precision | %s |\n", pct(card.Precision))
	fmt.Fprintf(&b, "| Recall | %s |\n", pct(card.Recall))
	fmt.Fprintf(&b, "| F1 | %s |\n", pct(card.F1))
	fmt.Fprintf(&b, "| Severity accuracy | %s |\n", pct(card.SeverityAccuracy))
	fmt.Fprintf(&b, "| Category accuracy | %s |\n", pct(card.CategoryAccuracy))

	if len(card.TruePositives) > 0 {
		b.WriteString("\n### Found\n\n")
		for _, pair := range card.TruePositives {
			writeFinding(&b, pair.Truth)
		}
	}

	if len(card.FalseNegatives) > 0 {
		b.WriteString("\n### Missed\n\n")
		for _, f := range card.FalseNegatives {
			writeFinding(&b, f)
		}
	}

	if len(card.FalsePositives) > 0 {
		b.WriteString("\n### False alarms\n\n")
		for _, f := range card.FalsePositives {
			writeFinding(&b, f)
		}
	}

	if len(card.TrapHits) > 0 {
		fmt.Fprintf(&b, "\n%d of the false alarms hit planted traps: spots authored to look vulnerable but actually safe.\n", len(card.TrapHits))
	}

	if len(card.PerCategoryRecall) > 0 {
		b.WriteString("\n### Recall by category\n\n")
		cats := make([]string, 0, len(card.PerCategoryRecall))
		for c := range card.PerCategoryRecall {
			cats = append(cats, c)
		}
		sort.Strings(cats)
		for _, c := range cats {
			fmt.Fprintf(&b, "- %s: %s\n", catalog.Label(c), pct(card.PerCategoryRecall[c]))
		}
	}

	return b.String()
}

// Round renders one sealed round, scorecard and reflection included.
func Round(r *history.Round) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Round %d (level %d)\n\n", r.Index+1, r.Difficulty)
	if len(r.CategoryTags) > 0 {
		labels := make([]string, len(r.CategoryTags))
		for i, tag := range r.CategoryTags {
			labels[i] = catalog.Label(tag)
		}
		fmt.Fprintf(&b, "Categories: %s\n\n", strings.Join(labels, ", "))
	}

	if r.Scorecard != nil {
		b.WriteString(Scorecard(r.Scorecard))
	}

	if r.ReflectionText != "" {
		b.WriteString("\n## Reflection\n\n")
		b.WriteString(r.ReflectionText)
		b.WriteString("\n")
	}

	return b.String()
}

// Rounds renders a set of sealed rounds oldest first, separated by
// horizontal rules.
func Rounds(rounds []history.Round) string {
	parts := make([]string, len(rounds))
	for i := range rounds {
		parts[i] = Round(&rounds[i])
	}
	return strings.Join(parts, "\n---\n\n")
}

// Coverage renders the per-category standing as a markdown table.
func Coverage(stats []coverage.CategoryStat) string {
	if len(stats) == 0 {
		return "No rounds played yet.\n"
	}

	var b strings.Builder
	b.WriteString("## Category coverage\n\n")
	b.WriteString("| Category | Rounds | Found / Planted | Recent recall | Standing |\n|---|---|---|---|---|\n")
	for _, s := range stats {
		recall := "-"
		if s.Status != coverage.StatusUntested {
			recall = pct(s.MeanRecall)
		}
		fmt.Fprintf(&b, "| %s | %d | %d / %d | %s | %s |\n",
			catalog.Label(s.Category), s.Appearances, s.Found, s.Total, recall, s.Status)
	}
	return b.String()
}

func writeFinding(b *strings.Builder, f finding.Finding) {
	fmt.Fprintf(b, "- **%s** (%s) at `%s`", catalog.Label(f.Category), f.Severity.Label(), f.Location)
	if f.Description != "" {
		fmt.Fprintf(b, " — %s", f.Description)
	}
	b.WriteString("\n")
}

func pct(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}
