package challenge

import (
	"fmt"
	"strings"

	"github.com/reviewgym/reviewgym/internal/catalog"
)

const systemPrompt = `You are a senior engineer authoring code review exercises for working developers.

Rules:
- Produce one realistic, self-contained code listing with defects deliberately planted in it.
- The code must read like real production code: plausible names, plausible intent, no comments hinting at the defects.
- Plant exactly the number of defects requested, each independently discoverable by careful reading alone. No defect may depend on code outside the listing.
- Every finding's location must name a line that exists in the listing, as file:line.
- Severity reflects impact if shipped, not how hard the defect is to spot.
- When required categories are given, plant at least one defect from each. Never plant a defect from an excluded category.
- Traps are optional: correct code that a hasty reviewer would flag. A trap location must not collide with any finding location.
- Difficulty governs subtlety, not volume: level 1 defects are textbook; level 5 defects hide in interactions between distant lines.
- Do not reuse a scenario from the "already played" list.`

// levelGuidance maps each difficulty level to a line of authoring
// guidance included in the prompt.
var levelGuidance = map[int]string{
	1: "obvious, single-line defects a junior reviewer catches",
	2: "single-function defects needing a careful read",
	3: "defects spanning a few functions or hiding behind a helper",
	4: "subtle defects in edge cases, ordering, or state assumptions",
	5: "deep defects in interactions across the whole listing",
}

// findingCountForLevel returns the expected planted-defect range for a
// difficulty level. Harder levels plant slightly more so recall stays
// meaningful.
func findingCountForLevel(level int) (min, max int) {
	switch {
	case level <= 1:
		return 2, 3
	case level == 2:
		return 2, 4
	case level == 3:
		return 3, 5
	case level == 4:
		return 3, 6
	default:
		return 4, 6
	}
}

// buildUserMessage constructs the user message from the selection
// request and config limits.
func buildUserMessage(req SelectionRequest, priorTitles []string, cfg Config) string {
	var b strings.Builder

	minFindings, maxFindings := findingCountForLevel(req.Difficulty)
	fmt.Fprintf(&b, "Difficulty: %d of 5 (%s)\n", req.Difficulty, levelGuidance[req.Difficulty])
	fmt.Fprintf(&b, "Planted defects: between %d and %d\n", minFindings, maxFindings)

	b.WriteString("\nCategory vocabulary:\n")
	for _, c := range catalog.All() {
		fmt.Fprintf(&b, "- %s: %s\n", c.ID, c.Description)
	}

	b.WriteString("\nRequired categories (plant at least one defect from each):\n")
	b.WriteString(bulleted(req.RequiredCategories))

	b.WriteString("\nExcluded categories (plant none of these):\n")
	b.WriteString(bulleted(req.ExcludedCategories))

	b.WriteString("\nAlready played (do not reuse these scenarios):\n")
	if cfg.MaxPriorTitles > 0 && len(priorTitles) > cfg.MaxPriorTitles {
		priorTitles = priorTitles[len(priorTitles)-cfg.MaxPriorTitles:]
	}
	b.WriteString(bulleted(priorTitles))

	return b.String()
}

func bulleted(items []string) string {
	if len(items) == 0 {
		return "None\n"
	}
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	return b.String()
}
