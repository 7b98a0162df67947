package catalog

import (
	"fmt"
	"slices"
	"sort"
)

// Category is one reviewable defect class. The catalog is the shared
// vocabulary between the coverage tracker, the selector, and the
// content providers: every ground-truth finding is tagged with one of
// these IDs.
type Category struct {
	// ID is the stable identifier used in findings and selection
	// requests, e.g. "access-control".
	ID string

	// Label is the display name, e.g. "Access Control".
	Label string

	// Description is one sentence on what the category covers. Fed to
	// the generation prompt and shown in stats views.
	Description string

	// Foundational marks categories whose competence gates advancement
	// into the upper difficulty levels.
	Foundational bool
}

var categories = []Category{
	{
		ID:           "access-control",
		Label:        "Access Control",
		Description:  "Missing or wrong authorization checks: confused ownership, insecure direct object references, privilege escalation paths.",
		Foundational: true,
	},
	{
		ID:           "injection",
		Label:        "Injection",
		Description:  "Untrusted input reaching an interpreter: SQL, shell, template, or header injection via string assembly.",
		Foundational: true,
	},
	{
		ID:           "crypto-defaults",
		Label:        "Crypto Defaults",
		Description:  "Weak or misused cryptography: homegrown schemes, ECB mode, static IVs, predictable randomness, outdated hashes for passwords.",
		Foundational: true,
	},
	{
		ID:          "input-validation",
		Label:       "Input Validation",
		Description: "Missing bounds, type, or format checks on external input before it is trusted.",
	},
	{
		ID:          "error-handling",
		Label:       "Error Handling",
		Description: "Swallowed errors, continued execution after failure, or sensitive detail leaked through error paths.",
	},
	{
		ID:          "concurrency",
		Label:       "Concurrency",
		Description: "Data races, missing synchronization, deadlocks, or check-then-act windows on shared state.",
	},
	{
		ID:          "resource-leaks",
		Label:       "Resource Leaks",
		Description: "Connections, file handles, goroutines, or locks acquired but not reliably released on every path.",
	},
	{
		ID:          "secrets-handling",
		Label:       "Secrets Handling",
		Description: "Credentials or tokens hardcoded, logged, committed, or exposed through debug surfaces.",
	},
	{
		ID:          "logic",
		Label:       "Logic",
		Description: "Off-by-one errors, inverted conditions, wrong operator precedence, or unreachable intended behavior.",
	},
	{
		ID:          "dependency-risk",
		Label:       "Dependency Risk",
		Description: "Unpinned, outdated, or known-vulnerable third-party code and unsafe update channels.",
	},
}

var byID map[string]*Category

func init() {
	byID = make(map[string]*Category, len(categories))
	for i := range categories {
		byID[categories[i].ID] = &categories[i]
	}
}

// Get returns a category by ID, or an error if not found.
func Get(id string) (Category, error) {
	c, ok := byID[id]
	if !ok {
		return Category{}, fmt.Errorf("category not found: %q", id)
	}
	return *c, nil
}

// All returns every category in display order.
func All() []Category {
	return slices.Clone(categories)
}

// IDs returns every category ID, sorted.
func IDs() []string {
	ids := make([]string, len(categories))
	for i, c := range categories {
		ids[i] = c.ID
	}
	sort.Strings(ids)
	return ids
}

// FoundationalIDs returns the IDs of the foundational categories,
// sorted. These are the default anchor categories for calibration.
func FoundationalIDs() []string {
	var ids []string
	for _, c := range categories {
		if c.Foundational {
			ids = append(ids, c.ID)
		}
	}
	sort.Strings(ids)
	return ids
}

// Label returns the display label for a category ID, falling back to
// the raw ID when unknown.
func Label(id string) string {
	if c, ok := byID[id]; ok {
		return c.Label
	}
	return id
}
