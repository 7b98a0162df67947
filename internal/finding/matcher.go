package finding

import "strings"

// Matcher decides whether a submitted finding refers to the same defect
// as a ground-truth finding. Implementations must be deterministic and
// side-effect free; scoring calls them in submission order.
type Matcher func(submitted, truth Finding) bool

// DefaultMatcher matches on ID when both sides carry one, and otherwise
// falls back to category equality plus normalized location equality.
// Severity is deliberately not part of the match: a learner who finds
// the right defect but grades it wrong still gets the match, and the
// grading error shows up in severity accuracy instead.
func DefaultMatcher(submitted, truth Finding) bool {
	if submitted.ID != "" && truth.ID != "" {
		return submitted.ID == truth.ID
	}
	if !strings.EqualFold(strings.TrimSpace(submitted.Category), strings.TrimSpace(truth.Category)) {
		return false
	}
	return NormalizeLocation(submitted.Location) == NormalizeLocation(truth.Location)
}

// NormalizeLocation canonicalizes a location string for comparison:
// lowercased, surrounding whitespace trimmed, interior runs of
// whitespace collapsed to a single space.
func NormalizeLocation(loc string) string {
	return strings.Join(strings.Fields(strings.ToLower(loc)), " ")
}
