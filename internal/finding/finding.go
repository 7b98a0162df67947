package finding

import "strings"

// Severity is the claimed or actual impact level of a finding.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// AllSeverities returns the severities in descending impact order.
func AllSeverities() []Severity {
	return []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow}
}

// IsValid reports whether s is one of the defined severity levels.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// Label returns the display label for a severity.
func (s Severity) Label() string {
	switch s {
	case SeverityCritical:
		return "Critical"
	case SeverityHigh:
		return "High"
	case SeverityMedium:
		return "Medium"
	case SeverityLow:
		return "Low"
	default:
		return string(s)
	}
}

// Finding is a single review finding, either planted in a challenge's
// ground truth or claimed by the learner. Findings are value objects:
// once constructed they are never mutated.
type Finding struct {
	ID          string   `json:"id,omitempty"`
	Category    string   `json:"category"`
	Severity    Severity `json:"severity"`
	Location    string   `json:"location"`
	Description string   `json:"description,omitempty"`

	// InterestWeight is set on ground-truth findings only and is used
	// for ordering in coverage reporting. Zero means unweighted.
	InterestWeight float64 `json:"interest_weight,omitempty"`
}

// FieldError describes a single malformed field on a finding.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

// Validate checks the fields every finding must carry. Ground-truth
// findings are additionally required to carry an ID (needed for
// one-to-one match bookkeeping); learner submissions may omit it.
func Validate(f Finding, requireID bool) error {
	if requireID && strings.TrimSpace(f.ID) == "" {
		return &FieldError{Field: "id", Reason: "must not be empty"}
	}
	if strings.TrimSpace(f.Category) == "" {
		return &FieldError{Field: "category", Reason: "must not be empty"}
	}
	if !f.Severity.IsValid() {
		return &FieldError{Field: "severity", Reason: "must be one of critical, high, medium, low"}
	}
	if strings.TrimSpace(f.Location) == "" {
		return &FieldError{Field: "location", Reason: "must not be empty"}
	}
	return nil
}

// ValidateAll validates a slice of findings and returns the index of the
// first malformed one alongside the field error, or -1 and nil.
func ValidateAll(fs []Finding, requireID bool) (int, error) {
	for i, f := range fs {
		if err := Validate(f, requireID); err != nil {
			return i, err
		}
	}
	return -1, nil
}
