package challenge

import "fmt"

// Validator checks a generated challenge before the engine sees it.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator, used in
	// error messages, e.g. "structural", "constraints".
	Name() string

	// Validate checks the challenge against the request it was
	// generated for and returns nil if it passes.
	Validate(ch *Challenge, req SelectionRequest) *ValidationError
}

// ValidationError describes why a generated challenge was rejected.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether regeneration is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}
