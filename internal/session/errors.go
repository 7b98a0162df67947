package session

import "fmt"

// PhaseError reports an operation invoked in the wrong phase. The call
// fails but the session is untouched; the caller may invoke the correct
// operation for the current phase.
type PhaseError struct {
	// Op is the operation that was attempted.
	Op string
	// Phase is the phase the session was actually in.
	Phase Phase
	// Round is the index of the round in progress when the call failed.
	Round int
}

func (e *PhaseError) Error() string {
	return fmt.Sprintf("round %d: cannot %s while in the %s phase", e.Round, e.Op, e.Phase)
}

// InvalidSubmissionError reports malformed finding data in a
// submission. The attempt is rejected without advancing the phase, so
// the caller can fix the data and resubmit.
type InvalidSubmissionError struct {
	Phase Phase
	Round int
	Err   error
}

func (e *InvalidSubmissionError) Error() string {
	return fmt.Sprintf("round %d (%s): invalid submission: %v", e.Round, e.Phase, e.Err)
}

func (e *InvalidSubmissionError) Unwrap() error { return e.Err }

// TrivialReflectionError reports a reflection that failed the
// non-genericity gate. The round stays open; the caller re-prompts the
// learner and retries.
type TrivialReflectionError struct {
	Phase  Phase
	Round  int
	Reason string
}

func (e *TrivialReflectionError) Error() string {
	return fmt.Sprintf("round %d: reflection rejected: %s", e.Round, e.Reason)
}
