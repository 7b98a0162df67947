package session

// Phase is the engine's position in the challenge cycle. Phases only
// ever advance Challenge -> Attempt -> Compare -> Reflect and then wrap
// back to Challenge; there is no terminal phase.
type Phase string

const (
	// PhaseChallenge means the engine is ready to issue the next
	// challenge. Entry and re-entry point of every cycle.
	PhaseChallenge Phase = "challenge"
	// PhaseAttempt means a challenge is out and the engine is waiting
	// for the learner's submission.
	PhaseAttempt Phase = "attempt"
	// PhaseCompare means a submission is in and ready to be scored.
	PhaseCompare Phase = "compare"
	// PhaseReflect means the round is scored and waiting for a
	// non-trivial reflection before it can be sealed.
	PhaseReflect Phase = "reflect"
)

// String returns the phase name.
func (p Phase) String() string { return string(p) }

// Next returns the phase that follows p in the cycle.
func (p Phase) Next() Phase {
	switch p {
	case PhaseChallenge:
		return PhaseAttempt
	case PhaseAttempt:
		return PhaseCompare
	case PhaseCompare:
		return PhaseReflect
	default:
		return PhaseChallenge
	}
}
