package drill

import (
	"github.com/reviewgym/reviewgym/internal/coach"
	"github.com/reviewgym/reviewgym/internal/history"
	"github.com/reviewgym/reviewgym/internal/session"
)

// drillInitMsg is sent when the engine has been built from persisted
// learner state.
type drillInitMsg struct {
	Engine    *session.Engine
	SessionID string
	Err       error
}

// challengeReadyMsg is sent when a challenge has been generated.
type challengeReadyMsg struct {
	View *session.ChallengeView
	Err  error
}

// roundSealedMsg is sent when a reflection was accepted and the round
// appended to history.
type roundSealedMsg struct {
	Round  *history.Round
	Advice *coach.Advice
	Err    error
}

// coachNoteMsg delivers an async LLM coaching note for the sealed round.
type coachNoteMsg struct {
	Advice *coach.Advice
}
