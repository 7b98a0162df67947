package coach

import (
	"context"

	"github.com/reviewgym/reviewgym/internal/history"
	"github.com/reviewgym/reviewgym/internal/llm"
)

// Service coordinates coaching using rule-based advisers and optional
// LLM-based notes for rounds the rules have nothing specific to say
// about.
type Service struct {
	advisers []Adviser
	coach    *Coach
	pending  chan adviceJob
}

type adviceJob struct {
	ctx context.Context
	req *CoachRequest
	cb  func(*Advice)
}

// NewService creates a coaching service. If provider is nil, only
// rule-based advice is available.
func NewService(provider llm.Provider) *Service {
	s := &Service{
		advisers: DefaultAdvisers(),
		pending:  make(chan adviceJob, 16),
	}
	if provider != nil {
		s.coach = NewCoach(provider, DefaultCoachConfig())
		go s.processLoop()
	}
	return s
}

// Review produces advice for a sealed round. Rule-based advice is
// synchronous. If no rule applies and an LLM is available, async
// coaching is dispatched and cb fires when the note is ready.
// Returns the synchronous result immediately.
func (s *Service) Review(
	ctx context.Context,
	round *history.Round,
	weakCategories []string,
	title, language string,
	cb func(*Advice),
) *Advice {
	input := &AdviceInput{Round: round, WeakCategories: weakCategories}

	if advice := RunAdvisers(s.advisers, input); advice != nil {
		return advice
	}

	if s.coach != nil && round != nil && round.Scorecard != nil {
		s.dispatchLLM(ctx, round, title, language, cb)
	}

	return &Advice{
		Focus:       FocusGeneral,
		Headline:    "No single weakness stood out this round",
		Detail:      "Keep the level of care consistent; the next challenge raises the subtlety, not the volume.",
		AdviserName: "none",
	}
}

func (s *Service) dispatchLLM(
	ctx context.Context,
	round *history.Round,
	title, language string,
	cb func(*Advice),
) {
	card := round.Scorecard
	req := &CoachRequest{
		Title:       title,
		Language:    language,
		Difficulty:  round.Difficulty,
		Precision:   card.Precision,
		Recall:      card.Recall,
		Missed:      card.FalseNegatives,
		FalseAlarms: card.FalsePositives,
		Reflection:  round.ReflectionText,
	}

	select {
	case s.pending <- adviceJob{ctx: ctx, req: req, cb: cb}:
	default:
		// Channel full, drop the note. Coaching is best-effort.
	}
}

func (s *Service) processLoop() {
	for job := range s.pending {
		advice, err := s.coach.Review(job.ctx, job.req)
		if err != nil || advice == nil {
			continue
		}
		if job.cb != nil {
			job.cb(advice)
		}
	}
}

// Close shuts down the async processing loop.
func (s *Service) Close() {
	close(s.pending)
}
