package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/reviewgym/reviewgym/internal/calibration"
	"github.com/reviewgym/reviewgym/internal/catalog"
	"github.com/reviewgym/reviewgym/internal/challenge"
	"github.com/reviewgym/reviewgym/internal/coverage"
	"github.com/reviewgym/reviewgym/internal/finding"
	"github.com/reviewgym/reviewgym/internal/history"
	"github.com/reviewgym/reviewgym/internal/scoring"
	"github.com/reviewgym/reviewgym/internal/selector"
)

// Config parameterizes one session engine. Every threshold lives here
// so sessions can be tuned and tested independently; nothing in the
// engine is process-global. The zero value is usable.
type Config struct {
	// StartDifficulty is the level of the first challenge (default 1).
	StartDifficulty int

	// Matcher decides finding equivalence during scoring
	// (default finding.DefaultMatcher).
	Matcher finding.Matcher

	// Calibration, Coverage and Reflection tune the respective rules.
	Calibration calibration.Config
	Coverage    coverage.Config
	Reflection  ReflectionConfig

	// KnownCategories is the vocabulary the selector rotates through
	// (default: the full catalog).
	KnownCategories []string

	// PriorRounds seeds the history when resuming a learner from a
	// previous process. Ordered oldest first.
	PriorRounds []history.Round
}

// ChallengeView is what the learner gets to see: the artifact under
// review and its framing, never the answer key.
type ChallengeView struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Language   string   `json:"language"`
	PromptText string   `json:"prompt_text"`
	Difficulty int      `json:"difficulty"`
	Categories []string `json:"categories"`
}

// Engine drives the four-phase challenge cycle for exactly one learner
// session. Phases are strictly sequential and the engine holds no
// internal concurrency; concurrent learners each get their own Engine.
type Engine struct {
	provider   challenge.Provider
	matcher    finding.Matcher
	calibrator *calibration.Calibrator
	tracker    *coverage.Tracker
	selector   *selector.Selector
	reflection ReflectionConfig

	hist       *history.History
	phase      Phase
	difficulty int

	// pending holds the live challenge including its ground truth.
	// Only the scoring path in Compare reads the ground truth; the
	// caller-facing view from Challenge omits it.
	pending    *challenge.Challenge
	submission []finding.Finding

	// draft is the round under construction: created when the
	// submission is scored, sealed and appended when the reflection is
	// accepted.
	draft *history.Round
}

// New builds an engine in the Challenge phase.
func New(provider challenge.Provider, cfg Config) *Engine {
	if cfg.StartDifficulty < calibration.MinLevel || cfg.StartDifficulty > calibration.MaxLevel {
		cfg.StartDifficulty = calibration.MinLevel
	}
	if cfg.Matcher == nil {
		cfg.Matcher = finding.DefaultMatcher
	}
	if len(cfg.KnownCategories) == 0 {
		cfg.KnownCategories = catalog.IDs()
	}

	hist := history.New()
	if len(cfg.PriorRounds) > 0 {
		hist = history.Seed(cfg.PriorRounds)
	}

	return &Engine{
		provider:   provider,
		matcher:    cfg.Matcher,
		calibrator: calibration.New(cfg.Calibration),
		tracker:    coverage.New(cfg.Coverage),
		selector:   selector.New(cfg.KnownCategories),
		reflection: cfg.Reflection.withDefaults(),
		hist:       hist,
		phase:      PhaseChallenge,
		difficulty: cfg.StartDifficulty,
	}
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase { return e.phase }

// Difficulty returns the current difficulty level.
func (e *Engine) Difficulty() int { return e.difficulty }

// RoundIndex returns the index of the round in progress, which equals
// the number of sealed rounds so far.
func (e *Engine) RoundIndex() int { return e.hist.Len() }

// Rounds returns a copy of every sealed round, oldest first.
func (e *Engine) Rounds() []history.Round { return e.hist.All() }

// CoverageSnapshot summarizes per-category standing across the sealed
// rounds, for stats views and reports.
func (e *Engine) CoverageSnapshot() []coverage.CategoryStat {
	return e.tracker.Snapshot(e.hist)
}

// Challenge recalibrates difficulty from history, asks the provider for
// a matching challenge, and advances to the Attempt phase. Valid only
// in the Challenge phase. On provider failure the engine stays in the
// Challenge phase so the caller can retry.
func (e *Engine) Challenge(ctx context.Context) (*ChallengeView, error) {
	if e.phase != PhaseChallenge {
		return nil, &PhaseError{Op: "issue a challenge", Phase: e.phase, Round: e.hist.Len()}
	}

	next := e.calibrator.Next(e.hist, e.difficulty)
	weak := e.tracker.WeakCategories(e.hist)
	strong := e.tracker.StrongCategories(e.hist)
	req := e.selector.Select(e.hist, next, weak, strong)

	ch, err := e.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generating challenge for round %d: %w", e.hist.Len(), err)
	}

	e.difficulty = next
	e.pending = ch
	e.phase = PhaseAttempt

	return &ChallengeView{
		ID:         ch.ID,
		Title:      ch.Title,
		Language:   ch.Language,
		PromptText: ch.PromptText,
		Difficulty: next,
		Categories: ch.Categories(),
	}, nil
}

// Attempt stores the learner's submission and advances to the Compare
// phase. Valid only in the Attempt phase. A malformed submission is
// rejected without advancing, so the caller can fix it and resubmit.
// Scoring is deferred to Compare.
func (e *Engine) Attempt(submission []finding.Finding) error {
	if e.phase != PhaseAttempt {
		return &PhaseError{Op: "submit an attempt", Phase: e.phase, Round: e.hist.Len()}
	}

	if _, err := finding.ValidateAll(submission, false); err != nil {
		return &InvalidSubmissionError{Phase: e.phase, Round: e.hist.Len(), Err: err}
	}

	e.submission = make([]finding.Finding, len(submission))
	copy(e.submission, submission)
	e.phase = PhaseCompare
	return nil
}

// Compare scores the stored submission against the hidden ground
// truth, creates the round draft, and advances to the Reflect phase.
// The ground truth and submission are discarded here; only the
// scorecard survives. Calling Compare again before Reflect returns the
// same cached scorecard instead of rescoring.
func (e *Engine) Compare() (*scoring.Scorecard, error) {
	if e.phase == PhaseReflect && e.draft != nil {
		return e.draft.Scorecard, nil
	}
	if e.phase != PhaseCompare {
		return nil, &PhaseError{Op: "compare", Phase: e.phase, Round: e.hist.Len()}
	}

	card, err := scoring.ScoreWithTraps(e.submission, e.pending.GroundTruth, e.pending.Traps, e.matcher)
	if err != nil {
		var scoreErr *scoring.InvalidSubmissionError
		if errors.As(err, &scoreErr) {
			return nil, &InvalidSubmissionError{Phase: e.phase, Round: e.hist.Len(), Err: scoreErr}
		}
		return nil, fmt.Errorf("scoring round %d: %w", e.hist.Len(), err)
	}

	e.draft = &history.Round{
		Index:        e.hist.Len(),
		Difficulty:   e.pending.Difficulty,
		CategoryTags: e.pending.Categories(),
		Scorecard:    card,
	}
	e.pending = nil
	e.submission = nil
	e.phase = PhaseReflect
	return card, nil
}

// Reflect validates the learner's reflection, seals the round, appends
// it to history, and re-enters the Challenge phase. Valid only in the
// Reflect phase. A trivial reflection leaves the round open so the
// caller can re-prompt and retry.
func (e *Engine) Reflect(text string) (*history.Round, error) {
	if e.phase != PhaseReflect {
		return nil, &PhaseError{Op: "reflect", Phase: e.phase, Round: e.hist.Len()}
	}
	if reason := reflectionIssue(text, e.reflection); reason != "" {
		return nil, &TrivialReflectionError{Phase: e.phase, Round: e.hist.Len(), Reason: reason}
	}

	e.draft.ReflectionText = text
	sealed := *e.draft
	e.hist.Append(sealed)
	e.draft = nil
	e.phase = PhaseChallenge
	return &sealed, nil
}
