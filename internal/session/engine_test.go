package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/reviewgym/reviewgym/internal/challenge"
	"github.com/reviewgym/reviewgym/internal/finding"
	"github.com/reviewgym/reviewgym/internal/history"
	"github.com/reviewgym/reviewgym/internal/scoring"
)

const goodReflection = "I pattern-matched on the sanitize helper's name and never checked that it actually escapes single quotes."

// stubProvider returns canned challenges and records the selection
// requests the engine sends it.
type stubProvider struct {
	reqs  []challenge.SelectionRequest
	err   error
	build func(req challenge.SelectionRequest) *challenge.Challenge
}

func (p *stubProvider) Generate(_ context.Context, req challenge.SelectionRequest) (*challenge.Challenge, error) {
	p.reqs = append(p.reqs, req)
	if p.err != nil {
		return nil, p.err
	}
	if p.build != nil {
		return p.build(req), nil
	}
	return twoFindingChallenge(req.Difficulty), nil
}

func twoFindingChallenge(difficulty int) *challenge.Challenge {
	return &challenge.Challenge{
		ID:         fmt.Sprintf("ch-%d", difficulty),
		Title:      "Login handler",
		Language:   "go",
		PromptText: "func login(w http.ResponseWriter, r *http.Request) { ... }",
		Difficulty: difficulty,
		GroundTruth: []finding.Finding{
			{ID: "gt-1", Category: "injection", Severity: finding.SeverityHigh, Location: "login.go:14"},
			{ID: "gt-2", Category: "access-control", Severity: finding.SeverityCritical, Location: "login.go:31"},
		},
	}
}

func fullSubmission() []finding.Finding {
	return []finding.Finding{
		{ID: "gt-1", Category: "injection", Severity: finding.SeverityHigh, Location: "login.go:14"},
		{ID: "gt-2", Category: "access-control", Severity: finding.SeverityCritical, Location: "login.go:31"},
	}
}

// playRound runs one full cycle with a perfect submission.
func playRound(t *testing.T, e *Engine) {
	t.Helper()
	if _, err := e.Challenge(context.Background()); err != nil {
		t.Fatalf("Challenge() error = %v", err)
	}
	if err := e.Attempt(fullSubmission()); err != nil {
		t.Fatalf("Attempt() error = %v", err)
	}
	if _, err := e.Compare(); err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if _, err := e.Reflect(goodReflection); err != nil {
		t.Fatalf("Reflect() error = %v", err)
	}
}

func TestEngine_CycleAdvancesPhases(t *testing.T) {
	e := New(&stubProvider{}, Config{})

	if e.Phase() != PhaseChallenge {
		t.Fatalf("initial phase = %s, want challenge", e.Phase())
	}

	view, err := e.Challenge(context.Background())
	if err != nil {
		t.Fatalf("Challenge() error = %v", err)
	}
	if e.Phase() != PhaseAttempt {
		t.Errorf("phase after Challenge = %s, want attempt", e.Phase())
	}
	if view.PromptText == "" || view.Difficulty != 1 {
		t.Errorf("view = %+v, want prompt text at difficulty 1", view)
	}

	if err := e.Attempt(fullSubmission()); err != nil {
		t.Fatalf("Attempt() error = %v", err)
	}
	if e.Phase() != PhaseCompare {
		t.Errorf("phase after Attempt = %s, want compare", e.Phase())
	}

	card, err := e.Compare()
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if e.Phase() != PhaseReflect {
		t.Errorf("phase after Compare = %s, want reflect", e.Phase())
	}
	if card.TP() != 2 || card.F1 != 1.0 {
		t.Errorf("scorecard TP/F1 = %d/%f, want 2/1.0", card.TP(), card.F1)
	}

	round, err := e.Reflect(goodReflection)
	if err != nil {
		t.Fatalf("Reflect() error = %v", err)
	}
	if e.Phase() != PhaseChallenge {
		t.Errorf("phase after Reflect = %s, want challenge", e.Phase())
	}
	if round.Index != 0 || round.ReflectionText != goodReflection {
		t.Errorf("sealed round = %+v, want index 0 with reflection", round)
	}
	if len(e.Rounds()) != 1 {
		t.Errorf("history length = %d, want 1", len(e.Rounds()))
	}
}

func TestEngine_PhaseErrors(t *testing.T) {
	e := New(&stubProvider{}, Config{})
	ctx := context.Background()

	var phaseErr *PhaseError

	// Challenge phase: only Challenge is legal.
	if err := e.Attempt(nil); !errors.As(err, &phaseErr) {
		t.Errorf("Attempt in challenge phase error = %v, want *PhaseError", err)
	}
	if _, err := e.Compare(); !errors.As(err, &phaseErr) {
		t.Errorf("Compare in challenge phase error = %v, want *PhaseError", err)
	}
	if _, err := e.Reflect(goodReflection); !errors.As(err, &phaseErr) {
		t.Errorf("Reflect in challenge phase error = %v, want *PhaseError", err)
	}

	// Attempt phase: a second Challenge is illegal.
	if _, err := e.Challenge(ctx); err != nil {
		t.Fatalf("Challenge() error = %v", err)
	}
	if _, err := e.Challenge(ctx); !errors.As(err, &phaseErr) {
		t.Errorf("Challenge in attempt phase error = %v, want *PhaseError", err)
	}
	if phaseErr.Phase != PhaseAttempt {
		t.Errorf("PhaseError.Phase = %s, want attempt", phaseErr.Phase)
	}

	// A failed call leaves the session intact.
	if err := e.Attempt(fullSubmission()); err != nil {
		t.Errorf("Attempt after PhaseError = %v, want nil", err)
	}
}

func TestEngine_CompareIsIdempotent(t *testing.T) {
	e := New(&stubProvider{}, Config{})
	if _, err := e.Challenge(context.Background()); err != nil {
		t.Fatalf("Challenge() error = %v", err)
	}
	if err := e.Attempt(fullSubmission()); err != nil {
		t.Fatalf("Attempt() error = %v", err)
	}

	first, err := e.Compare()
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	second, err := e.Compare()
	if err != nil {
		t.Fatalf("repeat Compare() error = %v", err)
	}
	if first != second {
		t.Error("repeat Compare returned a different scorecard, want the cached one")
	}
}

func TestEngine_AttemptRejectsMalformedWithoutAdvancing(t *testing.T) {
	e := New(&stubProvider{}, Config{})
	if _, err := e.Challenge(context.Background()); err != nil {
		t.Fatalf("Challenge() error = %v", err)
	}

	bad := []finding.Finding{
		{Category: "injection", Severity: "catastrophic", Location: "a.go:1"},
	}
	err := e.Attempt(bad)
	var subErr *InvalidSubmissionError
	if !errors.As(err, &subErr) {
		t.Fatalf("Attempt(bad) error = %v, want *InvalidSubmissionError", err)
	}
	if subErr.Round != 0 || subErr.Phase != PhaseAttempt {
		t.Errorf("error round/phase = %d/%s, want 0/attempt", subErr.Round, subErr.Phase)
	}
	if e.Phase() != PhaseAttempt {
		t.Errorf("phase after rejected attempt = %s, want attempt", e.Phase())
	}

	// Corrected resubmission goes through.
	if err := e.Attempt(fullSubmission()); err != nil {
		t.Errorf("corrected Attempt() error = %v", err)
	}
}

func TestEngine_TrivialReflectionKeepsRoundOpen(t *testing.T) {
	e := New(&stubProvider{}, Config{})
	if _, err := e.Challenge(context.Background()); err != nil {
		t.Fatalf("Challenge() error = %v", err)
	}
	if err := e.Attempt(nil); err != nil {
		t.Fatalf("Attempt() error = %v", err)
	}
	if _, err := e.Compare(); err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	var trivial *TrivialReflectionError
	if _, err := e.Reflect("be more careful"); !errors.As(err, &trivial) {
		t.Fatalf("Reflect(stock phrase) error = %v, want *TrivialReflectionError", err)
	}
	if e.Phase() != PhaseReflect {
		t.Errorf("phase after rejected reflection = %s, want reflect", e.Phase())
	}
	if len(e.Rounds()) != 0 {
		t.Errorf("history length = %d, want 0 (round not sealed)", len(e.Rounds()))
	}

	if _, err := e.Reflect(goodReflection); err != nil {
		t.Fatalf("retry Reflect() error = %v", err)
	}
	if len(e.Rounds()) != 1 {
		t.Errorf("history length = %d, want 1", len(e.Rounds()))
	}
}

func TestEngine_RoundAppendedExactlyOncePerCycle(t *testing.T) {
	e := New(&stubProvider{}, Config{})
	playRound(t, e)
	playRound(t, e)

	rounds := e.Rounds()
	if len(rounds) != 2 {
		t.Fatalf("history length = %d, want 2", len(rounds))
	}
	if rounds[0].Index != 0 || rounds[1].Index != 1 {
		t.Errorf("round indexes = %d,%d, want 0,1", rounds[0].Index, rounds[1].Index)
	}
}

func TestEngine_DifficultyAdvancesAfterStrongRounds(t *testing.T) {
	provider := &stubProvider{}
	e := New(provider, Config{})

	// Three perfect rounds at level 1 clear the advance gates.
	for i := 0; i < 3; i++ {
		playRound(t, e)
	}
	view, err := e.Challenge(context.Background())
	if err != nil {
		t.Fatalf("Challenge() error = %v", err)
	}
	if view.Difficulty != 2 {
		t.Errorf("difficulty after 3 strong rounds = %d, want 2", view.Difficulty)
	}
	if e.Difficulty() != 2 {
		t.Errorf("Difficulty() = %d, want 2", e.Difficulty())
	}
}

func TestEngine_WeakCategoriesForcedIntoRequest(t *testing.T) {
	provider := &stubProvider{}
	e := New(provider, Config{})

	// Three rounds where the learner finds nothing: every planted
	// category trends weak.
	for i := 0; i < 3; i++ {
		if _, err := e.Challenge(context.Background()); err != nil {
			t.Fatalf("Challenge() error = %v", err)
		}
		if err := e.Attempt(nil); err != nil {
			t.Fatalf("Attempt() error = %v", err)
		}
		if _, err := e.Compare(); err != nil {
			t.Fatalf("Compare() error = %v", err)
		}
		if _, err := e.Reflect(goodReflection); err != nil {
			t.Fatalf("Reflect() error = %v", err)
		}
	}

	if _, err := e.Challenge(context.Background()); err != nil {
		t.Fatalf("Challenge() error = %v", err)
	}
	req := provider.reqs[len(provider.reqs)-1]
	found := make(map[string]bool)
	for _, cat := range req.RequiredCategories {
		found[cat] = true
	}
	if !found["injection"] || !found["access-control"] {
		t.Errorf("RequiredCategories = %v, want both weak categories", req.RequiredCategories)
	}
}

func TestEngine_ProviderFailureLeavesChallengePhase(t *testing.T) {
	provider := &stubProvider{err: errors.New("model unavailable")}
	e := New(provider, Config{})

	if _, err := e.Challenge(context.Background()); err == nil {
		t.Fatal("Challenge() = nil error, want provider failure")
	}
	if e.Phase() != PhaseChallenge {
		t.Errorf("phase after provider failure = %s, want challenge", e.Phase())
	}

	provider.err = nil
	if _, err := e.Challenge(context.Background()); err != nil {
		t.Errorf("retry Challenge() error = %v", err)
	}
}

func TestEngine_ResumeFromPriorRounds(t *testing.T) {
	prior := []history.Round{
		{Index: 0, Difficulty: 2, CategoryTags: []string{"injection"}, Scorecard: &scoring.Scorecard{F1: 1, Precision: 1, Recall: 1}},
		{Index: 1, Difficulty: 2, CategoryTags: []string{"logic"}, Scorecard: &scoring.Scorecard{F1: 1, Precision: 1, Recall: 1}},
	}
	e := New(&stubProvider{}, Config{StartDifficulty: 2, PriorRounds: prior})

	if e.RoundIndex() != 2 {
		t.Errorf("RoundIndex() = %d, want 2", e.RoundIndex())
	}
	if e.Difficulty() != 2 {
		t.Errorf("Difficulty() = %d, want 2", e.Difficulty())
	}

	playRound(t, e)
	rounds := e.Rounds()
	if rounds[2].Index != 2 {
		t.Errorf("resumed round index = %d, want 2", rounds[2].Index)
	}
}

func TestEngine_TrapHitsSurfaceInScorecard(t *testing.T) {
	provider := &stubProvider{
		build: func(req challenge.SelectionRequest) *challenge.Challenge {
			ch := twoFindingChallenge(req.Difficulty)
			ch.Traps = []finding.Finding{
				{ID: "trap-1", Category: "injection", Severity: finding.SeverityHigh, Location: "login.go:77"},
			}
			return ch
		},
	}
	e := New(provider, Config{})

	if _, err := e.Challenge(context.Background()); err != nil {
		t.Fatalf("Challenge() error = %v", err)
	}
	sub := append(fullSubmission(), finding.Finding{
		Category: "injection", Severity: finding.SeverityHigh, Location: "login.go:77",
	})
	if err := e.Attempt(sub); err != nil {
		t.Fatalf("Attempt() error = %v", err)
	}
	card, err := e.Compare()
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}
	if len(card.TrapHits) != 1 {
		t.Errorf("TrapHits = %d, want 1", len(card.TrapHits))
	}
	if card.FP() != 1 {
		t.Errorf("FP = %d, want 1 (trap hit still a false positive)", card.FP())
	}
}

func TestEngine_IndependentSessionsDoNotShareState(t *testing.T) {
	a := New(&stubProvider{}, Config{})
	b := New(&stubProvider{}, Config{})

	playRound(t, a)

	if len(b.Rounds()) != 0 {
		t.Error("second engine saw rounds from the first")
	}
	if b.Phase() != PhaseChallenge {
		t.Errorf("second engine phase = %s, want challenge", b.Phase())
	}
}
