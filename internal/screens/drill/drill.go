package drill

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/google/uuid"

	"github.com/reviewgym/reviewgym/internal/challenge"
	"github.com/reviewgym/reviewgym/internal/coach"
	"github.com/reviewgym/reviewgym/internal/coverage"
	"github.com/reviewgym/reviewgym/internal/finding"
	"github.com/reviewgym/reviewgym/internal/history"
	"github.com/reviewgym/reviewgym/internal/router"
	"github.com/reviewgym/reviewgym/internal/screen"
	"github.com/reviewgym/reviewgym/internal/scoring"
	"github.com/reviewgym/reviewgym/internal/session"
	"github.com/reviewgym/reviewgym/internal/store"
	"github.com/reviewgym/reviewgym/internal/ui/components"
	"github.com/reviewgym/reviewgym/internal/ui/layout"
)

// seedLimit is how many persisted rounds a fresh engine replays into its
// history on start.
const seedLimit = 20

// snapshotKeep is how many learner snapshots survive pruning.
const snapshotKeep = 5

type mode int

const (
	modeLoading mode = iota
	modeReview
	modeScorecard
	modeReflect
	modeSealed
	modeQuitConfirm
)

// Deps carries everything a drill needs from the host process.
type Deps struct {
	Events    store.EventRepo
	Snapshots store.SnapshotRepo

	// NewProvider builds the challenge provider for one session, keyed
	// by session ID so served challenges land in the event log.
	NewProvider func(sessionID string) challenge.Provider

	// Engine is the base session configuration; StartDifficulty and
	// PriorRounds are filled from persisted state on init.
	Engine session.Config

	// Coach produces per-round advice. Optional.
	Coach *coach.Service
}

// DrillScreen drives the challenge / attempt / compare / reflect cycle
// for one sitting.
type DrillScreen struct {
	deps      Deps
	engine    *session.Engine
	sessionID string
	started   time.Time

	mode mode

	view      *session.ChallengeView
	card      *scoring.Scorecard
	findings  []finding.Finding
	input     components.TextInput
	inputErr  string
	generated bool

	sealed     *history.Round
	advice     *coach.Advice
	llmNote    *coach.Advice
	levelFrom  int
	levelTo    int
	reflectErr string

	errMsg string
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a drill screen. The engine is built asynchronously in Init.
func New(deps Deps) *DrillScreen {
	return &DrillScreen{
		deps:  deps,
		mode:  modeLoading,
		input: components.NewTextInput("category | severity | location | description", 0),
	}
}

func (s *DrillScreen) Init() tea.Cmd {
	return tea.Batch(s.initEngine(), s.input.Init())
}

func (s *DrillScreen) Title() string {
	return "Drill"
}

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	switch s.mode {
	case modeQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	case modeReview:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Add finding"},
			{Key: "Enter (empty)", Description: "Submit"},
			{Key: "Ctrl+U", Description: "Drop last"},
			{Key: "Esc", Description: "Quit"},
		}
	case modeScorecard:
		return []layout.KeyHint{
			{Key: "any key", Description: "Reflect"},
		}
	case modeReflect:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit reflection"},
		}
	case modeSealed:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next round"},
			{Key: "Esc", Description: "End session"},
		}
	}
	return nil
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case drillInitMsg:
		return s.handleInit(msg)

	case challengeReadyMsg:
		return s.handleChallengeReady(msg)

	case roundSealedMsg:
		return s.handleRoundSealed(msg)

	case coachNoteMsg:
		if s.mode == modeSealed {
			s.llmNote = msg.Advice
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.mode == modeReview || s.mode == modeReflect {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

// initEngine restores learner state and builds the session engine.
func (s *DrillScreen) initEngine() tea.Cmd {
	deps := s.deps
	return func() tea.Msg {
		ctx := context.Background()

		records, err := deps.Events.RecentRounds(ctx, seedLimit)
		if err != nil {
			return drillInitMsg{Err: fmt.Errorf("loading round history: %w", err)}
		}

		cfg := deps.Engine
		if cfg.StartDifficulty == 0 {
			snap, err := deps.Snapshots.Latest(ctx)
			if err != nil {
				return drillInitMsg{Err: fmt.Errorf("loading snapshot: %w", err)}
			}
			if snap != nil {
				cfg.StartDifficulty = snap.Data.Difficulty
			}
		}
		cfg.PriorRounds = make([]history.Round, len(records))
		for i, rec := range records {
			cfg.PriorRounds[i] = rec.Round()
		}

		sessionID := uuid.NewString()
		eng := session.New(deps.NewProvider(sessionID), cfg)

		if err := deps.Events.AppendSessionEvent(ctx, store.SessionEventData{
			SessionID:       sessionID,
			Action:          "start",
			StartDifficulty: eng.Difficulty(),
		}); err != nil {
			log.Printf("WARNING: session start not logged: %v", err)
		}

		return drillInitMsg{Engine: eng, SessionID: sessionID}
	}
}

func (s *DrillScreen) handleInit(msg drillInitMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.engine = msg.Engine
	s.sessionID = msg.SessionID
	s.started = time.Now()
	return s, s.generateChallenge()
}

// generateChallenge asks the engine for the next challenge asynchronously.
func (s *DrillScreen) generateChallenge() tea.Cmd {
	eng := s.engine
	return func() tea.Msg {
		view, err := eng.Challenge(context.Background())
		if err != nil {
			return challengeReadyMsg{Err: err}
		}
		return challengeReadyMsg{View: view}
	}
}

func (s *DrillScreen) handleChallengeReady(msg challengeReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.view = msg.View
	s.card = nil
	s.sealed = nil
	s.advice = nil
	s.llmNote = nil
	s.findings = nil
	s.inputErr = ""
	s.reflectErr = ""
	s.input = components.NewTextInput("category | severity | location | description", 0)
	s.mode = modeReview
	return s, s.input.Init()
}

func (s *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state: any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}

	switch s.mode {
	case modeQuitConfirm:
		switch key {
		case "y", "Y":
			return s.endSession()
		case "n", "N", "esc":
			s.mode = modeReview
		}
		return s, nil

	case modeReview:
		switch key {
		case "esc":
			s.mode = modeQuitConfirm
			return s, nil
		case "ctrl+u":
			if len(s.findings) > 0 {
				s.findings = s.findings[:len(s.findings)-1]
			}
			return s, nil
		case "enter":
			return s.submitLine()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case modeScorecard:
		s.mode = modeReflect
		s.input = components.NewTextInput("What did you miss, and why?", 0)
		return s, s.input.Init()

	case modeReflect:
		if key == "enter" {
			return s.submitReflection()
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd

	case modeSealed:
		switch key {
		case "esc":
			return s.endSession()
		case "enter", "n":
			s.mode = modeLoading
			return s, s.generateChallenge()
		}
		return s, nil
	}

	return s, nil
}

// submitLine either adds one finding or, on empty input, submits the
// whole attempt and scores it.
func (s *DrillScreen) submitLine() (screen.Screen, tea.Cmd) {
	text := strings.TrimSpace(s.input.Value())

	if text == "" {
		if err := s.engine.Attempt(s.findings); err != nil {
			s.inputErr = err.Error()
			return s, nil
		}
		card, err := s.engine.Compare()
		if err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		s.card = card
		s.inputErr = ""
		s.mode = modeScorecard
		return s, nil
	}

	f, err := parseFinding(text)
	if err != nil {
		s.inputErr = err.Error()
		s.input.Submit(false)
		return s, nil
	}

	s.findings = append(s.findings, f)
	s.inputErr = ""
	s.input.Reset()
	return s, nil
}

// parseFinding parses "category | severity | location | description".
func parseFinding(text string) (finding.Finding, error) {
	parts := strings.Split(text, "|")
	if len(parts) != 4 {
		return finding.Finding{}, errors.New("expected: category | severity | location | description")
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	f := finding.Finding{
		Category:    parts[0],
		Severity:    finding.Severity(strings.ToLower(parts[1])),
		Location:    parts[2],
		Description: parts[3],
	}
	if err := finding.Validate(f, false); err != nil {
		return finding.Finding{}, err
	}
	return f, nil
}

func (s *DrillScreen) submitReflection() (screen.Screen, tea.Cmd) {
	text := strings.TrimSpace(s.input.Value())
	s.levelFrom = s.engine.Difficulty()

	round, err := s.engine.Reflect(text)
	if err != nil {
		var trivial *session.TrivialReflectionError
		if errors.As(err, &trivial) {
			s.reflectErr = trivial.Reason
			s.input.Submit(false)
			return s, nil
		}
		s.errMsg = err.Error()
		return s, nil
	}

	s.levelTo = s.engine.Difficulty()
	s.reflectErr = ""
	s.mode = modeLoading
	return s, s.sealRound(round)
}

// sealRound persists the round and asks the coach for advice. The
// LLM note, if any, arrives later over noteCh.
func (s *DrillScreen) sealRound(round *history.Round) tea.Cmd {
	deps := s.deps
	eng := s.engine
	sessionID := s.sessionID
	challengeID := ""
	title := ""
	language := ""
	if s.view != nil {
		challengeID = s.view.ID
		title = s.view.Title
		language = s.view.Language
	}

	noteCh := make(chan *coach.Advice, 1)

	sealCmd := func() tea.Msg {
		ctx := context.Background()

		if err := deps.Events.AppendRoundEvent(ctx, store.RoundEventData{
			SessionID:    sessionID,
			ChallengeID:  challengeID,
			RoundIndex:   round.Index,
			Difficulty:   round.Difficulty,
			CategoryTags: round.CategoryTags,
			Reflection:   round.ReflectionText,
			Scorecard:    round.Scorecard,
		}); err != nil {
			log.Printf("WARNING: round not persisted: %v", err)
		}

		saveSnapshot(ctx, deps, eng)

		var advice *coach.Advice
		if deps.Coach != nil {
			var weak []string
			for _, st := range eng.CoverageSnapshot() {
				if st.Status == coverage.StatusWeak {
					weak = append(weak, st.Category)
				}
			}
			advice = deps.Coach.Review(ctx, round, weak, title, language, func(note *coach.Advice) {
				select {
				case noteCh <- note:
				default:
				}
			})
		}

		return roundSealedMsg{Round: round, Advice: advice}
	}

	waitCmd := func() tea.Msg {
		select {
		case note := <-noteCh:
			if note != nil {
				return coachNoteMsg{Advice: note}
			}
		case <-time.After(45 * time.Second):
		}
		return nil
	}

	return tea.Batch(sealCmd, waitCmd)
}

func saveSnapshot(ctx context.Context, deps Deps, eng *session.Engine) {
	seq, err := deps.Events.LastSequence(ctx)
	if err != nil {
		log.Printf("WARNING: snapshot sequence unavailable: %v", err)
		return
	}
	snap := &store.Snapshot{
		Sequence:  seq,
		Timestamp: time.Now(),
		Data: store.SnapshotData{
			Version:      1,
			Difficulty:   eng.Difficulty(),
			RoundsPlayed: eng.RoundIndex(),
		},
	}
	if err := deps.Snapshots.Save(ctx, snap); err != nil {
		log.Printf("WARNING: snapshot not saved: %v", err)
		return
	}
	if err := deps.Snapshots.Prune(ctx, snapshotKeep); err != nil {
		log.Printf("WARNING: snapshot prune failed: %v", err)
	}
}

func (s *DrillScreen) handleRoundSealed(msg roundSealedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.sealed = msg.Round
	s.advice = msg.Advice
	s.mode = modeSealed
	return s, nil
}

// endSession writes the end event and pops back to home.
func (s *DrillScreen) endSession() (screen.Screen, tea.Cmd) {
	if s.engine != nil {
		err := s.deps.Events.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:       s.sessionID,
			Action:          "end",
			RoundsPlayed:    s.engine.RoundIndex(),
			FinalDifficulty: s.engine.Difficulty(),
			DurationSecs:    int(time.Since(s.started).Seconds()),
		})
		if err != nil {
			log.Printf("WARNING: session end not logged: %v", err)
		}
	}
	return s, func() tea.Msg { return router.PopScreenMsg{} }
}
