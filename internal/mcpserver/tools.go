package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/reviewgym/reviewgym/internal/finding"
	"github.com/reviewgym/reviewgym/internal/report"
	"github.com/reviewgym/reviewgym/internal/session"
	"github.com/reviewgym/reviewgym/internal/store"
)

// seedLimit is how many persisted rounds a new session replays into the
// engine's history; enough for every calibration and coverage window.
const seedLimit = 20

// snapshotKeep is how many learner snapshots survive pruning.
const snapshotKeep = 5

// ─── gym_start_session ──────────────────────────────────────────────────────

// StartSessionTool handles the gym_start_session MCP tool.
type StartSessionTool struct {
	deps Deps
	reg  *registry
}

// Definition returns the MCP tool definition for gym_start_session.
func (t *StartSessionTool) Definition() mcp.Tool {
	return mcp.NewTool("gym_start_session",
		mcp.WithDescription(
			"Start a review training session. Resumes difficulty and category coverage "+
				"from the learner's persisted history. Returns a session_id for the other gym tools.",
		),
	)
}

// Handle processes the gym_start_session tool call.
func (t *StartSessionTool) Handle(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := t.deps.Engine

	records, err := t.deps.Events.RecentRounds(ctx, seedLimit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("loading round history: %v", err)), nil
	}
	for _, rec := range records {
		cfg.PriorRounds = append(cfg.PriorRounds, rec.Round())
	}

	if cfg.StartDifficulty == 0 {
		snap, err := t.deps.Snapshots.Latest(ctx)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("loading snapshot: %v", err)), nil
		}
		if snap != nil {
			cfg.StartDifficulty = snap.Data.Difficulty
		}
	}

	ls := t.reg.create(func(sessionID string) *session.Engine {
		return session.New(t.deps.NewProvider(sessionID), cfg)
	})

	err = t.deps.Events.AppendSessionEvent(ctx, store.SessionEventData{
		SessionID:       ls.id,
		Action:          "start",
		StartDifficulty: ls.engine.Difficulty(),
	})
	if err != nil {
		log.Printf("WARNING: failed to log session start: %v", err)
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"Session started.\nsession_id: %s\nDifficulty level: %d\nRounds on record: %d\n\nCall gym_challenge to get the first review exercise.",
		ls.id, ls.engine.Difficulty(), ls.engine.RoundIndex(),
	)), nil
}

// ─── gym_challenge ──────────────────────────────────────────────────────────

// ChallengeTool handles the gym_challenge MCP tool.
type ChallengeTool struct {
	reg *registry
}

// Definition returns the MCP tool definition for gym_challenge.
func (t *ChallengeTool) Definition() mcp.Tool {
	return mcp.NewTool("gym_challenge",
		mcp.WithDescription(
			"Get the next review challenge: a code artifact with planted defects. "+
				"Difficulty and category emphasis are calibrated from recent results. "+
				"The answer key stays hidden until gym_compare.",
		),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("Session ID from gym_start_session"),
		),
	)
}

// Handle processes the gym_challenge tool call.
func (t *ChallengeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ls, errResult := lookupSession(t.reg, req)
	if errResult != nil {
		return errResult, nil
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()

	view, err := ls.engine.Challenge(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ls.challengeID = view.ID

	return mcp.NewToolResultText(fmt.Sprintf(
		"# %s (level %d)\n\nReview the following %s code and submit every defect you find with gym_attempt.\n\n```%s\n%s\n```",
		view.Title, view.Difficulty, view.Language, view.Language, view.PromptText,
	)), nil
}

// ─── gym_attempt ────────────────────────────────────────────────────────────

// AttemptTool handles the gym_attempt MCP tool.
type AttemptTool struct {
	reg *registry
}

// attemptFinding is the wire form of one submitted finding.
type attemptFinding struct {
	Category    string `json:"category"`
	Severity    string `json:"severity"`
	Location    string `json:"location"`
	Description string `json:"description,omitempty"`
}

// Definition returns the MCP tool definition for gym_attempt.
func (t *AttemptTool) Definition() mcp.Tool {
	return mcp.NewTool("gym_attempt",
		mcp.WithDescription(
			"Submit review findings for the current challenge. Findings are a JSON array of "+
				`{"category", "severity", "location", "description"} objects; severity is one of `+
				"critical, high, medium, low. An empty array is a valid submission.",
		),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("Session ID from gym_start_session"),
		),
		mcp.WithString("findings",
			mcp.Required(),
			mcp.Description(`JSON array of findings, e.g. [{"category":"injection","severity":"high","location":"db.go:42","description":"query built by concatenation"}]`),
		),
	)
}

// Handle processes the gym_attempt tool call.
func (t *AttemptTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ls, errResult := lookupSession(t.reg, req)
	if errResult != nil {
		return errResult, nil
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()

	raw := req.GetString("findings", "")
	if raw == "" {
		return mcp.NewToolResultError("'findings' is required (use [] for an empty submission)"), nil
	}

	var parsed []attemptFinding
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("findings is not a JSON array: %v", err)), nil
	}

	submission := make([]finding.Finding, len(parsed))
	for i, p := range parsed {
		submission[i] = finding.Finding{
			Category:    p.Category,
			Severity:    finding.Severity(p.Severity),
			Location:    p.Location,
			Description: p.Description,
		}
	}

	if err := ls.engine.Attempt(submission); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf(
		"Submission of %d finding(s) accepted. Call gym_compare to score it against the answer key.",
		len(submission),
	)), nil
}

// ─── gym_compare ────────────────────────────────────────────────────────────

// CompareTool handles the gym_compare MCP tool.
type CompareTool struct {
	reg *registry
}

// Definition returns the MCP tool definition for gym_compare.
func (t *CompareTool) Definition() mcp.Tool {
	return mcp.NewTool("gym_compare",
		mcp.WithDescription(
			"Score the submitted findings against the hidden answer key. Returns the full "+
				"scorecard: precision, recall, F1, and what was found, missed, or flagged wrongly. "+
				"Finish the round with gym_reflect.",
		),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("Session ID from gym_start_session"),
		),
	)
}

// Handle processes the gym_compare tool call.
func (t *CompareTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ls, errResult := lookupSession(t.reg, req)
	if errResult != nil {
		return errResult, nil
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()

	card, err := ls.engine.Compare()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(report.Scorecard(card)), nil
}

// ─── gym_reflect ────────────────────────────────────────────────────────────

// ReflectTool handles the gym_reflect MCP tool.
type ReflectTool struct {
	deps Deps
	reg  *registry
}

// Definition returns the MCP tool definition for gym_reflect.
func (t *ReflectTool) Definition() mcp.Tool {
	return mcp.NewTool("gym_reflect",
		mcp.WithDescription(
			"Close the round with a reflection on what the review missed and why. Generic "+
				"phrases (\"be more careful\") are rejected; name the specific gap in the review "+
				"process. Seals the round and persists it.",
		),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("Session ID from gym_start_session"),
		),
		mcp.WithString("reflection",
			mcp.Required(),
			mcp.Description("What specifically went wrong this round and what to change next round"),
		),
	)
}

// Handle processes the gym_reflect tool call.
func (t *ReflectTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ls, errResult := lookupSession(t.reg, req)
	if errResult != nil {
		return errResult, nil
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()

	text := req.GetString("reflection", "")
	round, err := ls.engine.Reflect(text)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	err = t.deps.Events.AppendRoundEvent(ctx, store.RoundEventData{
		SessionID:    ls.id,
		ChallengeID:  ls.challengeID,
		RoundIndex:   round.Index,
		Difficulty:   round.Difficulty,
		CategoryTags: round.CategoryTags,
		Reflection:   round.ReflectionText,
		Scorecard:    round.Scorecard,
	})
	if err != nil {
		log.Printf("WARNING: failed to persist round: %v", err)
	}
	t.saveSnapshot(ctx, ls)

	return mcp.NewToolResultText(fmt.Sprintf(
		"Round %d sealed at level %d (F1 %.0f%%). Call gym_challenge for the next round.",
		round.Index+1, round.Difficulty, round.Scorecard.F1*100,
	)), nil
}

func (t *ReflectTool) saveSnapshot(ctx context.Context, ls *liveSession) {
	seq, err := t.deps.Events.LastSequence(ctx)
	if err != nil {
		log.Printf("WARNING: failed to read sequence for snapshot: %v", err)
		return
	}
	err = t.deps.Snapshots.Save(ctx, &store.Snapshot{
		Sequence:  seq,
		Timestamp: time.Now().UTC(),
		Data: store.SnapshotData{
			Version:      1,
			Difficulty:   ls.engine.Difficulty(),
			RoundsPlayed: ls.engine.RoundIndex(),
		},
	})
	if err != nil {
		log.Printf("WARNING: failed to save snapshot: %v", err)
		return
	}
	if err := t.deps.Snapshots.Prune(ctx, snapshotKeep); err != nil {
		log.Printf("WARNING: failed to prune snapshots: %v", err)
	}
}

// ─── gym_stats ──────────────────────────────────────────────────────────────

// StatsTool handles the gym_stats MCP tool.
type StatsTool struct {
	reg *registry
}

// Definition returns the MCP tool definition for gym_stats.
func (t *StatsTool) Definition() mcp.Tool {
	return mcp.NewTool("gym_stats",
		mcp.WithDescription(
			"Show the session's standing: current difficulty, rounds played, and per-category "+
				"coverage with weak/strong classification.",
		),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("Session ID from gym_start_session"),
		),
	)
}

// Handle processes the gym_stats tool call.
func (t *StatsTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ls, errResult := lookupSession(t.reg, req)
	if errResult != nil {
		return errResult, nil
	}
	ls.mu.Lock()
	defer ls.mu.Unlock()

	out := fmt.Sprintf("Difficulty level: %d\nRounds played: %d\n\n%s",
		ls.engine.Difficulty(), ls.engine.RoundIndex(),
		report.Coverage(ls.engine.CoverageSnapshot()))
	return mcp.NewToolResultText(out), nil
}

// lookupSession resolves the session_id argument, returning a tool error
// result when it is missing or unknown.
func lookupSession(reg *registry, req mcp.CallToolRequest) (*liveSession, *mcp.CallToolResult) {
	id := req.GetString("session_id", "")
	if id == "" {
		return nil, mcp.NewToolResultError("'session_id' is required")
	}
	ls := reg.get(id)
	if ls == nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("unknown session: %s (call gym_start_session first)", id))
	}
	return ls, nil
}
