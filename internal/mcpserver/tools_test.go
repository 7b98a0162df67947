package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/reviewgym/reviewgym/internal/challenge"
	"github.com/reviewgym/reviewgym/internal/session"
	"github.com/reviewgym/reviewgym/internal/store"
)

// fakeEvents is an in-memory EventRepo capturing appended events.
type fakeEvents struct {
	store.EventRepo

	sessions []store.SessionEventData
	rounds   []store.RoundEventData
	seeded   []store.RoundRecord
}

func (f *fakeEvents) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	f.sessions = append(f.sessions, data)
	return nil
}

func (f *fakeEvents) AppendRoundEvent(_ context.Context, data store.RoundEventData) error {
	f.rounds = append(f.rounds, data)
	return nil
}

func (f *fakeEvents) RecentRounds(_ context.Context, _ int) ([]store.RoundRecord, error) {
	return f.seeded, nil
}

func (f *fakeEvents) LastSequence(_ context.Context) (int64, error) {
	return int64(len(f.rounds)), nil
}

// fakeSnapshots is an in-memory SnapshotRepo.
type fakeSnapshots struct {
	saved []*store.Snapshot
}

func (f *fakeSnapshots) Save(_ context.Context, snap *store.Snapshot) error {
	f.saved = append(f.saved, snap)
	return nil
}

func (f *fakeSnapshots) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(f.saved) == 0 {
		return nil, nil
	}
	return f.saved[len(f.saved)-1], nil
}

func (f *fakeSnapshots) Prune(_ context.Context, _ int) error { return nil }

func testDeps(events *fakeEvents, snaps *fakeSnapshots) Deps {
	return Deps{
		Events:    events,
		Snapshots: snaps,
		NewProvider: func(string) challenge.Provider {
			return challenge.NewBuiltin()
		},
		Engine:  session.Config{},
		Version: "test",
	}
}

func makeReq(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func resultText(r *mcp.CallToolResult) string {
	if r == nil || len(r.Content) == 0 {
		return ""
	}
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

// startSession runs gym_start_session and returns the session id.
func startSession(t *testing.T, deps Deps, reg *registry) string {
	t.Helper()
	start := &StartSessionTool{deps: deps, reg: reg}
	res, err := start.Handle(context.Background(), makeReq(nil))
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	text := resultText(res)
	for _, line := range strings.Split(text, "\n") {
		if id, ok := strings.CutPrefix(line, "session_id: "); ok {
			return id
		}
	}
	t.Fatalf("no session_id in result: %q", text)
	return ""
}

func TestFullRoundOverTools(t *testing.T) {
	events := &fakeEvents{}
	snaps := &fakeSnapshots{}
	deps := testDeps(events, snaps)
	reg := newRegistry()
	ctx := context.Background()

	id := startSession(t, deps, reg)
	if len(events.sessions) != 1 || events.sessions[0].Action != "start" {
		t.Fatalf("session events = %+v, want one start", events.sessions)
	}

	chTool := &ChallengeTool{reg: reg}
	res, _ := chTool.Handle(ctx, makeReq(map[string]any{"session_id": id}))
	if res.IsError {
		t.Fatalf("challenge: %s", resultText(res))
	}
	if !strings.Contains(resultText(res), "level 1") {
		t.Errorf("challenge text missing level: %q", resultText(res))
	}
	// The answer key must not leak into the challenge result.
	if strings.Contains(strings.ToLower(resultText(res)), "ground truth") {
		t.Errorf("challenge result mentions ground truth")
	}

	attempt := &AttemptTool{reg: reg}
	res, _ = attempt.Handle(ctx, makeReq(map[string]any{
		"session_id": id,
		"findings":   `[{"category":"injection","severity":"high","location":"db.go:1","description":"concat"}]`,
	}))
	if res.IsError {
		t.Fatalf("attempt: %s", resultText(res))
	}

	compare := &CompareTool{reg: reg}
	res, _ = compare.Handle(ctx, makeReq(map[string]any{"session_id": id}))
	if res.IsError {
		t.Fatalf("compare: %s", resultText(res))
	}
	if !strings.Contains(resultText(res), "## Scorecard") {
		t.Errorf("compare result is not a scorecard: %q", resultText(res))
	}

	reflect := &ReflectTool{deps: deps, reg: reg}
	res, _ = reflect.Handle(ctx, makeReq(map[string]any{
		"session_id": id,
		"reflection": "I only skimmed the handler and never traced input through to the query construction.",
	}))
	if res.IsError {
		t.Fatalf("reflect: %s", resultText(res))
	}
	if len(events.rounds) != 1 {
		t.Fatalf("round events = %d, want 1", len(events.rounds))
	}
	if events.rounds[0].Scorecard == nil {
		t.Error("persisted round has no scorecard")
	}
	if len(snaps.saved) != 1 {
		t.Errorf("snapshots saved = %d, want 1", len(snaps.saved))
	}

	stats := &StatsTool{reg: reg}
	res, _ = stats.Handle(ctx, makeReq(map[string]any{"session_id": id}))
	if !strings.Contains(resultText(res), "Rounds played: 1") {
		t.Errorf("stats missing round count: %q", resultText(res))
	}
}

func TestWrongPhaseIsToolError(t *testing.T) {
	deps := testDeps(&fakeEvents{}, &fakeSnapshots{})
	reg := newRegistry()
	id := startSession(t, deps, reg)

	// Compare before any challenge: a tool error, not a protocol failure.
	compare := &CompareTool{reg: reg}
	res, err := compare.Handle(context.Background(), makeReq(map[string]any{"session_id": id}))
	if err != nil {
		t.Fatalf("expected tool error, got protocol error: %v", err)
	}
	if !res.IsError {
		t.Fatal("expected error result")
	}
	if !strings.Contains(resultText(res), "phase") {
		t.Errorf("error does not name the phase: %q", resultText(res))
	}
}

func TestTrivialReflectionIsRetryable(t *testing.T) {
	events := &fakeEvents{}
	deps := testDeps(events, &fakeSnapshots{})
	reg := newRegistry()
	ctx := context.Background()
	id := startSession(t, deps, reg)

	(&ChallengeTool{reg: reg}).Handle(ctx, makeReq(map[string]any{"session_id": id}))
	(&AttemptTool{reg: reg}).Handle(ctx, makeReq(map[string]any{"session_id": id, "findings": "[]"}))
	(&CompareTool{reg: reg}).Handle(ctx, makeReq(map[string]any{"session_id": id}))

	reflect := &ReflectTool{deps: deps, reg: reg}
	res, _ := reflect.Handle(ctx, makeReq(map[string]any{"session_id": id, "reflection": "be more careful"}))
	if !res.IsError {
		t.Fatal("expected trivial reflection to be rejected")
	}
	if len(events.rounds) != 0 {
		t.Fatalf("rejected reflection persisted a round")
	}

	// Retry with a real reflection on the same round.
	res, _ = reflect.Handle(ctx, makeReq(map[string]any{
		"session_id": id,
		"reflection": "I submitted nothing because I ran out of patience instead of checking the obvious entry points.",
	}))
	if res.IsError {
		t.Fatalf("retry rejected: %s", resultText(res))
	}
	if len(events.rounds) != 1 {
		t.Fatalf("round events = %d, want 1", len(events.rounds))
	}
}

func TestUnknownSession(t *testing.T) {
	reg := newRegistry()
	res, _ := (&ChallengeTool{reg: reg}).Handle(context.Background(), makeReq(map[string]any{"session_id": "nope"}))
	if !res.IsError {
		t.Fatal("expected error for unknown session")
	}
}

func TestMalformedFindingsJSON(t *testing.T) {
	deps := testDeps(&fakeEvents{}, &fakeSnapshots{})
	reg := newRegistry()
	ctx := context.Background()
	id := startSession(t, deps, reg)
	(&ChallengeTool{reg: reg}).Handle(ctx, makeReq(map[string]any{"session_id": id}))

	attempt := &AttemptTool{reg: reg}
	res, _ := attempt.Handle(ctx, makeReq(map[string]any{"session_id": id, "findings": "{not json"}))
	if !res.IsError {
		t.Fatal("expected error for malformed findings")
	}

	// The phase must not have advanced; a corrected submission works.
	res, _ = attempt.Handle(ctx, makeReq(map[string]any{"session_id": id, "findings": "[]"}))
	if res.IsError {
		t.Fatalf("corrected submission rejected: %s", resultText(res))
	}
}
