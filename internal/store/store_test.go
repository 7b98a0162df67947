package store

import (
	"context"
	"testing"
	"time"

	"github.com/reviewgym/reviewgym/internal/finding"
	"github.com/reviewgym/reviewgym/internal/scoring"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only checked with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSnapshotSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if snap != nil {
		t.Fatal("expected nil snapshot when none exist")
	}

	now := time.Now().UTC().Truncate(time.Second)
	err = repo.Save(ctx, &Snapshot{
		Sequence:  42,
		Timestamp: now,
		Data:      SnapshotData{Version: 1, Difficulty: 3, RoundsPlayed: 12},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	snap, err = repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap == nil {
		t.Fatal("expected non-nil snapshot")
	}
	if snap.Sequence != 42 {
		t.Errorf("sequence = %d, want 42", snap.Sequence)
	}
	if snap.Data.Difficulty != 3 {
		t.Errorf("data.difficulty = %d, want 3", snap.Data.Difficulty)
	}
	if snap.Data.RoundsPlayed != 12 {
		t.Errorf("data.rounds_played = %d, want 12", snap.Data.RoundsPlayed)
	}
}

func TestSnapshotPrune(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 7; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 5 {
		t.Errorf("remaining snapshots = %d, want 5", count)
	}

	snap, err := repo.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if snap.Sequence != 7 {
		t.Errorf("latest sequence = %d, want 7", snap.Sequence)
	}
}

func TestSnapshotPruneWithFewerThanKeep(t *testing.T) {
	s := openTestStore(t)
	repo := s.SnapshotRepo()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i := 0; i < 2; i++ {
		err := repo.Save(ctx, &Snapshot{
			Sequence:  int64(i + 1),
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Data:      SnapshotData{Version: 1},
		})
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	// Prune with keep=5 should be a no-op.
	if err := repo.Prune(ctx, 5); err != nil {
		t.Fatalf("prune: %v", err)
	}

	count, err := s.Client().Snapshot.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Errorf("remaining snapshots = %d, want 2", count)
	}
}

func testScorecard() *scoring.Scorecard {
	return &scoring.Scorecard{
		TruePositives: []scoring.MatchedPair{{
			Submitted: finding.Finding{Category: "injection", Severity: finding.SeverityHigh, Location: "db.go:10"},
			Truth:     finding.Finding{ID: "gt-1", Category: "injection", Severity: finding.SeverityHigh, Location: "db.go:10"},
		}},
		FalseNegatives: []finding.Finding{
			{ID: "gt-2", Category: "access-control", Severity: finding.SeverityCritical, Location: "auth.go:42"},
		},
		Precision:         1.0,
		Recall:            0.5,
		F1:                2.0 / 3.0,
		SeverityAccuracy:  1.0,
		CategoryAccuracy:  1.0,
		PerCategoryRecall: map[string]float64{"injection": 1.0, "access-control": 0.0},
	}
}

func TestRoundEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := RoundEventData{
		SessionID:    "sess-1",
		ChallengeID:  "ch-1",
		RoundIndex:   0,
		Difficulty:   2,
		CategoryTags: []string{"access-control", "injection"},
		Reflection:   "I skipped the auth middleware and only read the handler bodies.",
		Scorecard:    testScorecard(),
	}
	if err := repo.AppendRoundEvent(ctx, data); err != nil {
		t.Fatalf("append round event: %v", err)
	}

	records, err := repo.RecentRounds(ctx, 10)
	if err != nil {
		t.Fatalf("recent rounds: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}

	rec := records[0]
	if rec.Difficulty != 2 {
		t.Errorf("difficulty = %d, want 2", rec.Difficulty)
	}
	if rec.Scorecard == nil {
		t.Fatal("expected rebuilt scorecard")
	}
	if rec.Scorecard.TP() != 1 || rec.Scorecard.FN() != 1 {
		t.Errorf("TP/FN = %d/%d, want 1/1", rec.Scorecard.TP(), rec.Scorecard.FN())
	}
	if got := rec.Scorecard.PerCategoryRecall["injection"]; got != 1.0 {
		t.Errorf("per-category recall [injection] = %v, want 1.0", got)
	}

	round := rec.Round()
	if round.Index != 0 || round.Difficulty != 2 {
		t.Errorf("round = %+v, want index 0 difficulty 2", round)
	}
	if round.ReflectionText != data.Reflection {
		t.Errorf("reflection = %q, want %q", round.ReflectionText, data.Reflection)
	}
}

func TestRecentRoundsOrderAndLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		err := repo.AppendRoundEvent(ctx, RoundEventData{
			SessionID:   "sess-1",
			ChallengeID: "ch",
			RoundIndex:  i,
			Difficulty:  1,
			Reflection:  "r",
			Scorecard:   testScorecard(),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	records, err := repo.RecentRounds(ctx, 3)
	if err != nil {
		t.Fatalf("recent rounds: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}
	// Oldest first within the window: rounds 2, 3, 4.
	for i, rec := range records {
		if rec.RoundIndex != i+2 {
			t.Errorf("records[%d].RoundIndex = %d, want %d", i, rec.RoundIndex, i+2)
		}
	}

	count, err := repo.RoundCount(ctx)
	if err != nil {
		t.Fatalf("round count: %v", err)
	}
	if count != 5 {
		t.Errorf("round count = %d, want 5", count)
	}
}

func TestAppendRoundEventRequiresScorecard(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()

	err := repo.AppendRoundEvent(context.Background(), RoundEventData{
		SessionID:   "sess-1",
		ChallengeID: "ch",
		Reflection:  "r",
	})
	if err == nil {
		t.Fatal("expected error for round event without scorecard")
	}
}

func TestLLMEventQueryAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "challenge-gen", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "challenge-gen", InputTokens: 120, OutputTokens: 60, LatencyMs: 400, Success: true},
		{Provider: "anthropic", Model: "claude-haiku", Purpose: "coaching", InputTokens: 80, OutputTokens: 30, LatencyMs: 100, Success: false, ErrorMessage: "timeout"},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	// Newest first.
	if got[0].Purpose != "coaching" {
		t.Errorf("got[0].Purpose = %q, want coaching", got[0].Purpose)
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	// Sorted by purpose name: challenge-gen first.
	if byPurpose[0].Purpose != "challenge-gen" || byPurpose[0].Calls != 2 {
		t.Errorf("byPurpose[0] = %+v, want challenge-gen with 2 calls", byPurpose[0])
	}
	if byPurpose[0].InputTokens != 220 {
		t.Errorf("challenge-gen input tokens = %d, want 220", byPurpose[0].InputTokens)
	}
	if byPurpose[0].AvgLatencyMs != 300 {
		t.Errorf("challenge-gen avg latency = %d, want 300", byPurpose[0].AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].Calls != 3 {
		t.Errorf("byModel = %+v, want one model with 3 calls", byModel)
	}
}

func TestGetLLMEventMissing(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()

	rec, err := repo.GetLLMEvent(context.Background(), 999)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec != nil {
		t.Error("expected nil record for missing ID")
	}
}

func TestSessionAndChallengeEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:       "sess-1",
		Action:          "start",
		StartDifficulty: 2,
	})
	if err != nil {
		t.Fatalf("append session event: %v", err)
	}

	err = repo.AppendChallengeEvent(ctx, ChallengeEventData{
		SessionID:    "sess-1",
		ChallengeID:  "ch-1",
		Title:        "Token refresh handler",
		Language:     "go",
		Difficulty:   2,
		Source:       "builtin",
		Categories:   []string{"access-control"},
		FindingCount: 3,
		TrapCount:    1,
	})
	if err != nil {
		t.Fatalf("append challenge event: %v", err)
	}

	sessions, err := s.Client().SessionEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count sessions: %v", err)
	}
	if sessions != 1 {
		t.Errorf("session events = %d, want 1", sessions)
	}
}
