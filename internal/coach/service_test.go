package coach

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/reviewgym/reviewgym/internal/finding"
	"github.com/reviewgym/reviewgym/internal/llm"
	"github.com/reviewgym/reviewgym/internal/scoring"
)

func TestService_RuleBasedTrap(t *testing.T) {
	svc := NewService(nil) // no LLM
	defer svc.Close()

	card := &scoring.Scorecard{
		TrapHits: []finding.Finding{{Category: "logic", Location: "a.go:3"}},
	}
	advice := svc.Review(context.Background(), roundWith(card), nil, "Config loader", "go", nil)
	if advice.AdviserName != "trap" {
		t.Errorf("got adviser %q, want trap", advice.AdviserName)
	}
}

func TestService_GeneralWithoutLLM(t *testing.T) {
	svc := NewService(nil)
	defer svc.Close()

	card := &scoring.Scorecard{
		TruePositives:    []scoring.MatchedPair{pair(), pair()},
		Precision:        1.0,
		Recall:           1.0,
		SeverityAccuracy: 1.0,
	}
	advice := svc.Review(context.Background(), roundWith(card), nil, "Config loader", "go", nil)
	if advice.Focus != FocusGeneral {
		t.Errorf("got focus %q, want %q", advice.Focus, FocusGeneral)
	}
	if advice.AdviserName != "none" {
		t.Errorf("got adviser %q, want none", advice.AdviserName)
	}
}

func TestService_LLMFallback(t *testing.T) {
	resp := json.RawMessage(`{"focus":"recall","headline":"Read the error paths","detail":"Both misses sat in error branches.","reasoning":"The clean paths were all found."}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})

	svc := NewService(mock)
	defer svc.Close()

	var mu sync.Mutex
	var async *Advice
	done := make(chan struct{})
	cb := func(a *Advice) {
		mu.Lock()
		async = a
		mu.Unlock()
		close(done)
	}

	// A clean round: no rule matches, so the LLM note is dispatched.
	card := &scoring.Scorecard{
		TruePositives:    []scoring.MatchedPair{pair(), pair()},
		Precision:        1.0,
		Recall:           1.0,
		SeverityAccuracy: 1.0,
	}
	syncAdvice := svc.Review(context.Background(), roundWith(card), nil, "Config loader", "go", cb)
	if syncAdvice.AdviserName != "none" {
		t.Errorf("sync advice from %q, want none", syncAdvice.AdviserName)
	}

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for async coaching note")
	}

	mu.Lock()
	defer mu.Unlock()
	if async.AdviserName != "llm" {
		t.Errorf("async advice from %q, want llm", async.AdviserName)
	}
	if async.Focus != FocusRecall {
		t.Errorf("got focus %q, want %q", async.Focus, FocusRecall)
	}
	if async.Headline != "Read the error paths" {
		t.Errorf("unexpected headline: %q", async.Headline)
	}
}

func TestService_RuleMatchSkipsLLM(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock)
	defer svc.Close()

	card := &scoring.Scorecard{
		TrapHits: []finding.Finding{{Category: "logic", Location: "a.go:3"}},
	}
	svc.Review(context.Background(), roundWith(card), nil, "Config loader", "go", nil)

	// Give a wrongly dispatched job time to surface.
	time.Sleep(50 * time.Millisecond)
	if mock.CallCount() != 0 {
		t.Errorf("expected no LLM calls, got %d", mock.CallCount())
	}
}
