package coach

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/reviewgym/reviewgym/internal/finding"
	"github.com/reviewgym/reviewgym/internal/llm"
)

func testCoachRequest() *CoachRequest {
	return &CoachRequest{
		Title:      "Order total cache",
		Language:   "go",
		Difficulty: 4,
		Precision:  0.67,
		Recall:     0.50,
		Missed: []finding.Finding{
			{Category: "concurrency", Severity: finding.SeverityCritical, Location: "cache.go:23", Description: "Map written under a read lock."},
		},
		FalseAlarms: []finding.Finding{
			{Category: "logic", Severity: finding.SeverityLow, Location: "cache.go:11", Description: "Constructor looks fine."},
		},
		Reflection: "I stopped reading once I found the first race.",
	}
}

func TestCoachReview_ParsesAdvice(t *testing.T) {
	resp := json.RawMessage(`{"focus":"severity","headline":"h","detail":"d","reasoning":"r"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	c := NewCoach(mock, DefaultCoachConfig())

	advice, err := c.Review(context.Background(), testCoachRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if advice.Focus != FocusSeverity {
		t.Errorf("got focus %q, want %q", advice.Focus, FocusSeverity)
	}
	if advice.AdviserName != "llm" {
		t.Errorf("got adviser %q, want llm", advice.AdviserName)
	}
	if advice.Reasoning != "r" {
		t.Errorf("got reasoning %q, want r", advice.Reasoning)
	}
}

func TestCoachReview_UnknownFocusBecomesGeneral(t *testing.T) {
	resp := json.RawMessage(`{"focus":"vibes","headline":"h","detail":"d","reasoning":"r"}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: resp})
	c := NewCoach(mock, DefaultCoachConfig())

	advice, err := c.Review(context.Background(), testCoachRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if advice.Focus != FocusGeneral {
		t.Errorf("got focus %q, want %q", advice.Focus, FocusGeneral)
	}
}

func TestCoachReview_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider() // empty queue returns ErrProviderUnavailable
	c := NewCoach(mock, DefaultCoachConfig())

	_, err := c.Review(context.Background(), testCoachRequest())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "LLM coaching failed") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBuildCoachMessage(t *testing.T) {
	msg, err := buildCoachMessage(testCoachRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{
		"Order total cache (go, level 4)",
		"Precision: 0.67, recall: 0.50",
		"[concurrency/critical] cache.go:23",
		"[logic/low] cache.go:11",
		"I stopped reading once I found the first race.",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in message:\n%s", want, msg)
		}
	}
}

func TestBuildCoachMessage_EmptySections(t *testing.T) {
	req := testCoachRequest()
	req.Missed = nil
	req.FalseAlarms = nil

	msg, err := buildCoachMessage(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strings.Count(msg, "- none"); got != 2 {
		t.Errorf("expected 2 empty markers, got %d:\n%s", got, msg)
	}
}
