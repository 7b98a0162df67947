package challenge

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/reviewgym/reviewgym/internal/finding"
	"github.com/reviewgym/reviewgym/internal/llm"
)

func validChallengeJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Login rate check",
		"language": "python",
		"code": "def login(user, password):\n    query = \"SELECT * FROM users WHERE name = '\" + user + \"'\"\n    row = db.execute(query)\n    return row is not None",
		"findings": [
			{"category": "injection", "severity": "high", "location": "login.py:2", "description": "User name concatenated into SQL.", "interest_weight": 4},
			{"category": "access-control", "severity": "medium", "location": "login.py:4", "description": "Login ignores account lockout state.", "interest_weight": 2}
		],
		"traps": [
			{"category": "crypto-defaults", "severity": "low", "location": "login.py:1", "description": "Receiving the password as an argument is fine at this boundary.", "interest_weight": 1}
		]
	}`)
}

func TestGenerate_ValidChallenge(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validChallengeJSON()})
	gen := New(mock, DefaultConfig())

	ch, err := gen.Generate(context.Background(), SelectionRequest{Difficulty: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ch.Title != "Login rate check" {
		t.Errorf("unexpected title: %q", ch.Title)
	}
	if ch.Language != "python" {
		t.Errorf("unexpected language: %q", ch.Language)
	}
	if ch.Difficulty != 2 {
		t.Errorf("expected difficulty 2, got %d", ch.Difficulty)
	}
	if ch.ID == "" {
		t.Error("expected a generated challenge ID")
	}
	if len(ch.GroundTruth) != 2 {
		t.Fatalf("expected 2 findings, got %d", len(ch.GroundTruth))
	}
	if ch.GroundTruth[0].ID != "gt-1" || ch.GroundTruth[1].ID != "gt-2" {
		t.Errorf("expected sequential gt IDs, got %q and %q", ch.GroundTruth[0].ID, ch.GroundTruth[1].ID)
	}
	if ch.GroundTruth[0].Severity != finding.SeverityHigh {
		t.Errorf("expected high severity, got %q", ch.GroundTruth[0].Severity)
	}
	if len(ch.Traps) != 1 || ch.Traps[0].ID != "trap-1" {
		t.Errorf("expected one trap with ID trap-1, got %+v", ch.Traps)
	}
}

func TestGenerate_RequestShape(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validChallengeJSON()})
	cfg := DefaultConfig()
	cfg.MaxTokens = 2048
	cfg.Temperature = 0.3
	gen := New(mock, cfg)

	_, err := gen.Generate(context.Background(), SelectionRequest{Difficulty: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}

	call := mock.Calls[0]
	if call.Schema == nil || call.Schema.Name != "review-challenge" {
		t.Errorf("expected review-challenge schema, got %+v", call.Schema)
	}
	if call.MaxTokens != 2048 {
		t.Errorf("expected MaxTokens 2048, got %d", call.MaxTokens)
	}
	if call.Temperature != 0.3 {
		t.Errorf("expected Temperature 0.3, got %v", call.Temperature)
	}
	if len(call.Messages) != 1 || call.Messages[0].Role != llm.RoleUser {
		t.Fatalf("expected a single user message, got %+v", call.Messages)
	}
	if !strings.Contains(call.Messages[0].Content, "Difficulty: 2 of 5") {
		t.Errorf("expected difficulty line in user message:\n%s", call.Messages[0].Content)
	}
}

func TestGenerate_StructuralFailure(t *testing.T) {
	raw := json.RawMessage(`{
		"title": "",
		"language": "go",
		"code": "package main",
		"findings": [
			{"category": "logic", "severity": "low", "location": "main.go:1", "description": "x", "interest_weight": 1}
		],
		"traps": []
	}`)
	mock := llm.NewMockProvider(llm.MockResponse{Content: raw})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), SelectionRequest{Difficulty: 1})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if valErr.Validator != "structural" {
		t.Errorf("expected structural validator, got %q", valErr.Validator)
	}
	if !valErr.Retryable {
		t.Error("structural failures should be retryable")
	}
}

func TestGenerate_ConstraintFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validChallengeJSON()})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), SelectionRequest{
		Difficulty:         2,
		RequiredCategories: []string{"concurrency"},
	})
	if err == nil {
		t.Fatal("expected constraint rejection")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if valErr.Validator != "constraints" {
		t.Errorf("expected constraints validator, got %q", valErr.Validator)
	}
}

// alwaysRejectValidator always rejects.
type alwaysRejectValidator struct{ name string }

func (v *alwaysRejectValidator) Name() string { return v.name }
func (v *alwaysRejectValidator) Validate(*Challenge, SelectionRequest) *ValidationError {
	return &ValidationError{Validator: v.name, Message: "rejected", Retryable: true}
}

// trackingValidator records whether it was called.
type trackingValidator struct {
	called bool
}

func (v *trackingValidator) Name() string { return "tracking" }
func (v *trackingValidator) Validate(*Challenge, SelectionRequest) *ValidationError {
	v.called = true
	return nil
}

func TestGenerate_ValidatorOrder(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validChallengeJSON()})
	tracker := &trackingValidator{}
	cfg := Config{
		Validators:  []Validator{&alwaysRejectValidator{name: "first"}, tracker},
		MaxTokens:   512,
		Temperature: 0.7,
	}
	gen := New(mock, cfg)

	_, err := gen.Generate(context.Background(), SelectionRequest{Difficulty: 2})
	if err == nil {
		t.Fatal("expected first validator to reject")
	}
	var valErr *ValidationError
	if !errors.As(err, &valErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if valErr.Validator != "first" {
		t.Errorf("expected error from 'first', got %q", valErr.Validator)
	}
	if tracker.called {
		t.Error("second validator should not have been called")
	}
}

func TestGenerate_NoValidators(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validChallengeJSON()})
	cfg := Config{
		Validators:  nil,
		MaxTokens:   512,
		Temperature: 0.7,
	}
	gen := New(mock, cfg)

	ch, err := gen.Generate(context.Background(), SelectionRequest{Difficulty: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ch.Title != "Login rate check" {
		t.Errorf("unexpected title: %q", ch.Title)
	}
}

func TestGenerate_PriorTitlesInPrompt(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Content: validChallengeJSON()},
		llm.MockResponse{Content: validChallengeJSON()},
	)
	gen := New(mock, DefaultConfig())

	req := SelectionRequest{Difficulty: 2}
	if _, err := gen.Generate(context.Background(), req); err != nil {
		t.Fatalf("first generate: %v", err)
	}
	if _, err := gen.Generate(context.Background(), req); err != nil {
		t.Fatalf("second generate: %v", err)
	}

	first := mock.Calls[0].Messages[0].Content
	if strings.Contains(first, "- Login rate check") {
		t.Error("first call should not list any prior title")
	}
	second := mock.Calls[1].Messages[0].Content
	if !strings.Contains(second, "- Login rate check") {
		t.Errorf("expected prior title in second call:\n%s", second)
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	wantErr := errors.New("upstream down")
	mock := llm.NewMockProvider(llm.MockResponse{Err: wantErr})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), SelectionRequest{Difficulty: 1})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, wantErr) {
		t.Errorf("expected wrapped provider error, got %v", err)
	}
	if !strings.Contains(err.Error(), "LLM generation failed") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestGenerate_MalformedResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	gen := New(mock, DefaultConfig())

	_, err := gen.Generate(context.Background(), SelectionRequest{Difficulty: 1})
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "failed to parse LLM response") {
		t.Errorf("unexpected error message: %v", err)
	}
}
