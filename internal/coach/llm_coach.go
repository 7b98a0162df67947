package coach

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"text/template"

	"github.com/reviewgym/reviewgym/internal/finding"
	"github.com/reviewgym/reviewgym/internal/llm"
)

// CoachConfig holds configuration for the LLM coach.
type CoachConfig struct {
	MaxTokens   int
	Temperature float64
}

// DefaultCoachConfig returns sensible defaults.
func DefaultCoachConfig() CoachConfig {
	return CoachConfig{
		MaxTokens:   384,
		Temperature: 0.5,
	}
}

// Coach produces LLM-based coaching notes for rounds the rule advisers
// had nothing specific to say about.
type Coach struct {
	provider llm.Provider
	cfg      CoachConfig
}

// NewCoach creates an LLM-based coach.
func NewCoach(provider llm.Provider, cfg CoachConfig) *Coach {
	return &Coach{provider: provider, cfg: cfg}
}

// CoachRequest is the input for LLM coaching.
type CoachRequest struct {
	Title       string
	Language    string
	Difficulty  int
	Precision   float64
	Recall      float64
	Missed      []finding.Finding
	FalseAlarms []finding.Finding
	Reflection  string
}

// coachOutput is the raw LLM response.
type coachOutput struct {
	Focus     string `json:"focus"`
	Headline  string `json:"headline"`
	Detail    string `json:"detail"`
	Reasoning string `json:"reasoning"`
}

// Review sends a sealed round to the LLM for a coaching note.
func (c *Coach) Review(ctx context.Context, req *CoachRequest) (*Advice, error) {
	ctx = llm.WithPurpose(ctx, "coaching")

	userMsg, err := buildCoachMessage(req)
	if err != nil {
		return nil, fmt.Errorf("build coaching prompt: %w", err)
	}

	llmReq := llm.Request{
		System: coachSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      CoachSchema,
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	}

	resp, err := c.provider.Generate(ctx, llmReq)
	if err != nil {
		return nil, fmt.Errorf("LLM coaching failed: %w", err)
	}

	var raw coachOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse coaching response: %w", err)
	}

	return &Advice{
		Focus:       parseFocus(raw.Focus),
		Headline:    raw.Headline,
		Detail:      raw.Detail,
		AdviserName: "llm",
		Reasoning:   raw.Reasoning,
	}, nil
}

// parseFocus maps the LLM's focus string onto a known FocusArea.
// Anything unrecognized becomes general rather than an error.
func parseFocus(s string) FocusArea {
	switch FocusArea(s) {
	case FocusPrecision, FocusRecall, FocusCategory, FocusSeverity:
		return FocusArea(s)
	default:
		return FocusGeneral
	}
}

const coachSystemPrompt = `You are a senior engineer coaching a developer on code review skill. You are given the results of one review round: what they found, what they missed, what they flagged wrongly, and their own reflection.

Instructions:
- Give ONE concrete piece of advice, not a summary of the results.
- Ground it in a specific missed or wrongly-flagged finding when one exists.
- Never repeat the learner's own reflection back at them.
- Headline is one short sentence. Detail is at most two sentences.
- Choose focus from: precision, recall, category-gap, severity, general.`

var coachUserTemplate = template.Must(template.New("coach").Parse(`Challenge: {{.Title}} ({{.Language}}, level {{.Difficulty}})
Precision: {{printf "%.2f" .Precision}}, recall: {{printf "%.2f" .Recall}}

Missed defects:
{{range .Missed}}- [{{.Category}}/{{.Severity}}] {{.Location}}: {{.Description}}
{{end}}{{if not .Missed}}- none
{{end}}
False alarms:
{{range .FalseAlarms}}- [{{.Category}}/{{.Severity}}] {{.Location}}: {{.Description}}
{{end}}{{if not .FalseAlarms}}- none
{{end}}
Learner's reflection: {{.Reflection}}`))

func buildCoachMessage(req *CoachRequest) (string, error) {
	var buf bytes.Buffer
	if err := coachUserTemplate.Execute(&buf, req); err != nil {
		return "", err
	}
	return buf.String(), nil
}
