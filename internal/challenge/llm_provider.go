package challenge

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/reviewgym/reviewgym/internal/finding"
	"github.com/reviewgym/reviewgym/internal/llm"
)

// LLMProvider implements Provider by asking an LLM to author a fresh
// challenge for every request.
type LLMProvider struct {
	provider llm.Provider
	config   Config

	// priorTitles remembers what this provider already produced so the
	// prompt can steer away from repeats. Session-scoped like the
	// provider itself.
	priorTitles []string
}

// New creates an LLMProvider with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMProvider {
	return &LLMProvider{provider: provider, config: cfg}
}

// findingOutput is one planted defect in the raw LLM response.
type findingOutput struct {
	Category       string  `json:"category"`
	Severity       string  `json:"severity"`
	Location       string  `json:"location"`
	Description    string  `json:"description"`
	InterestWeight float64 `json:"interest_weight"`
}

// challengeOutput is the raw LLM response before validation.
type challengeOutput struct {
	Title    string          `json:"title"`
	Language string          `json:"language"`
	Code     string          `json:"code"`
	Findings []findingOutput `json:"findings"`
	Traps    []findingOutput `json:"traps"`
}

// Generate produces a single challenge honoring the selection request.
func (g *LLMProvider) Generate(ctx context.Context, req SelectionRequest) (*Challenge, error) {
	ctx = llm.WithPurpose(ctx, "challenge-gen")

	userMsg := buildUserMessage(req, g.priorTitles, g.config)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ChallengeSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw challengeOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	ch := &Challenge{
		ID:          uuid.NewString(),
		Title:       raw.Title,
		Language:    raw.Language,
		PromptText:  raw.Code,
		Difficulty:  req.Difficulty,
		GroundTruth: convertFindings(raw.Findings, "gt"),
		Traps:       convertFindings(raw.Traps, "trap"),
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(ch, req); verr != nil {
			return nil, verr
		}
	}

	g.priorTitles = append(g.priorTitles, ch.Title)
	return ch, nil
}

// convertFindings assigns stable IDs to the raw findings. The LLM is
// not asked for IDs; match bookkeeping only needs them unique within
// the challenge.
func convertFindings(raw []findingOutput, prefix string) []finding.Finding {
	if len(raw) == 0 {
		return nil
	}
	out := make([]finding.Finding, len(raw))
	for i, f := range raw {
		out[i] = finding.Finding{
			ID:             fmt.Sprintf("%s-%d", prefix, i+1),
			Category:       f.Category,
			Severity:       finding.Severity(f.Severity),
			Location:       f.Location,
			Description:    f.Description,
			InterestWeight: f.InterestWeight,
		}
	}
	return out
}
