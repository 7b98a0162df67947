package coach

import "github.com/reviewgym/reviewgym/internal/llm"

// CoachSchema defines the JSON schema for LLM coaching responses.
var CoachSchema = &llm.Schema{
	Name:        "coaching-note",
	Description: "One concrete piece of coaching advice for a completed review round",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"focus": map[string]any{
				"type":        "string",
				"enum":        []any{"precision", "recall", "category-gap", "severity", "general"},
				"description": "The skill area the advice targets",
			},
			"headline": map[string]any{
				"type":        "string",
				"description": "One short sentence of advice",
			},
			"detail": map[string]any{
				"type":        "string",
				"description": "At most two sentences of concrete direction, grounded in this round's findings",
			},
			"reasoning": map[string]any{
				"type":        "string",
				"description": "Brief one-sentence explanation of why this is the advice that matters most",
			},
		},
		"required":             []any{"focus", "headline", "detail", "reasoning"},
		"additionalProperties": false,
	},
}
