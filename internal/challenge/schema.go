package challenge

import "github.com/reviewgym/reviewgym/internal/llm"

// findingSchema is the shared shape of a planted finding or trap in the
// LLM response.
var findingSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"category": map[string]any{
			"type":        "string",
			"description": "The defect category ID, one of the categories listed in the request",
		},
		"severity": map[string]any{
			"type":        "string",
			"enum":        []any{"critical", "high", "medium", "low"},
			"description": "Impact if shipped",
		},
		"location": map[string]any{
			"type":        "string",
			"description": "Where in the code the defect sits, as file:line matching the listing, e.g. \"payments.go:24\"",
		},
		"description": map[string]any{
			"type":        "string",
			"description": "One or two sentences naming the defect and its consequence",
		},
		"interest_weight": map[string]any{
			"type":        "number",
			"minimum":     1,
			"maximum":     5,
			"description": "How instructive this finding is, 1 (routine) to 5 (subtle and valuable)",
		},
	},
	"required":             []any{"category", "severity", "location", "description", "interest_weight"},
	"additionalProperties": false,
}

// ChallengeSchema defines the JSON schema for LLM challenge generation
// responses.
var ChallengeSchema = &llm.Schema{
	Name:        "review-challenge",
	Description: "A code review exercise: a realistic listing with planted defects and an answer key",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Short display name for the exercise, e.g. \"Session token refresh\"",
			},
			"language": map[string]any{
				"type":        "string",
				"description": "Language of the code under review, lowercase, e.g. \"go\", \"python\"",
			},
			"code": map[string]any{
				"type":        "string",
				"description": "The complete code listing the learner reviews. Every line numbered references in findings must exist. Plain text, no markdown fences.",
			},
			"findings": map[string]any{
				"type":        "array",
				"items":       findingSchema,
				"description": "The planted defects, each independently discoverable from the listing",
			},
			"traps": map[string]any{
				"type":        "array",
				"items":       findingSchema,
				"description": "Spots that look suspicious but are actually correct. May be empty. Locations must differ from every finding location.",
			},
		},
		"required":             []any{"title", "language", "code", "findings", "traps"},
		"additionalProperties": false,
	},
}
