package session

import "strings"

// DefaultMinReflectionTokens is the minimum word count an accepted
// reflection needs.
const DefaultMinReflectionTokens = 10

// DefaultReflectionDenylist returns the stock phrases that are rejected
// outright. A reflection that normalizes to one of these says nothing
// about what actually went wrong in the round.
func DefaultReflectionDenylist() []string {
	return []string{
		"be more careful",
		"look harder",
		"try harder",
		"pay more attention",
		"i will do better",
		"do better",
		"focus more",
	}
}

// ReflectionConfig controls the non-triviality gate on reflections.
// The zero value is usable; zero fields fall back to the defaults.
type ReflectionConfig struct {
	// MinTokens is the minimum number of whitespace-separated words.
	MinTokens int `json:"min_tokens"`
	// Denylist holds generic phrases rejected regardless of length.
	// Matched against the whole normalized reflection text.
	Denylist []string `json:"denylist"`
}

func (c ReflectionConfig) withDefaults() ReflectionConfig {
	if c.MinTokens <= 0 {
		c.MinTokens = DefaultMinReflectionTokens
	}
	if c.Denylist == nil {
		c.Denylist = DefaultReflectionDenylist()
	}
	return c
}

// reflectionIssue returns a human-readable reason the reflection is
// trivial, or "" when it passes the gate.
func reflectionIssue(text string, cfg ReflectionConfig) string {
	normalized := normalizeReflection(text)
	if normalized == "" {
		return "reflection is empty"
	}
	for _, phrase := range cfg.Denylist {
		if normalized == normalizeReflection(phrase) {
			return "reflection is a stock phrase; describe what specifically went wrong"
		}
	}
	if len(strings.Fields(normalized)) < cfg.MinTokens {
		return "reflection is too short; explain the miss in at least a full sentence"
	}
	return ""
}

// normalizeReflection lowercases, collapses whitespace, and strips
// trailing sentence punctuation so denylist matching is not defeated by
// casing or an exclamation mark.
func normalizeReflection(text string) string {
	s := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	return strings.TrimRight(s, ".!?")
}
