package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title":    map[string]any{"type": "string"},
			"line":     map[string]any{"type": "integer"},
			"severity": map[string]any{"type": "string", "enum": []any{"critical", "high", "medium", "low"}},
			"findings": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"title", "severity"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["title"].Type != "STRING" {
		t.Fatalf("expected STRING for title, got %s", schema.Properties["title"].Type)
	}
	if schema.Properties["line"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for line, got %s", schema.Properties["line"].Type)
	}
	if len(schema.Properties["severity"].Enum) != 4 {
		t.Fatalf("expected 4 enum values, got %d", len(schema.Properties["severity"].Enum))
	}
	if schema.Properties["findings"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for findings, got %s", schema.Properties["findings"].Type)
	}
	if schema.Properties["findings"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for findings items, got %s", schema.Properties["findings"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
