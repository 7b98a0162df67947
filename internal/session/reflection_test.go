package session

import "testing"

func TestReflectionIssue_AcceptsSpecificText(t *testing.T) {
	text := "I matched on the function name and never read the query builder, so the concatenated WHERE clause slipped past me."
	if issue := reflectionIssue(text, ReflectionConfig{}.withDefaults()); issue != "" {
		t.Errorf("reflectionIssue() = %q, want accepted", issue)
	}
}

func TestReflectionIssue_RejectsShortText(t *testing.T) {
	if issue := reflectionIssue("missed the auth check", ReflectionConfig{}.withDefaults()); issue == "" {
		t.Error("4-word reflection accepted, want rejection")
	}
}

func TestReflectionIssue_RejectsEmptyText(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t"} {
		if issue := reflectionIssue(text, ReflectionConfig{}.withDefaults()); issue == "" {
			t.Errorf("reflectionIssue(%q) accepted, want rejection", text)
		}
	}
}

func TestReflectionIssue_RejectsStockPhrases(t *testing.T) {
	cfg := ReflectionConfig{}.withDefaults()
	for _, text := range []string{
		"be more careful",
		"Be More Careful!",
		"  look   harder  ",
		"try harder.",
	} {
		if issue := reflectionIssue(text, cfg); issue == "" {
			t.Errorf("reflectionIssue(%q) accepted, want denylist rejection", text)
		}
	}
}

func TestReflectionIssue_CustomConfig(t *testing.T) {
	cfg := ReflectionConfig{MinTokens: 3, Denylist: []string{"oops"}}
	if issue := reflectionIssue("forgot the nil check", cfg); issue != "" {
		t.Errorf("reflectionIssue() = %q, want accepted under MinTokens=3", issue)
	}
	if issue := reflectionIssue("Oops!", cfg); issue == "" {
		t.Error("custom denylist phrase accepted, want rejection")
	}
}

func TestNormalizeReflection(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Be More Careful!", "be more careful"},
		{"  look   harder  ", "look harder"},
		{"done.", "done"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := normalizeReflection(tt.in); got != tt.want {
			t.Errorf("normalizeReflection(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
