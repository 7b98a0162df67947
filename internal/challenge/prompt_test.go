package challenge

import (
	"strings"
	"testing"

	"github.com/reviewgym/reviewgym/internal/catalog"
)

func TestBuildUserMessage_Constraints(t *testing.T) {
	req := SelectionRequest{
		Difficulty:         3,
		RequiredCategories: []string{"access-control", "injection"},
		ExcludedCategories: []string{"concurrency"},
	}
	msg := buildUserMessage(req, nil, DefaultConfig())

	if !strings.Contains(msg, "Difficulty: 3 of 5") {
		t.Errorf("expected difficulty line, got:\n%s", msg)
	}
	for _, want := range []string{"- access-control", "- injection", "- concurrency"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q in message:\n%s", want, msg)
		}
	}
}

func TestBuildUserMessage_VocabularyListed(t *testing.T) {
	msg := buildUserMessage(SelectionRequest{Difficulty: 1}, nil, DefaultConfig())
	for _, id := range catalog.IDs() {
		if !strings.Contains(msg, "- "+id+":") {
			t.Errorf("expected category %q in vocabulary section", id)
		}
	}
}

func TestBuildUserMessage_EmptySectionsSayNone(t *testing.T) {
	msg := buildUserMessage(SelectionRequest{Difficulty: 2}, nil, DefaultConfig())
	if got := strings.Count(msg, "None\n"); got != 3 {
		t.Errorf("expected 3 empty sections, got %d:\n%s", got, msg)
	}
}

func TestBuildUserMessage_PriorTitlesCapped(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxPriorTitles = 2
	priors := []string{"first", "second", "third", "fourth"}

	msg := buildUserMessage(SelectionRequest{Difficulty: 2}, priors, cfg)
	if strings.Contains(msg, "- first\n") || strings.Contains(msg, "- second\n") {
		t.Errorf("expected oldest titles trimmed:\n%s", msg)
	}
	for _, want := range []string{"- third\n", "- fourth\n"} {
		if !strings.Contains(msg, want) {
			t.Errorf("expected %q kept:\n%s", want, msg)
		}
	}
}

func TestFindingCountForLevel(t *testing.T) {
	tests := []struct {
		level   int
		wantMin int
		wantMax int
	}{
		{1, 2, 3},
		{2, 2, 4},
		{3, 3, 5},
		{4, 3, 6},
		{5, 4, 6},
	}
	for _, tt := range tests {
		gotMin, gotMax := findingCountForLevel(tt.level)
		if gotMin != tt.wantMin || gotMax != tt.wantMax {
			t.Errorf("level %d: got %d..%d, want %d..%d", tt.level, gotMin, gotMax, tt.wantMin, tt.wantMax)
		}
	}
}
