package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileIsNil(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("load missing: %v", err)
	}
	if s != nil {
		t.Fatal("expected nil settings for missing file")
	}
}

func TestLoadPartialFileOverridesOnlyNamedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	content := []byte(`
start_difficulty: 3
calibration:
  advance_f1: 0.9
  anchor_categories: [injection]
reflection:
  min_tokens: 20
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s == nil {
		t.Fatal("expected settings")
	}

	cfg := s.SessionConfig()
	if cfg.StartDifficulty != 3 {
		t.Errorf("start difficulty = %d, want 3", cfg.StartDifficulty)
	}
	if cfg.Calibration.AdvanceF1 != 0.9 {
		t.Errorf("advance f1 = %v, want 0.9", cfg.Calibration.AdvanceF1)
	}
	if len(cfg.Calibration.AnchorCategories) != 1 || cfg.Calibration.AnchorCategories[0] != "injection" {
		t.Errorf("anchors = %v, want [injection]", cfg.Calibration.AnchorCategories)
	}
	if cfg.Reflection.MinTokens != 20 {
		t.Errorf("min tokens = %d, want 20", cfg.Reflection.MinTokens)
	}
	// Unnamed fields stay zero so the engine applies its defaults.
	if cfg.Calibration.RetreatF1 != 0 {
		t.Errorf("retreat f1 = %v, want 0 (engine default applies)", cfg.Calibration.RetreatF1)
	}
	if cfg.Coverage.Window != 0 {
		t.Errorf("coverage window = %v, want 0 (engine default applies)", cfg.Coverage.Window)
	}
}

func TestLoadMalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte("calibration: ["), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestNilSettingsSessionConfig(t *testing.T) {
	var s *Settings
	cfg := s.SessionConfig()
	if cfg.StartDifficulty != 0 {
		t.Errorf("start difficulty = %d, want 0", cfg.StartDifficulty)
	}
}

func TestPathHonorsEnvOverride(t *testing.T) {
	t.Setenv("REVIEWGYM_CONFIG", "/tmp/custom.yaml")
	p, err := Path()
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	if p != "/tmp/custom.yaml" {
		t.Errorf("path = %q, want /tmp/custom.yaml", p)
	}
}
