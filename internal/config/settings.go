package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/reviewgym/reviewgym/internal/calibration"
	"github.com/reviewgym/reviewgym/internal/coverage"
	"github.com/reviewgym/reviewgym/internal/session"
)

// Settings holds the tunable engine thresholds loaded from the optional
// settings file. Zero fields keep the engine defaults, so a partial file
// overrides only what it names.
type Settings struct {
	StartDifficulty int `yaml:"start_difficulty"`

	Calibration struct {
		AdvanceWindow    int      `yaml:"advance_window"`
		AdvanceF1        float64  `yaml:"advance_f1"`
		AdvancePrecision float64  `yaml:"advance_precision"`
		RetreatWindow    int      `yaml:"retreat_window"`
		RetreatF1        float64  `yaml:"retreat_f1"`
		GateLevel        int      `yaml:"gate_level"`
		AnchorCategories []string `yaml:"anchor_categories"`
		AnchorRecall     float64  `yaml:"anchor_recall"`
	} `yaml:"calibration"`

	Coverage struct {
		WeakThreshold   float64 `yaml:"weak_threshold"`
		StrongThreshold float64 `yaml:"strong_threshold"`
		Window          int     `yaml:"window"`
	} `yaml:"coverage"`

	Reflection struct {
		MinTokens int      `yaml:"min_tokens"`
		Denylist  []string `yaml:"denylist"`
	} `yaml:"reflection"`
}

// Path resolves the settings file location: REVIEWGYM_CONFIG when set,
// otherwise ~/.config/reviewgym/settings.yaml (honoring XDG_CONFIG_HOME).
func Path() (string, error) {
	if p := os.Getenv("REVIEWGYM_CONFIG"); p != "" {
		return p, nil
	}
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "reviewgym", "settings.yaml"), nil
}

// Load reads the settings file at path. A missing file returns nil
// settings and no error; the caller gets engine defaults either way via
// SessionConfig's nil-safety.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", path, err)
	}
	return &s, nil
}

// LoadDefault loads settings from the resolved default path.
func LoadDefault() (*Settings, error) {
	p, err := Path()
	if err != nil {
		return nil, err
	}
	return Load(p)
}

// SessionConfig turns the loaded settings into an engine config. Safe to
// call on a nil receiver: every threshold then falls back to the engine
// defaults.
func (s *Settings) SessionConfig() session.Config {
	cfg := session.Config{}
	if s == nil {
		return cfg
	}

	cfg.StartDifficulty = s.StartDifficulty
	cfg.Calibration = calibration.Config{
		AdvanceWindow:    s.Calibration.AdvanceWindow,
		AdvanceF1:        s.Calibration.AdvanceF1,
		AdvancePrecision: s.Calibration.AdvancePrecision,
		RetreatWindow:    s.Calibration.RetreatWindow,
		RetreatF1:        s.Calibration.RetreatF1,
		GateLevel:        s.Calibration.GateLevel,
		AnchorCategories: s.Calibration.AnchorCategories,
		AnchorRecall:     s.Calibration.AnchorRecall,
	}
	cfg.Coverage = coverage.Config{
		WeakThreshold:   s.Coverage.WeakThreshold,
		StrongThreshold: s.Coverage.StrongThreshold,
		Window:          s.Coverage.Window,
	}
	cfg.Reflection = session.ReflectionConfig{
		MinTokens: s.Reflection.MinTokens,
		Denylist:  s.Reflection.Denylist,
	}
	return cfg
}
