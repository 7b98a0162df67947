package calibration

import "github.com/reviewgym/reviewgym/internal/history"

const (
	// DefaultAdvanceWindow is how many recent rounds at the current
	// level must clear the advance gates.
	DefaultAdvanceWindow = 3

	// DefaultAdvanceF1 is the minimum F1 each advance-window round needs.
	DefaultAdvanceF1 = 0.75

	// DefaultAdvancePrecision is the minimum precision each
	// advance-window round needs.
	DefaultAdvancePrecision = 0.60

	// DefaultRetreatWindow is how many recent rounds at the current
	// level must fall below the retreat gate.
	DefaultRetreatWindow = 2

	// DefaultRetreatF1 is the F1 ceiling below which a round counts
	// toward retreating.
	DefaultRetreatF1 = 0.30

	// DefaultGateLevel is the level at and above which advancement also
	// requires anchor-category competence.
	DefaultGateLevel = 3

	// DefaultAnchorRecall is the per-category recall an anchor category
	// must reach at least once in the qualifying window.
	DefaultAnchorRecall = 0.50

	// MinLevel and MaxLevel bound the difficulty scale.
	MinLevel = 1
	MaxLevel = 5
)

// DefaultAnchorCategories returns the foundational categories whose
// recall gates advancement past the gate level.
func DefaultAnchorCategories() []string {
	return []string{"access-control", "injection", "crypto-defaults"}
}

// Config collects every calibration threshold so each session can be
// parameterized independently. The zero value is usable; zero fields
// fall back to the package defaults.
type Config struct {
	AdvanceWindow    int      `json:"advance_window"`
	AdvanceF1        float64  `json:"advance_f1"`
	AdvancePrecision float64  `json:"advance_precision"`
	RetreatWindow    int      `json:"retreat_window"`
	RetreatF1        float64  `json:"retreat_f1"`
	GateLevel        int      `json:"gate_level"`
	AnchorCategories []string `json:"anchor_categories"`
	AnchorRecall     float64  `json:"anchor_recall"`
}

// DefaultConfig returns the standard calibration thresholds.
func DefaultConfig() Config {
	return Config{
		AdvanceWindow:    DefaultAdvanceWindow,
		AdvanceF1:        DefaultAdvanceF1,
		AdvancePrecision: DefaultAdvancePrecision,
		RetreatWindow:    DefaultRetreatWindow,
		RetreatF1:        DefaultRetreatF1,
		GateLevel:        DefaultGateLevel,
		AnchorCategories: DefaultAnchorCategories(),
		AnchorRecall:     DefaultAnchorRecall,
	}
}

func (c Config) withDefaults() Config {
	if c.AdvanceWindow <= 0 {
		c.AdvanceWindow = DefaultAdvanceWindow
	}
	if c.AdvanceF1 <= 0 {
		c.AdvanceF1 = DefaultAdvanceF1
	}
	if c.AdvancePrecision <= 0 {
		c.AdvancePrecision = DefaultAdvancePrecision
	}
	if c.RetreatWindow <= 0 {
		c.RetreatWindow = DefaultRetreatWindow
	}
	if c.RetreatF1 <= 0 {
		c.RetreatF1 = DefaultRetreatF1
	}
	if c.GateLevel <= 0 {
		c.GateLevel = DefaultGateLevel
	}
	if c.AnchorCategories == nil {
		c.AnchorCategories = DefaultAnchorCategories()
	}
	if c.AnchorRecall <= 0 {
		c.AnchorRecall = DefaultAnchorRecall
	}
	return c
}

// Calibrator decides the next round's difficulty from recent history.
type Calibrator struct {
	cfg Config
}

// New returns a calibrator using cfg, with zero fields defaulted.
func New(cfg Config) *Calibrator {
	return &Calibrator{cfg: cfg.withDefaults()}
}

// Next returns the difficulty for the upcoming round. Rules are
// evaluated in priority order and the first match wins:
//
//  1. The AdvanceWindow most recent rounds at the current level all
//     reached the advance F1 and precision gates: go up one level.
//     At or above GateLevel, advancing additionally requires each
//     anchor category to have reached AnchorRecall at least once in
//     that same window; otherwise hold.
//  2. The RetreatWindow most recent rounds at the current level all
//     fell below the retreat F1 gate: go down one level.
//  3. Otherwise hold.
//
// A window with too few rounds never satisfies its rule; sparse
// history holds the current level rather than erroring.
func (c *Calibrator) Next(h *history.History, current int) int {
	current = clampLevel(current)

	recent := lastAtLevel(h, current, c.cfg.AdvanceWindow)
	if len(recent) == c.cfg.AdvanceWindow && c.allPassAdvance(recent) {
		if current >= c.cfg.GateLevel && !c.anchorsCleared(recent) {
			return current
		}
		return clampLevel(current + 1)
	}

	recent = lastAtLevel(h, current, c.cfg.RetreatWindow)
	if len(recent) == c.cfg.RetreatWindow && c.allBelowRetreat(recent) {
		return clampLevel(current - 1)
	}

	return current
}

func (c *Calibrator) allPassAdvance(rounds []history.Round) bool {
	for _, r := range rounds {
		if r.Scorecard == nil {
			return false
		}
		if r.Scorecard.F1 < c.cfg.AdvanceF1 || r.Scorecard.Precision < c.cfg.AdvancePrecision {
			return false
		}
	}
	return true
}

func (c *Calibrator) allBelowRetreat(rounds []history.Round) bool {
	for _, r := range rounds {
		if r.Scorecard == nil {
			return false
		}
		if r.Scorecard.F1 >= c.cfg.RetreatF1 {
			return false
		}
	}
	return true
}

// anchorsCleared reports whether every anchor category reached the
// anchor recall threshold in at least one round of the window. A round
// whose ground truth never planted the anchor category does not count.
func (c *Calibrator) anchorsCleared(rounds []history.Round) bool {
	for _, anchor := range c.cfg.AnchorCategories {
		cleared := false
		for _, r := range rounds {
			if r.Scorecard == nil {
				continue
			}
			if recall, ok := r.Scorecard.PerCategoryRecall[anchor]; ok && recall >= c.cfg.AnchorRecall {
				cleared = true
				break
			}
		}
		if !cleared {
			return false
		}
	}
	return true
}

// lastAtLevel returns up to n most recent rounds played at the given
// difficulty level, oldest first.
func lastAtLevel(h *history.History, level, n int) []history.Round {
	if n <= 0 {
		return nil
	}
	all := h.All()
	var out []history.Round
	for i := len(all) - 1; i >= 0 && len(out) < n; i-- {
		if all[i].Difficulty == level {
			out = append(out, all[i])
		}
	}
	// Collected newest first; flip to oldest first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func clampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
