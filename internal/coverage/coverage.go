package coverage

import (
	"sort"

	"github.com/reviewgym/reviewgym/internal/history"
)

const (
	// DefaultWeakThreshold is the mean recall below which a category
	// counts as weak.
	DefaultWeakThreshold = 0.40

	// DefaultStrongThreshold is the mean recall at or above which a
	// category counts as strong.
	DefaultStrongThreshold = 0.80

	// DefaultWindow is how many appearances a category needs before it
	// can be judged at all, and how many recent appearances the mean is
	// taken over.
	DefaultWindow = 3
)

// Config holds the coverage thresholds. The zero value is usable; zero
// fields fall back to the package defaults.
type Config struct {
	WeakThreshold   float64 `json:"weak_threshold"`
	StrongThreshold float64 `json:"strong_threshold"`
	Window          int     `json:"window"`
}

// DefaultConfig returns the standard coverage thresholds.
func DefaultConfig() Config {
	return Config{
		WeakThreshold:   DefaultWeakThreshold,
		StrongThreshold: DefaultStrongThreshold,
		Window:          DefaultWindow,
	}
}

func (c Config) withDefaults() Config {
	if c.WeakThreshold <= 0 {
		c.WeakThreshold = DefaultWeakThreshold
	}
	if c.StrongThreshold <= 0 {
		c.StrongThreshold = DefaultStrongThreshold
	}
	if c.Window <= 0 {
		c.Window = DefaultWindow
	}
	return c
}

// Status classifies a category's standing.
type Status string

const (
	// StatusWeak marks categories the learner keeps missing.
	StatusWeak Status = "weak"
	// StatusStrong marks categories the learner reliably finds.
	StatusStrong Status = "strong"
	// StatusSteady marks categories between the two thresholds.
	StatusSteady Status = "steady"
	// StatusUntested marks categories seen fewer times than the window
	// requires; too little data to judge.
	StatusUntested Status = "untested"
)

// CategoryStat is one category's coverage summary.
type CategoryStat struct {
	Category string `json:"category"`
	// Appearances is how many rounds planted this category.
	Appearances int `json:"appearances"`
	// MeanRecall is the mean per-category recall over the most recent
	// window appearances. Zero when untested.
	MeanRecall float64 `json:"mean_recall"`
	// Found and Total are the lifetime tallies.
	Found int `json:"found"`
	Total int `json:"total"`
	// Weight is the summed interest weight of planted findings, used
	// for ordering.
	Weight float64 `json:"weight"`
	Status Status  `json:"status"`
}

// Tracker reads round history and classifies category coverage.
type Tracker struct {
	cfg Config
}

// New returns a tracker using cfg, with zero fields defaulted.
func New(cfg Config) *Tracker {
	return &Tracker{cfg: cfg.withDefaults()}
}

// WeakCategories returns the categories whose mean recall over their
// most recent window appearances is below the weak threshold. A
// category must have appeared in at least window rounds to qualify;
// sparse data reads as untested, never as weak.
func (t *Tracker) WeakCategories(h *history.History) []string {
	return t.withStatus(h, StatusWeak)
}

// StrongCategories returns the categories whose mean recall over their
// most recent window appearances is at or above the strong threshold,
// with at least window appearances.
func (t *Tracker) StrongCategories(h *history.History) []string {
	return t.withStatus(h, StatusStrong)
}

func (t *Tracker) withStatus(h *history.History, want Status) []string {
	var out []string
	for _, stat := range t.Snapshot(h) {
		if stat.Status == want {
			out = append(out, stat.Category)
		}
	}
	return out
}

// Snapshot summarizes every category seen in the history, ordered by
// cumulative interest weight descending, then name.
func (t *Tracker) Snapshot(h *history.History) []CategoryStat {
	recalls := make(map[string][]float64)
	for _, r := range h.All() {
		if r.Scorecard == nil {
			continue
		}
		for cat, recall := range r.Scorecard.PerCategoryRecall {
			recalls[cat] = append(recalls[cat], recall)
		}
	}

	totals := h.CategoryTotals()

	stats := make([]CategoryStat, 0, len(recalls))
	for cat, seen := range recalls {
		stat := CategoryStat{
			Category:    cat,
			Appearances: len(seen),
			Found:       totals[cat].Found,
			Total:       totals[cat].Total,
			Weight:      totals[cat].Weight,
			Status:      StatusUntested,
		}
		if len(seen) >= t.cfg.Window {
			recent := seen[len(seen)-t.cfg.Window:]
			stat.MeanRecall = mean(recent)
			switch {
			case stat.MeanRecall < t.cfg.WeakThreshold:
				stat.Status = StatusWeak
			case stat.MeanRecall >= t.cfg.StrongThreshold:
				stat.Status = StatusStrong
			default:
				stat.Status = StatusSteady
			}
		}
		stats = append(stats, stat)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Weight != stats[j].Weight {
			return stats[i].Weight > stats[j].Weight
		}
		return stats[i].Category < stats[j].Category
	})
	return stats
}

func mean(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
