package challenge

import (
	"context"
	"sync"

	"github.com/reviewgym/reviewgym/internal/finding"
)

// BuiltinProvider serves hand-authored challenges from the embedded
// bank. It needs no network or API key, so it backs offline play and
// the no-key fallback path.
type BuiltinProvider struct {
	mu     sync.Mutex
	served map[string]int
}

// NewBuiltin returns a provider over the embedded bank.
func NewBuiltin() *BuiltinProvider {
	return &BuiltinProvider{served: make(map[string]int)}
}

// Generate picks the bank entry that best fits the request: closest
// difficulty first, then required-category overlap, then exclusion
// misses, then least-served so repeated play rotates through the bank.
// Deterministic for a given request and serve history.
func (p *BuiltinProvider) Generate(_ context.Context, req SelectionRequest) (*Challenge, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	best := 0
	bestScore := p.score(&bank[0], req)
	for i := 1; i < len(bank); i++ {
		if s := p.score(&bank[i], req); s > bestScore {
			best, bestScore = i, s
		}
	}

	p.served[bank[best].ID]++
	return cloneChallenge(&bank[best]), nil
}

func (p *BuiltinProvider) score(ch *Challenge, req SelectionRequest) int {
	score := 0

	diff := ch.Difficulty - req.Difficulty
	if diff < 0 {
		diff = -diff
	}
	score -= diff * 100

	present := make(map[string]bool)
	for _, f := range ch.GroundTruth {
		present[f.Category] = true
	}
	for _, cat := range req.RequiredCategories {
		if present[cat] {
			score += 10
		}
	}
	for _, cat := range req.ExcludedCategories {
		if present[cat] {
			score -= 5
		}
	}

	score -= p.served[ch.ID] * 3
	return score
}

// cloneChallenge copies a bank entry so the engine never holds a
// pointer into the shared bank.
func cloneChallenge(src *Challenge) *Challenge {
	out := *src
	out.GroundTruth = make([]finding.Finding, len(src.GroundTruth))
	copy(out.GroundTruth, src.GroundTruth)
	if len(src.Traps) > 0 {
		out.Traps = make([]finding.Finding, len(src.Traps))
		copy(out.Traps, src.Traps)
	}
	return &out
}
