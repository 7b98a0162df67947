package challenge

import (
	"context"
	"fmt"
	"os"

	"github.com/reviewgym/reviewgym/internal/store"
)

// RecordingProvider is a decorator that appends a ChallengeEvent for
// every successfully generated challenge. It records metadata only:
// difficulty, categories, and counts, never the ground truth itself.
type RecordingProvider struct {
	inner     Provider
	eventRepo store.EventRepo
	sessionID string
	source    string
}

// WithRecording wraps a Provider with challenge event logging. Source
// labels where the content came from, "llm" or "builtin".
func WithRecording(p Provider, repo store.EventRepo, sessionID, source string) Provider {
	return &RecordingProvider{inner: p, eventRepo: repo, sessionID: sessionID, source: source}
}

func (r *RecordingProvider) Generate(ctx context.Context, req SelectionRequest) (*Challenge, error) {
	ch, err := r.inner.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	data := store.ChallengeEventData{
		SessionID:    r.sessionID,
		ChallengeID:  ch.ID,
		Title:        ch.Title,
		Language:     ch.Language,
		Difficulty:   ch.Difficulty,
		Source:       r.source,
		Categories:   ch.Categories(),
		FindingCount: len(ch.GroundTruth),
		TrapCount:    len(ch.Traps),
	}

	// Log the event but never fail the round over it.
	if logErr := r.eventRepo.AppendChallengeEvent(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log challenge event: %v\n", logErr)
	}

	return ch, nil
}
