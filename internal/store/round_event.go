package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/reviewgym/reviewgym/ent"
	"github.com/reviewgym/reviewgym/ent/roundevent"
	"github.com/reviewgym/reviewgym/internal/scoring"
)

func (r *eventRepo) AppendRoundEvent(ctx context.Context, data RoundEventData) error {
	if data.Scorecard == nil {
		return fmt.Errorf("round event for round %d has no scorecard", data.RoundIndex)
	}

	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	cardMap, err := scorecardToMap(data.Scorecard)
	if err != nil {
		return fmt.Errorf("marshal scorecard: %w", err)
	}

	builder := r.client.RoundEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetChallengeID(data.ChallengeID).
		SetRoundIndex(data.RoundIndex).
		SetDifficulty(data.Difficulty).
		SetTruePositives(data.Scorecard.TP()).
		SetFalsePositives(data.Scorecard.FP()).
		SetFalseNegatives(data.Scorecard.FN()).
		SetTrapHits(len(data.Scorecard.TrapHits)).
		SetPrecision(data.Scorecard.Precision).
		SetRecall(data.Scorecard.Recall).
		SetF1(data.Scorecard.F1).
		SetSeverityAccuracy(data.Scorecard.SeverityAccuracy).
		SetCategoryAccuracy(data.Scorecard.CategoryAccuracy).
		SetReflection(data.Reflection).
		SetScorecard(cardMap)

	if len(data.CategoryTags) > 0 {
		builder = builder.SetCategoryTags(data.CategoryTags)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save round event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentRounds(ctx context.Context, limit int) ([]RoundRecord, error) {
	q := r.client.RoundEvent.Query().
		Order(ent.Desc(roundevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}

	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent rounds: %w", err)
	}

	// Newest-first from the query; the engine seeds history oldest first.
	records := make([]RoundRecord, len(events))
	for i, e := range events {
		rec, err := roundEventToRecord(e)
		if err != nil {
			return nil, err
		}
		records[len(events)-1-i] = rec
	}
	return records, nil
}

func (r *eventRepo) RoundCount(ctx context.Context) (int, error) {
	count, err := r.client.RoundEvent.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count rounds: %w", err)
	}
	return count, nil
}

func (r *eventRepo) LastSequence(ctx context.Context) (int64, error) {
	return r.seq.Current(ctx)
}

func roundEventToRecord(e *ent.RoundEvent) (RoundRecord, error) {
	card, err := scorecardFromMap(e.Scorecard)
	if err != nil {
		return RoundRecord{}, fmt.Errorf("unmarshal scorecard for round %d: %w", e.RoundIndex, err)
	}
	return RoundRecord{
		ID:        e.ID,
		Sequence:  e.Sequence,
		Timestamp: e.Timestamp,
		RoundEventData: RoundEventData{
			SessionID:    e.SessionID,
			ChallengeID:  e.ChallengeID,
			RoundIndex:   e.RoundIndex,
			Difficulty:   e.Difficulty,
			CategoryTags: e.CategoryTags,
			Reflection:   e.Reflection,
			Scorecard:    card,
		},
	}, nil
}

// scorecardToMap converts a scorecard to map[string]any for ent JSON storage.
func scorecardToMap(card *scoring.Scorecard) (map[string]any, error) {
	b, err := json.Marshal(card)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// scorecardFromMap rebuilds the scorecard from its stored JSON form.
func scorecardFromMap(m map[string]any) (*scoring.Scorecard, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	var card scoring.Scorecard
	if err := json.Unmarshal(b, &card); err != nil {
		return nil, err
	}
	return &card, nil
}
