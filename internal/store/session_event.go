package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetStartDifficulty(data.StartDifficulty).
		SetRoundsPlayed(data.RoundsPlayed).
		SetFinalDifficulty(data.FinalDifficulty).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendChallengeEvent(ctx context.Context, data ChallengeEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ChallengeEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetChallengeID(data.ChallengeID).
		SetTitle(data.Title).
		SetLanguage(data.Language).
		SetDifficulty(data.Difficulty).
		SetSource(data.Source).
		SetFindingCount(data.FindingCount).
		SetTrapCount(data.TrapCount)

	if len(data.Categories) > 0 {
		builder = builder.SetCategories(data.Categories)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save challenge event: %w", err)
	}
	return nil
}
