package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ChallengeEvent records every challenge served to the learner, without
// its ground truth. The answer key is only persisted once the round is
// sealed, inside the RoundEvent scorecard.
type ChallengeEvent struct {
	ent.Schema
}

func (ChallengeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (ChallengeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("challenge_id").
			NotEmpty().
			Comment("Generated or builtin challenge ID"),
		field.String("title").
			NotEmpty().
			Comment("Display name of the exercise"),
		field.String("language").
			Default("").
			Comment("Language of the code under review"),
		field.Int("difficulty").
			Comment("Level (1..5) the challenge was served at"),
		field.String("source").
			NotEmpty().
			Comment("llm or builtin"),
		field.JSON("categories", []string{}).
			Optional().
			Comment("Distinct ground-truth categories, sorted"),
		field.Int("finding_count").
			Default(0).
			Comment("Number of planted findings"),
		field.Int("trap_count").
			Default(0).
			Comment("Number of planted traps"),
	}
}

func (ChallengeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("challenge_id"),
		index.Fields("difficulty"),
	}
}
