package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RoundEvent records one sealed review round: the scoring outcome plus
// the accepted reflection. Scalar metric columns allow cheap stats
// queries; the full scorecard is kept as JSON for state rebuild.
type RoundEvent struct {
	ent.Schema
}

func (RoundEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (RoundEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Links to SessionEvent"),
		field.String("challenge_id").
			NotEmpty().
			Comment("Links to ChallengeEvent"),
		field.Int("round_index").
			Comment("Zero-based position in the learner's full history"),
		field.Int("difficulty").
			Comment("Level the round was played at"),
		field.JSON("category_tags", []string{}).
			Optional().
			Comment("Distinct ground-truth categories of the challenge"),
		field.Int("true_positives").
			Default(0),
		field.Int("false_positives").
			Default(0),
		field.Int("false_negatives").
			Default(0),
		field.Int("trap_hits").
			Default(0),
		field.Float("precision").
			Default(0),
		field.Float("recall").
			Default(0),
		field.Float("f1").
			Default(0),
		field.Float("severity_accuracy").
			Default(0),
		field.Float("category_accuracy").
			Default(0),
		field.Text("reflection").
			NotEmpty().
			Comment("The accepted reflection text"),
		field.JSON("scorecard", map[string]any{}).
			Optional().
			Comment("Full scorecard as JSON, for rebuilding engine state"),
	}
}

func (RoundEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("round_index"),
		index.Fields("difficulty"),
	}
}
