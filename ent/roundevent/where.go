// Code generated by ent, DO NOT EDIT.

package roundevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/reviewgym/reviewgym/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldSessionID, v))
}

// ChallengeID applies equality check predicate on the "challenge_id" field. It's identical to ChallengeIDEQ.
func ChallengeID(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldChallengeID, v))
}

// RoundIndex applies equality check predicate on the "round_index" field. It's identical to RoundIndexEQ.
func RoundIndex(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldRoundIndex, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldDifficulty, v))
}

// TruePositives applies equality check predicate on the "true_positives" field. It's identical to TruePositivesEQ.
func TruePositives(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldTruePositives, v))
}

// FalsePositives applies equality check predicate on the "false_positives" field. It's identical to FalsePositivesEQ.
func FalsePositives(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldFalsePositives, v))
}

// FalseNegatives applies equality check predicate on the "false_negatives" field. It's identical to FalseNegativesEQ.
func FalseNegatives(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldFalseNegatives, v))
}

// TrapHits applies equality check predicate on the "trap_hits" field. It's identical to TrapHitsEQ.
func TrapHits(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldTrapHits, v))
}

// Precision applies equality check predicate on the "precision" field. It's identical to PrecisionEQ.
func Precision(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldPrecision, v))
}

// Recall applies equality check predicate on the "recall" field. It's identical to RecallEQ.
func Recall(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldRecall, v))
}

// F1 applies equality check predicate on the "f1" field. It's identical to F1EQ.
func F1(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldF1, v))
}

// SeverityAccuracy applies equality check predicate on the "severity_accuracy" field. It's identical to SeverityAccuracyEQ.
func SeverityAccuracy(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldSeverityAccuracy, v))
}

// CategoryAccuracy applies equality check predicate on the "category_accuracy" field. It's identical to CategoryAccuracyEQ.
func CategoryAccuracy(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldCategoryAccuracy, v))
}

// Reflection applies equality check predicate on the "reflection" field. It's identical to ReflectionEQ.
func Reflection(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldReflection, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ChallengeIDEQ applies the EQ predicate on the "challenge_id" field.
func ChallengeIDEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldChallengeID, v))
}

// ChallengeIDNEQ applies the NEQ predicate on the "challenge_id" field.
func ChallengeIDNEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldChallengeID, v))
}

// ChallengeIDIn applies the In predicate on the "challenge_id" field.
func ChallengeIDIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldChallengeID, vs...))
}

// ChallengeIDNotIn applies the NotIn predicate on the "challenge_id" field.
func ChallengeIDNotIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldChallengeID, vs...))
}

// ChallengeIDGT applies the GT predicate on the "challenge_id" field.
func ChallengeIDGT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldChallengeID, v))
}

// ChallengeIDGTE applies the GTE predicate on the "challenge_id" field.
func ChallengeIDGTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldChallengeID, v))
}

// ChallengeIDLT applies the LT predicate on the "challenge_id" field.
func ChallengeIDLT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldChallengeID, v))
}

// ChallengeIDLTE applies the LTE predicate on the "challenge_id" field.
func ChallengeIDLTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldChallengeID, v))
}

// ChallengeIDContains applies the Contains predicate on the "challenge_id" field.
func ChallengeIDContains(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContains(FieldChallengeID, v))
}

// ChallengeIDHasPrefix applies the HasPrefix predicate on the "challenge_id" field.
func ChallengeIDHasPrefix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasPrefix(FieldChallengeID, v))
}

// ChallengeIDHasSuffix applies the HasSuffix predicate on the "challenge_id" field.
func ChallengeIDHasSuffix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasSuffix(FieldChallengeID, v))
}

// ChallengeIDEqualFold applies the EqualFold predicate on the "challenge_id" field.
func ChallengeIDEqualFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEqualFold(FieldChallengeID, v))
}

// ChallengeIDContainsFold applies the ContainsFold predicate on the "challenge_id" field.
func ChallengeIDContainsFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContainsFold(FieldChallengeID, v))
}

// RoundIndexEQ applies the EQ predicate on the "round_index" field.
func RoundIndexEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldRoundIndex, v))
}

// RoundIndexNEQ applies the NEQ predicate on the "round_index" field.
func RoundIndexNEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldRoundIndex, v))
}

// RoundIndexIn applies the In predicate on the "round_index" field.
func RoundIndexIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldRoundIndex, vs...))
}

// RoundIndexNotIn applies the NotIn predicate on the "round_index" field.
func RoundIndexNotIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldRoundIndex, vs...))
}

// RoundIndexGT applies the GT predicate on the "round_index" field.
func RoundIndexGT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldRoundIndex, v))
}

// RoundIndexGTE applies the GTE predicate on the "round_index" field.
func RoundIndexGTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldRoundIndex, v))
}

// RoundIndexLT applies the LT predicate on the "round_index" field.
func RoundIndexLT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldRoundIndex, v))
}

// RoundIndexLTE applies the LTE predicate on the "round_index" field.
func RoundIndexLTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldRoundIndex, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldDifficulty, v))
}

// CategoryTagsIsNil applies the IsNil predicate on the "category_tags" field.
func CategoryTagsIsNil() predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIsNull(FieldCategoryTags))
}

// CategoryTagsNotNil applies the NotNil predicate on the "category_tags" field.
func CategoryTagsNotNil() predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotNull(FieldCategoryTags))
}

// TruePositivesEQ applies the EQ predicate on the "true_positives" field.
func TruePositivesEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldTruePositives, v))
}

// TruePositivesNEQ applies the NEQ predicate on the "true_positives" field.
func TruePositivesNEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldTruePositives, v))
}

// TruePositivesIn applies the In predicate on the "true_positives" field.
func TruePositivesIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldTruePositives, vs...))
}

// TruePositivesNotIn applies the NotIn predicate on the "true_positives" field.
func TruePositivesNotIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldTruePositives, vs...))
}

// TruePositivesGT applies the GT predicate on the "true_positives" field.
func TruePositivesGT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldTruePositives, v))
}

// TruePositivesGTE applies the GTE predicate on the "true_positives" field.
func TruePositivesGTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldTruePositives, v))
}

// TruePositivesLT applies the LT predicate on the "true_positives" field.
func TruePositivesLT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldTruePositives, v))
}

// TruePositivesLTE applies the LTE predicate on the "true_positives" field.
func TruePositivesLTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldTruePositives, v))
}

// FalsePositivesEQ applies the EQ predicate on the "false_positives" field.
func FalsePositivesEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldFalsePositives, v))
}

// FalsePositivesNEQ applies the NEQ predicate on the "false_positives" field.
func FalsePositivesNEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldFalsePositives, v))
}

// FalsePositivesIn applies the In predicate on the "false_positives" field.
func FalsePositivesIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldFalsePositives, vs...))
}

// FalsePositivesNotIn applies the NotIn predicate on the "false_positives" field.
func FalsePositivesNotIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldFalsePositives, vs...))
}

// FalsePositivesGT applies the GT predicate on the "false_positives" field.
func FalsePositivesGT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldFalsePositives, v))
}

// FalsePositivesGTE applies the GTE predicate on the "false_positives" field.
func FalsePositivesGTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldFalsePositives, v))
}

// FalsePositivesLT applies the LT predicate on the "false_positives" field.
func FalsePositivesLT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldFalsePositives, v))
}

// FalsePositivesLTE applies the LTE predicate on the "false_positives" field.
func FalsePositivesLTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldFalsePositives, v))
}

// FalseNegativesEQ applies the EQ predicate on the "false_negatives" field.
func FalseNegativesEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldFalseNegatives, v))
}

// FalseNegativesNEQ applies the NEQ predicate on the "false_negatives" field.
func FalseNegativesNEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldFalseNegatives, v))
}

// FalseNegativesIn applies the In predicate on the "false_negatives" field.
func FalseNegativesIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldFalseNegatives, vs...))
}

// FalseNegativesNotIn applies the NotIn predicate on the "false_negatives" field.
func FalseNegativesNotIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldFalseNegatives, vs...))
}

// FalseNegativesGT applies the GT predicate on the "false_negatives" field.
func FalseNegativesGT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldFalseNegatives, v))
}

// FalseNegativesGTE applies the GTE predicate on the "false_negatives" field.
func FalseNegativesGTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldFalseNegatives, v))
}

// FalseNegativesLT applies the LT predicate on the "false_negatives" field.
func FalseNegativesLT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldFalseNegatives, v))
}

// FalseNegativesLTE applies the LTE predicate on the "false_negatives" field.
func FalseNegativesLTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldFalseNegatives, v))
}

// TrapHitsEQ applies the EQ predicate on the "trap_hits" field.
func TrapHitsEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldTrapHits, v))
}

// TrapHitsNEQ applies the NEQ predicate on the "trap_hits" field.
func TrapHitsNEQ(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldTrapHits, v))
}

// TrapHitsIn applies the In predicate on the "trap_hits" field.
func TrapHitsIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldTrapHits, vs...))
}

// TrapHitsNotIn applies the NotIn predicate on the "trap_hits" field.
func TrapHitsNotIn(vs ...int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldTrapHits, vs...))
}

// TrapHitsGT applies the GT predicate on the "trap_hits" field.
func TrapHitsGT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldTrapHits, v))
}

// TrapHitsGTE applies the GTE predicate on the "trap_hits" field.
func TrapHitsGTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldTrapHits, v))
}

// TrapHitsLT applies the LT predicate on the "trap_hits" field.
func TrapHitsLT(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldTrapHits, v))
}

// TrapHitsLTE applies the LTE predicate on the "trap_hits" field.
func TrapHitsLTE(v int) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldTrapHits, v))
}

// PrecisionEQ applies the EQ predicate on the "precision" field.
func PrecisionEQ(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldPrecision, v))
}

// PrecisionNEQ applies the NEQ predicate on the "precision" field.
func PrecisionNEQ(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldPrecision, v))
}

// PrecisionIn applies the In predicate on the "precision" field.
func PrecisionIn(vs ...float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldPrecision, vs...))
}

// PrecisionNotIn applies the NotIn predicate on the "precision" field.
func PrecisionNotIn(vs ...float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldPrecision, vs...))
}

// PrecisionGT applies the GT predicate on the "precision" field.
func PrecisionGT(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldPrecision, v))
}

// PrecisionGTE applies the GTE predicate on the "precision" field.
func PrecisionGTE(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldPrecision, v))
}

// PrecisionLT applies the LT predicate on the "precision" field.
func PrecisionLT(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldPrecision, v))
}

// PrecisionLTE applies the LTE predicate on the "precision" field.
func PrecisionLTE(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldPrecision, v))
}

// RecallEQ applies the EQ predicate on the "recall" field.
func RecallEQ(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldRecall, v))
}

// RecallNEQ applies the NEQ predicate on the "recall" field.
func RecallNEQ(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldRecall, v))
}

// RecallIn applies the In predicate on the "recall" field.
func RecallIn(vs ...float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldRecall, vs...))
}

// RecallNotIn applies the NotIn predicate on the "recall" field.
func RecallNotIn(vs ...float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldRecall, vs...))
}

// RecallGT applies the GT predicate on the "recall" field.
func RecallGT(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldRecall, v))
}

// RecallGTE applies the GTE predicate on the "recall" field.
func RecallGTE(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldRecall, v))
}

// RecallLT applies the LT predicate on the "recall" field.
func RecallLT(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldRecall, v))
}

// RecallLTE applies the LTE predicate on the "recall" field.
func RecallLTE(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldRecall, v))
}

// F1EQ applies the EQ predicate on the "f1" field.
func F1EQ(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldF1, v))
}

// F1NEQ applies the NEQ predicate on the "f1" field.
func F1NEQ(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldF1, v))
}

// F1In applies the In predicate on the "f1" field.
func F1In(vs ...float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldF1, vs...))
}

// F1NotIn applies the NotIn predicate on the "f1" field.
func F1NotIn(vs ...float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldF1, vs...))
}

// F1GT applies the GT predicate on the "f1" field.
func F1GT(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldF1, v))
}

// F1GTE applies the GTE predicate on the "f1" field.
func F1GTE(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldF1, v))
}

// F1LT applies the LT predicate on the "f1" field.
func F1LT(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldF1, v))
}

// F1LTE applies the LTE predicate on the "f1" field.
func F1LTE(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldF1, v))
}

// SeverityAccuracyEQ applies the EQ predicate on the "severity_accuracy" field.
func SeverityAccuracyEQ(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldSeverityAccuracy, v))
}

// SeverityAccuracyNEQ applies the NEQ predicate on the "severity_accuracy" field.
func SeverityAccuracyNEQ(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldSeverityAccuracy, v))
}

// SeverityAccuracyIn applies the In predicate on the "severity_accuracy" field.
func SeverityAccuracyIn(vs ...float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldSeverityAccuracy, vs...))
}

// SeverityAccuracyNotIn applies the NotIn predicate on the "severity_accuracy" field.
func SeverityAccuracyNotIn(vs ...float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldSeverityAccuracy, vs...))
}

// SeverityAccuracyGT applies the GT predicate on the "severity_accuracy" field.
func SeverityAccuracyGT(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldSeverityAccuracy, v))
}

// SeverityAccuracyGTE applies the GTE predicate on the "severity_accuracy" field.
func SeverityAccuracyGTE(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldSeverityAccuracy, v))
}

// SeverityAccuracyLT applies the LT predicate on the "severity_accuracy" field.
func SeverityAccuracyLT(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldSeverityAccuracy, v))
}

// SeverityAccuracyLTE applies the LTE predicate on the "severity_accuracy" field.
func SeverityAccuracyLTE(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldSeverityAccuracy, v))
}

// CategoryAccuracyEQ applies the EQ predicate on the "category_accuracy" field.
func CategoryAccuracyEQ(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldCategoryAccuracy, v))
}

// CategoryAccuracyNEQ applies the NEQ predicate on the "category_accuracy" field.
func CategoryAccuracyNEQ(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldCategoryAccuracy, v))
}

// CategoryAccuracyIn applies the In predicate on the "category_accuracy" field.
func CategoryAccuracyIn(vs ...float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldCategoryAccuracy, vs...))
}

// CategoryAccuracyNotIn applies the NotIn predicate on the "category_accuracy" field.
func CategoryAccuracyNotIn(vs ...float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldCategoryAccuracy, vs...))
}

// CategoryAccuracyGT applies the GT predicate on the "category_accuracy" field.
func CategoryAccuracyGT(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldCategoryAccuracy, v))
}

// CategoryAccuracyGTE applies the GTE predicate on the "category_accuracy" field.
func CategoryAccuracyGTE(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldCategoryAccuracy, v))
}

// CategoryAccuracyLT applies the LT predicate on the "category_accuracy" field.
func CategoryAccuracyLT(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldCategoryAccuracy, v))
}

// CategoryAccuracyLTE applies the LTE predicate on the "category_accuracy" field.
func CategoryAccuracyLTE(v float64) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldCategoryAccuracy, v))
}

// ReflectionEQ applies the EQ predicate on the "reflection" field.
func ReflectionEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEQ(FieldReflection, v))
}

// ReflectionNEQ applies the NEQ predicate on the "reflection" field.
func ReflectionNEQ(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNEQ(FieldReflection, v))
}

// ReflectionIn applies the In predicate on the "reflection" field.
func ReflectionIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIn(FieldReflection, vs...))
}

// ReflectionNotIn applies the NotIn predicate on the "reflection" field.
func ReflectionNotIn(vs ...string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotIn(FieldReflection, vs...))
}

// ReflectionGT applies the GT predicate on the "reflection" field.
func ReflectionGT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGT(FieldReflection, v))
}

// ReflectionGTE applies the GTE predicate on the "reflection" field.
func ReflectionGTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldGTE(FieldReflection, v))
}

// ReflectionLT applies the LT predicate on the "reflection" field.
func ReflectionLT(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLT(FieldReflection, v))
}

// ReflectionLTE applies the LTE predicate on the "reflection" field.
func ReflectionLTE(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldLTE(FieldReflection, v))
}

// ReflectionContains applies the Contains predicate on the "reflection" field.
func ReflectionContains(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContains(FieldReflection, v))
}

// ReflectionHasPrefix applies the HasPrefix predicate on the "reflection" field.
func ReflectionHasPrefix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasPrefix(FieldReflection, v))
}

// ReflectionHasSuffix applies the HasSuffix predicate on the "reflection" field.
func ReflectionHasSuffix(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldHasSuffix(FieldReflection, v))
}

// ReflectionEqualFold applies the EqualFold predicate on the "reflection" field.
func ReflectionEqualFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldEqualFold(FieldReflection, v))
}

// ReflectionContainsFold applies the ContainsFold predicate on the "reflection" field.
func ReflectionContainsFold(v string) predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldContainsFold(FieldReflection, v))
}

// ScorecardIsNil applies the IsNil predicate on the "scorecard" field.
func ScorecardIsNil() predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldIsNull(FieldScorecard))
}

// ScorecardNotNil applies the NotNil predicate on the "scorecard" field.
func ScorecardNotNil() predicate.RoundEvent {
	return predicate.RoundEvent(sql.FieldNotNull(FieldScorecard))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RoundEvent) predicate.RoundEvent {
	return predicate.RoundEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RoundEvent) predicate.RoundEvent {
	return predicate.RoundEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RoundEvent) predicate.RoundEvent {
	return predicate.RoundEvent(sql.NotPredicates(p))
}
