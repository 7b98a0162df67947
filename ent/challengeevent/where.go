// Code generated by ent, DO NOT EDIT.

package challengeevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/reviewgym/reviewgym/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldSessionID, v))
}

// ChallengeID applies equality check predicate on the "challenge_id" field. It's identical to ChallengeIDEQ.
func ChallengeID(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldChallengeID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldTitle, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldLanguage, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldDifficulty, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldSource, v))
}

// FindingCount applies equality check predicate on the "finding_count" field. It's identical to FindingCountEQ.
func FindingCount(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldFindingCount, v))
}

// TrapCount applies equality check predicate on the "trap_count" field. It's identical to TrapCountEQ.
func TrapCount(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldTrapCount, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ChallengeIDEQ applies the EQ predicate on the "challenge_id" field.
func ChallengeIDEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldChallengeID, v))
}

// ChallengeIDNEQ applies the NEQ predicate on the "challenge_id" field.
func ChallengeIDNEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldChallengeID, v))
}

// ChallengeIDIn applies the In predicate on the "challenge_id" field.
func ChallengeIDIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldChallengeID, vs...))
}

// ChallengeIDNotIn applies the NotIn predicate on the "challenge_id" field.
func ChallengeIDNotIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldChallengeID, vs...))
}

// ChallengeIDGT applies the GT predicate on the "challenge_id" field.
func ChallengeIDGT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldChallengeID, v))
}

// ChallengeIDGTE applies the GTE predicate on the "challenge_id" field.
func ChallengeIDGTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldChallengeID, v))
}

// ChallengeIDLT applies the LT predicate on the "challenge_id" field.
func ChallengeIDLT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldChallengeID, v))
}

// ChallengeIDLTE applies the LTE predicate on the "challenge_id" field.
func ChallengeIDLTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldChallengeID, v))
}

// ChallengeIDContains applies the Contains predicate on the "challenge_id" field.
func ChallengeIDContains(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContains(FieldChallengeID, v))
}

// ChallengeIDHasPrefix applies the HasPrefix predicate on the "challenge_id" field.
func ChallengeIDHasPrefix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasPrefix(FieldChallengeID, v))
}

// ChallengeIDHasSuffix applies the HasSuffix predicate on the "challenge_id" field.
func ChallengeIDHasSuffix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasSuffix(FieldChallengeID, v))
}

// ChallengeIDEqualFold applies the EqualFold predicate on the "challenge_id" field.
func ChallengeIDEqualFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEqualFold(FieldChallengeID, v))
}

// ChallengeIDContainsFold applies the ContainsFold predicate on the "challenge_id" field.
func ChallengeIDContainsFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContainsFold(FieldChallengeID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContainsFold(FieldTitle, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContainsFold(FieldLanguage, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldDifficulty, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldContainsFold(FieldSource, v))
}

// CategoriesIsNil applies the IsNil predicate on the "categories" field.
func CategoriesIsNil() predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIsNull(FieldCategories))
}

// CategoriesNotNil applies the NotNil predicate on the "categories" field.
func CategoriesNotNil() predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotNull(FieldCategories))
}

// FindingCountEQ applies the EQ predicate on the "finding_count" field.
func FindingCountEQ(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldFindingCount, v))
}

// FindingCountNEQ applies the NEQ predicate on the "finding_count" field.
func FindingCountNEQ(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldFindingCount, v))
}

// FindingCountIn applies the In predicate on the "finding_count" field.
func FindingCountIn(vs ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldFindingCount, vs...))
}

// FindingCountNotIn applies the NotIn predicate on the "finding_count" field.
func FindingCountNotIn(vs ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldFindingCount, vs...))
}

// FindingCountGT applies the GT predicate on the "finding_count" field.
func FindingCountGT(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldFindingCount, v))
}

// FindingCountGTE applies the GTE predicate on the "finding_count" field.
func FindingCountGTE(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldFindingCount, v))
}

// FindingCountLT applies the LT predicate on the "finding_count" field.
func FindingCountLT(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldFindingCount, v))
}

// FindingCountLTE applies the LTE predicate on the "finding_count" field.
func FindingCountLTE(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldFindingCount, v))
}

// TrapCountEQ applies the EQ predicate on the "trap_count" field.
func TrapCountEQ(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldEQ(FieldTrapCount, v))
}

// TrapCountNEQ applies the NEQ predicate on the "trap_count" field.
func TrapCountNEQ(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNEQ(FieldTrapCount, v))
}

// TrapCountIn applies the In predicate on the "trap_count" field.
func TrapCountIn(vs ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldIn(FieldTrapCount, vs...))
}

// TrapCountNotIn applies the NotIn predicate on the "trap_count" field.
func TrapCountNotIn(vs ...int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldNotIn(FieldTrapCount, vs...))
}

// TrapCountGT applies the GT predicate on the "trap_count" field.
func TrapCountGT(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGT(FieldTrapCount, v))
}

// TrapCountGTE applies the GTE predicate on the "trap_count" field.
func TrapCountGTE(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldGTE(FieldTrapCount, v))
}

// TrapCountLT applies the LT predicate on the "trap_count" field.
func TrapCountLT(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLT(FieldTrapCount, v))
}

// TrapCountLTE applies the LTE predicate on the "trap_count" field.
func TrapCountLTE(v int) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.FieldLTE(FieldTrapCount, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ChallengeEvent) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ChallengeEvent) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ChallengeEvent) predicate.ChallengeEvent {
	return predicate.ChallengeEvent(sql.NotPredicates(p))
}
