// Code generated by ent, DO NOT EDIT.

package roundevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the roundevent type in the database.
	Label = "round_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldChallengeID holds the string denoting the challenge_id field in the database.
	FieldChallengeID = "challenge_id"
	// FieldRoundIndex holds the string denoting the round_index field in the database.
	FieldRoundIndex = "round_index"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldCategoryTags holds the string denoting the category_tags field in the database.
	FieldCategoryTags = "category_tags"
	// FieldTruePositives holds the string denoting the true_positives field in the database.
	FieldTruePositives = "true_positives"
	// FieldFalsePositives holds the string denoting the false_positives field in the database.
	FieldFalsePositives = "false_positives"
	// FieldFalseNegatives holds the string denoting the false_negatives field in the database.
	FieldFalseNegatives = "false_negatives"
	// FieldTrapHits holds the string denoting the trap_hits field in the database.
	FieldTrapHits = "trap_hits"
	// FieldPrecision holds the string denoting the precision field in the database.
	FieldPrecision = "precision"
	// FieldRecall holds the string denoting the recall field in the database.
	FieldRecall = "recall"
	// FieldF1 holds the string denoting the f1 field in the database.
	FieldF1 = "f1"
	// FieldSeverityAccuracy holds the string denoting the severity_accuracy field in the database.
	FieldSeverityAccuracy = "severity_accuracy"
	// FieldCategoryAccuracy holds the string denoting the category_accuracy field in the database.
	FieldCategoryAccuracy = "category_accuracy"
	// FieldReflection holds the string denoting the reflection field in the database.
	FieldReflection = "reflection"
	// FieldScorecard holds the string denoting the scorecard field in the database.
	FieldScorecard = "scorecard"
	// Table holds the table name of the roundevent in the database.
	Table = "round_events"
)

// Columns holds all SQL columns for roundevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldChallengeID,
	FieldRoundIndex,
	FieldDifficulty,
	FieldCategoryTags,
	FieldTruePositives,
	FieldFalsePositives,
	FieldFalseNegatives,
	FieldTrapHits,
	FieldPrecision,
	FieldRecall,
	FieldF1,
	FieldSeverityAccuracy,
	FieldCategoryAccuracy,
	FieldReflection,
	FieldScorecard,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// ChallengeIDValidator is a validator for the "challenge_id" field. It is called by the builders before save.
	ChallengeIDValidator func(string) error
	// DefaultTruePositives holds the default value on creation for the "true_positives" field.
	DefaultTruePositives int
	// DefaultFalsePositives holds the default value on creation for the "false_positives" field.
	DefaultFalsePositives int
	// DefaultFalseNegatives holds the default value on creation for the "false_negatives" field.
	DefaultFalseNegatives int
	// DefaultTrapHits holds the default value on creation for the "trap_hits" field.
	DefaultTrapHits int
	// DefaultPrecision holds the default value on creation for the "precision" field.
	DefaultPrecision float64
	// DefaultRecall holds the default value on creation for the "recall" field.
	DefaultRecall float64
	// DefaultF1 holds the default value on creation for the "f1" field.
	DefaultF1 float64
	// DefaultSeverityAccuracy holds the default value on creation for the "severity_accuracy" field.
	DefaultSeverityAccuracy float64
	// DefaultCategoryAccuracy holds the default value on creation for the "category_accuracy" field.
	DefaultCategoryAccuracy float64
	// ReflectionValidator is a validator for the "reflection" field. It is called by the builders before save.
	ReflectionValidator func(string) error
)

// OrderOption defines the ordering options for the RoundEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByChallengeID orders the results by the challenge_id field.
func ByChallengeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChallengeID, opts...).ToFunc()
}

// ByRoundIndex orders the results by the round_index field.
func ByRoundIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoundIndex, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByTruePositives orders the results by the true_positives field.
func ByTruePositives(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTruePositives, opts...).ToFunc()
}

// ByFalsePositives orders the results by the false_positives field.
func ByFalsePositives(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFalsePositives, opts...).ToFunc()
}

// ByFalseNegatives orders the results by the false_negatives field.
func ByFalseNegatives(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFalseNegatives, opts...).ToFunc()
}

// ByTrapHits orders the results by the trap_hits field.
func ByTrapHits(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrapHits, opts...).ToFunc()
}

// ByPrecision orders the results by the precision field.
func ByPrecision(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrecision, opts...).ToFunc()
}

// ByRecall orders the results by the recall field.
func ByRecall(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecall, opts...).ToFunc()
}

// ByF1 orders the results by the f1 field.
func ByF1(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldF1, opts...).ToFunc()
}

// BySeverityAccuracy orders the results by the severity_accuracy field.
func BySeverityAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverityAccuracy, opts...).ToFunc()
}

// ByCategoryAccuracy orders the results by the category_accuracy field.
func ByCategoryAccuracy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategoryAccuracy, opts...).ToFunc()
}

// ByReflection orders the results by the reflection field.
func ByReflection(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReflection, opts...).ToFunc()
}
