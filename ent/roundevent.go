// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/reviewgym/reviewgym/ent/roundevent"
)

// RoundEvent is the model entity for the RoundEvent schema.
type RoundEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Links to SessionEvent
	SessionID string `json:"session_id,omitempty"`
	// Links to ChallengeEvent
	ChallengeID string `json:"challenge_id,omitempty"`
	// Zero-based position in the learner's full history
	RoundIndex int `json:"round_index,omitempty"`
	// Level the round was played at
	Difficulty int `json:"difficulty,omitempty"`
	// Distinct ground-truth categories of the challenge
	CategoryTags []string `json:"category_tags,omitempty"`
	// TruePositives holds the value of the "true_positives" field.
	TruePositives int `json:"true_positives,omitempty"`
	// FalsePositives holds the value of the "false_positives" field.
	FalsePositives int `json:"false_positives,omitempty"`
	// FalseNegatives holds the value of the "false_negatives" field.
	FalseNegatives int `json:"false_negatives,omitempty"`
	// TrapHits holds the value of the "trap_hits" field.
	TrapHits int `json:"trap_hits,omitempty"`
	// Precision holds the value of the "precision" field.
	Precision float64 `json:"precision,omitempty"`
	// Recall holds the value of the "recall" field.
	Recall float64 `json:"recall,omitempty"`
	// F1 holds the value of the "f1" field.
	F1 float64 `json:"f1,omitempty"`
	// SeverityAccuracy holds the value of the "severity_accuracy" field.
	SeverityAccuracy float64 `json:"severity_accuracy,omitempty"`
	// CategoryAccuracy holds the value of the "category_accuracy" field.
	CategoryAccuracy float64 `json:"category_accuracy,omitempty"`
	// The accepted reflection text
	Reflection string `json:"reflection,omitempty"`
	// Full scorecard as JSON, for rebuilding engine state
	Scorecard    map[string]interface{} `json:"scorecard,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RoundEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case roundevent.FieldCategoryTags, roundevent.FieldScorecard:
			values[i] = new([]byte)
		case roundevent.FieldPrecision, roundevent.FieldRecall, roundevent.FieldF1, roundevent.FieldSeverityAccuracy, roundevent.FieldCategoryAccuracy:
			values[i] = new(sql.NullFloat64)
		case roundevent.FieldID, roundevent.FieldSequence, roundevent.FieldRoundIndex, roundevent.FieldDifficulty, roundevent.FieldTruePositives, roundevent.FieldFalsePositives, roundevent.FieldFalseNegatives, roundevent.FieldTrapHits:
			values[i] = new(sql.NullInt64)
		case roundevent.FieldSessionID, roundevent.FieldChallengeID, roundevent.FieldReflection:
			values[i] = new(sql.NullString)
		case roundevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RoundEvent fields.
func (_m *RoundEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case roundevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case roundevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case roundevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case roundevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case roundevent.FieldChallengeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field challenge_id", values[i])
			} else if value.Valid {
				_m.ChallengeID = value.String
			}
		case roundevent.FieldRoundIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field round_index", values[i])
			} else if value.Valid {
				_m.RoundIndex = int(value.Int64)
			}
		case roundevent.FieldDifficulty:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = int(value.Int64)
			}
		case roundevent.FieldCategoryTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field category_tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CategoryTags); err != nil {
					return fmt.Errorf("unmarshal field category_tags: %w", err)
				}
			}
		case roundevent.FieldTruePositives:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field true_positives", values[i])
			} else if value.Valid {
				_m.TruePositives = int(value.Int64)
			}
		case roundevent.FieldFalsePositives:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field false_positives", values[i])
			} else if value.Valid {
				_m.FalsePositives = int(value.Int64)
			}
		case roundevent.FieldFalseNegatives:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field false_negatives", values[i])
			} else if value.Valid {
				_m.FalseNegatives = int(value.Int64)
			}
		case roundevent.FieldTrapHits:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field trap_hits", values[i])
			} else if value.Valid {
				_m.TrapHits = int(value.Int64)
			}
		case roundevent.FieldPrecision:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field precision", values[i])
			} else if value.Valid {
				_m.Precision = value.Float64
			}
		case roundevent.FieldRecall:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field recall", values[i])
			} else if value.Valid {
				_m.Recall = value.Float64
			}
		case roundevent.FieldF1:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field f1", values[i])
			} else if value.Valid {
				_m.F1 = value.Float64
			}
		case roundevent.FieldSeverityAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field severity_accuracy", values[i])
			} else if value.Valid {
				_m.SeverityAccuracy = value.Float64
			}
		case roundevent.FieldCategoryAccuracy:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field category_accuracy", values[i])
			} else if value.Valid {
				_m.CategoryAccuracy = value.Float64
			}
		case roundevent.FieldReflection:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reflection", values[i])
			} else if value.Valid {
				_m.Reflection = value.String
			}
		case roundevent.FieldScorecard:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field scorecard", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Scorecard); err != nil {
					return fmt.Errorf("unmarshal field scorecard: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RoundEvent.
// This includes values selected through modifiers, order, etc.
func (_m *RoundEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this RoundEvent.
// Note that you need to call RoundEvent.Unwrap() before calling this method if this RoundEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RoundEvent) Update() *RoundEventUpdateOne {
	return NewRoundEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RoundEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RoundEvent) Unwrap() *RoundEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RoundEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RoundEvent) String() string {
	var builder strings.Builder
	builder.WriteString("RoundEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("challenge_id=")
	builder.WriteString(_m.ChallengeID)
	builder.WriteString(", ")
	builder.WriteString("round_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoundIndex))
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(fmt.Sprintf("%v", _m.Difficulty))
	builder.WriteString(", ")
	builder.WriteString("category_tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.CategoryTags))
	builder.WriteString(", ")
	builder.WriteString("true_positives=")
	builder.WriteString(fmt.Sprintf("%v", _m.TruePositives))
	builder.WriteString(", ")
	builder.WriteString("false_positives=")
	builder.WriteString(fmt.Sprintf("%v", _m.FalsePositives))
	builder.WriteString(", ")
	builder.WriteString("false_negatives=")
	builder.WriteString(fmt.Sprintf("%v", _m.FalseNegatives))
	builder.WriteString(", ")
	builder.WriteString("trap_hits=")
	builder.WriteString(fmt.Sprintf("%v", _m.TrapHits))
	builder.WriteString(", ")
	builder.WriteString("precision=")
	builder.WriteString(fmt.Sprintf("%v", _m.Precision))
	builder.WriteString(", ")
	builder.WriteString("recall=")
	builder.WriteString(fmt.Sprintf("%v", _m.Recall))
	builder.WriteString(", ")
	builder.WriteString("f1=")
	builder.WriteString(fmt.Sprintf("%v", _m.F1))
	builder.WriteString(", ")
	builder.WriteString("severity_accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.SeverityAccuracy))
	builder.WriteString(", ")
	builder.WriteString("category_accuracy=")
	builder.WriteString(fmt.Sprintf("%v", _m.CategoryAccuracy))
	builder.WriteString(", ")
	builder.WriteString("reflection=")
	builder.WriteString(_m.Reflection)
	builder.WriteString(", ")
	builder.WriteString("scorecard=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scorecard))
	builder.WriteByte(')')
	return builder.String()
}

// RoundEvents is a parsable slice of RoundEvent.
type RoundEvents []*RoundEvent
