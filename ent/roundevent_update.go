// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/reviewgym/reviewgym/ent/predicate"
	"github.com/reviewgym/reviewgym/ent/roundevent"
)

// RoundEventUpdate is the builder for updating RoundEvent entities.
type RoundEventUpdate struct {
	config
	hooks    []Hook
	mutation *RoundEventMutation
}

// Where appends a list predicates to the RoundEventUpdate builder.
func (_u *RoundEventUpdate) Where(ps ...predicate.RoundEvent) *RoundEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *RoundEventUpdate) SetSessionID(v string) *RoundEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableSessionID(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *RoundEventUpdate) SetChallengeID(v string) *RoundEventUpdate {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableChallengeID(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetRoundIndex sets the "round_index" field.
func (_u *RoundEventUpdate) SetRoundIndex(v int) *RoundEventUpdate {
	_u.mutation.ResetRoundIndex()
	_u.mutation.SetRoundIndex(v)
	return _u
}

// SetNillableRoundIndex sets the "round_index" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableRoundIndex(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetRoundIndex(*v)
	}
	return _u
}

// AddRoundIndex adds value to the "round_index" field.
func (_u *RoundEventUpdate) AddRoundIndex(v int) *RoundEventUpdate {
	_u.mutation.AddRoundIndex(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *RoundEventUpdate) SetDifficulty(v int) *RoundEventUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableDifficulty(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *RoundEventUpdate) AddDifficulty(v int) *RoundEventUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetCategoryTags sets the "category_tags" field.
func (_u *RoundEventUpdate) SetCategoryTags(v []string) *RoundEventUpdate {
	_u.mutation.SetCategoryTags(v)
	return _u
}

// AppendCategoryTags appends value to the "category_tags" field.
func (_u *RoundEventUpdate) AppendCategoryTags(v []string) *RoundEventUpdate {
	_u.mutation.AppendCategoryTags(v)
	return _u
}

// ClearCategoryTags clears the value of the "category_tags" field.
func (_u *RoundEventUpdate) ClearCategoryTags() *RoundEventUpdate {
	_u.mutation.ClearCategoryTags()
	return _u
}

// SetTruePositives sets the "true_positives" field.
func (_u *RoundEventUpdate) SetTruePositives(v int) *RoundEventUpdate {
	_u.mutation.ResetTruePositives()
	_u.mutation.SetTruePositives(v)
	return _u
}

// SetNillableTruePositives sets the "true_positives" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableTruePositives(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetTruePositives(*v)
	}
	return _u
}

// AddTruePositives adds value to the "true_positives" field.
func (_u *RoundEventUpdate) AddTruePositives(v int) *RoundEventUpdate {
	_u.mutation.AddTruePositives(v)
	return _u
}

// SetFalsePositives sets the "false_positives" field.
func (_u *RoundEventUpdate) SetFalsePositives(v int) *RoundEventUpdate {
	_u.mutation.ResetFalsePositives()
	_u.mutation.SetFalsePositives(v)
	return _u
}

// SetNillableFalsePositives sets the "false_positives" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableFalsePositives(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetFalsePositives(*v)
	}
	return _u
}

// AddFalsePositives adds value to the "false_positives" field.
func (_u *RoundEventUpdate) AddFalsePositives(v int) *RoundEventUpdate {
	_u.mutation.AddFalsePositives(v)
	return _u
}

// SetFalseNegatives sets the "false_negatives" field.
func (_u *RoundEventUpdate) SetFalseNegatives(v int) *RoundEventUpdate {
	_u.mutation.ResetFalseNegatives()
	_u.mutation.SetFalseNegatives(v)
	return _u
}

// SetNillableFalseNegatives sets the "false_negatives" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableFalseNegatives(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetFalseNegatives(*v)
	}
	return _u
}

// AddFalseNegatives adds value to the "false_negatives" field.
func (_u *RoundEventUpdate) AddFalseNegatives(v int) *RoundEventUpdate {
	_u.mutation.AddFalseNegatives(v)
	return _u
}

// SetTrapHits sets the "trap_hits" field.
func (_u *RoundEventUpdate) SetTrapHits(v int) *RoundEventUpdate {
	_u.mutation.ResetTrapHits()
	_u.mutation.SetTrapHits(v)
	return _u
}

// SetNillableTrapHits sets the "trap_hits" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableTrapHits(v *int) *RoundEventUpdate {
	if v != nil {
		_u.SetTrapHits(*v)
	}
	return _u
}

// AddTrapHits adds value to the "trap_hits" field.
func (_u *RoundEventUpdate) AddTrapHits(v int) *RoundEventUpdate {
	_u.mutation.AddTrapHits(v)
	return _u
}

// SetPrecision sets the "precision" field.
func (_u *RoundEventUpdate) SetPrecision(v float64) *RoundEventUpdate {
	_u.mutation.ResetPrecision()
	_u.mutation.SetPrecision(v)
	return _u
}

// SetNillablePrecision sets the "precision" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillablePrecision(v *float64) *RoundEventUpdate {
	if v != nil {
		_u.SetPrecision(*v)
	}
	return _u
}

// AddPrecision adds value to the "precision" field.
func (_u *RoundEventUpdate) AddPrecision(v float64) *RoundEventUpdate {
	_u.mutation.AddPrecision(v)
	return _u
}

// SetRecall sets the "recall" field.
func (_u *RoundEventUpdate) SetRecall(v float64) *RoundEventUpdate {
	_u.mutation.ResetRecall()
	_u.mutation.SetRecall(v)
	return _u
}

// SetNillableRecall sets the "recall" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableRecall(v *float64) *RoundEventUpdate {
	if v != nil {
		_u.SetRecall(*v)
	}
	return _u
}

// AddRecall adds value to the "recall" field.
func (_u *RoundEventUpdate) AddRecall(v float64) *RoundEventUpdate {
	_u.mutation.AddRecall(v)
	return _u
}

// SetF1 sets the "f1" field.
func (_u *RoundEventUpdate) SetF1(v float64) *RoundEventUpdate {
	_u.mutation.ResetF1()
	_u.mutation.SetF1(v)
	return _u
}

// SetNillableF1 sets the "f1" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableF1(v *float64) *RoundEventUpdate {
	if v != nil {
		_u.SetF1(*v)
	}
	return _u
}

// AddF1 adds value to the "f1" field.
func (_u *RoundEventUpdate) AddF1(v float64) *RoundEventUpdate {
	_u.mutation.AddF1(v)
	return _u
}

// SetSeverityAccuracy sets the "severity_accuracy" field.
func (_u *RoundEventUpdate) SetSeverityAccuracy(v float64) *RoundEventUpdate {
	_u.mutation.ResetSeverityAccuracy()
	_u.mutation.SetSeverityAccuracy(v)
	return _u
}

// SetNillableSeverityAccuracy sets the "severity_accuracy" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableSeverityAccuracy(v *float64) *RoundEventUpdate {
	if v != nil {
		_u.SetSeverityAccuracy(*v)
	}
	return _u
}

// AddSeverityAccuracy adds value to the "severity_accuracy" field.
func (_u *RoundEventUpdate) AddSeverityAccuracy(v float64) *RoundEventUpdate {
	_u.mutation.AddSeverityAccuracy(v)
	return _u
}

// SetCategoryAccuracy sets the "category_accuracy" field.
func (_u *RoundEventUpdate) SetCategoryAccuracy(v float64) *RoundEventUpdate {
	_u.mutation.ResetCategoryAccuracy()
	_u.mutation.SetCategoryAccuracy(v)
	return _u
}

// SetNillableCategoryAccuracy sets the "category_accuracy" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableCategoryAccuracy(v *float64) *RoundEventUpdate {
	if v != nil {
		_u.SetCategoryAccuracy(*v)
	}
	return _u
}

// AddCategoryAccuracy adds value to the "category_accuracy" field.
func (_u *RoundEventUpdate) AddCategoryAccuracy(v float64) *RoundEventUpdate {
	_u.mutation.AddCategoryAccuracy(v)
	return _u
}

// SetReflection sets the "reflection" field.
func (_u *RoundEventUpdate) SetReflection(v string) *RoundEventUpdate {
	_u.mutation.SetReflection(v)
	return _u
}

// SetNillableReflection sets the "reflection" field if the given value is not nil.
func (_u *RoundEventUpdate) SetNillableReflection(v *string) *RoundEventUpdate {
	if v != nil {
		_u.SetReflection(*v)
	}
	return _u
}

// SetScorecard sets the "scorecard" field.
func (_u *RoundEventUpdate) SetScorecard(v map[string]interface{}) *RoundEventUpdate {
	_u.mutation.SetScorecard(v)
	return _u
}

// ClearScorecard clears the value of the "scorecard" field.
func (_u *RoundEventUpdate) ClearScorecard() *RoundEventUpdate {
	_u.mutation.ClearScorecard()
	return _u
}

// Mutation returns the RoundEventMutation object of the builder.
func (_u *RoundEventUpdate) Mutation() *RoundEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoundEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoundEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoundEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoundEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoundEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := roundevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeID(); ok {
		if err := roundevent.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.challenge_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reflection(); ok {
		if err := roundevent.ReflectionValidator(v); err != nil {
			return &ValidationError{Name: "reflection", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.reflection": %w`, err)}
		}
	}
	return nil
}

func (_u *RoundEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roundevent.Table, roundevent.Columns, sqlgraph.NewFieldSpec(roundevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(roundevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(roundevent.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoundIndex(); ok {
		_spec.SetField(roundevent.FieldRoundIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundIndex(); ok {
		_spec.AddField(roundevent.FieldRoundIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(roundevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(roundevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CategoryTags(); ok {
		_spec.SetField(roundevent.FieldCategoryTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategoryTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, roundevent.FieldCategoryTags, value)
		})
	}
	if _u.mutation.CategoryTagsCleared() {
		_spec.ClearField(roundevent.FieldCategoryTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.TruePositives(); ok {
		_spec.SetField(roundevent.FieldTruePositives, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTruePositives(); ok {
		_spec.AddField(roundevent.FieldTruePositives, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FalsePositives(); ok {
		_spec.SetField(roundevent.FieldFalsePositives, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFalsePositives(); ok {
		_spec.AddField(roundevent.FieldFalsePositives, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FalseNegatives(); ok {
		_spec.SetField(roundevent.FieldFalseNegatives, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFalseNegatives(); ok {
		_spec.AddField(roundevent.FieldFalseNegatives, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TrapHits(); ok {
		_spec.SetField(roundevent.FieldTrapHits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrapHits(); ok {
		_spec.AddField(roundevent.FieldTrapHits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Precision(); ok {
		_spec.SetField(roundevent.FieldPrecision, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrecision(); ok {
		_spec.AddField(roundevent.FieldPrecision, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Recall(); ok {
		_spec.SetField(roundevent.FieldRecall, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecall(); ok {
		_spec.AddField(roundevent.FieldRecall, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.F1(); ok {
		_spec.SetField(roundevent.FieldF1, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedF1(); ok {
		_spec.AddField(roundevent.FieldF1, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SeverityAccuracy(); ok {
		_spec.SetField(roundevent.FieldSeverityAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSeverityAccuracy(); ok {
		_spec.AddField(roundevent.FieldSeverityAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CategoryAccuracy(); ok {
		_spec.SetField(roundevent.FieldCategoryAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCategoryAccuracy(); ok {
		_spec.AddField(roundevent.FieldCategoryAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reflection(); ok {
		_spec.SetField(roundevent.FieldReflection, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scorecard(); ok {
		_spec.SetField(roundevent.FieldScorecard, field.TypeJSON, value)
	}
	if _u.mutation.ScorecardCleared() {
		_spec.ClearField(roundevent.FieldScorecard, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roundevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoundEventUpdateOne is the builder for updating a single RoundEvent entity.
type RoundEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoundEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *RoundEventUpdateOne) SetSessionID(v string) *RoundEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableSessionID(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *RoundEventUpdateOne) SetChallengeID(v string) *RoundEventUpdateOne {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableChallengeID(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetRoundIndex sets the "round_index" field.
func (_u *RoundEventUpdateOne) SetRoundIndex(v int) *RoundEventUpdateOne {
	_u.mutation.ResetRoundIndex()
	_u.mutation.SetRoundIndex(v)
	return _u
}

// SetNillableRoundIndex sets the "round_index" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableRoundIndex(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetRoundIndex(*v)
	}
	return _u
}

// AddRoundIndex adds value to the "round_index" field.
func (_u *RoundEventUpdateOne) AddRoundIndex(v int) *RoundEventUpdateOne {
	_u.mutation.AddRoundIndex(v)
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *RoundEventUpdateOne) SetDifficulty(v int) *RoundEventUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableDifficulty(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *RoundEventUpdateOne) AddDifficulty(v int) *RoundEventUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetCategoryTags sets the "category_tags" field.
func (_u *RoundEventUpdateOne) SetCategoryTags(v []string) *RoundEventUpdateOne {
	_u.mutation.SetCategoryTags(v)
	return _u
}

// AppendCategoryTags appends value to the "category_tags" field.
func (_u *RoundEventUpdateOne) AppendCategoryTags(v []string) *RoundEventUpdateOne {
	_u.mutation.AppendCategoryTags(v)
	return _u
}

// ClearCategoryTags clears the value of the "category_tags" field.
func (_u *RoundEventUpdateOne) ClearCategoryTags() *RoundEventUpdateOne {
	_u.mutation.ClearCategoryTags()
	return _u
}

// SetTruePositives sets the "true_positives" field.
func (_u *RoundEventUpdateOne) SetTruePositives(v int) *RoundEventUpdateOne {
	_u.mutation.ResetTruePositives()
	_u.mutation.SetTruePositives(v)
	return _u
}

// SetNillableTruePositives sets the "true_positives" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableTruePositives(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetTruePositives(*v)
	}
	return _u
}

// AddTruePositives adds value to the "true_positives" field.
func (_u *RoundEventUpdateOne) AddTruePositives(v int) *RoundEventUpdateOne {
	_u.mutation.AddTruePositives(v)
	return _u
}

// SetFalsePositives sets the "false_positives" field.
func (_u *RoundEventUpdateOne) SetFalsePositives(v int) *RoundEventUpdateOne {
	_u.mutation.ResetFalsePositives()
	_u.mutation.SetFalsePositives(v)
	return _u
}

// SetNillableFalsePositives sets the "false_positives" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableFalsePositives(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetFalsePositives(*v)
	}
	return _u
}

// AddFalsePositives adds value to the "false_positives" field.
func (_u *RoundEventUpdateOne) AddFalsePositives(v int) *RoundEventUpdateOne {
	_u.mutation.AddFalsePositives(v)
	return _u
}

// SetFalseNegatives sets the "false_negatives" field.
func (_u *RoundEventUpdateOne) SetFalseNegatives(v int) *RoundEventUpdateOne {
	_u.mutation.ResetFalseNegatives()
	_u.mutation.SetFalseNegatives(v)
	return _u
}

// SetNillableFalseNegatives sets the "false_negatives" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableFalseNegatives(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetFalseNegatives(*v)
	}
	return _u
}

// AddFalseNegatives adds value to the "false_negatives" field.
func (_u *RoundEventUpdateOne) AddFalseNegatives(v int) *RoundEventUpdateOne {
	_u.mutation.AddFalseNegatives(v)
	return _u
}

// SetTrapHits sets the "trap_hits" field.
func (_u *RoundEventUpdateOne) SetTrapHits(v int) *RoundEventUpdateOne {
	_u.mutation.ResetTrapHits()
	_u.mutation.SetTrapHits(v)
	return _u
}

// SetNillableTrapHits sets the "trap_hits" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableTrapHits(v *int) *RoundEventUpdateOne {
	if v != nil {
		_u.SetTrapHits(*v)
	}
	return _u
}

// AddTrapHits adds value to the "trap_hits" field.
func (_u *RoundEventUpdateOne) AddTrapHits(v int) *RoundEventUpdateOne {
	_u.mutation.AddTrapHits(v)
	return _u
}

// SetPrecision sets the "precision" field.
func (_u *RoundEventUpdateOne) SetPrecision(v float64) *RoundEventUpdateOne {
	_u.mutation.ResetPrecision()
	_u.mutation.SetPrecision(v)
	return _u
}

// SetNillablePrecision sets the "precision" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillablePrecision(v *float64) *RoundEventUpdateOne {
	if v != nil {
		_u.SetPrecision(*v)
	}
	return _u
}

// AddPrecision adds value to the "precision" field.
func (_u *RoundEventUpdateOne) AddPrecision(v float64) *RoundEventUpdateOne {
	_u.mutation.AddPrecision(v)
	return _u
}

// SetRecall sets the "recall" field.
func (_u *RoundEventUpdateOne) SetRecall(v float64) *RoundEventUpdateOne {
	_u.mutation.ResetRecall()
	_u.mutation.SetRecall(v)
	return _u
}

// SetNillableRecall sets the "recall" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableRecall(v *float64) *RoundEventUpdateOne {
	if v != nil {
		_u.SetRecall(*v)
	}
	return _u
}

// AddRecall adds value to the "recall" field.
func (_u *RoundEventUpdateOne) AddRecall(v float64) *RoundEventUpdateOne {
	_u.mutation.AddRecall(v)
	return _u
}

// SetF1 sets the "f1" field.
func (_u *RoundEventUpdateOne) SetF1(v float64) *RoundEventUpdateOne {
	_u.mutation.ResetF1()
	_u.mutation.SetF1(v)
	return _u
}

// SetNillableF1 sets the "f1" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableF1(v *float64) *RoundEventUpdateOne {
	if v != nil {
		_u.SetF1(*v)
	}
	return _u
}

// AddF1 adds value to the "f1" field.
func (_u *RoundEventUpdateOne) AddF1(v float64) *RoundEventUpdateOne {
	_u.mutation.AddF1(v)
	return _u
}

// SetSeverityAccuracy sets the "severity_accuracy" field.
func (_u *RoundEventUpdateOne) SetSeverityAccuracy(v float64) *RoundEventUpdateOne {
	_u.mutation.ResetSeverityAccuracy()
	_u.mutation.SetSeverityAccuracy(v)
	return _u
}

// SetNillableSeverityAccuracy sets the "severity_accuracy" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableSeverityAccuracy(v *float64) *RoundEventUpdateOne {
	if v != nil {
		_u.SetSeverityAccuracy(*v)
	}
	return _u
}

// AddSeverityAccuracy adds value to the "severity_accuracy" field.
func (_u *RoundEventUpdateOne) AddSeverityAccuracy(v float64) *RoundEventUpdateOne {
	_u.mutation.AddSeverityAccuracy(v)
	return _u
}

// SetCategoryAccuracy sets the "category_accuracy" field.
func (_u *RoundEventUpdateOne) SetCategoryAccuracy(v float64) *RoundEventUpdateOne {
	_u.mutation.ResetCategoryAccuracy()
	_u.mutation.SetCategoryAccuracy(v)
	return _u
}

// SetNillableCategoryAccuracy sets the "category_accuracy" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableCategoryAccuracy(v *float64) *RoundEventUpdateOne {
	if v != nil {
		_u.SetCategoryAccuracy(*v)
	}
	return _u
}

// AddCategoryAccuracy adds value to the "category_accuracy" field.
func (_u *RoundEventUpdateOne) AddCategoryAccuracy(v float64) *RoundEventUpdateOne {
	_u.mutation.AddCategoryAccuracy(v)
	return _u
}

// SetReflection sets the "reflection" field.
func (_u *RoundEventUpdateOne) SetReflection(v string) *RoundEventUpdateOne {
	_u.mutation.SetReflection(v)
	return _u
}

// SetNillableReflection sets the "reflection" field if the given value is not nil.
func (_u *RoundEventUpdateOne) SetNillableReflection(v *string) *RoundEventUpdateOne {
	if v != nil {
		_u.SetReflection(*v)
	}
	return _u
}

// SetScorecard sets the "scorecard" field.
func (_u *RoundEventUpdateOne) SetScorecard(v map[string]interface{}) *RoundEventUpdateOne {
	_u.mutation.SetScorecard(v)
	return _u
}

// ClearScorecard clears the value of the "scorecard" field.
func (_u *RoundEventUpdateOne) ClearScorecard() *RoundEventUpdateOne {
	_u.mutation.ClearScorecard()
	return _u
}

// Mutation returns the RoundEventMutation object of the builder.
func (_u *RoundEventUpdateOne) Mutation() *RoundEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RoundEventUpdate builder.
func (_u *RoundEventUpdateOne) Where(ps ...predicate.RoundEvent) *RoundEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoundEventUpdateOne) Select(field string, fields ...string) *RoundEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RoundEvent entity.
func (_u *RoundEventUpdateOne) Save(ctx context.Context) (*RoundEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoundEventUpdateOne) SaveX(ctx context.Context) *RoundEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoundEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoundEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoundEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := roundevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeID(); ok {
		if err := roundevent.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.challenge_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reflection(); ok {
		if err := roundevent.ReflectionValidator(v); err != nil {
			return &ValidationError{Name: "reflection", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.reflection": %w`, err)}
		}
	}
	return nil
}

func (_u *RoundEventUpdateOne) sqlSave(ctx context.Context) (_node *RoundEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roundevent.Table, roundevent.Columns, sqlgraph.NewFieldSpec(roundevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RoundEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, roundevent.FieldID)
		for _, f := range fields {
			if !roundevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != roundevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(roundevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(roundevent.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.RoundIndex(); ok {
		_spec.SetField(roundevent.FieldRoundIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundIndex(); ok {
		_spec.AddField(roundevent.FieldRoundIndex, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(roundevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(roundevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CategoryTags(); ok {
		_spec.SetField(roundevent.FieldCategoryTags, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategoryTags(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, roundevent.FieldCategoryTags, value)
		})
	}
	if _u.mutation.CategoryTagsCleared() {
		_spec.ClearField(roundevent.FieldCategoryTags, field.TypeJSON)
	}
	if value, ok := _u.mutation.TruePositives(); ok {
		_spec.SetField(roundevent.FieldTruePositives, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTruePositives(); ok {
		_spec.AddField(roundevent.FieldTruePositives, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FalsePositives(); ok {
		_spec.SetField(roundevent.FieldFalsePositives, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFalsePositives(); ok {
		_spec.AddField(roundevent.FieldFalsePositives, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FalseNegatives(); ok {
		_spec.SetField(roundevent.FieldFalseNegatives, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFalseNegatives(); ok {
		_spec.AddField(roundevent.FieldFalseNegatives, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TrapHits(); ok {
		_spec.SetField(roundevent.FieldTrapHits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrapHits(); ok {
		_spec.AddField(roundevent.FieldTrapHits, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Precision(); ok {
		_spec.SetField(roundevent.FieldPrecision, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrecision(); ok {
		_spec.AddField(roundevent.FieldPrecision, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Recall(); ok {
		_spec.SetField(roundevent.FieldRecall, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRecall(); ok {
		_spec.AddField(roundevent.FieldRecall, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.F1(); ok {
		_spec.SetField(roundevent.FieldF1, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedF1(); ok {
		_spec.AddField(roundevent.FieldF1, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.SeverityAccuracy(); ok {
		_spec.SetField(roundevent.FieldSeverityAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedSeverityAccuracy(); ok {
		_spec.AddField(roundevent.FieldSeverityAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CategoryAccuracy(); ok {
		_spec.SetField(roundevent.FieldCategoryAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCategoryAccuracy(); ok {
		_spec.AddField(roundevent.FieldCategoryAccuracy, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Reflection(); ok {
		_spec.SetField(roundevent.FieldReflection, field.TypeString, value)
	}
	if value, ok := _u.mutation.Scorecard(); ok {
		_spec.SetField(roundevent.FieldScorecard, field.TypeJSON, value)
	}
	if _u.mutation.ScorecardCleared() {
		_spec.ClearField(roundevent.FieldScorecard, field.TypeJSON)
	}
	_node = &RoundEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roundevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
