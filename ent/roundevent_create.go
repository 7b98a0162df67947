// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reviewgym/reviewgym/ent/roundevent"
)

// RoundEventCreate is the builder for creating a RoundEvent entity.
type RoundEventCreate struct {
	config
	mutation *RoundEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *RoundEventCreate) SetSequence(v int64) *RoundEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *RoundEventCreate) SetTimestamp(v time.Time) *RoundEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableTimestamp(v *time.Time) *RoundEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *RoundEventCreate) SetSessionID(v string) *RoundEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetChallengeID sets the "challenge_id" field.
func (_c *RoundEventCreate) SetChallengeID(v string) *RoundEventCreate {
	_c.mutation.SetChallengeID(v)
	return _c
}

// SetRoundIndex sets the "round_index" field.
func (_c *RoundEventCreate) SetRoundIndex(v int) *RoundEventCreate {
	_c.mutation.SetRoundIndex(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *RoundEventCreate) SetDifficulty(v int) *RoundEventCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetCategoryTags sets the "category_tags" field.
func (_c *RoundEventCreate) SetCategoryTags(v []string) *RoundEventCreate {
	_c.mutation.SetCategoryTags(v)
	return _c
}

// SetTruePositives sets the "true_positives" field.
func (_c *RoundEventCreate) SetTruePositives(v int) *RoundEventCreate {
	_c.mutation.SetTruePositives(v)
	return _c
}

// SetNillableTruePositives sets the "true_positives" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableTruePositives(v *int) *RoundEventCreate {
	if v != nil {
		_c.SetTruePositives(*v)
	}
	return _c
}

// SetFalsePositives sets the "false_positives" field.
func (_c *RoundEventCreate) SetFalsePositives(v int) *RoundEventCreate {
	_c.mutation.SetFalsePositives(v)
	return _c
}

// SetNillableFalsePositives sets the "false_positives" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableFalsePositives(v *int) *RoundEventCreate {
	if v != nil {
		_c.SetFalsePositives(*v)
	}
	return _c
}

// SetFalseNegatives sets the "false_negatives" field.
func (_c *RoundEventCreate) SetFalseNegatives(v int) *RoundEventCreate {
	_c.mutation.SetFalseNegatives(v)
	return _c
}

// SetNillableFalseNegatives sets the "false_negatives" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableFalseNegatives(v *int) *RoundEventCreate {
	if v != nil {
		_c.SetFalseNegatives(*v)
	}
	return _c
}

// SetTrapHits sets the "trap_hits" field.
func (_c *RoundEventCreate) SetTrapHits(v int) *RoundEventCreate {
	_c.mutation.SetTrapHits(v)
	return _c
}

// SetNillableTrapHits sets the "trap_hits" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableTrapHits(v *int) *RoundEventCreate {
	if v != nil {
		_c.SetTrapHits(*v)
	}
	return _c
}

// SetPrecision sets the "precision" field.
func (_c *RoundEventCreate) SetPrecision(v float64) *RoundEventCreate {
	_c.mutation.SetPrecision(v)
	return _c
}

// SetNillablePrecision sets the "precision" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillablePrecision(v *float64) *RoundEventCreate {
	if v != nil {
		_c.SetPrecision(*v)
	}
	return _c
}

// SetRecall sets the "recall" field.
func (_c *RoundEventCreate) SetRecall(v float64) *RoundEventCreate {
	_c.mutation.SetRecall(v)
	return _c
}

// SetNillableRecall sets the "recall" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableRecall(v *float64) *RoundEventCreate {
	if v != nil {
		_c.SetRecall(*v)
	}
	return _c
}

// SetF1 sets the "f1" field.
func (_c *RoundEventCreate) SetF1(v float64) *RoundEventCreate {
	_c.mutation.SetF1(v)
	return _c
}

// SetNillableF1 sets the "f1" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableF1(v *float64) *RoundEventCreate {
	if v != nil {
		_c.SetF1(*v)
	}
	return _c
}

// SetSeverityAccuracy sets the "severity_accuracy" field.
func (_c *RoundEventCreate) SetSeverityAccuracy(v float64) *RoundEventCreate {
	_c.mutation.SetSeverityAccuracy(v)
	return _c
}

// SetNillableSeverityAccuracy sets the "severity_accuracy" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableSeverityAccuracy(v *float64) *RoundEventCreate {
	if v != nil {
		_c.SetSeverityAccuracy(*v)
	}
	return _c
}

// SetCategoryAccuracy sets the "category_accuracy" field.
func (_c *RoundEventCreate) SetCategoryAccuracy(v float64) *RoundEventCreate {
	_c.mutation.SetCategoryAccuracy(v)
	return _c
}

// SetNillableCategoryAccuracy sets the "category_accuracy" field if the given value is not nil.
func (_c *RoundEventCreate) SetNillableCategoryAccuracy(v *float64) *RoundEventCreate {
	if v != nil {
		_c.SetCategoryAccuracy(*v)
	}
	return _c
}

// SetReflection sets the "reflection" field.
func (_c *RoundEventCreate) SetReflection(v string) *RoundEventCreate {
	_c.mutation.SetReflection(v)
	return _c
}

// SetScorecard sets the "scorecard" field.
func (_c *RoundEventCreate) SetScorecard(v map[string]interface{}) *RoundEventCreate {
	_c.mutation.SetScorecard(v)
	return _c
}

// Mutation returns the RoundEventMutation object of the builder.
func (_c *RoundEventCreate) Mutation() *RoundEventMutation {
	return _c.mutation
}

// Save creates the RoundEvent in the database.
func (_c *RoundEventCreate) Save(ctx context.Context) (*RoundEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoundEventCreate) SaveX(ctx context.Context) *RoundEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoundEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoundEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoundEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := roundevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.TruePositives(); !ok {
		v := roundevent.DefaultTruePositives
		_c.mutation.SetTruePositives(v)
	}
	if _, ok := _c.mutation.FalsePositives(); !ok {
		v := roundevent.DefaultFalsePositives
		_c.mutation.SetFalsePositives(v)
	}
	if _, ok := _c.mutation.FalseNegatives(); !ok {
		v := roundevent.DefaultFalseNegatives
		_c.mutation.SetFalseNegatives(v)
	}
	if _, ok := _c.mutation.TrapHits(); !ok {
		v := roundevent.DefaultTrapHits
		_c.mutation.SetTrapHits(v)
	}
	if _, ok := _c.mutation.Precision(); !ok {
		v := roundevent.DefaultPrecision
		_c.mutation.SetPrecision(v)
	}
	if _, ok := _c.mutation.Recall(); !ok {
		v := roundevent.DefaultRecall
		_c.mutation.SetRecall(v)
	}
	if _, ok := _c.mutation.F1(); !ok {
		v := roundevent.DefaultF1
		_c.mutation.SetF1(v)
	}
	if _, ok := _c.mutation.SeverityAccuracy(); !ok {
		v := roundevent.DefaultSeverityAccuracy
		_c.mutation.SetSeverityAccuracy(v)
	}
	if _, ok := _c.mutation.CategoryAccuracy(); !ok {
		v := roundevent.DefaultCategoryAccuracy
		_c.mutation.SetCategoryAccuracy(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoundEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "RoundEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "RoundEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "RoundEvent.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := roundevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ChallengeID(); !ok {
		return &ValidationError{Name: "challenge_id", err: errors.New(`ent: missing required field "RoundEvent.challenge_id"`)}
	}
	if v, ok := _c.mutation.ChallengeID(); ok {
		if err := roundevent.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.challenge_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RoundIndex(); !ok {
		return &ValidationError{Name: "round_index", err: errors.New(`ent: missing required field "RoundEvent.round_index"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "RoundEvent.difficulty"`)}
	}
	if _, ok := _c.mutation.TruePositives(); !ok {
		return &ValidationError{Name: "true_positives", err: errors.New(`ent: missing required field "RoundEvent.true_positives"`)}
	}
	if _, ok := _c.mutation.FalsePositives(); !ok {
		return &ValidationError{Name: "false_positives", err: errors.New(`ent: missing required field "RoundEvent.false_positives"`)}
	}
	if _, ok := _c.mutation.FalseNegatives(); !ok {
		return &ValidationError{Name: "false_negatives", err: errors.New(`ent: missing required field "RoundEvent.false_negatives"`)}
	}
	if _, ok := _c.mutation.TrapHits(); !ok {
		return &ValidationError{Name: "trap_hits", err: errors.New(`ent: missing required field "RoundEvent.trap_hits"`)}
	}
	if _, ok := _c.mutation.Precision(); !ok {
		return &ValidationError{Name: "precision", err: errors.New(`ent: missing required field "RoundEvent.precision"`)}
	}
	if _, ok := _c.mutation.Recall(); !ok {
		return &ValidationError{Name: "recall", err: errors.New(`ent: missing required field "RoundEvent.recall"`)}
	}
	if _, ok := _c.mutation.F1(); !ok {
		return &ValidationError{Name: "f1", err: errors.New(`ent: missing required field "RoundEvent.f1"`)}
	}
	if _, ok := _c.mutation.SeverityAccuracy(); !ok {
		return &ValidationError{Name: "severity_accuracy", err: errors.New(`ent: missing required field "RoundEvent.severity_accuracy"`)}
	}
	if _, ok := _c.mutation.CategoryAccuracy(); !ok {
		return &ValidationError{Name: "category_accuracy", err: errors.New(`ent: missing required field "RoundEvent.category_accuracy"`)}
	}
	if _, ok := _c.mutation.Reflection(); !ok {
		return &ValidationError{Name: "reflection", err: errors.New(`ent: missing required field "RoundEvent.reflection"`)}
	}
	if v, ok := _c.mutation.Reflection(); ok {
		if err := roundevent.ReflectionValidator(v); err != nil {
			return &ValidationError{Name: "reflection", err: fmt.Errorf(`ent: validator failed for field "RoundEvent.reflection": %w`, err)}
		}
	}
	return nil
}

func (_c *RoundEventCreate) sqlSave(ctx context.Context) (*RoundEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RoundEventCreate) createSpec() (*RoundEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &RoundEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(roundevent.Table, sqlgraph.NewFieldSpec(roundevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(roundevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(roundevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(roundevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.ChallengeID(); ok {
		_spec.SetField(roundevent.FieldChallengeID, field.TypeString, value)
		_node.ChallengeID = value
	}
	if value, ok := _c.mutation.RoundIndex(); ok {
		_spec.SetField(roundevent.FieldRoundIndex, field.TypeInt, value)
		_node.RoundIndex = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(roundevent.FieldDifficulty, field.TypeInt, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.CategoryTags(); ok {
		_spec.SetField(roundevent.FieldCategoryTags, field.TypeJSON, value)
		_node.CategoryTags = value
	}
	if value, ok := _c.mutation.TruePositives(); ok {
		_spec.SetField(roundevent.FieldTruePositives, field.TypeInt, value)
		_node.TruePositives = value
	}
	if value, ok := _c.mutation.FalsePositives(); ok {
		_spec.SetField(roundevent.FieldFalsePositives, field.TypeInt, value)
		_node.FalsePositives = value
	}
	if value, ok := _c.mutation.FalseNegatives(); ok {
		_spec.SetField(roundevent.FieldFalseNegatives, field.TypeInt, value)
		_node.FalseNegatives = value
	}
	if value, ok := _c.mutation.TrapHits(); ok {
		_spec.SetField(roundevent.FieldTrapHits, field.TypeInt, value)
		_node.TrapHits = value
	}
	if value, ok := _c.mutation.Precision(); ok {
		_spec.SetField(roundevent.FieldPrecision, field.TypeFloat64, value)
		_node.Precision = value
	}
	if value, ok := _c.mutation.Recall(); ok {
		_spec.SetField(roundevent.FieldRecall, field.TypeFloat64, value)
		_node.Recall = value
	}
	if value, ok := _c.mutation.F1(); ok {
		_spec.SetField(roundevent.FieldF1, field.TypeFloat64, value)
		_node.F1 = value
	}
	if value, ok := _c.mutation.SeverityAccuracy(); ok {
		_spec.SetField(roundevent.FieldSeverityAccuracy, field.TypeFloat64, value)
		_node.SeverityAccuracy = value
	}
	if value, ok := _c.mutation.CategoryAccuracy(); ok {
		_spec.SetField(roundevent.FieldCategoryAccuracy, field.TypeFloat64, value)
		_node.CategoryAccuracy = value
	}
	if value, ok := _c.mutation.Reflection(); ok {
		_spec.SetField(roundevent.FieldReflection, field.TypeString, value)
		_node.Reflection = value
	}
	if value, ok := _c.mutation.Scorecard(); ok {
		_spec.SetField(roundevent.FieldScorecard, field.TypeJSON, value)
		_node.Scorecard = value
	}
	return _node, _spec
}

// RoundEventCreateBulk is the builder for creating many RoundEvent entities in bulk.
type RoundEventCreateBulk struct {
	config
	err      error
	builders []*RoundEventCreate
}

// Save creates the RoundEvent entities in the database.
func (_c *RoundEventCreateBulk) Save(ctx context.Context) ([]*RoundEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoundEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoundEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *RoundEventCreateBulk) SaveX(ctx context.Context) []*RoundEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoundEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoundEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
