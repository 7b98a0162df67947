// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/reviewgym/reviewgym/ent/predicate"
	"github.com/reviewgym/reviewgym/ent/sessionevent"
)

// SessionEventUpdate is the builder for updating SessionEvent entities.
type SessionEventUpdate struct {
	config
	hooks    []Hook
	mutation *SessionEventMutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdate) Where(ps ...predicate.SessionEvent) *SessionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdate) SetSessionID(v string) *SessionEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableSessionID(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdate) SetAction(v string) *SessionEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableAction(v *string) *SessionEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetStartDifficulty sets the "start_difficulty" field.
func (_u *SessionEventUpdate) SetStartDifficulty(v int) *SessionEventUpdate {
	_u.mutation.ResetStartDifficulty()
	_u.mutation.SetStartDifficulty(v)
	return _u
}

// SetNillableStartDifficulty sets the "start_difficulty" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableStartDifficulty(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetStartDifficulty(*v)
	}
	return _u
}

// AddStartDifficulty adds value to the "start_difficulty" field.
func (_u *SessionEventUpdate) AddStartDifficulty(v int) *SessionEventUpdate {
	_u.mutation.AddStartDifficulty(v)
	return _u
}

// SetRoundsPlayed sets the "rounds_played" field.
func (_u *SessionEventUpdate) SetRoundsPlayed(v int) *SessionEventUpdate {
	_u.mutation.ResetRoundsPlayed()
	_u.mutation.SetRoundsPlayed(v)
	return _u
}

// SetNillableRoundsPlayed sets the "rounds_played" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableRoundsPlayed(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetRoundsPlayed(*v)
	}
	return _u
}

// AddRoundsPlayed adds value to the "rounds_played" field.
func (_u *SessionEventUpdate) AddRoundsPlayed(v int) *SessionEventUpdate {
	_u.mutation.AddRoundsPlayed(v)
	return _u
}

// SetFinalDifficulty sets the "final_difficulty" field.
func (_u *SessionEventUpdate) SetFinalDifficulty(v int) *SessionEventUpdate {
	_u.mutation.ResetFinalDifficulty()
	_u.mutation.SetFinalDifficulty(v)
	return _u
}

// SetNillableFinalDifficulty sets the "final_difficulty" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableFinalDifficulty(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetFinalDifficulty(*v)
	}
	return _u
}

// AddFinalDifficulty adds value to the "final_difficulty" field.
func (_u *SessionEventUpdate) AddFinalDifficulty(v int) *SessionEventUpdate {
	_u.mutation.AddFinalDifficulty(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdate) SetDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdate) SetNillableDurationSecs(v *int) *SessionEventUpdate {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdate) AddDurationSecs(v int) *SessionEventUpdate {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdate) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartDifficulty(); ok {
		_spec.SetField(sessionevent.FieldStartDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartDifficulty(); ok {
		_spec.AddField(sessionevent.FieldStartDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RoundsPlayed(); ok {
		_spec.SetField(sessionevent.FieldRoundsPlayed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundsPlayed(); ok {
		_spec.AddField(sessionevent.FieldRoundsPlayed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalDifficulty(); ok {
		_spec.SetField(sessionevent.FieldFinalDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFinalDifficulty(); ok {
		_spec.AddField(sessionevent.FieldFinalDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionEventUpdateOne is the builder for updating a single SessionEvent entity.
type SessionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionEventUpdateOne) SetSessionID(v string) *SessionEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableSessionID(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *SessionEventUpdateOne) SetAction(v string) *SessionEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableAction(v *string) *SessionEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetStartDifficulty sets the "start_difficulty" field.
func (_u *SessionEventUpdateOne) SetStartDifficulty(v int) *SessionEventUpdateOne {
	_u.mutation.ResetStartDifficulty()
	_u.mutation.SetStartDifficulty(v)
	return _u
}

// SetNillableStartDifficulty sets the "start_difficulty" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableStartDifficulty(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetStartDifficulty(*v)
	}
	return _u
}

// AddStartDifficulty adds value to the "start_difficulty" field.
func (_u *SessionEventUpdateOne) AddStartDifficulty(v int) *SessionEventUpdateOne {
	_u.mutation.AddStartDifficulty(v)
	return _u
}

// SetRoundsPlayed sets the "rounds_played" field.
func (_u *SessionEventUpdateOne) SetRoundsPlayed(v int) *SessionEventUpdateOne {
	_u.mutation.ResetRoundsPlayed()
	_u.mutation.SetRoundsPlayed(v)
	return _u
}

// SetNillableRoundsPlayed sets the "rounds_played" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableRoundsPlayed(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetRoundsPlayed(*v)
	}
	return _u
}

// AddRoundsPlayed adds value to the "rounds_played" field.
func (_u *SessionEventUpdateOne) AddRoundsPlayed(v int) *SessionEventUpdateOne {
	_u.mutation.AddRoundsPlayed(v)
	return _u
}

// SetFinalDifficulty sets the "final_difficulty" field.
func (_u *SessionEventUpdateOne) SetFinalDifficulty(v int) *SessionEventUpdateOne {
	_u.mutation.ResetFinalDifficulty()
	_u.mutation.SetFinalDifficulty(v)
	return _u
}

// SetNillableFinalDifficulty sets the "final_difficulty" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableFinalDifficulty(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetFinalDifficulty(*v)
	}
	return _u
}

// AddFinalDifficulty adds value to the "final_difficulty" field.
func (_u *SessionEventUpdateOne) AddFinalDifficulty(v int) *SessionEventUpdateOne {
	_u.mutation.AddFinalDifficulty(v)
	return _u
}

// SetDurationSecs sets the "duration_secs" field.
func (_u *SessionEventUpdateOne) SetDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.ResetDurationSecs()
	_u.mutation.SetDurationSecs(v)
	return _u
}

// SetNillableDurationSecs sets the "duration_secs" field if the given value is not nil.
func (_u *SessionEventUpdateOne) SetNillableDurationSecs(v *int) *SessionEventUpdateOne {
	if v != nil {
		_u.SetDurationSecs(*v)
	}
	return _u
}

// AddDurationSecs adds value to the "duration_secs" field.
func (_u *SessionEventUpdateOne) AddDurationSecs(v int) *SessionEventUpdateOne {
	_u.mutation.AddDurationSecs(v)
	return _u
}

// Mutation returns the SessionEventMutation object of the builder.
func (_u *SessionEventUpdateOne) Mutation() *SessionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionEventUpdate builder.
func (_u *SessionEventUpdateOne) Where(ps ...predicate.SessionEvent) *SessionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionEventUpdateOne) Select(field string, fields ...string) *SessionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionEvent entity.
func (_u *SessionEventUpdateOne) Save(ctx context.Context) (*SessionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionEventUpdateOne) SaveX(ctx context.Context) *SessionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := sessionevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "SessionEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionEventUpdateOne) sqlSave(ctx context.Context) (_node *SessionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionevent.Table, sessionevent.Columns, sqlgraph.NewFieldSpec(sessionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionevent.FieldID)
		for _, f := range fields {
			if !sessionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionevent.FieldID {
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
		_spec.SetField(sessionevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(sessionevent.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartDifficulty(); ok {
		_spec.SetField(sessionevent.FieldStartDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStartDifficulty(); ok {
		_spec.AddField(sessionevent.FieldStartDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RoundsPlayed(); ok {
		_spec.SetField(sessionevent.FieldRoundsPlayed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundsPlayed(); ok {
		_spec.AddField(sessionevent.FieldRoundsPlayed, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FinalDifficulty(); ok {
		_spec.SetField(sessionevent.FieldFinalDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFinalDifficulty(); ok {
		_spec.AddField(sessionevent.FieldFinalDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.DurationSecs(); ok {
		_spec.SetField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationSecs(); ok {
		_spec.AddField(sessionevent.FieldDurationSecs, field.TypeInt, value)
	}
	_node = &SessionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
