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
	"github.com/reviewgym/reviewgym/ent/challengeevent"
	"github.com/reviewgym/reviewgym/ent/predicate"
)

// ChallengeEventUpdate is the builder for updating ChallengeEvent entities.
type ChallengeEventUpdate struct {
	config
	hooks    []Hook
	mutation *ChallengeEventMutation
}

// Where appends a list predicates to the ChallengeEventUpdate builder.
func (_u *ChallengeEventUpdate) Where(ps ...predicate.ChallengeEvent) *ChallengeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *ChallengeEventUpdate) SetSessionID(v string) *ChallengeEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableSessionID(v *string) *ChallengeEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *ChallengeEventUpdate) SetChallengeID(v string) *ChallengeEventUpdate {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableChallengeID(v *string) *ChallengeEventUpdate {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ChallengeEventUpdate) SetTitle(v string) *ChallengeEventUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableTitle(v *string) *ChallengeEventUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *ChallengeEventUpdate) SetLanguage(v string) *ChallengeEventUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableLanguage(v *string) *ChallengeEventUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ChallengeEventUpdate) SetDifficulty(v int) *ChallengeEventUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableDifficulty(v *int) *ChallengeEventUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ChallengeEventUpdate) AddDifficulty(v int) *ChallengeEventUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *ChallengeEventUpdate) SetSource(v string) *ChallengeEventUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableSource(v *string) *ChallengeEventUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCategories sets the "categories" field.
func (_u *ChallengeEventUpdate) SetCategories(v []string) *ChallengeEventUpdate {
	_u.mutation.SetCategories(v)
	return _u
}

// AppendCategories appends value to the "categories" field.
func (_u *ChallengeEventUpdate) AppendCategories(v []string) *ChallengeEventUpdate {
	_u.mutation.AppendCategories(v)
	return _u
}

// ClearCategories clears the value of the "categories" field.
func (_u *ChallengeEventUpdate) ClearCategories() *ChallengeEventUpdate {
	_u.mutation.ClearCategories()
	return _u
}

// SetFindingCount sets the "finding_count" field.
func (_u *ChallengeEventUpdate) SetFindingCount(v int) *ChallengeEventUpdate {
	_u.mutation.ResetFindingCount()
	_u.mutation.SetFindingCount(v)
	return _u
}

// SetNillableFindingCount sets the "finding_count" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableFindingCount(v *int) *ChallengeEventUpdate {
	if v != nil {
		_u.SetFindingCount(*v)
	}
	return _u
}

// AddFindingCount adds value to the "finding_count" field.
func (_u *ChallengeEventUpdate) AddFindingCount(v int) *ChallengeEventUpdate {
	_u.mutation.AddFindingCount(v)
	return _u
}

// SetTrapCount sets the "trap_count" field.
func (_u *ChallengeEventUpdate) SetTrapCount(v int) *ChallengeEventUpdate {
	_u.mutation.ResetTrapCount()
	_u.mutation.SetTrapCount(v)
	return _u
}

// SetNillableTrapCount sets the "trap_count" field if the given value is not nil.
func (_u *ChallengeEventUpdate) SetNillableTrapCount(v *int) *ChallengeEventUpdate {
	if v != nil {
		_u.SetTrapCount(*v)
	}
	return _u
}

// AddTrapCount adds value to the "trap_count" field.
func (_u *ChallengeEventUpdate) AddTrapCount(v int) *ChallengeEventUpdate {
	_u.mutation.AddTrapCount(v)
	return _u
}

// Mutation returns the ChallengeEventMutation object of the builder.
func (_u *ChallengeEventUpdate) Mutation() *ChallengeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChallengeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChallengeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChallengeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChallengeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChallengeEventUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := challengeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeID(); ok {
		if err := challengeevent.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.challenge_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := challengeevent.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := challengeevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *ChallengeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(challengeevent.Table, challengeevent.Columns, sqlgraph.NewFieldSpec(challengeevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(challengeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(challengeevent.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(challengeevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(challengeevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(challengeevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(challengeevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(challengeevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Categories(); ok {
		_spec.SetField(challengeevent.FieldCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, challengeevent.FieldCategories, value)
		})
	}
	if _u.mutation.CategoriesCleared() {
		_spec.ClearField(challengeevent.FieldCategories, field.TypeJSON)
	}
	if value, ok := _u.mutation.FindingCount(); ok {
		_spec.SetField(challengeevent.FieldFindingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFindingCount(); ok {
		_spec.AddField(challengeevent.FieldFindingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TrapCount(); ok {
		_spec.SetField(challengeevent.FieldTrapCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrapCount(); ok {
		_spec.AddField(challengeevent.FieldTrapCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{challengeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChallengeEventUpdateOne is the builder for updating a single ChallengeEvent entity.
type ChallengeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChallengeEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *ChallengeEventUpdateOne) SetSessionID(v string) *ChallengeEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableSessionID(v *string) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetChallengeID sets the "challenge_id" field.
func (_u *ChallengeEventUpdateOne) SetChallengeID(v string) *ChallengeEventUpdateOne {
	_u.mutation.SetChallengeID(v)
	return _u
}

// SetNillableChallengeID sets the "challenge_id" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableChallengeID(v *string) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetChallengeID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *ChallengeEventUpdateOne) SetTitle(v string) *ChallengeEventUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableTitle(v *string) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *ChallengeEventUpdateOne) SetLanguage(v string) *ChallengeEventUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableLanguage(v *string) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *ChallengeEventUpdateOne) SetDifficulty(v int) *ChallengeEventUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableDifficulty(v *int) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *ChallengeEventUpdateOne) AddDifficulty(v int) *ChallengeEventUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetSource sets the "source" field.
func (_u *ChallengeEventUpdateOne) SetSource(v string) *ChallengeEventUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableSource(v *string) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// SetCategories sets the "categories" field.
func (_u *ChallengeEventUpdateOne) SetCategories(v []string) *ChallengeEventUpdateOne {
	_u.mutation.SetCategories(v)
	return _u
}

// AppendCategories appends value to the "categories" field.
func (_u *ChallengeEventUpdateOne) AppendCategories(v []string) *ChallengeEventUpdateOne {
	_u.mutation.AppendCategories(v)
	return _u
}

// ClearCategories clears the value of the "categories" field.
func (_u *ChallengeEventUpdateOne) ClearCategories() *ChallengeEventUpdateOne {
	_u.mutation.ClearCategories()
	return _u
}

// SetFindingCount sets the "finding_count" field.
func (_u *ChallengeEventUpdateOne) SetFindingCount(v int) *ChallengeEventUpdateOne {
	_u.mutation.ResetFindingCount()
	_u.mutation.SetFindingCount(v)
	return _u
}

// SetNillableFindingCount sets the "finding_count" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableFindingCount(v *int) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetFindingCount(*v)
	}
	return _u
}

// AddFindingCount adds value to the "finding_count" field.
func (_u *ChallengeEventUpdateOne) AddFindingCount(v int) *ChallengeEventUpdateOne {
	_u.mutation.AddFindingCount(v)
	return _u
}

// SetTrapCount sets the "trap_count" field.
func (_u *ChallengeEventUpdateOne) SetTrapCount(v int) *ChallengeEventUpdateOne {
	_u.mutation.ResetTrapCount()
	_u.mutation.SetTrapCount(v)
	return _u
}

// SetNillableTrapCount sets the "trap_count" field if the given value is not nil.
func (_u *ChallengeEventUpdateOne) SetNillableTrapCount(v *int) *ChallengeEventUpdateOne {
	if v != nil {
		_u.SetTrapCount(*v)
	}
	return _u
}

// AddTrapCount adds value to the "trap_count" field.
func (_u *ChallengeEventUpdateOne) AddTrapCount(v int) *ChallengeEventUpdateOne {
	_u.mutation.AddTrapCount(v)
	return _u
}

// Mutation returns the ChallengeEventMutation object of the builder.
func (_u *ChallengeEventUpdateOne) Mutation() *ChallengeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChallengeEventUpdate builder.
func (_u *ChallengeEventUpdateOne) Where(ps ...predicate.ChallengeEvent) *ChallengeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChallengeEventUpdateOne) Select(field string, fields ...string) *ChallengeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ChallengeEvent entity.
func (_u *ChallengeEventUpdateOne) Save(ctx context.Context) (*ChallengeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChallengeEventUpdateOne) SaveX(ctx context.Context) *ChallengeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChallengeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChallengeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChallengeEventUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := challengeevent.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ChallengeID(); ok {
		if err := challengeevent.ChallengeIDValidator(v); err != nil {
			return &ValidationError{Name: "challenge_id", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.challenge_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := challengeevent.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Source(); ok {
		if err := challengeevent.SourceValidator(v); err != nil {
			return &ValidationError{Name: "source", err: fmt.Errorf(`ent: validator failed for field "ChallengeEvent.source": %w`, err)}
		}
	}
	return nil
}

func (_u *ChallengeEventUpdateOne) sqlSave(ctx context.Context) (_node *ChallengeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(challengeevent.Table, challengeevent.Columns, sqlgraph.NewFieldSpec(challengeevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ChallengeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, challengeevent.FieldID)
		for _, f := range fields {
			if !challengeevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != challengeevent.FieldID {
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
		_spec.SetField(challengeevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ChallengeID(); ok {
		_spec.SetField(challengeevent.FieldChallengeID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(challengeevent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(challengeevent.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(challengeevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(challengeevent.FieldDifficulty, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(challengeevent.FieldSource, field.TypeString, value)
	}
	if value, ok := _u.mutation.Categories(); ok {
		_spec.SetField(challengeevent.FieldCategories, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCategories(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, challengeevent.FieldCategories, value)
		})
	}
	if _u.mutation.CategoriesCleared() {
		_spec.ClearField(challengeevent.FieldCategories, field.TypeJSON)
	}
	if value, ok := _u.mutation.FindingCount(); ok {
		_spec.SetField(challengeevent.FieldFindingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFindingCount(); ok {
		_spec.AddField(challengeevent.FieldFindingCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TrapCount(); ok {
		_spec.SetField(challengeevent.FieldTrapCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTrapCount(); ok {
		_spec.AddField(challengeevent.FieldTrapCount, field.TypeInt, value)
	}
	_node = &ChallengeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{challengeevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
