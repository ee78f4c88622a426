// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/akiohm/quizlab/ent/generationevent"
	"github.com/akiohm/quizlab/ent/predicate"
)

// GenerationEventUpdate is the builder for updating GenerationEvent entities.
type GenerationEventUpdate struct {
	config
	hooks    []Hook
	mutation *GenerationEventMutation
}

// Where appends a list predicates to the GenerationEventUpdate builder.
func (_u *GenerationEventUpdate) Where(ps ...predicate.GenerationEvent) *GenerationEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMode sets the "mode" field.
func (_u *GenerationEventUpdate) SetMode(v string) *GenerationEventUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableMode(v *string) *GenerationEventUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetRequestedCount sets the "requested_count" field.
func (_u *GenerationEventUpdate) SetRequestedCount(v int) *GenerationEventUpdate {
	_u.mutation.ResetRequestedCount()
	_u.mutation.SetRequestedCount(v)
	return _u
}

// SetNillableRequestedCount sets the "requested_count" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableRequestedCount(v *int) *GenerationEventUpdate {
	if v != nil {
		_u.SetRequestedCount(*v)
	}
	return _u
}

// AddRequestedCount adds value to the "requested_count" field.
func (_u *GenerationEventUpdate) AddRequestedCount(v int) *GenerationEventUpdate {
	_u.mutation.AddRequestedCount(v)
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *GenerationEventUpdate) SetItemCount(v int) *GenerationEventUpdate {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableItemCount(v *int) *GenerationEventUpdate {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *GenerationEventUpdate) AddItemCount(v int) *GenerationEventUpdate {
	_u.mutation.AddItemCount(v)
	return _u
}

// SetContentChars sets the "content_chars" field.
func (_u *GenerationEventUpdate) SetContentChars(v int) *GenerationEventUpdate {
	_u.mutation.ResetContentChars()
	_u.mutation.SetContentChars(v)
	return _u
}

// SetNillableContentChars sets the "content_chars" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableContentChars(v *int) *GenerationEventUpdate {
	if v != nil {
		_u.SetContentChars(*v)
	}
	return _u
}

// AddContentChars adds value to the "content_chars" field.
func (_u *GenerationEventUpdate) AddContentChars(v int) *GenerationEventUpdate {
	_u.mutation.AddContentChars(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *GenerationEventUpdate) SetLevel(v string) *GenerationEventUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableLevel(v *string) *GenerationEventUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *GenerationEventUpdate) SetSuccess(v bool) *GenerationEventUpdate {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableSuccess(v *bool) *GenerationEventUpdate {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *GenerationEventUpdate) SetErrorKind(v string) *GenerationEventUpdate {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *GenerationEventUpdate) SetNillableErrorKind(v *string) *GenerationEventUpdate {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// Mutation returns the GenerationEventMutation object of the builder.
func (_u *GenerationEventUpdate) Mutation() *GenerationEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GenerationEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GenerationEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GenerationEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(generationevent.Table, generationevent.Columns, sqlgraph.NewFieldSpec(generationevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(generationevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestedCount(); ok {
		_spec.SetField(generationevent.FieldRequestedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestedCount(); ok {
		_spec.AddField(generationevent.FieldRequestedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(generationevent.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(generationevent.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentChars(); ok {
		_spec.SetField(generationevent.FieldContentChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContentChars(); ok {
		_spec.AddField(generationevent.FieldContentChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(generationevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(generationevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(generationevent.FieldErrorKind, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GenerationEventUpdateOne is the builder for updating a single GenerationEvent entity.
type GenerationEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GenerationEventMutation
}

// SetMode sets the "mode" field.
func (_u *GenerationEventUpdateOne) SetMode(v string) *GenerationEventUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableMode(v *string) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetRequestedCount sets the "requested_count" field.
func (_u *GenerationEventUpdateOne) SetRequestedCount(v int) *GenerationEventUpdateOne {
	_u.mutation.ResetRequestedCount()
	_u.mutation.SetRequestedCount(v)
	return _u
}

// SetNillableRequestedCount sets the "requested_count" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableRequestedCount(v *int) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetRequestedCount(*v)
	}
	return _u
}

// AddRequestedCount adds value to the "requested_count" field.
func (_u *GenerationEventUpdateOne) AddRequestedCount(v int) *GenerationEventUpdateOne {
	_u.mutation.AddRequestedCount(v)
	return _u
}

// SetItemCount sets the "item_count" field.
func (_u *GenerationEventUpdateOne) SetItemCount(v int) *GenerationEventUpdateOne {
	_u.mutation.ResetItemCount()
	_u.mutation.SetItemCount(v)
	return _u
}

// SetNillableItemCount sets the "item_count" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableItemCount(v *int) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetItemCount(*v)
	}
	return _u
}

// AddItemCount adds value to the "item_count" field.
func (_u *GenerationEventUpdateOne) AddItemCount(v int) *GenerationEventUpdateOne {
	_u.mutation.AddItemCount(v)
	return _u
}

// SetContentChars sets the "content_chars" field.
func (_u *GenerationEventUpdateOne) SetContentChars(v int) *GenerationEventUpdateOne {
	_u.mutation.ResetContentChars()
	_u.mutation.SetContentChars(v)
	return _u
}

// SetNillableContentChars sets the "content_chars" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableContentChars(v *int) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetContentChars(*v)
	}
	return _u
}

// AddContentChars adds value to the "content_chars" field.
func (_u *GenerationEventUpdateOne) AddContentChars(v int) *GenerationEventUpdateOne {
	_u.mutation.AddContentChars(v)
	return _u
}

// SetLevel sets the "level" field.
func (_u *GenerationEventUpdateOne) SetLevel(v string) *GenerationEventUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableLevel(v *string) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetSuccess sets the "success" field.
func (_u *GenerationEventUpdateOne) SetSuccess(v bool) *GenerationEventUpdateOne {
	_u.mutation.SetSuccess(v)
	return _u
}

// SetNillableSuccess sets the "success" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableSuccess(v *bool) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetSuccess(*v)
	}
	return _u
}

// SetErrorKind sets the "error_kind" field.
func (_u *GenerationEventUpdateOne) SetErrorKind(v string) *GenerationEventUpdateOne {
	_u.mutation.SetErrorKind(v)
	return _u
}

// SetNillableErrorKind sets the "error_kind" field if the given value is not nil.
func (_u *GenerationEventUpdateOne) SetNillableErrorKind(v *string) *GenerationEventUpdateOne {
	if v != nil {
		_u.SetErrorKind(*v)
	}
	return _u
}

// Mutation returns the GenerationEventMutation object of the builder.
func (_u *GenerationEventUpdateOne) Mutation() *GenerationEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the GenerationEventUpdate builder.
func (_u *GenerationEventUpdateOne) Where(ps ...predicate.GenerationEvent) *GenerationEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GenerationEventUpdateOne) Select(field string, fields ...string) *GenerationEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GenerationEvent entity.
func (_u *GenerationEventUpdateOne) Save(ctx context.Context) (*GenerationEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GenerationEventUpdateOne) SaveX(ctx context.Context) *GenerationEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GenerationEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GenerationEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *GenerationEventUpdateOne) sqlSave(ctx context.Context) (_node *GenerationEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(generationevent.Table, generationevent.Columns, sqlgraph.NewFieldSpec(generationevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GenerationEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, generationevent.FieldID)
		for _, f := range fields {
			if !generationevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != generationevent.FieldID {
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
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(generationevent.FieldMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.RequestedCount(); ok {
		_spec.SetField(generationevent.FieldRequestedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequestedCount(); ok {
		_spec.AddField(generationevent.FieldRequestedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ItemCount(); ok {
		_spec.SetField(generationevent.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedItemCount(); ok {
		_spec.AddField(generationevent.FieldItemCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ContentChars(); ok {
		_spec.SetField(generationevent.FieldContentChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedContentChars(); ok {
		_spec.AddField(generationevent.FieldContentChars, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(generationevent.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Success(); ok {
		_spec.SetField(generationevent.FieldSuccess, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ErrorKind(); ok {
		_spec.SetField(generationevent.FieldErrorKind, field.TypeString, value)
	}
	_node = &GenerationEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{generationevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
