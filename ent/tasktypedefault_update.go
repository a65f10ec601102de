// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/taskfleet/taskfleet/ent/predicate"
	"github.com/taskfleet/taskfleet/ent/tasktypedefault"
)

// TaskTypeDefaultUpdate is the builder for updating TaskTypeDefault entities.
type TaskTypeDefaultUpdate struct {
	config
	hooks    []Hook
	mutation *TaskTypeDefaultMutation
}

// Where appends a list predicates to the TaskTypeDefaultUpdate builder.
func (_u *TaskTypeDefaultUpdate) Where(ps ...predicate.TaskTypeDefault) *TaskTypeDefaultUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *TaskTypeDefaultUpdate) SetTaskType(v tasktypedefault.TaskType) *TaskTypeDefaultUpdate {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *TaskTypeDefaultUpdate) SetNillableTaskType(v *tasktypedefault.TaskType) *TaskTypeDefaultUpdate {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetTimeoutMinutes sets the "timeout_minutes" field.
func (_u *TaskTypeDefaultUpdate) SetTimeoutMinutes(v int) *TaskTypeDefaultUpdate {
	_u.mutation.ResetTimeoutMinutes()
	_u.mutation.SetTimeoutMinutes(v)
	return _u
}

// SetNillableTimeoutMinutes sets the "timeout_minutes" field if the given value is not nil.
func (_u *TaskTypeDefaultUpdate) SetNillableTimeoutMinutes(v *int) *TaskTypeDefaultUpdate {
	if v != nil {
		_u.SetTimeoutMinutes(*v)
	}
	return _u
}

// AddTimeoutMinutes adds value to the "timeout_minutes" field.
func (_u *TaskTypeDefaultUpdate) AddTimeoutMinutes(v int) *TaskTypeDefaultUpdate {
	_u.mutation.AddTimeoutMinutes(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *TaskTypeDefaultUpdate) SetMaxRetries(v int) *TaskTypeDefaultUpdate {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *TaskTypeDefaultUpdate) SetNillableMaxRetries(v *int) *TaskTypeDefaultUpdate {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *TaskTypeDefaultUpdate) AddMaxRetries(v int) *TaskTypeDefaultUpdate {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskTypeDefaultUpdate) SetPriority(v int) *TaskTypeDefaultUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskTypeDefaultUpdate) SetNillablePriority(v *int) *TaskTypeDefaultUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TaskTypeDefaultUpdate) AddPriority(v int) *TaskTypeDefaultUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// Mutation returns the TaskTypeDefaultMutation object of the builder.
func (_u *TaskTypeDefaultUpdate) Mutation() *TaskTypeDefaultMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskTypeDefaultUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskTypeDefaultUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskTypeDefaultUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskTypeDefaultUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskTypeDefaultUpdate) check() error {
	if v, ok := _u.mutation.TaskType(); ok {
		if err := tasktypedefault.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "TaskTypeDefault.task_type": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskTypeDefaultUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tasktypedefault.Table, tasktypedefault.Columns, sqlgraph.NewFieldSpec(tasktypedefault.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(tasktypedefault.FieldTaskType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TimeoutMinutes(); ok {
		_spec.SetField(tasktypedefault.FieldTimeoutMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutMinutes(); ok {
		_spec.AddField(tasktypedefault.FieldTimeoutMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(tasktypedefault.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(tasktypedefault.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(tasktypedefault.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(tasktypedefault.FieldPriority, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tasktypedefault.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskTypeDefaultUpdateOne is the builder for updating a single TaskTypeDefault entity.
type TaskTypeDefaultUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskTypeDefaultMutation
}

// SetTaskType sets the "task_type" field.
func (_u *TaskTypeDefaultUpdateOne) SetTaskType(v tasktypedefault.TaskType) *TaskTypeDefaultUpdateOne {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *TaskTypeDefaultUpdateOne) SetNillableTaskType(v *tasktypedefault.TaskType) *TaskTypeDefaultUpdateOne {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetTimeoutMinutes sets the "timeout_minutes" field.
func (_u *TaskTypeDefaultUpdateOne) SetTimeoutMinutes(v int) *TaskTypeDefaultUpdateOne {
	_u.mutation.ResetTimeoutMinutes()
	_u.mutation.SetTimeoutMinutes(v)
	return _u
}

// SetNillableTimeoutMinutes sets the "timeout_minutes" field if the given value is not nil.
func (_u *TaskTypeDefaultUpdateOne) SetNillableTimeoutMinutes(v *int) *TaskTypeDefaultUpdateOne {
	if v != nil {
		_u.SetTimeoutMinutes(*v)
	}
	return _u
}

// AddTimeoutMinutes adds value to the "timeout_minutes" field.
func (_u *TaskTypeDefaultUpdateOne) AddTimeoutMinutes(v int) *TaskTypeDefaultUpdateOne {
	_u.mutation.AddTimeoutMinutes(v)
	return _u
}

// SetMaxRetries sets the "max_retries" field.
func (_u *TaskTypeDefaultUpdateOne) SetMaxRetries(v int) *TaskTypeDefaultUpdateOne {
	_u.mutation.ResetMaxRetries()
	_u.mutation.SetMaxRetries(v)
	return _u
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_u *TaskTypeDefaultUpdateOne) SetNillableMaxRetries(v *int) *TaskTypeDefaultUpdateOne {
	if v != nil {
		_u.SetMaxRetries(*v)
	}
	return _u
}

// AddMaxRetries adds value to the "max_retries" field.
func (_u *TaskTypeDefaultUpdateOne) AddMaxRetries(v int) *TaskTypeDefaultUpdateOne {
	_u.mutation.AddMaxRetries(v)
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskTypeDefaultUpdateOne) SetPriority(v int) *TaskTypeDefaultUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskTypeDefaultUpdateOne) SetNillablePriority(v *int) *TaskTypeDefaultUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TaskTypeDefaultUpdateOne) AddPriority(v int) *TaskTypeDefaultUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// Mutation returns the TaskTypeDefaultMutation object of the builder.
func (_u *TaskTypeDefaultUpdateOne) Mutation() *TaskTypeDefaultMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskTypeDefaultUpdate builder.
func (_u *TaskTypeDefaultUpdateOne) Where(ps ...predicate.TaskTypeDefault) *TaskTypeDefaultUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskTypeDefaultUpdateOne) Select(field string, fields ...string) *TaskTypeDefaultUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskTypeDefault entity.
func (_u *TaskTypeDefaultUpdateOne) Save(ctx context.Context) (*TaskTypeDefault, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskTypeDefaultUpdateOne) SaveX(ctx context.Context) *TaskTypeDefault {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskTypeDefaultUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskTypeDefaultUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskTypeDefaultUpdateOne) check() error {
	if v, ok := _u.mutation.TaskType(); ok {
		if err := tasktypedefault.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "TaskTypeDefault.task_type": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskTypeDefaultUpdateOne) sqlSave(ctx context.Context) (_node *TaskTypeDefault, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tasktypedefault.Table, tasktypedefault.Columns, sqlgraph.NewFieldSpec(tasktypedefault.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskTypeDefault.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tasktypedefault.FieldID)
		for _, f := range fields {
			if !tasktypedefault.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tasktypedefault.FieldID {
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
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(tasktypedefault.FieldTaskType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TimeoutMinutes(); ok {
		_spec.SetField(tasktypedefault.FieldTimeoutMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeoutMinutes(); ok {
		_spec.AddField(tasktypedefault.FieldTimeoutMinutes, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxRetries(); ok {
		_spec.SetField(tasktypedefault.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxRetries(); ok {
		_spec.AddField(tasktypedefault.FieldMaxRetries, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(tasktypedefault.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(tasktypedefault.FieldPriority, field.TypeInt, value)
	}
	_node = &TaskTypeDefault{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tasktypedefault.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
