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
	"github.com/taskfleet/taskfleet/ent/tasklog"
)

// TaskLogUpdate is the builder for updating TaskLog entities.
type TaskLogUpdate struct {
	config
	hooks    []Hook
	mutation *TaskLogMutation
}

// Where appends a list predicates to the TaskLogUpdate builder.
func (_u *TaskLogUpdate) Where(ps ...predicate.TaskLog) *TaskLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAction sets the "action" field.
func (_u *TaskLogUpdate) SetAction(v string) *TaskLogUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *TaskLogUpdate) SetNillableAction(v *string) *TaskLogUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetOldStatus sets the "old_status" field.
func (_u *TaskLogUpdate) SetOldStatus(v string) *TaskLogUpdate {
	_u.mutation.SetOldStatus(v)
	return _u
}

// SetNillableOldStatus sets the "old_status" field if the given value is not nil.
func (_u *TaskLogUpdate) SetNillableOldStatus(v *string) *TaskLogUpdate {
	if v != nil {
		_u.SetOldStatus(*v)
	}
	return _u
}

// ClearOldStatus clears the value of the "old_status" field.
func (_u *TaskLogUpdate) ClearOldStatus() *TaskLogUpdate {
	_u.mutation.ClearOldStatus()
	return _u
}

// SetNewStatus sets the "new_status" field.
func (_u *TaskLogUpdate) SetNewStatus(v string) *TaskLogUpdate {
	_u.mutation.SetNewStatus(v)
	return _u
}

// SetNillableNewStatus sets the "new_status" field if the given value is not nil.
func (_u *TaskLogUpdate) SetNillableNewStatus(v *string) *TaskLogUpdate {
	if v != nil {
		_u.SetNewStatus(*v)
	}
	return _u
}

// ClearNewStatus clears the value of the "new_status" field.
func (_u *TaskLogUpdate) ClearNewStatus() *TaskLogUpdate {
	_u.mutation.ClearNewStatus()
	return _u
}

// SetMessage sets the "message" field.
func (_u *TaskLogUpdate) SetMessage(v string) *TaskLogUpdate {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *TaskLogUpdate) SetNillableMessage(v *string) *TaskLogUpdate {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *TaskLogUpdate) ClearMessage() *TaskLogUpdate {
	_u.mutation.ClearMessage()
	return _u
}

// SetActor sets the "actor" field.
func (_u *TaskLogUpdate) SetActor(v string) *TaskLogUpdate {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *TaskLogUpdate) SetNillableActor(v *string) *TaskLogUpdate {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// Mutation returns the TaskLogMutation object of the builder.
func (_u *TaskLogUpdate) Mutation() *TaskLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskLogUpdate) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskLog.task"`)
	}
	return nil
}

func (_u *TaskLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tasklog.Table, tasklog.Columns, sqlgraph.NewFieldSpec(tasklog.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(tasklog.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.OldStatus(); ok {
		_spec.SetField(tasklog.FieldOldStatus, field.TypeString, value)
	}
	if _u.mutation.OldStatusCleared() {
		_spec.ClearField(tasklog.FieldOldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.NewStatus(); ok {
		_spec.SetField(tasklog.FieldNewStatus, field.TypeString, value)
	}
	if _u.mutation.NewStatusCleared() {
		_spec.ClearField(tasklog.FieldNewStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(tasklog.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(tasklog.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(tasklog.FieldActor, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tasklog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskLogUpdateOne is the builder for updating a single TaskLog entity.
type TaskLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskLogMutation
}

// SetAction sets the "action" field.
func (_u *TaskLogUpdateOne) SetAction(v string) *TaskLogUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *TaskLogUpdateOne) SetNillableAction(v *string) *TaskLogUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// SetOldStatus sets the "old_status" field.
func (_u *TaskLogUpdateOne) SetOldStatus(v string) *TaskLogUpdateOne {
	_u.mutation.SetOldStatus(v)
	return _u
}

// SetNillableOldStatus sets the "old_status" field if the given value is not nil.
func (_u *TaskLogUpdateOne) SetNillableOldStatus(v *string) *TaskLogUpdateOne {
	if v != nil {
		_u.SetOldStatus(*v)
	}
	return _u
}

// ClearOldStatus clears the value of the "old_status" field.
func (_u *TaskLogUpdateOne) ClearOldStatus() *TaskLogUpdateOne {
	_u.mutation.ClearOldStatus()
	return _u
}

// SetNewStatus sets the "new_status" field.
func (_u *TaskLogUpdateOne) SetNewStatus(v string) *TaskLogUpdateOne {
	_u.mutation.SetNewStatus(v)
	return _u
}

// SetNillableNewStatus sets the "new_status" field if the given value is not nil.
func (_u *TaskLogUpdateOne) SetNillableNewStatus(v *string) *TaskLogUpdateOne {
	if v != nil {
		_u.SetNewStatus(*v)
	}
	return _u
}

// ClearNewStatus clears the value of the "new_status" field.
func (_u *TaskLogUpdateOne) ClearNewStatus() *TaskLogUpdateOne {
	_u.mutation.ClearNewStatus()
	return _u
}

// SetMessage sets the "message" field.
func (_u *TaskLogUpdateOne) SetMessage(v string) *TaskLogUpdateOne {
	_u.mutation.SetMessage(v)
	return _u
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_u *TaskLogUpdateOne) SetNillableMessage(v *string) *TaskLogUpdateOne {
	if v != nil {
		_u.SetMessage(*v)
	}
	return _u
}

// ClearMessage clears the value of the "message" field.
func (_u *TaskLogUpdateOne) ClearMessage() *TaskLogUpdateOne {
	_u.mutation.ClearMessage()
	return _u
}

// SetActor sets the "actor" field.
func (_u *TaskLogUpdateOne) SetActor(v string) *TaskLogUpdateOne {
	_u.mutation.SetActor(v)
	return _u
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_u *TaskLogUpdateOne) SetNillableActor(v *string) *TaskLogUpdateOne {
	if v != nil {
		_u.SetActor(*v)
	}
	return _u
}

// Mutation returns the TaskLogMutation object of the builder.
func (_u *TaskLogUpdateOne) Mutation() *TaskLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the TaskLogUpdate builder.
func (_u *TaskLogUpdateOne) Where(ps ...predicate.TaskLog) *TaskLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskLogUpdateOne) Select(field string, fields ...string) *TaskLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TaskLog entity.
func (_u *TaskLogUpdateOne) Save(ctx context.Context) (*TaskLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskLogUpdateOne) SaveX(ctx context.Context) *TaskLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskLogUpdateOne) check() error {
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TaskLog.task"`)
	}
	return nil
}

func (_u *TaskLogUpdateOne) sqlSave(ctx context.Context) (_node *TaskLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(tasklog.Table, tasklog.Columns, sqlgraph.NewFieldSpec(tasklog.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TaskLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tasklog.FieldID)
		for _, f := range fields {
			if !tasklog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tasklog.FieldID {
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
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(tasklog.FieldAction, field.TypeString, value)
	}
	if value, ok := _u.mutation.OldStatus(); ok {
		_spec.SetField(tasklog.FieldOldStatus, field.TypeString, value)
	}
	if _u.mutation.OldStatusCleared() {
		_spec.ClearField(tasklog.FieldOldStatus, field.TypeString)
	}
	if value, ok := _u.mutation.NewStatus(); ok {
		_spec.SetField(tasklog.FieldNewStatus, field.TypeString, value)
	}
	if _u.mutation.NewStatusCleared() {
		_spec.ClearField(tasklog.FieldNewStatus, field.TypeString)
	}
	if value, ok := _u.mutation.Message(); ok {
		_spec.SetField(tasklog.FieldMessage, field.TypeString, value)
	}
	if _u.mutation.MessageCleared() {
		_spec.ClearField(tasklog.FieldMessage, field.TypeString)
	}
	if value, ok := _u.mutation.Actor(); ok {
		_spec.SetField(tasklog.FieldActor, field.TypeString, value)
	}
	_node = &TaskLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tasklog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
