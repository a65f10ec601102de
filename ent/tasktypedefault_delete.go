// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/taskfleet/taskfleet/ent/predicate"
	"github.com/taskfleet/taskfleet/ent/tasktypedefault"
)

// TaskTypeDefaultDelete is the builder for deleting a TaskTypeDefault entity.
type TaskTypeDefaultDelete struct {
	config
	hooks    []Hook
	mutation *TaskTypeDefaultMutation
}

// Where appends a list predicates to the TaskTypeDefaultDelete builder.
func (_d *TaskTypeDefaultDelete) Where(ps ...predicate.TaskTypeDefault) *TaskTypeDefaultDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TaskTypeDefaultDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TaskTypeDefaultDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TaskTypeDefaultDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(tasktypedefault.Table, sqlgraph.NewFieldSpec(tasktypedefault.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// TaskTypeDefaultDeleteOne is the builder for deleting a single TaskTypeDefault entity.
type TaskTypeDefaultDeleteOne struct {
	_d *TaskTypeDefaultDelete
}

// Where appends a list predicates to the TaskTypeDefaultDelete builder.
func (_d *TaskTypeDefaultDeleteOne) Where(ps ...predicate.TaskTypeDefault) *TaskTypeDefaultDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TaskTypeDefaultDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{tasktypedefault.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TaskTypeDefaultDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
