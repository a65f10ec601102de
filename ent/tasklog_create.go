// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/taskfleet/taskfleet/ent/task"
	"github.com/taskfleet/taskfleet/ent/tasklog"
)

// TaskLogCreate is the builder for creating a TaskLog entity.
type TaskLogCreate struct {
	config
	mutation *TaskLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskID sets the "task_id" field.
func (_c *TaskLogCreate) SetTaskID(v int) *TaskLogCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetAction sets the "action" field.
func (_c *TaskLogCreate) SetAction(v string) *TaskLogCreate {
	_c.mutation.SetAction(v)
	return _c
}

// SetOldStatus sets the "old_status" field.
func (_c *TaskLogCreate) SetOldStatus(v string) *TaskLogCreate {
	_c.mutation.SetOldStatus(v)
	return _c
}

// SetNillableOldStatus sets the "old_status" field if the given value is not nil.
func (_c *TaskLogCreate) SetNillableOldStatus(v *string) *TaskLogCreate {
	if v != nil {
		_c.SetOldStatus(*v)
	}
	return _c
}

// SetNewStatus sets the "new_status" field.
func (_c *TaskLogCreate) SetNewStatus(v string) *TaskLogCreate {
	_c.mutation.SetNewStatus(v)
	return _c
}

// SetNillableNewStatus sets the "new_status" field if the given value is not nil.
func (_c *TaskLogCreate) SetNillableNewStatus(v *string) *TaskLogCreate {
	if v != nil {
		_c.SetNewStatus(*v)
	}
	return _c
}

// SetMessage sets the "message" field.
func (_c *TaskLogCreate) SetMessage(v string) *TaskLogCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetNillableMessage sets the "message" field if the given value is not nil.
func (_c *TaskLogCreate) SetNillableMessage(v *string) *TaskLogCreate {
	if v != nil {
		_c.SetMessage(*v)
	}
	return _c
}

// SetActor sets the "actor" field.
func (_c *TaskLogCreate) SetActor(v string) *TaskLogCreate {
	_c.mutation.SetActor(v)
	return _c
}

// SetNillableActor sets the "actor" field if the given value is not nil.
func (_c *TaskLogCreate) SetNillableActor(v *string) *TaskLogCreate {
	if v != nil {
		_c.SetActor(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskLogCreate) SetCreatedAt(v time.Time) *TaskLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskLogCreate) SetNillableCreatedAt(v *time.Time) *TaskLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *TaskLogCreate) SetTask(v *Task) *TaskLogCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the TaskLogMutation object of the builder.
func (_c *TaskLogCreate) Mutation() *TaskLogMutation {
	return _c.mutation
}

// Save creates the TaskLog in the database.
func (_c *TaskLogCreate) Save(ctx context.Context) (*TaskLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskLogCreate) SaveX(ctx context.Context) *TaskLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskLogCreate) defaults() {
	if _, ok := _c.mutation.Actor(); !ok {
		v := tasklog.DefaultActor
		_c.mutation.SetActor(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tasklog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskLogCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "TaskLog.task_id"`)}
	}
	if _, ok := _c.mutation.Action(); !ok {
		return &ValidationError{Name: "action", err: errors.New(`ent: missing required field "TaskLog.action"`)}
	}
	if _, ok := _c.mutation.Actor(); !ok {
		return &ValidationError{Name: "actor", err: errors.New(`ent: missing required field "TaskLog.actor"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TaskLog.created_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "TaskLog.task"`)}
	}
	return nil
}

func (_c *TaskLogCreate) sqlSave(ctx context.Context) (*TaskLog, error) {
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

func (_c *TaskLogCreate) createSpec() (*TaskLog, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tasklog.Table, sqlgraph.NewFieldSpec(tasklog.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Action(); ok {
		_spec.SetField(tasklog.FieldAction, field.TypeString, value)
		_node.Action = value
	}
	if value, ok := _c.mutation.OldStatus(); ok {
		_spec.SetField(tasklog.FieldOldStatus, field.TypeString, value)
		_node.OldStatus = value
	}
	if value, ok := _c.mutation.NewStatus(); ok {
		_spec.SetField(tasklog.FieldNewStatus, field.TypeString, value)
		_node.NewStatus = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(tasklog.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.Actor(); ok {
		_spec.SetField(tasklog.FieldActor, field.TypeString, value)
		_node.Actor = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tasklog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   tasklog.TaskTable,
			Columns: []string{tasklog.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaskLog.Create().
//		SetTaskID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskLogUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskLogCreate) OnConflict(opts ...sql.ConflictOption) *TaskLogUpsertOne {
	_c.conflict = opts
	return &TaskLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskLogCreate) OnConflictColumns(columns ...string) *TaskLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskLogUpsertOne{
		create: _c,
	}
}

type (
	// TaskLogUpsertOne is the builder for "upsert"-ing
	//  one TaskLog node.
	TaskLogUpsertOne struct {
		create *TaskLogCreate
	}

	// TaskLogUpsert is the "OnConflict" setter.
	TaskLogUpsert struct {
		*sql.UpdateSet
	}
)

// SetAction sets the "action" field.
func (u *TaskLogUpsert) SetAction(v string) *TaskLogUpsert {
	u.Set(tasklog.FieldAction, v)
	return u
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *TaskLogUpsert) UpdateAction() *TaskLogUpsert {
	u.SetExcluded(tasklog.FieldAction)
	return u
}

// SetOldStatus sets the "old_status" field.
func (u *TaskLogUpsert) SetOldStatus(v string) *TaskLogUpsert {
	u.Set(tasklog.FieldOldStatus, v)
	return u
}

// UpdateOldStatus sets the "old_status" field to the value that was provided on create.
func (u *TaskLogUpsert) UpdateOldStatus() *TaskLogUpsert {
	u.SetExcluded(tasklog.FieldOldStatus)
	return u
}

// ClearOldStatus clears the value of the "old_status" field.
func (u *TaskLogUpsert) ClearOldStatus() *TaskLogUpsert {
	u.SetNull(tasklog.FieldOldStatus)
	return u
}

// SetNewStatus sets the "new_status" field.
func (u *TaskLogUpsert) SetNewStatus(v string) *TaskLogUpsert {
	u.Set(tasklog.FieldNewStatus, v)
	return u
}

// UpdateNewStatus sets the "new_status" field to the value that was provided on create.
func (u *TaskLogUpsert) UpdateNewStatus() *TaskLogUpsert {
	u.SetExcluded(tasklog.FieldNewStatus)
	return u
}

// ClearNewStatus clears the value of the "new_status" field.
func (u *TaskLogUpsert) ClearNewStatus() *TaskLogUpsert {
	u.SetNull(tasklog.FieldNewStatus)
	return u
}

// SetMessage sets the "message" field.
func (u *TaskLogUpsert) SetMessage(v string) *TaskLogUpsert {
	u.Set(tasklog.FieldMessage, v)
	return u
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *TaskLogUpsert) UpdateMessage() *TaskLogUpsert {
	u.SetExcluded(tasklog.FieldMessage)
	return u
}

// ClearMessage clears the value of the "message" field.
func (u *TaskLogUpsert) ClearMessage() *TaskLogUpsert {
	u.SetNull(tasklog.FieldMessage)
	return u
}

// SetActor sets the "actor" field.
func (u *TaskLogUpsert) SetActor(v string) *TaskLogUpsert {
	u.Set(tasklog.FieldActor, v)
	return u
}

// UpdateActor sets the "actor" field to the value that was provided on create.
func (u *TaskLogUpsert) UpdateActor() *TaskLogUpsert {
	u.SetExcluded(tasklog.FieldActor)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.TaskLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TaskLogUpsertOne) UpdateNewValues() *TaskLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.TaskID(); exists {
			s.SetIgnore(tasklog.FieldTaskID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(tasklog.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskLogUpsertOne) Ignore() *TaskLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskLogUpsertOne) DoNothing() *TaskLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskLogCreate.OnConflict
// documentation for more info.
func (u *TaskLogUpsertOne) Update(set func(*TaskLogUpsert)) *TaskLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetAction sets the "action" field.
func (u *TaskLogUpsertOne) SetAction(v string) *TaskLogUpsertOne {
	return u.Update(func(s *TaskLogUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *TaskLogUpsertOne) UpdateAction() *TaskLogUpsertOne {
	return u.Update(func(s *TaskLogUpsert) {
		s.UpdateAction()
	})
}

// SetOldStatus sets the "old_status" field.
func (u *TaskLogUpsertOne) SetOldStatus(v string) *TaskLogUpsertOne {
	return u.Update(func(s *TaskLogUpsert) {
		s.SetOldStatus(v)
	})
}

// UpdateOldStatus sets the "old_status" field to the value that was provided on create.
func (u *TaskLogUpsertOne) UpdateOldStatus() *TaskLogUpsertOne {
	return u.Update(func(s *TaskLogUpsert) {
		s.UpdateOldStatus()
	})
}

// ClearOldStatus clears the value of the "old_status" field.
func (u *TaskLogUpsertOne) ClearOldStatus() *TaskLogUpsertOne {
	return u.Update(func(s *TaskLogUpsert) {
		s.ClearOldStatus()
	})
}

// SetNewStatus sets the "new_status" field.
func (u *TaskLogUpsertOne) SetNewStatus(v string) *TaskLogUpsertOne {
	return u.Update(func(s *TaskLogUpsert) {
		s.SetNewStatus(v)
	})
}

// UpdateNewStatus sets the "new_status" field to the value that was provided on create.
func (u *TaskLogUpsertOne) UpdateNewStatus() *TaskLogUpsertOne {
	return u.Update(func(s *TaskLogUpsert) {
		s.UpdateNewStatus()
	})
}

// ClearNewStatus clears the value of the "new_status" field.
func (u *TaskLogUpsertOne) ClearNewStatus() *TaskLogUpsertOne {
	return u.Update(func(s *TaskLogUpsert) {
		s.ClearNewStatus()
	})
}

// SetMessage sets the "message" field.
func (u *TaskLogUpsertOne) SetMessage(v string) *TaskLogUpsertOne {
	return u.Update(func(s *TaskLogUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *TaskLogUpsertOne) UpdateMessage() *TaskLogUpsertOne {
	return u.Update(func(s *TaskLogUpsert) {
		s.UpdateMessage()
	})
}

// ClearMessage clears the value of the "message" field.
func (u *TaskLogUpsertOne) ClearMessage() *TaskLogUpsertOne {
	return u.Update(func(s *TaskLogUpsert) {
		s.ClearMessage()
	})
}

// SetActor sets the "actor" field.
func (u *TaskLogUpsertOne) SetActor(v string) *TaskLogUpsertOne {
	return u.Update(func(s *TaskLogUpsert) {
		s.SetActor(v)
	})
}

// UpdateActor sets the "actor" field to the value that was provided on create.
func (u *TaskLogUpsertOne) UpdateActor() *TaskLogUpsertOne {
	return u.Update(func(s *TaskLogUpsert) {
		s.UpdateActor()
	})
}

// Exec executes the query.
func (u *TaskLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskLogUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskLogUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskLogCreateBulk is the builder for creating many TaskLog entities in bulk.
type TaskLogCreateBulk struct {
	config
	err      error
	builders []*TaskLogCreate
	conflict []sql.ConflictOption
}

// Save creates the TaskLog entities in the database.
func (_c *TaskLogCreateBulk) Save(ctx context.Context) ([]*TaskLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskLogMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *TaskLogCreateBulk) SaveX(ctx context.Context) []*TaskLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaskLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskLogUpsert) {
//			SetTaskID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskLogUpsertBulk {
	_c.conflict = opts
	return &TaskLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskLogCreateBulk) OnConflictColumns(columns ...string) *TaskLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskLogUpsertBulk{
		create: _c,
	}
}

// TaskLogUpsertBulk is the builder for "upsert"-ing
// a bulk of TaskLog nodes.
type TaskLogUpsertBulk struct {
	create *TaskLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TaskLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TaskLogUpsertBulk) UpdateNewValues() *TaskLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.TaskID(); exists {
				s.SetIgnore(tasklog.FieldTaskID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(tasklog.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskLogUpsertBulk) Ignore() *TaskLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskLogUpsertBulk) DoNothing() *TaskLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskLogCreateBulk.OnConflict
// documentation for more info.
func (u *TaskLogUpsertBulk) Update(set func(*TaskLogUpsert)) *TaskLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskLogUpsert{UpdateSet: update})
	}))
	return u
}

// SetAction sets the "action" field.
func (u *TaskLogUpsertBulk) SetAction(v string) *TaskLogUpsertBulk {
	return u.Update(func(s *TaskLogUpsert) {
		s.SetAction(v)
	})
}

// UpdateAction sets the "action" field to the value that was provided on create.
func (u *TaskLogUpsertBulk) UpdateAction() *TaskLogUpsertBulk {
	return u.Update(func(s *TaskLogUpsert) {
		s.UpdateAction()
	})
}

// SetOldStatus sets the "old_status" field.
func (u *TaskLogUpsertBulk) SetOldStatus(v string) *TaskLogUpsertBulk {
	return u.Update(func(s *TaskLogUpsert) {
		s.SetOldStatus(v)
	})
}

// UpdateOldStatus sets the "old_status" field to the value that was provided on create.
func (u *TaskLogUpsertBulk) UpdateOldStatus() *TaskLogUpsertBulk {
	return u.Update(func(s *TaskLogUpsert) {
		s.UpdateOldStatus()
	})
}

// ClearOldStatus clears the value of the "old_status" field.
func (u *TaskLogUpsertBulk) ClearOldStatus() *TaskLogUpsertBulk {
	return u.Update(func(s *TaskLogUpsert) {
		s.ClearOldStatus()
	})
}

// SetNewStatus sets the "new_status" field.
func (u *TaskLogUpsertBulk) SetNewStatus(v string) *TaskLogUpsertBulk {
	return u.Update(func(s *TaskLogUpsert) {
		s.SetNewStatus(v)
	})
}

// UpdateNewStatus sets the "new_status" field to the value that was provided on create.
func (u *TaskLogUpsertBulk) UpdateNewStatus() *TaskLogUpsertBulk {
	return u.Update(func(s *TaskLogUpsert) {
		s.UpdateNewStatus()
	})
}

// ClearNewStatus clears the value of the "new_status" field.
func (u *TaskLogUpsertBulk) ClearNewStatus() *TaskLogUpsertBulk {
	return u.Update(func(s *TaskLogUpsert) {
		s.ClearNewStatus()
	})
}

// SetMessage sets the "message" field.
func (u *TaskLogUpsertBulk) SetMessage(v string) *TaskLogUpsertBulk {
	return u.Update(func(s *TaskLogUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *TaskLogUpsertBulk) UpdateMessage() *TaskLogUpsertBulk {
	return u.Update(func(s *TaskLogUpsert) {
		s.UpdateMessage()
	})
}

// ClearMessage clears the value of the "message" field.
func (u *TaskLogUpsertBulk) ClearMessage() *TaskLogUpsertBulk {
	return u.Update(func(s *TaskLogUpsert) {
		s.ClearMessage()
	})
}

// SetActor sets the "actor" field.
func (u *TaskLogUpsertBulk) SetActor(v string) *TaskLogUpsertBulk {
	return u.Update(func(s *TaskLogUpsert) {
		s.SetActor(v)
	})
}

// UpdateActor sets the "actor" field to the value that was provided on create.
func (u *TaskLogUpsertBulk) UpdateActor() *TaskLogUpsertBulk {
	return u.Update(func(s *TaskLogUpsert) {
		s.UpdateActor()
	})
}

// Exec executes the query.
func (u *TaskLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
