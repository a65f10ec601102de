// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/taskfleet/taskfleet/ent/tasktypedefault"
)

// TaskTypeDefaultCreate is the builder for creating a TaskTypeDefault entity.
type TaskTypeDefaultCreate struct {
	config
	mutation *TaskTypeDefaultMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTaskType sets the "task_type" field.
func (_c *TaskTypeDefaultCreate) SetTaskType(v tasktypedefault.TaskType) *TaskTypeDefaultCreate {
	_c.mutation.SetTaskType(v)
	return _c
}

// SetTimeoutMinutes sets the "timeout_minutes" field.
func (_c *TaskTypeDefaultCreate) SetTimeoutMinutes(v int) *TaskTypeDefaultCreate {
	_c.mutation.SetTimeoutMinutes(v)
	return _c
}

// SetMaxRetries sets the "max_retries" field.
func (_c *TaskTypeDefaultCreate) SetMaxRetries(v int) *TaskTypeDefaultCreate {
	_c.mutation.SetMaxRetries(v)
	return _c
}

// SetPriority sets the "priority" field.
func (_c *TaskTypeDefaultCreate) SetPriority(v int) *TaskTypeDefaultCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// Mutation returns the TaskTypeDefaultMutation object of the builder.
func (_c *TaskTypeDefaultCreate) Mutation() *TaskTypeDefaultMutation {
	return _c.mutation
}

// Save creates the TaskTypeDefault in the database.
func (_c *TaskTypeDefaultCreate) Save(ctx context.Context) (*TaskTypeDefault, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskTypeDefaultCreate) SaveX(ctx context.Context) *TaskTypeDefault {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskTypeDefaultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskTypeDefaultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskTypeDefaultCreate) check() error {
	if _, ok := _c.mutation.TaskType(); !ok {
		return &ValidationError{Name: "task_type", err: errors.New(`ent: missing required field "TaskTypeDefault.task_type"`)}
	}
	if v, ok := _c.mutation.TaskType(); ok {
		if err := tasktypedefault.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "TaskTypeDefault.task_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TimeoutMinutes(); !ok {
		return &ValidationError{Name: "timeout_minutes", err: errors.New(`ent: missing required field "TaskTypeDefault.timeout_minutes"`)}
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		return &ValidationError{Name: "max_retries", err: errors.New(`ent: missing required field "TaskTypeDefault.max_retries"`)}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "TaskTypeDefault.priority"`)}
	}
	return nil
}

func (_c *TaskTypeDefaultCreate) sqlSave(ctx context.Context) (*TaskTypeDefault, error) {
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

func (_c *TaskTypeDefaultCreate) createSpec() (*TaskTypeDefault, *sqlgraph.CreateSpec) {
	var (
		_node = &TaskTypeDefault{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tasktypedefault.Table, sqlgraph.NewFieldSpec(tasktypedefault.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.TaskType(); ok {
		_spec.SetField(tasktypedefault.FieldTaskType, field.TypeEnum, value)
		_node.TaskType = value
	}
	if value, ok := _c.mutation.TimeoutMinutes(); ok {
		_spec.SetField(tasktypedefault.FieldTimeoutMinutes, field.TypeInt, value)
		_node.TimeoutMinutes = value
	}
	if value, ok := _c.mutation.MaxRetries(); ok {
		_spec.SetField(tasktypedefault.FieldMaxRetries, field.TypeInt, value)
		_node.MaxRetries = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(tasktypedefault.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaskTypeDefault.Create().
//		SetTaskType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskTypeDefaultUpsert) {
//			SetTaskType(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskTypeDefaultCreate) OnConflict(opts ...sql.ConflictOption) *TaskTypeDefaultUpsertOne {
	_c.conflict = opts
	return &TaskTypeDefaultUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskTypeDefault.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskTypeDefaultCreate) OnConflictColumns(columns ...string) *TaskTypeDefaultUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskTypeDefaultUpsertOne{
		create: _c,
	}
}

type (
	// TaskTypeDefaultUpsertOne is the builder for "upsert"-ing
	//  one TaskTypeDefault node.
	TaskTypeDefaultUpsertOne struct {
		create *TaskTypeDefaultCreate
	}

	// TaskTypeDefaultUpsert is the "OnConflict" setter.
	TaskTypeDefaultUpsert struct {
		*sql.UpdateSet
	}
)

// SetTaskType sets the "task_type" field.
func (u *TaskTypeDefaultUpsert) SetTaskType(v tasktypedefault.TaskType) *TaskTypeDefaultUpsert {
	u.Set(tasktypedefault.FieldTaskType, v)
	return u
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *TaskTypeDefaultUpsert) UpdateTaskType() *TaskTypeDefaultUpsert {
	u.SetExcluded(tasktypedefault.FieldTaskType)
	return u
}

// SetTimeoutMinutes sets the "timeout_minutes" field.
func (u *TaskTypeDefaultUpsert) SetTimeoutMinutes(v int) *TaskTypeDefaultUpsert {
	u.Set(tasktypedefault.FieldTimeoutMinutes, v)
	return u
}

// UpdateTimeoutMinutes sets the "timeout_minutes" field to the value that was provided on create.
func (u *TaskTypeDefaultUpsert) UpdateTimeoutMinutes() *TaskTypeDefaultUpsert {
	u.SetExcluded(tasktypedefault.FieldTimeoutMinutes)
	return u
}

// AddTimeoutMinutes adds v to the "timeout_minutes" field.
func (u *TaskTypeDefaultUpsert) AddTimeoutMinutes(v int) *TaskTypeDefaultUpsert {
	u.Add(tasktypedefault.FieldTimeoutMinutes, v)
	return u
}

// SetMaxRetries sets the "max_retries" field.
func (u *TaskTypeDefaultUpsert) SetMaxRetries(v int) *TaskTypeDefaultUpsert {
	u.Set(tasktypedefault.FieldMaxRetries, v)
	return u
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *TaskTypeDefaultUpsert) UpdateMaxRetries() *TaskTypeDefaultUpsert {
	u.SetExcluded(tasktypedefault.FieldMaxRetries)
	return u
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *TaskTypeDefaultUpsert) AddMaxRetries(v int) *TaskTypeDefaultUpsert {
	u.Add(tasktypedefault.FieldMaxRetries, v)
	return u
}

// SetPriority sets the "priority" field.
func (u *TaskTypeDefaultUpsert) SetPriority(v int) *TaskTypeDefaultUpsert {
	u.Set(tasktypedefault.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TaskTypeDefaultUpsert) UpdatePriority() *TaskTypeDefaultUpsert {
	u.SetExcluded(tasktypedefault.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *TaskTypeDefaultUpsert) AddPriority(v int) *TaskTypeDefaultUpsert {
	u.Add(tasktypedefault.FieldPriority, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.TaskTypeDefault.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TaskTypeDefaultUpsertOne) UpdateNewValues() *TaskTypeDefaultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskTypeDefault.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskTypeDefaultUpsertOne) Ignore() *TaskTypeDefaultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskTypeDefaultUpsertOne) DoNothing() *TaskTypeDefaultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskTypeDefaultCreate.OnConflict
// documentation for more info.
func (u *TaskTypeDefaultUpsertOne) Update(set func(*TaskTypeDefaultUpsert)) *TaskTypeDefaultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskTypeDefaultUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskType sets the "task_type" field.
func (u *TaskTypeDefaultUpsertOne) SetTaskType(v tasktypedefault.TaskType) *TaskTypeDefaultUpsertOne {
	return u.Update(func(s *TaskTypeDefaultUpsert) {
		s.SetTaskType(v)
	})
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *TaskTypeDefaultUpsertOne) UpdateTaskType() *TaskTypeDefaultUpsertOne {
	return u.Update(func(s *TaskTypeDefaultUpsert) {
		s.UpdateTaskType()
	})
}

// SetTimeoutMinutes sets the "timeout_minutes" field.
func (u *TaskTypeDefaultUpsertOne) SetTimeoutMinutes(v int) *TaskTypeDefaultUpsertOne {
	return u.Update(func(s *TaskTypeDefaultUpsert) {
		s.SetTimeoutMinutes(v)
	})
}

// AddTimeoutMinutes adds v to the "timeout_minutes" field.
func (u *TaskTypeDefaultUpsertOne) AddTimeoutMinutes(v int) *TaskTypeDefaultUpsertOne {
	return u.Update(func(s *TaskTypeDefaultUpsert) {
		s.AddTimeoutMinutes(v)
	})
}

// UpdateTimeoutMinutes sets the "timeout_minutes" field to the value that was provided on create.
func (u *TaskTypeDefaultUpsertOne) UpdateTimeoutMinutes() *TaskTypeDefaultUpsertOne {
	return u.Update(func(s *TaskTypeDefaultUpsert) {
		s.UpdateTimeoutMinutes()
	})
}

// SetMaxRetries sets the "max_retries" field.
func (u *TaskTypeDefaultUpsertOne) SetMaxRetries(v int) *TaskTypeDefaultUpsertOne {
	return u.Update(func(s *TaskTypeDefaultUpsert) {
		s.SetMaxRetries(v)
	})
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *TaskTypeDefaultUpsertOne) AddMaxRetries(v int) *TaskTypeDefaultUpsertOne {
	return u.Update(func(s *TaskTypeDefaultUpsert) {
		s.AddMaxRetries(v)
	})
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *TaskTypeDefaultUpsertOne) UpdateMaxRetries() *TaskTypeDefaultUpsertOne {
	return u.Update(func(s *TaskTypeDefaultUpsert) {
		s.UpdateMaxRetries()
	})
}

// SetPriority sets the "priority" field.
func (u *TaskTypeDefaultUpsertOne) SetPriority(v int) *TaskTypeDefaultUpsertOne {
	return u.Update(func(s *TaskTypeDefaultUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *TaskTypeDefaultUpsertOne) AddPriority(v int) *TaskTypeDefaultUpsertOne {
	return u.Update(func(s *TaskTypeDefaultUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TaskTypeDefaultUpsertOne) UpdatePriority() *TaskTypeDefaultUpsertOne {
	return u.Update(func(s *TaskTypeDefaultUpsert) {
		s.UpdatePriority()
	})
}

// Exec executes the query.
func (u *TaskTypeDefaultUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskTypeDefaultCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskTypeDefaultUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskTypeDefaultUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskTypeDefaultUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskTypeDefaultCreateBulk is the builder for creating many TaskTypeDefault entities in bulk.
type TaskTypeDefaultCreateBulk struct {
	config
	err      error
	builders []*TaskTypeDefaultCreate
	conflict []sql.ConflictOption
}

// Save creates the TaskTypeDefault entities in the database.
func (_c *TaskTypeDefaultCreateBulk) Save(ctx context.Context) ([]*TaskTypeDefault, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TaskTypeDefault, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskTypeDefaultMutation)
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
func (_c *TaskTypeDefaultCreateBulk) SaveX(ctx context.Context) []*TaskTypeDefault {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskTypeDefaultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskTypeDefaultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TaskTypeDefault.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskTypeDefaultUpsert) {
//			SetTaskType(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskTypeDefaultCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskTypeDefaultUpsertBulk {
	_c.conflict = opts
	return &TaskTypeDefaultUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TaskTypeDefault.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskTypeDefaultCreateBulk) OnConflictColumns(columns ...string) *TaskTypeDefaultUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskTypeDefaultUpsertBulk{
		create: _c,
	}
}

// TaskTypeDefaultUpsertBulk is the builder for "upsert"-ing
// a bulk of TaskTypeDefault nodes.
type TaskTypeDefaultUpsertBulk struct {
	create *TaskTypeDefaultCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TaskTypeDefault.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TaskTypeDefaultUpsertBulk) UpdateNewValues() *TaskTypeDefaultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TaskTypeDefault.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskTypeDefaultUpsertBulk) Ignore() *TaskTypeDefaultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskTypeDefaultUpsertBulk) DoNothing() *TaskTypeDefaultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskTypeDefaultCreateBulk.OnConflict
// documentation for more info.
func (u *TaskTypeDefaultUpsertBulk) Update(set func(*TaskTypeDefaultUpsert)) *TaskTypeDefaultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskTypeDefaultUpsert{UpdateSet: update})
	}))
	return u
}

// SetTaskType sets the "task_type" field.
func (u *TaskTypeDefaultUpsertBulk) SetTaskType(v tasktypedefault.TaskType) *TaskTypeDefaultUpsertBulk {
	return u.Update(func(s *TaskTypeDefaultUpsert) {
		s.SetTaskType(v)
	})
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *TaskTypeDefaultUpsertBulk) UpdateTaskType() *TaskTypeDefaultUpsertBulk {
	return u.Update(func(s *TaskTypeDefaultUpsert) {
		s.UpdateTaskType()
	})
}

// SetTimeoutMinutes sets the "timeout_minutes" field.
func (u *TaskTypeDefaultUpsertBulk) SetTimeoutMinutes(v int) *TaskTypeDefaultUpsertBulk {
	return u.Update(func(s *TaskTypeDefaultUpsert) {
		s.SetTimeoutMinutes(v)
	})
}

// AddTimeoutMinutes adds v to the "timeout_minutes" field.
func (u *TaskTypeDefaultUpsertBulk) AddTimeoutMinutes(v int) *TaskTypeDefaultUpsertBulk {
	return u.Update(func(s *TaskTypeDefaultUpsert) {
		s.AddTimeoutMinutes(v)
	})
}

// UpdateTimeoutMinutes sets the "timeout_minutes" field to the value that was provided on create.
func (u *TaskTypeDefaultUpsertBulk) UpdateTimeoutMinutes() *TaskTypeDefaultUpsertBulk {
	return u.Update(func(s *TaskTypeDefaultUpsert) {
		s.UpdateTimeoutMinutes()
	})
}

// SetMaxRetries sets the "max_retries" field.
func (u *TaskTypeDefaultUpsertBulk) SetMaxRetries(v int) *TaskTypeDefaultUpsertBulk {
	return u.Update(func(s *TaskTypeDefaultUpsert) {
		s.SetMaxRetries(v)
	})
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *TaskTypeDefaultUpsertBulk) AddMaxRetries(v int) *TaskTypeDefaultUpsertBulk {
	return u.Update(func(s *TaskTypeDefaultUpsert) {
		s.AddMaxRetries(v)
	})
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *TaskTypeDefaultUpsertBulk) UpdateMaxRetries() *TaskTypeDefaultUpsertBulk {
	return u.Update(func(s *TaskTypeDefaultUpsert) {
		s.UpdateMaxRetries()
	})
}

// SetPriority sets the "priority" field.
func (u *TaskTypeDefaultUpsertBulk) SetPriority(v int) *TaskTypeDefaultUpsertBulk {
	return u.Update(func(s *TaskTypeDefaultUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *TaskTypeDefaultUpsertBulk) AddPriority(v int) *TaskTypeDefaultUpsertBulk {
	return u.Update(func(s *TaskTypeDefaultUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TaskTypeDefaultUpsertBulk) UpdatePriority() *TaskTypeDefaultUpsertBulk {
	return u.Update(func(s *TaskTypeDefaultUpsert) {
		s.UpdatePriority()
	})
}

// Exec executes the query.
func (u *TaskTypeDefaultUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskTypeDefaultCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskTypeDefaultCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskTypeDefaultUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
