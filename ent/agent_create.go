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
	"github.com/lib/pq"
	"github.com/taskfleet/taskfleet/ent/agent"
)

// AgentCreate is the builder for creating a Agent entity.
type AgentCreate struct {
	config
	mutation *AgentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *AgentCreate) SetName(v string) *AgentCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *AgentCreate) SetRole(v agent.Role) *AgentCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentCreate) SetStatus(v agent.Status) *AgentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentCreate) SetNillableStatus(v *agent.Status) *AgentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCapabilities sets the "capabilities" field.
func (_c *AgentCreate) SetCapabilities(v map[string]interface{}) *AgentCreate {
	_c.mutation.SetCapabilities(v)
	return _c
}

// SetSkills sets the "skills" field.
func (_c *AgentCreate) SetSkills(v pq.StringArray) *AgentCreate {
	_c.mutation.SetSkills(v)
	return _c
}

// SetTotalTasks sets the "total_tasks" field.
func (_c *AgentCreate) SetTotalTasks(v int) *AgentCreate {
	_c.mutation.SetTotalTasks(v)
	return _c
}

// SetNillableTotalTasks sets the "total_tasks" field if the given value is not nil.
func (_c *AgentCreate) SetNillableTotalTasks(v *int) *AgentCreate {
	if v != nil {
		_c.SetTotalTasks(*v)
	}
	return _c
}

// SetCompletedTasks sets the "completed_tasks" field.
func (_c *AgentCreate) SetCompletedTasks(v int) *AgentCreate {
	_c.mutation.SetCompletedTasks(v)
	return _c
}

// SetNillableCompletedTasks sets the "completed_tasks" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCompletedTasks(v *int) *AgentCreate {
	if v != nil {
		_c.SetCompletedTasks(*v)
	}
	return _c
}

// SetFailedTasks sets the "failed_tasks" field.
func (_c *AgentCreate) SetFailedTasks(v int) *AgentCreate {
	_c.mutation.SetFailedTasks(v)
	return _c
}

// SetNillableFailedTasks sets the "failed_tasks" field if the given value is not nil.
func (_c *AgentCreate) SetNillableFailedTasks(v *int) *AgentCreate {
	if v != nil {
		_c.SetFailedTasks(*v)
	}
	return _c
}

// SetSuccessRate sets the "success_rate" field.
func (_c *AgentCreate) SetSuccessRate(v float64) *AgentCreate {
	_c.mutation.SetSuccessRate(v)
	return _c
}

// SetNillableSuccessRate sets the "success_rate" field if the given value is not nil.
func (_c *AgentCreate) SetNillableSuccessRate(v *float64) *AgentCreate {
	if v != nil {
		_c.SetSuccessRate(*v)
	}
	return _c
}

// SetCurrentTaskID sets the "current_task_id" field.
func (_c *AgentCreate) SetCurrentTaskID(v int) *AgentCreate {
	_c.mutation.SetCurrentTaskID(v)
	return _c
}

// SetNillableCurrentTaskID sets the "current_task_id" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCurrentTaskID(v *int) *AgentCreate {
	if v != nil {
		_c.SetCurrentTaskID(*v)
	}
	return _c
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (_c *AgentCreate) SetLastHeartbeat(v time.Time) *AgentCreate {
	_c.mutation.SetLastHeartbeat(v)
	return _c
}

// SetNillableLastHeartbeat sets the "last_heartbeat" field if the given value is not nil.
func (_c *AgentCreate) SetNillableLastHeartbeat(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetLastHeartbeat(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentCreate) SetCreatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCreatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentCreate) SetUpdatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableUpdatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *AgentCreate) SetDeletedAt(v time.Time) *AgentCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableDeletedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// Mutation returns the AgentMutation object of the builder.
func (_c *AgentCreate) Mutation() *AgentMutation {
	return _c.mutation
}

// Save creates the Agent in the database.
func (_c *AgentCreate) Save(ctx context.Context) (*Agent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentCreate) SaveX(ctx context.Context) *Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agent.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Skills(); !ok {
		v := agent.DefaultSkills
		_c.mutation.SetSkills(v)
	}
	if _, ok := _c.mutation.TotalTasks(); !ok {
		v := agent.DefaultTotalTasks
		_c.mutation.SetTotalTasks(v)
	}
	if _, ok := _c.mutation.CompletedTasks(); !ok {
		v := agent.DefaultCompletedTasks
		_c.mutation.SetCompletedTasks(v)
	}
	if _, ok := _c.mutation.FailedTasks(); !ok {
		v := agent.DefaultFailedTasks
		_c.mutation.SetFailedTasks(v)
	}
	if _, ok := _c.mutation.SuccessRate(); !ok {
		v := agent.DefaultSuccessRate
		_c.mutation.SetSuccessRate(v)
	}
	if _, ok := _c.mutation.LastHeartbeat(); !ok {
		v := agent.DefaultLastHeartbeat()
		_c.mutation.SetLastHeartbeat(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Agent.name"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "Agent.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := agent.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Agent.role": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Agent.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agent.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Agent.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Skills(); !ok {
		return &ValidationError{Name: "skills", err: errors.New(`ent: missing required field "Agent.skills"`)}
	}
	if _, ok := _c.mutation.TotalTasks(); !ok {
		return &ValidationError{Name: "total_tasks", err: errors.New(`ent: missing required field "Agent.total_tasks"`)}
	}
	if _, ok := _c.mutation.CompletedTasks(); !ok {
		return &ValidationError{Name: "completed_tasks", err: errors.New(`ent: missing required field "Agent.completed_tasks"`)}
	}
	if _, ok := _c.mutation.FailedTasks(); !ok {
		return &ValidationError{Name: "failed_tasks", err: errors.New(`ent: missing required field "Agent.failed_tasks"`)}
	}
	if _, ok := _c.mutation.SuccessRate(); !ok {
		return &ValidationError{Name: "success_rate", err: errors.New(`ent: missing required field "Agent.success_rate"`)}
	}
	if _, ok := _c.mutation.LastHeartbeat(); !ok {
		return &ValidationError{Name: "last_heartbeat", err: errors.New(`ent: missing required field "Agent.last_heartbeat"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Agent.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Agent.updated_at"`)}
	}
	return nil
}

func (_c *AgentCreate) sqlSave(ctx context.Context) (*Agent, error) {
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

func (_c *AgentCreate) createSpec() (*Agent, *sqlgraph.CreateSpec) {
	var (
		_node = &Agent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agent.Table, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(agent.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(agent.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agent.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Capabilities(); ok {
		_spec.SetField(agent.FieldCapabilities, field.TypeJSON, value)
		_node.Capabilities = value
	}
	if value, ok := _c.mutation.Skills(); ok {
		_spec.SetField(agent.FieldSkills, field.TypeOther, value)
		_node.Skills = value
	}
	if value, ok := _c.mutation.TotalTasks(); ok {
		_spec.SetField(agent.FieldTotalTasks, field.TypeInt, value)
		_node.TotalTasks = value
	}
	if value, ok := _c.mutation.CompletedTasks(); ok {
		_spec.SetField(agent.FieldCompletedTasks, field.TypeInt, value)
		_node.CompletedTasks = value
	}
	if value, ok := _c.mutation.FailedTasks(); ok {
		_spec.SetField(agent.FieldFailedTasks, field.TypeInt, value)
		_node.FailedTasks = value
	}
	if value, ok := _c.mutation.SuccessRate(); ok {
		_spec.SetField(agent.FieldSuccessRate, field.TypeFloat64, value)
		_node.SuccessRate = value
	}
	if value, ok := _c.mutation.CurrentTaskID(); ok {
		_spec.SetField(agent.FieldCurrentTaskID, field.TypeInt, value)
		_node.CurrentTaskID = &value
	}
	if value, ok := _c.mutation.LastHeartbeat(); ok {
		_spec.SetField(agent.FieldLastHeartbeat, field.TypeTime, value)
		_node.LastHeartbeat = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(agent.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Agent.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentCreate) OnConflict(opts ...sql.ConflictOption) *AgentUpsertOne {
	_c.conflict = opts
	return &AgentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentCreate) OnConflictColumns(columns ...string) *AgentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentUpsertOne{
		create: _c,
	}
}

type (
	// AgentUpsertOne is the builder for "upsert"-ing
	//  one Agent node.
	AgentUpsertOne struct {
		create *AgentCreate
	}

	// AgentUpsert is the "OnConflict" setter.
	AgentUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *AgentUpsert) SetName(v string) *AgentUpsert {
	u.Set(agent.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AgentUpsert) UpdateName() *AgentUpsert {
	u.SetExcluded(agent.FieldName)
	return u
}

// SetRole sets the "role" field.
func (u *AgentUpsert) SetRole(v agent.Role) *AgentUpsert {
	u.Set(agent.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *AgentUpsert) UpdateRole() *AgentUpsert {
	u.SetExcluded(agent.FieldRole)
	return u
}

// SetStatus sets the "status" field.
func (u *AgentUpsert) SetStatus(v agent.Status) *AgentUpsert {
	u.Set(agent.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentUpsert) UpdateStatus() *AgentUpsert {
	u.SetExcluded(agent.FieldStatus)
	return u
}

// SetCapabilities sets the "capabilities" field.
func (u *AgentUpsert) SetCapabilities(v map[string]interface{}) *AgentUpsert {
	u.Set(agent.FieldCapabilities, v)
	return u
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *AgentUpsert) UpdateCapabilities() *AgentUpsert {
	u.SetExcluded(agent.FieldCapabilities)
	return u
}

// ClearCapabilities clears the value of the "capabilities" field.
func (u *AgentUpsert) ClearCapabilities() *AgentUpsert {
	u.SetNull(agent.FieldCapabilities)
	return u
}

// SetSkills sets the "skills" field.
func (u *AgentUpsert) SetSkills(v pq.StringArray) *AgentUpsert {
	u.Set(agent.FieldSkills, v)
	return u
}

// UpdateSkills sets the "skills" field to the value that was provided on create.
func (u *AgentUpsert) UpdateSkills() *AgentUpsert {
	u.SetExcluded(agent.FieldSkills)
	return u
}

// SetTotalTasks sets the "total_tasks" field.
func (u *AgentUpsert) SetTotalTasks(v int) *AgentUpsert {
	u.Set(agent.FieldTotalTasks, v)
	return u
}

// UpdateTotalTasks sets the "total_tasks" field to the value that was provided on create.
func (u *AgentUpsert) UpdateTotalTasks() *AgentUpsert {
	u.SetExcluded(agent.FieldTotalTasks)
	return u
}

// AddTotalTasks adds v to the "total_tasks" field.
func (u *AgentUpsert) AddTotalTasks(v int) *AgentUpsert {
	u.Add(agent.FieldTotalTasks, v)
	return u
}

// SetCompletedTasks sets the "completed_tasks" field.
func (u *AgentUpsert) SetCompletedTasks(v int) *AgentUpsert {
	u.Set(agent.FieldCompletedTasks, v)
	return u
}

// UpdateCompletedTasks sets the "completed_tasks" field to the value that was provided on create.
func (u *AgentUpsert) UpdateCompletedTasks() *AgentUpsert {
	u.SetExcluded(agent.FieldCompletedTasks)
	return u
}

// AddCompletedTasks adds v to the "completed_tasks" field.
func (u *AgentUpsert) AddCompletedTasks(v int) *AgentUpsert {
	u.Add(agent.FieldCompletedTasks, v)
	return u
}

// SetFailedTasks sets the "failed_tasks" field.
func (u *AgentUpsert) SetFailedTasks(v int) *AgentUpsert {
	u.Set(agent.FieldFailedTasks, v)
	return u
}

// UpdateFailedTasks sets the "failed_tasks" field to the value that was provided on create.
func (u *AgentUpsert) UpdateFailedTasks() *AgentUpsert {
	u.SetExcluded(agent.FieldFailedTasks)
	return u
}

// AddFailedTasks adds v to the "failed_tasks" field.
func (u *AgentUpsert) AddFailedTasks(v int) *AgentUpsert {
	u.Add(agent.FieldFailedTasks, v)
	return u
}

// SetSuccessRate sets the "success_rate" field.
func (u *AgentUpsert) SetSuccessRate(v float64) *AgentUpsert {
	u.Set(agent.FieldSuccessRate, v)
	return u
}

// UpdateSuccessRate sets the "success_rate" field to the value that was provided on create.
func (u *AgentUpsert) UpdateSuccessRate() *AgentUpsert {
	u.SetExcluded(agent.FieldSuccessRate)
	return u
}

// AddSuccessRate adds v to the "success_rate" field.
func (u *AgentUpsert) AddSuccessRate(v float64) *AgentUpsert {
	u.Add(agent.FieldSuccessRate, v)
	return u
}

// SetCurrentTaskID sets the "current_task_id" field.
func (u *AgentUpsert) SetCurrentTaskID(v int) *AgentUpsert {
	u.Set(agent.FieldCurrentTaskID, v)
	return u
}

// UpdateCurrentTaskID sets the "current_task_id" field to the value that was provided on create.
func (u *AgentUpsert) UpdateCurrentTaskID() *AgentUpsert {
	u.SetExcluded(agent.FieldCurrentTaskID)
	return u
}

// AddCurrentTaskID adds v to the "current_task_id" field.
func (u *AgentUpsert) AddCurrentTaskID(v int) *AgentUpsert {
	u.Add(agent.FieldCurrentTaskID, v)
	return u
}

// ClearCurrentTaskID clears the value of the "current_task_id" field.
func (u *AgentUpsert) ClearCurrentTaskID() *AgentUpsert {
	u.SetNull(agent.FieldCurrentTaskID)
	return u
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (u *AgentUpsert) SetLastHeartbeat(v time.Time) *AgentUpsert {
	u.Set(agent.FieldLastHeartbeat, v)
	return u
}

// UpdateLastHeartbeat sets the "last_heartbeat" field to the value that was provided on create.
func (u *AgentUpsert) UpdateLastHeartbeat() *AgentUpsert {
	u.SetExcluded(agent.FieldLastHeartbeat)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentUpsert) SetUpdatedAt(v time.Time) *AgentUpsert {
	u.Set(agent.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentUpsert) UpdateUpdatedAt() *AgentUpsert {
	u.SetExcluded(agent.FieldUpdatedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *AgentUpsert) SetDeletedAt(v time.Time) *AgentUpsert {
	u.Set(agent.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *AgentUpsert) UpdateDeletedAt() *AgentUpsert {
	u.SetExcluded(agent.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *AgentUpsert) ClearDeletedAt() *AgentUpsert {
	u.SetNull(agent.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AgentUpsertOne) UpdateNewValues() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentUpsertOne) Ignore() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentUpsertOne) DoNothing() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentCreate.OnConflict
// documentation for more info.
func (u *AgentUpsertOne) Update(set func(*AgentUpsert)) *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *AgentUpsertOne) SetName(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateName() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateName()
	})
}

// SetRole sets the "role" field.
func (u *AgentUpsertOne) SetRole(v agent.Role) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateRole() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateRole()
	})
}

// SetStatus sets the "status" field.
func (u *AgentUpsertOne) SetStatus(v agent.Status) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateStatus() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateStatus()
	})
}

// SetCapabilities sets the "capabilities" field.
func (u *AgentUpsertOne) SetCapabilities(v map[string]interface{}) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetCapabilities(v)
	})
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateCapabilities() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCapabilities()
	})
}

// ClearCapabilities clears the value of the "capabilities" field.
func (u *AgentUpsertOne) ClearCapabilities() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearCapabilities()
	})
}

// SetSkills sets the "skills" field.
func (u *AgentUpsertOne) SetSkills(v pq.StringArray) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetSkills(v)
	})
}

// UpdateSkills sets the "skills" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateSkills() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateSkills()
	})
}

// SetTotalTasks sets the "total_tasks" field.
func (u *AgentUpsertOne) SetTotalTasks(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetTotalTasks(v)
	})
}

// AddTotalTasks adds v to the "total_tasks" field.
func (u *AgentUpsertOne) AddTotalTasks(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.AddTotalTasks(v)
	})
}

// UpdateTotalTasks sets the "total_tasks" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateTotalTasks() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateTotalTasks()
	})
}

// SetCompletedTasks sets the "completed_tasks" field.
func (u *AgentUpsertOne) SetCompletedTasks(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetCompletedTasks(v)
	})
}

// AddCompletedTasks adds v to the "completed_tasks" field.
func (u *AgentUpsertOne) AddCompletedTasks(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.AddCompletedTasks(v)
	})
}

// UpdateCompletedTasks sets the "completed_tasks" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateCompletedTasks() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCompletedTasks()
	})
}

// SetFailedTasks sets the "failed_tasks" field.
func (u *AgentUpsertOne) SetFailedTasks(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetFailedTasks(v)
	})
}

// AddFailedTasks adds v to the "failed_tasks" field.
func (u *AgentUpsertOne) AddFailedTasks(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.AddFailedTasks(v)
	})
}

// UpdateFailedTasks sets the "failed_tasks" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateFailedTasks() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateFailedTasks()
	})
}

// SetSuccessRate sets the "success_rate" field.
func (u *AgentUpsertOne) SetSuccessRate(v float64) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetSuccessRate(v)
	})
}

// AddSuccessRate adds v to the "success_rate" field.
func (u *AgentUpsertOne) AddSuccessRate(v float64) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.AddSuccessRate(v)
	})
}

// UpdateSuccessRate sets the "success_rate" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateSuccessRate() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateSuccessRate()
	})
}

// SetCurrentTaskID sets the "current_task_id" field.
func (u *AgentUpsertOne) SetCurrentTaskID(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetCurrentTaskID(v)
	})
}

// AddCurrentTaskID adds v to the "current_task_id" field.
func (u *AgentUpsertOne) AddCurrentTaskID(v int) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.AddCurrentTaskID(v)
	})
}

// UpdateCurrentTaskID sets the "current_task_id" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateCurrentTaskID() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCurrentTaskID()
	})
}

// ClearCurrentTaskID clears the value of the "current_task_id" field.
func (u *AgentUpsertOne) ClearCurrentTaskID() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearCurrentTaskID()
	})
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (u *AgentUpsertOne) SetLastHeartbeat(v time.Time) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetLastHeartbeat(v)
	})
}

// UpdateLastHeartbeat sets the "last_heartbeat" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateLastHeartbeat() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateLastHeartbeat()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentUpsertOne) SetUpdatedAt(v time.Time) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateUpdatedAt() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *AgentUpsertOne) SetDeletedAt(v time.Time) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateDeletedAt() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *AgentUpsertOne) ClearDeletedAt() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *AgentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentCreateBulk is the builder for creating many Agent entities in bulk.
type AgentCreateBulk struct {
	config
	err      error
	builders []*AgentCreate
	conflict []sql.ConflictOption
}

// Save creates the Agent entities in the database.
func (_c *AgentCreateBulk) Save(ctx context.Context) ([]*Agent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Agent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMutation)
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
func (_c *AgentCreateBulk) SaveX(ctx context.Context) []*Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Agent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentUpsertBulk {
	_c.conflict = opts
	return &AgentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentCreateBulk) OnConflictColumns(columns ...string) *AgentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentUpsertBulk{
		create: _c,
	}
}

// AgentUpsertBulk is the builder for "upsert"-ing
// a bulk of Agent nodes.
type AgentUpsertBulk struct {
	create *AgentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AgentUpsertBulk) UpdateNewValues() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentUpsertBulk) Ignore() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentUpsertBulk) DoNothing() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentCreateBulk.OnConflict
// documentation for more info.
func (u *AgentUpsertBulk) Update(set func(*AgentUpsert)) *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *AgentUpsertBulk) SetName(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateName() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateName()
	})
}

// SetRole sets the "role" field.
func (u *AgentUpsertBulk) SetRole(v agent.Role) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateRole() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateRole()
	})
}

// SetStatus sets the "status" field.
func (u *AgentUpsertBulk) SetStatus(v agent.Status) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateStatus() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateStatus()
	})
}

// SetCapabilities sets the "capabilities" field.
func (u *AgentUpsertBulk) SetCapabilities(v map[string]interface{}) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetCapabilities(v)
	})
}

// UpdateCapabilities sets the "capabilities" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateCapabilities() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCapabilities()
	})
}

// ClearCapabilities clears the value of the "capabilities" field.
func (u *AgentUpsertBulk) ClearCapabilities() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearCapabilities()
	})
}

// SetSkills sets the "skills" field.
func (u *AgentUpsertBulk) SetSkills(v pq.StringArray) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetSkills(v)
	})
}

// UpdateSkills sets the "skills" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateSkills() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateSkills()
	})
}

// SetTotalTasks sets the "total_tasks" field.
func (u *AgentUpsertBulk) SetTotalTasks(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetTotalTasks(v)
	})
}

// AddTotalTasks adds v to the "total_tasks" field.
func (u *AgentUpsertBulk) AddTotalTasks(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.AddTotalTasks(v)
	})
}

// UpdateTotalTasks sets the "total_tasks" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateTotalTasks() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateTotalTasks()
	})
}

// SetCompletedTasks sets the "completed_tasks" field.
func (u *AgentUpsertBulk) SetCompletedTasks(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetCompletedTasks(v)
	})
}

// AddCompletedTasks adds v to the "completed_tasks" field.
func (u *AgentUpsertBulk) AddCompletedTasks(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.AddCompletedTasks(v)
	})
}

// UpdateCompletedTasks sets the "completed_tasks" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateCompletedTasks() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCompletedTasks()
	})
}

// SetFailedTasks sets the "failed_tasks" field.
func (u *AgentUpsertBulk) SetFailedTasks(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetFailedTasks(v)
	})
}

// AddFailedTasks adds v to the "failed_tasks" field.
func (u *AgentUpsertBulk) AddFailedTasks(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.AddFailedTasks(v)
	})
}

// UpdateFailedTasks sets the "failed_tasks" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateFailedTasks() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateFailedTasks()
	})
}

// SetSuccessRate sets the "success_rate" field.
func (u *AgentUpsertBulk) SetSuccessRate(v float64) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetSuccessRate(v)
	})
}

// AddSuccessRate adds v to the "success_rate" field.
func (u *AgentUpsertBulk) AddSuccessRate(v float64) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.AddSuccessRate(v)
	})
}

// UpdateSuccessRate sets the "success_rate" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateSuccessRate() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateSuccessRate()
	})
}

// SetCurrentTaskID sets the "current_task_id" field.
func (u *AgentUpsertBulk) SetCurrentTaskID(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetCurrentTaskID(v)
	})
}

// AddCurrentTaskID adds v to the "current_task_id" field.
func (u *AgentUpsertBulk) AddCurrentTaskID(v int) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.AddCurrentTaskID(v)
	})
}

// UpdateCurrentTaskID sets the "current_task_id" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateCurrentTaskID() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateCurrentTaskID()
	})
}

// ClearCurrentTaskID clears the value of the "current_task_id" field.
func (u *AgentUpsertBulk) ClearCurrentTaskID() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearCurrentTaskID()
	})
}

// SetLastHeartbeat sets the "last_heartbeat" field.
func (u *AgentUpsertBulk) SetLastHeartbeat(v time.Time) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetLastHeartbeat(v)
	})
}

// UpdateLastHeartbeat sets the "last_heartbeat" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateLastHeartbeat() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateLastHeartbeat()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AgentUpsertBulk) SetUpdatedAt(v time.Time) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateUpdatedAt() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *AgentUpsertBulk) SetDeletedAt(v time.Time) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateDeletedAt() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *AgentUpsertBulk) ClearDeletedAt() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *AgentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
