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
	"github.com/taskfleet/taskfleet/ent/project"
	"github.com/taskfleet/taskfleet/ent/task"
	"github.com/taskfleet/taskfleet/ent/tasklog"
)

// TaskCreate is the builder for creating a Task entity.
type TaskCreate struct {
	config
	mutation *TaskMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetProjectID sets the "project_id" field.
func (_c *TaskCreate) SetProjectID(v int) *TaskCreate {
	_c.mutation.SetProjectID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *TaskCreate) SetTitle(v string) *TaskCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *TaskCreate) SetDescription(v string) *TaskCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDescription(v *string) *TaskCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetTaskType sets the "task_type" field.
func (_c *TaskCreate) SetTaskType(v task.TaskType) *TaskCreate {
	_c.mutation.SetTaskType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TaskCreate) SetStatus(v task.Status) *TaskCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStatus(v *task.Status) *TaskCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *TaskCreate) SetPriority(v int) *TaskCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_c *TaskCreate) SetNillablePriority(v *int) *TaskCreate {
	if v != nil {
		_c.SetPriority(*v)
	}
	return _c
}

// SetAssignee sets the "assignee" field.
func (_c *TaskCreate) SetAssignee(v string) *TaskCreate {
	_c.mutation.SetAssignee(v)
	return _c
}

// SetNillableAssignee sets the "assignee" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAssignee(v *string) *TaskCreate {
	if v != nil {
		_c.SetAssignee(*v)
	}
	return _c
}

// SetReviewerID sets the "reviewer_id" field.
func (_c *TaskCreate) SetReviewerID(v string) *TaskCreate {
	_c.mutation.SetReviewerID(v)
	return _c
}

// SetNillableReviewerID sets the "reviewer_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableReviewerID(v *string) *TaskCreate {
	if v != nil {
		_c.SetReviewerID(*v)
	}
	return _c
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (_c *TaskCreate) SetAcceptanceCriteria(v string) *TaskCreate {
	_c.mutation.SetAcceptanceCriteria(v)
	return _c
}

// SetNillableAcceptanceCriteria sets the "acceptance_criteria" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAcceptanceCriteria(v *string) *TaskCreate {
	if v != nil {
		_c.SetAcceptanceCriteria(*v)
	}
	return _c
}

// SetParentTaskID sets the "parent_task_id" field.
func (_c *TaskCreate) SetParentTaskID(v int) *TaskCreate {
	_c.mutation.SetParentTaskID(v)
	return _c
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_c *TaskCreate) SetNillableParentTaskID(v *int) *TaskCreate {
	if v != nil {
		_c.SetParentTaskID(*v)
	}
	return _c
}

// SetDependencies sets the "dependencies" field.
func (_c *TaskCreate) SetDependencies(v pq.Int64Array) *TaskCreate {
	_c.mutation.SetDependencies(v)
	return _c
}

// SetTaskTags sets the "task_tags" field.
func (_c *TaskCreate) SetTaskTags(v pq.StringArray) *TaskCreate {
	_c.mutation.SetTaskTags(v)
	return _c
}

// SetEstimatedHours sets the "estimated_hours" field.
func (_c *TaskCreate) SetEstimatedHours(v float64) *TaskCreate {
	_c.mutation.SetEstimatedHours(v)
	return _c
}

// SetNillableEstimatedHours sets the "estimated_hours" field if the given value is not nil.
func (_c *TaskCreate) SetNillableEstimatedHours(v *float64) *TaskCreate {
	if v != nil {
		_c.SetEstimatedHours(*v)
	}
	return _c
}

// SetTimeoutMinutes sets the "timeout_minutes" field.
func (_c *TaskCreate) SetTimeoutMinutes(v int) *TaskCreate {
	_c.mutation.SetTimeoutMinutes(v)
	return _c
}

// SetNillableTimeoutMinutes sets the "timeout_minutes" field if the given value is not nil.
func (_c *TaskCreate) SetNillableTimeoutMinutes(v *int) *TaskCreate {
	if v != nil {
		_c.SetTimeoutMinutes(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *TaskCreate) SetRetryCount(v int) *TaskCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *TaskCreate) SetNillableRetryCount(v *int) *TaskCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetMaxRetries sets the "max_retries" field.
func (_c *TaskCreate) SetMaxRetries(v int) *TaskCreate {
	_c.mutation.SetMaxRetries(v)
	return _c
}

// SetNillableMaxRetries sets the "max_retries" field if the given value is not nil.
func (_c *TaskCreate) SetNillableMaxRetries(v *int) *TaskCreate {
	if v != nil {
		_c.SetMaxRetries(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *TaskCreate) SetResult(v map[string]interface{}) *TaskCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *TaskCreate) SetFeedback(v string) *TaskCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_c *TaskCreate) SetNillableFeedback(v *string) *TaskCreate {
	if v != nil {
		_c.SetFeedback(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *TaskCreate) SetCreatedBy(v string) *TaskCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedBy(v *string) *TaskCreate {
	if v != nil {
		_c.SetCreatedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TaskCreate) SetCreatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCreatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TaskCreate) SetUpdatedAt(v time.Time) *TaskCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableUpdatedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetAssignedAt sets the "assigned_at" field.
func (_c *TaskCreate) SetAssignedAt(v time.Time) *TaskCreate {
	_c.mutation.SetAssignedAt(v)
	return _c
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableAssignedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetAssignedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *TaskCreate) SetStartedAt(v time.Time) *TaskCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableStartedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *TaskCreate) SetCompletedAt(v time.Time) *TaskCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableCompletedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDueAt sets the "due_at" field.
func (_c *TaskCreate) SetDueAt(v time.Time) *TaskCreate {
	_c.mutation.SetDueAt(v)
	return _c
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDueAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetDueAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *TaskCreate) SetDeletedAt(v time.Time) *TaskCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *TaskCreate) SetNillableDeletedAt(v *time.Time) *TaskCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *TaskCreate) SetProject(v *Project) *TaskCreate {
	return _c.SetProjectID(v.ID)
}

// AddLogIDs adds the "logs" edge to the TaskLog entity by IDs.
func (_c *TaskCreate) AddLogIDs(ids ...int) *TaskCreate {
	_c.mutation.AddLogIDs(ids...)
	return _c
}

// AddLogs adds the "logs" edges to the TaskLog entity.
func (_c *TaskCreate) AddLogs(v ...*TaskLog) *TaskCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddLogIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_c *TaskCreate) Mutation() *TaskMutation {
	return _c.mutation
}

// Save creates the Task in the database.
func (_c *TaskCreate) Save(ctx context.Context) (*Task, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TaskCreate) SaveX(ctx context.Context) *Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TaskCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := task.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Priority(); !ok {
		v := task.DefaultPriority
		_c.mutation.SetPriority(v)
	}
	if _, ok := _c.mutation.Dependencies(); !ok {
		v := task.DefaultDependencies
		_c.mutation.SetDependencies(v)
	}
	if _, ok := _c.mutation.TaskTags(); !ok {
		v := task.DefaultTaskTags
		_c.mutation.SetTaskTags(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := task.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		v := task.DefaultMaxRetries
		_c.mutation.SetMaxRetries(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := task.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := task.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TaskCreate) check() error {
	if _, ok := _c.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`ent: missing required field "Task.project_id"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Task.title"`)}
	}
	if _, ok := _c.mutation.TaskType(); !ok {
		return &ValidationError{Name: "task_type", err: errors.New(`ent: missing required field "Task.task_type"`)}
	}
	if v, ok := _c.mutation.TaskType(); ok {
		if err := task.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "Task.task_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Task.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Task.priority"`)}
	}
	if v, ok := _c.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Dependencies(); !ok {
		return &ValidationError{Name: "dependencies", err: errors.New(`ent: missing required field "Task.dependencies"`)}
	}
	if _, ok := _c.mutation.TaskTags(); !ok {
		return &ValidationError{Name: "task_tags", err: errors.New(`ent: missing required field "Task.task_tags"`)}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Task.retry_count"`)}
	}
	if _, ok := _c.mutation.MaxRetries(); !ok {
		return &ValidationError{Name: "max_retries", err: errors.New(`ent: missing required field "Task.max_retries"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Task.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Task.updated_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "Task.project"`)}
	}
	return nil
}

func (_c *TaskCreate) sqlSave(ctx context.Context) (*Task, error) {
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

func (_c *TaskCreate) createSpec() (*Task, *sqlgraph.CreateSpec) {
	var (
		_node = &Task{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(task.Table, sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.TaskType(); ok {
		_spec.SetField(task.FieldTaskType, field.TypeEnum, value)
		_node.TaskType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Assignee(); ok {
		_spec.SetField(task.FieldAssignee, field.TypeString, value)
		_node.Assignee = &value
	}
	if value, ok := _c.mutation.ReviewerID(); ok {
		_spec.SetField(task.FieldReviewerID, field.TypeString, value)
		_node.ReviewerID = value
	}
	if value, ok := _c.mutation.AcceptanceCriteria(); ok {
		_spec.SetField(task.FieldAcceptanceCriteria, field.TypeString, value)
		_node.AcceptanceCriteria = &value
	}
	if value, ok := _c.mutation.ParentTaskID(); ok {
		_spec.SetField(task.FieldParentTaskID, field.TypeInt, value)
		_node.ParentTaskID = &value
	}
	if value, ok := _c.mutation.Dependencies(); ok {
		_spec.SetField(task.FieldDependencies, field.TypeOther, value)
		_node.Dependencies = value
	}
	if value, ok := _c.mutation.TaskTags(); ok {
		_spec.SetField(task.FieldTaskTags, field.TypeOther, value)
		_node.TaskTags = value
	}
	if value, ok := _c.mutation.EstimatedHours(); ok {
		_spec.SetField(task.FieldEstimatedHours, field.TypeFloat64, value)
		_node.EstimatedHours = &value
	}
	if value, ok := _c.mutation.TimeoutMinutes(); ok {
		_spec.SetField(task.FieldTimeoutMinutes, field.TypeInt, value)
		_node.TimeoutMinutes = &value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(task.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.MaxRetries(); ok {
		_spec.SetField(task.FieldMaxRetries, field.TypeInt, value)
		_node.MaxRetries = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(task.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(task.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(task.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(task.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.AssignedAt(); ok {
		_spec.SetField(task.FieldAssignedAt, field.TypeTime, value)
		_node.AssignedAt = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(task.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DueAt(); ok {
		_spec.SetField(task.FieldDueAt, field.TypeTime, value)
		_node.DueAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(task.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.ProjectTable,
			Columns: []string{task.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.LogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.LogsTable,
			Columns: []string{task.LogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(tasklog.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.Create().
//		SetProjectID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreate) OnConflict(opts ...sql.ConflictOption) *TaskUpsertOne {
	_c.conflict = opts
	return &TaskUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreate) OnConflictColumns(columns ...string) *TaskUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertOne{
		create: _c,
	}
}

type (
	// TaskUpsertOne is the builder for "upsert"-ing
	//  one Task node.
	TaskUpsertOne struct {
		create *TaskCreate
	}

	// TaskUpsert is the "OnConflict" setter.
	TaskUpsert struct {
		*sql.UpdateSet
	}
)

// SetTitle sets the "title" field.
func (u *TaskUpsert) SetTitle(v string) *TaskUpsert {
	u.Set(task.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTitle() *TaskUpsert {
	u.SetExcluded(task.FieldTitle)
	return u
}

// SetDescription sets the "description" field.
func (u *TaskUpsert) SetDescription(v string) *TaskUpsert {
	u.Set(task.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsert) UpdateDescription() *TaskUpsert {
	u.SetExcluded(task.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *TaskUpsert) ClearDescription() *TaskUpsert {
	u.SetNull(task.FieldDescription)
	return u
}

// SetTaskType sets the "task_type" field.
func (u *TaskUpsert) SetTaskType(v task.TaskType) *TaskUpsert {
	u.Set(task.FieldTaskType, v)
	return u
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTaskType() *TaskUpsert {
	u.SetExcluded(task.FieldTaskType)
	return u
}

// SetStatus sets the "status" field.
func (u *TaskUpsert) SetStatus(v task.Status) *TaskUpsert {
	u.Set(task.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStatus() *TaskUpsert {
	u.SetExcluded(task.FieldStatus)
	return u
}

// SetPriority sets the "priority" field.
func (u *TaskUpsert) SetPriority(v int) *TaskUpsert {
	u.Set(task.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TaskUpsert) UpdatePriority() *TaskUpsert {
	u.SetExcluded(task.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *TaskUpsert) AddPriority(v int) *TaskUpsert {
	u.Add(task.FieldPriority, v)
	return u
}

// SetAssignee sets the "assignee" field.
func (u *TaskUpsert) SetAssignee(v string) *TaskUpsert {
	u.Set(task.FieldAssignee, v)
	return u
}

// UpdateAssignee sets the "assignee" field to the value that was provided on create.
func (u *TaskUpsert) UpdateAssignee() *TaskUpsert {
	u.SetExcluded(task.FieldAssignee)
	return u
}

// ClearAssignee clears the value of the "assignee" field.
func (u *TaskUpsert) ClearAssignee() *TaskUpsert {
	u.SetNull(task.FieldAssignee)
	return u
}

// SetReviewerID sets the "reviewer_id" field.
func (u *TaskUpsert) SetReviewerID(v string) *TaskUpsert {
	u.Set(task.FieldReviewerID, v)
	return u
}

// UpdateReviewerID sets the "reviewer_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateReviewerID() *TaskUpsert {
	u.SetExcluded(task.FieldReviewerID)
	return u
}

// ClearReviewerID clears the value of the "reviewer_id" field.
func (u *TaskUpsert) ClearReviewerID() *TaskUpsert {
	u.SetNull(task.FieldReviewerID)
	return u
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (u *TaskUpsert) SetAcceptanceCriteria(v string) *TaskUpsert {
	u.Set(task.FieldAcceptanceCriteria, v)
	return u
}

// UpdateAcceptanceCriteria sets the "acceptance_criteria" field to the value that was provided on create.
func (u *TaskUpsert) UpdateAcceptanceCriteria() *TaskUpsert {
	u.SetExcluded(task.FieldAcceptanceCriteria)
	return u
}

// ClearAcceptanceCriteria clears the value of the "acceptance_criteria" field.
func (u *TaskUpsert) ClearAcceptanceCriteria() *TaskUpsert {
	u.SetNull(task.FieldAcceptanceCriteria)
	return u
}

// SetParentTaskID sets the "parent_task_id" field.
func (u *TaskUpsert) SetParentTaskID(v int) *TaskUpsert {
	u.Set(task.FieldParentTaskID, v)
	return u
}

// UpdateParentTaskID sets the "parent_task_id" field to the value that was provided on create.
func (u *TaskUpsert) UpdateParentTaskID() *TaskUpsert {
	u.SetExcluded(task.FieldParentTaskID)
	return u
}

// AddParentTaskID adds v to the "parent_task_id" field.
func (u *TaskUpsert) AddParentTaskID(v int) *TaskUpsert {
	u.Add(task.FieldParentTaskID, v)
	return u
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (u *TaskUpsert) ClearParentTaskID() *TaskUpsert {
	u.SetNull(task.FieldParentTaskID)
	return u
}

// SetDependencies sets the "dependencies" field.
func (u *TaskUpsert) SetDependencies(v pq.Int64Array) *TaskUpsert {
	u.Set(task.FieldDependencies, v)
	return u
}

// UpdateDependencies sets the "dependencies" field to the value that was provided on create.
func (u *TaskUpsert) UpdateDependencies() *TaskUpsert {
	u.SetExcluded(task.FieldDependencies)
	return u
}

// SetTaskTags sets the "task_tags" field.
func (u *TaskUpsert) SetTaskTags(v pq.StringArray) *TaskUpsert {
	u.Set(task.FieldTaskTags, v)
	return u
}

// UpdateTaskTags sets the "task_tags" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTaskTags() *TaskUpsert {
	u.SetExcluded(task.FieldTaskTags)
	return u
}

// SetEstimatedHours sets the "estimated_hours" field.
func (u *TaskUpsert) SetEstimatedHours(v float64) *TaskUpsert {
	u.Set(task.FieldEstimatedHours, v)
	return u
}

// UpdateEstimatedHours sets the "estimated_hours" field to the value that was provided on create.
func (u *TaskUpsert) UpdateEstimatedHours() *TaskUpsert {
	u.SetExcluded(task.FieldEstimatedHours)
	return u
}

// AddEstimatedHours adds v to the "estimated_hours" field.
func (u *TaskUpsert) AddEstimatedHours(v float64) *TaskUpsert {
	u.Add(task.FieldEstimatedHours, v)
	return u
}

// ClearEstimatedHours clears the value of the "estimated_hours" field.
func (u *TaskUpsert) ClearEstimatedHours() *TaskUpsert {
	u.SetNull(task.FieldEstimatedHours)
	return u
}

// SetTimeoutMinutes sets the "timeout_minutes" field.
func (u *TaskUpsert) SetTimeoutMinutes(v int) *TaskUpsert {
	u.Set(task.FieldTimeoutMinutes, v)
	return u
}

// UpdateTimeoutMinutes sets the "timeout_minutes" field to the value that was provided on create.
func (u *TaskUpsert) UpdateTimeoutMinutes() *TaskUpsert {
	u.SetExcluded(task.FieldTimeoutMinutes)
	return u
}

// AddTimeoutMinutes adds v to the "timeout_minutes" field.
func (u *TaskUpsert) AddTimeoutMinutes(v int) *TaskUpsert {
	u.Add(task.FieldTimeoutMinutes, v)
	return u
}

// ClearTimeoutMinutes clears the value of the "timeout_minutes" field.
func (u *TaskUpsert) ClearTimeoutMinutes() *TaskUpsert {
	u.SetNull(task.FieldTimeoutMinutes)
	return u
}

// SetRetryCount sets the "retry_count" field.
func (u *TaskUpsert) SetRetryCount(v int) *TaskUpsert {
	u.Set(task.FieldRetryCount, v)
	return u
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *TaskUpsert) UpdateRetryCount() *TaskUpsert {
	u.SetExcluded(task.FieldRetryCount)
	return u
}

// AddRetryCount adds v to the "retry_count" field.
func (u *TaskUpsert) AddRetryCount(v int) *TaskUpsert {
	u.Add(task.FieldRetryCount, v)
	return u
}

// SetMaxRetries sets the "max_retries" field.
func (u *TaskUpsert) SetMaxRetries(v int) *TaskUpsert {
	u.Set(task.FieldMaxRetries, v)
	return u
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *TaskUpsert) UpdateMaxRetries() *TaskUpsert {
	u.SetExcluded(task.FieldMaxRetries)
	return u
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *TaskUpsert) AddMaxRetries(v int) *TaskUpsert {
	u.Add(task.FieldMaxRetries, v)
	return u
}

// SetResult sets the "result" field.
func (u *TaskUpsert) SetResult(v map[string]interface{}) *TaskUpsert {
	u.Set(task.FieldResult, v)
	return u
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *TaskUpsert) UpdateResult() *TaskUpsert {
	u.SetExcluded(task.FieldResult)
	return u
}

// ClearResult clears the value of the "result" field.
func (u *TaskUpsert) ClearResult() *TaskUpsert {
	u.SetNull(task.FieldResult)
	return u
}

// SetFeedback sets the "feedback" field.
func (u *TaskUpsert) SetFeedback(v string) *TaskUpsert {
	u.Set(task.FieldFeedback, v)
	return u
}

// UpdateFeedback sets the "feedback" field to the value that was provided on create.
func (u *TaskUpsert) UpdateFeedback() *TaskUpsert {
	u.SetExcluded(task.FieldFeedback)
	return u
}

// ClearFeedback clears the value of the "feedback" field.
func (u *TaskUpsert) ClearFeedback() *TaskUpsert {
	u.SetNull(task.FieldFeedback)
	return u
}

// SetCreatedBy sets the "created_by" field.
func (u *TaskUpsert) SetCreatedBy(v string) *TaskUpsert {
	u.Set(task.FieldCreatedBy, v)
	return u
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCreatedBy() *TaskUpsert {
	u.SetExcluded(task.FieldCreatedBy)
	return u
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *TaskUpsert) ClearCreatedBy() *TaskUpsert {
	u.SetNull(task.FieldCreatedBy)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsert) SetUpdatedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateUpdatedAt() *TaskUpsert {
	u.SetExcluded(task.FieldUpdatedAt)
	return u
}

// SetAssignedAt sets the "assigned_at" field.
func (u *TaskUpsert) SetAssignedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldAssignedAt, v)
	return u
}

// UpdateAssignedAt sets the "assigned_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateAssignedAt() *TaskUpsert {
	u.SetExcluded(task.FieldAssignedAt)
	return u
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (u *TaskUpsert) ClearAssignedAt() *TaskUpsert {
	u.SetNull(task.FieldAssignedAt)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *TaskUpsert) SetStartedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateStartedAt() *TaskUpsert {
	u.SetExcluded(task.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *TaskUpsert) ClearStartedAt() *TaskUpsert {
	u.SetNull(task.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsert) SetCompletedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateCompletedAt() *TaskUpsert {
	u.SetExcluded(task.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsert) ClearCompletedAt() *TaskUpsert {
	u.SetNull(task.FieldCompletedAt)
	return u
}

// SetDueAt sets the "due_at" field.
func (u *TaskUpsert) SetDueAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldDueAt, v)
	return u
}

// UpdateDueAt sets the "due_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateDueAt() *TaskUpsert {
	u.SetExcluded(task.FieldDueAt)
	return u
}

// ClearDueAt clears the value of the "due_at" field.
func (u *TaskUpsert) ClearDueAt() *TaskUpsert {
	u.SetNull(task.FieldDueAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *TaskUpsert) SetDeletedAt(v time.Time) *TaskUpsert {
	u.Set(task.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *TaskUpsert) UpdateDeletedAt() *TaskUpsert {
	u.SetExcluded(task.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *TaskUpsert) ClearDeletedAt() *TaskUpsert {
	u.SetNull(task.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TaskUpsertOne) UpdateNewValues() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ProjectID(); exists {
			s.SetIgnore(task.FieldProjectID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(task.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TaskUpsertOne) Ignore() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertOne) DoNothing() *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreate.OnConflict
// documentation for more info.
func (u *TaskUpsertOne) Update(set func(*TaskUpsert)) *TaskUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *TaskUpsertOne) SetTitle(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTitle() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *TaskUpsertOne) SetDescription(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateDescription() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *TaskUpsertOne) ClearDescription() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDescription()
	})
}

// SetTaskType sets the "task_type" field.
func (u *TaskUpsertOne) SetTaskType(v task.TaskType) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTaskType(v)
	})
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTaskType() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTaskType()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertOne) SetStatus(v task.Status) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStatus() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetPriority sets the "priority" field.
func (u *TaskUpsertOne) SetPriority(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *TaskUpsertOne) AddPriority(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdatePriority() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePriority()
	})
}

// SetAssignee sets the "assignee" field.
func (u *TaskUpsertOne) SetAssignee(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetAssignee(v)
	})
}

// UpdateAssignee sets the "assignee" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateAssignee() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAssignee()
	})
}

// ClearAssignee clears the value of the "assignee" field.
func (u *TaskUpsertOne) ClearAssignee() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearAssignee()
	})
}

// SetReviewerID sets the "reviewer_id" field.
func (u *TaskUpsertOne) SetReviewerID(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetReviewerID(v)
	})
}

// UpdateReviewerID sets the "reviewer_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateReviewerID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateReviewerID()
	})
}

// ClearReviewerID clears the value of the "reviewer_id" field.
func (u *TaskUpsertOne) ClearReviewerID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearReviewerID()
	})
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (u *TaskUpsertOne) SetAcceptanceCriteria(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetAcceptanceCriteria(v)
	})
}

// UpdateAcceptanceCriteria sets the "acceptance_criteria" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateAcceptanceCriteria() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAcceptanceCriteria()
	})
}

// ClearAcceptanceCriteria clears the value of the "acceptance_criteria" field.
func (u *TaskUpsertOne) ClearAcceptanceCriteria() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearAcceptanceCriteria()
	})
}

// SetParentTaskID sets the "parent_task_id" field.
func (u *TaskUpsertOne) SetParentTaskID(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetParentTaskID(v)
	})
}

// AddParentTaskID adds v to the "parent_task_id" field.
func (u *TaskUpsertOne) AddParentTaskID(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddParentTaskID(v)
	})
}

// UpdateParentTaskID sets the "parent_task_id" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateParentTaskID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateParentTaskID()
	})
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (u *TaskUpsertOne) ClearParentTaskID() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearParentTaskID()
	})
}

// SetDependencies sets the "dependencies" field.
func (u *TaskUpsertOne) SetDependencies(v pq.Int64Array) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetDependencies(v)
	})
}

// UpdateDependencies sets the "dependencies" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateDependencies() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDependencies()
	})
}

// SetTaskTags sets the "task_tags" field.
func (u *TaskUpsertOne) SetTaskTags(v pq.StringArray) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTaskTags(v)
	})
}

// UpdateTaskTags sets the "task_tags" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTaskTags() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTaskTags()
	})
}

// SetEstimatedHours sets the "estimated_hours" field.
func (u *TaskUpsertOne) SetEstimatedHours(v float64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetEstimatedHours(v)
	})
}

// AddEstimatedHours adds v to the "estimated_hours" field.
func (u *TaskUpsertOne) AddEstimatedHours(v float64) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddEstimatedHours(v)
	})
}

// UpdateEstimatedHours sets the "estimated_hours" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateEstimatedHours() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateEstimatedHours()
	})
}

// ClearEstimatedHours clears the value of the "estimated_hours" field.
func (u *TaskUpsertOne) ClearEstimatedHours() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearEstimatedHours()
	})
}

// SetTimeoutMinutes sets the "timeout_minutes" field.
func (u *TaskUpsertOne) SetTimeoutMinutes(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetTimeoutMinutes(v)
	})
}

// AddTimeoutMinutes adds v to the "timeout_minutes" field.
func (u *TaskUpsertOne) AddTimeoutMinutes(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddTimeoutMinutes(v)
	})
}

// UpdateTimeoutMinutes sets the "timeout_minutes" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateTimeoutMinutes() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTimeoutMinutes()
	})
}

// ClearTimeoutMinutes clears the value of the "timeout_minutes" field.
func (u *TaskUpsertOne) ClearTimeoutMinutes() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearTimeoutMinutes()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *TaskUpsertOne) SetRetryCount(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *TaskUpsertOne) AddRetryCount(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateRetryCount() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRetryCount()
	})
}

// SetMaxRetries sets the "max_retries" field.
func (u *TaskUpsertOne) SetMaxRetries(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetMaxRetries(v)
	})
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *TaskUpsertOne) AddMaxRetries(v int) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.AddMaxRetries(v)
	})
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateMaxRetries() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateMaxRetries()
	})
}

// SetResult sets the "result" field.
func (u *TaskUpsertOne) SetResult(v map[string]interface{}) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateResult() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *TaskUpsertOne) ClearResult() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearResult()
	})
}

// SetFeedback sets the "feedback" field.
func (u *TaskUpsertOne) SetFeedback(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetFeedback(v)
	})
}

// UpdateFeedback sets the "feedback" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateFeedback() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateFeedback()
	})
}

// ClearFeedback clears the value of the "feedback" field.
func (u *TaskUpsertOne) ClearFeedback() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearFeedback()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *TaskUpsertOne) SetCreatedBy(v string) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCreatedBy() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *TaskUpsertOne) ClearCreatedBy() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertOne) SetUpdatedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateUpdatedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAssignedAt sets the "assigned_at" field.
func (u *TaskUpsertOne) SetAssignedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetAssignedAt(v)
	})
}

// UpdateAssignedAt sets the "assigned_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateAssignedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAssignedAt()
	})
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (u *TaskUpsertOne) ClearAssignedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearAssignedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *TaskUpsertOne) SetStartedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateStartedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *TaskUpsertOne) ClearStartedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsertOne) SetCompletedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateCompletedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsertOne) ClearCompletedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDueAt sets the "due_at" field.
func (u *TaskUpsertOne) SetDueAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetDueAt(v)
	})
}

// UpdateDueAt sets the "due_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateDueAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDueAt()
	})
}

// ClearDueAt clears the value of the "due_at" field.
func (u *TaskUpsertOne) ClearDueAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDueAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *TaskUpsertOne) SetDeletedAt(v time.Time) *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *TaskUpsertOne) UpdateDeletedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *TaskUpsertOne) ClearDeletedAt() *TaskUpsertOne {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TaskUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TaskUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TaskCreateBulk is the builder for creating many Task entities in bulk.
type TaskCreateBulk struct {
	config
	err      error
	builders []*TaskCreate
	conflict []sql.ConflictOption
}

// Save creates the Task entities in the database.
func (_c *TaskCreateBulk) Save(ctx context.Context) ([]*Task, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Task, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TaskMutation)
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
func (_c *TaskCreateBulk) SaveX(ctx context.Context) []*Task {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TaskCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TaskCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Task.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TaskUpsert) {
//			SetProjectID(v+v).
//		}).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflict(opts ...sql.ConflictOption) *TaskUpsertBulk {
	_c.conflict = opts
	return &TaskUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TaskCreateBulk) OnConflictColumns(columns ...string) *TaskUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TaskUpsertBulk{
		create: _c,
	}
}

// TaskUpsertBulk is the builder for "upsert"-ing
// a bulk of Task nodes.
type TaskUpsertBulk struct {
	create *TaskCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *TaskUpsertBulk) UpdateNewValues() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ProjectID(); exists {
				s.SetIgnore(task.FieldProjectID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(task.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Task.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TaskUpsertBulk) Ignore() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TaskUpsertBulk) DoNothing() *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TaskCreateBulk.OnConflict
// documentation for more info.
func (u *TaskUpsertBulk) Update(set func(*TaskUpsert)) *TaskUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TaskUpsert{UpdateSet: update})
	}))
	return u
}

// SetTitle sets the "title" field.
func (u *TaskUpsertBulk) SetTitle(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTitle() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTitle()
	})
}

// SetDescription sets the "description" field.
func (u *TaskUpsertBulk) SetDescription(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateDescription() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *TaskUpsertBulk) ClearDescription() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDescription()
	})
}

// SetTaskType sets the "task_type" field.
func (u *TaskUpsertBulk) SetTaskType(v task.TaskType) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTaskType(v)
	})
}

// UpdateTaskType sets the "task_type" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTaskType() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTaskType()
	})
}

// SetStatus sets the "status" field.
func (u *TaskUpsertBulk) SetStatus(v task.Status) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStatus() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStatus()
	})
}

// SetPriority sets the "priority" field.
func (u *TaskUpsertBulk) SetPriority(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *TaskUpsertBulk) AddPriority(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdatePriority() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdatePriority()
	})
}

// SetAssignee sets the "assignee" field.
func (u *TaskUpsertBulk) SetAssignee(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetAssignee(v)
	})
}

// UpdateAssignee sets the "assignee" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateAssignee() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAssignee()
	})
}

// ClearAssignee clears the value of the "assignee" field.
func (u *TaskUpsertBulk) ClearAssignee() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearAssignee()
	})
}

// SetReviewerID sets the "reviewer_id" field.
func (u *TaskUpsertBulk) SetReviewerID(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetReviewerID(v)
	})
}

// UpdateReviewerID sets the "reviewer_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateReviewerID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateReviewerID()
	})
}

// ClearReviewerID clears the value of the "reviewer_id" field.
func (u *TaskUpsertBulk) ClearReviewerID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearReviewerID()
	})
}

// SetAcceptanceCriteria sets the "acceptance_criteria" field.
func (u *TaskUpsertBulk) SetAcceptanceCriteria(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetAcceptanceCriteria(v)
	})
}

// UpdateAcceptanceCriteria sets the "acceptance_criteria" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateAcceptanceCriteria() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAcceptanceCriteria()
	})
}

// ClearAcceptanceCriteria clears the value of the "acceptance_criteria" field.
func (u *TaskUpsertBulk) ClearAcceptanceCriteria() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearAcceptanceCriteria()
	})
}

// SetParentTaskID sets the "parent_task_id" field.
func (u *TaskUpsertBulk) SetParentTaskID(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetParentTaskID(v)
	})
}

// AddParentTaskID adds v to the "parent_task_id" field.
func (u *TaskUpsertBulk) AddParentTaskID(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddParentTaskID(v)
	})
}

// UpdateParentTaskID sets the "parent_task_id" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateParentTaskID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateParentTaskID()
	})
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (u *TaskUpsertBulk) ClearParentTaskID() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearParentTaskID()
	})
}

// SetDependencies sets the "dependencies" field.
func (u *TaskUpsertBulk) SetDependencies(v pq.Int64Array) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetDependencies(v)
	})
}

// UpdateDependencies sets the "dependencies" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateDependencies() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDependencies()
	})
}

// SetTaskTags sets the "task_tags" field.
func (u *TaskUpsertBulk) SetTaskTags(v pq.StringArray) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTaskTags(v)
	})
}

// UpdateTaskTags sets the "task_tags" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTaskTags() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTaskTags()
	})
}

// SetEstimatedHours sets the "estimated_hours" field.
func (u *TaskUpsertBulk) SetEstimatedHours(v float64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetEstimatedHours(v)
	})
}

// AddEstimatedHours adds v to the "estimated_hours" field.
func (u *TaskUpsertBulk) AddEstimatedHours(v float64) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddEstimatedHours(v)
	})
}

// UpdateEstimatedHours sets the "estimated_hours" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateEstimatedHours() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateEstimatedHours()
	})
}

// ClearEstimatedHours clears the value of the "estimated_hours" field.
func (u *TaskUpsertBulk) ClearEstimatedHours() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearEstimatedHours()
	})
}

// SetTimeoutMinutes sets the "timeout_minutes" field.
func (u *TaskUpsertBulk) SetTimeoutMinutes(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetTimeoutMinutes(v)
	})
}

// AddTimeoutMinutes adds v to the "timeout_minutes" field.
func (u *TaskUpsertBulk) AddTimeoutMinutes(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddTimeoutMinutes(v)
	})
}

// UpdateTimeoutMinutes sets the "timeout_minutes" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateTimeoutMinutes() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateTimeoutMinutes()
	})
}

// ClearTimeoutMinutes clears the value of the "timeout_minutes" field.
func (u *TaskUpsertBulk) ClearTimeoutMinutes() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearTimeoutMinutes()
	})
}

// SetRetryCount sets the "retry_count" field.
func (u *TaskUpsertBulk) SetRetryCount(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetRetryCount(v)
	})
}

// AddRetryCount adds v to the "retry_count" field.
func (u *TaskUpsertBulk) AddRetryCount(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddRetryCount(v)
	})
}

// UpdateRetryCount sets the "retry_count" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateRetryCount() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateRetryCount()
	})
}

// SetMaxRetries sets the "max_retries" field.
func (u *TaskUpsertBulk) SetMaxRetries(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetMaxRetries(v)
	})
}

// AddMaxRetries adds v to the "max_retries" field.
func (u *TaskUpsertBulk) AddMaxRetries(v int) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.AddMaxRetries(v)
	})
}

// UpdateMaxRetries sets the "max_retries" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateMaxRetries() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateMaxRetries()
	})
}

// SetResult sets the "result" field.
func (u *TaskUpsertBulk) SetResult(v map[string]interface{}) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetResult(v)
	})
}

// UpdateResult sets the "result" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateResult() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateResult()
	})
}

// ClearResult clears the value of the "result" field.
func (u *TaskUpsertBulk) ClearResult() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearResult()
	})
}

// SetFeedback sets the "feedback" field.
func (u *TaskUpsertBulk) SetFeedback(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetFeedback(v)
	})
}

// UpdateFeedback sets the "feedback" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateFeedback() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateFeedback()
	})
}

// ClearFeedback clears the value of the "feedback" field.
func (u *TaskUpsertBulk) ClearFeedback() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearFeedback()
	})
}

// SetCreatedBy sets the "created_by" field.
func (u *TaskUpsertBulk) SetCreatedBy(v string) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCreatedBy(v)
	})
}

// UpdateCreatedBy sets the "created_by" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCreatedBy() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCreatedBy()
	})
}

// ClearCreatedBy clears the value of the "created_by" field.
func (u *TaskUpsertBulk) ClearCreatedBy() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCreatedBy()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *TaskUpsertBulk) SetUpdatedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateUpdatedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetAssignedAt sets the "assigned_at" field.
func (u *TaskUpsertBulk) SetAssignedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetAssignedAt(v)
	})
}

// UpdateAssignedAt sets the "assigned_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateAssignedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateAssignedAt()
	})
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (u *TaskUpsertBulk) ClearAssignedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearAssignedAt()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *TaskUpsertBulk) SetStartedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateStartedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *TaskUpsertBulk) ClearStartedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *TaskUpsertBulk) SetCompletedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateCompletedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *TaskUpsertBulk) ClearCompletedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDueAt sets the "due_at" field.
func (u *TaskUpsertBulk) SetDueAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetDueAt(v)
	})
}

// UpdateDueAt sets the "due_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateDueAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDueAt()
	})
}

// ClearDueAt clears the value of the "due_at" field.
func (u *TaskUpsertBulk) ClearDueAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDueAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *TaskUpsertBulk) SetDeletedAt(v time.Time) *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *TaskUpsertBulk) UpdateDeletedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *TaskUpsertBulk) ClearDeletedAt() *TaskUpsertBulk {
	return u.Update(func(s *TaskUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *TaskUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TaskCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TaskCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TaskUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
