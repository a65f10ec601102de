// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/lib/pq"
	"github.com/taskfleet/taskfleet/ent/agent"
	"github.com/taskfleet/taskfleet/ent/agentchannel"
	"github.com/taskfleet/taskfleet/ent/idempotencykey"
	"github.com/taskfleet/taskfleet/ent/project"
	"github.com/taskfleet/taskfleet/ent/schema"
	"github.com/taskfleet/taskfleet/ent/task"
	"github.com/taskfleet/taskfleet/ent/tasklog"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescSkills is the schema descriptor for skills field.
	agentDescSkills := agentFields[4].Descriptor()
	// agent.DefaultSkills holds the default value on creation for the skills field.
	agent.DefaultSkills = agentDescSkills.Default.(pq.StringArray)
	// agentDescTotalTasks is the schema descriptor for total_tasks field.
	agentDescTotalTasks := agentFields[5].Descriptor()
	// agent.DefaultTotalTasks holds the default value on creation for the total_tasks field.
	agent.DefaultTotalTasks = agentDescTotalTasks.Default.(int)
	// agentDescCompletedTasks is the schema descriptor for completed_tasks field.
	agentDescCompletedTasks := agentFields[6].Descriptor()
	// agent.DefaultCompletedTasks holds the default value on creation for the completed_tasks field.
	agent.DefaultCompletedTasks = agentDescCompletedTasks.Default.(int)
	// agentDescFailedTasks is the schema descriptor for failed_tasks field.
	agentDescFailedTasks := agentFields[7].Descriptor()
	// agent.DefaultFailedTasks holds the default value on creation for the failed_tasks field.
	agent.DefaultFailedTasks = agentDescFailedTasks.Default.(int)
	// agentDescSuccessRate is the schema descriptor for success_rate field.
	agentDescSuccessRate := agentFields[8].Descriptor()
	// agent.DefaultSuccessRate holds the default value on creation for the success_rate field.
	agent.DefaultSuccessRate = agentDescSuccessRate.Default.(float64)
	// agentDescLastHeartbeat is the schema descriptor for last_heartbeat field.
	agentDescLastHeartbeat := agentFields[10].Descriptor()
	// agent.DefaultLastHeartbeat holds the default value on creation for the last_heartbeat field.
	agent.DefaultLastHeartbeat = agentDescLastHeartbeat.Default.(func() time.Time)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[11].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescUpdatedAt is the schema descriptor for updated_at field.
	agentDescUpdatedAt := agentFields[12].Descriptor()
	// agent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agent.DefaultUpdatedAt = agentDescUpdatedAt.Default.(func() time.Time)
	// agent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agent.UpdateDefaultUpdatedAt = agentDescUpdatedAt.UpdateDefault.(func() time.Time)
	agentchannelFields := schema.AgentChannel{}.Fields()
	_ = agentchannelFields
	// agentchannelDescLastSeen is the schema descriptor for last_seen field.
	agentchannelDescLastSeen := agentchannelFields[2].Descriptor()
	// agentchannel.DefaultLastSeen holds the default value on creation for the last_seen field.
	agentchannel.DefaultLastSeen = agentchannelDescLastSeen.Default.(func() time.Time)
	idempotencykeyFields := schema.IdempotencyKey{}.Fields()
	_ = idempotencykeyFields
	// idempotencykeyDescCreatedAt is the schema descriptor for created_at field.
	idempotencykeyDescCreatedAt := idempotencykeyFields[2].Descriptor()
	// idempotencykey.DefaultCreatedAt holds the default value on creation for the created_at field.
	idempotencykey.DefaultCreatedAt = idempotencykeyDescCreatedAt.Default.(func() time.Time)
	projectFields := schema.Project{}.Fields()
	_ = projectFields
	// projectDescCreatedAt is the schema descriptor for created_at field.
	projectDescCreatedAt := projectFields[4].Descriptor()
	// project.DefaultCreatedAt holds the default value on creation for the created_at field.
	project.DefaultCreatedAt = projectDescCreatedAt.Default.(func() time.Time)
	// projectDescUpdatedAt is the schema descriptor for updated_at field.
	projectDescUpdatedAt := projectFields[5].Descriptor()
	// project.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	project.DefaultUpdatedAt = projectDescUpdatedAt.Default.(func() time.Time)
	// project.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	project.UpdateDefaultUpdatedAt = projectDescUpdatedAt.UpdateDefault.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescPriority is the schema descriptor for priority field.
	taskDescPriority := taskFields[5].Descriptor()
	// task.DefaultPriority holds the default value on creation for the priority field.
	task.DefaultPriority = taskDescPriority.Default.(int)
	// task.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	task.PriorityValidator = func() func(int) error {
		validators := taskDescPriority.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(priority int) error {
			for _, fn := range fns {
				if err := fn(priority); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// taskDescDependencies is the schema descriptor for dependencies field.
	taskDescDependencies := taskFields[10].Descriptor()
	// task.DefaultDependencies holds the default value on creation for the dependencies field.
	task.DefaultDependencies = taskDescDependencies.Default.(pq.Int64Array)
	// taskDescTaskTags is the schema descriptor for task_tags field.
	taskDescTaskTags := taskFields[11].Descriptor()
	// task.DefaultTaskTags holds the default value on creation for the task_tags field.
	task.DefaultTaskTags = taskDescTaskTags.Default.(pq.StringArray)
	// taskDescRetryCount is the schema descriptor for retry_count field.
	taskDescRetryCount := taskFields[14].Descriptor()
	// task.DefaultRetryCount holds the default value on creation for the retry_count field.
	task.DefaultRetryCount = taskDescRetryCount.Default.(int)
	// taskDescMaxRetries is the schema descriptor for max_retries field.
	taskDescMaxRetries := taskFields[15].Descriptor()
	// task.DefaultMaxRetries holds the default value on creation for the max_retries field.
	task.DefaultMaxRetries = taskDescMaxRetries.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[19].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[20].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	tasklogFields := schema.TaskLog{}.Fields()
	_ = tasklogFields
	// tasklogDescActor is the schema descriptor for actor field.
	tasklogDescActor := tasklogFields[5].Descriptor()
	// tasklog.DefaultActor holds the default value on creation for the actor field.
	tasklog.DefaultActor = tasklogDescActor.Default.(string)
	// tasklogDescCreatedAt is the schema descriptor for created_at field.
	tasklogDescCreatedAt := tasklogFields[6].Descriptor()
	// tasklog.DefaultCreatedAt holds the default value on creation for the created_at field.
	tasklog.DefaultCreatedAt = tasklogDescCreatedAt.Default.(func() time.Time)
}
