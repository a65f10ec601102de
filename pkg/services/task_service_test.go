package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskfleet/taskfleet/ent/task"
	"github.com/taskfleet/taskfleet/ent/tasklog"
	"github.com/taskfleet/taskfleet/pkg/models"
)

func TestTaskService_CreateTask(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	proj := env.mkProject(t, "create-task-project")

	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name  string
			req   models.CreateTaskRequest
			field string
		}{
			{
				name:  "missing title",
				req:   models.CreateTaskRequest{ProjectID: proj.ID, TaskType: task.TaskTypeDevelopment},
				field: "title",
			},
			{
				name:  "missing project",
				req:   models.CreateTaskRequest{Title: "t", TaskType: task.TaskTypeDevelopment},
				field: "project_id",
			},
			{
				name:  "unknown task type",
				req:   models.CreateTaskRequest{ProjectID: proj.ID, Title: "t", TaskType: "sorcery"},
				field: "task_type",
			},
			{
				name:  "priority out of range",
				req:   models.CreateTaskRequest{ProjectID: proj.ID, Title: "t", TaskType: task.TaskTypeDevelopment, Priority: 11},
				field: "priority",
			},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := env.tasks.CreateTask(ctx, tt.req)
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, tt.field, verr.Field)
			})
		}
	})

	t.Run("unknown project", func(t *testing.T) {
		_, err := env.tasks.CreateTask(ctx, models.CreateTaskRequest{
			ProjectID: 999999,
			Title:     "orphan",
			TaskType:  task.TaskTypeDevelopment,
		})
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("applies type defaults", func(t *testing.T) {
		created, err := env.tasks.CreateTask(ctx, models.CreateTaskRequest{
			ProjectID: proj.ID,
			Title:     "ship it",
			TaskType:  task.TaskTypeDeployment,
		})
		require.NoError(t, err)
		assert.Equal(t, task.StatusPending, created.Status)
		assert.Equal(t, 9, created.Priority)
		assert.Equal(t, 5, created.MaxRetries)
		assert.Nil(t, created.Assignee)
	})

	t.Run("explicit values win over defaults", func(t *testing.T) {
		maxRetries := 1
		created, err := env.tasks.CreateTask(ctx, models.CreateTaskRequest{
			ProjectID:  proj.ID,
			Title:      "low priority deploy",
			TaskType:   task.TaskTypeDeployment,
			Priority:   2,
			MaxRetries: &maxRetries,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, created.Priority)
		assert.Equal(t, 1, created.MaxRetries)
	})

	t.Run("writes creation log entry", func(t *testing.T) {
		created := env.mkTask(t, proj.ID, "audited")
		logs, err := env.client.TaskLog.Query().
			Where(tasklog.TaskIDEQ(created.ID)).
			All(ctx)
		require.NoError(t, err)
		require.Len(t, logs, 1)
		assert.Equal(t, "created", logs[0].Action)
		assert.Equal(t, string(task.StatusPending), logs[0].NewStatus)
	})

	t.Run("rejects unknown dependency", func(t *testing.T) {
		_, err := env.tasks.CreateTask(ctx, models.CreateTaskRequest{
			ProjectID:    proj.ID,
			Title:        "depends on nothing real",
			TaskType:     task.TaskTypeDevelopment,
			Dependencies: []int64{888888},
		})
		assert.True(t, IsDependencyError(err))
	})

	t.Run("rejects cross-project dependency", func(t *testing.T) {
		other := env.mkProject(t, "create-task-other-project")
		foreign := env.mkTask(t, other.ID, "foreign dep")
		_, err := env.tasks.CreateTask(ctx, models.CreateTaskRequest{
			ProjectID:    proj.ID,
			Title:        "crosses projects",
			TaskType:     task.TaskTypeDevelopment,
			Dependencies: []int64{int64(foreign.ID)},
		})
		assert.True(t, IsDependencyError(err))
	})
}

func TestTaskService_DependencyGraph(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	proj := env.mkProject(t, "dep-graph-project")

	// Diamond: D depends on B and C, both depend on A. Shared ancestry is
	// legal; only a directed cycle is not.
	t.Run("diamond is accepted", func(t *testing.T) {
		a := env.mkTask(t, proj.ID, "A")
		b := env.mkTask(t, proj.ID, "B", int64(a.ID))
		c := env.mkTask(t, proj.ID, "C", int64(a.ID))
		d, err := env.tasks.CreateTask(ctx, models.CreateTaskRequest{
			ProjectID:    proj.ID,
			Title:        "D",
			TaskType:     task.TaskTypeDevelopment,
			Dependencies: []int64{int64(b.ID), int64(c.ID)},
		})
		require.NoError(t, err)
		assert.ElementsMatch(t, []int64{int64(b.ID), int64(c.ID)}, []int64(d.Dependencies))
	})

	t.Run("self-dependency is rejected", func(t *testing.T) {
		a := env.mkTask(t, proj.ID, "self-target")
		deps := []int64{int64(a.ID)}
		_, err := env.tasks.UpdateTask(ctx, a.ID, models.UpdateTaskRequest{Dependencies: &deps})
		assert.True(t, IsDependencyError(err))
	})

	t.Run("cycle via update is rejected", func(t *testing.T) {
		a := env.mkTask(t, proj.ID, "cycle-a")
		b := env.mkTask(t, proj.ID, "cycle-b", int64(a.ID))
		c := env.mkTask(t, proj.ID, "cycle-c", int64(b.ID))

		// Closing the loop a -> c would make a -> c -> b -> a
		deps := []int64{int64(c.ID)}
		_, err := env.tasks.UpdateTask(ctx, a.ID, models.UpdateTaskRequest{Dependencies: &deps})
		assert.True(t, IsDependencyError(err))
	})
}

func TestTaskService_UpdateTask(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	proj := env.mkProject(t, "update-task-project")

	t.Run("updates pending task", func(t *testing.T) {
		created := env.mkTask(t, proj.ID, "original title")
		title := "new title"
		priority := 8
		updated, err := env.tasks.UpdateTask(ctx, created.ID, models.UpdateTaskRequest{
			Title:    &title,
			Priority: &priority,
		})
		require.NoError(t, err)
		assert.Equal(t, "new title", updated.Title)
		assert.Equal(t, 8, updated.Priority)
	})

	t.Run("rejects update after claim", func(t *testing.T) {
		env.mkAgent(t, "updater-agent")
		created := env.mkTask(t, proj.ID, "claimed then updated")
		_, _, err := env.dispatch.Claim(ctx, created.ID, "updater-agent", "")
		require.NoError(t, err)

		title := "too late"
		_, err = env.tasks.UpdateTask(ctx, created.ID, models.UpdateTaskRequest{Title: &title})
		assert.ErrorIs(t, err, ErrStateConflict)
	})

	t.Run("not found", func(t *testing.T) {
		title := "ghost"
		_, err := env.tasks.UpdateTask(ctx, 424242, models.UpdateTaskRequest{Title: &title})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTaskService_Lifecycle(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	proj := env.mkProject(t, "lifecycle-project")

	t.Run("full approve path", func(t *testing.T) {
		env.mkAgent(t, "worker-1")
		created := env.mkTask(t, proj.ID, "happy path")

		claimed, _, err := env.dispatch.Claim(ctx, created.ID, "worker-1", "")
		require.NoError(t, err)
		assert.Equal(t, task.StatusAssigned, claimed.Status)
		require.NotNil(t, claimed.Assignee)
		assert.Equal(t, "worker-1", *claimed.Assignee)
		assert.NotNil(t, claimed.AssignedAt)

		started, _, err := env.tasks.StartTask(ctx, created.ID, "worker-1", "")
		require.NoError(t, err)
		assert.Equal(t, task.StatusRunning, started.Status)
		assert.NotNil(t, started.StartedAt)

		submitted, _, err := env.tasks.SubmitTask(ctx, created.ID, models.SubmitTaskRequest{
			AgentName: "worker-1",
			Result:    map[string]any{"artifact": "s3://bucket/result"},
		}, "")
		require.NoError(t, err)
		assert.Equal(t, task.StatusReviewing, submitted.Status)

		reviewed, _, err := env.tasks.ReviewTask(ctx, created.ID, models.ReviewTaskRequest{
			ReviewerID: "lead",
			Approved:   true,
		}, "")
		require.NoError(t, err)
		assert.Equal(t, task.StatusCompleted, reviewed.Status)
		assert.Nil(t, reviewed.Assignee)
		assert.NotNil(t, reviewed.CompletedAt)

		ag, err := env.agents.GetAgent(ctx, "worker-1")
		require.NoError(t, err)
		assert.Equal(t, 1, ag.TotalTasks)
		assert.Equal(t, 1, ag.CompletedTasks)
		assert.Equal(t, 0, ag.FailedTasks)
		assert.InDelta(t, 1.0, ag.SuccessRate, 0.001)

		detail, err := env.tasks.GetTask(ctx, created.ID)
		require.NoError(t, err)
		actions := make([]string, 0, len(detail.Logs))
		for _, l := range detail.Logs {
			actions = append(actions, l.Action)
		}
		assert.Equal(t, []string{"created", "claimed", "started", "submitted", "approved"}, actions)
	})

	t.Run("start requires the holder", func(t *testing.T) {
		env.mkAgent(t, "worker-2")
		env.mkAgent(t, "impostor")
		created := env.mkTask(t, proj.ID, "holder only")
		_, _, err := env.dispatch.Claim(ctx, created.ID, "worker-2", "")
		require.NoError(t, err)

		_, _, err = env.tasks.StartTask(ctx, created.ID, "impostor", "")
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("start rejects pending task", func(t *testing.T) {
		env.mkAgent(t, "worker-3")
		created := env.mkTask(t, proj.ID, "never claimed")
		_, _, err := env.tasks.StartTask(ctx, created.ID, "worker-3", "")
		assert.ErrorIs(t, err, ErrStateConflict)
	})

	t.Run("agent runs one task at a time", func(t *testing.T) {
		env.mkAgent(t, "worker-4")
		first := env.mkTask(t, proj.ID, "first running")
		second := env.mkTask(t, proj.ID, "second claimed")
		env.claimAndStart(t, first.ID, "worker-4")

		_, _, err := env.dispatch.Claim(ctx, second.ID, "worker-4", "")
		require.NoError(t, err)
		_, _, err = env.tasks.StartTask(ctx, second.ID, "worker-4", "")
		assert.ErrorIs(t, err, ErrStateConflict)
	})

	t.Run("submit requires running", func(t *testing.T) {
		env.mkAgent(t, "worker-5")
		created := env.mkTask(t, proj.ID, "submit too early")
		_, _, err := env.dispatch.Claim(ctx, created.ID, "worker-5", "")
		require.NoError(t, err)

		_, _, err = env.tasks.SubmitTask(ctx, created.ID, models.SubmitTaskRequest{AgentName: "worker-5"}, "")
		assert.ErrorIs(t, err, ErrStateConflict)
	})

	t.Run("rejection keeps feedback and skips stats", func(t *testing.T) {
		env.mkAgent(t, "worker-6")
		created := env.mkTask(t, proj.ID, "rejected work")
		env.claimAndStart(t, created.ID, "worker-6")
		_, _, err := env.tasks.SubmitTask(ctx, created.ID, models.SubmitTaskRequest{AgentName: "worker-6"}, "")
		require.NoError(t, err)

		reviewed, _, err := env.tasks.ReviewTask(ctx, created.ID, models.ReviewTaskRequest{
			ReviewerID: "lead",
			Approved:   false,
			Feedback:   "missing tests",
		}, "")
		require.NoError(t, err)
		assert.Equal(t, task.StatusRejected, reviewed.Status)
		assert.Equal(t, "missing tests", reviewed.Feedback)
		assert.Nil(t, reviewed.Assignee)

		// Rejection is not terminal; the rollup counters must not move
		ag, err := env.agents.GetAgent(ctx, "worker-6")
		require.NoError(t, err)
		assert.Equal(t, 0, ag.TotalTasks)
	})

	t.Run("designated reviewer is enforced", func(t *testing.T) {
		env.mkAgent(t, "worker-7")
		created, err := env.tasks.CreateTask(ctx, models.CreateTaskRequest{
			ProjectID:  proj.ID,
			Title:      "needs the right reviewer",
			TaskType:   task.TaskTypeDevelopment,
			ReviewerID: "lead",
		})
		require.NoError(t, err)
		env.claimAndStart(t, created.ID, "worker-7")
		_, _, err = env.tasks.SubmitTask(ctx, created.ID, models.SubmitTaskRequest{AgentName: "worker-7"}, "")
		require.NoError(t, err)

		_, _, err = env.tasks.ReviewTask(ctx, created.ID, models.ReviewTaskRequest{
			ReviewerID: "bystander",
			Approved:   true,
		}, "")
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestTaskService_ReleaseTask(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	proj := env.mkProject(t, "release-project")

	t.Run("release assigned returns to pool", func(t *testing.T) {
		env.mkAgent(t, "releaser-1")
		created := env.mkTask(t, proj.ID, "claimed then released")
		_, _, err := env.dispatch.Claim(ctx, created.ID, "releaser-1", "")
		require.NoError(t, err)

		released, _, err := env.tasks.ReleaseTask(ctx, created.ID, models.ReleaseTaskRequest{
			AgentName: "releaser-1",
			Reason:    "wrong skill set",
		}, "")
		require.NoError(t, err)
		assert.Equal(t, task.StatusPending, released.Status)
		assert.Nil(t, released.Assignee)
		assert.Nil(t, released.AssignedAt)
		assert.Equal(t, 0, released.RetryCount)
	})

	t.Run("release running spends the retry budget", func(t *testing.T) {
		env.mkAgent(t, "releaser-2")
		created := env.mkTask(t, proj.ID, "abandoned mid-run")
		env.claimAndStart(t, created.ID, "releaser-2")

		released, _, err := env.tasks.ReleaseTask(ctx, created.ID, models.ReleaseTaskRequest{
			AgentName: "releaser-2",
		}, "")
		require.NoError(t, err)
		assert.Equal(t, task.StatusPending, released.Status)
		assert.Equal(t, 1, released.RetryCount)
	})

	t.Run("release with exhausted budget fails the task", func(t *testing.T) {
		env.mkAgent(t, "releaser-3")
		maxRetries := 0
		created, err := env.tasks.CreateTask(ctx, models.CreateTaskRequest{
			ProjectID:  proj.ID,
			Title:      "one shot",
			TaskType:   task.TaskTypeDevelopment,
			MaxRetries: &maxRetries,
		})
		require.NoError(t, err)
		env.claimAndStart(t, created.ID, "releaser-3")

		released, _, err := env.tasks.ReleaseTask(ctx, created.ID, models.ReleaseTaskRequest{
			AgentName: "releaser-3",
		}, "")
		require.NoError(t, err)
		assert.Equal(t, task.StatusFailed, released.Status)
		assert.Nil(t, released.Assignee)

		ag, err := env.agents.GetAgent(ctx, "releaser-3")
		require.NoError(t, err)
		assert.Equal(t, 1, ag.TotalTasks)
		assert.Equal(t, 1, ag.FailedTasks)
	})

	t.Run("only the holder may release", func(t *testing.T) {
		env.mkAgent(t, "releaser-4")
		env.mkAgent(t, "meddler")
		created := env.mkTask(t, proj.ID, "not yours")
		_, _, err := env.dispatch.Claim(ctx, created.ID, "releaser-4", "")
		require.NoError(t, err)

		_, _, err = env.tasks.ReleaseTask(ctx, created.ID, models.ReleaseTaskRequest{AgentName: "meddler"}, "")
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestTaskService_RetryTask(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	proj := env.mkProject(t, "retry-project")

	rejectTask := func(t *testing.T, agentName, title string) int {
		created := env.mkTask(t, proj.ID, title)
		env.claimAndStart(t, created.ID, agentName)
		_, _, err := env.tasks.SubmitTask(ctx, created.ID, models.SubmitTaskRequest{AgentName: agentName}, "")
		require.NoError(t, err)
		_, _, err = env.tasks.ReviewTask(ctx, created.ID, models.ReviewTaskRequest{
			ReviewerID: "lead",
			Approved:   false,
			Feedback:   "redo",
		}, "")
		require.NoError(t, err)
		return created.ID
	}

	t.Run("retries rejected task", func(t *testing.T) {
		env.mkAgent(t, "retrier-1")
		id := rejectTask(t, "retrier-1", "rejected once")

		retried, _, err := env.tasks.RetryTask(ctx, id, "")
		require.NoError(t, err)
		assert.Equal(t, task.StatusPending, retried.Status)
		assert.Equal(t, 1, retried.RetryCount)
		// Feedback survives so the next attempt can act on it
		assert.Equal(t, "redo", retried.Feedback)
	})

	t.Run("bounded by retry budget", func(t *testing.T) {
		env.mkAgent(t, "retrier-2")
		id := rejectTask(t, "retrier-2", "rejected forever")

		err := env.client.Task.UpdateOneID(id).SetRetryCount(3).Exec(ctx)
		require.NoError(t, err)

		_, _, err = env.tasks.RetryTask(ctx, id, "")
		assert.ErrorIs(t, err, ErrRetriesExhausted)
	})

	t.Run("rejects non-retryable states", func(t *testing.T) {
		created := env.mkTask(t, proj.ID, "still pending")
		_, _, err := env.tasks.RetryTask(ctx, created.ID, "")
		assert.ErrorIs(t, err, ErrStateConflict)
	})
}

func TestTaskService_CancelTask(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	proj := env.mkProject(t, "cancel-project")

	t.Run("cancels a running task", func(t *testing.T) {
		env.mkAgent(t, "cancel-worker")
		created := env.mkTask(t, proj.ID, "doomed")
		env.claimAndStart(t, created.ID, "cancel-worker")

		cancelled, err := env.tasks.CancelTask(ctx, created.ID, "admin")
		require.NoError(t, err)
		assert.Equal(t, task.StatusCancelled, cancelled.Status)
		assert.Nil(t, cancelled.Assignee)

		ag, err := env.agents.GetAgent(ctx, "cancel-worker")
		require.NoError(t, err)
		assert.Equal(t, 1, ag.TotalTasks)
		assert.Equal(t, 0, ag.CompletedTasks)
		assert.Nil(t, ag.CurrentTaskID)
	})

	t.Run("rejects terminal tasks", func(t *testing.T) {
		created := env.mkTask(t, proj.ID, "already done")
		env.completeTask(t, created.ID)

		_, err := env.tasks.CancelTask(ctx, created.ID, "admin")
		assert.ErrorIs(t, err, ErrStateConflict)
	})
}

func TestTaskService_SoftDelete(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	proj := env.mkProject(t, "soft-delete-project")

	created := env.mkTask(t, proj.ID, "disposable")

	require.NoError(t, env.tasks.SoftDeleteTask(ctx, created.ID))

	_, err := env.tasks.GetTask(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting again is a no-op failure
	assert.ErrorIs(t, env.tasks.SoftDeleteTask(ctx, created.ID), ErrNotFound)

	require.NoError(t, env.tasks.RestoreTask(ctx, created.ID))
	restored, err := env.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, restored.Status)
}

func TestTaskService_ReclaimStuckTasks(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	proj := env.mkProject(t, "reclaim-project")

	t.Run("reclaims past-timeout running task", func(t *testing.T) {
		env.mkAgent(t, "stuck-worker")
		timeout := 30
		created, err := env.tasks.CreateTask(ctx, models.CreateTaskRequest{
			ProjectID:      proj.ID,
			Title:          "stuck",
			TaskType:       task.TaskTypeDevelopment,
			TimeoutMinutes: &timeout,
		})
		require.NoError(t, err)
		env.claimAndStart(t, created.ID, "stuck-worker")

		err = env.client.Task.UpdateOneID(created.ID).
			SetStartedAt(time.Now().Add(-31 * time.Minute)).
			Exec(ctx)
		require.NoError(t, err)

		result, err := env.tasks.ReclaimStuckTasks(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Reclaimed)
		assert.Equal(t, 0, result.Failed)

		detail, err := env.tasks.GetTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusPending, detail.Status)
		assert.Nil(t, detail.Assignee)
		assert.Equal(t, 1, detail.RetryCount)

		last := detail.Logs[len(detail.Logs)-1]
		assert.Equal(t, "reclaimed", last.Action)
		assert.Equal(t, "system", last.Actor)
	})

	t.Run("leaves tasks within timeout alone", func(t *testing.T) {
		env.mkAgent(t, "healthy-worker")
		timeout := 30
		created, err := env.tasks.CreateTask(ctx, models.CreateTaskRequest{
			ProjectID:      proj.ID,
			Title:          "healthy",
			TaskType:       task.TaskTypeDevelopment,
			TimeoutMinutes: &timeout,
		})
		require.NoError(t, err)
		env.claimAndStart(t, created.ID, "healthy-worker")

		result, err := env.tasks.ReclaimStuckTasks(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Reclaimed)

		detail, err := env.tasks.GetTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusRunning, detail.Status)
	})

	t.Run("fails task with exhausted budget", func(t *testing.T) {
		env.mkAgent(t, "exhausted-worker")
		timeout := 30
		maxRetries := 0
		created, err := env.tasks.CreateTask(ctx, models.CreateTaskRequest{
			ProjectID:      proj.ID,
			Title:          "stuck and spent",
			TaskType:       task.TaskTypeDevelopment,
			TimeoutMinutes: &timeout,
			MaxRetries:     &maxRetries,
		})
		require.NoError(t, err)
		env.claimAndStart(t, created.ID, "exhausted-worker")

		err = env.client.Task.UpdateOneID(created.ID).
			SetStartedAt(time.Now().Add(-31 * time.Minute)).
			Exec(ctx)
		require.NoError(t, err)

		result, err := env.tasks.ReclaimStuckTasks(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Reclaimed)
		assert.Equal(t, 1, result.Failed)

		detail, err := env.tasks.GetTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusFailed, detail.Status)

		ag, err := env.agents.GetAgent(ctx, "exhausted-worker")
		require.NoError(t, err)
		assert.Equal(t, 1, ag.FailedTasks)
	})

	t.Run("uses the type default when the task has no timeout", func(t *testing.T) {
		env.mkAgent(t, "default-timeout-worker")
		// development defaults to 480 minutes
		created := env.mkTask(t, proj.ID, "type default timeout")
		env.claimAndStart(t, created.ID, "default-timeout-worker")

		err := env.client.Task.UpdateOneID(created.ID).
			SetStartedAt(time.Now().Add(-481 * time.Minute)).
			Exec(ctx)
		require.NoError(t, err)

		result, err := env.tasks.ReclaimStuckTasks(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Reclaimed)
	})
}

func TestTaskService_ListTasks(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	proj := env.mkProject(t, "list-tasks-project")

	for i := 0; i < 5; i++ {
		env.mkTask(t, proj.ID, "task")
	}
	env.mkAgent(t, "lister")
	claimed := env.mkTask(t, proj.ID, "claimed one")
	_, _, err := env.dispatch.Claim(ctx, claimed.ID, "lister", "")
	require.NoError(t, err)

	t.Run("filters by status", func(t *testing.T) {
		list, err := env.tasks.ListTasks(ctx, models.TaskFilters{
			ProjectID: proj.ID,
			Status:    task.StatusAssigned,
		})
		require.NoError(t, err)
		assert.Equal(t, 1, list.TotalCount)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := env.tasks.ListTasks(ctx, models.TaskFilters{Status: "limbo"})
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("paginates", func(t *testing.T) {
		list, err := env.tasks.ListTasks(ctx, models.TaskFilters{
			ProjectID: proj.ID,
			Limit:     2,
			Offset:    0,
		})
		require.NoError(t, err)
		assert.Equal(t, 6, list.TotalCount)
		assert.Len(t, list.Tasks, 2)
	})
}

func TestTaskService_StartRace(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	proj := env.mkProject(t, "start-race-project")
	env.mkAgent(t, "eager-starter")

	first := env.mkTask(t, proj.ID, "first assigned")
	second := env.mkTask(t, proj.ID, "second assigned")
	_, _, err := env.dispatch.Claim(ctx, first.ID, "eager-starter", "")
	require.NoError(t, err)
	_, _, err = env.dispatch.Claim(ctx, second.ID, "eager-starter", "")
	require.NoError(t, err)

	// Starting both held tasks in parallel must leave exactly one running;
	// the agent row lock serializes the single-running check
	ids := []int{first.ID, second.ID}
	var wg sync.WaitGroup
	errs := make([]error, len(ids))
	for i, id := range ids {
		wg.Add(1)
		go func(i, id int) {
			defer wg.Done()
			_, _, errs[i] = env.tasks.StartTask(ctx, id, "eager-starter", "")
		}(i, id)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ErrStateConflict)
		}
	}
	assert.Equal(t, 1, wins, "exactly one parallel start must succeed")

	running, err := env.client.Task.Query().
		Where(task.AssigneeEQ("eager-starter"), task.StatusEQ(task.StatusRunning)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, running)
}
