package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskfleet/taskfleet/ent/task"
	"github.com/taskfleet/taskfleet/pkg/models"
)

func TestProjectService_CreateProject(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	t.Run("creates project", func(t *testing.T) {
		created, err := env.projects.CreateProject(ctx, models.CreateProjectRequest{
			Name:        "launch-campaign",
			Description: "Q3 launch",
			ChannelID:   "C123",
		})
		require.NoError(t, err)
		assert.Equal(t, "launch-campaign", created.Name)
		require.NotNil(t, created.ChannelID)
		assert.Equal(t, "C123", *created.ChannelID)
	})

	t.Run("requires a name", func(t *testing.T) {
		_, err := env.projects.CreateProject(ctx, models.CreateProjectRequest{})
		assert.True(t, IsValidationError(err))
	})

	t.Run("names are unique", func(t *testing.T) {
		_, err := env.projects.CreateProject(ctx, models.CreateProjectRequest{Name: "dup"})
		require.NoError(t, err)
		_, err = env.projects.CreateProject(ctx, models.CreateProjectRequest{Name: "dup"})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestProjectService_UpdateProject(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	proj := env.mkProject(t, "update-me")

	t.Run("updates status and description", func(t *testing.T) {
		status := "paused"
		desc := "on hold"
		updated, err := env.projects.UpdateProject(ctx, proj.ID, models.UpdateProjectRequest{
			Status:      &status,
			Description: &desc,
		})
		require.NoError(t, err)
		assert.Equal(t, "paused", string(updated.Status))
		assert.Equal(t, "on hold", updated.Description)
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		status := "hibernating"
		_, err := env.projects.UpdateProject(ctx, proj.ID, models.UpdateProjectRequest{Status: &status})
		assert.True(t, IsValidationError(err))
	})

	t.Run("clears channel binding", func(t *testing.T) {
		empty := ""
		updated, err := env.projects.UpdateProject(ctx, proj.ID, models.UpdateProjectRequest{ChannelID: &empty})
		require.NoError(t, err)
		assert.Nil(t, updated.ChannelID)
	})
}

func TestProjectService_GetProgress(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	proj := env.mkProject(t, "progress-project")

	for i := 0; i < 3; i++ {
		env.mkTask(t, proj.ID, "pending work")
	}
	done := env.mkTask(t, proj.ID, "done work")
	env.completeTask(t, done.ID)

	progress, err := env.projects.GetProgress(ctx, proj.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, progress.TotalTasks)
	assert.Equal(t, 1, progress.CompletedTasks)
	assert.Equal(t, 3, progress.StatusCounts[string(task.StatusPending)])
	assert.InDelta(t, 25.0, progress.PercentDone, 0.001)
}

func TestProjectService_Breakdown(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	t.Run("creates interdependent batch", func(t *testing.T) {
		proj := env.mkProject(t, "breakdown-project")
		created, err := env.projects.Breakdown(ctx, proj.ID, models.ProjectBreakdownRequest{
			CreatedBy: "planner",
			Tasks: []models.BreakdownTask{
				{Title: "research", TaskType: "research"},
				{Title: "write", TaskType: "copywrite", DependsOn: []int{0}},
				{Title: "publish", TaskType: "publish", DependsOn: []int{1}},
			},
		})
		require.NoError(t, err)
		require.Len(t, created, 3)

		// Batch indexes are rewritten to real ids
		assert.Empty(t, created[0].Dependencies)
		require.Len(t, created[1].Dependencies, 1)
		assert.Equal(t, int64(created[0].ID), created[1].Dependencies[0])
		require.Len(t, created[2].Dependencies, 1)
		assert.Equal(t, int64(created[1].ID), created[2].Dependencies[0])

		// Only the root is immediately claimable
		available, err := env.dispatch.ListAvailable(ctx, models.AvailableTaskFilters{ProjectID: proj.ID})
		require.NoError(t, err)
		require.Len(t, available, 1)
		assert.Equal(t, "research", available[0].Title)
	})

	t.Run("entries listed out of dependency order", func(t *testing.T) {
		proj := env.mkProject(t, "breakdown-unordered")
		created, err := env.projects.Breakdown(ctx, proj.ID, models.ProjectBreakdownRequest{
			Tasks: []models.BreakdownTask{
				{Title: "last", TaskType: "publish", DependsOn: []int{1}},
				{Title: "first", TaskType: "research"},
			},
		})
		require.NoError(t, err)
		require.Len(t, created, 2)
		assert.Equal(t, int64(created[1].ID), created[0].Dependencies[0])
	})

	t.Run("rejects cycle", func(t *testing.T) {
		proj := env.mkProject(t, "breakdown-cycle")
		_, err := env.projects.Breakdown(ctx, proj.ID, models.ProjectBreakdownRequest{
			Tasks: []models.BreakdownTask{
				{Title: "a", TaskType: "research", DependsOn: []int{1}},
				{Title: "b", TaskType: "research", DependsOn: []int{0}},
			},
		})
		assert.True(t, IsDependencyError(err))

		// Nothing from the rejected batch is persisted
		list, err := env.tasks.ListTasks(ctx, models.TaskFilters{ProjectID: proj.ID})
		require.NoError(t, err)
		assert.Equal(t, 0, list.TotalCount)
	})

	t.Run("rejects out-of-range index", func(t *testing.T) {
		proj := env.mkProject(t, "breakdown-bad-index")
		_, err := env.projects.Breakdown(ctx, proj.ID, models.ProjectBreakdownRequest{
			Tasks: []models.BreakdownTask{
				{Title: "a", TaskType: "research", DependsOn: []int{5}},
			},
		})
		assert.True(t, IsDependencyError(err))
	})

	t.Run("rejects invalid entry atomically", func(t *testing.T) {
		proj := env.mkProject(t, "breakdown-bad-entry")
		_, err := env.projects.Breakdown(ctx, proj.ID, models.ProjectBreakdownRequest{
			Tasks: []models.BreakdownTask{
				{Title: "good", TaskType: "research"},
				{Title: "bad", TaskType: "alchemy"},
			},
		})
		assert.True(t, IsValidationError(err))

		list, err := env.tasks.ListTasks(ctx, models.TaskFilters{ProjectID: proj.ID})
		require.NoError(t, err)
		assert.Equal(t, 0, list.TotalCount)
	})

	t.Run("rejects empty batch", func(t *testing.T) {
		proj := env.mkProject(t, "breakdown-empty")
		_, err := env.projects.Breakdown(ctx, proj.ID, models.ProjectBreakdownRequest{})
		assert.True(t, IsValidationError(err))
	})
}

func TestProjectService_SoftDelete(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	proj := env.mkProject(t, "deletable-project")

	require.NoError(t, env.projects.SoftDeleteProject(ctx, proj.ID))

	_, err := env.projects.GetProject(ctx, proj.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Soft-deleted project rejects new tasks
	_, err = env.tasks.CreateTask(ctx, models.CreateTaskRequest{
		ProjectID: proj.ID,
		Title:     "into the void",
		TaskType:  task.TaskTypeDevelopment,
	})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, env.projects.RestoreProject(ctx, proj.ID))
	_, err = env.projects.GetProject(ctx, proj.ID)
	assert.NoError(t, err)
}
