package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskfleet/taskfleet/ent"
	"github.com/taskfleet/taskfleet/ent/task"
	"github.com/taskfleet/taskfleet/pkg/models"
)

func TestDispatchService_ListAvailable(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	proj := env.mkProject(t, "available-project")

	t.Run("excludes tasks with incomplete dependencies", func(t *testing.T) {
		dep := env.mkTask(t, proj.ID, "blocker")
		blocked := env.mkTask(t, proj.ID, "blocked", int64(dep.ID))
		free := env.mkTask(t, proj.ID, "free")

		available, err := env.dispatch.ListAvailable(ctx, models.AvailableTaskFilters{ProjectID: proj.ID})
		require.NoError(t, err)
		ids := taskIDs(available)
		assert.Contains(t, ids, dep.ID)
		assert.Contains(t, ids, free.ID)
		assert.NotContains(t, ids, blocked.ID)

		env.completeTask(t, dep.ID)

		available, err = env.dispatch.ListAvailable(ctx, models.AvailableTaskFilters{ProjectID: proj.ID})
		require.NoError(t, err)
		assert.Contains(t, taskIDs(available), blocked.ID)
	})

	t.Run("orders by priority then age", func(t *testing.T) {
		ordered := env.mkProject(t, "ordered-project")
		low, err := env.tasks.CreateTask(ctx, models.CreateTaskRequest{
			ProjectID: ordered.ID, Title: "low", TaskType: task.TaskTypeDevelopment, Priority: 2,
		})
		require.NoError(t, err)
		highOld, err := env.tasks.CreateTask(ctx, models.CreateTaskRequest{
			ProjectID: ordered.ID, Title: "high old", TaskType: task.TaskTypeDevelopment, Priority: 9,
		})
		require.NoError(t, err)
		highNew, err := env.tasks.CreateTask(ctx, models.CreateTaskRequest{
			ProjectID: ordered.ID, Title: "high new", TaskType: task.TaskTypeDevelopment, Priority: 9,
		})
		require.NoError(t, err)

		available, err := env.dispatch.ListAvailable(ctx, models.AvailableTaskFilters{ProjectID: ordered.ID})
		require.NoError(t, err)
		assert.Equal(t, []int{highOld.ID, highNew.ID, low.ID}, taskIDs(available))
	})

	t.Run("filters by tags", func(t *testing.T) {
		tagged := env.mkProject(t, "tagged-project")
		_, err := env.tasks.CreateTask(ctx, models.CreateTaskRequest{
			ProjectID: tagged.ID, Title: "backend", TaskType: task.TaskTypeDevelopment,
			TaskTags: []string{"go", "api"},
		})
		require.NoError(t, err)
		_, err = env.tasks.CreateTask(ctx, models.CreateTaskRequest{
			ProjectID: tagged.ID, Title: "frontend", TaskType: task.TaskTypeDevelopment,
			TaskTags: []string{"react"},
		})
		require.NoError(t, err)

		available, err := env.dispatch.ListAvailable(ctx, models.AvailableTaskFilters{
			ProjectID: tagged.ID,
			Tags:      []string{"go"},
		})
		require.NoError(t, err)
		require.Len(t, available, 1)
		assert.Equal(t, "backend", available[0].Title)
	})
}

func TestDispatchService_ListAvailableForAgent(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	proj := env.mkProject(t, "skill-match-project")
	env.mkAgent(t, "go-dev", "go", "postgres")

	_, err := env.tasks.CreateTask(ctx, models.CreateTaskRequest{
		ProjectID: proj.ID, Title: "go work", TaskType: task.TaskTypeDevelopment,
		TaskTags: []string{"go"},
	})
	require.NoError(t, err)
	_, err = env.tasks.CreateTask(ctx, models.CreateTaskRequest{
		ProjectID: proj.ID, Title: "design work", TaskType: task.TaskTypeDesign,
		TaskTags: []string{"figma"},
	})
	require.NoError(t, err)
	_, err = env.tasks.CreateTask(ctx, models.CreateTaskRequest{
		ProjectID: proj.ID, Title: "untagged work", TaskType: task.TaskTypeDevelopment,
	})
	require.NoError(t, err)

	t.Run("matches skills and admits untagged tasks", func(t *testing.T) {
		available, err := env.dispatch.ListAvailableForAgent(ctx, "go-dev", models.AvailableTaskFilters{ProjectID: proj.ID})
		require.NoError(t, err)
		titles := make([]string, 0, len(available))
		for _, tk := range available {
			titles = append(titles, tk.Title)
		}
		assert.ElementsMatch(t, []string{"go work", "untagged work"}, titles)
	})

	t.Run("unknown agent", func(t *testing.T) {
		_, err := env.dispatch.ListAvailableForAgent(ctx, "nobody", models.AvailableTaskFilters{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDispatchService_Claim(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	proj := env.mkProject(t, "claim-project")

	t.Run("claims a pending task", func(t *testing.T) {
		env.mkAgent(t, "claimer-1")
		created := env.mkTask(t, proj.ID, "claimable")

		claimed, recorded, err := env.dispatch.Claim(ctx, created.ID, "claimer-1", "")
		require.NoError(t, err)
		assert.Empty(t, recorded)
		assert.Equal(t, task.StatusAssigned, claimed.Status)
		require.NotNil(t, claimed.Assignee)
		assert.Equal(t, "claimer-1", *claimed.Assignee)

		ag, err := env.agents.GetAgent(ctx, "claimer-1")
		require.NoError(t, err)
		assert.Equal(t, "busy", string(ag.Status))
	})

	t.Run("rejects double claim", func(t *testing.T) {
		env.mkAgent(t, "claimer-2")
		env.mkAgent(t, "claimer-3")
		created := env.mkTask(t, proj.ID, "contested")

		_, _, err := env.dispatch.Claim(ctx, created.ID, "claimer-2", "")
		require.NoError(t, err)
		_, _, err = env.dispatch.Claim(ctx, created.ID, "claimer-3", "")
		assert.ErrorIs(t, err, ErrClaimUnavailable)
	})

	t.Run("rejects claim with incomplete dependencies", func(t *testing.T) {
		env.mkAgent(t, "claimer-4")
		dep := env.mkTask(t, proj.ID, "unfinished dep")
		blocked := env.mkTask(t, proj.ID, "gated", int64(dep.ID))

		_, _, err := env.dispatch.Claim(ctx, blocked.ID, "claimer-4", "")
		assert.ErrorIs(t, err, ErrClaimUnavailable)

		env.completeTask(t, dep.ID)
		_, _, err = env.dispatch.Claim(ctx, blocked.ID, "claimer-4", "")
		assert.NoError(t, err)
	})

	t.Run("enforces the concurrency cap", func(t *testing.T) {
		env.mkAgent(t, "greedy")
		// Cap is 3 in the test config
		for i := 0; i < 3; i++ {
			created := env.mkTask(t, proj.ID, fmt.Sprintf("held %d", i))
			_, _, err := env.dispatch.Claim(ctx, created.ID, "greedy", "")
			require.NoError(t, err)
		}

		overflow := env.mkTask(t, proj.ID, "one too many")
		_, _, err := env.dispatch.Claim(ctx, overflow.ID, "greedy", "")
		assert.ErrorIs(t, err, ErrCapExceeded)

		// Releasing one frees a slot
		held, err := env.tasks.ListTasks(ctx, models.TaskFilters{Assignee: "greedy"})
		require.NoError(t, err)
		_, _, err = env.tasks.ReleaseTask(ctx, held.Tasks[0].ID, models.ReleaseTaskRequest{AgentName: "greedy"}, "")
		require.NoError(t, err)

		_, _, err = env.dispatch.Claim(ctx, overflow.ID, "greedy", "")
		assert.NoError(t, err)
	})

	t.Run("unknown agent", func(t *testing.T) {
		created := env.mkTask(t, proj.ID, "no claimant")
		_, _, err := env.dispatch.Claim(ctx, created.ID, "ghost", "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown task", func(t *testing.T) {
		env.mkAgent(t, "claimer-5")
		_, _, err := env.dispatch.Claim(ctx, 777777, "claimer-5", "")
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDispatchService_ClaimRace(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	proj := env.mkProject(t, "claim-race-project")

	const racers = 8
	for i := 0; i < racers; i++ {
		env.mkAgent(t, fmt.Sprintf("racer-%d", i))
	}
	contested := env.mkTask(t, proj.ID, "single seat")

	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = env.dispatch.Claim(ctx, contested.ID, fmt.Sprintf("racer-%d", i), "")
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.ErrorIs(t, err, ErrClaimUnavailable)
		}
	}
	assert.Equal(t, 1, wins, "exactly one racing claim must succeed")

	// The audit trail records exactly one claim
	detail, err := env.tasks.GetTask(ctx, contested.ID)
	require.NoError(t, err)
	claims := 0
	for _, l := range detail.Logs {
		if l.Action == "claimed" {
			claims++
		}
	}
	assert.Equal(t, 1, claims)
}

func TestDispatchService_ClaimIdempotency(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	proj := env.mkProject(t, "claim-idem-project")
	env.mkAgent(t, "idem-claimer")

	created := env.mkTask(t, proj.ID, "claimed once")

	claimed, recorded, err := env.dispatch.Claim(ctx, created.ID, "idem-claimer", "claim-key-1")
	require.NoError(t, err)
	assert.Empty(t, recorded)

	// Replaying the same key returns the recorded response without a second
	// state transition
	again, recorded, err := env.dispatch.Claim(ctx, created.ID, "idem-claimer", "claim-key-1")
	require.NoError(t, err)
	assert.Nil(t, again)
	require.NotEmpty(t, recorded)

	var replayed ent.Task
	require.NoError(t, json.Unmarshal([]byte(recorded), &replayed))
	assert.Equal(t, claimed.ID, replayed.ID)
	assert.Equal(t, task.StatusAssigned, replayed.Status)

	// A different key sees the real current state and fails
	_, _, err = env.dispatch.Claim(ctx, created.ID, "idem-claimer", "claim-key-2")
	assert.ErrorIs(t, err, ErrClaimUnavailable)
}

func TestTaskService_SubmitIdempotency(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	proj := env.mkProject(t, "submit-idem-project")
	env.mkAgent(t, "idem-submitter")

	created := env.mkTask(t, proj.ID, "submitted once")
	env.claimAndStart(t, created.ID, "idem-submitter")

	submitted, recorded, err := env.tasks.SubmitTask(ctx, created.ID, models.SubmitTaskRequest{
		AgentName: "idem-submitter",
		Result:    map[string]any{"ok": true},
	}, "submit-key-1")
	require.NoError(t, err)
	assert.Empty(t, recorded)
	assert.Equal(t, task.StatusReviewing, submitted.Status)

	// A retried delivery with the same key replays instead of conflicting
	again, recorded, err := env.tasks.SubmitTask(ctx, created.ID, models.SubmitTaskRequest{
		AgentName: "idem-submitter",
	}, "submit-key-1")
	require.NoError(t, err)
	assert.Nil(t, again)
	require.NotEmpty(t, recorded)

	var replayed ent.Task
	require.NoError(t, json.Unmarshal([]byte(recorded), &replayed))
	assert.Equal(t, task.StatusReviewing, replayed.Status)

	// Without a key the same call is a state conflict
	_, _, err = env.tasks.SubmitTask(ctx, created.ID, models.SubmitTaskRequest{
		AgentName: "idem-submitter",
	}, "")
	assert.ErrorIs(t, err, ErrStateConflict)

	// Exactly one submission in the audit trail
	detail, err := env.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	submissions := 0
	for _, l := range detail.Logs {
		if l.Action == "submitted" {
			submissions++
		}
	}
	assert.Equal(t, 1, submissions)
}

func TestDispatchService_CapRace(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	proj := env.mkProject(t, "cap-race-project")
	env.mkAgent(t, "cap-racer")

	const candidates = 6
	ids := make([]int, candidates)
	for i := 0; i < candidates; i++ {
		ids[i] = env.mkTask(t, proj.ID, fmt.Sprintf("candidate %d", i)).ID
	}

	// One agent claims six different tasks in parallel; the agent row lock
	// serializes them so at most cap (3) succeed
	var wg sync.WaitGroup
	errs := make([]error, candidates)
	for i := 0; i < candidates; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = env.dispatch.Claim(ctx, ids[i], "cap-racer", "")
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		if err == nil {
			wins++
		} else {
			assert.True(t, errors.Is(err, ErrCapExceeded), "unexpected error: %v", err)
		}
	}
	assert.Equal(t, env.cfg.Dispatch.MaxConcurrentTasksPerAgent, wins)

	held, err := env.tasks.ListTasks(ctx, models.TaskFilters{Assignee: "cap-racer"})
	require.NoError(t, err)
	assert.Equal(t, env.cfg.Dispatch.MaxConcurrentTasksPerAgent, held.TotalCount)
}

func taskIDs(tasks []*ent.Task) []int {
	ids := make([]int, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.ID)
	}
	return ids
}
