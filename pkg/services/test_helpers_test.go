package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/taskfleet/taskfleet/ent"
	"github.com/taskfleet/taskfleet/ent/agent"
	"github.com/taskfleet/taskfleet/ent/task"
	"github.com/taskfleet/taskfleet/pkg/config"
	"github.com/taskfleet/taskfleet/pkg/models"
	"github.com/taskfleet/taskfleet/test/util"
)

func testConfig() *config.Config {
	return &config.Config{
		DBCommandTimeout: 10 * time.Second,
		Dispatch: config.DispatchConfig{
			MaxConcurrentTasksPerAgent: 3,
			DefaultTaskTimeout:         120 * time.Minute,
		},
		RateLimit: config.RateLimitConfig{
			Window:       time.Minute,
			MaxRequests:  100,
			MaxStoreSize: 1000,
		},
		Sweep: config.SweepConfig{
			HeartbeatInterval:   time.Minute,
			OfflineThreshold:    5 * time.Minute,
			StuckInterval:       time.Minute,
			GCInterval:          time.Hour,
			IdempotencyTTL:      24 * time.Hour,
			SoftDeleteRetention: 30 * 24 * time.Hour,
			GCBatchSize:         100,
		},
	}
}

type testEnv struct {
	client   *ent.Client
	cfg      *config.Config
	projects *ProjectService
	tasks    *TaskService
	dispatch *DispatchService
	agents   *AgentService
}

func setupTestEnv(t *testing.T) *testEnv {
	client, _ := util.SetupTestDatabase(t)
	cfg := testConfig()
	return &testEnv{
		client:   client,
		cfg:      cfg,
		projects: NewProjectService(client, cfg),
		tasks:    NewTaskService(client, cfg),
		dispatch: NewDispatchService(client, cfg),
		agents:   NewAgentService(client),
	}
}

func (e *testEnv) mkProject(t *testing.T, name string) *ent.Project {
	p, err := e.projects.CreateProject(context.Background(), models.CreateProjectRequest{Name: name})
	require.NoError(t, err)
	return p
}

func (e *testEnv) mkAgent(t *testing.T, name string, skills ...string) *ent.Agent {
	a, err := e.agents.Register(context.Background(), models.RegisterAgentRequest{
		Name:   name,
		Role:   agent.RoleDeveloper,
		Skills: skills,
	})
	require.NoError(t, err)
	return a
}

func (e *testEnv) mkTask(t *testing.T, projectID int, title string, deps ...int64) *ent.Task {
	created, err := e.tasks.CreateTask(context.Background(), models.CreateTaskRequest{
		ProjectID:    projectID,
		Title:        title,
		TaskType:     task.TaskTypeDevelopment,
		Dependencies: deps,
	})
	require.NoError(t, err)
	return created
}

// claimAndStart walks a fresh task to running for tests exercising the later
// transitions
func (e *testEnv) claimAndStart(t *testing.T, taskID int, agentName string) *ent.Task {
	ctx := context.Background()
	_, _, err := e.dispatch.Claim(ctx, taskID, agentName, "")
	require.NoError(t, err)
	started, _, err := e.tasks.StartTask(ctx, taskID, agentName, "")
	require.NoError(t, err)
	return started
}

func (e *testEnv) completeTask(t *testing.T, taskID int) {
	ctx := context.Background()
	tk, err := e.client.Task.Get(ctx, taskID)
	require.NoError(t, err)
	require.Equal(t, task.StatusPending, tk.Status)
	err = tk.Update().SetStatus(task.StatusCompleted).SetCompletedAt(time.Now()).Exec(ctx)
	require.NoError(t, err)
}
