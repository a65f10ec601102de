package sweeper

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskfleet/taskfleet/ent/agent"
	"github.com/taskfleet/taskfleet/pkg/config"
	"github.com/taskfleet/taskfleet/pkg/services"
	"github.com/taskfleet/taskfleet/test/util"
)

func TestSweeper_RunsAllSweeps(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	cfg := &config.Config{
		DBCommandTimeout: 5 * time.Second,
		Dispatch: config.DispatchConfig{
			MaxConcurrentTasksPerAgent: 3,
			DefaultTaskTimeout:         time.Hour,
		},
		Sweep: config.SweepConfig{
			HeartbeatInterval:   50 * time.Millisecond,
			OfflineThreshold:    5 * time.Minute,
			StuckInterval:       50 * time.Millisecond,
			GCInterval:          50 * time.Millisecond,
			IdempotencyTTL:      24 * time.Hour,
			SoftDeleteRetention: 30 * 24 * time.Hour,
			GCBatchSize:         100,
		},
	}

	agents := services.NewAgentService(client)

	// One stale agent for the heartbeat sweep, one expired key for GC
	err := client.Agent.Create().
		SetName("stale").
		SetRole(agent.RoleDeveloper).
		SetStatus(agent.StatusOnline).
		SetLastHeartbeat(time.Now().Add(-time.Hour)).
		Exec(ctx)
	require.NoError(t, err)
	err = client.IdempotencyKey.Create().
		SetID("old-key").
		SetResponse(`{}`).
		SetCreatedAt(time.Now().Add(-48 * time.Hour)).
		Exec(ctx)
	require.NoError(t, err)

	sweeps := NewService(cfg,
		services.NewTaskService(client, cfg),
		agents,
		services.NewRetentionService(client, cfg),
	)
	sweeps.Start(ctx)

	// Each loop runs its sweep immediately on start
	assert.Eventually(t, func() bool {
		ag, err := agents.GetAgent(ctx, "stale")
		if err != nil {
			return false
		}
		return ag.Status == agent.StatusOffline
	}, 3*time.Second, 20*time.Millisecond)

	assert.Eventually(t, func() bool {
		n, err := client.IdempotencyKey.Query().Count(ctx)
		return err == nil && n == 0
	}, 3*time.Second, 20*time.Millisecond)

	sweeps.Stop()
	// Stop is idempotent
	sweeps.Stop()
}

func TestSweeper_StopBeforeStart(t *testing.T) {
	sweeps := NewService(&config.Config{}, nil, nil, nil)
	sweeps.Stop()
}
