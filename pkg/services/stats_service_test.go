package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_GetDashboardStats(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	stats := NewStatsService(env.client)

	t.Run("empty database", func(t *testing.T) {
		dashboard, err := stats.GetDashboardStats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, dashboard.Projects.Total)
		assert.Equal(t, 0, dashboard.Tasks.Total)
		assert.Equal(t, 0, dashboard.Agents.Total)
		assert.Empty(t, dashboard.RecentActivity)
	})

	t.Run("counts by status", func(t *testing.T) {
		proj := env.mkProject(t, "stats-project")
		env.mkAgent(t, "stats-agent")

		for i := 0; i < 3; i++ {
			env.mkTask(t, proj.ID, "pending task")
		}
		claimed := env.mkTask(t, proj.ID, "claimed task")
		_, _, err := env.dispatch.Claim(ctx, claimed.ID, "stats-agent", "")
		require.NoError(t, err)

		deleted := env.mkTask(t, proj.ID, "deleted task")
		require.NoError(t, env.tasks.SoftDeleteTask(ctx, deleted.ID))

		dashboard, err := stats.GetDashboardStats(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, dashboard.Projects.Total)
		assert.Equal(t, 1, dashboard.Projects.ByStatus["active"])

		// Soft-deleted tasks are excluded
		assert.Equal(t, 4, dashboard.Tasks.Total)
		assert.Equal(t, 3, dashboard.Tasks.ByStatus["pending"])
		assert.Equal(t, 1, dashboard.Tasks.ByStatus["assigned"])

		assert.Equal(t, 1, dashboard.Agents.Total)
		assert.Equal(t, 1, dashboard.Agents.ByStatus["busy"])

		// The audit-log tail rides along, newest first
		require.NotEmpty(t, dashboard.RecentActivity)
		assert.LessOrEqual(t, len(dashboard.RecentActivity), 10)
		actions := make([]string, 0, len(dashboard.RecentActivity))
		for _, l := range dashboard.RecentActivity {
			actions = append(actions, l.Action)
		}
		assert.Contains(t, actions, "claimed")
		// The soft-deleted task's creation is the newest entry
		assert.Equal(t, "created", actions[0])
	})
}
