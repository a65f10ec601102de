package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskfleet/taskfleet/ent/idempotencykey"
	"github.com/taskfleet/taskfleet/ent/task"
)

func TestRetentionService_PurgeExpiredIdempotencyKeys(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	retention := NewRetentionService(env.client, env.cfg)

	mkKey := func(key string, age time.Duration) {
		err := env.client.IdempotencyKey.Create().
			SetID(key).
			SetResponse(`{}`).
			SetCreatedAt(time.Now().Add(-age)).
			Exec(ctx)
		require.NoError(t, err)
	}

	mkKey("fresh", time.Hour)
	mkKey("expired-1", 25*time.Hour)
	mkKey("expired-2", 48*time.Hour)

	n, err := retention.PurgeExpiredIdempotencyKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	remaining, err := env.client.IdempotencyKey.Query().IDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, remaining)
}

func TestRetentionService_PurgeExpiredIdempotencyKeys_Batched(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	env.cfg.Sweep.GCBatchSize = 3
	retention := NewRetentionService(env.client, env.cfg)

	for i := 0; i < 10; i++ {
		err := env.client.IdempotencyKey.Create().
			SetID(time.Now().Format("150405.000000000") + string(rune('a'+i))).
			SetResponse(`{}`).
			SetCreatedAt(time.Now().Add(-48 * time.Hour)).
			Exec(ctx)
		require.NoError(t, err)
	}

	n, err := retention.PurgeExpiredIdempotencyKeys(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	count, err := env.client.IdempotencyKey.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRetentionService_PurgeSoftDeleted(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	retention := NewRetentionService(env.client, env.cfg)
	proj := env.mkProject(t, "retention-project")

	oldCutoff := time.Now().Add(-31 * 24 * time.Hour)

	t.Run("purges rows past the retention window", func(t *testing.T) {
		expired := env.mkTask(t, proj.ID, "long gone")
		recent := env.mkTask(t, proj.ID, "recently deleted")
		kept := env.mkTask(t, proj.ID, "never deleted")

		err := env.client.Task.UpdateOneID(expired.ID).SetDeletedAt(oldCutoff).Exec(ctx)
		require.NoError(t, err)
		require.NoError(t, env.tasks.SoftDeleteTask(ctx, recent.ID))

		env.mkAgent(t, "retention-agent")
		err = env.client.Agent.Update().SetDeletedAt(oldCutoff).Exec(ctx)
		require.NoError(t, err)

		n, err := retention.PurgeSoftDeleted(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)

		// Hard-deleted rows are gone even from include-deleted listings
		exists, err := env.client.Task.Query().Where(task.IDEQ(expired.ID)).Exist(ctx)
		require.NoError(t, err)
		assert.False(t, exists)

		exists, err = env.client.Task.Query().Where(task.IDEQ(recent.ID)).Exist(ctx)
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = env.client.Task.Query().Where(task.IDEQ(kept.ID)).Exist(ctx)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("task purge cascades to its logs", func(t *testing.T) {
		doomed := env.mkTask(t, proj.ID, "with logs")
		err := env.client.Task.UpdateOneID(doomed.ID).SetDeletedAt(oldCutoff).Exec(ctx)
		require.NoError(t, err)

		_, err = retention.PurgeSoftDeleted(ctx)
		require.NoError(t, err)

		// The FK cascade removes the task's audit trail with it
		ids, err := env.client.Task.Query().IDs(ctx)
		require.NoError(t, err)
		idSet := make(map[int]bool, len(ids))
		for _, id := range ids {
			idSet[id] = true
		}
		allLogs, err := env.client.TaskLog.Query().All(ctx)
		require.NoError(t, err)
		for _, l := range allLogs {
			assert.True(t, idSet[l.TaskID], "log row orphaned for task %d", l.TaskID)
		}
	})

	t.Run("lookup treats stale keys as misses without purging", func(t *testing.T) {
		err := env.client.IdempotencyKey.Create().
			SetID("stale-key").
			SetResponse(`{"old":true}`).
			SetCreatedAt(time.Now().Add(-25 * time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		tx, err := env.client.Tx(ctx)
		require.NoError(t, err)
		_, hit, err := lookupIdempotency(ctx, tx, "stale-key", env.cfg.Sweep.IdempotencyTTL)
		require.NoError(t, err)
		assert.False(t, hit)
		require.NoError(t, tx.Rollback())

		// The record survives; only the retention sweep deletes
		exists, err := env.client.IdempotencyKey.Query().
			Where(idempotencykey.IDEQ("stale-key")).
			Exist(ctx)
		require.NoError(t, err)
		assert.True(t, exists)
	})
}
