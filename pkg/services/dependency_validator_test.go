package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDependencies(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	proj := env.mkProject(t, "validator-project")

	a := env.mkTask(t, proj.ID, "a")
	b := env.mkTask(t, proj.ID, "b", int64(a.ID))

	t.Run("accepts valid set", func(t *testing.T) {
		err := validateDependencies(ctx, env.client, proj.ID, nil, []int64{int64(a.ID), int64(b.ID)})
		assert.NoError(t, err)
	})

	t.Run("empty set is valid", func(t *testing.T) {
		err := validateDependencies(ctx, env.client, proj.ID, nil, nil)
		assert.NoError(t, err)
	})

	t.Run("rejects non-positive id", func(t *testing.T) {
		err := validateDependencies(ctx, env.client, proj.ID, nil, []int64{0})
		assert.True(t, IsDependencyError(err))
		err = validateDependencies(ctx, env.client, proj.ID, nil, []int64{-1})
		assert.True(t, IsDependencyError(err))
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		err := validateDependencies(ctx, env.client, proj.ID, nil, []int64{int64(a.ID), int64(a.ID)})
		assert.True(t, IsDependencyError(err))
	})

	t.Run("rejects self-reference", func(t *testing.T) {
		id := a.ID
		err := validateDependencies(ctx, env.client, proj.ID, &id, []int64{int64(a.ID)})
		assert.True(t, IsDependencyError(err))
	})

	t.Run("rejects missing task", func(t *testing.T) {
		err := validateDependencies(ctx, env.client, proj.ID, nil, []int64{999999})
		assert.True(t, IsDependencyError(err))
	})

	t.Run("rejects soft-deleted dependency", func(t *testing.T) {
		ghost := env.mkTask(t, proj.ID, "ghost")
		require.NoError(t, env.tasks.SoftDeleteTask(ctx, ghost.ID))
		err := validateDependencies(ctx, env.client, proj.ID, nil, []int64{int64(ghost.ID)})
		assert.True(t, IsDependencyError(err))
	})

	t.Run("detects transitive cycle", func(t *testing.T) {
		c := env.mkTask(t, proj.ID, "c", int64(b.ID))
		// a <- b <- c; adding c as a dependency of a closes the loop
		id := a.ID
		err := validateDependencies(ctx, env.client, proj.ID, &id, []int64{int64(c.ID)})
		assert.True(t, IsDependencyError(err))
	})
}
