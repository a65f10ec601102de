package services

import (
	"context"
	"database/sql/driver"
	"errors"
	"io"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskfleet/taskfleet/ent"
)

func TestIsTransientStoreError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		transient bool
	}{
		{"nil", nil, false},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"deadlock", &pgconn.PgError{Code: "40P01"}, true},
		{"connection failure", &pgconn.PgError{Code: "08006"}, true},
		{"unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"bad connection", driver.ErrBadConn, true},
		{"unexpected eof", io.ErrUnexpectedEOF, true},
		{"domain error", ErrStateConflict, false},
		{"wrapped transient", errors.Join(errors.New("query"), &pgconn.PgError{Code: "40001"}), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.transient, isTransientStoreError(tt.err))
		})
	}
}

func TestRunTx_RetriesTransientErrors(t *testing.T) {
	env := setupTestEnv(t)

	attempts := 0
	err := runTx(context.Background(), env.client, env.cfg, func(ctx context.Context, tx *ent.Tx) error {
		attempts++
		if attempts == 1 {
			return &pgconn.PgError{Code: "40001"}
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestRunTx_DoesNotRetryDomainErrors(t *testing.T) {
	env := setupTestEnv(t)

	attempts := 0
	err := runTx(context.Background(), env.client, env.cfg, func(ctx context.Context, tx *ent.Tx) error {
		attempts++
		return ErrStateConflict
	})
	assert.ErrorIs(t, err, ErrStateConflict)
	assert.Equal(t, 1, attempts)
}

func TestRunTx_GivesUpAfterBoundedAttempts(t *testing.T) {
	env := setupTestEnv(t)

	attempts := 0
	err := runTx(context.Background(), env.client, env.cfg, func(ctx context.Context, tx *ent.Tx) error {
		attempts++
		return &pgconn.PgError{Code: "40P01"}
	})
	require.Error(t, err)
	var pgErr *pgconn.PgError
	assert.ErrorAs(t, err, &pgErr)
	// Initial attempt plus the bounded retries
	assert.Equal(t, 4, attempts)
}

func TestRunTx_AppliesCommandDeadline(t *testing.T) {
	env := setupTestEnv(t)

	err := runTx(context.Background(), env.client, env.cfg, func(ctx context.Context, tx *ent.Tx) error {
		_, ok := ctx.Deadline()
		assert.True(t, ok, "store context must carry the command deadline")
		return nil
	})
	require.NoError(t, err)
}
