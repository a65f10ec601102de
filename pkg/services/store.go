package services

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/taskfleet/taskfleet/ent"
	"github.com/taskfleet/taskfleet/pkg/config"
)

// isTransientStoreError reports whether a store error is safe to retry:
// serialization failures, deadlocks, and connection-level errors. Anything
// else is a real answer from the database and must surface unchanged.
func isTransientStoreError(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// serialization_failure, deadlock_detected, connection exceptions
		return pgErr.Code == "40001" || pgErr.Code == "40P01" || strings.HasPrefix(pgErr.Code, "08")
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// runTx executes fn inside a transaction bounded by the configured command
// timeout, retrying transient store errors a bounded number of times with
// exponential backoff. fn may run more than once and must build all of its
// effects inside the transaction; nothing commits until fn returns nil.
func runTx(ctx context.Context, client *ent.Client, cfg *config.Config, fn func(ctx context.Context, tx *ent.Tx) error) error {
	attempt := func() error {
		attemptCtx := ctx
		if cfg.DBCommandTimeout > 0 {
			var cancel context.CancelFunc
			attemptCtx, cancel = context.WithTimeout(ctx, cfg.DBCommandTimeout)
			defer cancel()
		}

		tx, err := client.Tx(attemptCtx)
		if err != nil {
			return fmt.Errorf("failed to start transaction: %w", err)
		}
		defer func() { _ = tx.Rollback() }()

		if err := fn(attemptCtx, tx); err != nil {
			return err
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit transaction: %w", err)
		}
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 50 * time.Millisecond
	policy.MaxInterval = time.Second

	return backoff.Retry(func() error {
		err := attempt()
		if err == nil || isTransientStoreError(err) {
			return err
		}
		return backoff.Permanent(err)
	}, backoff.WithContext(backoff.WithMaxRetries(policy, 3), ctx))
}
