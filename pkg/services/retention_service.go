package services

import (
	"context"
	"fmt"
	"time"

	"github.com/taskfleet/taskfleet/ent"
	"github.com/taskfleet/taskfleet/ent/agent"
	"github.com/taskfleet/taskfleet/ent/idempotencykey"
	"github.com/taskfleet/taskfleet/ent/project"
	"github.com/taskfleet/taskfleet/ent/task"
	"github.com/taskfleet/taskfleet/pkg/config"
)

// RetentionService hard-deletes expired idempotency keys and rows past the
// soft-delete retention window. All deletes run in bounded batches so the
// sweep never holds long locks.
type RetentionService struct {
	client *ent.Client
	cfg    *config.Config
}

// NewRetentionService creates a new RetentionService
func NewRetentionService(client *ent.Client, cfg *config.Config) *RetentionService {
	return &RetentionService{client: client, cfg: cfg}
}

// PurgeExpiredIdempotencyKeys deletes idempotency records older than the TTL
func (s *RetentionService) PurgeExpiredIdempotencyKeys(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.cfg.Sweep.IdempotencyTTL)
	total := 0

	for {
		keys, err := s.client.IdempotencyKey.Query().
			Where(idempotencykey.CreatedAtLT(cutoff)).
			Limit(s.cfg.Sweep.GCBatchSize).
			IDs(ctx)
		if err != nil {
			return total, fmt.Errorf("failed to query expired idempotency keys: %w", err)
		}
		if len(keys) == 0 {
			return total, nil
		}

		n, err := s.client.IdempotencyKey.Delete().
			Where(idempotencykey.IDIn(keys...)).
			Exec(ctx)
		if err != nil {
			return total, fmt.Errorf("failed to delete idempotency keys: %w", err)
		}
		total += n
		if n < s.cfg.Sweep.GCBatchSize {
			return total, nil
		}
	}
}

// PurgeSoftDeleted hard-deletes tasks, agents, and projects whose
// soft-delete timestamp is older than the retention window. Project deletes
// cascade to their tasks, task deletes to their logs.
func (s *RetentionService) PurgeSoftDeleted(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-s.cfg.Sweep.SoftDeleteRetention)
	total := 0

	for {
		ids, err := s.client.Task.Query().
			Where(task.DeletedAtNotNil(), task.DeletedAtLT(cutoff)).
			Limit(s.cfg.Sweep.GCBatchSize).
			IDs(ctx)
		if err != nil {
			return total, fmt.Errorf("failed to query expired tasks: %w", err)
		}
		if len(ids) == 0 {
			break
		}
		n, err := s.client.Task.Delete().Where(task.IDIn(ids...)).Exec(ctx)
		if err != nil {
			return total, fmt.Errorf("failed to delete tasks: %w", err)
		}
		total += n
		if n < s.cfg.Sweep.GCBatchSize {
			break
		}
	}

	for {
		ids, err := s.client.Agent.Query().
			Where(agent.DeletedAtNotNil(), agent.DeletedAtLT(cutoff)).
			Limit(s.cfg.Sweep.GCBatchSize).
			IDs(ctx)
		if err != nil {
			return total, fmt.Errorf("failed to query expired agents: %w", err)
		}
		if len(ids) == 0 {
			break
		}
		n, err := s.client.Agent.Delete().Where(agent.IDIn(ids...)).Exec(ctx)
		if err != nil {
			return total, fmt.Errorf("failed to delete agents: %w", err)
		}
		total += n
		if n < s.cfg.Sweep.GCBatchSize {
			break
		}
	}

	for {
		ids, err := s.client.Project.Query().
			Where(project.DeletedAtNotNil(), project.DeletedAtLT(cutoff)).
			Limit(s.cfg.Sweep.GCBatchSize).
			IDs(ctx)
		if err != nil {
			return total, fmt.Errorf("failed to query expired projects: %w", err)
		}
		if len(ids) == 0 {
			break
		}
		n, err := s.client.Project.Delete().Where(project.IDIn(ids...)).Exec(ctx)
		if err != nil {
			return total, fmt.Errorf("failed to delete projects: %w", err)
		}
		total += n
		if n < s.cfg.Sweep.GCBatchSize {
			break
		}
	}

	return total, nil
}
