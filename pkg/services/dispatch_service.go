package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lib/pq"
	"github.com/taskfleet/taskfleet/ent"
	"github.com/taskfleet/taskfleet/ent/agent"
	"github.com/taskfleet/taskfleet/ent/predicate"
	"github.com/taskfleet/taskfleet/ent/task"
	"github.com/taskfleet/taskfleet/pkg/config"
	"github.com/taskfleet/taskfleet/pkg/models"
)

// DispatchService selects eligible tasks and performs the atomic claim.
// Eligibility means: pending, not soft-deleted, every dependency completed,
// and (for skill-matched listings) the task's tags intersect the agent's
// skills or the task carries no tags at all.
type DispatchService struct {
	client *ent.Client
	cfg    *config.Config
}

// NewDispatchService creates a new DispatchService
func NewDispatchService(client *ent.Client, cfg *config.Config) *DispatchService {
	return &DispatchService{client: client, cfg: cfg}
}

// dependenciesCompleted is an anti-join over the dependency array: the task
// qualifies when no referenced task is anything other than completed. A
// single predicate keeps candidate enumeration to one query instead of a
// round trip per task.
func dependenciesCompleted() predicate.Task {
	return func(s *sql.Selector) {
		s.Where(sql.P(func(b *sql.Builder) {
			b.WriteString("NOT EXISTS (SELECT 1 FROM tasks AS dep WHERE dep.id = ANY(")
			b.Ident(s.C(task.FieldDependencies))
			b.WriteString(") AND (dep.status <> ")
			b.Arg("completed")
			b.WriteString(" OR dep.deleted_at IS NOT NULL))")
		}))
	}
}

// tagsMatchSkills admits untagged tasks to every agent and tagged tasks only
// where the tag set overlaps the agent's skills
func tagsMatchSkills(skills []string) predicate.Task {
	return func(s *sql.Selector) {
		s.Where(sql.P(func(b *sql.Builder) {
			b.WriteString("(cardinality(")
			b.Ident(s.C(task.FieldTaskTags))
			b.WriteString(") = 0 OR ")
			b.Ident(s.C(task.FieldTaskTags))
			b.WriteString(" && ")
			b.Arg(pq.StringArray(skills))
			b.WriteString(")")
		}))
	}
}

// tagsOverlap filters tasks whose tags intersect the given set
func tagsOverlap(tags []string) predicate.Task {
	return func(s *sql.Selector) {
		s.Where(sql.P(func(b *sql.Builder) {
			b.Ident(s.C(task.FieldTaskTags))
			b.WriteString(" && ")
			b.Arg(pq.StringArray(tags))
		}))
	}
}

// ListAvailable enumerates claimable tasks, highest priority first, FIFO
// within equal priority
func (s *DispatchService) ListAvailable(ctx context.Context, filters models.AvailableTaskFilters) ([]*ent.Task, error) {
	query := s.client.Task.Query().
		Where(
			task.StatusEQ(task.StatusPending),
			task.AssigneeIsNil(),
			task.DeletedAtIsNil(),
			dependenciesCompleted(),
		)

	if filters.ProjectID > 0 {
		query = query.Where(task.ProjectIDEQ(filters.ProjectID))
	}
	if filters.TaskType != "" {
		query = query.Where(task.TaskTypeEQ(task.TaskType(filters.TaskType)))
	}
	if len(filters.Tags) > 0 {
		query = query.Where(tagsOverlap(filters.Tags))
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}

	tasks, err := query.
		Order(ent.Desc(task.FieldPriority), ent.Asc(task.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list available tasks: %w", err)
	}
	return tasks, nil
}

// ListAvailableForAgent enumerates claimable tasks matched to an agent's
// skill set
func (s *DispatchService) ListAvailableForAgent(ctx context.Context, agentName string, filters models.AvailableTaskFilters) ([]*ent.Task, error) {
	ag, err := s.client.Agent.Query().
		Where(agent.NameEQ(agentName), agent.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	query := s.client.Task.Query().
		Where(
			task.StatusEQ(task.StatusPending),
			task.AssigneeIsNil(),
			task.DeletedAtIsNil(),
			dependenciesCompleted(),
			tagsMatchSkills(ag.Skills),
		)
	if filters.ProjectID > 0 {
		query = query.Where(task.ProjectIDEQ(filters.ProjectID))
	}
	if filters.TaskType != "" {
		query = query.Where(task.TaskTypeEQ(task.TaskType(filters.TaskType)))
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}

	tasks, err := query.
		Order(ent.Desc(task.FieldPriority), ent.Asc(task.FieldCreatedAt)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list available tasks: %w", err)
	}
	return tasks, nil
}

// Claim atomically assigns a pending task to an agent. The task row is
// locked FOR UPDATE, dependencies and the per-agent concurrency cap are
// rechecked under the lock, and the assignment, audit log, agent rollup, and
// idempotency record all commit together. Of N racing claims for the same
// task exactly one succeeds; the rest see ErrClaimUnavailable.
func (s *DispatchService) Claim(ctx context.Context, taskID int, agentName, idemKey string) (*ent.Task, string, error) {
	if agentName == "" {
		return nil, "", NewValidationError("agent_name", "required")
	}

	var claimed *ent.Task
	var replay string
	err := runTx(ctx, s.client, s.cfg, func(ctx context.Context, tx *ent.Tx) error {
		claimed, replay = nil, ""

		if idemKey != "" {
			rec, hit, err := lookupIdempotency(ctx, tx, idemKey, s.cfg.Sweep.IdempotencyTTL)
			if err != nil {
				return err
			}
			if hit {
				replay = rec
				return nil
			}
		}

		t, err := tx.Task.Query().
			Where(task.IDEQ(taskID), task.DeletedAtIsNil()).
			ForUpdate().
			Only(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to lock task: %w", err)
		}
		if t.Status != task.StatusPending || t.Assignee != nil {
			return ErrClaimUnavailable
		}

		if len(t.Dependencies) > 0 {
			depIDs := make([]int, 0, len(t.Dependencies))
			for _, dep := range t.Dependencies {
				depIDs = append(depIDs, int(dep))
			}
			done, err := tx.Task.Query().
				Where(
					task.IDIn(depIDs...),
					task.StatusEQ(task.StatusCompleted),
					task.DeletedAtIsNil(),
				).
				Count(ctx)
			if err != nil {
				return fmt.Errorf("failed to check dependencies: %w", err)
			}
			if done != len(depIDs) {
				return ErrClaimUnavailable
			}
		}

		// Agent row lock serializes concurrent claims by the same agent so
		// the cap cannot be overrun by parallel claims of different tasks
		ag, err := lockAgent(ctx, tx, agentName)
		if err != nil {
			return err
		}

		held, err := tx.Task.Query().
			Where(
				task.AssigneeEQ(agentName),
				task.StatusIn(task.StatusAssigned, task.StatusRunning, task.StatusReviewing),
				task.DeletedAtIsNil(),
			).
			Count(ctx)
		if err != nil {
			return fmt.Errorf("failed to count held tasks: %w", err)
		}
		if held >= s.cfg.Dispatch.MaxConcurrentTasksPerAgent {
			return ErrCapExceeded
		}

		now := time.Now()
		claimed, err = t.Update().
			SetStatus(task.StatusAssigned).
			SetAssignee(agentName).
			SetAssignedAt(now).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to claim task: %w", err)
		}

		if err := logTransition(ctx, tx, taskID, "claimed", task.StatusPending, task.StatusAssigned, agentName, ""); err != nil {
			return err
		}

		err = ag.Update().
			SetStatus(agent.StatusBusy).
			SetLastHeartbeat(now).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to update agent: %w", err)
		}

		return recordResponse(ctx, tx, idemKey, claimed)
	})
	if err != nil {
		return nil, "", err
	}
	return claimed, replay, nil
}
