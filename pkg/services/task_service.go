package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/taskfleet/taskfleet/ent"
	"github.com/taskfleet/taskfleet/ent/project"
	"github.com/taskfleet/taskfleet/ent/task"
	"github.com/taskfleet/taskfleet/ent/tasklog"
	"github.com/taskfleet/taskfleet/ent/tasktypedefault"
	"github.com/taskfleet/taskfleet/pkg/config"
	"github.com/taskfleet/taskfleet/pkg/models"
)

// TaskService manages task creation and the lifecycle state machine.
// Every transition runs in a single transaction that checks the expected
// source state, verifies the actor where the transition is holder-only,
// appends one audit log entry, and updates the agent rollup.
type TaskService struct {
	client *ent.Client
	cfg    *config.Config
}

// NewTaskService creates a new TaskService
func NewTaskService(client *ent.Client, cfg *config.Config) *TaskService {
	return &TaskService{client: client, cfg: cfg}
}

// CreateTask validates and inserts a new pending task
func (s *TaskService) CreateTask(ctx context.Context, req models.CreateTaskRequest) (*ent.Task, error) {
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if req.ProjectID <= 0 {
		return nil, NewValidationError("project_id", "required")
	}
	if err := task.TaskTypeValidator(req.TaskType); err != nil {
		return nil, NewValidationError("task_type", fmt.Sprintf("unknown task type %q", req.TaskType))
	}
	if req.Priority != 0 && (req.Priority < 1 || req.Priority > 10) {
		return nil, NewValidationError("priority", "must be between 1 and 10")
	}

	exists, err := s.client.Project.Query().
		Where(project.IDEQ(req.ProjectID), project.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check project: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	if err := validateDependencies(ctx, s.client, req.ProjectID, nil, req.Dependencies); err != nil {
		return nil, err
	}

	defaults, err := s.typeDefaults(ctx, req.TaskType)
	if err != nil {
		return nil, err
	}

	priority := req.Priority
	if priority == 0 {
		priority = 5
		if defaults != nil {
			priority = defaults.Priority
		}
	}
	maxRetries := 3
	if defaults != nil {
		maxRetries = defaults.MaxRetries
	}
	if req.MaxRetries != nil {
		maxRetries = *req.MaxRetries
	}

	var created *ent.Task
	err = runTx(ctx, s.client, s.cfg, func(ctx context.Context, tx *ent.Tx) error {
		builder := tx.Task.Create().
			SetProjectID(req.ProjectID).
			SetTitle(req.Title).
			SetDescription(req.Description).
			SetTaskType(req.TaskType).
			SetStatus(task.StatusPending).
			SetPriority(priority).
			SetReviewerID(req.ReviewerID).
			SetAcceptanceCriteria(req.AcceptanceCriteria).
			SetDependencies(pq.Int64Array(req.Dependencies)).
			SetTaskTags(pq.StringArray(req.TaskTags)).
			SetEstimatedHours(req.EstimatedHours).
			SetMaxRetries(maxRetries).
			SetCreatedBy(req.CreatedBy)
		if req.ParentTaskID != nil {
			builder.SetParentTaskID(*req.ParentTaskID)
		}
		if req.TimeoutMinutes != nil {
			builder.SetTimeoutMinutes(*req.TimeoutMinutes)
		}
		if req.DueAt != nil {
			builder.SetDueAt(*req.DueAt)
		}

		created, err = builder.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to create task: %w", err)
		}

		actor := req.CreatedBy
		if actor == "" {
			actor = "system"
		}
		return logTransition(ctx, tx, created.ID, "created", "", task.StatusPending, actor, "")
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// GetTask retrieves a task with its audit trail
func (s *TaskService) GetTask(ctx context.Context, taskID int) (*models.TaskDetailResponse, error) {
	t, err := s.client.Task.Query().
		Where(task.IDEQ(taskID), task.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

	logs, err := s.client.TaskLog.Query().
		Where(tasklog.TaskIDEQ(taskID)).
		Order(ent.Asc(tasklog.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get task logs: %w", err)
	}

	return &models.TaskDetailResponse{Task: t, Logs: logs}, nil
}

// ListTasks lists tasks with filtering and pagination
func (s *TaskService) ListTasks(ctx context.Context, filters models.TaskFilters) (*models.TaskListResponse, error) {
	query := s.client.Task.Query()

	if filters.ProjectID > 0 {
		query = query.Where(task.ProjectIDEQ(filters.ProjectID))
	}
	if filters.Status != "" {
		if err := task.StatusValidator(filters.Status); err != nil {
			return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", filters.Status))
		}
		query = query.Where(task.StatusEQ(filters.Status))
	}
	if filters.TaskType != "" {
		query = query.Where(task.TaskTypeEQ(task.TaskType(filters.TaskType)))
	}
	if filters.Assignee != "" {
		query = query.Where(task.AssigneeEQ(filters.Assignee))
	}
	if !filters.IncludeDeleted {
		query = query.Where(task.DeletedAtIsNil())
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	tasks, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(task.FieldPriority), ent.Asc(task.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return &models.TaskListResponse{
		Tasks:      tasks,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateTask patches a task's structural fields. Only unclaimed (pending)
// tasks accept updates; status, result, assignee, and feedback are owned by
// the lifecycle transitions and never change through this path.
func (s *TaskService) UpdateTask(ctx context.Context, taskID int, req models.UpdateTaskRequest) (*ent.Task, error) {
	if req.Priority != nil && (*req.Priority < 1 || *req.Priority > 10) {
		return nil, NewValidationError("priority", "must be between 1 and 10")
	}

	var updated *ent.Task
	err := runTx(ctx, s.client, s.cfg, func(ctx context.Context, tx *ent.Tx) error {
		t, err := s.lockTask(ctx, tx, taskID)
		if err != nil {
			return err
		}
		if t.Status != task.StatusPending {
			return ErrStateConflict
		}

		if req.Dependencies != nil {
			if err := validateDependencies(ctx, s.client, t.ProjectID, &taskID, *req.Dependencies); err != nil {
				return err
			}
		}

		update := t.Update()
		if req.Title != nil {
			update.SetTitle(*req.Title)
		}
		if req.Description != nil {
			update.SetDescription(*req.Description)
		}
		if req.Priority != nil {
			update.SetPriority(*req.Priority)
		}
		if req.ReviewerID != nil {
			update.SetReviewerID(*req.ReviewerID)
		}
		if req.AcceptanceCriteria != nil {
			update.SetAcceptanceCriteria(*req.AcceptanceCriteria)
		}
		if req.Dependencies != nil {
			update.SetDependencies(pq.Int64Array(*req.Dependencies))
		}
		if req.TaskTags != nil {
			update.SetTaskTags(pq.StringArray(*req.TaskTags))
		}
		if req.EstimatedHours != nil {
			update.SetEstimatedHours(*req.EstimatedHours)
		}
		if req.TimeoutMinutes != nil {
			update.SetTimeoutMinutes(*req.TimeoutMinutes)
		}
		if req.MaxRetries != nil {
			update.SetMaxRetries(*req.MaxRetries)
		}
		if req.DueAt != nil {
			update.SetDueAt(*req.DueAt)
		}

		updated, err = update.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to update task: %w", err)
		}

		return logTransition(ctx, tx, taskID, "updated", t.Status, t.Status, "system", "")
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// StartTask transitions assigned -> running for the holder. An agent may have
// at most one running task at a time.
func (s *TaskService) StartTask(ctx context.Context, taskID int, agentName, idemKey string) (*ent.Task, string, error) {
	if agentName == "" {
		return nil, "", NewValidationError("agent_name", "required")
	}

	var updated *ent.Task
	var replay string
	err := runTx(ctx, s.client, s.cfg, func(ctx context.Context, tx *ent.Tx) error {
		updated, replay = nil, ""

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

		t, err := s.lockTask(ctx, tx, taskID)
		if err != nil {
			return err
		}
		if t.Status != task.StatusAssigned {
			return ErrStateConflict
		}
		if t.Assignee == nil || *t.Assignee != agentName {
			return ErrForbidden
		}

		// The agent row lock serializes parallel starts by the same holder;
		// without it two assigned tasks could both pass the check below and
		// commit two running tasks. An unregistered holder keeps its
		// in-flight work, so a missing row is tolerated.
		if _, err := lockAgent(ctx, tx, agentName); err != nil && !errors.Is(err, ErrNotFound) {
			return err
		}

		otherRunning, err := tx.Task.Query().
			Where(
				task.AssigneeEQ(agentName),
				task.StatusEQ(task.StatusRunning),
				task.IDNEQ(taskID),
				task.DeletedAtIsNil(),
			).
			Exist(ctx)
		if err != nil {
			return fmt.Errorf("failed to check running tasks: %w", err)
		}
		if otherRunning {
			return ErrStateConflict
		}

		updated, err = t.Update().
			SetStatus(task.StatusRunning).
			SetStartedAt(time.Now()).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to start task: %w", err)
		}

		if err := logTransition(ctx, tx, taskID, "started", task.StatusAssigned, task.StatusRunning, agentName, ""); err != nil {
			return err
		}
		if err := rollupAgent(ctx, tx, agentName, true); err != nil {
			return err
		}
		return recordResponse(ctx, tx, idemKey, updated)
	})
	if err != nil {
		return nil, "", err
	}
	return updated, replay, nil
}

// SubmitTask transitions running -> reviewing and records the work result
func (s *TaskService) SubmitTask(ctx context.Context, taskID int, req models.SubmitTaskRequest, idemKey string) (*ent.Task, string, error) {
	if req.AgentName == "" {
		return nil, "", NewValidationError("agent_name", "required")
	}

	var updated *ent.Task
	var replay string
	err := runTx(ctx, s.client, s.cfg, func(ctx context.Context, tx *ent.Tx) error {
		updated, replay = nil, ""

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

		t, err := s.lockTask(ctx, tx, taskID)
		if err != nil {
			return err
		}
		if t.Status != task.StatusRunning {
			return ErrStateConflict
		}
		if t.Assignee == nil || *t.Assignee != req.AgentName {
			return ErrForbidden
		}

		update := t.Update().SetStatus(task.StatusReviewing)
		if req.Result != nil {
			update.SetResult(req.Result)
		}
		updated, err = update.Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to submit task: %w", err)
		}

		if err := logTransition(ctx, tx, taskID, "submitted", task.StatusRunning, task.StatusReviewing, req.AgentName, ""); err != nil {
			return err
		}
		if err := rollupAgent(ctx, tx, req.AgentName, true); err != nil {
			return err
		}
		return recordResponse(ctx, tx, idemKey, updated)
	})
	if err != nil {
		return nil, "", err
	}
	return updated, replay, nil
}

// ReviewTask resolves a reviewing task: approval completes it, rejection
// returns feedback to the agent and parks the task until retry.
func (s *TaskService) ReviewTask(ctx context.Context, taskID int, req models.ReviewTaskRequest, idemKey string) (*ent.Task, string, error) {
	if req.ReviewerID == "" {
		return nil, "", NewValidationError("reviewer_id", "required")
	}

	var updated *ent.Task
	var replay string
	err := runTx(ctx, s.client, s.cfg, func(ctx context.Context, tx *ent.Tx) error {
		updated, replay = nil, ""

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

		t, err := s.lockTask(ctx, tx, taskID)
		if err != nil {
			return err
		}
		if t.Status != task.StatusReviewing {
			return ErrStateConflict
		}
		if t.ReviewerID != "" && t.ReviewerID != req.ReviewerID {
			return ErrForbidden
		}

		assignee := ""
		if t.Assignee != nil {
			assignee = *t.Assignee
		}

		if req.Approved {
			updated, err = t.Update().
				SetStatus(task.StatusCompleted).
				SetCompletedAt(time.Now()).
				ClearAssignee().
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to complete task: %w", err)
			}
			if err := logTransition(ctx, tx, taskID, "approved", task.StatusReviewing, task.StatusCompleted, req.ReviewerID, req.Feedback); err != nil {
				return err
			}
			if assignee != "" {
				if err := applyTerminalStats(ctx, tx, assignee, task.StatusCompleted); err != nil {
					return err
				}
			}
		} else {
			updated, err = t.Update().
				SetStatus(task.StatusRejected).
				SetFeedback(req.Feedback).
				ClearAssignee().
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to reject task: %w", err)
			}
			if err := logTransition(ctx, tx, taskID, "rejected", task.StatusReviewing, task.StatusRejected, req.ReviewerID, req.Feedback); err != nil {
				return err
			}
		}

		if assignee != "" {
			if err := rollupAgent(ctx, tx, assignee, false); err != nil {
				return err
			}
		}
		return recordResponse(ctx, tx, idemKey, updated)
	})
	if err != nil {
		return nil, "", err
	}
	return updated, replay, nil
}

// ReleaseTask returns a claimed task to the pool. Only the holder may
// release. Releasing a running task follows the reclaim path: the retry
// budget is spent, and an exhausted task fails instead of re-pending.
func (s *TaskService) ReleaseTask(ctx context.Context, taskID int, req models.ReleaseTaskRequest, idemKey string) (*ent.Task, string, error) {
	if req.AgentName == "" {
		return nil, "", NewValidationError("agent_name", "required")
	}

	var updated *ent.Task
	var replay string
	err := runTx(ctx, s.client, s.cfg, func(ctx context.Context, tx *ent.Tx) error {
		updated, replay = nil, ""

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

		t, err := s.lockTask(ctx, tx, taskID)
		if err != nil {
			return err
		}
		if t.Assignee == nil || *t.Assignee != req.AgentName {
			return ErrForbidden
		}

		switch t.Status {
		case task.StatusAssigned:
			updated, err = t.Update().
				SetStatus(task.StatusPending).
				ClearAssignee().
				ClearAssignedAt().
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to release task: %w", err)
			}
			if err := logTransition(ctx, tx, taskID, "released", task.StatusAssigned, task.StatusPending, req.AgentName, req.Reason); err != nil {
				return err
			}

		case task.StatusRunning:
			if t.RetryCount < t.MaxRetries {
				updated, err = t.Update().
					SetStatus(task.StatusPending).
					ClearAssignee().
					ClearAssignedAt().
					SetRetryCount(t.RetryCount + 1).
					Save(ctx)
				if err != nil {
					return fmt.Errorf("failed to release task: %w", err)
				}
				if err := logTransition(ctx, tx, taskID, "released", task.StatusRunning, task.StatusPending, req.AgentName, req.Reason); err != nil {
					return err
				}
			} else {
				updated, err = t.Update().
					SetStatus(task.StatusFailed).
					ClearAssignee().
					SetCompletedAt(time.Now()).
					Save(ctx)
				if err != nil {
					return fmt.Errorf("failed to fail task: %w", err)
				}
				if err := logTransition(ctx, tx, taskID, "failed", task.StatusRunning, task.StatusFailed, req.AgentName, "retry budget exhausted"); err != nil {
					return err
				}
				if err := applyTerminalStats(ctx, tx, req.AgentName, task.StatusFailed); err != nil {
					return err
				}
			}

		default:
			return ErrStateConflict
		}

		if err := rollupAgent(ctx, tx, req.AgentName, true); err != nil {
			return err
		}
		return recordResponse(ctx, tx, idemKey, updated)
	})
	if err != nil {
		return nil, "", err
	}
	return updated, replay, nil
}

// RetryTask returns a failed or rejected task to the pool, bounded by the
// task's retry budget. Feedback from a rejection is preserved.
func (s *TaskService) RetryTask(ctx context.Context, taskID int, idemKey string) (*ent.Task, string, error) {
	var updated *ent.Task
	var replay string
	err := runTx(ctx, s.client, s.cfg, func(ctx context.Context, tx *ent.Tx) error {
		updated, replay = nil, ""

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

		t, err := s.lockTask(ctx, tx, taskID)
		if err != nil {
			return err
		}
		if t.Status != task.StatusFailed && t.Status != task.StatusRejected {
			return ErrStateConflict
		}
		if t.RetryCount >= t.MaxRetries {
			return ErrRetriesExhausted
		}

		updated, err = t.Update().
			SetStatus(task.StatusPending).
			SetRetryCount(t.RetryCount + 1).
			ClearAssignedAt().
			ClearCompletedAt().
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to retry task: %w", err)
		}

		if err := logTransition(ctx, tx, taskID, "retried", t.Status, task.StatusPending, "system", ""); err != nil {
			return err
		}
		return recordResponse(ctx, tx, idemKey, updated)
	})
	if err != nil {
		return nil, "", err
	}
	return updated, replay, nil
}

// CancelTask administratively cancels any non-terminal task
func (s *TaskService) CancelTask(ctx context.Context, taskID int, actor string) (*ent.Task, error) {
	if actor == "" {
		actor = "system"
	}

	var updated *ent.Task
	err := runTx(ctx, s.client, s.cfg, func(ctx context.Context, tx *ent.Tx) error {
		t, err := s.lockTask(ctx, tx, taskID)
		if err != nil {
			return err
		}
		switch t.Status {
		case task.StatusCompleted, task.StatusFailed, task.StatusCancelled:
			return ErrStateConflict
		}

		assignee := ""
		if t.Assignee != nil {
			assignee = *t.Assignee
		}

		updated, err = t.Update().
			SetStatus(task.StatusCancelled).
			ClearAssignee().
			Save(ctx)
		if err != nil {
			return fmt.Errorf("failed to cancel task: %w", err)
		}

		if err := logTransition(ctx, tx, taskID, "cancelled", t.Status, task.StatusCancelled, actor, ""); err != nil {
			return err
		}
		if assignee != "" {
			if err := applyTerminalStats(ctx, tx, assignee, task.StatusCancelled); err != nil {
				return err
			}
			if err := rollupAgent(ctx, tx, assignee, false); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// SoftDeleteTask marks a task deleted; the retention sweep hard-deletes it
// after the retention window
func (s *TaskService) SoftDeleteTask(ctx context.Context, taskID int) error {
	count, err := s.client.Task.Update().
		Where(task.IDEQ(taskID), task.DeletedAtIsNil()).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to soft delete task: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// RestoreTask restores a soft-deleted task
func (s *TaskService) RestoreTask(ctx context.Context, taskID int) error {
	count, err := s.client.Task.Update().
		Where(task.IDEQ(taskID), task.DeletedAtNotNil()).
		ClearDeletedAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore task: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// ReclaimResult summarizes one stuck-sweep pass
type ReclaimResult struct {
	Reclaimed int
	Failed    int
}

// ReclaimStuckTasks transitions running tasks whose time-in-state exceeds
// their effective timeout (task override, else type default, else the global
// default). Tasks with retry budget left return to pending; exhausted tasks
// fail terminally. Each task is handled in its own transaction so one bad
// row cannot wedge the sweep.
func (s *TaskService) ReclaimStuckTasks(ctx context.Context) (ReclaimResult, error) {
	var result ReclaimResult

	running, err := s.client.Task.Query().
		Where(
			task.StatusEQ(task.StatusRunning),
			task.StartedAtNotNil(),
			task.DeletedAtIsNil(),
		).
		All(ctx)
	if err != nil {
		return result, fmt.Errorf("failed to query running tasks: %w", err)
	}

	now := time.Now()
	for _, t := range running {
		timeout, err := s.effectiveTimeout(ctx, t)
		if err != nil {
			return result, err
		}
		if t.StartedAt == nil || now.Sub(*t.StartedAt) <= timeout {
			continue
		}

		reclaimed, failed, err := s.reclaimOne(ctx, t.ID)
		if err != nil {
			return result, err
		}
		if reclaimed {
			result.Reclaimed++
		}
		if failed {
			result.Failed++
		}
	}
	return result, nil
}

func (s *TaskService) reclaimOne(ctx context.Context, taskID int) (reclaimed, failed bool, err error) {
	err = runTx(ctx, s.client, s.cfg, func(ctx context.Context, tx *ent.Tx) error {
		reclaimed, failed = false, false

		t, err := s.lockTask(ctx, tx, taskID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil
			}
			return err
		}
		// Recheck under lock; the assignee may have submitted in the meantime
		if t.Status != task.StatusRunning {
			return nil
		}

		assignee := ""
		if t.Assignee != nil {
			assignee = *t.Assignee
		}

		if t.RetryCount < t.MaxRetries {
			err = t.Update().
				SetStatus(task.StatusPending).
				ClearAssignee().
				ClearAssignedAt().
				SetRetryCount(t.RetryCount + 1).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to reclaim task: %w", err)
			}
			if err := logTransition(ctx, tx, taskID, "reclaimed", task.StatusRunning, task.StatusPending, "system", "timeout exceeded"); err != nil {
				return err
			}
			reclaimed = true
		} else {
			err = t.Update().
				SetStatus(task.StatusFailed).
				ClearAssignee().
				SetCompletedAt(time.Now()).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to fail stuck task: %w", err)
			}
			if err := logTransition(ctx, tx, taskID, "failed", task.StatusRunning, task.StatusFailed, "system", "timeout exceeded, retry budget exhausted"); err != nil {
				return err
			}
			if assignee != "" {
				if err := applyTerminalStats(ctx, tx, assignee, task.StatusFailed); err != nil {
					return err
				}
			}
			failed = true
		}

		if assignee != "" {
			if err := rollupAgent(ctx, tx, assignee, false); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, false, err
	}
	return reclaimed, failed, nil
}

// effectiveTimeout resolves a running task's timeout: per-task override,
// else the type default, else the global default
func (s *TaskService) effectiveTimeout(ctx context.Context, t *ent.Task) (time.Duration, error) {
	if t.TimeoutMinutes != nil {
		return time.Duration(*t.TimeoutMinutes) * time.Minute, nil
	}
	defaults, err := s.typeDefaults(ctx, t.TaskType)
	if err != nil {
		return 0, err
	}
	if defaults != nil {
		return time.Duration(defaults.TimeoutMinutes) * time.Minute, nil
	}
	return s.cfg.Dispatch.DefaultTaskTimeout, nil
}

func (s *TaskService) typeDefaults(ctx context.Context, tt task.TaskType) (*ent.TaskTypeDefault, error) {
	defaults, err := s.client.TaskTypeDefault.Query().
		Where(tasktypedefault.TaskTypeEQ(tasktypedefault.TaskType(tt))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load task type defaults: %w", err)
	}
	return defaults, nil
}

// lockTask loads a task row FOR UPDATE inside tx. Lock order across all
// transitions is task row first, then agent row.
func (s *TaskService) lockTask(ctx context.Context, tx *ent.Tx, taskID int) (*ent.Task, error) {
	t, err := tx.Task.Query().
		Where(task.IDEQ(taskID), task.DeletedAtIsNil()).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock task: %w", err)
	}
	return t, nil
}
