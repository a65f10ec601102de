package services

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/taskfleet/taskfleet/ent"
	"github.com/taskfleet/taskfleet/ent/project"
	"github.com/taskfleet/taskfleet/ent/task"
	"github.com/taskfleet/taskfleet/pkg/config"
	"github.com/taskfleet/taskfleet/pkg/models"
)

// ProjectService manages project lifecycle and batch task breakdown
type ProjectService struct {
	client *ent.Client
	cfg    *config.Config
}

// NewProjectService creates a new ProjectService
func NewProjectService(client *ent.Client, cfg *config.Config) *ProjectService {
	return &ProjectService{client: client, cfg: cfg}
}

// CreateProject creates a new project; names are unique
func (s *ProjectService) CreateProject(ctx context.Context, req models.CreateProjectRequest) (*ent.Project, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}

	builder := s.client.Project.Create().
		SetName(req.Name).
		SetDescription(req.Description)
	if req.ChannelID != "" {
		builder.SetChannelID(req.ChannelID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return created, nil
}

// GetProject retrieves a project by id
func (s *ProjectService) GetProject(ctx context.Context, projectID int) (*ent.Project, error) {
	p, err := s.client.Project.Query().
		Where(project.IDEQ(projectID), project.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// ListProjects lists projects with filtering and pagination
func (s *ProjectService) ListProjects(ctx context.Context, filters models.ProjectFilters) (*models.ProjectListResponse, error) {
	query := s.client.Project.Query()

	if filters.Status != "" {
		if err := project.StatusValidator(project.Status(filters.Status)); err != nil {
			return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", filters.Status))
		}
		query = query.Where(project.StatusEQ(project.Status(filters.Status)))
	}
	if !filters.IncludeDeleted {
		query = query.Where(project.DeletedAtIsNil())
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	projects, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(project.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return &models.ProjectListResponse{
		Projects:   projects,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// UpdateProject patches a project's mutable fields
func (s *ProjectService) UpdateProject(ctx context.Context, projectID int, req models.UpdateProjectRequest) (*ent.Project, error) {
	p, err := s.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	update := p.Update()
	if req.ChannelID != nil {
		if *req.ChannelID == "" {
			update.ClearChannelID()
		} else {
			update.SetChannelID(*req.ChannelID)
		}
	}
	if req.Description != nil {
		update.SetDescription(*req.Description)
	}
	if req.Status != nil {
		if err := project.StatusValidator(project.Status(*req.Status)); err != nil {
			return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", *req.Status))
		}
		update.SetStatus(project.Status(*req.Status))
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return updated, nil
}

// GetProgress summarizes a project's tasks by status
func (s *ProjectService) GetProgress(ctx context.Context, projectID int) (*models.ProjectProgress, error) {
	if _, err := s.GetProject(ctx, projectID); err != nil {
		return nil, err
	}

	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.client.Task.Query().
		Where(task.ProjectIDEQ(projectID), task.DeletedAtIsNil()).
		GroupBy(task.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate task statuses: %w", err)
	}

	progress := &models.ProjectProgress{
		ProjectID:    projectID,
		StatusCounts: make(map[string]int, len(rows)),
	}
	for _, row := range rows {
		progress.StatusCounts[row.Status] = row.Count
		progress.TotalTasks += row.Count
		if row.Status == string(task.StatusCompleted) {
			progress.CompletedTasks = row.Count
		}
	}
	if progress.TotalTasks > 0 {
		progress.PercentDone = 100 * float64(progress.CompletedTasks) / float64(progress.TotalTasks)
	}
	return progress, nil
}

// Breakdown creates a batch of interdependent tasks atomically. Entries
// reference each other by zero-based batch index; the whole batch is
// rejected when any entry is invalid or the index graph has a cycle.
func (s *ProjectService) Breakdown(ctx context.Context, projectID int, req models.ProjectBreakdownRequest) ([]*ent.Task, error) {
	if len(req.Tasks) == 0 {
		return nil, NewValidationError("tasks", "required")
	}
	if _, err := s.GetProject(ctx, projectID); err != nil {
		return nil, err
	}

	for i, entry := range req.Tasks {
		if entry.Title == "" {
			return nil, NewValidationError("title", fmt.Sprintf("required (entry %d)", i))
		}
		if err := task.TaskTypeValidator(task.TaskType(entry.TaskType)); err != nil {
			return nil, NewValidationError("task_type", fmt.Sprintf("unknown task type %q (entry %d)", entry.TaskType, i))
		}
		if entry.Priority != 0 && (entry.Priority < 1 || entry.Priority > 10) {
			return nil, NewValidationError("priority", fmt.Sprintf("must be between 1 and 10 (entry %d)", i))
		}
		for _, dep := range entry.DependsOn {
			if dep < 0 || dep >= len(req.Tasks) {
				return nil, NewDependencyError("entry %d references index %d outside the batch", i, dep)
			}
			if dep == i {
				return nil, NewDependencyError("entry %d depends on itself", i)
			}
		}
	}

	order, err := topoOrder(req.Tasks)
	if err != nil {
		return nil, err
	}

	actor := req.CreatedBy
	if actor == "" {
		actor = "system"
	}

	var created []*ent.Task
	err = runTx(ctx, s.client, s.cfg, func(ctx context.Context, tx *ent.Tx) error {
		// Insert in dependency order so each entry's batch indexes can be
		// rewritten to real task ids
		created = make([]*ent.Task, len(req.Tasks))
		for _, idx := range order {
			entry := req.Tasks[idx]
			deps := make(pq.Int64Array, 0, len(entry.DependsOn))
			for _, dep := range entry.DependsOn {
				deps = append(deps, int64(created[dep].ID))
			}

			priority := entry.Priority
			if priority == 0 {
				priority = 5
			}

			t, err := tx.Task.Create().
				SetProjectID(projectID).
				SetTitle(entry.Title).
				SetDescription(entry.Description).
				SetTaskType(task.TaskType(entry.TaskType)).
				SetStatus(task.StatusPending).
				SetPriority(priority).
				SetAcceptanceCriteria(entry.AcceptanceCriteria).
				SetDependencies(deps).
				SetTaskTags(pq.StringArray(entry.TaskTags)).
				SetEstimatedHours(entry.EstimatedHours).
				SetCreatedBy(req.CreatedBy).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("failed to create task %d of breakdown: %w", idx, err)
			}
			created[idx] = t

			if err := logTransition(ctx, tx, t.ID, "created", "", task.StatusPending, actor, "project breakdown"); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// topoOrder runs Kahn's algorithm over the batch index graph and returns a
// creation order, or a dependency error when the graph has a cycle
func topoOrder(entries []models.BreakdownTask) ([]int, error) {
	indegree := make([]int, len(entries))
	dependents := make([][]int, len(entries))
	for i, entry := range entries {
		indegree[i] = len(entry.DependsOn)
		for _, dep := range entry.DependsOn {
			dependents[dep] = append(dependents[dep], i)
		}
	}

	queue := make([]int, 0, len(entries))
	for i := range entries {
		if indegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	order := make([]int, 0, len(entries))
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		order = append(order, idx)
		for _, next := range dependents[idx] {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(order) != len(entries) {
		return nil, NewDependencyError("breakdown contains a dependency cycle")
	}
	return order, nil
}

// SoftDeleteProject marks a project deleted; its tasks follow at GC time via
// the cascading foreign key
func (s *ProjectService) SoftDeleteProject(ctx context.Context, projectID int) error {
	count, err := s.client.Project.Update().
		Where(project.IDEQ(projectID), project.DeletedAtIsNil()).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to soft delete project: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// RestoreProject restores a soft-deleted project
func (s *ProjectService) RestoreProject(ctx context.Context, projectID int) error {
	count, err := s.client.Project.Update().
		Where(project.IDEQ(projectID), project.DeletedAtNotNil()).
		ClearDeletedAt().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to restore project: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}
