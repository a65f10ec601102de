// Package models contains request/response models and business domain types.
package models

import (
	"time"

	"github.com/taskfleet/taskfleet/ent"
	"github.com/taskfleet/taskfleet/ent/task"
)

// CreateTaskRequest contains fields for creating a new task
type CreateTaskRequest struct {
	ProjectID          int           `json:"project_id"`
	Title              string        `json:"title"`
	Description        string        `json:"description,omitempty"`
	TaskType           task.TaskType `json:"task_type"`
	Priority           int           `json:"priority,omitempty"`
	ReviewerID         string        `json:"reviewer_id,omitempty"`
	AcceptanceCriteria string        `json:"acceptance_criteria,omitempty"`
	ParentTaskID       *int          `json:"parent_task_id,omitempty"`
	Dependencies       []int64       `json:"dependencies,omitempty"`
	TaskTags           []string      `json:"task_tags,omitempty"`
	EstimatedHours     float64       `json:"estimated_hours,omitempty"`
	TimeoutMinutes     *int          `json:"timeout_minutes,omitempty"`
	MaxRetries         *int          `json:"max_retries,omitempty"`
	CreatedBy          string        `json:"created_by,omitempty"`
	DueAt              *time.Time    `json:"due_at,omitempty"`
}

// UpdateTaskRequest contains the mutable fields of a task. Nil means
// "leave unchanged". Only tasks not yet claimed accept updates.
type UpdateTaskRequest struct {
	Title              *string    `json:"title,omitempty"`
	Description        *string    `json:"description,omitempty"`
	Priority           *int       `json:"priority,omitempty"`
	ReviewerID         *string    `json:"reviewer_id,omitempty"`
	AcceptanceCriteria *string    `json:"acceptance_criteria,omitempty"`
	Dependencies       *[]int64   `json:"dependencies,omitempty"`
	TaskTags           *[]string  `json:"task_tags,omitempty"`
	EstimatedHours     *float64   `json:"estimated_hours,omitempty"`
	TimeoutMinutes     *int       `json:"timeout_minutes,omitempty"`
	MaxRetries         *int       `json:"max_retries,omitempty"`
	DueAt              *time.Time `json:"due_at,omitempty"`
}

// TaskFilters contains filtering options for listing tasks
type TaskFilters struct {
	ProjectID      int         `json:"project_id,omitempty"`
	Status         task.Status `json:"status,omitempty"`
	TaskType       string      `json:"task_type,omitempty"`
	Assignee       string      `json:"assignee,omitempty"`
	Limit          int         `json:"limit,omitempty"`
	Offset         int         `json:"offset,omitempty"`
	IncludeDeleted bool        `json:"include_deleted,omitempty"`
}

// TaskDetailResponse contains a task with its audit trail
type TaskDetailResponse struct {
	*ent.Task
	Logs []*ent.TaskLog `json:"logs"`
}

// TaskListResponse contains a paginated task list
type TaskListResponse struct {
	Tasks      []*ent.Task `json:"tasks"`
	TotalCount int         `json:"total_count"`
	Limit      int         `json:"limit"`
	Offset     int         `json:"offset"`
}

// ClaimTaskRequest contains fields for claiming a specific task
type ClaimTaskRequest struct {
	AgentName string `json:"agent_name"`
}

// SubmitTaskRequest contains the work result submitted by the assignee
type SubmitTaskRequest struct {
	AgentName string         `json:"agent_name"`
	Result    map[string]any `json:"result,omitempty"`
}

// ReviewTaskRequest contains a review verdict for a submitted task
type ReviewTaskRequest struct {
	ReviewerID string `json:"reviewer_id"`
	Approved   bool   `json:"approved"`
	Feedback   string `json:"feedback,omitempty"`
}

// ReleaseTaskRequest contains fields for releasing a claimed task
type ReleaseTaskRequest struct {
	AgentName string `json:"agent_name"`
	Reason    string `json:"reason,omitempty"`
}

// AvailableTaskFilters narrows the eligible-task listing
type AvailableTaskFilters struct {
	ProjectID int      `json:"project_id,omitempty"`
	TaskType  string   `json:"task_type,omitempty"`
	Tags      []string `json:"tags,omitempty"`
	Limit     int      `json:"limit,omitempty"`
}
