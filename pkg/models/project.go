package models

import (
	"github.com/taskfleet/taskfleet/ent"
)

// CreateProjectRequest contains fields for creating a project
type CreateProjectRequest struct {
	Name        string `json:"name"`
	ChannelID   string `json:"channel_id,omitempty"`
	Description string `json:"description,omitempty"`
}

// UpdateProjectRequest contains the mutable fields of a project
type UpdateProjectRequest struct {
	ChannelID   *string `json:"channel_id,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// ProjectFilters contains filtering options for listing projects
type ProjectFilters struct {
	Status         string `json:"status,omitempty"`
	Limit          int    `json:"limit,omitempty"`
	Offset         int    `json:"offset,omitempty"`
	IncludeDeleted bool   `json:"include_deleted,omitempty"`
}

// ProjectResponse wraps a Project with optional loaded edges
type ProjectResponse struct {
	*ent.Project
}

// ProjectListResponse contains a paginated project list
type ProjectListResponse struct {
	Projects   []*ent.Project `json:"projects"`
	TotalCount int            `json:"total_count"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}

// ProjectProgress summarizes task completion for a project
type ProjectProgress struct {
	ProjectID      int            `json:"project_id"`
	TotalTasks     int            `json:"total_tasks"`
	StatusCounts   map[string]int `json:"status_counts"`
	CompletedTasks int            `json:"completed_tasks"`
	PercentDone    float64        `json:"percent_done"`
}

// BreakdownTask is one task in a project breakdown. Dependencies refer to
// other entries in the same breakdown by their zero-based index.
type BreakdownTask struct {
	Title              string   `json:"title"`
	Description        string   `json:"description,omitempty"`
	TaskType           string   `json:"task_type"`
	Priority           int      `json:"priority,omitempty"`
	AcceptanceCriteria string   `json:"acceptance_criteria,omitempty"`
	DependsOn          []int    `json:"depends_on,omitempty"`
	TaskTags           []string `json:"task_tags,omitempty"`
	EstimatedHours     float64  `json:"estimated_hours,omitempty"`
}

// ProjectBreakdownRequest creates a batch of interdependent tasks atomically.
// The batch is rejected as a whole if any entry is invalid or the
// dependency graph has a cycle.
type ProjectBreakdownRequest struct {
	Tasks     []BreakdownTask `json:"tasks"`
	CreatedBy string          `json:"created_by,omitempty"`
}

// ProjectBreakdownResponse lists the created tasks in insertion order
type ProjectBreakdownResponse struct {
	Tasks []*ent.Task `json:"tasks"`
}
