package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/taskfleet/taskfleet/pkg/models"
)

func pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, errorBody{Code: "validation", Message: "invalid id"})
		return 0, false
	}
	return id, true
}

// CreateProject handles POST /v1/projects
func (s *Server) CreateProject(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "validation", Message: "invalid request body"})
		return
	}
	created, err := s.projects.CreateProject(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetProject handles GET /v1/projects/:id
func (s *Server) GetProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	p, err := s.projects.GetProject(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// ListProjects handles GET /v1/projects
func (s *Server) ListProjects(c *gin.Context) {
	filters := models.ProjectFilters{
		Status: c.Query("status"),
		Limit:  intQuery(c, "limit"),
		Offset: intQuery(c, "offset"),
	}
	list, err := s.projects.ListProjects(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UpdateProject handles PATCH /v1/projects/:id
func (s *Server) UpdateProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "validation", Message: "invalid request body"})
		return
	}
	updated, err := s.projects.UpdateProject(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// GetProjectProgress handles GET /v1/projects/:id/progress
func (s *Server) GetProjectProgress(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	progress, err := s.projects.GetProgress(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// ListProjectTasks handles GET /v1/projects/:id/tasks
func (s *Server) ListProjectTasks(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	filters := models.TaskFilters{
		ProjectID: id,
		Status:    statusQuery(c),
		TaskType:  c.Query("task_type"),
		Assignee:  c.Query("assignee"),
		Limit:     intQuery(c, "limit"),
		Offset:    intQuery(c, "offset"),
	}
	list, err := s.tasks.ListTasks(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// BreakdownProject handles POST /v1/projects/:id/breakdown
func (s *Server) BreakdownProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.ProjectBreakdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "validation", Message: "invalid request body"})
		return
	}
	created, err := s.projects.Breakdown(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, models.ProjectBreakdownResponse{Tasks: created})
}

// DeleteProject handles DELETE /v1/projects/:id
func (s *Server) DeleteProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.projects.SoftDeleteProject(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RestoreProject handles POST /v1/projects/:id/restore
func (s *Server) RestoreProject(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.projects.RestoreProject(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func intQuery(c *gin.Context, name string) int {
	n, _ := strconv.Atoi(c.Query(name))
	return n
}
