package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/taskfleet/taskfleet/ent/task"
	"github.com/taskfleet/taskfleet/pkg/metrics"
	"github.com/taskfleet/taskfleet/pkg/models"
	"github.com/taskfleet/taskfleet/pkg/services"
)

func statusQuery(c *gin.Context) task.Status {
	return task.Status(c.Query("status"))
}

func idempotencyKey(c *gin.Context) string {
	return c.GetHeader("Idempotency-Key")
}

// replay writes a recorded idempotency response verbatim
func replay(c *gin.Context, body string) {
	metrics.IdempotentReplays.Inc()
	c.Data(http.StatusOK, "application/json", []byte(body))
}

// CreateTask handles POST /v1/tasks
func (s *Server) CreateTask(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "validation", Message: "invalid request body"})
		return
	}
	created, err := s.tasks.CreateTask(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetTask handles GET /v1/tasks/:id
func (s *Server) GetTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	detail, err := s.tasks.GetTask(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, detail)
}

// ListTasks handles GET /v1/tasks
func (s *Server) ListTasks(c *gin.Context) {
	filters := models.TaskFilters{
		ProjectID: intQuery(c, "project_id"),
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

// UpdateTask handles PATCH /v1/tasks/:id
func (s *Server) UpdateTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "validation", Message: "invalid request body"})
		return
	}
	updated, err := s.tasks.UpdateTask(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// ListAvailableTasks handles GET /v1/tasks/available
func (s *Server) ListAvailableTasks(c *gin.Context) {
	filters := models.AvailableTaskFilters{
		ProjectID: intQuery(c, "project_id"),
		TaskType:  c.Query("task_type"),
		Limit:     intQuery(c, "limit"),
	}
	if tags := c.Query("tags"); tags != "" {
		filters.Tags = strings.Split(tags, ",")
	}
	tasks, err := s.dispatch.ListAvailable(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// ListAvailableTasksForAgent handles GET /v1/tasks/available-for/:agent
func (s *Server) ListAvailableTasksForAgent(c *gin.Context) {
	filters := models.AvailableTaskFilters{
		ProjectID: intQuery(c, "project_id"),
		TaskType:  c.Query("task_type"),
		Limit:     intQuery(c, "limit"),
	}
	tasks, err := s.dispatch.ListAvailableForAgent(c.Request.Context(), c.Param("agent"), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

// ClaimTask handles POST /v1/tasks/:id/claim
func (s *Server) ClaimTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.ClaimTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "validation", Message: "invalid request body"})
		return
	}
	claimed, recorded, err := s.dispatch.Claim(c.Request.Context(), id, req.AgentName, idempotencyKey(c))
	if err != nil {
		if errors.Is(err, services.ErrClaimUnavailable) || errors.Is(err, services.ErrCapExceeded) {
			metrics.ClaimConflicts.Inc()
		}
		respondError(c, err)
		return
	}
	if recorded != "" {
		replay(c, recorded)
		return
	}
	metrics.TasksClaimed.Inc()
	c.JSON(http.StatusOK, claimed)
}

// StartTask handles POST /v1/tasks/:id/start
func (s *Server) StartTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.ClaimTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "validation", Message: "invalid request body"})
		return
	}
	started, recorded, err := s.tasks.StartTask(c.Request.Context(), id, req.AgentName, idempotencyKey(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if recorded != "" {
		replay(c, recorded)
		return
	}
	c.JSON(http.StatusOK, started)
}

// SubmitTask handles POST /v1/tasks/:id/submit
func (s *Server) SubmitTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.SubmitTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "validation", Message: "invalid request body"})
		return
	}
	submitted, recorded, err := s.tasks.SubmitTask(c.Request.Context(), id, req, idempotencyKey(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if recorded != "" {
		replay(c, recorded)
		return
	}
	c.JSON(http.StatusOK, submitted)
}

// ReviewTask handles POST /v1/tasks/:id/review
func (s *Server) ReviewTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.ReviewTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "validation", Message: "invalid request body"})
		return
	}
	reviewed, recorded, err := s.tasks.ReviewTask(c.Request.Context(), id, req, idempotencyKey(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if recorded != "" {
		replay(c, recorded)
		return
	}
	c.JSON(http.StatusOK, reviewed)
}

// ReleaseTask handles POST /v1/tasks/:id/release
func (s *Server) ReleaseTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req models.ReleaseTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "validation", Message: "invalid request body"})
		return
	}
	released, recorded, err := s.tasks.ReleaseTask(c.Request.Context(), id, req, idempotencyKey(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if recorded != "" {
		replay(c, recorded)
		return
	}
	c.JSON(http.StatusOK, released)
}

// RetryTask handles POST /v1/tasks/:id/retry
func (s *Server) RetryTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	retried, recorded, err := s.tasks.RetryTask(c.Request.Context(), id, idempotencyKey(c))
	if err != nil {
		respondError(c, err)
		return
	}
	if recorded != "" {
		replay(c, recorded)
		return
	}
	c.JSON(http.StatusOK, retried)
}

// CancelTask handles POST /v1/tasks/:id/cancel
func (s *Server) CancelTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	cancelled, err := s.tasks.CancelTask(c.Request.Context(), id, c.Query("actor"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, cancelled)
}

// DeleteTask handles DELETE /v1/tasks/:id
func (s *Server) DeleteTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.tasks.SoftDeleteTask(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RestoreTask handles POST /v1/tasks/:id/restore
func (s *Server) RestoreTask(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := s.tasks.RestoreTask(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
