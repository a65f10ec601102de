// Package api exposes the service operations over HTTP.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/taskfleet/taskfleet/pkg/config"
	"github.com/taskfleet/taskfleet/pkg/database"
	"github.com/taskfleet/taskfleet/pkg/ratelimit"
	"github.com/taskfleet/taskfleet/pkg/services"
	"github.com/taskfleet/taskfleet/pkg/version"
)

// Server wires the service layer to the HTTP routes
type Server struct {
	cfg      *config.Config
	db       *database.Client
	projects *services.ProjectService
	tasks    *services.TaskService
	dispatch *services.DispatchService
	agents   *services.AgentService
	stats    *services.StatsService
	limiter  *ratelimit.Limiter
}

// NewServer creates a new API server over the shared database client
func NewServer(cfg *config.Config, db *database.Client) *Server {
	return &Server{
		cfg:      cfg,
		db:       db,
		projects: services.NewProjectService(db.Client, cfg),
		tasks:    services.NewTaskService(db.Client, cfg),
		dispatch: services.NewDispatchService(db.Client, cfg),
		agents:   services.NewAgentService(db.Client),
		stats:    services.NewStatsService(db.Client),
		limiter:  ratelimit.New(cfg.RateLimit.Window, cfg.RateLimit.MaxRequests, cfg.RateLimit.MaxStoreSize),
	}
}

// Router builds the gin engine with all routes and middleware. Reads are
// open; mutating routes require the API key when one is configured.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(), securityHeaders(), corsMiddleware(s.cfg))

	r.GET("/health", s.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/v1")
	v1.Use(rateLimitMiddleware(s.limiter), storeDeadline(s.cfg))

	// Read surface
	v1.GET("/projects", s.ListProjects)
	v1.GET("/projects/:id", s.GetProject)
	v1.GET("/projects/:id/progress", s.GetProjectProgress)
	v1.GET("/projects/:id/tasks", s.ListProjectTasks)
	v1.GET("/tasks", s.ListTasks)
	v1.GET("/tasks/available", s.ListAvailableTasks)
	v1.GET("/tasks/available-for/:agent", s.ListAvailableTasksForAgent)
	v1.GET("/tasks/:id", s.GetTask)
	v1.GET("/agents", s.ListAgents)
	v1.GET("/agents/:name", s.GetAgent)
	v1.GET("/agents/:name/channels", s.ListAgentChannels)
	v1.GET("/channels/:id/agents", s.ListChannelAgents)
	v1.GET("/dashboard/stats", s.GetDashboardStats)

	// Write surface
	w := v1.Group("")
	w.Use(requireAPIKey(s.cfg))
	w.POST("/projects", s.CreateProject)
	w.PATCH("/projects/:id", s.UpdateProject)
	w.DELETE("/projects/:id", s.DeleteProject)
	w.POST("/projects/:id/restore", s.RestoreProject)
	w.POST("/projects/:id/breakdown", s.BreakdownProject)
	w.POST("/tasks", s.CreateTask)
	w.PATCH("/tasks/:id", s.UpdateTask)
	w.DELETE("/tasks/:id", s.DeleteTask)
	w.POST("/tasks/:id/restore", s.RestoreTask)
	w.POST("/tasks/:id/claim", s.ClaimTask)
	w.POST("/tasks/:id/start", s.StartTask)
	w.POST("/tasks/:id/submit", s.SubmitTask)
	w.POST("/tasks/:id/review", s.ReviewTask)
	w.POST("/tasks/:id/release", s.ReleaseTask)
	w.POST("/tasks/:id/retry", s.RetryTask)
	w.POST("/tasks/:id/cancel", s.CancelTask)
	w.POST("/agents", s.RegisterAgent)
	w.POST("/agents/:name/heartbeat", s.Heartbeat)
	w.DELETE("/agents/:name", s.UnregisterAgent)
	w.POST("/agent-channels", s.BindChannel)
	w.DELETE("/agent-channels", s.UnbindChannel)

	return r
}

// Health reports service and database health
func (s *Server) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  version.Full(),
		"database": dbHealth,
	})
}
