package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/taskfleet/taskfleet/pkg/models"
)

// RegisterAgent handles POST /v1/agents
func (s *Server) RegisterAgent(c *gin.Context) {
	var req models.RegisterAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "validation", Message: "invalid request body"})
		return
	}
	registered, err := s.agents.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, registered)
}

// Heartbeat handles POST /v1/agents/:name/heartbeat. The body is optional;
// agents report the task they are working on alongside the beat.
func (s *Server) Heartbeat(c *gin.Context) {
	var req models.HeartbeatRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorBody{Code: "validation", Message: "invalid request body"})
			return
		}
	}
	ag, err := s.agents.Heartbeat(c.Request.Context(), c.Param("name"), req.CurrentTaskID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ag)
}

// GetAgent handles GET /v1/agents/:name
func (s *Server) GetAgent(c *gin.Context) {
	ag, err := s.agents.GetAgent(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ag)
}

// ListAgents handles GET /v1/agents
func (s *Server) ListAgents(c *gin.Context) {
	filters := models.AgentFilters{
		Role:   c.Query("role"),
		Status: c.Query("status"),
		Skill:  c.Query("skill"),
		Limit:  intQuery(c, "limit"),
		Offset: intQuery(c, "offset"),
	}
	list, err := s.agents.ListAgents(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// UnregisterAgent handles DELETE /v1/agents/:name
func (s *Server) UnregisterAgent(c *gin.Context) {
	if err := s.agents.Unregister(c.Request.Context(), c.Param("name")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// BindChannel handles POST /v1/agent-channels
func (s *Server) BindChannel(c *gin.Context) {
	var req models.BindChannelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorBody{Code: "validation", Message: "invalid request body"})
		return
	}
	binding, err := s.agents.BindChannel(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, binding)
}

// UnbindChannel handles DELETE /v1/agent-channels
func (s *Server) UnbindChannel(c *gin.Context) {
	agentName := c.Query("agent_name")
	channelID := c.Query("channel_id")
	if agentName == "" || channelID == "" {
		c.JSON(http.StatusBadRequest, errorBody{Code: "validation", Message: "agent_name and channel_id are required"})
		return
	}
	if err := s.agents.UnbindChannel(c.Request.Context(), agentName, channelID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListAgentChannels handles GET /v1/agents/:name/channels
func (s *Server) ListAgentChannels(c *gin.Context) {
	channels, err := s.agents.ListChannels(c.Request.Context(), c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"channels": channels})
}

// ListChannelAgents handles GET /v1/channels/:id/agents
func (s *Server) ListChannelAgents(c *gin.Context) {
	agents, err := s.agents.ChannelAgents(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"agents": agents})
}

// GetDashboardStats handles GET /v1/dashboard/stats
func (s *Server) GetDashboardStats(c *gin.Context) {
	stats, err := s.stats.GetDashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
