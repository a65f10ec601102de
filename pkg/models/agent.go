package models

import (
	"github.com/taskfleet/taskfleet/ent"
	"github.com/taskfleet/taskfleet/ent/agent"
)

// RegisterAgentRequest contains fields for registering (or re-registering)
// an agent. Registration is an upsert keyed by name.
type RegisterAgentRequest struct {
	Name         string         `json:"name"`
	Role         agent.Role     `json:"role"`
	Capabilities map[string]any `json:"capabilities,omitempty"`
	Skills       []string       `json:"skills,omitempty"`
}

// HeartbeatRequest refreshes an agent's liveness timestamp. The body is
// optional; a present current_task_id updates the agent's reported task.
type HeartbeatRequest struct {
	CurrentTaskID *int `json:"current_task_id,omitempty"`
}

// AgentFilters contains filtering options for listing agents
type AgentFilters struct {
	Role           string `json:"role,omitempty"`
	Status         string `json:"status,omitempty"`
	Skill          string `json:"skill,omitempty"`
	Limit          int    `json:"limit,omitempty"`
	Offset         int    `json:"offset,omitempty"`
	IncludeDeleted bool   `json:"include_deleted,omitempty"`
}

// AgentListResponse contains a paginated agent list
type AgentListResponse struct {
	Agents     []*ent.Agent `json:"agents"`
	TotalCount int          `json:"total_count"`
	Limit      int          `json:"limit"`
	Offset     int          `json:"offset"`
}

// BindChannelRequest binds an agent to a chat channel
type BindChannelRequest struct {
	AgentName string `json:"agent_name"`
	ChannelID string `json:"channel_id"`
}
