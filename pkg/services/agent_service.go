package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/lib/pq"
	"github.com/taskfleet/taskfleet/ent"
	"github.com/taskfleet/taskfleet/ent/agent"
	"github.com/taskfleet/taskfleet/ent/agentchannel"
	"github.com/taskfleet/taskfleet/ent/predicate"
	"github.com/taskfleet/taskfleet/pkg/models"
)

// AgentService manages agent registration, liveness, and channel bindings
type AgentService struct {
	client *ent.Client
}

// NewAgentService creates a new AgentService
func NewAgentService(client *ent.Client) *AgentService {
	return &AgentService{client: client}
}

// Register upserts an agent by name. Re-registration refreshes role,
// capabilities, and skills, and brings the agent back online; the rollup
// counters survive.
func (s *AgentService) Register(ctx context.Context, req models.RegisterAgentRequest) (*ent.Agent, error) {
	if req.Name == "" {
		return nil, NewValidationError("name", "required")
	}
	if err := agent.RoleValidator(req.Role); err != nil {
		return nil, NewValidationError("role", fmt.Sprintf("unknown role %q", req.Role))
	}

	existing, err := s.client.Agent.Query().
		Where(agent.NameEQ(req.Name)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up agent: %w", err)
	}

	if existing != nil {
		update := existing.Update().
			SetRole(req.Role).
			SetStatus(agent.StatusOnline).
			SetSkills(pq.StringArray(req.Skills)).
			SetLastHeartbeat(time.Now()).
			ClearDeletedAt()
		if req.Capabilities != nil {
			update.SetCapabilities(req.Capabilities)
		}
		updated, err := update.Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to re-register agent: %w", err)
		}
		return updated, nil
	}

	builder := s.client.Agent.Create().
		SetName(req.Name).
		SetRole(req.Role).
		SetStatus(agent.StatusOnline).
		SetSkills(pq.StringArray(req.Skills)).
		SetLastHeartbeat(time.Now())
	if req.Capabilities != nil {
		builder.SetCapabilities(req.Capabilities)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Concurrent registration of the same name; surface the winner
			return s.client.Agent.Query().Where(agent.NameEQ(req.Name)).Only(ctx)
		}
		return nil, fmt.Errorf("failed to register agent: %w", err)
	}
	return created, nil
}

// Heartbeat refreshes an agent's liveness timestamp. An offline agent that
// heartbeats comes back online; a busy agent stays busy. A non-nil
// currentTaskID updates the agent's reported task (zero clears it); nil
// leaves it untouched.
func (s *AgentService) Heartbeat(ctx context.Context, name string, currentTaskID *int) (*ent.Agent, error) {
	ag, err := s.client.Agent.Query().
		Where(agent.NameEQ(name), agent.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	update := ag.Update().SetLastHeartbeat(time.Now())
	if currentTaskID != nil {
		if *currentTaskID > 0 {
			update.SetCurrentTaskID(*currentTaskID)
		} else {
			update.ClearCurrentTaskID()
		}
	}
	if ag.Status == agent.StatusOffline {
		update.SetStatus(agent.StatusOnline)
	}
	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record heartbeat: %w", err)
	}
	return updated, nil
}

// GetAgent retrieves an agent by name
func (s *AgentService) GetAgent(ctx context.Context, name string) (*ent.Agent, error) {
	ag, err := s.client.Agent.Query().
		Where(agent.NameEQ(name), agent.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	return ag, nil
}

// skillsContain filters agents whose skill set contains the given skill,
// using the array containment operator the skills GIN index serves
func skillsContain(skill string) predicate.Agent {
	return func(s *sql.Selector) {
		s.Where(sql.P(func(b *sql.Builder) {
			b.Ident(s.C(agent.FieldSkills))
			b.WriteString(" @> ")
			b.Arg(pq.StringArray{skill})
		}))
	}
}

// ListAgents lists agents with filtering and pagination
func (s *AgentService) ListAgents(ctx context.Context, filters models.AgentFilters) (*models.AgentListResponse, error) {
	query := s.client.Agent.Query()

	if filters.Skill != "" {
		query = query.Where(skillsContain(filters.Skill))
	}
	if filters.Role != "" {
		if err := agent.RoleValidator(agent.Role(filters.Role)); err != nil {
			return nil, NewValidationError("role", fmt.Sprintf("unknown role %q", filters.Role))
		}
		query = query.Where(agent.RoleEQ(agent.Role(filters.Role)))
	}
	if filters.Status != "" {
		if err := agent.StatusValidator(agent.Status(filters.Status)); err != nil {
			return nil, NewValidationError("status", fmt.Sprintf("unknown status %q", filters.Status))
		}
		query = query.Where(agent.StatusEQ(agent.Status(filters.Status)))
	}
	if !filters.IncludeDeleted {
		query = query.Where(agent.DeletedAtIsNil())
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count agents: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	agents, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Asc(agent.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}

	return &models.AgentListResponse{
		Agents:     agents,
		TotalCount: totalCount,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// Unregister soft-deletes an agent and marks it offline
func (s *AgentService) Unregister(ctx context.Context, name string) error {
	count, err := s.client.Agent.Update().
		Where(agent.NameEQ(name), agent.DeletedAtIsNil()).
		SetStatus(agent.StatusOffline).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to unregister agent: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// BindChannel binds an agent to a channel. Re-binding refreshes last_seen.
// An unknown agent name gets a placeholder registration so channel presence
// can precede formal registration.
func (s *AgentService) BindChannel(ctx context.Context, req models.BindChannelRequest) (*ent.AgentChannel, error) {
	if req.AgentName == "" {
		return nil, NewValidationError("agent_name", "required")
	}
	if req.ChannelID == "" {
		return nil, NewValidationError("channel_id", "required")
	}

	known, err := s.client.Agent.Query().
		Where(agent.NameEQ(req.AgentName)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check agent: %w", err)
	}
	if !known {
		_, err = s.Register(ctx, models.RegisterAgentRequest{
			Name: req.AgentName,
			Role: agent.RoleCoordinator,
		})
		if err != nil {
			return nil, err
		}
	}

	err = s.client.AgentChannel.Create().
		SetAgentName(req.AgentName).
		SetChannelID(req.ChannelID).
		SetLastSeen(time.Now()).
		OnConflictColumns(agentchannel.FieldAgentName, agentchannel.FieldChannelID).
		Update(func(u *ent.AgentChannelUpsert) {
			u.SetLastSeen(time.Now())
		}).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to bind channel: %w", err)
	}

	binding, err := s.client.AgentChannel.Query().
		Where(
			agentchannel.AgentNameEQ(req.AgentName),
			agentchannel.ChannelIDEQ(req.ChannelID),
		).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch channel binding: %w", err)
	}
	return binding, nil
}

// UnbindChannel removes an agent's binding to a channel
func (s *AgentService) UnbindChannel(ctx context.Context, agentName, channelID string) error {
	count, err := s.client.AgentChannel.Delete().
		Where(
			agentchannel.AgentNameEQ(agentName),
			agentchannel.ChannelIDEQ(channelID),
		).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to unbind channel: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

// ListChannels lists an agent's channel bindings
func (s *AgentService) ListChannels(ctx context.Context, agentName string) ([]*ent.AgentChannel, error) {
	bindings, err := s.client.AgentChannel.Query().
		Where(agentchannel.AgentNameEQ(agentName)).
		Order(ent.Asc(agentchannel.FieldChannelID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list channels: %w", err)
	}
	return bindings, nil
}

// ChannelAgents lists the agents bound to a channel that are currently
// online or busy
func (s *AgentService) ChannelAgents(ctx context.Context, channelID string) ([]*ent.Agent, error) {
	bindings, err := s.client.AgentChannel.Query().
		Where(agentchannel.ChannelIDEQ(channelID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list channel bindings: %w", err)
	}
	if len(bindings) == 0 {
		return []*ent.Agent{}, nil
	}

	names := make([]string, 0, len(bindings))
	for _, b := range bindings {
		names = append(names, b.AgentName)
	}

	agents, err := s.client.Agent.Query().
		Where(
			agent.NameIn(names...),
			agent.StatusIn(agent.StatusOnline, agent.StatusBusy),
			agent.DeletedAtIsNil(),
		).
		Order(ent.Asc(agent.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list channel agents: %w", err)
	}
	return agents, nil
}

// MarkStaleOffline transitions agents whose heartbeat is older than the
// threshold to offline. Their running tasks are left alone; the stuck sweep
// reclaims work by time-in-state, not agent presence, so flapping heartbeats
// do not bounce tasks.
func (s *AgentService) MarkStaleOffline(ctx context.Context, threshold time.Duration) (int, error) {
	cutoff := time.Now().Add(-threshold)

	count, err := s.client.Agent.Update().
		Where(
			agent.StatusIn(agent.StatusOnline, agent.StatusBusy),
			agent.LastHeartbeatLT(cutoff),
			agent.DeletedAtIsNil(),
		).
		SetStatus(agent.StatusOffline).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to mark stale agents offline: %w", err)
	}
	return count, nil
}
