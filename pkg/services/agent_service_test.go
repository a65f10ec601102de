package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskfleet/taskfleet/ent/agent"
	"github.com/taskfleet/taskfleet/pkg/models"
)

func TestAgentService_Register(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	t.Run("registers new agent", func(t *testing.T) {
		registered, err := env.agents.Register(ctx, models.RegisterAgentRequest{
			Name:   "fresh-agent",
			Role:   agent.RoleDeveloper,
			Skills: []string{"go"},
		})
		require.NoError(t, err)
		assert.Equal(t, agent.StatusOnline, registered.Status)
		assert.Equal(t, []string{"go"}, []string(registered.Skills))
		assert.Equal(t, 0, registered.TotalTasks)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := env.agents.Register(ctx, models.RegisterAgentRequest{Role: agent.RoleDeveloper})
		assert.True(t, IsValidationError(err))

		_, err = env.agents.Register(ctx, models.RegisterAgentRequest{Name: "x", Role: "wizard"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("re-registration preserves counters", func(t *testing.T) {
		_, err := env.agents.Register(ctx, models.RegisterAgentRequest{
			Name: "veteran", Role: agent.RoleDeveloper, Skills: []string{"go"},
		})
		require.NoError(t, err)

		err = env.client.Agent.Update().
			Where(agent.NameEQ("veteran")).
			SetTotalTasks(10).
			SetCompletedTasks(8).
			SetStatus(agent.StatusOffline).
			Exec(ctx)
		require.NoError(t, err)

		again, err := env.agents.Register(ctx, models.RegisterAgentRequest{
			Name: "veteran", Role: agent.RoleReviewer, Skills: []string{"go", "review"},
		})
		require.NoError(t, err)
		assert.Equal(t, agent.RoleReviewer, again.Role)
		assert.Equal(t, agent.StatusOnline, again.Status)
		assert.Equal(t, []string{"go", "review"}, []string(again.Skills))
		assert.Equal(t, 10, again.TotalTasks)
		assert.Equal(t, 8, again.CompletedTasks)
	})

	t.Run("re-registration revives an unregistered agent", func(t *testing.T) {
		_, err := env.agents.Register(ctx, models.RegisterAgentRequest{
			Name: "phoenix", Role: agent.RoleDeveloper,
		})
		require.NoError(t, err)
		require.NoError(t, env.agents.Unregister(ctx, "phoenix"))
		_, err = env.agents.GetAgent(ctx, "phoenix")
		assert.ErrorIs(t, err, ErrNotFound)

		revived, err := env.agents.Register(ctx, models.RegisterAgentRequest{
			Name: "phoenix", Role: agent.RoleDeveloper,
		})
		require.NoError(t, err)
		assert.Equal(t, agent.StatusOnline, revived.Status)
		assert.Nil(t, revived.DeletedAt)
	})
}

func TestAgentService_Heartbeat(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	t.Run("refreshes liveness and revives offline agent", func(t *testing.T) {
		env.mkAgent(t, "beater")
		err := env.client.Agent.Update().
			Where(agent.NameEQ("beater")).
			SetStatus(agent.StatusOffline).
			SetLastHeartbeat(time.Now().Add(-time.Hour)).
			Exec(ctx)
		require.NoError(t, err)

		beaten, err := env.agents.Heartbeat(ctx, "beater", nil)
		require.NoError(t, err)
		assert.Equal(t, agent.StatusOnline, beaten.Status)
		assert.WithinDuration(t, time.Now(), beaten.LastHeartbeat, 5*time.Second)
	})

	t.Run("records the reported task", func(t *testing.T) {
		proj := env.mkProject(t, "reported-task-project")
		env.mkAgent(t, "reporter")
		created := env.mkTask(t, proj.ID, "reported work")

		beaten, err := env.agents.Heartbeat(ctx, "reporter", &created.ID)
		require.NoError(t, err)
		require.NotNil(t, beaten.CurrentTaskID)
		assert.Equal(t, created.ID, *beaten.CurrentTaskID)

		// Omitting the field leaves the reported task untouched
		beaten, err = env.agents.Heartbeat(ctx, "reporter", nil)
		require.NoError(t, err)
		require.NotNil(t, beaten.CurrentTaskID)
		assert.Equal(t, created.ID, *beaten.CurrentTaskID)

		// Reporting zero clears it
		zero := 0
		beaten, err = env.agents.Heartbeat(ctx, "reporter", &zero)
		require.NoError(t, err)
		assert.Nil(t, beaten.CurrentTaskID)
	})

	t.Run("busy agent stays busy", func(t *testing.T) {
		proj := env.mkProject(t, "heartbeat-project")
		env.mkAgent(t, "busy-beater")
		created := env.mkTask(t, proj.ID, "held work")
		_, _, err := env.dispatch.Claim(ctx, created.ID, "busy-beater", "")
		require.NoError(t, err)

		beaten, err := env.agents.Heartbeat(ctx, "busy-beater", nil)
		require.NoError(t, err)
		assert.Equal(t, agent.StatusBusy, beaten.Status)
	})

	t.Run("unknown agent", func(t *testing.T) {
		_, err := env.agents.Heartbeat(ctx, "nobody", nil)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestAgentService_MarkStaleOffline(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	proj := env.mkProject(t, "stale-project")

	env.mkAgent(t, "stale-agent")
	env.mkAgent(t, "live-agent")
	err := env.client.Agent.Update().
		Where(agent.NameEQ("stale-agent")).
		SetLastHeartbeat(time.Now().Add(-10 * time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	// The stale agent holds a running task
	created := env.mkTask(t, proj.ID, "still running")
	env.claimAndStart(t, created.ID, "stale-agent")
	err = env.client.Agent.Update().
		Where(agent.NameEQ("stale-agent")).
		SetLastHeartbeat(time.Now().Add(-10 * time.Minute)).
		Exec(ctx)
	require.NoError(t, err)

	n, err := env.agents.MarkStaleOffline(ctx, 5*time.Minute)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	stale, err := env.agents.GetAgent(ctx, "stale-agent")
	require.NoError(t, err)
	assert.Equal(t, agent.StatusOffline, stale.Status)

	live, err := env.agents.GetAgent(ctx, "live-agent")
	require.NoError(t, err)
	assert.Equal(t, agent.StatusOnline, live.Status)

	// The running task is untouched; reclaim is the stuck sweep's job
	detail, err := env.tasks.GetTask(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "running", string(detail.Status))
	require.NotNil(t, detail.Assignee)
	assert.Equal(t, "stale-agent", *detail.Assignee)
}

func TestAgentService_Channels(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	t.Run("bind and rebind", func(t *testing.T) {
		env.mkAgent(t, "channel-agent")
		binding, err := env.agents.BindChannel(ctx, models.BindChannelRequest{
			AgentName: "channel-agent",
			ChannelID: "C100",
		})
		require.NoError(t, err)
		firstSeen := binding.LastSeen

		// Re-binding refreshes last_seen instead of erroring
		time.Sleep(10 * time.Millisecond)
		rebound, err := env.agents.BindChannel(ctx, models.BindChannelRequest{
			AgentName: "channel-agent",
			ChannelID: "C100",
		})
		require.NoError(t, err)
		assert.True(t, rebound.LastSeen.After(firstSeen) || rebound.LastSeen.Equal(firstSeen))

		channels, err := env.agents.ListChannels(ctx, "channel-agent")
		require.NoError(t, err)
		assert.Len(t, channels, 1)
	})

	t.Run("binding an unknown agent registers a placeholder", func(t *testing.T) {
		_, err := env.agents.BindChannel(ctx, models.BindChannelRequest{
			AgentName: "walk-in",
			ChannelID: "C200",
		})
		require.NoError(t, err)

		ag, err := env.agents.GetAgent(ctx, "walk-in")
		require.NoError(t, err)
		assert.Equal(t, agent.RoleCoordinator, ag.Role)
	})

	t.Run("channel agents lists only present members", func(t *testing.T) {
		env.mkAgent(t, "present-1")
		env.mkAgent(t, "present-2")
		env.mkAgent(t, "absent")
		for _, name := range []string{"present-1", "present-2", "absent"} {
			_, err := env.agents.BindChannel(ctx, models.BindChannelRequest{
				AgentName: name, ChannelID: "C300",
			})
			require.NoError(t, err)
		}
		err := env.client.Agent.Update().
			Where(agent.NameEQ("absent")).
			SetStatus(agent.StatusOffline).
			Exec(ctx)
		require.NoError(t, err)

		members, err := env.agents.ChannelAgents(ctx, "C300")
		require.NoError(t, err)
		names := make([]string, 0, len(members))
		for _, m := range members {
			names = append(names, m.Name)
		}
		assert.Equal(t, []string{"present-1", "present-2"}, names)
	})

	t.Run("unbind", func(t *testing.T) {
		env.mkAgent(t, "unbind-agent")
		_, err := env.agents.BindChannel(ctx, models.BindChannelRequest{
			AgentName: "unbind-agent", ChannelID: "C400",
		})
		require.NoError(t, err)

		require.NoError(t, env.agents.UnbindChannel(ctx, "unbind-agent", "C400"))
		assert.ErrorIs(t, env.agents.UnbindChannel(ctx, "unbind-agent", "C400"), ErrNotFound)
	})
}

func TestAgentService_ListAgents(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	env.mkAgent(t, "list-dev-1")
	env.mkAgent(t, "list-dev-2")
	_, err := env.agents.Register(ctx, models.RegisterAgentRequest{
		Name: "list-reviewer", Role: agent.RoleReviewer,
	})
	require.NoError(t, err)

	t.Run("filters by role", func(t *testing.T) {
		list, err := env.agents.ListAgents(ctx, models.AgentFilters{Role: string(agent.RoleReviewer)})
		require.NoError(t, err)
		assert.Equal(t, 1, list.TotalCount)
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := env.agents.ListAgents(ctx, models.AgentFilters{Role: "wizard"})
		assert.True(t, IsValidationError(err))
	})

	t.Run("excludes unregistered agents by default", func(t *testing.T) {
		require.NoError(t, env.agents.Unregister(ctx, "list-dev-2"))
		list, err := env.agents.ListAgents(ctx, models.AgentFilters{})
		require.NoError(t, err)
		assert.Equal(t, 2, list.TotalCount)

		all, err := env.agents.ListAgents(ctx, models.AgentFilters{IncludeDeleted: true})
		require.NoError(t, err)
		assert.Equal(t, 3, all.TotalCount)
	})

	t.Run("filters by skill containment", func(t *testing.T) {
		env.mkAgent(t, "skilled-go", "go", "postgres")
		env.mkAgent(t, "skilled-rust", "rust")

		list, err := env.agents.ListAgents(ctx, models.AgentFilters{Skill: "go"})
		require.NoError(t, err)
		require.Equal(t, 1, list.TotalCount)
		assert.Equal(t, "skilled-go", list.Agents[0].Name)

		none, err := env.agents.ListAgents(ctx, models.AgentFilters{Skill: "cobol"})
		require.NoError(t, err)
		assert.Equal(t, 0, none.TotalCount)
	})
}
