package services

import (
	"context"
	"fmt"

	"github.com/taskfleet/taskfleet/ent"
	"github.com/taskfleet/taskfleet/ent/agent"
	"github.com/taskfleet/taskfleet/ent/project"
	"github.com/taskfleet/taskfleet/ent/task"
	"github.com/taskfleet/taskfleet/ent/tasklog"
	"github.com/taskfleet/taskfleet/pkg/models"
)

// recentActivityLimit caps the audit-log tail returned with dashboard stats
const recentActivityLimit = 10

// StatsService aggregates service-wide counters for the dashboard
type StatsService struct {
	client *ent.Client
}

// NewStatsService creates a new StatsService
func NewStatsService(client *ent.Client) *StatsService {
	return &StatsService{client: client}
}

type statusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

func toCounts(rows []statusCount) (map[string]int, int) {
	counts := make(map[string]int, len(rows))
	total := 0
	for _, row := range rows {
		counts[row.Status] = row.Count
		total += row.Count
	}
	return counts, total
}

// GetDashboardStats returns project, task, and agent counts grouped by
// status, and the most recent audit log entries
func (s *StatsService) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	var projectRows []statusCount
	err := s.client.Project.Query().
		Where(project.DeletedAtIsNil()).
		GroupBy(project.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &projectRows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate projects: %w", err)
	}
	stats.Projects.ByStatus, stats.Projects.Total = toCounts(projectRows)

	var taskRows []statusCount
	err = s.client.Task.Query().
		Where(task.DeletedAtIsNil()).
		GroupBy(task.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &taskRows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate tasks: %w", err)
	}
	stats.Tasks.ByStatus, stats.Tasks.Total = toCounts(taskRows)

	var agentRows []statusCount
	err = s.client.Agent.Query().
		Where(agent.DeletedAtIsNil()).
		GroupBy(agent.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &agentRows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate agents: %w", err)
	}
	stats.Agents.ByStatus, stats.Agents.Total = toCounts(agentRows)

	recent, err := s.client.TaskLog.Query().
		Order(ent.Desc(tasklog.FieldCreatedAt), ent.Desc(tasklog.FieldID)).
		Limit(recentActivityLimit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent activity: %w", err)
	}
	stats.RecentActivity = recent

	return stats, nil
}
