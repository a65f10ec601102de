package services

import (
	"context"
	"fmt"
	"time"

	"github.com/taskfleet/taskfleet/ent"
	"github.com/taskfleet/taskfleet/ent/agent"
	"github.com/taskfleet/taskfleet/ent/task"
)

// logTransition appends one audit entry for a task mutation. Every status
// change commits exactly one log row in the same transaction.
func logTransition(ctx context.Context, tx *ent.Tx, taskID int, action string, oldStatus, newStatus task.Status, actor, message string) error {
	builder := tx.TaskLog.Create().
		SetTaskID(taskID).
		SetAction(action).
		SetActor(actor)
	if oldStatus != "" {
		builder.SetOldStatus(string(oldStatus))
	}
	if newStatus != "" {
		builder.SetNewStatus(string(newStatus))
	}
	if message != "" {
		builder.SetMessage(message)
	}
	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append task log: %w", err)
	}
	return nil
}

// lockAgent takes the agent row lock. Transitions that check per-agent
// invariants (the concurrency cap, the single-running rule) take this lock
// after the task row, so concurrent transitions by the same agent serialize
// and the invariant check cannot race a parallel commit.
func lockAgent(ctx context.Context, tx *ent.Tx, name string) (*ent.Agent, error) {
	ag, err := tx.Agent.Query().
		Where(agent.NameEQ(name), agent.DeletedAtIsNil()).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock agent: %w", err)
	}
	return ag, nil
}

// applyTerminalStats updates the agent rollup counters for a terminal
// transition of one of its tasks. total_tasks grows on every terminal
// outcome; completed_tasks and failed_tasks only on their own. The success
// rate is Laplace-smoothed so fresh agents neither divide by zero nor start
// at a perfect score.
func applyTerminalStats(ctx context.Context, tx *ent.Tx, agentName string, outcome task.Status) error {
	ag, err := tx.Agent.Query().
		Where(agent.NameEQ(agentName), agent.DeletedAtIsNil()).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// The agent was unregistered while holding work; nothing to roll up.
			return nil
		}
		return fmt.Errorf("failed to load agent for stats: %w", err)
	}

	total := ag.TotalTasks + 1
	completed := ag.CompletedTasks
	failed := ag.FailedTasks
	switch outcome {
	case task.StatusCompleted:
		completed++
	case task.StatusFailed:
		failed++
	}

	err = ag.Update().
		SetTotalTasks(total).
		SetCompletedTasks(completed).
		SetFailedTasks(failed).
		SetSuccessRate(float64(completed+1) / float64(total+1)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update agent stats: %w", err)
	}
	return nil
}

// rollupAgent recomputes an agent's status and current_task_id from the tasks
// it actually holds. Called after every attach or detach so the agent row
// never disagrees with the task table.
//
// actorInitiated distinguishes transitions performed by the agent itself
// (claim, start, submit) from sweeps acting on its behalf; a sweep must not
// resurrect an agent the heartbeat sweep marked offline.
func rollupAgent(ctx context.Context, tx *ent.Tx, agentName string, actorInitiated bool) error {
	ag, err := tx.Agent.Query().
		Where(agent.NameEQ(agentName), agent.DeletedAtIsNil()).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return fmt.Errorf("failed to load agent for rollup: %w", err)
	}

	active, err := tx.Task.Query().
		Where(
			task.AssigneeEQ(agentName),
			task.StatusIn(task.StatusAssigned, task.StatusRunning, task.StatusReviewing),
			task.DeletedAtIsNil(),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count active tasks: %w", err)
	}

	running, err := tx.Task.Query().
		Where(
			task.AssigneeEQ(agentName),
			task.StatusEQ(task.StatusRunning),
			task.DeletedAtIsNil(),
		).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to find running task: %w", err)
	}

	update := ag.Update()
	if running != nil {
		update.SetCurrentTaskID(running.ID)
	} else {
		update.ClearCurrentTaskID()
	}
	if actorInitiated || ag.Status != agent.StatusOffline {
		if active > 0 {
			update.SetStatus(agent.StatusBusy)
		} else {
			update.SetStatus(agent.StatusOnline)
		}
	}
	if actorInitiated {
		update.SetLastHeartbeat(time.Now())
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to roll up agent: %w", err)
	}
	return nil
}
