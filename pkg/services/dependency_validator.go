package services

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/taskfleet/taskfleet/ent"
	"github.com/taskfleet/taskfleet/ent/task"
)

// validateDependencies enforces the dependency rules for a task's dependency
// list: no self-reference, no duplicates, every referenced task exists in the
// same project, and no dependency path leads back to the task itself.
//
// taskID is nil at creation time (the task has no id yet, so only a
// pre-existing cycle through the proposed deps could return to it, which is
// impossible; the self-reference and existence checks still apply via the
// other rules).
func validateDependencies(ctx context.Context, client *ent.Client, projectID int, taskID *int, deps []int64) error {
	if len(deps) == 0 {
		return nil
	}

	seen := make(map[int64]struct{}, len(deps))
	for _, dep := range deps {
		if dep <= 0 {
			return NewDependencyError("task id %d is not a valid reference", dep)
		}
		if taskID != nil && dep == int64(*taskID) {
			return NewDependencyError("task %d cannot depend on itself", *taskID)
		}
		if _, dup := seen[dep]; dup {
			return NewDependencyError("duplicate dependency %d", dep)
		}
		seen[dep] = struct{}{}
	}

	ids := make([]int, 0, len(deps))
	for _, dep := range deps {
		ids = append(ids, int(dep))
	}
	referenced, err := client.Task.Query().
		Where(task.IDIn(ids...), task.DeletedAtIsNil()).
		Select(task.FieldID, task.FieldProjectID, task.FieldDependencies).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load dependencies: %w", err)
	}
	byID := make(map[int]*ent.Task, len(referenced))
	for _, dep := range referenced {
		byID[dep.ID] = dep
	}
	for _, id := range ids {
		dep, ok := byID[id]
		if !ok {
			return NewDependencyError("task %d does not exist", id)
		}
		if dep.ProjectID != projectID {
			return NewDependencyError("task %d belongs to a different project", id)
		}
	}

	if taskID == nil {
		return nil
	}

	// Cycle check: walk depth-first from each proposed dependency with a
	// per-branch path set. A global visited set would wrongly flag diamond
	// shapes, where two branches share a dependency.
	for _, id := range ids {
		onPath := map[int]struct{}{}
		cyclic, err := pathReaches(ctx, client, id, *taskID, onPath)
		if err != nil {
			return err
		}
		if cyclic {
			return NewDependencyError("dependency %d creates a cycle back to task %d", id, *taskID)
		}
	}

	return nil
}

// pathReaches reports whether any dependency path starting at from arrives at
// target. onPath holds the ids on the current branch to cut re-entry.
func pathReaches(ctx context.Context, client *ent.Client, from, target int, onPath map[int]struct{}) (bool, error) {
	if from == target {
		return true, nil
	}
	if _, ok := onPath[from]; ok {
		return false, nil
	}
	onPath[from] = struct{}{}
	defer delete(onPath, from)

	deps, err := dependenciesOf(ctx, client, from)
	if err != nil {
		return false, err
	}
	for _, next := range deps {
		reached, err := pathReaches(ctx, client, int(next), target, onPath)
		if err != nil {
			return false, err
		}
		if reached {
			return true, nil
		}
	}
	return false, nil
}

func dependenciesOf(ctx context.Context, client *ent.Client, id int) (pq.Int64Array, error) {
	t, err := client.Task.Query().
		Where(task.IDEQ(id)).
		Select(task.FieldDependencies).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load dependencies of task %d: %w", id, err)
	}
	return t.Dependencies, nil
}
