package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates GIN indexes on the array columns used for
// tag/skill matching. Ent's schema DSL cannot express these.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// GIN index for task tag overlap queries (task_tags && agent skills)
	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_tasks_task_tags_gin
		ON tasks USING gin(task_tags)`)
	if err != nil {
		return fmt.Errorf("failed to create task_tags GIN index: %w", err)
	}

	// GIN index for agent skill lookups
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_agents_skills_gin
		ON agents USING gin(skills)`)
	if err != nil {
		return fmt.Errorf("failed to create skills GIN index: %w", err)
	}

	return nil
}
