package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/lib/pq"
)

// Task holds the schema definition for the Task entity.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.Int("project_id").
			Immutable(),
		field.String("title"),
		field.Text("description").
			Optional(),
		field.Enum("task_type").
			Values("research", "copywrite", "video", "review", "publish",
				"analysis", "design", "development", "testing", "deployment", "coordination"),
		field.Enum("status").
			Values("pending", "assigned", "running", "reviewing",
				"completed", "failed", "cancelled", "rejected").
			Default("pending"),
		field.Int("priority").
			Default(5).
			Min(1).
			Max(10).
			Comment("Higher dispatches earlier"),
		field.String("assignee").
			Optional().
			Nillable().
			Comment("Agent name holding the task; null while unclaimed"),
		field.String("reviewer_id").
			Optional(),
		field.Text("acceptance_criteria").
			Optional().
			Nillable(),
		field.Int("parent_task_id").
			Optional().
			Nillable(),
		field.Other("dependencies", pq.Int64Array{}).
			SchemaType(map[string]string{dialect.Postgres: "bigint[]"}).
			Default(pq.Int64Array{}).
			Comment("Ordered ids of tasks this one waits on"),
		field.Other("task_tags", pq.StringArray{}).
			SchemaType(map[string]string{dialect.Postgres: "text[]"}).
			Default(pq.StringArray{}),
		field.Float("estimated_hours").
			Optional().
			Nillable(),
		field.Int("timeout_minutes").
			Optional().
			Nillable().
			Comment("Per-task override; falls back to type default, then global"),
		field.Int("retry_count").
			Default(0),
		field.Int("max_retries").
			Default(3),
		field.JSON("result", map[string]any{}).
			Optional().
			Comment("Opaque agent output, set on submit"),
		field.Text("feedback").
			Optional().
			Comment("Reviewer feedback, set on rejection"),
		field.String("created_by").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("assigned_at").
			Optional().
			Nillable(),
		field.Time("started_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("due_at").
			Optional().
			Nillable(),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete for retention policy"),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("tasks").
			Field("project_id").
			Unique().
			Required().
			Immutable(),
		edge.To("logs", TaskLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("assignee"),
		index.Fields("project_id"),
		index.Fields("task_type"),

		// Dispatcher scan: pending tasks ordered by priority/age
		index.Fields("status", "priority", "created_at"),
		// Stuck sweep scan
		index.Fields("status", "started_at"),

		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
