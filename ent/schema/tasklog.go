package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskLog holds the schema definition for the TaskLog entity.
// Append-only audit trail: one entry per status change, written in the
// same transaction as the change itself.
type TaskLog struct {
	ent.Schema
}

// Fields of the TaskLog.
func (TaskLog) Fields() []ent.Field {
	return []ent.Field{
		field.Int("task_id").
			Immutable(),
		field.String("action").
			Comment("e.g. 'claimed', 'started', 'submitted', 'reclaimed'"),
		field.String("old_status").
			Optional(),
		field.String("new_status").
			Optional(),
		field.Text("message").
			Optional(),
		field.String("actor").
			Default("system"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TaskLog.
func (TaskLog) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("logs").
			Field("task_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the TaskLog.
func (TaskLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "created_at"),
	}
}
