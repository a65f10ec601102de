package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TaskTypeDefault holds the schema definition for the TaskTypeDefault entity.
// Per-type fallbacks consulted when a task does not set its own values.
type TaskTypeDefault struct {
	ent.Schema
}

// Fields of the TaskTypeDefault.
func (TaskTypeDefault) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("task_type").
			Values("research", "copywrite", "video", "review", "publish",
				"analysis", "design", "development", "testing", "deployment", "coordination"),
		field.Int("timeout_minutes"),
		field.Int("max_retries"),
		field.Int("priority"),
	}
}

// Indexes of the TaskTypeDefault.
func (TaskTypeDefault) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_type").
			Unique(),
	}
}
