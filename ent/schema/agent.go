package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/lib/pq"
)

// Agent holds the schema definition for the Agent entity.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique(),
		field.Enum("role").
			Values("research", "copywrite", "video", "coordinator", "reviewer",
				"developer", "designer", "tester", "project_manager"),
		field.Enum("status").
			Values("online", "offline", "busy").
			Default("online"),
		field.JSON("capabilities", map[string]any{}).
			Optional(),
		field.Other("skills", pq.StringArray{}).
			SchemaType(map[string]string{dialect.Postgres: "text[]"}).
			Default(pq.StringArray{}).
			Comment("Matched against task_tags during dispatch"),
		field.Int("total_tasks").
			Default(0),
		field.Int("completed_tasks").
			Default(0),
		field.Int("failed_tasks").
			Default(0),
		field.Float("success_rate").
			Default(0).
			Comment("Derived from counters; advisory only"),
		field.Int("current_task_id").
			Optional().
			Nillable(),
		field.Time("last_heartbeat").
			Default(time.Now),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
		field.Time("deleted_at").
			Optional().
			Nillable(),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		// Heartbeat sweep scan
		index.Fields("status", "last_heartbeat"),
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
