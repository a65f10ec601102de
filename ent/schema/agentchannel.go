package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentChannel holds the schema definition for the AgentChannel entity.
// Binds an agent to an external chat channel; the pair is unique.
type AgentChannel struct {
	ent.Schema
}

// Fields of the AgentChannel.
func (AgentChannel) Fields() []ent.Field {
	return []ent.Field{
		field.String("agent_name"),
		field.String("channel_id"),
		field.Time("last_seen").
			Default(time.Now),
	}
}

// Indexes of the AgentChannel.
func (AgentChannel) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("agent_name", "channel_id").
			Unique(),
		index.Fields("channel_id"),
	}
}
