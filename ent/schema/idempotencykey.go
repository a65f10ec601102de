package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// IdempotencyKey holds the schema definition for the IdempotencyKey entity.
// Client-supplied key mapped to the serialized response of the mutation it
// guarded. Lookups never purge; expiry is owned by the retention sweep.
type IdempotencyKey struct {
	ent.Schema
}

// Fields of the IdempotencyKey.
func (IdempotencyKey) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("key").
			Unique().
			Immutable(),
		field.Text("response").
			Comment("Serialized JSON response returned on replay"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the IdempotencyKey.
func (IdempotencyKey) Indexes() []ent.Index {
	return []ent.Index{
		// GC scan
		index.Fields("created_at"),
	}
}
