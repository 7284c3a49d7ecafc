package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Comment holds the schema definition for the Comment entity.
// Comments are append-only: there is no update path and no deleted_at.
type Comment struct {
	ent.Schema
}

// Fields of the Comment.
func (Comment) Fields() []ent.Field {
	return []ent.Field{
		field.String("entity_type").
			NotEmpty().
			Comment("Record type this comment belongs to (lead, account, ...)"),
		field.Int("entity_id").
			Comment("Record id this comment belongs to"),
		field.Int("user_id").
			Comment("Author"),
		field.Text("content").
			NotEmpty().
			Comment("Comment body"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Comment.
func (Comment) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_type", "entity_id"),
		index.Fields("user_id"),
		index.Fields("created_at"),
	}
}
