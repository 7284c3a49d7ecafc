package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SupportCase holds the schema definition for the SupportCase entity.
type SupportCase struct {
	ent.Schema
}

// Fields of the SupportCase.
func (SupportCase) Fields() []ent.Field {
	return []ent.Field{
		field.String("subject").
			NotEmpty().
			Comment("Short problem summary"),
		field.Text("description").
			Optional().
			Comment("Full problem description"),
		field.Enum("status").
			Values("open", "pending", "resolved", "closed").
			Default("open").
			Comment("Case workflow status"),
		field.Enum("priority").
			Values("low", "medium", "high", "urgent").
			Default("medium").
			Comment("Triage priority"),
		field.Int("account_id").
			Optional().
			Comment("Account the case was raised against"),
		field.Int("contact_id").
			Optional().
			Comment("Contact who reported the case"),
		field.Int("owner_id").
			Comment("User working the case"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the SupportCase.
func (SupportCase) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("account_id"),
		index.Fields("owner_id"),
	}
}
