package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Opportunity holds the schema definition for the Opportunity entity.
type Opportunity struct {
	ent.Schema
}

// Fields of the Opportunity.
func (Opportunity) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Deal name"),
		field.Int("account_id").
			Comment("Owning account; an opportunity always belongs to one"),
		field.Int("contact_id").
			Optional().
			Comment("Primary contact, null when not known"),
		field.Float("amount").
			Default(0).
			Min(0).
			Comment("Expected deal value"),
		field.Enum("stage").
			Values("new", "qualification", "proposal", "negotiation", "closed_won", "closed_lost").
			Default("new").
			Comment("Pipeline stage"),
		field.Time("close_date").
			Optional().
			Nillable().
			Comment("Expected or actual close date"),
		field.Int("owner_id").
			Comment("User who owns this opportunity"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Opportunity.
func (Opportunity) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("account", Account.Type).
			Ref("opportunities").
			Unique().
			Required().
			Field("account_id"),
		edge.From("contact", Contact.Type).
			Ref("opportunities").
			Unique().
			Field("contact_id"),
	}
}

// Indexes of the Opportunity.
func (Opportunity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("stage"),
		index.Fields("account_id"),
		index.Fields("owner_id"),
		index.Fields("stage", "owner_id"),
	}
}
