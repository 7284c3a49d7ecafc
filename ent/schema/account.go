package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Account holds the schema definition for the Account entity.
type Account struct {
	ent.Schema
}

// Fields of the Account.
func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Comment("Organization name"),
		field.Enum("type").
			Values("prospect", "customer", "partner", "vendor", "other").
			Default("prospect").
			Comment("Relationship type"),
		field.String("industry").
			Optional().
			Comment("Free-form industry label"),
		field.String("website").
			Optional().
			Comment("Company website URL"),
		field.String("phone").
			Optional().
			Comment("Main phone number"),
		field.Int("owner_id").
			Comment("User who owns this account"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Account.
func (Account) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("contacts", Contact.Type).
			Comment("People at this organization"),
		edge.To("opportunities", Opportunity.Type).
			Comment("Deals against this organization"),
	}
}

// Indexes of the Account.
func (Account) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name"),
		index.Fields("owner_id"),
		index.Fields("type"),
	}
}
