package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Contact holds the schema definition for the Contact entity.
type Contact struct {
	ent.Schema
}

// Fields of the Contact.
func (Contact) Fields() []ent.Field {
	return []ent.Field{
		field.String("first_name").
			NotEmpty().
			Comment("Given name"),
		field.String("last_name").
			NotEmpty().
			Comment("Family name"),
		field.String("email").
			Optional().
			Comment("Email address"),
		field.String("phone").
			Optional().
			Comment("Phone number (E.164 when normalized)"),
		field.String("title").
			Optional().
			Comment("Job title"),
		field.Int("account_id").
			Optional().
			Comment("Owning account, null for unattached contacts"),
		field.Int("owner_id").
			Comment("User who owns this contact"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Contact.
func (Contact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("account", Account.Type).
			Ref("contacts").
			Unique().
			Field("account_id"),
		edge.To("opportunities", Opportunity.Type).
			Comment("Deals where this contact is the primary contact"),
	}
}

// Indexes of the Contact.
func (Contact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id"),
		index.Fields("owner_id"),
		index.Fields("email"),
	}
}
