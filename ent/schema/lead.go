package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Lead holds the schema definition for the Lead entity.
type Lead struct {
	ent.Schema
}

// Fields of the Lead.
func (Lead) Fields() []ent.Field {
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
		field.String("company_name").
			Optional().
			Comment("Company the lead works for"),
		field.String("company").
			Optional().
			Comment("Legacy company field, still populated by older imports"),
		field.String("title").
			Optional().
			Comment("Job title"),
		field.Enum("source").
			Values("web", "referral", "import", "manual", "other").
			Default("manual").
			Comment("Where the lead came from"),
		field.Enum("status").
			Values("new", "working", "nurturing", "qualified", "unqualified").
			Default("new").
			Comment("Lead lifecycle status"),
		field.Int("owner_id").
			Comment("User who owns this lead"),

		// Conversion linkage. converted_at is the single source of truth for
		// whether a lead has been converted; the three ids are set only for
		// the records actually created during that conversion.
		field.Time("converted_at").
			Optional().
			Nillable().
			Comment("When the lead was converted, null until then"),
		field.Int("converted_to_account_id").
			Optional().
			Nillable().
			Comment("Account created by the conversion, if any"),
		field.Int("converted_to_contact_id").
			Optional().
			Nillable().
			Comment("Contact created by the conversion, if any"),
		field.Int("converted_to_opportunity_id").
			Optional().
			Nillable().
			Comment("Opportunity created by the conversion, if any"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Lead.
func (Lead) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("owner_id"),
		index.Fields("email"),
		index.Fields("status", "owner_id"),
		index.Fields("created_at"),
	}
}
