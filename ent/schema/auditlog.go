package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity.
// Rows are append-only and never mutated.
type AuditLog struct {
	ent.Schema
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Optional().
			Nillable().
			Comment("Acting user, null for system actions"),
		field.Enum("action").
			Values(
				"create",
				"update",
				"delete",
				"lead_convert",
				"status_change",
				"login",
				"logout",
				"export",
				"import",
			).
			Comment("What happened"),
		field.String("entity_type").
			NotEmpty().
			Comment("Record type the action applied to"),
		field.Int("entity_id").
			Comment("Record id the action applied to"),
		field.String("description").
			Optional().
			Comment("Human-readable summary"),
		field.JSON("metadata", map[string]interface{}{}).
			Optional().
			Comment("Structured detail (e.g. ids produced by a conversion)"),
		field.Enum("severity").
			Values("info", "warning", "critical").
			Default("info").
			Comment("Log severity"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_type", "entity_id"),
		index.Fields("user_id"),
		index.Fields("action"),
		index.Fields("created_at"),
	}
}
