package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Export holds the schema definition for the Export entity.
type Export struct {
	ent.Schema
}

// Fields of the Export.
func (Export) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Comment("User who requested the export"),
		field.Enum("format").
			Values("csv", "excel").
			Comment("Output format"),
		field.Enum("entity").
			Values("leads", "accounts", "contacts", "opportunities").
			Comment("Record type being exported"),
		field.JSON("filters", map[string]interface{}{}).
			Optional().
			Comment("List filters applied at export time"),
		field.Int("row_count").
			Default(0).
			Comment("Rows in the finished file"),
		field.Enum("status").
			Values("pending", "processing", "ready", "failed").
			Default("pending").
			Comment("Processing status"),
		field.String("file_path").
			Optional().
			Comment("Local path of the generated file"),
		field.String("s3_key").
			Optional().
			Comment("S3 object key when uploaded to remote storage"),
		field.String("error_message").
			Optional().
			Comment("Failure reason when status is failed"),
		field.Time("expires_at").
			Comment("When the file becomes eligible for cleanup"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Export.
func (Export) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("status"),
		index.Fields("expires_at"),
	}
}
