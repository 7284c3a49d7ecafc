package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Activity holds the schema definition for the Activity entity.
// Calls, meetings, emails and tasks share one table; the kind enum
// distinguishes them and the (entity_type, entity_id) pair attaches the
// activity to any CRM record, same as comments.
type Activity struct {
	ent.Schema
}

// Fields of the Activity.
func (Activity) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("kind").
			Values("call", "meeting", "email", "task", "note").
			Comment("Activity type"),
		field.String("subject").
			NotEmpty().
			Comment("One-line summary"),
		field.Text("content").
			Optional().
			Comment("Free-form body"),
		field.String("entity_type").
			NotEmpty().
			Comment("Record type this activity belongs to (lead, account, ...)"),
		field.Int("entity_id").
			Comment("Record id this activity belongs to"),
		field.Int("user_id").
			Comment("User who logged the activity"),
		field.Time("due_at").
			Optional().
			Nillable().
			Comment("Due time for tasks, null for logged activities"),
		field.Bool("completed").
			Default(false).
			Comment("Whether a task-like activity is done"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Activity.
func (Activity) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("entity_type", "entity_id"),
		index.Fields("user_id"),
		index.Fields("due_at"),
		index.Fields("created_at"),
	}
}
