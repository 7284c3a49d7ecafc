package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("email").
			Unique().
			NotEmpty().
			Comment("Login email address"),
		field.String("password_hash").
			Sensitive().
			Comment("Bcrypt password hash"),
		field.String("name").
			NotEmpty().
			Comment("Display name"),
		field.Enum("role").
			Values("admin", "manager", "rep", "read_only").
			Default("rep").
			Comment("Access control role"),
		field.Bool("active").
			Default(true).
			Comment("Suspended users cannot authenticate"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email"),
		index.Fields("role"),
	}
}
