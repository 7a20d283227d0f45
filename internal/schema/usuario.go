package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Usuario is a hospital staff account.
type Usuario struct {
	ent.Schema
}

func (Usuario) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Usuario) Fields() []ent.Field {
	return []ent.Field{
		field.String("nombre").
			MaxLen(255).
			Comment("Full name"),

		field.String("email").
			Unique().
			MaxLen(255),

		field.String("dni").
			Optional().
			Nillable().
			MaxLen(20),

		// Stored as a plain string rather than an enum: accounts created
		// before provisioning finishes may carry no role at all, and an
		// unrecognised value must resolve as unprovisioned, not crash
		// the row decode.
		field.String("rol").
			Optional().
			MaxLen(30),

		field.Bool("habilitado").
			Default(true),

		field.String("password_hash").
			Optional().
			Nillable().
			Sensitive(),

		field.Bool("must_change_password").
			Default(true),

		// audit
		field.Time("last_login_at").
			Optional().
			Nillable(),

		field.Int("failed_login_attempts").
			Default(0).
			NonNegative(),

		field.Time("locked_until").
			Optional().
			Nillable().
			Comment("Account locked until this time after repeated login failures"),
	}
}

func (Usuario) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("rol"),
		index.Fields("habilitado"),
	}
}

func (Usuario) Edges() []ent.Edge {
	return []ent.Edge{}
}
