package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Paciente is the hospital's master patient record. One row per clinical
// history number; surgical records reference it by that number, never
// by foreign key.
type Paciente struct {
	ent.Schema
}

func (Paciente) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Paciente) Fields() []ent.Field {
	return []ent.Field{
		field.String("nombre").
			MaxLen(255),

		// The unique constraint backs the ensure-on-create flow: two
		// concurrent creates for the same number collide here and one
		// of them retries as a lookup.
		field.String("num_historia_clinica").
			Unique().
			MaxLen(50),

		field.Time("fecha_nacimiento").
			Optional().
			Nillable(),

		field.String("genero").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("direccion").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("telefono").
			Optional().
			Nillable().
			MaxLen(20),

		field.String("dni").
			Optional().
			Nillable().
			MaxLen(20),
	}
}

func (Paciente) Edges() []ent.Edge {
	return []ent.Edge{}
}
