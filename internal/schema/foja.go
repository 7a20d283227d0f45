package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Foja is a surgical record ("foja quirúrgica"). Records are never
// deleted; a disputed one is flagged invalida and stays readable.
type Foja struct {
	ent.Schema
}

func (Foja) Mixin() []ent.Mixin {
	return []ent.Mixin{
		UUIDV7Mixin{},
		TimeStampedMixin{},
	}
}

func (Foja) Fields() []ent.Field {
	return []ent.Field{
		// Patient snapshot. The record keeps its own copy of the
		// patient's name and birth date as entered at surgery time;
		// later edits to the paciente row do not rewrite history.
		field.String("nombre_paciente").
			MaxLen(255),

		field.String("num_historia_clinica").
			MaxLen(50).
			Comment("Links to pacientes.num_historia_clinica, by value"),

		field.Time("fecha_nacimiento").
			Optional().
			Nillable(),

		field.String("dni").
			Optional().
			Nillable().
			MaxLen(20),

		// Surgery
		field.Time("fecha"),

		field.String("cirujano").
			MaxLen(255),

		field.String("ayudante1").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("ayudante2").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("ayudante3").
			Optional().
			Nillable().
			MaxLen(255),

		field.String("anestesiologo").
			Optional().
			Nillable().
			MaxLen(255),

		field.Enum("anestesia").
			Values("general", "local"),

		field.String("instrumentador").
			Optional().
			Nillable().
			MaxLen(255),

		field.Enum("riesgo_quirurgico").
			Values("bajo", "mediano", "alto"),

		field.Text("diagnostico_preoperatorio"),

		field.Text("plan_quirurgico"),

		field.Text("diagnostico_postoperatorio"),

		field.Text("operacion_realizada"),

		field.Text("anatomia_patologica").
			Optional().
			Nillable(),

		field.Text("descripcion_tecnica"),

		// Authorship. Set once at creation from the authenticated
		// doctor, never from request input.
		field.UUID("medico_responsable", uuid.UUID{}).
			Immutable(),

		field.String("medico_responsable_nombre").
			MaxLen(255).
			Immutable(),

		// Validity flag. False on creation; only a chief doctor may
		// flip it, in either direction.
		field.Bool("invalida").
			Default(false),
	}
}

func (Foja) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("responsable", Usuario.Type).
			Unique().
			Required().
			Immutable().
			Field("medico_responsable"),
	}
}

func (Foja) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("num_historia_clinica"),
		index.Fields("fecha"),
		index.Fields("medico_responsable"),
	}
}
