// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FojasColumns holds the columns for the "fojas" table.
	FojasColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "nombre_paciente", Type: field.TypeString, Size: 255},
		{Name: "num_historia_clinica", Type: field.TypeString, Size: 50},
		{Name: "fecha_nacimiento", Type: field.TypeTime, Nullable: true},
		{Name: "dni", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "fecha", Type: field.TypeTime},
		{Name: "cirujano", Type: field.TypeString, Size: 255},
		{Name: "ayudante1", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "ayudante2", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "ayudante3", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "anestesiologo", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "anestesia", Type: field.TypeEnum, Enums: []string{"general", "local"}},
		{Name: "instrumentador", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "riesgo_quirurgico", Type: field.TypeEnum, Enums: []string{"bajo", "mediano", "alto"}},
		{Name: "diagnostico_preoperatorio", Type: field.TypeString, Size: 2147483647},
		{Name: "plan_quirurgico", Type: field.TypeString, Size: 2147483647},
		{Name: "diagnostico_postoperatorio", Type: field.TypeString, Size: 2147483647},
		{Name: "operacion_realizada", Type: field.TypeString, Size: 2147483647},
		{Name: "anatomia_patologica", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "descripcion_tecnica", Type: field.TypeString, Size: 2147483647},
		{Name: "medico_responsable_nombre", Type: field.TypeString, Size: 255},
		{Name: "invalida", Type: field.TypeBool, Default: false},
		{Name: "medico_responsable", Type: field.TypeUUID},
	}
	// FojasTable holds the schema information for the "fojas" table.
	FojasTable = &schema.Table{
		Name:       "fojas",
		Columns:    FojasColumns,
		PrimaryKey: []*schema.Column{FojasColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "fojas_usuarios_responsable",
				Columns:    []*schema.Column{FojasColumns[24]},
				RefColumns: []*schema.Column{UsuariosColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "foja_num_historia_clinica",
				Unique:  false,
				Columns: []*schema.Column{FojasColumns[4]},
			},
			{
				Name:    "foja_fecha",
				Unique:  false,
				Columns: []*schema.Column{FojasColumns[7]},
			},
			{
				Name:    "foja_medico_responsable",
				Unique:  false,
				Columns: []*schema.Column{FojasColumns[24]},
			},
		},
	}
	// PacientesColumns holds the columns for the "pacientes" table.
	PacientesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "nombre", Type: field.TypeString, Size: 255},
		{Name: "num_historia_clinica", Type: field.TypeString, Unique: true, Size: 50},
		{Name: "fecha_nacimiento", Type: field.TypeTime, Nullable: true},
		{Name: "genero", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "direccion", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "telefono", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "dni", Type: field.TypeString, Nullable: true, Size: 20},
	}
	// PacientesTable holds the schema information for the "pacientes" table.
	PacientesTable = &schema.Table{
		Name:       "pacientes",
		Columns:    PacientesColumns,
		PrimaryKey: []*schema.Column{PacientesColumns[0]},
	}
	// UsuariosColumns holds the columns for the "usuarios" table.
	UsuariosColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "nombre", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Unique: true, Size: 255},
		{Name: "dni", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "rol", Type: field.TypeString, Nullable: true, Size: 30},
		{Name: "habilitado", Type: field.TypeBool, Default: true},
		{Name: "password_hash", Type: field.TypeString, Nullable: true},
		{Name: "must_change_password", Type: field.TypeBool, Default: true},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_login_attempts", Type: field.TypeInt, Default: 0},
		{Name: "locked_until", Type: field.TypeTime, Nullable: true},
	}
	// UsuariosTable holds the schema information for the "usuarios" table.
	UsuariosTable = &schema.Table{
		Name:       "usuarios",
		Columns:    UsuariosColumns,
		PrimaryKey: []*schema.Column{UsuariosColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "usuario_rol",
				Unique:  false,
				Columns: []*schema.Column{UsuariosColumns[6]},
			},
			{
				Name:    "usuario_habilitado",
				Unique:  false,
				Columns: []*schema.Column{UsuariosColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FojasTable,
		PacientesTable,
		UsuariosTable,
	}
)

func init() {
	FojasTable.ForeignKeys[0].RefTable = UsuariosTable
}
