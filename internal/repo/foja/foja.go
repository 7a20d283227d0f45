// Code generated by ent, DO NOT EDIT.

package foja

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the foja type in the database.
	Label = "foja"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldNombrePaciente holds the string denoting the nombre_paciente field in the database.
	FieldNombrePaciente = "nombre_paciente"
	// FieldNumHistoriaClinica holds the string denoting the num_historia_clinica field in the database.
	FieldNumHistoriaClinica = "num_historia_clinica"
	// FieldFechaNacimiento holds the string denoting the fecha_nacimiento field in the database.
	FieldFechaNacimiento = "fecha_nacimiento"
	// FieldDni holds the string denoting the dni field in the database.
	FieldDni = "dni"
	// FieldFecha holds the string denoting the fecha field in the database.
	FieldFecha = "fecha"
	// FieldCirujano holds the string denoting the cirujano field in the database.
	FieldCirujano = "cirujano"
	// FieldAyudante1 holds the string denoting the ayudante1 field in the database.
	FieldAyudante1 = "ayudante1"
	// FieldAyudante2 holds the string denoting the ayudante2 field in the database.
	FieldAyudante2 = "ayudante2"
	// FieldAyudante3 holds the string denoting the ayudante3 field in the database.
	FieldAyudante3 = "ayudante3"
	// FieldAnestesiologo holds the string denoting the anestesiologo field in the database.
	FieldAnestesiologo = "anestesiologo"
	// FieldAnestesia holds the string denoting the anestesia field in the database.
	FieldAnestesia = "anestesia"
	// FieldInstrumentador holds the string denoting the instrumentador field in the database.
	FieldInstrumentador = "instrumentador"
	// FieldRiesgoQuirurgico holds the string denoting the riesgo_quirurgico field in the database.
	FieldRiesgoQuirurgico = "riesgo_quirurgico"
	// FieldDiagnosticoPreoperatorio holds the string denoting the diagnostico_preoperatorio field in the database.
	FieldDiagnosticoPreoperatorio = "diagnostico_preoperatorio"
	// FieldPlanQuirurgico holds the string denoting the plan_quirurgico field in the database.
	FieldPlanQuirurgico = "plan_quirurgico"
	// FieldDiagnosticoPostoperatorio holds the string denoting the diagnostico_postoperatorio field in the database.
	FieldDiagnosticoPostoperatorio = "diagnostico_postoperatorio"
	// FieldOperacionRealizada holds the string denoting the operacion_realizada field in the database.
	FieldOperacionRealizada = "operacion_realizada"
	// FieldAnatomiaPatologica holds the string denoting the anatomia_patologica field in the database.
	FieldAnatomiaPatologica = "anatomia_patologica"
	// FieldDescripcionTecnica holds the string denoting the descripcion_tecnica field in the database.
	FieldDescripcionTecnica = "descripcion_tecnica"
	// FieldMedicoResponsable holds the string denoting the medico_responsable field in the database.
	FieldMedicoResponsable = "medico_responsable"
	// FieldMedicoResponsableNombre holds the string denoting the medico_responsable_nombre field in the database.
	FieldMedicoResponsableNombre = "medico_responsable_nombre"
	// FieldInvalida holds the string denoting the invalida field in the database.
	FieldInvalida = "invalida"
	// EdgeResponsable holds the string denoting the responsable edge name in mutations.
	EdgeResponsable = "responsable"
	// Table holds the table name of the foja in the database.
	Table = "fojas"
	// ResponsableTable is the table that holds the responsable relation/edge.
	ResponsableTable = "fojas"
	// ResponsableInverseTable is the table name for the Usuario entity.
	// It exists in this package in order to avoid circular dependency with the "usuario" package.
	ResponsableInverseTable = "usuarios"
	// ResponsableColumn is the table column denoting the responsable relation/edge.
	ResponsableColumn = "medico_responsable"
)

// Columns holds all SQL columns for foja fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldNombrePaciente,
	FieldNumHistoriaClinica,
	FieldFechaNacimiento,
	FieldDni,
	FieldFecha,
	FieldCirujano,
	FieldAyudante1,
	FieldAyudante2,
	FieldAyudante3,
	FieldAnestesiologo,
	FieldAnestesia,
	FieldInstrumentador,
	FieldRiesgoQuirurgico,
	FieldDiagnosticoPreoperatorio,
	FieldPlanQuirurgico,
	FieldDiagnosticoPostoperatorio,
	FieldOperacionRealizada,
	FieldAnatomiaPatologica,
	FieldDescripcionTecnica,
	FieldMedicoResponsable,
	FieldMedicoResponsableNombre,
	FieldInvalida,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// NombrePacienteValidator is a validator for the "nombre_paciente" field. It is called by the builders before save.
	NombrePacienteValidator func(string) error
	// NumHistoriaClinicaValidator is a validator for the "num_historia_clinica" field. It is called by the builders before save.
	NumHistoriaClinicaValidator func(string) error
	// DniValidator is a validator for the "dni" field. It is called by the builders before save.
	DniValidator func(string) error
	// CirujanoValidator is a validator for the "cirujano" field. It is called by the builders before save.
	CirujanoValidator func(string) error
	// Ayudante1Validator is a validator for the "ayudante1" field. It is called by the builders before save.
	Ayudante1Validator func(string) error
	// Ayudante2Validator is a validator for the "ayudante2" field. It is called by the builders before save.
	Ayudante2Validator func(string) error
	// Ayudante3Validator is a validator for the "ayudante3" field. It is called by the builders before save.
	Ayudante3Validator func(string) error
	// AnestesiologoValidator is a validator for the "anestesiologo" field. It is called by the builders before save.
	AnestesiologoValidator func(string) error
	// InstrumentadorValidator is a validator for the "instrumentador" field. It is called by the builders before save.
	InstrumentadorValidator func(string) error
	// MedicoResponsableNombreValidator is a validator for the "medico_responsable_nombre" field. It is called by the builders before save.
	MedicoResponsableNombreValidator func(string) error
	// DefaultInvalida holds the default value on creation for the "invalida" field.
	DefaultInvalida bool
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// Anestesia defines the type for the "anestesia" enum field.
type Anestesia string

// Anestesia values.
const (
	AnestesiaGeneral Anestesia = "general"
	AnestesiaLocal   Anestesia = "local"
)

func (a Anestesia) String() string {
	return string(a)
}

// AnestesiaValidator is a validator for the "anestesia" field enum values. It is called by the builders before save.
func AnestesiaValidator(a Anestesia) error {
	switch a {
	case AnestesiaGeneral, AnestesiaLocal:
		return nil
	default:
		return fmt.Errorf("foja: invalid enum value for anestesia field: %q", a)
	}
}

// RiesgoQuirurgico defines the type for the "riesgo_quirurgico" enum field.
type RiesgoQuirurgico string

// RiesgoQuirurgico values.
const (
	RiesgoQuirurgicoBajo    RiesgoQuirurgico = "bajo"
	RiesgoQuirurgicoMediano RiesgoQuirurgico = "mediano"
	RiesgoQuirurgicoAlto    RiesgoQuirurgico = "alto"
)

func (rq RiesgoQuirurgico) String() string {
	return string(rq)
}

// RiesgoQuirurgicoValidator is a validator for the "riesgo_quirurgico" field enum values. It is called by the builders before save.
func RiesgoQuirurgicoValidator(rq RiesgoQuirurgico) error {
	switch rq {
	case RiesgoQuirurgicoBajo, RiesgoQuirurgicoMediano, RiesgoQuirurgicoAlto:
		return nil
	default:
		return fmt.Errorf("foja: invalid enum value for riesgo_quirurgico field: %q", rq)
	}
}

// OrderOption defines the ordering options for the Foja queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByNombrePaciente orders the results by the nombre_paciente field.
func ByNombrePaciente(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNombrePaciente, opts...).ToFunc()
}

// ByNumHistoriaClinica orders the results by the num_historia_clinica field.
func ByNumHistoriaClinica(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumHistoriaClinica, opts...).ToFunc()
}

// ByFechaNacimiento orders the results by the fecha_nacimiento field.
func ByFechaNacimiento(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFechaNacimiento, opts...).ToFunc()
}

// ByDni orders the results by the dni field.
func ByDni(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDni, opts...).ToFunc()
}

// ByFecha orders the results by the fecha field.
func ByFecha(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFecha, opts...).ToFunc()
}

// ByCirujano orders the results by the cirujano field.
func ByCirujano(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCirujano, opts...).ToFunc()
}

// ByAyudante1 orders the results by the ayudante1 field.
func ByAyudante1(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAyudante1, opts...).ToFunc()
}

// ByAyudante2 orders the results by the ayudante2 field.
func ByAyudante2(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAyudante2, opts...).ToFunc()
}

// ByAyudante3 orders the results by the ayudante3 field.
func ByAyudante3(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAyudante3, opts...).ToFunc()
}

// ByAnestesiologo orders the results by the anestesiologo field.
func ByAnestesiologo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnestesiologo, opts...).ToFunc()
}

// ByAnestesia orders the results by the anestesia field.
func ByAnestesia(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnestesia, opts...).ToFunc()
}

// ByInstrumentador orders the results by the instrumentador field.
func ByInstrumentador(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInstrumentador, opts...).ToFunc()
}

// ByRiesgoQuirurgico orders the results by the riesgo_quirurgico field.
func ByRiesgoQuirurgico(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRiesgoQuirurgico, opts...).ToFunc()
}

// ByDiagnosticoPreoperatorio orders the results by the diagnostico_preoperatorio field.
func ByDiagnosticoPreoperatorio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiagnosticoPreoperatorio, opts...).ToFunc()
}

// ByPlanQuirurgico orders the results by the plan_quirurgico field.
func ByPlanQuirurgico(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanQuirurgico, opts...).ToFunc()
}

// ByDiagnosticoPostoperatorio orders the results by the diagnostico_postoperatorio field.
func ByDiagnosticoPostoperatorio(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDiagnosticoPostoperatorio, opts...).ToFunc()
}

// ByOperacionRealizada orders the results by the operacion_realizada field.
func ByOperacionRealizada(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperacionRealizada, opts...).ToFunc()
}

// ByAnatomiaPatologica orders the results by the anatomia_patologica field.
func ByAnatomiaPatologica(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnatomiaPatologica, opts...).ToFunc()
}

// ByDescripcionTecnica orders the results by the descripcion_tecnica field.
func ByDescripcionTecnica(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescripcionTecnica, opts...).ToFunc()
}

// ByMedicoResponsable orders the results by the medico_responsable field.
func ByMedicoResponsable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMedicoResponsable, opts...).ToFunc()
}

// ByMedicoResponsableNombre orders the results by the medico_responsable_nombre field.
func ByMedicoResponsableNombre(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMedicoResponsableNombre, opts...).ToFunc()
}

// ByInvalida orders the results by the invalida field.
func ByInvalida(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInvalida, opts...).ToFunc()
}

// ByResponsableField orders the results by responsable field.
func ByResponsableField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newResponsableStep(), sql.OrderByField(field, opts...))
	}
}
func newResponsableStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ResponsableInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, ResponsableTable, ResponsableColumn),
	)
}
