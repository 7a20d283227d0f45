// Code generated by ent, DO NOT EDIT.

package foja

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/nlonghi/fojas_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Foja {
	return predicate.Foja(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Foja {
	return predicate.Foja(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Foja {
	return predicate.Foja(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Foja {
	return predicate.Foja(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Foja {
	return predicate.Foja(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Foja {
	return predicate.Foja(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Foja {
	return predicate.Foja(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldUpdatedAt, v))
}

// NombrePaciente applies equality check predicate on the "nombre_paciente" field. It's identical to NombrePacienteEQ.
func NombrePaciente(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldNombrePaciente, v))
}

// NumHistoriaClinica applies equality check predicate on the "num_historia_clinica" field. It's identical to NumHistoriaClinicaEQ.
func NumHistoriaClinica(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldNumHistoriaClinica, v))
}

// FechaNacimiento applies equality check predicate on the "fecha_nacimiento" field. It's identical to FechaNacimientoEQ.
func FechaNacimiento(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldFechaNacimiento, v))
}

// Dni applies equality check predicate on the "dni" field. It's identical to DniEQ.
func Dni(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldDni, v))
}

// Fecha applies equality check predicate on the "fecha" field. It's identical to FechaEQ.
func Fecha(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldFecha, v))
}

// Cirujano applies equality check predicate on the "cirujano" field. It's identical to CirujanoEQ.
func Cirujano(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldCirujano, v))
}

// Ayudante1 applies equality check predicate on the "ayudante1" field. It's identical to Ayudante1EQ.
func Ayudante1(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldAyudante1, v))
}

// Ayudante2 applies equality check predicate on the "ayudante2" field. It's identical to Ayudante2EQ.
func Ayudante2(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldAyudante2, v))
}

// Ayudante3 applies equality check predicate on the "ayudante3" field. It's identical to Ayudante3EQ.
func Ayudante3(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldAyudante3, v))
}

// Anestesiologo applies equality check predicate on the "anestesiologo" field. It's identical to AnestesiologoEQ.
func Anestesiologo(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldAnestesiologo, v))
}

// Instrumentador applies equality check predicate on the "instrumentador" field. It's identical to InstrumentadorEQ.
func Instrumentador(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldInstrumentador, v))
}

// DiagnosticoPreoperatorio applies equality check predicate on the "diagnostico_preoperatorio" field. It's identical to DiagnosticoPreoperatorioEQ.
func DiagnosticoPreoperatorio(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldDiagnosticoPreoperatorio, v))
}

// PlanQuirurgico applies equality check predicate on the "plan_quirurgico" field. It's identical to PlanQuirurgicoEQ.
func PlanQuirurgico(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldPlanQuirurgico, v))
}

// DiagnosticoPostoperatorio applies equality check predicate on the "diagnostico_postoperatorio" field. It's identical to DiagnosticoPostoperatorioEQ.
func DiagnosticoPostoperatorio(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldDiagnosticoPostoperatorio, v))
}

// OperacionRealizada applies equality check predicate on the "operacion_realizada" field. It's identical to OperacionRealizadaEQ.
func OperacionRealizada(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldOperacionRealizada, v))
}

// AnatomiaPatologica applies equality check predicate on the "anatomia_patologica" field. It's identical to AnatomiaPatologicaEQ.
func AnatomiaPatologica(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldAnatomiaPatologica, v))
}

// DescripcionTecnica applies equality check predicate on the "descripcion_tecnica" field. It's identical to DescripcionTecnicaEQ.
func DescripcionTecnica(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldDescripcionTecnica, v))
}

// MedicoResponsable applies equality check predicate on the "medico_responsable" field. It's identical to MedicoResponsableEQ.
func MedicoResponsable(v uuid.UUID) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldMedicoResponsable, v))
}

// MedicoResponsableNombre applies equality check predicate on the "medico_responsable_nombre" field. It's identical to MedicoResponsableNombreEQ.
func MedicoResponsableNombre(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldMedicoResponsableNombre, v))
}

// Invalida applies equality check predicate on the "invalida" field. It's identical to InvalidaEQ.
func Invalida(v bool) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldInvalida, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldLTE(FieldUpdatedAt, v))
}

// NombrePacienteEQ applies the EQ predicate on the "nombre_paciente" field.
func NombrePacienteEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldNombrePaciente, v))
}

// NombrePacienteNEQ applies the NEQ predicate on the "nombre_paciente" field.
func NombrePacienteNEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldNEQ(FieldNombrePaciente, v))
}

// NombrePacienteIn applies the In predicate on the "nombre_paciente" field.
func NombrePacienteIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldIn(FieldNombrePaciente, vs...))
}

// NombrePacienteNotIn applies the NotIn predicate on the "nombre_paciente" field.
func NombrePacienteNotIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldNotIn(FieldNombrePaciente, vs...))
}

// NombrePacienteGT applies the GT predicate on the "nombre_paciente" field.
func NombrePacienteGT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGT(FieldNombrePaciente, v))
}

// NombrePacienteGTE applies the GTE predicate on the "nombre_paciente" field.
func NombrePacienteGTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGTE(FieldNombrePaciente, v))
}

// NombrePacienteLT applies the LT predicate on the "nombre_paciente" field.
func NombrePacienteLT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLT(FieldNombrePaciente, v))
}

// NombrePacienteLTE applies the LTE predicate on the "nombre_paciente" field.
func NombrePacienteLTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLTE(FieldNombrePaciente, v))
}

// NombrePacienteContains applies the Contains predicate on the "nombre_paciente" field.
func NombrePacienteContains(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContains(FieldNombrePaciente, v))
}

// NombrePacienteHasPrefix applies the HasPrefix predicate on the "nombre_paciente" field.
func NombrePacienteHasPrefix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasPrefix(FieldNombrePaciente, v))
}

// NombrePacienteHasSuffix applies the HasSuffix predicate on the "nombre_paciente" field.
func NombrePacienteHasSuffix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasSuffix(FieldNombrePaciente, v))
}

// NombrePacienteEqualFold applies the EqualFold predicate on the "nombre_paciente" field.
func NombrePacienteEqualFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEqualFold(FieldNombrePaciente, v))
}

// NombrePacienteContainsFold applies the ContainsFold predicate on the "nombre_paciente" field.
func NombrePacienteContainsFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContainsFold(FieldNombrePaciente, v))
}

// NumHistoriaClinicaEQ applies the EQ predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldNumHistoriaClinica, v))
}

// NumHistoriaClinicaNEQ applies the NEQ predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaNEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldNEQ(FieldNumHistoriaClinica, v))
}

// NumHistoriaClinicaIn applies the In predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldIn(FieldNumHistoriaClinica, vs...))
}

// NumHistoriaClinicaNotIn applies the NotIn predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaNotIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldNotIn(FieldNumHistoriaClinica, vs...))
}

// NumHistoriaClinicaGT applies the GT predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaGT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGT(FieldNumHistoriaClinica, v))
}

// NumHistoriaClinicaGTE applies the GTE predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaGTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGTE(FieldNumHistoriaClinica, v))
}

// NumHistoriaClinicaLT applies the LT predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaLT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLT(FieldNumHistoriaClinica, v))
}

// NumHistoriaClinicaLTE applies the LTE predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaLTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLTE(FieldNumHistoriaClinica, v))
}

// NumHistoriaClinicaContains applies the Contains predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaContains(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContains(FieldNumHistoriaClinica, v))
}

// NumHistoriaClinicaHasPrefix applies the HasPrefix predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaHasPrefix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasPrefix(FieldNumHistoriaClinica, v))
}

// NumHistoriaClinicaHasSuffix applies the HasSuffix predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaHasSuffix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasSuffix(FieldNumHistoriaClinica, v))
}

// NumHistoriaClinicaEqualFold applies the EqualFold predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaEqualFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEqualFold(FieldNumHistoriaClinica, v))
}

// NumHistoriaClinicaContainsFold applies the ContainsFold predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaContainsFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContainsFold(FieldNumHistoriaClinica, v))
}

// FechaNacimientoEQ applies the EQ predicate on the "fecha_nacimiento" field.
func FechaNacimientoEQ(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldFechaNacimiento, v))
}

// FechaNacimientoNEQ applies the NEQ predicate on the "fecha_nacimiento" field.
func FechaNacimientoNEQ(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldNEQ(FieldFechaNacimiento, v))
}

// FechaNacimientoIn applies the In predicate on the "fecha_nacimiento" field.
func FechaNacimientoIn(vs ...time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldIn(FieldFechaNacimiento, vs...))
}

// FechaNacimientoNotIn applies the NotIn predicate on the "fecha_nacimiento" field.
func FechaNacimientoNotIn(vs ...time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldNotIn(FieldFechaNacimiento, vs...))
}

// FechaNacimientoGT applies the GT predicate on the "fecha_nacimiento" field.
func FechaNacimientoGT(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldGT(FieldFechaNacimiento, v))
}

// FechaNacimientoGTE applies the GTE predicate on the "fecha_nacimiento" field.
func FechaNacimientoGTE(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldGTE(FieldFechaNacimiento, v))
}

// FechaNacimientoLT applies the LT predicate on the "fecha_nacimiento" field.
func FechaNacimientoLT(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldLT(FieldFechaNacimiento, v))
}

// FechaNacimientoLTE applies the LTE predicate on the "fecha_nacimiento" field.
func FechaNacimientoLTE(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldLTE(FieldFechaNacimiento, v))
}

// FechaNacimientoIsNil applies the IsNil predicate on the "fecha_nacimiento" field.
func FechaNacimientoIsNil() predicate.Foja {
	return predicate.Foja(sql.FieldIsNull(FieldFechaNacimiento))
}

// FechaNacimientoNotNil applies the NotNil predicate on the "fecha_nacimiento" field.
func FechaNacimientoNotNil() predicate.Foja {
	return predicate.Foja(sql.FieldNotNull(FieldFechaNacimiento))
}

// DniEQ applies the EQ predicate on the "dni" field.
func DniEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldDni, v))
}

// DniNEQ applies the NEQ predicate on the "dni" field.
func DniNEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldNEQ(FieldDni, v))
}

// DniIn applies the In predicate on the "dni" field.
func DniIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldIn(FieldDni, vs...))
}

// DniNotIn applies the NotIn predicate on the "dni" field.
func DniNotIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldNotIn(FieldDni, vs...))
}

// DniGT applies the GT predicate on the "dni" field.
func DniGT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGT(FieldDni, v))
}

// DniGTE applies the GTE predicate on the "dni" field.
func DniGTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGTE(FieldDni, v))
}

// DniLT applies the LT predicate on the "dni" field.
func DniLT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLT(FieldDni, v))
}

// DniLTE applies the LTE predicate on the "dni" field.
func DniLTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLTE(FieldDni, v))
}

// DniContains applies the Contains predicate on the "dni" field.
func DniContains(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContains(FieldDni, v))
}

// DniHasPrefix applies the HasPrefix predicate on the "dni" field.
func DniHasPrefix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasPrefix(FieldDni, v))
}

// DniHasSuffix applies the HasSuffix predicate on the "dni" field.
func DniHasSuffix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasSuffix(FieldDni, v))
}

// DniIsNil applies the IsNil predicate on the "dni" field.
func DniIsNil() predicate.Foja {
	return predicate.Foja(sql.FieldIsNull(FieldDni))
}

// DniNotNil applies the NotNil predicate on the "dni" field.
func DniNotNil() predicate.Foja {
	return predicate.Foja(sql.FieldNotNull(FieldDni))
}

// DniEqualFold applies the EqualFold predicate on the "dni" field.
func DniEqualFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEqualFold(FieldDni, v))
}

// DniContainsFold applies the ContainsFold predicate on the "dni" field.
func DniContainsFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContainsFold(FieldDni, v))
}

// FechaEQ applies the EQ predicate on the "fecha" field.
func FechaEQ(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldFecha, v))
}

// FechaNEQ applies the NEQ predicate on the "fecha" field.
func FechaNEQ(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldNEQ(FieldFecha, v))
}

// FechaIn applies the In predicate on the "fecha" field.
func FechaIn(vs ...time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldIn(FieldFecha, vs...))
}

// FechaNotIn applies the NotIn predicate on the "fecha" field.
func FechaNotIn(vs ...time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldNotIn(FieldFecha, vs...))
}

// FechaGT applies the GT predicate on the "fecha" field.
func FechaGT(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldGT(FieldFecha, v))
}

// FechaGTE applies the GTE predicate on the "fecha" field.
func FechaGTE(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldGTE(FieldFecha, v))
}

// FechaLT applies the LT predicate on the "fecha" field.
func FechaLT(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldLT(FieldFecha, v))
}

// FechaLTE applies the LTE predicate on the "fecha" field.
func FechaLTE(v time.Time) predicate.Foja {
	return predicate.Foja(sql.FieldLTE(FieldFecha, v))
}

// CirujanoEQ applies the EQ predicate on the "cirujano" field.
func CirujanoEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldCirujano, v))
}

// CirujanoNEQ applies the NEQ predicate on the "cirujano" field.
func CirujanoNEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldNEQ(FieldCirujano, v))
}

// CirujanoIn applies the In predicate on the "cirujano" field.
func CirujanoIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldIn(FieldCirujano, vs...))
}

// CirujanoNotIn applies the NotIn predicate on the "cirujano" field.
func CirujanoNotIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldNotIn(FieldCirujano, vs...))
}

// CirujanoGT applies the GT predicate on the "cirujano" field.
func CirujanoGT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGT(FieldCirujano, v))
}

// CirujanoGTE applies the GTE predicate on the "cirujano" field.
func CirujanoGTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGTE(FieldCirujano, v))
}

// CirujanoLT applies the LT predicate on the "cirujano" field.
func CirujanoLT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLT(FieldCirujano, v))
}

// CirujanoLTE applies the LTE predicate on the "cirujano" field.
func CirujanoLTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLTE(FieldCirujano, v))
}

// CirujanoContains applies the Contains predicate on the "cirujano" field.
func CirujanoContains(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContains(FieldCirujano, v))
}

// CirujanoHasPrefix applies the HasPrefix predicate on the "cirujano" field.
func CirujanoHasPrefix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasPrefix(FieldCirujano, v))
}

// CirujanoHasSuffix applies the HasSuffix predicate on the "cirujano" field.
func CirujanoHasSuffix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasSuffix(FieldCirujano, v))
}

// CirujanoEqualFold applies the EqualFold predicate on the "cirujano" field.
func CirujanoEqualFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEqualFold(FieldCirujano, v))
}

// CirujanoContainsFold applies the ContainsFold predicate on the "cirujano" field.
func CirujanoContainsFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContainsFold(FieldCirujano, v))
}

// Ayudante1EQ applies the EQ predicate on the "ayudante1" field.
func Ayudante1EQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldAyudante1, v))
}

// Ayudante1NEQ applies the NEQ predicate on the "ayudante1" field.
func Ayudante1NEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldNEQ(FieldAyudante1, v))
}

// Ayudante1In applies the In predicate on the "ayudante1" field.
func Ayudante1In(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldIn(FieldAyudante1, vs...))
}

// Ayudante1NotIn applies the NotIn predicate on the "ayudante1" field.
func Ayudante1NotIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldNotIn(FieldAyudante1, vs...))
}

// Ayudante1GT applies the GT predicate on the "ayudante1" field.
func Ayudante1GT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGT(FieldAyudante1, v))
}

// Ayudante1GTE applies the GTE predicate on the "ayudante1" field.
func Ayudante1GTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGTE(FieldAyudante1, v))
}

// Ayudante1LT applies the LT predicate on the "ayudante1" field.
func Ayudante1LT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLT(FieldAyudante1, v))
}

// Ayudante1LTE applies the LTE predicate on the "ayudante1" field.
func Ayudante1LTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLTE(FieldAyudante1, v))
}

// Ayudante1Contains applies the Contains predicate on the "ayudante1" field.
func Ayudante1Contains(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContains(FieldAyudante1, v))
}

// Ayudante1HasPrefix applies the HasPrefix predicate on the "ayudante1" field.
func Ayudante1HasPrefix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasPrefix(FieldAyudante1, v))
}

// Ayudante1HasSuffix applies the HasSuffix predicate on the "ayudante1" field.
func Ayudante1HasSuffix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasSuffix(FieldAyudante1, v))
}

// Ayudante1IsNil applies the IsNil predicate on the "ayudante1" field.
func Ayudante1IsNil() predicate.Foja {
	return predicate.Foja(sql.FieldIsNull(FieldAyudante1))
}

// Ayudante1NotNil applies the NotNil predicate on the "ayudante1" field.
func Ayudante1NotNil() predicate.Foja {
	return predicate.Foja(sql.FieldNotNull(FieldAyudante1))
}

// Ayudante1EqualFold applies the EqualFold predicate on the "ayudante1" field.
func Ayudante1EqualFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEqualFold(FieldAyudante1, v))
}

// Ayudante1ContainsFold applies the ContainsFold predicate on the "ayudante1" field.
func Ayudante1ContainsFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContainsFold(FieldAyudante1, v))
}

// Ayudante2EQ applies the EQ predicate on the "ayudante2" field.
func Ayudante2EQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldAyudante2, v))
}

// Ayudante2NEQ applies the NEQ predicate on the "ayudante2" field.
func Ayudante2NEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldNEQ(FieldAyudante2, v))
}

// Ayudante2In applies the In predicate on the "ayudante2" field.
func Ayudante2In(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldIn(FieldAyudante2, vs...))
}

// Ayudante2NotIn applies the NotIn predicate on the "ayudante2" field.
func Ayudante2NotIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldNotIn(FieldAyudante2, vs...))
}

// Ayudante2GT applies the GT predicate on the "ayudante2" field.
func Ayudante2GT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGT(FieldAyudante2, v))
}

// Ayudante2GTE applies the GTE predicate on the "ayudante2" field.
func Ayudante2GTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGTE(FieldAyudante2, v))
}

// Ayudante2LT applies the LT predicate on the "ayudante2" field.
func Ayudante2LT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLT(FieldAyudante2, v))
}

// Ayudante2LTE applies the LTE predicate on the "ayudante2" field.
func Ayudante2LTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLTE(FieldAyudante2, v))
}

// Ayudante2Contains applies the Contains predicate on the "ayudante2" field.
func Ayudante2Contains(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContains(FieldAyudante2, v))
}

// Ayudante2HasPrefix applies the HasPrefix predicate on the "ayudante2" field.
func Ayudante2HasPrefix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasPrefix(FieldAyudante2, v))
}

// Ayudante2HasSuffix applies the HasSuffix predicate on the "ayudante2" field.
func Ayudante2HasSuffix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasSuffix(FieldAyudante2, v))
}

// Ayudante2IsNil applies the IsNil predicate on the "ayudante2" field.
func Ayudante2IsNil() predicate.Foja {
	return predicate.Foja(sql.FieldIsNull(FieldAyudante2))
}

// Ayudante2NotNil applies the NotNil predicate on the "ayudante2" field.
func Ayudante2NotNil() predicate.Foja {
	return predicate.Foja(sql.FieldNotNull(FieldAyudante2))
}

// Ayudante2EqualFold applies the EqualFold predicate on the "ayudante2" field.
func Ayudante2EqualFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEqualFold(FieldAyudante2, v))
}

// Ayudante2ContainsFold applies the ContainsFold predicate on the "ayudante2" field.
func Ayudante2ContainsFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContainsFold(FieldAyudante2, v))
}

// Ayudante3EQ applies the EQ predicate on the "ayudante3" field.
func Ayudante3EQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldAyudante3, v))
}

// Ayudante3NEQ applies the NEQ predicate on the "ayudante3" field.
func Ayudante3NEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldNEQ(FieldAyudante3, v))
}

// Ayudante3In applies the In predicate on the "ayudante3" field.
func Ayudante3In(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldIn(FieldAyudante3, vs...))
}

// Ayudante3NotIn applies the NotIn predicate on the "ayudante3" field.
func Ayudante3NotIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldNotIn(FieldAyudante3, vs...))
}

// Ayudante3GT applies the GT predicate on the "ayudante3" field.
func Ayudante3GT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGT(FieldAyudante3, v))
}

// Ayudante3GTE applies the GTE predicate on the "ayudante3" field.
func Ayudante3GTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGTE(FieldAyudante3, v))
}

// Ayudante3LT applies the LT predicate on the "ayudante3" field.
func Ayudante3LT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLT(FieldAyudante3, v))
}

// Ayudante3LTE applies the LTE predicate on the "ayudante3" field.
func Ayudante3LTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLTE(FieldAyudante3, v))
}

// Ayudante3Contains applies the Contains predicate on the "ayudante3" field.
func Ayudante3Contains(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContains(FieldAyudante3, v))
}

// Ayudante3HasPrefix applies the HasPrefix predicate on the "ayudante3" field.
func Ayudante3HasPrefix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasPrefix(FieldAyudante3, v))
}

// Ayudante3HasSuffix applies the HasSuffix predicate on the "ayudante3" field.
func Ayudante3HasSuffix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasSuffix(FieldAyudante3, v))
}

// Ayudante3IsNil applies the IsNil predicate on the "ayudante3" field.
func Ayudante3IsNil() predicate.Foja {
	return predicate.Foja(sql.FieldIsNull(FieldAyudante3))
}

// Ayudante3NotNil applies the NotNil predicate on the "ayudante3" field.
func Ayudante3NotNil() predicate.Foja {
	return predicate.Foja(sql.FieldNotNull(FieldAyudante3))
}

// Ayudante3EqualFold applies the EqualFold predicate on the "ayudante3" field.
func Ayudante3EqualFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEqualFold(FieldAyudante3, v))
}

// Ayudante3ContainsFold applies the ContainsFold predicate on the "ayudante3" field.
func Ayudante3ContainsFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContainsFold(FieldAyudante3, v))
}

// AnestesiologoEQ applies the EQ predicate on the "anestesiologo" field.
func AnestesiologoEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldAnestesiologo, v))
}

// AnestesiologoNEQ applies the NEQ predicate on the "anestesiologo" field.
func AnestesiologoNEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldNEQ(FieldAnestesiologo, v))
}

// AnestesiologoIn applies the In predicate on the "anestesiologo" field.
func AnestesiologoIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldIn(FieldAnestesiologo, vs...))
}

// AnestesiologoNotIn applies the NotIn predicate on the "anestesiologo" field.
func AnestesiologoNotIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldNotIn(FieldAnestesiologo, vs...))
}

// AnestesiologoGT applies the GT predicate on the "anestesiologo" field.
func AnestesiologoGT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGT(FieldAnestesiologo, v))
}

// AnestesiologoGTE applies the GTE predicate on the "anestesiologo" field.
func AnestesiologoGTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGTE(FieldAnestesiologo, v))
}

// AnestesiologoLT applies the LT predicate on the "anestesiologo" field.
func AnestesiologoLT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLT(FieldAnestesiologo, v))
}

// AnestesiologoLTE applies the LTE predicate on the "anestesiologo" field.
func AnestesiologoLTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLTE(FieldAnestesiologo, v))
}

// AnestesiologoContains applies the Contains predicate on the "anestesiologo" field.
func AnestesiologoContains(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContains(FieldAnestesiologo, v))
}

// AnestesiologoHasPrefix applies the HasPrefix predicate on the "anestesiologo" field.
func AnestesiologoHasPrefix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasPrefix(FieldAnestesiologo, v))
}

// AnestesiologoHasSuffix applies the HasSuffix predicate on the "anestesiologo" field.
func AnestesiologoHasSuffix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasSuffix(FieldAnestesiologo, v))
}

// AnestesiologoIsNil applies the IsNil predicate on the "anestesiologo" field.
func AnestesiologoIsNil() predicate.Foja {
	return predicate.Foja(sql.FieldIsNull(FieldAnestesiologo))
}

// AnestesiologoNotNil applies the NotNil predicate on the "anestesiologo" field.
func AnestesiologoNotNil() predicate.Foja {
	return predicate.Foja(sql.FieldNotNull(FieldAnestesiologo))
}

// AnestesiologoEqualFold applies the EqualFold predicate on the "anestesiologo" field.
func AnestesiologoEqualFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEqualFold(FieldAnestesiologo, v))
}

// AnestesiologoContainsFold applies the ContainsFold predicate on the "anestesiologo" field.
func AnestesiologoContainsFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContainsFold(FieldAnestesiologo, v))
}

// AnestesiaEQ applies the EQ predicate on the "anestesia" field.
func AnestesiaEQ(v Anestesia) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldAnestesia, v))
}

// AnestesiaNEQ applies the NEQ predicate on the "anestesia" field.
func AnestesiaNEQ(v Anestesia) predicate.Foja {
	return predicate.Foja(sql.FieldNEQ(FieldAnestesia, v))
}

// AnestesiaIn applies the In predicate on the "anestesia" field.
func AnestesiaIn(vs ...Anestesia) predicate.Foja {
	return predicate.Foja(sql.FieldIn(FieldAnestesia, vs...))
}

// AnestesiaNotIn applies the NotIn predicate on the "anestesia" field.
func AnestesiaNotIn(vs ...Anestesia) predicate.Foja {
	return predicate.Foja(sql.FieldNotIn(FieldAnestesia, vs...))
}

// InstrumentadorEQ applies the EQ predicate on the "instrumentador" field.
func InstrumentadorEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldInstrumentador, v))
}

// InstrumentadorNEQ applies the NEQ predicate on the "instrumentador" field.
func InstrumentadorNEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldNEQ(FieldInstrumentador, v))
}

// InstrumentadorIn applies the In predicate on the "instrumentador" field.
func InstrumentadorIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldIn(FieldInstrumentador, vs...))
}

// InstrumentadorNotIn applies the NotIn predicate on the "instrumentador" field.
func InstrumentadorNotIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldNotIn(FieldInstrumentador, vs...))
}

// InstrumentadorGT applies the GT predicate on the "instrumentador" field.
func InstrumentadorGT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGT(FieldInstrumentador, v))
}

// InstrumentadorGTE applies the GTE predicate on the "instrumentador" field.
func InstrumentadorGTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGTE(FieldInstrumentador, v))
}

// InstrumentadorLT applies the LT predicate on the "instrumentador" field.
func InstrumentadorLT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLT(FieldInstrumentador, v))
}

// InstrumentadorLTE applies the LTE predicate on the "instrumentador" field.
func InstrumentadorLTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLTE(FieldInstrumentador, v))
}

// InstrumentadorContains applies the Contains predicate on the "instrumentador" field.
func InstrumentadorContains(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContains(FieldInstrumentador, v))
}

// InstrumentadorHasPrefix applies the HasPrefix predicate on the "instrumentador" field.
func InstrumentadorHasPrefix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasPrefix(FieldInstrumentador, v))
}

// InstrumentadorHasSuffix applies the HasSuffix predicate on the "instrumentador" field.
func InstrumentadorHasSuffix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasSuffix(FieldInstrumentador, v))
}

// InstrumentadorIsNil applies the IsNil predicate on the "instrumentador" field.
func InstrumentadorIsNil() predicate.Foja {
	return predicate.Foja(sql.FieldIsNull(FieldInstrumentador))
}

// InstrumentadorNotNil applies the NotNil predicate on the "instrumentador" field.
func InstrumentadorNotNil() predicate.Foja {
	return predicate.Foja(sql.FieldNotNull(FieldInstrumentador))
}

// InstrumentadorEqualFold applies the EqualFold predicate on the "instrumentador" field.
func InstrumentadorEqualFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEqualFold(FieldInstrumentador, v))
}

// InstrumentadorContainsFold applies the ContainsFold predicate on the "instrumentador" field.
func InstrumentadorContainsFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContainsFold(FieldInstrumentador, v))
}

// RiesgoQuirurgicoEQ applies the EQ predicate on the "riesgo_quirurgico" field.
func RiesgoQuirurgicoEQ(v RiesgoQuirurgico) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldRiesgoQuirurgico, v))
}

// RiesgoQuirurgicoNEQ applies the NEQ predicate on the "riesgo_quirurgico" field.
func RiesgoQuirurgicoNEQ(v RiesgoQuirurgico) predicate.Foja {
	return predicate.Foja(sql.FieldNEQ(FieldRiesgoQuirurgico, v))
}

// RiesgoQuirurgicoIn applies the In predicate on the "riesgo_quirurgico" field.
func RiesgoQuirurgicoIn(vs ...RiesgoQuirurgico) predicate.Foja {
	return predicate.Foja(sql.FieldIn(FieldRiesgoQuirurgico, vs...))
}

// RiesgoQuirurgicoNotIn applies the NotIn predicate on the "riesgo_quirurgico" field.
func RiesgoQuirurgicoNotIn(vs ...RiesgoQuirurgico) predicate.Foja {
	return predicate.Foja(sql.FieldNotIn(FieldRiesgoQuirurgico, vs...))
}

// DiagnosticoPreoperatorioEQ applies the EQ predicate on the "diagnostico_preoperatorio" field.
func DiagnosticoPreoperatorioEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldDiagnosticoPreoperatorio, v))
}

// DiagnosticoPreoperatorioNEQ applies the NEQ predicate on the "diagnostico_preoperatorio" field.
func DiagnosticoPreoperatorioNEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldNEQ(FieldDiagnosticoPreoperatorio, v))
}

// DiagnosticoPreoperatorioIn applies the In predicate on the "diagnostico_preoperatorio" field.
func DiagnosticoPreoperatorioIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldIn(FieldDiagnosticoPreoperatorio, vs...))
}

// DiagnosticoPreoperatorioNotIn applies the NotIn predicate on the "diagnostico_preoperatorio" field.
func DiagnosticoPreoperatorioNotIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldNotIn(FieldDiagnosticoPreoperatorio, vs...))
}

// DiagnosticoPreoperatorioGT applies the GT predicate on the "diagnostico_preoperatorio" field.
func DiagnosticoPreoperatorioGT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGT(FieldDiagnosticoPreoperatorio, v))
}

// DiagnosticoPreoperatorioGTE applies the GTE predicate on the "diagnostico_preoperatorio" field.
func DiagnosticoPreoperatorioGTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGTE(FieldDiagnosticoPreoperatorio, v))
}

// DiagnosticoPreoperatorioLT applies the LT predicate on the "diagnostico_preoperatorio" field.
func DiagnosticoPreoperatorioLT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLT(FieldDiagnosticoPreoperatorio, v))
}

// DiagnosticoPreoperatorioLTE applies the LTE predicate on the "diagnostico_preoperatorio" field.
func DiagnosticoPreoperatorioLTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLTE(FieldDiagnosticoPreoperatorio, v))
}

// DiagnosticoPreoperatorioContains applies the Contains predicate on the "diagnostico_preoperatorio" field.
func DiagnosticoPreoperatorioContains(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContains(FieldDiagnosticoPreoperatorio, v))
}

// DiagnosticoPreoperatorioHasPrefix applies the HasPrefix predicate on the "diagnostico_preoperatorio" field.
func DiagnosticoPreoperatorioHasPrefix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasPrefix(FieldDiagnosticoPreoperatorio, v))
}

// DiagnosticoPreoperatorioHasSuffix applies the HasSuffix predicate on the "diagnostico_preoperatorio" field.
func DiagnosticoPreoperatorioHasSuffix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasSuffix(FieldDiagnosticoPreoperatorio, v))
}

// DiagnosticoPreoperatorioEqualFold applies the EqualFold predicate on the "diagnostico_preoperatorio" field.
func DiagnosticoPreoperatorioEqualFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEqualFold(FieldDiagnosticoPreoperatorio, v))
}

// DiagnosticoPreoperatorioContainsFold applies the ContainsFold predicate on the "diagnostico_preoperatorio" field.
func DiagnosticoPreoperatorioContainsFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContainsFold(FieldDiagnosticoPreoperatorio, v))
}

// PlanQuirurgicoEQ applies the EQ predicate on the "plan_quirurgico" field.
func PlanQuirurgicoEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldPlanQuirurgico, v))
}

// PlanQuirurgicoNEQ applies the NEQ predicate on the "plan_quirurgico" field.
func PlanQuirurgicoNEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldNEQ(FieldPlanQuirurgico, v))
}

// PlanQuirurgicoIn applies the In predicate on the "plan_quirurgico" field.
func PlanQuirurgicoIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldIn(FieldPlanQuirurgico, vs...))
}

// PlanQuirurgicoNotIn applies the NotIn predicate on the "plan_quirurgico" field.
func PlanQuirurgicoNotIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldNotIn(FieldPlanQuirurgico, vs...))
}

// PlanQuirurgicoGT applies the GT predicate on the "plan_quirurgico" field.
func PlanQuirurgicoGT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGT(FieldPlanQuirurgico, v))
}

// PlanQuirurgicoGTE applies the GTE predicate on the "plan_quirurgico" field.
func PlanQuirurgicoGTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGTE(FieldPlanQuirurgico, v))
}

// PlanQuirurgicoLT applies the LT predicate on the "plan_quirurgico" field.
func PlanQuirurgicoLT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLT(FieldPlanQuirurgico, v))
}

// PlanQuirurgicoLTE applies the LTE predicate on the "plan_quirurgico" field.
func PlanQuirurgicoLTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLTE(FieldPlanQuirurgico, v))
}

// PlanQuirurgicoContains applies the Contains predicate on the "plan_quirurgico" field.
func PlanQuirurgicoContains(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContains(FieldPlanQuirurgico, v))
}

// PlanQuirurgicoHasPrefix applies the HasPrefix predicate on the "plan_quirurgico" field.
func PlanQuirurgicoHasPrefix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasPrefix(FieldPlanQuirurgico, v))
}

// PlanQuirurgicoHasSuffix applies the HasSuffix predicate on the "plan_quirurgico" field.
func PlanQuirurgicoHasSuffix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasSuffix(FieldPlanQuirurgico, v))
}

// PlanQuirurgicoEqualFold applies the EqualFold predicate on the "plan_quirurgico" field.
func PlanQuirurgicoEqualFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEqualFold(FieldPlanQuirurgico, v))
}

// PlanQuirurgicoContainsFold applies the ContainsFold predicate on the "plan_quirurgico" field.
func PlanQuirurgicoContainsFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContainsFold(FieldPlanQuirurgico, v))
}

// DiagnosticoPostoperatorioEQ applies the EQ predicate on the "diagnostico_postoperatorio" field.
func DiagnosticoPostoperatorioEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldDiagnosticoPostoperatorio, v))
}

// DiagnosticoPostoperatorioNEQ applies the NEQ predicate on the "diagnostico_postoperatorio" field.
func DiagnosticoPostoperatorioNEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldNEQ(FieldDiagnosticoPostoperatorio, v))
}

// DiagnosticoPostoperatorioIn applies the In predicate on the "diagnostico_postoperatorio" field.
func DiagnosticoPostoperatorioIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldIn(FieldDiagnosticoPostoperatorio, vs...))
}

// DiagnosticoPostoperatorioNotIn applies the NotIn predicate on the "diagnostico_postoperatorio" field.
func DiagnosticoPostoperatorioNotIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldNotIn(FieldDiagnosticoPostoperatorio, vs...))
}

// DiagnosticoPostoperatorioGT applies the GT predicate on the "diagnostico_postoperatorio" field.
func DiagnosticoPostoperatorioGT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGT(FieldDiagnosticoPostoperatorio, v))
}

// DiagnosticoPostoperatorioGTE applies the GTE predicate on the "diagnostico_postoperatorio" field.
func DiagnosticoPostoperatorioGTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGTE(FieldDiagnosticoPostoperatorio, v))
}

// DiagnosticoPostoperatorioLT applies the LT predicate on the "diagnostico_postoperatorio" field.
func DiagnosticoPostoperatorioLT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLT(FieldDiagnosticoPostoperatorio, v))
}

// DiagnosticoPostoperatorioLTE applies the LTE predicate on the "diagnostico_postoperatorio" field.
func DiagnosticoPostoperatorioLTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLTE(FieldDiagnosticoPostoperatorio, v))
}

// DiagnosticoPostoperatorioContains applies the Contains predicate on the "diagnostico_postoperatorio" field.
func DiagnosticoPostoperatorioContains(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContains(FieldDiagnosticoPostoperatorio, v))
}

// DiagnosticoPostoperatorioHasPrefix applies the HasPrefix predicate on the "diagnostico_postoperatorio" field.
func DiagnosticoPostoperatorioHasPrefix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasPrefix(FieldDiagnosticoPostoperatorio, v))
}

// DiagnosticoPostoperatorioHasSuffix applies the HasSuffix predicate on the "diagnostico_postoperatorio" field.
func DiagnosticoPostoperatorioHasSuffix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasSuffix(FieldDiagnosticoPostoperatorio, v))
}

// DiagnosticoPostoperatorioEqualFold applies the EqualFold predicate on the "diagnostico_postoperatorio" field.
func DiagnosticoPostoperatorioEqualFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEqualFold(FieldDiagnosticoPostoperatorio, v))
}

// DiagnosticoPostoperatorioContainsFold applies the ContainsFold predicate on the "diagnostico_postoperatorio" field.
func DiagnosticoPostoperatorioContainsFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContainsFold(FieldDiagnosticoPostoperatorio, v))
}

// OperacionRealizadaEQ applies the EQ predicate on the "operacion_realizada" field.
func OperacionRealizadaEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldOperacionRealizada, v))
}

// OperacionRealizadaNEQ applies the NEQ predicate on the "operacion_realizada" field.
func OperacionRealizadaNEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldNEQ(FieldOperacionRealizada, v))
}

// OperacionRealizadaIn applies the In predicate on the "operacion_realizada" field.
func OperacionRealizadaIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldIn(FieldOperacionRealizada, vs...))
}

// OperacionRealizadaNotIn applies the NotIn predicate on the "operacion_realizada" field.
func OperacionRealizadaNotIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldNotIn(FieldOperacionRealizada, vs...))
}

// OperacionRealizadaGT applies the GT predicate on the "operacion_realizada" field.
func OperacionRealizadaGT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGT(FieldOperacionRealizada, v))
}

// OperacionRealizadaGTE applies the GTE predicate on the "operacion_realizada" field.
func OperacionRealizadaGTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGTE(FieldOperacionRealizada, v))
}

// OperacionRealizadaLT applies the LT predicate on the "operacion_realizada" field.
func OperacionRealizadaLT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLT(FieldOperacionRealizada, v))
}

// OperacionRealizadaLTE applies the LTE predicate on the "operacion_realizada" field.
func OperacionRealizadaLTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLTE(FieldOperacionRealizada, v))
}

// OperacionRealizadaContains applies the Contains predicate on the "operacion_realizada" field.
func OperacionRealizadaContains(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContains(FieldOperacionRealizada, v))
}

// OperacionRealizadaHasPrefix applies the HasPrefix predicate on the "operacion_realizada" field.
func OperacionRealizadaHasPrefix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasPrefix(FieldOperacionRealizada, v))
}

// OperacionRealizadaHasSuffix applies the HasSuffix predicate on the "operacion_realizada" field.
func OperacionRealizadaHasSuffix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasSuffix(FieldOperacionRealizada, v))
}

// OperacionRealizadaEqualFold applies the EqualFold predicate on the "operacion_realizada" field.
func OperacionRealizadaEqualFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEqualFold(FieldOperacionRealizada, v))
}

// OperacionRealizadaContainsFold applies the ContainsFold predicate on the "operacion_realizada" field.
func OperacionRealizadaContainsFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContainsFold(FieldOperacionRealizada, v))
}

// AnatomiaPatologicaEQ applies the EQ predicate on the "anatomia_patologica" field.
func AnatomiaPatologicaEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldAnatomiaPatologica, v))
}

// AnatomiaPatologicaNEQ applies the NEQ predicate on the "anatomia_patologica" field.
func AnatomiaPatologicaNEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldNEQ(FieldAnatomiaPatologica, v))
}

// AnatomiaPatologicaIn applies the In predicate on the "anatomia_patologica" field.
func AnatomiaPatologicaIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldIn(FieldAnatomiaPatologica, vs...))
}

// AnatomiaPatologicaNotIn applies the NotIn predicate on the "anatomia_patologica" field.
func AnatomiaPatologicaNotIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldNotIn(FieldAnatomiaPatologica, vs...))
}

// AnatomiaPatologicaGT applies the GT predicate on the "anatomia_patologica" field.
func AnatomiaPatologicaGT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGT(FieldAnatomiaPatologica, v))
}

// AnatomiaPatologicaGTE applies the GTE predicate on the "anatomia_patologica" field.
func AnatomiaPatologicaGTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGTE(FieldAnatomiaPatologica, v))
}

// AnatomiaPatologicaLT applies the LT predicate on the "anatomia_patologica" field.
func AnatomiaPatologicaLT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLT(FieldAnatomiaPatologica, v))
}

// AnatomiaPatologicaLTE applies the LTE predicate on the "anatomia_patologica" field.
func AnatomiaPatologicaLTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLTE(FieldAnatomiaPatologica, v))
}

// AnatomiaPatologicaContains applies the Contains predicate on the "anatomia_patologica" field.
func AnatomiaPatologicaContains(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContains(FieldAnatomiaPatologica, v))
}

// AnatomiaPatologicaHasPrefix applies the HasPrefix predicate on the "anatomia_patologica" field.
func AnatomiaPatologicaHasPrefix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasPrefix(FieldAnatomiaPatologica, v))
}

// AnatomiaPatologicaHasSuffix applies the HasSuffix predicate on the "anatomia_patologica" field.
func AnatomiaPatologicaHasSuffix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasSuffix(FieldAnatomiaPatologica, v))
}

// AnatomiaPatologicaIsNil applies the IsNil predicate on the "anatomia_patologica" field.
func AnatomiaPatologicaIsNil() predicate.Foja {
	return predicate.Foja(sql.FieldIsNull(FieldAnatomiaPatologica))
}

// AnatomiaPatologicaNotNil applies the NotNil predicate on the "anatomia_patologica" field.
func AnatomiaPatologicaNotNil() predicate.Foja {
	return predicate.Foja(sql.FieldNotNull(FieldAnatomiaPatologica))
}

// AnatomiaPatologicaEqualFold applies the EqualFold predicate on the "anatomia_patologica" field.
func AnatomiaPatologicaEqualFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEqualFold(FieldAnatomiaPatologica, v))
}

// AnatomiaPatologicaContainsFold applies the ContainsFold predicate on the "anatomia_patologica" field.
func AnatomiaPatologicaContainsFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContainsFold(FieldAnatomiaPatologica, v))
}

// DescripcionTecnicaEQ applies the EQ predicate on the "descripcion_tecnica" field.
func DescripcionTecnicaEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldDescripcionTecnica, v))
}

// DescripcionTecnicaNEQ applies the NEQ predicate on the "descripcion_tecnica" field.
func DescripcionTecnicaNEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldNEQ(FieldDescripcionTecnica, v))
}

// DescripcionTecnicaIn applies the In predicate on the "descripcion_tecnica" field.
func DescripcionTecnicaIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldIn(FieldDescripcionTecnica, vs...))
}

// DescripcionTecnicaNotIn applies the NotIn predicate on the "descripcion_tecnica" field.
func DescripcionTecnicaNotIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldNotIn(FieldDescripcionTecnica, vs...))
}

// DescripcionTecnicaGT applies the GT predicate on the "descripcion_tecnica" field.
func DescripcionTecnicaGT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGT(FieldDescripcionTecnica, v))
}

// DescripcionTecnicaGTE applies the GTE predicate on the "descripcion_tecnica" field.
func DescripcionTecnicaGTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGTE(FieldDescripcionTecnica, v))
}

// DescripcionTecnicaLT applies the LT predicate on the "descripcion_tecnica" field.
func DescripcionTecnicaLT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLT(FieldDescripcionTecnica, v))
}

// DescripcionTecnicaLTE applies the LTE predicate on the "descripcion_tecnica" field.
func DescripcionTecnicaLTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLTE(FieldDescripcionTecnica, v))
}

// DescripcionTecnicaContains applies the Contains predicate on the "descripcion_tecnica" field.
func DescripcionTecnicaContains(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContains(FieldDescripcionTecnica, v))
}

// DescripcionTecnicaHasPrefix applies the HasPrefix predicate on the "descripcion_tecnica" field.
func DescripcionTecnicaHasPrefix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasPrefix(FieldDescripcionTecnica, v))
}

// DescripcionTecnicaHasSuffix applies the HasSuffix predicate on the "descripcion_tecnica" field.
func DescripcionTecnicaHasSuffix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasSuffix(FieldDescripcionTecnica, v))
}

// DescripcionTecnicaEqualFold applies the EqualFold predicate on the "descripcion_tecnica" field.
func DescripcionTecnicaEqualFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEqualFold(FieldDescripcionTecnica, v))
}

// DescripcionTecnicaContainsFold applies the ContainsFold predicate on the "descripcion_tecnica" field.
func DescripcionTecnicaContainsFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContainsFold(FieldDescripcionTecnica, v))
}

// MedicoResponsableEQ applies the EQ predicate on the "medico_responsable" field.
func MedicoResponsableEQ(v uuid.UUID) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldMedicoResponsable, v))
}

// MedicoResponsableNEQ applies the NEQ predicate on the "medico_responsable" field.
func MedicoResponsableNEQ(v uuid.UUID) predicate.Foja {
	return predicate.Foja(sql.FieldNEQ(FieldMedicoResponsable, v))
}

// MedicoResponsableIn applies the In predicate on the "medico_responsable" field.
func MedicoResponsableIn(vs ...uuid.UUID) predicate.Foja {
	return predicate.Foja(sql.FieldIn(FieldMedicoResponsable, vs...))
}

// MedicoResponsableNotIn applies the NotIn predicate on the "medico_responsable" field.
func MedicoResponsableNotIn(vs ...uuid.UUID) predicate.Foja {
	return predicate.Foja(sql.FieldNotIn(FieldMedicoResponsable, vs...))
}

// MedicoResponsableNombreEQ applies the EQ predicate on the "medico_responsable_nombre" field.
func MedicoResponsableNombreEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldMedicoResponsableNombre, v))
}

// MedicoResponsableNombreNEQ applies the NEQ predicate on the "medico_responsable_nombre" field.
func MedicoResponsableNombreNEQ(v string) predicate.Foja {
	return predicate.Foja(sql.FieldNEQ(FieldMedicoResponsableNombre, v))
}

// MedicoResponsableNombreIn applies the In predicate on the "medico_responsable_nombre" field.
func MedicoResponsableNombreIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldIn(FieldMedicoResponsableNombre, vs...))
}

// MedicoResponsableNombreNotIn applies the NotIn predicate on the "medico_responsable_nombre" field.
func MedicoResponsableNombreNotIn(vs ...string) predicate.Foja {
	return predicate.Foja(sql.FieldNotIn(FieldMedicoResponsableNombre, vs...))
}

// MedicoResponsableNombreGT applies the GT predicate on the "medico_responsable_nombre" field.
func MedicoResponsableNombreGT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGT(FieldMedicoResponsableNombre, v))
}

// MedicoResponsableNombreGTE applies the GTE predicate on the "medico_responsable_nombre" field.
func MedicoResponsableNombreGTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldGTE(FieldMedicoResponsableNombre, v))
}

// MedicoResponsableNombreLT applies the LT predicate on the "medico_responsable_nombre" field.
func MedicoResponsableNombreLT(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLT(FieldMedicoResponsableNombre, v))
}

// MedicoResponsableNombreLTE applies the LTE predicate on the "medico_responsable_nombre" field.
func MedicoResponsableNombreLTE(v string) predicate.Foja {
	return predicate.Foja(sql.FieldLTE(FieldMedicoResponsableNombre, v))
}

// MedicoResponsableNombreContains applies the Contains predicate on the "medico_responsable_nombre" field.
func MedicoResponsableNombreContains(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContains(FieldMedicoResponsableNombre, v))
}

// MedicoResponsableNombreHasPrefix applies the HasPrefix predicate on the "medico_responsable_nombre" field.
func MedicoResponsableNombreHasPrefix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasPrefix(FieldMedicoResponsableNombre, v))
}

// MedicoResponsableNombreHasSuffix applies the HasSuffix predicate on the "medico_responsable_nombre" field.
func MedicoResponsableNombreHasSuffix(v string) predicate.Foja {
	return predicate.Foja(sql.FieldHasSuffix(FieldMedicoResponsableNombre, v))
}

// MedicoResponsableNombreEqualFold applies the EqualFold predicate on the "medico_responsable_nombre" field.
func MedicoResponsableNombreEqualFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldEqualFold(FieldMedicoResponsableNombre, v))
}

// MedicoResponsableNombreContainsFold applies the ContainsFold predicate on the "medico_responsable_nombre" field.
func MedicoResponsableNombreContainsFold(v string) predicate.Foja {
	return predicate.Foja(sql.FieldContainsFold(FieldMedicoResponsableNombre, v))
}

// InvalidaEQ applies the EQ predicate on the "invalida" field.
func InvalidaEQ(v bool) predicate.Foja {
	return predicate.Foja(sql.FieldEQ(FieldInvalida, v))
}

// InvalidaNEQ applies the NEQ predicate on the "invalida" field.
func InvalidaNEQ(v bool) predicate.Foja {
	return predicate.Foja(sql.FieldNEQ(FieldInvalida, v))
}

// HasResponsable applies the HasEdge predicate on the "responsable" edge.
func HasResponsable() predicate.Foja {
	return predicate.Foja(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, ResponsableTable, ResponsableColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasResponsableWith applies the HasEdge predicate on the "responsable" edge with a given conditions (other predicates).
func HasResponsableWith(preds ...predicate.Usuario) predicate.Foja {
	return predicate.Foja(func(s *sql.Selector) {
		step := newResponsableStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Foja) predicate.Foja {
	return predicate.Foja(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Foja) predicate.Foja {
	return predicate.Foja(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Foja) predicate.Foja {
	return predicate.Foja(sql.NotPredicates(p))
}
