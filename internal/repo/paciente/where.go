// Code generated by ent, DO NOT EDIT.

package paciente

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nlonghi/fojas_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Paciente {
	return predicate.Paciente(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Paciente {
	return predicate.Paciente(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Paciente {
	return predicate.Paciente(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Paciente {
	return predicate.Paciente(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Paciente {
	return predicate.Paciente(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Paciente {
	return predicate.Paciente(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Paciente {
	return predicate.Paciente(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Paciente {
	return predicate.Paciente(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Paciente {
	return predicate.Paciente(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldEQ(FieldUpdatedAt, v))
}

// Nombre applies equality check predicate on the "nombre" field. It's identical to NombreEQ.
func Nombre(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldEQ(FieldNombre, v))
}

// NumHistoriaClinica applies equality check predicate on the "num_historia_clinica" field. It's identical to NumHistoriaClinicaEQ.
func NumHistoriaClinica(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldEQ(FieldNumHistoriaClinica, v))
}

// FechaNacimiento applies equality check predicate on the "fecha_nacimiento" field. It's identical to FechaNacimientoEQ.
func FechaNacimiento(v time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldEQ(FieldFechaNacimiento, v))
}

// Genero applies equality check predicate on the "genero" field. It's identical to GeneroEQ.
func Genero(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldEQ(FieldGenero, v))
}

// Direccion applies equality check predicate on the "direccion" field. It's identical to DireccionEQ.
func Direccion(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldEQ(FieldDireccion, v))
}

// Telefono applies equality check predicate on the "telefono" field. It's identical to TelefonoEQ.
func Telefono(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldEQ(FieldTelefono, v))
}

// Dni applies equality check predicate on the "dni" field. It's identical to DniEQ.
func Dni(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldEQ(FieldDni, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldLTE(FieldUpdatedAt, v))
}

// NombreEQ applies the EQ predicate on the "nombre" field.
func NombreEQ(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldEQ(FieldNombre, v))
}

// NombreNEQ applies the NEQ predicate on the "nombre" field.
func NombreNEQ(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldNEQ(FieldNombre, v))
}

// NombreIn applies the In predicate on the "nombre" field.
func NombreIn(vs ...string) predicate.Paciente {
	return predicate.Paciente(sql.FieldIn(FieldNombre, vs...))
}

// NombreNotIn applies the NotIn predicate on the "nombre" field.
func NombreNotIn(vs ...string) predicate.Paciente {
	return predicate.Paciente(sql.FieldNotIn(FieldNombre, vs...))
}

// NombreGT applies the GT predicate on the "nombre" field.
func NombreGT(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldGT(FieldNombre, v))
}

// NombreGTE applies the GTE predicate on the "nombre" field.
func NombreGTE(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldGTE(FieldNombre, v))
}

// NombreLT applies the LT predicate on the "nombre" field.
func NombreLT(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldLT(FieldNombre, v))
}

// NombreLTE applies the LTE predicate on the "nombre" field.
func NombreLTE(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldLTE(FieldNombre, v))
}

// NombreContains applies the Contains predicate on the "nombre" field.
func NombreContains(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldContains(FieldNombre, v))
}

// NombreHasPrefix applies the HasPrefix predicate on the "nombre" field.
func NombreHasPrefix(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldHasPrefix(FieldNombre, v))
}

// NombreHasSuffix applies the HasSuffix predicate on the "nombre" field.
func NombreHasSuffix(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldHasSuffix(FieldNombre, v))
}

// NombreEqualFold applies the EqualFold predicate on the "nombre" field.
func NombreEqualFold(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldEqualFold(FieldNombre, v))
}

// NombreContainsFold applies the ContainsFold predicate on the "nombre" field.
func NombreContainsFold(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldContainsFold(FieldNombre, v))
}

// NumHistoriaClinicaEQ applies the EQ predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaEQ(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldEQ(FieldNumHistoriaClinica, v))
}

// NumHistoriaClinicaNEQ applies the NEQ predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaNEQ(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldNEQ(FieldNumHistoriaClinica, v))
}

// NumHistoriaClinicaIn applies the In predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaIn(vs ...string) predicate.Paciente {
	return predicate.Paciente(sql.FieldIn(FieldNumHistoriaClinica, vs...))
}

// NumHistoriaClinicaNotIn applies the NotIn predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaNotIn(vs ...string) predicate.Paciente {
	return predicate.Paciente(sql.FieldNotIn(FieldNumHistoriaClinica, vs...))
}

// NumHistoriaClinicaGT applies the GT predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaGT(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldGT(FieldNumHistoriaClinica, v))
}

// NumHistoriaClinicaGTE applies the GTE predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaGTE(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldGTE(FieldNumHistoriaClinica, v))
}

// NumHistoriaClinicaLT applies the LT predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaLT(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldLT(FieldNumHistoriaClinica, v))
}

// NumHistoriaClinicaLTE applies the LTE predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaLTE(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldLTE(FieldNumHistoriaClinica, v))
}

// NumHistoriaClinicaContains applies the Contains predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaContains(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldContains(FieldNumHistoriaClinica, v))
}

// NumHistoriaClinicaHasPrefix applies the HasPrefix predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaHasPrefix(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldHasPrefix(FieldNumHistoriaClinica, v))
}

// NumHistoriaClinicaHasSuffix applies the HasSuffix predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaHasSuffix(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldHasSuffix(FieldNumHistoriaClinica, v))
}

// NumHistoriaClinicaEqualFold applies the EqualFold predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaEqualFold(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldEqualFold(FieldNumHistoriaClinica, v))
}

// NumHistoriaClinicaContainsFold applies the ContainsFold predicate on the "num_historia_clinica" field.
func NumHistoriaClinicaContainsFold(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldContainsFold(FieldNumHistoriaClinica, v))
}

// FechaNacimientoEQ applies the EQ predicate on the "fecha_nacimiento" field.
func FechaNacimientoEQ(v time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldEQ(FieldFechaNacimiento, v))
}

// FechaNacimientoNEQ applies the NEQ predicate on the "fecha_nacimiento" field.
func FechaNacimientoNEQ(v time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldNEQ(FieldFechaNacimiento, v))
}

// FechaNacimientoIn applies the In predicate on the "fecha_nacimiento" field.
func FechaNacimientoIn(vs ...time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldIn(FieldFechaNacimiento, vs...))
}

// FechaNacimientoNotIn applies the NotIn predicate on the "fecha_nacimiento" field.
func FechaNacimientoNotIn(vs ...time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldNotIn(FieldFechaNacimiento, vs...))
}

// FechaNacimientoGT applies the GT predicate on the "fecha_nacimiento" field.
func FechaNacimientoGT(v time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldGT(FieldFechaNacimiento, v))
}

// FechaNacimientoGTE applies the GTE predicate on the "fecha_nacimiento" field.
func FechaNacimientoGTE(v time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldGTE(FieldFechaNacimiento, v))
}

// FechaNacimientoLT applies the LT predicate on the "fecha_nacimiento" field.
func FechaNacimientoLT(v time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldLT(FieldFechaNacimiento, v))
}

// FechaNacimientoLTE applies the LTE predicate on the "fecha_nacimiento" field.
func FechaNacimientoLTE(v time.Time) predicate.Paciente {
	return predicate.Paciente(sql.FieldLTE(FieldFechaNacimiento, v))
}

// FechaNacimientoIsNil applies the IsNil predicate on the "fecha_nacimiento" field.
func FechaNacimientoIsNil() predicate.Paciente {
	return predicate.Paciente(sql.FieldIsNull(FieldFechaNacimiento))
}

// FechaNacimientoNotNil applies the NotNil predicate on the "fecha_nacimiento" field.
func FechaNacimientoNotNil() predicate.Paciente {
	return predicate.Paciente(sql.FieldNotNull(FieldFechaNacimiento))
}

// GeneroEQ applies the EQ predicate on the "genero" field.
func GeneroEQ(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldEQ(FieldGenero, v))
}

// GeneroNEQ applies the NEQ predicate on the "genero" field.
func GeneroNEQ(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldNEQ(FieldGenero, v))
}

// GeneroIn applies the In predicate on the "genero" field.
func GeneroIn(vs ...string) predicate.Paciente {
	return predicate.Paciente(sql.FieldIn(FieldGenero, vs...))
}

// GeneroNotIn applies the NotIn predicate on the "genero" field.
func GeneroNotIn(vs ...string) predicate.Paciente {
	return predicate.Paciente(sql.FieldNotIn(FieldGenero, vs...))
}

// GeneroGT applies the GT predicate on the "genero" field.
func GeneroGT(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldGT(FieldGenero, v))
}

// GeneroGTE applies the GTE predicate on the "genero" field.
func GeneroGTE(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldGTE(FieldGenero, v))
}

// GeneroLT applies the LT predicate on the "genero" field.
func GeneroLT(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldLT(FieldGenero, v))
}

// GeneroLTE applies the LTE predicate on the "genero" field.
func GeneroLTE(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldLTE(FieldGenero, v))
}

// GeneroContains applies the Contains predicate on the "genero" field.
func GeneroContains(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldContains(FieldGenero, v))
}

// GeneroHasPrefix applies the HasPrefix predicate on the "genero" field.
func GeneroHasPrefix(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldHasPrefix(FieldGenero, v))
}

// GeneroHasSuffix applies the HasSuffix predicate on the "genero" field.
func GeneroHasSuffix(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldHasSuffix(FieldGenero, v))
}

// GeneroIsNil applies the IsNil predicate on the "genero" field.
func GeneroIsNil() predicate.Paciente {
	return predicate.Paciente(sql.FieldIsNull(FieldGenero))
}

// GeneroNotNil applies the NotNil predicate on the "genero" field.
func GeneroNotNil() predicate.Paciente {
	return predicate.Paciente(sql.FieldNotNull(FieldGenero))
}

// GeneroEqualFold applies the EqualFold predicate on the "genero" field.
func GeneroEqualFold(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldEqualFold(FieldGenero, v))
}

// GeneroContainsFold applies the ContainsFold predicate on the "genero" field.
func GeneroContainsFold(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldContainsFold(FieldGenero, v))
}

// DireccionEQ applies the EQ predicate on the "direccion" field.
func DireccionEQ(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldEQ(FieldDireccion, v))
}

// DireccionNEQ applies the NEQ predicate on the "direccion" field.
func DireccionNEQ(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldNEQ(FieldDireccion, v))
}

// DireccionIn applies the In predicate on the "direccion" field.
func DireccionIn(vs ...string) predicate.Paciente {
	return predicate.Paciente(sql.FieldIn(FieldDireccion, vs...))
}

// DireccionNotIn applies the NotIn predicate on the "direccion" field.
func DireccionNotIn(vs ...string) predicate.Paciente {
	return predicate.Paciente(sql.FieldNotIn(FieldDireccion, vs...))
}

// DireccionGT applies the GT predicate on the "direccion" field.
func DireccionGT(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldGT(FieldDireccion, v))
}

// DireccionGTE applies the GTE predicate on the "direccion" field.
func DireccionGTE(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldGTE(FieldDireccion, v))
}

// DireccionLT applies the LT predicate on the "direccion" field.
func DireccionLT(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldLT(FieldDireccion, v))
}

// DireccionLTE applies the LTE predicate on the "direccion" field.
func DireccionLTE(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldLTE(FieldDireccion, v))
}

// DireccionContains applies the Contains predicate on the "direccion" field.
func DireccionContains(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldContains(FieldDireccion, v))
}

// DireccionHasPrefix applies the HasPrefix predicate on the "direccion" field.
func DireccionHasPrefix(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldHasPrefix(FieldDireccion, v))
}

// DireccionHasSuffix applies the HasSuffix predicate on the "direccion" field.
func DireccionHasSuffix(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldHasSuffix(FieldDireccion, v))
}

// DireccionIsNil applies the IsNil predicate on the "direccion" field.
func DireccionIsNil() predicate.Paciente {
	return predicate.Paciente(sql.FieldIsNull(FieldDireccion))
}

// DireccionNotNil applies the NotNil predicate on the "direccion" field.
func DireccionNotNil() predicate.Paciente {
	return predicate.Paciente(sql.FieldNotNull(FieldDireccion))
}

// DireccionEqualFold applies the EqualFold predicate on the "direccion" field.
func DireccionEqualFold(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldEqualFold(FieldDireccion, v))
}

// DireccionContainsFold applies the ContainsFold predicate on the "direccion" field.
func DireccionContainsFold(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldContainsFold(FieldDireccion, v))
}

// TelefonoEQ applies the EQ predicate on the "telefono" field.
func TelefonoEQ(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldEQ(FieldTelefono, v))
}

// TelefonoNEQ applies the NEQ predicate on the "telefono" field.
func TelefonoNEQ(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldNEQ(FieldTelefono, v))
}

// TelefonoIn applies the In predicate on the "telefono" field.
func TelefonoIn(vs ...string) predicate.Paciente {
	return predicate.Paciente(sql.FieldIn(FieldTelefono, vs...))
}

// TelefonoNotIn applies the NotIn predicate on the "telefono" field.
func TelefonoNotIn(vs ...string) predicate.Paciente {
	return predicate.Paciente(sql.FieldNotIn(FieldTelefono, vs...))
}

// TelefonoGT applies the GT predicate on the "telefono" field.
func TelefonoGT(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldGT(FieldTelefono, v))
}

// TelefonoGTE applies the GTE predicate on the "telefono" field.
func TelefonoGTE(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldGTE(FieldTelefono, v))
}

// TelefonoLT applies the LT predicate on the "telefono" field.
func TelefonoLT(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldLT(FieldTelefono, v))
}

// TelefonoLTE applies the LTE predicate on the "telefono" field.
func TelefonoLTE(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldLTE(FieldTelefono, v))
}

// TelefonoContains applies the Contains predicate on the "telefono" field.
func TelefonoContains(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldContains(FieldTelefono, v))
}

// TelefonoHasPrefix applies the HasPrefix predicate on the "telefono" field.
func TelefonoHasPrefix(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldHasPrefix(FieldTelefono, v))
}

// TelefonoHasSuffix applies the HasSuffix predicate on the "telefono" field.
func TelefonoHasSuffix(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldHasSuffix(FieldTelefono, v))
}

// TelefonoIsNil applies the IsNil predicate on the "telefono" field.
func TelefonoIsNil() predicate.Paciente {
	return predicate.Paciente(sql.FieldIsNull(FieldTelefono))
}

// TelefonoNotNil applies the NotNil predicate on the "telefono" field.
func TelefonoNotNil() predicate.Paciente {
	return predicate.Paciente(sql.FieldNotNull(FieldTelefono))
}

// TelefonoEqualFold applies the EqualFold predicate on the "telefono" field.
func TelefonoEqualFold(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldEqualFold(FieldTelefono, v))
}

// TelefonoContainsFold applies the ContainsFold predicate on the "telefono" field.
func TelefonoContainsFold(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldContainsFold(FieldTelefono, v))
}

// DniEQ applies the EQ predicate on the "dni" field.
func DniEQ(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldEQ(FieldDni, v))
}

// DniNEQ applies the NEQ predicate on the "dni" field.
func DniNEQ(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldNEQ(FieldDni, v))
}

// DniIn applies the In predicate on the "dni" field.
func DniIn(vs ...string) predicate.Paciente {
	return predicate.Paciente(sql.FieldIn(FieldDni, vs...))
}

// DniNotIn applies the NotIn predicate on the "dni" field.
func DniNotIn(vs ...string) predicate.Paciente {
	return predicate.Paciente(sql.FieldNotIn(FieldDni, vs...))
}

// DniGT applies the GT predicate on the "dni" field.
func DniGT(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldGT(FieldDni, v))
}

// DniGTE applies the GTE predicate on the "dni" field.
func DniGTE(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldGTE(FieldDni, v))
}

// DniLT applies the LT predicate on the "dni" field.
func DniLT(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldLT(FieldDni, v))
}

// DniLTE applies the LTE predicate on the "dni" field.
func DniLTE(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldLTE(FieldDni, v))
}

// DniContains applies the Contains predicate on the "dni" field.
func DniContains(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldContains(FieldDni, v))
}

// DniHasPrefix applies the HasPrefix predicate on the "dni" field.
func DniHasPrefix(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldHasPrefix(FieldDni, v))
}

// DniHasSuffix applies the HasSuffix predicate on the "dni" field.
func DniHasSuffix(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldHasSuffix(FieldDni, v))
}

// DniIsNil applies the IsNil predicate on the "dni" field.
func DniIsNil() predicate.Paciente {
	return predicate.Paciente(sql.FieldIsNull(FieldDni))
}

// DniNotNil applies the NotNil predicate on the "dni" field.
func DniNotNil() predicate.Paciente {
	return predicate.Paciente(sql.FieldNotNull(FieldDni))
}

// DniEqualFold applies the EqualFold predicate on the "dni" field.
func DniEqualFold(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldEqualFold(FieldDni, v))
}

// DniContainsFold applies the ContainsFold predicate on the "dni" field.
func DniContainsFold(v string) predicate.Paciente {
	return predicate.Paciente(sql.FieldContainsFold(FieldDni, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Paciente) predicate.Paciente {
	return predicate.Paciente(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Paciente) predicate.Paciente {
	return predicate.Paciente(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Paciente) predicate.Paciente {
	return predicate.Paciente(sql.NotPredicates(p))
}
