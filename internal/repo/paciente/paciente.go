// Code generated by ent, DO NOT EDIT.

package paciente

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the paciente type in the database.
	Label = "paciente"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldNombre holds the string denoting the nombre field in the database.
	FieldNombre = "nombre"
	// FieldNumHistoriaClinica holds the string denoting the num_historia_clinica field in the database.
	FieldNumHistoriaClinica = "num_historia_clinica"
	// FieldFechaNacimiento holds the string denoting the fecha_nacimiento field in the database.
	FieldFechaNacimiento = "fecha_nacimiento"
	// FieldGenero holds the string denoting the genero field in the database.
	FieldGenero = "genero"
	// FieldDireccion holds the string denoting the direccion field in the database.
	FieldDireccion = "direccion"
	// FieldTelefono holds the string denoting the telefono field in the database.
	FieldTelefono = "telefono"
	// FieldDni holds the string denoting the dni field in the database.
	FieldDni = "dni"
	// Table holds the table name of the paciente in the database.
	Table = "pacientes"
)

// Columns holds all SQL columns for paciente fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldNombre,
	FieldNumHistoriaClinica,
	FieldFechaNacimiento,
	FieldGenero,
	FieldDireccion,
	FieldTelefono,
	FieldDni,
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
	// NombreValidator is a validator for the "nombre" field. It is called by the builders before save.
	NombreValidator func(string) error
	// NumHistoriaClinicaValidator is a validator for the "num_historia_clinica" field. It is called by the builders before save.
	NumHistoriaClinicaValidator func(string) error
	// GeneroValidator is a validator for the "genero" field. It is called by the builders before save.
	GeneroValidator func(string) error
	// DireccionValidator is a validator for the "direccion" field. It is called by the builders before save.
	DireccionValidator func(string) error
	// TelefonoValidator is a validator for the "telefono" field. It is called by the builders before save.
	TelefonoValidator func(string) error
	// DniValidator is a validator for the "dni" field. It is called by the builders before save.
	DniValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Paciente queries.
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

// ByNombre orders the results by the nombre field.
func ByNombre(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNombre, opts...).ToFunc()
}

// ByNumHistoriaClinica orders the results by the num_historia_clinica field.
func ByNumHistoriaClinica(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNumHistoriaClinica, opts...).ToFunc()
}

// ByFechaNacimiento orders the results by the fecha_nacimiento field.
func ByFechaNacimiento(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFechaNacimiento, opts...).ToFunc()
}

// ByGenero orders the results by the genero field.
func ByGenero(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenero, opts...).ToFunc()
}

// ByDireccion orders the results by the direccion field.
func ByDireccion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDireccion, opts...).ToFunc()
}

// ByTelefono orders the results by the telefono field.
func ByTelefono(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTelefono, opts...).ToFunc()
}

// ByDni orders the results by the dni field.
func ByDni(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDni, opts...).ToFunc()
}
