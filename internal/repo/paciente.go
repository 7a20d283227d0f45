// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nlonghi/fojas_backend/internal/repo/paciente"
)

// Paciente is the model entity for the Paciente schema.
type Paciente struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Nombre holds the value of the "nombre" field.
	Nombre string `json:"nombre,omitempty"`
	// NumHistoriaClinica holds the value of the "num_historia_clinica" field.
	NumHistoriaClinica string `json:"num_historia_clinica,omitempty"`
	// FechaNacimiento holds the value of the "fecha_nacimiento" field.
	FechaNacimiento *time.Time `json:"fecha_nacimiento,omitempty"`
	// Genero holds the value of the "genero" field.
	Genero *string `json:"genero,omitempty"`
	// Direccion holds the value of the "direccion" field.
	Direccion *string `json:"direccion,omitempty"`
	// Telefono holds the value of the "telefono" field.
	Telefono *string `json:"telefono,omitempty"`
	// Dni holds the value of the "dni" field.
	Dni          *string `json:"dni,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Paciente) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case paciente.FieldNombre, paciente.FieldNumHistoriaClinica, paciente.FieldGenero, paciente.FieldDireccion, paciente.FieldTelefono, paciente.FieldDni:
			values[i] = new(sql.NullString)
		case paciente.FieldCreatedAt, paciente.FieldUpdatedAt, paciente.FieldFechaNacimiento:
			values[i] = new(sql.NullTime)
		case paciente.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Paciente fields.
func (_m *Paciente) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case paciente.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case paciente.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case paciente.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case paciente.FieldNombre:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nombre", values[i])
			} else if value.Valid {
				_m.Nombre = value.String
			}
		case paciente.FieldNumHistoriaClinica:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field num_historia_clinica", values[i])
			} else if value.Valid {
				_m.NumHistoriaClinica = value.String
			}
		case paciente.FieldFechaNacimiento:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fecha_nacimiento", values[i])
			} else if value.Valid {
				_m.FechaNacimiento = new(time.Time)
				*_m.FechaNacimiento = value.Time
			}
		case paciente.FieldGenero:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field genero", values[i])
			} else if value.Valid {
				_m.Genero = new(string)
				*_m.Genero = value.String
			}
		case paciente.FieldDireccion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field direccion", values[i])
			} else if value.Valid {
				_m.Direccion = new(string)
				*_m.Direccion = value.String
			}
		case paciente.FieldTelefono:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field telefono", values[i])
			} else if value.Valid {
				_m.Telefono = new(string)
				*_m.Telefono = value.String
			}
		case paciente.FieldDni:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dni", values[i])
			} else if value.Valid {
				_m.Dni = new(string)
				*_m.Dni = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Paciente.
// This includes values selected through modifiers, order, etc.
func (_m *Paciente) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Paciente.
// Note that you need to call Paciente.Unwrap() before calling this method if this Paciente
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Paciente) Update() *PacienteUpdateOne {
	return NewPacienteClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Paciente entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Paciente) Unwrap() *Paciente {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Paciente is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Paciente) String() string {
	var builder strings.Builder
	builder.WriteString("Paciente(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("nombre=")
	builder.WriteString(_m.Nombre)
	builder.WriteString(", ")
	builder.WriteString("num_historia_clinica=")
	builder.WriteString(_m.NumHistoriaClinica)
	builder.WriteString(", ")
	if v := _m.FechaNacimiento; v != nil {
		builder.WriteString("fecha_nacimiento=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Genero; v != nil {
		builder.WriteString("genero=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Direccion; v != nil {
		builder.WriteString("direccion=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Telefono; v != nil {
		builder.WriteString("telefono=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Dni; v != nil {
		builder.WriteString("dni=")
		builder.WriteString(*v)
	}
	builder.WriteByte(')')
	return builder.String()
}

// Pacientes is a parsable slice of Paciente.
type Pacientes []*Paciente
