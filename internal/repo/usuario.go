// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nlonghi/fojas_backend/internal/repo/usuario"
)

// Usuario is the model entity for the Usuario schema.
type Usuario struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Full name
	Nombre string `json:"nombre,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// Dni holds the value of the "dni" field.
	Dni *string `json:"dni,omitempty"`
	// Rol holds the value of the "rol" field.
	Rol string `json:"rol,omitempty"`
	// Habilitado holds the value of the "habilitado" field.
	Habilitado bool `json:"habilitado,omitempty"`
	// PasswordHash holds the value of the "password_hash" field.
	PasswordHash *string `json:"-"`
	// MustChangePassword holds the value of the "must_change_password" field.
	MustChangePassword bool `json:"must_change_password,omitempty"`
	// LastLoginAt holds the value of the "last_login_at" field.
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	// FailedLoginAttempts holds the value of the "failed_login_attempts" field.
	FailedLoginAttempts int `json:"failed_login_attempts,omitempty"`
	// Account locked until this time after repeated login failures
	LockedUntil  *time.Time `json:"locked_until,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Usuario) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case usuario.FieldHabilitado, usuario.FieldMustChangePassword:
			values[i] = new(sql.NullBool)
		case usuario.FieldFailedLoginAttempts:
			values[i] = new(sql.NullInt64)
		case usuario.FieldNombre, usuario.FieldEmail, usuario.FieldDni, usuario.FieldRol, usuario.FieldPasswordHash:
			values[i] = new(sql.NullString)
		case usuario.FieldCreatedAt, usuario.FieldUpdatedAt, usuario.FieldLastLoginAt, usuario.FieldLockedUntil:
			values[i] = new(sql.NullTime)
		case usuario.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Usuario fields.
func (_m *Usuario) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case usuario.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case usuario.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case usuario.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case usuario.FieldNombre:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nombre", values[i])
			} else if value.Valid {
				_m.Nombre = value.String
			}
		case usuario.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case usuario.FieldDni:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dni", values[i])
			} else if value.Valid {
				_m.Dni = new(string)
				*_m.Dni = value.String
			}
		case usuario.FieldRol:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rol", values[i])
			} else if value.Valid {
				_m.Rol = value.String
			}
		case usuario.FieldHabilitado:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field habilitado", values[i])
			} else if value.Valid {
				_m.Habilitado = value.Bool
			}
		case usuario.FieldPasswordHash:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field password_hash", values[i])
			} else if value.Valid {
				_m.PasswordHash = new(string)
				*_m.PasswordHash = value.String
			}
		case usuario.FieldMustChangePassword:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field must_change_password", values[i])
			} else if value.Valid {
				_m.MustChangePassword = value.Bool
			}
		case usuario.FieldLastLoginAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_login_at", values[i])
			} else if value.Valid {
				_m.LastLoginAt = new(time.Time)
				*_m.LastLoginAt = value.Time
			}
		case usuario.FieldFailedLoginAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failed_login_attempts", values[i])
			} else if value.Valid {
				_m.FailedLoginAttempts = int(value.Int64)
			}
		case usuario.FieldLockedUntil:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field locked_until", values[i])
			} else if value.Valid {
				_m.LockedUntil = new(time.Time)
				*_m.LockedUntil = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Usuario.
// This includes values selected through modifiers, order, etc.
func (_m *Usuario) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Usuario.
// Note that you need to call Usuario.Unwrap() before calling this method if this Usuario
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Usuario) Update() *UsuarioUpdateOne {
	return NewUsuarioClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Usuario entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Usuario) Unwrap() *Usuario {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Usuario is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Usuario) String() string {
	var builder strings.Builder
	builder.WriteString("Usuario(")
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
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	if v := _m.Dni; v != nil {
		builder.WriteString("dni=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("rol=")
	builder.WriteString(_m.Rol)
	builder.WriteString(", ")
	builder.WriteString("habilitado=")
	builder.WriteString(fmt.Sprintf("%v", _m.Habilitado))
	builder.WriteString(", ")
	builder.WriteString("password_hash=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("must_change_password=")
	builder.WriteString(fmt.Sprintf("%v", _m.MustChangePassword))
	builder.WriteString(", ")
	if v := _m.LastLoginAt; v != nil {
		builder.WriteString("last_login_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("failed_login_attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailedLoginAttempts))
	builder.WriteString(", ")
	if v := _m.LockedUntil; v != nil {
		builder.WriteString("locked_until=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Usuarios is a parsable slice of Usuario.
type Usuarios []*Usuario
