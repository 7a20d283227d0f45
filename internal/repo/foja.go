// Code generated by ent, DO NOT EDIT.

package repo

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nlonghi/fojas_backend/internal/repo/foja"
	"github.com/nlonghi/fojas_backend/internal/repo/usuario"
)

// Foja is the model entity for the Foja schema.
type Foja struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// NombrePaciente holds the value of the "nombre_paciente" field.
	NombrePaciente string `json:"nombre_paciente,omitempty"`
	// Links to pacientes.num_historia_clinica, by value
	NumHistoriaClinica string `json:"num_historia_clinica,omitempty"`
	// FechaNacimiento holds the value of the "fecha_nacimiento" field.
	FechaNacimiento *time.Time `json:"fecha_nacimiento,omitempty"`
	// Dni holds the value of the "dni" field.
	Dni *string `json:"dni,omitempty"`
	// Fecha holds the value of the "fecha" field.
	Fecha time.Time `json:"fecha,omitempty"`
	// Cirujano holds the value of the "cirujano" field.
	Cirujano string `json:"cirujano,omitempty"`
	// Ayudante1 holds the value of the "ayudante1" field.
	Ayudante1 *string `json:"ayudante1,omitempty"`
	// Ayudante2 holds the value of the "ayudante2" field.
	Ayudante2 *string `json:"ayudante2,omitempty"`
	// Ayudante3 holds the value of the "ayudante3" field.
	Ayudante3 *string `json:"ayudante3,omitempty"`
	// Anestesiologo holds the value of the "anestesiologo" field.
	Anestesiologo *string `json:"anestesiologo,omitempty"`
	// Anestesia holds the value of the "anestesia" field.
	Anestesia foja.Anestesia `json:"anestesia,omitempty"`
	// Instrumentador holds the value of the "instrumentador" field.
	Instrumentador *string `json:"instrumentador,omitempty"`
	// RiesgoQuirurgico holds the value of the "riesgo_quirurgico" field.
	RiesgoQuirurgico foja.RiesgoQuirurgico `json:"riesgo_quirurgico,omitempty"`
	// DiagnosticoPreoperatorio holds the value of the "diagnostico_preoperatorio" field.
	DiagnosticoPreoperatorio string `json:"diagnostico_preoperatorio,omitempty"`
	// PlanQuirurgico holds the value of the "plan_quirurgico" field.
	PlanQuirurgico string `json:"plan_quirurgico,omitempty"`
	// DiagnosticoPostoperatorio holds the value of the "diagnostico_postoperatorio" field.
	DiagnosticoPostoperatorio string `json:"diagnostico_postoperatorio,omitempty"`
	// OperacionRealizada holds the value of the "operacion_realizada" field.
	OperacionRealizada string `json:"operacion_realizada,omitempty"`
	// AnatomiaPatologica holds the value of the "anatomia_patologica" field.
	AnatomiaPatologica *string `json:"anatomia_patologica,omitempty"`
	// DescripcionTecnica holds the value of the "descripcion_tecnica" field.
	DescripcionTecnica string `json:"descripcion_tecnica,omitempty"`
	// MedicoResponsable holds the value of the "medico_responsable" field.
	MedicoResponsable uuid.UUID `json:"medico_responsable,omitempty"`
	// MedicoResponsableNombre holds the value of the "medico_responsable_nombre" field.
	MedicoResponsableNombre string `json:"medico_responsable_nombre,omitempty"`
	// Invalida holds the value of the "invalida" field.
	Invalida bool `json:"invalida,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the FojaQuery when eager-loading is set.
	Edges        FojaEdges `json:"edges"`
	selectValues sql.SelectValues
}

// FojaEdges holds the relations/edges for other nodes in the graph.
type FojaEdges struct {
	// Responsable holds the value of the responsable edge.
	Responsable *Usuario `json:"responsable,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ResponsableOrErr returns the Responsable value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e FojaEdges) ResponsableOrErr() (*Usuario, error) {
	if e.Responsable != nil {
		return e.Responsable, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: usuario.Label}
	}
	return nil, &NotLoadedError{edge: "responsable"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Foja) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case foja.FieldInvalida:
			values[i] = new(sql.NullBool)
		case foja.FieldNombrePaciente, foja.FieldNumHistoriaClinica, foja.FieldDni, foja.FieldCirujano, foja.FieldAyudante1, foja.FieldAyudante2, foja.FieldAyudante3, foja.FieldAnestesiologo, foja.FieldAnestesia, foja.FieldInstrumentador, foja.FieldRiesgoQuirurgico, foja.FieldDiagnosticoPreoperatorio, foja.FieldPlanQuirurgico, foja.FieldDiagnosticoPostoperatorio, foja.FieldOperacionRealizada, foja.FieldAnatomiaPatologica, foja.FieldDescripcionTecnica, foja.FieldMedicoResponsableNombre:
			values[i] = new(sql.NullString)
		case foja.FieldCreatedAt, foja.FieldUpdatedAt, foja.FieldFechaNacimiento, foja.FieldFecha:
			values[i] = new(sql.NullTime)
		case foja.FieldID, foja.FieldMedicoResponsable:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Foja fields.
func (_m *Foja) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case foja.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case foja.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case foja.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case foja.FieldNombrePaciente:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nombre_paciente", values[i])
			} else if value.Valid {
				_m.NombrePaciente = value.String
			}
		case foja.FieldNumHistoriaClinica:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field num_historia_clinica", values[i])
			} else if value.Valid {
				_m.NumHistoriaClinica = value.String
			}
		case foja.FieldFechaNacimiento:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fecha_nacimiento", values[i])
			} else if value.Valid {
				_m.FechaNacimiento = new(time.Time)
				*_m.FechaNacimiento = value.Time
			}
		case foja.FieldDni:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dni", values[i])
			} else if value.Valid {
				_m.Dni = new(string)
				*_m.Dni = value.String
			}
		case foja.FieldFecha:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field fecha", values[i])
			} else if value.Valid {
				_m.Fecha = value.Time
			}
		case foja.FieldCirujano:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cirujano", values[i])
			} else if value.Valid {
				_m.Cirujano = value.String
			}
		case foja.FieldAyudante1:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ayudante1", values[i])
			} else if value.Valid {
				_m.Ayudante1 = new(string)
				*_m.Ayudante1 = value.String
			}
		case foja.FieldAyudante2:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ayudante2", values[i])
			} else if value.Valid {
				_m.Ayudante2 = new(string)
				*_m.Ayudante2 = value.String
			}
		case foja.FieldAyudante3:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ayudante3", values[i])
			} else if value.Valid {
				_m.Ayudante3 = new(string)
				*_m.Ayudante3 = value.String
			}
		case foja.FieldAnestesiologo:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field anestesiologo", values[i])
			} else if value.Valid {
				_m.Anestesiologo = new(string)
				*_m.Anestesiologo = value.String
			}
		case foja.FieldAnestesia:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field anestesia", values[i])
			} else if value.Valid {
				_m.Anestesia = foja.Anestesia(value.String)
			}
		case foja.FieldInstrumentador:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field instrumentador", values[i])
			} else if value.Valid {
				_m.Instrumentador = new(string)
				*_m.Instrumentador = value.String
			}
		case foja.FieldRiesgoQuirurgico:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field riesgo_quirurgico", values[i])
			} else if value.Valid {
				_m.RiesgoQuirurgico = foja.RiesgoQuirurgico(value.String)
			}
		case foja.FieldDiagnosticoPreoperatorio:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field diagnostico_preoperatorio", values[i])
			} else if value.Valid {
				_m.DiagnosticoPreoperatorio = value.String
			}
		case foja.FieldPlanQuirurgico:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_quirurgico", values[i])
			} else if value.Valid {
				_m.PlanQuirurgico = value.String
			}
		case foja.FieldDiagnosticoPostoperatorio:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field diagnostico_postoperatorio", values[i])
			} else if value.Valid {
				_m.DiagnosticoPostoperatorio = value.String
			}
		case foja.FieldOperacionRealizada:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field operacion_realizada", values[i])
			} else if value.Valid {
				_m.OperacionRealizada = value.String
			}
		case foja.FieldAnatomiaPatologica:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field anatomia_patologica", values[i])
			} else if value.Valid {
				_m.AnatomiaPatologica = new(string)
				*_m.AnatomiaPatologica = value.String
			}
		case foja.FieldDescripcionTecnica:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field descripcion_tecnica", values[i])
			} else if value.Valid {
				_m.DescripcionTecnica = value.String
			}
		case foja.FieldMedicoResponsable:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field medico_responsable", values[i])
			} else if value != nil {
				_m.MedicoResponsable = *value
			}
		case foja.FieldMedicoResponsableNombre:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field medico_responsable_nombre", values[i])
			} else if value.Valid {
				_m.MedicoResponsableNombre = value.String
			}
		case foja.FieldInvalida:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field invalida", values[i])
			} else if value.Valid {
				_m.Invalida = value.Bool
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Foja.
// This includes values selected through modifiers, order, etc.
func (_m *Foja) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryResponsable queries the "responsable" edge of the Foja entity.
func (_m *Foja) QueryResponsable() *UsuarioQuery {
	return NewFojaClient(_m.config).QueryResponsable(_m)
}

// Update returns a builder for updating this Foja.
// Note that you need to call Foja.Unwrap() before calling this method if this Foja
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Foja) Update() *FojaUpdateOne {
	return NewFojaClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Foja entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Foja) Unwrap() *Foja {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("repo: Foja is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Foja) String() string {
	var builder strings.Builder
	builder.WriteString("Foja(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("nombre_paciente=")
	builder.WriteString(_m.NombrePaciente)
	builder.WriteString(", ")
	builder.WriteString("num_historia_clinica=")
	builder.WriteString(_m.NumHistoriaClinica)
	builder.WriteString(", ")
	if v := _m.FechaNacimiento; v != nil {
		builder.WriteString("fecha_nacimiento=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.Dni; v != nil {
		builder.WriteString("dni=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("fecha=")
	builder.WriteString(_m.Fecha.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("cirujano=")
	builder.WriteString(_m.Cirujano)
	builder.WriteString(", ")
	if v := _m.Ayudante1; v != nil {
		builder.WriteString("ayudante1=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Ayudante2; v != nil {
		builder.WriteString("ayudante2=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Ayudante3; v != nil {
		builder.WriteString("ayudante3=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Anestesiologo; v != nil {
		builder.WriteString("anestesiologo=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("anestesia=")
	builder.WriteString(fmt.Sprintf("%v", _m.Anestesia))
	builder.WriteString(", ")
	if v := _m.Instrumentador; v != nil {
		builder.WriteString("instrumentador=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("riesgo_quirurgico=")
	builder.WriteString(fmt.Sprintf("%v", _m.RiesgoQuirurgico))
	builder.WriteString(", ")
	builder.WriteString("diagnostico_preoperatorio=")
	builder.WriteString(_m.DiagnosticoPreoperatorio)
	builder.WriteString(", ")
	builder.WriteString("plan_quirurgico=")
	builder.WriteString(_m.PlanQuirurgico)
	builder.WriteString(", ")
	builder.WriteString("diagnostico_postoperatorio=")
	builder.WriteString(_m.DiagnosticoPostoperatorio)
	builder.WriteString(", ")
	builder.WriteString("operacion_realizada=")
	builder.WriteString(_m.OperacionRealizada)
	builder.WriteString(", ")
	if v := _m.AnatomiaPatologica; v != nil {
		builder.WriteString("anatomia_patologica=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("descripcion_tecnica=")
	builder.WriteString(_m.DescripcionTecnica)
	builder.WriteString(", ")
	builder.WriteString("medico_responsable=")
	builder.WriteString(fmt.Sprintf("%v", _m.MedicoResponsable))
	builder.WriteString(", ")
	builder.WriteString("medico_responsable_nombre=")
	builder.WriteString(_m.MedicoResponsableNombre)
	builder.WriteString(", ")
	builder.WriteString("invalida=")
	builder.WriteString(fmt.Sprintf("%v", _m.Invalida))
	builder.WriteByte(')')
	return builder.String()
}

// Fojas is a parsable slice of Foja.
type Fojas []*Foja
