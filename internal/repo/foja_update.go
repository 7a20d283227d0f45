// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/nlonghi/fojas_backend/internal/repo/foja"
	"github.com/nlonghi/fojas_backend/internal/repo/predicate"
)

// FojaUpdate is the builder for updating Foja entities.
type FojaUpdate struct {
	config
	hooks    []Hook
	mutation *FojaMutation
}

// Where appends a list predicates to the FojaUpdate builder.
func (_u *FojaUpdate) Where(ps ...predicate.Foja) *FojaUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FojaUpdate) SetUpdatedAt(v time.Time) *FojaUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNombrePaciente sets the "nombre_paciente" field.
func (_u *FojaUpdate) SetNombrePaciente(v string) *FojaUpdate {
	_u.mutation.SetNombrePaciente(v)
	return _u
}

// SetNillableNombrePaciente sets the "nombre_paciente" field if the given value is not nil.
func (_u *FojaUpdate) SetNillableNombrePaciente(v *string) *FojaUpdate {
	if v != nil {
		_u.SetNombrePaciente(*v)
	}
	return _u
}

// SetNumHistoriaClinica sets the "num_historia_clinica" field.
func (_u *FojaUpdate) SetNumHistoriaClinica(v string) *FojaUpdate {
	_u.mutation.SetNumHistoriaClinica(v)
	return _u
}

// SetNillableNumHistoriaClinica sets the "num_historia_clinica" field if the given value is not nil.
func (_u *FojaUpdate) SetNillableNumHistoriaClinica(v *string) *FojaUpdate {
	if v != nil {
		_u.SetNumHistoriaClinica(*v)
	}
	return _u
}

// SetFechaNacimiento sets the "fecha_nacimiento" field.
func (_u *FojaUpdate) SetFechaNacimiento(v time.Time) *FojaUpdate {
	_u.mutation.SetFechaNacimiento(v)
	return _u
}

// SetNillableFechaNacimiento sets the "fecha_nacimiento" field if the given value is not nil.
func (_u *FojaUpdate) SetNillableFechaNacimiento(v *time.Time) *FojaUpdate {
	if v != nil {
		_u.SetFechaNacimiento(*v)
	}
	return _u
}

// ClearFechaNacimiento clears the value of the "fecha_nacimiento" field.
func (_u *FojaUpdate) ClearFechaNacimiento() *FojaUpdate {
	_u.mutation.ClearFechaNacimiento()
	return _u
}

// SetDni sets the "dni" field.
func (_u *FojaUpdate) SetDni(v string) *FojaUpdate {
	_u.mutation.SetDni(v)
	return _u
}

// SetNillableDni sets the "dni" field if the given value is not nil.
func (_u *FojaUpdate) SetNillableDni(v *string) *FojaUpdate {
	if v != nil {
		_u.SetDni(*v)
	}
	return _u
}

// ClearDni clears the value of the "dni" field.
func (_u *FojaUpdate) ClearDni() *FojaUpdate {
	_u.mutation.ClearDni()
	return _u
}

// SetFecha sets the "fecha" field.
func (_u *FojaUpdate) SetFecha(v time.Time) *FojaUpdate {
	_u.mutation.SetFecha(v)
	return _u
}

// SetNillableFecha sets the "fecha" field if the given value is not nil.
func (_u *FojaUpdate) SetNillableFecha(v *time.Time) *FojaUpdate {
	if v != nil {
		_u.SetFecha(*v)
	}
	return _u
}

// SetCirujano sets the "cirujano" field.
func (_u *FojaUpdate) SetCirujano(v string) *FojaUpdate {
	_u.mutation.SetCirujano(v)
	return _u
}

// SetNillableCirujano sets the "cirujano" field if the given value is not nil.
func (_u *FojaUpdate) SetNillableCirujano(v *string) *FojaUpdate {
	if v != nil {
		_u.SetCirujano(*v)
	}
	return _u
}

// SetAyudante1 sets the "ayudante1" field.
func (_u *FojaUpdate) SetAyudante1(v string) *FojaUpdate {
	_u.mutation.SetAyudante1(v)
	return _u
}

// SetNillableAyudante1 sets the "ayudante1" field if the given value is not nil.
func (_u *FojaUpdate) SetNillableAyudante1(v *string) *FojaUpdate {
	if v != nil {
		_u.SetAyudante1(*v)
	}
	return _u
}

// ClearAyudante1 clears the value of the "ayudante1" field.
func (_u *FojaUpdate) ClearAyudante1() *FojaUpdate {
	_u.mutation.ClearAyudante1()
	return _u
}

// SetAyudante2 sets the "ayudante2" field.
func (_u *FojaUpdate) SetAyudante2(v string) *FojaUpdate {
	_u.mutation.SetAyudante2(v)
	return _u
}

// SetNillableAyudante2 sets the "ayudante2" field if the given value is not nil.
func (_u *FojaUpdate) SetNillableAyudante2(v *string) *FojaUpdate {
	if v != nil {
		_u.SetAyudante2(*v)
	}
	return _u
}

// ClearAyudante2 clears the value of the "ayudante2" field.
func (_u *FojaUpdate) ClearAyudante2() *FojaUpdate {
	_u.mutation.ClearAyudante2()
	return _u
}

// SetAyudante3 sets the "ayudante3" field.
func (_u *FojaUpdate) SetAyudante3(v string) *FojaUpdate {
	_u.mutation.SetAyudante3(v)
	return _u
}

// SetNillableAyudante3 sets the "ayudante3" field if the given value is not nil.
func (_u *FojaUpdate) SetNillableAyudante3(v *string) *FojaUpdate {
	if v != nil {
		_u.SetAyudante3(*v)
	}
	return _u
}

// ClearAyudante3 clears the value of the "ayudante3" field.
func (_u *FojaUpdate) ClearAyudante3() *FojaUpdate {
	_u.mutation.ClearAyudante3()
	return _u
}

// SetAnestesiologo sets the "anestesiologo" field.
func (_u *FojaUpdate) SetAnestesiologo(v string) *FojaUpdate {
	_u.mutation.SetAnestesiologo(v)
	return _u
}

// SetNillableAnestesiologo sets the "anestesiologo" field if the given value is not nil.
func (_u *FojaUpdate) SetNillableAnestesiologo(v *string) *FojaUpdate {
	if v != nil {
		_u.SetAnestesiologo(*v)
	}
	return _u
}

// ClearAnestesiologo clears the value of the "anestesiologo" field.
func (_u *FojaUpdate) ClearAnestesiologo() *FojaUpdate {
	_u.mutation.ClearAnestesiologo()
	return _u
}

// SetAnestesia sets the "anestesia" field.
func (_u *FojaUpdate) SetAnestesia(v foja.Anestesia) *FojaUpdate {
	_u.mutation.SetAnestesia(v)
	return _u
}

// SetNillableAnestesia sets the "anestesia" field if the given value is not nil.
func (_u *FojaUpdate) SetNillableAnestesia(v *foja.Anestesia) *FojaUpdate {
	if v != nil {
		_u.SetAnestesia(*v)
	}
	return _u
}

// SetInstrumentador sets the "instrumentador" field.
func (_u *FojaUpdate) SetInstrumentador(v string) *FojaUpdate {
	_u.mutation.SetInstrumentador(v)
	return _u
}

// SetNillableInstrumentador sets the "instrumentador" field if the given value is not nil.
func (_u *FojaUpdate) SetNillableInstrumentador(v *string) *FojaUpdate {
	if v != nil {
		_u.SetInstrumentador(*v)
	}
	return _u
}

// ClearInstrumentador clears the value of the "instrumentador" field.
func (_u *FojaUpdate) ClearInstrumentador() *FojaUpdate {
	_u.mutation.ClearInstrumentador()
	return _u
}

// SetRiesgoQuirurgico sets the "riesgo_quirurgico" field.
func (_u *FojaUpdate) SetRiesgoQuirurgico(v foja.RiesgoQuirurgico) *FojaUpdate {
	_u.mutation.SetRiesgoQuirurgico(v)
	return _u
}

// SetNillableRiesgoQuirurgico sets the "riesgo_quirurgico" field if the given value is not nil.
func (_u *FojaUpdate) SetNillableRiesgoQuirurgico(v *foja.RiesgoQuirurgico) *FojaUpdate {
	if v != nil {
		_u.SetRiesgoQuirurgico(*v)
	}
	return _u
}

// SetDiagnosticoPreoperatorio sets the "diagnostico_preoperatorio" field.
func (_u *FojaUpdate) SetDiagnosticoPreoperatorio(v string) *FojaUpdate {
	_u.mutation.SetDiagnosticoPreoperatorio(v)
	return _u
}

// SetNillableDiagnosticoPreoperatorio sets the "diagnostico_preoperatorio" field if the given value is not nil.
func (_u *FojaUpdate) SetNillableDiagnosticoPreoperatorio(v *string) *FojaUpdate {
	if v != nil {
		_u.SetDiagnosticoPreoperatorio(*v)
	}
	return _u
}

// SetPlanQuirurgico sets the "plan_quirurgico" field.
func (_u *FojaUpdate) SetPlanQuirurgico(v string) *FojaUpdate {
	_u.mutation.SetPlanQuirurgico(v)
	return _u
}

// SetNillablePlanQuirurgico sets the "plan_quirurgico" field if the given value is not nil.
func (_u *FojaUpdate) SetNillablePlanQuirurgico(v *string) *FojaUpdate {
	if v != nil {
		_u.SetPlanQuirurgico(*v)
	}
	return _u
}

// SetDiagnosticoPostoperatorio sets the "diagnostico_postoperatorio" field.
func (_u *FojaUpdate) SetDiagnosticoPostoperatorio(v string) *FojaUpdate {
	_u.mutation.SetDiagnosticoPostoperatorio(v)
	return _u
}

// SetNillableDiagnosticoPostoperatorio sets the "diagnostico_postoperatorio" field if the given value is not nil.
func (_u *FojaUpdate) SetNillableDiagnosticoPostoperatorio(v *string) *FojaUpdate {
	if v != nil {
		_u.SetDiagnosticoPostoperatorio(*v)
	}
	return _u
}

// SetOperacionRealizada sets the "operacion_realizada" field.
func (_u *FojaUpdate) SetOperacionRealizada(v string) *FojaUpdate {
	_u.mutation.SetOperacionRealizada(v)
	return _u
}

// SetNillableOperacionRealizada sets the "operacion_realizada" field if the given value is not nil.
func (_u *FojaUpdate) SetNillableOperacionRealizada(v *string) *FojaUpdate {
	if v != nil {
		_u.SetOperacionRealizada(*v)
	}
	return _u
}

// SetAnatomiaPatologica sets the "anatomia_patologica" field.
func (_u *FojaUpdate) SetAnatomiaPatologica(v string) *FojaUpdate {
	_u.mutation.SetAnatomiaPatologica(v)
	return _u
}

// SetNillableAnatomiaPatologica sets the "anatomia_patologica" field if the given value is not nil.
func (_u *FojaUpdate) SetNillableAnatomiaPatologica(v *string) *FojaUpdate {
	if v != nil {
		_u.SetAnatomiaPatologica(*v)
	}
	return _u
}

// ClearAnatomiaPatologica clears the value of the "anatomia_patologica" field.
func (_u *FojaUpdate) ClearAnatomiaPatologica() *FojaUpdate {
	_u.mutation.ClearAnatomiaPatologica()
	return _u
}

// SetDescripcionTecnica sets the "descripcion_tecnica" field.
func (_u *FojaUpdate) SetDescripcionTecnica(v string) *FojaUpdate {
	_u.mutation.SetDescripcionTecnica(v)
	return _u
}

// SetNillableDescripcionTecnica sets the "descripcion_tecnica" field if the given value is not nil.
func (_u *FojaUpdate) SetNillableDescripcionTecnica(v *string) *FojaUpdate {
	if v != nil {
		_u.SetDescripcionTecnica(*v)
	}
	return _u
}

// SetInvalida sets the "invalida" field.
func (_u *FojaUpdate) SetInvalida(v bool) *FojaUpdate {
	_u.mutation.SetInvalida(v)
	return _u
}

// SetNillableInvalida sets the "invalida" field if the given value is not nil.
func (_u *FojaUpdate) SetNillableInvalida(v *bool) *FojaUpdate {
	if v != nil {
		_u.SetInvalida(*v)
	}
	return _u
}

// Mutation returns the FojaMutation object of the builder.
func (_u *FojaUpdate) Mutation() *FojaMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FojaUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FojaUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FojaUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FojaUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FojaUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := foja.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FojaUpdate) check() error {
	if v, ok := _u.mutation.NombrePaciente(); ok {
		if err := foja.NombrePacienteValidator(v); err != nil {
			return &ValidationError{Name: "nombre_paciente", err: fmt.Errorf(`repo: validator failed for field "Foja.nombre_paciente": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NumHistoriaClinica(); ok {
		if err := foja.NumHistoriaClinicaValidator(v); err != nil {
			return &ValidationError{Name: "num_historia_clinica", err: fmt.Errorf(`repo: validator failed for field "Foja.num_historia_clinica": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dni(); ok {
		if err := foja.DniValidator(v); err != nil {
			return &ValidationError{Name: "dni", err: fmt.Errorf(`repo: validator failed for field "Foja.dni": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Cirujano(); ok {
		if err := foja.CirujanoValidator(v); err != nil {
			return &ValidationError{Name: "cirujano", err: fmt.Errorf(`repo: validator failed for field "Foja.cirujano": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ayudante1(); ok {
		if err := foja.Ayudante1Validator(v); err != nil {
			return &ValidationError{Name: "ayudante1", err: fmt.Errorf(`repo: validator failed for field "Foja.ayudante1": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ayudante2(); ok {
		if err := foja.Ayudante2Validator(v); err != nil {
			return &ValidationError{Name: "ayudante2", err: fmt.Errorf(`repo: validator failed for field "Foja.ayudante2": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ayudante3(); ok {
		if err := foja.Ayudante3Validator(v); err != nil {
			return &ValidationError{Name: "ayudante3", err: fmt.Errorf(`repo: validator failed for field "Foja.ayudante3": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Anestesiologo(); ok {
		if err := foja.AnestesiologoValidator(v); err != nil {
			return &ValidationError{Name: "anestesiologo", err: fmt.Errorf(`repo: validator failed for field "Foja.anestesiologo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Anestesia(); ok {
		if err := foja.AnestesiaValidator(v); err != nil {
			return &ValidationError{Name: "anestesia", err: fmt.Errorf(`repo: validator failed for field "Foja.anestesia": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Instrumentador(); ok {
		if err := foja.InstrumentadorValidator(v); err != nil {
			return &ValidationError{Name: "instrumentador", err: fmt.Errorf(`repo: validator failed for field "Foja.instrumentador": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiesgoQuirurgico(); ok {
		if err := foja.RiesgoQuirurgicoValidator(v); err != nil {
			return &ValidationError{Name: "riesgo_quirurgico", err: fmt.Errorf(`repo: validator failed for field "Foja.riesgo_quirurgico": %w`, err)}
		}
	}
	if _u.mutation.ResponsableCleared() && len(_u.mutation.ResponsableIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Foja.responsable"`)
	}
	return nil
}

func (_u *FojaUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(foja.Table, foja.Columns, sqlgraph.NewFieldSpec(foja.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(foja.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NombrePaciente(); ok {
		_spec.SetField(foja.FieldNombrePaciente, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumHistoriaClinica(); ok {
		_spec.SetField(foja.FieldNumHistoriaClinica, field.TypeString, value)
	}
	if value, ok := _u.mutation.FechaNacimiento(); ok {
		_spec.SetField(foja.FieldFechaNacimiento, field.TypeTime, value)
	}
	if _u.mutation.FechaNacimientoCleared() {
		_spec.ClearField(foja.FieldFechaNacimiento, field.TypeTime)
	}
	if value, ok := _u.mutation.Dni(); ok {
		_spec.SetField(foja.FieldDni, field.TypeString, value)
	}
	if _u.mutation.DniCleared() {
		_spec.ClearField(foja.FieldDni, field.TypeString)
	}
	if value, ok := _u.mutation.Fecha(); ok {
		_spec.SetField(foja.FieldFecha, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Cirujano(); ok {
		_spec.SetField(foja.FieldCirujano, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ayudante1(); ok {
		_spec.SetField(foja.FieldAyudante1, field.TypeString, value)
	}
	if _u.mutation.Ayudante1Cleared() {
		_spec.ClearField(foja.FieldAyudante1, field.TypeString)
	}
	if value, ok := _u.mutation.Ayudante2(); ok {
		_spec.SetField(foja.FieldAyudante2, field.TypeString, value)
	}
	if _u.mutation.Ayudante2Cleared() {
		_spec.ClearField(foja.FieldAyudante2, field.TypeString)
	}
	if value, ok := _u.mutation.Ayudante3(); ok {
		_spec.SetField(foja.FieldAyudante3, field.TypeString, value)
	}
	if _u.mutation.Ayudante3Cleared() {
		_spec.ClearField(foja.FieldAyudante3, field.TypeString)
	}
	if value, ok := _u.mutation.Anestesiologo(); ok {
		_spec.SetField(foja.FieldAnestesiologo, field.TypeString, value)
	}
	if _u.mutation.AnestesiologoCleared() {
		_spec.ClearField(foja.FieldAnestesiologo, field.TypeString)
	}
	if value, ok := _u.mutation.Anestesia(); ok {
		_spec.SetField(foja.FieldAnestesia, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Instrumentador(); ok {
		_spec.SetField(foja.FieldInstrumentador, field.TypeString, value)
	}
	if _u.mutation.InstrumentadorCleared() {
		_spec.ClearField(foja.FieldInstrumentador, field.TypeString)
	}
	if value, ok := _u.mutation.RiesgoQuirurgico(); ok {
		_spec.SetField(foja.FieldRiesgoQuirurgico, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DiagnosticoPreoperatorio(); ok {
		_spec.SetField(foja.FieldDiagnosticoPreoperatorio, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanQuirurgico(); ok {
		_spec.SetField(foja.FieldPlanQuirurgico, field.TypeString, value)
	}
	if value, ok := _u.mutation.DiagnosticoPostoperatorio(); ok {
		_spec.SetField(foja.FieldDiagnosticoPostoperatorio, field.TypeString, value)
	}
	if value, ok := _u.mutation.OperacionRealizada(); ok {
		_spec.SetField(foja.FieldOperacionRealizada, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnatomiaPatologica(); ok {
		_spec.SetField(foja.FieldAnatomiaPatologica, field.TypeString, value)
	}
	if _u.mutation.AnatomiaPatologicaCleared() {
		_spec.ClearField(foja.FieldAnatomiaPatologica, field.TypeString)
	}
	if value, ok := _u.mutation.DescripcionTecnica(); ok {
		_spec.SetField(foja.FieldDescripcionTecnica, field.TypeString, value)
	}
	if value, ok := _u.mutation.Invalida(); ok {
		_spec.SetField(foja.FieldInvalida, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{foja.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FojaUpdateOne is the builder for updating a single Foja entity.
type FojaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FojaMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FojaUpdateOne) SetUpdatedAt(v time.Time) *FojaUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNombrePaciente sets the "nombre_paciente" field.
func (_u *FojaUpdateOne) SetNombrePaciente(v string) *FojaUpdateOne {
	_u.mutation.SetNombrePaciente(v)
	return _u
}

// SetNillableNombrePaciente sets the "nombre_paciente" field if the given value is not nil.
func (_u *FojaUpdateOne) SetNillableNombrePaciente(v *string) *FojaUpdateOne {
	if v != nil {
		_u.SetNombrePaciente(*v)
	}
	return _u
}

// SetNumHistoriaClinica sets the "num_historia_clinica" field.
func (_u *FojaUpdateOne) SetNumHistoriaClinica(v string) *FojaUpdateOne {
	_u.mutation.SetNumHistoriaClinica(v)
	return _u
}

// SetNillableNumHistoriaClinica sets the "num_historia_clinica" field if the given value is not nil.
func (_u *FojaUpdateOne) SetNillableNumHistoriaClinica(v *string) *FojaUpdateOne {
	if v != nil {
		_u.SetNumHistoriaClinica(*v)
	}
	return _u
}

// SetFechaNacimiento sets the "fecha_nacimiento" field.
func (_u *FojaUpdateOne) SetFechaNacimiento(v time.Time) *FojaUpdateOne {
	_u.mutation.SetFechaNacimiento(v)
	return _u
}

// SetNillableFechaNacimiento sets the "fecha_nacimiento" field if the given value is not nil.
func (_u *FojaUpdateOne) SetNillableFechaNacimiento(v *time.Time) *FojaUpdateOne {
	if v != nil {
		_u.SetFechaNacimiento(*v)
	}
	return _u
}

// ClearFechaNacimiento clears the value of the "fecha_nacimiento" field.
func (_u *FojaUpdateOne) ClearFechaNacimiento() *FojaUpdateOne {
	_u.mutation.ClearFechaNacimiento()
	return _u
}

// SetDni sets the "dni" field.
func (_u *FojaUpdateOne) SetDni(v string) *FojaUpdateOne {
	_u.mutation.SetDni(v)
	return _u
}

// SetNillableDni sets the "dni" field if the given value is not nil.
func (_u *FojaUpdateOne) SetNillableDni(v *string) *FojaUpdateOne {
	if v != nil {
		_u.SetDni(*v)
	}
	return _u
}

// ClearDni clears the value of the "dni" field.
func (_u *FojaUpdateOne) ClearDni() *FojaUpdateOne {
	_u.mutation.ClearDni()
	return _u
}

// SetFecha sets the "fecha" field.
func (_u *FojaUpdateOne) SetFecha(v time.Time) *FojaUpdateOne {
	_u.mutation.SetFecha(v)
	return _u
}

// SetNillableFecha sets the "fecha" field if the given value is not nil.
func (_u *FojaUpdateOne) SetNillableFecha(v *time.Time) *FojaUpdateOne {
	if v != nil {
		_u.SetFecha(*v)
	}
	return _u
}

// SetCirujano sets the "cirujano" field.
func (_u *FojaUpdateOne) SetCirujano(v string) *FojaUpdateOne {
	_u.mutation.SetCirujano(v)
	return _u
}

// SetNillableCirujano sets the "cirujano" field if the given value is not nil.
func (_u *FojaUpdateOne) SetNillableCirujano(v *string) *FojaUpdateOne {
	if v != nil {
		_u.SetCirujano(*v)
	}
	return _u
}

// SetAyudante1 sets the "ayudante1" field.
func (_u *FojaUpdateOne) SetAyudante1(v string) *FojaUpdateOne {
	_u.mutation.SetAyudante1(v)
	return _u
}

// SetNillableAyudante1 sets the "ayudante1" field if the given value is not nil.
func (_u *FojaUpdateOne) SetNillableAyudante1(v *string) *FojaUpdateOne {
	if v != nil {
		_u.SetAyudante1(*v)
	}
	return _u
}

// ClearAyudante1 clears the value of the "ayudante1" field.
func (_u *FojaUpdateOne) ClearAyudante1() *FojaUpdateOne {
	_u.mutation.ClearAyudante1()
	return _u
}

// SetAyudante2 sets the "ayudante2" field.
func (_u *FojaUpdateOne) SetAyudante2(v string) *FojaUpdateOne {
	_u.mutation.SetAyudante2(v)
	return _u
}

// SetNillableAyudante2 sets the "ayudante2" field if the given value is not nil.
func (_u *FojaUpdateOne) SetNillableAyudante2(v *string) *FojaUpdateOne {
	if v != nil {
		_u.SetAyudante2(*v)
	}
	return _u
}

// ClearAyudante2 clears the value of the "ayudante2" field.
func (_u *FojaUpdateOne) ClearAyudante2() *FojaUpdateOne {
	_u.mutation.ClearAyudante2()
	return _u
}

// SetAyudante3 sets the "ayudante3" field.
func (_u *FojaUpdateOne) SetAyudante3(v string) *FojaUpdateOne {
	_u.mutation.SetAyudante3(v)
	return _u
}

// SetNillableAyudante3 sets the "ayudante3" field if the given value is not nil.
func (_u *FojaUpdateOne) SetNillableAyudante3(v *string) *FojaUpdateOne {
	if v != nil {
		_u.SetAyudante3(*v)
	}
	return _u
}

// ClearAyudante3 clears the value of the "ayudante3" field.
func (_u *FojaUpdateOne) ClearAyudante3() *FojaUpdateOne {
	_u.mutation.ClearAyudante3()
	return _u
}

// SetAnestesiologo sets the "anestesiologo" field.
func (_u *FojaUpdateOne) SetAnestesiologo(v string) *FojaUpdateOne {
	_u.mutation.SetAnestesiologo(v)
	return _u
}

// SetNillableAnestesiologo sets the "anestesiologo" field if the given value is not nil.
func (_u *FojaUpdateOne) SetNillableAnestesiologo(v *string) *FojaUpdateOne {
	if v != nil {
		_u.SetAnestesiologo(*v)
	}
	return _u
}

// ClearAnestesiologo clears the value of the "anestesiologo" field.
func (_u *FojaUpdateOne) ClearAnestesiologo() *FojaUpdateOne {
	_u.mutation.ClearAnestesiologo()
	return _u
}

// SetAnestesia sets the "anestesia" field.
func (_u *FojaUpdateOne) SetAnestesia(v foja.Anestesia) *FojaUpdateOne {
	_u.mutation.SetAnestesia(v)
	return _u
}

// SetNillableAnestesia sets the "anestesia" field if the given value is not nil.
func (_u *FojaUpdateOne) SetNillableAnestesia(v *foja.Anestesia) *FojaUpdateOne {
	if v != nil {
		_u.SetAnestesia(*v)
	}
	return _u
}

// SetInstrumentador sets the "instrumentador" field.
func (_u *FojaUpdateOne) SetInstrumentador(v string) *FojaUpdateOne {
	_u.mutation.SetInstrumentador(v)
	return _u
}

// SetNillableInstrumentador sets the "instrumentador" field if the given value is not nil.
func (_u *FojaUpdateOne) SetNillableInstrumentador(v *string) *FojaUpdateOne {
	if v != nil {
		_u.SetInstrumentador(*v)
	}
	return _u
}

// ClearInstrumentador clears the value of the "instrumentador" field.
func (_u *FojaUpdateOne) ClearInstrumentador() *FojaUpdateOne {
	_u.mutation.ClearInstrumentador()
	return _u
}

// SetRiesgoQuirurgico sets the "riesgo_quirurgico" field.
func (_u *FojaUpdateOne) SetRiesgoQuirurgico(v foja.RiesgoQuirurgico) *FojaUpdateOne {
	_u.mutation.SetRiesgoQuirurgico(v)
	return _u
}

// SetNillableRiesgoQuirurgico sets the "riesgo_quirurgico" field if the given value is not nil.
func (_u *FojaUpdateOne) SetNillableRiesgoQuirurgico(v *foja.RiesgoQuirurgico) *FojaUpdateOne {
	if v != nil {
		_u.SetRiesgoQuirurgico(*v)
	}
	return _u
}

// SetDiagnosticoPreoperatorio sets the "diagnostico_preoperatorio" field.
func (_u *FojaUpdateOne) SetDiagnosticoPreoperatorio(v string) *FojaUpdateOne {
	_u.mutation.SetDiagnosticoPreoperatorio(v)
	return _u
}

// SetNillableDiagnosticoPreoperatorio sets the "diagnostico_preoperatorio" field if the given value is not nil.
func (_u *FojaUpdateOne) SetNillableDiagnosticoPreoperatorio(v *string) *FojaUpdateOne {
	if v != nil {
		_u.SetDiagnosticoPreoperatorio(*v)
	}
	return _u
}

// SetPlanQuirurgico sets the "plan_quirurgico" field.
func (_u *FojaUpdateOne) SetPlanQuirurgico(v string) *FojaUpdateOne {
	_u.mutation.SetPlanQuirurgico(v)
	return _u
}

// SetNillablePlanQuirurgico sets the "plan_quirurgico" field if the given value is not nil.
func (_u *FojaUpdateOne) SetNillablePlanQuirurgico(v *string) *FojaUpdateOne {
	if v != nil {
		_u.SetPlanQuirurgico(*v)
	}
	return _u
}

// SetDiagnosticoPostoperatorio sets the "diagnostico_postoperatorio" field.
func (_u *FojaUpdateOne) SetDiagnosticoPostoperatorio(v string) *FojaUpdateOne {
	_u.mutation.SetDiagnosticoPostoperatorio(v)
	return _u
}

// SetNillableDiagnosticoPostoperatorio sets the "diagnostico_postoperatorio" field if the given value is not nil.
func (_u *FojaUpdateOne) SetNillableDiagnosticoPostoperatorio(v *string) *FojaUpdateOne {
	if v != nil {
		_u.SetDiagnosticoPostoperatorio(*v)
	}
	return _u
}

// SetOperacionRealizada sets the "operacion_realizada" field.
func (_u *FojaUpdateOne) SetOperacionRealizada(v string) *FojaUpdateOne {
	_u.mutation.SetOperacionRealizada(v)
	return _u
}

// SetNillableOperacionRealizada sets the "operacion_realizada" field if the given value is not nil.
func (_u *FojaUpdateOne) SetNillableOperacionRealizada(v *string) *FojaUpdateOne {
	if v != nil {
		_u.SetOperacionRealizada(*v)
	}
	return _u
}

// SetAnatomiaPatologica sets the "anatomia_patologica" field.
func (_u *FojaUpdateOne) SetAnatomiaPatologica(v string) *FojaUpdateOne {
	_u.mutation.SetAnatomiaPatologica(v)
	return _u
}

// SetNillableAnatomiaPatologica sets the "anatomia_patologica" field if the given value is not nil.
func (_u *FojaUpdateOne) SetNillableAnatomiaPatologica(v *string) *FojaUpdateOne {
	if v != nil {
		_u.SetAnatomiaPatologica(*v)
	}
	return _u
}

// ClearAnatomiaPatologica clears the value of the "anatomia_patologica" field.
func (_u *FojaUpdateOne) ClearAnatomiaPatologica() *FojaUpdateOne {
	_u.mutation.ClearAnatomiaPatologica()
	return _u
}

// SetDescripcionTecnica sets the "descripcion_tecnica" field.
func (_u *FojaUpdateOne) SetDescripcionTecnica(v string) *FojaUpdateOne {
	_u.mutation.SetDescripcionTecnica(v)
	return _u
}

// SetNillableDescripcionTecnica sets the "descripcion_tecnica" field if the given value is not nil.
func (_u *FojaUpdateOne) SetNillableDescripcionTecnica(v *string) *FojaUpdateOne {
	if v != nil {
		_u.SetDescripcionTecnica(*v)
	}
	return _u
}

// SetInvalida sets the "invalida" field.
func (_u *FojaUpdateOne) SetInvalida(v bool) *FojaUpdateOne {
	_u.mutation.SetInvalida(v)
	return _u
}

// SetNillableInvalida sets the "invalida" field if the given value is not nil.
func (_u *FojaUpdateOne) SetNillableInvalida(v *bool) *FojaUpdateOne {
	if v != nil {
		_u.SetInvalida(*v)
	}
	return _u
}

// Mutation returns the FojaMutation object of the builder.
func (_u *FojaUpdateOne) Mutation() *FojaMutation {
	return _u.mutation
}

// Where appends a list predicates to the FojaUpdate builder.
func (_u *FojaUpdateOne) Where(ps ...predicate.Foja) *FojaUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FojaUpdateOne) Select(field string, fields ...string) *FojaUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Foja entity.
func (_u *FojaUpdateOne) Save(ctx context.Context) (*Foja, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FojaUpdateOne) SaveX(ctx context.Context) *Foja {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FojaUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FojaUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FojaUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := foja.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FojaUpdateOne) check() error {
	if v, ok := _u.mutation.NombrePaciente(); ok {
		if err := foja.NombrePacienteValidator(v); err != nil {
			return &ValidationError{Name: "nombre_paciente", err: fmt.Errorf(`repo: validator failed for field "Foja.nombre_paciente": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NumHistoriaClinica(); ok {
		if err := foja.NumHistoriaClinicaValidator(v); err != nil {
			return &ValidationError{Name: "num_historia_clinica", err: fmt.Errorf(`repo: validator failed for field "Foja.num_historia_clinica": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dni(); ok {
		if err := foja.DniValidator(v); err != nil {
			return &ValidationError{Name: "dni", err: fmt.Errorf(`repo: validator failed for field "Foja.dni": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Cirujano(); ok {
		if err := foja.CirujanoValidator(v); err != nil {
			return &ValidationError{Name: "cirujano", err: fmt.Errorf(`repo: validator failed for field "Foja.cirujano": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ayudante1(); ok {
		if err := foja.Ayudante1Validator(v); err != nil {
			return &ValidationError{Name: "ayudante1", err: fmt.Errorf(`repo: validator failed for field "Foja.ayudante1": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ayudante2(); ok {
		if err := foja.Ayudante2Validator(v); err != nil {
			return &ValidationError{Name: "ayudante2", err: fmt.Errorf(`repo: validator failed for field "Foja.ayudante2": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Ayudante3(); ok {
		if err := foja.Ayudante3Validator(v); err != nil {
			return &ValidationError{Name: "ayudante3", err: fmt.Errorf(`repo: validator failed for field "Foja.ayudante3": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Anestesiologo(); ok {
		if err := foja.AnestesiologoValidator(v); err != nil {
			return &ValidationError{Name: "anestesiologo", err: fmt.Errorf(`repo: validator failed for field "Foja.anestesiologo": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Anestesia(); ok {
		if err := foja.AnestesiaValidator(v); err != nil {
			return &ValidationError{Name: "anestesia", err: fmt.Errorf(`repo: validator failed for field "Foja.anestesia": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Instrumentador(); ok {
		if err := foja.InstrumentadorValidator(v); err != nil {
			return &ValidationError{Name: "instrumentador", err: fmt.Errorf(`repo: validator failed for field "Foja.instrumentador": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RiesgoQuirurgico(); ok {
		if err := foja.RiesgoQuirurgicoValidator(v); err != nil {
			return &ValidationError{Name: "riesgo_quirurgico", err: fmt.Errorf(`repo: validator failed for field "Foja.riesgo_quirurgico": %w`, err)}
		}
	}
	if _u.mutation.ResponsableCleared() && len(_u.mutation.ResponsableIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Foja.responsable"`)
	}
	return nil
}

func (_u *FojaUpdateOne) sqlSave(ctx context.Context) (_node *Foja, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(foja.Table, foja.Columns, sqlgraph.NewFieldSpec(foja.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Foja.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, foja.FieldID)
		for _, f := range fields {
			if !foja.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != foja.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(foja.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NombrePaciente(); ok {
		_spec.SetField(foja.FieldNombrePaciente, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumHistoriaClinica(); ok {
		_spec.SetField(foja.FieldNumHistoriaClinica, field.TypeString, value)
	}
	if value, ok := _u.mutation.FechaNacimiento(); ok {
		_spec.SetField(foja.FieldFechaNacimiento, field.TypeTime, value)
	}
	if _u.mutation.FechaNacimientoCleared() {
		_spec.ClearField(foja.FieldFechaNacimiento, field.TypeTime)
	}
	if value, ok := _u.mutation.Dni(); ok {
		_spec.SetField(foja.FieldDni, field.TypeString, value)
	}
	if _u.mutation.DniCleared() {
		_spec.ClearField(foja.FieldDni, field.TypeString)
	}
	if value, ok := _u.mutation.Fecha(); ok {
		_spec.SetField(foja.FieldFecha, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Cirujano(); ok {
		_spec.SetField(foja.FieldCirujano, field.TypeString, value)
	}
	if value, ok := _u.mutation.Ayudante1(); ok {
		_spec.SetField(foja.FieldAyudante1, field.TypeString, value)
	}
	if _u.mutation.Ayudante1Cleared() {
		_spec.ClearField(foja.FieldAyudante1, field.TypeString)
	}
	if value, ok := _u.mutation.Ayudante2(); ok {
		_spec.SetField(foja.FieldAyudante2, field.TypeString, value)
	}
	if _u.mutation.Ayudante2Cleared() {
		_spec.ClearField(foja.FieldAyudante2, field.TypeString)
	}
	if value, ok := _u.mutation.Ayudante3(); ok {
		_spec.SetField(foja.FieldAyudante3, field.TypeString, value)
	}
	if _u.mutation.Ayudante3Cleared() {
		_spec.ClearField(foja.FieldAyudante3, field.TypeString)
	}
	if value, ok := _u.mutation.Anestesiologo(); ok {
		_spec.SetField(foja.FieldAnestesiologo, field.TypeString, value)
	}
	if _u.mutation.AnestesiologoCleared() {
		_spec.ClearField(foja.FieldAnestesiologo, field.TypeString)
	}
	if value, ok := _u.mutation.Anestesia(); ok {
		_spec.SetField(foja.FieldAnestesia, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Instrumentador(); ok {
		_spec.SetField(foja.FieldInstrumentador, field.TypeString, value)
	}
	if _u.mutation.InstrumentadorCleared() {
		_spec.ClearField(foja.FieldInstrumentador, field.TypeString)
	}
	if value, ok := _u.mutation.RiesgoQuirurgico(); ok {
		_spec.SetField(foja.FieldRiesgoQuirurgico, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DiagnosticoPreoperatorio(); ok {
		_spec.SetField(foja.FieldDiagnosticoPreoperatorio, field.TypeString, value)
	}
	if value, ok := _u.mutation.PlanQuirurgico(); ok {
		_spec.SetField(foja.FieldPlanQuirurgico, field.TypeString, value)
	}
	if value, ok := _u.mutation.DiagnosticoPostoperatorio(); ok {
		_spec.SetField(foja.FieldDiagnosticoPostoperatorio, field.TypeString, value)
	}
	if value, ok := _u.mutation.OperacionRealizada(); ok {
		_spec.SetField(foja.FieldOperacionRealizada, field.TypeString, value)
	}
	if value, ok := _u.mutation.AnatomiaPatologica(); ok {
		_spec.SetField(foja.FieldAnatomiaPatologica, field.TypeString, value)
	}
	if _u.mutation.AnatomiaPatologicaCleared() {
		_spec.ClearField(foja.FieldAnatomiaPatologica, field.TypeString)
	}
	if value, ok := _u.mutation.DescripcionTecnica(); ok {
		_spec.SetField(foja.FieldDescripcionTecnica, field.TypeString, value)
	}
	if value, ok := _u.mutation.Invalida(); ok {
		_spec.SetField(foja.FieldInvalida, field.TypeBool, value)
	}
	_node = &Foja{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{foja.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
