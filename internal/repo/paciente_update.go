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
	"github.com/nlonghi/fojas_backend/internal/repo/paciente"
	"github.com/nlonghi/fojas_backend/internal/repo/predicate"
)

// PacienteUpdate is the builder for updating Paciente entities.
type PacienteUpdate struct {
	config
	hooks    []Hook
	mutation *PacienteMutation
}

// Where appends a list predicates to the PacienteUpdate builder.
func (_u *PacienteUpdate) Where(ps ...predicate.Paciente) *PacienteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PacienteUpdate) SetUpdatedAt(v time.Time) *PacienteUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNombre sets the "nombre" field.
func (_u *PacienteUpdate) SetNombre(v string) *PacienteUpdate {
	_u.mutation.SetNombre(v)
	return _u
}

// SetNillableNombre sets the "nombre" field if the given value is not nil.
func (_u *PacienteUpdate) SetNillableNombre(v *string) *PacienteUpdate {
	if v != nil {
		_u.SetNombre(*v)
	}
	return _u
}

// SetNumHistoriaClinica sets the "num_historia_clinica" field.
func (_u *PacienteUpdate) SetNumHistoriaClinica(v string) *PacienteUpdate {
	_u.mutation.SetNumHistoriaClinica(v)
	return _u
}

// SetNillableNumHistoriaClinica sets the "num_historia_clinica" field if the given value is not nil.
func (_u *PacienteUpdate) SetNillableNumHistoriaClinica(v *string) *PacienteUpdate {
	if v != nil {
		_u.SetNumHistoriaClinica(*v)
	}
	return _u
}

// SetFechaNacimiento sets the "fecha_nacimiento" field.
func (_u *PacienteUpdate) SetFechaNacimiento(v time.Time) *PacienteUpdate {
	_u.mutation.SetFechaNacimiento(v)
	return _u
}

// SetNillableFechaNacimiento sets the "fecha_nacimiento" field if the given value is not nil.
func (_u *PacienteUpdate) SetNillableFechaNacimiento(v *time.Time) *PacienteUpdate {
	if v != nil {
		_u.SetFechaNacimiento(*v)
	}
	return _u
}

// ClearFechaNacimiento clears the value of the "fecha_nacimiento" field.
func (_u *PacienteUpdate) ClearFechaNacimiento() *PacienteUpdate {
	_u.mutation.ClearFechaNacimiento()
	return _u
}

// SetGenero sets the "genero" field.
func (_u *PacienteUpdate) SetGenero(v string) *PacienteUpdate {
	_u.mutation.SetGenero(v)
	return _u
}

// SetNillableGenero sets the "genero" field if the given value is not nil.
func (_u *PacienteUpdate) SetNillableGenero(v *string) *PacienteUpdate {
	if v != nil {
		_u.SetGenero(*v)
	}
	return _u
}

// ClearGenero clears the value of the "genero" field.
func (_u *PacienteUpdate) ClearGenero() *PacienteUpdate {
	_u.mutation.ClearGenero()
	return _u
}

// SetDireccion sets the "direccion" field.
func (_u *PacienteUpdate) SetDireccion(v string) *PacienteUpdate {
	_u.mutation.SetDireccion(v)
	return _u
}

// SetNillableDireccion sets the "direccion" field if the given value is not nil.
func (_u *PacienteUpdate) SetNillableDireccion(v *string) *PacienteUpdate {
	if v != nil {
		_u.SetDireccion(*v)
	}
	return _u
}

// ClearDireccion clears the value of the "direccion" field.
func (_u *PacienteUpdate) ClearDireccion() *PacienteUpdate {
	_u.mutation.ClearDireccion()
	return _u
}

// SetTelefono sets the "telefono" field.
func (_u *PacienteUpdate) SetTelefono(v string) *PacienteUpdate {
	_u.mutation.SetTelefono(v)
	return _u
}

// SetNillableTelefono sets the "telefono" field if the given value is not nil.
func (_u *PacienteUpdate) SetNillableTelefono(v *string) *PacienteUpdate {
	if v != nil {
		_u.SetTelefono(*v)
	}
	return _u
}

// ClearTelefono clears the value of the "telefono" field.
func (_u *PacienteUpdate) ClearTelefono() *PacienteUpdate {
	_u.mutation.ClearTelefono()
	return _u
}

// SetDni sets the "dni" field.
func (_u *PacienteUpdate) SetDni(v string) *PacienteUpdate {
	_u.mutation.SetDni(v)
	return _u
}

// SetNillableDni sets the "dni" field if the given value is not nil.
func (_u *PacienteUpdate) SetNillableDni(v *string) *PacienteUpdate {
	if v != nil {
		_u.SetDni(*v)
	}
	return _u
}

// ClearDni clears the value of the "dni" field.
func (_u *PacienteUpdate) ClearDni() *PacienteUpdate {
	_u.mutation.ClearDni()
	return _u
}

// Mutation returns the PacienteMutation object of the builder.
func (_u *PacienteUpdate) Mutation() *PacienteMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PacienteUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PacienteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PacienteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PacienteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PacienteUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := paciente.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PacienteUpdate) check() error {
	if v, ok := _u.mutation.Nombre(); ok {
		if err := paciente.NombreValidator(v); err != nil {
			return &ValidationError{Name: "nombre", err: fmt.Errorf(`repo: validator failed for field "Paciente.nombre": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NumHistoriaClinica(); ok {
		if err := paciente.NumHistoriaClinicaValidator(v); err != nil {
			return &ValidationError{Name: "num_historia_clinica", err: fmt.Errorf(`repo: validator failed for field "Paciente.num_historia_clinica": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Genero(); ok {
		if err := paciente.GeneroValidator(v); err != nil {
			return &ValidationError{Name: "genero", err: fmt.Errorf(`repo: validator failed for field "Paciente.genero": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Direccion(); ok {
		if err := paciente.DireccionValidator(v); err != nil {
			return &ValidationError{Name: "direccion", err: fmt.Errorf(`repo: validator failed for field "Paciente.direccion": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Telefono(); ok {
		if err := paciente.TelefonoValidator(v); err != nil {
			return &ValidationError{Name: "telefono", err: fmt.Errorf(`repo: validator failed for field "Paciente.telefono": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dni(); ok {
		if err := paciente.DniValidator(v); err != nil {
			return &ValidationError{Name: "dni", err: fmt.Errorf(`repo: validator failed for field "Paciente.dni": %w`, err)}
		}
	}
	return nil
}

func (_u *PacienteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paciente.Table, paciente.Columns, sqlgraph.NewFieldSpec(paciente.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(paciente.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Nombre(); ok {
		_spec.SetField(paciente.FieldNombre, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumHistoriaClinica(); ok {
		_spec.SetField(paciente.FieldNumHistoriaClinica, field.TypeString, value)
	}
	if value, ok := _u.mutation.FechaNacimiento(); ok {
		_spec.SetField(paciente.FieldFechaNacimiento, field.TypeTime, value)
	}
	if _u.mutation.FechaNacimientoCleared() {
		_spec.ClearField(paciente.FieldFechaNacimiento, field.TypeTime)
	}
	if value, ok := _u.mutation.Genero(); ok {
		_spec.SetField(paciente.FieldGenero, field.TypeString, value)
	}
	if _u.mutation.GeneroCleared() {
		_spec.ClearField(paciente.FieldGenero, field.TypeString)
	}
	if value, ok := _u.mutation.Direccion(); ok {
		_spec.SetField(paciente.FieldDireccion, field.TypeString, value)
	}
	if _u.mutation.DireccionCleared() {
		_spec.ClearField(paciente.FieldDireccion, field.TypeString)
	}
	if value, ok := _u.mutation.Telefono(); ok {
		_spec.SetField(paciente.FieldTelefono, field.TypeString, value)
	}
	if _u.mutation.TelefonoCleared() {
		_spec.ClearField(paciente.FieldTelefono, field.TypeString)
	}
	if value, ok := _u.mutation.Dni(); ok {
		_spec.SetField(paciente.FieldDni, field.TypeString, value)
	}
	if _u.mutation.DniCleared() {
		_spec.ClearField(paciente.FieldDni, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paciente.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PacienteUpdateOne is the builder for updating a single Paciente entity.
type PacienteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PacienteMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PacienteUpdateOne) SetUpdatedAt(v time.Time) *PacienteUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNombre sets the "nombre" field.
func (_u *PacienteUpdateOne) SetNombre(v string) *PacienteUpdateOne {
	_u.mutation.SetNombre(v)
	return _u
}

// SetNillableNombre sets the "nombre" field if the given value is not nil.
func (_u *PacienteUpdateOne) SetNillableNombre(v *string) *PacienteUpdateOne {
	if v != nil {
		_u.SetNombre(*v)
	}
	return _u
}

// SetNumHistoriaClinica sets the "num_historia_clinica" field.
func (_u *PacienteUpdateOne) SetNumHistoriaClinica(v string) *PacienteUpdateOne {
	_u.mutation.SetNumHistoriaClinica(v)
	return _u
}

// SetNillableNumHistoriaClinica sets the "num_historia_clinica" field if the given value is not nil.
func (_u *PacienteUpdateOne) SetNillableNumHistoriaClinica(v *string) *PacienteUpdateOne {
	if v != nil {
		_u.SetNumHistoriaClinica(*v)
	}
	return _u
}

// SetFechaNacimiento sets the "fecha_nacimiento" field.
func (_u *PacienteUpdateOne) SetFechaNacimiento(v time.Time) *PacienteUpdateOne {
	_u.mutation.SetFechaNacimiento(v)
	return _u
}

// SetNillableFechaNacimiento sets the "fecha_nacimiento" field if the given value is not nil.
func (_u *PacienteUpdateOne) SetNillableFechaNacimiento(v *time.Time) *PacienteUpdateOne {
	if v != nil {
		_u.SetFechaNacimiento(*v)
	}
	return _u
}

// ClearFechaNacimiento clears the value of the "fecha_nacimiento" field.
func (_u *PacienteUpdateOne) ClearFechaNacimiento() *PacienteUpdateOne {
	_u.mutation.ClearFechaNacimiento()
	return _u
}

// SetGenero sets the "genero" field.
func (_u *PacienteUpdateOne) SetGenero(v string) *PacienteUpdateOne {
	_u.mutation.SetGenero(v)
	return _u
}

// SetNillableGenero sets the "genero" field if the given value is not nil.
func (_u *PacienteUpdateOne) SetNillableGenero(v *string) *PacienteUpdateOne {
	if v != nil {
		_u.SetGenero(*v)
	}
	return _u
}

// ClearGenero clears the value of the "genero" field.
func (_u *PacienteUpdateOne) ClearGenero() *PacienteUpdateOne {
	_u.mutation.ClearGenero()
	return _u
}

// SetDireccion sets the "direccion" field.
func (_u *PacienteUpdateOne) SetDireccion(v string) *PacienteUpdateOne {
	_u.mutation.SetDireccion(v)
	return _u
}

// SetNillableDireccion sets the "direccion" field if the given value is not nil.
func (_u *PacienteUpdateOne) SetNillableDireccion(v *string) *PacienteUpdateOne {
	if v != nil {
		_u.SetDireccion(*v)
	}
	return _u
}

// ClearDireccion clears the value of the "direccion" field.
func (_u *PacienteUpdateOne) ClearDireccion() *PacienteUpdateOne {
	_u.mutation.ClearDireccion()
	return _u
}

// SetTelefono sets the "telefono" field.
func (_u *PacienteUpdateOne) SetTelefono(v string) *PacienteUpdateOne {
	_u.mutation.SetTelefono(v)
	return _u
}

// SetNillableTelefono sets the "telefono" field if the given value is not nil.
func (_u *PacienteUpdateOne) SetNillableTelefono(v *string) *PacienteUpdateOne {
	if v != nil {
		_u.SetTelefono(*v)
	}
	return _u
}

// ClearTelefono clears the value of the "telefono" field.
func (_u *PacienteUpdateOne) ClearTelefono() *PacienteUpdateOne {
	_u.mutation.ClearTelefono()
	return _u
}

// SetDni sets the "dni" field.
func (_u *PacienteUpdateOne) SetDni(v string) *PacienteUpdateOne {
	_u.mutation.SetDni(v)
	return _u
}

// SetNillableDni sets the "dni" field if the given value is not nil.
func (_u *PacienteUpdateOne) SetNillableDni(v *string) *PacienteUpdateOne {
	if v != nil {
		_u.SetDni(*v)
	}
	return _u
}

// ClearDni clears the value of the "dni" field.
func (_u *PacienteUpdateOne) ClearDni() *PacienteUpdateOne {
	_u.mutation.ClearDni()
	return _u
}

// Mutation returns the PacienteMutation object of the builder.
func (_u *PacienteUpdateOne) Mutation() *PacienteMutation {
	return _u.mutation
}

// Where appends a list predicates to the PacienteUpdate builder.
func (_u *PacienteUpdateOne) Where(ps ...predicate.Paciente) *PacienteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PacienteUpdateOne) Select(field string, fields ...string) *PacienteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Paciente entity.
func (_u *PacienteUpdateOne) Save(ctx context.Context) (*Paciente, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PacienteUpdateOne) SaveX(ctx context.Context) *Paciente {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PacienteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PacienteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PacienteUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := paciente.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PacienteUpdateOne) check() error {
	if v, ok := _u.mutation.Nombre(); ok {
		if err := paciente.NombreValidator(v); err != nil {
			return &ValidationError{Name: "nombre", err: fmt.Errorf(`repo: validator failed for field "Paciente.nombre": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NumHistoriaClinica(); ok {
		if err := paciente.NumHistoriaClinicaValidator(v); err != nil {
			return &ValidationError{Name: "num_historia_clinica", err: fmt.Errorf(`repo: validator failed for field "Paciente.num_historia_clinica": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Genero(); ok {
		if err := paciente.GeneroValidator(v); err != nil {
			return &ValidationError{Name: "genero", err: fmt.Errorf(`repo: validator failed for field "Paciente.genero": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Direccion(); ok {
		if err := paciente.DireccionValidator(v); err != nil {
			return &ValidationError{Name: "direccion", err: fmt.Errorf(`repo: validator failed for field "Paciente.direccion": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Telefono(); ok {
		if err := paciente.TelefonoValidator(v); err != nil {
			return &ValidationError{Name: "telefono", err: fmt.Errorf(`repo: validator failed for field "Paciente.telefono": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dni(); ok {
		if err := paciente.DniValidator(v); err != nil {
			return &ValidationError{Name: "dni", err: fmt.Errorf(`repo: validator failed for field "Paciente.dni": %w`, err)}
		}
	}
	return nil
}

func (_u *PacienteUpdateOne) sqlSave(ctx context.Context) (_node *Paciente, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paciente.Table, paciente.Columns, sqlgraph.NewFieldSpec(paciente.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Paciente.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paciente.FieldID)
		for _, f := range fields {
			if !paciente.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != paciente.FieldID {
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
		_spec.SetField(paciente.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Nombre(); ok {
		_spec.SetField(paciente.FieldNombre, field.TypeString, value)
	}
	if value, ok := _u.mutation.NumHistoriaClinica(); ok {
		_spec.SetField(paciente.FieldNumHistoriaClinica, field.TypeString, value)
	}
	if value, ok := _u.mutation.FechaNacimiento(); ok {
		_spec.SetField(paciente.FieldFechaNacimiento, field.TypeTime, value)
	}
	if _u.mutation.FechaNacimientoCleared() {
		_spec.ClearField(paciente.FieldFechaNacimiento, field.TypeTime)
	}
	if value, ok := _u.mutation.Genero(); ok {
		_spec.SetField(paciente.FieldGenero, field.TypeString, value)
	}
	if _u.mutation.GeneroCleared() {
		_spec.ClearField(paciente.FieldGenero, field.TypeString)
	}
	if value, ok := _u.mutation.Direccion(); ok {
		_spec.SetField(paciente.FieldDireccion, field.TypeString, value)
	}
	if _u.mutation.DireccionCleared() {
		_spec.ClearField(paciente.FieldDireccion, field.TypeString)
	}
	if value, ok := _u.mutation.Telefono(); ok {
		_spec.SetField(paciente.FieldTelefono, field.TypeString, value)
	}
	if _u.mutation.TelefonoCleared() {
		_spec.ClearField(paciente.FieldTelefono, field.TypeString)
	}
	if value, ok := _u.mutation.Dni(); ok {
		_spec.SetField(paciente.FieldDni, field.TypeString, value)
	}
	if _u.mutation.DniCleared() {
		_spec.ClearField(paciente.FieldDni, field.TypeString)
	}
	_node = &Paciente{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paciente.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
