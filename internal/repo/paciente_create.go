// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/nlonghi/fojas_backend/internal/repo/paciente"
)

// PacienteCreate is the builder for creating a Paciente entity.
type PacienteCreate struct {
	config
	mutation *PacienteMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PacienteCreate) SetCreatedAt(v time.Time) *PacienteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PacienteCreate) SetNillableCreatedAt(v *time.Time) *PacienteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PacienteCreate) SetUpdatedAt(v time.Time) *PacienteCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PacienteCreate) SetNillableUpdatedAt(v *time.Time) *PacienteCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetNombre sets the "nombre" field.
func (_c *PacienteCreate) SetNombre(v string) *PacienteCreate {
	_c.mutation.SetNombre(v)
	return _c
}

// SetNumHistoriaClinica sets the "num_historia_clinica" field.
func (_c *PacienteCreate) SetNumHistoriaClinica(v string) *PacienteCreate {
	_c.mutation.SetNumHistoriaClinica(v)
	return _c
}

// SetFechaNacimiento sets the "fecha_nacimiento" field.
func (_c *PacienteCreate) SetFechaNacimiento(v time.Time) *PacienteCreate {
	_c.mutation.SetFechaNacimiento(v)
	return _c
}

// SetNillableFechaNacimiento sets the "fecha_nacimiento" field if the given value is not nil.
func (_c *PacienteCreate) SetNillableFechaNacimiento(v *time.Time) *PacienteCreate {
	if v != nil {
		_c.SetFechaNacimiento(*v)
	}
	return _c
}

// SetGenero sets the "genero" field.
func (_c *PacienteCreate) SetGenero(v string) *PacienteCreate {
	_c.mutation.SetGenero(v)
	return _c
}

// SetNillableGenero sets the "genero" field if the given value is not nil.
func (_c *PacienteCreate) SetNillableGenero(v *string) *PacienteCreate {
	if v != nil {
		_c.SetGenero(*v)
	}
	return _c
}

// SetDireccion sets the "direccion" field.
func (_c *PacienteCreate) SetDireccion(v string) *PacienteCreate {
	_c.mutation.SetDireccion(v)
	return _c
}

// SetNillableDireccion sets the "direccion" field if the given value is not nil.
func (_c *PacienteCreate) SetNillableDireccion(v *string) *PacienteCreate {
	if v != nil {
		_c.SetDireccion(*v)
	}
	return _c
}

// SetTelefono sets the "telefono" field.
func (_c *PacienteCreate) SetTelefono(v string) *PacienteCreate {
	_c.mutation.SetTelefono(v)
	return _c
}

// SetNillableTelefono sets the "telefono" field if the given value is not nil.
func (_c *PacienteCreate) SetNillableTelefono(v *string) *PacienteCreate {
	if v != nil {
		_c.SetTelefono(*v)
	}
	return _c
}

// SetDni sets the "dni" field.
func (_c *PacienteCreate) SetDni(v string) *PacienteCreate {
	_c.mutation.SetDni(v)
	return _c
}

// SetNillableDni sets the "dni" field if the given value is not nil.
func (_c *PacienteCreate) SetNillableDni(v *string) *PacienteCreate {
	if v != nil {
		_c.SetDni(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PacienteCreate) SetID(v uuid.UUID) *PacienteCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PacienteCreate) SetNillableID(v *uuid.UUID) *PacienteCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PacienteMutation object of the builder.
func (_c *PacienteCreate) Mutation() *PacienteMutation {
	return _c.mutation
}

// Save creates the Paciente in the database.
func (_c *PacienteCreate) Save(ctx context.Context) (*Paciente, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PacienteCreate) SaveX(ctx context.Context) *Paciente {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PacienteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PacienteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PacienteCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := paciente.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := paciente.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := paciente.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PacienteCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Paciente.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Paciente.updated_at"`)}
	}
	if _, ok := _c.mutation.Nombre(); !ok {
		return &ValidationError{Name: "nombre", err: errors.New(`repo: missing required field "Paciente.nombre"`)}
	}
	if v, ok := _c.mutation.Nombre(); ok {
		if err := paciente.NombreValidator(v); err != nil {
			return &ValidationError{Name: "nombre", err: fmt.Errorf(`repo: validator failed for field "Paciente.nombre": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NumHistoriaClinica(); !ok {
		return &ValidationError{Name: "num_historia_clinica", err: errors.New(`repo: missing required field "Paciente.num_historia_clinica"`)}
	}
	if v, ok := _c.mutation.NumHistoriaClinica(); ok {
		if err := paciente.NumHistoriaClinicaValidator(v); err != nil {
			return &ValidationError{Name: "num_historia_clinica", err: fmt.Errorf(`repo: validator failed for field "Paciente.num_historia_clinica": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Genero(); ok {
		if err := paciente.GeneroValidator(v); err != nil {
			return &ValidationError{Name: "genero", err: fmt.Errorf(`repo: validator failed for field "Paciente.genero": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Direccion(); ok {
		if err := paciente.DireccionValidator(v); err != nil {
			return &ValidationError{Name: "direccion", err: fmt.Errorf(`repo: validator failed for field "Paciente.direccion": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Telefono(); ok {
		if err := paciente.TelefonoValidator(v); err != nil {
			return &ValidationError{Name: "telefono", err: fmt.Errorf(`repo: validator failed for field "Paciente.telefono": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Dni(); ok {
		if err := paciente.DniValidator(v); err != nil {
			return &ValidationError{Name: "dni", err: fmt.Errorf(`repo: validator failed for field "Paciente.dni": %w`, err)}
		}
	}
	return nil
}

func (_c *PacienteCreate) sqlSave(ctx context.Context) (*Paciente, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PacienteCreate) createSpec() (*Paciente, *sqlgraph.CreateSpec) {
	var (
		_node = &Paciente{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(paciente.Table, sqlgraph.NewFieldSpec(paciente.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(paciente.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(paciente.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Nombre(); ok {
		_spec.SetField(paciente.FieldNombre, field.TypeString, value)
		_node.Nombre = value
	}
	if value, ok := _c.mutation.NumHistoriaClinica(); ok {
		_spec.SetField(paciente.FieldNumHistoriaClinica, field.TypeString, value)
		_node.NumHistoriaClinica = value
	}
	if value, ok := _c.mutation.FechaNacimiento(); ok {
		_spec.SetField(paciente.FieldFechaNacimiento, field.TypeTime, value)
		_node.FechaNacimiento = &value
	}
	if value, ok := _c.mutation.Genero(); ok {
		_spec.SetField(paciente.FieldGenero, field.TypeString, value)
		_node.Genero = &value
	}
	if value, ok := _c.mutation.Direccion(); ok {
		_spec.SetField(paciente.FieldDireccion, field.TypeString, value)
		_node.Direccion = &value
	}
	if value, ok := _c.mutation.Telefono(); ok {
		_spec.SetField(paciente.FieldTelefono, field.TypeString, value)
		_node.Telefono = &value
	}
	if value, ok := _c.mutation.Dni(); ok {
		_spec.SetField(paciente.FieldDni, field.TypeString, value)
		_node.Dni = &value
	}
	return _node, _spec
}

// PacienteCreateBulk is the builder for creating many Paciente entities in bulk.
type PacienteCreateBulk struct {
	config
	err      error
	builders []*PacienteCreate
}

// Save creates the Paciente entities in the database.
func (_c *PacienteCreateBulk) Save(ctx context.Context) ([]*Paciente, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Paciente, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PacienteMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PacienteCreateBulk) SaveX(ctx context.Context) []*Paciente {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PacienteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PacienteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
