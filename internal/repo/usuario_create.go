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
	"github.com/nlonghi/fojas_backend/internal/repo/usuario"
)

// UsuarioCreate is the builder for creating a Usuario entity.
type UsuarioCreate struct {
	config
	mutation *UsuarioMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *UsuarioCreate) SetCreatedAt(v time.Time) *UsuarioCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *UsuarioCreate) SetNillableCreatedAt(v *time.Time) *UsuarioCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *UsuarioCreate) SetUpdatedAt(v time.Time) *UsuarioCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *UsuarioCreate) SetNillableUpdatedAt(v *time.Time) *UsuarioCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetNombre sets the "nombre" field.
func (_c *UsuarioCreate) SetNombre(v string) *UsuarioCreate {
	_c.mutation.SetNombre(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *UsuarioCreate) SetEmail(v string) *UsuarioCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetDni sets the "dni" field.
func (_c *UsuarioCreate) SetDni(v string) *UsuarioCreate {
	_c.mutation.SetDni(v)
	return _c
}

// SetNillableDni sets the "dni" field if the given value is not nil.
func (_c *UsuarioCreate) SetNillableDni(v *string) *UsuarioCreate {
	if v != nil {
		_c.SetDni(*v)
	}
	return _c
}

// SetRol sets the "rol" field.
func (_c *UsuarioCreate) SetRol(v string) *UsuarioCreate {
	_c.mutation.SetRol(v)
	return _c
}

// SetNillableRol sets the "rol" field if the given value is not nil.
func (_c *UsuarioCreate) SetNillableRol(v *string) *UsuarioCreate {
	if v != nil {
		_c.SetRol(*v)
	}
	return _c
}

// SetHabilitado sets the "habilitado" field.
func (_c *UsuarioCreate) SetHabilitado(v bool) *UsuarioCreate {
	_c.mutation.SetHabilitado(v)
	return _c
}

// SetNillableHabilitado sets the "habilitado" field if the given value is not nil.
func (_c *UsuarioCreate) SetNillableHabilitado(v *bool) *UsuarioCreate {
	if v != nil {
		_c.SetHabilitado(*v)
	}
	return _c
}

// SetPasswordHash sets the "password_hash" field.
func (_c *UsuarioCreate) SetPasswordHash(v string) *UsuarioCreate {
	_c.mutation.SetPasswordHash(v)
	return _c
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_c *UsuarioCreate) SetNillablePasswordHash(v *string) *UsuarioCreate {
	if v != nil {
		_c.SetPasswordHash(*v)
	}
	return _c
}

// SetMustChangePassword sets the "must_change_password" field.
func (_c *UsuarioCreate) SetMustChangePassword(v bool) *UsuarioCreate {
	_c.mutation.SetMustChangePassword(v)
	return _c
}

// SetNillableMustChangePassword sets the "must_change_password" field if the given value is not nil.
func (_c *UsuarioCreate) SetNillableMustChangePassword(v *bool) *UsuarioCreate {
	if v != nil {
		_c.SetMustChangePassword(*v)
	}
	return _c
}

// SetLastLoginAt sets the "last_login_at" field.
func (_c *UsuarioCreate) SetLastLoginAt(v time.Time) *UsuarioCreate {
	_c.mutation.SetLastLoginAt(v)
	return _c
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_c *UsuarioCreate) SetNillableLastLoginAt(v *time.Time) *UsuarioCreate {
	if v != nil {
		_c.SetLastLoginAt(*v)
	}
	return _c
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (_c *UsuarioCreate) SetFailedLoginAttempts(v int) *UsuarioCreate {
	_c.mutation.SetFailedLoginAttempts(v)
	return _c
}

// SetNillableFailedLoginAttempts sets the "failed_login_attempts" field if the given value is not nil.
func (_c *UsuarioCreate) SetNillableFailedLoginAttempts(v *int) *UsuarioCreate {
	if v != nil {
		_c.SetFailedLoginAttempts(*v)
	}
	return _c
}

// SetLockedUntil sets the "locked_until" field.
func (_c *UsuarioCreate) SetLockedUntil(v time.Time) *UsuarioCreate {
	_c.mutation.SetLockedUntil(v)
	return _c
}

// SetNillableLockedUntil sets the "locked_until" field if the given value is not nil.
func (_c *UsuarioCreate) SetNillableLockedUntil(v *time.Time) *UsuarioCreate {
	if v != nil {
		_c.SetLockedUntil(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *UsuarioCreate) SetID(v uuid.UUID) *UsuarioCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *UsuarioCreate) SetNillableID(v *uuid.UUID) *UsuarioCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the UsuarioMutation object of the builder.
func (_c *UsuarioCreate) Mutation() *UsuarioMutation {
	return _c.mutation
}

// Save creates the Usuario in the database.
func (_c *UsuarioCreate) Save(ctx context.Context) (*Usuario, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *UsuarioCreate) SaveX(ctx context.Context) *Usuario {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsuarioCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsuarioCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *UsuarioCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := usuario.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := usuario.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Habilitado(); !ok {
		v := usuario.DefaultHabilitado
		_c.mutation.SetHabilitado(v)
	}
	if _, ok := _c.mutation.MustChangePassword(); !ok {
		v := usuario.DefaultMustChangePassword
		_c.mutation.SetMustChangePassword(v)
	}
	if _, ok := _c.mutation.FailedLoginAttempts(); !ok {
		v := usuario.DefaultFailedLoginAttempts
		_c.mutation.SetFailedLoginAttempts(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := usuario.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *UsuarioCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Usuario.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Usuario.updated_at"`)}
	}
	if _, ok := _c.mutation.Nombre(); !ok {
		return &ValidationError{Name: "nombre", err: errors.New(`repo: missing required field "Usuario.nombre"`)}
	}
	if v, ok := _c.mutation.Nombre(); ok {
		if err := usuario.NombreValidator(v); err != nil {
			return &ValidationError{Name: "nombre", err: fmt.Errorf(`repo: validator failed for field "Usuario.nombre": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`repo: missing required field "Usuario.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := usuario.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Usuario.email": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Dni(); ok {
		if err := usuario.DniValidator(v); err != nil {
			return &ValidationError{Name: "dni", err: fmt.Errorf(`repo: validator failed for field "Usuario.dni": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Rol(); ok {
		if err := usuario.RolValidator(v); err != nil {
			return &ValidationError{Name: "rol", err: fmt.Errorf(`repo: validator failed for field "Usuario.rol": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Habilitado(); !ok {
		return &ValidationError{Name: "habilitado", err: errors.New(`repo: missing required field "Usuario.habilitado"`)}
	}
	if _, ok := _c.mutation.MustChangePassword(); !ok {
		return &ValidationError{Name: "must_change_password", err: errors.New(`repo: missing required field "Usuario.must_change_password"`)}
	}
	if _, ok := _c.mutation.FailedLoginAttempts(); !ok {
		return &ValidationError{Name: "failed_login_attempts", err: errors.New(`repo: missing required field "Usuario.failed_login_attempts"`)}
	}
	if v, ok := _c.mutation.FailedLoginAttempts(); ok {
		if err := usuario.FailedLoginAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "failed_login_attempts", err: fmt.Errorf(`repo: validator failed for field "Usuario.failed_login_attempts": %w`, err)}
		}
	}
	return nil
}

func (_c *UsuarioCreate) sqlSave(ctx context.Context) (*Usuario, error) {
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

func (_c *UsuarioCreate) createSpec() (*Usuario, *sqlgraph.CreateSpec) {
	var (
		_node = &Usuario{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(usuario.Table, sqlgraph.NewFieldSpec(usuario.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(usuario.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(usuario.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Nombre(); ok {
		_spec.SetField(usuario.FieldNombre, field.TypeString, value)
		_node.Nombre = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(usuario.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.Dni(); ok {
		_spec.SetField(usuario.FieldDni, field.TypeString, value)
		_node.Dni = &value
	}
	if value, ok := _c.mutation.Rol(); ok {
		_spec.SetField(usuario.FieldRol, field.TypeString, value)
		_node.Rol = value
	}
	if value, ok := _c.mutation.Habilitado(); ok {
		_spec.SetField(usuario.FieldHabilitado, field.TypeBool, value)
		_node.Habilitado = value
	}
	if value, ok := _c.mutation.PasswordHash(); ok {
		_spec.SetField(usuario.FieldPasswordHash, field.TypeString, value)
		_node.PasswordHash = &value
	}
	if value, ok := _c.mutation.MustChangePassword(); ok {
		_spec.SetField(usuario.FieldMustChangePassword, field.TypeBool, value)
		_node.MustChangePassword = value
	}
	if value, ok := _c.mutation.LastLoginAt(); ok {
		_spec.SetField(usuario.FieldLastLoginAt, field.TypeTime, value)
		_node.LastLoginAt = &value
	}
	if value, ok := _c.mutation.FailedLoginAttempts(); ok {
		_spec.SetField(usuario.FieldFailedLoginAttempts, field.TypeInt, value)
		_node.FailedLoginAttempts = value
	}
	if value, ok := _c.mutation.LockedUntil(); ok {
		_spec.SetField(usuario.FieldLockedUntil, field.TypeTime, value)
		_node.LockedUntil = &value
	}
	return _node, _spec
}

// UsuarioCreateBulk is the builder for creating many Usuario entities in bulk.
type UsuarioCreateBulk struct {
	config
	err      error
	builders []*UsuarioCreate
}

// Save creates the Usuario entities in the database.
func (_c *UsuarioCreateBulk) Save(ctx context.Context) ([]*Usuario, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Usuario, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*UsuarioMutation)
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
func (_c *UsuarioCreateBulk) SaveX(ctx context.Context) []*Usuario {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *UsuarioCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *UsuarioCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
