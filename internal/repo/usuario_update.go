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
	"github.com/nlonghi/fojas_backend/internal/repo/predicate"
	"github.com/nlonghi/fojas_backend/internal/repo/usuario"
)

// UsuarioUpdate is the builder for updating Usuario entities.
type UsuarioUpdate struct {
	config
	hooks    []Hook
	mutation *UsuarioMutation
}

// Where appends a list predicates to the UsuarioUpdate builder.
func (_u *UsuarioUpdate) Where(ps ...predicate.Usuario) *UsuarioUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UsuarioUpdate) SetUpdatedAt(v time.Time) *UsuarioUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNombre sets the "nombre" field.
func (_u *UsuarioUpdate) SetNombre(v string) *UsuarioUpdate {
	_u.mutation.SetNombre(v)
	return _u
}

// SetNillableNombre sets the "nombre" field if the given value is not nil.
func (_u *UsuarioUpdate) SetNillableNombre(v *string) *UsuarioUpdate {
	if v != nil {
		_u.SetNombre(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UsuarioUpdate) SetEmail(v string) *UsuarioUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UsuarioUpdate) SetNillableEmail(v *string) *UsuarioUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetDni sets the "dni" field.
func (_u *UsuarioUpdate) SetDni(v string) *UsuarioUpdate {
	_u.mutation.SetDni(v)
	return _u
}

// SetNillableDni sets the "dni" field if the given value is not nil.
func (_u *UsuarioUpdate) SetNillableDni(v *string) *UsuarioUpdate {
	if v != nil {
		_u.SetDni(*v)
	}
	return _u
}

// ClearDni clears the value of the "dni" field.
func (_u *UsuarioUpdate) ClearDni() *UsuarioUpdate {
	_u.mutation.ClearDni()
	return _u
}

// SetRol sets the "rol" field.
func (_u *UsuarioUpdate) SetRol(v string) *UsuarioUpdate {
	_u.mutation.SetRol(v)
	return _u
}

// SetNillableRol sets the "rol" field if the given value is not nil.
func (_u *UsuarioUpdate) SetNillableRol(v *string) *UsuarioUpdate {
	if v != nil {
		_u.SetRol(*v)
	}
	return _u
}

// ClearRol clears the value of the "rol" field.
func (_u *UsuarioUpdate) ClearRol() *UsuarioUpdate {
	_u.mutation.ClearRol()
	return _u
}

// SetHabilitado sets the "habilitado" field.
func (_u *UsuarioUpdate) SetHabilitado(v bool) *UsuarioUpdate {
	_u.mutation.SetHabilitado(v)
	return _u
}

// SetNillableHabilitado sets the "habilitado" field if the given value is not nil.
func (_u *UsuarioUpdate) SetNillableHabilitado(v *bool) *UsuarioUpdate {
	if v != nil {
		_u.SetHabilitado(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UsuarioUpdate) SetPasswordHash(v string) *UsuarioUpdate {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UsuarioUpdate) SetNillablePasswordHash(v *string) *UsuarioUpdate {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (_u *UsuarioUpdate) ClearPasswordHash() *UsuarioUpdate {
	_u.mutation.ClearPasswordHash()
	return _u
}

// SetMustChangePassword sets the "must_change_password" field.
func (_u *UsuarioUpdate) SetMustChangePassword(v bool) *UsuarioUpdate {
	_u.mutation.SetMustChangePassword(v)
	return _u
}

// SetNillableMustChangePassword sets the "must_change_password" field if the given value is not nil.
func (_u *UsuarioUpdate) SetNillableMustChangePassword(v *bool) *UsuarioUpdate {
	if v != nil {
		_u.SetMustChangePassword(*v)
	}
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *UsuarioUpdate) SetLastLoginAt(v time.Time) *UsuarioUpdate {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *UsuarioUpdate) SetNillableLastLoginAt(v *time.Time) *UsuarioUpdate {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *UsuarioUpdate) ClearLastLoginAt() *UsuarioUpdate {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (_u *UsuarioUpdate) SetFailedLoginAttempts(v int) *UsuarioUpdate {
	_u.mutation.ResetFailedLoginAttempts()
	_u.mutation.SetFailedLoginAttempts(v)
	return _u
}

// SetNillableFailedLoginAttempts sets the "failed_login_attempts" field if the given value is not nil.
func (_u *UsuarioUpdate) SetNillableFailedLoginAttempts(v *int) *UsuarioUpdate {
	if v != nil {
		_u.SetFailedLoginAttempts(*v)
	}
	return _u
}

// AddFailedLoginAttempts adds value to the "failed_login_attempts" field.
func (_u *UsuarioUpdate) AddFailedLoginAttempts(v int) *UsuarioUpdate {
	_u.mutation.AddFailedLoginAttempts(v)
	return _u
}

// SetLockedUntil sets the "locked_until" field.
func (_u *UsuarioUpdate) SetLockedUntil(v time.Time) *UsuarioUpdate {
	_u.mutation.SetLockedUntil(v)
	return _u
}

// SetNillableLockedUntil sets the "locked_until" field if the given value is not nil.
func (_u *UsuarioUpdate) SetNillableLockedUntil(v *time.Time) *UsuarioUpdate {
	if v != nil {
		_u.SetLockedUntil(*v)
	}
	return _u
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (_u *UsuarioUpdate) ClearLockedUntil() *UsuarioUpdate {
	_u.mutation.ClearLockedUntil()
	return _u
}

// Mutation returns the UsuarioMutation object of the builder.
func (_u *UsuarioUpdate) Mutation() *UsuarioMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *UsuarioUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsuarioUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *UsuarioUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsuarioUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UsuarioUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usuario.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsuarioUpdate) check() error {
	if v, ok := _u.mutation.Nombre(); ok {
		if err := usuario.NombreValidator(v); err != nil {
			return &ValidationError{Name: "nombre", err: fmt.Errorf(`repo: validator failed for field "Usuario.nombre": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := usuario.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Usuario.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dni(); ok {
		if err := usuario.DniValidator(v); err != nil {
			return &ValidationError{Name: "dni", err: fmt.Errorf(`repo: validator failed for field "Usuario.dni": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rol(); ok {
		if err := usuario.RolValidator(v); err != nil {
			return &ValidationError{Name: "rol", err: fmt.Errorf(`repo: validator failed for field "Usuario.rol": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedLoginAttempts(); ok {
		if err := usuario.FailedLoginAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "failed_login_attempts", err: fmt.Errorf(`repo: validator failed for field "Usuario.failed_login_attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *UsuarioUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usuario.Table, usuario.Columns, sqlgraph.NewFieldSpec(usuario.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(usuario.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Nombre(); ok {
		_spec.SetField(usuario.FieldNombre, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(usuario.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dni(); ok {
		_spec.SetField(usuario.FieldDni, field.TypeString, value)
	}
	if _u.mutation.DniCleared() {
		_spec.ClearField(usuario.FieldDni, field.TypeString)
	}
	if value, ok := _u.mutation.Rol(); ok {
		_spec.SetField(usuario.FieldRol, field.TypeString, value)
	}
	if _u.mutation.RolCleared() {
		_spec.ClearField(usuario.FieldRol, field.TypeString)
	}
	if value, ok := _u.mutation.Habilitado(); ok {
		_spec.SetField(usuario.FieldHabilitado, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(usuario.FieldPasswordHash, field.TypeString, value)
	}
	if _u.mutation.PasswordHashCleared() {
		_spec.ClearField(usuario.FieldPasswordHash, field.TypeString)
	}
	if value, ok := _u.mutation.MustChangePassword(); ok {
		_spec.SetField(usuario.FieldMustChangePassword, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(usuario.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(usuario.FieldLastLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedLoginAttempts(); ok {
		_spec.SetField(usuario.FieldFailedLoginAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedLoginAttempts(); ok {
		_spec.AddField(usuario.FieldFailedLoginAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LockedUntil(); ok {
		_spec.SetField(usuario.FieldLockedUntil, field.TypeTime, value)
	}
	if _u.mutation.LockedUntilCleared() {
		_spec.ClearField(usuario.FieldLockedUntil, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usuario.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// UsuarioUpdateOne is the builder for updating a single Usuario entity.
type UsuarioUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *UsuarioMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *UsuarioUpdateOne) SetUpdatedAt(v time.Time) *UsuarioUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNombre sets the "nombre" field.
func (_u *UsuarioUpdateOne) SetNombre(v string) *UsuarioUpdateOne {
	_u.mutation.SetNombre(v)
	return _u
}

// SetNillableNombre sets the "nombre" field if the given value is not nil.
func (_u *UsuarioUpdateOne) SetNillableNombre(v *string) *UsuarioUpdateOne {
	if v != nil {
		_u.SetNombre(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *UsuarioUpdateOne) SetEmail(v string) *UsuarioUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *UsuarioUpdateOne) SetNillableEmail(v *string) *UsuarioUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetDni sets the "dni" field.
func (_u *UsuarioUpdateOne) SetDni(v string) *UsuarioUpdateOne {
	_u.mutation.SetDni(v)
	return _u
}

// SetNillableDni sets the "dni" field if the given value is not nil.
func (_u *UsuarioUpdateOne) SetNillableDni(v *string) *UsuarioUpdateOne {
	if v != nil {
		_u.SetDni(*v)
	}
	return _u
}

// ClearDni clears the value of the "dni" field.
func (_u *UsuarioUpdateOne) ClearDni() *UsuarioUpdateOne {
	_u.mutation.ClearDni()
	return _u
}

// SetRol sets the "rol" field.
func (_u *UsuarioUpdateOne) SetRol(v string) *UsuarioUpdateOne {
	_u.mutation.SetRol(v)
	return _u
}

// SetNillableRol sets the "rol" field if the given value is not nil.
func (_u *UsuarioUpdateOne) SetNillableRol(v *string) *UsuarioUpdateOne {
	if v != nil {
		_u.SetRol(*v)
	}
	return _u
}

// ClearRol clears the value of the "rol" field.
func (_u *UsuarioUpdateOne) ClearRol() *UsuarioUpdateOne {
	_u.mutation.ClearRol()
	return _u
}

// SetHabilitado sets the "habilitado" field.
func (_u *UsuarioUpdateOne) SetHabilitado(v bool) *UsuarioUpdateOne {
	_u.mutation.SetHabilitado(v)
	return _u
}

// SetNillableHabilitado sets the "habilitado" field if the given value is not nil.
func (_u *UsuarioUpdateOne) SetNillableHabilitado(v *bool) *UsuarioUpdateOne {
	if v != nil {
		_u.SetHabilitado(*v)
	}
	return _u
}

// SetPasswordHash sets the "password_hash" field.
func (_u *UsuarioUpdateOne) SetPasswordHash(v string) *UsuarioUpdateOne {
	_u.mutation.SetPasswordHash(v)
	return _u
}

// SetNillablePasswordHash sets the "password_hash" field if the given value is not nil.
func (_u *UsuarioUpdateOne) SetNillablePasswordHash(v *string) *UsuarioUpdateOne {
	if v != nil {
		_u.SetPasswordHash(*v)
	}
	return _u
}

// ClearPasswordHash clears the value of the "password_hash" field.
func (_u *UsuarioUpdateOne) ClearPasswordHash() *UsuarioUpdateOne {
	_u.mutation.ClearPasswordHash()
	return _u
}

// SetMustChangePassword sets the "must_change_password" field.
func (_u *UsuarioUpdateOne) SetMustChangePassword(v bool) *UsuarioUpdateOne {
	_u.mutation.SetMustChangePassword(v)
	return _u
}

// SetNillableMustChangePassword sets the "must_change_password" field if the given value is not nil.
func (_u *UsuarioUpdateOne) SetNillableMustChangePassword(v *bool) *UsuarioUpdateOne {
	if v != nil {
		_u.SetMustChangePassword(*v)
	}
	return _u
}

// SetLastLoginAt sets the "last_login_at" field.
func (_u *UsuarioUpdateOne) SetLastLoginAt(v time.Time) *UsuarioUpdateOne {
	_u.mutation.SetLastLoginAt(v)
	return _u
}

// SetNillableLastLoginAt sets the "last_login_at" field if the given value is not nil.
func (_u *UsuarioUpdateOne) SetNillableLastLoginAt(v *time.Time) *UsuarioUpdateOne {
	if v != nil {
		_u.SetLastLoginAt(*v)
	}
	return _u
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (_u *UsuarioUpdateOne) ClearLastLoginAt() *UsuarioUpdateOne {
	_u.mutation.ClearLastLoginAt()
	return _u
}

// SetFailedLoginAttempts sets the "failed_login_attempts" field.
func (_u *UsuarioUpdateOne) SetFailedLoginAttempts(v int) *UsuarioUpdateOne {
	_u.mutation.ResetFailedLoginAttempts()
	_u.mutation.SetFailedLoginAttempts(v)
	return _u
}

// SetNillableFailedLoginAttempts sets the "failed_login_attempts" field if the given value is not nil.
func (_u *UsuarioUpdateOne) SetNillableFailedLoginAttempts(v *int) *UsuarioUpdateOne {
	if v != nil {
		_u.SetFailedLoginAttempts(*v)
	}
	return _u
}

// AddFailedLoginAttempts adds value to the "failed_login_attempts" field.
func (_u *UsuarioUpdateOne) AddFailedLoginAttempts(v int) *UsuarioUpdateOne {
	_u.mutation.AddFailedLoginAttempts(v)
	return _u
}

// SetLockedUntil sets the "locked_until" field.
func (_u *UsuarioUpdateOne) SetLockedUntil(v time.Time) *UsuarioUpdateOne {
	_u.mutation.SetLockedUntil(v)
	return _u
}

// SetNillableLockedUntil sets the "locked_until" field if the given value is not nil.
func (_u *UsuarioUpdateOne) SetNillableLockedUntil(v *time.Time) *UsuarioUpdateOne {
	if v != nil {
		_u.SetLockedUntil(*v)
	}
	return _u
}

// ClearLockedUntil clears the value of the "locked_until" field.
func (_u *UsuarioUpdateOne) ClearLockedUntil() *UsuarioUpdateOne {
	_u.mutation.ClearLockedUntil()
	return _u
}

// Mutation returns the UsuarioMutation object of the builder.
func (_u *UsuarioUpdateOne) Mutation() *UsuarioMutation {
	return _u.mutation
}

// Where appends a list predicates to the UsuarioUpdate builder.
func (_u *UsuarioUpdateOne) Where(ps ...predicate.Usuario) *UsuarioUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *UsuarioUpdateOne) Select(field string, fields ...string) *UsuarioUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Usuario entity.
func (_u *UsuarioUpdateOne) Save(ctx context.Context) (*Usuario, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *UsuarioUpdateOne) SaveX(ctx context.Context) *Usuario {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *UsuarioUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *UsuarioUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *UsuarioUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := usuario.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *UsuarioUpdateOne) check() error {
	if v, ok := _u.mutation.Nombre(); ok {
		if err := usuario.NombreValidator(v); err != nil {
			return &ValidationError{Name: "nombre", err: fmt.Errorf(`repo: validator failed for field "Usuario.nombre": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := usuario.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`repo: validator failed for field "Usuario.email": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Dni(); ok {
		if err := usuario.DniValidator(v); err != nil {
			return &ValidationError{Name: "dni", err: fmt.Errorf(`repo: validator failed for field "Usuario.dni": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Rol(); ok {
		if err := usuario.RolValidator(v); err != nil {
			return &ValidationError{Name: "rol", err: fmt.Errorf(`repo: validator failed for field "Usuario.rol": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FailedLoginAttempts(); ok {
		if err := usuario.FailedLoginAttemptsValidator(v); err != nil {
			return &ValidationError{Name: "failed_login_attempts", err: fmt.Errorf(`repo: validator failed for field "Usuario.failed_login_attempts": %w`, err)}
		}
	}
	return nil
}

func (_u *UsuarioUpdateOne) sqlSave(ctx context.Context) (_node *Usuario, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(usuario.Table, usuario.Columns, sqlgraph.NewFieldSpec(usuario.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Usuario.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, usuario.FieldID)
		for _, f := range fields {
			if !usuario.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != usuario.FieldID {
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
		_spec.SetField(usuario.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Nombre(); ok {
		_spec.SetField(usuario.FieldNombre, field.TypeString, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(usuario.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.Dni(); ok {
		_spec.SetField(usuario.FieldDni, field.TypeString, value)
	}
	if _u.mutation.DniCleared() {
		_spec.ClearField(usuario.FieldDni, field.TypeString)
	}
	if value, ok := _u.mutation.Rol(); ok {
		_spec.SetField(usuario.FieldRol, field.TypeString, value)
	}
	if _u.mutation.RolCleared() {
		_spec.ClearField(usuario.FieldRol, field.TypeString)
	}
	if value, ok := _u.mutation.Habilitado(); ok {
		_spec.SetField(usuario.FieldHabilitado, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PasswordHash(); ok {
		_spec.SetField(usuario.FieldPasswordHash, field.TypeString, value)
	}
	if _u.mutation.PasswordHashCleared() {
		_spec.ClearField(usuario.FieldPasswordHash, field.TypeString)
	}
	if value, ok := _u.mutation.MustChangePassword(); ok {
		_spec.SetField(usuario.FieldMustChangePassword, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LastLoginAt(); ok {
		_spec.SetField(usuario.FieldLastLoginAt, field.TypeTime, value)
	}
	if _u.mutation.LastLoginAtCleared() {
		_spec.ClearField(usuario.FieldLastLoginAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedLoginAttempts(); ok {
		_spec.SetField(usuario.FieldFailedLoginAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFailedLoginAttempts(); ok {
		_spec.AddField(usuario.FieldFailedLoginAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LockedUntil(); ok {
		_spec.SetField(usuario.FieldLockedUntil, field.TypeTime, value)
	}
	if _u.mutation.LockedUntilCleared() {
		_spec.ClearField(usuario.FieldLockedUntil, field.TypeTime)
	}
	_node = &Usuario{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{usuario.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
