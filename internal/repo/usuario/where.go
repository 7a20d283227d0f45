// Code generated by ent, DO NOT EDIT.

package usuario

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/nlonghi/fojas_backend/internal/repo/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Usuario {
	return predicate.Usuario(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Usuario {
	return predicate.Usuario(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Usuario {
	return predicate.Usuario(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Usuario {
	return predicate.Usuario(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Usuario {
	return predicate.Usuario(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Usuario {
	return predicate.Usuario(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Usuario {
	return predicate.Usuario(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldUpdatedAt, v))
}

// Nombre applies equality check predicate on the "nombre" field. It's identical to NombreEQ.
func Nombre(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldNombre, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldEmail, v))
}

// Dni applies equality check predicate on the "dni" field. It's identical to DniEQ.
func Dni(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldDni, v))
}

// Rol applies equality check predicate on the "rol" field. It's identical to RolEQ.
func Rol(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldRol, v))
}

// Habilitado applies equality check predicate on the "habilitado" field. It's identical to HabilitadoEQ.
func Habilitado(v bool) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldHabilitado, v))
}

// PasswordHash applies equality check predicate on the "password_hash" field. It's identical to PasswordHashEQ.
func PasswordHash(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldPasswordHash, v))
}

// MustChangePassword applies equality check predicate on the "must_change_password" field. It's identical to MustChangePasswordEQ.
func MustChangePassword(v bool) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldMustChangePassword, v))
}

// LastLoginAt applies equality check predicate on the "last_login_at" field. It's identical to LastLoginAtEQ.
func LastLoginAt(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldLastLoginAt, v))
}

// FailedLoginAttempts applies equality check predicate on the "failed_login_attempts" field. It's identical to FailedLoginAttemptsEQ.
func FailedLoginAttempts(v int) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldFailedLoginAttempts, v))
}

// LockedUntil applies equality check predicate on the "locked_until" field. It's identical to LockedUntilEQ.
func LockedUntil(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldLockedUntil, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldLTE(FieldUpdatedAt, v))
}

// NombreEQ applies the EQ predicate on the "nombre" field.
func NombreEQ(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldNombre, v))
}

// NombreNEQ applies the NEQ predicate on the "nombre" field.
func NombreNEQ(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldNEQ(FieldNombre, v))
}

// NombreIn applies the In predicate on the "nombre" field.
func NombreIn(vs ...string) predicate.Usuario {
	return predicate.Usuario(sql.FieldIn(FieldNombre, vs...))
}

// NombreNotIn applies the NotIn predicate on the "nombre" field.
func NombreNotIn(vs ...string) predicate.Usuario {
	return predicate.Usuario(sql.FieldNotIn(FieldNombre, vs...))
}

// NombreGT applies the GT predicate on the "nombre" field.
func NombreGT(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldGT(FieldNombre, v))
}

// NombreGTE applies the GTE predicate on the "nombre" field.
func NombreGTE(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldGTE(FieldNombre, v))
}

// NombreLT applies the LT predicate on the "nombre" field.
func NombreLT(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldLT(FieldNombre, v))
}

// NombreLTE applies the LTE predicate on the "nombre" field.
func NombreLTE(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldLTE(FieldNombre, v))
}

// NombreContains applies the Contains predicate on the "nombre" field.
func NombreContains(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldContains(FieldNombre, v))
}

// NombreHasPrefix applies the HasPrefix predicate on the "nombre" field.
func NombreHasPrefix(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldHasPrefix(FieldNombre, v))
}

// NombreHasSuffix applies the HasSuffix predicate on the "nombre" field.
func NombreHasSuffix(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldHasSuffix(FieldNombre, v))
}

// NombreEqualFold applies the EqualFold predicate on the "nombre" field.
func NombreEqualFold(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEqualFold(FieldNombre, v))
}

// NombreContainsFold applies the ContainsFold predicate on the "nombre" field.
func NombreContainsFold(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldContainsFold(FieldNombre, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Usuario {
	return predicate.Usuario(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Usuario {
	return predicate.Usuario(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldContainsFold(FieldEmail, v))
}

// DniEQ applies the EQ predicate on the "dni" field.
func DniEQ(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldDni, v))
}

// DniNEQ applies the NEQ predicate on the "dni" field.
func DniNEQ(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldNEQ(FieldDni, v))
}

// DniIn applies the In predicate on the "dni" field.
func DniIn(vs ...string) predicate.Usuario {
	return predicate.Usuario(sql.FieldIn(FieldDni, vs...))
}

// DniNotIn applies the NotIn predicate on the "dni" field.
func DniNotIn(vs ...string) predicate.Usuario {
	return predicate.Usuario(sql.FieldNotIn(FieldDni, vs...))
}

// DniGT applies the GT predicate on the "dni" field.
func DniGT(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldGT(FieldDni, v))
}

// DniGTE applies the GTE predicate on the "dni" field.
func DniGTE(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldGTE(FieldDni, v))
}

// DniLT applies the LT predicate on the "dni" field.
func DniLT(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldLT(FieldDni, v))
}

// DniLTE applies the LTE predicate on the "dni" field.
func DniLTE(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldLTE(FieldDni, v))
}

// DniContains applies the Contains predicate on the "dni" field.
func DniContains(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldContains(FieldDni, v))
}

// DniHasPrefix applies the HasPrefix predicate on the "dni" field.
func DniHasPrefix(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldHasPrefix(FieldDni, v))
}

// DniHasSuffix applies the HasSuffix predicate on the "dni" field.
func DniHasSuffix(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldHasSuffix(FieldDni, v))
}

// DniIsNil applies the IsNil predicate on the "dni" field.
func DniIsNil() predicate.Usuario {
	return predicate.Usuario(sql.FieldIsNull(FieldDni))
}

// DniNotNil applies the NotNil predicate on the "dni" field.
func DniNotNil() predicate.Usuario {
	return predicate.Usuario(sql.FieldNotNull(FieldDni))
}

// DniEqualFold applies the EqualFold predicate on the "dni" field.
func DniEqualFold(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEqualFold(FieldDni, v))
}

// DniContainsFold applies the ContainsFold predicate on the "dni" field.
func DniContainsFold(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldContainsFold(FieldDni, v))
}

// RolEQ applies the EQ predicate on the "rol" field.
func RolEQ(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldRol, v))
}

// RolNEQ applies the NEQ predicate on the "rol" field.
func RolNEQ(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldNEQ(FieldRol, v))
}

// RolIn applies the In predicate on the "rol" field.
func RolIn(vs ...string) predicate.Usuario {
	return predicate.Usuario(sql.FieldIn(FieldRol, vs...))
}

// RolNotIn applies the NotIn predicate on the "rol" field.
func RolNotIn(vs ...string) predicate.Usuario {
	return predicate.Usuario(sql.FieldNotIn(FieldRol, vs...))
}

// RolGT applies the GT predicate on the "rol" field.
func RolGT(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldGT(FieldRol, v))
}

// RolGTE applies the GTE predicate on the "rol" field.
func RolGTE(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldGTE(FieldRol, v))
}

// RolLT applies the LT predicate on the "rol" field.
func RolLT(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldLT(FieldRol, v))
}

// RolLTE applies the LTE predicate on the "rol" field.
func RolLTE(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldLTE(FieldRol, v))
}

// RolContains applies the Contains predicate on the "rol" field.
func RolContains(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldContains(FieldRol, v))
}

// RolHasPrefix applies the HasPrefix predicate on the "rol" field.
func RolHasPrefix(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldHasPrefix(FieldRol, v))
}

// RolHasSuffix applies the HasSuffix predicate on the "rol" field.
func RolHasSuffix(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldHasSuffix(FieldRol, v))
}

// RolIsNil applies the IsNil predicate on the "rol" field.
func RolIsNil() predicate.Usuario {
	return predicate.Usuario(sql.FieldIsNull(FieldRol))
}

// RolNotNil applies the NotNil predicate on the "rol" field.
func RolNotNil() predicate.Usuario {
	return predicate.Usuario(sql.FieldNotNull(FieldRol))
}

// RolEqualFold applies the EqualFold predicate on the "rol" field.
func RolEqualFold(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEqualFold(FieldRol, v))
}

// RolContainsFold applies the ContainsFold predicate on the "rol" field.
func RolContainsFold(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldContainsFold(FieldRol, v))
}

// HabilitadoEQ applies the EQ predicate on the "habilitado" field.
func HabilitadoEQ(v bool) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldHabilitado, v))
}

// HabilitadoNEQ applies the NEQ predicate on the "habilitado" field.
func HabilitadoNEQ(v bool) predicate.Usuario {
	return predicate.Usuario(sql.FieldNEQ(FieldHabilitado, v))
}

// PasswordHashEQ applies the EQ predicate on the "password_hash" field.
func PasswordHashEQ(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldPasswordHash, v))
}

// PasswordHashNEQ applies the NEQ predicate on the "password_hash" field.
func PasswordHashNEQ(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldNEQ(FieldPasswordHash, v))
}

// PasswordHashIn applies the In predicate on the "password_hash" field.
func PasswordHashIn(vs ...string) predicate.Usuario {
	return predicate.Usuario(sql.FieldIn(FieldPasswordHash, vs...))
}

// PasswordHashNotIn applies the NotIn predicate on the "password_hash" field.
func PasswordHashNotIn(vs ...string) predicate.Usuario {
	return predicate.Usuario(sql.FieldNotIn(FieldPasswordHash, vs...))
}

// PasswordHashGT applies the GT predicate on the "password_hash" field.
func PasswordHashGT(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldGT(FieldPasswordHash, v))
}

// PasswordHashGTE applies the GTE predicate on the "password_hash" field.
func PasswordHashGTE(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldGTE(FieldPasswordHash, v))
}

// PasswordHashLT applies the LT predicate on the "password_hash" field.
func PasswordHashLT(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldLT(FieldPasswordHash, v))
}

// PasswordHashLTE applies the LTE predicate on the "password_hash" field.
func PasswordHashLTE(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldLTE(FieldPasswordHash, v))
}

// PasswordHashContains applies the Contains predicate on the "password_hash" field.
func PasswordHashContains(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldContains(FieldPasswordHash, v))
}

// PasswordHashHasPrefix applies the HasPrefix predicate on the "password_hash" field.
func PasswordHashHasPrefix(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldHasPrefix(FieldPasswordHash, v))
}

// PasswordHashHasSuffix applies the HasSuffix predicate on the "password_hash" field.
func PasswordHashHasSuffix(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldHasSuffix(FieldPasswordHash, v))
}

// PasswordHashIsNil applies the IsNil predicate on the "password_hash" field.
func PasswordHashIsNil() predicate.Usuario {
	return predicate.Usuario(sql.FieldIsNull(FieldPasswordHash))
}

// PasswordHashNotNil applies the NotNil predicate on the "password_hash" field.
func PasswordHashNotNil() predicate.Usuario {
	return predicate.Usuario(sql.FieldNotNull(FieldPasswordHash))
}

// PasswordHashEqualFold applies the EqualFold predicate on the "password_hash" field.
func PasswordHashEqualFold(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldEqualFold(FieldPasswordHash, v))
}

// PasswordHashContainsFold applies the ContainsFold predicate on the "password_hash" field.
func PasswordHashContainsFold(v string) predicate.Usuario {
	return predicate.Usuario(sql.FieldContainsFold(FieldPasswordHash, v))
}

// MustChangePasswordEQ applies the EQ predicate on the "must_change_password" field.
func MustChangePasswordEQ(v bool) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldMustChangePassword, v))
}

// MustChangePasswordNEQ applies the NEQ predicate on the "must_change_password" field.
func MustChangePasswordNEQ(v bool) predicate.Usuario {
	return predicate.Usuario(sql.FieldNEQ(FieldMustChangePassword, v))
}

// LastLoginAtEQ applies the EQ predicate on the "last_login_at" field.
func LastLoginAtEQ(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldLastLoginAt, v))
}

// LastLoginAtNEQ applies the NEQ predicate on the "last_login_at" field.
func LastLoginAtNEQ(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldNEQ(FieldLastLoginAt, v))
}

// LastLoginAtIn applies the In predicate on the "last_login_at" field.
func LastLoginAtIn(vs ...time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldIn(FieldLastLoginAt, vs...))
}

// LastLoginAtNotIn applies the NotIn predicate on the "last_login_at" field.
func LastLoginAtNotIn(vs ...time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldNotIn(FieldLastLoginAt, vs...))
}

// LastLoginAtGT applies the GT predicate on the "last_login_at" field.
func LastLoginAtGT(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldGT(FieldLastLoginAt, v))
}

// LastLoginAtGTE applies the GTE predicate on the "last_login_at" field.
func LastLoginAtGTE(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldGTE(FieldLastLoginAt, v))
}

// LastLoginAtLT applies the LT predicate on the "last_login_at" field.
func LastLoginAtLT(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldLT(FieldLastLoginAt, v))
}

// LastLoginAtLTE applies the LTE predicate on the "last_login_at" field.
func LastLoginAtLTE(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldLTE(FieldLastLoginAt, v))
}

// LastLoginAtIsNil applies the IsNil predicate on the "last_login_at" field.
func LastLoginAtIsNil() predicate.Usuario {
	return predicate.Usuario(sql.FieldIsNull(FieldLastLoginAt))
}

// LastLoginAtNotNil applies the NotNil predicate on the "last_login_at" field.
func LastLoginAtNotNil() predicate.Usuario {
	return predicate.Usuario(sql.FieldNotNull(FieldLastLoginAt))
}

// FailedLoginAttemptsEQ applies the EQ predicate on the "failed_login_attempts" field.
func FailedLoginAttemptsEQ(v int) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldFailedLoginAttempts, v))
}

// FailedLoginAttemptsNEQ applies the NEQ predicate on the "failed_login_attempts" field.
func FailedLoginAttemptsNEQ(v int) predicate.Usuario {
	return predicate.Usuario(sql.FieldNEQ(FieldFailedLoginAttempts, v))
}

// FailedLoginAttemptsIn applies the In predicate on the "failed_login_attempts" field.
func FailedLoginAttemptsIn(vs ...int) predicate.Usuario {
	return predicate.Usuario(sql.FieldIn(FieldFailedLoginAttempts, vs...))
}

// FailedLoginAttemptsNotIn applies the NotIn predicate on the "failed_login_attempts" field.
func FailedLoginAttemptsNotIn(vs ...int) predicate.Usuario {
	return predicate.Usuario(sql.FieldNotIn(FieldFailedLoginAttempts, vs...))
}

// FailedLoginAttemptsGT applies the GT predicate on the "failed_login_attempts" field.
func FailedLoginAttemptsGT(v int) predicate.Usuario {
	return predicate.Usuario(sql.FieldGT(FieldFailedLoginAttempts, v))
}

// FailedLoginAttemptsGTE applies the GTE predicate on the "failed_login_attempts" field.
func FailedLoginAttemptsGTE(v int) predicate.Usuario {
	return predicate.Usuario(sql.FieldGTE(FieldFailedLoginAttempts, v))
}

// FailedLoginAttemptsLT applies the LT predicate on the "failed_login_attempts" field.
func FailedLoginAttemptsLT(v int) predicate.Usuario {
	return predicate.Usuario(sql.FieldLT(FieldFailedLoginAttempts, v))
}

// FailedLoginAttemptsLTE applies the LTE predicate on the "failed_login_attempts" field.
func FailedLoginAttemptsLTE(v int) predicate.Usuario {
	return predicate.Usuario(sql.FieldLTE(FieldFailedLoginAttempts, v))
}

// LockedUntilEQ applies the EQ predicate on the "locked_until" field.
func LockedUntilEQ(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldEQ(FieldLockedUntil, v))
}

// LockedUntilNEQ applies the NEQ predicate on the "locked_until" field.
func LockedUntilNEQ(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldNEQ(FieldLockedUntil, v))
}

// LockedUntilIn applies the In predicate on the "locked_until" field.
func LockedUntilIn(vs ...time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldIn(FieldLockedUntil, vs...))
}

// LockedUntilNotIn applies the NotIn predicate on the "locked_until" field.
func LockedUntilNotIn(vs ...time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldNotIn(FieldLockedUntil, vs...))
}

// LockedUntilGT applies the GT predicate on the "locked_until" field.
func LockedUntilGT(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldGT(FieldLockedUntil, v))
}

// LockedUntilGTE applies the GTE predicate on the "locked_until" field.
func LockedUntilGTE(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldGTE(FieldLockedUntil, v))
}

// LockedUntilLT applies the LT predicate on the "locked_until" field.
func LockedUntilLT(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldLT(FieldLockedUntil, v))
}

// LockedUntilLTE applies the LTE predicate on the "locked_until" field.
func LockedUntilLTE(v time.Time) predicate.Usuario {
	return predicate.Usuario(sql.FieldLTE(FieldLockedUntil, v))
}

// LockedUntilIsNil applies the IsNil predicate on the "locked_until" field.
func LockedUntilIsNil() predicate.Usuario {
	return predicate.Usuario(sql.FieldIsNull(FieldLockedUntil))
}

// LockedUntilNotNil applies the NotNil predicate on the "locked_until" field.
func LockedUntilNotNil() predicate.Usuario {
	return predicate.Usuario(sql.FieldNotNull(FieldLockedUntil))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Usuario) predicate.Usuario {
	return predicate.Usuario(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Usuario) predicate.Usuario {
	return predicate.Usuario(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Usuario) predicate.Usuario {
	return predicate.Usuario(sql.NotPredicates(p))
}
