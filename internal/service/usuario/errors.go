package usuario

import "errors"

var (
	ErrUsuarioNotFound    = errors.New("usuario not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidRol         = errors.New("invalid rol")
	ErrNombreRequired     = errors.New("nombre is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrSelfRoleChange     = errors.New("cannot change own role")
	ErrSelfDisable        = errors.New("cannot disable own account")
)
