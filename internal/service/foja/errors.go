package foja

import "errors"

var (
	ErrFojaNotFound     = errors.New("foja not found")
	ErrAccessDenied     = errors.New("role is not allowed to perform this action on fojas")
	ErrHistoriaRequired = errors.New("clinical history number is required")
	ErrMissingField     = errors.New("required foja field is missing")
	ErrInvalidAnestesia = errors.New("anestesia must be general or local")
	ErrInvalidRiesgo    = errors.New("riesgo quirurgico must be bajo, mediano or alto")
)
