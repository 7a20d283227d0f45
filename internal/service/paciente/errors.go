package paciente

import "errors"

var (
	ErrPacienteNotFound      = errors.New("paciente not found")
	ErrHistoriaAlreadyExists = errors.New("a paciente with this clinical history number already exists")
	ErrHistoriaRequired      = errors.New("clinical history number is required")
	ErrNombreRequired        = errors.New("paciente name is required")
	ErrInvalidTelefono       = errors.New("invalid phone number for the configured region")
)
