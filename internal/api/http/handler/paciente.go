package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/nlonghi/fojas_backend/internal/service/paciente"
)

type PacienteHandler struct {
	svc paciente.Service
}

func NewPacienteHandler(svc paciente.Service) *PacienteHandler {
	return &PacienteHandler{svc: svc}
}

func mapPacienteError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, paciente.ErrPacienteNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, paciente.ErrHistoriaAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, paciente.ErrHistoriaRequired),
		errors.Is(err, paciente.ErrNombreRequired),
		errors.Is(err, paciente.ErrInvalidTelefono):
		return badRequest(c, err.Error())
	default:
		return internalError(c, err)
	}
}

// GET /pacientes
func (h *PacienteHandler) List(c fiber.Ctx) error {
	var q struct {
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
		Search  string `query:"search"`
		Order   string `query:"order"`
	}
	_ = c.Bind().Query(&q)

	result, err := h.svc.List(c.Context(), paciente.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
		Search:  q.Search,
		Order:   q.Order,
	})
	if err != nil {
		return mapPacienteError(c, err)
	}

	return ok(c, fiber.Map{
		"pacientes":   result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// POST /pacientes
func (h *PacienteHandler) Create(c fiber.Ctx) error {
	var body struct {
		Nombre             string     `json:"nombre"`
		NumHistoriaClinica string     `json:"num_historia_clinica"`
		FechaNacimiento    *time.Time `json:"fecha_nacimiento"`
		Genero             *string    `json:"genero"`
		Direccion          *string    `json:"direccion"`
		Telefono           *string    `json:"telefono"`
		Dni                *string    `json:"dni"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Create(c.Context(), paciente.CreateRequest{
		Nombre:             body.Nombre,
		NumHistoriaClinica: body.NumHistoriaClinica,
		FechaNacimiento:    body.FechaNacimiento,
		Genero:             body.Genero,
		Direccion:          body.Direccion,
		Telefono:           body.Telefono,
		Dni:                body.Dni,
	})
	if err != nil {
		return mapPacienteError(c, err)
	}

	return created(c, p)
}

// GET /pacientes/:id
func (h *PacienteHandler) Get(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}

	p, err := h.svc.GetByID(c.Context(), id)
	if err != nil {
		return mapPacienteError(c, err)
	}
	return ok(c, p)
}

// GET /pacientes/historia/:num
func (h *PacienteHandler) GetByHistoria(c fiber.Ctx) error {
	num := c.Params("num")
	if num == "" {
		return badRequest(c, "missing history number")
	}

	p, err := h.svc.GetByHistoria(c.Context(), num)
	if err != nil {
		return mapPacienteError(c, err)
	}
	return ok(c, p)
}

// PATCH /pacientes/:id
func (h *PacienteHandler) Update(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}

	var body struct {
		Nombre          *string    `json:"nombre"`
		FechaNacimiento *time.Time `json:"fecha_nacimiento"`
		Genero          *string    `json:"genero"`
		Direccion       *string    `json:"direccion"`
		Telefono        *string    `json:"telefono"`
		Dni             *string    `json:"dni"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	p, err := h.svc.Update(c.Context(), id, paciente.UpdateRequest{
		Nombre:          body.Nombre,
		FechaNacimiento: body.FechaNacimiento,
		Genero:          body.Genero,
		Direccion:       body.Direccion,
		Telefono:        body.Telefono,
		Dni:             body.Dni,
	})
	if err != nil {
		return mapPacienteError(c, err)
	}
	return ok(c, p)
}
