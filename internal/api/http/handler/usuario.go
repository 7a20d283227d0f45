package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/nlonghi/fojas_backend/internal/api/http/middleware"
	"github.com/nlonghi/fojas_backend/internal/service/usuario"
)

type UsuarioHandler struct {
	svc usuario.Service
}

func NewUsuarioHandler(svc usuario.Service) *UsuarioHandler {
	return &UsuarioHandler{svc: svc}
}

func mapUsuarioError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, usuario.ErrUsuarioNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, usuario.ErrEmailAlreadyExists):
		return conflict(c, err.Error())
	case errors.Is(err, usuario.ErrInvalidRol),
		errors.Is(err, usuario.ErrNombreRequired),
		errors.Is(err, usuario.ErrEmailRequired):
		return badRequest(c, err.Error())
	case errors.Is(err, usuario.ErrSelfRoleChange),
		errors.Is(err, usuario.ErrSelfDisable):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, usuario.ErrAccessDenied):
		return forbidden(c)
	default:
		return internalError(c, err)
	}
}

// GET /usuarios
func (h *UsuarioHandler) List(c fiber.Ctx) error {
	emp, valid := middleware.EmpleadoFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var q struct {
		Page    int    `query:"page"`
		PerPage int    `query:"per_page"`
		Search  string `query:"search"`
		Rol     string `query:"rol"`
		Order   string `query:"order"`
	}
	_ = c.Bind().Query(&q)

	req := usuario.ListRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
		Order:   q.Order,
	}
	if q.Search != "" {
		req.Search = &q.Search
	}
	if q.Rol != "" {
		req.Rol = &q.Rol
	}

	result, err := h.svc.List(c.Context(), emp, req)
	if err != nil {
		return mapUsuarioError(c, err)
	}

	return ok(c, fiber.Map{
		"usuarios":    result.Data,
		"total":       result.Total,
		"page":        result.Page,
		"per_page":    result.PerPage,
		"total_pages": result.TotalPages,
	})
}

// POST /usuarios
func (h *UsuarioHandler) Create(c fiber.Ctx) error {
	emp, valid := middleware.EmpleadoFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	var body struct {
		Nombre string  `json:"nombre"`
		Email  string  `json:"email"`
		Dni    *string `json:"dni"`
		Rol    string  `json:"rol"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	result, err := h.svc.Create(c.Context(), emp, usuario.CreateRequest{
		Nombre: body.Nombre,
		Email:  body.Email,
		Dni:    body.Dni,
		Rol:    body.Rol,
	})
	if err != nil {
		return mapUsuarioError(c, err)
	}

	resp := fiber.Map{
		"usuario":    result.Usuario,
		"email_sent": result.EmailSent,
	}
	// Surface the temp password only when it could not be delivered.
	if !result.EmailSent {
		resp["temp_password"] = result.TempPassword
	}
	return created(c, resp)
}

// GET /usuarios/:id
func (h *UsuarioHandler) Get(c fiber.Ctx) error {
	emp, valid := middleware.EmpleadoFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}

	u, err := h.svc.GetByID(c.Context(), emp, id)
	if err != nil {
		return mapUsuarioError(c, err)
	}
	return ok(c, u)
}

// PATCH /usuarios/:id
func (h *UsuarioHandler) Update(c fiber.Ctx) error {
	emp, valid := middleware.EmpleadoFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}

	var body struct {
		Nombre     *string `json:"nombre"`
		Dni        *string `json:"dni"`
		Rol        *string `json:"rol"`
		Habilitado *bool   `json:"habilitado"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	u, err := h.svc.Update(c.Context(), emp, id, usuario.UpdateRequest{
		Nombre:     body.Nombre,
		Dni:        body.Dni,
		Rol:        body.Rol,
		Habilitado: body.Habilitado,
	})
	if err != nil {
		return mapUsuarioError(c, err)
	}
	return ok(c, u)
}

// POST /usuarios/:id/reset-password
func (h *UsuarioHandler) ResetPassword(c fiber.Ctx) error {
	emp, valid := middleware.EmpleadoFromFiber(c)
	if !valid {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid id")
	}

	result, err := h.svc.ResetPassword(c.Context(), emp, id)
	if err != nil {
		return mapUsuarioError(c, err)
	}

	resp := fiber.Map{"email_sent": result.EmailSent}
	if !result.EmailSent {
		resp["temp_password"] = result.TempPassword
	}
	return ok(c, resp)
}
