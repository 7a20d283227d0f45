package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nlonghi/fojas_backend/internal/api/http/handler"
	"github.com/nlonghi/fojas_backend/pkg/authorize"
)

func (r *Router) registerPacienteRoutes(
	api fiber.Router,
	h *handler.PacienteHandler,
	authRequired fiber.Handler,
	resolveIdentity fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	pacientes := api.Group("/pacientes", authRequired, resolveIdentity)

	pacientes.Get("/", requirePerm(authorize.ResourcePaciente, authorize.ActionRead), h.List)
	pacientes.Post("/", requirePerm(authorize.ResourcePaciente, authorize.ActionCreate), h.Create)
	pacientes.Get("/historia/:num", requirePerm(authorize.ResourcePaciente, authorize.ActionRead), h.GetByHistoria)

	p := pacientes.Group("/:id")
	p.Get("/", requirePerm(authorize.ResourcePaciente, authorize.ActionRead), h.Get)
	p.Patch("/", requirePerm(authorize.ResourcePaciente, authorize.ActionUpdate), h.Update)
}
