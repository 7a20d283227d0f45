package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nlonghi/fojas_backend/internal/api/http/handler"
	"github.com/nlonghi/fojas_backend/pkg/authorize"
)

func (r *Router) registerUsuarioRoutes(
	api fiber.Router,
	h *handler.UsuarioHandler,
	authRequired fiber.Handler,
	resolveIdentity fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	usuarios := api.Group("/usuarios", authRequired, resolveIdentity)

	usuarios.Get("/", requirePerm(authorize.ResourceUsuario, authorize.ActionRead), h.List)
	usuarios.Post("/", requirePerm(authorize.ResourceUsuario, authorize.ActionCreate), h.Create)

	u := usuarios.Group("/:id")
	u.Get("/", requirePerm(authorize.ResourceUsuario, authorize.ActionRead), h.Get)
	u.Patch("/", requirePerm(authorize.ResourceUsuario, authorize.ActionUpdate), h.Update)
	u.Post("/reset-password", requirePerm(authorize.ResourceUsuario, authorize.ActionManage), h.ResetPassword)
}
