package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nlonghi/fojas_backend/internal/api/http/handler"
	"github.com/nlonghi/fojas_backend/pkg/authorize"
)

func (r *Router) registerFojaRoutes(
	api fiber.Router,
	h *handler.FojaHandler,
	authRequired fiber.Handler,
	resolveIdentity fiber.Handler,
	requirePerm func(authorize.Resource, authorize.Action) fiber.Handler,
) {
	fojas := api.Group("/fojas", authRequired, resolveIdentity)

	fojas.Get("/", requirePerm(authorize.ResourceFoja, authorize.ActionRead), h.List)
	fojas.Post("/", requirePerm(authorize.ResourceFoja, authorize.ActionCreate), h.Create)

	f := fojas.Group("/:id")
	f.Get("/", requirePerm(authorize.ResourceFoja, authorize.ActionRead), h.Get)
	f.Patch("/", requirePerm(authorize.ResourceFoja, authorize.ActionUpdate), h.Update)

	// Records are never deleted. A disputed record is flagged instead,
	// and only a chief doctor may flip the flag.
	f.Post("/invalidar", requirePerm(authorize.ResourceFoja, authorize.ActionInvalidate), h.ToggleInvalida)
}
