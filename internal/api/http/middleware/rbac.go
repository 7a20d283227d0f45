package middleware

import (
	"github.com/gofiber/fiber/v3"

	"github.com/nlonghi/fojas_backend/pkg/authorize"
)

// RequirePermission enforces that the resolved staff identity's role
// grants the given action on the resource, in the hospital domain. The
// role itself is the casbin subject; per-user grouping rows are an
// additional path, not a requirement.
//
// Must run after ResolveIdentity.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		emp, ok := EmpleadoFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		subject := authorize.GroupSubject(emp.Rol)
		if err := auth.MustEnforce(c.Context(), subject, authorize.DomainHospital, resource, action); err != nil {
			if err == authorize.ErrForbidden {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
