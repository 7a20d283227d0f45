package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/nlonghi/fojas_backend/internal/service/identity"
	pasetotoken "github.com/nlonghi/fojas_backend/pkg/paseto"
	"github.com/nlonghi/fojas_backend/pkg/reqctx"
)

// LocalsEmpleado is the Fiber locals key holding the resolved *identity.Empleado.
const LocalsEmpleado = "auth.empleado"

// ResolveIdentity loads the staff account behind the verified token on
// every request. The token carries only the user ID; role and enabled
// state come from the database here, so deactivating an account or
// changing its role takes effect on the next request.
//
// Must run after AuthRequired.
func ResolveIdentity(resolver identity.Service) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		emp, err := resolver.Resolve(c.Context(), claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, identity.ErrNotFound):
				return fiber.ErrUnauthorized
			case errors.Is(err, identity.ErrDisabled):
				return fiber.NewError(fiber.StatusForbidden, "account disabled")
			case errors.Is(err, identity.ErrNotProvisioned):
				return fiber.NewError(fiber.StatusForbidden, "account has no role assigned")
			default:
				return err
			}
		}

		c.Locals(LocalsEmpleado, emp)
		c.SetContext(reqctx.WithIdentity(c.Context(), &reqctx.Identity{
			UserID:             emp.ID,
			Email:              emp.Email,
			Role:               string(emp.Rol),
			Enabled:            true,
			MustChangePassword: emp.MustChangePassword,
		}))

		return c.Next()
	}
}

// EmpleadoFromFiber retrieves the resolved staff identity from locals.
func EmpleadoFromFiber(c fiber.Ctx) (*identity.Empleado, bool) {
	emp, ok := c.Locals(LocalsEmpleado).(*identity.Empleado)
	return emp, ok && emp != nil
}
