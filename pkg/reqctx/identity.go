package reqctx

import (
	"context"

	"github.com/google/uuid"
)

// Identity is the resolved staff account for the current request.
// The identity middleware builds it from the usuarios table after the
// token is verified; the token itself carries only the user ID. Role
// and enabled state always reflect the database, so a role change or
// deactivation takes effect on the next request, not at next login.
type Identity struct {
	// UserID is the account's primary key.
	UserID uuid.UUID

	// Email is the account's login email.
	Email string

	// Role is the stored role string (e.g. "MedicoJefe").
	// May be empty for accounts never provisioned with a role.
	Role string

	// Enabled is false when an administrator has deactivated the account.
	Enabled bool

	// MustChangePassword is true while the account still uses the
	// temporary password it was provisioned with.
	MustChangePassword bool
}

// WithIdentity stores the resolved identity in the context.
func WithIdentity(ctx context.Context, ident *Identity) context.Context {
	return context.WithValue(ctx, keyIdentity, ident)
}

// IdentityFromContext retrieves the resolved identity from the context.
// Returns nil if the identity middleware has not run.
func IdentityFromContext(ctx context.Context) *Identity {
	v := ctx.Value(keyIdentity)
	if v == nil {
		return nil
	}
	ident, ok := v.(*Identity)
	if !ok {
		return nil
	}
	return ident
}

// MustIdentity retrieves the resolved identity from the context.
// Panics if not set. Use only after the identity middleware.
func MustIdentity(ctx context.Context) *Identity {
	ident := IdentityFromContext(ctx)
	if ident == nil {
		panic("reqctx: Identity not found in context")
	}
	return ident
}
