package authorize

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/nlonghi/fojas_backend/pkg/reqctx"
)

var (
	ErrNoSubjectInContext = errors.New("no subject found in context")
	ErrNoRoleInContext    = errors.New("no role found in context")
)

// SubjectFromContext extracts the GroupSubject (user ID) from context.
func SubjectFromContext(ctx context.Context) (GroupSubject, error) {
	claims := reqctx.ClaimsFromContext(ctx)
	if claims == nil {
		return "", ErrNoSubjectInContext
	}

	userID := claims.GetUserID()
	if userID == uuid.Nil {
		return "", ErrNoSubjectInContext
	}

	return GroupSubject(userID.String()), nil
}

// MustSubjectFromContext extracts the GroupSubject from context or panics.
// Use only when you're certain the subject exists (after auth middleware).
func MustSubjectFromContext(ctx context.Context) GroupSubject {
	subject, err := SubjectFromContext(ctx)
	if err != nil {
		panic(err)
	}
	return subject
}

// UserIDFromContext extracts the user ID as uuid.UUID from context.
// Returns uuid.Nil and error if not found.
func UserIDFromContext(ctx context.Context) (uuid.UUID, error) {
	claims := reqctx.ClaimsFromContext(ctx)
	if claims == nil {
		return uuid.Nil, ErrNoSubjectInContext
	}

	userID := claims.GetUserID()
	if userID == uuid.Nil {
		return uuid.Nil, ErrNoSubjectInContext
	}

	return userID, nil
}

// RoleFromContext extracts the resolved staff role from context.
// The identity middleware stores it after looking the account up in
// the usuarios table; tokens never carry the role themselves.
func RoleFromContext(ctx context.Context) (Role, error) {
	ident := reqctx.IdentityFromContext(ctx)
	if ident == nil {
		return "", ErrNoRoleInContext
	}

	role, ok := ParseRole(ident.Role)
	if !ok {
		return "", ErrNoRoleInContext
	}

	return role, nil
}
