package authorize

import (
	"context"
	"log/slog"
)

// SeedMatrix loads the access matrix into the enforcer as p rules.
// It is idempotent: rows that already exist are skipped by casbin.
func SeedMatrix(ctx context.Context, auth IAuthorization) error {
	logger := slog.Default()

	policies := MatrixPolicies()

	for _, p := range policies {
		added, err := auth.AddPermission(ctx, p.Subject, p.Domain, p.Object, p.Action, p.Effect)
		if err != nil {
			logger.Error("failed to add policy", "policy", p, "error", err)
			return err
		}
		if added {
			logger.Debug("added policy", "role", p.Subject, "domain", p.Domain, "resource", p.Object, "action", p.Action)
		}
	}

	logger.Info("seeded RBAC policies from access matrix", "count", len(policies))
	return nil
}

// AssignRole links a staff account to its role in the hospital domain.
// Call this when provisioning an account or changing its role.
func AssignRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	if _, ok := KnownRoles[role]; !ok {
		return ErrInvalidArgs
	}

	subject := GroupSubject(userID)
	_, err := auth.AddRoleForUserInDomain(ctx, subject, role, DomainHospital)
	return err
}

// RemoveRole unlinks a staff account from a role in the hospital domain.
func RemoveRole(ctx context.Context, auth IAuthorization, userID string, role Role) error {
	subject := GroupSubject(userID)
	_, err := auth.RemoveRoleForUserInDomain(ctx, subject, role, DomainHospital)
	return err
}

// ReplaceRole moves a staff account from one role to another atomically
// enough for our purposes: remove first, then add. A failed add leaves
// the account with no role, which resolves as unprovisioned rather than
// over-privileged.
func ReplaceRole(ctx context.Context, auth IAuthorization, userID string, oldRole, newRole Role) error {
	if oldRole != "" {
		if err := RemoveRole(ctx, auth, userID, oldRole); err != nil {
			return err
		}
	}
	return AssignRole(ctx, auth, userID, newRole)
}

// RolesForUser returns the roles linked to a staff account in the
// hospital domain.
func RolesForUser(ctx context.Context, auth IAuthorization, userID string) ([]Role, error) {
	subject := GroupSubject(userID)
	return auth.GetRolesForUserInDomain(ctx, subject, DomainHospital)
}
