package identity

import "errors"

var (
	// ErrNotFound means no account exists for the given id or email.
	ErrNotFound = errors.New("staff account not found")

	// ErrDisabled means the account exists but an administrator
	// deactivated it.
	ErrDisabled = errors.New("staff account is disabled")

	// ErrNotProvisioned means the account exists but carries no
	// recognised role, so it cannot act anywhere in the system.
	ErrNotProvisioned = errors.New("staff account has no recognised role")
)
