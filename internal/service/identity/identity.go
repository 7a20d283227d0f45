// Package identity resolves authenticated sessions to staff members.
// Tokens carry only the account id; the role and enabled flag are read
// from the usuarios table on every request, so administrative changes
// take effect immediately instead of at next login.
package identity

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nlonghi/fojas_backend/internal/repo"
	entusuario "github.com/nlonghi/fojas_backend/internal/repo/usuario"
	"github.com/nlonghi/fojas_backend/pkg/authorize"
)

// Empleado is a resolved staff member: the account row reduced to what
// request handling needs.
type Empleado struct {
	ID                 uuid.UUID
	Nombre             string
	Email              string
	DNI                string
	Rol                authorize.Role
	MustChangePassword bool
}

// EsAdministrador reports whether the staff member holds the
// administrative role.
func (e *Empleado) EsAdministrador() bool {
	return e.Rol == authorize.RoleAdministrador
}

type Service interface {
	// Resolve loads the staff member behind an account id.
	// Returns ErrNotFound, ErrDisabled, or ErrNotProvisioned when the
	// account cannot act.
	Resolve(ctx context.Context, userID uuid.UUID) (*Empleado, error)

	// ResolveByEmail is Resolve keyed by login email.
	ResolveByEmail(ctx context.Context, email string) (*Empleado, error)
}

type identityService struct {
	db *repo.Client
}

func New(db *repo.Client) Service {
	return &identityService{db: db}
}

func (s *identityService) Resolve(ctx context.Context, userID uuid.UUID) (*Empleado, error) {
	u, err := s.db.Usuario.Get(ctx, userID)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return fromRow(u)
}

func (s *identityService) ResolveByEmail(ctx context.Context, email string) (*Empleado, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	u, err := s.db.Usuario.Query().
		Where(entusuario.Email(email)).
		Only(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query usuario: %w", err)
	}
	return fromRow(u)
}

// fromRow applies the resolution rules. Order matters: a disabled
// account reports disabled even when its role is also missing, so the
// caller can show the right message.
func fromRow(u *repo.Usuario) (*Empleado, error) {
	if !u.Habilitado {
		return nil, ErrDisabled
	}

	rol, ok := authorize.ParseRole(u.Rol)
	if !ok {
		return nil, ErrNotProvisioned
	}

	e := &Empleado{
		ID:                 u.ID,
		Nombre:             u.Nombre,
		Email:              u.Email,
		Rol:                rol,
		MustChangePassword: u.MustChangePassword,
	}
	if u.Dni != nil {
		e.DNI = *u.Dni
	}
	return e, nil
}
