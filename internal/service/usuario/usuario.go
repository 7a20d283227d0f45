// Package usuario manages hospital staff accounts. Accounts are created
// by an administrator with a generated temporary password that is
// emailed to the new employee; the first login forces a change.
package usuario

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/nlonghi/fojas_backend/internal/repo"
	entusuario "github.com/nlonghi/fojas_backend/internal/repo/usuario"
	"github.com/nlonghi/fojas_backend/internal/service/identity"
	"github.com/nlonghi/fojas_backend/pkg/authorize"
	"github.com/nlonghi/fojas_backend/pkg/email"
	"github.com/nlonghi/fojas_backend/pkg/util/codes"
	"github.com/nlonghi/fojas_backend/pkg/util/password"
)

// Config carries the account provisioning knobs.
type Config struct {
	// TempPasswordLength is the length of generated temporary passwords.
	// Zero falls back to the codes package default.
	TempPasswordLength int

	// AppName and LoginURL feed the provisioning emails.
	AppName  string
	LoginURL string
}

type PaginatedResult[T any] struct {
	Data       []T
	Total      int
	Page       int
	PerPage    int
	TotalPages int
}

type ListRequest struct {
	Page    int
	PerPage int

	Search *string // matches nombre or email
	Rol    *string
	Order  string // asc | desc, by created_at
}

type CreateRequest struct {
	Nombre string
	Email  string
	Dni    *string
	Rol    string
}

type UpdateRequest struct {
	Nombre     *string
	Dni        *string
	Rol        *string
	Habilitado *bool
}

// CreateResult carries the new account plus the plaintext temporary
// password, so a handler can surface it when email delivery is off.
type CreateResult struct {
	Usuario      *repo.Usuario
	TempPassword string
	EmailSent    bool
}

type Service interface {
	Create(ctx context.Context, actor *identity.Empleado, req CreateRequest) (*CreateResult, error)
	GetByID(ctx context.Context, actor *identity.Empleado, id uuid.UUID) (*repo.Usuario, error)
	List(ctx context.Context, actor *identity.Empleado, req ListRequest) (*PaginatedResult[*repo.Usuario], error)
	Update(ctx context.Context, actor *identity.Empleado, id uuid.UUID, req UpdateRequest) (*repo.Usuario, error)

	// ResetPassword issues a fresh temporary password for the account
	// and forces a change on next login.
	ResetPassword(ctx context.Context, actor *identity.Empleado, id uuid.UUID) (*CreateResult, error)
}

type usuarioService struct {
	db     *repo.Client
	auth   authorize.IAuthorization
	mailer *email.Client
	cfg    Config
	logger *slog.Logger
}

func New(db *repo.Client, auth authorize.IAuthorization, mailer *email.Client, cfg Config, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &usuarioService{db: db, auth: auth, mailer: mailer, cfg: cfg, logger: logger}
}

func (s *usuarioService) Create(ctx context.Context, actor *identity.Empleado, req CreateRequest) (*CreateResult, error) {
	if !authorize.CanPerform(actor.Rol, authorize.ResourceUsuario, authorize.ActionCreate) {
		return nil, ErrAccessDenied
	}

	req.Nombre = strings.TrimSpace(req.Nombre)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Nombre == "" {
		return nil, ErrNombreRequired
	}
	if req.Email == "" {
		return nil, ErrEmailRequired
	}
	rol, ok := authorize.ParseRole(req.Rol)
	if !ok {
		return nil, ErrInvalidRol
	}

	temp, err := codes.GenerateTempPassword(s.cfg.TempPasswordLength)
	if err != nil {
		return nil, fmt.Errorf("generate temp password: %w", err)
	}
	hash, err := password.Hash(temp)
	if err != nil {
		return nil, fmt.Errorf("hash temp password: %w", err)
	}

	u, err := s.db.Usuario.Create().
		SetNombre(req.Nombre).
		SetEmail(req.Email).
		SetNillableDni(req.Dni).
		SetRol(string(rol)).
		SetPasswordHash(hash).
		SetMustChangePassword(true).
		Save(ctx)
	if err != nil {
		if repo.IsConstraintError(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, fmt.Errorf("create usuario: %w", err)
	}

	if err := authorize.AssignRole(ctx, s.auth, u.ID.String(), rol); err != nil {
		// The account exists but carries no enforcer grouping yet; the
		// rol column is still authoritative for identity resolution.
		s.logger.Error("assign role after account creation",
			slog.String("usuario_id", u.ID.String()),
			slog.String("rol", string(rol)),
			slog.Any("error", err))
	}

	sent := s.sendTempPassword(ctx, u, rol, temp, false)

	return &CreateResult{Usuario: u, TempPassword: temp, EmailSent: sent}, nil
}

func (s *usuarioService) GetByID(ctx context.Context, actor *identity.Empleado, id uuid.UUID) (*repo.Usuario, error) {
	if !authorize.CanPerform(actor.Rol, authorize.ResourceUsuario, authorize.ActionRead) {
		return nil, ErrAccessDenied
	}

	u, err := s.db.Usuario.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUsuarioNotFound
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return u, nil
}

func (s *usuarioService) List(ctx context.Context, actor *identity.Empleado, req ListRequest) (*PaginatedResult[*repo.Usuario], error) {
	if !authorize.CanPerform(actor.Rol, authorize.ResourceUsuario, authorize.ActionRead) {
		return nil, ErrAccessDenied
	}

	if req.Page < 1 {
		req.Page = 1
	}
	if req.PerPage < 1 || req.PerPage > 100 {
		req.PerPage = 20
	}
	offset := (req.Page - 1) * req.PerPage

	q := s.db.Usuario.Query()

	if req.Search != nil && strings.TrimSpace(*req.Search) != "" {
		term := strings.TrimSpace(*req.Search)
		q = q.Where(entusuario.Or(
			entusuario.NombreContainsFold(term),
			entusuario.EmailContainsFold(term),
		))
	}
	if req.Rol != nil {
		q = q.Where(entusuario.Rol(*req.Rol))
	}

	if req.Order == "asc" {
		q = q.Order(entusuario.ByCreatedAt(sql.OrderAsc()))
	} else {
		q = q.Order(entusuario.ByCreatedAt(sql.OrderDesc()))
	}

	total, err := q.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count usuarios: %w", err)
	}

	usuarios, err := q.Offset(offset).Limit(req.PerPage).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list usuarios: %w", err)
	}

	totalPages := (total + req.PerPage - 1) / req.PerPage
	return &PaginatedResult[*repo.Usuario]{
		Data:       usuarios,
		Total:      total,
		Page:       req.Page,
		PerPage:    req.PerPage,
		TotalPages: totalPages,
	}, nil
}

func (s *usuarioService) Update(ctx context.Context, actor *identity.Empleado, id uuid.UUID, req UpdateRequest) (*repo.Usuario, error) {
	u, err := s.db.Usuario.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUsuarioNotFound
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}

	var newRol authorize.Role
	if req.Rol != nil {
		var ok bool
		newRol, ok = authorize.ParseRole(*req.Rol)
		if !ok {
			return nil, ErrInvalidRol
		}
	}

	edit := authorize.AccountEdit{
		TargetIsSelf: actor.ID == u.ID,
		ChangesRole:  req.Rol != nil && string(newRol) != u.Rol,
		Disables:     req.Habilitado != nil && !*req.Habilitado && u.Habilitado,
	}
	if !authorize.CanEditAccount(actor.Rol, edit) {
		if edit.TargetIsSelf && edit.ChangesRole {
			return nil, ErrSelfRoleChange
		}
		if edit.TargetIsSelf && edit.Disables {
			return nil, ErrSelfDisable
		}
		return nil, ErrAccessDenied
	}

	up := s.db.Usuario.UpdateOne(u)
	if req.Nombre != nil {
		up = up.SetNombre(strings.TrimSpace(*req.Nombre))
	}
	if req.Dni != nil {
		up = up.SetNillableDni(req.Dni)
	}
	if req.Rol != nil {
		up = up.SetRol(string(newRol))
	}
	if req.Habilitado != nil {
		up = up.SetHabilitado(*req.Habilitado)
	}

	updated, err := up.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update usuario: %w", err)
	}

	if edit.ChangesRole {
		oldRol, hadRol := authorize.ParseRole(u.Rol)
		if hadRol {
			err = authorize.ReplaceRole(ctx, s.auth, u.ID.String(), oldRol, newRol)
		} else {
			err = authorize.AssignRole(ctx, s.auth, u.ID.String(), newRol)
		}
		if err != nil {
			s.logger.Error("sync role change to enforcer",
				slog.String("usuario_id", u.ID.String()),
				slog.String("rol", string(newRol)),
				slog.Any("error", err))
		}
	}

	return updated, nil
}

func (s *usuarioService) ResetPassword(ctx context.Context, actor *identity.Empleado, id uuid.UUID) (*CreateResult, error) {
	if !authorize.CanPerform(actor.Rol, authorize.ResourceUsuario, authorize.ActionManage) {
		return nil, ErrAccessDenied
	}

	u, err := s.db.Usuario.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, ErrUsuarioNotFound
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}

	temp, err := codes.GenerateTempPassword(s.cfg.TempPasswordLength)
	if err != nil {
		return nil, fmt.Errorf("generate temp password: %w", err)
	}
	hash, err := password.Hash(temp)
	if err != nil {
		return nil, fmt.Errorf("hash temp password: %w", err)
	}

	u, err = s.db.Usuario.UpdateOne(u).
		SetPasswordHash(hash).
		SetMustChangePassword(true).
		SetFailedLoginAttempts(0).
		ClearLockedUntil().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("reset password: %w", err)
	}

	rol, _ := authorize.ParseRole(u.Rol)
	sent := s.sendTempPassword(ctx, u, rol, temp, true)

	return &CreateResult{Usuario: u, TempPassword: temp, EmailSent: sent}, nil
}

// sendTempPassword delivers the provisioning email. Delivery failures
// are logged, never fatal; the temp password is returned to the caller
// either way.
func (s *usuarioService) sendTempPassword(ctx context.Context, u *repo.Usuario, rol authorize.Role, temp string, reset bool) bool {
	if s.mailer == nil {
		return false
	}

	data := email.AccountEmailData{
		Nombre:       u.Nombre,
		Email:        u.Email,
		TempPassword: temp,
		RoleName:     authorize.RoleDisplayNames[rol],
		AppName:      s.cfg.AppName,
		LoginURL:     s.cfg.LoginURL,
	}

	var msg email.Message
	if reset {
		msg = email.BuildPasswordResetEmail(data)
	} else {
		msg = email.BuildTempPasswordEmail(data)
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Warn("send account email",
			slog.String("usuario_id", u.ID.String()),
			slog.Bool("reset", reset),
			slog.Any("error", err))
		return false
	}
	return true
}
