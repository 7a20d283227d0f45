package app

import (
	"log/slog"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/nlonghi/fojas_backend/config"
	"github.com/nlonghi/fojas_backend/internal/repo"
	"github.com/nlonghi/fojas_backend/internal/service/auth"
	"github.com/nlonghi/fojas_backend/internal/service/foja"
	"github.com/nlonghi/fojas_backend/internal/service/identity"
	"github.com/nlonghi/fojas_backend/internal/service/paciente"
	"github.com/nlonghi/fojas_backend/internal/service/usuario"
	"github.com/nlonghi/fojas_backend/pkg/authorize"
	"github.com/nlonghi/fojas_backend/pkg/email"
	pasetotoken "github.com/nlonghi/fojas_backend/pkg/paseto"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideIdentityService,
		ProvideAuthService,
		ProvideUsuarioService,
		ProvidePacienteService,
		ProvideFojaService,
		ProvidePasetoManager,
	),
)

func ProvideIdentityService(db *repo.Client) identity.Service {
	return identity.New(db)
}

func ProvideAuthService(
	db *repo.Client,
	rdb *redis.Client,
	paseto *pasetotoken.Manager,
	cfg *config.Config,
) auth.Service {
	return auth.New(db, rdb, paseto, cfg)
}

func ProvideUsuarioService(db *repo.Client, authz authorize.IAuthorization, emailClient *email.Client, cfg *config.Config) usuario.Service {
	loginURL := ""
	if cfg.Server.Domain != "" {
		loginURL = "https://" + cfg.Server.Domain + "/login"
	}
	return usuario.New(db, authz, emailClient, usuario.Config{
		TempPasswordLength: cfg.Authentication.DefaultPasswordLength,
		LoginURL:           loginURL,
	}, slog.Default())
}

func ProvidePacienteService(db *repo.Client, cfg *config.Config) paciente.Service {
	return paciente.New(db, cfg.Patients.PhoneRegion)
}

func ProvideFojaService(db *repo.Client, pacientes paciente.Service) foja.Service {
	return foja.New(db, pacientes)
}

func ProvidePasetoManager(cfg *config.Config) (*pasetotoken.Manager, error) {
	return pasetotoken.NewPasetoManager(cfg)
}
