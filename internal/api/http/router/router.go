package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/nlonghi/fojas_backend/config"
	"github.com/nlonghi/fojas_backend/internal/api/http/handler"
	"github.com/nlonghi/fojas_backend/internal/api/http/middleware"
	"github.com/nlonghi/fojas_backend/internal/service/auth"
	"github.com/nlonghi/fojas_backend/internal/service/foja"
	"github.com/nlonghi/fojas_backend/internal/service/identity"
	"github.com/nlonghi/fojas_backend/internal/service/paciente"
	"github.com/nlonghi/fojas_backend/internal/service/usuario"
	"github.com/nlonghi/fojas_backend/pkg/authorize"
	pasetotoken "github.com/nlonghi/fojas_backend/pkg/paseto"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg         *config.Config
	Redis       *redis.Client
	Auth        authorize.IAuthorization
	AuthSvc     auth.Service
	IdentitySvc identity.Service
	UsuarioSvc  usuario.Service
	PacienteSvc paciente.Service
	FojaSvc     foja.Service
	PasetoMgr   *pasetotoken.Manager
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	authRequired := middleware.AuthRequired(r.p.PasetoMgr, r.p.Redis)
	resolveIdentity := middleware.ResolveIdentity(r.p.IdentitySvc)

	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	authH := handler.NewAuthHandler(r.p.AuthSvc)
	usuarioH := handler.NewUsuarioHandler(r.p.UsuarioSvc)
	pacienteH := handler.NewPacienteHandler(r.p.PacienteSvc)
	fojaH := handler.NewFojaHandler(r.p.FojaSvc)

	api := app.Group("/api/v1")

	r.registerAuthRoutes(api, authH, authRequired, resolveIdentity)
	r.registerUsuarioRoutes(api, usuarioH, authRequired, resolveIdentity, requirePerm)
	r.registerPacienteRoutes(api, pacienteH, authRequired, resolveIdentity, requirePerm)
	r.registerFojaRoutes(api, fojaH, authRequired, resolveIdentity, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New(healthcheck.Config{
		Probe: func(c fiber.Ctx) bool { return authorize.IsPolicyHealthy() },
	}))
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
