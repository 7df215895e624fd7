package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"github.com/Andyrulz/clinicmanagement-sub000/config"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/api/http/handler"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/api/http/middleware"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/repo"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/service/availability"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/service/booking"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/service/patient"
	"github.com/Andyrulz/clinicmanagement-sub000/internal/service/schedule"
	"github.com/Andyrulz/clinicmanagement-sub000/pkg/authorize"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg             *config.Config
	Redis           *redis.Client
	Auth            authorize.IAuthorization
	DB              *repo.Client
	AvailabilitySvc availability.Service
	ScheduleSvc     schedule.Service
	BookingSvc      booking.Service
	PatientSvc      patient.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	authRequired := middleware.AuthRequired()
	clinicHeader := middleware.ClinicHeader(r.p.DB)

	requirePerm := func(res authorize.Resource, act authorize.Action) fiber.Handler {
		return middleware.RequirePermission(r.p.Auth, res, act)
	}

	availabilityH := handler.NewAvailabilityHandler(r.p.AvailabilitySvc)
	scheduleH := handler.NewScheduleHandler(r.p.ScheduleSvc)
	visitH := handler.NewVisitHandler(r.p.BookingSvc)
	patientH := handler.NewPatientHandler(r.p.PatientSvc)

	api := app.Group("/api/v1")

	r.registerAvailabilityRoutes(api, availabilityH, authRequired, clinicHeader, requirePerm)
	r.registerScheduleRoutes(api, scheduleH, authRequired, clinicHeader, requirePerm)
	r.registerVisitRoutes(api, visitH, authRequired, clinicHeader, requirePerm)
	r.registerPatientRoutes(api, patientH, authRequired, clinicHeader, requirePerm)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	// Readiness gates on the RBAC policy store: without enforceable
	// policies every booking and schedule route would fail closed, so the
	// instance should not receive traffic yet.
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
