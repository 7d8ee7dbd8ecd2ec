package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"zistino-dispatch/internal/http/handlers"
	obs "zistino-dispatch/internal/http/middleware"
	"zistino-dispatch/internal/http/middleware/ratelimit"
	"zistino-dispatch/internal/logx"
)

const requestTimeout = 5 * time.Second

// Deps are the handlers and middleware the router mounts. Nil middleware is skipped.
type Deps struct {
	Logger     logx.Logger
	Base       *handlers.Handlers
	Zones      *handlers.ZoneHandler
	Drivers    *handlers.DriverHandler
	Deliveries *handlers.DeliveryHandler
	Metrics    *obs.HTTPMetrics
	RateLimit  *ratelimit.Middleware
	// Prometheus exposes /metrics when set.
	Prometheus http.Handler
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if d.Metrics != nil {
		r.Use(obs.Observability(d.Logger, d.Metrics))
	}
	if d.RateLimit != nil {
		r.Use(d.RateLimit.Handler())
	}

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))
	if d.Prometheus != nil {
		r.Method(http.MethodGet, "/metrics", d.Prometheus)
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(requestTimeout))

		r.Get("/zones", d.Zones.List)
		r.Get("/zones/match", d.Zones.Match)
		r.Post("/zone", d.Zones.Create)
		r.Put("/zone", d.Zones.Update)
		r.Get("/zone/{id}", d.Zones.GetByID)
		r.Get("/zone/{id}/drivers", d.Zones.Drivers)
		r.Post("/zone/{id}/drivers", d.Zones.AttachDriver)
		r.Delete("/zone/{id}/drivers/{user_id}", d.Zones.DetachDriver)

		r.Put("/driver/{id}/driving", d.Drivers.SetDriving)

		r.Post("/delivery/assign", d.Deliveries.Assign)
		r.Post("/delivery/status", d.Deliveries.UpdateStatus)
		r.Get("/delivery/slot", d.Deliveries.Slot)
	})

	r.NotFound(d.Base.NotFound)
	r.MethodNotAllowed(d.Base.MethodNotAllowed)

	return r
}
