package app

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/dig"

	"zistino-dispatch/internal/config"
	"zistino-dispatch/internal/http/handlers"
	obs "zistino-dispatch/internal/http/middleware"
	"zistino-dispatch/internal/http/middleware/ratelimit"
	"zistino-dispatch/internal/http/pprofserver"
	"zistino-dispatch/internal/http/router"
	"zistino-dispatch/internal/logx"
)

func registerHandlers(container *dig.Container) error {
	return provideAll(container,
		handlers.New,
		handlers.NewZoneUsecase,
		handlers.NewZoneHandler,
		handlers.NewDriverUsecase,
		handlers.NewDriverHandler,
		handlers.NewDeliveryUsecase,
		handlers.NewDeliveryHandler,
	)
}

func newHTTPMetrics(reg prometheus.Registerer) (*obs.HTTPMetrics, error) {
	return obs.NewHTTPMetrics(reg)
}

type prometheusHandler http.Handler

func newPrometheusHandler(g prometheus.Gatherer) prometheusHandler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

type routerIn struct {
	dig.In

	Logger     logx.Logger
	Base       *handlers.Handlers
	Zones      *handlers.ZoneHandler
	Drivers    *handlers.DriverHandler
	Deliveries *handlers.DeliveryHandler
	Metrics    *obs.HTTPMetrics
	RateLimit  *ratelimit.Middleware
	Prometheus prometheusHandler
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Deps{
		Logger:     in.Logger,
		Base:       in.Base,
		Zones:      in.Zones,
		Drivers:    in.Drivers,
		Deliveries: in.Deliveries,
		Metrics:    in.Metrics,
		RateLimit:  in.RateLimit,
		Prometheus: in.Prometheus,
	})
}

type pprofOut struct {
	dig.Out

	Server *http.Server `name:"pprof_server"`
}

// newPprofServer yields a nil server when pprof is disabled.
func newPprofServer(cfg *config.Config) pprofOut {
	if !cfg.Pprof.Enabled {
		return pprofOut{}
	}
	return pprofOut{Server: pprofserver.NewServer(pprofserver.Config{
		Addr: cfg.Pprof.Addr,
		User: cfg.Pprof.User,
		Pass: cfg.Pprof.Pass,
	})}
}
