package app

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/dig"

	"zistino-dispatch/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal   prometheus.Counter     `name:"rate_limit_exceeded_total"`
	GatewayRetriesTotal      prometheus.Counter     `name:"gateway_retries_total"`
	DeliveryAssignmentsTotal *prometheus.CounterVec `name:"delivery_assignments_total"`
	OrderEventsTotal         *prometheus.CounterVec `name:"order_events_total"`
}

func registerMetrics(container *dig.Container) error {
	return provideAll(container,
		newRegistry,
		func(reg *prometheus.Registry) prometheus.Registerer { return reg },
		func(reg *prometheus.Registry) prometheus.Gatherer { return reg },
		provideMetrics,
	)
}

func newRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

func provideMetrics(reg prometheus.Registerer) (metricsOut, error) {
	var (
		out metricsOut
		err error
	)
	if out.RateLimitExceededTotal, err = register(reg, "rate_limit_exceeded_total", metrics.NewRateLimitExceededTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.GatewayRetriesTotal, err = register(reg, "gateway_retries_total", metrics.NewGatewayRetriesTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.DeliveryAssignmentsTotal, err = register(reg, "delivery_assignments_total", metrics.NewDeliveryAssignmentsTotal()); err != nil {
		return metricsOut{}, err
	}
	if out.OrderEventsTotal, err = register(reg, "order_events_total", metrics.NewOrderEventsTotal()); err != nil {
		return metricsOut{}, err
	}
	return out, nil
}

// register adds c to reg. A collector registered earlier under the same
// descriptor is returned instead of c.
func register[T prometheus.Collector](reg prometheus.Registerer, name string, c T) (T, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(T); ok {
			return existing, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("register %s: %w", name, err)
}
