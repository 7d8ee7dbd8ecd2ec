package metrics

import "github.com/prometheus/client_golang/prometheus"

// NewRateLimitExceededTotal returns a Prometheus counter for the number of rejected HTTP requests due to rate limiting
func NewRateLimitExceededTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "rate_limit_exceeded_total",
		Help: "Total number of rejected HTTP requests due to rate limiting",
	})
}

// NewGatewayRetriesTotal returns a Prometheus counter for the number of retry attempts performed by gateways
func NewGatewayRetriesTotal() prometheus.Counter {
	return prometheus.NewCounter(prometheus.CounterOpts{
		Name: "gateway_retries_total",
		Help: "Total number of retry attempts performed by gateways",
	})
}

// NewDeliveryAssignmentsTotal returns a Prometheus counter vector for assignment attempts labelled by result
func NewDeliveryAssignmentsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "delivery_assignments_total",
		Help: "Total number of delivery assignment attempts by result",
	}, []string{"result"})
}

// NewOrderEventsTotal returns a Prometheus counter vector for consumed order events labelled by action
func NewOrderEventsTotal() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_events_total",
		Help: "Total number of consumed order events by action",
	}, []string{"action"})
}
