package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"zistino-dispatch/internal/config"
	ordersgw "zistino-dispatch/internal/gateway/orders"
	"zistino-dispatch/internal/logx"
	"zistino-dispatch/internal/service/delivery"
	"zistino-dispatch/internal/service/orders"
	"zistino-dispatch/internal/transport/kafka"
)

func registerWorker(container *dig.Container) error {
	return provideAll(container,
		newOrdersGateway,
		newOrderProcessor,
		newOrdersConsumer,
	)
}

type gatewayIn struct {
	dig.In

	Config  *config.Config
	Logger  logx.Logger
	Retries prometheus.Counter `name:"gateway_retries_total"`
}

// newOrdersGateway returns nil when ORDERS_SERVICE_URL is empty.
func newOrdersGateway(in gatewayIn) (*ordersgw.RetryingGateway, error) {
	gw := in.Config.OrdersGateway
	httpGw, err := ordersgw.NewHTTPGateway(gw.BaseURL, gw.Timeout)
	if err != nil || httpGw == nil {
		return nil, err
	}
	return ordersgw.NewRetryingGateway(httpGw, in.Logger, in.Retries, ordersgw.RetryConfig{
		MaxAttempts: gw.MaxAttempts,
		BaseDelay:   gw.BaseDelay,
		MaxDelay:    gw.MaxDelay,
	}), nil
}

type processorIn struct {
	dig.In

	Logger   logx.Logger
	Delivery *delivery.Service
	Gateway  *ordersgw.RetryingGateway
	Events   *prometheus.CounterVec `name:"order_events_total"`
}

func newOrderProcessor(in processorIn) *orders.Processor {
	p := orders.NewProcessor(in.Delivery, in.Logger).WithEventCounter(in.Events)
	if in.Gateway != nil {
		p = p.WithOrderSource(in.Gateway)
	} else {
		in.Logger.Warn("orders gateway disabled: events without coordinates cannot be assigned")
	}
	return p
}

// newOrdersConsumer returns nil when Kafka is not configured.
func newOrdersConsumer(cfg *config.Config, logger logx.Logger, p *orders.Processor) (*kafka.Consumer, error) {
	k := cfg.Kafka
	return kafka.NewConsumer(logger, k.Brokers, k.GroupID, k.OrdersTopic, makeOrdersKafka(p, eventBudget(cfg)))
}
