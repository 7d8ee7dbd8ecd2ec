package app

import (
	"context"
	"time"

	"zistino-dispatch/internal/config"
	"zistino-dispatch/internal/service/orders"
	"zistino-dispatch/internal/transport/kafka"
)

type orderEventHandler interface {
	Handle(ctx context.Context, e orders.Event) error
}

// makeOrdersKafka bounds every event by budget so a stuck lookup cannot stall the partition.
func makeOrdersKafka(h orderEventHandler, budget time.Duration) kafka.HandleFunc {
	return func(ctx context.Context, event orders.Event) error {
		if budget > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, budget)
			defer cancel()
		}
		return h.Handle(ctx, event)
	}
}

// eventBudget covers every gateway attempt with its backoff plus the assignment itself.
func eventBudget(cfg *config.Config) time.Duration {
	gw := cfg.OrdersGateway
	attempts := time.Duration(max(gw.MaxAttempts, 1))
	return attempts*(gw.Timeout+gw.MaxDelay) + cfg.Delivery.OperationTimeout
}
