package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"zistino-dispatch/internal/apperr"
	"zistino-dispatch/internal/domain"
	"zistino-dispatch/internal/logx"
)

// Processor turns order events into delivery operations.
//
// Outcomes that retrying cannot change (no zone, no driver, already assigned, unknown
// delivery, illegal transition) are logged and swallowed. Any other error is returned so
// the transport can redeliver the event.
type Processor struct {
	delivery DeliveryPort
	orders   OrderSource
	logger   logx.Logger
	events   *prometheus.CounterVec
	factory  *actionFactory
}

// NewProcessor creates a Processor on top of the delivery service.
func NewProcessor(delivery DeliveryPort, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	p := &Processor{delivery: delivery, logger: logger}
	p.factory = newActionFactory(p.onCreated, p.onCanceled, p.onCompleted)
	return p
}

// WithOrderSource enables lookups for created events that arrive without coordinates.
func (p *Processor) WithOrderSource(src OrderSource) *Processor {
	p.orders = src
	return p
}

// WithEventCounter counts handled events by action.
func (p *Processor) WithEventCounter(c *prometheus.CounterVec) *Processor {
	p.events = c
	return p
}

// Handle processes a single order event. Statuses without an action are ignored.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	a, ok := p.factory.get(e.Status)
	if !ok {
		p.count("ignore")
		p.logger.Debug("order event ignored",
			logx.String("order_id", e.OrderID),
			logx.String("status", e.Status),
		)
		return nil
	}
	p.count(a.name)
	return a.fn(ctx, e)
}

func (p *Processor) count(action string) {
	if p.events != nil {
		p.events.WithLabelValues(action).Inc()
	}
}

func (p *Processor) onCreated(ctx context.Context, e Event) error {
	if !e.HasLocation() && p.orders != nil {
		ord, err := p.orders.GetByID(ctx, e.OrderID)
		if err != nil {
			return fmt.Errorf("fetch order %s: %w", e.OrderID, err)
		}
		if ord == nil {
			p.logger.Warn("order not found in orders service",
				logx.String("order_id", e.OrderID),
			)
			return nil
		}
		e = e.merge(*ord)
	}

	_, err := p.delivery.Assign(ctx, e.Order())
	switch {
	case err == nil:
		return nil
	case apperr.IsUnassigned(err):
		// the service already logged the reason
		return nil
	case errors.Is(err, apperr.ErrConflict):
		p.logger.Info("order already has an active delivery",
			logx.String("order_id", e.OrderID),
		)
		return nil
	case errors.Is(err, apperr.ErrInvalid):
		p.logger.Warn("order event rejected",
			logx.String("order_id", e.OrderID),
			logx.Err(err),
		)
		return nil
	default:
		return err
	}
}

func (p *Processor) onCanceled(ctx context.Context, e Event) error {
	return p.moveTo(ctx, e, domain.DeliveryCancelled)
}

func (p *Processor) onCompleted(ctx context.Context, e Event) error {
	return p.moveTo(ctx, e, domain.DeliveryCompleted)
}

func (p *Processor) moveTo(ctx context.Context, e Event, status domain.DeliveryStatus) error {
	_, err := p.delivery.UpdateStatus(ctx, e.OrderID, status)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperr.ErrNotFound), errors.Is(err, apperr.ErrConflict), errors.Is(err, apperr.ErrInvalid):
		p.logger.Info("order status change skipped",
			logx.String("order_id", e.OrderID),
			logx.String("status", string(status)),
			logx.Err(err),
		)
		return nil
	default:
		return err
	}
}
