package order

import (
	"context"
	"time"

	"zistino-dispatch/internal/domain"
	"zistino-dispatch/internal/logx"
)

type gateway interface {
	GetByID(context.Context, string) (*domain.Order, error)
}

type counter interface {
	Inc()
}

// RetryConfig controls RetryingGateway.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingGateway retries transient orders-service failures with exponential backoff.
type RetryingGateway struct {
	next    gateway
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
}

// NewRetryingGateway wraps next. It returns nil when next is nil.
func NewRetryingGateway(next gateway, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingGateway {
	if next == nil {
		return nil
	}
	if logger == nil {
		logger = logx.Nop()
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &RetryingGateway{next: next, logger: logger, retries: retries, cfg: cfg}
}

// GetByID fetches an order, retrying 429/5xx gateway errors and transport failures.
func (g *RetryingGateway) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	var lastErr error
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		ord, err := g.next.GetByID(ctx, id)
		if err == nil {
			return ord, nil
		}
		lastErr = err
		if ctx.Err() != nil || attempt == g.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(g.cfg.BaseDelay, g.cfg.MaxDelay, attempt)
		if g.retries != nil {
			g.retries.Inc()
		}
		g.logger.Warn("orders gateway retry",
			logx.String("method", "GetByID"),
			logx.String("order_id", id),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return nil, lastErr
}

func backoff(base, max time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if max > 0 && d > max {
		return max
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
