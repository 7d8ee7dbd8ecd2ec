package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/IBM/sarama"

	"zistino-dispatch/internal/logx"
	"zistino-dispatch/internal/service/orders"
)

// HandleFunc processes a single orders.Event from Kafka
type HandleFunc func(context.Context, orders.Event) error

const (
	defaultHandleAttempts = 3
	defaultRetryDelay     = time.Second
)

var newConsumerGroup = sarama.NewConsumerGroup

// Consumer wraps a Sarama consumer group and dispatches events to a handler
type Consumer struct {
	group      sarama.ConsumerGroup
	topic      string
	handler    HandleFunc
	logger     logx.Logger
	attempts   int
	retryDelay time.Duration
}

// NewConsumer creates a new Kafka consumer. It returns nil, nil when Kafka is not configured.
func NewConsumer(logger logx.Logger, brokers []string, groupID, topic string, h HandleFunc) (*Consumer, error) {
	if logger == nil {
		logger = logx.Nop()
	}
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" || strings.TrimSpace(groupID) == "" {
		logger.Info("kafka consumer disabled: brokers, group or topic not set")
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Consumer.Offsets.Initial = sarama.OffsetOldest
	cfg.Consumer.Return.Errors = true

	group, err := newConsumerGroup(brokers, groupID, cfg)
	if err != nil {
		return nil, err
	}

	return &Consumer{
		group:      group,
		topic:      topic,
		handler:    h,
		logger:     logger,
		attempts:   defaultHandleAttempts,
		retryDelay: defaultRetryDelay,
	}, nil
}

// Run consumes until ctx is cancelled.
func (c *Consumer) Run(ctx context.Context) error {
	if c == nil {
		return nil
	}

	go c.drainErrors(ctx)

	h := &groupHandler{c: c}
	for {
		if err := c.group.Consume(ctx, []string{c.topic}, h); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Error("kafka consume error", logx.Err(err))
			if !sleepCtx(ctx, c.retryDelay) {
				return ctx.Err()
			}
			continue
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (c *Consumer) drainErrors(ctx context.Context) {
	errs := c.group.Errors()
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-errs:
			if !ok {
				return
			}
			c.logger.Warn("kafka consumer group error", logx.Err(err))
		}
	}
}

// Close releases the consumer group.
func (c *Consumer) Close() error {
	if c == nil {
		return nil
	}
	return c.group.Close()
}

type groupHandler struct{ c *Consumer }

func (h *groupHandler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *groupHandler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

// ConsumeClaim hands each message to the handler. Undecodable messages and permanent
// errors are skipped; other errors are retried a few times before the message is skipped.
func (h *groupHandler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log := h.c.logger
	for msg := range claim.Messages() {
		var dto EventDTO
		if err := json.Unmarshal(msg.Value, &dto); err != nil {
			log.Warn("kafka bad json",
				logx.Int64("offset", msg.Offset),
				logx.Err(err),
			)
			sess.MarkMessage(msg, "")
			continue
		}
		ev, err := ToDomain(dto)
		if err != nil {
			log.Warn("kafka bad event", logx.String("order_id", dto.OrderID), logx.Err(err))
			sess.MarkMessage(msg, "")
			continue
		}
		if ev.OrderID == "" {
			log.Warn("kafka empty order_id", logx.Int64("offset", msg.Offset))
			sess.MarkMessage(msg, "")
			continue
		}

		if err := h.handle(sess.Context(), ev); err != nil {
			if sess.Context().Err() != nil {
				return nil
			}
			log.Error("kafka handle failed, skipping message",
				logx.String("order_id", ev.OrderID),
				logx.String("status", ev.Status),
				logx.Err(err),
			)
		}
		sess.MarkMessage(msg, "")
	}
	return nil
}

func (h *groupHandler) handle(ctx context.Context, ev orders.Event) error {
	attempts := max(h.c.attempts, 1)
	var err error
	for i := 1; i <= attempts; i++ {
		if err = h.c.handler(ctx, ev); err == nil {
			return nil
		}
		var perm PermanentError
		if errors.As(err, &perm) || i == attempts {
			break
		}
		h.c.logger.Warn("kafka handle failed, retrying",
			logx.String("order_id", ev.OrderID),
			logx.Int("attempt", i),
			logx.Err(err),
		)
		if !sleepCtx(ctx, h.c.retryDelay) {
			return ctx.Err()
		}
	}
	return err
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
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
