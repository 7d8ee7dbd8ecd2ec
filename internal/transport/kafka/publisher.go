package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/IBM/sarama"
	"github.com/google/uuid"

	"zistino-dispatch/internal/domain"
	"zistino-dispatch/internal/logx"
)

var newSyncProducer = sarama.NewSyncProducer

// Publisher announces committed assignments on the deliveries topic, keyed by order id.
type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	logger   logx.Logger
	newID    func() string
	now      func() time.Time
}

// NewPublisher creates a Publisher. It returns nil, nil when Kafka is not configured.
func NewPublisher(logger logx.Logger, brokers []string, topic string) (*Publisher, error) {
	if len(brokers) == 0 || strings.TrimSpace(topic) == "" {
		return nil, nil
	}

	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Return.Successes = true

	producer, err := newSyncProducer(brokers, cfg)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return newPublisher(producer, topic, logger), nil
}

func newPublisher(producer sarama.SyncProducer, topic string, logger logx.Logger) *Publisher {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Publisher{
		producer: producer,
		topic:    topic,
		logger:   logger,
		newID:    func() string { return uuid.NewString() },
		now:      time.Now,
	}
}

// PublishAssigned sends a delivery_assigned event.
func (p *Publisher) PublishAssigned(ctx context.Context, res domain.AssignResult) error {
	if p == nil {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	ev := assignedToDTO(p.newID(), res, p.now())
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("encode %s: %w", ev.Type, err)
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.OrderID),
		Value: sarama.ByteEncoder(body),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event_type"), Value: []byte(ev.Type)},
		},
	})
	if err != nil {
		return fmt.Errorf("send %s: %w", ev.Type, err)
	}

	p.logger.Debug("event published",
		logx.String("event_id", ev.EventID),
		logx.String("order_id", ev.OrderID),
		logx.String("topic", p.topic),
		logx.Int("partition", int(partition)),
		logx.Int64("offset", offset),
	)
	return nil
}

// Close flushes and closes the producer.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.producer.Close()
}
