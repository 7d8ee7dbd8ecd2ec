package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"zistino-dispatch/internal/config"
	"zistino-dispatch/internal/logx"
	"zistino-dispatch/internal/repository"
	"zistino-dispatch/internal/service/delivery"
	"zistino-dispatch/internal/service/driver"
	"zistino-dispatch/internal/service/slot"
	"zistino-dispatch/internal/service/zone"
	"zistino-dispatch/internal/transport/kafka"
)

func registerService(container *dig.Container) error {
	return provideAll(container,
		repository.NewZoneRepo,
		repository.NewDriverRepo,
		repository.NewDeliveryRepo,
		repository.NewConfigRepo,
		func(repo *repository.ZoneRepo, cfg *config.Config) *zone.Service {
			return zone.NewService(repo, cfg.Delivery.OperationTimeout)
		},
		func(repo *repository.DriverRepo, cfg *config.Config) *driver.Service {
			return driver.NewService(repo, cfg.Delivery.OperationTimeout)
		},
		newWindowSource,
		newDeliveryPublisher,
		newDeliveryService,
	)
}

func fallbackWindow(cfg *config.Config) slot.Config {
	return slot.Config{
		StartHour:  cfg.Delivery.SlotStart,
		EndHour:    cfg.Delivery.SlotEnd,
		SplitHours: cfg.Delivery.SlotSplit,
	}
}

func newWindowSource(repo *repository.ConfigRepo, cfg *config.Config, logger logx.Logger) delivery.WindowSource {
	return delivery.NewWindowSource(repo, fallbackWindow(cfg), logger)
}

// newDeliveryPublisher returns nil when Kafka is not configured.
func newDeliveryPublisher(cfg *config.Config, logger logx.Logger) (*kafka.Publisher, error) {
	return kafka.NewPublisher(logger, cfg.Kafka.Brokers, cfg.Kafka.DeliveriesTopic)
}

type deliveryIn struct {
	dig.In

	Config      *config.Config
	Logger      logx.Logger
	Repo        *repository.DeliveryRepo
	Window      delivery.WindowSource
	Publisher   *kafka.Publisher
	Assignments *prometheus.CounterVec `name:"delivery_assignments_total"`
}

func newDeliveryService(in deliveryIn) (*delivery.Service, error) {
	loc, err := in.Config.Delivery.Location()
	if err != nil {
		return nil, err
	}
	svc := delivery.NewDeliveryService(in.Repo, in.Window, in.Config.Delivery.OperationTimeout, in.Logger).
		WithLocation(loc).
		WithAssignCounter(in.Assignments)
	if in.Publisher != nil {
		svc = svc.WithPublisher(in.Publisher)
	}
	return svc, nil
}
