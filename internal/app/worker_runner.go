package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"zistino-dispatch/internal/logx"
	"zistino-dispatch/internal/transport/kafka"
)

// WorkerRunner runs the orders consumer
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun consumes order events until the container context is cancelled.
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

type workerIn struct {
	dig.In

	Ctx       context.Context
	Pool      *pgxpool.Pool
	Logger    logx.Logger
	Consumer  *kafka.Consumer
	Publisher *kafka.Publisher
}

func runWorker(container *dig.Container) error {
	return container.Invoke(func(in workerIn) error {
		return workerRun(in.Ctx, in.Pool, in.Logger, in.Consumer, in.Publisher)
	})
}

func workerRun(
	ctx context.Context,
	pool *pgxpool.Pool,
	logger logx.Logger,
	consumer *kafka.Consumer,
	publisher *kafka.Publisher,
) error {
	if consumer == nil {
		return fmt.Errorf("kafka consumer is nil: set KAFKA_BROKERS for the worker")
	}
	defer closeWorker(pool, logger, consumer, publisher)

	logger.Info("zistino-dispatch worker started")
	return consumer.Run(ctx)
}

func closeWorker(pool *pgxpool.Pool, logger logx.Logger, consumer *kafka.Consumer, publisher *kafka.Publisher) {
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			logger.Error("kafka consumer close error", logx.Err(err))
		}
	}
	if err := publisher.Close(); err != nil {
		logger.Error("kafka publisher close error", logx.Err(err))
	}
	if pool != nil {
		pool.Close()
	}
}
