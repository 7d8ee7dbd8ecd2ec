package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"zistino-dispatch/internal/logx"
	"zistino-dispatch/internal/transport/kafka"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the HTTP API.
type Runner struct {
	runFn func(*dig.Container) error
	exit  func(int)
}

// NewRunner returns a Runner
func NewRunner() *Runner {
	return &Runner{runFn: run, exit: os.Exit}
}

// MustRun starts the HTTP server using the provided DI container
func (r *Runner) MustRun(container *dig.Container) {
	logger := containerLogger(container)
	err := r.runFn(container)
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Error("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		r.exit(1)
	}
}

func containerLogger(container *dig.Container) logx.Logger {
	logger := logx.Nop()
	_ = container.Invoke(func(l logx.Logger) { logger = l })
	return logger
}

type runIn struct {
	dig.In

	Ctx       context.Context
	Server    *http.Server
	Pprof     *http.Server `name:"pprof_server" optional:"true"`
	Pool      *pgxpool.Pool
	Logger    logx.Logger
	Publisher *kafka.Publisher
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

func appRun(in runIn) error {
	errCh := make(chan error, 2)
	startServer(in.Server, in.Logger, "api", errCh)
	if in.Pprof != nil {
		startServer(in.Pprof, in.Logger, "pprof", errCh)
	}

	var err error
	select {
	case <-in.Ctx.Done():
		in.Logger.Info("shutting down zistino-dispatch")
		err = in.Ctx.Err()
	case err = <-errCh:
		in.Logger.Error("server failed, shutting down", logx.Err(err))
	}

	gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
	if in.Pprof != nil {
		gracefulShutdown(in.Pprof, in.Logger, shutdownTimeout)
	}
	closeResources(in.Pool, in.Publisher, in.Logger)
	return err
}

func startServer(server *http.Server, logger logx.Logger, name string, errCh chan<- error) {
	go func() {
		logger.Info("http server listening", logx.String("server", name), logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Warn("graceful shutdown error", logx.String("addr", srv.Addr), logx.Err(err))
		if err := srv.Close(); err != nil {
			logger.Warn("server close error", logx.Err(err))
		}
	}
}

func closeResources(pool *pgxpool.Pool, publisher *kafka.Publisher, logger logx.Logger) {
	if err := publisher.Close(); err != nil {
		logger.Error("kafka publisher close error", logx.Err(err))
	}
	if pool != nil {
		pool.Close()
	}
	_ = logger.Sync()
}
