package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"zistino-dispatch/internal/config"
	"zistino-dispatch/internal/logx"
	"zistino-dispatch/internal/repository"
)

type (
	dbConnectFunc func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error)
	migrateFunc   func(context.Context, *pgxpool.Pool) error
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	loadConfig func() (*config.Config, error)
	dbConnect  dbConnectFunc
	migrate    migrateFunc
	fatal      func(error)
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		loadConfig: config.Load,
		dbConnect:  connectDbWithRetry,
		migrate:    repository.Migrate,
		fatal: func(err error) {
			fmt.Fprintf(os.Stderr, "failed to build container: %v\n", err)
			os.Exit(1)
		},
	}
}

// WithConfig replaces config.Load.
func (b *ContainerBuilder) WithConfig(fn func() (*config.Config, error)) *ContainerBuilder {
	if fn != nil {
		b.loadConfig = fn
	}
	return b
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithMigrate replaces the schema migration run after connecting.
func (b *ContainerBuilder) WithMigrate(fn migrateFunc) *ContainerBuilder {
	if fn != nil {
		b.migrate = fn
	}
	return b
}

// WithFatal replaces the exit-on-error hook used by the Must methods.
func (b *ContainerBuilder) WithFatal(fn func(error)) *ContainerBuilder {
	if fn != nil {
		b.fatal = fn
	}
	return b
}

// MustBuild builds the API container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.fatal(err)
	}
	return container
}

// MustBuildWorker builds the Kafka worker container.
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.buildWorker(ctx)
	if err != nil {
		b.fatal(err)
	}
	return container
}

func (b *ContainerBuilder) base(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.loadConfig); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerMetrics(container); err != nil {
		return nil, fmt.Errorf("metrics: %w", err)
	}
	if err := registerDb(container, b.dbConnect, b.migrate); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container, err := b.base(ctx)
	if err != nil {
		return nil, err
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

func (b *ContainerBuilder) buildWorker(ctx context.Context) (*dig.Container, error) {
	container, err := b.base(ctx)
	if err != nil {
		return nil, err
	}
	if err := registerWorker(container); err != nil {
		return nil, fmt.Errorf("worker: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds the API container with production defaults.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds the worker container with production defaults.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context, loadConfig func() (*config.Config, error)) error {
	return provideAll(container,
		func() context.Context { return ctx },
		loadConfig,
		NewLogger,
	)
}

func registerDb(container *dig.Container, dbConnect dbConnectFunc, migrate migrateFunc) error {
	providerDB := func(ctx context.Context, logger logx.Logger, cfg *config.Config) (*pgxpool.Pool, error) {
		pool, err := dbConnect(ctx, logger, cfg.DB.DSN(), 10, time.Second)
		if err != nil {
			return nil, err
		}
		if err := migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
		return pool, nil
	}
	return provideAll(container, providerDB)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	if err := registerHandlers(container); err != nil {
		return err
	}
	if err := registerRateLimit(container); err != nil {
		return err
	}
	return provideAll(container,
		newHTTPMetrics,
		newPrometheusHandler,
		newRouter,
		serverProvider,
		newPprofServer,
	)
}
