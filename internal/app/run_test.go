package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"zistino-dispatch/internal/logx"
	testlog "zistino-dispatch/internal/testutil"
	"zistino-dispatch/internal/transport/kafka"
)

func TestGracefulShutdown_DoesNotPanic(t *testing.T) {
	t.Parallel()

	srv := &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: http.NewServeMux(),
	}

	require.NotPanics(t, func() {
		gracefulShutdown(srv, logx.Nop(), 100*time.Millisecond)
	})
}

func loggerContainer(t *testing.T, logger logx.Logger) *dig.Container {
	t.Helper()
	container := dig.New()
	require.NoError(t, container.Provide(func() logx.Logger { return logger }))
	return container
}

func TestMustRun_ShutdownRequested(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	r := &Runner{
		runFn: func(*dig.Container) error { return context.Canceled },
		exit:  func(int) { t.Fatal("exit must not be called") },
	}
	r.MustRun(loggerContainer(t, rec.Logger()))
	require.True(t, rec.Has("shutdown requested, exiting"))
}

func TestRunner_MustRun_StartupTimeout(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	r := &Runner{
		runFn: func(*dig.Container) error { return context.DeadlineExceeded },
		exit:  func(int) { t.Fatal("exit must not be called") },
	}
	r.MustRun(loggerContainer(t, rec.Logger()))
	require.True(t, rec.Has("startup aborted: startup timeout exceeded"))
}

func TestRunner_MustRun_ExitsOnOtherError(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	code := -1
	r := &Runner{
		runFn: func(*dig.Container) error { return errors.New("boom") },
		exit:  func(c int) { code = c },
	}
	r.MustRun(loggerContainer(t, rec.Logger()))
	require.Equal(t, 1, code)
	require.True(t, rec.Has("run error"))
}

func TestNewRunner_DefaultFields(t *testing.T) {
	t.Parallel()

	r := NewRunner()
	require.NotNil(t, r)
	require.NotNil(t, r.exit)
	require.Equal(t, fmt.Sprintf("%p", run), fmt.Sprintf("%p", r.runFn))
}

func runContainer(t *testing.T, ctx context.Context, srv *http.Server) *dig.Container {
	t.Helper()

	container := dig.New()
	require.NoError(t, container.Provide(func() context.Context { return ctx }))
	require.NoError(t, container.Provide(logx.Nop))
	require.NoError(t, container.Provide(func() *pgxpool.Pool { return nil }))
	require.NoError(t, container.Provide(func() *kafka.Publisher { return nil }))
	require.NoError(t, container.Provide(func() *http.Server { return srv }))
	return container
}

func TestRun_InvokesAppRunViaContainer(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	container := runContainer(t, ctx, &http.Server{
		Addr:    "127.0.0.1:0",
		Handler: http.NewServeMux(),
	})

	go func() {
		time.Sleep(50 * time.Millisecond)
		cancel()
	}()

	err := run(container)
	require.ErrorIs(t, err, context.Canceled)
}

func TestRun_ReturnsListenError(t *testing.T) {
	t.Parallel()

	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	container := runContainer(t, context.Background(), &http.Server{
		Addr:    busy.Addr().String(),
		Handler: http.NewServeMux(),
	})

	err = run(container)
	require.Error(t, err)
	require.NotErrorIs(t, err, context.Canceled)
}
