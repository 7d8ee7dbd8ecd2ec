package order

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"zistino-dispatch/internal/domain"
	testlog "zistino-dispatch/internal/testutil"
)

type fakeGateway struct {
	getByIDFn func(context.Context, string) (*domain.Order, error)
}

func (f *fakeGateway) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return f.getByIDFn(ctx, id)
}

type counterStub struct{ n atomic.Int64 }

func (c *counterStub) Inc() { c.n.Add(1) }

func TestRetryingGateway_RetriesThenSucceeds(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	var calls atomic.Int32
	next := &fakeGateway{
		getByIDFn: func(context.Context, string) (*domain.Order, error) {
			switch calls.Add(1) {
			case 1:
				return nil, &StatusError{Code: http.StatusServiceUnavailable}
			case 2:
				return nil, &url.Error{Op: "Get", URL: "http://orders", Err: errors.New("connection refused")}
			default:
				return &domain.Order{ID: "42"}, nil
			}
		},
	}
	ctr := &counterStub{}
	g := NewRetryingGateway(next, rec.Logger(), ctr, RetryConfig{MaxAttempts: 5})
	require.NotNil(t, g)

	got, err := g.GetByID(context.Background(), "42")
	require.NoError(t, err)
	require.Equal(t, "42", got.ID)
	require.EqualValues(t, 3, calls.Load())
	require.EqualValues(t, 2, ctr.n.Load())
	require.True(t, rec.Has("orders gateway retry"))
}

func TestRetryingGateway_NoRetryOnNonRetryable(t *testing.T) {
	t.Parallel()

	for _, failure := range []error{
		&StatusError{Code: http.StatusBadRequest},
		&StatusError{Code: http.StatusInternalServerError},
		errors.New("decode failed"),
	} {
		var calls atomic.Int32
		next := &fakeGateway{
			getByIDFn: func(context.Context, string) (*domain.Order, error) {
				calls.Add(1)
				return nil, failure
			},
		}
		ctr := &counterStub{}
		g := NewRetryingGateway(next, nil, ctr, RetryConfig{MaxAttempts: 5})

		_, err := g.GetByID(context.Background(), "42")
		require.ErrorIs(t, err, failure)
		require.EqualValues(t, 1, calls.Load(), failure.Error())
		require.Zero(t, ctr.n.Load())
	}
}

func TestRetryingGateway_StopsAtMaxAttempts(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	next := &fakeGateway{
		getByIDFn: func(context.Context, string) (*domain.Order, error) {
			calls.Add(1)
			return nil, &StatusError{Code: http.StatusTooManyRequests}
		},
	}
	ctr := &counterStub{}
	g := NewRetryingGateway(next, nil, ctr, RetryConfig{MaxAttempts: 3})

	_, err := g.GetByID(context.Background(), "42")
	var se *StatusError
	require.True(t, errors.As(err, &se))
	require.EqualValues(t, 3, calls.Load())
	require.EqualValues(t, 2, ctr.n.Load())
}

func TestRetryingGateway_StopsWhenContextDone(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	var calls atomic.Int32
	next := &fakeGateway{
		getByIDFn: func(context.Context, string) (*domain.Order, error) {
			calls.Add(1)
			cancel()
			return nil, &StatusError{Code: http.StatusBadGateway}
		},
	}
	g := NewRetryingGateway(next, nil, nil, RetryConfig{MaxAttempts: 5, BaseDelay: time.Hour})

	_, err := g.GetByID(ctx, "42")
	require.Error(t, err)
	require.EqualValues(t, 1, calls.Load())
}

func TestRetryingGateway_NilNext(t *testing.T) {
	t.Parallel()

	require.Nil(t, NewRetryingGateway(nil, nil, nil, RetryConfig{}))
}

func TestBackoff(t *testing.T) {
	t.Parallel()

	base, limit := 100*time.Millisecond, time.Second
	require.Equal(t, 100*time.Millisecond, backoff(base, limit, 1))
	require.Equal(t, 200*time.Millisecond, backoff(base, limit, 2))
	require.Equal(t, 800*time.Millisecond, backoff(base, limit, 4))
	require.Equal(t, time.Second, backoff(base, limit, 5))
}

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	require.True(t, isRetryable(&StatusError{Code: http.StatusGatewayTimeout}))
	require.False(t, isRetryable(&StatusError{Code: http.StatusNotImplemented}))
	require.True(t, isRetryable(&url.Error{Op: "Get", Err: errors.New("timeout")}))
	require.False(t, isRetryable(&url.Error{Op: "Get", Err: context.Canceled}))
	require.False(t, isRetryable(errors.New("plain")))
}
