package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(t time.Time) *fakeClock { return &fakeClock{now: t} }

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Add(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func TestTokenBucketLimiter_BurstThenBlocksThenRefills(t *testing.T) {
	t.Parallel()

	clk := newFakeClock(time.Unix(0, 0))
	l := NewTokenBucketLimiter(clk, Config{Rate: 1, Burst: 2})

	require.True(t, l.Allow("ip1"))
	require.True(t, l.Allow("ip1"))
	require.False(t, l.Allow("ip1"), "bucket empty")

	clk.Add(time.Second)
	require.True(t, l.Allow("ip1"), "one token refilled")
	require.False(t, l.Allow("ip1"))

	clk.Add(10 * time.Second)
	require.True(t, l.Allow("ip1"))
	require.True(t, l.Allow("ip1"))
	require.False(t, l.Allow("ip1"), "refill is capped by burst")
}

func TestTokenBucketLimiter_IsPerKey(t *testing.T) {
	t.Parallel()

	l := NewTokenBucketLimiter(newFakeClock(time.Unix(0, 0)), Config{Rate: 1, Burst: 1})

	require.True(t, l.Allow("keyA"))
	require.False(t, l.Allow("keyA"))
	require.True(t, l.Allow("keyB"))
}

func TestTokenBucketLimiter_TTLDropsIdleBuckets(t *testing.T) {
	t.Parallel()

	clk := newFakeClock(time.Unix(0, 0))
	l := NewTokenBucketLimiter(clk, Config{Rate: 10, Burst: 1, TTL: 2 * time.Second})

	_ = l.Allow("A")
	_ = l.Allow("B")
	require.Len(t, l.buckets, 2)

	clk.Add(time.Second)
	_ = l.Allow("B")

	clk.Add(1500 * time.Millisecond)
	_ = l.Allow("B")

	require.NotContains(t, l.buckets, "A")
	require.Contains(t, l.buckets, "B")
}

func TestTokenBucketLimiter_MaxBucketsEvictsOldest(t *testing.T) {
	t.Parallel()

	clk := newFakeClock(time.Unix(0, 0))
	l := NewTokenBucketLimiter(clk, Config{Rate: 1, Burst: 1, MaxBuckets: 2})

	require.True(t, l.Allow("A"))
	clk.Add(time.Millisecond)
	require.True(t, l.Allow("B"))
	clk.Add(time.Millisecond)
	require.True(t, l.Allow("C"), "a new client is never refused for lack of room")

	require.Len(t, l.buckets, 2)
	require.NotContains(t, l.buckets, "A")
}

func TestNewTokenBucketLimiter_Defaults(t *testing.T) {
	t.Parallel()

	l := NewTokenBucketLimiter(nil, Config{MaxBuckets: -1})
	require.Equal(t, 1.0, l.cfg.Rate)
	require.Equal(t, 1, l.cfg.Burst)
	require.Equal(t, 0, l.cfg.MaxBuckets)
	require.IsType(t, RealClock{}, l.clock)
}
