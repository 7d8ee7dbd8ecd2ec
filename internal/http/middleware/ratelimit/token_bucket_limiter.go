package ratelimit

import (
	"math"
	"sync"
	"time"
)

// Config stores TokenBucketLimiter settings.
type Config struct {
	Rate       float64       // tokens per second
	Burst      int           // bucket capacity
	TTL        time.Duration // idle buckets older than this are dropped; 0 keeps them
	MaxBuckets int           // 0 means unbounded
}

// TokenBucketLimiter keeps one token bucket per key.
type TokenBucketLimiter struct {
	cfg     Config
	clock   Clock
	mu      sync.Mutex
	buckets map[string]*bucket
	swept   time.Time
}

type bucket struct {
	tokens float64
	last   time.Time
}

// NewTokenBucketLimiter creates a limiter. Non-positive Rate and Burst fall back to 1.
func NewTokenBucketLimiter(clock Clock, cfg Config) *TokenBucketLimiter {
	if clock == nil {
		clock = RealClock{}
	}
	if cfg.Rate <= 0 {
		cfg.Rate = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if cfg.MaxBuckets < 0 {
		cfg.MaxBuckets = 0
	}
	return &TokenBucketLimiter{
		cfg:     cfg,
		clock:   clock,
		buckets: make(map[string]*bucket),
	}
}

// Allow takes one token from key's bucket and reports whether there was one.
func (l *TokenBucketLimiter) Allow(key string) bool {
	now := l.clock.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.sweep(now)

	b, ok := l.buckets[key]
	if !ok {
		if l.cfg.MaxBuckets > 0 && len(l.buckets) >= l.cfg.MaxBuckets {
			l.evictOldest()
		}
		b = &bucket{tokens: float64(l.cfg.Burst), last: now}
		l.buckets[key] = b
	}

	if dt := now.Sub(b.last); dt > 0 {
		b.tokens = math.Min(float64(l.cfg.Burst), b.tokens+dt.Seconds()*l.cfg.Rate)
		b.last = now
	}
	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

// sweep drops buckets idle for longer than TTL, at most once per half TTL.
func (l *TokenBucketLimiter) sweep(now time.Time) {
	ttl := l.cfg.TTL
	if ttl <= 0 || (!l.swept.IsZero() && now.Sub(l.swept) < ttl/2) {
		return
	}
	l.swept = now
	for k, b := range l.buckets {
		if now.Sub(b.last) > ttl {
			delete(l.buckets, k)
		}
	}
}

func (l *TokenBucketLimiter) evictOldest() {
	var (
		oldestKey string
		oldest    time.Time
	)
	for k, b := range l.buckets {
		if oldestKey == "" || b.last.Before(oldest) {
			oldestKey, oldest = k, b.last
		}
	}
	delete(l.buckets, oldestKey)
}
