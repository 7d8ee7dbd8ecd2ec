package ratelimit

import (
	"io"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"zistino-dispatch/internal/logx"
)

// Middleware rejects requests once a client IP runs out of tokens.
type Middleware struct {
	logger  logx.Logger
	counter prometheus.Counter
	limiter Limiter
	exempt  map[string]struct{}
}

// New creates a new Middleware. A nil limiter lets everything through.
func New(logger logx.Logger, counter prometheus.Counter, limiter Limiter) *Middleware {
	if limiter == nil {
		limiter = NopLimiter{}
	}
	return &Middleware{
		logger:  logger,
		counter: counter,
		limiter: limiter,
		exempt:  make(map[string]struct{}),
	}
}

// Exempt excludes exact paths, such as probes and /metrics, from limiting.
func (m *Middleware) Exempt(paths ...string) *Middleware {
	for _, p := range paths {
		m.exempt[p] = struct{}{}
	}
	return m
}

// Handler returns chi-style middleware.
func (m *Middleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := m.exempt[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			ip := clientIP(r)
			if m.limiter.Allow(ip) {
				next.ServeHTTP(w, r)
				return
			}

			if m.counter != nil {
				m.counter.Inc()
			}
			m.logger.Warn("rate limit exceeded",
				logx.String("ip", ip),
				logx.String("method", r.Method),
				logx.String("path", r.URL.Path),
			)
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := io.WriteString(w, `{"error":"too many requests"}`); err != nil {
				m.logger.Debug("rate limit response write failed",
					logx.String("ip", ip),
					logx.Err(err),
				)
			}
		})
	}
}

// clientIP expects chi's RealIP middleware to have already rewritten RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
