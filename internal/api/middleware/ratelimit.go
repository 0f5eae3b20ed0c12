package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/CyberSolo/UDAM/internal/metrics"
)

const defaultVisitorTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter hands out one token bucket per client IP.
type RateLimiter struct {
	perSecond rate.Limit
	burst     int
	ttl       time.Duration
	now       func() time.Time

	mu        sync.Mutex
	visitors  map[string]*visitor
	lastPrune time.Time
}

// RateLimiterOption configures a RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.now = f
	}
}

// WithVisitorTTL sets how long an idle client's bucket is kept.
func WithVisitorTTL(d time.Duration) RateLimiterOption {
	return func(r *RateLimiter) {
		if d > 0 {
			r.ttl = d
		}
	}
}

// NewRateLimiter creates a per-IP limiter allowing perSecond requests with
// the given burst. Non-positive values fall back to 1.
func NewRateLimiter(perSecond float64, burst int, opts ...RateLimiterOption) *RateLimiter {
	if perSecond <= 0 {
		perSecond = 1
	}
	if burst <= 0 {
		burst = 1
	}
	r := &RateLimiter{
		perSecond: rate.Limit(perSecond),
		burst:     burst,
		ttl:       defaultVisitorTTL,
		now:       time.Now,
		visitors:  make(map[string]*visitor),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Allow reports whether the client may make a request now.
func (r *RateLimiter) Allow(clientIP string) bool {
	now := r.now()

	r.mu.Lock()
	if now.Sub(r.lastPrune) > r.ttl {
		r.pruneLocked(now)
	}
	v, ok := r.visitors[clientIP]
	if !ok {
		v = &visitor{limiter: rate.NewLimiter(r.perSecond, r.burst)}
		r.visitors[clientIP] = v
	}
	v.lastSeen = now
	r.mu.Unlock()

	return v.limiter.AllowN(now, 1)
}

// Prune drops buckets idle for longer than the visitor TTL and returns how
// many were removed.
func (r *RateLimiter) Prune() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pruneLocked(r.now())
}

func (r *RateLimiter) pruneLocked(now time.Time) int {
	r.lastPrune = now
	cutoff := now.Add(-r.ttl)

	removed := 0
	for ip, v := range r.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(r.visitors, ip)
			removed++
		}
	}
	return removed
}

// Visitors returns the number of tracked clients.
func (r *RateLimiter) Visitors() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.visitors)
}

// Middleware returns Echo middleware that answers 429 once a client's bucket
// is empty. Health check and scrape paths are never limited.
func (r *RateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, skip := metricsSkipPaths[c.Request().URL.Path]; skip {
				return next(c)
			}
			if !r.Allow(c.RealIP()) {
				metrics.RateLimitedTotal.Inc()
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusTooManyRequests, map[string]any{
					"title":  http.StatusText(http.StatusTooManyRequests),
					"status": http.StatusTooManyRequests,
					"detail": "rate limit exceeded",
				})
			}
			return next(c)
		}
	}
}
