package middleware

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/errors"
	"finance-dashboard/internal/handlers"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const (
	defaultRequestsPerSecond = 20
	defaultBurst             = 40
	visitorTTL               = 3 * time.Minute
	sweepInterval            = time.Minute
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// visitorStore holds one token bucket per client IP
type visitorStore struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

func newVisitorStore(cfg config.RateLimitConfig) *visitorStore {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = defaultRequestsPerSecond
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = defaultBurst
	}

	return &visitorStore{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
	}
}

func (s *visitorStore) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, exists := s.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(s.limit, s.burst)
		s.visitors[ip] = &visitor{limiter, s.now()}
		return limiter
	}

	v.lastSeen = s.now()
	return v.limiter
}

// sweep forgets visitors idle for longer than ttl
func (s *visitorStore) sweep(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for ip, v := range s.visitors {
		if s.now().Sub(v.lastSeen) > ttl {
			delete(s.visitors, ip)
			removed++
		}
	}
	return removed
}

func (s *visitorStore) size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visitors)
}

func (s *visitorStore) cleanup(ctx context.Context) {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := s.sweep(visitorTTL); removed > 0 {
				slog.Debug("rate limiter visitors swept", "removed", removed)
			}
		}
	}
}

// RateLimiter limits requests per client IP with a token bucket sized by cfg.
// Idle visitors are swept until ctx is cancelled.
func RateLimiter(ctx context.Context, cfg config.RateLimitConfig) echo.MiddlewareFunc {
	store := newVisitorStore(cfg)
	go store.cleanup(ctx)

	return rateLimit(store)
}

func rateLimit(store *visitorStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := getIP(c)

			if !store.get(ip).Allow() {
				slog.Warn("rate limit exceeded",
					"trace_id", GetTraceID(c),
					"ip", ip,
					"path", c.Request().URL.Path,
				)
				return handlers.SendError(c, errors.SystemRateLimitExceeded)
			}

			return next(c)
		}
	}
}

func getIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		return xff
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.RealIP()
}
