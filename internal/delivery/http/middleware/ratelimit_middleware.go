package middleware

import (
	"math"
	"strconv"
	"sync"
	"time"

	"taskhub/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RateLimiterConfig holds the token bucket settings for the auth endpoints.
type RateLimiterConfig struct {
	Rate            rate.Limit    // replenish rate in req/sec
	Burst           int           // burst size per client
	CleanupInterval time.Duration // how often stale client entries are dropped
}

// DefaultRateLimiterConfig allows 10 requests per minute per client with a
// small burst, which is plenty for interactive login and registration.
func DefaultRateLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		Rate:            rate.Limit(10.0 / 60.0),
		Burst:           10,
		CleanupInterval: 5 * time.Minute,
	}
}

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimitMiddleware throttles credential endpoints per client IP. Entries
// for idle clients are evicted in the background so the map stays bounded.
type RateLimitMiddleware struct {
	config RateLimiterConfig

	mu       sync.Mutex
	limiters map[string]*clientLimiter

	stopCh chan struct{}
}

// NewRateLimitMiddleware creates the middleware and starts the cleanup
// goroutine. Call Stop when shutting down.
func NewRateLimitMiddleware(config RateLimiterConfig) *RateLimitMiddleware {
	if config.Rate <= 0 {
		config = DefaultRateLimiterConfig()
	}

	m := &RateLimitMiddleware{
		config:   config,
		limiters: make(map[string]*clientLimiter),
		stopCh:   make(chan struct{}),
	}

	go m.cleanupLoop()

	return m
}

// Stop terminates the background cleanup goroutine.
func (m *RateLimitMiddleware) Stop() {
	close(m.stopCh)
}

// Limit rejects requests beyond the per-client budget with 429 and a
// Retry-After hint.
func (m *RateLimitMiddleware) Limit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		limiter := m.getOrCreateLimiter(c.RealIP())

		if !limiter.Allow() {
			retryAfterSec := int(math.Ceil(1.0 / float64(m.config.Rate)))
			if retryAfterSec < 1 {
				retryAfterSec = 1
			}
			c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfterSec))

			return response.TooManyRequests(c, "RATE_LIMIT_EXCEEDED", "Too many requests, please try again later")
		}

		return next(c)
	}
}

// LimiterCount reports how many client entries are currently tracked.
func (m *RateLimitMiddleware) LimiterCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.limiters)
}

func (m *RateLimitMiddleware) getOrCreateLimiter(clientIP string) *rate.Limiter {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cl, ok := m.limiters[clientIP]; ok {
		cl.lastAccess = time.Now()

		return cl.limiter
	}

	limiter := rate.NewLimiter(m.config.Rate, m.config.Burst)
	m.limiters[clientIP] = &clientLimiter{
		limiter:    limiter,
		lastAccess: time.Now(),
	}

	return limiter
}

func (m *RateLimitMiddleware) cleanupLoop() {
	ticker := time.NewTicker(m.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			m.cleanup()
		case <-m.stopCh:
			return
		}
	}
}

// cleanup drops entries whose last access exceeds twice the cleanup interval.
func (m *RateLimitMiddleware) cleanup() {
	ttl := m.config.CleanupInterval * 2
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	for clientIP, cl := range m.limiters {
		if now.Sub(cl.lastAccess) > ttl {
			delete(m.limiters, clientIP)
		}
	}
}
