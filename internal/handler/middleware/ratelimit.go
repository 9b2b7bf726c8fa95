package middleware

import (
	"errors"
	"net/http"
	"sync"

	"drivethru/internal/handler/httperr"
	"drivethru/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errors.New("rate limit exceeded")

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	limit rate.Limit
	burst int
	ips   map[string]*rate.Limiter
	mu    sync.Mutex
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		limit: rate.Limit(cfg.RPS),
		burst: cfg.Burst,
		ips:   make(map[string]*rate.Limiter),
	}
}

func (rl *RateLimiter) limiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	l, ok := rl.ips[ip]
	if !ok {
		l = rate.NewLimiter(rl.limit, rl.burst)
		rl.ips[ip] = l
	}
	return l
}

func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.limiter(c.ClientIP()).Allow() {
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "too many requests")
			return
		}
		c.Next()
	}
}

// RateLimitFor returns nil when limiting is disabled so routes can skip it.
func RateLimitFor(cfg config.RateLimitConfig) gin.HandlerFunc {
	if !cfg.Enabled() {
		return nil
	}
	return NewRateLimiter(cfg).RateLimit()
}
