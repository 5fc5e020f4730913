// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	domainerror "github.com/ledgertree/backend/internal/domain/error"
	"github.com/ledgertree/backend/internal/integration/entrypoint/dto"
)

const (
	defaultLoginAttempts = 5
	defaultLoginWindow   = time.Minute
)

// attemptWindow is one client's counter within the current fixed window.
type attemptWindow struct {
	count       int
	windowStart time.Time
}

// RateLimiter throttles requests per client IP using a fixed window
// counter held in process memory.
type RateLimiter struct {
	mu      sync.Mutex
	windows map[string]*attemptWindow
	limit   int
	window  time.Duration
}

// NewRateLimiter creates a rate limiter with the default login limits.
func NewRateLimiter() *RateLimiter {
	return NewRateLimiterWithConfig(defaultLoginAttempts, defaultLoginWindow)
}

// NewRateLimiterWithConfig creates a rate limiter with the given limits.
func NewRateLimiterWithConfig(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		windows: make(map[string]*attemptWindow),
		limit:   limit,
		window:  window,
	}
}

// Middleware returns a gin handler that rejects clients over the limit
// with 429.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if key == "" {
			key = c.Request.RemoteAddr
		}

		if !rl.allow(key, time.Now()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) allow(key string, now time.Time) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	win, ok := rl.windows[key]
	if !ok || now.Sub(win.windowStart) >= rl.window {
		rl.windows[key] = &attemptWindow{count: 1, windowStart: now}
		return true
	}

	if win.count >= rl.limit {
		return false
	}
	win.count++
	return true
}

// Reset drops all counters.
func (rl *RateLimiter) Reset() {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	rl.windows = make(map[string]*attemptWindow)
}

// Cleanup drops counters whose window has passed.
func (rl *RateLimiter) Cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for key, win := range rl.windows {
		if now.Sub(win.windowStart) >= rl.window {
			delete(rl.windows, key)
		}
	}
}
