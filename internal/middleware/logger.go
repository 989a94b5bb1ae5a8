package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aqipulse/aqipulse/internal/logger"
)

// RequestLogger is a Gin middleware that logs method, path, status
// code, request latency, and request id (if available).
//
// Example log output:
//
//	request_id=123e4567... method=GET path=/api/v1/summary status=200 latency_ms=15
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)

		logger.L().Info().
			Str("request_id", requestIDFrom(c)).
			Str("method", method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Int64("latency_ms", latency.Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

// requestIDFrom reads the id injected by RequestID, empty when the
// middleware did not run.
func requestIDFrom(c *gin.Context) string {
	v, ok := c.Get(RequestIDKey)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// visitor tracks request counts for one client IP inside the current
// window.
type visitor struct {
	lastSeen time.Time
	count    int
}

// In-memory rate limiter state. The limit is deliberately below the
// free OpenWeatherMap quota so a single chatty client cannot burn the
// upstream budget for everyone.
// NOTE: for multi-instance deployments move this to a shared store.
var (
	visitors        = make(map[string]*visitor)
	window          = time.Minute
	limit           = 60
	rateLimiterLock sync.Mutex
)

// RateLimiter limits each client IP to `limit` requests per `window`
// (default: 60 per minute). Exceeding it returns 429 Too Many Requests.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RateLimiter())
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		rateLimiterLock.Lock()
		v, ok := visitors[ip]
		if !ok || now.Sub(v.lastSeen) > window {
			v = &visitor{lastSeen: now, count: 1}
			visitors[ip] = v
		} else {
			v.count++
			v.lastSeen = now
		}
		exceeded := v.count > limit
		rateLimiterLock.Unlock()

		if exceeded {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
