package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDKey is the Gin context key the request id is stored under.
	RequestIDKey = "request_id"

	// RequestIDHeader is the header the id is read from and echoed to.
	RequestIDHeader = "X-Request-ID"
)

// RequestID is a Gin middleware that tags each request with a unique
// identifier.
//
// Behavior:
//   - Reuses an inbound X-Request-ID when the caller sent one, so ids
//     stay stable across proxies.
//   - Generates a new UUID (v4) otherwise.
//   - Stores the id in the Gin context under RequestIDKey.
//   - Echoes it back in the X-Request-ID response header.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID())
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}
