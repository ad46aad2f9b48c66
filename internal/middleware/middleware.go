package middleware

import (
	"crypto/subtle"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"psychoai/pkg/log"
	"psychoai/pkg/response"
)

const (
	// HeaderRequestID is echoed back on every response.
	HeaderRequestID = "X-Request-ID"
	// HeaderAPIKey carries the internal key for protected routes.
	HeaderAPIKey = "X-API-Key"
)

// RequestID attaches a request id to the request context so every log line carries it.
// A client supplied X-Request-ID is kept.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Header(HeaderRequestID, id)

		start := time.Now()
		c.Next()
		m.l.Debugf(c.Request.Context(), "internal.middleware.RequestID: %s %s -> %d in %s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

// Auth rejects requests whose X-API-Key does not match the internal key.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.internalKey == "" {
			c.Next()
			return
		}
		key := c.GetHeader(HeaderAPIKey)
		if subtle.ConstantTimeCompare([]byte(key), []byte(m.internalKey)) != 1 {
			m.l.Warnf(c.Request.Context(), "internal.middleware.Auth: rejected %s %s", c.Request.Method, c.Request.URL.Path)
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
