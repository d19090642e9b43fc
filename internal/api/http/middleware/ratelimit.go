package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fit4ever/fit4ever-server/internal/logger"
)

// Limiter admits or rejects a request under the given key.
type Limiter interface {
	Allow(key string) bool
}

// RateLimit rejects requests over the per-client budget on the routes
// it is mounted on. Budgets are keyed by client IP and request path, so
// hammering login does not lock a client out of registration.
type RateLimit struct {
	limiter Limiter
	logger  *logger.Logger
}

// NewRateLimit creates a new RateLimit middleware instance.
func NewRateLimit(limiter Limiter, logger *logger.Logger) *RateLimit {
	return &RateLimit{limiter: limiter, logger: logger}
}

// Handler answers 429 once the window budget for the client and path is
// spent.
func (m *RateLimit) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := clientIP(c) + ":" + c.FullPath()

		if !m.limiter.Allow(key) {
			m.logger.Warn("RateLimit middleware: request rejected", "key", key)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "Rate limit exceeded",
				"message": "Too many requests. Please try again later.",
			})
			return
		}

		c.Next()
	}
}

// clientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then
// the socket peer.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}
	if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
		return strings.TrimSpace(realIP)
	}
	return c.RemoteIP()
}
