package middleware

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"faregateway/internal/ratelimit"
	"faregateway/internal/service"
)

// RateLimitMiddleware enforces the per-client request budget. The limiter's
// decision is terminal: an exhausted key gets 429 with no partial processing.
func RateLimitMiddleware(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := clientKey(c)

		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			// A broken limiter store must not take the site down; the bot
			// verification downstream still guards the endpoint.
			log.Printf("rate limiter unavailable, allowing request: %v", err)
			c.Next()
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": service.ErrRateLimitExceeded.Error()})
			return
		}
		c.Next()
	}
}

// clientKey extracts the client identity, preferring proxy-forwarded headers.
func clientKey(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(c.GetHeader("X-Real-IP")); ip != "" {
		return ip
	}
	return c.ClientIP()
}
