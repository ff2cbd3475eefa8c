package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"faregateway/internal/service"
)

// OriginMiddleware rejects cross-site submissions before any other check runs.
// Requests with no Origin and no Referer pass: native clients and some
// browsers omit both, and the bot verification downstream covers them.
func OriginMiddleware(allowedOrigin string) gin.HandlerFunc {
	allowed := strings.TrimRight(allowedOrigin, "/")
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			origin = c.GetHeader("Referer")
		}
		if origin != "" && !strings.HasPrefix(origin, allowed) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": service.ErrForbiddenOrigin.Error()})
			return
		}
		c.Next()
	}
}
