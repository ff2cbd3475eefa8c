package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	idempotencyHeader = "Idempotency-Key"
	idempotencyTTL    = 24 * time.Hour
)

// ResponseCache stores replayable responses keyed by idempotency key.
// A miss is (nil, nil). Implemented by redis.ResponseStore.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

// cachedResponse stores the response for idempotent requests. A retried
// checkout with the same key replays the original order instead of creating
// a second one.
type cachedResponse struct {
	StatusCode int             `json:"status_code"`
	Body       json.RawMessage `json:"body"`
}

// responseWriter wraps gin.ResponseWriter to capture the response.
type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays cached responses for POSTs that carry an
// Idempotency-Key header.
func IdempotencyMiddleware(cache ResponseCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		key := c.GetHeader(idempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		cacheKey := "idempotency:" + key

		data, err := cache.Get(ctx, cacheKey)
		if err != nil {
			// Cache error: proceed without idempotency.
			c.Next()
			return
		}

		if data != nil {
			var cached cachedResponse
			if jsonErr := json.Unmarshal(data, &cached); jsonErr == nil {
				c.Data(cached.StatusCode, "application/json", cached.Body)
				c.Abort()
				return
			}
			// Corrupt entry: fall through and let the handler run.
		}

		w := &responseWriter{
			ResponseWriter: c.Writer,
			body:           &bytes.Buffer{},
		}
		c.Writer = w

		c.Next()

		// Cache everything except server-side failures, so a gateway outage
		// can still be retried with the same key.
		if c.Writer.Status() >= 200 && c.Writer.Status() < 500 {
			response := cachedResponse{
				StatusCode: c.Writer.Status(),
				Body:       w.body.Bytes(),
			}
			if data, err := json.Marshal(response); err == nil {
				_ = cache.Set(ctx, cacheKey, data, idempotencyTTL)
			}
		}
	}
}
