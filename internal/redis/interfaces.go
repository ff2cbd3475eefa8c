package redis

import (
	"faregateway/internal/middleware"
	"faregateway/internal/ratelimit"
)

// Ensure concrete types implement interfaces.
var (
	_ ratelimit.Limiter        = (*RateLimitStore)(nil)
	_ middleware.ResponseCache = (*ResponseStore)(nil)
)
