package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"

	"faregateway/internal/handler"
	"faregateway/internal/middleware"
	"faregateway/internal/ratelimit"
)

// RouterDeps contains all dependencies needed for the router.
// ResponseCache is optional; without it payment-order creation has no
// idempotency replay.
type RouterDeps struct {
	FareHandler    *handler.FareHandler
	EnquiryHandler *handler.EnquiryHandler
	PaymentHandler *handler.PaymentHandler
	Limiter        ratelimit.Limiter
	AllowedOrigin  string
	ResponseCache  middleware.ResponseCache
	NewRelicApp    *newrelic.Application
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Fare quotes are read-only previews; no protection layer.
		fares := v1.Group("/fares")
		{
			fares.POST("/quote", deps.FareHandler.QuoteFare)
		}

		// Public write endpoint: origin check runs before the rate limiter
		// is even consulted.
		enquiries := v1.Group("/enquiries")
		enquiries.Use(middleware.OriginMiddleware(deps.AllowedOrigin))
		enquiries.Use(middleware.RateLimitMiddleware(deps.Limiter))
		{
			enquiries.POST("", deps.EnquiryHandler.SubmitEnquiry)
		}

		// Payment routes. Order creation is idempotent per Idempotency-Key
		// when a response cache is configured.
		payments := v1.Group("/payments")
		if deps.ResponseCache != nil {
			payments.Use(middleware.IdempotencyMiddleware(deps.ResponseCache))
		}
		{
			payments.POST("/orders", deps.PaymentHandler.CreateOrder)
			payments.POST("/verify", deps.PaymentHandler.VerifyPayment)
		}
	}

	return router
}
