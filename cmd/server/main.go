package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	goredis "github.com/redis/go-redis/v9"

	"faregateway/internal/app"
	"faregateway/internal/config"
	"faregateway/internal/domain"
	"faregateway/internal/handler"
	"faregateway/internal/middleware"
	"faregateway/internal/ratelimit"
	internalRedis "faregateway/internal/redis"
	"faregateway/internal/service"
)

func main() {
	// Load and validate configuration. Missing secrets kill the process here
	// instead of failing per-request.
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic first so Redis can be instrumented.
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	// Redis is optional: without it the rate limiter is in-process and
	// payment order creation has no idempotency replay.
	var redisClient *goredis.Client
	if cfg.Redis.Addr != "" {
		redisClient, err = app.NewRedisClient(ctx, cfg.Redis, nrApp)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
		log.Println("Connected to Redis")
	}

	server, limiterCancel := wireServer(redisClient, nrApp, cfg)
	defer limiterCancel()

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server along with a
// cancel func stopping background limiter maintenance.
func wireServer(redisClient *goredis.Client, nrApp *newrelic.Application, cfg *config.Config) (*http.Server, context.CancelFunc) {
	janitorCtx, cancel := context.WithCancel(context.Background())

	// Pick the rate limiter store: shared fixed-window counters in Redis when
	// available, an in-process mutex-guarded map otherwise.
	var limiter ratelimit.Limiter
	var responseCache middleware.ResponseCache
	if redisClient != nil {
		limiter = internalRedis.NewRateLimitStore(redisClient, cfg.Security.RateLimitPerKey, cfg.Security.RateLimitWindow)
		responseCache = internalRedis.NewResponseStore(redisClient)
	} else {
		memLimiter := ratelimit.NewMemoryLimiter(cfg.Security.RateLimitPerKey, cfg.Security.RateLimitWindow)
		memLimiter.StartJanitor(janitorCtx, cfg.Security.RateLimitWindow)
		limiter = memLimiter
	}

	// Initialize services.
	fareService := service.NewFareService(domain.DefaultTariff())
	botVerifier := service.NewBotVerifier(cfg.BotVerify.URL, cfg.BotVerify.Secret, cfg.BotVerify.ScoreThreshold, cfg.BotVerify.Timeout)
	enquiryService := service.NewEnquiryService(botVerifier, service.NewLogNotifier())
	gateway := service.NewHTTPGateway(cfg.Payment.GatewayURL, cfg.Payment.KeyID, cfg.Payment.KeySecret, 10*time.Second)
	paymentService := service.NewPaymentService(gateway, cfg.Payment.KeySecret)

	// Initialize handlers.
	fareHandler := handler.NewFareHandler(fareService, domain.DefaultDistanceTable())
	enquiryHandler := handler.NewEnquiryHandler(enquiryService)
	paymentHandler := handler.NewPaymentHandler(paymentService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		FareHandler:    fareHandler,
		EnquiryHandler: enquiryHandler,
		PaymentHandler: paymentHandler,
		Limiter:        limiter,
		AllowedOrigin:  cfg.Security.AllowedOrigin,
		ResponseCache:  responseCache,
		NewRelicApp:    nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, cancel
}
