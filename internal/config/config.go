package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application.
type Config struct {
	Server    ServerConfig
	Security  SecurityConfig
	BotVerify BotVerifyConfig
	Payment   PaymentConfig
	Redis     RedisConfig
	NewRelic  NewRelicConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// SecurityConfig holds origin allow-listing and rate limiting configuration.
type SecurityConfig struct {
	AllowedOrigin   string
	RateLimitPerKey int
	RateLimitWindow time.Duration
}

// BotVerifyConfig holds bot-score verification configuration.
type BotVerifyConfig struct {
	URL            string
	Secret         string
	ScoreThreshold float64
	Timeout        time.Duration
}

// PaymentConfig holds payment gateway configuration.
type PaymentConfig struct {
	KeyID      string
	KeySecret  string
	GatewayURL string
}

// RedisConfig holds Redis configuration. An empty Addr disables Redis and
// the service falls back to in-process state.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRelicConfig holds New Relic configuration.
type NewRelicConfig struct {
	AppName    string
	LicenseKey string
	Enabled    bool
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 10*time.Second),
		},
		Security: SecurityConfig{
			AllowedOrigin:   strings.TrimRight(getEnv("ALLOWED_ORIGIN", "https://bookyourtravell.com"), "/"),
			RateLimitPerKey: getIntEnv("RATE_LIMIT_PER_IP", 5),
			RateLimitWindow: getDurationEnv("RATE_LIMIT_WINDOW", time.Hour),
		},
		BotVerify: BotVerifyConfig{
			URL:            getEnv("BOT_VERIFY_URL", "https://www.google.com/recaptcha/api/siteverify"),
			Secret:         getEnv("BOT_VERIFY_SECRET", ""),
			ScoreThreshold: getFloatEnv("BOT_SCORE_THRESHOLD", 0.5),
			Timeout:        getDurationEnv("BOT_VERIFY_TIMEOUT", 6*time.Second),
		},
		Payment: PaymentConfig{
			KeyID:      getEnv("PAYMENT_KEY_ID", ""),
			KeySecret:  getEnv("PAYMENT_KEY_SECRET", ""),
			GatewayURL: getEnv("PAYMENT_GATEWAY_URL", "https://api.razorpay.com/v1"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getIntEnv("REDIS_DB", 0),
		},
		NewRelic: NewRelicConfig{
			AppName:    getEnv("NEW_RELIC_APP_NAME", "fare-gateway"),
			LicenseKey: getEnv("NEW_RELIC_LICENSE_KEY", ""),
			Enabled:    getBoolEnv("NEW_RELIC_ENABLED", false),
		},
	}
}

// Validate checks that required secrets and limits are usable so the process
// fails at startup rather than per-request.
func (c *Config) Validate() error {
	if c.BotVerify.Secret == "" {
		return errors.New("config: BOT_VERIFY_SECRET is required")
	}
	if c.Payment.KeyID == "" {
		return errors.New("config: PAYMENT_KEY_ID is required")
	}
	if c.Payment.KeySecret == "" {
		return errors.New("config: PAYMENT_KEY_SECRET is required")
	}
	if c.Security.RateLimitPerKey <= 0 {
		return errors.New("config: RATE_LIMIT_PER_IP must be positive")
	}
	if c.Security.RateLimitWindow <= 0 {
		return errors.New("config: RATE_LIMIT_WINDOW must be positive")
	}
	if c.BotVerify.ScoreThreshold < 0 || c.BotVerify.ScoreThreshold > 1 {
		return errors.New("config: BOT_SCORE_THRESHOLD must be within [0,1]")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
