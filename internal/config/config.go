package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"hris-dashboard/internal/shared/idgen"

	"go.uber.org/zap/zapcore"
)

type Config struct {
	Addr             string
	Environment      string
	LogLevel         string
	SimulatedLatency bool
	LatencyScale     float64
	IDStrategy       string
	FixturesDir      string
	RedisAddr        string
	KafkaBroker      string
	RateLimitRPS     float64
	RateLimitBurst   int
}

func Load() Config {
	return Config{
		Addr:             getEnv("APP_ADDR", ":8080"),
		Environment:      getEnv("APP_ENV", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		SimulatedLatency: getEnvBool("SIMULATED_LATENCY", true),
		LatencyScale:     getEnvFloat("LATENCY_SCALE", 1),
		IDStrategy:       getEnv("ID_STRATEGY", idgen.StrategyUUID),
		FixturesDir:      getEnv("FIXTURES_DIR", ""),
		RedisAddr:        getEnv("REDIS_ADDR", ""),
		KafkaBroker:      getEnv("KAFKA_BROKER", ""),
		RateLimitRPS:     getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:   getEnvInt("RATE_LIMIT_BURST", 20),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

// IsProduction reports whether APP_ENV is "production".
func (c Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("APP_ADDR is required")
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL %q is not a valid level", c.LogLevel)
	}
	if c.LatencyScale < 0 {
		return fmt.Errorf("LATENCY_SCALE must not be negative")
	}
	switch strings.ToLower(c.IDStrategy) {
	case idgen.StrategyUUID, idgen.StrategyCounter, idgen.StrategyTimestamp:
	default:
		return fmt.Errorf("ID_STRATEGY must be one of uuid, counter, timestamp")
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must not be negative")
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be positive when rate limiting is enabled")
	}
	return nil
}
