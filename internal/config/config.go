package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type AppConfig struct {
	Port string

	WeatherAPIKey     string
	WeatherAPIBaseURL string

	// HTTPTimeout bounds a single provider call. Zero waits for the network
	// layer indefinitely.
	HTTPTimeout time.Duration

	// Circuit breaker guarding the provider transport.
	BreakerMaxFailures int
	BreakerOpenTimeout time.Duration

	// Session retention.
	SessionMaxAge        time.Duration // idle sessions older than this are dropped
	SessionSweepInterval time.Duration

	LogLevel string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		zap.L().Info("no .env file found, using environment variables", zap.Error(err))
	}
	cfg := &AppConfig{}

	cfg.Port = getenvDefault("PORT", "8080")
	cfg.WeatherAPIKey = os.Getenv("WEATHERAPI_API_KEY")
	cfg.WeatherAPIBaseURL = getenvDefault("WEATHERAPI_BASE_URL", "https://api.weatherapi.com/v1")
	cfg.LogLevel = getenvDefault("LOG_LEVEL", "info")

	var err error
	if cfg.HTTPTimeout, err = getenvDuration("HTTP_TIMEOUT", "0s"); err != nil {
		return nil, err
	}
	if cfg.BreakerOpenTimeout, err = getenvDuration("BREAKER_OPEN_TIMEOUT", "30s"); err != nil {
		return nil, err
	}
	if cfg.SessionMaxAge, err = getenvDuration("SESSION_MAX_AGE", "30m"); err != nil {
		return nil, err
	}
	if cfg.SessionSweepInterval, err = getenvDuration("SESSION_SWEEP_INTERVAL", "5m"); err != nil {
		return nil, err
	}
	cfg.BreakerMaxFailures = getenvInt("BREAKER_MAX_FAILURES", 5)

	if cfg.HTTPTimeout < 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: must not be negative")
	}
	if cfg.SessionSweepInterval <= 0 {
		return nil, fmt.Errorf("invalid SESSION_SWEEP_INTERVAL: must be positive")
	}

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
		zap.L().Warn("failed to parse int, using default", zap.String("key", key), zap.String("value", v))
	}
	return def
}

func getenvDuration(key, def string) (time.Duration, error) {
	d, err := time.ParseDuration(getenvDefault(key, def))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}
