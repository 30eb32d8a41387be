package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	httpapi "github.com/i474232898/weather-lookup/internal/api/http"
	"github.com/i474232898/weather-lookup/internal/config"
	"github.com/i474232898/weather-lookup/internal/logging"
	"github.com/i474232898/weather-lookup/internal/lookup"
	"github.com/i474232898/weather-lookup/internal/scheduler"
	"github.com/i474232898/weather-lookup/internal/store"
	"github.com/i474232898/weather-lookup/internal/weather"
	"github.com/i474232898/weather-lookup/internal/weather/providers"
)

func main() {
	// Bootstrap logger so config loading can report problems.
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))

	cfg, err := config.Load()
	if err != nil {
		zap.L().Fatal("failed to load config", zap.Error(err))
	}

	zlog, err := logging.New(cfg.LogLevel)
	if err != nil {
		zap.L().Fatal("failed to build logger", zap.Error(err))
	}
	defer zlog.Sync()
	zap.ReplaceGlobals(zlog)

	if cfg.WeatherAPIKey == "" {
		zlog.Warn("WEATHERAPI_API_KEY is not set, lookups will fail")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Shared HTTP client for outbound provider calls. Zero timeout waits indefinitely.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	breakerFailures := cfg.BreakerMaxFailures
	if breakerFailures < 0 {
		breakerFailures = 0
	}
	provider := providers.NewWeatherAPIProvider(httpClient, cfg.WeatherAPIBaseURL, cfg.WeatherAPIKey,
		providers.BreakerConfig{
			MaxConsecutiveFailures: uint32(breakerFailures),
			OpenTimeout:            cfg.BreakerOpenTimeout,
		}, zlog)

	service := weather.NewService(provider, zlog)

	// One lookup component per browser session.
	sessions := store.NewMemoryStore(cfg.SessionMaxAge, func() *lookup.WeatherLookup {
		return lookup.New(service, zlog)
	})

	sched := scheduler.New(sessions, cfg.SessionSweepInterval, zlog)
	if err := sched.Start(); err != nil {
		zlog.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer sched.Stop()

	app := fiber.New(fiber.Config{
		AppName:               "weather-lookup",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			if code >= fiber.StatusInternalServerError {
				zlog.Error("request failed",
					zap.String("path", c.Path()),
					zap.Int("status", code),
					zap.Error(err))
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} - ${method} ${path}\n",
	}))
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":   "ok",
			"service":  "weather-lookup",
			"sessions": sessions.Len(),
		})
	})

	httpapi.RegisterRoutes(app, httpapi.NewHandler(ctx, sessions, service, zlog))

	go func() {
		zlog.Info("starting server", zap.String("port", cfg.Port))
		if err := app.Listen(":" + cfg.Port); err != nil {
			zlog.Error("fiber server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		zlog.Error("error during shutdown", zap.Error(err))
	}
}
