package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/i474232898/weather-dashboard/internal/api/http"
	"github.com/i474232898/weather-dashboard/internal/config"
	"github.com/i474232898/weather-dashboard/internal/dashboard"
	"github.com/i474232898/weather-dashboard/internal/geo"
	"github.com/i474232898/weather-dashboard/internal/locations"
	"github.com/i474232898/weather-dashboard/internal/scheduler"
	"github.com/i474232898/weather-dashboard/internal/weatherapi"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for outbound weather calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}

	weatherClient := weatherapi.NewClient(httpClient, cfg.WeatherAPIKey)

	// Position source: geocoder-backed when configured, otherwise every
	// "use my location" action reports position unavailable.
	var source geo.Source
	if cfg.GeocoderAPIKey != "" {
		source = geo.NewGeocoderSource(cfg.GeocoderAPIKey, cfg.GeoCity, cfg.GeoCountry)
	}
	resolver := geo.NewResolver(source, geo.Options{
		HighAccuracy: true,
		Timeout:      cfg.GeoTimeout,
		MaximumAge:   0,
	})

	// Saved-location persistence: sqlite wins over the JSON file.
	var backend locations.Backend
	switch {
	case cfg.SavedLocationsDB != "":
		sqlBackend, err := locations.NewSQLiteBackend(cfg.SavedLocationsDB)
		if err != nil {
			log.Fatalf("failed to open saved-locations db: %v", err)
		}
		defer sqlBackend.Close()
		backend = sqlBackend
	case cfg.SavedLocationsPath != "":
		backend = locations.NewFileBackend(cfg.SavedLocationsPath)
	default:
		backend = locations.NewMemoryBackend()
	}

	saved := locations.NewStore(backend)
	dash := dashboard.New(weatherClient, resolver, saved, cfg.DefaultLocation)

	// Startup refresh for the default location. The process stays up on
	// failure; the error is part of the dashboard state and a retry is
	// one search away.
	initCtx, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	if err := dash.Init(initCtx); err != nil {
		log.Printf("ERROR: startup refresh for %q failed: %v", cfg.DefaultLocation, err)
	}
	cancelInit()

	// Periodic auto-refresh of the displayed location.
	sched := scheduler.New(dash, cfg.RefreshInterval)
	if err := sched.Start(); err != nil {
		log.Fatalf("failed to start scheduler: %v", err)
	}
	defer sched.Stop()

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "weather-dashboard",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Centralized error response
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error":   true,
				"message": err.Error(),
			})
		},
	})

	// Global middleware
	app.Use(logger.New())
	app.Use(recover.New())

	// Basic health endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "weather-dashboard",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, dash)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
