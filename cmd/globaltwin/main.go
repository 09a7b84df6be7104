package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	httpapi "github.com/planetpulse/globaltwin/internal/api/http"
	"github.com/planetpulse/globaltwin/internal/config"
	"github.com/planetpulse/globaltwin/internal/dashboard"
	"github.com/planetpulse/globaltwin/internal/fetch"
	"github.com/planetpulse/globaltwin/internal/summary"
	"github.com/planetpulse/globaltwin/web"
)

func main() {
	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Shared HTTP client for all outbound calls.
	httpClient := &http.Client{
		Timeout: cfg.HTTPTimeout,
	}
	fetchClient := fetch.NewClient(httpClient)

	// One fetcher per data layer.
	sources := dashboard.Sources{
		Weather:    fetch.NewWeatherFetcher(fetchClient),
		Quakes:     fetch.NewQuakeFetcher(fetchClient),
		AirQuality: fetch.NewAirQualityFetcher(fetchClient, cfg.OpenAQAPIKey),
		Covid:      fetch.NewCovidFetcher(fetchClient),
		Disasters:  fetch.NewDisasterFetcher(fetchClient),
		News:       fetch.NewNewsFetcher(fetchClient, cfg.NewsQuery),
	}

	// Summarization client, constructed once and injected into the facade.
	summarizer := summary.NewFacade(
		summary.NewHFClient(httpClient, cfg.SummarizerURL, cfg.SummarizerToken),
	)

	service := dashboard.NewService(sources, summarizer)

	// Basic app configuration
	app := fiber.New(fiber.Config{
		AppName:               "globaltwin",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
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
			"service": "globaltwin",
		})
	})

	// API routes.
	httpapi.RegisterRoutes(app, service, cfg.DefaultCity)

	// Embedded single-page frontend.
	staticFS, err := web.StaticFS()
	if err != nil {
		log.Fatalf("failed to load embedded frontend: %v", err)
	}
	app.Use("/", filesystem.New(filesystem.Config{
		Root:  http.FS(staticFS),
		Index: "index.html",
	}))

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Printf("fiber server stopped: %v", err)
		}
	}()

	// Wait for termination signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Printf("error during shutdown: %v", err)
	}
}
