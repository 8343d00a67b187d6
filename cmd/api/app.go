package main

import (
	"fmt"
	"log/slog"

	"sunflight/internal/airports"
	"sunflight/internal/config"
	"sunflight/internal/recommend"
	"sunflight/internal/timezone"
	"sunflight/internal/weather"

	"github.com/gin-gonic/gin"

	_ "sunflight/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router           *gin.Engine
	logger           *slog.Logger
	directory        *airports.Directory
	recommendService recommend.Service
	cfg              *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	// Build the airport directory once; it is read-only afterwards.
	directory, err := airports.NewDirectory()
	if err != nil {
		return nil, fmt.Errorf("failed to load airport directory: %w", err)
	}

	weatherSvc := weather.NewWeatherService(cfg, logger)

	// The timezone finder is optional; airport records carry timezones of
	// their own, so a load failure only degrades unknown-timezone handling.
	tzSvc, err := timezone.NewService()
	if err != nil {
		logger.Warn("timezone finder unavailable", "error", err)
		tzSvc = nil
	}

	app := &App{
		router:           router,
		logger:           logger,
		directory:        directory,
		recommendService: recommend.NewService(directory, weatherSvc, tzSvc, cfg, logger),
		cfg:              cfg,
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
