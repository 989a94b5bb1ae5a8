package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aqipulse/aqipulse/config"
	"github.com/aqipulse/aqipulse/internal/api"
	"github.com/aqipulse/aqipulse/internal/provider"
	"github.com/aqipulse/aqipulse/internal/scheduler"
	"github.com/aqipulse/aqipulse/internal/service"
	"github.com/aqipulse/aqipulse/internal/store"
)

// sourceFactory is an indirection for unit testing; defaults to the
// OpenWeather-backed history provider.
var sourceFactory = func(cfg config.Config) provider.HistoryProvider {
	client := &http.Client{Timeout: cfg.Provider.Timeout}
	return provider.NewOpenWeatherProvider(client, cfg.Provider.APIKey, cfg.Provider.BaseURL)
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Builds the upstream history provider with the configured HTTP client.
//   - Initializes the summary service (fetch, normalize, aggregate).
//   - Creates the in-memory store fed by the background refresh job.
//   - Starts the scheduler that keeps the home location's summary fresh.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to stop background work on shutdown.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Upstream provider (indirection for unit testing)
	source := sourceFactory(cfg)

	// Business logic: fetch -> normalize -> aggregate
	svc := service.NewSummaryService(source)

	// Cache of background refresh results
	st := store.NewMemoryStore(cfg.Refresh.MaxAge)

	// Background refresh for the home location
	home := provider.Location{Lat: cfg.Refresh.Lat, Lon: cfg.Refresh.Lon}
	sched := scheduler.New(svc, st, home, cfg.Refresh.Days, cfg.Refresh.Interval)
	if err := sched.Start(); err != nil {
		return nil, nil, fmt.Errorf("failed to start refresh scheduler: %w", err)
	}

	// HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc, st, home, cfg.Refresh.Days)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(readiness(cfg))
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		sched.Stop()
	}

	return router, cleanup, nil
}

// readiness reports whether the service can serve fresh data. Without
// an API key every upstream fetch would fail, so the pod should not
// receive traffic.
func readiness(cfg config.Config) func() error {
	return func() error {
		if cfg.Provider.APIKey == "" {
			return errors.New("OPENWEATHER_API_KEY is not configured")
		}
		return nil
	}
}
