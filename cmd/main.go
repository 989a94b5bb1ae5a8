package main

//
//  @title           aqipulse API
//  @version         1.0
//  @description     Air quality history fetch & daily AQI summary service.
//  @termsOfService  https://github.com/aqipulse/aqipulse
//  @contact.name    API Support
//  @contact.url     https://github.com/aqipulse/aqipulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        summary
//  @tag.description Daily air quality summaries and AQI classification
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"errors"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aqipulse/aqipulse/config"
	_ "github.com/aqipulse/aqipulse/docs" // swagger docs
	"github.com/aqipulse/aqipulse/internal/app"
	"github.com/aqipulse/aqipulse/internal/export"
	"github.com/aqipulse/aqipulse/internal/logger"
	"github.com/aqipulse/aqipulse/internal/provider"
	"github.com/aqipulse/aqipulse/internal/report"
	"github.com/aqipulse/aqipulse/internal/service"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
//
// Parameters:
//   - ctx (context.Context): A context with timeout for graceful shutdown.
//   - server (*http.Server): The HTTP server instance to shut down.
//   - cleanup (func()): Cleanup callback to release resources (e.g., the background refresh job).
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runFetch executes one fetch/normalize/aggregate run and renders the
// console report to w. When outPath is non-empty the summaries are
// also exported as JSON.
//
// Parameters:
//   - ctx (context.Context): Context for the upstream fetch.
//   - svc (service.SummaryService): The summary pipeline.
//   - loc (provider.Location): Coordinates to fetch.
//   - days (int): Observation window in days.
//   - w (io.Writer): Report destination (stdout in normal runs).
//   - outPath (string): Optional JSON export path; empty disables the export.
//
// Returns:
//   - error: the first pipeline, report, or export error.
func runFetch(ctx context.Context, svc service.SummaryService, loc provider.Location, days int, w io.Writer, outPath string) error {
	summaries, stats, err := svc.Overview(ctx, loc, days)
	if err != nil {
		return err
	}

	if err := report.Write(w, summaries, stats); err != nil {
		return err
	}

	if outPath != "" {
		if err := export.WriteJSON(outPath, summaries); err != nil {
			return err
		}
		logger.L().Info().Str("path", outPath).Msg("data saved")
	}
	return nil
}

// main is the entry point of the aqipulse application.
//
// Modes (selected via --mode flag):
//   - fetch: Fetches the observation window once and prints the daily summary report.
//   - api:   Starts the REST API exposing summaries, statistics, and classification.
//
// Flags:
//   - --mode: Execution mode ("fetch" or "api"). Default: "fetch".
//   - --lat:  Latitude to fetch. Defaults to value from config (HOME_LAT).
//   - --lon:  Longitude to fetch. Defaults to value from config (HOME_LON).
//   - --days: Observation window in days (1-30). Defaults to value from config (DEFAULT_DAYS).
//   - --out:  Optional path for a JSON export of the summaries.
//   - --port: Port for the API server. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	// Parse CLI flags (override config defaults if provided)
	mode := flag.String("mode", "fetch", "Mode: fetch or api")
	lat := flag.Float64("lat", config.AppConfig.Refresh.Lat, "Latitude of the location to fetch")
	lon := flag.Float64("lon", config.AppConfig.Refresh.Lon, "Longitude of the location to fetch")
	days := flag.Int("days", config.AppConfig.Refresh.Days, "Observation window in days (1-30)")
	out := flag.String("out", "", "Optional path for a JSON export of the summaries")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	switch *mode {
	case "fetch":
		// Fetch mode: one pipeline run, report to stdout
		if *days < 1 {
			*days = 1
		}
		if *days > 30 {
			*days = 30
		}
		logger.L().Info().
			Float64("lat", *lat).
			Float64("lon", *lon).
			Int("days", *days).
			Msg("fetching air quality history")

		// Direct provider wiring for a one-shot run
		client := &http.Client{Timeout: config.AppConfig.Provider.Timeout}
		source := provider.NewOpenWeatherProvider(client, config.AppConfig.Provider.APIKey, config.AppConfig.Provider.BaseURL)
		svc := service.NewSummaryService(source)

		loc := provider.Location{Lat: *lat, Lon: *lon}
		if err := runFetch(ctx, svc, loc, *days, os.Stdout, *out); err != nil {
			logger.L().Fatal().Err(err).Msg("fetch failed")
		}

	case "api":
		// API mode: start the HTTP server
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}
