package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from
// environment variables or a .env file.
//
// It is composed of smaller structs that represent different concerns
// of the system: the HTTP server, the upstream provider, and the
// background refresh of the home location.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	OPENWEATHER_API_KEY=abc123
//	OPENWEATHER_BASE_URL=http://api.openweathermap.org/data/2.5/air_pollution/history
//	HTTP_TIMEOUT=15s
//	HOME_LAT=12.9716
//	HOME_LON=77.5946
//	DEFAULT_DAYS=10
//	REFRESH_INTERVAL=1h
//	STORE_MAX_AGE=2h
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Provider ProviderConfig // Upstream air quality API settings
	Refresh  RefreshConfig  // Background refresh of the home location
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// ProviderConfig defines how to reach the air quality upstream.
//
// Fields:
//   - APIKey: OpenWeatherMap API key. May be empty at startup; fetches
//     fail until one is configured, and /readyz reports not ready.
//   - BaseURL: history endpoint, overridable for tests and proxies.
//   - Timeout: per-request HTTP timeout.
type ProviderConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// RefreshConfig drives the background refresh and the defaults applied
// to API queries that omit coordinates.
//
// Fields:
//   - Lat, Lon: the home location.
//   - Days: observation window in days (1..30).
//   - Interval: how often the cached summaries are recomputed.
//   - MaxAge: how old a cached entry may grow before it is ignored.
type RefreshConfig struct {
	Lat      float64
	Lon      float64
	Days     int
	Interval time.Duration
	MaxAge   time.Duration
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the
// application. All services should import this package and read from
// AppConfig instead of reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Fatal exit:
//   - If required variables are missing or out of range,
//     validateConfig() terminates the app with a descriptive message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("OPENWEATHER_API_KEY", "")
	viper.SetDefault("OPENWEATHER_BASE_URL", "http://api.openweathermap.org/data/2.5/air_pollution/history")
	viper.SetDefault("HTTP_TIMEOUT", "15s")

	viper.SetDefault("HOME_LAT", 12.9716)
	viper.SetDefault("HOME_LON", 77.5946)
	viper.SetDefault("DEFAULT_DAYS", 10)
	viper.SetDefault("REFRESH_INTERVAL", "1h")
	viper.SetDefault("STORE_MAX_AGE", "2h")

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Provider: ProviderConfig{
			APIKey:  viper.GetString("OPENWEATHER_API_KEY"),
			BaseURL: viper.GetString("OPENWEATHER_BASE_URL"),
			Timeout: viper.GetDuration("HTTP_TIMEOUT"),
		},
		Refresh: RefreshConfig{
			Lat:      viper.GetFloat64("HOME_LAT"),
			Lon:      viper.GetFloat64("HOME_LON"),
			Days:     viper.GetInt("DEFAULT_DAYS"),
			Interval: viper.GetDuration("REFRESH_INTERVAL"),
			MaxAge:   viper.GetDuration("STORE_MAX_AGE"),
		},
	}

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and sane, and
// terminates the application if they are not.
//
// Behavior:
//   - Checks each critical field of AppConfig.
//   - Collects the offending variables in a slice.
//   - If any are bad, logs them and terminates via log.Fatalf().
func validateConfig() {
	var bad []string

	if AppConfig.Server.Port == "" {
		bad = append(bad, "SERVER_PORT")
	}
	if AppConfig.Provider.BaseURL == "" {
		bad = append(bad, "OPENWEATHER_BASE_URL")
	}
	if AppConfig.Provider.Timeout <= 0 {
		bad = append(bad, "HTTP_TIMEOUT")
	}
	if AppConfig.Refresh.Lat < -90 || AppConfig.Refresh.Lat > 90 {
		bad = append(bad, "HOME_LAT")
	}
	if AppConfig.Refresh.Lon < -180 || AppConfig.Refresh.Lon > 180 {
		bad = append(bad, "HOME_LON")
	}
	if AppConfig.Refresh.Days < 1 || AppConfig.Refresh.Days > 30 {
		bad = append(bad, "DEFAULT_DAYS")
	}
	if AppConfig.Refresh.Interval <= 0 {
		bad = append(bad, "REFRESH_INTERVAL")
	}

	if len(bad) > 0 {
		log.Fatalf("❌ Missing or invalid environment variables: %v\n", bad)
	}
}
