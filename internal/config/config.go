package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	Flight  FlightConfig
	Scoring ScoringConfig
	Weather WeatherConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// FlightConfig holds the simplified flight-performance model parameters
type FlightConfig struct {
	CruiseSpeedKmh   float64 // typical jet cruise speed
	CruiseAltitudeM  float64 // 35,000 ft
	ClimbRateMs      float64
	DescentRateMs    float64
	GroundOpsHours   float64 // taxi, takeoff and landing allowance
	RouteSampleCount int     // trajectory samples per flight
}

// ScoringConfig holds the sun-viewing scoring heuristics. The values are
// empirically chosen; they are kept configurable rather than re-derived.
type ScoringConfig struct {
	OptimalAltitudeDeg float64 // sun altitude with the best view
	HalfWidthDeg       float64 // scoring window around the optimum
	DirectionalBonus   float64 // bonus for a matching altitude trend
	ProbeMinutes       int     // look-ahead/behind for imminent events
}

// WeatherConfig holds weather provider configuration
type WeatherConfig struct {
	Provider       string // weatherapi or openmeteo
	APIKey         string // WeatherAPI.com key; empty forces the fallback estimate
	TimeoutSeconds int
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.sunflight")

	// Set defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.ginmode", "release")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("flight.cruiseSpeedKmh", 860.0)
	viper.SetDefault("flight.cruiseAltitudeM", 10668.0)
	viper.SetDefault("flight.climbRateMs", 5.0)
	viper.SetDefault("flight.descentRateMs", 3.0)
	viper.SetDefault("flight.groundOpsHours", 0.5)
	viper.SetDefault("flight.routeSampleCount", 20)
	viper.SetDefault("scoring.optimalAltitudeDeg", 5.0)
	viper.SetDefault("scoring.halfWidthDeg", 10.0)
	viper.SetDefault("scoring.directionalBonus", 20.0)
	viper.SetDefault("scoring.probeMinutes", 30)
	viper.SetDefault("weather.provider", "weatherapi")
	viper.SetDefault("weather.apiKey", "")
	viper.SetDefault("weather.timeoutSeconds", 5)

	// Read from environment variables
	viper.SetEnvPrefix("SUNFLIGHT")
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
