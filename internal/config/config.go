package config

import (
	"os"
	"strconv"
	"time"

	"oceanquery/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Analysis      AnalysisConfig
	Visualization VisualizationConfig
	Source        SourceConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// DatabaseConfig holds database connection settings. An empty URL disables
// persistence; the service runs with the query log turned off.
type DatabaseConfig struct {
	URL string
}

// AnalysisConfig holds the analysis policy thresholds
type AnalysisConfig struct {
	AnomalyZScore   float64
	TrendConfidence float64
}

// VisualizationConfig holds visualization payload bounds
type VisualizationConfig struct {
	MapMarkerLimit int
}

// SourceConfig holds data-source settings
type SourceConfig struct {
	// FetchTimeout bounds the single suspension point of the pipeline.
	FetchTimeout time.Duration
	// Seed makes the mock source deterministic when non-zero.
	Seed int64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port: getenvDefault("PORT", "8000"),
		},
		Database: DatabaseConfig{
			URL: os.Getenv("DATABASE_URL"),
		},
		Analysis: AnalysisConfig{
			AnomalyZScore:   getenvFloat("ANOMALY_ZSCORE_THRESHOLD", 2.0),
			TrendConfidence: getenvFloat("TREND_CONFIDENCE_THRESHOLD", 0.1),
		},
		Visualization: VisualizationConfig{
			MapMarkerLimit: getenvInt("MAP_MARKER_LIMIT", 10),
		},
		Source: SourceConfig{
			FetchTimeout: getenvDuration("FETCH_TIMEOUT", 10*time.Second),
			Seed:         int64(getenvInt("MOCK_SOURCE_SEED", 0)),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Analysis.AnomalyZScore <= 0 {
		return errors.ConfigInvalid("ANOMALY_ZSCORE_THRESHOLD must be positive")
	}
	if cfg.Analysis.TrendConfidence <= 0 {
		return errors.ConfigInvalid("TREND_CONFIDENCE_THRESHOLD must be positive")
	}
	if cfg.Visualization.MapMarkerLimit < 0 {
		return errors.ConfigInvalid("MAP_MARKER_LIMIT must not be negative")
	}
	if cfg.Source.FetchTimeout <= 0 {
		return errors.ConfigInvalid("FETCH_TIMEOUT must be positive")
	}
	return nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
