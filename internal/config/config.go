package config

import (
	"os"
	"strconv"

	"provnet/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Analysis AnalysisConfig
	Export   ExportConfig
	Roster   RosterConfig
}

// DatabaseConfig holds the optional roster database settings. When URL is
// empty the application falls back to the synthetic roster generator.
type DatabaseConfig struct {
	URL     string
	SSLMode string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	OpsPort string
	GinMode string
}

// AnalysisConfig holds the tunable engine thresholds
type AnalysisConfig struct {
	QualityThreshold float64
	CostThreshold    float64
	SafeCutoff       float64
	WarningCutoff    float64
	AdditionCost     float64
	QualityValue     float64
}

// ExportConfig holds workbook export settings
type ExportConfig struct {
	Dir string
}

// RosterConfig controls the synthetic roster used when no database is wired
type RosterConfig struct {
	Size int
	Seed int64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database: DatabaseConfig{
			URL:     getEnvOrDefault("DATABASE_URL", ""),
			SSLMode: getEnvOrDefault("SSL_MODE", "disable"),
		},
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			OpsPort: getEnvOrDefault("OPS_PORT", "9090"),
			GinMode: getEnvOrDefault("GIN_MODE", "debug"),
		},
		Analysis: AnalysisConfig{
			QualityThreshold: getEnvFloatOrDefault("QUALITY_THRESHOLD", 4.0),
			CostThreshold:    getEnvFloatOrDefault("COST_THRESHOLD", 600),
			SafeCutoff:       getEnvFloatOrDefault("ADEQUACY_SAFE_CUTOFF", 80),
			WarningCutoff:    getEnvFloatOrDefault("ADEQUACY_WARNING_CUTOFF", 60),
			AdditionCost:     getEnvFloatOrDefault("ADDITION_COST", 50000),
			QualityValue:     getEnvFloatOrDefault("QUALITY_VALUE", 25000),
		},
		Export: ExportConfig{
			Dir: getEnvOrDefault("EXPORT_DIR", "./exports"),
		},
		Roster: RosterConfig{
			Size: getEnvIntOrDefault("ROSTER_SIZE", 50),
			Seed: int64(getEnvIntOrDefault("ROSTER_SEED", 42)),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Analysis.QualityThreshold < 0 {
		return errors.ConfigInvalid("quality threshold must be non-negative")
	}
	if config.Analysis.CostThreshold <= 0 {
		return errors.ConfigInvalid("cost threshold must be positive")
	}
	if config.Analysis.SafeCutoff <= config.Analysis.WarningCutoff {
		return errors.ConfigInvalid("safe cutoff must exceed warning cutoff")
	}
	if config.Roster.Size <= 0 {
		return errors.ConfigInvalid("roster size must be positive")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
