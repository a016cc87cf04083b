// Package config loads rolefit configuration from defaults, rc files, the
// environment, and bound CLI flags, in that precedence order.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config represents the rolefit configuration.
type Config struct {
	Format      string        `mapstructure:"format"`
	Output      string        `mapstructure:"output"`
	Quiet       bool          `mapstructure:"quiet"`
	Verbose     bool          `mapstructure:"verbose"`
	TopN        int           `mapstructure:"topN"`
	WeeklyHours int           `mapstructure:"weeklyHours"`
	RawLevel    int           `mapstructure:"rawLevel"`
	Catalog     CatalogConfig `mapstructure:"catalog"`
	Weights     WeightsConfig `mapstructure:"weights"`
}

// CatalogConfig controls where catalog overlays are discovered.
type CatalogConfig struct {
	// Paths are doublestar glob patterns for overlay YAML files merged over
	// the embedded default catalog.
	Paths []string `mapstructure:"paths"`
}

// WeightsConfig tunes importance weighting for readiness scoring.
type WeightsConfig struct {
	Must       float64 `mapstructure:"must"`
	NiceToHave float64 `mapstructure:"niceToHave"`
}

// ConfigFiles are the rc file names probed in the working directory.
var ConfigFiles = []string{".rolefitrc.json", ".rolefitrc.yaml", ".rolefitrc.yml"}

// LoadConfig loads configuration from various sources.
func LoadConfig() (*Config, error) {
	// Set default values
	viper.SetDefault("format", "console")
	viper.SetDefault("quiet", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("topN", 5)
	viper.SetDefault("weeklyHours", 8)
	viper.SetDefault("rawLevel", 2)
	viper.SetDefault("weights.must", 1.0)
	viper.SetDefault("weights.niceToHave", 0.5)

	// Config file locations
	for _, path := range ConfigFiles {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err == nil {
			break
		}
	}

	// Environment variables
	viper.SetEnvPrefix("ROLEFIT")
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// validateConfig validates the configuration.
func validateConfig(config *Config) error {
	if config.Format != "console" && config.Format != "json" && config.Format != "markdown" {
		return fmt.Errorf("invalid format: %s. Must be 'console', 'json', or 'markdown'", config.Format)
	}

	if config.Format != "console" && config.Output == "" {
		return fmt.Errorf("output file is required when format is not 'console'")
	}

	if config.TopN < 1 {
		return fmt.Errorf("topN must be at least 1")
	}

	if config.WeeklyHours < 1 {
		return fmt.Errorf("weeklyHours must be at least 1")
	}

	if config.RawLevel < 0 || config.RawLevel > 3 {
		return fmt.Errorf("rawLevel must be between 0 and 3")
	}

	if config.Weights.Must <= 0 {
		return fmt.Errorf("weights.must must be positive")
	}
	if config.Weights.NiceToHave < 0 || config.Weights.NiceToHave > config.Weights.Must {
		return fmt.Errorf("weights.niceToHave must be between 0 and weights.must")
	}

	return nil
}
