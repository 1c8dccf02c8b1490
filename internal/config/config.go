package config

import (
	"fmt"

	"github.com/spf13/viper"
	"github.com/username/planning-board/internal/planning"
)

// Config represents application configuration
type Config struct {
	Planning PlanningConfig `mapstructure:"planning"`
	Calendar CalendarConfig `mapstructure:"calendar"`
	Log      LogConfig      `mapstructure:"log"`
}

// PlanningConfig represents the planning board configuration
type PlanningConfig struct {
	StoreFile          string   `mapstructure:"store_file"`
	Applications       []string `mapstructure:"applications"`
	DefaultEnvironment string   `mapstructure:"default_environment"`
}

// CalendarConfig represents the holiday calendar configuration
type CalendarConfig struct {
	Country           string `mapstructure:"country"`
	ExtraHolidaysFile string `mapstructure:"extra_holidays_file"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Load loads configuration from file. Without an explicit path, the
// usual search locations are tried and a missing file falls back to
// defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("planning.store_file", "planning.json")
	v.SetDefault("planning.default_environment", "PROD")
	v.SetDefault("calendar.country", "FR")
	v.SetDefault("log.level", "info")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.planning-board")
		v.AddConfigPath("/etc/planning-board")
	}

	// Read environment variables
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound || configPath != "" {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// No config file found in the search path: defaults apply
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Planning.StoreFile == "" {
		return fmt.Errorf("planning.store_file is required")
	}

	if _, err := planning.ParseEnvironment(c.Planning.DefaultEnvironment); err != nil {
		return fmt.Errorf("planning.default_environment: %w", err)
	}

	// Only the French national calendar is built in
	if c.Calendar.Country != "FR" {
		return fmt.Errorf("calendar.country must be 'FR', got '%s'", c.Calendar.Country)
	}

	return nil
}
