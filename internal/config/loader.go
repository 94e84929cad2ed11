package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config *Config
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config: NewConfig(),
	}
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Merge a .env file into the environment, if one exists
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra)
func (l *Loader) Load() (*Config, error) {
	// A missing .env file is not an error; godotenv never overrides
	// variables already present in the environment.
	_ = godotenv.Load()

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Backend overrides
	BackendURL     *string
	RequestTimeout *time.Duration

	// Storage overrides
	StorageDir      *string
	StorageFilename *string

	// Display overrides
	TimeFormat *string
	DateFormat *string

	// Tracking overrides
	TickInterval *time.Duration

	// Application overrides
	Timeout *time.Duration
	Verbose *bool
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	// Backend overrides
	if overrides.BackendURL != nil {
		config.Backend.BaseURL = *overrides.BackendURL
	}
	if overrides.RequestTimeout != nil {
		config.Backend.RequestTimeout = *overrides.RequestTimeout
	}

	// Storage overrides
	if overrides.StorageDir != nil {
		config.Storage.Dir = *overrides.StorageDir
	}
	if overrides.StorageFilename != nil {
		config.Storage.Filename = *overrides.StorageFilename
	}

	// Display overrides
	if overrides.TimeFormat != nil {
		config.Display.TimeFormat = *overrides.TimeFormat
	}
	if overrides.DateFormat != nil {
		config.Display.DateFormat = *overrides.DateFormat
	}

	// Tracking overrides
	if overrides.TickInterval != nil {
		config.Tracking.TickInterval = *overrides.TickInterval
	}

	// Application overrides
	if overrides.Timeout != nil {
		config.Application.Timeout = *overrides.Timeout
	}
	if overrides.Verbose != nil {
		config.Application.Verbose = *overrides.Verbose
	}
}
