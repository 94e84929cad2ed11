package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config holds all configuration options for the time tracker client
type Config struct {
	Backend     BackendConfig
	Storage     StorageConfig
	Validation  ValidationConfig
	Display     DisplayConfig
	Tracking    TrackingConfig
	Application ApplicationConfig
}

// BackendConfig holds backend API configuration
type BackendConfig struct {
	BaseURL        string        `env:"TTC_BACKEND_URL"`
	RequestTimeout time.Duration `env:"TTC_BACKEND_TIMEOUT"`
}

// StorageConfig holds local session storage configuration
type StorageConfig struct {
	Dir            string `env:"TTC_STORAGE_DIR"`
	Filename       string `env:"TTC_STORAGE_FILENAME"`
	KeyPrefix      string `env:"TTC_STORAGE_KEY_PREFIX"`
	DirPermissions uint32 `env:"TTC_STORAGE_DIR_PERMISSIONS"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	ProjectNameMinLength int `env:"TTC_VALIDATION_PROJECT_NAME_MIN"`
	ProjectNameMaxLength int `env:"TTC_VALIDATION_PROJECT_NAME_MAX"`
	PasswordMinLength    int `env:"TTC_VALIDATION_PASSWORD_MIN"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TimeFormat string `env:"TTC_DISPLAY_TIME_FORMAT"`
	DateFormat string `env:"TTC_DISPLAY_DATE_FORMAT"`
}

// TrackingConfig holds stopwatch configuration
type TrackingConfig struct {
	TickInterval time.Duration `env:"TTC_TRACKING_TICK_INTERVAL"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `env:"TTC_APP_TIMEOUT"`
	Verbose bool          `env:"TTC_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultStorageDir := filepath.Join(homeDir, ".ttc")

	return &Config{
		Backend: BackendConfig{
			BaseURL:        "http://localhost:8000",
			RequestTimeout: 10 * time.Second,
		},
		Storage: StorageConfig{
			Dir:            defaultStorageDir,
			Filename:       "ttc.db",
			KeyPrefix:      "timetracker_",
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			ProjectNameMinLength: 1,
			ProjectNameMaxLength: 255,
			PasswordMinLength:    8,
		},
		Display: DisplayConfig{
			TimeFormat: "15:04:05",
			DateFormat: "2006-01-02",
		},
		Tracking: TrackingConfig{
			TickInterval: 10 * time.Millisecond,
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
	}
}

// GetStoragePath returns the full path to the session database file
func (c *Config) GetStoragePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// GetRequestTimeout returns the backend request timeout
func (c *Config) GetRequestTimeout() time.Duration {
	return c.Backend.RequestTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Backend configuration
	if url := os.Getenv("TTC_BACKEND_URL"); url != "" {
		c.Backend.BaseURL = url
	}
	if timeout := os.Getenv("TTC_BACKEND_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Backend.RequestTimeout = d
		}
	}

	// Storage configuration
	if dir := os.Getenv("TTC_STORAGE_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("TTC_STORAGE_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if prefix := os.Getenv("TTC_STORAGE_KEY_PREFIX"); prefix != "" {
		c.Storage.KeyPrefix = prefix
	}
	if perms := os.Getenv("TTC_STORAGE_DIR_PERMISSIONS"); perms != "" {
		if p, err := strconv.ParseUint(perms, 8, 32); err == nil {
			c.Storage.DirPermissions = uint32(p)
		}
	}

	// Validation configuration
	if minLen := os.Getenv("TTC_VALIDATION_PROJECT_NAME_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.ProjectNameMinLength = n
		}
	}
	if maxLen := os.Getenv("TTC_VALIDATION_PROJECT_NAME_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.ProjectNameMaxLength = n
		}
	}
	if minLen := os.Getenv("TTC_VALIDATION_PASSWORD_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.PasswordMinLength = n
		}
	}

	// Display configuration
	if format := os.Getenv("TTC_DISPLAY_TIME_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}
	if format := os.Getenv("TTC_DISPLAY_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}

	// Tracking configuration
	if interval := os.Getenv("TTC_TRACKING_TICK_INTERVAL"); interval != "" {
		if d, err := time.ParseDuration(interval); err == nil {
			c.Tracking.TickInterval = d
		}
	}

	// Application configuration
	if timeout := os.Getenv("TTC_APP_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil {
			c.Application.Timeout = d
		}
	}
	if verbose := os.Getenv("TTC_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate backend configuration
	if c.Backend.BaseURL == "" {
		return &ConfigError{Field: "backend.base_url", Message: "backend base URL cannot be empty"}
	}
	if c.Backend.RequestTimeout <= 0 {
		return &ConfigError{Field: "backend.request_timeout", Message: "request timeout must be positive"}
	}

	// Validate storage configuration
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "storage filename cannot be empty"}
	}

	// Validate validation configuration
	if c.Validation.ProjectNameMinLength < 1 {
		return &ConfigError{Field: "validation.project_name_min_length", Message: "project name minimum length must be at least 1"}
	}
	if c.Validation.ProjectNameMaxLength < c.Validation.ProjectNameMinLength {
		return &ConfigError{Field: "validation.project_name_max_length", Message: "project name maximum length must be greater than minimum length"}
	}
	if c.Validation.PasswordMinLength < 1 {
		return &ConfigError{Field: "validation.password_min_length", Message: "password minimum length must be at least 1"}
	}

	// Validate display configuration
	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}
	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}

	// Validate tracking configuration
	if c.Tracking.TickInterval <= 0 {
		return &ConfigError{Field: "tracking.tick_interval", Message: "tick interval must be positive"}
	}

	// Validate application configuration
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
