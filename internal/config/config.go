package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration
type Config struct {
	// Google Sheets destination
	SheetID         string `envconfig:"SHEET_ID" required:"true"`
	CredentialsFile string `envconfig:"GOOGLE_SHEET_CREDENTIALS" required:"true"`
	SheetTab        string `envconfig:"SHEET_TAB" default:"nrsi_confidence"`

	// MLB Stats API
	StatsAPIBaseURL string        `envconfig:"STATSAPI_BASE_URL" default:"https://statsapi.mlb.com/api/v1"`
	StatsAPITimeout time.Duration `envconfig:"STATSAPI_TIMEOUT" default:"30s"`

	// Season under sync
	Season int `envconfig:"SEASON" default:"2025"`

	// Stats retrieval
	StatsRetries int           `envconfig:"STATS_RETRIES" default:"3"`
	StatsBackoff time.Duration `envconfig:"STATS_BACKOFF" default:"2s"`

	// Pause between games, the manual rate-limit ceiling
	GamePause time.Duration `envconfig:"GAME_PAUSE" default:"500ms"`

	// Application
	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Monitoring
	EnableMetrics bool `envconfig:"ENABLE_METRICS" default:"false"`
	MetricsPort   int  `envconfig:"METRICS_PORT" default:"9090"`
}

// Load loads configuration from environment variables
// It first attempts to load from .env file if present
func Load() (*Config, error) {
	// Try to load .env file (ignore error if doesn't exist)
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.SheetID == "" {
		return fmt.Errorf("SHEET_ID is required")
	}

	if c.CredentialsFile == "" {
		return fmt.Errorf("GOOGLE_SHEET_CREDENTIALS is required")
	}

	if c.StatsRetries < 1 {
		return fmt.Errorf("STATS_RETRIES must be at least 1")
	}

	if c.Season < 1900 {
		return fmt.Errorf("SEASON %d is not a plausible season year", c.Season)
	}

	return nil
}

// ClearRange returns the sheet range wiped before every write (A:W).
func (c *Config) ClearRange() string {
	return fmt.Sprintf("%s!A:W", c.SheetTab)
}

// WriteRange returns the anchor cell of the overwrite.
func (c *Config) WriteRange() string {
	return fmt.Sprintf("%s!A1", c.SheetTab)
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// MustLoad loads configuration or exits on error
// Use this in main() where we want to fail fast
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
