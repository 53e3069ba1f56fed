package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "RECIPEBOX"

// Config holds configuration for a recipebox database and its services.
type Config struct {
	// DBPath is the directory holding the database.
	// Default: ~/.recipebox
	DBPath string `envconfig:"DB_PATH"`

	// InMemory keeps the database in memory; DBPath is ignored.
	InMemory bool `envconfig:"IN_MEMORY"`

	// LogLevel is one of debug, info, warn, error.
	// Default: info
	LogLevel string `envconfig:"LOG_LEVEL"`

	// YouTubeAPIKey enables video metadata lookups. Without it lookups
	// return placeholders.
	YouTubeAPIKey string `envconfig:"YOUTUBE_API_KEY"`

	// YouTubeBaseURL is the YouTube Data API host.
	// Default: https://www.googleapis.com
	YouTubeBaseURL string `envconfig:"YOUTUBE_BASE_URL"`

	// LookupTimeout bounds a single metadata request.
	// Default: 10s
	LookupTimeout time.Duration `envconfig:"LOOKUP_TIMEOUT"`

	// LookupRetries is how many attempts a metadata request makes.
	// Default: 3
	LookupRetries int `envconfig:"LOOKUP_RETRIES"`

	// LookupRetryDelay is the base backoff between attempts.
	// Default: 500ms
	LookupRetryDelay time.Duration `envconfig:"LOOKUP_RETRY_DELAY"`

	// LookupWorkers is the number of concurrent metadata lookups.
	// Default: runtime.NumCPU()
	LookupWorkers int `envconfig:"LOOKUP_WORKERS"`
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithDBPath sets the database directory.
func WithDBPath(path string) ConfigOption {
	return func(c *Config) {
		c.DBPath = path
	}
}

// WithInMemory keeps the database in memory.
func WithInMemory(inMemory bool) ConfigOption {
	return func(c *Config) {
		c.InMemory = inMemory
	}
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) ConfigOption {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// WithYouTubeAPIKey sets the YouTube Data API key.
func WithYouTubeAPIKey(key string) ConfigOption {
	return func(c *Config) {
		c.YouTubeAPIKey = key
	}
}

// WithYouTubeBaseURL sets the YouTube Data API host.
func WithYouTubeBaseURL(url string) ConfigOption {
	return func(c *Config) {
		c.YouTubeBaseURL = url
	}
}

// WithLookupTimeout sets the per-request timeout of metadata lookups.
func WithLookupTimeout(timeout time.Duration) ConfigOption {
	return func(c *Config) {
		c.LookupTimeout = timeout
	}
}

// WithLookupRetries sets the attempts and base backoff of metadata lookups.
func WithLookupRetries(attempts int, delay time.Duration) ConfigOption {
	return func(c *Config) {
		c.LookupRetries = attempts
		c.LookupRetryDelay = delay
	}
}

// WithLookupWorkers sets the number of concurrent metadata lookups.
func WithLookupWorkers(workers int) ConfigOption {
	return func(c *Config) {
		c.LookupWorkers = workers
	}
}

// DefaultDBPath returns ~/.recipebox, or .recipebox when no home directory is known.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".recipebox"
	}
	return filepath.Join(home, ".recipebox")
}

// DefaultConfig returns a Config with sensible defaults for a local database.
func DefaultConfig() *Config {
	return &Config{
		DBPath:           DefaultDBPath(),
		LogLevel:         "info",
		YouTubeBaseURL:   "https://www.googleapis.com",
		LookupTimeout:    10 * time.Second,
		LookupRetries:    3,
		LookupRetryDelay: 500 * time.Millisecond,
		LookupWorkers:    max(runtime.NumCPU(), 1),
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Load builds a Config from the defaults, the RECIPEBOX_* environment and opts,
// in that order, and validates it.
func Load(opts ...ConfigOption) (*Config, error) {
	cfg := DefaultConfig()
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Normalize ensures the configuration is in a canonical form.
// It expands a leading ~ in DBPath, lowercases LogLevel and strips trailing
// slashes from YouTubeBaseURL.
func (c *Config) Normalize() {
	if c.DBPath == "~" || strings.HasPrefix(c.DBPath, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			c.DBPath = filepath.Join(home, strings.TrimPrefix(c.DBPath, "~"))
		}
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "warning" {
		c.LogLevel = "warn"
	}
	c.YouTubeBaseURL = strings.TrimRight(c.YouTubeBaseURL, "/")
}

// Validate checks that the configuration is valid and complete.
// It automatically normalizes the configuration before validation.
func (c *Config) Validate() error {
	c.Normalize()

	if !c.InMemory && c.DBPath == "" {
		return errors.New("config: DBPath is required unless InMemory is set")
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	if c.YouTubeBaseURL == "" {
		return errors.New("config: YouTubeBaseURL is required")
	}
	if c.LookupTimeout <= 0 {
		return errors.New("config: LookupTimeout must be positive")
	}
	if c.LookupRetries < 1 {
		return errors.New("config: LookupRetries must be at least 1")
	}
	if c.LookupRetryDelay < 0 {
		return errors.New("config: LookupRetryDelay cannot be negative")
	}
	if c.LookupWorkers < 1 {
		return errors.New("config: LookupWorkers must be at least 1")
	}
	return nil
}

// SlogLevel returns LogLevel as a slog.Level, defaulting to info when invalid.
func (c *Config) SlogLevel() slog.Level {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLogLevel converts debug, info, warn or error to a slog.Level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("config: invalid log level %q", level)
}
