package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name
const Prefix = "GOLFCUP"

// Config holds server configuration read from GOLFCUP_* variables
type Config struct {
	Host     string `envconfig:"HOST"`
	Port     int    `envconfig:"PORT" default:"8080"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	ReadTimeout     time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"WRITE_TIMEOUT" default:"15s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"30s"`

	StorageType string `envconfig:"STORAGE_TYPE" default:"memory"`
	RedisURL    string `envconfig:"REDIS_URL"`
	SQLitePath  string `envconfig:"SQLITE_PATH" default:"golfcup.db"`
}

// Load reads configuration from the environment, first merging any .env
// files given (or ./.env when none are). Missing .env files are ignored;
// variables already set in the environment win.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	var c Config
	if err := envconfig.Process(Prefix, &c); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks values envconfig cannot
func (c *Config) Validate() error {
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.StorageType {
	case "memory", "sqlite":
	case "redis":
		if c.RedisURL == "" {
			return errors.New("GOLFCUP_REDIS_URL required when GOLFCUP_STORAGE_TYPE=redis")
		}
	default:
		return fmt.Errorf("invalid GOLFCUP_STORAGE_TYPE %q: must be memory, redis or sqlite", c.StorageType)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid GOLFCUP_PORT %d", c.Port)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("invalid GOLFCUP_SHUTDOWN_TIMEOUT %s", c.ShutdownTimeout)
	}
	return nil
}

// Level parses the configured log level
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("invalid GOLFCUP_LOG_LEVEL %q: %w", c.LogLevel, err)
	}
	return level, nil
}
