package factory

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/mcoot/golfcup/internal/dependencies/clock"
	"github.com/mcoot/golfcup/internal/dependencies/ids"
	"github.com/mcoot/golfcup/internal/model"
	"github.com/mcoot/golfcup/internal/services/pairing"
	"github.com/mcoot/golfcup/internal/services/registry"
	"github.com/mcoot/golfcup/internal/services/roster"
	"github.com/mcoot/golfcup/internal/storage"
	"github.com/mcoot/golfcup/internal/storage/memory"
	redisstorage "github.com/mcoot/golfcup/internal/storage/redis"
	"github.com/mcoot/golfcup/internal/storage/sqlite"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
	StorageTypeSQLite = "sqlite"
)

// App contains all wired application components
type App struct {
	// Storage
	Store storage.Store

	// External dependencies
	Clock clock.Clock
	IDs   ids.Generator

	// Services
	Registry *registry.Registry
	Roster   *roster.Selector
	Pairings *pairing.Service

	Schedule []model.Round
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory", "redis" or "sqlite")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// SQLitePath is the database file (required if StorageType is "sqlite")
	SQLitePath string
	// Schedule overrides the event rounds (optional)
	// If nil, model.DefaultSchedule() is used
	Schedule []model.Round
}

// New creates a new application with all dependencies wired.
// The persisted players and roster are loaded before it returns.
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	store, err := newStore(cfg)
	if err != nil {
		return nil, err
	}

	schedule := cfg.Schedule
	if schedule == nil {
		schedule = model.DefaultSchedule()
	}

	return newWithDependencies(ctx, store, clock.New(), ids.New(), schedule, logger), nil
}

func newStore(cfg Config) (storage.Store, error) {
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		return memory.New(), nil
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		return redisstorage.New(*cfg.RedisConfig)
	case StorageTypeSQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("SQLitePath required when StorageType is sqlite")
		}
		return sqlite.Open(cfg.SQLitePath)
	default:
		return nil, errors.New("invalid StorageType: must be 'memory', 'redis' or 'sqlite'")
	}
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(ctx context.Context, store storage.Store, clk clock.Clock, idGen ids.Generator, schedule []model.Round, logger *slog.Logger) *App {
	reg := registry.New(ctx, store, idGen, logger)
	selector := roster.New(ctx, store, reg, clk, logger)
	pairings := pairing.New(store, reg, schedule, logger)

	return &App{
		Store:    store,
		Clock:    clk,
		IDs:      idGen,
		Registry: reg,
		Roster:   selector,
		Pairings: pairings,
		Schedule: schedule,
	}
}

// Close releases the storage backend if it holds connections
func (a *App) Close() error {
	if closer, ok := a.Store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
