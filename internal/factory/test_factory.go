package factory

import (
	"context"
	"time"

	"github.com/mcoot/golfcup/internal/dependencies/mocks"
	"github.com/mcoot/golfcup/internal/model"
	"github.com/mcoot/golfcup/internal/storage/memory"
	"github.com/mcoot/golfcup/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
	MockIDs   *mocks.MockIDs
	Memory    *memory.Storage
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockIDs := mocks.NewMockIDs()

	app := newWithDependencies(context.Background(), store, mockClock, mockIDs, model.DefaultSchedule(), testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
		MockIDs:   mockIDs,
		Memory:    store,
	}
}

// Restart wires a fresh App over the same store, as a new process would
func (t *TestApp) Restart() *TestApp {
	app := newWithDependencies(context.Background(), t.Memory, t.MockClock, t.MockIDs, t.Schedule, testutil.NopLogger())
	return &TestApp{
		App:       app,
		MockClock: t.MockClock,
		MockIDs:   t.MockIDs,
		Memory:    t.Memory,
	}
}

// AddPlayers registers players named after their handicap index
func (t *TestApp) AddPlayers(ctx context.Context, indexes ...float64) ([]model.Player, error) {
	players := make([]model.Player, 0, len(indexes))
	for _, index := range indexes {
		p, err := t.Registry.Add(ctx, model.Player{Index: index}.DisplayIndex(), index, model.TeamUnassigned)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, nil
}
