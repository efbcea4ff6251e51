package mocks

import (
	"fmt"

	"github.com/mcoot/golfcup/internal/dependencies/ids"
	"github.com/mcoot/golfcup/internal/model"
)

// MockIDs is a mock implementation of ids.Generator for testing
type MockIDs struct {
	// Queued is a queue of IDs to return from NewPlayerID
	Queued []model.PlayerID
	index  int
	issued int
}

// Ensure MockIDs implements Generator
var _ ids.Generator = (*MockIDs)(nil)

// NewMockIDs creates a new MockIDs
func NewMockIDs() *MockIDs {
	return &MockIDs{}
}

// NewPlayerID returns the next queued ID, or "player-N" once the queue is drained
func (m *MockIDs) NewPlayerID() model.PlayerID {
	m.issued++
	if m.index < len(m.Queued) {
		id := m.Queued[m.index]
		m.index++
		return id
	}
	return model.PlayerID(fmt.Sprintf("player-%d", m.issued))
}

// Queue adds IDs to the result queue
func (m *MockIDs) Queue(values ...model.PlayerID) {
	m.Queued = append(m.Queued, values...)
}

// Reset clears all queued results
func (m *MockIDs) Reset() {
	m.Queued = nil
	m.index = 0
	m.issued = 0
}
