package ids

import (
	"github.com/google/uuid"

	"github.com/mcoot/golfcup/internal/model"
)

// Generator produces fresh identifiers and can be mocked for testing
type Generator interface {
	// NewPlayerID returns an identifier not previously handed out
	NewPlayerID() model.PlayerID
}

// UUIDGenerator implements Generator with random (v4) UUIDs
type UUIDGenerator struct{}

// New creates a new UUIDGenerator
func New() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewPlayerID returns a random UUID string
func (g *UUIDGenerator) NewPlayerID() model.PlayerID {
	return model.PlayerID(uuid.NewString())
}
