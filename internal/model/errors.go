package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrInvalidName    = errors.New("player name must not be empty")
	ErrInvalidIndex   = errors.New("handicap index must be a finite number")
	ErrInvalidTeam    = errors.New("team must be one of A, B or NA")

	// Balancing errors
	ErrInsufficientPlayers = errors.New("at least 2 included players are required to balance teams")

	// Pairing errors
	ErrRoundNotFound     = errors.New("round not found")
	ErrUnsupportedFormat = errors.New("format has no pairing shape")
	ErrInvalidSlot       = errors.New("invalid slot index")
	ErrInvalidField      = errors.New("invalid slot field for this format")

	// Roster errors
	ErrInvalidSortKey = errors.New("invalid sort key")
)
