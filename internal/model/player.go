package model

import (
	"math"
	"strconv"
)

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Team is the side a player plays for in the Cup
type Team string

const (
	TeamA          Team = "A"
	TeamB          Team = "B"
	TeamUnassigned Team = "NA" // Not yet placed on either side
)

// Teams lists every valid team value in display order
var Teams = []Team{TeamA, TeamB, TeamUnassigned}

// Valid reports whether t is one of the enumerated team values
func (t Team) Valid() bool {
	switch t {
	case TeamA, TeamB, TeamUnassigned:
		return true
	}
	return false
}

// ParseTeam converts user input into a Team
func ParseTeam(s string) (Team, error) {
	t := Team(s)
	if !t.Valid() {
		return "", ErrInvalidTeam
	}
	return t, nil
}

// Player represents a golfer in the event
type Player struct {
	ID    PlayerID `json:"id" validate:"required"`
	Name  string   `json:"name" validate:"required"`
	Index float64  `json:"index"` // Handicap index, lower is stronger
	Team  Team     `json:"team" validate:"oneof=A B NA"`
}

// DisplayIndex renders the handicap index with one decimal place
func (p Player) DisplayIndex() string {
	return strconv.FormatFloat(p.Index, 'f', 1, 64)
}

// ValidIndex reports whether a handicap index is a usable number
func ValidIndex(index float64) bool {
	return !math.IsNaN(index) && !math.IsInf(index, 0)
}
