package model

import "time"

// DefaultRosterName is used when no roster has been saved or the name is blank
const DefaultRosterName = "I-29 Cup"

// Roster records which players are in the event.
// IncludedIDs may reference players that have since been removed from the
// registry; those are simply not shown.
type Roster struct {
	Name        string     `json:"name"`
	IncludedIDs []PlayerID `json:"includedIds"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// SortKey selects the ordering of the roster table
type SortKey string

const (
	SortNameAsc  SortKey = "name-asc"
	SortIndexAsc SortKey = "hi-asc"
	SortIndexDsc SortKey = "hi-desc"
)

// ParseSortKey converts user input into a SortKey, defaulting to name order
func ParseSortKey(s string) (SortKey, error) {
	switch SortKey(s) {
	case "":
		return SortNameAsc, nil
	case SortNameAsc, SortIndexAsc, SortIndexDsc:
		return SortKey(s), nil
	}
	return "", ErrInvalidSortKey
}
