package storage

import "fmt"

// Key prefix shared by every persisted aggregate
const keyPrefix = "upgcs"

// PlayersKey returns the key holding the ordered player list
func PlayersKey() string {
	return fmt.Sprintf("%s.players", keyPrefix)
}

// RosterKey returns the key holding the single active roster
func RosterKey() string {
	return fmt.Sprintf("%s.roster.v1", keyPrefix)
}

// PairingsKey returns the key holding a round's pairing slots, given the
// round's storage key (see model.Round.Key)
func PairingsKey(roundKey string) string {
	return fmt.Sprintf("%s.pairings.%s", keyPrefix, roundKey)
}
