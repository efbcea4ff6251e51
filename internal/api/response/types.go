package response

import (
	"time"

	"github.com/samber/lo"

	"github.com/mcoot/golfcup/internal/model"
	"github.com/mcoot/golfcup/internal/services/balance"
)

// Player represents a player in API responses
type Player struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Index        float64 `json:"index"`
	DisplayIndex string  `json:"displayIndex"`
	Team         string  `json:"team"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p model.Player) Player {
	return Player{
		ID:           string(p.ID),
		Name:         p.Name,
		Index:        p.Index,
		DisplayIndex: p.DisplayIndex(),
		Team:         string(p.Team),
	}
}

// PlayersFromModel converts a slice of players, never returning nil
func PlayersFromModel(players []model.Player) []Player {
	return lo.Map(players, func(p model.Player, _ int) Player { return PlayerFromModel(p) })
}

// PlayerList is the response for listing and searching players
type PlayerList struct {
	Players []Player `json:"players"`
}

// RosterEntry is a registry player with their inclusion flag
type RosterEntry struct {
	Player
	Included bool `json:"included"`
}

// Roster represents the roster table
type Roster struct {
	Name        string        `json:"name"`
	IncludedIDs []string      `json:"includedIds"`
	SavedAt     *time.Time    `json:"savedAt"`
	Sort        string        `json:"sort"`
	Players     []RosterEntry `json:"players"`
	TeamA       []Player      `json:"teamA"`
	TeamB       []Player      `json:"teamB"`
}

// SavedRoster is the response after saving the roster
type SavedRoster struct {
	Name        string    `json:"name"`
	IncludedIDs []string  `json:"includedIds"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SavedRosterFromModel converts model.Roster
func SavedRosterFromModel(r model.Roster) SavedRoster {
	return SavedRoster{
		Name:        r.Name,
		IncludedIDs: IDStrings(r.IncludedIDs),
		CreatedAt:   r.CreatedAt,
	}
}

// Toggle is the response after toggling a player's inclusion
type Toggle struct {
	PlayerID string `json:"playerId"`
	Included bool   `json:"included"`
}

// Balance is the response after balancing teams
type Balance struct {
	TeamA      []Player `json:"teamA"`
	TeamB      []Player `json:"teamB"`
	TeamAIndex float64  `json:"teamAIndex"`
	TeamBIndex float64  `json:"teamBIndex"`
}

// BalanceFromSplit converts a balance.Split
func BalanceFromSplit(split balance.Split) Balance {
	return Balance{
		TeamA:      PlayersFromModel(split.TeamA),
		TeamB:      PlayersFromModel(split.TeamB),
		TeamAIndex: balance.TotalIndex(split.TeamA),
		TeamBIndex: balance.TotalIndex(split.TeamB),
	}
}

// Round describes one round of the event
type Round struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Formats []string `json:"formats"`
	Points  float64  `json:"points"`
	Slots   int      `json:"slots"`
	Fields  []string `json:"fields"`
}

// RoundFromModel converts a model.Round and its slot layout
func RoundFromModel(r model.Round, shape model.Shape) Round {
	return Round{
		ID:      r.ID,
		Name:    r.Name,
		Formats: lo.Map(r.Formats, func(f model.Format, _ int) string { return string(f) }),
		Points:  r.Points,
		Slots:   shape.Slots,
		Fields:  lo.Map(shape.Fields, func(f model.SlotField, _ int) string { return string(f) }),
	}
}

// RoundList is the response for listing rounds
type RoundList struct {
	Rounds []Round `json:"rounds"`
}

// Selection is one filled or empty field of a pairing slot.
// Dangling is set when the selected player no longer exists.
type Selection struct {
	PlayerID string `json:"playerId"`
	Name     string `json:"name,omitempty"`
	Team     string `json:"team,omitempty"`
	Dangling bool   `json:"dangling,omitempty"`
}

// Options are the players offered for each column of a round
type Options struct {
	A []Player `json:"A"`
	B []Player `json:"B"`
}

// Pairings is the response for a round's pairing page
type Pairings struct {
	Round            Round                  `json:"round"`
	Slots            []map[string]Selection `json:"slots"`
	DuplicateWarning bool                   `json:"duplicateWarning"`
	DuplicateIDs     []string               `json:"duplicateIds"`
	Options          Options                `json:"options"`
}

// IDStrings converts player IDs for output, never returning nil
func IDStrings(ids []model.PlayerID) []string {
	return lo.Map(ids, func(id model.PlayerID, _ int) string { return string(id) })
}
