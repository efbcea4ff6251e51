package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mcoot/golfcup/internal/model"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrMalformed is returned when persisted data cannot be decoded into its entity type
var ErrMalformed = errors.New("malformed persisted data")

// storedPlayer is the loose shape players are read back in. Saves from
// older clients may carry a quoted index or a team outside A/B/NA.
type storedPlayer struct {
	ID    model.PlayerID `json:"id"`
	Name  string         `json:"name"`
	Index any            `json:"index"`
	Team  any            `json:"team"`
}

// DecodePlayers decodes the persisted player list.
// Unknown teams load as unassigned and unreadable indexes as 0. Entries
// without an ID, with a blank name, or repeating an earlier ID are dropped;
// a payload that is not a JSON array is rejected as a whole.
func DecodePlayers(data []byte) ([]model.Player, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: players: %v", ErrMalformed, err)
	}

	players := make([]model.Player, 0, len(raw))
	seen := make(map[model.PlayerID]struct{}, len(raw))
	for _, item := range raw {
		var stored storedPlayer
		if err := json.Unmarshal(item, &stored); err != nil {
			continue
		}
		p := model.Player{
			ID:    stored.ID,
			Name:  strings.TrimSpace(stored.Name),
			Index: coerceIndex(stored.Index),
			Team:  model.TeamUnassigned,
		}
		if team, ok := stored.Team.(string); ok && model.Team(team).Valid() {
			p.Team = model.Team(team)
		}
		if err := validate.Struct(p); err != nil {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		players = append(players, p)
	}
	return players, nil
}

// coerceIndex reads a stored handicap index, falling back to 0 for anything
// that is not a finite number
func coerceIndex(v any) float64 {
	var index float64
	switch x := v.(type) {
	case float64:
		index = x
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0
		}
		index = parsed
	default:
		return 0
	}
	if !model.ValidIndex(index) {
		return 0
	}
	return index
}

// DecodeRoster decodes the persisted roster
func DecodeRoster(data []byte) (*model.Roster, error) {
	var roster model.Roster
	if err := json.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("%w: roster: %v", ErrMalformed, err)
	}
	if roster.IncludedIDs == nil {
		roster.IncludedIDs = []model.PlayerID{}
	}
	return &roster, nil
}

// DecodeSlots decodes a persisted pairing session for the given shape.
// The data is only accepted when it has exactly the shape's slot count and
// every slot uses only the shape's fields; missing fields decode as empty.
func DecodeSlots(data []byte, shape model.Shape) ([]model.Slot, error) {
	var raw []map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: slots: %v", ErrMalformed, err)
	}
	if err := validate.Var(raw, fmt.Sprintf("len=%d", shape.Slots)); err != nil {
		return nil, fmt.Errorf("%w: slots: expected %d, got %d", ErrMalformed, shape.Slots, len(raw))
	}

	slots := model.EmptySlots(shape)
	for i, item := range raw {
		for key, id := range item {
			field := model.SlotField(key)
			if !shape.HasField(field) {
				return nil, fmt.Errorf("%w: slots: unexpected field %q", ErrMalformed, key)
			}
			slots[i][field] = model.PlayerID(id)
		}
	}
	return slots, nil
}

// Encode serialises an aggregate for storage
func Encode(v any) ([]byte, error) {
	return json.Marshal(v)
}
