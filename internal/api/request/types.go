package request

// AddPlayerRequest is the request body for registering a player
type AddPlayerRequest struct {
	Name  string   `json:"name"`
	Index *float64 `json:"index" validate:"required"`
	// Team defaults to NA when omitted
	Team string `json:"team,omitempty"`
}

// UpdatePlayerRequest is the request body for editing a player.
// Omitted fields keep their current value.
type UpdatePlayerRequest struct {
	Name  *string  `json:"name,omitempty"`
	Index *float64 `json:"index,omitempty"`
}

// SetTeamRequest is the request body for reassigning a player's team
type SetTeamRequest struct {
	Team string `json:"team" validate:"required"`
}

// SaveRosterRequest is the request body for saving the active roster
type SaveRosterRequest struct {
	Name string `json:"name"`
}

// SetSlotRequest is the request body for selecting a player in a pairing
// slot; an empty player ID clears the field
type SetSlotRequest struct {
	PlayerID string `json:"playerId"`
}
