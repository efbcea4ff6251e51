package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/golfcup/internal/api/request"
	"github.com/mcoot/golfcup/internal/api/response"
	"github.com/mcoot/golfcup/internal/model"
	"github.com/mcoot/golfcup/internal/services/registry"
)

// PlayerHandler handles player registry endpoints
type PlayerHandler struct {
	registry *registry.Registry
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(reg *registry.Registry) *PlayerHandler {
	return &PlayerHandler{
		registry: reg,
	}
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	teamParam := r.URL.Query().Get("team")
	if teamParam == "" {
		response.OK(w, response.PlayerList{Players: response.PlayersFromModel(h.registry.List())})
		return
	}

	team, err := model.ParseTeam(teamParam)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.PlayerList{Players: response.PlayersFromModel(h.registry.ListByTeam(team))})
}

// Search handles GET /api/v1/players/search
func (h *PlayerHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		WriteError(w, NewInvalidRequestError("q is required"))
		return
	}
	response.OK(w, response.PlayerList{Players: response.PlayersFromModel(h.registry.Search(query))})
}

// Add handles POST /api/v1/players
func (h *PlayerHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	team := model.TeamUnassigned
	if req.Team != "" {
		team = model.Team(req.Team)
	}

	player, err := h.registry.Add(r.Context(), req.Name, *req.Index, team)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// Update handles PATCH /api/v1/players/{id}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.UpdatePlayerRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	current, ok := h.registry.Get(id)
	if !ok {
		WriteError(w, model.ErrPlayerNotFound)
		return
	}
	name, index := current.Name, current.Index
	if req.Name != nil {
		name = *req.Name
	}
	if req.Index != nil {
		index = *req.Index
	}

	player, err := h.registry.Update(r.Context(), id, name, index)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.OK(w, response.PlayerFromModel(player))
}

// SetTeam handles PUT /api/v1/players/{id}/team
func (h *PlayerHandler) SetTeam(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.SetTeamRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	if err := h.registry.SetTeam(r.Context(), id, model.Team(req.Team)); err != nil {
		WriteError(w, err)
		return
	}

	player, ok := h.registry.Get(id)
	if !ok {
		WriteError(w, model.ErrPlayerNotFound)
		return
	}
	response.OK(w, response.PlayerFromModel(player))
}

// Remove handles DELETE /api/v1/players/{id}
func (h *PlayerHandler) Remove(w http.ResponseWriter, r *http.Request) {
	h.registry.Remove(r.Context(), model.PlayerID(mux.Vars(r)["id"]))
	response.NoContent(w)
}

// Clear handles DELETE /api/v1/players
func (h *PlayerHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.registry.ClearAll(r.Context())
	response.NoContent(w)
}
