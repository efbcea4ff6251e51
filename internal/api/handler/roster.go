package handler

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/samber/lo"

	"github.com/mcoot/golfcup/internal/api/request"
	"github.com/mcoot/golfcup/internal/api/response"
	"github.com/mcoot/golfcup/internal/model"
	"github.com/mcoot/golfcup/internal/services/registry"
	"github.com/mcoot/golfcup/internal/services/roster"
)

// RosterHandler handles roster selection and team balancing endpoints
type RosterHandler struct {
	selector *roster.Selector
	registry *registry.Registry
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(selector *roster.Selector, reg *registry.Registry) *RosterHandler {
	return &RosterHandler{
		selector: selector,
		registry: reg,
	}
}

// Get handles GET /api/v1/roster
func (h *RosterHandler) Get(w http.ResponseWriter, r *http.Request) {
	sortKey, err := model.ParseSortKey(r.URL.Query().Get("sort"))
	if err != nil {
		WriteError(w, err)
		return
	}

	players := roster.SortedView(h.registry.List(), sortKey)
	entries := lo.Map(players, func(p model.Player, _ int) response.RosterEntry {
		return response.RosterEntry{
			Player:   response.PlayerFromModel(p),
			Included: h.selector.IsIncluded(p.ID),
		}
	})

	resp := response.Roster{
		Name:        h.selector.Name(),
		IncludedIDs: response.IDStrings(h.selector.Included()),
		Sort:        string(sortKey),
		Players:     entries,
		TeamA:       response.PlayersFromModel(roster.SortedView(h.selector.TeamView(model.TeamA), sortKey)),
		TeamB:       response.PlayersFromModel(roster.SortedView(h.selector.TeamView(model.TeamB), sortKey)),
	}
	if saved := h.selector.Saved(); saved != nil {
		resp.SavedAt = &saved.CreatedAt
	}

	response.OK(w, resp)
}

// Save handles POST /api/v1/roster
func (h *RosterHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req request.SaveRosterRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	saved := h.selector.Save(r.Context(), req.Name)
	response.OK(w, response.SavedRosterFromModel(saved))
}

// Toggle handles POST /api/v1/roster/included/{id}
func (h *RosterHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	included := h.selector.ToggleIncluded(id)
	response.OK(w, response.Toggle{PlayerID: string(id), Included: included})
}

// IncludeAll handles POST /api/v1/roster/include-all
func (h *RosterHandler) IncludeAll(w http.ResponseWriter, r *http.Request) {
	h.selector.IncludeAll()
	response.NoContent(w)
}

// IncludeNone handles POST /api/v1/roster/include-none
func (h *RosterHandler) IncludeNone(w http.ResponseWriter, r *http.Request) {
	h.selector.IncludeNone()
	response.NoContent(w)
}

// Balance handles POST /api/v1/roster/balance
func (h *RosterHandler) Balance(w http.ResponseWriter, r *http.Request) {
	split, err := h.selector.BalanceTeams(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, response.BalanceFromSplit(split))
}
