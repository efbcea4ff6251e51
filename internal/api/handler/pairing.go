package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/samber/lo"

	"github.com/mcoot/golfcup/internal/api/request"
	"github.com/mcoot/golfcup/internal/api/response"
	"github.com/mcoot/golfcup/internal/model"
	"github.com/mcoot/golfcup/internal/services/pairing"
)

// PairingHandler handles per-round pairing endpoints
type PairingHandler struct {
	pairings *pairing.Service
}

// NewPairingHandler creates a new pairing handler
func NewPairingHandler(pairings *pairing.Service) *PairingHandler {
	return &PairingHandler{
		pairings: pairings,
	}
}

// Rounds handles GET /api/v1/rounds
func (h *PairingHandler) Rounds(w http.ResponseWriter, r *http.Request) {
	rounds := make([]response.Round, 0)
	for _, round := range h.pairings.Rounds() {
		shape, err := round.Shape()
		if err != nil {
			WriteError(w, err)
			return
		}
		rounds = append(rounds, response.RoundFromModel(round, shape))
	}
	response.OK(w, response.RoundList{Rounds: rounds})
}

// Get handles GET /api/v1/rounds/{round}/pairings
func (h *PairingHandler) Get(w http.ResponseWriter, r *http.Request) {
	session, err := h.pairings.Session(r.Context(), mux.Vars(r)["round"])
	if err != nil {
		WriteError(w, err)
		return
	}
	response.OK(w, pairingsResponse(session))
}

// SetSlot handles PUT /api/v1/rounds/{round}/pairings/{slot}/{field}
func (h *PairingHandler) SetSlot(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	slotIndex, err := strconv.Atoi(vars["slot"])
	if err != nil {
		WriteError(w, model.ErrInvalidSlot)
		return
	}

	var req request.SetSlotRequest
	if err := request.Decode(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	session, err := h.pairings.Session(r.Context(), vars["round"])
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := session.SetSlotField(slotIndex, model.SlotField(vars["field"]), model.PlayerID(req.PlayerID)); err != nil {
		WriteError(w, err)
		return
	}

	response.OK(w, pairingsResponse(session))
}

// Save handles POST /api/v1/rounds/{round}/pairings/save
func (h *PairingHandler) Save(w http.ResponseWriter, r *http.Request) {
	session, err := h.pairings.Session(r.Context(), mux.Vars(r)["round"])
	if err != nil {
		WriteError(w, err)
		return
	}

	session.Save(r.Context())
	response.OK(w, pairingsResponse(session))
}

// Clear handles DELETE /api/v1/rounds/{round}/pairings
func (h *PairingHandler) Clear(w http.ResponseWriter, r *http.Request) {
	session, err := h.pairings.Session(r.Context(), mux.Vars(r)["round"])
	if err != nil {
		WriteError(w, err)
		return
	}

	session.Clear(r.Context())
	response.OK(w, pairingsResponse(session))
}

func pairingsResponse(session *pairing.Session) response.Pairings {
	slots := lo.Map(session.Slots(), func(slot model.Slot, _ int) map[string]response.Selection {
		out := make(map[string]response.Selection, len(slot))
		for field, id := range slot {
			out[string(field)] = selection(session, id)
		}
		return out
	})

	return response.Pairings{
		Round:            response.RoundFromModel(session.Round(), session.Shape()),
		Slots:            slots,
		DuplicateWarning: session.DuplicateWarning(),
		DuplicateIDs:     response.IDStrings(session.DuplicateIDs()),
		Options: response.Options{
			A: response.PlayersFromModel(session.Options(model.ColumnA)),
			B: response.PlayersFromModel(session.Options(model.ColumnB)),
		},
	}
}

func selection(session *pairing.Session, id model.PlayerID) response.Selection {
	if id == "" {
		return response.Selection{}
	}
	player, ok := session.Resolve(id)
	if !ok {
		return response.Selection{PlayerID: string(id), Dangling: true}
	}
	return response.Selection{
		PlayerID: string(id),
		Name:     player.Name,
		Team:     string(player.Team),
	}
}
