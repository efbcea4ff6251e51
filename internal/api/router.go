package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/golfcup/internal/api/handler"
	"github.com/mcoot/golfcup/internal/api/middleware"
	"github.com/mcoot/golfcup/internal/services/pairing"
	"github.com/mcoot/golfcup/internal/services/registry"
	"github.com/mcoot/golfcup/internal/services/roster"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger   *slog.Logger
	Registry *registry.Registry
	Roster   *roster.Selector
	Pairings *pairing.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(handler.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handler.MethodNotAllowed)

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.Registry)
	rosterHandler := handler.NewRosterHandler(cfg.Roster, cfg.Registry)
	pairingHandler := handler.NewPairingHandler(cfg.Pairings)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Player routes
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players", playerHandler.Add).Methods(http.MethodPost)
	api.HandleFunc("/players", playerHandler.Clear).Methods(http.MethodDelete)
	api.HandleFunc("/players/search", playerHandler.Search).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Update).Methods(http.MethodPatch)
	api.HandleFunc("/players/{id}", playerHandler.Remove).Methods(http.MethodDelete)
	api.HandleFunc("/players/{id}/team", playerHandler.SetTeam).Methods(http.MethodPut)

	// Roster routes
	api.HandleFunc("/roster", rosterHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/roster", rosterHandler.Save).Methods(http.MethodPost)
	api.HandleFunc("/roster/included/{id}", rosterHandler.Toggle).Methods(http.MethodPost)
	api.HandleFunc("/roster/include-all", rosterHandler.IncludeAll).Methods(http.MethodPost)
	api.HandleFunc("/roster/include-none", rosterHandler.IncludeNone).Methods(http.MethodPost)
	api.HandleFunc("/roster/balance", rosterHandler.Balance).Methods(http.MethodPost)

	// Pairing routes
	api.HandleFunc("/rounds", pairingHandler.Rounds).Methods(http.MethodGet)
	api.HandleFunc("/rounds/{round}/pairings", pairingHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/rounds/{round}/pairings", pairingHandler.Clear).Methods(http.MethodDelete)
	api.HandleFunc("/rounds/{round}/pairings/save", pairingHandler.Save).Methods(http.MethodPost)
	api.HandleFunc("/rounds/{round}/pairings/{slot}/{field}", pairingHandler.SetSlot).Methods(http.MethodPut)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
