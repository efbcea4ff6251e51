package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/golfcup/internal/api"
	"github.com/mcoot/golfcup/internal/api/apierr"
	"github.com/mcoot/golfcup/internal/api/response"
	"github.com/mcoot/golfcup/internal/factory"
	"github.com/mcoot/golfcup/internal/storage"
	"github.com/mcoot/golfcup/internal/storage/memory"
)

// testServer creates a test server with all dependencies
type testServer struct {
	handler http.Handler
	storage *memory.Storage
	app     *factory.App
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	// API tests are integration tests - use production factory with real ids/clock
	app, err := factory.New(context.Background(), factory.Config{Logger: logger})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:   logger,
		Registry: app.Registry,
		Roster:   app.Roster,
		Pairings: app.Pairings,
	})

	return &testServer{
		handler: router,
		storage: app.Store.(*memory.Storage),
		app:     app,
	}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

func (ts *testServer) addPlayer(t *testing.T, name string, index float64, team string) response.Player {
	t.Helper()

	body := map[string]any{"name": name, "index": index}
	if team != "" {
		body["team"] = team
	}
	rr := ts.request(http.MethodPost, "/api/v1/players", body)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var p response.Player
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &p))
	return p
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

func errorCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[apierr.ErrorResponse](t, rr).Error.Code
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "ok")
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/nope", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodeNotFound, errorCode(t, rr))
}

// Player tests

func TestAddPlayer(t *testing.T) {
	ts := newTestServer(t)

	p := ts.addPlayer(t, "  Alice ", 4.26, "A")

	assert.NotEmpty(t, p.ID)
	assert.Equal(t, "Alice", p.Name)
	assert.Equal(t, 4.26, p.Index)
	assert.Equal(t, "4.3", p.DisplayIndex)
	assert.Equal(t, "A", p.Team)

	_, err := ts.storage.Get(context.Background(), storage.PlayersKey())
	assert.NoError(t, err)
}

func TestAddPlayerDefaultsToUnassigned(t *testing.T) {
	ts := newTestServer(t)

	p := ts.addPlayer(t, "Nia", 12, "")
	assert.Equal(t, "NA", p.Team)
}

func TestAddPlayerValidation(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name string
		body map[string]any
		code string
	}{
		{"blank name", map[string]any{"name": "  ", "index": 1}, apierr.CodeInvalidName},
		{"missing index", map[string]any{"name": "Alice"}, apierr.CodeInvalidRequest},
		{"bad team", map[string]any{"name": "Alice", "index": 1, "team": "C"}, apierr.CodeInvalidTeam},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := ts.request(http.MethodPost, "/api/v1/players", tt.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.code, errorCode(t, rr))
		})
	}

	rr := ts.request(http.MethodGet, "/api/v1/players", nil)
	assert.Empty(t, decode[response.PlayerList](t, rr).Players)
}

func TestListPlayersByTeam(t *testing.T) {
	ts := newTestServer(t)
	a := ts.addPlayer(t, "Alice", 1, "A")
	ts.addPlayer(t, "Bob", 2, "B")

	rr := ts.request(http.MethodGet, "/api/v1/players?team=A", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, []response.Player{a}, decode[response.PlayerList](t, rr).Players)

	rr = ts.request(http.MethodGet, "/api/v1/players", nil)
	assert.Len(t, decode[response.PlayerList](t, rr).Players, 2)

	rr = ts.request(http.MethodGet, "/api/v1/players?team=Z", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSearchPlayers(t *testing.T) {
	ts := newTestServer(t)
	ts.addPlayer(t, "Jordan Spieth", 1, "A")
	ts.addPlayer(t, "Jon Rahm", 2, "B")
	ts.addPlayer(t, "Rory McIlroy", 3, "B")

	rr := ts.request(http.MethodGet, "/api/v1/players/search?q=rory", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	players := decode[response.PlayerList](t, rr).Players
	require.Len(t, players, 1)
	assert.Equal(t, "Rory McIlroy", players[0].Name)

	rr = ts.request(http.MethodGet, "/api/v1/players/search", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUpdatePlayer(t *testing.T) {
	ts := newTestServer(t)
	p := ts.addPlayer(t, "Alice", 1, "A")

	rr := ts.request(http.MethodPatch, "/api/v1/players/"+p.ID, map[string]any{"index": 3.5})
	require.Equal(t, http.StatusOK, rr.Code)
	updated := decode[response.Player](t, rr)
	assert.Equal(t, "Alice", updated.Name)
	assert.Equal(t, 3.5, updated.Index)

	rr = ts.request(http.MethodPatch, "/api/v1/players/missing", map[string]any{"name": "X"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, apierr.CodePlayerNotFound, errorCode(t, rr))
}

func TestSetPlayerTeam(t *testing.T) {
	ts := newTestServer(t)
	p := ts.addPlayer(t, "Alice", 1, "")

	rr := ts.request(http.MethodPut, "/api/v1/players/"+p.ID+"/team", map[string]string{"team": "B"})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "B", decode[response.Player](t, rr).Team)

	rr = ts.request(http.MethodPut, "/api/v1/players/"+p.ID+"/team", map[string]string{"team": "Q"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = ts.request(http.MethodPut, "/api/v1/players/missing/team", map[string]string{"team": "A"})
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRemoveAndClearPlayers(t *testing.T) {
	ts := newTestServer(t)
	a := ts.addPlayer(t, "Alice", 1, "A")
	ts.addPlayer(t, "Bob", 2, "B")

	rr := ts.request(http.MethodDelete, "/api/v1/players/"+a.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	rr = ts.request(http.MethodDelete, "/api/v1/players/"+a.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Len(t, ts.app.Registry.List(), 1)

	rr = ts.request(http.MethodDelete, "/api/v1/players", nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, ts.app.Registry.List())
	_, err := ts.storage.Get(context.Background(), storage.PlayersKey())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

// Roster tests

func TestRosterDefaults(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/roster", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	roster := decode[response.Roster](t, rr)

	assert.Equal(t, "I-29 Cup", roster.Name)
	assert.Empty(t, roster.IncludedIDs)
	assert.Nil(t, roster.SavedAt)
	assert.Equal(t, "name-asc", roster.Sort)
}

func TestRosterToggleAndSort(t *testing.T) {
	ts := newTestServer(t)
	c := ts.addPlayer(t, "Carol", 9, "A")
	a := ts.addPlayer(t, "Alice", 3, "A")
	b := ts.addPlayer(t, "Bob", 5, "B")

	rr := ts.request(http.MethodPost, "/api/v1/roster/included/"+a.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decode[response.Toggle](t, rr).Included)
	ts.request(http.MethodPost, "/api/v1/roster/included/"+b.ID, nil)

	rr = ts.request(http.MethodGet, "/api/v1/roster?sort=hi-desc", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	roster := decode[response.Roster](t, rr)

	require.Len(t, roster.Players, 3)
	assert.Equal(t, []string{c.ID, b.ID, a.ID}, []string{roster.Players[0].ID, roster.Players[1].ID, roster.Players[2].ID})
	assert.False(t, roster.Players[0].Included)
	assert.True(t, roster.Players[1].Included)
	assert.Equal(t, []response.Player{a}, roster.TeamA)
	assert.Equal(t, []response.Player{b}, roster.TeamB)

	rr = ts.request(http.MethodGet, "/api/v1/roster?sort=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, apierr.CodeInvalidSortKey, errorCode(t, rr))
}

func TestRosterSave(t *testing.T) {
	ts := newTestServer(t)
	a := ts.addPlayer(t, "Alice", 3, "A")
	ts.request(http.MethodPost, "/api/v1/roster/include-all", nil)

	rr := ts.request(http.MethodPost, "/api/v1/roster", map[string]string{"name": "Spring Cup"})
	require.Equal(t, http.StatusOK, rr.Code)
	saved := decode[response.SavedRoster](t, rr)
	assert.Equal(t, "Spring Cup", saved.Name)
	assert.Equal(t, []string{a.ID}, saved.IncludedIDs)
	assert.False(t, saved.CreatedAt.IsZero())

	rr = ts.request(http.MethodGet, "/api/v1/roster", nil)
	roster := decode[response.Roster](t, rr)
	assert.Equal(t, "Spring Cup", roster.Name)
	assert.NotNil(t, roster.SavedAt)

	ts.request(http.MethodPost, "/api/v1/roster/include-none", nil)
	rr = ts.request(http.MethodGet, "/api/v1/roster", nil)
	assert.Empty(t, decode[response.Roster](t, rr).IncludedIDs)
}

func TestRosterBalance(t *testing.T) {
	ts := newTestServer(t)
	for _, index := range []float64{1, 13, 5, 9} {
		ts.addPlayer(t, "P", index, "")
	}
	ts.request(http.MethodPost, "/api/v1/roster/include-all", nil)

	rr := ts.request(http.MethodPost, "/api/v1/roster/balance", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	result := decode[response.Balance](t, rr)

	assert.Equal(t, 10.0, result.TeamAIndex)
	assert.Equal(t, 18.0, result.TeamBIndex)
	assert.Len(t, ts.app.Registry.ListByTeam("A"), 2)
	assert.Len(t, ts.app.Registry.ListByTeam("B"), 2)
}

func TestRosterBalanceNeedsTwoPlayers(t *testing.T) {
	ts := newTestServer(t)
	ts.addPlayer(t, "Solo", 1, "")
	ts.request(http.MethodPost, "/api/v1/roster/include-all", nil)

	rr := ts.request(http.MethodPost, "/api/v1/roster/balance", nil)
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, apierr.CodeInsufficientPlayers, errorCode(t, rr))
}

// Pairing tests

func TestListRounds(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/rounds", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	rounds := decode[response.RoundList](t, rr).Rounds

	require.Len(t, rounds, 3)
	assert.Equal(t, "sat-am", rounds[0].ID)
	assert.Equal(t, 3, rounds[0].Slots)
	assert.Equal(t, []string{"a1", "a2", "b1", "b2"}, rounds[0].Fields)
	assert.Equal(t, 6, rounds[2].Slots)
}

func TestPairingsFlow(t *testing.T) {
	ts := newTestServer(t)
	a := ts.addPlayer(t, "Alice", 1, "A")
	b := ts.addPlayer(t, "Bob", 2, "B")

	rr := ts.request(http.MethodGet, "/api/v1/rounds/sunday/pairings", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	pairings := decode[response.Pairings](t, rr)
	require.Len(t, pairings.Slots, 6)
	assert.Equal(t, []response.Player{a}, pairings.Options.A)
	assert.Equal(t, []response.Player{b}, pairings.Options.B)

	rr = ts.request(http.MethodPut, "/api/v1/rounds/sunday/pairings/0/a", map[string]string{"playerId": a.ID})
	require.Equal(t, http.StatusOK, rr.Code)
	rr = ts.request(http.MethodPut, "/api/v1/rounds/sunday/pairings/1/a", map[string]string{"playerId": a.ID})
	require.Equal(t, http.StatusOK, rr.Code)
	pairings = decode[response.Pairings](t, rr)
	assert.True(t, pairings.DuplicateWarning)
	assert.Equal(t, []string{a.ID}, pairings.DuplicateIDs)
	assert.Equal(t, "Alice", pairings.Slots[0]["a"].Name)

	rr = ts.request(http.MethodPost, "/api/v1/rounds/sunday/pairings/save", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	_, err := ts.storage.Get(context.Background(), storage.PairingsKey("sun"))
	require.NoError(t, err)

	ts.request(http.MethodDelete, "/api/v1/players/"+a.ID, nil)
	rr = ts.request(http.MethodGet, "/api/v1/rounds/sunday/pairings", nil)
	pairings = decode[response.Pairings](t, rr)
	assert.True(t, pairings.Slots[0]["a"].Dangling)

	rr = ts.request(http.MethodDelete, "/api/v1/rounds/sunday/pairings", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	pairings = decode[response.Pairings](t, rr)
	require.Len(t, pairings.Slots, 6)
	assert.False(t, pairings.DuplicateWarning)
	assert.Empty(t, pairings.Slots[0]["a"].PlayerID)
}

func TestPairingsErrors(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		status int
		code   string
	}{
		{"unknown round", http.MethodGet, "/api/v1/rounds/monday/pairings", http.StatusNotFound, apierr.CodeRoundNotFound},
		{"slot out of range", http.MethodPut, "/api/v1/rounds/sat-am/pairings/3/a1", http.StatusBadRequest, apierr.CodeInvalidSlot},
		{"slot not a number", http.MethodPut, "/api/v1/rounds/sat-am/pairings/x/a1", http.StatusBadRequest, apierr.CodeInvalidSlot},
		{"foreign field", http.MethodPut, "/api/v1/rounds/sat-am/pairings/0/a", http.StatusBadRequest, apierr.CodeInvalidField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := ts.request(tt.method, tt.path, map[string]string{"playerId": "p1"})
			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.code, errorCode(t, rr))
		})
	}
}
