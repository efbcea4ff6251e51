package registry

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"

	"github.com/mcoot/golfcup/internal/dependencies/ids"
	"github.com/mcoot/golfcup/internal/model"
	"github.com/mcoot/golfcup/internal/storage"
)

// Registry owns the canonical player list and team membership.
// Every mutation writes the whole list back to the store before returning.
type Registry struct {
	repo   *storage.Repository
	ids    ids.Generator
	logger *slog.Logger

	mu      sync.RWMutex
	players []model.Player // insertion order
}

// New creates a Registry and loads the persisted player set
func New(ctx context.Context, store storage.Store, idGen ids.Generator, logger *slog.Logger) *Registry {
	r := &Registry{
		repo:   storage.NewRepository(store, logger),
		ids:    idGen,
		logger: logger,
	}
	r.Reload(ctx)
	return r
}

// Reload replaces the in-memory list with the persisted one
func (r *Registry) Reload(ctx context.Context) {
	players := r.repo.Players(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.players = players
}

// Add validates and appends a new player
func (r *Registry) Add(ctx context.Context, name string, index float64, team model.Team) (model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Player{}, model.ErrInvalidName
	}
	if !model.ValidIndex(index) {
		return model.Player{}, model.ErrInvalidIndex
	}
	if !team.Valid() {
		return model.Player{}, model.ErrInvalidTeam
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	player := model.Player{
		ID:    r.newID(),
		Name:  name,
		Index: index,
		Team:  team,
	}
	r.players = append(r.players, player)
	r.persist(ctx)

	r.logger.Info("player added",
		slog.String("player_id", string(player.ID)),
		slog.String("team", string(team)),
	)
	return player, nil
}

// Remove deletes a player; removing an unknown ID is a no-op
func (r *Registry) Remove(ctx context.Context, id model.PlayerID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := lo.Reject(r.players, func(p model.Player, _ int) bool { return p.ID == id })
	if len(kept) == len(r.players) {
		return
	}
	r.players = kept
	r.persist(ctx)
}

// Update edits a player's name and handicap index
func (r *Registry) Update(ctx context.Context, id model.PlayerID, name string, index float64) (model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Player{}, model.ErrInvalidName
	}
	if !model.ValidIndex(index) {
		return model.Player{}, model.ErrInvalidIndex
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Player{}, model.ErrPlayerNotFound
	}
	r.players[i].Name = name
	r.players[i].Index = index
	r.persist(ctx)
	return r.players[i], nil
}

// SetTeam reassigns a player's team; unknown IDs are ignored
func (r *Registry) SetTeam(ctx context.Context, id model.PlayerID, team model.Team) error {
	if !team.Valid() {
		return model.ErrInvalidTeam
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil
	}
	r.players[i].Team = team
	r.persist(ctx)
	return nil
}

// AssignTeams applies several team reassignments with a single write.
// Players not named in the map keep their current team.
func (r *Registry) AssignTeams(ctx context.Context, assignments map[model.PlayerID]model.Team) error {
	for _, team := range assignments {
		if !team.Valid() {
			return model.ErrInvalidTeam
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.players {
		if team, ok := assignments[r.players[i].ID]; ok {
			r.players[i].Team = team
		}
	}
	r.persist(ctx)
	return nil
}

// ClearAll removes every player and erases the persisted list
func (r *Registry) ClearAll(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.players = []model.Player{}
	r.repo.ClearPlayers(ctx)
	r.logger.Info("all players cleared")
}

// List returns every player in insertion order
func (r *Registry) List() []model.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]model.Player, len(r.players))
	copy(result, r.players)
	return result
}

// ListByTeam returns the players on a team in insertion order
func (r *Registry) ListByTeam(team model.Team) []model.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Filter(r.players, func(p model.Player, _ int) bool { return p.Team == team })
}

// Get returns a player by ID
func (r *Registry) Get(id model.PlayerID) (model.Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return model.Player{}, false
	}
	return r.players[i], true
}

// IDs returns the ID of every player in insertion order
func (r *Registry) IDs() []model.PlayerID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Map(r.players, func(p model.Player, _ int) model.PlayerID { return p.ID })
}

// Search finds players whose name fuzzily matches query, closest first
func (r *Registry) Search(query string) []model.Player {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []model.Player{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	type match struct {
		player   model.Player
		distance int
	}
	var matches []match
	for _, p := range r.players {
		name := strings.ToLower(p.Name)
		if !fuzzy.Match(query, name) {
			continue
		}
		matches = append(matches, match{player: p, distance: fuzzy.LevenshteinDistance(query, name)})
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})
	return lo.Map(matches, func(m match, _ int) model.Player { return m.player })
}

func (r *Registry) indexOf(id model.PlayerID) int {
	for i := range r.players {
		if r.players[i].ID == id {
			return i
		}
	}
	return -1
}

// newID draws IDs until one is not already in use
func (r *Registry) newID() model.PlayerID {
	for {
		id := r.ids.NewPlayerID()
		if r.indexOf(id) < 0 {
			return id
		}
	}
}

// persist must be called with mu held
func (r *Registry) persist(ctx context.Context) {
	r.repo.SavePlayers(ctx, r.players)
}
