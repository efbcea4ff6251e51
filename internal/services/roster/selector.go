package roster

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/mcoot/golfcup/internal/dependencies/clock"
	"github.com/mcoot/golfcup/internal/model"
	"github.com/mcoot/golfcup/internal/services/balance"
	"github.com/mcoot/golfcup/internal/services/registry"
	"github.com/mcoot/golfcup/internal/storage"
)

// Selector tracks which players are in the event.
// It never stores team membership itself: team changes go straight to the
// registry, and the inclusion set only holds player IDs.
type Selector struct {
	repo     *storage.Repository
	registry *registry.Registry
	clock    clock.Clock
	logger   *slog.Logger

	mu       sync.RWMutex
	name     string
	included map[model.PlayerID]struct{}
	saved    *model.Roster
}

// New creates a Selector and loads the active roster
func New(ctx context.Context, store storage.Store, reg *registry.Registry, clk clock.Clock, logger *slog.Logger) *Selector {
	s := &Selector{
		repo:     storage.NewRepository(store, logger),
		registry: reg,
		clock:    clk,
		logger:   logger,
	}
	s.Load(ctx)
	return s
}

// Load resets the selection to the persisted roster, or to an empty
// selection with the default name if none was saved
func (s *Selector) Load(ctx context.Context) {
	saved := s.repo.Roster(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.saved = saved
	s.name = model.DefaultRosterName
	s.included = make(map[model.PlayerID]struct{})
	if saved == nil {
		return
	}
	if strings.TrimSpace(saved.Name) != "" {
		s.name = saved.Name
	}
	for _, id := range saved.IncludedIDs {
		s.included[id] = struct{}{}
	}
}

// Name returns the event name currently held by the selector
func (s *Selector) Name() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.name
}

// ToggleIncluded flips a player's membership in the included set.
// The ID is not checked against the registry.
func (s *Selector) ToggleIncluded(id model.PlayerID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.included[id]; ok {
		delete(s.included, id)
		return false
	}
	s.included[id] = struct{}{}
	return true
}

// IncludeAll includes every player currently in the registry
func (s *Selector) IncludeAll() {
	ids := s.registry.IDs()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.included = make(map[model.PlayerID]struct{}, len(ids))
	for _, id := range ids {
		s.included[id] = struct{}{}
	}
}

// IncludeNone empties the included set
func (s *Selector) IncludeNone() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.included = make(map[model.PlayerID]struct{})
}

// IsIncluded reports whether a player ID is in the included set
func (s *Selector) IsIncluded(id model.PlayerID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.included[id]
	return ok
}

// Included returns the raw included set, dangling IDs and all, sorted for
// stable output
func (s *Selector) Included() []model.PlayerID {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := lo.Keys(s.included)
	slices.Sort(ids)
	return ids
}

// IncludedPlayers resolves the included set against the registry in
// registry order; IDs of removed players are skipped
func (s *Selector) IncludedPlayers() []model.Player {
	players := s.registry.List()

	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Filter(players, func(p model.Player, _ int) bool {
		_, ok := s.included[p.ID]
		return ok
	})
}

// TeamView returns the included players on a team in registry order
func (s *Selector) TeamView(team model.Team) []model.Player {
	return lo.Filter(s.IncludedPlayers(), func(p model.Player, _ int) bool { return p.Team == team })
}

// SetTeam reassigns a player's team in the registry
func (s *Selector) SetTeam(ctx context.Context, id model.PlayerID, team model.Team) error {
	return s.registry.SetTeam(ctx, id, team)
}

// BalanceTeams balances the included players by handicap index and writes
// the resulting teams back to the registry. Players outside the included
// set keep their team.
func (s *Selector) BalanceTeams(ctx context.Context) (balance.Split, error) {
	pool := s.IncludedPlayers()

	split, err := balance.Balance(pool)
	if err != nil {
		return balance.Split{}, err
	}
	if err := s.registry.AssignTeams(ctx, split.Assignments()); err != nil {
		return balance.Split{}, err
	}

	s.logger.Info("teams balanced",
		slog.Int("team_a", len(split.TeamA)),
		slog.Int("team_b", len(split.TeamB)),
		slog.Float64("team_a_index", balance.TotalIndex(split.TeamA)),
		slog.Float64("team_b_index", balance.TotalIndex(split.TeamB)),
	)
	return split, nil
}

// Save overwrites the active roster with the current selection
func (s *Selector) Save(ctx context.Context, name string) model.Roster {
	name = strings.TrimSpace(name)
	if name == "" {
		name = model.DefaultRosterName
	}

	s.mu.Lock()
	ids := lo.Keys(s.included)
	slices.Sort(ids)
	roster := model.Roster{
		Name:        name,
		IncludedIDs: ids,
		CreatedAt:   s.clock.Now(),
	}
	s.name = name
	s.saved = &roster
	s.mu.Unlock()

	s.repo.SaveRoster(ctx, roster)
	s.logger.Info("roster saved",
		slog.String("name", name),
		slog.Int("included", len(ids)),
	)
	return roster
}

// Saved returns the last saved or loaded roster, or nil
func (s *Selector) Saved() *model.Roster {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.saved == nil {
		return nil
	}
	r := *s.saved
	r.IncludedIDs = slices.Clone(s.saved.IncludedIDs)
	return &r
}

// SortedView orders players for display without touching stored order.
// Name order is lexicographic; index orders keep ties in input order.
func SortedView(players []model.Player, key model.SortKey) []model.Player {
	sorted := slices.Clone(players)
	switch key {
	case model.SortIndexAsc:
		slices.SortStableFunc(sorted, func(a, b model.Player) int {
			return cmp.Compare(a.Index, b.Index)
		})
	case model.SortIndexDsc:
		slices.SortStableFunc(sorted, func(a, b model.Player) int {
			return cmp.Compare(b.Index, a.Index)
		})
	default:
		slices.SortStableFunc(sorted, func(a, b model.Player) int {
			return strings.Compare(a.Name, b.Name)
		})
	}
	return sorted
}
