package pairing

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/mcoot/golfcup/internal/model"
	"github.com/mcoot/golfcup/internal/services/registry"
	"github.com/mcoot/golfcup/internal/storage"
)

// Service opens pairing sessions for the rounds of a schedule
type Service struct {
	repo     *storage.Repository
	registry *registry.Registry
	schedule []model.Round
	logger   *slog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// New creates a pairing Service over a fixed schedule
func New(store storage.Store, reg *registry.Registry, schedule []model.Round, logger *slog.Logger) *Service {
	return &Service{
		repo:     storage.NewRepository(store, logger),
		registry: reg,
		schedule: slices.Clone(schedule),
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// Rounds returns the schedule in play order
func (s *Service) Rounds() []model.Round {
	return slices.Clone(s.schedule)
}

// Round looks up a round by ID
func (s *Service) Round(roundID string) (model.Round, error) {
	return model.FindRound(s.schedule, roundID)
}

// Load opens a round from the store, replacing any session already open
// for it. Saved slots are adopted only if they exactly match the round's
// shape; anything else starts an all-empty session.
func (s *Service) Load(ctx context.Context, roundID string) (*Session, error) {
	round, err := s.Round(roundID)
	if err != nil {
		return nil, err
	}
	shape, err := round.Shape()
	if err != nil {
		return nil, err
	}

	slots, ok := s.repo.Slots(ctx, round.Key(), shape)
	if !ok {
		slots = model.EmptySlots(shape)
	}

	session := &Session{
		round:    round,
		shape:    shape,
		repo:     s.repo,
		registry: s.registry,
		logger:   s.logger.With(slog.String("round", round.ID)),
		slots:    slots,
	}

	s.mu.Lock()
	s.sessions[round.ID] = session
	s.mu.Unlock()

	return session, nil
}

// Session returns the open session for a round, loading it on first use
func (s *Service) Session(ctx context.Context, roundID string) (*Session, error) {
	s.mu.Lock()
	session, ok := s.sessions[roundID]
	s.mu.Unlock()
	if ok {
		return session, nil
	}
	return s.Load(ctx, roundID)
}
