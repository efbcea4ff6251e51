package storage

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mcoot/golfcup/internal/model"
)

// Repository reads and writes the typed aggregates on top of a Store.
// Reads never fail: absent or malformed data resolves to the documented
// default. Writes are best-effort: failures are logged and swallowed so a
// storage outage never rolls back an in-memory change.
type Repository struct {
	store  Store
	logger *slog.Logger
}

// NewRepository creates a Repository over the given store
func NewRepository(store Store, logger *slog.Logger) *Repository {
	return &Repository{
		store:  store,
		logger: logger,
	}
}

// Players returns the persisted player list, or an empty list
func (r *Repository) Players(ctx context.Context) []model.Player {
	data, ok := r.read(ctx, PlayersKey())
	if !ok {
		return []model.Player{}
	}
	players, err := DecodePlayers(data)
	if err != nil {
		r.logger.Warn("discarding stored players", slog.String("error", err.Error()))
		return []model.Player{}
	}
	return players
}

// SavePlayers writes the full player list
func (r *Repository) SavePlayers(ctx context.Context, players []model.Player) {
	if players == nil {
		players = []model.Player{}
	}
	r.write(ctx, PlayersKey(), players)
}

// ClearPlayers erases the persisted player list
func (r *Repository) ClearPlayers(ctx context.Context) {
	r.delete(ctx, PlayersKey())
}

// Roster returns the active roster, or nil if none has been saved
func (r *Repository) Roster(ctx context.Context) *model.Roster {
	data, ok := r.read(ctx, RosterKey())
	if !ok {
		return nil
	}
	roster, err := DecodeRoster(data)
	if err != nil {
		r.logger.Warn("discarding stored roster", slog.String("error", err.Error()))
		return nil
	}
	return roster
}

// SaveRoster overwrites the active roster
func (r *Repository) SaveRoster(ctx context.Context, roster model.Roster) {
	r.write(ctx, RosterKey(), roster)
}

// Slots returns the saved pairing slots for a round if they match the shape
func (r *Repository) Slots(ctx context.Context, roundKey string, shape model.Shape) ([]model.Slot, bool) {
	data, ok := r.read(ctx, PairingsKey(roundKey))
	if !ok {
		return nil, false
	}
	slots, err := DecodeSlots(data, shape)
	if err != nil {
		r.logger.Warn("discarding stored pairings",
			slog.String("round", roundKey),
			slog.String("error", err.Error()),
		)
		return nil, false
	}
	return slots, true
}

// SaveSlots writes a round's pairing slots verbatim
func (r *Repository) SaveSlots(ctx context.Context, roundKey string, slots []model.Slot) {
	r.write(ctx, PairingsKey(roundKey), slots)
}

func (r *Repository) read(ctx context.Context, key string) ([]byte, bool) {
	data, err := r.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			r.logger.Warn("store read failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return nil, false
	}
	return data, true
}

func (r *Repository) write(ctx context.Context, key string, v any) {
	data, err := Encode(v)
	if err != nil {
		r.logger.Warn("encode failed", slog.String("key", key), slog.String("error", err.Error()))
		return
	}
	if err := r.store.Set(ctx, key, data); err != nil {
		r.logger.Warn("store write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (r *Repository) delete(ctx context.Context, key string) {
	if err := r.store.Delete(ctx, key); err != nil {
		r.logger.Warn("store delete failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}
