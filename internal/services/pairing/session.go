package pairing

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/mcoot/golfcup/internal/model"
	"github.com/mcoot/golfcup/internal/services/registry"
	"github.com/mcoot/golfcup/internal/storage"
)

// Session holds the working pairing selections for one round.
// Slots only store player IDs; names and teams are resolved from the
// registry whenever they are read.
type Session struct {
	round    model.Round
	shape    model.Shape
	repo     *storage.Repository
	registry *registry.Registry
	logger   *slog.Logger

	mu    sync.RWMutex
	slots []model.Slot
}

// Round returns the round this session belongs to
func (s *Session) Round() model.Round {
	return s.round
}

// Shape returns the slot layout of the session
func (s *Session) Shape() model.Shape {
	return s.shape
}

// Slots returns a copy of the current selections
func (s *Session) Slots() []model.Slot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return lo.Map(s.slots, func(slot model.Slot, _ int) model.Slot { return slot.Clone() })
}

// SetSlotField selects a player for one field of a slot. An empty ID
// clears the field. Team membership is not checked.
func (s *Session) SetSlotField(slotIndex int, field model.SlotField, playerID model.PlayerID) error {
	if slotIndex < 0 || slotIndex >= s.shape.Slots {
		return model.ErrInvalidSlot
	}
	if !s.shape.HasField(field) {
		return model.ErrInvalidField
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[slotIndex][field] = playerID
	return nil
}

// DuplicateWarning reports whether any player is selected more than once
func (s *Session) DuplicateWarning() bool {
	return len(s.DuplicateIDs()) > 0
}

// DuplicateIDs returns the players selected more than once, sorted.
// Four-player formats count every field of every slot together; singles
// count the A and B columns separately.
func (s *Session) DuplicateIDs() []model.PlayerID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return duplicates(s.shape, s.slots)
}

func duplicates(shape model.Shape, slots []model.Slot) []model.PlayerID {
	var dups []model.PlayerID
	if shape.Pooled {
		dups = lo.FindDuplicates(selected(slots, shape.Fields...))
	} else {
		for _, column := range []model.Column{model.ColumnA, model.ColumnB} {
			fields := lo.Filter(shape.Fields, func(f model.SlotField, _ int) bool { return f.Column() == column })
			dups = append(dups, lo.FindDuplicates(selected(slots, fields...))...)
		}
		dups = lo.Uniq(dups)
	}
	slices.Sort(dups)
	return dups
}

// selected collects the non-empty IDs in the given fields across all slots
func selected(slots []model.Slot, fields ...model.SlotField) []model.PlayerID {
	var ids []model.PlayerID
	for _, slot := range slots {
		for _, f := range fields {
			if id := slot[f]; id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// Options returns the players offered for a column: the registry's
// current members of that column's team
func (s *Session) Options(column model.Column) []model.Player {
	return s.registry.ListByTeam(column.Team())
}

// Resolve looks up a selected player; IDs of removed players are not found
func (s *Session) Resolve(id model.PlayerID) (model.Player, bool) {
	if id == "" {
		return model.Player{}, false
	}
	return s.registry.Get(id)
}

// Save persists the selections as they are, duplicates included
func (s *Session) Save(ctx context.Context) {
	slots := s.Slots()
	s.repo.SaveSlots(ctx, s.round.Key(), slots)

	if dups := duplicates(s.shape, slots); len(dups) > 0 {
		s.logger.Warn("pairings saved with duplicate players",
			slog.Any("player_ids", dups),
		)
	} else {
		s.logger.Info("pairings saved")
	}
}

// Clear empties every field and persists the empty layout
func (s *Session) Clear(ctx context.Context) {
	cleared := model.EmptySlots(s.shape)

	s.mu.Lock()
	s.slots = model.EmptySlots(s.shape)
	s.mu.Unlock()

	s.repo.SaveSlots(ctx, s.round.Key(), cleared)
	s.logger.Info("pairings cleared")
}
