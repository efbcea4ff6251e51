// Package balance splits players into two teams by handicap index.
package balance

import (
	"cmp"
	"slices"

	"github.com/mcoot/golfcup/internal/model"
)

// Split is the result of balancing: two disjoint teams covering the input
type Split struct {
	TeamA []model.Player
	TeamB []model.Player
}

// Balance sorts players by index ascending (strongest first) and deals them
// alternately to A and B, starting with A. Ties keep their input order, so
// the same input order always yields the same split. The input slice is not
// modified and the returned players carry their new team label.
func Balance(players []model.Player) (Split, error) {
	if len(players) < 2 {
		return Split{}, model.ErrInsufficientPlayers
	}

	sorted := slices.Clone(players)
	slices.SortStableFunc(sorted, func(a, b model.Player) int {
		return cmp.Compare(a.Index, b.Index)
	})

	split := Split{
		TeamA: make([]model.Player, 0, (len(sorted)+1)/2),
		TeamB: make([]model.Player, 0, len(sorted)/2),
	}
	for i, p := range sorted {
		if i%2 == 0 {
			p.Team = model.TeamA
			split.TeamA = append(split.TeamA, p)
		} else {
			p.Team = model.TeamB
			split.TeamB = append(split.TeamB, p)
		}
	}
	return split, nil
}

// Assignments returns the team label for every balanced player
func (s Split) Assignments() map[model.PlayerID]model.Team {
	result := make(map[model.PlayerID]model.Team, len(s.TeamA)+len(s.TeamB))
	for _, p := range s.TeamA {
		result[p.ID] = model.TeamA
	}
	for _, p := range s.TeamB {
		result[p.ID] = model.TeamB
	}
	return result
}

// TotalIndex sums the handicap indices of a team
func TotalIndex(team []model.Player) float64 {
	var total float64
	for _, p := range team {
		total += p.Index
	}
	return total
}
