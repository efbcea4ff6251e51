package balance

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/golfcup/internal/model"
)

func players(indices ...float64) []model.Player {
	result := make([]model.Player, len(indices))
	for i, idx := range indices {
		result[i] = model.Player{
			ID:    model.PlayerID(fmt.Sprintf("p%d", i)),
			Name:  fmt.Sprintf("Player %d", i),
			Index: idx,
			Team:  model.TeamUnassigned,
		}
	}
	return result
}

func indices(team []model.Player) []float64 {
	result := make([]float64, len(team))
	for i, p := range team {
		result[i] = p.Index
	}
	return result
}

func TestBalanceSnakeAssignment(t *testing.T) {
	split, err := Balance(players(1, 5, 9, 13))
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 9}, indices(split.TeamA))
	assert.Equal(t, []float64{5, 13}, indices(split.TeamB))
}

func TestBalanceSortsUnorderedInput(t *testing.T) {
	split, err := Balance(players(13, 1, 9, 5))
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 9}, indices(split.TeamA))
	assert.Equal(t, []float64{5, 13}, indices(split.TeamB))
}

func TestBalanceLabelsTeams(t *testing.T) {
	split, err := Balance(players(3, 7, 11))
	require.NoError(t, err)

	for _, p := range split.TeamA {
		assert.Equal(t, model.TeamA, p.Team)
	}
	for _, p := range split.TeamB {
		assert.Equal(t, model.TeamB, p.Team)
	}
}

func TestBalancePartitionsInput(t *testing.T) {
	for n := 2; n <= 11; n++ {
		input := make([]float64, n)
		for i := range input {
			input[i] = float64((i * 7) % 5) // plenty of ties
		}
		ps := players(input...)

		split, err := Balance(ps)
		require.NoError(t, err)

		var ids []model.PlayerID
		for _, p := range append(split.TeamA, split.TeamB...) {
			ids = append(ids, p.ID)
		}
		var want []model.PlayerID
		for _, p := range ps {
			want = append(want, p.ID)
		}
		assert.ElementsMatch(t, want, ids, "n=%d", n)

		diff := len(split.TeamA) - len(split.TeamB)
		assert.True(t, diff == 0 || diff == 1, "n=%d sizes %d/%d", n, len(split.TeamA), len(split.TeamB))
	}
}

func TestBalanceTiesKeepInputOrder(t *testing.T) {
	ps := players(5, 5, 5, 5)

	split, err := Balance(ps)
	require.NoError(t, err)

	assert.Equal(t, []model.PlayerID{"p0", "p2"}, []model.PlayerID{split.TeamA[0].ID, split.TeamA[1].ID})
	assert.Equal(t, []model.PlayerID{"p1", "p3"}, []model.PlayerID{split.TeamB[0].ID, split.TeamB[1].ID})
}

func TestBalanceIsDeterministic(t *testing.T) {
	ps := players(4, 2, 4, 8, 2, 0)

	first, err := Balance(ps)
	require.NoError(t, err)
	second, err := Balance(ps)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBalanceDoesNotMutateInput(t *testing.T) {
	ps := players(9, 1, 5)
	before := make([]model.Player, len(ps))
	copy(before, ps)

	_, err := Balance(ps)
	require.NoError(t, err)

	assert.Equal(t, before, ps)
}

func TestBalanceNegativeIndices(t *testing.T) {
	split, err := Balance(players(0, -2.5, 3.1))
	require.NoError(t, err)

	assert.Equal(t, []float64{-2.5, 3.1}, indices(split.TeamA))
	assert.Equal(t, []float64{0}, indices(split.TeamB))
}

func TestBalanceInsufficientPlayers(t *testing.T) {
	_, err := Balance(nil)
	assert.ErrorIs(t, err, model.ErrInsufficientPlayers)

	_, err = Balance(players(3))
	assert.ErrorIs(t, err, model.ErrInsufficientPlayers)
}

func TestAssignments(t *testing.T) {
	split, err := Balance(players(1, 5, 9))
	require.NoError(t, err)

	assert.Equal(t, map[model.PlayerID]model.Team{
		"p0": model.TeamA,
		"p1": model.TeamB,
		"p2": model.TeamA,
	}, split.Assignments())
}

func TestTotalIndex(t *testing.T) {
	assert.InDelta(t, 10.5, TotalIndex(players(1.5, 9)), 1e-9)
	assert.Zero(t, TotalIndex(nil))
}
