package ranking

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roster(n int) []Player {
	players := make([]Player, n)
	for i := range players {
		players[i] = Player{ID: int64(i + 1), FullName: fmt.Sprintf("Player %02d", i+1)}
	}
	return players
}

func TestPartition(t *testing.T) {
	players := []Player{
		{ID: 3, FullName: "Curry"},
		{ID: 7, FullName: "Antetokounmpo"},
		{ID: 9, FullName: "Doncic"},
		{ID: 2, FullName: "Brunson"},
	}
	entries := []Entry{
		{PlayerID: 9, Rank: 2},
		{PlayerID: 7, Rank: 1},
		{PlayerID: 404, Rank: 3}, // unknown player, dropped
	}

	ranked, pool := Partition(players, entries)

	require.Len(t, ranked, 2)
	assert.Equal(t, int64(7), ranked[0].ID)
	assert.Equal(t, int64(9), ranked[1].ID)

	require.Len(t, pool, 2)
	assert.Equal(t, "Brunson", pool[0].FullName)
	assert.Equal(t, "Curry", pool[1].FullName)
}

func TestEditorAddRemove(t *testing.T) {
	_, pool := Partition(roster(3), nil)
	e := NewEditor(nil, pool)

	require.NoError(t, e.Add(2))
	require.NoError(t, e.Add(3))
	require.Len(t, e.Ranked(), 2)
	assert.Equal(t, int64(2), e.Ranked()[0].ID)
	require.Len(t, e.Pool(), 1)

	err := e.Add(99)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, e.Remove(2))
	require.Len(t, e.Ranked(), 1)
	assert.Equal(t, int64(3), e.Ranked()[0].ID)
	// Removed player returns to the pool alphabetically.
	assert.Equal(t, "Player 01", e.Pool()[0].FullName)
	assert.Equal(t, "Player 02", e.Pool()[1].FullName)

	assert.ErrorIs(t, e.Remove(2), ErrNotFound)
}

func TestEditorRejectsFiftyFirst(t *testing.T) {
	_, pool := Partition(roster(MaxRanked+1), nil)
	e := NewEditor(nil, pool)

	for i := 1; i <= MaxRanked; i++ {
		require.NoError(t, e.Add(int64(i)))
	}

	before := e.Ranked()
	err := e.Add(int64(MaxRanked + 1))
	assert.ErrorIs(t, err, ErrFull)
	// List unchanged after the rejection.
	assert.Equal(t, before, e.Ranked())
	assert.Len(t, e.Pool(), 1)
}

func TestEditorMove(t *testing.T) {
	_, pool := Partition(roster(4), nil)
	e := NewEditor(nil, pool)
	for i := 1; i <= 4; i++ {
		require.NoError(t, e.Add(int64(i)))
	}

	require.NoError(t, e.Move(3, 0))
	ids := []int64{}
	for _, p := range e.Ranked() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []int64{4, 1, 2, 3}, ids)

	assert.Error(t, e.Move(0, 9))
	assert.NoError(t, e.Move(2, 2))
}

func TestSnapshotRanksFollowDisplayOrder(t *testing.T) {
	e := NewEditor([]RankedPlayer{
		{Player: Player{ID: 7}, Rank: 3},
		{Player: Player{ID: 3}, Rank: 8},
		{Player: Player{ID: 9}, Rank: 21},
	}, nil)

	// Stored ranks are sparse; the snapshot renumbers contiguously.
	snap := e.Snapshot()
	assert.Equal(t, []Entry{
		{PlayerID: 7, Rank: 1},
		{PlayerID: 3, Rank: 2},
		{PlayerID: 9, Rank: 3},
	}, snap)
}
