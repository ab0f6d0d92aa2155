// Package ranking implements the personal player power-ranking: partitioning
// the roster into ranked and pool sets, local editor operations, and the
// full-replace persistence model.
package ranking

import (
	"errors"
	"fmt"
	"sort"
)

// MaxRanked caps the ranked list size.
const MaxRanked = 50

var (
	// ErrFull is returned when adding to a ranked list that already holds
	// MaxRanked entries. The list is left unchanged.
	ErrFull = errors.New("ranking full")
	// ErrNotFound is returned when the referenced player is not in the
	// expected set.
	ErrNotFound = errors.New("player not found")
)

// Player is one roster entry.
type Player struct {
	ID       int64   `json:"id"`
	FullName string  `json:"full_name"`
	TeamID   int     `json:"team_id"`
	Position *string `json:"position,omitempty"`
}

// RankedPlayer is a player with its stored ordinal rank.
type RankedPlayer struct {
	Player
	Rank int `json:"rank"`
}

// Entry is the persisted (player, rank) pair.
type Entry struct {
	PlayerID int64 `json:"player_id"`
	Rank     int   `json:"rank"`
}

// Partition splits the roster into the ranked list (ordered by stored rank)
// and the pool (alphabetical). Ranking rows referencing unknown players are
// dropped silently.
func Partition(players []Player, entries []Entry) (ranked []RankedPlayer, pool []Player) {
	rankByID := make(map[int64]int, len(entries))
	for _, e := range entries {
		rankByID[e.PlayerID] = e.Rank
	}

	for _, p := range players {
		if r, ok := rankByID[p.ID]; ok {
			ranked = append(ranked, RankedPlayer{Player: p, Rank: r})
		} else {
			pool = append(pool, p)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Rank < ranked[j].Rank })
	sort.SliceStable(pool, func(i, j int) bool { return pool[i].FullName < pool[j].FullName })
	return ranked, pool
}

// Editor is the in-memory ranking editor. All operations are local; nothing
// touches the store until the caller persists a Snapshot.
type Editor struct {
	ranked []RankedPlayer
	pool   []Player
}

// NewEditor creates an editor over an already partitioned state.
func NewEditor(ranked []RankedPlayer, pool []Player) *Editor {
	e := &Editor{
		ranked: make([]RankedPlayer, len(ranked)),
		pool:   make([]Player, len(pool)),
	}
	copy(e.ranked, ranked)
	copy(e.pool, pool)
	return e
}

// Ranked returns the current ranked list in display order.
func (e *Editor) Ranked() []RankedPlayer {
	out := make([]RankedPlayer, len(e.ranked))
	copy(out, e.ranked)
	return out
}

// Pool returns the current pool, alphabetical.
func (e *Editor) Pool() []Player {
	out := make([]Player, len(e.pool))
	copy(out, e.pool)
	return out
}

// Add moves a player from the pool to the end of the ranked list. Rejected
// with ErrFull at MaxRanked entries; the state is untouched on any error.
func (e *Editor) Add(playerID int64) error {
	if len(e.ranked) >= MaxRanked {
		return ErrFull
	}
	idx := -1
	for i, p := range e.pool {
		if p.ID == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("add player %d: %w", playerID, ErrNotFound)
	}
	p := e.pool[idx]
	e.pool = append(e.pool[:idx], e.pool[idx+1:]...)
	e.ranked = append(e.ranked, RankedPlayer{Player: p, Rank: len(e.ranked) + 1})
	return nil
}

// Remove moves a player from the ranked list back into the pool, re-sorted
// alphabetically. Remaining ranked entries are not renumbered: display order
// defines the visible position, and authoritative ranks are recomputed at
// save time.
func (e *Editor) Remove(playerID int64) error {
	idx := -1
	for i, p := range e.ranked {
		if p.ID == playerID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("remove player %d: %w", playerID, ErrNotFound)
	}
	p := e.ranked[idx].Player
	e.ranked = append(e.ranked[:idx], e.ranked[idx+1:]...)
	e.pool = append(e.pool, p)
	sort.SliceStable(e.pool, func(i, j int) bool { return e.pool[i].FullName < e.pool[j].FullName })
	return nil
}

// Move splices the entry at from into position to — the drag operation.
func (e *Editor) Move(from, to int) error {
	n := len(e.ranked)
	if from < 0 || from >= n || to < 0 || to >= n {
		return fmt.Errorf("move %d->%d: index out of range", from, to)
	}
	if from == to {
		return nil
	}
	p := e.ranked[from]
	e.ranked = append(e.ranked[:from], e.ranked[from+1:]...)
	e.ranked = append(e.ranked[:to], append([]RankedPlayer{p}, e.ranked[to:]...)...)
	return nil
}

// Snapshot serializes the ranked list as entries with rank = index + 1,
// the payload of a full-replace save.
func (e *Editor) Snapshot() []Entry {
	out := make([]Entry, len(e.ranked))
	for i, p := range e.ranked {
		out[i] = Entry{PlayerID: p.ID, Rank: i + 1}
	}
	return out
}
