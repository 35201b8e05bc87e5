// File: internal/tt/tt.go
package tt

import (
	"sync"
	"sync/atomic"

	"othello_go/internal/board"
)

// Entry is one cached static evaluation.
type Entry struct {
	Hash        uint64 // zobrist hash; also selects the slot
	Board       board.Board
	Perspective board.Cell // Empty marks an unused slot
	Score       int32
}

// MaxPow bounds the table at 2^26 slots.
const MaxPow = 26

// Table is a direct-mapped evaluation cache. A probe only hits when the
// stored board and perspective match exactly, so a cached score is always
// the score Evaluate would return.
type Table struct {
	mu       sync.RWMutex
	entries  []Entry
	sizeMask uint64
	used     int

	hits   atomic.Int64
	misses atomic.Int64
}

// New creates a table with 2^pow slots.
func New(pow uint8) *Table {
	if pow > MaxPow {
		pow = MaxPow
	}
	size := 1 << pow
	return &Table{
		entries:  make([]Entry, size),
		sizeMask: uint64(size - 1),
	}
}

// Probe looks up the score of b from perspective's side.
func (t *Table) Probe(hash uint64, b *board.Board, perspective board.Cell) (int32, bool) {
	t.mu.RLock()
	e := &t.entries[hash&t.sizeMask]
	hit := e.Perspective == perspective && e.Hash == hash && e.Board == *b
	score := e.Score
	t.mu.RUnlock()

	if hit {
		t.hits.Add(1)
		return score, true
	}
	t.misses.Add(1)
	return 0, false
}

// Store always replaces whatever occupied the slot.
func (t *Table) Store(hash uint64, b *board.Board, perspective board.Cell, score int32) {
	board.MustPlayer(perspective)
	t.mu.Lock()
	e := &t.entries[hash&t.sizeMask]
	if e.Perspective == board.Empty {
		t.used++
	}
	e.Hash, e.Board, e.Perspective, e.Score = hash, *b, perspective, score
	t.mu.Unlock()
}

// Clear empties every slot and resets the counters.
func (t *Table) Clear() {
	t.mu.Lock()
	for i := range t.entries {
		t.entries[i] = Entry{}
	}
	t.used = 0
	t.mu.Unlock()
	t.hits.Store(0)
	t.misses.Store(0)
}

// Len is the number of occupied slots.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.used
}

func (t *Table) Cap() int { return len(t.entries) }

func (t *Table) Hits() int64   { return t.hits.Load() }
func (t *Table) Misses() int64 { return t.misses.Load() }
