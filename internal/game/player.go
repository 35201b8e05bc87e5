// internal/game/player.go
package game

import (
	"fmt"
	"math/rand"

	"github.com/couchbaselabs/logg"

	"othello_go/internal/board"
	"othello_go/internal/search"
)

// Player produces a move for mover on the current board. ok is false only
// when mover has no legal move.
type Player interface {
	Name() string
	Move(b board.Board, mover board.Cell) (pos board.Position, ok bool)
}

// Computer plays the searched best move.
type Computer struct {
	name     string
	searcher *search.Searcher
}

func NewComputer(name string, cfg search.Config) (*Computer, error) {
	s, err := search.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("computer %q: %w", name, err)
	}
	sc := s.Config()
	logg.LogTo("DEBUG", "computer %q: depth=%d endgame=%d workers=%d cache_pow=%d",
		name, sc.MaxDepth, sc.EndGameDepth, sc.Workers, sc.EvalCachePow)
	return &Computer{name: name, searcher: s}, nil
}

func (c *Computer) Name() string { return c.name }

func (c *Computer) Move(b board.Board, mover board.Cell) (board.Position, bool) {
	return c.searcher.ChooseMove(&b, mover)
}

func (c *Computer) LastStats() search.Stats { return c.searcher.LastStats() }

// Random plays a uniformly chosen legal move.
type Random struct {
	name string
	rng  *rand.Rand
}

func NewRandom(name string, seed int64) *Random {
	return &Random{name: name, rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) Name() string { return r.name }

func (r *Random) Move(b board.Board, mover board.Cell) (board.Position, bool) {
	moves := board.LegalPositions(&b, mover)
	if len(moves) == 0 {
		return board.NoPosition, false
	}
	return moves[r.rng.Intn(len(moves))], true
}
