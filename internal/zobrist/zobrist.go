// File: internal/zobrist/zobrist.go
package zobrist

import "othello_go/internal/board"

const (
	Players   = 2 // Black / White
	Positions = board.Cells
	seed      = uint64(0x0dd0e11051eed)
)

var Keys [Players][Positions]uint64

func init() {
	// Fixed seed so hashes, and therefore cache behaviour, are reproducible.
	rng := splitmix64{state: seed}
	for p := 0; p < Players; p++ {
		for i := 0; i < Positions; i++ {
			v := rng.next()
			for v == 0 {
				v = rng.next()
			}
			Keys[p][i] = v
		}
	}
}

func slot(owner board.Cell) int {
	board.MustPlayer(owner)
	return int(owner - board.Black)
}

// Toggle XORs the key for (owner, pos) into hash.
// Flipping a disc is Toggle(old owner) followed by Toggle(new owner).
func Toggle(hash uint64, owner board.Cell, pos board.Position) uint64 {
	return hash ^ Keys[slot(owner)][pos.Index()]
}

// Hash computes the whole-board hash; empty cells contribute nothing.
func Hash(b *board.Board) uint64 {
	var h uint64
	for r := range b {
		for c, tok := range b[r] {
			if tok == board.Empty {
				continue
			}
			h ^= Keys[slot(tok)][r*board.Size+c]
		}
	}
	return h
}

type splitmix64 struct {
	state uint64
}

func (s *splitmix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
