// File internal/board/board.go
package board

import (
	"fmt"

	"github.com/couchbaselabs/logg"
)

const (
	Size  = 8
	Cells = Size * Size
)

// Cell is the state of one square. Black moves first.
type Cell int8

const (
	Empty Cell = iota
	Black
	White
)

// Directions holds the eight compass offsets (dr, dc), row-offset major.
// Legality checks and move application both walk this same table.
var Directions = [8][2]int8{
	{-1, -1}, // UP_LEFT
	{-1, 0},  // UP
	{-1, 1},  // UP_RIGHT
	{0, -1},  // LEFT
	{0, 1},   // RIGHT
	{1, -1},  // DOWN_LEFT
	{1, 0},   // DOWN
	{1, 1},   // DOWN_RIGHT
}

// Board is indexed [row][col]. It is a plain value: assigning it copies it.
type Board [Size][Size]Cell

// Position is a (row, col) pair on the grid.
type Position struct {
	Row, Col int8
}

// NoPosition is returned when there is no move to report.
var NoPosition = Position{Row: -1, Col: -1}

// --------------------- construction & reset ------------------------

// New returns a board in the starting configuration.
func New() Board {
	var b Board
	b.Reset()
	return b
}

func (b *Board) Reset() {
	*b = Board{}
	b[3][4] = Black
	b[4][3] = Black
	b[3][3] = White
	b[4][4] = White
}

// -------------------- shared helpers -----------------------------

func (b *Board) At(pos Position) Cell {
	mustPosition(pos)
	return b[pos.Row][pos.Col]
}

func (b *Board) Set(pos Position, c Cell) {
	mustPosition(pos)
	mustCell(c)
	b[pos.Row][pos.Col] = c
}

// Valid reports whether both coordinates lie in [0,7].
func (p Position) Valid() bool {
	return p.Row >= 0 && p.Row < Size && p.Col >= 0 && p.Col < Size
}

// Step returns the neighbour of p along dir; the result may be off the grid.
func (p Position) Step(dir [2]int8) Position {
	return Position{Row: p.Row + dir[0], Col: p.Col + dir[1]}
}

// Index maps p to 0..63, row-major.
func (p Position) Index() int { return int(p.Row)*Size + int(p.Col) }

// PositionAt is the inverse of Index.
func PositionAt(idx int) Position {
	return Position{Row: int8(idx / Size), Col: int8(idx % Size)}
}

// String renders the column letter followed by the row digit, e.g. "D3".
func (p Position) String() string {
	if !p.Valid() {
		return "--"
	}
	return string([]byte{'A' + byte(p.Col), '1' + byte(p.Row)})
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return fmt.Sprintf("Cell(%d)", int8(c))
	}
}

// Opponent returns the other owner. Empty maps to Empty.
func Opponent(c Cell) Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	case Empty:
		return Empty
	}
	logg.LogPanic("board: invalid cell value %d", int8(c))
	return Empty
}

// PieceCount counts the cells in state owner. Counting Empty is allowed.
func PieceCount(b *Board, owner Cell) int {
	mustCell(owner)
	n := 0
	for r := range b {
		for c := range b[r] {
			if b[r][c] == owner {
				n++
			}
		}
	}
	return n
}

func EmptyCount(b *Board) int { return PieceCount(b, Empty) }

// Winner is the owner with strictly more pieces, or Empty on a tie.
func Winner(b *Board) Cell {
	black, white := PieceCount(b, Black), PieceCount(b, White)
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	default:
		return Empty
	}
}

// -------------------- contract checks -----------------------------

func mustPosition(pos Position) {
	if !pos.Valid() {
		logg.LogPanic("board: position (%d,%d) out of range", pos.Row, pos.Col)
	}
}

func mustCell(c Cell) {
	if c != Empty && c != Black && c != White {
		logg.LogPanic("board: invalid cell value %d", int8(c))
	}
}

func mustOwner(c Cell) {
	if c != Black && c != White {
		logg.LogPanic("board: %v is not a player", c)
	}
}

func mustDirection(dir [2]int8) {
	dr, dc := dir[0], dir[1]
	if dr < -1 || dr > 1 || dc < -1 || dc > 1 || (dr == 0 && dc == 0) {
		logg.LogPanic("board: (%d,%d) is not a unit direction", dr, dc)
	}
}

// MustPlayer is the owner check for callers outside this package.
func MustPlayer(c Cell) { mustOwner(c) }

// MustCell panics unless c is Empty, Black or White.
func MustCell(c Cell) { mustCell(c) }
