// File internal/board/rules.go
package board

// InvalidLine marks a direction in which no line can be closed.
const InvalidLine = -1

// ---------------- line walk -----------------

// CountFlipsForDirection walks from the neighbour of pos along dir.
// It returns InvalidLine when the walk leaves the grid or meets an empty
// cell before a mover disc, 0 when the neighbour is already the mover's,
// and otherwise the number of opponent discs passed before the closing
// mover disc. The walk is at most 7 steps long. dir must be one of
// Directions.
func CountFlipsForDirection(b *Board, mover Cell, pos Position, dir [2]int8) int {
	mustOwner(mover)
	mustPosition(pos)
	mustDirection(dir)
	opp := Opponent(mover)
	n := 0
	for next := pos.Step(dir); next.Valid(); next = next.Step(dir) {
		switch c := b[next.Row][next.Col]; c {
		case Empty:
			return InvalidLine
		case mover:
			return n
		case opp:
			n++
		default:
			mustCell(c)
		}
	}
	return InvalidLine
}

// --------------- legality ----------------

// CountMove returns how many discs mover would flip by playing pos.
// Zero means the move is illegal; an occupied target always yields zero.
func CountMove(b *Board, mover Cell, pos Position) int {
	mustOwner(mover)
	mustPosition(pos)
	if b[pos.Row][pos.Col] != Empty {
		return 0
	}
	total := 0
	for _, d := range Directions {
		if n := CountFlipsForDirection(b, mover, pos, d); n != InvalidLine {
			total += n
		}
	}
	return total
}

// IsLegal is the turn-loop query: unlike CountMove it tolerates an Empty
// mover and off-grid positions and simply answers false.
func IsLegal(b *Board, mover Cell, pos Position) bool {
	if mover != Black && mover != White {
		return false
	}
	if !pos.Valid() {
		return false
	}
	return CountMove(b, mover, pos) > 0
}

// LegalPositions lists mover's legal targets in row-major order.
func LegalPositions(b *Board, mover Cell) []Position {
	out := make([]Position, 0, 16)
	for idx := 0; idx < Cells; idx++ {
		p := PositionAt(idx)
		if CountMove(b, mover, p) > 0 {
			out = append(out, p)
		}
	}
	return out
}

func LegalCount(b *Board, mover Cell) int {
	n := 0
	for idx := 0; idx < Cells; idx++ {
		if CountMove(b, mover, PositionAt(idx)) > 0 {
			n++
		}
	}
	return n
}

// CanMove stops at the first legal cell.
func CanMove(b *Board, mover Cell) bool {
	for idx := 0; idx < Cells; idx++ {
		if CountMove(b, mover, PositionAt(idx)) > 0 {
			return true
		}
	}
	return false
}

// GameOver is true once neither side can move, full board or not.
func GameOver(b *Board) bool {
	return !CanMove(b, Black) && !CanMove(b, White)
}

// ----------------- mutation ---------------------

// Apply plays mover at pos and returns the number of discs flipped.
// Playing onto an occupied cell is a no-op returning 0; callers check
// legality first.
func (b *Board) Apply(mover Cell, pos Position) int {
	mustOwner(mover)
	mustPosition(pos)
	if b[pos.Row][pos.Col] != Empty {
		return 0
	}
	// Counts are taken before the target is placed so each line is
	// judged against the pre-move board.
	var lines [len(Directions)]int
	for i, d := range Directions {
		lines[i] = CountFlipsForDirection(b, mover, pos, d)
	}

	b[pos.Row][pos.Col] = mover
	total := 0
	for i, d := range Directions {
		n := lines[i]
		if n <= 0 {
			continue
		}
		next := pos
		for k := 0; k < n; k++ {
			next = next.Step(d)
			b[next.Row][next.Col] = mover
		}
		total += n
	}
	return total
}
