// internal/eval/eval.go
package eval

import (
	"math"

	"othello_go/internal/board"
)

/*
   Static evaluation
   ─────────────────
   terminal      win / loss sentinel plus disc margin, ties flat
   positional    mirrored weight table, corner release per quadrant
*/

// ─── score sentinels ───
const (
	Infinity  = int32(math.MaxInt32) // search window bound; -Infinity never overflows
	WinScore  = int32(math.MaxInt32 / 2)
	LossScore = -WinScore
	// TieScore is the same whichever side is asking.
	TieScore = int32(math.MinInt32 / 4)
)

// weights is the top-left quadrant; the other three are mirror images.
var weights = [4][4]int32{
	{99, -8, 8, 6},
	{-8, -24, -4, -3},
	{8, -4, 7, 4},
	{6, -3, 4, 0},
}

// Evaluate scores b from perspective's point of view.
func Evaluate(b *board.Board, perspective board.Cell) int32 {
	board.MustPlayer(perspective)
	opp := board.Opponent(perspective)

	if board.GameOver(b) {
		winner := board.Winner(b)
		if winner == board.Empty {
			return TieScore
		}
		margin := int32(board.PieceCount(b, perspective) - board.PieceCount(b, opp))
		if winner == perspective {
			return WinScore + margin
		}
		return LossScore + margin
	}

	var own, other int32
	for r := int8(0); r < board.Size; r++ {
		for c := int8(0); c < board.Size; c++ {
			tok := b[r][c]
			if tok == board.Empty {
				continue
			}
			p := board.Position{Row: r, Col: c}
			w := Weight(p)
			if corner := Corner(p); b[corner.Row][corner.Col] != board.Empty {
				w = max(1, w)
			}
			switch tok {
			case perspective:
				own += w
			case opp:
				other += w
			default:
				board.MustCell(tok)
			}
		}
	}
	return own - other
}

// Weight is the raw mirrored table value for p.
func Weight(p board.Position) int32 {
	return weights[fold(p.Row)][fold(p.Col)]
}

// Corner returns the corner of the quadrant that contains p.
func Corner(p board.Position) board.Position {
	corner := board.Position{}
	if p.Row >= board.Size/2 {
		corner.Row = board.Size - 1
	}
	if p.Col >= board.Size/2 {
		corner.Col = board.Size - 1
	}
	return corner
}

func fold(x int8) int8 {
	if x < board.Size/2 {
		return x
	}
	return board.Size - 1 - x
}
