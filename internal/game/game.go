// internal/game/game.go
package game

import (
	"github.com/couchbaselabs/logg"

	"othello_go/internal/board"
)

type EndState int

const (
	BlackWin EndState = iota
	WhiteWin
	Draw
)

func (e EndState) String() string {
	switch e {
	case BlackWin:
		return "black wins"
	case WhiteWin:
		return "white wins"
	default:
		return "draw"
	}
}

// Turn records one played move.
type Turn struct {
	Mover   board.Cell
	Pos     board.Position
	Flipped int
}

type Outcome struct {
	Board  board.Board
	Winner board.Cell
	Black  int
	White  int
	Turns  []Turn
	Passes int
}

func (o Outcome) State() EndState {
	switch o.Winner {
	case board.Black:
		return BlackWin
	case board.White:
		return WhiteWin
	default:
		return Draw
	}
}

// Game alternates two players from the starting position until neither
// can move. Black moves first.
type Game struct {
	ID    string
	black Player
	white Player
}

func New(id string, black, white Player) *Game {
	return &Game{ID: id, black: black, white: white}
}

func (g *Game) player(c board.Cell) Player {
	if c == board.Black {
		return g.black
	}
	return g.white
}

// Play runs the game to completion. A player that returns no move or an
// illegal move while it has a legal one is a contract violation.
func (g *Game) Play() Outcome {
	b := board.New()
	mover := board.Black
	out := Outcome{Turns: make([]Turn, 0, board.Cells)}

	for !board.GameOver(&b) {
		if !board.CanMove(&b, mover) {
			logg.LogTo("GAME", "%s: no legal moves for %v, passing", g.ID, mover)
			out.Passes++
			mover = board.Opponent(mover)
			continue
		}

		p := g.player(mover)
		pos, ok := p.Move(b, mover)
		if !ok || !board.IsLegal(&b, mover, pos) {
			logg.LogPanic("%s: illegal move by %s (%v): %v", g.ID, p.Name(), mover, pos)
		}
		flipped := b.Apply(mover, pos)
		out.Turns = append(out.Turns, Turn{Mover: mover, Pos: pos, Flipped: flipped})
		logg.LogTo("GAME", "%s: %s (%v) played %v, flipped %d", g.ID, p.Name(), mover, pos, flipped)
		mover = board.Opponent(mover)
	}

	out.Board = b
	out.Winner = board.Winner(&b)
	out.Black = board.PieceCount(&b, board.Black)
	out.White = board.PieceCount(&b, board.White)
	logg.LogTo("GAME", "%s: game over, %s %d | %s %d, %v",
		g.ID, g.black.Name(), out.Black, g.white.Name(), out.White, out.State())
	return out
}
