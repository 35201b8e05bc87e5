package game

import (
	"testing"

	"github.com/couchbaselabs/go.assert"

	"othello_go/internal/board"
	"othello_go/internal/search"
)

func quickConfig() search.Config {
	cfg := search.DefaultConfig()
	cfg.MaxDepth = 3
	cfg.EndGameDepth = 6
	cfg.EvalCachePow = 10
	return cfg
}

func newComputer(t *testing.T, name string) *Computer {
	t.Helper()
	c, err := NewComputer(name, quickConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

// cornerGrabber always answers A1, legal or not.
type cornerGrabber struct{}

func (cornerGrabber) Name() string { return "grabber" }
func (cornerGrabber) Move(board.Board, board.Cell) (board.Position, bool) {
	return board.Position{Row: 0, Col: 0}, true
}

func TestComputerVersusRandomFinishes(t *testing.T) {
	g := New("t1", newComputer(t, "robo"), NewRandom("rand", 9))
	o := g.Play()

	assert.True(t, board.GameOver(&o.Board))
	assert.Equals(t, o.Black, board.PieceCount(&o.Board, board.Black))
	assert.Equals(t, o.White, board.PieceCount(&o.Board, board.White))
	// Every turn adds exactly one disc to the four starting ones.
	assert.Equals(t, o.Black+o.White, 4+len(o.Turns))
	assert.Equals(t, o.Winner, board.Winner(&o.Board))

	replay := board.New()
	for _, turn := range o.Turns {
		assert.True(t, board.IsLegal(&replay, turn.Mover, turn.Pos))
		assert.Equals(t, replay.Apply(turn.Mover, turn.Pos), turn.Flipped)
	}
	assert.Equals(t, replay, o.Board)
}

func TestComputerPlaysBothColours(t *testing.T) {
	o := New("t2", NewRandom("rand", 4), newComputer(t, "robo")).Play()
	assert.True(t, board.GameOver(&o.Board))
	assert.True(t, len(o.Turns) > 0)
	assert.Equals(t, o.Turns[0].Mover, board.Black)
}

func TestIllegalMovePanics(t *testing.T) {
	g := New("t3", cornerGrabber{}, NewRandom("rand", 1))
	defer func() {
		if recover() == nil {
			t.Fatalf("expected an illegal move to panic")
		}
	}()
	g.Play()
}

func TestBadComputerConfig(t *testing.T) {
	cfg := quickConfig()
	cfg.MaxDepth = 0
	_, err := NewComputer("robo", cfg)
	assert.True(t, err != nil)
}

func TestComputerReportsSearchStats(t *testing.T) {
	c := newComputer(t, "robo")
	p, ok := c.Move(board.New(), board.Black)
	assert.True(t, ok)
	st := c.LastStats()
	assert.Equals(t, st.Move, p)
	assert.True(t, st.Nodes > 0)
	assert.True(t, st.Leaves > 0)
	assert.False(t, st.ToEnd)
}

func TestComputerHasNoMove(t *testing.T) {
	var b board.Board
	b[0][0] = board.Black
	b[0][1] = board.White
	p, ok := newComputer(t, "robo").Move(b, board.White)
	assert.False(t, ok)
	assert.Equals(t, p, board.NoPosition)
}

func TestOutcomeState(t *testing.T) {
	assert.Equals(t, Outcome{Winner: board.Black}.State(), BlackWin)
	assert.Equals(t, Outcome{Winner: board.White}.State(), WhiteWin)
	assert.Equals(t, Outcome{Winner: board.Empty}.State(), Draw)
	assert.Equals(t, Draw.String(), "draw")
}

func TestRunArenaTally(t *testing.T) {
	const games = 6
	tally := RunArena(games, 3, func(i int, id string) *Game {
		return New(id, NewRandom("a", int64(i)), NewRandom("b", int64(100+i)))
	})
	assert.Equals(t, tally.Games, games)
	assert.Equals(t, tally.BlackWins+tally.WhiteWins+tally.Draws, games)
	assert.True(t, tally.Discs[0]+tally.Discs[1] <= games*board.Cells)
}

func TestNewGameIDIsUnique(t *testing.T) {
	a, b := NewGameID(), NewGameID()
	assert.True(t, a != b)
	assert.Equals(t, len(a), 36)
}

func TestRunArenaRejectsNegativeCount(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a negative game count to panic")
		}
	}()
	RunArena(-1, 2, func(int, string) *Game { return nil })
}
