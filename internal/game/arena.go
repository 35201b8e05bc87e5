// internal/game/arena.go
package game

import (
	"github.com/couchbaselabs/logg"
	"github.com/nu7hatch/gouuid"
)

// Tally aggregates the outcomes of an arena run.
type Tally struct {
	Games     int
	BlackWins int
	WhiteWins int
	Draws     int
	Discs     [2]int // total Black / White discs over all games
}

func (t *Tally) add(o Outcome) {
	t.Games++
	switch o.State() {
	case BlackWin:
		t.BlackWins++
	case WhiteWin:
		t.WhiteWins++
	default:
		t.Draws++
	}
	t.Discs[0] += o.Black
	t.Discs[1] += o.White
}

// NewGameID returns a random v4 uuid for tagging a game in the logs.
func NewGameID() string {
	id, err := uuid.NewV4()
	if err != nil {
		logg.LogPanic("Error generating uuid: %v", err)
	}
	return id.String()
}

type arenaTask struct {
	index int
}

// RunArena plays n games on a pool of workers. newGame is called once per
// game, from the worker that plays it, so it must hand out players that
// are not shared with any other game.
func RunArena(n, workers int, newGame func(index int, id string) *Game) Tally {
	if n < 0 {
		logg.LogPanic("arena: negative game count %d", n)
	}
	if workers < 1 {
		workers = 1
	}
	tasks := make(chan arenaTask, n)
	results := make(chan Outcome, n)

	for w := 0; w < workers; w++ {
		go func() {
			for task := range tasks {
				g := newGame(task.index, NewGameID())
				o := g.Play()
				logg.LogTo("MAIN", "game %d [%s]: %v (%d-%d)", task.index, g.ID, o.State(), o.Black, o.White)
				results <- o
			}
		}()
	}
	for i := 0; i < n; i++ {
		tasks <- arenaTask{index: i}
	}
	close(tasks)

	var tally Tally
	for i := 0; i < n; i++ {
		tally.add(<-results)
	}
	return tally
}
