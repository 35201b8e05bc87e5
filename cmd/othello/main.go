package main

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/couchbaselabs/logg"

	"othello_go/internal/game"
	"othello_go/internal/search"
)

func main() {
	// ──────── flags ────────
	def := search.DefaultConfig()
	var (
		games         = flag.Int("games", 1, "number of games to play")
		workers       = flag.Int("workers", 1, "games played in parallel")
		blackKind     = flag.String("black", "computer", "black player: computer | random")
		whiteKind     = flag.String("white", "random", "white player: computer | random")
		depth         = flag.Int("depth", def.MaxDepth, "search depth in plies")
		endGame       = flag.Int("endgame", def.EndGameDepth, "search to the end when this many cells or fewer are empty")
		searchWorkers = flag.Int("search-workers", def.Workers, "workers sharing the root of each search (1 = serial)")
		cachePow      = flag.Uint("cache-pow", uint(def.EvalCachePow), "eval cache holds 2^n entries, 0 disables it")
		seed          = flag.Int64("seed", 0, "seed for random players, 0 picks one from the clock")
		logKeys       = flag.String("log", "MAIN,GAME", "comma separated log keys, e.g. MAIN,GAME,SEARCH,DEBUG")
	)
	flag.Parse()

	logg.LogKeys["MAIN"] = true
	logg.ParseLogFlags(strings.Split(*logKeys, ","))

	cfg := search.Config{
		MaxDepth:     *depth,
		EndGameDepth: *endGame,
		Workers:      *searchWorkers,
		EvalCachePow: uint8(min(*cachePow, 255)),
	}
	if *games < 0 {
		logg.LogFatal("Invalid -games %d, want 0 or more", *games)
	}
	if err := cfg.Validate(); err != nil {
		logg.LogFatal("Invalid search settings: %v", err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	logg.LogTo("MAIN", "Othello arena: %d games, black=%s white=%s, depth=%d endgame=%d seed=%d",
		*games, *blackKind, *whiteKind, cfg.MaxDepth, cfg.EndGameDepth, *seed)

	newPlayer := func(kind, name string, seed int64) game.Player {
		switch kind {
		case "computer":
			c, err := game.NewComputer(name, cfg)
			if err != nil {
				logg.LogFatal("%v", err)
			}
			return c
		case "random":
			return game.NewRandom(name, seed)
		}
		logg.LogFatal("Unknown player kind %q, want computer or random", kind)
		return nil
	}

	start := time.Now()
	tally := game.RunArena(*games, *workers, func(i int, id string) *game.Game {
		black := newPlayer(*blackKind, "black-"+*blackKind, *seed+int64(2*i))
		white := newPlayer(*whiteKind, "white-"+*whiteKind, *seed+int64(2*i+1))
		return game.New(id, black, white)
	})

	logg.LogTo("MAIN", "Finished %d games in %v", tally.Games, time.Since(start))
	fmt.Printf("black %d | white %d | draws %d | discs %d-%d\n",
		tally.BlackWins, tally.WhiteWins, tally.Draws, tally.Discs[0], tally.Discs[1])
}
