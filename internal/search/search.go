// internal/search/search.go
package search

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/couchbaselabs/logg"

	"othello_go/internal/board"
	"othello_go/internal/eval"
	"othello_go/internal/tt"
	"othello_go/internal/zobrist"
)

// Candidate is one expanded move: where it was played, the board it leads
// to and its score from the mover's side.
type Candidate struct {
	Pos   board.Position
	Board board.Board
	Score int32
}

type Stats struct {
	Move      board.Position
	Score     int32
	Nodes     int64
	Leaves    int64
	Cutoffs   int64
	CacheHits int64
	ToEnd     bool
	Elapsed   time.Duration
}

// Searcher picks moves for one side. It may be reused across moves but
// must not run two ChooseMove calls at once.
type Searcher struct {
	cfg   Config
	cache *tt.Table

	// toEnd is set for the duration of one ChooseMove call when few
	// enough empty cells remain to search until the game ends.
	toEnd bool

	nodes, leaves, cutoffs, cacheHits atomic.Int64
	last                              Stats
}

/* ──────────────── public API ──────────────── */

func New(cfg Config) (*Searcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Searcher{cfg: cfg}
	if cfg.EvalCachePow > 0 {
		s.cache = tt.New(cfg.EvalCachePow)
	}
	return s, nil
}

func (s *Searcher) Config() Config { return s.cfg }

// LastStats describes the most recent ChooseMove call.
func (s *Searcher) LastStats() Stats { return s.last }

// ChooseMove returns mover's best move, or (NoPosition, false) when mover
// has no legal move.
func (s *Searcher) ChooseMove(b *board.Board, mover board.Cell) (board.Position, bool) {
	board.MustPlayer(mover)
	if !board.CanMove(b, mover) {
		return board.NoPosition, false
	}

	start := time.Now()
	s.nodes.Store(0)
	s.leaves.Store(0)
	s.cutoffs.Store(0)
	s.cacheHits.Store(0)

	s.toEnd = board.EmptyCount(b) <= s.cfg.EndGameDepth
	var best Candidate
	if s.cfg.Workers > 1 {
		best = s.searchRootParallel(b, mover)
	} else {
		best = s.Search(b, mover, -eval.Infinity, eval.Infinity, 1)
	}
	toEnd := s.toEnd
	s.toEnd = false

	s.last = Stats{
		Move:      best.Pos,
		Score:     best.Score,
		Nodes:     s.nodes.Load(),
		Leaves:    s.leaves.Load(),
		Cutoffs:   s.cutoffs.Load(),
		CacheHits: s.cacheHits.Load(),
		ToEnd:     toEnd,
		Elapsed:   time.Since(start),
	}
	logg.LogTo("SEARCH", "%v plays %v score=%d nodes=%d leaves=%d cutoffs=%d cache_hits=%d to_end=%v in %v",
		mover, best.Pos, best.Score, s.last.Nodes, s.last.Leaves, s.last.Cutoffs, s.last.CacheHits, toEnd, s.last.Elapsed)
	return best.Pos, true
}

/* ──────────────── negamax + alpha-beta ──────────────── */

// Search returns the best candidate for mover on b within (alpha, beta).
// ply starts at 1 for the root. A pass returns NoPosition.
func (s *Searcher) Search(b *board.Board, mover board.Cell, alpha, beta int32, ply int) Candidate {
	s.nodes.Add(1)

	/* --- leaf --- */
	if s.isLeaf(b, ply) {
		s.leaves.Add(1)
		return Candidate{Pos: board.NoPosition, Board: *b, Score: s.evaluate(b, mover)}
	}

	/* --- pass: the opponent moves on the same board --- */
	if !board.CanMove(b, mover) {
		reply := s.Search(b, board.Opponent(mover), -beta, -alpha, ply+1)
		return Candidate{Pos: board.NoPosition, Board: *b, Score: -reply.Score}
	}

	opp := board.Opponent(mover)
	var best Candidate
	for i, c := range s.expand(b, mover, ply) {
		c.Score = -s.Search(&c.Board, opp, -beta, -alpha, ply+1).Score
		if i == 0 || c.Score > best.Score {
			best = c
			alpha = max(alpha, c.Score)
			if alpha >= beta {
				s.cutoffs.Add(1)
				break // β cut
			}
		}
	}
	return best
}

// isLeaf: in end-game mode only finished games are leaves; otherwise the
// depth limit applies below the root.
func (s *Searcher) isLeaf(b *board.Board, ply int) bool {
	if s.toEnd {
		return board.GameOver(b)
	}
	return ply > 1 && ply >= s.cfg.MaxDepth
}

/* ──────────────── expansion & ordering ──────────────── */

// expand builds one candidate per legal move in row-major order. In the
// upper half of the tree the candidates are then stable-sorted by how many
// moves the mover itself has afterwards, fewest first.
func (s *Searcher) expand(b *board.Board, mover board.Cell, ply int) []Candidate {
	moves := board.LegalPositions(b, mover)
	cands := make([]Candidate, len(moves))
	for i, p := range moves {
		next := *b
		next.Apply(mover, p)
		cands[i] = Candidate{Pos: p, Board: next}
	}
	if ply <= s.cfg.MaxDepth/2 {
		for i := range cands {
			cands[i].Score = int32(board.LegalCount(&cands[i].Board, mover))
		}
		sort.SliceStable(cands, func(i, j int) bool { return cands[i].Score < cands[j].Score })
	}
	return cands
}

func (s *Searcher) evaluate(b *board.Board, mover board.Cell) int32 {
	if s.cache == nil {
		return eval.Evaluate(b, mover)
	}
	h := zobrist.Hash(b)
	if score, ok := s.cache.Probe(h, b, mover); ok {
		s.cacheHits.Add(1)
		return score
	}
	score := eval.Evaluate(b, mover)
	s.cache.Store(h, b, mover, score)
	return score
}

/* ──────────────── parallel root ──────────────── */

// searchRootParallel gives every root child a full window on its own
// worker and keeps the first child, in search order, with the highest
// score. That is the move and score the serial search settles on too.
func (s *Searcher) searchRootParallel(b *board.Board, mover board.Cell) Candidate {
	cands := s.expand(b, mover, 1)
	opp := board.Opponent(mover)
	s.nodes.Add(1)

	type result struct {
		idx   int
		score int32
	}
	taskCh := make(chan int, len(cands))
	resCh := make(chan result, len(cands))

	workers := min(s.cfg.Workers, len(cands))
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range taskCh {
				reply := s.Search(&cands[i].Board, opp, -eval.Infinity, eval.Infinity, 2)
				resCh <- result{idx: i, score: -reply.Score}
			}
		}()
	}
	for i := range cands {
		taskCh <- i
	}
	close(taskCh)
	wg.Wait()
	close(resCh)

	scores := make([]int32, len(cands))
	for r := range resCh {
		scores[r.idx] = r.score
	}
	best := 0
	for i := 1; i < len(cands); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	cands[best].Score = scores[best]
	return cands[best]
}
