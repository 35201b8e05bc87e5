// internal/search/config.go
package search

import (
	"errors"
	"fmt"

	"othello_go/internal/board"
	"othello_go/internal/tt"
)

var ErrInvalidConfig = errors.New("invalid search config")

type Config struct {
	MaxDepth     int   `json:"max_depth"`
	EndGameDepth int   `json:"end_game_depth"` // search to completion at or below this many empty cells
	Workers      int   `json:"workers"`        // root workers; <= 1 searches serially
	EvalCachePow uint8 `json:"eval_cache_pow"` // 0 disables the evaluation cache
}

func DefaultConfig() Config {
	return Config{
		MaxDepth:     7,
		EndGameDepth: 11,
		Workers:      1,
		EvalCachePow: 16,
	}
}

func (c Config) Validate() error {
	switch {
	case c.MaxDepth < 1:
		return fmt.Errorf("max depth %d: %w", c.MaxDepth, ErrInvalidConfig)
	case c.EndGameDepth < 0 || c.EndGameDepth > board.Cells:
		return fmt.Errorf("end game depth %d: %w", c.EndGameDepth, ErrInvalidConfig)
	case c.Workers < 0:
		return fmt.Errorf("workers %d: %w", c.Workers, ErrInvalidConfig)
	case c.EvalCachePow > tt.MaxPow:
		return fmt.Errorf("eval cache pow %d exceeds %d: %w", c.EvalCachePow, tt.MaxPow, ErrInvalidConfig)
	}
	return nil
}
