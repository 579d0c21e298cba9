package solver

import (
	"errors"
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/vovakirdan/term2048/internal/game"
)

// Spawn odds used by chance nodes.
const (
	spawn2Prob = 0.9
	spawn4Prob = 0.1
)

const (
	// maxSample bounds the empty cells expanded per chance node.
	maxSample = 6

	// deadPenalty is subtracted from boards with no legal move.
	deadPenalty = 1000.0
)

// ErrInvalidDepth is returned for non-positive search depths.
var ErrInvalidDepth = errors.New("solver: depth must be positive")

type cacheKey struct {
	grid  game.Grid
	depth int
}

// Expectimax searches depth player moves ahead, averaging over spawns.
type Expectimax struct {
	eval  Evaluator
	depth int
	cache *lru.Cache[cacheKey, float64]
}

// NewExpectimax creates a search with an evaluation cache of cacheSize entries.
func NewExpectimax(eval Evaluator, depth, cacheSize int) (*Expectimax, error) {
	if depth <= 0 {
		return nil, ErrInvalidDepth
	}
	cache, err := lru.New[cacheKey, float64](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("solver: cannot create cache: %w", err)
	}
	return &Expectimax{eval: eval, depth: depth, cache: cache}, nil
}

// Name implements registry.Strategy.
func (e *Expectimax) Name() string { return "expectimax" }

// Depth returns the search depth in player moves.
func (e *Expectimax) Depth() int { return e.depth }

// CacheLen returns the number of cached chance-node values.
func (e *Expectimax) CacheLen() int { return e.cache.Len() }

// BestMove returns the move with the highest expected value.
func (e *Expectimax) BestMove(g game.Grid) (game.Direction, bool) {
	best := game.Direction(0)
	bestScore := math.Inf(-1)
	found := false

	for _, d := range game.Directions {
		res := game.Slide(g, d)
		if !res.Changed {
			continue
		}
		score := e.chance(res.Grid, e.depth-1)
		if !found || score > bestScore {
			best, bestScore, found = d, score, true
		}
	}

	return best, found
}

// chance averages over spawns on a sample of the empty cells.
func (e *Expectimax) chance(g game.Grid, depth int) float64 {
	empty := g.EmptyCells()
	if len(empty) == 0 || depth <= 0 {
		return e.eval.Evaluate(g)
	}

	key := cacheKey{grid: g, depth: depth}
	if v, ok := e.cache.Get(key); ok {
		return v
	}

	cells := sampleCells(empty)
	total := 0.0
	for _, idx := range cells {
		with2 := g
		with2[idx] = 2
		with4 := g
		with4[idx] = 4
		total += spawn2Prob*e.max(with2, depth) + spawn4Prob*e.max(with4, depth)
	}
	v := total / float64(len(cells))

	e.cache.Add(key, v)
	return v
}

// max picks the best player move.
func (e *Expectimax) max(g game.Grid, depth int) float64 {
	if depth <= 0 {
		return e.eval.Evaluate(g)
	}

	best := math.Inf(-1)
	moved := false
	for _, d := range game.Directions {
		res := game.Slide(g, d)
		if !res.Changed {
			continue
		}
		moved = true
		if s := e.chance(res.Grid, depth-1); s > best {
			best = s
		}
	}

	if !moved {
		return e.eval.Evaluate(g) - deadPenalty
	}
	return best
}

// sampleCells spreads at most maxSample picks evenly over the empty cells.
func sampleCells(empty []int) []int {
	if len(empty) <= maxSample {
		return empty
	}
	out := make([]int, maxSample)
	for i := range out {
		out[i] = empty[i*len(empty)/maxSample]
	}
	return out
}
