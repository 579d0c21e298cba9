package solver

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/term2048/internal/game"
)

// Greedy picks the move whose resulting board, before the spawn, scores best.
// Merge points break ties between equally scored boards.
type Greedy struct {
	eval Evaluator
}

// NewGreedy creates a one-ply strategy.
func NewGreedy(eval Evaluator) *Greedy {
	return &Greedy{eval: eval}
}

// Name implements registry.Strategy.
func (s *Greedy) Name() string { return "greedy" }

// BestMove implements registry.Strategy.
func (s *Greedy) BestMove(g game.Grid) (game.Direction, bool) {
	best := game.Direction(0)
	bestScore, bestGain := math.Inf(-1), -1
	found := false

	for _, d := range game.Directions {
		res := game.Slide(g, d)
		if !res.Changed {
			continue
		}
		score := s.eval.Evaluate(res.Grid)
		if !found || score > bestScore || (score == bestScore && res.Gained > bestGain) {
			best, bestScore, bestGain, found = d, score, res.Gained, true
		}
	}

	return best, found
}

// Random picks uniformly among the legal moves.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a random strategy seeded with seed.
func NewRandom(seed int64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

// Name implements registry.Strategy.
func (s *Random) Name() string { return "random" }

// BestMove implements registry.Strategy.
func (s *Random) BestMove(g game.Grid) (game.Direction, bool) {
	moves := game.LegalMoves(g)
	if len(moves) == 0 {
		return 0, false
	}
	return moves[s.rng.Intn(len(moves))], true
}
