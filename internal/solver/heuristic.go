// Package solver chooses 2048 moves: an expectimax search over player moves
// and tile spawns, a one-ply greedy strategy and a random baseline.
package solver

import (
	"math"

	"github.com/vovakirdan/term2048/internal/game"
)

// Evaluator scores a board; higher is better.
type Evaluator interface {
	Evaluate(g game.Grid) float64
}

// Heuristic is a weighted sum of board features.
type Heuristic struct {
	Empty        float64 // Per empty cell
	Monotonicity float64 // Per neighbor pair ordered toward the best corner
	Smoothness   float64 // Per unit of log2 difference between neighbors (penalty)
	Corner       float64 // Largest tile in a corner
}

// DefaultHeuristic returns weights that reach 2048 regularly at depth 2.
func DefaultHeuristic() Heuristic {
	return Heuristic{
		Empty:        2.7,
		Monotonicity: 1.0,
		Smoothness:   0.1,
		Corner:       3.0,
	}
}

// Evaluate returns the weighted feature sum.
func (h Heuristic) Evaluate(g game.Grid) float64 {
	return h.Empty*float64(len(g.EmptyCells())) +
		h.Monotonicity*monotonicity(g) -
		h.Smoothness*roughness(g) +
		h.Corner*cornerBonus(g)
}

// monotonicity counts ordered neighbor pairs for each of the four corner
// orientations and returns the best count.
func monotonicity(g game.Grid) float64 {
	best := 0.0
	for _, fromTop := range []bool{true, false} {
		for _, fromLeft := range []bool{true, false} {
			if s := orderedPairs(g, fromTop, fromLeft); s > best {
				best = s
			}
		}
	}
	return best
}

func orderedPairs(g game.Grid, fromTop, fromLeft bool) float64 {
	score := 0.0
	for i := range game.Size {
		for j := range game.Size - 1 {
			x1, x2 := j, j+1
			y1, y2 := j, j+1
			if !fromLeft {
				x1, x2 = game.Size-1-j, game.Size-2-j
			}
			if !fromTop {
				y1, y2 = game.Size-1-j, game.Size-2-j
			}
			if g.At(x1, i) >= g.At(x2, i) {
				score++
			}
			if g.At(i, y1) >= g.At(i, y2) {
				score++
			}
		}
	}
	return score
}

// roughness sums log2 differences between non-empty right and down neighbors.
func roughness(g game.Grid) float64 {
	penalty := 0.0
	for y := range game.Size {
		for x := range game.Size {
			v := g.At(x, y)
			if v == 0 {
				continue
			}
			lv := math.Log2(float64(v))
			if x < game.Size-1 {
				if r := g.At(x+1, y); r != 0 {
					penalty += math.Abs(lv - math.Log2(float64(r)))
				}
			}
			if y < game.Size-1 {
				if d := g.At(x, y+1); d != 0 {
					penalty += math.Abs(lv - math.Log2(float64(d)))
				}
			}
		}
	}
	return penalty
}

// cornerBonus is 1 when the first largest tile in row-major order sits in a corner.
func cornerBonus(g game.Grid) float64 {
	maxVal, maxIdx := 0, 0
	for i, v := range g {
		if v > maxVal {
			maxVal, maxIdx = v, i
		}
	}
	x, y := game.Coords(maxIdx)
	if (x == 0 || x == game.Size-1) && (y == 0 || y == game.Size-1) {
		return 1
	}
	return 0
}
