package game

import "math/rand"

// DefaultSpawn4 is the chance that a spawned tile is a 4 instead of a 2.
const DefaultSpawn4 = 0.10

// Spawner places new tiles into empty cells.
type Spawner struct {
	rng    *rand.Rand
	spawn4 float64
}

// NewSpawner creates a spawner drawing from rng. spawn4 is clamped to [0, 1].
func NewSpawner(rng *rand.Rand, spawn4 float64) *Spawner {
	if spawn4 < 0 {
		spawn4 = 0
	}
	if spawn4 > 1 {
		spawn4 = 1
	}
	return &Spawner{rng: rng, spawn4: spawn4}
}

// Spawn puts a 2 or a 4 into a uniformly chosen empty cell of g.
// It returns the cell index and value, or ok=false when the grid is full.
func (s *Spawner) Spawn(g *Grid) (idx, value int, ok bool) {
	empty := g.EmptyCells()
	if len(empty) == 0 {
		return 0, 0, false
	}

	idx = empty[s.rng.Intn(len(empty))]
	value = 2
	if s.rng.Float64() < s.spawn4 {
		value = 4
	}

	g[idx] = value
	return idx, value, true
}
