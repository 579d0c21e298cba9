package solver

import "github.com/vovakirdan/term2048/internal/registry"

// Ensure strategies implement registry.Strategy.
var (
	_ registry.Strategy = (*Expectimax)(nil)
	_ registry.Strategy = (*Greedy)(nil)
	_ registry.Strategy = (*Random)(nil)
)

func init() {
	registry.Register("expectimax", "Expectimax search over moves and spawns", func(opts registry.Options) (registry.Strategy, error) {
		s, err := NewExpectimax(DefaultHeuristic(), opts.Depth, opts.CacheSize)
		if err != nil {
			return nil, err
		}
		return s, nil
	})
	registry.Register("greedy", "Best board after one move", func(registry.Options) (registry.Strategy, error) {
		return NewGreedy(DefaultHeuristic()), nil
	})
	registry.Register("random", "Uniformly random legal move", func(opts registry.Options) (registry.Strategy, error) {
		return NewRandom(opts.Seed), nil
	})
}
