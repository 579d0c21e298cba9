// Package registry provides a global registry for move strategies.
// Strategies register themselves in init() functions, allowing the CLI,
// the TUI hint key and autoplay to pick one by name without hardcoded
// dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/term2048/internal/game"
)

// Strategy chooses moves for a board.
// Implementations may keep caches and are not required to be safe for
// concurrent use; create one per game.
type Strategy interface {
	// Name returns the registered name (e.g., "expectimax").
	Name() string

	// BestMove returns the chosen direction, or false when no move changes the board.
	BestMove(g game.Grid) (game.Direction, bool)
}

// Options parameterize strategy construction.
type Options struct {
	Depth     int   // Search depth for searching strategies
	CacheSize int   // Evaluation cache entries
	Seed      int64 // RNG seed for randomized strategies
}

// DefaultOptions returns the options used when nothing is configured.
func DefaultOptions() Options {
	return Options{Depth: 2, CacheSize: 65536}
}

// StrategyInfo contains metadata about a registered strategy.
type StrategyInfo struct {
	Name        string
	Description string
}

// Factory creates a new strategy instance.
type Factory func(opts Options) (Strategy, error)

var (
	factories    = make(map[string]Factory)
	descriptions = make(map[string]string)
	mu           sync.RWMutex
)

// Register adds a strategy factory to the registry.
// Typically called from an init() function.
// Panics if a strategy with the same name is already registered.
func Register(name, description string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("registry: strategy %q already registered", name))
	}

	factories[name] = f
	descriptions[name] = description
}

// List returns information about all registered strategies, sorted by name.
func List() []StrategyInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]StrategyInfo, 0, len(factories))
	for name := range factories {
		result = append(result, StrategyInfo{
			Name:        name,
			Description: descriptions[name],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// Create instantiates a strategy by name.
// Returns an error if the name is not registered or the factory rejects opts.
func Create(name string, opts Options) (Strategy, error) {
	mu.RLock()
	f, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown strategy %q", name)
	}

	s, err := f(opts)
	if err != nil {
		return nil, fmt.Errorf("registry: cannot create %q: %w", name, err)
	}
	return s, nil
}

// Exists checks if a strategy with the given name is registered.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[name]
	return ok
}
