package game

import (
	"errors"
	"math/rand"
)

var (
	// ErrGameOver is returned when a move is applied to a finished game.
	ErrGameOver = errors.New("game: game is over")

	// ErrInvalidDirection is returned for directions outside Up..Right.
	ErrInvalidDirection = errors.New("game: invalid direction")
)

// DefaultTarget is the tile that marks a win.
const DefaultTarget = 2048

// Config holds the tunable rules for a single game.
type Config struct {
	Seed   int64   // RNG seed; equal seeds replay equal games
	Spawn4 float64 // Probability that a spawned tile is a 4
	Target int     // Tile value that counts as a win (0 disables)
}

// DefaultConfig returns the classic rules with seed 0.
func DefaultConfig() Config {
	return Config{
		Spawn4: DefaultSpawn4,
		Target: DefaultTarget,
	}
}

// Game owns the board, score and lifecycle of one play-through.
type Game struct {
	grid    Grid
	score   int
	moves   int
	target  int
	spawner *Spawner

	lastSpawn int // -1 when nothing spawned yet
	won       bool
	over      bool
	quit      bool
}

// New starts a game with two spawned tiles.
func New(cfg Config) *Game {
	g := newGame(cfg, Grid{})
	g.spawn()
	g.spawn()
	g.won = g.target > 0 && g.grid.MaxTile() >= g.target
	g.over = g.grid.IsGameOver()
	return g
}

// NewFromGrid resumes a game from an existing board and score without spawning.
func NewFromGrid(cfg Config, grid Grid, score int) *Game {
	g := newGame(cfg, grid)
	g.score = score
	g.won = g.target > 0 && grid.MaxTile() >= g.target
	g.over = grid.IsGameOver()
	return g
}

func newGame(cfg Config, grid Grid) *Game {
	rng := rand.New(rand.NewSource(cfg.Seed))
	return &Game{
		grid:      grid,
		target:    cfg.Target,
		spawner:   NewSpawner(rng, cfg.Spawn4),
		lastSpawn: -1,
	}
}

func (g *Game) spawn() {
	if idx, _, ok := g.spawner.Spawn(&g.grid); ok {
		g.lastSpawn = idx
	}
}

// Apply slides the board toward d. When the board changes the merged score is
// added, one tile is spawned and the loss condition is re-evaluated. A move
// that changes nothing is not counted and spawns nothing.
func (g *Game) Apply(d Direction) (MoveResult, error) {
	if !d.Valid() {
		return MoveResult{Grid: g.grid}, ErrInvalidDirection
	}
	if g.over || g.quit {
		return MoveResult{Grid: g.grid}, ErrGameOver
	}

	res := Slide(g.grid, d)
	if !res.Changed {
		return res, nil
	}

	g.grid = res.Grid
	g.score += res.Gained
	g.moves++

	if g.target > 0 && !g.won && g.grid.MaxTile() >= g.target {
		g.won = true
	}

	g.spawn()
	g.over = g.grid.IsGameOver()

	return res, nil
}

// Quit ends the game at the player's request.
func (g *Game) Quit() {
	g.quit = true
}

// Grid returns a copy of the board.
func (g *Game) Grid() Grid {
	return g.grid
}

// Score returns the accumulated merge score.
func (g *Game) Score() int {
	return g.score
}

// MoveCount returns the number of moves that changed the board.
func (g *Game) MoveCount() int {
	return g.moves
}

// LastSpawn returns the index of the most recently spawned tile.
func (g *Game) LastSpawn() (int, bool) {
	return g.lastSpawn, g.lastSpawn >= 0
}

// LegalMoves lists the directions that would change the board.
func (g *Game) LegalMoves() []Direction {
	if g.over || g.quit {
		return nil
	}
	return LegalMoves(g.grid)
}

// Won reports whether the target tile has been reached at least once.
func (g *Game) Won() bool {
	return g.won
}

// Over reports whether no move can change the board.
func (g *Game) Over() bool {
	return g.over
}

// Quitted reports whether the player quit.
func (g *Game) Quitted() bool {
	return g.quit
}

// Finished reports whether the game accepts no further moves.
func (g *Game) Finished() bool {
	return g.over || g.quit
}
