package game

// State is the lifecycle phase reported in a snapshot.
type State string

const (
	StatePlaying  State = "playing"
	StateWon      State = "won" // target reached, play continues
	StateGameOver State = "game_over"
	StateQuit     State = "quit"
)

// Snapshot is an immutable view of a game used by renderers, storage and tests.
type Snapshot struct {
	Grid    Grid
	Score   int
	Moves   int
	MaxTile int
	Target  int
	State   State
}

// Snapshot captures the current game state.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.quit:
		state = StateQuit
	case g.over:
		state = StateGameOver
	case g.won:
		state = StateWon
	}

	return Snapshot{
		Grid:    g.grid,
		Score:   g.score,
		Moves:   g.moves,
		MaxTile: g.grid.MaxTile(),
		Target:  g.target,
		State:   state,
	}
}

// Finished reports whether the snapshot is of a game that accepts no moves.
func (s Snapshot) Finished() bool {
	return s.State == StateGameOver || s.State == StateQuit
}
