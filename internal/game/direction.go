package game

// Direction is the edge tiles slide toward.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every direction in a stable order.
var Directions = [...]Direction{Up, Down, Left, Right}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Move is a player command: a direction or the quit sentinel.
type Move struct {
	Dir  Direction
	Quit bool
}

// QuitMove is the command that ends a game early.
var QuitMove = Move{Quit: true}

// MoveIn returns the command that slides toward d.
func MoveIn(d Direction) Move {
	return Move{Dir: d}
}

// String returns the direction name or "Quit".
func (m Move) String() string {
	if m.Quit {
		return "Quit"
	}
	return m.Dir.String()
}

// line returns the flat indices of line i for direction d, ordered so the
// edge being slid toward comes first.
func line(d Direction, i int) [Size]int {
	var idx [Size]int
	for k := range Size {
		switch d {
		case Left:
			idx[k] = Index(k, i)
		case Right:
			idx[k] = Index(Size-1-k, i)
		case Up:
			idx[k] = Index(i, k)
		case Down:
			idx[k] = Index(i, Size-1-k)
		}
	}
	return idx
}
