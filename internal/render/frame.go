package render

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/term2048/internal/game"
)

// Options control the text around the board.
type Options struct {
	Verbose bool // Print the control reference above the score
}

// Controls lists the console key bindings shown in verbose frames.
var Controls = []string{
	"W - Shift cells up",
	"A - Shift cells left",
	"S - Shift cells down",
	"D - Shift cells right",
	"Q - Quit",
}

// Frame renders a complete console frame: title, score, board and, for a
// finished game, the closing banner.
func Frame(snap game.Snapshot, opts Options) string {
	var b strings.Builder

	b.WriteString("2048\n")
	if opts.Verbose {
		b.WriteString(strings.Repeat("-", 21))
		b.WriteString("\n\nControls:\n")
		for _, line := range Controls {
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	} else {
		b.WriteString("----\n")
	}
	fmt.Fprintf(&b, "Score: %d\n\n", snap.Score)

	b.WriteString(Board(snap.Grid))
	b.WriteByte('\n')

	if banner := Banner(snap); len(banner) > 0 {
		b.WriteByte('\n')
		for _, line := range banner {
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// Banner returns the status lines for a snapshot, or nil while the game is
// simply in progress.
func Banner(snap game.Snapshot) []string {
	switch snap.State {
	case game.StateGameOver:
		return []string{"Game Over!", fmt.Sprintf("Final Score: %d", snap.Score)}
	case game.StateQuit:
		return []string{"Game Quit", fmt.Sprintf("Final Score: %d", snap.Score)}
	case game.StateWon:
		return []string{fmt.Sprintf("You reached %d! Keep going.", snap.Target)}
	default:
		return nil
	}
}
