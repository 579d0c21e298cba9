package render

import (
	"strings"
	"testing"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/game"
)

func TestCellWidth(t *testing.T) {
	tests := []struct {
		name     string
		grid     game.Grid
		expected int
	}{
		{"empty board", game.Grid{}, 3},
		{"single digit", game.GridFromRows([4][4]int{{2, 4}}), 3},
		{"two digits", game.GridFromRows([4][4]int{{2, 16}}), 4},
		{"four digits", game.GridFromRows([4][4]int{{2048}}), 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CellWidth(tt.grid); got != tt.expected {
				t.Errorf("CellWidth() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestBoard(t *testing.T) {
	g := game.GridFromRows([4][4]int{
		{2, 0, 0, 0},
		{0, 16, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 4},
	})

	expected := strings.Join([]string{
		"┌────┬────┬────┬────┐",
		"│  2 │    │    │    │",
		"├────┼────┼────┼────┤",
		"│    │ 16 │    │    │",
		"├────┼────┼────┼────┤",
		"│    │    │    │    │",
		"├────┼────┼────┼────┤",
		"│    │    │    │  4 │",
		"└────┴────┴────┴────┘",
	}, "\n")

	if got := Board(g); got != expected {
		t.Errorf("Board() =\n%s\nwant\n%s", got, expected)
	}
}

func TestBoardSmallTiles(t *testing.T) {
	g := game.GridFromRows([4][4]int{
		{2, 4, 8, 2},
	})

	lines := strings.Split(Board(g), "\n")
	if len(lines) != 9 {
		t.Fatalf("Board() has %d lines, want 9", len(lines))
	}
	if lines[0] != "┌───┬───┬───┬───┐" {
		t.Errorf("top border = %q", lines[0])
	}
	if lines[1] != "│ 2 │ 4 │ 8 │ 2 │" {
		t.Errorf("first row = %q", lines[1])
	}
	if lines[8] != "└───┴───┴───┴───┘" {
		t.Errorf("bottom border = %q", lines[8])
	}
}

func TestDrawBoardColors(t *testing.T) {
	g := game.GridFromRows([4][4]int{
		{2048, 0, 0, 0},
	})
	w, h := BoardSize(g)
	screen := core.NewScreen(w, h)
	DrawBoard(screen, 0, 0, g)

	// Cell width 6: "│ 2048 │", digits start at column 2.
	cell := screen.GetCell(2, 1)
	if cell.Rune != '2' {
		t.Fatalf("GetCell(2, 1) = %q, want '2'", cell.Rune)
	}
	if cell.Color != core.TileColor(2048) {
		t.Errorf("tile color = %d, want %d", cell.Color, core.TileColor(2048))
	}
	if screen.GetCell(0, 1).Color != core.ColorDefault {
		t.Error("borders should use the default color")
	}
}

func TestFrame(t *testing.T) {
	g := game.NewFromGrid(game.DefaultConfig(), game.GridFromRows([4][4]int{{2, 2}}), 12)

	frame := Frame(g.Snapshot(), Options{})
	if !strings.HasPrefix(frame, "2048\n----\nScore: 12\n\n┌───┬") {
		t.Errorf("Frame() header = %q", frame[:40])
	}
	if strings.Contains(frame, "Controls:") {
		t.Error("non-verbose frame should not list controls")
	}
	if strings.Contains(frame, "Final Score") {
		t.Error("running game should not show a banner")
	}

	verbose := Frame(g.Snapshot(), Options{Verbose: true})
	for _, line := range Controls {
		if !strings.Contains(verbose, line) {
			t.Errorf("verbose frame missing %q", line)
		}
	}
}

func TestBanner(t *testing.T) {
	stuck := game.GridFromRows([4][4]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	})
	over := game.NewFromGrid(game.DefaultConfig(), stuck, 64)

	frame := Frame(over.Snapshot(), Options{})
	if !strings.HasSuffix(frame, "\nGame Over!\nFinal Score: 64\n") {
		t.Errorf("game over frame ends with %q", frame[len(frame)-30:])
	}

	quit := game.New(game.DefaultConfig())
	quit.Quit()
	lines := Banner(quit.Snapshot())
	if len(lines) != 2 || lines[0] != "Game Quit" || lines[1] != "Final Score: 0" {
		t.Errorf("quit banner = %v", lines)
	}

	won := game.NewFromGrid(game.DefaultConfig(), game.GridFromRows([4][4]int{{2048}}), 0)
	if lines := Banner(won.Snapshot()); len(lines) != 1 || !strings.Contains(lines[0], "2048") {
		t.Errorf("won banner = %v", lines)
	}
}
