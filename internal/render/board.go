// Package render draws 2048 boards with box-drawing characters.
// Output goes into a core.Screen so the console can print it as plain text
// and the TUI can color it per tile.
package render

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/game"
)

// minCellWidth is the cell width of a board whose widest tile has one digit.
const minCellWidth = 3

// CellWidth returns the inner width of every cell: the widest tile plus one
// space of padding on each side.
func CellWidth(g game.Grid) int {
	w := len(strconv.Itoa(g.MaxTile())) + 2
	if w < minCellWidth {
		w = minCellWidth
	}
	return w
}

// BoardSize returns the width and height of the rendered board in characters.
func BoardSize(g game.Grid) (w, h int) {
	return 1 + game.Size*(CellWidth(g)+1), 2*game.Size + 1
}

// DrawBoard draws the framed board with its top-left corner at (x, y).
func DrawBoard(dst *core.Screen, x, y int, g game.Grid) {
	cw := CellWidth(g)
	dash := strings.Repeat("─", cw)

	dst.DrawText(x, y, border('┌', '┬', '┐', dash))
	for row := range game.Size {
		py := y + 1 + row*2
		dst.Set(x, py, '│')

		for col := range game.Size {
			cx := x + 1 + col*(cw+1)
			drawCell(dst, cx, py, cw, g.At(col, row))
			dst.Set(cx+cw, py, '│')
		}

		if row < game.Size-1 {
			dst.DrawText(x, py+1, border('├', '┼', '┤', dash))
		}
	}
	dst.DrawText(x, y+2*game.Size, border('└', '┴', '┘', dash))
}

// drawCell centers a tile in a cell of width cw. When the padding is odd the
// extra space goes to the left.
func drawCell(dst *core.Screen, x, y, cw, value int) {
	text := " "
	if value != 0 {
		text = strconv.Itoa(value)
	}

	ws := cw - len(text) - 2
	right := ws / 2
	left := ws - right

	dst.DrawText(x, y, strings.Repeat(" ", cw))
	dst.DrawTextColor(x+1+left, y, text, core.TileColor(value))
}

func border(left, mid, right rune, dash string) string {
	var sb strings.Builder
	sb.WriteRune(left)
	for i := range game.Size {
		if i > 0 {
			sb.WriteRune(mid)
		}
		sb.WriteString(dash)
	}
	sb.WriteRune(right)
	return sb.String()
}

// Board renders the grid as plain text.
func Board(g game.Grid) string {
	w, h := BoardSize(g)
	screen := core.NewScreen(w, h)
	DrawBoard(screen, 0, 0, g)
	return screen.String()
}
