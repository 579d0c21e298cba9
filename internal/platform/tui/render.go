package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/term2048/internal/core"
)

// colorStyles maps core.Color to lipgloss styles. Tile colors are bold so
// digits stand out against the box-drawing grid.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorRed:           tileStyle("1"),
	core.ColorGreen:         tileStyle("2"),
	core.ColorYellow:        tileStyle("3"),
	core.ColorBlue:          tileStyle("4"),
	core.ColorMagenta:       tileStyle("5"),
	core.ColorCyan:          tileStyle("6"),
	core.ColorWhite:         tileStyle("7"),
	core.ColorBrightRed:     tileStyle("9"),
	core.ColorBrightGreen:   tileStyle("10"),
	core.ColorBrightYellow:  tileStyle("11"),
	core.ColorBrightBlue:    tileStyle("12"),
	core.ColorBrightMagenta: tileStyle("13"),
	core.ColorBrightCyan:    tileStyle("14"),
	core.ColorBrightWhite:   tileStyle("15"),
	core.ColorOrange:        tileStyle("208"),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

func tileStyle(color string) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(color))
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one styled run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// centerText pads text on the left so it is centered in width columns.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
