package core

// Color represents a foreground color for a screen cell.
// Frontends translate it to ANSI 256-color codes; plain text output ignores it.
type Color uint8

// Predefined colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// tileColors cycles through as tiles double, starting at 2.
var tileColors = []Color{
	ColorWhite,         // 2
	ColorBrightWhite,   // 4
	ColorYellow,        // 8
	ColorOrange,        // 16
	ColorBrightRed,     // 32
	ColorRed,           // 64
	ColorBrightYellow,  // 128
	ColorBrightGreen,   // 256
	ColorGreen,         // 512
	ColorBrightCyan,    // 1024
	ColorBrightMagenta, // 2048
}

// TileColor returns the display color for a tile value.
// Empty cells get ColorGray; tiles past 2048 reuse the top colors.
func TileColor(value int) Color {
	if value <= 0 {
		return ColorGray
	}
	step := -1
	for v := value; v > 1; v >>= 1 {
		step++
	}
	if step < 0 {
		step = 0
	}
	if step >= len(tileColors) {
		return ColorMagenta
	}
	return tileColors[step]
}
