// Package game implements the 2048 rules: a flat 4x4 grid, move resolution,
// tile spawning and loss detection. It has no terminal or storage dependencies
// so every frontend (console, TUI, SSH, autoplay) shares the same logic.
package game

import (
	"strconv"
	"strings"
)

// Size is the board dimension.
const Size = 4

// Cells is the number of cells on the board.
const Cells = Size * Size

// Grid is the board stored row-major: cell (x, y) lives at y*Size+x.
// A zero value means the cell is empty.
type Grid [Cells]int

// Index returns the flat index of column x, row y.
func Index(x, y int) int {
	return y*Size + x
}

// Coords returns the column and row of a flat index.
func Coords(idx int) (x, y int) {
	return idx % Size, idx / Size
}

// GridFromRows builds a grid from row-major rows, mostly for tests and fixtures.
func GridFromRows(rows [Size][Size]int) Grid {
	var g Grid
	for y := range Size {
		for x := range Size {
			g[Index(x, y)] = rows[y][x]
		}
	}
	return g
}

// At returns the value of column x, row y.
func (g Grid) At(x, y int) int {
	return g[Index(x, y)]
}

// Row returns row y as a line ordered left to right.
func (g Grid) Row(y int) [Size]int {
	var row [Size]int
	copy(row[:], g[y*Size:(y+1)*Size])
	return row
}

// EmptyCells returns the flat indices of all empty cells in ascending order.
func (g Grid) EmptyCells() []int {
	var cells []int
	for i, v := range g {
		if v == 0 {
			cells = append(cells, i)
		}
	}
	return cells
}

// HasEmptyCell reports whether at least one cell is empty.
func (g Grid) HasEmptyCell() bool {
	for _, v := range g {
		if v == 0 {
			return true
		}
	}
	return false
}

// TileCount returns the number of non-empty cells.
func (g Grid) TileCount() int {
	n := 0
	for _, v := range g {
		if v != 0 {
			n++
		}
	}
	return n
}

// Sum returns the total of all tile values.
func (g Grid) Sum() int {
	total := 0
	for _, v := range g {
		total += v
	}
	return total
}

// MaxTile returns the highest tile value on the board.
func (g Grid) MaxTile() int {
	maxVal := 0
	for _, v := range g {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// HasAdjacentPair reports whether two orthogonally adjacent tiles are equal.
// Empty cells are ignored.
func (g Grid) HasAdjacentPair() bool {
	for y := range Size {
		for x := range Size {
			v := g.At(x, y)
			if v == 0 {
				continue
			}
			if x < Size-1 && g.At(x+1, y) == v {
				return true
			}
			if y < Size-1 && g.At(x, y+1) == v {
				return true
			}
		}
	}
	return false
}

// CanMove reports whether any direction would change the grid.
func (g Grid) CanMove() bool {
	return g.HasEmptyCell() || g.HasAdjacentPair()
}

// IsGameOver reports whether the grid is full with no mergeable neighbours.
func (g Grid) IsGameOver() bool {
	return !g.CanMove()
}

// String formats the grid as four space-separated rows.
func (g Grid) String() string {
	var sb strings.Builder
	for y := range Size {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := range Size {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(g.At(x, y)))
		}
	}
	return sb.String()
}
