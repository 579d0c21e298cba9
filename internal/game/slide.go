package game

// MoveResult describes the outcome of sliding the grid in one direction.
type MoveResult struct {
	Grid    Grid // Grid after compaction and merging, before any spawn
	Gained  int  // Sum of the tiles produced by merges
	Merges  int  // Number of merges performed
	Changed bool // Whether any cell differs from the input grid
}

// ResolveLine compacts a line toward index 0 and merges equal neighbours.
// Lines are scanned front to back once; a tile produced by a merge never
// merges again in the same move, so [4 4 8 0] becomes [8 8 0 0].
func ResolveLine(in [Size]int) (out [Size]int, gained, merges int) {
	w := 0
	lastMerged := false

	for _, v := range in {
		if v == 0 {
			continue
		}
		if w > 0 && !lastMerged && out[w-1] == v {
			out[w-1] += v
			gained += out[w-1]
			merges++
			lastMerged = true
			continue
		}
		out[w] = v
		w++
		lastMerged = false
	}

	return out, gained, merges
}

// Slide applies a move in direction d without spawning a tile.
// An invalid direction leaves the grid unchanged.
func Slide(g Grid, d Direction) MoveResult {
	res := MoveResult{Grid: g}
	if !d.Valid() {
		return res
	}

	for i := range Size {
		idx := line(d, i)

		var in [Size]int
		for k, p := range idx {
			in[k] = g[p]
		}

		out, gained, merges := ResolveLine(in)
		for k, p := range idx {
			res.Grid[p] = out[k]
		}
		res.Gained += gained
		res.Merges += merges
	}

	res.Changed = res.Grid != g
	return res
}

// LegalMoves returns the directions that would change the grid.
func LegalMoves(g Grid) []Direction {
	var dirs []Direction
	for _, d := range Directions {
		if Slide(g, d).Changed {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
