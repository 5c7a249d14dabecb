// Package life implements the generalized Life-like engine: a single birth
// count plus an inclusive survival range over the Moore neighborhood on a
// bounded, non-wrapping grid.
package life

import "lifebg/internal/core"

// Step computes the next generation of g under rules. g is left untouched and
// the result never shares storage with it.
func Step(g *core.Grid, rules core.RuleSet) *core.Grid {
	if g.Empty() {
		return core.NewGrid(0, 0)
	}
	return StepInto(nil, g, rules)
}

// StepInto writes the next generation of src into dst, allocating a new grid
// when dst is nil, aliases src, or has different dimensions. It returns the
// grid holding the result.
func StepInto(dst, src *core.Grid, rules core.RuleSet) *core.Grid {
	if src.Empty() {
		return core.NewGrid(0, 0)
	}
	h, w := src.Rows(), src.Cols()
	if dst == nil || dst == src || dst.Rows() != h || dst.Cols() != w {
		dst = core.NewGrid(h, w)
	}
	cur := src.Cells()
	nxt := dst.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			nxt[idx] = rules.Next(cur[idx], countNeighbors(cur, w, h, x, y))
		}
	}
	return dst
}

// Neighbors returns the number of live cells among the 8 neighbors of
// (row, col). Cells beyond the edge count as dead.
func Neighbors(g *core.Grid, row, col int) int {
	if g.Empty() {
		return 0
	}
	return countNeighbors(g.Cells(), g.Cols(), g.Rows(), col, row)
}

func countNeighbors(cells []bool, w, h, x, y int) int {
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= h {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= w {
				continue
			}
			if cells[ny*w+nx] {
				neighbors++
			}
		}
	}
	return neighbors
}
