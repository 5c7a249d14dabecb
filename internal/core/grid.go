package core

import "math/rand/v2"

// Grid stores boolean cell states in row-major order. Coordinates outside
// [0,Rows) x [0,Cols) are always dead; the universe does not wrap.
type Grid struct {
	rows, cols int
	data       []bool
}

// NewGrid allocates an all-dead grid. Non-positive dimensions yield an empty
// grid rather than an error.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		return &Grid{}
	}
	return &Grid{rows: rows, cols: cols, data: make([]bool, rows*cols)}
}

// NewRandomGrid allocates a grid where every cell is independently alive with
// probability p.
func NewRandomGrid(rows, cols int, p float64, r *rand.Rand) *Grid {
	g := NewGrid(rows, cols)
	FillChance(r, g.data, p)
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Empty reports whether the grid has no cells.
func (g *Grid) Empty() bool { return g == nil || len(g.data) == 0 }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []bool { return g.data }

// In reports whether (row, col) lies inside the grid.
func (g *Grid) In(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Alive returns the state at (row, col); out-of-range coordinates are dead.
func (g *Grid) Alive(row, col int) bool {
	if !g.In(row, col) {
		return false
	}
	return g.data[row*g.cols+col]
}

// Set assigns a cell state. Out-of-range writes are ignored.
func (g *Grid) Set(row, col int, alive bool) {
	if !g.In(row, col) {
		return
	}
	g.data[row*g.cols+col] = alive
}

// Population counts live cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.data {
		if alive {
			n++
		}
	}
	return n
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols}
	if len(g.data) > 0 {
		c.data = append([]bool(nil), g.data...)
	}
	return c
}

// Equal reports whether both grids have the same dimensions and states.
func (g *Grid) Equal(o *Grid) bool {
	if g.rows != o.rows || g.cols != o.cols {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// Paint sets alive every in-bounds cell within the circular brush of the given
// radius around (centerRow, centerCol). It never kills a cell and returns the
// number of cells that changed state.
func (g *Grid) Paint(centerRow, centerCol, radius int) int {
	if radius < 0 || g.Empty() {
		return 0
	}
	changed := 0
	r2 := radius * radius
	for i := -radius; i <= radius; i++ {
		for j := -radius; j <= radius; j++ {
			if i*i+j*j > r2 {
				continue
			}
			row, col := centerRow+i, centerCol+j
			if !g.In(row, col) {
				continue
			}
			idx := row*g.cols + col
			if !g.data[idx] {
				g.data[idx] = true
				changed++
			}
		}
	}
	return changed
}
