package core

// Size describes a width/height pair, either in pixels (viewport) or cells.
type Size struct {
	W int
	H int
}

// Zero reports whether the size has no area.
func (s Size) Zero() bool { return s.W <= 0 || s.H <= 0 }

// GridDims converts a pixel viewport into grid rows and columns for the given
// cell size. Unmeasured viewports and non-positive cell sizes yield 0x0.
func GridDims(viewport Size, cellSize int) (rows, cols int) {
	if viewport.Zero() || cellSize <= 0 {
		return 0, 0
	}
	return viewport.H / cellSize, viewport.W / cellSize
}

// FloorDiv divides rounding toward negative infinity so pointer positions
// left of or above the surface map to negative cells.
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
