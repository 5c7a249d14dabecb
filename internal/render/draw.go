package render

import (
	"image"

	"lifebg/internal/core"
)

// Draw clears s and renders every live cell of g as a square of side
// cellSize-1 at (col*cellSize, row*cellSize), leaving a one pixel grid gap.
// Cells that fall outside the surface are clipped.
func Draw(s Surface, g *core.Grid, cellSize int, rainbow bool) {
	s.Clear()
	if g.Empty() || cellSize <= 0 {
		return
	}
	bounds := s.Bounds()
	if bounds.Empty() {
		return
	}
	side := cellSize - 1
	if side < 1 {
		side = 1
	}
	rows, cols := g.Rows(), g.Cols()
	cells := g.Cells()
	for row := 0; row < rows; row++ {
		y := row * cellSize
		if y >= bounds.Max.Y {
			break
		}
		for col := 0; col < cols; col++ {
			if !cells[row*cols+col] {
				continue
			}
			x := col * cellSize
			r := image.Rect(x, y, x+side, y+side).Intersect(bounds)
			if r.Empty() {
				continue
			}
			s.FillRect(r, CellColor(row, col, rainbow))
		}
	}
}
