package term

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Surface adapts a tcell screen to render.Surface: each terminal cell is one
// pixel, painted with its background colour.
type Surface struct {
	screen tcell.Screen
}

// NewSurface wraps screen.
func NewSurface(screen tcell.Screen) *Surface { return &Surface{screen: screen} }

// Bounds returns the terminal size.
func (s *Surface) Bounds() image.Rectangle {
	w, h := s.screen.Size()
	return image.Rect(0, 0, w, h)
}

// Clear blanks the screen.
func (s *Surface) Clear() { s.screen.Clear() }

// FillRect paints r, clipped to the terminal.
func (s *Surface) FillRect(r image.Rectangle, c color.RGBA) {
	r = r.Intersect(s.Bounds())
	style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}
