package render

import (
	"image"
	"image/color"
)

// Surface is a pixel target the renderer can clear and fill.
type Surface interface {
	Bounds() image.Rectangle
	Clear()
	FillRect(r image.Rectangle, c color.RGBA)
}

// RGBASurface is an in-memory surface backed by a tightly packed RGBA buffer,
// suitable for uploading to a GPU texture in one call.
type RGBASurface struct {
	w, h int
	buf  []byte
}

// NewRGBASurface allocates a transparent surface of the given size.
func NewRGBASurface(w, h int) *RGBASurface {
	s := &RGBASurface{}
	s.Resize(w, h)
	return s
}

// Resize reallocates the buffer when the dimensions change.
func (s *RGBASurface) Resize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w == s.w && h == s.h && s.buf != nil {
		return
	}
	s.w, s.h = w, h
	s.buf = make([]byte, 4*w*h)
}

// Bounds returns the drawable area.
func (s *RGBASurface) Bounds() image.Rectangle { return image.Rect(0, 0, s.w, s.h) }

// Pix exposes the raw RGBA bytes.
func (s *RGBASurface) Pix() []byte { return s.buf }

// Clear resets every pixel to transparent black.
func (s *RGBASurface) Clear() {
	for i := range s.buf {
		s.buf[i] = 0
	}
}

// FillRect paints r, clipped to the surface bounds.
func (s *RGBASurface) FillRect(r image.Rectangle, c color.RGBA) {
	r = r.Intersect(s.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := s.buf[4*(y*s.w+r.Min.X) : 4*(y*s.w+r.Max.X)]
		for base := 0; base < len(row); base += 4 {
			row[base+0] = c.R
			row[base+1] = c.G
			row[base+2] = c.B
			row[base+3] = c.A
		}
	}
}

// At returns the pixel at (x, y); out-of-range reads are transparent.
func (s *RGBASurface) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return color.RGBA{}
	}
	base := 4 * (y*s.w + x)
	return color.RGBA{R: s.buf[base], G: s.buf[base+1], B: s.buf[base+2], A: s.buf[base+3]}
}
