//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads an RGBASurface into a single image and draws it.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewGridPainter returns a painter that sizes its image lazily.
func NewGridPainter() *GridPainter { return &GridPainter{} }

// Blit uploads the surface pixels and draws them at the origin of dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, s *RGBASurface) {
	b := s.Bounds()
	if b.Empty() {
		return
	}
	if gp.img == nil || gp.w != b.Dx() || gp.h != b.Dy() {
		if gp.img != nil {
			gp.img.Dispose()
		}
		gp.w, gp.h = b.Dx(), b.Dy()
		gp.img = ebiten.NewImage(gp.w, gp.h)
	}
	gp.img.WritePixels(s.Pix())
	dst.DrawImage(gp.img, nil)
}
