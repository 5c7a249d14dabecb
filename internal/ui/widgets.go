//go:build ebiten

package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	panelColor      = color.RGBA{R: 255, G: 255, B: 255, A: 26}
	buttonColor     = color.RGBA{R: 255, G: 255, B: 255, A: 40}
	buttonActive    = color.RGBA{R: 168, G: 85, B: 247, A: 200}
	buttonDisabled  = color.RGBA{R: 32, G: 34, B: 40, A: 160}
	textColor       = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	textMutedColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	textDimmedColor = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

func fillRect(dst *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(dst, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
}

func drawButton(dst *ebiten.Image, rect image.Rectangle, label string, active, enabled bool) {
	bg, fg := buttonColor, textColor
	switch {
	case !enabled:
		bg, fg = buttonDisabled, textDimmedColor
	case active:
		bg = buttonActive
	}
	fillRect(dst, rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(dst, label, face, x, y, fg)
}
