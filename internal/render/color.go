package render

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Foreground is the solid cell colour used outside rainbow mode.
var Foreground = color.RGBA{R: 255, G: 255, B: 255, A: 255}

const (
	goldenAngle       = 137.508
	rainbowSaturation = 0.70
	rainbowLightness  = 0.60
)

// RainbowColor returns the stable per-position hue used in rainbow mode.
func RainbowColor(row, col int) color.RGBA {
	hue := math.Mod(float64(row*col)*goldenAngle, 360)
	if hue < 0 {
		hue += 360
	}
	r, g, b := colorful.Hsl(hue, rainbowSaturation, rainbowLightness).RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// CellColor picks the fill for a live cell.
func CellColor(row, col int, rainbow bool) color.RGBA {
	if rainbow {
		return RainbowColor(row, col)
	}
	return Foreground
}
