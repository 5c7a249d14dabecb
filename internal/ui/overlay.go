//go:build ebiten

package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws the toolbar on top of the simulation and routes clicks to it.
type Overlay struct {
	toolbar *Toolbar
}

// NewOverlay constructs an overlay for target.
func NewOverlay(target ToolbarTarget) *Overlay {
	return &Overlay{toolbar: NewToolbar(target)}
}

// Update lays out the toolbar and reports whether a click was consumed.
func (o *Overlay) Update(w, h int) bool {
	o.toolbar.Layout(w, h)
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return o.toolbar.Click(ebiten.CursorPosition())
}

// Contains reports whether (x, y) is over a toolbar button.
func (o *Overlay) Contains(x, y int) bool { return o.toolbar.Contains(x, y) }

// Draw renders the toolbar buttons.
func (o *Overlay) Draw(screen *ebiten.Image) {
	for _, b := range o.toolbar.Buttons() {
		drawButton(screen, b.Rect, b.Label, b.Active, true)
	}
}
