//go:build ebiten

package ui

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the controls panel below the toolbar at the right edge.
type HUD struct {
	panel *Panel
}

// NewHUD constructs a HUD for target and panel width.
func NewHUD(target ControlsTarget, width int) *HUD {
	return &HUD{panel: NewPanel(target, width)}
}

// Update refreshes the panel and reports whether a click landed on it.
func (h *HUD) Update(screenW int) bool {
	h.panel.Layout(screenW)
	h.panel.Refresh()
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	return h.panel.Click(ebiten.CursorPosition())
}

// Contains reports whether (x, y) is over the panel.
func (h *HUD) Contains(x, y int) bool { return h.panel.Contains(x, y) }

// Draw paints the panel.
func (h *HUD) Draw(screen *ebiten.Image) {
	p := h.panel
	b := p.Bounds()
	if b.Empty() {
		return
	}
	fillRect(screen, b, panelColor)

	face := basicfont.Face7x13
	left := b.Min.X + panelPadding
	text.Draw(screen, p.title, face, left, b.Min.Y+panelPadding+headerBaseline, textColor)
	text.Draw(screen, "Adjust rules, grid size, and brush", face, left, b.Min.Y+panelPadding+headerBaseline+14, textMutedColor)

	for i := range p.controls {
		state := &p.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(screen, state.control.Label, face, left, labelY, textColor)

		value := "--"
		valueColor := textMutedColor
		if state.hasValue {
			value = strconv.Itoa(state.value)
			valueColor = textColor
		}
		bounds := text.BoundString(face, value)
		text.Draw(screen, value, face, state.minusRect.Min.X-buttonGap-bounds.Dx(), labelY, valueColor)

		drawButton(screen, state.minusRect, "-", false, p.canAdjust(state, -1))
		drawButton(screen, state.plusRect, "+", false, p.canAdjust(state, 1))
	}
	for _, a := range p.actions {
		drawButton(screen, a.rect, a.action.Label, false, true)
	}
}
