package ui

import (
	"image"

	"lifebg/internal/loop"
)

// ToolbarTarget is the subset of the loop the toolbar drives.
type ToolbarTarget interface {
	Apply(cmd loop.Command) bool
	Running() bool
	Rainbow() bool
	ShowControls() bool
}

// Button is a clickable labelled rectangle in screen coordinates.
type Button struct {
	Rect   image.Rectangle
	Label  string
	Active bool

	cmd loop.Command
}

const (
	toolbarMargin   = 24
	toolbarButtonH  = 28
	toolbarGap      = 12
	controlsButtonW = 90
	rainbowButtonW  = 110
	playButtonW     = 70
)

// Toolbar holds the always-visible buttons: controls and rainbow toggles in
// the top right corner and play/pause in the bottom left.
type Toolbar struct {
	target  ToolbarTarget
	buttons []Button
}

// NewToolbar constructs a toolbar for target.
func NewToolbar(target ToolbarTarget) *Toolbar {
	return &Toolbar{target: target}
}

// Layout positions the buttons for a screen of w x h pixels and refreshes
// their labels from the target state.
func (t *Toolbar) Layout(w, h int) {
	controls := image.Rect(w-toolbarMargin-controlsButtonW, toolbarMargin, w-toolbarMargin, toolbarMargin+toolbarButtonH)
	rainbow := image.Rect(controls.Min.X-toolbarGap-rainbowButtonW, toolbarMargin, controls.Min.X-toolbarGap, toolbarMargin+toolbarButtonH)
	play := image.Rect(toolbarMargin, h-toolbarMargin-toolbarButtonH, toolbarMargin+playButtonW, h-toolbarMargin)

	rainbowLabel := "Rainbow OFF"
	if t.target.Rainbow() {
		rainbowLabel = "Rainbow ON"
	}
	playLabel := "Play"
	if t.target.Running() {
		playLabel = "Pause"
	}
	t.buttons = append(t.buttons[:0],
		Button{Rect: rainbow, Label: rainbowLabel, Active: t.target.Rainbow(), cmd: loop.CmdToggleRainbow},
		Button{Rect: controls, Label: "Controls", Active: t.target.ShowControls(), cmd: loop.CmdToggleControls},
		Button{Rect: play, Label: playLabel, cmd: loop.CmdToggleRunning},
	)
}

// Buttons returns the laid-out buttons.
func (t *Toolbar) Buttons() []Button { return t.buttons }

// Contains reports whether (x, y) falls on a toolbar button.
func (t *Toolbar) Contains(x, y int) bool {
	for _, b := range t.buttons {
		if pointInRect(x, y, b.Rect) {
			return true
		}
	}
	return false
}

// Click runs the button under (x, y) and reports whether one was hit.
func (t *Toolbar) Click(x, y int) bool {
	for _, b := range t.buttons {
		if pointInRect(x, y, b.Rect) {
			t.target.Apply(b.cmd)
			return true
		}
	}
	return false
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}
