package ui

import (
	"image"
	"strconv"

	"lifebg/internal/core"
)

// ControlsTarget is everything the controls panel reads and adjusts.
type ControlsTarget interface {
	core.ParameterControlsProvider
	core.IntParameterSetter
	core.ActionProvider
	Parameters() core.ParameterSnapshot
}

// DefaultPanelWidth is the controls panel width in pixels.
const DefaultPanelWidth = 300

const (
	panelPadding   = 12
	lineHeight     = 30
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 19
	controlsTop    = panelPadding + headerBaseline + 14
	actionColumns  = 2
	actionHeight   = 22
	sectionGap     = 10
)

type controlState struct {
	control  core.ParameterControl
	value    int
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

type actionState struct {
	action core.Action
	rect   image.Rectangle
}

// Panel lays out the -/+ controls and action buttons anchored below the
// toolbar at the right edge of the screen.
type Panel struct {
	target   ControlsTarget
	width    int
	bounds   image.Rectangle
	controls []controlState
	actions  []actionState
	title    string
}

// NewPanel constructs a Panel for target.
func NewPanel(target ControlsTarget, width int) *Panel {
	if width <= 0 {
		width = DefaultPanelWidth
	}
	p := &Panel{target: target, width: width, title: "Game Controls"}
	for _, ctrl := range target.ParameterControls() {
		p.controls = append(p.controls, controlState{control: ctrl})
	}
	for _, a := range target.Actions() {
		p.actions = append(p.actions, actionState{action: a})
	}
	return p
}

// Layout anchors the panel for a screen of the given width.
func (p *Panel) Layout(screenW int) {
	left := screenW - toolbarMargin - p.width
	top := toolbarMargin + toolbarButtonH + toolbarGap

	for i := range p.controls {
		rowTop := top + controlsTop + i*lineHeight
		buttonY := rowTop + (lineHeight-buttonSize)/2
		right := left + p.width - panelPadding
		plus := image.Rect(right-buttonSize, buttonY, right, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		p.controls[i].top = rowTop
		p.controls[i].minusRect = minus
		p.controls[i].plusRect = plus
	}

	actionsTop := top + controlsTop + len(p.controls)*lineHeight + sectionGap
	inner := p.width - 2*panelPadding
	cellW := (inner - (actionColumns-1)*buttonGap) / actionColumns
	for i := range p.actions {
		col, row := i%actionColumns, i/actionColumns
		x := left + panelPadding + col*(cellW+buttonGap)
		y := actionsTop + row*(actionHeight+buttonGap)
		p.actions[i].rect = image.Rect(x, y, x+cellW, y+actionHeight)
	}

	rows := (len(p.actions) + actionColumns - 1) / actionColumns
	bottom := actionsTop + rows*(actionHeight+buttonGap) + panelPadding
	p.bounds = image.Rect(left, top, left+p.width, bottom)
}

// Refresh pulls current values from the target.
func (p *Panel) Refresh() {
	snap := p.target.Parameters()
	for i := range p.controls {
		state := &p.controls[i]
		param, ok := snap.Lookup(state.control.Key)
		if !ok || param.Type != core.ParamTypeInt {
			state.hasValue = false
			continue
		}
		v, err := strconv.Atoi(param.Value)
		if err != nil {
			state.hasValue = false
			continue
		}
		state.value = v
		state.hasValue = true
	}
}

// Bounds returns the panel rectangle in screen coordinates.
func (p *Panel) Bounds() image.Rectangle { return p.bounds }

// Contains reports whether (x, y) lies on the panel.
func (p *Panel) Contains(x, y int) bool { return pointInRect(x, y, p.bounds) }

// Click handles a press at (x, y). Presses anywhere on the panel are
// consumed so they never paint cells underneath it.
func (p *Panel) Click(x, y int) bool {
	if !p.Contains(x, y) {
		return false
	}
	for i := range p.controls {
		state := &p.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(x, y, state.minusRect) {
			p.adjust(state, -1)
			return true
		}
		if pointInRect(x, y, state.plusRect) {
			p.adjust(state, 1)
			return true
		}
	}
	for _, a := range p.actions {
		if pointInRect(x, y, a.rect) {
			p.target.RunAction(a.action.Key)
			p.Refresh()
			return true
		}
	}
	return true
}

func (p *Panel) adjust(state *controlState, direction int) {
	target, ok := p.nextValue(state, direction)
	if !ok {
		return
	}
	if p.target.SetIntParameter(state.control.Key, target) {
		state.value = target
	}
}

func (p *Panel) canAdjust(state *controlState, direction int) bool {
	_, ok := p.nextValue(state, direction)
	return ok
}

func (p *Panel) nextValue(state *controlState, direction int) (int, bool) {
	if !state.hasValue || direction == 0 {
		return 0, false
	}
	step := state.control.Step
	if step <= 0 {
		step = 1
	}
	target := state.control.Clamp(state.value + direction*step)
	return target, target != state.value
}
