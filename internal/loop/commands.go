package loop

import "lifebg/internal/core"

// Command is a user-issued configuration action.
type Command int

const (
	CmdNone Command = iota
	CmdToggleRunning
	CmdToggleRainbow
	CmdToggleControls
	CmdResetRules
	CmdStepOnce
	CmdCellSizeDown
	CmdCellSizeUp
	CmdBrushDown
	CmdBrushUp
	CmdPreset1
	CmdPreset2
	CmdPreset3
	CmdPreset4
)

// Bindings maps keyboard runes to commands. Hosts translate their native key
// events into runes and look them up here.
var Bindings = map[rune]Command{
	' ': CmdToggleRunning,
	'b': CmdToggleRainbow,
	'c': CmdToggleControls,
	'r': CmdResetRules,
	'n': CmdStepOnce,
	'[': CmdCellSizeDown,
	']': CmdCellSizeUp,
	'-': CmdBrushDown,
	'=': CmdBrushUp,
	'1': CmdPreset1,
	'2': CmdPreset2,
	'3': CmdPreset3,
	'4': CmdPreset4,
}

// CellSizePresets are the quick cell-size choices offered by the panel.
var CellSizePresets = []int{1, 4, 8, 12, 16, 20}

// Apply runs cmd and reports whether it was recognized.
func (l *Loop) Apply(cmd Command) bool {
	switch cmd {
	case CmdToggleRunning:
		l.ToggleRunning()
	case CmdToggleRainbow:
		l.ToggleRainbow()
		l.Redraw()
	case CmdToggleControls:
		l.ToggleControls()
	case CmdResetRules:
		l.ResetRules()
	case CmdStepOnce:
		l.StepOnce()
	case CmdCellSizeDown:
		l.SetCellSize(clamp(l.cellSize-1, MinCellSize, MaxCellSize))
	case CmdCellSizeUp:
		l.SetCellSize(clamp(l.cellSize+1, MinCellSize, MaxCellSize))
	case CmdBrushDown:
		l.SetBrushRadius(clamp(l.brushRadius-1, MinBrushRadius, MaxBrushRadius))
	case CmdBrushUp:
		l.SetBrushRadius(clamp(l.brushRadius+1, MinBrushRadius, MaxBrushRadius))
	case CmdPreset1, CmdPreset2, CmdPreset3, CmdPreset4:
		presets := core.Presets()
		idx := int(cmd - CmdPreset1)
		if idx >= len(presets) {
			return false
		}
		l.rules = presets[idx].Rules
	default:
		return false
	}
	return true
}

// ApplyKey looks r up in Bindings and applies the command.
func (l *Loop) ApplyKey(r rune) bool {
	cmd, ok := Bindings[r]
	if !ok {
		return false
	}
	return l.Apply(cmd)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
