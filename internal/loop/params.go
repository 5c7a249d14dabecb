package loop

import (
	"strconv"
	"strings"

	"lifebg/internal/core"
)

// Parameter keys understood by SetIntParameter.
const (
	KeyCellSize    = "cell_size"
	KeyBrushRadius = "brush_radius"
	KeyMinSurvival = "min_survival"
	KeyMaxSurvival = "max_survival"
	KeyBirth       = "birth"
)

const (
	actionReset      = "reset"
	actionPreset     = "preset:"
	actionCellPreset = "cell:"
)

// Parameters snapshots the current settings for display.
func (l *Loop) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Display",
			Params: []core.Parameter{
				intParam(KeyCellSize, "Cell size", l.cellSize),
				intParam(KeyBrushRadius, "Brush size", l.brushRadius),
				boolParam("rainbow", "Rainbow", l.rainbow),
				boolParam("running", "Running", l.Running()),
			},
		},
		{
			Name: "Rules " + l.rules.String(),
			Params: []core.Parameter{
				intParam(KeyMinSurvival, "Min survival", l.rules.MinSurvival),
				intParam(KeyMaxSurvival, "Max survival", l.rules.MaxSurvival),
				intParam(KeyBirth, "Birth", l.rules.Birth),
			},
		},
	}}
}

// ParameterControls lists the slider-like controls with their ranges.
func (l *Loop) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: KeyCellSize, Label: "Cell size", Step: 1, Min: MinCellSize, Max: MaxCellSize},
		{Key: KeyBrushRadius, Label: "Brush size", Step: 1, Min: MinBrushRadius, Max: MaxBrushRadius},
		{Key: KeyMinSurvival, Label: "Min survival", Step: 1, Min: 0, Max: core.MaxNeighbors},
		{Key: KeyMaxSurvival, Label: "Max survival", Step: 1, Min: 0, Max: core.MaxNeighbors},
		{Key: KeyBirth, Label: "Birth", Step: 1, Min: 0, Max: core.MaxNeighbors},
	}
}

// SetIntParameter updates one control by key.
func (l *Loop) SetIntParameter(key string, value int) bool {
	switch key {
	case KeyCellSize:
		l.SetCellSize(value)
	case KeyBrushRadius:
		l.SetBrushRadius(value)
	case KeyMinSurvival:
		l.rules.MinSurvival = value
	case KeyMaxSurvival:
		l.rules.MaxSurvival = value
	case KeyBirth:
		l.rules.Birth = value
	default:
		return false
	}
	return true
}

// Actions lists the panel buttons: cell-size quick picks, rule presets, and
// the reset button.
func (l *Loop) Actions() []core.Action {
	actions := make([]core.Action, 0, len(CellSizePresets)+len(core.Presets())+1)
	for _, n := range CellSizePresets {
		actions = append(actions, core.Action{Key: actionCellPreset + strconv.Itoa(n), Label: strconv.Itoa(n) + "px"})
	}
	for _, p := range core.Presets() {
		actions = append(actions, core.Action{Key: actionPreset + p.Name, Label: p.Name + " (" + p.Rules.String() + ")"})
	}
	actions = append(actions, core.Action{Key: actionReset, Label: "Reset to Conway"})
	return actions
}

// RunAction executes a button by key.
func (l *Loop) RunAction(key string) bool {
	switch {
	case key == actionReset:
		l.ResetRules()
		return true
	case strings.HasPrefix(key, actionPreset):
		return l.ApplyPreset(strings.TrimPrefix(key, actionPreset)) == nil
	case strings.HasPrefix(key, actionCellPreset):
		n, err := strconv.Atoi(strings.TrimPrefix(key, actionCellPreset))
		if err != nil {
			return false
		}
		l.SetCellSize(n)
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}
