package core

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxNeighbors is the size of the Moore neighborhood.
const MaxNeighbors = 8

// RuleSet parameterizes the single-birth / survival-range family of Life-like
// automata. Any integer values are accepted; an inverted or out-of-range
// survival window simply never matches.
type RuleSet struct {
	MinSurvival int
	MaxSurvival int
	Birth       int
}

// Conway returns the classic B3/S23 rule.
func Conway() RuleSet { return RuleSet{MinSurvival: 2, MaxSurvival: 3, Birth: 3} }

// Next returns the next state of a cell given its current state and live
// neighbor count.
func (r RuleSet) Next(alive bool, neighbors int) bool {
	if alive {
		return neighbors >= r.MinSurvival && neighbors <= r.MaxSurvival
	}
	return neighbors == r.Birth
}

// Clamp limits every value to [0, MaxNeighbors], mirroring the slider range.
func (r RuleSet) Clamp() RuleSet {
	return RuleSet{
		MinSurvival: clampInt(r.MinSurvival, 0, MaxNeighbors),
		MaxSurvival: clampInt(r.MaxSurvival, 0, MaxNeighbors),
		Birth:       clampInt(r.Birth, 0, MaxNeighbors),
	}
}

// String formats the rule the way the preset labels do, e.g. "2-3/3".
func (r RuleSet) String() string {
	if r.MinSurvival == r.MaxSurvival {
		return fmt.Sprintf("%d/%d", r.MinSurvival, r.Birth)
	}
	return fmt.Sprintf("%d-%d/%d", r.MinSurvival, r.MaxSurvival, r.Birth)
}

// ParseRuleSet parses "min,max,birth".
func ParseRuleSet(s string) (RuleSet, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return RuleSet{}, fmt.Errorf("rule set %q: want min,max,birth", s)
	}
	var vals [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return RuleSet{}, fmt.Errorf("rule set %q: %w", s, err)
		}
		vals[i] = v
	}
	return RuleSet{MinSurvival: vals[0], MaxSurvival: vals[1], Birth: vals[2]}, nil
}

// Preset is a named, immutable rule triple.
type Preset struct {
	Name  string
	Rules RuleSet
}

var presets = []Preset{
	{Name: "Conway", Rules: RuleSet{MinSurvival: 2, MaxSurvival: 3, Birth: 3}},
	{Name: "Gnarl", Rules: RuleSet{MinSurvival: 1, MaxSurvival: 1, Birth: 1}},
	{Name: "Maze", Rules: RuleSet{MinSurvival: 3, MaxSurvival: 4, Birth: 3}},
	{Name: "Seeds", Rules: RuleSet{MinSurvival: 0, MaxSurvival: 2, Birth: 3}},
}

// Presets returns the named presets in display order.
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// LookupPreset finds a preset by case-insensitive name.
func LookupPreset(name string) (RuleSet, bool) {
	for _, p := range presets {
		if strings.EqualFold(p.Name, name) {
			return p.Rules, true
		}
	}
	return RuleSet{}, false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
