package app

import (
	"flag"
	"fmt"
	"time"

	"lifebg/internal/core"
	"lifebg/internal/loop"
)

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	CellSize int
	Brush    int
	Rules    string
	Preset   string
	Interval time.Duration
	Density  float64
	Rainbow  bool
	Paused   bool
	Seed     int64
	Width    int
	Height   int
}

// NewConfig returns a Config populated with sensible defaults. Rainbow mode
// starts on during June.
func NewConfig() *Config {
	return &Config{
		CellSize: 12,
		Brush:    1,
		Rules:    "2,3,3",
		Interval: core.DefaultInterval,
		Density:  loop.DefaultDensity,
		Rainbow:  time.Now().Month() == time.June,
		Width:    1280,
		Height:   800,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.CellSize, "cell", c.CellSize, "cell size in pixels (1-20)")
	fs.IntVar(&c.Brush, "brush", c.Brush, "paint brush radius in cells (1-15)")
	fs.StringVar(&c.Rules, "rules", c.Rules, "rule triple min,max,birth")
	fs.StringVar(&c.Preset, "preset", c.Preset, "named rule preset (conway, gnarl, maze, seeds); overrides -rules")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "generation interval")
	fs.Float64Var(&c.Density, "density", c.Density, "live probability for freshly generated grids")
	fs.BoolVar(&c.Rainbow, "rainbow", c.Rainbow, "start in rainbow mode")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start paused")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for grid generation (0 = random)")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
}

// Options validates the configuration and converts it into loop options.
// Slider-bound values are clamped to their ranges; malformed rules and
// unknown presets are errors.
func (c *Config) Options() (loop.Options, error) {
	rules, err := core.ParseRuleSet(c.Rules)
	if err != nil {
		return loop.Options{}, err
	}
	if c.Preset != "" {
		p, ok := core.LookupPreset(c.Preset)
		if !ok {
			return loop.Options{}, fmt.Errorf("%w: %q", loop.ErrUnknownPreset, c.Preset)
		}
		rules = p
	}
	if c.Density < 0 || c.Density > 1 {
		return loop.Options{}, fmt.Errorf("density %v outside [0,1]", c.Density)
	}
	return loop.Options{
		CellSize:    clamp(c.CellSize, loop.MinCellSize, loop.MaxCellSize),
		BrushRadius: clamp(c.Brush, loop.MinBrushRadius, loop.MaxBrushRadius),
		Rules:       rules.Clamp(),
		Density:     c.Density,
		Interval:    c.Interval,
		Rainbow:     c.Rainbow,
		Paused:      c.Paused,
		Seed:        c.Seed,
	}, nil
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
