// Package loop drives the live background: it owns the grid, advances it on
// scheduler ticks, applies pointer painting between ticks, and redraws into a
// render.Surface after every mutation.
//
// A Loop is not safe for concurrent use. Hosts must call every method from a
// single goroutine; schedulers that tick from other goroutines hand the tick
// back to the host's event loop first.
package loop

import (
	"errors"
	"fmt"
	"time"

	"lifebg/internal/core"
	"lifebg/internal/render"
	"lifebg/internal/sims/life"
)

// State is the play/pause state of the loop.
type State int

const (
	// Running advances one generation per tick.
	Running State = iota
	// Paused redraws the current grid unchanged on every tick.
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Slider ranges for the interactive controls.
const (
	MinCellSize    = 1
	MaxCellSize    = 20
	MinBrushRadius = 1
	MaxBrushRadius = 15
)

// DefaultDensity is the live probability used when a grid is regenerated.
const DefaultDensity = 0.15

// ErrUnknownPreset is returned by ApplyPreset for names with no preset.
var ErrUnknownPreset = errors.New("unknown rule preset")

// Options configures a new Loop.
type Options struct {
	CellSize    int
	BrushRadius int
	Rules       core.RuleSet
	Density     float64
	Interval    time.Duration
	Rainbow     bool
	Paused      bool
	Seed        int64
}

// DefaultOptions returns the startup settings.
func DefaultOptions() Options {
	return Options{
		CellSize:    12,
		BrushRadius: 1,
		Rules:       core.Conway(),
		Density:     DefaultDensity,
		Interval:    core.DefaultInterval,
	}
}

type resizer interface {
	Resize(w, h int)
}

// Loop is the render/interaction loop.
type Loop struct {
	cellSize     int
	brushRadius  int
	rules        core.RuleSet
	density      float64
	interval     time.Duration
	rainbow      bool
	showControls bool
	state        State

	viewport      core.Size
	pending       core.Size
	resizePending bool

	grid *core.Grid
	rng  *core.RNG

	painting bool

	surface   render.Surface
	scheduler core.Scheduler
	onRedraw  func()

	generation int
	frames     int
}

// New constructs a Loop drawing into surface. The grid stays empty until the
// first Resize reports a measurable viewport.
func New(opts Options, surface render.Surface) *Loop {
	if opts.CellSize < MinCellSize {
		opts.CellSize = MinCellSize
	}
	if opts.BrushRadius < 0 {
		opts.BrushRadius = 0
	}
	if opts.Density < 0 || opts.Density > 1 {
		opts.Density = DefaultDensity
	}
	if opts.Interval <= 0 {
		opts.Interval = core.DefaultInterval
	}
	l := &Loop{
		cellSize:    opts.CellSize,
		brushRadius: opts.BrushRadius,
		rules:       opts.Rules,
		density:     opts.Density,
		interval:    opts.Interval,
		rainbow:     opts.Rainbow,
		surface:     surface,
		grid:        core.NewGrid(0, 0),
		rng:         core.NewRNG(opts.Seed),
	}
	if opts.Paused {
		l.state = Paused
	}
	return l
}

// OnRedraw registers a hook invoked after every redraw, e.g. to present a
// terminal frame.
func (l *Loop) OnRedraw(fn func()) { l.onRedraw = fn }

// Start binds the loop to a scheduler ticking at the configured interval.
func (l *Loop) Start(s core.Scheduler) {
	if l.scheduler != nil {
		l.scheduler.Stop()
	}
	l.scheduler = s
	s.Start(l.interval, l.Tick)
}

// Close stops the scheduler and ends any painting session.
func (l *Loop) Close() {
	if l.scheduler != nil {
		l.scheduler.Stop()
		l.scheduler = nil
	}
	l.painting = false
}

// Resize records a new viewport size. Redundant notifications coalesce; only
// the last size is applied, at the next tick, redraw or paint.
func (l *Loop) Resize(w, h int) {
	l.pending = core.Size{W: w, H: h}
	l.resizePending = true
}

func (l *Loop) applyResize() {
	if !l.resizePending {
		return
	}
	l.resizePending = false
	if l.pending == l.viewport {
		return
	}
	l.viewport = l.pending
	if r, ok := l.surface.(resizer); ok {
		r.Resize(l.viewport.W, l.viewport.H)
	}
	rows, cols := core.GridDims(l.viewport, l.cellSize)
	if rows != l.grid.Rows() || cols != l.grid.Cols() {
		l.regrid()
	}
}

// regrid discards the grid and randomizes a fresh one for the current
// viewport and cell size.
func (l *Loop) regrid() {
	rows, cols := core.GridDims(l.viewport, l.cellSize)
	l.grid = core.NewRandomGrid(rows, cols, l.density, l.rng.Source())
	l.generation = 0
}

// Tick advances one generation when running and redraws.
func (l *Loop) Tick() {
	l.applyResize()
	if l.state == Running && !l.grid.Empty() {
		l.advance()
	}
	l.redraw()
}

// StepOnce advances exactly one generation regardless of state.
func (l *Loop) StepOnce() {
	l.applyResize()
	if !l.grid.Empty() {
		l.advance()
	}
	l.redraw()
}

func (l *Loop) advance() {
	l.grid = life.Step(l.grid, l.rules)
	l.generation++
}

// Redraw renders the current grid without advancing time.
func (l *Loop) Redraw() {
	l.applyResize()
	l.redraw()
}

func (l *Loop) redraw() {
	if l.surface == nil {
		return
	}
	render.Draw(l.surface, l.grid, l.cellSize, l.rainbow)
	l.frames++
	if l.onRedraw != nil {
		l.onRedraw()
	}
}

// PointerDown begins a painting session at surface coordinates (x, y).
func (l *Loop) PointerDown(x, y int) {
	l.painting = true
	l.paintAt(x, y)
}

// PointerMove paints at (x, y) while a painting session is active.
func (l *Loop) PointerMove(x, y int) {
	if !l.painting {
		return
	}
	l.paintAt(x, y)
}

// PointerUp ends the painting session.
func (l *Loop) PointerUp() { l.painting = false }

// PointerLeave ends the painting session when the pointer exits the surface.
func (l *Loop) PointerLeave() { l.painting = false }

func (l *Loop) paintAt(x, y int) {
	l.applyResize()
	if l.grid.Empty() {
		return
	}
	row := core.FloorDiv(y, l.cellSize)
	col := core.FloorDiv(x, l.cellSize)
	l.grid.Paint(row, col, l.brushRadius)
	l.redraw()
}

// SetCellSize changes the pixel size of a cell and regenerates the grid.
func (l *Loop) SetCellSize(n int) {
	if n < MinCellSize {
		n = MinCellSize
	}
	l.applyResize()
	if n == l.cellSize {
		return
	}
	l.cellSize = n
	l.regrid()
}

// SetBrushRadius changes the paint radius in cells.
func (l *Loop) SetBrushRadius(n int) {
	if n < 0 {
		n = 0
	}
	l.brushRadius = n
}

// SetRules replaces the rule set. Values are not validated.
func (l *Loop) SetRules(r core.RuleSet) { l.rules = r }

// ResetRules restores Conway's rule.
func (l *Loop) ResetRules() { l.rules = core.Conway() }

// ApplyPreset switches to a named rule preset.
func (l *Loop) ApplyPreset(name string) error {
	r, ok := core.LookupPreset(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	l.rules = r
	return nil
}

// ToggleRunning flips between Running and Paused.
func (l *Loop) ToggleRunning() {
	if l.state == Running {
		l.state = Paused
		return
	}
	l.state = Running
}

// ToggleRainbow flips rainbow colouring.
func (l *Loop) ToggleRainbow() { l.rainbow = !l.rainbow }

// ToggleControls flips controls panel visibility.
func (l *Loop) ToggleControls() { l.showControls = !l.showControls }

// State returns the play/pause state.
func (l *Loop) State() State { return l.state }

// Running reports whether ticks advance the simulation.
func (l *Loop) Running() bool { return l.state == Running }

// Rules returns the active rule set.
func (l *Loop) Rules() core.RuleSet { return l.rules }

// CellSize returns the pixel size of one cell.
func (l *Loop) CellSize() int { return l.cellSize }

// BrushRadius returns the paint radius in cells.
func (l *Loop) BrushRadius() int { return l.brushRadius }

// Rainbow reports whether rainbow colouring is on.
func (l *Loop) Rainbow() bool { return l.rainbow }

// ShowControls reports whether the controls panel is visible.
func (l *Loop) ShowControls() bool { return l.showControls }

// Painting reports whether a pointer painting session is active.
func (l *Loop) Painting() bool { return l.painting }

// Grid returns the current generation. Callers must not retain it across
// calls that mutate the loop if they expect it to stay current.
func (l *Loop) Grid() *core.Grid { return l.grid }

// Viewport returns the applied viewport size.
func (l *Loop) Viewport() core.Size { return l.viewport }

// Generation counts generations since the last regrid.
func (l *Loop) Generation() int { return l.generation }

// Frames counts redraws since construction.
func (l *Loop) Frames() int { return l.frames }
