package app

import (
	"errors"
	"flag"
	"testing"
	"time"

	"lifebg/internal/core"
	"lifebg/internal/loop"
)

func parse(t *testing.T, args ...string) *Config {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestDefaultOptions(t *testing.T) {
	opts, err := parse(t).Options()
	if err != nil {
		t.Fatal(err)
	}
	if opts.CellSize != 12 || opts.BrushRadius != 1 || opts.Rules != core.Conway() {
		t.Fatalf("unexpected defaults %+v", opts)
	}
	if opts.Interval != 100*time.Millisecond || opts.Density != 0.15 {
		t.Fatalf("unexpected cadence/density %+v", opts)
	}
}

func TestFlagsClampAndOverride(t *testing.T) {
	cfg := parse(t, "-cell", "50", "-brush", "0", "-rules", "1,12,3", "-interval", "300ms", "-paused")
	opts, err := cfg.Options()
	if err != nil {
		t.Fatal(err)
	}
	if opts.CellSize != loop.MaxCellSize || opts.BrushRadius != loop.MinBrushRadius {
		t.Fatalf("sliders not clamped: %+v", opts)
	}
	if opts.Rules != (core.RuleSet{MinSurvival: 1, MaxSurvival: 8, Birth: 3}) {
		t.Fatalf("rules = %+v", opts.Rules)
	}
	if opts.Interval != 300*time.Millisecond || !opts.Paused {
		t.Fatalf("unexpected %+v", opts)
	}

	opts, err = parse(t, "-rules", "1,12,3", "-preset", "Maze").Options()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Rules != (core.RuleSet{MinSurvival: 3, MaxSurvival: 4, Birth: 3}) {
		t.Fatalf("preset should override rules, got %+v", opts.Rules)
	}
}

func TestOptionsErrors(t *testing.T) {
	if _, err := parse(t, "-rules", "2;3;3").Options(); err == nil {
		t.Fatal("expected malformed rules error")
	}
	if _, err := parse(t, "-preset", "highlife").Options(); !errors.Is(err, loop.ErrUnknownPreset) {
		t.Fatalf("expected ErrUnknownPreset, got %v", err)
	}
	if _, err := parse(t, "-density", "1.5").Options(); err == nil {
		t.Fatal("expected density error")
	}
}
