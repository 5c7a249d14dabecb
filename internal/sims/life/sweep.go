package life

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"lifebg/internal/core"
)

// SweepConfig controls a headless comparison of rule presets.
type SweepConfig struct {
	Rows        int
	Cols        int
	Generations int
	Density     float64
	Seed        int64
	Workers     int
}

// DefaultSweepConfig returns a board roughly the size of a laptop viewport at
// the default cell size.
func DefaultSweepConfig() SweepConfig {
	return SweepConfig{
		Rows:        64,
		Cols:        112,
		Generations: 500,
		Density:     0.15,
		Seed:        1337,
		Workers:     runtime.NumCPU(),
	}
}

// SweepResult summarises one preset's run.
type SweepResult struct {
	Preset      string
	Rules       core.RuleSet
	Initial     int
	Final       int
	Peak        int
	Generations int
	// ExtinctAt is the generation at which the population reached zero, or -1.
	ExtinctAt int
	// StableAt is the first generation whose successor was identical, or -1.
	StableAt int
}

// Sweep runs every preset from the same seeded starting board and returns one
// result per preset in input order.
func Sweep(ctx context.Context, cfg SweepConfig, presets []core.Preset) ([]SweepResult, error) {
	seed := core.NewRNG(cfg.Seed).Source()
	start := core.NewRandomGrid(cfg.Rows, cfg.Cols, cfg.Density, seed)

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	results := make([]SweepResult, len(presets))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, p := range presets {
		g.Go(func() error {
			res, err := runPreset(ctx, start, p, cfg.Generations)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runPreset(ctx context.Context, start *core.Grid, p core.Preset, generations int) (SweepResult, error) {
	res := SweepResult{Preset: p.Name, Rules: p.Rules, ExtinctAt: -1, StableAt: -1}
	cur := start.Clone()
	res.Initial = cur.Population()
	res.Peak = res.Initial
	var spare *core.Grid
	for gen := 1; gen <= generations; gen++ {
		if err := ctx.Err(); err != nil {
			return SweepResult{}, err
		}
		next := StepInto(spare, cur, p.Rules)
		if res.StableAt < 0 && next.Equal(cur) {
			res.StableAt = gen - 1
		}
		cur, spare = next, cur
		pop := cur.Population()
		if pop > res.Peak {
			res.Peak = pop
		}
		res.Generations = gen
		if pop == 0 {
			res.ExtinctAt = gen
			break
		}
		if res.StableAt >= 0 {
			break
		}
	}
	res.Final = cur.Population()
	return res, nil
}
