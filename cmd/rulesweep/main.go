package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"lifebg/internal/core"
	"lifebg/internal/sims/life"
)

type presetList []string

func (l *presetList) String() string {
	return strings.Join(*l, ",")
}

func (l *presetList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	cfg := life.DefaultSweepConfig()
	flag.IntVar(&cfg.Rows, "rows", cfg.Rows, "board rows")
	flag.IntVar(&cfg.Cols, "cols", cfg.Cols, "board columns")
	flag.IntVar(&cfg.Generations, "generations", cfg.Generations, "generations to simulate per preset")
	flag.Float64Var(&cfg.Density, "density", cfg.Density, "initial live probability")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the shared starting board")
	flag.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel preset runs")
	var names presetList
	flag.Var(&names, "preset", "preset to include (repeatable, default all)")
	var custom string
	flag.StringVar(&custom, "rules", "", "additional custom rule triple min,max,birth")
	flag.Parse()

	presets := core.Presets()
	if len(names) > 0 {
		presets = presets[:0]
		for _, n := range names {
			r, ok := core.LookupPreset(n)
			if !ok {
				log.Fatalf("unknown preset %q", n)
			}
			presets = append(presets, core.Preset{Name: n, Rules: r})
		}
	}
	if custom != "" {
		r, err := core.ParseRuleSet(custom)
		if err != nil {
			log.Fatal(err)
		}
		presets = append(presets, core.Preset{Name: "custom", Rules: r})
	}

	start := time.Now()
	results, err := life.Sweep(context.Background(), cfg, presets)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Board %dx%d, density %.2f, seed %d, %d generations (%s)\n\n",
		cfg.Rows, cfg.Cols, cfg.Density, cfg.Seed, cfg.Generations, time.Since(start).Round(time.Millisecond))
	fmt.Printf("%-10s %-8s %8s %8s %8s %6s %8s %8s\n", "preset", "rule", "initial", "final", "peak", "gens", "extinct", "stable")
	for _, r := range results {
		fmt.Printf("%-10s %-8s %8d %8d %8d %6d %8s %8s\n",
			r.Preset, r.Rules, r.Initial, r.Final, r.Peak, r.Generations, genOrDash(r.ExtinctAt), genOrDash(r.StableAt))
	}
}

func genOrDash(gen int) string {
	if gen < 0 {
		return "-"
	}
	return fmt.Sprint(gen)
}
