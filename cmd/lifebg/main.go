//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifebg/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	opts, err := cfg.Options()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	game := app.New(opts)
	defer game.Close()

	ebiten.SetWindowTitle("lifebg - " + opts.Rules.String())
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
