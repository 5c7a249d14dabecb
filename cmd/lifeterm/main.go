package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"lifebg/internal/app"
	"lifebg/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.CellSize = 1
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	opts, err := cfg.Options()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	host := term.NewHost(screen, opts)
	err = host.Run(ctx)
	screen.Fini()
	if err != nil && ctx.Err() == nil {
		log.Fatal(err)
	}
	log.Printf("stopped after %d generations", host.Loop().Generation())
}
