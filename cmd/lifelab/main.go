//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifelab/internal/app"
	"lifelab/internal/core"
	"lifelab/internal/sim"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simulation, err := sim.New(core.Config{Width: cfg.Width, Height: cfg.Height})
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	game := app.New(cfg, simulation)

	ebiten.SetWindowTitle("lifelab")
	ebiten.SetWindowSize(cfg.WinW, cfg.WinH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
