//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"rle-life/internal/app"
	"rle-life/internal/config"
	"rle-life/internal/core"
	_ "rle-life/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	sim, err := core.New(cfg.Sim, cfg.Map())
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, cfg.Scale, cfg.TPS, cfg.Seed)
	ebiten.SetWindowTitle("lifeview - " + sim.Name())
	ebiten.SetWindowSize(game.WindowSize())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
