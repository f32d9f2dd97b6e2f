//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"sandbox/internal/app"
	"sandbox/internal/sand"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	simCfg := sand.DefaultConfig()
	simCfg.Width = cfg.Width
	simCfg.Height = cfg.Height
	simCfg.Seed = cfg.Seed

	world := sand.NewWithConfig(simCfg)
	world.Reset(cfg.Seed)

	if id, ok := sand.ByName(cfg.Brush); ok {
		world.SetBrush(id)
	} else {
		log.Fatalf("unknown material %q", cfg.Brush)
	}

	game := app.New(world, cfg)
	size := world.Size()

	ebiten.SetWindowTitle("sandbox")
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
