package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dinosaur/config"
)

func main() {
	debug := flag.Bool("debug", false, "draw physics shapes and character state")
	watch := flag.Bool("watch", false, "reload character tuning when prefabs/player.yaml changes")
	tracePath := flag.String("trace", "", "write a per-tick CSV trace of the player to this file")
	configPath := flag.String("config", "", "YAML file overriding the embedded defaults")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)

	game, err := NewGame(cfg, Options{Debug: *debug, Watch: *watch, TracePath: *tracePath})
	if err != nil {
		log.Fatal(err)
	}

	runErr := ebiten.RunGame(game)
	if err := game.Close(); err != nil {
		log.Printf("shutdown: %v", err)
	}
	if runErr != nil {
		log.Fatal(runErr)
	}
}
