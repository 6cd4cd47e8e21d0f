package main

import (
	"errors"
	"fmt"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/dinosaur/config"
	"github.com/milk9111/dinosaur/ecs"
	"github.com/milk9111/dinosaur/ecs/entity"
	"github.com/milk9111/dinosaur/ecs/system"
	"github.com/milk9111/dinosaur/prefabs"
	"github.com/milk9111/dinosaur/telemetry"
)

type Options struct {
	Debug     bool
	Watch     bool
	TracePath string
}

type Game struct {
	cfg   *config.Config
	debug bool

	world    *ecs.World
	pipeline *system.Pipeline
	render   *system.RenderSystem

	paused bool
	quit   bool
	ui     *ebitenui.UI

	watcher  *prefabs.Watcher
	recorder *telemetry.Recorder
}

func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	g := &Game{
		cfg:    cfg,
		debug:  opts.Debug,
		world:  ecs.NewWorld(),
		render: system.NewRenderSystem(),
	}

	if _, err := entity.BuildScene(g.world); err != nil {
		return nil, err
	}

	var prefabEvents <-chan string
	if opts.Watch {
		watcher, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			return nil, fmt.Errorf("watch %s: %w", prefabs.Dir, err)
		}
		g.watcher = watcher
		prefabEvents = watcher.Events
		go logWatchErrors(watcher.Errors)
	}

	recorder, err := telemetry.NewRecorder(opts.TracePath)
	if err != nil {
		g.Close()
		return nil, err
	}
	g.recorder = recorder

	g.pipeline = system.RegisterPipeline(g.world, system.PipelineOptions{
		Physics:      cfg.Physics,
		Keys:         system.NewEbitenKeys(cfg.Input.StickDeadzone),
		PrefabEvents: prefabEvents,
		Recorder:     recorder,
	})
	g.ui = NewPauseUI(g)

	return g, nil
}

func logWatchErrors(errs <-chan error) {
	for err := range errs {
		log.Printf("prefab watcher: %v", err)
	}
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}

	if g.paused {
		g.ui.Update()
		return nil
	}

	g.world.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Window.ClearColor.Color)

	g.render.Draw(g.world, screen)

	if g.debug {
		system.DrawPhysicsDebug(g.pipeline.Physics.Space(), g.world, screen)
		system.DrawCharacterDebug(g.world, screen)
	}

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Window.Width, g.cfg.Window.Height
}

// Close releases the watcher and flushes the trace.
func (g *Game) Close() error {
	var errs []error
	if g.watcher != nil {
		errs = append(errs, g.watcher.Close())
		g.watcher = nil
	}
	if g.recorder != nil {
		errs = append(errs, g.recorder.Close())
		g.recorder = nil
	}
	return errors.Join(errs...)
}
