package system

import (
	"github.com/milk9111/dinosaur/config"
	"github.com/milk9111/dinosaur/ecs"
	"github.com/milk9111/dinosaur/telemetry"
)

// PipelineOptions selects the optional parts of the tick pipeline.
type PipelineOptions struct {
	Physics config.PhysicsConfig
	// Keys defaults to the keyboard and gamepad.
	Keys KeySource
	// PrefabEvents enables tuning reload when non-nil.
	PrefabEvents <-chan string
	// Recorder enables the tick trace when non-nil.
	Recorder *telemetry.Recorder
}

// Pipeline keeps the systems that other code needs to reach after they have
// been registered.
type Pipeline struct {
	Physics *PhysicsSystem
	Ground  *GroundContactSystem
}

// RegisterPipeline adds the controller systems to w in tick order.
func RegisterPipeline(w *ecs.World, opts PipelineOptions) *Pipeline {
	p := &Pipeline{
		Physics: NewPhysicsSystem(opts.Physics),
		Ground:  NewGroundContactSystem(),
	}

	if opts.PrefabEvents != nil {
		w.AddSystem(NewTuningReloadSystem(opts.PrefabEvents, "player.yaml"))
	}
	w.AddSystem(NewInputSystem(opts.Keys))
	w.AddSystem(NewMovementSystem())
	w.AddSystem(NewJumpSystem())
	w.AddSystem(p.Physics)
	w.AddSystem(p.Ground)
	w.AddSystem(NewCameraSystem())
	if opts.Recorder != nil {
		w.AddSystem(NewTraceSystem(opts.Recorder, p.Ground))
	}
	return p
}
