package system

import (
	"log"

	"github.com/milk9111/dinosaur/ecs"
	"github.com/milk9111/dinosaur/ecs/component"
	"github.com/milk9111/dinosaur/telemetry"
)

// TraceSystem writes one row per tick for the player. It runs last so the
// row reflects the finished tick.
type TraceSystem struct {
	recorder *telemetry.Recorder
	ground   *GroundContactSystem
	failed   bool
}

func NewTraceSystem(recorder *telemetry.Recorder, ground *GroundContactSystem) *TraceSystem {
	return &TraceSystem{recorder: recorder, ground: ground}
}

func (ts *TraceSystem) Update(w *ecs.World) {
	if ts == nil || w == nil || ts.recorder == nil || ts.failed {
		return
	}

	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	transform, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	rec := telemetry.TickRecord{
		Tick:          w.Tick(),
		X:             transform.X,
		Y:             transform.Y,
		ContactStarts: ts.ground.LastStarts(),
	}
	if body, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind()); ok && body.Body != nil {
		vel := body.Body.Velocity()
		rec.VX = vel.X
		rec.VY = vel.Y
	}
	if jumper, ok := ecs.Get(w, player, component.JumperComponent.Kind()); ok {
		rec.Airborne = jumper.IsAirborne()
	}
	if cam, ok := w.First(component.CameraComponent.Kind()); ok {
		if camT, ok := ecs.Get(w, cam, component.TransformComponent.Kind()); ok {
			rec.CameraX = camT.X
		}
	}

	if err := ts.recorder.Write(rec); err != nil {
		log.Printf("trace: %v; disabling", err)
		ts.failed = true
	}
}
