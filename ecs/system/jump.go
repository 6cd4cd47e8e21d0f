package system

import (
	"github.com/milk9111/dinosaur/ecs"
	"github.com/milk9111/dinosaur/ecs/component"
)

// JumpSystem launches a grounded character while jump is held.
// The check is level triggered; holding jump does not repeat because the
// character stays airborne until the ground contact system reports a landing.
type JumpSystem struct{}

func NewJumpSystem() *JumpSystem {
	return &JumpSystem{}
}

func (j *JumpSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	entities := w.Query(
		component.CharacterComponent.Kind(),
		component.JumperComponent.Kind(),
		component.InputComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
	)
	for _, e := range entities {
		input, ok := ecs.Get(w, e, component.InputComponent.Kind())
		if !ok || !input.Jump {
			continue
		}
		character, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
		if !ok {
			continue
		}
		jumper, ok := ecs.Get(w, e, component.JumperComponent.Kind())
		if !ok {
			continue
		}
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok || bodyComp.Body == nil {
			continue
		}

		if !jumper.RequestJump() {
			continue
		}

		vel := bodyComp.Body.Velocity()
		vel.Y = character.JumpSpeed
		bodyComp.Body.SetVelocityVector(vel)
	}
}
