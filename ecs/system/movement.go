package system

import (
	"github.com/milk9111/dinosaur/ecs"
	"github.com/milk9111/dinosaur/ecs/component"
)

// MovementSystem turns left/right input into a horizontal velocity command.
//
// With both or neither direction held the horizontal velocity is left as the
// physics engine carried it over, so a released character slides until
// friction stops it instead of halting in place.
type MovementSystem struct{}

func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (m *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	entities := w.Query(
		component.CharacterComponent.Kind(),
		component.InputComponent.Kind(),
		component.PhysicsBodyComponent.Kind(),
	)
	for _, e := range entities {
		character, ok := ecs.Get(w, e, component.CharacterComponent.Kind())
		if !ok {
			continue
		}
		input, ok := ecs.Get(w, e, component.InputComponent.Kind())
		if !ok {
			continue
		}
		bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok || bodyComp.Body == nil {
			continue
		}

		dir := input.MoveX()
		if dir == 0 {
			continue
		}

		vel := bodyComp.Body.Velocity()
		vel.X = dir * character.HorizontalSpeed
		bodyComp.Body.SetVelocityVector(vel)
	}
}
