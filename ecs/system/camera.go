package system

import (
	"github.com/milk9111/dinosaur/ecs"
	"github.com/milk9111/dinosaur/ecs/component"
)

// CameraSystem copies the character's X onto every camera. Camera Y and zoom
// stay where the prefab put them; there is no smoothing or clamping.
type CameraSystem struct{}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	target, ok := findCharacter(w)
	if !ok {
		return
	}
	targetTransform, ok := ecs.Get(w, target, component.TransformComponent.Kind())
	if !ok {
		return
	}

	cameras := w.Query(component.CameraComponent.Kind(), component.TransformComponent.Kind())
	for _, camEntity := range cameras {
		camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		camTransform.X = targetTransform.X
	}
}

// findCharacter prefers the tagged player and falls back to the first
// character with a transform.
func findCharacter(w *ecs.World) (ecs.Entity, bool) {
	if e, ok := w.First(component.PlayerTagComponent.Kind()); ok {
		return e, true
	}
	chars := w.Query(component.CharacterComponent.Kind(), component.TransformComponent.Kind())
	if len(chars) == 0 {
		return 0, false
	}
	return chars[0], true
}
