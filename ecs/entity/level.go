package entity

import (
	"fmt"

	"github.com/milk9111/dinosaur/ecs"
)

func NewFloor(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "floor.yaml")
}

func NewCamera(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "camera.yaml")
}

// Scene holds the entities created at startup. They live until exit.
type Scene struct {
	Player ecs.Entity
	Floor  ecs.Entity
	Camera ecs.Entity
}

// BuildScene spawns the camera, the floor and the player.
func BuildScene(w *ecs.World) (Scene, error) {
	var s Scene
	var err error
	if s.Camera, err = NewCamera(w); err != nil {
		return Scene{}, fmt.Errorf("scene: camera: %w", err)
	}
	if s.Floor, err = NewFloor(w); err != nil {
		return Scene{}, fmt.Errorf("scene: floor: %w", err)
	}
	if s.Player, err = NewPlayer(w); err != nil {
		return Scene{}, fmt.Errorf("scene: player: %w", err)
	}
	return s, nil
}
