package entity

import "github.com/milk9111/dinosaur/ecs"

func NewPlayer(w *ecs.World) (ecs.Entity, error) {
	return BuildEntity(w, "player.yaml")
}
