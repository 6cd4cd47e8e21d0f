package system

import (
	"log"

	"github.com/milk9111/dinosaur/ecs"
	"github.com/milk9111/dinosaur/ecs/component"
	"github.com/milk9111/dinosaur/prefabs"
)

// TuningReloadSystem re-reads the character tuning when the player prefab
// changes on disk. Only speeds are touched; jump state and bodies stay put.
type TuningReloadSystem struct {
	events <-chan string
	prefab string
	load   func(string) (prefabs.CharacterComponentSpec, error)
}

func NewTuningReloadSystem(events <-chan string, prefab string) *TuningReloadSystem {
	if prefab == "" {
		prefab = "player.yaml"
	}
	return &TuningReloadSystem{
		events: events,
		prefab: prefab,
		load:   prefabs.LoadCharacterSpec,
	}
}

func (s *TuningReloadSystem) Update(w *ecs.World) {
	if s == nil || w == nil || s.events == nil {
		return
	}

	changed := false
drain:
	for {
		select {
		case name, ok := <-s.events:
			if !ok {
				s.events = nil
				break drain
			}
			if name == s.prefab {
				changed = true
			}
		default:
			break drain
		}
	}
	if !changed {
		return
	}

	spec, err := s.load(s.prefab)
	if err != nil {
		log.Printf("tuning reload: %v", err)
		return
	}
	if spec.HorizontalSpeed < 0 || spec.JumpSpeed < 0 {
		log.Printf("tuning reload: %s: negative speeds ignored (%+v)", s.prefab, spec)
		return
	}

	ecs.ForEach(w, component.CharacterComponent.Kind(), func(_ ecs.Entity, c *component.Character) {
		c.HorizontalSpeed = spec.HorizontalSpeed
		c.JumpSpeed = spec.JumpSpeed
	})
	log.Printf("tuning reload: %s: horizontal %.1f jump %.1f", s.prefab, spec.HorizontalSpeed, spec.JumpSpeed)
}
