package system

import (
	"github.com/milk9111/dinosaur/ecs"
	"github.com/milk9111/dinosaur/ecs/component"
)

// GroundContactSystem drains the contact batch of the physics step that just
// ran and grounds every character named by a contact start. Any start counts,
// including side and ceiling contacts; separations are ignored.
type GroundContactSystem struct {
	lastStarts int
}

func NewGroundContactSystem() *GroundContactSystem {
	return &GroundContactSystem{}
}

func (g *GroundContactSystem) Update(w *ecs.World) {
	if g == nil || w == nil {
		return
	}

	events := w.Contacts().Drain()
	g.lastStarts = 0
	if len(events) == 0 {
		return
	}

	characters := w.Query(component.CharacterComponent.Kind(), component.JumperComponent.Kind())
	for _, ev := range events {
		if !ev.Started {
			continue
		}
		counted := false
		for _, e := range characters {
			if !ev.Involves(e) {
				continue
			}
			jumper, ok := ecs.Get(w, e, component.JumperComponent.Kind())
			if !ok {
				continue
			}
			jumper.ReportGroundContact()
			if !counted {
				g.lastStarts++
				counted = true
			}
		}
	}
}

// LastStarts returns how many contact start events in the most recent batch
// named at least one character. An event between two characters counts once.
func (g *GroundContactSystem) LastStarts() int {
	if g == nil {
		return 0
	}
	return g.lastStarts
}
