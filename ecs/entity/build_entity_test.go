package entity

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/dinosaur/ecs"
	"github.com/milk9111/dinosaur/ecs/component"
	"github.com/milk9111/dinosaur/prefabs"
)

func TestBuildScene(t *testing.T) {
	w := ecs.NewWorld()
	scene, err := BuildScene(w)
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}

	t.Run("player", func(t *testing.T) {
		character, ok := ecs.Get(w, scene.Player, component.CharacterComponent.Kind())
		if !ok {
			t.Fatalf("player has no character component")
		}
		if character.HorizontalSpeed != 100 || character.JumpSpeed != 150 {
			t.Fatalf("character = %+v, want speeds 100/150", character)
		}
		jumper, ok := ecs.Get(w, scene.Player, component.JumperComponent.Kind())
		if !ok || jumper.IsAirborne() {
			t.Fatalf("player should spawn grounded")
		}
		body, ok := ecs.Get(w, scene.Player, component.PhysicsBodyComponent.Kind())
		if !ok {
			t.Fatalf("player has no physics body")
		}
		if body.Static || !body.LockRotation || !body.ReportContacts {
			t.Fatalf("player body = %+v, want dynamic, rotation locked, reporting contacts", body)
		}
		if !ecs.Has(w, scene.Player, component.InputComponent.Kind()) {
			t.Fatalf("player has no input component")
		}
	})

	t.Run("floor", func(t *testing.T) {
		body, ok := ecs.Get(w, scene.Floor, component.PhysicsBodyComponent.Kind())
		if !ok || !body.Static {
			t.Fatalf("floor must carry a static body")
		}
		floorT, _ := ecs.Get(w, scene.Floor, component.TransformComponent.Kind())
		playerT, _ := ecs.Get(w, scene.Player, component.TransformComponent.Kind())
		playerBody, _ := ecs.Get(w, scene.Player, component.PhysicsBodyComponent.Kind())
		floorTop := floorT.Y + body.Height/2
		playerBottom := playerT.Y - playerBody.Height/2
		if floorTop != playerBottom {
			t.Fatalf("player should spawn resting on the floor: floor top %v, player bottom %v", floorTop, playerBottom)
		}
	})

	t.Run("camera", func(t *testing.T) {
		cam, ok := ecs.Get(w, scene.Camera, component.CameraComponent.Kind())
		if !ok || cam.Zoom != 1 {
			t.Fatalf("camera = %+v, want zoom 1", cam)
		}
	})
}

func TestBuildEntityErrors(t *testing.T) {
	dir := t.TempDir()
	old := prefabs.Dir
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = old })

	files := map[string]string{
		"unknown.yaml":   "name: x\ncomponents:\n  wings: {}\n",
		"empty.yaml":     "name: x\n",
		"badsprite.yaml": "name: x\ncomponents:\n  sprite:\n    color: nope\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	tests := []string{"unknown.yaml", "empty.yaml", "badsprite.yaml", "missing.yaml"}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			w := ecs.NewWorld()
			if _, err := BuildEntity(w, name); err == nil {
				t.Fatalf("expected error building %s", name)
			}
			if n := len(ecs.Entities(w)); n != 0 {
				t.Fatalf("failed build left %d entities behind", n)
			}
		})
	}
}
