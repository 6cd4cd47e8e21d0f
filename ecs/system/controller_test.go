package system

import (
	"math"
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dinosaur/ecs"
	"github.com/milk9111/dinosaur/ecs/component"
)

func newTestCharacter(t *testing.T, w *ecs.World, speed, jump float64) (ecs.Entity, *cp.Body) {
	t.Helper()
	e := ecs.CreateEntity(w)
	body := cp.NewBody(1, math.Inf(1))
	mustAdd(t, ecs.Add(w, e, component.CharacterComponent.Kind(), &component.Character{HorizontalSpeed: speed, JumpSpeed: jump}))
	mustAdd(t, ecs.Add(w, e, component.JumperComponent.Kind(), &component.Jumper{}))
	mustAdd(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}))
	mustAdd(t, ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: body}))
	return e, body
}

func mustAdd(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func setInput(t *testing.T, w *ecs.World, e ecs.Entity, in component.Input) {
	t.Helper()
	input, ok := ecs.Get(w, e, component.InputComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no input", e)
	}
	*input = in
}

func jumperOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Jumper {
	t.Helper()
	j, ok := ecs.Get(w, e, component.JumperComponent.Kind())
	if !ok {
		t.Fatalf("entity %v has no jumper", e)
	}
	return j
}

func TestMovementSystem(t *testing.T) {
	tests := []struct {
		name   string
		input  component.Input
		startX float64
		wantX  float64
	}{
		{name: "left", input: component.Input{Left: true}, startX: 7, wantX: -100},
		{name: "right", input: component.Input{Right: true}, startX: -7, wantX: 100},
		{name: "both keeps velocity", input: component.Input{Left: true, Right: true}, startX: 42, wantX: 42},
		{name: "neither keeps velocity", input: component.Input{}, startX: -13, wantX: -13},
		{name: "jump alone keeps velocity", input: component.Input{Jump: true}, startX: 5, wantX: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e, body := newTestCharacter(t, w, 100, 150)
			body.SetVelocity(tt.startX, 9)
			setInput(t, w, e, tt.input)

			NewMovementSystem().Update(w)

			vel := body.Velocity()
			if vel.X != tt.wantX {
				t.Fatalf("vx = %v, want %v", vel.X, tt.wantX)
			}
			if vel.Y != 9 {
				t.Fatalf("vy changed to %v, movement must only touch vx", vel.Y)
			}
		})
	}
}

func TestMovementIgnoresEntitiesWithoutBody(t *testing.T) {
	w := ecs.NewWorld()
	e := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, e, component.CharacterComponent.Kind(), &component.Character{HorizontalSpeed: 100}))
	mustAdd(t, ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{Right: true}))
	mustAdd(t, ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{}))

	NewMovementSystem().Update(w)
}

func TestJumpSystem(t *testing.T) {
	tests := []struct {
		name         string
		airborne     bool
		jump         bool
		wantVY       float64
		wantAirborne bool
	}{
		{name: "grounded jump", airborne: false, jump: true, wantVY: 150, wantAirborne: true},
		{name: "airborne jump ignored", airborne: true, jump: true, wantVY: -3, wantAirborne: true},
		{name: "grounded no input", airborne: false, jump: false, wantVY: -3, wantAirborne: false},
		{name: "airborne no input", airborne: true, jump: false, wantVY: -3, wantAirborne: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			e, body := newTestCharacter(t, w, 100, 150)
			if tt.airborne {
				jumperOf(t, w, e).RequestJump()
			}
			body.SetVelocity(11, -3)
			setInput(t, w, e, component.Input{Jump: tt.jump})

			NewJumpSystem().Update(w)

			vel := body.Velocity()
			if vel.Y != tt.wantVY {
				t.Fatalf("vy = %v, want %v", vel.Y, tt.wantVY)
			}
			if vel.X != 11 {
				t.Fatalf("vx changed to %v, jump must only touch vy", vel.X)
			}
			if got := jumperOf(t, w, e).IsAirborne(); got != tt.wantAirborne {
				t.Fatalf("airborne = %v, want %v", got, tt.wantAirborne)
			}
		})
	}
}

func TestHeldJumpDoesNotRepeat(t *testing.T) {
	w := ecs.NewWorld()
	e, body := newTestCharacter(t, w, 100, 150)
	setInput(t, w, e, component.Input{Jump: true})
	jump := NewJumpSystem()

	jump.Update(w)
	body.SetVelocity(0, 20)
	jump.Update(w)

	if vy := body.Velocity().Y; vy != 20 {
		t.Fatalf("second held tick changed vy to %v", vy)
	}
}

func TestGroundContactSystem(t *testing.T) {
	w := ecs.NewWorld()
	player, _ := newTestCharacter(t, w, 100, 150)
	other, _ := newTestCharacter(t, w, 100, 150)
	floor := ecs.CreateEntity(w)

	tests := []struct {
		name       string
		events     []ecs.ContactEvent
		wantPlayer bool
		wantOther  bool
		wantStarts int
	}{
		{
			name:       "start on player grounds only player",
			events:     []ecs.ContactEvent{{A: player, B: floor, Started: true}},
			wantPlayer: false, wantOther: true, wantStarts: 1,
		},
		{
			name:       "reversed order grounds player",
			events:     []ecs.ContactEvent{{A: floor, B: player, Started: true}},
			wantPlayer: false, wantOther: true, wantStarts: 1,
		},
		{
			name:       "separation is ignored",
			events:     []ecs.ContactEvent{{A: player, B: floor, Started: false}},
			wantPlayer: true, wantOther: true, wantStarts: 0,
		},
		{
			name:       "unrelated contact is ignored",
			events:     []ecs.ContactEvent{{A: floor, B: 0, Started: true}},
			wantPlayer: true, wantOther: true, wantStarts: 0,
		},
		{
			name: "duplicate starts are idempotent",
			events: []ecs.ContactEvent{
				{A: player, B: floor, Started: true},
				{A: player, B: floor, Started: true},
			},
			wantPlayer: false, wantOther: true, wantStarts: 2,
		},
		{
			name:       "contact between two characters counts once",
			events:     []ecs.ContactEvent{{A: player, B: other, Started: true}},
			wantPlayer: false, wantOther: false, wantStarts: 1,
		},
		{
			name:       "no events",
			wantPlayer: true, wantOther: true, wantStarts: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jumperOf(t, w, player).RequestJump()
			jumperOf(t, w, other).RequestJump()
			for _, ev := range tt.events {
				w.Contacts().Push(ev)
			}

			g := NewGroundContactSystem()
			g.Update(w)

			if got := jumperOf(t, w, player).IsAirborne(); got != tt.wantPlayer {
				t.Fatalf("player airborne = %v, want %v", got, tt.wantPlayer)
			}
			if got := jumperOf(t, w, other).IsAirborne(); got != tt.wantOther {
				t.Fatalf("other airborne = %v, want %v", got, tt.wantOther)
			}
			if g.LastStarts() != tt.wantStarts {
				t.Fatalf("LastStarts = %d, want %d", g.LastStarts(), tt.wantStarts)
			}
			if w.Contacts().Len() != 0 {
				t.Fatalf("queue not drained")
			}
		})
	}
}

func TestGroundContactOnGroundedIsNoop(t *testing.T) {
	w := ecs.NewWorld()
	player, _ := newTestCharacter(t, w, 100, 150)
	w.Contacts().Push(ecs.ContactEvent{A: player, B: ecs.CreateEntity(w), Started: true})

	NewGroundContactSystem().Update(w)

	if jumperOf(t, w, player).IsAirborne() {
		t.Fatalf("grounded character became airborne")
	}
}

func TestCameraSystemFollowsPlayerX(t *testing.T) {
	w := ecs.NewWorld()
	player := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}))
	mustAdd(t, ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: 37.5, Y: 200}))

	primary := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, primary, component.CameraComponent.Kind(), &component.Camera{Zoom: 1}))
	mustAdd(t, ecs.Add(w, primary, component.TransformComponent.Kind(), &component.Transform{X: -5, Y: 12}))

	minimap := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, minimap, component.CameraComponent.Kind(), &component.Camera{Zoom: 0.25}))
	mustAdd(t, ecs.Add(w, minimap, component.TransformComponent.Kind(), &component.Transform{X: -999, Y: -40}))

	cameras := []struct {
		name  string
		e     ecs.Entity
		wantY float64
	}{
		{name: "primary", e: primary, wantY: 12},
		{name: "minimap", e: minimap, wantY: -40},
	}

	cs := NewCameraSystem()
	for _, x := range []float64{37.5, -120, 0, 1e6} {
		pt, _ := ecs.Get(w, player, component.TransformComponent.Kind())
		pt.X = x
		cs.Update(w)

		for _, cam := range cameras {
			t.Run(cam.name, func(t *testing.T) {
				ct, _ := ecs.Get(w, cam.e, component.TransformComponent.Kind())
				if ct.X != x {
					t.Fatalf("camera x = %v, want %v", ct.X, x)
				}
				if ct.Y != cam.wantY {
					t.Fatalf("camera y = %v, camera must only follow x", ct.Y)
				}
			})
		}
	}
}

func TestCameraSystemFollowsUntaggedCharacter(t *testing.T) {
	w := ecs.NewWorld()
	e, _ := newTestCharacter(t, w, 100, 150)
	mustAdd(t, ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: 64}))

	cam := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, cam, component.CameraComponent.Kind(), &component.Camera{Zoom: 1}))
	mustAdd(t, ecs.Add(w, cam, component.TransformComponent.Kind(), &component.Transform{}))

	NewCameraSystem().Update(w)

	ct, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
	if ct.X != 64 {
		t.Fatalf("camera x = %v, want 64", ct.X)
	}
}

func TestCameraSystemWithoutCharacter(t *testing.T) {
	w := ecs.NewWorld()
	cam := ecs.CreateEntity(w)
	mustAdd(t, ecs.Add(w, cam, component.CameraComponent.Kind(), &component.Camera{Zoom: 1}))
	mustAdd(t, ecs.Add(w, cam, component.TransformComponent.Kind(), &component.Transform{X: 3}))

	NewCameraSystem().Update(w)

	ct, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
	if ct.X != 3 {
		t.Fatalf("camera moved to %v with no character", ct.X)
	}
}

func TestInputSystemSnapshotsKeys(t *testing.T) {
	held := map[Key]bool{}
	keys := KeySourceFunc(func(k Key) bool { return held[k] })

	w := ecs.NewWorld()
	e, _ := newTestCharacter(t, w, 100, 150)
	is := NewInputSystem(keys)

	tests := []struct {
		name string
		held map[Key]bool
		want component.Input
	}{
		{name: "nothing", held: map[Key]bool{}, want: component.Input{}},
		{name: "left", held: map[Key]bool{KeyLeft: true}, want: component.Input{Left: true}},
		{name: "right and jump", held: map[Key]bool{KeyRight: true, KeyJump: true}, want: component.Input{Right: true, Jump: true}},
		{name: "released", held: map[Key]bool{}, want: component.Input{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			held = tt.held
			is.Update(w)
			got, _ := ecs.Get(w, e, component.InputComponent.Kind())
			if *got != tt.want {
				t.Fatalf("input = %+v, want %+v", *got, tt.want)
			}
		})
	}
}
