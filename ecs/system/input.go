package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dinosaur/ecs"
	"github.com/milk9111/dinosaur/ecs/component"
)

// Key is a logical key of the controller.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyJump
)

// KeySource answers whether a logical key is currently held.
type KeySource interface {
	Pressed(k Key) bool
}

// KeySourceFunc adapts a function to KeySource.
type KeySourceFunc func(k Key) bool

func (f KeySourceFunc) Pressed(k Key) bool {
	return f(k)
}

// Poller is implemented by key sources that sample devices once per tick.
type Poller interface {
	Poll()
}

// EbitenKeys reads the keyboard and the first standard gamepad. Gamepad
// state is sampled by Poll and reused for every key of the tick.
type EbitenKeys struct {
	StickDeadzone float64

	stickLeft  bool
	stickRight bool
	padJump    bool
}

func NewEbitenKeys(stickDeadzone float64) *EbitenKeys {
	return &EbitenKeys{StickDeadzone: stickDeadzone}
}

func (k *EbitenKeys) Poll() {
	k.stickLeft, k.stickRight, k.padJump = false, false, false

	gamepads := ebiten.AppendGamepadIDs(nil)
	if len(gamepads) == 0 {
		return
	}
	id := gamepads[0]
	x := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
	k.stickLeft, k.stickRight = stickDirection(x, k.StickDeadzone)
	k.padJump = ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
}

func (k *EbitenKeys) Pressed(key Key) bool {
	switch key {
	case KeyLeft:
		return k.stickLeft || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA)
	case KeyRight:
		return k.stickRight || ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD)
	case KeyJump:
		return k.padJump || ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeySpace)
	}
	return false
}

// stickDirection maps a horizontal stick value to left/right. Values inside
// the dead-zone, including its edge, count as centered.
func stickDirection(x, deadzone float64) (left, right bool) {
	if deadzone < 0 {
		deadzone = 0
	}
	return x < -deadzone, x > deadzone
}

// InputSystem copies the held keys into every Input component.
type InputSystem struct {
	keys KeySource
}

func NewInputSystem(keys KeySource) *InputSystem {
	if keys == nil {
		keys = NewEbitenKeys(0.2)
	}
	return &InputSystem{keys: keys}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	if p, ok := i.keys.(Poller); ok {
		p.Poll()
	}

	snapshot := component.Input{
		Left:  i.keys.Pressed(KeyLeft),
		Right: i.keys.Pressed(KeyRight),
		Jump:  i.keys.Pressed(KeyJump),
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = snapshot
	})
}
