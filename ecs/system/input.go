package system

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/rpgplatformer/ecs"
	"github.com/milk9111/rpgplatformer/ecs/component"
)

// KeySource answers keyboard and gamepad queries. The game uses Ebiten;
// tests script their own.
type KeySource interface {
	Pressed(ebiten.Key) bool
	JustPressed(ebiten.Key) bool
	JustReleased(ebiten.Key) bool
	Gamepad() (GamepadState, bool)
}

// GamepadState is one frame of the first connected standard gamepad.
type GamepadState struct {
	StickX          float64
	JumpPressed     bool
	AbilityPressed  bool
	AbilityReleased bool
	AttackPressed   bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool      { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }

func (ebitenKeys) Gamepad() (GamepadState, bool) {
	gamepads := ebiten.AppendGamepadIDs(nil)
	if len(gamepads) == 0 {
		return GamepadState{}, false
	}
	id := gamepads[0]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return GamepadState{}, false
	}
	return GamepadState{
		StickX:          ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal),
		JumpPressed:     inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightBottom),
		AbilityPressed:  inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightRight),
		AbilityReleased: inpututil.IsStandardGamepadButtonJustReleased(id, ebiten.StandardGamepadButtonRightRight),
		AttackPressed:   inpututil.IsStandardGamepadButtonJustPressed(id, ebiten.StandardGamepadButtonRightLeft),
	}, true
}

var switchKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

type InputSystem struct {
	keys KeySource
}

func NewInputSystem() *InputSystem {
	return &InputSystem{keys: ebitenKeys{}}
}

// NewInputSystemWithKeys reads from keys instead of Ebiten.
func NewInputSystemWithKeys(keys KeySource) *InputSystem {
	return &InputSystem{keys: keys}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.keys == nil {
		return
	}
	k := i.keys

	const stickDeadzone = 0.2

	left := k.Pressed(ebiten.KeyA) || k.Pressed(ebiten.KeyArrowLeft)
	right := k.Pressed(ebiten.KeyD) || k.Pressed(ebiten.KeyArrowRight)

	moveX := 0.0
	if left {
		moveX -= 1
	}
	if right {
		moveX += 1
	}

	jumpPressed := k.JustPressed(ebiten.KeyW) || k.JustPressed(ebiten.KeyArrowUp)
	abilityPressed := k.JustPressed(ebiten.KeySpace)
	abilityReleased := k.JustReleased(ebiten.KeySpace)
	attackPressed := k.JustPressed(ebiten.KeyE)

	if pad, ok := k.Gamepad(); ok {
		if math.Abs(pad.StickX) > stickDeadzone {
			moveX = pad.StickX
		}
		jumpPressed = jumpPressed || pad.JumpPressed
		abilityPressed = abilityPressed || pad.AbilityPressed
		abilityReleased = abilityReleased || pad.AbilityReleased
		attackPressed = attackPressed || pad.AttackPressed
	}

	switchTo := -1
	for slot, key := range switchKeys {
		if k.JustPressed(key) {
			switchTo = slot
			break
		}
	}

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.MoveX = moveX
		input.Up = k.Pressed(ebiten.KeyW) || k.Pressed(ebiten.KeyArrowUp)
		input.Down = k.Pressed(ebiten.KeyS) || k.Pressed(ebiten.KeyArrowDown)
		input.JumpPressed = jumpPressed
		input.DownPressed = k.JustPressed(ebiten.KeyS) || k.JustPressed(ebiten.KeyArrowDown)
		input.AbilityPressed = abilityPressed
		input.AbilityReleased = abilityReleased
		input.AttackPressed = attackPressed
		input.ResetPressed = k.JustPressed(ebiten.KeyEscape)
		input.SwitchTo = switchTo
	})
}
