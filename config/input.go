package config

import (
	"github.com/automoto/platformer-controller/shared/controller"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// DebugBindings are host-only keys that never reach the controller
type DebugBindings struct {
	ToggleOverlay   ebiten.Key
	ToggleInspector ebiten.Key
	Respawn         ebiten.Key
	CycleLevel      ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[controller.ActionID]InputBinding
	Debug    DebugBindings
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[controller.ActionID]InputBinding{
			controller.ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				// D-pad Left (analog stick handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			controller.ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				// D-pad Right (analog stick handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			controller.ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyUp},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
		},
		Debug: DebugBindings{
			ToggleOverlay:   ebiten.KeyF1,
			ToggleInspector: ebiten.KeyTab,
			Respawn:         ebiten.KeyR,
			CycleLevel:      ebiten.KeyL,
		},
	}
}
