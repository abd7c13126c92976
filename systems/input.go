package systems

import (
	"github.com/automoto/platformer-controller/components"
	cfg "github.com/automoto/platformer-controller/config"
	"github.com/automoto/platformer-controller/shared/controller"
	"github.com/automoto/platformer-controller/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input, pushes the controller actions of every player
// and updates the host keys.
// Must run BEFORE UpdateController in the system order.
func UpdateInput(ecs *ecs.ECS) {
	pressed := pollActions()

	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		controller.Input.Get(entry).Push(pressed)
	})

	if settingsEntry, ok := components.Settings.First(ecs.World); ok {
		host := components.HostInput.Get(settingsEntry)
		host.Previous = host.Current
		host.Current = pollHostActions()
	}
}

// pollActions merges keyboard, gamepad buttons and the left stick.
func pollActions() [controller.ActionCount]bool {
	var pressed [controller.ActionCount]bool

	// Get connected gamepads
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		// Check keyboard keys
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[actionID] = true
			}
		}

		// Check gamepad buttons
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					pressed[actionID] = true
				}
			}
		}
	}

	// Merge analog stick into directional actions
	left, right := getAnalogStickState(gamepadIDs)
	if left {
		pressed[controller.ActionMoveLeft] = true
	}
	if right {
		pressed[controller.ActionMoveRight] = true
	}

	return pressed
}

func pollHostActions() [components.HostActionCount]bool {
	var pressed [components.HostActionCount]bool
	pressed[components.HostToggleOverlay] = ebiten.IsKeyPressed(cfg.Input.Debug.ToggleOverlay)
	pressed[components.HostToggleInspector] = ebiten.IsKeyPressed(cfg.Input.Debug.ToggleInspector)
	pressed[components.HostRespawn] = ebiten.IsKeyPressed(cfg.Input.Debug.Respawn)
	pressed[components.HostCycleLevel] = ebiten.IsKeyPressed(cfg.Input.Debug.CycleLevel)
	return pressed
}

// getAnalogStickState reads the horizontal axis of the left stick from all
// gamepads, applying the configured deadzone.
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			left = true
		}
		if horizontal > deadzone {
			right = true
		}
	}

	return
}
