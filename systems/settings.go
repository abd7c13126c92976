package systems

import (
	"github.com/automoto/platformer-controller/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings applies the host toggle keys.
func UpdateSettings(ecs *ecs.ECS) {
	settingsEntry, ok := components.Settings.First(ecs.World)
	if !ok {
		return
	}
	settings := components.Settings.Get(settingsEntry)
	host := components.HostInput.Get(settingsEntry)

	if host.JustPressed(components.HostToggleOverlay) {
		settings.Debug = !settings.Debug
	}
	if host.JustPressed(components.HostToggleInspector) {
		settings.InspectorOpen = !settings.InspectorOpen
	}
}

// GetSettings returns the scene settings, or nil before they exist.
func GetSettings(ecs *ecs.ECS) *components.SettingsData {
	settingsEntry, ok := components.Settings.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Settings.Get(settingsEntry)
}

// LevelCycleRequested reports whether the level cycle key went down this
// frame.
func LevelCycleRequested(ecs *ecs.ECS) bool {
	settingsEntry, ok := components.Settings.First(ecs.World)
	if !ok {
		return false
	}
	return components.HostInput.Get(settingsEntry).JustPressed(components.HostCycleLevel)
}
