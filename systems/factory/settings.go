package factory

import (
	"github.com/automoto/platformer-controller/archetypes"
	"github.com/automoto/platformer-controller/components"
	cfg "github.com/automoto/platformer-controller/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSettings spawns the singleton holding host toggles and host keys.
func CreateSettings(ecs *ecs.ECS, tuningSource string) *donburi.Entry {
	settings := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(settings, components.SettingsData{
		Debug:         cfg.Debug.Enabled,
		InspectorOpen: cfg.Inspector.StartVisible,
		TuningSource:  tuningSource,
	})
	return settings
}
