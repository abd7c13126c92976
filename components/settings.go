package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData stores the host toggles of the running scene
type SettingsData struct {
	Debug         bool // Ray overlay and hit markers
	InspectorOpen bool
	TuningSource  string // Where the active tuning came from, shown in the HUD
	TuningError   string // Last failed hot reload, cleared once the file loads again
}

var Settings = donburi.NewComponentType[SettingsData]()
