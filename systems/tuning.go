package systems

import (
	"log"

	"github.com/automoto/platformer-controller/components"
	"github.com/automoto/platformer-controller/shared/controller"
	"github.com/automoto/platformer-controller/shared/tuningfile"
	"github.com/automoto/platformer-controller/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TuningReloader is the part of a tuningfile.Watcher UpdateTuning uses.
type TuningReloader interface {
	Pending() (controller.TuningData, bool)
	Err() error
	Path() string
}

var _ TuningReloader = (*tuningfile.Watcher)(nil)

var tuningWatcher TuningReloader

// SetTuningWatcher makes UpdateTuning pick up reloads from w. Pass nil to
// stop.
func SetTuningWatcher(w TuningReloader) {
	tuningWatcher = w
}

// UpdateTuning applies a hot-reloaded tuning file to every controller and
// surfaces a failed reload in the HUD until the file is fixed.
func UpdateTuning(ecs *ecs.ECS) {
	if tuningWatcher == nil {
		return
	}
	settings := GetSettings(ecs)
	if settings != nil {
		settings.TuningError = ""
		if err := tuningWatcher.Err(); err != nil {
			settings.TuningError = err.Error()
		}
	}

	t, ok := tuningWatcher.Pending()
	if !ok {
		return
	}
	ApplyTuning(ecs, t)
	if settings != nil {
		settings.TuningSource = tuningWatcher.Path()
	}
	log.Printf("Reloaded tuning from %s", tuningWatcher.Path())
}

// ApplyTuning rewrites the tuning of every controlled player.
func ApplyTuning(ecs *ecs.ECS, t controller.TuningData) {
	if err := t.Validate(); err != nil {
		log.Printf("Warning: Ignoring tuning: %v", err)
		return
	}
	tags.Player.Each(ecs.World, func(entry *donburi.Entry) {
		controller.SetTuning(entry, t)
	})
}

// CurrentTuning returns the tuning of the first player.
func CurrentTuning(ecs *ecs.ECS) (controller.TuningData, bool) {
	entry, ok := components.Player.First(ecs.World)
	if !ok {
		return controller.TuningData{}, false
	}
	return *controller.Tuning.Get(entry), true
}
