package systems

import (
	"log"

	"github.com/automoto/platformer-controller/components"
	cfg "github.com/automoto/platformer-controller/config"
	"github.com/automoto/platformer-controller/shared/controller"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateController advances every controlled body by one fixed tick.
func UpdateController(ecs *ecs.ECS) {
	controller.Step(ecs.World, cfg.TickDuration())
}

// UpdateRespawn puts players back on their spawn when they fall out of the
// level or the respawn key is pressed.
func UpdateRespawn(ecs *ecs.ECS) {
	respawnPressed := false
	if settingsEntry, ok := components.Settings.First(ecs.World); ok {
		respawnPressed = components.HostInput.Get(settingsEntry).JustPressed(components.HostRespawn)
	}

	components.Player.Each(ecs.World, func(playerEntry *donburi.Entry) {
		player := components.Player.Get(playerEntry)
		obj := controller.Body.Get(playerEntry).Object
		if !respawnPressed && obj.Y > -cfg.Player.FallLimit {
			return
		}
		controller.SetPosition(playerEntry, player.SpawnX, player.SpawnY)
		player.Respawns++
	})
}

// LogCollision logs collision transitions when cfg.Debug.LogCollisions is
// set. Subscribe it to controller.CollisionEvents.
func LogCollision(w donburi.World, ev controller.CollisionEvent) {
	if !cfg.Debug.LogCollisions {
		return
	}
	state := "left"
	if ev.Touching {
		state = "touching"
	}
	log.Printf("collision: entity %d %s %s", ev.Entity.Id(), state, ev.Side)
}
