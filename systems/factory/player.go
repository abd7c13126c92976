package factory

import (
	"github.com/automoto/platformer-controller/archetypes"
	"github.com/automoto/platformer-controller/components"
	cfg "github.com/automoto/platformer-controller/config"
	"github.com/automoto/platformer-controller/shared/controller"
	"github.com/automoto/platformer-controller/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns a controlled body whose bottom-center sits at (x, y).
func CreatePlayer(ecs *ecs.ECS, x, y float64, tuning controller.TuningData) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	w, h := cfg.Player.CollisionWidth, cfg.Player.CollisionHeight
	left := x - w/2
	obj := resolv.NewObject(left, y, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	controller.Init(player, obj, tuning)
	components.Player.SetValue(player, components.PlayerData{
		SpawnX: left,
		SpawnY: y,
	})

	return player
}
