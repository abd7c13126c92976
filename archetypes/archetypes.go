package archetypes

import (
	"github.com/automoto/platformer-controller/components"
	cfg "github.com/automoto/platformer-controller/config"
	"github.com/automoto/platformer-controller/shared/controller"
	"github.com/automoto/platformer-controller/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(append([]donburi.IComponentType{
		tags.Player,
		components.Player,
		controller.RayDebug,
	}, controller.Components...)...)
	Wall = newArchetype(
		tags.Wall,
		controller.Collider,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Settings = newArchetype(
		components.Settings,
		components.HostInput,
	)
	HitMarker = newArchetype(
		components.HitMarker,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
