package factory

import (
	"github.com/automoto/platformer-controller/archetypes"
	"github.com/automoto/platformer-controller/components"
	"github.com/automoto/platformer-controller/shared/controller"
	"github.com/automoto/platformer-controller/shared/leveldata"
	"github.com/automoto/platformer-controller/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWall adds a static collider for one level rectangle.
func CreateWall(ecs *ecs.ECS, rect leveldata.Rect) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)

	// Create collision object
	obj := resolv.NewObject(rect.X, rect.Y, rect.W, rect.H, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, rect.W, rect.H))
	obj.Data = wall // Link for O(1) lookup

	controller.Collider.SetValue(wall, controller.ColliderData{Object: obj})

	// Add to space if it exists
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return wall
}
