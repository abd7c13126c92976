package factory

import (
	"github.com/automoto/platformer-controller/archetypes"
	"github.com/automoto/platformer-controller/components"
	cfg "github.com/automoto/platformer-controller/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateHitMarker leaves a marker at a ray hit that fades out over
// cfg.Debug.HitMarkerSeconds.
func CreateHitMarker(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	marker := archetypes.HitMarker.Spawn(ecs)
	components.HitMarker.SetValue(marker, components.HitMarkerData{
		X:     x,
		Y:     y,
		Alpha: 1,
		Fade:  gween.New(1, 0, cfg.Debug.HitMarkerSeconds, ease.OutQuad),
	})
	return marker
}
