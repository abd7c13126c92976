package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HitMarkerData is a fading marker left where a ray hit a collider.
type HitMarkerData struct {
	X, Y  float64
	Alpha float32
	Fade  *gween.Tween
}

var HitMarker = donburi.NewComponentType[HitMarkerData]()
