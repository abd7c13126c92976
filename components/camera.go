package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the camera center in world space (y grows upward).
type CameraData struct {
	Position   math.Vec2
	LookAheadX float64 // Current smoothed X offset for look-ahead
	Direction  float64 // Last horizontal direction the target moved in
}

var Camera = donburi.NewComponentType[CameraData]()

// WorldToScreen converts a world point to screen pixels for a screen of
// width x height.
func (c *CameraData) WorldToScreen(x, y float64, width, height int) (float64, float64) {
	sx := x - c.Position.X + float64(width)/2
	sy := float64(height)/2 - (y - c.Position.Y)
	return sx, sy
}
