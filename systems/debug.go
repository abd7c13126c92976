package systems

import (
	"image/color"

	"github.com/automoto/platformer-controller/components"
	cfg "github.com/automoto/platformer-controller/config"
	"github.com/automoto/platformer-controller/shared/controller"
	"github.com/automoto/platformer-controller/systems/factory"
	"github.com/automoto/platformer-controller/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Contacts that began during the last controller step.
var contactQueue []controller.CollisionEvent

// QueueContact records contact starts for UpdateHitMarkers. Subscribe it to
// controller.CollisionEvents.
func QueueContact(w donburi.World, ev controller.CollisionEvent) {
	if ev.Touching {
		contactQueue = append(contactQueue, ev)
	}
}

// UpdateHitMarkers drops a marker on every ray hit of a pass that started a
// contact and fades existing markers out.
// Must run AFTER UpdateController.
func UpdateHitMarkers(ecs *ecs.ECS) {
	settings := GetSettings(ecs)
	if settings != nil && settings.Debug {
		for _, ev := range contactQueue {
			if !ecs.World.Valid(ev.Entity) {
				continue
			}
			entry := ecs.World.Entry(ev.Entity)
			if !entry.HasComponent(controller.RayDebug) {
				continue
			}
			rays := controller.RayDebug.Get(entry).Vertical
			if ev.Side == controller.SideLeft || ev.Side == controller.SideRight {
				rays = controller.RayDebug.Get(entry).Horizontal
			}
			for _, ray := range rays {
				if ray.Hit {
					factory.CreateHitMarker(ecs, ray.HitPoint.X, ray.HitPoint.Y)
				}
			}
		}
	}
	contactQueue = contactQueue[:0]

	var finished []donburi.Entity
	components.HitMarker.Each(ecs.World, func(e *donburi.Entry) {
		marker := components.HitMarker.Get(e)
		alpha, done := marker.Fade.Update(float32(cfg.TickDuration()))
		marker.Alpha = alpha
		if done {
			finished = append(finished, e.Entity())
		}
	})
	for _, e := range finished {
		ecs.World.Remove(e)
	}
}

// DrawDebug renders the resolv space outlines and the rays of the last
// controller step.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetSettings(ecs)
	if settings == nil || !settings.Debug {
		return
	}

	// Get camera for world-space rendering.
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Draw all collision objects in the space
	spaceEntry, ok := components.Space.First(ecs.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			x, y, visible := viewRect(camera, obj, width, height)
			if !visible {
				continue
			}

			// Determine color based on tags
			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvSolid) {
				c = color.RGBA{140, 140, 140, 255} // Grey
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			}

			// Draw outline
			w, h := float32(obj.W), float32(obj.H)
			vector.FillRect(screen, x, y, w, 1, c, false)     // Top
			vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
			vector.FillRect(screen, x, y, 1, h, c, false)     // Left
			vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
		}
	}

	controller.RayDebug.Each(ecs.World, func(e *donburi.Entry) {
		rays := controller.RayDebug.Get(e)
		drawRays(screen, camera, rays.Horizontal, width, height)
		drawRays(screen, camera, rays.Vertical, width, height)
	})
}

func drawRays(screen *ebiten.Image, camera *components.CameraData, rays []controller.DebugRay, width, height int) {
	for _, ray := range rays {
		from := screenPoint(camera, ray.From, width, height)
		to := screenPoint(camera, ray.To, width, height)
		c := cfg.Colors.RayMiss
		if ray.Hit {
			c = cfg.Colors.RayHit
			to = screenPoint(camera, ray.HitPoint, width, height)
		}
		vector.StrokeLine(screen, from.X, from.Y, to.X, to.Y, 1, c, false)
	}
}

type point32 struct{ X, Y float32 }

func screenPoint(camera *components.CameraData, p dmath.Vec2, width, height int) point32 {
	x, y := camera.WorldToScreen(p.X, p.Y, width, height)
	return point32{X: float32(x), Y: float32(y)}
}

// DrawHitMarkers renders the fading ray hit markers.
func DrawHitMarkers(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	size := cfg.Debug.HitMarkerSize

	components.HitMarker.Each(ecs.World, func(e *donburi.Entry) {
		marker := components.HitMarker.Get(e)
		x, y := camera.WorldToScreen(marker.X, marker.Y, width, height)
		c := fade(cfg.Colors.HitMarker, clamp01(marker.Alpha))
		vector.FillRect(screen, float32(x)-size/2, float32(y)-size/2, size, size, c, false)
	})
}

// fade scales every channel of a premultiplied color by a.
func fade(c color.RGBA, a float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(c.R) * a),
		G: uint8(float32(c.G) * a),
		B: uint8(float32(c.B) * a),
		A: uint8(float32(c.A) * a),
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
