package controller

import (
	"math"

	"github.com/automoto/platformer-controller/shared/gamemath"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// colliderRects gathers every static obstacle in the world. Controlled
// entities are skipped so a body never hits itself.
func colliderRects(w donburi.World) []gamemath.Rect {
	var rects []gamemath.Rect
	Collider.Each(w, func(e *donburi.Entry) {
		if e.HasComponent(Body) {
			return
		}
		obj := Collider.Get(e).Object
		if obj == nil {
			return
		}
		rects = append(rects, bodyRect(obj))
	})
	return rects
}

// UpdateHorizontalCollisions clamps v.x against the obstacles in the
// direction of travel and updates the Left/Right flags. Bodies that are not
// moving horizontally keep their previous flags.
func UpdateHorizontalCollisions(w donburi.World) {
	rects := colliderRects(w)
	Controlled.Each(w, func(e *donburi.Entry) {
		vel := Velocity.Get(e)
		dbg := rayDebug(e, true)
		if vel.X == 0 {
			return
		}

		rs := RaySampling.Get(e)
		t := Tuning.Get(e)
		dir := gamemath.Sign(vel.X)
		length := math.Abs(vel.X) + t.SkinWidth

		origin := rs.BottomLeft
		if dir > 0 {
			origin = rs.BottomRight
		}
		origin.Y += rs.HorizontalOffset

		hitLeft, hitRight := false, false
		for i := 0; i < t.HorizontalRayCount; i++ {
			from := dmath.Vec2{X: origin.X, Y: origin.Y + rs.HorizontalSpacing*float64(i)}
			ray := gamemath.NewRay(from, dmath.Vec2{X: dir}).WithLength(length)
			hit, ok := gamemath.CastNearest(ray, rects)
			dbg.record(ray, hit, ok)
			if !ok {
				continue
			}
			vel.X = (hit.Distance - t.SkinWidth) * dir
			length = hit.Distance
			if dir < 0 {
				hitLeft = true
			} else {
				hitRight = true
			}
		}

		info := CollisionInfo.Get(e)
		publishTransition(w, e, SideLeft, &info.Left, hitLeft)
		publishTransition(w, e, SideRight, &info.Right, hitRight)
	})
}

// UpdateVerticalCollisions clamps v.y and updates the Above/Below flags. It
// always runs: a body with v.y == 0 probes downward so a resting body stays
// grounded. The clamped velocity is recorded as the tick's resolved velocity.
func UpdateVerticalCollisions(w donburi.World) {
	rects := colliderRects(w)
	Controlled.Each(w, func(e *donburi.Entry) {
		vel := Velocity.Get(e)
		rs := RaySampling.Get(e)
		t := Tuning.Get(e)
		dbg := rayDebug(e, false)

		dir := -1.0
		origin := rs.BottomLeft
		if vel.Y > 0 {
			dir = 1
			origin = rs.TopLeft
		}
		origin.X += rs.VerticalOffset + vel.X
		length := math.Abs(vel.Y) + t.SkinWidth

		hitAbove, hitBelow := false, false
		for i := 0; i < t.VerticalRayCount; i++ {
			from := dmath.Vec2{X: origin.X + rs.VerticalSpacing*float64(i), Y: origin.Y}
			ray := gamemath.NewRay(from, dmath.Vec2{Y: dir}).WithLength(length)
			hit, ok := gamemath.CastNearest(ray, rects)
			dbg.record(ray, hit, ok)
			if !ok {
				continue
			}
			vel.Y = (hit.Distance - t.SkinWidth) * dir
			length = hit.Distance
			if dir > 0 {
				hitAbove = true
			} else {
				hitBelow = true
			}
		}

		info := CollisionInfo.Get(e)
		publishTransition(w, e, SideAbove, &info.Above, hitAbove)
		publishTransition(w, e, SideBelow, &info.Below, hitBelow)

		vel.Resolved = vel.Vec2
	})
}

// debugSink records rays for one pass. A nil sink drops everything.
type debugSink struct {
	rays *[]DebugRay
}

func rayDebug(e *donburi.Entry, horizontal bool) debugSink {
	if !e.HasComponent(RayDebug) {
		return debugSink{}
	}
	d := RayDebug.Get(e)
	if horizontal {
		d.Horizontal = d.Horizontal[:0]
		return debugSink{rays: &d.Horizontal}
	}
	d.Vertical = d.Vertical[:0]
	return debugSink{rays: &d.Vertical}
}

func (s debugSink) record(ray gamemath.Ray, hit gamemath.RayHit, ok bool) {
	if s.rays == nil {
		return
	}
	*s.rays = append(*s.rays, DebugRay{
		From:     ray.Origin,
		To:       ray.End(),
		Hit:      ok,
		HitPoint: hit.Position,
	})
}
