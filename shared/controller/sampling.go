package controller

import (
	"github.com/automoto/platformer-controller/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateRaySampling recomputes ray origins and spacing for every dirty body.
func UpdateRaySampling(w donburi.World) {
	Controlled.Each(w, func(e *donburi.Entry) {
		rs := RaySampling.Get(e)
		if !rs.Dirty {
			return
		}
		computeSampling(rs, Body.Get(e).Object, Tuning.Get(e))
		rs.Dirty = false
	})
}

func computeSampling(rs *RaySamplingData, obj *resolv.Object, t *TuningData) {
	box := insetBounds(obj, t.SkinWidth)

	rs.TopLeft = dmath.Vec2{X: box.MinX, Y: box.MaxY}
	rs.TopRight = dmath.Vec2{X: box.MaxX, Y: box.MaxY}
	rs.BottomLeft = dmath.Vec2{X: box.MinX, Y: box.MinY}
	rs.BottomRight = dmath.Vec2{X: box.MaxX, Y: box.MinY}

	// Horizontal rays are stacked along the height, vertical rays along the width.
	rs.HorizontalOffset, rs.HorizontalSpacing = gamemath.RaySpacing(box.Height(), t.HorizontalRayCount)
	rs.VerticalOffset, rs.VerticalSpacing = gamemath.RaySpacing(box.Width(), t.VerticalRayCount)
}

func bodyRect(obj *resolv.Object) gamemath.Rect {
	return gamemath.NewRect(obj.X, obj.Y, obj.W, obj.H)
}

// insetBounds shrinks the body by skin on every side. A body thinner than
// twice the skin collapses to its centre line on that axis.
func insetBounds(obj *resolv.Object, skin float64) gamemath.Rect {
	box := bodyRect(obj).Inset(skin)
	if box.MinX > box.MaxX {
		cx := obj.X + obj.W/2
		box.MinX, box.MaxX = cx, cx
	}
	if box.MinY > box.MaxY {
		cy := obj.Y + obj.H/2
		box.MinY, box.MaxY = cy, cy
	}
	return box
}
