package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Ray is a half-line starting at Origin. Length, when set, is the farthest
// distance a hit may be reported at.
type Ray struct {
	Origin    dmath.Vec2
	Direction dmath.Vec2
	Length    float64
	HasLength bool
}

// NewRay panics on a zero direction: no intersection is defined for it.
func NewRay(origin, direction dmath.Vec2) Ray {
	if direction.X == 0 && direction.Y == 0 {
		panic("gamemath: ray direction must be non-zero")
	}
	return Ray{Origin: origin, Direction: direction}
}

// WithLength returns a copy of the ray limited to length.
func (r Ray) WithLength(length float64) Ray {
	r.Length = length
	r.HasLength = true
	return r
}

// End returns the far point of a length-limited ray. Unlimited rays return
// the point one direction unit away from the origin.
func (r Ray) End() dmath.Vec2 {
	l := 1.0
	if r.HasLength {
		l = r.Length
	}
	return dmath.Vec2{
		X: r.Origin.X + r.Direction.X*l,
		Y: r.Origin.Y + r.Direction.Y*l,
	}
}

// RayHit is the nearest intersection of a ray with some geometry.
type RayHit struct {
	Position dmath.Vec2
	Distance float64
}

// Edge is a line segment between two points.
type Edge struct {
	A, B dmath.Vec2
}

// Cast intersects the ray with the segment. The segment end points and the
// ray origin itself never count as hits.
func (e Edge) Cast(ray Ray) (RayHit, bool) {
	x1, y1 := e.A.X, e.A.Y
	x2, y2 := e.B.X, e.B.Y
	x3, y3 := ray.Origin.X, ray.Origin.Y
	x4, y4 := ray.Origin.X+ray.Direction.X, ray.Origin.Y+ray.Direction.Y

	den := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if den == 0 {
		return RayHit{}, false
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / den
	u := -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / den
	if t <= 0 || t >= 1 || u <= 0 {
		return RayHit{}, false
	}

	point := dmath.Vec2{X: x1 + t*(x2-x1), Y: y1 + t*(y2-y1)}
	distance := math.Hypot(point.X-x3, point.Y-y3)
	if ray.HasLength && distance > ray.Length {
		return RayHit{}, false
	}
	return RayHit{Position: point, Distance: distance}, true
}

// Rect is an axis-aligned rectangle in world space (y grows upward).
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// NewRect builds a rectangle from its bottom-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{MinX: x, MinY: y, MaxX: x + w, MaxY: y + h}
}

func (r Rect) Width() float64  { return r.MaxX - r.MinX }
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Inset shrinks the rectangle by amount on every side.
func (r Rect) Inset(amount float64) Rect {
	return Rect{
		MinX: r.MinX + amount,
		MinY: r.MinY + amount,
		MaxX: r.MaxX - amount,
		MaxY: r.MaxY - amount,
	}
}

// Translate moves the rectangle by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{MinX: r.MinX + dx, MinY: r.MinY + dy, MaxX: r.MaxX + dx, MaxY: r.MaxY + dy}
}

// Edges returns the boundary as top, right, bottom, left.
func (r Rect) Edges() [4]Edge {
	topLeft := dmath.Vec2{X: r.MinX, Y: r.MaxY}
	topRight := dmath.Vec2{X: r.MaxX, Y: r.MaxY}
	bottomLeft := dmath.Vec2{X: r.MinX, Y: r.MinY}
	bottomRight := dmath.Vec2{X: r.MaxX, Y: r.MinY}

	return [4]Edge{
		{A: topLeft, B: topRight},
		{A: topRight, B: bottomRight},
		{A: bottomRight, B: bottomLeft},
		{A: bottomLeft, B: topLeft},
	}
}

// Cast returns the nearest hit over the rectangle's four edges.
func (r Rect) Cast(ray Ray) (RayHit, bool) {
	var best RayHit
	found := false
	for _, edge := range r.Edges() {
		hit, ok := edge.Cast(ray)
		if !ok {
			continue
		}
		if !found || hit.Distance < best.Distance {
			best = hit
			found = true
		}
	}
	return best, found
}

// CastNearest returns the nearest hit across all rectangles.
func CastNearest(ray Ray, rects []Rect) (RayHit, bool) {
	var best RayHit
	found := false
	for _, rect := range rects {
		hit, ok := rect.Cast(ray)
		if !ok {
			continue
		}
		if !found || hit.Distance < best.Distance {
			best = hit
			found = true
		}
	}
	return best, found
}
