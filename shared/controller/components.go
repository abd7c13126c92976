// Package controller implements a raycast-driven kinematic platformer
// controller on top of donburi. It has no dependency on ebitengine so the
// same systems run in the client and in the headless server.
package controller

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Controlled marks every entity driven by Step.
var Controlled = donburi.NewTag().SetName("Controlled")

// BodyData is the controlled entity's rectangle. X/Y is the bottom-left
// corner in y-up world units.
type BodyData struct {
	*resolv.Object
}

var Body = donburi.NewComponentType[BodyData]()

// ColliderData is a static rectangle controlled bodies collide with.
type ColliderData struct {
	*resolv.Object
}

var Collider = donburi.NewComponentType[ColliderData]()

// VelocityData holds the requested velocity in per-tick units. The sweeps
// clamp it, locomotion rewrites it for the next tick, and Resolved keeps the
// clamped value the integrator applies this tick.
type VelocityData struct {
	dmath.Vec2
	Resolved dmath.Vec2
}

var Velocity = donburi.NewComponentType[VelocityData]()

// CollisionInfoData is recomputed by every sweep, never accumulated.
type CollisionInfoData struct {
	Above bool
	Below bool
	Left  bool
	Right bool
}

var CollisionInfo = donburi.NewComponentType[CollisionInfoData]()

// RaySamplingData caches ray origins and spacing for the skin-inset box.
type RaySamplingData struct {
	TopLeft     dmath.Vec2
	TopRight    dmath.Vec2
	BottomLeft  dmath.Vec2
	BottomRight dmath.Vec2

	HorizontalSpacing float64
	VerticalSpacing   float64
	// Offsets centre a single ray when the ray count is below two.
	HorizontalOffset float64
	VerticalOffset   float64

	Dirty bool
}

var RaySampling = donburi.NewComponentType[RaySamplingData]()

type JumpCountData struct {
	Count int
}

var JumpCount = donburi.NewComponentType[JumpCountData]()

// CoyoteData is a pausable stopwatch measuring time since leaving the ground.
type CoyoteData struct {
	Elapsed float64
	Paused  bool
}

func (c *CoyoteData) Tick(dt float64) {
	if !c.Paused {
		c.Elapsed += dt
	}
}

func (c *CoyoteData) Pause()   { c.Paused = true }
func (c *CoyoteData) Unpause() { c.Paused = false }
func (c *CoyoteData) Reset()   { c.Elapsed = 0 }

var Coyote = donburi.NewComponentType[CoyoteData]()

// SmoothingData is the spring state of the horizontal velocity smoothing.
type SmoothingData struct {
	VelocityX float64
}

var Smoothing = donburi.NewComponentType[SmoothingData]()

// DebugRay is one ray fired during a sweep.
type DebugRay struct {
	From, To dmath.Vec2
	Hit      bool
	HitPoint dmath.Vec2
}

// RayDebugData is optional. When present the sweeps record their rays.
type RayDebugData struct {
	Horizontal []DebugRay
	Vertical   []DebugRay
}

var RayDebug = donburi.NewComponentType[RayDebugData]()
