package controller

import (
	"math"

	"github.com/automoto/platformer-controller/shared/gamemath"
	"github.com/yohamta/donburi"
)

// UpdateLocomotion turns input and contact state into next tick's requested
// velocity.
func UpdateLocomotion(w donburi.World, dt float64) {
	Controlled.Each(w, func(e *donburi.Entry) {
		t := Tuning.Get(e)
		vel := Velocity.Get(e)
		info := CollisionInfo.Get(e)
		jumps := JumpCount.Get(e)
		coyote := Coyote.Get(e)
		smooth := Smoothing.Get(e)

		var in InputData
		if e.HasComponent(Input) {
			in = *Input.Get(e)
		}

		if info.Above || info.Below {
			vel.Y = 0
		}

		axis := in.AxisX()

		canJump := info.Below || coyote.Elapsed <= t.CoyoteTime
		if in.Action(ActionJump).JustPressed && canJump && jumps.Count == 0 {
			jumps.Count++
			vel.Y = t.JumpVelocity()
		}

		accel := t.AccelerationTimeAirborne
		if info.Below {
			accel = t.AccelerationTimeGrounded
		}
		target := axis * t.MoveSpeed * dt
		vel.X = gamemath.SmoothDamp(vel.X, target, &smooth.VelocityX, accel, math.Inf(1), dt)

		multiplier := 1.0
		switch {
		case vel.Y > 0:
			multiplier = t.GravityUpMultiplier
		case vel.Y < 0:
			multiplier = t.GravityDownMultiplier
		}
		vel.Y += t.Gravity() * multiplier * dt
	})
}
