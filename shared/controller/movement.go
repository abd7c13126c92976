package controller

import "github.com/yohamta/donburi"

// UpdateMovement applies the tick's resolved velocity to every body.
func UpdateMovement(w donburi.World) {
	Controlled.Each(w, func(e *donburi.Entry) {
		vel := Velocity.Get(e)
		if vel.Resolved.X == 0 && vel.Resolved.Y == 0 {
			return
		}
		obj := Body.Get(e).Object
		obj.X += vel.Resolved.X
		obj.Y += vel.Resolved.Y
		if obj.Space != nil {
			obj.Update()
		}
		RaySampling.Get(e).Dirty = true
	})
}
