package controller

import "github.com/yohamta/donburi"

var installed = donburi.NewTag().SetName("ControllerInstalled")

// Install subscribes the jump and coyote bookkeeping to collision events.
// It is idempotent per world; Step calls it on every tick.
func Install(w donburi.World) {
	if _, ok := installed.First(w); ok {
		return
	}
	w.Create(installed)
	CollisionEvents.Subscribe(w, resetJumps)
	CollisionEvents.Subscribe(w, trackCoyote)
}

// Step advances every controlled entity by one tick of dt seconds. Each
// stage finishes for all entities before the next one starts.
func Step(w donburi.World, dt float64) {
	Install(w)
	UpdateRaySampling(w)
	UpdateHorizontalCollisions(w)
	UpdateVerticalCollisions(w)
	DrainCollisionEvents(w)
	UpdateCoyote(w, dt)
	UpdateLocomotion(w, dt)
	UpdateMovement(w)
}
