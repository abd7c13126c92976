package controller

import "github.com/yohamta/donburi"

// resetJumps gives a body its jump back when it lands.
func resetJumps(w donburi.World, ev CollisionEvent) {
	if ev.Side != SideBelow || !ev.Touching || !w.Valid(ev.Entity) {
		return
	}
	e := w.Entry(ev.Entity)
	if e.HasComponent(JumpCount) {
		JumpCount.Get(e).Count = 0
	}
}

// trackCoyote pauses the stopwatch on landing and starts it when a body
// leaves the ground without jumping.
func trackCoyote(w donburi.World, ev CollisionEvent) {
	if ev.Side != SideBelow || !w.Valid(ev.Entity) {
		return
	}
	e := w.Entry(ev.Entity)
	if !e.HasComponent(Coyote) {
		return
	}
	c := Coyote.Get(e)
	if ev.Touching {
		c.Pause()
		c.Reset()
		return
	}
	jumps := 0
	if e.HasComponent(JumpCount) {
		jumps = JumpCount.Get(e).Count
	}
	if jumps == 0 {
		c.Unpause()
	}
}

// DrainCollisionEvents delivers this tick's collision events to the jump
// and coyote bookkeeping and empties the queue.
func DrainCollisionEvents(w donburi.World) {
	CollisionEvents.ProcessEvents(w)
}

// UpdateCoyote advances every unpaused coyote stopwatch.
func UpdateCoyote(w donburi.World, dt float64) {
	Coyote.Each(w, func(e *donburi.Entry) {
		Coyote.Get(e).Tick(dt)
	})
}
