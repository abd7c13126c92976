package core

import (
	"log"

	"github.com/automoto/platformer-controller/shared/controller"
	"github.com/automoto/platformer-controller/shared/leveldata"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Body size of the simulated character.
const (
	playerWidth  = 25.0
	playerHeight = 50.0
)

// Snapshot is the observable state of the simulated body after a tick.
type Snapshot struct {
	Tick   int
	Time   float64
	X, Y   float64
	VX, VY float64

	Above, Below, Left, Right bool

	Jumps  int
	Coyote float64
}

// Simulation drives one controlled body through a level without a window.
type Simulation struct {
	world  donburi.World
	level  *ServerLevel
	body   *donburi.Entry
	script *Script

	tick int
	dt   float64
}

// NewSimulation builds the world for data and spawns the body at the
// level's spawn point. verbose logs every contact change.
func NewSimulation(data *leveldata.Level, tuning controller.TuningData, script *Script, tickRate int, verbose bool) *Simulation {
	w := donburi.NewWorld()
	level := NewServerLevel(w, data)

	sp := level.Spawn()
	obj := resolv.NewObject(sp.X-playerWidth/2, sp.Y, playerWidth, playerHeight, tagPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, playerWidth, playerHeight))
	level.Space.Add(obj)

	s := &Simulation{
		world:  w,
		level:  level,
		body:   controller.Spawn(w, obj, tuning),
		script: script,
		dt:     1 / float64(tickRate),
	}

	if verbose {
		controller.CollisionEvents.Subscribe(w, func(w donburi.World, ev controller.CollisionEvent) {
			log.Printf("tick %d: %s contact %v", s.tick, ev.Side, ev.Touching)
		})
	}
	return s
}

// Step feeds the script's input for the current time and advances one tick.
func (s *Simulation) Step() {
	held := s.script.Held(float64(s.tick) * s.dt)
	controller.Input.Get(s.body).Push(held)
	controller.Step(s.world, s.dt)
	s.tick++

	if controller.Body.Get(s.body).Y < -float64(s.level.MapHeight) {
		log.Printf("tick %d: body fell out of the level, respawning", s.tick)
		s.Respawn()
	}
}

// Run advances n ticks and returns the final snapshot.
func (s *Simulation) Run(n int) Snapshot {
	for i := 0; i < n; i++ {
		s.Step()
	}
	return s.Snapshot()
}

// Respawn puts the body back on the spawn point at rest.
func (s *Simulation) Respawn() {
	sp := s.level.Spawn()
	controller.SetPosition(s.body, sp.X-playerWidth/2, sp.Y)
}

// SetTuning swaps the body's tuning before the next tick.
func (s *Simulation) SetTuning(t controller.TuningData) {
	controller.SetTuning(s.body, t)
}

// Snapshot reports the body's state.
func (s *Simulation) Snapshot() Snapshot {
	obj := controller.Body.Get(s.body)
	vel := controller.Velocity.Get(s.body)
	info := controller.CollisionInfo.Get(s.body)
	return Snapshot{
		Tick:   s.tick,
		Time:   float64(s.tick) * s.dt,
		X:      obj.X,
		Y:      obj.Y,
		VX:     vel.Resolved.X,
		VY:     vel.Resolved.Y,
		Above:  info.Above,
		Below:  info.Below,
		Left:   info.Left,
		Right:  info.Right,
		Jumps:  controller.JumpCount.Get(s.body).Count,
		Coyote: controller.Coyote.Get(s.body).Elapsed,
	}
}
