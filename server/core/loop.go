package core

import (
	"log"
	"time"

	"github.com/automoto/platformer-controller/shared/tuningfile"
)

type GameLoop struct {
	sim      *Simulation
	watcher  *tuningfile.Watcher
	tickRate int
	running  bool
	stopChan chan struct{}
}

func NewGameLoop(sim *Simulation, tickRate int) *GameLoop {
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		stopChan: make(chan struct{}),
	}
}

// WatchTuning applies reloads from w at the start of each tick.
func (g *GameLoop) WatchTuning(w *tuningfile.Watcher) {
	g.watcher = w
}

func (g *GameLoop) Run() {
	g.running = true
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("Game loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			g.running = false
			log.Println("Game loop stopped")
			return
		case <-ticker.C:
			g.tick()
		}
	}
}

func (g *GameLoop) Stop() {
	close(g.stopChan)
}

func (g *GameLoop) tick() {
	if g.watcher != nil {
		if t, ok := g.watcher.Pending(); ok {
			g.sim.SetTuning(t)
		}
	}
	g.sim.Step()
}
