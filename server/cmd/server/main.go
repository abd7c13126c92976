package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/platformer-controller/assets"
	"github.com/automoto/platformer-controller/server/core"
	"github.com/automoto/platformer-controller/shared/controller"
	"github.com/automoto/platformer-controller/shared/tuningfile"
)

// scriptSettleSeconds lets the body land after the last scripted input.
const scriptSettleSeconds = 1.0

func main() {
	assetsDir := flag.String("assets", "", "Directory holding levels/*.tmx (empty = embedded levels)")
	levelName := flag.String("level", "basic", "Level to simulate")
	preset := flag.String("preset", "default", "Embedded tuning preset")
	tuningPath := flag.String("tuning", "", "Tuning YAML file (overrides -preset)")
	watch := flag.Bool("watch", false, "Hot reload the -tuning file")
	tickRate := flag.Int("tickrate", 60, "Simulation tick rate (ticks per second)")
	scriptPath := flag.String("script", "", "YAML input script")
	ticks := flag.Int("ticks", 0, "Run this many ticks as fast as possible and exit (0 = run in real time)")
	toEnd := flag.Bool("to-end", false, "With -script, run until one second after the last step and exit")
	verbose := flag.Bool("verbose", false, "Log every contact change")
	flag.Parse()

	if *tickRate <= 0 {
		log.Fatalf("Tick rate must be positive, got %d", *tickRate)
	}

	data, err := core.LoadLevelData(*assetsDir, *levelName)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	tuning, err := loadTuning(*preset, *tuningPath)
	if err != nil {
		log.Fatalf("Failed to load tuning: %v", err)
	}

	var script *core.Script
	if *scriptPath != "" {
		script, err = core.LoadScript(*scriptPath)
		if err != nil {
			log.Fatalf("Failed to load script: %v", err)
		}
	}

	if *toEnd {
		if script == nil {
			log.Fatalf("-to-end needs a -script")
		}
		if *ticks == 0 {
			*ticks = script.Ticks(*tickRate, scriptSettleSeconds)
		}
	}

	sim := core.NewSimulation(data, tuning, script, *tickRate, *verbose)

	if *ticks > 0 {
		snap := sim.Run(*ticks)
		fmt.Printf("tick=%d t=%.2fs pos=(%.2f, %.2f) vel=(%.3f, %.3f) below=%v above=%v left=%v right=%v jumps=%d\n",
			snap.Tick, snap.Time, snap.X, snap.Y, snap.VX, snap.VY,
			snap.Below, snap.Above, snap.Left, snap.Right, snap.Jumps)
		return
	}

	loop := core.NewGameLoop(sim, *tickRate)
	if *watch && *tuningPath != "" {
		w, err := tuningfile.Watch(*tuningPath)
		if err != nil {
			log.Fatalf("Failed to watch tuning: %v", err)
		}
		defer w.Close()
		loop.WatchTuning(w)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Shutting down simulation...")
		loop.Stop()
	}()

	log.Printf("Simulating level %q at %d ticks/second", *levelName, *tickRate)
	loop.Run()

	snap := sim.Snapshot()
	log.Printf("Stopped after %d ticks at (%.2f, %.2f)", snap.Tick, snap.X, snap.Y)
}

func loadTuning(preset, path string) (controller.TuningData, error) {
	if path != "" {
		return tuningfile.Load(path)
	}
	return assets.LoadTuning(preset)
}
