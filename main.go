package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/platformer-controller/assets"
	"github.com/automoto/platformer-controller/config"
	"github.com/automoto/platformer-controller/fonts"
	"github.com/automoto/platformer-controller/scenes"
	"github.com/automoto/platformer-controller/shared/tuningfile"
	"github.com/automoto/platformer-controller/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(setup scenes.TuningSetup) *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlatformerScene(g, config.Level.Name, setup)

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

// loadTuning picks the starting tuning: an explicit file first, then the
// tuning saved from the inspector, then the embedded preset.
func loadTuning() scenes.TuningSetup {
	preset, err := assets.LoadTuning(config.Level.Preset)
	if err != nil {
		log.Fatalf("Failed to load tuning preset %q: %v", config.Level.Preset, err)
	}
	setup := scenes.TuningSetup{
		Tuning:   preset,
		Defaults: preset,
		Source:   "preset " + config.Level.Preset,
	}

	if config.Level.TuningPath != "" {
		t, err := tuningfile.Load(config.Level.TuningPath)
		if err != nil {
			log.Fatalf("Failed to load tuning file: %v", err)
		}
		setup.Tuning = t
		setup.Source = config.Level.TuningPath
		return setup
	}

	if saved, err := systems.LoadSavedTuning(); err == nil && saved != nil {
		setup.Tuning = *saved
		setup.Source = "saved"
	}
	return setup
}

func main() {
	flag.StringVar(&config.Level.Name, "level", config.Level.Name, "level to start on (basic, advanced)")
	flag.StringVar(&config.Level.Preset, "preset", config.Level.Preset, "embedded tuning preset (default, advanced)")
	flag.StringVar(&config.Level.TuningPath, "tuning", "", "YAML tuning file, reloaded when it changes")
	flag.BoolVar(&config.Debug.Enabled, "debug", config.Debug.Enabled, "start with the ray overlay on")
	flag.BoolVar(&config.Debug.LogCollisions, "log-collisions", config.Debug.LogCollisions, "log collision transitions")
	flag.Parse()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved tuning
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	setup := loadTuning()

	if config.Level.TuningPath != "" {
		watcher, err := tuningfile.Watch(config.Level.TuningPath)
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", config.Level.TuningPath, err)
		} else {
			defer watcher.Close()
			systems.SetTuningWatcher(watcher)
		}
	}

	if err := ebiten.RunGame(NewGame(setup)); err != nil {
		log.Fatal(err)
	}
}
