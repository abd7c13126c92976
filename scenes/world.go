package scenes

import (
	"log"
	"sync"

	"github.com/automoto/platformer-controller/assets"
	"github.com/automoto/platformer-controller/assets/shaders"
	"github.com/automoto/platformer-controller/components"
	cfg "github.com/automoto/platformer-controller/config"
	"github.com/automoto/platformer-controller/shared/controller"
	"github.com/automoto/platformer-controller/systems"
	"github.com/automoto/platformer-controller/systems/factory"
	"github.com/automoto/platformer-controller/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// TuningSetup is the tuning a scene starts with.
type TuningSetup struct {
	Tuning   controller.TuningData
	Defaults controller.TuningData // Restored by the inspector's Reset
	Source   string
}

type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelName    string
	setup        TuningSetup
	inspector    *ui.TuningUI
	once         sync.Once
}

// NewPlatformerScene creates a scene for the named level.
func NewPlatformerScene(sc SceneChanger, levelName string, setup TuningSetup) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, levelName: levelName, setup: setup}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	settings := systems.GetSettings(ps.ecs)
	if current, ok := systems.CurrentTuning(ps.ecs); ok && current != ps.inspector.Tuning() {
		// Picked up a hot reload
		ps.inspector.SetTuning(current)
	}
	if settings != nil && settings.InspectorOpen {
		ps.inspector.Update()
	}

	if systems.LevelCycleRequested(ps.ecs) {
		ps.cycleLevel()
	}
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Colors.Background)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)

	if settings := systems.GetSettings(ps.ecs); settings != nil && settings.InspectorOpen {
		ps.inspector.Draw(screen)
	}
}

// cycleLevel restarts on the next embedded level, keeping the current
// tuning.
func (ps *PlatformerScene) cycleLevel() {
	names := assets.LevelNames()
	next := names[0]
	for i, n := range names {
		if n == ps.levelName {
			next = names[(i+1)%len(names)]
			break
		}
	}

	setup := ps.setup
	if current, ok := systems.CurrentTuning(ps.ecs); ok {
		setup.Tuning = current
	}
	log.Printf("Switching to level %s", next)
	ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, next, setup))
}

func (ps *PlatformerScene) configure() {
	// Bodies fall back to flat rectangles without the shader
	if err := shaders.LoadShaders(); err != nil {
		log.Printf("Warning: Could not load shaders: %v", err)
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	controller.Install(ecs.World)
	controller.CollisionEvents.Subscribe(ecs.World, systems.LogCollision)
	controller.CollisionEvents.Subscribe(ecs.World, systems.QueueContact)

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateTuning)
	ecs.AddSystem(systems.UpdateController)
	ecs.AddSystem(systems.UpdateRespawn)
	ecs.AddSystem(systems.UpdateHitMarkers)
	ecs.AddSystem(systems.UpdateCamera)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawBodies)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawHitMarkers)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)

	ps.ecs = ecs

	// Create the level entity and load level data FIRST.
	level := factory.CreateLevel(ps.ecs, ps.levelName)
	levelData := components.Level.Get(level)
	ps.levelName = levelData.LevelNames[levelData.LevelIndex]

	// Now create the space for collision detection using the level's dimensions.
	factory.CreateSpace(ps.ecs,
		levelData.CurrentLevel.MapWidth,
		levelData.CurrentLevel.MapHeight,
		cfg.Level.CellSize, cfg.Level.CellSize,
	)

	for _, rect := range levelData.CurrentLevel.Colliders {
		factory.CreateWall(ps.ecs, rect)
	}

	spawn := levelData.CurrentLevel.Spawn()
	factory.CreatePlayer(ps.ecs, spawn.X, spawn.Y, ps.setup.Tuning)

	// Snap camera to the spawn to prevent panning from (0,0)
	factory.CreateCamera(ps.ecs, spawn.X, spawn.Y+cfg.Player.CollisionHeight/2)
	factory.CreateSettings(ps.ecs, ps.setup.Source)

	ps.inspector = ui.NewTuningUI(ps.setup.Tuning, ps.setup.Defaults)
	ps.inspector.OnChange = func(t controller.TuningData) {
		systems.ApplyTuning(ps.ecs, t)
		if settings := systems.GetSettings(ps.ecs); settings != nil {
			settings.TuningSource = "inspector"
		}
	}
	ps.inspector.OnSave = systems.SaveTuning
	ps.inspector.OnExport = func(t controller.TuningData) error {
		if err := ui.ExportTuning(t); err != nil {
			log.Printf("Warning: Could not export tuning: %v", err)
			return err
		}
		return nil
	}

	log.Printf("Loaded level %s (%d colliders)", ps.levelName, len(levelData.CurrentLevel.Colliders))
}
