package systems

import (
	"errors"
	"testing"

	"github.com/automoto/platformer-controller/components"
	cfg "github.com/automoto/platformer-controller/config"
	"github.com/automoto/platformer-controller/shared/controller"
	"github.com/automoto/platformer-controller/shared/leveldata"
	"github.com/automoto/platformer-controller/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

func newTestECS(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	controller.Install(e.World)

	factory.CreateSpace(e, 640, 320, 16, 16)
	factory.CreateWall(e, leveldata.Rect{X: 0, Y: 0, W: 640, H: 16})
	factory.CreateSettings(e, "test")
	player := factory.CreatePlayer(e, 320, 16, controller.DefaultTuning())
	return e, player
}

func countHitMarkers(e *ecs.ECS) int {
	return donburi.NewQuery(filter.Contains(components.HitMarker)).Count(e.World)
}

func TestClampAxis(t *testing.T) {
	tests := []struct {
		name                  string
		target, screen, level float64
		want                  float64
	}{
		{"inside", 500, 200, 1000, 500},
		{"left edge", 20, 200, 1000, 100},
		{"right edge", 990, 200, 1000, 900},
		{"level smaller than screen", 30, 200, 150, 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampAxis(tt.target, tt.screen, tt.level))
		})
	}
}

func TestApplyTuningReachesEveryPlayer(t *testing.T) {
	e, player := newTestECS(t)
	second := factory.CreatePlayer(e, 100, 16, controller.DefaultTuning())

	tuning := controller.DefaultTuning()
	tuning.MoveSpeed = 123
	ApplyTuning(e, tuning)

	assert.Equal(t, 123.0, controller.Tuning.Get(player).MoveSpeed)
	assert.Equal(t, 123.0, controller.Tuning.Get(second).MoveSpeed)

	current, ok := CurrentTuning(e)
	require.True(t, ok)
	assert.Equal(t, 123.0, current.MoveSpeed)
}

func TestApplyTuningIgnoresInvalidValues(t *testing.T) {
	e, player := newTestECS(t)

	tuning := controller.DefaultTuning()
	tuning.TimeToJumpApex = 0
	ApplyTuning(e, tuning)

	assert.Equal(t, controller.DefaultTuning(), *controller.Tuning.Get(player))
}

func TestRespawnAfterFallingOut(t *testing.T) {
	e, player := newTestECS(t)
	spawn := components.Player.Get(player)

	controller.SetPosition(player, 40, -cfg.Player.FallLimit-1)
	UpdateRespawn(e)

	body := controller.Body.Get(player).Object
	assert.Equal(t, spawn.SpawnX, body.X)
	assert.Equal(t, spawn.SpawnY, body.Y)
	assert.Equal(t, 1, spawn.Respawns)
}

func TestRespawnKey(t *testing.T) {
	e, player := newTestECS(t)
	controller.SetPosition(player, 40, 100)

	settingsEntry, ok := components.Settings.First(e.World)
	require.True(t, ok)
	components.HostInput.Get(settingsEntry).Current[components.HostRespawn] = true

	UpdateRespawn(e)
	assert.Equal(t, components.Player.Get(player).SpawnX, controller.Body.Get(player).Object.X)
}

func TestSettingsToggles(t *testing.T) {
	e, _ := newTestECS(t)
	settingsEntry, _ := components.Settings.First(e.World)
	host := components.HostInput.Get(settingsEntry)
	settings := components.Settings.Get(settingsEntry)
	debugBefore := settings.Debug

	host.Current[components.HostToggleOverlay] = true
	host.Current[components.HostToggleInspector] = true
	UpdateSettings(e)
	assert.Equal(t, !debugBefore, settings.Debug)
	assert.True(t, settings.InspectorOpen)

	// Held keys do not toggle again
	host.Previous = host.Current
	UpdateSettings(e)
	assert.Equal(t, !debugBefore, settings.Debug)
}

func TestHitMarkersSpawnOnContactAndFade(t *testing.T) {
	e, player := newTestECS(t)
	GetSettings(e).Debug = true

	// Drop the body onto the floor until it lands
	controller.SetPosition(player, 300, 40)
	for i := 0; i < 120 && !controller.CollisionInfo.Get(player).Below; i++ {
		UpdateController(e)
	}
	require.True(t, controller.CollisionInfo.Get(player).Below)

	contactQueue = append(contactQueue, controller.CollisionEvent{
		Entity: player.Entity(), Side: controller.SideBelow, Touching: true,
	})
	UpdateHitMarkers(e)
	assert.Positive(t, countHitMarkers(e))
	assert.Empty(t, contactQueue)

	ticks := int(float64(cfg.Debug.HitMarkerSeconds)*float64(cfg.C.TPS)) + 2
	for i := 0; i < ticks; i++ {
		UpdateHitMarkers(e)
	}
	assert.Zero(t, countHitMarkers(e))
}

type stubReloader struct {
	pending *controller.TuningData
	err     error
}

func (s *stubReloader) Pending() (controller.TuningData, bool) {
	if s.pending == nil {
		return controller.TuningData{}, false
	}
	t := *s.pending
	s.pending = nil
	return t, true
}

func (s *stubReloader) Err() error   { return s.err }
func (s *stubReloader) Path() string { return "tuning.yaml" }

func TestUpdateTuningReportsReloadErrors(t *testing.T) {
	e, player := newTestECS(t)
	reloader := &stubReloader{err: errors.New("skin width must be positive")}
	SetTuningWatcher(reloader)
	t.Cleanup(func() { SetTuningWatcher(nil) })

	UpdateTuning(e)
	settings := GetSettings(e)
	assert.Equal(t, "skin width must be positive", settings.TuningError)
	assert.Equal(t, "test", settings.TuningSource)

	fixed := controller.DefaultTuning()
	fixed.MoveSpeed = 222
	reloader.err = nil
	reloader.pending = &fixed
	UpdateTuning(e)

	assert.Empty(t, settings.TuningError)
	assert.Equal(t, "tuning.yaml", settings.TuningSource)
	assert.Equal(t, 222.0, controller.Tuning.Get(player).MoveSpeed)
}
