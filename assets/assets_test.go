package assets

import (
	"testing"

	"github.com/automoto/platformer-controller/shared/controller"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLevels(t *testing.T) {
	assert.Equal(t, []string{"advanced", "basic"}, LevelNames())

	for _, name := range LevelNames() {
		level, err := LoadLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, 1024, level.MapWidth)
		assert.Equal(t, 640, level.MapHeight)
		assert.NotEmpty(t, level.SpawnPoints)

		// The floor spans the map and its top sits at y=50 in world space.
		floor := level.Colliders[0]
		assert.Equal(t, "floor", floor.Name)
		assert.Equal(t, 0.0, floor.Y)
		assert.Equal(t, 50.0, floor.H)
		assert.Equal(t, 55.0, level.Spawn().Y)
	}
}

func TestEmbeddedTuningPresets(t *testing.T) {
	assert.Equal(t, []string{"advanced", "default"}, TuningPresets())

	def, err := LoadTuning("default")
	require.NoError(t, err)
	assert.Equal(t, controller.DefaultTuning(), def)

	adv, err := LoadTuning("advanced")
	require.NoError(t, err)
	assert.Equal(t, 0.1, adv.CoyoteTime)
	assert.Equal(t, 8, adv.HorizontalRayCount)

	_, err = LoadTuning("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "advanced, default")
}
