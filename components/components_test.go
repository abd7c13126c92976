package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi/features/math"
)

func TestWorldToScreenFlipsY(t *testing.T) {
	camera := &CameraData{Position: math.Vec2{X: 100, Y: 50}}

	x, y := camera.WorldToScreen(100, 50, 200, 100)
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 50.0, y)

	// Higher world points land higher on screen
	_, above := camera.WorldToScreen(100, 80, 200, 100)
	assert.Equal(t, 20.0, above)

	left, _ := camera.WorldToScreen(0, 50, 200, 100)
	assert.Equal(t, 0.0, left)
}

func TestHostInputJustPressed(t *testing.T) {
	var in HostInputData

	in.Current[HostRespawn] = true
	assert.True(t, in.JustPressed(HostRespawn))
	assert.False(t, in.JustPressed(HostToggleOverlay))

	in.Previous = in.Current
	assert.False(t, in.JustPressed(HostRespawn), "held keys fire once")
}
