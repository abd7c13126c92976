package systems

import (
	"math"

	"github.com/automoto/platformer-controller/components"
	"github.com/automoto/platformer-controller/config"
	"github.com/automoto/platformer-controller/shared/controller"
	"github.com/automoto/platformer-controller/tags"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	body := controller.Body.Get(playerEntry).Object
	velocity := controller.Velocity.Get(playerEntry)

	// Get level dimensions for camera bounds
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	// Only update look-ahead when the body is moving - freeze offset when idle
	if math.Abs(velocity.Resolved.X) > config.Camera.LookAheadSpeedThreshold {
		camera.Direction = math.Copysign(1, velocity.Resolved.X)
		targetLookAhead := camera.Direction * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX := body.X + body.W/2 + camera.LookAheadX
	targetY := body.Y + body.H/2

	screenWidth := float64(config.C.Width)
	screenHeight := float64(config.C.Height)
	levelWidth := float64(levelData.CurrentLevel.MapWidth)
	levelHeight := float64(levelData.CurrentLevel.MapHeight)

	targetX = clampAxis(targetX, screenWidth, levelWidth)
	targetY = clampAxis(targetY, screenHeight, levelHeight)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampAxis keeps the view inside [0, level]. A level smaller than the
// screen stays centered.
func clampAxis(target, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	return math.Max(screen/2, math.Min(level-screen/2, target))
}
