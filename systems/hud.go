package systems

import (
	"fmt"

	cfg "github.com/automoto/platformer-controller/config"
	"github.com/automoto/platformer-controller/fonts"
	"github.com/automoto/platformer-controller/shared/controller"
	"github.com/automoto/platformer-controller/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 10
	hudLineHeight = 18
	hudBoxWidth   = 230
)

const hudHint = "F1 debug  Tab tuning  R respawn  L level"

// DrawHUD renders the controller state of the first player in the top-left
// corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	info := controller.CollisionInfo.Get(playerEntry)
	jumps := controller.JumpCount.Get(playerEntry)
	coyote := controller.Coyote.Get(playerEntry)
	velocity := controller.Velocity.Get(playerEntry)

	face := fonts.Mono.Get()
	lines := []string{
		fmt.Sprintf("grounded  %t", info.Below),
		fmt.Sprintf("walls     L:%t R:%t", info.Left, info.Right),
		fmt.Sprintf("ceiling   %t", info.Above),
		fmt.Sprintf("jumps     %d", jumps.Count),
		fmt.Sprintf("coyote    %.2fs %s", coyote.Elapsed, pausedLabel(coyote.Paused)),
		fmt.Sprintf("velocity  %.2f, %.2f", velocity.Resolved.X, velocity.Resolved.Y),
	}
	if settings := GetSettings(ecs); settings != nil && settings.TuningSource != "" {
		lines = append(lines, "tuning    "+settings.TuningSource)
	}
	if settings := GetSettings(ecs); settings != nil && settings.TuningError != "" {
		lines = append(lines, "reload    failed, see log")
	}

	boxHeight := float32(len(lines)*hudLineHeight + hudMargin)
	vector.FillRect(screen, hudMargin, hudMargin, hudBoxWidth, boxHeight, cfg.Colors.PanelColor, false)

	for i, line := range lines {
		c := cfg.Colors.HUDText
		if i == 0 {
			c = cfg.Colors.HUDAirborne
			if info.Below {
				c = cfg.Colors.HUDGrounded
			}
		}
		text.Draw(screen, line, face, hudMargin*2, hudMargin+(i+1)*hudLineHeight, c)
	}

	hintFace := fonts.Regular.Get()
	text.Draw(screen, hudHint, hintFace, hudMargin, cfg.C.Height-hudMargin, cfg.Colors.HUDText)
}

func pausedLabel(paused bool) string {
	if paused {
		return "(paused)"
	}
	return ""
}
