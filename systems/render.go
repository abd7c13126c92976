package systems

import (
	"image/color"

	"github.com/automoto/platformer-controller/assets/shaders"
	"github.com/automoto/platformer-controller/components"
	cfg "github.com/automoto/platformer-controller/config"
	"github.com/automoto/platformer-controller/shared/controller"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var bodyShaderOp = &ebiten.DrawRectShaderOptions{}

// viewRect returns the screen-space top-left corner of obj,
// or false when obj is off-screen.
func viewRect(camera *components.CameraData, obj *resolv.Object, width, height int) (float32, float32, bool) {
	x, y := camera.WorldToScreen(obj.X, obj.Y+obj.H, width, height)
	if x+obj.W < 0 || x > float64(width) || y+obj.H < 0 || y > float64(height) {
		return 0, 0, false
	}
	return float32(x), float32(y), true
}

// DrawLevel renders every static collider.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	controller.Collider.Each(ecs.World, func(e *donburi.Entry) {
		obj := controller.Collider.Get(e).Object
		x, y, visible := viewRect(camera, obj, width, height)
		if !visible {
			return
		}
		vector.FillRect(screen, x, y, float32(obj.W), float32(obj.H), cfg.Colors.Collider, false)
	})
}

// DrawBodies renders every controlled body with its skin band outlined.
func DrawBodies(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	controller.Controlled.Each(ecs.World, func(e *donburi.Entry) {
		obj := controller.Body.Get(e).Object
		x, y, visible := viewRect(camera, obj, width, height)
		if !visible {
			return
		}

		if shaders.BodyShader == nil {
			vector.FillRect(screen, x, y, float32(obj.W), float32(obj.H), cfg.Colors.Body, false)
			return
		}

		skin := controller.Tuning.Get(e).SkinWidth
		bodyShaderOp.GeoM.Reset()
		bodyShaderOp.GeoM.Translate(float64(x), float64(y))
		bodyShaderOp.Uniforms = map[string]any{
			"Color": colorUniform(cfg.Colors.Body),
			"Edge":  colorUniform(cfg.Colors.BodyEdge),
			"Skin":  float32(skin),
			"Size":  []float32{float32(obj.W), float32(obj.H)},
		}
		screen.DrawRectShader(int(obj.W), int(obj.H), shaders.BodyShader, bodyShaderOp)
	})
}

// colorUniform converts c to premultiplied vec4 components.
func colorUniform(c color.RGBA) []float32 {
	return []float32{
		float32(c.R) / 255,
		float32(c.G) / 255,
		float32(c.B) / 255,
		float32(c.A) / 255,
	}
}
