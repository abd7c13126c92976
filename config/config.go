package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// LevelConfig selects the level and tuning the scene starts with
type LevelConfig struct {
	Name       string // embedded level name, e.g. "basic"
	Preset     string // embedded tuning preset name
	TuningPath string // optional YAML file, hot-reloaded when set
	CellSize   int    // resolv space cell size in pixels
}

// PlayerConfig contains the controlled body's dimensions
type PlayerConfig struct {
	CollisionWidth  float64
	CollisionHeight float64
	FallLimit       float64 // respawn once the body falls this far below the map
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum speed to update look-ahead
}

// DebugConfig contains debug overlay options
type DebugConfig struct {
	Enabled          bool    // Start with the ray overlay on
	LogCollisions    bool    // Log every collision transition
	HitMarkerSeconds float32 // Fade time of a ray hit marker
	HitMarkerSize    float32
}

// ColorsConfig contains the colors used by the renderers
type ColorsConfig struct {
	Background   color.RGBA
	Collider     color.RGBA
	Body         color.RGBA
	BodyEdge     color.RGBA
	RayMiss      color.RGBA
	RayHit       color.RGBA
	HitMarker    color.RGBA
	HUDText      color.RGBA
	HUDGrounded  color.RGBA
	HUDAirborne  color.RGBA
	PanelColor   color.RGBA
	ButtonIdle   color.RGBA
	ButtonHover  color.RGBA
	ButtonActive color.RGBA
}

// Global configuration instances
var C *Config
var Level LevelConfig
var Player PlayerConfig
var Camera CameraConfig
var Debug DebugConfig
var Colors ColorsConfig

// Renderer layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange    = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue  = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

// TickDuration is the controller time step in seconds.
func TickDuration() float64 {
	return 1 / float64(C.TPS)
}

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
		TPS:    60,
		Title:  "Platformer Controller",
	}

	Level = LevelConfig{
		Name:     "basic",
		Preset:   "default",
		CellSize: 16,
	}

	// Body size of the demo player.
	Player = PlayerConfig{
		CollisionWidth:  25,
		CollisionHeight: 50,
		FallLimit:       200,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      80,
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 0.5,
	}

	Debug = DebugConfig{
		Enabled:          false,
		LogCollisions:    false,
		HitMarkerSeconds: 0.4,
		HitMarkerSize:    4,
	}

	Colors = ColorsConfig{
		Background:   color.RGBA{R: 24, G: 26, B: 34, A: 255},
		Collider:     color.RGBA{R: 90, G: 96, B: 110, A: 255},
		Body:         color.RGBA{R: 230, G: 120, B: 60, A: 255},
		BodyEdge:     color.RGBA{R: 255, G: 200, B: 120, A: 255},
		RayMiss:      color.RGBA{R: 0, G: 120, B: 160, A: 160},
		RayHit:       color.RGBA{R: 220, G: 50, B: 50, A: 220},
		HitMarker:    Yellow,
		HUDText:      White,
		HUDGrounded:  Green,
		HUDAirborne:  Orange,
		PanelColor:   color.RGBA{R: 0, G: 0, B: 0, A: 200},
		ButtonIdle:   DarkBlue,
		ButtonHover:  LightBlue,
		ButtonActive: color.RGBA{R: 40, G: 70, B: 120, A: 255},
	}
}
