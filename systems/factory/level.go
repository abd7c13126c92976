package factory

import (
	"github.com/automoto/platformer-controller/archetypes"
	"github.com/automoto/platformer-controller/assets"
	"github.com/automoto/platformer-controller/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the named embedded level. Unknown names fall back to
// the first level.
func CreateLevel(ecs *ecs.ECS, name string) *donburi.Entry {
	names := assets.LevelNames()
	if len(names) == 0 {
		panic("No levels found in assets/levels directory")
	}

	levelIndex := 0
	for i, n := range names {
		if n == name {
			levelIndex = i
			break
		}
	}
	return CreateLevelAtIndex(ecs, levelIndex)
}

func CreateLevelAtIndex(ecs *ecs.ECS, levelIndex int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	names := assets.LevelNames()
	// Clamp index to valid range
	if levelIndex < 0 || levelIndex >= len(names) {
		levelIndex = 0
	}

	levelData := &components.LevelData{
		LevelNames:   names,
		LevelIndex:   levelIndex,
		CurrentLevel: assets.MustLoadLevel(names[levelIndex]),
	}

	components.Level.Set(level, levelData)

	return level
}
