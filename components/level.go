package components

import (
	"github.com/automoto/platformer-controller/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	LevelIndex   int
	LevelNames   []string
}

var Level = donburi.NewComponentType[LevelData]()
