package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	SpawnX, SpawnY float64
	Respawns       int
}

var Player = donburi.NewComponentType[PlayerData]()
