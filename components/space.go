package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space holds every body and collider object of the loaded level.
var Space = donburi.NewComponentType[resolv.Space]()
