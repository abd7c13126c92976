package controller

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const testDT = 1.0 / 60

func addCollider(w donburi.World, x, y, width, height float64) {
	obj := resolv.NewObject(x, y, width, height)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	SpawnCollider(w, obj)
}

func spawnBody(w donburi.World, x, y float64) *donburi.Entry {
	obj := resolv.NewObject(x, y, 16, 32)
	obj.SetShape(resolv.NewRectangle(0, 0, 16, 32))
	return Spawn(w, obj, DefaultTuning())
}

func press(e *donburi.Entry, actions ...ActionID) {
	var pressed [ActionCount]bool
	for _, a := range actions {
		pressed[a] = true
	}
	Input.Get(e).Push(pressed)
}

func collectEvents(w donburi.World) *[]CollisionEvent {
	got := &[]CollisionEvent{}
	CollisionEvents.Subscribe(w, func(w donburi.World, ev CollisionEvent) {
		*got = append(*got, ev)
	})
	return got
}
