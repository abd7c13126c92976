package controller

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Side identifies which face of a body changed contact.
type Side int

const (
	SideAbove Side = iota
	SideBelow
	SideLeft
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideAbove:
		return "above"
	case SideBelow:
		return "below"
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	}
	return "unknown"
}

// CollisionEvent is published when a contact flag flips. Events are drained
// within the tick that produced them.
type CollisionEvent struct {
	Entity   donburi.Entity
	Side     Side
	Touching bool
}

var CollisionEvents = events.NewEventType[CollisionEvent]()

func publishTransition(w donburi.World, e *donburi.Entry, side Side, flag *bool, touching bool) {
	if *flag == touching {
		return
	}
	*flag = touching
	CollisionEvents.Publish(w, CollisionEvent{
		Entity:   e.Entity(),
		Side:     side,
		Touching: touching,
	})
}
