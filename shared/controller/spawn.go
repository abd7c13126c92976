package controller

import (
	"fmt"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Components lists everything Step expects on a controlled entity. Hosts
// append their own components when they build archetypes.
var Components = []donburi.IComponentType{
	Controlled,
	Body,
	Tuning,
	Velocity,
	CollisionInfo,
	RaySampling,
	JumpCount,
	Coyote,
	Smoothing,
	Input,
}

// Spawn creates a controlled entity for body with every component at its
// default. It panics on invalid tuning.
func Spawn(w donburi.World, body *resolv.Object, tuning TuningData, extra ...donburi.IComponentType) *donburi.Entry {
	comps := make([]donburi.IComponentType, 0, len(Components)+len(extra))
	comps = append(comps, Components...)
	comps = append(comps, extra...)
	entry := w.Entry(w.Create(comps...))
	Init(entry, body, tuning)
	return entry
}

// Init fills the controller components of an existing entry.
func Init(e *donburi.Entry, body *resolv.Object, tuning TuningData) {
	if err := tuning.Validate(); err != nil {
		panic(fmt.Sprintf("controller: %v", err))
	}
	body.Data = e
	Body.SetValue(e, BodyData{Object: body})
	Tuning.SetValue(e, tuning)
	Velocity.SetValue(e, VelocityData{})
	CollisionInfo.SetValue(e, CollisionInfoData{})
	RaySampling.SetValue(e, RaySamplingData{Dirty: true})
	JumpCount.SetValue(e, JumpCountData{})
	Coyote.SetValue(e, CoyoteData{})
	Smoothing.SetValue(e, SmoothingData{})
}

// SpawnCollider adds a static obstacle.
func SpawnCollider(w donburi.World, obj *resolv.Object) *donburi.Entry {
	entry := w.Entry(w.Create(Collider))
	obj.Data = entry
	Collider.SetValue(entry, ColliderData{Object: obj})
	return entry
}

// SetPosition moves a body to (x, y) and stops it.
func SetPosition(e *donburi.Entry, x, y float64) {
	obj := Body.Get(e).Object
	obj.X, obj.Y = x, y
	if obj.Space != nil {
		obj.Update()
	}
	Velocity.SetValue(e, VelocityData{})
	Smoothing.SetValue(e, SmoothingData{})
	RaySampling.Get(e).Dirty = true
}

// SetBodyBounds resizes a body.
func SetBodyBounds(e *donburi.Entry, w, h float64) {
	obj := Body.Get(e).Object
	obj.W, obj.H = w, h
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	if obj.Space != nil {
		obj.Update()
	}
	RaySampling.Get(e).Dirty = true
}
