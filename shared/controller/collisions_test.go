package controller

import (
	"testing"

	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func sweep(w donburi.World) {
	UpdateRaySampling(w)
	UpdateHorizontalCollisions(w)
	UpdateVerticalCollisions(w)
}

func TestRestingBodyIsGrounded(t *testing.T) {
	cases := []struct {
		name  string
		y     float64
		wantY float64
	}{
		{"flush", 0, 0},
		{"overlapping", -0.5, 0.5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := donburi.NewWorld()
			Install(w)
			addCollider(w, -100, -50, 300, 50)
			e := spawnBody(w, 0, tc.y)

			sweep(w)

			info := CollisionInfo.Get(e)
			vel := Velocity.Get(e)
			assert.True(t, info.Below)
			assert.False(t, info.Above)
			assert.Zero(t, vel.X)
			assert.InDelta(t, tc.wantY, vel.Y, 1e-9)
			assert.Equal(t, vel.Vec2, vel.Resolved)
		})
	}
}

func TestHorizontalSweepClampsAgainstWall(t *testing.T) {
	w := donburi.NewWorld()
	addCollider(w, 20, -50, 20, 150)
	e := spawnBody(w, 0, 0)
	got := collectEvents(w)

	Velocity.Get(e).X = 10
	UpdateRaySampling(w)
	UpdateHorizontalCollisions(w)
	CollisionEvents.ProcessEvents(w)

	assert.InDelta(t, 4.0, Velocity.Get(e).X, 1e-9)
	assert.True(t, CollisionInfo.Get(e).Right)
	assert.False(t, CollisionInfo.Get(e).Left)
	require.Len(t, *got, 1)
	assert.Equal(t, CollisionEvent{Entity: e.Entity(), Side: SideRight, Touching: true}, (*got)[0])
}

func TestHorizontalSweepMissesDistantWall(t *testing.T) {
	w := donburi.NewWorld()
	addCollider(w, -60, -50, 20, 150)
	e := spawnBody(w, 0, 0)

	Velocity.Get(e).X = -10
	UpdateRaySampling(w)
	UpdateHorizontalCollisions(w)

	assert.Equal(t, -10.0, Velocity.Get(e).X)
	assert.False(t, CollisionInfo.Get(e).Left)
}

func TestHorizontalSweepSkippedWhenStill(t *testing.T) {
	w := donburi.NewWorld()
	e := spawnBody(w, 0, 0)
	got := collectEvents(w)

	info := CollisionInfo.Get(e)
	info.Left = true
	info.Right = true

	UpdateRaySampling(w)
	UpdateHorizontalCollisions(w)
	CollisionEvents.ProcessEvents(w)

	assert.True(t, info.Left)
	assert.True(t, info.Right)
	assert.Empty(t, *got)
}

func TestVerticalSweepHitsCeiling(t *testing.T) {
	w := donburi.NewWorld()
	addCollider(w, -100, 40, 300, 10)
	e := spawnBody(w, 0, 0)

	Velocity.Get(e).Y = 20
	sweep(w)

	assert.InDelta(t, 8.0, Velocity.Get(e).Y, 1e-9)
	assert.True(t, CollisionInfo.Get(e).Above)
	assert.False(t, CollisionInfo.Get(e).Below)
}

func TestVerticalSweepUsesResolvedHorizontalVelocity(t *testing.T) {
	w := donburi.NewWorld()
	// A ledge ending just right of the body: only reachable once v.x moves
	// the downward rays past its edge.
	addCollider(w, 20, -50, 100, 50)
	e := spawnBody(w, 0, 0)

	sweep(w)
	assert.False(t, CollisionInfo.Get(e).Below)

	Velocity.Get(e).X = 10
	sweep(w)
	assert.True(t, CollisionInfo.Get(e).Below)
}

func TestFlagsPublishOnlyOnTransition(t *testing.T) {
	w := donburi.NewWorld()
	addCollider(w, -100, -50, 300, 50)
	e := spawnBody(w, 0, 0)
	got := collectEvents(w)

	sweep(w)
	sweep(w)
	CollisionEvents.ProcessEvents(w)

	require.Len(t, *got, 1)
	assert.Equal(t, SideBelow, (*got)[0].Side)
	assert.True(t, (*got)[0].Touching)
	assert.Equal(t, e.Entity(), (*got)[0].Entity)
}

func TestSweepIgnoresControlledBodies(t *testing.T) {
	w := donburi.NewWorld()
	// Flush under the second body; it would ground it if bodies collided.
	below := spawnBody(w, 0, -32)
	e := spawnBody(w, 0, 0)

	sweep(w)

	assert.False(t, CollisionInfo.Get(e).Below)
	assert.False(t, CollisionInfo.Get(below).Below)
}

func TestRayDebugRecordsEachPass(t *testing.T) {
	w := donburi.NewWorld()
	addCollider(w, -100, -50, 300, 50)
	obj := resolv.NewObject(0, 0, 16, 32)
	e := Spawn(w, obj, DefaultTuning(), RayDebug)
	Velocity.Get(e).X = 5

	for i := 0; i < 2; i++ {
		sweep(w)

		d := RayDebug.Get(e)
		assert.Len(t, d.Horizontal, 6)
		require.Len(t, d.Vertical, 4)
		for _, r := range d.Vertical {
			assert.True(t, r.Hit)
			assert.InDelta(t, 0.0, r.HitPoint.Y, 1e-9)
			assert.GreaterOrEqual(t, r.From.X, 6.0)
		}
	}
}
