package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputActionEdges(t *testing.T) {
	var in InputData

	in.Push([ActionCount]bool{ActionJump: true})
	assert.Equal(t, ActionState{Pressed: true, JustPressed: true}, in.Action(ActionJump))

	in.Push([ActionCount]bool{ActionJump: true})
	assert.Equal(t, ActionState{Pressed: true}, in.Action(ActionJump))

	in.Push([ActionCount]bool{})
	assert.Equal(t, ActionState{JustReleased: true}, in.Action(ActionJump))
}

func TestInputAxisX(t *testing.T) {
	cases := []struct {
		name    string
		pressed [ActionCount]bool
		want    float64
	}{
		{"none", [ActionCount]bool{}, 0},
		{"left", [ActionCount]bool{ActionMoveLeft: true}, -1},
		{"right", [ActionCount]bool{ActionMoveRight: true}, 1},
		{"both", [ActionCount]bool{ActionMoveLeft: true, ActionMoveRight: true}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := InputData{Current: tc.pressed}
			assert.Equal(t, tc.want, in.AxisX())
		})
	}
}

func TestParseAction(t *testing.T) {
	for id := ActionID(0); id < ActionCount; id++ {
		got, ok := ParseAction(id.String())
		assert.True(t, ok)
		assert.Equal(t, id, got)
	}
	_, ok := ParseAction("crouch")
	assert.False(t, ok)
}
