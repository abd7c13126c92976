package controller

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTuningDerivedValues(t *testing.T) {
	tuning := DefaultTuning()
	require.NoError(t, tuning.Validate())
	assert.InDelta(t, -25.0, tuning.Gravity(), 1e-9)
	assert.InDelta(t, 10.0, tuning.JumpVelocity(), 1e-9)
}

func TestTuningValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*TuningData)
	}{
		{"negative_speed", func(t *TuningData) { t.MoveSpeed = -1 }},
		{"zero_jump_height", func(t *TuningData) { t.JumpHeight = 0 }},
		{"zero_apex_time", func(t *TuningData) { t.TimeToJumpApex = 0 }},
		{"negative_acceleration", func(t *TuningData) { t.AccelerationTimeAirborne = -0.1 }},
		{"negative_gravity_multiplier", func(t *TuningData) { t.GravityDownMultiplier = -1 }},
		{"negative_coyote", func(t *TuningData) { t.CoyoteTime = -0.1 }},
		{"negative_skin", func(t *TuningData) { t.SkinWidth = -1 }},
		{"zero_skin", func(t *TuningData) { t.SkinWidth = 0 }},
		{"nan_speed", func(t *TuningData) { t.MoveSpeed = math.NaN() }},
		{"infinite_jump_height", func(t *TuningData) { t.JumpHeight = math.Inf(1) }},
		{"negative_infinite_gravity", func(t *TuningData) { t.GravityDownMultiplier = math.Inf(-1) }},
		{"no_horizontal_rays", func(t *TuningData) { t.HorizontalRayCount = 0 }},
		{"no_vertical_rays", func(t *TuningData) { t.VerticalRayCount = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tuning := DefaultTuning()
			tc.mutate(&tuning)
			assert.ErrorIs(t, tuning.Validate(), ErrInvalidTuning)
		})
	}
}

func TestDecodeTuningOverlaysDefaults(t *testing.T) {
	tuning, err := DecodeTuning(strings.NewReader("coyote_time: 0.1\nhorizontal_ray_count: 8\n"))
	require.NoError(t, err)

	want := DefaultTuning()
	want.CoyoteTime = 0.1
	want.HorizontalRayCount = 8
	assert.Equal(t, want, tuning)
}

func TestDecodeTuningEmptyDocument(t *testing.T) {
	tuning, err := ParseTuning(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultTuning(), tuning)
}

func TestDecodeTuningErrors(t *testing.T) {
	_, err := ParseTuning([]byte("jump_hieght: 3\n"))
	assert.Error(t, err)

	_, err = ParseTuning([]byte("skin_width: -2\n"))
	assert.ErrorIs(t, err, ErrInvalidTuning)

	_, err = ParseTuning([]byte("skin_width: 0\n"))
	assert.ErrorIs(t, err, ErrInvalidTuning)

	_, err = ParseTuning([]byte("move_speed: .nan\n"))
	assert.ErrorIs(t, err, ErrInvalidTuning)

	_, err = ParseTuning([]byte("coyote_time: .inf\n"))
	assert.ErrorIs(t, err, ErrInvalidTuning)
}

func TestEncodeTuningIsReadable(t *testing.T) {
	tuning := DefaultTuning()
	tuning.MoveSpeed = 250

	data, err := EncodeTuning(tuning)
	require.NoError(t, err)
	assert.Contains(t, string(data), "move_speed: 250")

	back, err := ParseTuning(data)
	require.NoError(t, err)
	assert.Equal(t, tuning, back)
}
