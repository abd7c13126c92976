package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldByKey(t *testing.T, key string) TuningField {
	t.Helper()
	for _, f := range TuningFields() {
		if f.Key == key {
			return f
		}
	}
	require.FailNow(t, "unknown field", key)
	return TuningField{}
}

func TestTuningFieldsCoverEveryParameter(t *testing.T) {
	assert.Len(t, TuningFields(), 11)

	// Every field reads back what it writes.
	for _, f := range TuningFields() {
		tuning := DefaultTuning()
		f.Set(&tuning, f.Min+f.Step)
		assert.InDelta(t, f.Min+f.Step, f.Get(tuning), 1e-9, f.Key)
	}
}

func TestTuningFieldNudge(t *testing.T) {
	coyote := fieldByKey(t, "coyote_time")
	tuning := coyote.Nudge(DefaultTuning(), 2)
	assert.InDelta(t, 0.10, tuning.CoyoteTime, 1e-9)

	tuning = coyote.Nudge(tuning, -100)
	assert.Zero(t, tuning.CoyoteTime)

	rays := fieldByKey(t, "vertical_ray_count")
	tuning = rays.Nudge(DefaultTuning(), -10)
	assert.Equal(t, 1, tuning.VerticalRayCount)
	require.NoError(t, tuning.Validate())
	assert.Equal(t, "1", rays.Format(tuning))

	// The input value is left untouched.
	def := DefaultTuning()
	_ = fieldByKey(t, "move_speed").Nudge(def, 1)
	assert.Equal(t, DefaultTuning(), def)
}

func TestTuningFieldFormat(t *testing.T) {
	assert.Equal(t, "0.08", fieldByKey(t, "coyote_time").Format(DefaultTuning()))
	assert.Equal(t, "400.00", fieldByKey(t, "move_speed").Format(DefaultTuning()))
}

func TestSkinWidthNudgeStaysPositive(t *testing.T) {
	skin := fieldByKey(t, "skin_width")
	tuning := skin.Nudge(DefaultTuning(), -100)
	assert.InDelta(t, 0.25, tuning.SkinWidth, 1e-9)
	require.NoError(t, tuning.Validate())
}
