package controller

import (
	"math"
	"strconv"
)

// TuningField is one editable parameter of TuningData.
type TuningField struct {
	Key     string
	Label   string
	Step    float64
	Min     float64
	Integer bool

	Get func(TuningData) float64
	Set func(*TuningData, float64)
}

var tuningFields = []TuningField{
	{Key: "move_speed", Label: "Move speed", Step: 25, Min: 0,
		Get: func(t TuningData) float64 { return t.MoveSpeed },
		Set: func(t *TuningData, v float64) { t.MoveSpeed = v }},
	{Key: "jump_height", Label: "Jump height", Step: 0.25, Min: 0.25,
		Get: func(t TuningData) float64 { return t.JumpHeight },
		Set: func(t *TuningData, v float64) { t.JumpHeight = v }},
	{Key: "time_to_jump_apex", Label: "Time to apex", Step: 0.05, Min: 0.05,
		Get: func(t TuningData) float64 { return t.TimeToJumpApex },
		Set: func(t *TuningData, v float64) { t.TimeToJumpApex = v }},
	{Key: "acceleration_time_grounded", Label: "Accel (ground)", Step: 0.05, Min: 0,
		Get: func(t TuningData) float64 { return t.AccelerationTimeGrounded },
		Set: func(t *TuningData, v float64) { t.AccelerationTimeGrounded = v }},
	{Key: "acceleration_time_airborne", Label: "Accel (air)", Step: 0.05, Min: 0,
		Get: func(t TuningData) float64 { return t.AccelerationTimeAirborne },
		Set: func(t *TuningData, v float64) { t.AccelerationTimeAirborne = v }},
	{Key: "gravity_up_multiplier", Label: "Gravity up", Step: 0.1, Min: 0,
		Get: func(t TuningData) float64 { return t.GravityUpMultiplier },
		Set: func(t *TuningData, v float64) { t.GravityUpMultiplier = v }},
	{Key: "gravity_down_multiplier", Label: "Gravity down", Step: 0.1, Min: 0,
		Get: func(t TuningData) float64 { return t.GravityDownMultiplier },
		Set: func(t *TuningData, v float64) { t.GravityDownMultiplier = v }},
	{Key: "coyote_time", Label: "Coyote time", Step: 0.01, Min: 0,
		Get: func(t TuningData) float64 { return t.CoyoteTime },
		Set: func(t *TuningData, v float64) { t.CoyoteTime = v }},
	{Key: "skin_width", Label: "Skin width", Step: 0.25, Min: 0.25,
		Get: func(t TuningData) float64 { return t.SkinWidth },
		Set: func(t *TuningData, v float64) { t.SkinWidth = v }},
	{Key: "horizontal_ray_count", Label: "Side rays", Step: 1, Min: 1, Integer: true,
		Get: func(t TuningData) float64 { return float64(t.HorizontalRayCount) },
		Set: func(t *TuningData, v float64) { t.HorizontalRayCount = int(v) }},
	{Key: "vertical_ray_count", Label: "Floor rays", Step: 1, Min: 1, Integer: true,
		Get: func(t TuningData) float64 { return float64(t.VerticalRayCount) },
		Set: func(t *TuningData, v float64) { t.VerticalRayCount = int(v) }},
}

// TuningFields lists every parameter in display order.
func TuningFields() []TuningField {
	return tuningFields
}

// Nudge moves the field by steps increments, snapped to the step grid and
// clamped at Min.
func (f TuningField) Nudge(t TuningData, steps int) TuningData {
	v := f.Get(t) + float64(steps)*f.Step
	v = math.Round(v/f.Step) * f.Step
	if v < f.Min {
		v = f.Min
	}
	f.Set(&t, v)
	return t
}

// Format renders the field's current value.
func (f TuningField) Format(t TuningData) string {
	if f.Integer {
		return strconv.Itoa(int(f.Get(t)))
	}
	return strconv.FormatFloat(f.Get(t), 'f', 2, 64)
}
