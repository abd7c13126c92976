package controller

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/automoto/platformer-controller/shared/gamemath"
	"github.com/yohamta/donburi"
	"gopkg.in/yaml.v3"
)

// ErrInvalidTuning wraps every validation failure.
var ErrInvalidTuning = errors.New("invalid tuning")

// TuningData parameterizes a single controller.
type TuningData struct {
	// Movement speed in units per second
	MoveSpeed float64 `yaml:"move_speed" json:"moveSpeed"`
	// Jump height in units
	JumpHeight float64 `yaml:"jump_height" json:"jumpHeight"`
	// Seconds to reach the top of a jump
	TimeToJumpApex float64 `yaml:"time_to_jump_apex" json:"timeToJumpApex"`
	// Seconds to reach move speed on the ground
	AccelerationTimeGrounded float64 `yaml:"acceleration_time_grounded" json:"accelerationTimeGrounded"`
	// Seconds to reach move speed in the air
	AccelerationTimeAirborne float64 `yaml:"acceleration_time_airborne" json:"accelerationTimeAirborne"`
	GravityUpMultiplier      float64 `yaml:"gravity_up_multiplier" json:"gravityUpMultiplier"`
	GravityDownMultiplier    float64 `yaml:"gravity_down_multiplier" json:"gravityDownMultiplier"`
	// Seconds after leaving a platform during which a jump is still allowed
	CoyoteTime float64 `yaml:"coyote_time" json:"coyoteTime"`
	// Ray cast inset
	SkinWidth          float64 `yaml:"skin_width" json:"skinWidth"`
	HorizontalRayCount int     `yaml:"horizontal_ray_count" json:"horizontalRayCount"`
	VerticalRayCount   int     `yaml:"vertical_ray_count" json:"verticalRayCount"`
}

var Tuning = donburi.NewComponentType[TuningData]()

// DefaultTuning returns the stock controller parameters.
func DefaultTuning() TuningData {
	return TuningData{
		MoveSpeed:                400,
		JumpHeight:               2.0,
		TimeToJumpApex:           0.4,
		AccelerationTimeGrounded: 0.1,
		AccelerationTimeAirborne: 0.2,
		GravityUpMultiplier:      1.0,
		GravityDownMultiplier:    1.5,
		CoyoteTime:               0.08,
		SkinWidth:                1.0,
		HorizontalRayCount:       6,
		VerticalRayCount:         4,
	}
}

// Gravity is the y-up acceleration derived from jump height and apex time.
func (t TuningData) Gravity() float64 {
	return gamemath.JumpGravity(t.JumpHeight, t.TimeToJumpApex)
}

// JumpVelocity is the take-off speed of a jump.
func (t TuningData) JumpVelocity() float64 {
	return gamemath.JumpVelocity(t.JumpHeight, t.TimeToJumpApex)
}

// Validate reports the first parameter outside its usable range.
func (t TuningData) Validate() error {
	for _, f := range tuningFields {
		if v := f.Get(t); math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %s must be finite, got %v", ErrInvalidTuning, f.Key, v)
		}
	}

	switch {
	case t.MoveSpeed < 0:
		return fmt.Errorf("%w: move speed must not be negative, got %v", ErrInvalidTuning, t.MoveSpeed)
	case t.JumpHeight <= 0:
		return fmt.Errorf("%w: jump height must be positive, got %v", ErrInvalidTuning, t.JumpHeight)
	case t.TimeToJumpApex <= 0:
		return fmt.Errorf("%w: time to jump apex must be positive, got %v", ErrInvalidTuning, t.TimeToJumpApex)
	case t.AccelerationTimeGrounded < 0 || t.AccelerationTimeAirborne < 0:
		return fmt.Errorf("%w: acceleration times must not be negative", ErrInvalidTuning)
	case t.GravityUpMultiplier < 0 || t.GravityDownMultiplier < 0:
		return fmt.Errorf("%w: gravity multipliers must not be negative", ErrInvalidTuning)
	case t.CoyoteTime < 0:
		return fmt.Errorf("%w: coyote time must not be negative, got %v", ErrInvalidTuning, t.CoyoteTime)
	case t.SkinWidth <= 0:
		return fmt.Errorf("%w: skin width must be positive, got %v", ErrInvalidTuning, t.SkinWidth)
	case t.HorizontalRayCount < 1 || t.VerticalRayCount < 1:
		return fmt.Errorf("%w: ray counts must be at least 1, got %d/%d",
			ErrInvalidTuning, t.HorizontalRayCount, t.VerticalRayCount)
	}
	return nil
}

// DecodeTuning reads a YAML document on top of DefaultTuning, so a file only
// needs the keys it changes.
func DecodeTuning(r io.Reader) (TuningData, error) {
	t := DefaultTuning()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return TuningData{}, fmt.Errorf("decode tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return TuningData{}, err
	}
	return t, nil
}

// ParseTuning is DecodeTuning over a byte slice.
func ParseTuning(data []byte) (TuningData, error) {
	return DecodeTuning(bytes.NewReader(data))
}

// EncodeTuning renders t as YAML.
func EncodeTuning(t TuningData) ([]byte, error) {
	data, err := yaml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encode tuning: %w", err)
	}
	return data, nil
}

// SetTuning replaces an entity's tuning between ticks.
func SetTuning(e *donburi.Entry, t TuningData) {
	Tuning.SetValue(e, t)
	RaySampling.Get(e).Dirty = true
}
