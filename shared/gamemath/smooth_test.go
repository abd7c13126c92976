package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSmoothDampConvergesWithoutOvershoot(t *testing.T) {
	for _, smoothTime := range []float64{0, 0.01, 0.1, 0.5, 2} {
		for _, target := range []float64{10, -10, 0.001} {
			current, velocity := 0.0, 0.0
			steps := 4000
			dt := 1.0 / 240
			prevDist := math.Abs(target - current)

			for i := 0; i < steps; i++ {
				current = SmoothDamp(current, target, &velocity, smoothTime, math.Inf(1), dt)

				dist := math.Abs(target - current)
				assert.LessOrEqual(t, dist, prevDist+1e-12, "distance grew at step %d (smoothTime %v)", i, smoothTime)
				if target > 0 {
					assert.LessOrEqual(t, current, target)
				} else {
					assert.GreaterOrEqual(t, current, target)
				}
				prevDist = dist
			}
			assert.InDelta(t, target, current, 1e-4, "smoothTime %v target %v", smoothTime, target)
		}
	}
}

func TestSmoothDampSmallerStepsStayMonotonic(t *testing.T) {
	for _, dt := range []float64{1.0 / 30, 1.0 / 60, 1.0 / 120, 1.0 / 480} {
		current, velocity := 5.0, 0.0
		for elapsed := 0.0; elapsed < 3; elapsed += dt {
			next := SmoothDamp(current, 0, &velocity, 0.2, math.Inf(1), dt)
			assert.LessOrEqual(t, next, current)
			assert.GreaterOrEqual(t, next, 0.0)
			current = next
		}
		assert.InDelta(t, 0, current, 1e-3, "dt %v", dt)
	}
}

func TestSmoothDampSnapsOnOvershoot(t *testing.T) {
	velocity := 50.0
	out := SmoothDamp(0.9, 1, &velocity, 0.1, math.Inf(1), 0.5)

	assert.Equal(t, 1.0, out)
	assert.Zero(t, velocity)
}

func TestSmoothDampZeroDeltaIsNoop(t *testing.T) {
	velocity := 3.0
	out := SmoothDamp(2, 10, &velocity, 0.1, math.Inf(1), 0)

	assert.Equal(t, 2.0, out)
	assert.Equal(t, 3.0, velocity)
}

func TestSmoothDampMaxSpeed(t *testing.T) {
	velocity := 0.0
	out := SmoothDamp(0, 100, &velocity, 1, 1, 1.0/60)

	assert.Less(t, out, 1.0)
	assert.Greater(t, out, 0.0)
}
