package gamemath

import "math"

// minSmoothTime keeps omega finite.
const minSmoothTime = 0.0001

// SmoothDamp moves current toward target with a critically damped spring.
// velocity carries the spring state between calls. maxSpeed may be
// math.Inf(1). The result never passes the target: on overshoot it snaps to
// the target and the spring velocity is rebuilt from the snapped output.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, maxSpeed, dt float64) float64 {
	if dt <= 0 {
		return current
	}

	smoothTime = math.Max(smoothTime, minSmoothTime)
	omega := 2 / smoothTime

	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)
	change := current - target
	originalTo := target

	maxChange := maxSpeed * smoothTime
	change = ClampSpeed(change, maxChange)
	target = current - change

	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * exp
	output := target + (change+temp)*exp

	if (originalTo-current > 0) == (output > originalTo) {
		output = originalTo
		*velocity = (output - originalTo) / dt
	}

	return output
}
