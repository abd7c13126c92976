package gamemath

// JumpGravity returns the constant (negative, y-up) acceleration that brings
// a jump to height exactly timeToApex seconds after take-off.
func JumpGravity(height, timeToApex float64) float64 {
	return -(2 * height) / (timeToApex * timeToApex)
}

// JumpVelocity returns the take-off speed matching JumpGravity.
func JumpVelocity(height, timeToApex float64) float64 {
	g := JumpGravity(height, timeToApex)
	if g < 0 {
		g = -g
	}
	return g * timeToApex
}
