package gamemath

// Sign returns -1 for negative values and 1 otherwise.
func Sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// RaySpacing spreads count rays across extent. With fewer than two rays a
// single ray is centred on the extent and the spacing is zero.
func RaySpacing(extent float64, count int) (offset, spacing float64) {
	if count < 2 {
		return extent / 2, 0
	}
	return 0, extent / float64(count-1)
}
