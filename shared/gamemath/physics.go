package gamemath

// ClampRange clamps v to [min, max]. When the range is inverted (an object
// wider than the arena) min wins.
func ClampRange(v, min, max float64) float64 {
	if v > max {
		v = max
	}
	if v < min {
		v = min
	}
	return v
}

// SnapToGround returns the y position of an object of height h resting on the
// ground line, and whether its bottom edge reached the ground.
func SnapToGround(y, h, groundY float64) (float64, bool) {
	if y+h >= groundY {
		return groundY - h, true
	}
	return y, false
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
