package gamemath

// ApplyGravity integrates gravity into a vertical velocity over dt
// seconds. g is negative (downward acceleration in Y-up world space).
// No clamping happens here.
func ApplyGravity(velocity, dt, g float64) float64 {
	return velocity + g*dt
}

// Integrate advances a vertical position by velocity over dt seconds.
func Integrate(position, velocity, dt float64) float64 {
	return position + velocity*dt
}

// ClampToBounds constrains position to [lower, upper] and zeroes the
// velocity when the clamp engages. Velocity is only killed when it is
// actively driving the position further out of bounds; an
// already-corrected position is left alone so a later velocity toward
// the interior is not spuriously reset.
func ClampToBounds(position, velocity, lower, upper float64) (float64, float64) {
	if position < lower && velocity < 0 {
		return lower, 0
	}
	if position > upper && velocity > 0 {
		return upper, 0
	}
	return position, velocity
}

// Lerp linearly interpolates from a to b by t.
func Lerp(t, a, b float64) float64 {
	return a*(1-t) + b*t
}
