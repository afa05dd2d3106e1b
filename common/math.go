package common

// Gravity is the downward acceleration in pixels/s^2 (screen coordinates,
// y grows down).
const Gravity = 1200.0

// Base render resolution.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
