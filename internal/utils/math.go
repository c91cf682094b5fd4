// internal/utils/math.go
package utils

import "math"

// Lerp interpolates linearly between from and to.
func Lerp(from, to, t float64) float64 {
	return from + (to-from)*t
}

// Damp returns the step that moves current toward target by fraction.
// For 0 < fraction < 1 repeated steps never overshoot target.
func Damp(current, target, fraction float64) float64 {
	return Lerp(current, target, fraction) - current
}

// Clamp01 limits v to [0, 1].
func Clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(deg float64) float64 {
	return deg * math.Pi / 180
}
