package common

import "math"

// TPS is the fixed simulation rate. Everything time based is counted in ticks.
const TPS = 60

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

// Frames converts a duration in seconds to whole ticks, rounding to nearest.
func Frames(seconds float64) int {
	if seconds <= 0 {
		return 0
	}
	return int(math.Round(seconds * TPS))
}
