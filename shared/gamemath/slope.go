package gamemath

import "math"

// RampSurfaceY returns the height of a ramp surface at coordinate at along
// its rise axis. lo and hi bound the ramp on that axis; rising says whether
// the surface climbs toward hi.
func RampSurfaceY(at, lo, hi, baseY, height float64, rising bool) float64 {
	run := hi - lo
	if run <= 0 {
		return baseY + height
	}
	t := math.Max(0, math.Min(1, (at-lo)/run))
	if !rising {
		t = 1 - t
	}
	return baseY + height*t
}

// RampAngle is the incline of a ramp in degrees.
func RampAngle(run, height float64) float64 {
	if run <= 0 {
		return 90
	}
	return math.Atan2(height, run) * 180 / math.Pi
}
