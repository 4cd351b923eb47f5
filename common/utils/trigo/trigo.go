package trigo

import "math"

// NormalizeDegrees maps an angle to [0, 360).
func NormalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}

	return a
}

// DeltaDegrees is the shortest signed rotation from a to b, in (-180, 180].
func DeltaDegrees(a, b float64) float64 {
	d := math.Mod(b-a, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}

	return d
}

// RotateTowards turns current towards target by at most maxDelta degrees
// along the shortest arc. The result is normalized.
func RotateTowards(current, target, maxDelta float64) float64 {
	delta := DeltaDegrees(current, target)

	if math.Abs(delta) <= maxDelta {
		return NormalizeDegrees(target)
	}

	if delta > 0 {
		return NormalizeDegrees(current + maxDelta)
	}

	return NormalizeDegrees(current - maxDelta)
}

func DegToRad(d float64) float64 {
	return d * math.Pi / 180.0
}

func RadToDeg(r float64) float64 {
	return r * 180.0 / math.Pi
}
