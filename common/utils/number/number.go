package number

import (
	"math"
	"strconv"
	"time"
)

var epsilon = 0.000001

func IsZero(f float64) bool {
	return math.Abs(f) < epsilon
}

func ToFixed(val float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	digit := pow * val
	_, div := math.Modf(digit)

	var round float64
	if div >= 0.5 {
		round = math.Ceil(digit)
	} else {
		round = math.Floor(digit)
	}

	return round / pow
}

func FloatToStr(f float64, precision int) string {
	return strconv.FormatFloat(f, 'f', precision, 64)
}

// Clamp bounds f to [min, max].
func Clamp(f, min, max float64) float64 {
	if f < min {
		return min
	}

	if f > max {
		return max
	}

	return f
}

// Clamp01 bounds f to [0, 1]; NaN becomes 0.
func Clamp01(f float64) float64 {
	if math.IsNaN(f) {
		return 0
	}

	return Clamp(f, 0, 1)
}

func DurationMs(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1000000.0
}
