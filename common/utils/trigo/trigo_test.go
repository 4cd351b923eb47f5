package trigo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDegrees(t *testing.T) {
	assert.InDelta(t, 350, NormalizeDegrees(-10), 1e-9)
	assert.InDelta(t, 10, NormalizeDegrees(370), 1e-9)
	assert.InDelta(t, 0, NormalizeDegrees(360), 1e-9)
}

func TestDeltaDegreesTakesShortestArc(t *testing.T) {
	assert.InDelta(t, 20, DeltaDegrees(350, 10), 1e-9)
	assert.InDelta(t, -20, DeltaDegrees(10, 350), 1e-9)
	assert.InDelta(t, 180, DeltaDegrees(0, 180), 1e-9)
}

func TestRotateTowardsIsCapped(t *testing.T) {
	assert.InDelta(t, 9, RotateTowards(0, 90, 9), 1e-9)
	assert.InDelta(t, 351, RotateTowards(0, 270, 9), 1e-9)
	assert.InDelta(t, 90, RotateTowards(85, 90, 9), 1e-9)
}
