package vector

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngleIsClockwiseFromForward(t *testing.T) {
	assert.InDelta(t, 0, MakeVector2(0, 1).Angle(), 1e-9)
	assert.InDelta(t, math.Pi/2, MakeVector2(1, 0).Angle(), 1e-9)
	assert.InDelta(t, math.Pi, MakeVector2(0, -1).Angle(), 1e-9)
	assert.InDelta(t, 270, MakeVector2(-1, 0).Heading(), 1e-9)
	assert.Equal(t, 0.0, MakeNullVector2().Angle())
}

func TestFromHeadingRoundTrip(t *testing.T) {
	for _, h := range []float64{0, 45, 90, 180, 300} {
		assert.InDelta(t, h, FromHeading(h).Heading(), 1e-6)
	}
}

func TestMoveTowards(t *testing.T) {
	a := MakeVector2(0, 0)
	b := MakeVector2(10, 0)

	assert.True(t, a.MoveTowards(b, 3).Equals(MakeVector2(3, 0)))
	assert.True(t, a.MoveTowards(b, 30).Equals(b))
	assert.True(t, b.MoveTowards(b, 1).Equals(b))
}

func TestLimit(t *testing.T) {
	v := MakeVector2(3, 4)
	assert.InDelta(t, 1, v.Limit(1).Mag(), 1e-9)
	assert.True(t, v.Limit(10).Equals(v))
}

func TestDistanceTo(t *testing.T) {
	assert.InDelta(t, 5, MakeVector2(1, 1).DistanceTo(MakeVector2(4, 5)), 1e-9)
}

func TestJSON(t *testing.T) {
	data, err := json.Marshal(MakeVector2(1.5, -2))
	assert.Nil(t, err)
	assert.Equal(t, "[1.5000,-2.0000]", string(data))

	var v Vector2
	assert.Nil(t, json.Unmarshal([]byte("[3,4]"), &v))
	assert.True(t, v.Equals(MakeVector2(3, 4)))
}
