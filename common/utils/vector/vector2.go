package vector

import (
	"encoding/json"
	"math"
	"math/rand"
	"strconv"

	"github.com/ByteArena/box2d"
	"github.com/jasontodev/NoxusIoniaRL/common/utils/number"
)

// Vector2 is a point or direction on the arena ground plane.
// Y is the forward axis, so headings grow clockwise from +Y.
type Vector2 struct {
	x float64
	y float64
}

func MakeVector2(x float64, y float64) Vector2 {
	return Vector2{x, y}
}

func MakeNullVector2() Vector2 {
	return MakeVector2(0, 0)
}

// MakeRandomVector2 returns a random unit vector drawn from rng.
func MakeRandomVector2(rng *rand.Rand) Vector2 {
	radians := rng.Float64() * math.Pi * 2
	return MakeVector2(math.Cos(radians), math.Sin(radians))
}

// FromHeading returns the unit vector pointing along a heading in degrees.
func FromHeading(degrees float64) Vector2 {
	radians := degrees * math.Pi / 180.0
	return MakeVector2(math.Sin(radians), math.Cos(radians))
}

func (v Vector2) Get() (float64, float64) {
	return v.x, v.y
}

func (v Vector2) GetX() float64 {
	return v.x
}

func (v Vector2) GetY() float64 {
	return v.y
}

var floatformat = byte('f')

func (v Vector2) MarshalJSON() ([]byte, error) {
	b := []byte{'['}
	b = strconv.AppendFloat(b, v.x, floatformat, 4, 64)
	b = append(b, byte(','))
	b = strconv.AppendFloat(b, v.y, floatformat, 4, 64)
	return append(b, byte(']')), nil
}

func (v *Vector2) UnmarshalJSON(data []byte) error {
	var pair [2]float64
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}

	v.x, v.y = pair[0], pair[1]
	return nil
}

func (a Vector2) Add(b Vector2) Vector2 {
	a.x += b.x
	a.y += b.y
	return a
}

func (a Vector2) Sub(b Vector2) Vector2 {
	a.x -= b.x
	a.y -= b.y
	return a
}

func (a Vector2) MultScalar(f float64) Vector2 {
	a.x *= f
	a.y *= f
	return a
}

func (a Vector2) DivScalar(f float64) Vector2 {
	a.x /= f
	a.y /= f
	return a
}

func (a Vector2) Mag() float64 {
	return math.Sqrt(a.MagSq())
}

func (a Vector2) MagSq() float64 {
	return a.x*a.x + a.y*a.y
}

func (a Vector2) Normalize() Vector2 {
	mag := a.Mag()
	if mag > 0 {
		return a.DivScalar(mag)
	}
	return a
}

func (a Vector2) SetMag(mag float64) Vector2 {
	return a.Normalize().MultScalar(mag)
}

func (a Vector2) Limit(max float64) Vector2 {
	if a.MagSq() > max*max {
		return a.Normalize().MultScalar(max)
	}

	return a
}

// DistanceTo is the euclidean distance between two points.
func (a Vector2) DistanceTo(b Vector2) float64 {
	return b.Sub(a).Mag()
}

// MoveTowards steps a towards target by at most maxDelta without overshooting.
func (a Vector2) MoveTowards(target Vector2, maxDelta float64) Vector2 {
	diff := target.Sub(a)
	dist := diff.Mag()

	if dist <= maxDelta || dist == 0 {
		return target
	}

	return a.Add(diff.DivScalar(dist).MultScalar(maxDelta))
}

// Angle returns the heading of the vector in radians, clockwise from +Y, in [0, 2π).
func (a Vector2) Angle() float64 {
	if a.x == 0 && a.y == 0 {
		return 0
	}

	angle := math.Pi/2.0 - math.Atan2(a.y, a.x)

	if angle < 0 {
		angle += 2 * math.Pi
	}

	if angle >= 2*math.Pi {
		angle -= 2 * math.Pi
	}

	return angle
}

// Heading is Angle expressed in degrees.
func (a Vector2) Heading() float64 {
	return a.Angle() * 180.0 / math.Pi
}

func (a Vector2) Cross(v Vector2) float64 {
	return a.x*v.y - a.y*v.x
}

func (a Vector2) Dot(v Vector2) float64 {
	return a.x*v.x + a.y*v.y
}

func (a Vector2) IsNull() bool {
	return number.IsZero(a.x) && number.IsZero(a.y)
}

func (a Vector2) Equals(b Vector2) bool {
	return b.Sub(a).IsNull()
}

func (a Vector2) String() string {
	return "<Vector2(" + number.FloatToStr(a.x, 5) + ", " + number.FloatToStr(a.y, 5) + ")>"
}

func (a Vector2) ToB2Vec2() box2d.B2Vec2 {
	return box2d.MakeB2Vec2(a.GetX(), a.GetY())
}

func FromB2Vec2(v box2d.B2Vec2) Vector2 {
	return MakeVector2(v.X, v.Y)
}
