package arena

import (
	"github.com/jasontodev/NoxusIoniaRL/common/utils/trigo"
	"github.com/jasontodev/NoxusIoniaRL/common/utils/vector"
)

func (game ArenaGame) CastPhysicalBody(data interface{}) *PhysicalBody {
	return data.(*PhysicalBody)
}

type PhysicalBody struct {
	body   Body
	radius float64
}

func (p *PhysicalBody) GetBody() Body {
	return p.body
}

func (p PhysicalBody) GetPosition() vector.Vector2 {
	return p.body.GetPosition()
}

func (p *PhysicalBody) SetPosition(v vector.Vector2) *PhysicalBody {
	p.body.SetPosition(v)
	return p
}

func (p PhysicalBody) GetVelocity() vector.Vector2 {
	return p.body.GetVelocity()
}

func (p *PhysicalBody) SetVelocity(v vector.Vector2) *PhysicalBody {
	p.body.SetVelocity(v)
	return p
}

func (p PhysicalBody) GetOrientation() float64 {
	return p.body.GetOrientation()
}

// GetHeading is the orientation in degrees, in [0, 360).
func (p PhysicalBody) GetHeading() float64 {
	return trigo.NormalizeDegrees(trigo.RadToDeg(p.body.GetOrientation()))
}

func (p *PhysicalBody) SetHeading(degrees float64) *PhysicalBody {
	p.body.SetOrientation(trigo.DegToRad(trigo.NormalizeDegrees(degrees)))
	return p
}

func (p PhysicalBody) GetRadius() float64 {
	return p.radius
}
