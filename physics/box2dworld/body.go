package box2dworld

import (
	"github.com/ByteArena/box2d"
	"github.com/jasontodev/NoxusIoniaRL/common/types"
	"github.com/jasontodev/NoxusIoniaRL/common/utils/vector"
)

// Body wraps a box2d body; it implements arena.Body.
type Body struct {
	body *box2d.B2Body
}

func (b *Body) GetB2Body() *box2d.B2Body {
	return b.body
}

func (b *Body) GetDescriptor() types.PhysicalBodyDescriptor {
	descriptor, _ := b.body.GetUserData().(types.PhysicalBodyDescriptor)
	return descriptor
}

func (b *Body) GetPosition() vector.Vector2 {
	return vector.FromB2Vec2(b.body.GetPosition())
}

func (b *Body) SetPosition(position vector.Vector2) {
	b.body.SetTransform(position.ToB2Vec2(), b.body.GetAngle())
}

func (b *Body) GetVelocity() vector.Vector2 {
	return vector.FromB2Vec2(b.body.GetLinearVelocity())
}

func (b *Body) SetVelocity(velocity vector.Vector2) {
	b.body.SetLinearVelocity(velocity.ToB2Vec2())
}

func (b *Body) GetOrientation() float64 {
	return b.body.GetAngle()
}

func (b *Body) SetOrientation(orientation float64) {
	// Could also be implemented using torque; bodies have a fixed rotation here
	b.body.SetTransform(b.body.GetPosition(), orientation)
}

func (b *Body) ApplyImpulse(impulse vector.Vector2) {
	b.body.ApplyLinearImpulse(impulse.ToB2Vec2(), b.body.GetWorldCenter(), true)
}

// SetActive(false) takes the body out of the simulation and of every contact.
func (b *Body) SetActive(active bool) {
	b.body.SetActive(active)
}
