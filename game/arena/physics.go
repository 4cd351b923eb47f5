package arena

import "github.com/jasontodev/NoxusIoniaRL/common/utils/vector"

// Body is a rigid body owned by the physics collaborator.
// Orientation is in radians, clockwise from +Z.
type Body interface {
	GetPosition() vector.Vector2
	SetPosition(position vector.Vector2)
	GetVelocity() vector.Vector2
	SetVelocity(velocity vector.Vector2)
	GetOrientation() float64
	SetOrientation(orientation float64)
	ApplyImpulse(impulse vector.Vector2)
	SetActive(active bool)
}

// PhysicalWorld integrates bodies; the arena only hands it desired velocities and impulses.
type PhysicalWorld interface {
	NewAgentBody(id string, position vector.Vector2, orientation float64, radius float64) Body
	NewObstacleBody(id string, position vector.Vector2, halfSize float64, mass float64) Body
	DestroyBody(body Body)
	Step(dt float64)
}
