package arena

import "github.com/jasontodev/NoxusIoniaRL/common/utils/vector"

type Steering struct {
	velocity     vector.Vector2 // smoothed velocity handed to the body
	idleTime     float64
	lastPosition vector.Vector2
}

func NewSteering(position vector.Vector2) *Steering {
	return &Steering{
		velocity:     vector.MakeNullVector2(),
		lastPosition: position,
	}
}

func (game ArenaGame) CastSteering(data interface{}) *Steering {
	return data.(*Steering)
}

func (s Steering) GetVelocity() vector.Vector2 {
	return s.velocity
}

func (s Steering) GetIdleTime() float64 {
	return s.idleTime
}
