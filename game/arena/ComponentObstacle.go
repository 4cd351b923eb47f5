package arena

import "github.com/jasontodev/NoxusIoniaRL/common/utils/vector"

type Obstacle struct {
	start           vector.Vector2
	halfSize        float64
	pushForce       float64
	maxPushDistance float64
}

func (game ArenaGame) CastObstacle(data interface{}) *Obstacle {
	return data.(*Obstacle)
}

func (o Obstacle) GetStart() vector.Vector2 {
	return o.start
}

func (o Obstacle) GetHalfSize() float64 {
	return o.halfSize
}

// CanBePushed holds while the obstacle stays close to its start position.
func (o Obstacle) CanBePushed(position vector.Vector2) bool {
	return position.DistanceTo(o.start) < o.maxPushDistance
}
