package arena

type Perception struct {
	radius    float64
	agents    int
	obstacles int
	mana      int
}

func (game ArenaGame) CastPerception(data interface{}) *Perception {
	return data.(*Perception)
}

func (p Perception) GetRadius() float64 {
	return p.radius
}
