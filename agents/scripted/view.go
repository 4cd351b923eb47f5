package scripted

import (
	"github.com/jasontodev/NoxusIoniaRL/common/utils/vector"
	"github.com/jasontodev/NoxusIoniaRL/game/arena"
)

// layout locates the sections of an observation vector.
type layout struct {
	config  arena.Config
	self    int
	agents  int
	stride  int
	mana    int
	hasMana bool
}

func makeLayout(config arena.Config) layout {
	l := layout{
		config:  config,
		self:    7,
		stride:  3,
		hasMana: config.Variant == arena.VariantMana,
	}

	if l.hasMana {
		l.self = 8
		l.stride = 4
	}

	l.agents = l.self
	l.mana = l.agents + l.stride*config.NearestAgents

	return l
}

type neighbor struct {
	distance float64
	teammate bool
	health   float64
}

type view struct {
	position vector.Vector2
	carrying bool
	agents   []neighbor
	mana     []vector.Vector2 // offsets to the visible mana
}

func (l layout) read(observation []float64) (view, bool) {
	if len(observation) < l.mana || observation[0] <= 0 {
		// dead or malformed
		return view{}, false
	}

	cfg := l.config
	v := view{
		position: vector.MakeVector2(observation[3]*cfg.PositionScale, observation[4]*cfg.PositionScale),
	}

	if l.hasMana {
		v.carrying = observation[7] > 0
	}

	for slot := 0; slot < cfg.NearestAgents; slot++ {
		offset := l.agents + slot*l.stride
		if observation[offset] >= 1 {
			break
		}

		v.agents = append(v.agents, neighbor{
			distance: observation[offset] * cfg.ObservationRadius,
			teammate: observation[offset+1] > 0.5,
			health:   observation[offset+2],
		})
	}

	if l.hasMana && len(observation) >= l.mana+3*cfg.NearestMana {
		for slot := 0; slot < cfg.NearestMana; slot++ {
			offset := l.mana + slot*3
			if observation[offset] >= 1 {
				break
			}

			direction := vector.MakeVector2(observation[offset+1], observation[offset+2])
			v.mana = append(v.mana, direction.MultScalar(observation[offset]*cfg.ObservationRadius))
		}
	}

	return v, true
}

// nearestEnemy returns the distance to the closest visible opponent.
func (v view) nearestEnemy() (float64, bool) {
	for _, n := range v.agents {
		if !n.teammate {
			return n.distance, true
		}
	}

	return 0, false
}

func steer(from vector.Vector2, to vector.Vector2) arena.Action {
	desired := to.Sub(from)
	if desired.Mag() > 1 {
		desired = desired.Normalize()
	}

	return arena.Action{MoveX: desired.GetX(), MoveZ: desired.GetY()}
}
