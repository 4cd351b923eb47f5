package scripted

import (
	"math/rand"
	"sync"

	"github.com/jasontodev/NoxusIoniaRL/arenaserver/protocol"
	"github.com/jasontodev/NoxusIoniaRL/common/utils/vector"
	"github.com/jasontodev/NoxusIoniaRL/game/arena"
)

// Random walks in a random direction, changing it from time to time, and
// fires random commands.
type Random struct {
	layout layout

	mu         sync.Mutex
	rng        *rand.Rand
	directions map[arena.AgentKey]vector.Vector2

	TurnProbability     float64
	AttackProbability   float64
	InteractProbability float64
}

func NewRandom(config arena.Config, seed int64) *Random {
	return &Random{
		layout:     makeLayout(config),
		rng:        rand.New(rand.NewSource(seed)),
		directions: make(map[arena.AgentKey]vector.Vector2),

		TurnProbability:     0.05,
		AttackProbability:   0.1,
		InteractProbability: 0.05,
	}
}

func (r *Random) Decide(key arena.AgentKey, perception protocol.AgentPerception) arena.Action {
	if _, ok := r.layout.read(perception.Observation); !ok {
		return arena.Action{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	direction, ok := r.directions[key]
	if !ok || r.rng.Float64() < r.TurnProbability {
		direction = vector.MakeRandomVector2(r.rng)
		r.directions[key] = direction
	}

	action := arena.Action{
		MoveX: direction.GetX(),
		MoveZ: direction.GetY(),
	}

	switch roll := r.rng.Float64(); {
	case roll < r.AttackProbability:
		action.Type = arena.ActionAttack
	case roll < r.AttackProbability+r.InteractProbability:
		action.Type = arena.ActionInteract
	}

	return action
}
