package scripted

import (
	"math"
	"sync"

	"github.com/jasontodev/NoxusIoniaRL/arenaserver/protocol"
	"github.com/jasontodev/NoxusIoniaRL/common/utils/vector"
	"github.com/jasontodev/NoxusIoniaRL/game/arena"
)

// Attractor orbits a pin point, fights the enemies that come in range and
// carries mana home in the mana variant.
type Attractor struct {
	layout    layout
	pincenter vector.Vector2
	radius    float64

	mu    sync.Mutex
	count map[arena.AgentKey]int
}

func NewAttractor(config arena.Config, pincenter vector.Vector2, radius float64) *Attractor {
	return &Attractor{
		layout:    makeLayout(config),
		pincenter: pincenter,
		radius:    radius,
		count:     make(map[arena.AgentKey]int),
	}
}

func (a *Attractor) next(key arena.AgentKey) int {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.count[key]++
	return a.count[key]
}

func (a *Attractor) home(team arena.Team) (arena.ZoneSpec, bool) {
	for _, zone := range a.layout.config.Layout.Zones {
		if zone.Team == team {
			return zone, true
		}
	}

	return arena.ZoneSpec{}, false
}

func (a *Attractor) Decide(key arena.AgentKey, perception protocol.AgentPerception) arena.Action {
	v, ok := a.layout.read(perception.Observation)
	if !ok {
		return arena.Action{}
	}

	cfg := a.layout.config
	count := a.next(key)

	if distance, ok := v.nearestEnemy(); ok && distance < cfg.AttackRange {
		return arena.Action{Type: arena.ActionAttack}
	}

	if a.layout.hasMana {
		if zone, ok := a.home(key.Team); ok && v.carrying {
			center := zone.Center.Vector()
			action := steer(v.position, center)

			if v.position.DistanceTo(center) < zone.Radius+cfg.InteractionRange {
				action.Type = arena.ActionInteract
			}

			return action
		}

		if len(v.mana) > 0 {
			action := steer(v.position, v.position.Add(v.mana[0]))
			if v.mana[0].Mag() < cfg.InteractionRange {
				action.Type = arena.ActionInteract
			}

			return action
		}
	}

	// update attractor
	phase := float64(count)/54.0 + float64(key.ID)*math.Pi
	target := a.pincenter.Add(vector.MakeVector2(
		a.radius*math.Cos(phase),
		a.radius*math.Sin(phase),
	))

	return steer(v.position, target)
}
