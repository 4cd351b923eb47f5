package arena

import "github.com/jasontodev/NoxusIoniaRL/common/utils/trigo"

// newEntityAgent spawns an agent at its slot, facing the arena center.
func (game *ArenaGame) newEntityAgent(key AgentKey, slot Point) *agent {
	position := slot.Vector()
	heading := position.MultScalar(-1).Heading()

	body := game.world.NewAgentBody(key.String(), position, trigo.DegToRad(heading), game.config.AgentRadius)

	a := &agent{
		entity: game.manager.NewEntity(),
		player: &Player{
			key: key,
		},
		health: NewHealth(game.config.MaxHealth),
		combat: NewCombat(game.config.AttackCooldown),
		physical: &PhysicalBody{
			body:   body,
			radius: game.config.AgentRadius,
		},
		steering: NewSteering(position),
		perception: &Perception{
			radius:    game.config.ObservationRadius,
			agents:    game.config.NearestAgents,
			obstacles: game.config.NearestObstacles,
			mana:      game.config.NearestMana,
		},
		reward: &Reward{},
	}

	a.entity.
		AddComponent(game.playerComponent, a.player).
		AddComponent(game.healthComponent, a.health).
		AddComponent(game.combatComponent, a.combat).
		AddComponent(game.physicalBodyComponent, a.physical).
		AddComponent(game.steeringComponent, a.steering).
		AddComponent(game.perceptionComponent, a.perception).
		AddComponent(game.rewardComponent, a.reward)

	if game.config.Variant == VariantMana {
		a.carrier = NewCarrier(game.config.ManaCapacity)
		a.entity.AddComponent(game.carrierComponent, a.carrier)
	}

	return a
}
