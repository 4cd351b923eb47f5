package arena

import "github.com/jasontodev/NoxusIoniaRL/common/utils/vector"

// Attack makes attacker strike target. It is rejected, without any state
// change, when either agent is dead or unknown, when they are teammates or
// when the attacker's cooldown has not elapsed.
func (game *ArenaGame) Attack(attacker AgentKey, target AgentKey) bool {
	if game.state != StateActive {
		return false
	}

	return game.attack(game.agentsByKey[attacker], game.agentsByKey[target])
}

// Heal adds amount HP to an agent through its fractional accumulator.
func (game *ArenaGame) Heal(key AgentKey, amount float64) bool {
	a, ok := game.agentsByKey[key]
	if !ok || game.state != StateActive || !a.alive() || !(amount > 0) {
		return false
	}

	a.health.heal(amount)
	return true
}

func (game *ArenaGame) attack(attacker *agent, target *agent) bool {
	if attacker == nil || target == nil || attacker == target {
		return false
	}

	if !attacker.alive() || !target.alive() {
		return false
	}

	if attacker.player.GetTeam() == target.player.GetTeam() {
		return false
	}

	now := game.now()
	if !attacker.combat.CanAttack(now, game.config.AttackCooldown) {
		return false
	}

	attacker.combat.lastAttack = now
	killed := target.health.damage(game.config.AttackDamage)

	game.emit(Event{
		Type:   EventAttack,
		Agent:  attacker.key().String(),
		Target: target.key().String(),
		Damage: game.config.AttackDamage,
	})

	if killed {
		game.onDeath(target, attacker)
	}

	return true
}

// onDeath runs once, on the damage that brought the victim to zero.
func (game *ArenaGame) onDeath(victim *agent, killer *agent) {
	victim.reward.Add(game.config.Rewards.Death)
	game.deaths[victim.player.GetTeam()]++

	position := victim.physical.GetPosition()
	if victim.carrier != nil {
		game.dropCarried(victim, position)
	}

	victim.steering.velocity = vector.MakeNullVector2()
	victim.physical.SetVelocity(vector.MakeNullVector2())
	victim.physical.GetBody().SetActive(false)
	game.spatialDirty = true

	event := Event{
		Type:  EventDeath,
		Agent: victim.key().String(),
	}

	if killer != nil {
		event.Killer = killer.key().String()
	}

	game.emit(event)
}
