package arena

func systemActions(game *ArenaGame, actions map[AgentKey]Action, dt float64) {
	for _, team := range Teams {
		for _, a := range game.rosters[team] {
			if !a.alive() {
				// Dead agents are frozen; their actions are never decoded
				continue
			}

			action := actions[a.key()]

			// Ordering actions
			// Discrete commands are resolved from the agent's position and
			// velocity before this tick's movement.
			a.combat.defending = false
			game.dispatchCommand(a, action)

			systemSteering(game, a, action, dt)
		}
	}
}

func (game *ArenaGame) dispatchCommand(a *agent, action Action) bool {
	switch action.Type {
	case ActionInteract:
		return game.interact(a)
	case ActionAttack:
		return game.attackNearest(a)
	case ActionDefend:
		a.combat.defending = true
		return true
	case ActionSignal:
		intent := action.Intent
		game.emit(Event{
			Type:   EventSignal,
			Agent:  a.key().String(),
			Intent: &intent,
		})
		return true
	}

	return false
}

// attackNearest strikes the nearest live enemy in attack range among the observable agents.
func (game *ArenaGame) attackNearest(a *agent) bool {
	position := a.physical.GetPosition()
	candidates := game.nearby(position, a.perception.GetRadius(), KindAgent, game.liveOthers(a))

	for _, candidate := range candidates {
		if candidate.Distance >= game.config.AttackRange {
			break
		}

		target := game.agentsByID[candidate.ID]
		if target.player.GetTeam() == a.player.GetTeam() {
			continue
		}

		return game.attack(a, target)
	}

	return false
}
