package arena

func systemIdle(game *ArenaGame, dt float64) {
	cfg := game.config

	for _, team := range Teams {
		for _, a := range game.rosters[team] {
			if !a.alive() {
				continue
			}

			position := a.physical.GetPosition()

			if position.DistanceTo(a.steering.lastPosition) < cfg.IdleDistance {
				a.steering.idleTime += dt
				if a.steering.idleTime > cfg.IdleGrace {
					a.reward.Add(cfg.Rewards.Idle * dt)
				}
			} else {
				a.steering.idleTime = 0
			}

			a.steering.lastPosition = position
		}
	}
}
