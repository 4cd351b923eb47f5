package arena

func systemHealZones(game *ArenaGame, dt float64) {
	for _, team := range Teams {
		zone := game.zoneFor(team)
		if zone == nil || zone.GetHealRate() <= 0 {
			continue
		}

		for _, a := range game.rosters[team] {
			if !a.alive() {
				continue
			}

			if zone.Contains(a.physical.GetPosition()) {
				a.health.heal(zone.GetHealRate() * dt)
			}
		}
	}
}
