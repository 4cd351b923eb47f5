package arena

// ObservationSize is the fixed length of every vector returned by Observe.
func (game *ArenaGame) ObservationSize() int {
	return game.config.ObservationSize()
}

// Observe builds a fresh observation for an agent. Dead or unknown agents
// get an all-zero vector of the same length.
func (game *ArenaGame) Observe(key AgentKey) []float64 {
	observation := make([]float64, game.ObservationSize())

	a, ok := game.agentsByKey[key]
	if !ok || !a.alive() || game.episode == nil {
		return observation
	}

	encoder := &observationEncoder{out: observation}
	game.encodeSelf(encoder, a)
	game.encodeAgents(encoder, a)

	if game.config.Variant == VariantMana {
		game.encodeMana(encoder, a)
	}

	game.encodeObstacles(encoder, a)
	game.encodeZones(encoder, a)
	game.encodeGlobals(encoder, a)

	return observation
}

type observationEncoder struct {
	out []float64
	pos int
}

func (e *observationEncoder) put(values ...float64) {
	for _, v := range values {
		e.out[e.pos] = v
		e.pos++
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}

	return 0
}

func (game *ArenaGame) encodeSelf(e *observationEncoder, a *agent) {
	cfg := game.config
	position := a.physical.GetPosition()

	e.put(
		float64(a.health.GetLife())/float64(a.health.GetMaxLife()),
		a.combat.CooldownFraction(game.now(), cfg.AttackCooldown),
		boolToFloat(a.player.GetTeam() == Noxus),
		position.GetX()/cfg.PositionScale,
		position.GetY()/cfg.PositionScale,
		a.physical.GetHeading()/360.0,
		a.physical.GetVelocity().Mag()/cfg.MoveSpeed,
	)

	if a.carrier != nil {
		e.put(float64(a.carrier.GetCarried()) / float64(a.carrier.GetCapacity()))
	}
}

func (game *ArenaGame) encodeAgents(e *observationEncoder, a *agent) {
	mana := game.config.Variant == VariantMana
	radius := a.perception.GetRadius()
	neighbors := game.nearby(a.physical.GetPosition(), radius, KindAgent, game.liveOthers(a))

	for slot := 0; slot < a.perception.agents; slot++ {
		if slot >= len(neighbors) {
			e.put(1, 0, 0)
			if mana {
				e.put(0)
			}
			continue
		}

		neighbor := neighbors[slot]
		other := game.agentsByID[neighbor.ID]

		e.put(
			neighbor.Distance/radius,
			boolToFloat(other.player.GetTeam() == a.player.GetTeam()),
			float64(other.health.GetLife())/float64(other.health.GetMaxLife()),
		)

		if mana {
			e.put(boolToFloat(other.carrier != nil && other.carrier.GetCarried() > 0))
		}
	}
}

func (game *ArenaGame) encodeMana(e *observationEncoder, a *agent) {
	radius := a.perception.GetRadius()
	position := a.physical.GetPosition()
	items := game.nearby(position, radius, KindMana, nil)

	for slot := 0; slot < a.perception.mana; slot++ {
		if slot >= len(items) {
			e.put(1, 0, 0)
			continue
		}

		direction := items[slot].Position.Sub(position).Normalize()
		e.put(items[slot].Distance/radius, direction.GetX(), direction.GetY())
	}
}

func (game *ArenaGame) encodeObstacles(e *observationEncoder, a *agent) {
	radius := a.perception.GetRadius()
	obstacles := game.nearby(a.physical.GetPosition(), radius, KindObstacle, nil)

	for slot := 0; slot < a.perception.obstacles; slot++ {
		if slot >= len(obstacles) {
			e.put(1, 0)
			continue
		}

		speed := 0.0
		if entityresult := game.getEntity(obstacles[slot].ID, game.physicalBodyComponent); entityresult != nil {
			speed = game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent]).GetVelocity().Mag()
		}

		e.put(obstacles[slot].Distance/radius, speed/game.config.ObstacleSpeedScale)
	}
}

func (game *ArenaGame) encodeZones(e *observationEncoder, a *agent) {
	position := a.physical.GetPosition()
	team := a.player.GetTeam()

	for _, zone := range []*Zone{game.zoneFor(team), game.zoneFor(team.Opponent())} {
		if zone == nil {
			e.put(1)
			continue
		}

		e.put(position.DistanceTo(zone.GetCenter()) / game.config.PositionScale)
	}
}

func (game *ArenaGame) encodeGlobals(e *observationEncoder, a *agent) {
	cfg := game.config

	if cfg.Variant == VariantMana {
		team := a.player.GetTeam()
		threshold := float64(cfg.ManaWinThreshold)
		e.put(float64(game.banked[team])/threshold, float64(game.banked[team.Opponent()])/threshold)
	} else {
		e.put(0, 0)
	}

	e.put(game.TimeRemaining() / cfg.MaxDuration)
}

