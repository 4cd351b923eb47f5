package arena

import "github.com/jasontodev/NoxusIoniaRL/common/utils/vector"

// ManaCounts splits the items created at episode start by state.
type ManaCounts struct {
	Banked  int
	Carried int
	Loose   int
	Total   int
}

func (game *ArenaGame) ManaCounts() ManaCounts {
	counts := ManaCounts{
		Total: game.manaTotal,
	}

	for _, entityresult := range game.manaView.Get() {
		switch game.CastManaItem(entityresult.Components[game.manaComponent]).GetState() {
		case ManaBanked:
			counts.Banked++
		case ManaCarried:
			counts.Carried++
		case ManaLoose:
			counts.Loose++
		}
	}

	return counts
}

// interact tries pickup, then deposit, then push; the first that applies wins.
func (game *ArenaGame) interact(a *agent) bool {
	if game.config.Variant == VariantMana {
		if game.pickup(a) {
			return true
		}

		if game.deposit(a) {
			return true
		}
	}

	return game.push(a)
}

func (game *ArenaGame) pickup(a *agent) bool {
	if a.carrier == nil || !a.alive() || a.carrier.IsFull() {
		return false
	}

	items := game.nearby(a.physical.GetPosition(), game.config.InteractionRange, KindMana, nil)

	for _, candidate := range items {
		item := game.manaItem(candidate.ID)
		if item == nil || !item.claim(a.entity.GetID()) {
			continue
		}

		a.carrier.take(candidate.ID)
		a.reward.Add(game.config.Rewards.Pickup)
		game.spatialDirty = true

		game.emit(Event{
			Type:   EventPickup,
			Agent:  a.key().String(),
			Amount: 1,
		})

		return true
	}

	return false
}

func (game *ArenaGame) deposit(a *agent) bool {
	if a.carrier == nil || !a.alive() || a.carrier.GetCarried() == 0 {
		return false
	}

	team := a.player.GetTeam()
	zone := game.zoneFor(team)
	if zone == nil || !zone.InReach(a.physical.GetPosition(), game.config.InteractionRange) {
		return false
	}

	ids := a.carrier.release()
	for _, id := range ids {
		if item := game.manaItem(id); item != nil {
			item.bank()
		}
	}

	amount := len(ids)
	game.banked[team] += amount
	zone.deposit(amount)
	a.reward.Add(game.config.Rewards.Deposit * float64(amount))

	game.emit(Event{
		Type:   EventDeposit,
		Agent:  a.key().String(),
		Amount: amount,
	})

	return true
}

func (game *ArenaGame) dropCarried(a *agent, position vector.Vector2) {
	for _, id := range a.carrier.release() {
		if item := game.manaItem(id); item != nil {
			item.drop(position)
		}
	}

	game.spatialDirty = true
}

// push shoves the nearest obstacle in reach along the agent's velocity.
func (game *ArenaGame) push(a *agent) bool {
	velocity := a.physical.GetVelocity()
	if velocity.IsNull() {
		return false
	}

	obstacles := game.nearby(a.physical.GetPosition(), game.config.InteractionRange, KindObstacle, nil)
	if len(obstacles) == 0 {
		return false
	}

	entityresult := game.getEntity(obstacles[0].ID, game.obstacleComponent, game.physicalBodyComponent)
	if entityresult == nil {
		return false
	}

	obstacleAspect := game.CastObstacle(entityresult.Components[game.obstacleComponent])
	physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

	if !obstacleAspect.CanBePushed(physicalAspect.GetPosition()) {
		return false
	}

	physicalAspect.GetBody().ApplyImpulse(velocity.Normalize().MultScalar(obstacleAspect.pushForce))
	return true
}
