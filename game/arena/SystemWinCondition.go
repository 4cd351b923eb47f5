package arena

// eliminated holds when the roster is non-empty and every member is dead.
func (game *ArenaGame) eliminated(team Team) bool {
	roster := game.rosters[team]
	if len(roster) == 0 {
		return false
	}

	for _, a := range roster {
		if a.alive() {
			return false
		}
	}

	return true
}

func (game *ArenaGame) eliminatedOrEmpty(team Team) bool {
	return len(game.rosters[team]) == 0 || game.eliminated(team)
}

// systemWinCondition reports the decided outcome, or nil while the episode goes on.
// Noxus is always checked first.
func systemWinCondition(game *ArenaGame) *Outcome {
	if game.eliminated(Ionia) {
		return &Outcome{Winner: Noxus, HasWinner: true, Reason: ReasonElimination}
	}

	if game.eliminated(Noxus) {
		return &Outcome{Winner: Ionia, HasWinner: true, Reason: ReasonElimination}
	}

	if game.config.Variant == VariantMana {
		threshold := game.config.ManaWinThreshold
		for _, team := range Teams {
			own, other := game.banked[team], game.banked[team.Opponent()]
			if own >= threshold && own > other {
				return &Outcome{Winner: team, HasWinner: true, Reason: ReasonMana}
			}
		}
	}

	return nil
}

func systemTimeout(game *ArenaGame) *Outcome {
	outcome := &Outcome{Reason: ReasonTimeout}

	if game.config.Variant == VariantMana {
		own, other := game.banked[Noxus], game.banked[Ionia]
		switch {
		case own > other:
			outcome.Winner, outcome.HasWinner = Noxus, true
		case other > own:
			outcome.Winner, outcome.HasWinner = Ionia, true
		}

		return outcome
	}

	switch {
	case game.eliminatedOrEmpty(Ionia):
		outcome.Winner = Noxus
	case game.eliminatedOrEmpty(Noxus):
		outcome.Winner = Ionia
	default:
		// Survival objective: the configured side wins when nobody is wiped out
		outcome.Winner = game.config.TimeoutWinner
	}

	outcome.HasWinner = true
	return outcome
}
