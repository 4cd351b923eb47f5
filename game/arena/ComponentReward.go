package arena

// Reward is an agent's ledger: written by every system, drained once per tick.
type Reward struct {
	pending  float64
	total    float64
	terminal bool
}

func (game ArenaGame) CastReward(data interface{}) *Reward {
	return data.(*Reward)
}

func (r *Reward) Add(value float64) {
	r.pending += value
	r.total += value
}

// Drain returns the reward accumulated since the previous drain.
func (r *Reward) Drain() float64 {
	value := r.pending
	r.pending = 0
	return value
}

func (r Reward) GetPending() float64 {
	return r.pending
}

func (r Reward) GetTotal() float64 {
	return r.total
}

// addTerminal credits value once per episode.
func (r *Reward) addTerminal(value float64) bool {
	if r.terminal {
		return false
	}

	r.terminal = true
	r.Add(value)
	return true
}
