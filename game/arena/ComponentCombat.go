package arena

import "github.com/jasontodev/NoxusIoniaRL/common/utils/number"

type Combat struct {
	lastAttack float64 // episode time of the last landed attack
	defending  bool
}

// NewCombat makes the first attack available right away.
func NewCombat(cooldown float64) *Combat {
	return &Combat{
		lastAttack: -cooldown,
	}
}

func (game ArenaGame) CastCombat(data interface{}) *Combat {
	return data.(*Combat)
}

func (c Combat) CanAttack(now float64, cooldown float64) bool {
	return now-c.lastAttack >= cooldown
}

// CooldownFraction is 1 when an attack is available, 0 right after one.
func (c Combat) CooldownFraction(now float64, cooldown float64) float64 {
	if cooldown <= 0 {
		return 1
	}

	return number.Clamp01((now - c.lastAttack) / cooldown)
}

func (c Combat) IsDefending() bool {
	return c.defending
}
