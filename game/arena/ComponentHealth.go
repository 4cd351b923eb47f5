package arena

import "math"

// Health holds integer life points. life == 0 iff dead; a dead Health never changes.
type Health struct {
	maxLife   int
	life      int
	dead      bool
	remainder float64 // fractional healing not applied yet, in [0, 1)
}

func NewHealth(maxlife int) *Health {
	return &Health{
		maxLife: maxlife,
		life:    maxlife,
	}
}

func (game ArenaGame) CastHealth(data interface{}) *Health {
	return data.(*Health)
}

func (health Health) GetMaxLife() int {
	return health.maxLife
}

func (health Health) GetLife() int {
	return health.life
}

func (health Health) IsDead() bool {
	return health.dead
}

func (health Health) GetRemainder() float64 {
	return health.remainder
}

// damage returns true only on the call that brings life to zero.
func (health *Health) damage(amount int) bool {
	if health.dead || amount <= 0 {
		return false
	}

	health.life -= amount
	if health.life > 0 {
		return false
	}

	health.life = 0
	health.dead = true
	health.remainder = 0

	return true
}

// heal accumulates amount and applies its integer part; it returns the life points gained.
func (health *Health) heal(amount float64) int {
	if health.dead || !(amount > 0) || math.IsInf(amount, 0) {
		return 0
	}

	health.remainder += amount
	if health.remainder < 1 {
		return 0
	}

	whole := math.Floor(health.remainder)
	health.remainder -= whole

	before := health.life
	life := float64(health.life) + whole
	if life > float64(health.maxLife) {
		life = float64(health.maxLife)
	}
	health.life = int(life)

	return health.life - before
}
