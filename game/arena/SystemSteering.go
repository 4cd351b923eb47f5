package arena

import (
	"github.com/jasontodev/NoxusIoniaRL/common/utils/number"
	"github.com/jasontodev/NoxusIoniaRL/common/utils/trigo"
	"github.com/jasontodev/NoxusIoniaRL/common/utils/vector"
)

const minMoveInput = 0.00001

func systemSteering(game *ArenaGame, a *agent, action Action, dt float64) {
	cfg := game.config

	move := vector.MakeVector2(
		number.Clamp(action.MoveX, -1, 1),
		number.Clamp(action.MoveZ, -1, 1),
	)

	target := vector.MakeNullVector2()
	if move.Mag() > minMoveInput {
		target = move.Normalize().MultScalar(cfg.MoveSpeed)
	}

	velocity := a.steering.velocity
	if !cfg.SmoothMovement {
		velocity = target
	} else if target.Mag() > cfg.Deadzone {
		velocity = velocity.MoveTowards(target, cfg.Acceleration*dt)
	} else {
		velocity = velocity.MoveTowards(vector.MakeNullVector2(), cfg.Deceleration*dt)
	}

	a.steering.velocity = velocity
	a.physical.SetVelocity(velocity)

	// Rotate input is ignored; agents face where they move
	if velocity.Mag() > cfg.Deadzone {
		heading := trigo.RotateTowards(a.physical.GetHeading(), velocity.Heading(), cfg.RotationSpeed*dt)
		a.physical.SetHeading(heading)
	}
}
