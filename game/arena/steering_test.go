package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVelocityIsSmoothed(t *testing.T) {
	game, world, _ := newTestGame(t, duelConfig())
	body := world.bodies["Noxus_0"]

	game.Step(0.1, act(noxus0, Action{MoveX: 1}))
	assert.InDelta(t, 1, body.velocity.GetX(), 1e-9, "accelerates by 10 m/s² over 0.1s")

	game.Step(0.1, act(noxus0, Action{MoveX: 1}))
	game.Step(0.1, act(noxus0, Action{MoveX: 1}))
	game.Step(0.1, act(noxus0, Action{MoveX: 1}))
	assert.InDelta(t, 3, body.velocity.Mag(), 1e-9, "capped at move speed")

	game.Step(0.1, nil)
	assert.InDelta(t, 1.5, body.velocity.GetX(), 1e-9, "decelerates by 15 m/s² over 0.1s")
}

func TestVelocitySnapsWithoutSmoothing(t *testing.T) {
	cfg := duelConfig()
	cfg.SmoothMovement = false

	game, world, _ := newTestGame(t, cfg)

	game.Step(0.1, act(noxus0, Action{MoveX: 0.2, MoveZ: 0.2}))
	assert.InDelta(t, 3, world.bodies["Noxus_0"].velocity.Mag(), 1e-9)
}

func TestMoveInputIsClamped(t *testing.T) {
	cfg := duelConfig()
	cfg.SmoothMovement = false

	game, world, _ := newTestGame(t, cfg)

	game.Step(0.1, act(noxus0, Action{MoveX: 40, MoveZ: -2}))

	velocity := world.bodies["Noxus_0"].velocity
	assert.InDelta(t, 3, velocity.Mag(), 1e-9)
	assert.InDelta(t, -velocity.GetX(), velocity.GetY(), 1e-9, "diagonal after clamping")
}

func TestHeadingRotatesAtCappedRate(t *testing.T) {
	game, _, _ := newTestGame(t, duelConfig())

	game.Step(0.1, act(noxus0, Action{MoveX: 1}))

	snapshot, _ := game.Agent(noxus0)
	assert.InDelta(t, 18, snapshot.Heading, 1e-6)

	for i := 0; i < 10; i++ {
		game.Step(0.1, act(noxus0, Action{MoveX: 1}))
	}

	snapshot, _ = game.Agent(noxus0)
	assert.InDelta(t, 90, snapshot.Heading, 1e-6)
}

func TestRotateInputIsIgnored(t *testing.T) {
	game, _, _ := newTestGame(t, duelConfig())
	before, _ := game.Agent(noxus0)

	game.Step(0.1, act(noxus0, Action{Rotate: 1}))

	after, _ := game.Agent(noxus0)
	assert.Equal(t, before.Heading, after.Heading)
}

func TestNoRotationBelowDeadzone(t *testing.T) {
	cfg := duelConfig()
	cfg.Acceleration = 0.5

	game, _, _ := newTestGame(t, cfg)

	game.Step(0.1, act(noxus0, Action{MoveX: 1}))

	snapshot, _ := game.Agent(noxus0)
	assert.InDelta(t, 0.05, snapshot.Velocity.Mag(), 1e-9)
	assert.InDelta(t, 0, snapshot.Heading, 1e-9)
}

func TestDeadAgentsIgnoreActions(t *testing.T) {
	cfg := duelConfig()
	cfg.MaxHealth = 25

	game, world, log := newTestGame(t, cfg)
	is := assert.New(t)

	is.True(game.Attack(noxus0, ionia0))
	before := world.bodies["Ionia_0"].position
	attacks := len(log.OfType(EventAttack))

	game.Step(0.1, act(ionia0, Action{MoveX: 1, Type: ActionAttack}))
	game.Step(0.1, act(ionia0, Action{MoveX: 1, Type: ActionSignal}))

	is.True(world.bodies["Ionia_0"].velocity.IsNull())
	is.True(world.bodies["Ionia_0"].position.Equals(before))
	is.False(world.bodies["Ionia_0"].active)
	is.Len(log.OfType(EventAttack), attacks)
	is.Empty(log.OfType(EventSignal))
}
