package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	noxus0 = AgentKey{Team: Noxus, ID: 0}
	noxus1 = AgentKey{Team: Noxus, ID: 1}
	ionia0 = AgentKey{Team: Ionia, ID: 0}
	ionia1 = AgentKey{Team: Ionia, ID: 1}
)

// duelConfig places two pairs of opponents one meter apart.
func duelConfig() Config {
	cfg := DefaultConfig()
	cfg.Layout = Layout{
		NoxusSpawns: []Point{{X: 0, Z: 0}, {X: 0, Z: 5}},
		IoniaSpawns: []Point{{X: 1, Z: 0}, {X: 1, Z: 5}},
	}

	return cfg
}

func manaConfig() Config {
	cfg := DefaultConfig()
	cfg.Variant = VariantMana
	cfg.AgentsPerTeam = 1
	cfg.GraceWindow = 0
	cfg.ManaWinThreshold = 2
	cfg.Rewards.Pickup = 0.1
	cfg.Rewards.Deposit = 0.5
	cfg.Layout = Layout{
		NoxusSpawns: []Point{{X: 0, Z: 0}},
		IoniaSpawns: []Point{{X: 10, Z: 0}},
		Zones: []ZoneSpec{
			{Team: Noxus, Center: Point{X: 0, Z: 0}, Radius: 3},
			{Team: Ionia, Center: Point{X: 10, Z: 0}, Radius: 3},
		},
		Mana: []Point{{X: 1, Z: 0}, {X: -1, Z: 0}},
	}

	return cfg
}

func newTestGame(t *testing.T, cfg Config) (*ArenaGame, *fakeWorld, *GameLog) {
	world := newFakeWorld()
	log := NewGameLog()

	game, err := NewArenaGame(cfg, Dependencies{
		World: world,
		Zones: NewZonesFromLayout(cfg.Layout.Zones),
		Sink:  log,
	})
	require.NoError(t, err)
	require.True(t, game.Start())

	return game, world, log
}

func rewardOf(result StepResult, key AgentKey) float64 {
	for _, agent := range result.Agents {
		if agent.Key == key {
			return agent.Reward
		}
	}

	return 0
}

func act(key AgentKey, action Action) map[AgentKey]Action {
	return map[AgentKey]Action{key: action}
}

func lifeOf(t *testing.T, game *ArenaGame, key AgentKey) int {
	snapshot, ok := game.Agent(key)
	require.True(t, ok)
	return snapshot.Health
}
