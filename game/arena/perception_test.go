package arena

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservationSizeIsFixed(t *testing.T) {
	assert.Equal(t, 33, DefaultConfig().ObservationSize())

	cfg := DefaultConfig()
	cfg.Variant = VariantMana
	assert.Equal(t, 48, cfg.ObservationSize())

	for _, variant := range []Variant{VariantElimination, VariantMana} {
		for agents := 0; agents <= 2; agents++ {
			cfg := DefaultConfig()
			cfg.Variant = variant
			cfg.AgentsPerTeam = agents

			game, _, _ := newTestGame(t, cfg)

			for _, key := range append(game.Agents(), AgentKey{Team: Ionia, ID: 7}) {
				assert.Len(t, game.Observe(key), cfg.ObservationSize(), "%s with %d agents per team, %s", variant, agents, key)
			}
		}
	}
}

func TestObservationLayout(t *testing.T) {
	game, _, _ := newTestGame(t, duelConfig())

	obs := game.Observe(noxus0)
	require.Len(t, obs, 33)

	// self
	assert.Equal(t, []float64{1, 1, 1, 0, 0, 0, 0}, obs[0:7])

	// nearest agents: Ionia_0 at 1, Noxus_1 at 5, Ionia_1 at sqrt(26)
	assert.InDelta(t, 1.0/20, obs[7], 1e-9)
	assert.Equal(t, []float64{0, 1}, obs[8:10])
	assert.InDelta(t, 5.0/20, obs[10], 1e-9)
	assert.Equal(t, []float64{1, 1}, obs[11:13])
	assert.InDelta(t, math.Sqrt(26)/20, obs[13], 1e-9)
	assert.Equal(t, []float64{0, 1}, obs[14:16])
	assert.Equal(t, []float64{1, 0, 0, 1, 0, 0}, obs[16:22])

	// obstacles, zones, globals
	assert.Equal(t, []float64{1, 0, 1, 0, 1, 0}, obs[22:28])
	assert.Equal(t, []float64{1, 1}, obs[28:30])
	assert.Equal(t, []float64{0, 0, 1}, obs[30:33])

	ionia := game.Observe(ionia0)
	assert.Equal(t, 0.0, ionia[2], "team indicator")
	assert.InDelta(t, 1.0/50, ionia[3], 1e-9)
}

func TestObservationTracksState(t *testing.T) {
	cfg := duelConfig()
	cfg.Layout.Zones = []ZoneSpec{
		{Team: Noxus, Center: Point{X: 0, Z: -10}, Radius: 1},
	}

	game, _, _ := newTestGame(t, cfg)
	require.True(t, game.Attack(noxus0, ionia0))
	game.Step(0.5, nil)

	obs := game.Observe(noxus0)
	assert.InDelta(t, 0.5, obs[1], 1e-9, "half the cooldown elapsed")
	assert.InDelta(t, 0.75, obs[9], 1e-9, "Ionia_0 health")
	assert.InDelta(t, 10.0/50, obs[28], 1e-9, "home zone")
	assert.Equal(t, 1.0, obs[29], "missing enemy zone")
	assert.InDelta(t, 299.5/300, obs[32], 1e-9)
}

func TestDeadAgentsObserveZeros(t *testing.T) {
	cfg := duelConfig()
	cfg.MaxHealth = 25

	game, _, _ := newTestGame(t, cfg)
	require.True(t, game.Attack(noxus0, ionia0))

	assert.Equal(t, make([]float64, 33), game.Observe(ionia0))

	// and disappear from the others' neighborhoods
	obs := game.Observe(noxus0)
	assert.InDelta(t, 5.0/20, obs[7], 1e-9)
	assert.Equal(t, []float64{1, 0, 0}, obs[13:16])
}

func TestNeighborTiesKeepEncounterOrder(t *testing.T) {
	cfg := duelConfig()
	cfg.Layout.NoxusSpawns = []Point{{X: 0, Z: 0}, {X: 0, Z: 15}}
	cfg.Layout.IoniaSpawns = []Point{{X: 1, Z: 0}, {X: -1, Z: 0}}

	game, _, _ := newTestGame(t, cfg)
	require.True(t, game.Attack(noxus0, ionia1))

	obs := game.Observe(noxus0)
	assert.InDelta(t, obs[7], obs[10], 1e-9)
	assert.Equal(t, 1.0, obs[9], "Ionia_0 first")
	assert.Equal(t, 0.75, obs[12], "Ionia_1 second")
}

func TestObservationRadiusIsStrict(t *testing.T) {
	cfg := duelConfig()
	cfg.Layout.IoniaSpawns = []Point{{X: 20, Z: 0}, {X: 19.5, Z: 0}}
	cfg.Layout.NoxusSpawns = []Point{{X: 0, Z: 0}, {X: 0, Z: -30}}

	game, _, _ := newTestGame(t, cfg)

	obs := game.Observe(noxus0)
	assert.InDelta(t, 19.5/20, obs[7], 1e-9)
	assert.Equal(t, []float64{1, 0, 0}, obs[10:13])
}

func TestManaObservationLayout(t *testing.T) {
	game, _, _ := newTestGame(t, manaConfig())

	obs := game.Observe(noxus0)
	require.Len(t, obs, 48)

	assert.Equal(t, 0.0, obs[7], "nothing carried")

	// Ionia_0 at 10, not carrying
	assert.Equal(t, []float64{10.0 / 20, 0, 1, 0}, obs[8:12])
	assert.Equal(t, []float64{1, 0, 0, 0}, obs[12:16])

	// mana at (1,0) then (-1,0), equal distances keep creation order
	assert.Equal(t, []float64{1.0 / 20, 1, 0}, obs[28:31])
	assert.Equal(t, []float64{1.0 / 20, -1, 0}, obs[31:34])
	assert.Equal(t, []float64{1, 0, 0}, obs[34:37])

	assert.Equal(t, []float64{1, 0, 1, 0, 1, 0}, obs[37:43], "obstacles")
	assert.Equal(t, []float64{0, 10.0 / 50}, obs[43:45], "zones")
	assert.Equal(t, []float64{0, 0, 1}, obs[45:48])
}
