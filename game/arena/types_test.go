package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgentKeyString(t *testing.T) {
	assert.Equal(t, "Noxus_0", noxus0.String())
	assert.Equal(t, "Ionia_1", ionia1.String())

	key, err := ParseAgentKey("Ionia_1")
	require.NoError(t, err)
	assert.Equal(t, ionia1, key)

	for _, bad := range []string{"", "Noxus", "Demacia_0", "Noxus_x", "Noxus_-1"} {
		_, err := ParseAgentKey(bad)
		assert.Error(t, err, bad)
	}
}

func TestTeamText(t *testing.T) {
	var team Team
	require.NoError(t, team.UnmarshalText([]byte("Ionia")))
	assert.Equal(t, Ionia, team)
	assert.Equal(t, Noxus, team.Opponent())

	text, err := Noxus.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "noxus", string(text))

	assert.Error(t, team.UnmarshalText([]byte("zaun")))
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"variant", func(c *Config) { c.Variant = "capture" }},
		{"duration", func(c *Config) { c.MaxDuration = 0 }},
		{"health", func(c *Config) { c.MaxHealth = 0 }},
		{"k", func(c *Config) { c.NearestAgents = 0 }},
		{"roster", func(c *Config) { c.AgentsPerTeam = -1 }},
		{"cooldown", func(c *Config) { c.AttackCooldown = -1 }},
		{"zone", func(c *Config) { c.Layout.Zones[0].Radius = 0 }},
		{"mana threshold", func(c *Config) { c.Variant = VariantMana; c.ManaWinThreshold = 0 }},
		{"timeout winner", func(c *Config) { c.TimeoutWinner = Team(5) }},
	}

	for _, test := range tests {
		cfg := DefaultConfig()
		test.mutate(&cfg)
		assert.Error(t, cfg.Validate(), test.name)
	}
}

func TestGameLogFilters(t *testing.T) {
	log := NewGameLog()
	log.Record(Event{Type: EventAttack})
	log.Record(Event{Type: EventDeath})
	log.Record(Event{Type: EventAttack})

	assert.Len(t, log.Entries(), 3)
	assert.Len(t, log.OfType(EventAttack), 2)

	log.Clear()
	assert.Empty(t, log.Entries())
}
