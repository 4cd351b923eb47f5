package arena

import (
	"math"

	"github.com/jasontodev/NoxusIoniaRL/common/utils/vector"
)

type AgentSnapshot struct {
	Key       string         `json:"id"`
	Team      string         `json:"team"`
	Health    int            `json:"health"`
	MaxHealth int            `json:"max_health"`
	Dead      bool           `json:"dead"`
	Position  vector.Vector2 `json:"position"`
	Velocity  vector.Vector2 `json:"velocity"`
	Heading   float64        `json:"heading"`
	Radius    float64        `json:"radius"`
	Carried   int            `json:"carried"`
	Defending bool           `json:"defending"`
	Reward    float64        `json:"reward"`
}

type ObstacleSnapshot struct {
	Position vector.Vector2 `json:"position"`
	Velocity vector.Vector2 `json:"velocity"`
	HalfSize float64        `json:"half_size"`
}

type ManaSnapshot struct {
	Position vector.Vector2 `json:"position"`
	State    string         `json:"state"`
}

type ZoneSnapshot struct {
	Team      string         `json:"team"`
	Center    vector.Vector2 `json:"center"`
	Radius    float64        `json:"radius"`
	Deposited int            `json:"deposited"`
}

// Snapshot is a read-only projection of the world, used for visualisation.
type Snapshot struct {
	Tick          int                `json:"tick"`
	Episode       int                `json:"episode"`
	EpisodeID     string             `json:"episode_id"`
	State         string             `json:"state"`
	Variant       Variant            `json:"variant"`
	Elapsed       float64            `json:"elapsed"`
	TimeRemaining float64            `json:"time_remaining"`
	Banked        map[string]int     `json:"banked"`
	Agents        []AgentSnapshot    `json:"agents"`
	Obstacles     []ObstacleSnapshot `json:"obstacles"`
	Mana          []ManaSnapshot     `json:"mana"`
	Zones         []ZoneSnapshot     `json:"zones"`
}

func (game *ArenaGame) State() State {
	return game.state
}

func (game *ArenaGame) Tick() int {
	return game.tick
}

func (game *ArenaGame) Config() Config {
	return game.config
}

// Episode returns a copy of the current (or last) episode.
func (game *ArenaGame) Episode() (Episode, bool) {
	if game.episode == nil {
		return Episode{}, false
	}

	return *game.episode, true
}

func (game *ArenaGame) TimeRemaining() float64 {
	if game.episode == nil {
		return game.config.MaxDuration
	}

	return math.Max(0, game.config.MaxDuration-game.episode.Elapsed)
}

func (game *ArenaGame) Roster(team Team) []AgentKey {
	keys := make([]AgentKey, 0, len(game.rosters[team]))
	for _, a := range game.rosters[team] {
		keys = append(keys, a.key())
	}

	return keys
}

// Agents lists every agent of the episode, Noxus first, in roster order.
func (game *ArenaGame) Agents() []AgentKey {
	return append(game.Roster(Noxus), game.Roster(Ionia)...)
}

func (game *ArenaGame) Eliminated(team Team) bool {
	return game.eliminated(team)
}

func (game *ArenaGame) Deaths(team Team) int {
	return game.deaths[team]
}

func (game *ArenaGame) Banked(team Team) int {
	return game.banked[team]
}

func (game *ArenaGame) Zones() []*Zone {
	return game.zones
}

func (game *ArenaGame) Agent(key AgentKey) (AgentSnapshot, bool) {
	a, ok := game.agentsByKey[key]
	if !ok {
		return AgentSnapshot{}, false
	}

	return game.agentSnapshot(a), true
}

func (game *ArenaGame) agentSnapshot(a *agent) AgentSnapshot {
	snapshot := AgentSnapshot{
		Key:       a.key().String(),
		Team:      a.player.GetTeam().String(),
		Health:    a.health.GetLife(),
		MaxHealth: a.health.GetMaxLife(),
		Dead:      a.health.IsDead(),
		Position:  a.physical.GetPosition(),
		Velocity:  a.physical.GetVelocity(),
		Heading:   a.physical.GetHeading(),
		Radius:    a.physical.GetRadius(),
		Defending: a.combat.IsDefending(),
		Reward:    a.reward.GetTotal(),
	}

	if a.carrier != nil {
		snapshot.Carried = a.carrier.GetCarried()
	}

	return snapshot
}

func (game *ArenaGame) Snapshot() Snapshot {
	snapshot := Snapshot{
		Tick:          game.tick,
		State:         game.state.String(),
		Variant:       game.config.Variant,
		TimeRemaining: game.TimeRemaining(),
		Banked: map[string]int{
			Noxus.String(): game.banked[Noxus],
			Ionia.String(): game.banked[Ionia],
		},
		Agents:    make([]AgentSnapshot, 0),
		Obstacles: make([]ObstacleSnapshot, 0),
		Mana:      make([]ManaSnapshot, 0),
		Zones:     make([]ZoneSnapshot, 0),
	}

	if game.episode != nil {
		snapshot.Episode = game.episode.Number
		snapshot.EpisodeID = game.episode.ID.String()
		snapshot.Elapsed = game.episode.Elapsed
	}

	for _, team := range Teams {
		for _, a := range game.rosters[team] {
			snapshot.Agents = append(snapshot.Agents, game.agentSnapshot(a))
		}
	}

	for _, entityresult := range game.obstaclesView.Get() {
		obstacleAspect := game.CastObstacle(entityresult.Components[game.obstacleComponent])
		physicalAspect := game.CastPhysicalBody(entityresult.Components[game.physicalBodyComponent])

		snapshot.Obstacles = append(snapshot.Obstacles, ObstacleSnapshot{
			Position: physicalAspect.GetPosition(),
			Velocity: physicalAspect.GetVelocity(),
			HalfSize: obstacleAspect.GetHalfSize(),
		})
	}

	for _, entityresult := range game.manaView.Get() {
		manaAspect := game.CastManaItem(entityresult.Components[game.manaComponent])
		if !manaAspect.IsActive() {
			continue
		}

		snapshot.Mana = append(snapshot.Mana, ManaSnapshot{
			Position: manaAspect.GetPosition(),
			State:    manaAspect.GetState().String(),
		})
	}

	for _, zone := range game.zones {
		snapshot.Zones = append(snapshot.Zones, ZoneSnapshot{
			Team:      zone.GetTeam().String(),
			Center:    zone.GetCenter(),
			Radius:    zone.GetRadius(),
			Deposited: zone.GetDeposited(),
		})
	}

	return snapshot
}
