package arena

import (
	"github.com/jasontodev/NoxusIoniaRL/common/utils/vector"
	"github.com/pkg/errors"
)

// Point is a layout coordinate on the ground plane.
type Point struct {
	X float64 `yaml:"x" json:"x"`
	Z float64 `yaml:"z" json:"z"`
}

func (p Point) Vector() vector.Vector2 {
	return vector.MakeVector2(p.X, p.Z)
}

type ZoneSpec struct {
	Team     Team    `yaml:"team" json:"team"`
	Center   Point   `yaml:"center" json:"center"`
	Radius   float64 `yaml:"radius" json:"radius"`
	HealRate float64 `yaml:"heal_rate" json:"heal_rate"`
}

type ObstacleSpec struct {
	Position Point   `yaml:"position" json:"position"`
	HalfSize float64 `yaml:"half_size" json:"half_size"`
	Mass     float64 `yaml:"mass" json:"mass"`
}

type Bounds struct {
	Min Point `yaml:"min" json:"min"`
	Max Point `yaml:"max" json:"max"`
}

// Layout is the canonical starting arrangement restored on every episode start.
type Layout struct {
	NoxusSpawns []Point        `yaml:"noxus_spawns" json:"noxus_spawns"`
	IoniaSpawns []Point        `yaml:"ionia_spawns" json:"ionia_spawns"`
	Zones       []ZoneSpec     `yaml:"zones" json:"zones"`
	Obstacles   []ObstacleSpec `yaml:"obstacles" json:"obstacles"`
	Mana        []Point        `yaml:"mana" json:"mana"`
	Bounds      *Bounds        `yaml:"bounds,omitempty" json:"bounds,omitempty"`
}

func (l Layout) SpawnSlots(team Team) []Point {
	if team == Noxus {
		return l.NoxusSpawns
	}

	return l.IoniaSpawns
}

type RewardConfig struct {
	Win     float64 `yaml:"win" json:"win"`
	Loss    float64 `yaml:"loss" json:"loss"`
	Death   float64 `yaml:"death" json:"death"`
	Idle    float64 `yaml:"idle" json:"idle"` // per second, once idle past IdleGrace
	Pickup  float64 `yaml:"pickup" json:"pickup"`
	Deposit float64 `yaml:"deposit" json:"deposit"` // per unit deposited
}

type Config struct {
	Variant       Variant `yaml:"variant" json:"variant"`
	AgentsPerTeam int     `yaml:"agents_per_team" json:"agents_per_team"`
	MaxDuration   float64 `yaml:"max_duration" json:"max_duration"` // seconds of simulated time
	GraceWindow   float64 `yaml:"grace_window" json:"grace_window"`
	ResetDelay    float64 `yaml:"reset_delay" json:"reset_delay"`
	AutoReset     bool    `yaml:"auto_reset" json:"auto_reset"`
	TimeoutWinner Team    `yaml:"timeout_winner" json:"timeout_winner"`

	MaxHealth        int     `yaml:"max_health" json:"max_health"`
	AttackDamage     int     `yaml:"attack_damage" json:"attack_damage"`
	AttackRange      float64 `yaml:"attack_range" json:"attack_range"`
	AttackCooldown   float64 `yaml:"attack_cooldown" json:"attack_cooldown"`
	InteractionRange float64 `yaml:"interaction_range" json:"interaction_range"`

	MoveSpeed      float64 `yaml:"move_speed" json:"move_speed"`
	RotationSpeed  float64 `yaml:"rotation_speed" json:"rotation_speed"` // degrees per second
	Acceleration   float64 `yaml:"acceleration" json:"acceleration"`
	Deceleration   float64 `yaml:"deceleration" json:"deceleration"`
	Deadzone       float64 `yaml:"deadzone" json:"deadzone"`
	SmoothMovement bool    `yaml:"smooth_movement" json:"smooth_movement"`
	AgentRadius    float64 `yaml:"agent_radius" json:"agent_radius"`

	ObservationRadius  float64 `yaml:"observation_radius" json:"observation_radius"`
	NearestAgents      int     `yaml:"nearest_agents" json:"nearest_agents"`
	NearestObstacles   int     `yaml:"nearest_obstacles" json:"nearest_obstacles"`
	NearestMana        int     `yaml:"nearest_mana" json:"nearest_mana"`
	PositionScale      float64 `yaml:"position_scale" json:"position_scale"`
	ObstacleSpeedScale float64 `yaml:"obstacle_speed_scale" json:"obstacle_speed_scale"`

	ManaCapacity     int `yaml:"mana_capacity" json:"mana_capacity"`
	ManaWinThreshold int `yaml:"mana_win_threshold" json:"mana_win_threshold"`

	PushForce       float64 `yaml:"push_force" json:"push_force"`
	MaxPushDistance float64 `yaml:"max_push_distance" json:"max_push_distance"`

	IdleDistance float64 `yaml:"idle_distance" json:"idle_distance"`
	IdleGrace    float64 `yaml:"idle_grace" json:"idle_grace"`

	Rewards RewardConfig `yaml:"rewards" json:"rewards"`
	Layout  Layout       `yaml:"layout" json:"layout"`
}

func DefaultConfig() Config {
	return Config{
		Variant:       VariantElimination,
		AgentsPerTeam: 2,
		MaxDuration:   300,
		GraceWindow:   0.5,
		ResetDelay:    1,
		AutoReset:     true,
		TimeoutWinner: Ionia,

		MaxHealth:        100,
		AttackDamage:     25,
		AttackRange:      1.5,
		AttackCooldown:   1,
		InteractionRange: 2,

		MoveSpeed:      3,
		RotationSpeed:  180,
		Acceleration:   10,
		Deceleration:   15,
		Deadzone:       0.1,
		SmoothMovement: true,
		AgentRadius:    0.5,

		ObservationRadius:  20,
		NearestAgents:      5,
		NearestObstacles:   3,
		NearestMana:        3,
		PositionScale:      50,
		ObstacleSpeedScale: 5,

		ManaCapacity:     1,
		ManaWinThreshold: 5,

		PushForce:       5,
		MaxPushDistance: 10,

		IdleDistance: 0.1,
		IdleGrace:    2,

		Rewards: RewardConfig{
			Win:     10,
			Loss:    -5,
			Death:   -1,
			Idle:    -0.01,
			Pickup:  0,
			Deposit: 0,
		},

		Layout: Layout{
			NoxusSpawns: []Point{{X: -18, Z: -16}, {X: -16, Z: -18}},
			IoniaSpawns: []Point{{X: 18, Z: 16}, {X: 16, Z: 18}},
			Zones: []ZoneSpec{
				{Team: Noxus, Center: Point{X: -18, Z: -18}, Radius: 5, HealRate: 10},
				{Team: Ionia, Center: Point{X: 18, Z: 18}, Radius: 5, HealRate: 10},
			},
			Obstacles: []ObstacleSpec{
				{Position: Point{X: 0, Z: 0}, HalfSize: 1, Mass: 10},
				{Position: Point{X: -6, Z: 6}, HalfSize: 1, Mass: 10},
				{Position: Point{X: 6, Z: -6}, HalfSize: 1, Mass: 10},
			},
			Mana: []Point{
				{X: 0, Z: 8}, {X: 0, Z: -8}, {X: 8, Z: 0},
				{X: -8, Z: 0}, {X: 4, Z: 4}, {X: -4, Z: -4},
			},
			Bounds: &Bounds{
				Min: Point{X: -25, Z: -25},
				Max: Point{X: 25, Z: 25},
			},
		},
	}
}

// ObservationSize is the length of every observation vector for this configuration.
func (c Config) ObservationSize() int {
	if c.Variant == VariantMana {
		return 8 + 4*c.NearestAgents + 3*c.NearestMana + 2*c.NearestObstacles + 2 + 3
	}

	return 7 + 3*c.NearestAgents + 2*c.NearestObstacles + 2 + 3
}

type field struct {
	name  string
	value float64
}

func (c Config) Validate() error {
	switch c.Variant {
	case VariantElimination, VariantMana:
	default:
		return errors.Errorf("variant: unknown value %q", c.Variant)
	}

	if c.TimeoutWinner != Noxus && c.TimeoutWinner != Ionia {
		return errors.Errorf("timeout_winner: unknown team %d", int(c.TimeoutWinner))
	}

	positive := []field{
		{"max_duration", c.MaxDuration},
		{"max_health", float64(c.MaxHealth)},
		{"move_speed", c.MoveSpeed},
		{"observation_radius", c.ObservationRadius},
		{"nearest_agents", float64(c.NearestAgents)},
		{"position_scale", c.PositionScale},
		{"obstacle_speed_scale", c.ObstacleSpeedScale},
		{"agent_radius", c.AgentRadius},
	}

	if c.SmoothMovement {
		positive = append(positive,
			field{"acceleration", c.Acceleration},
			field{"deceleration", c.Deceleration},
		)
	}

	if c.Variant == VariantMana {
		positive = append(positive,
			field{"mana_capacity", float64(c.ManaCapacity)},
			field{"mana_win_threshold", float64(c.ManaWinThreshold)},
		)
	}

	for _, p := range positive {
		if !(p.value > 0) {
			return errors.Errorf("%s: must be strictly positive, got %v", p.name, p.value)
		}
	}

	nonNegative := []field{
		{"agents_per_team", float64(c.AgentsPerTeam)},
		{"grace_window", c.GraceWindow},
		{"reset_delay", c.ResetDelay},
		{"attack_damage", float64(c.AttackDamage)},
		{"attack_range", c.AttackRange},
		{"attack_cooldown", c.AttackCooldown},
		{"interaction_range", c.InteractionRange},
		{"rotation_speed", c.RotationSpeed},
		{"deadzone", c.Deadzone},
		{"nearest_obstacles", float64(c.NearestObstacles)},
		{"nearest_mana", float64(c.NearestMana)},
		{"push_force", c.PushForce},
		{"max_push_distance", c.MaxPushDistance},
		{"idle_distance", c.IdleDistance},
		{"idle_grace", c.IdleGrace},
	}

	for _, p := range nonNegative {
		if !(p.value >= 0) {
			return errors.Errorf("%s: must not be negative, got %v", p.name, p.value)
		}
	}

	for i, zone := range c.Layout.Zones {
		if !(zone.Radius > 0) {
			return errors.Errorf("layout.zones[%d].radius: must be strictly positive", i)
		}

		if zone.HealRate < 0 {
			return errors.Errorf("layout.zones[%d].heal_rate: must not be negative", i)
		}
	}

	for i, obstacle := range c.Layout.Obstacles {
		if !(obstacle.HalfSize > 0) || !(obstacle.Mass > 0) {
			return errors.Errorf("layout.obstacles[%d]: half_size and mass must be strictly positive", i)
		}
	}

	return nil
}
