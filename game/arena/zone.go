package arena

import "github.com/jasontodev/NoxusIoniaRL/common/utils/vector"

// Zone is a team's heal and deposit area.
type Zone struct {
	team      Team
	center    vector.Vector2
	radius    float64
	healRate  float64 // HP per second
	deposited int
}

func NewZone(team Team, center vector.Vector2, radius float64, healRate float64) *Zone {
	return &Zone{
		team:     team,
		center:   center,
		radius:   radius,
		healRate: healRate,
	}
}

func NewZonesFromLayout(specs []ZoneSpec) []*Zone {
	zones := make([]*Zone, 0, len(specs))
	for _, spec := range specs {
		zones = append(zones, NewZone(spec.Team, spec.Center.Vector(), spec.Radius, spec.HealRate))
	}

	return zones
}

func (z Zone) GetTeam() Team {
	return z.team
}

func (z Zone) GetCenter() vector.Vector2 {
	return z.center
}

func (z Zone) GetRadius() float64 {
	return z.radius
}

func (z Zone) GetHealRate() float64 {
	return z.healRate
}

func (z Zone) GetDeposited() int {
	return z.deposited
}

func (z Zone) Contains(position vector.Vector2) bool {
	return position.DistanceTo(z.center) <= z.radius
}

// InReach tells whether position is within reach of the zone edge.
func (z Zone) InReach(position vector.Vector2, reach float64) bool {
	return position.DistanceTo(z.center) < z.radius+reach
}

func (z *Zone) deposit(amount int) {
	z.deposited += amount
}

func (z *Zone) reset() {
	z.deposited = 0
}
