package arena

import (
	"github.com/bytearena/ecs"
	"github.com/jasontodev/NoxusIoniaRL/common/utils/vector"
)

type ManaState int

const (
	ManaLoose ManaState = iota
	ManaCarried
	ManaBanked
)

func (s ManaState) String() string {
	switch s {
	case ManaLoose:
		return "loose"
	case ManaCarried:
		return "carried"
	case ManaBanked:
		return "banked"
	}

	return "unknown"
}

type ManaItem struct {
	state    ManaState
	carrier  ecs.EntityID
	position vector.Vector2
	spawn    vector.Vector2
}

func (game ArenaGame) CastManaItem(data interface{}) *ManaItem {
	return data.(*ManaItem)
}

func (m ManaItem) GetState() ManaState {
	return m.state
}

func (m ManaItem) GetPosition() vector.Vector2 {
	return m.position
}

// IsActive tells whether the item can be seen and picked up.
func (m ManaItem) IsActive() bool {
	return m.state == ManaLoose
}

// claim is the atomic check-and-take of a loose item.
func (m *ManaItem) claim(carrier ecs.EntityID) bool {
	if m.state != ManaLoose {
		return false
	}

	m.state = ManaCarried
	m.carrier = carrier
	return true
}

func (m *ManaItem) drop(position vector.Vector2) {
	m.state = ManaLoose
	m.carrier = 0
	m.position = position
}

func (m *ManaItem) bank() {
	m.state = ManaBanked
	m.carrier = 0
}

func (m *ManaItem) reset() {
	m.drop(m.spawn)
}
