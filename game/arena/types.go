package arena

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type Team int

const (
	Noxus Team = iota
	Ionia
)

// Teams in evaluation order; Noxus is always processed first.
var Teams = [2]Team{Noxus, Ionia}

func (t Team) String() string {
	switch t {
	case Noxus:
		return "Noxus"
	case Ionia:
		return "Ionia"
	}

	return "Unknown"
}

func (t Team) Opponent() Team {
	if t == Noxus {
		return Ionia
	}

	return Noxus
}

func ParseTeam(s string) (Team, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "noxus", "a":
		return Noxus, nil
	case "ionia", "b":
		return Ionia, nil
	}

	return Noxus, errors.Errorf("unknown team %q", s)
}

func (t Team) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(t.String())), nil
}

func (t *Team) UnmarshalText(data []byte) error {
	team, err := ParseTeam(string(data))
	if err != nil {
		return err
	}

	*t = team
	return nil
}

// AgentKey identifies an agent within an episode; its string form is "Noxus_0".
type AgentKey struct {
	Team Team
	ID   int
}

func (k AgentKey) String() string {
	return k.Team.String() + "_" + strconv.Itoa(k.ID)
}

func ParseAgentKey(s string) (AgentKey, error) {
	sep := strings.LastIndex(s, "_")
	if sep < 0 {
		return AgentKey{}, errors.Errorf("malformed agent key %q", s)
	}

	team, err := ParseTeam(s[:sep])
	if err != nil {
		return AgentKey{}, errors.Wrapf(err, "malformed agent key %q", s)
	}

	id, err := strconv.Atoi(s[sep+1:])
	if err != nil || id < 0 {
		return AgentKey{}, errors.Errorf("malformed agent id in key %q", s)
	}

	return AgentKey{Team: team, ID: id}, nil
}

type Variant string

const (
	VariantElimination Variant = "elimination"
	VariantMana        Variant = "mana"
)

type ActionType int

const (
	ActionNone ActionType = iota
	ActionInteract
	ActionAttack
	ActionDefend
	ActionSignal
)

func (a ActionType) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionInteract:
		return "interact"
	case ActionAttack:
		return "attack"
	case ActionDefend:
		return "defend"
	case ActionSignal:
		return "signal"
	}

	return "unknown(" + strconv.Itoa(int(a)) + ")"
}

// Action is what a policy emits for one agent for one tick.
// MoveX and MoveZ are expected in [-1, 1] and clamped otherwise.
type Action struct {
	MoveX  float64
	MoveZ  float64
	Rotate float64
	Type   ActionType
	Intent int
}

type State int

const (
	StateIdle State = iota
	StateActive
	StateEnding
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateEnding:
		return "ending"
	}

	return "unknown"
}

type EndReason string

const (
	ReasonElimination EndReason = "elimination"
	ReasonMana        EndReason = "mana_threshold"
	ReasonTimeout     EndReason = "timeout"
)
