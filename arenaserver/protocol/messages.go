package protocol

import (
	"github.com/jasontodev/NoxusIoniaRL/game/arena"
	"github.com/pkg/errors"
)

// Handshake is the first line a remote policy sends, always as JSON.
type Handshake struct {
	Team      string `json:"team" msgpack:"team"`
	Codec     string `json:"codec" msgpack:"codec"`
	Greetings string `json:"greetings,omitempty" msgpack:"greetings,omitempty"`
}

// HandshakeAck answers a Handshake, as JSON too; every later message uses the negotiated codec.
type HandshakeAck struct {
	Session         string `json:"session" msgpack:"session"`
	Team            string `json:"team" msgpack:"team"`
	Agents          int    `json:"agents" msgpack:"agents"`
	ObservationSize int    `json:"observation_size" msgpack:"observation_size"`
	Error           string `json:"error,omitempty" msgpack:"error,omitempty"`
}

type AgentPerception struct {
	Agent       string    `json:"agent" msgpack:"agent"`
	Observation []float64 `json:"observation" msgpack:"observation"`
	Reward      float64   `json:"reward" msgpack:"reward"`
	Done        bool      `json:"done" msgpack:"done"`
}

// PerceptionBatch carries every agent of one team for one tick.
// A batch where Final is set closes an episode; the actions answered to it are discarded.
type PerceptionBatch struct {
	Tick        int               `json:"tick" msgpack:"tick"`
	Episode     int               `json:"episode" msgpack:"episode"`
	Final       bool              `json:"final,omitempty" msgpack:"final,omitempty"`
	Perceptions []AgentPerception `json:"perceptions" msgpack:"perceptions"`
}

type AgentAction struct {
	Agent      string  `json:"agent" msgpack:"agent"`
	MoveX      float64 `json:"move_x" msgpack:"move_x"`
	MoveZ      float64 `json:"move_z" msgpack:"move_z"`
	Rotate     float64 `json:"rotate" msgpack:"rotate"`
	ActionType int     `json:"action_type" msgpack:"action_type"`
	Intent     int     `json:"intent" msgpack:"intent"`
}

type ActionBatch struct {
	Tick    int           `json:"tick" msgpack:"tick"`
	Actions []AgentAction `json:"actions" msgpack:"actions"`
}

func MakeAgentAction(key arena.AgentKey, action arena.Action) AgentAction {
	return AgentAction{
		Agent:      key.String(),
		MoveX:      action.MoveX,
		MoveZ:      action.MoveZ,
		Rotate:     action.Rotate,
		ActionType: int(action.Type),
		Intent:     action.Intent,
	}
}

func (a AgentAction) Key() (arena.AgentKey, error) {
	return arena.ParseAgentKey(a.Agent)
}

func (a AgentAction) Action() arena.Action {
	return arena.Action{
		MoveX:  a.MoveX,
		MoveZ:  a.MoveZ,
		Rotate: a.Rotate,
		Type:   arena.ActionType(a.ActionType),
		Intent: a.Intent,
	}
}

// Decode maps the batch onto agent keys. Actions for agents outside
// allowed (when non-nil) are rejected.
func (b ActionBatch) Decode(allowed func(arena.AgentKey) bool) (map[arena.AgentKey]arena.Action, error) {
	res := make(map[arena.AgentKey]arena.Action, len(b.Actions))

	for _, action := range b.Actions {
		key, err := action.Key()
		if err != nil {
			return res, errors.Wrapf(err, "invalid action batch for tick %d", b.Tick)
		}

		if allowed != nil && !allowed(key) {
			return res, errors.Errorf("action for foreign agent %s in batch for tick %d", action.Agent, b.Tick)
		}

		res[key] = action.Action()
	}

	return res, nil
}
