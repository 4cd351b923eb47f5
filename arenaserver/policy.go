package arenaserver

import (
	"context"

	"github.com/jasontodev/NoxusIoniaRL/arenaserver/protocol"
	"github.com/jasontodev/NoxusIoniaRL/game/arena"
)

// Policy decides the actions of one team for one tick. The returned batch
// must carry the tick of the perception batch it answers.
type Policy interface {
	Act(ctx context.Context, batch protocol.PerceptionBatch) (protocol.ActionBatch, error)
}

type PolicyFunc func(ctx context.Context, batch protocol.PerceptionBatch) (protocol.ActionBatch, error)

func (f PolicyFunc) Act(ctx context.Context, batch protocol.PerceptionBatch) (protocol.ActionBatch, error) {
	return f(ctx, batch)
}

// Idle never moves.
var Idle Policy = PolicyFunc(func(ctx context.Context, batch protocol.PerceptionBatch) (protocol.ActionBatch, error) {
	return protocol.ActionBatch{Tick: batch.Tick}, nil
})

// AgentPolicy decides for a single agent from its own perception.
type AgentPolicy interface {
	Decide(key arena.AgentKey, perception protocol.AgentPerception) arena.Action
}

type AgentPolicyFunc func(key arena.AgentKey, perception protocol.AgentPerception) arena.Action

func (f AgentPolicyFunc) Decide(key arena.AgentKey, perception protocol.AgentPerception) arena.Action {
	return f(key, perception)
}

type perAgent struct {
	policy AgentPolicy
}

// PerAgent runs policy once for every agent of the batch that is not done.
func PerAgent(policy AgentPolicy) Policy {
	return perAgent{policy: policy}
}

func (p perAgent) Act(ctx context.Context, batch protocol.PerceptionBatch) (protocol.ActionBatch, error) {
	res := protocol.ActionBatch{
		Tick:    batch.Tick,
		Actions: make([]protocol.AgentAction, 0, len(batch.Perceptions)),
	}

	for _, perception := range batch.Perceptions {
		if perception.Done {
			continue
		}

		key, err := arena.ParseAgentKey(perception.Agent)
		if err != nil {
			return res, err
		}

		res.Actions = append(res.Actions, protocol.MakeAgentAction(key, p.policy.Decide(key, perception)))
	}

	return res, ctx.Err()
}
