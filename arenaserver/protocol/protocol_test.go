package protocol

import (
	"bytes"
	"testing"

	"github.com/jasontodev/NoxusIoniaRL/game/arena"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecsStreamBatches(t *testing.T) {
	for _, name := range []string{CodecJSON, CodecMsgpack} {
		t.Run(name, func(t *testing.T) {
			codec, err := GetCodec(name)
			require.NoError(t, err)
			assert.Equal(t, name, codec.Name())

			var buf bytes.Buffer
			encoder := codec.NewEncoder(&buf)

			first := PerceptionBatch{
				Tick:    1,
				Episode: 1,
				Perceptions: []AgentPerception{
					{Agent: "Noxus_0", Observation: []float64{1, 0.5}, Reward: -0.01},
				},
			}
			second := PerceptionBatch{Tick: 2, Episode: 1, Final: true}

			require.NoError(t, encoder.Encode(first))
			require.NoError(t, encoder.Encode(second))

			decoder := codec.NewDecoder(&buf)

			var got PerceptionBatch
			require.NoError(t, decoder.Decode(&got))
			assert.Equal(t, first, got)

			var next PerceptionBatch
			require.NoError(t, decoder.Decode(&next))
			assert.Equal(t, 2, next.Tick)
			assert.True(t, next.Final)
		})
	}
}

func TestJSONIsNewlineDelimited(t *testing.T) {
	codec, _ := GetCodec(CodecJSON)

	var buf bytes.Buffer
	require.NoError(t, codec.NewEncoder(&buf).Encode(ActionBatch{Tick: 3}))

	assert.Equal(t, "{\"tick\":3,\"actions\":null}\n", buf.String())
}

func TestUnknownCodec(t *testing.T) {
	_, err := GetCodec("protobuf")
	assert.Error(t, err)

	codec, err := GetCodec("")
	require.NoError(t, err)
	assert.Equal(t, CodecJSON, codec.Name())
}

func TestActionBatchDecode(t *testing.T) {
	key := arena.AgentKey{Team: arena.Ionia, ID: 1}
	batch := ActionBatch{
		Tick: 7,
		Actions: []AgentAction{
			MakeAgentAction(key, arena.Action{MoveX: 1, Type: arena.ActionAttack, Intent: 2}),
		},
	}

	actions, err := batch.Decode(func(k arena.AgentKey) bool { return k.Team == arena.Ionia })
	require.NoError(t, err)
	assert.Equal(t, arena.Action{MoveX: 1, Type: arena.ActionAttack, Intent: 2}, actions[key])

	_, err = batch.Decode(func(k arena.AgentKey) bool { return k.Team == arena.Noxus })
	assert.Error(t, err)

	batch.Actions[0].Agent = "Demacia_0"
	_, err = batch.Decode(nil)
	assert.Error(t, err)
}
