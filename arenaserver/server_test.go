package arenaserver

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/jasontodev/NoxusIoniaRL/arenaserver/protocol"
	"github.com/jasontodev/NoxusIoniaRL/common/recording"
	"github.com/jasontodev/NoxusIoniaRL/game/arena"
	"github.com/jasontodev/NoxusIoniaRL/physics/box2dworld"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func duelConfig() arena.Config {
	cfg := arena.DefaultConfig()
	cfg.Layout = arena.Layout{
		NoxusSpawns: []arena.Point{{X: 0, Z: 0}, {X: 0, Z: 5}},
		IoniaSpawns: []arena.Point{{X: 1, Z: 0}, {X: 1, Z: 5}},
	}

	return cfg
}

func shortConfig() arena.Config {
	cfg := duelConfig()
	cfg.MaxDuration = 1
	cfg.ResetDelay = 0.2

	return cfg
}

func newTestServer(t *testing.T, cfg arena.Config, policies [2]Policy, options Options) *Server {
	if options.Tps == 0 {
		options.Tps = 50
	}

	srv, err := NewServer(cfg, box2dworld.NewWorld(box2dworld.DefaultOptions()), policies, options)
	require.NoError(t, err)

	return srv
}

// drain collects every event until the server closes its channel.
func drain(srv *Server) (*sync.WaitGroup, *[]interface{}) {
	var wg sync.WaitGroup
	events := make([]interface{}, 0)

	wg.Add(1)
	go func() {
		defer wg.Done()
		for event := range srv.Events() {
			events = append(events, event)
		}
	}()

	return &wg, &events
}

func episodeEnds(events []interface{}) []EventEpisodeEnd {
	res := make([]EventEpisodeEnd, 0)
	for _, event := range events {
		if end, ok := event.(EventEpisodeEnd); ok {
			res = append(res, end)
		}
	}

	return res
}

func warnings(events []interface{}) []EventWarn {
	res := make([]EventWarn, 0)
	for _, event := range events {
		if warn, ok := event.(EventWarn); ok {
			res = append(res, warn)
		}
	}

	return res
}

var attackEverything = PerAgent(AgentPolicyFunc(func(key arena.AgentKey, perception protocol.AgentPerception) arena.Action {
	return arena.Action{Type: arena.ActionAttack}
}))

func TestTimeoutEpisodes(t *testing.T) {
	srv := newTestServer(t, shortConfig(), [2]Policy{Idle, Idle}, Options{})
	wg, events := drain(srv)

	summary, err := srv.Run(context.Background(), 2)
	require.NoError(t, err)
	wg.Wait()

	assert.Equal(t, 2, summary.Episodes)
	assert.Equal(t, 2, summary.Wins[arena.Ionia], "survival objective")
	assert.Equal(t, 0, summary.Draws)

	ends := episodeEnds(*events)
	require.Len(t, ends, 2)
	assert.Equal(t, 1, ends[0].Episode)
	assert.Equal(t, 2, ends[1].Episode)
	assert.Equal(t, arena.ReasonTimeout, ends[0].Outcome.Reason)
	assert.InDelta(t, 50, ends[0].Ticks, 1)
	assert.Len(t, ends[0].Returns, 4)
	assert.NotEqual(t, ends[0].EpisodeID, ends[1].EpisodeID)
	assert.False(t, srv.IsRunning())
}

func TestAttackingTeamWins(t *testing.T) {
	srv := newTestServer(t, duelConfig(), [2]Policy{attackEverything, Idle}, Options{})
	wg, events := drain(srv)

	summary, err := srv.Run(context.Background(), 1)
	require.NoError(t, err)
	wg.Wait()

	assert.Equal(t, 1, summary.Wins[arena.Noxus])

	ends := episodeEnds(*events)
	require.Len(t, ends, 1)
	assert.Equal(t, arena.ReasonElimination, ends[0].Outcome.Reason)

	cfg := duelConfig()
	noxus0 := arena.AgentKey{Team: arena.Noxus, ID: 0}
	ionia0 := arena.AgentKey{Team: arena.Ionia, ID: 0}
	assert.True(t, ends[0].Returns[noxus0] > cfg.Rewards.Win-1)
	assert.True(t, ends[0].Returns[ionia0] < cfg.Rewards.Loss)
}

type recordingPolicy struct {
	mu      sync.Mutex
	batches []protocol.PerceptionBatch
}

func (p *recordingPolicy) Act(ctx context.Context, batch protocol.PerceptionBatch) (protocol.ActionBatch, error) {
	p.mu.Lock()
	p.batches = append(p.batches, batch)
	p.mu.Unlock()

	return protocol.ActionBatch{Tick: batch.Tick}, nil
}

func TestPoliciesReceiveTheirTeam(t *testing.T) {
	noxus := &recordingPolicy{}
	ionia := &recordingPolicy{}

	cfg := shortConfig()
	srv := newTestServer(t, cfg, [2]Policy{noxus, ionia}, Options{})
	wg, _ := drain(srv)

	_, err := srv.Run(context.Background(), 1)
	require.NoError(t, err)
	wg.Wait()

	require.NotEmpty(t, noxus.batches)
	first := noxus.batches[0]
	assert.Equal(t, 1, first.Episode)
	require.Len(t, first.Perceptions, 2)
	assert.Equal(t, "Noxus_0", first.Perceptions[0].Agent)
	assert.Len(t, first.Perceptions[0].Observation, cfg.ObservationSize())

	last := noxus.batches[len(noxus.batches)-1]
	assert.True(t, last.Final)
	assert.True(t, last.Perceptions[0].Done)
	assert.Equal(t, cfg.Rewards.Loss, last.Perceptions[0].Reward, "terminal reward is delivered with the final batch")

	require.NotEmpty(t, ionia.batches)
	assert.Equal(t, "Ionia_1", ionia.batches[0].Perceptions[1].Agent)
	assert.Equal(t, cfg.Rewards.Win, ionia.batches[len(ionia.batches)-1].Perceptions[0].Reward)
}

func TestSlowPolicyIsSkipped(t *testing.T) {
	slow := PolicyFunc(func(ctx context.Context, batch protocol.PerceptionBatch) (protocol.ActionBatch, error) {
		<-ctx.Done()
		return protocol.ActionBatch{}, ctx.Err()
	})

	cfg := shortConfig()
	cfg.MaxDuration = 0.1

	srv := newTestServer(t, cfg, [2]Policy{slow, Idle}, Options{DecisionTimeout: time.Millisecond})
	wg, events := drain(srv)

	summary, err := srv.Run(context.Background(), 1)
	require.NoError(t, err)
	wg.Wait()

	assert.Equal(t, 1, summary.Episodes)
	assert.Len(t, warnings(*events), 1, "a failing streak is reported once")
}

func TestForeignActionsAreRejected(t *testing.T) {
	cheat := PolicyFunc(func(ctx context.Context, batch protocol.PerceptionBatch) (protocol.ActionBatch, error) {
		return protocol.ActionBatch{
			Tick: batch.Tick,
			Actions: []protocol.AgentAction{
				protocol.MakeAgentAction(arena.AgentKey{Team: arena.Ionia, ID: 0}, arena.Action{MoveX: 1}),
			},
		}, nil
	})

	cfg := shortConfig()
	cfg.MaxDuration = 0.1

	srv := newTestServer(t, cfg, [2]Policy{cheat, Idle}, Options{})
	wg, events := drain(srv)

	_, err := srv.Run(context.Background(), 1)
	require.NoError(t, err)
	wg.Wait()

	require.Len(t, warnings(*events), 1)
	assert.Contains(t, warnings(*events)[0].Err.Error(), "foreign agent")
}

func TestRunStopsWithContext(t *testing.T) {
	srv := newTestServer(t, duelConfig(), [2]Policy{Idle, Idle}, Options{Realtime: true, Tps: 100})
	wg, _ := drain(srv)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	summary, err := srv.Run(ctx, 0)
	require.NoError(t, err)
	wg.Wait()

	assert.Equal(t, 0, summary.Episodes)
	assert.True(t, summary.Ticks > 0)
	assert.True(t, summary.Ticks < 50, "realtime mode is throttled")

	_, err = srv.Run(context.Background(), 1)
	assert.Error(t, err, "a server runs once")
}

func TestRunWithoutEventConsumer(t *testing.T) {
	cfg := shortConfig()
	cfg.MaxDuration = 0.1

	srv := newTestServer(t, cfg, [2]Policy{Idle, Idle}, Options{})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	summary, err := srv.Run(ctx, 100)
	require.NoError(t, err)
	require.NoError(t, ctx.Err(), "the tick loop never waits for an event reader")

	assert.Equal(t, 100, summary.Episodes)

	buffered := 0
	for range srv.Events() {
		buffered++
	}
	assert.Equal(t, cap(srv.events), buffered)
}

type frameCollector struct {
	frames int
}

func (c *frameCollector) Broadcast(frame []byte) {
	c.frames++
}

func TestRecordingAndViz(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "record.zip")
	viz := &frameCollector{}

	srv := newTestServer(t, shortConfig(), [2]Policy{attackEverything, Idle}, Options{
		Recorder: recording.MakeSingleArenaRecorder(filename),
		Viz:      viz,
	})
	wg, _ := drain(srv)

	summary, err := srv.Run(context.Background(), 1)
	require.NoError(t, err)
	wg.Wait()

	assert.Equal(t, summary.Ticks, viz.frames)

	_, err = os.Stat(filename)
	assert.NoError(t, err)
}
