package arenaserver

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jasontodev/NoxusIoniaRL/arenaserver/protocol"
	"github.com/jasontodev/NoxusIoniaRL/common/influxdb"
	"github.com/jasontodev/NoxusIoniaRL/common/recording"
	"github.com/jasontodev/NoxusIoniaRL/common/utils"
	"github.com/jasontodev/NoxusIoniaRL/game/arena"
	"github.com/pkg/errors"
)

// Broadcaster receives one JSON frame per tick.
type Broadcaster interface {
	Broadcast(frame []byte)
}

type Options struct {
	ArenaID         string
	Tps             int
	Realtime        bool
	DecisionTimeout time.Duration

	Recorder recording.Recorder
	Metrics  *influxdb.Client
	Viz      Broadcaster
}

type Summary struct {
	Episodes int
	Wins     [2]int
	Draws    int
	Ticks    int
	Duration time.Duration
}

type vizFrame struct {
	Type string         `json:"type"`
	Data arena.Snapshot `json:"data"`
}

// Server runs episodes of one arena: it asks every team's policy for
// actions, steps the game and reports what happened.
type Server struct {
	options  Options
	game     *arena.ArenaGame
	policies [2]Policy

	events  chan interface{}
	ticks   *influxdb.Counter
	started int32
	running int32

	pending map[arena.AgentKey]float64 // rewards not yet delivered to a policy
	returns map[arena.AgentKey]float64
	failing [2]bool
	timing  *utils.Stopwatch // decide and step durations of the current episode
}

func NewServer(config arena.Config, world arena.PhysicalWorld, policies [2]Policy, options Options) (*Server, error) {
	if options.Tps <= 0 {
		return nil, errors.Errorf("tps must be positive, got %d", options.Tps)
	}

	if options.DecisionTimeout <= 0 {
		options.DecisionTimeout = 100 * time.Millisecond
	}

	if options.ArenaID == "" {
		options.ArenaID = "1"
	}

	if options.Recorder == nil {
		options.Recorder = recording.MakeEmptyRecorder()
	}

	for i, policy := range policies {
		if policy == nil {
			policies[i] = Idle
		}
	}

	game, err := arena.NewArenaGame(config, arena.Dependencies{
		World: world,
		Zones: arena.NewZonesFromLayout(config.Layout.Zones),
		Sink:  recording.NewRecorderSink(options.Recorder, options.ArenaID),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create arena")
	}

	return &Server{
		options:  options,
		game:     game,
		policies: policies,

		events: make(chan interface{}, 64),
		ticks:  influxdb.NewCounter(),

		pending: make(map[arena.AgentKey]float64),
		returns: make(map[arena.AgentKey]float64),
		timing:  utils.MakeStopwatch("episode timing"),
	}, nil
}

func (s *Server) GetGame() *arena.ArenaGame {
	return s.game
}

func (s *Server) GetArenaID() string {
	return s.options.ArenaID
}

func (s *Server) GetTicksPerSecond() int {
	return s.options.Tps
}

// Events is closed when Run returns.
func (s *Server) Events() <-chan interface{} {
	return s.events
}

func (s *Server) IsRunning() bool {
	return atomic.LoadInt32(&s.running) == 1
}

// Run plays episodes (forever when episodes <= 0) until ctx is done. A
// server runs once.
func (s *Server) Run(ctx context.Context, episodes int) (Summary, error) {
	summary := Summary{}

	if !atomic.CompareAndSwapInt32(&s.started, 0, 1) {
		return summary, errors.New("arena server already ran")
	}

	defer close(s.events)

	atomic.StoreInt32(&s.running, 1)
	defer atomic.StoreInt32(&s.running, 0)

	config := s.game.Config()
	if err := s.options.Recorder.RecordMetadata(s.options.ArenaID, &config); err != nil {
		return summary, errors.Wrap(err, "could not record metadata")
	}

	defer func() {
		if err := s.options.Recorder.Close(s.options.ArenaID); err != nil {
			s.warn(errors.Wrap(err, "could not close record"))
		}
	}()

	s.monitoring()

	var ticker *time.Ticker
	if s.options.Realtime {
		ticker = time.NewTicker(time.Duration(float64(time.Second) / float64(s.options.Tps)))
		defer ticker.Stop()
	}

	dt := 1.0 / float64(s.options.Tps)
	begin := time.Now()

	for episodes <= 0 || summary.Episodes < episodes {
		if ctx.Err() != nil {
			break
		}

		if s.game.State() == arena.StateIdle && !s.game.Start() {
			return summary, errors.New("could not start episode")
		}

		var actions map[arena.AgentKey]arena.Action
		if s.game.State() == arena.StateActive {
			s.timing.Start("decide")
			actions = s.decide(ctx, false)
			s.timing.Stop("decide")
		}

		s.timing.Start("step")
		result := s.game.Step(dt, actions)
		s.timing.Stop("step")
		s.ticks.Add(1)
		summary.Ticks++

		s.collect(result)
		s.broadcast()

		if result.Done {
			s.decide(ctx, true)
			s.endEpisode(result, &summary)
		}

		if ticker != nil {
			select {
			case <-ticker.C:
			case <-ctx.Done():
			}
		}
	}

	summary.Duration = time.Since(begin)

	return summary, nil
}

func (s *Server) perceptions(team arena.Team, final bool) protocol.PerceptionBatch {
	episode, _ := s.game.Episode()

	batch := protocol.PerceptionBatch{
		Tick:        s.game.Tick(),
		Episode:     episode.Number,
		Final:       final,
		Perceptions: make([]protocol.AgentPerception, 0),
	}

	for _, key := range s.game.Roster(team) {
		snapshot, _ := s.game.Agent(key)

		batch.Perceptions = append(batch.Perceptions, protocol.AgentPerception{
			Agent:       key.String(),
			Observation: s.game.Observe(key),
			Reward:      s.pending[key],
			Done:        final || snapshot.Dead,
		})

		delete(s.pending, key)
	}

	return batch
}

// decide asks both policies concurrently, each under the decision timeout.
// A failing policy leaves its agents without actions for the tick.
func (s *Server) decide(ctx context.Context, final bool) map[arena.AgentKey]arena.Action {
	var wg sync.WaitGroup
	var decisions [2]map[arena.AgentKey]arena.Action
	var errs [2]error

	for _, team := range arena.Teams {
		batch := s.perceptions(team, final)
		if len(batch.Perceptions) == 0 {
			continue
		}

		wg.Add(1)
		go func(team arena.Team, policy Policy, batch protocol.PerceptionBatch) {
			defer wg.Done()

			tickctx, cancel := context.WithTimeout(ctx, s.options.DecisionTimeout)
			defer cancel()

			reply, err := policy.Act(tickctx, batch)
			if err == nil && reply.Tick != batch.Tick {
				err = errors.Errorf("reply for tick %d while deciding tick %d", reply.Tick, batch.Tick)
			}

			if err == nil {
				decisions[team], err = reply.Decode(func(key arena.AgentKey) bool {
					return key.Team == team
				})
			}

			errs[team] = err
		}(team, s.policies[team], batch)
	}

	wg.Wait()

	actions := make(map[arena.AgentKey]arena.Action)

	for _, team := range arena.Teams {
		if err := errs[team]; err != nil {
			if !s.failing[team] && ctx.Err() == nil {
				s.warn(errors.Wrapf(err, "policy of %s failed; its agents stay idle", team.String()))
			}

			s.failing[team] = true
			continue
		}

		if s.failing[team] {
			s.log("policy of " + team.String() + " recovered")
		}

		s.failing[team] = false

		for key, action := range decisions[team] {
			actions[key] = action
		}
	}

	return actions
}

func (s *Server) collect(result arena.StepResult) {
	for _, agent := range result.Agents {
		s.pending[agent.Key] += agent.Reward
		s.returns[agent.Key] += agent.Reward
	}
}

func (s *Server) broadcast() {
	if s.options.Viz == nil {
		return
	}

	frame, err := json.Marshal(vizFrame{
		Type: "frame",
		Data: s.game.Snapshot(),
	})
	utils.Check(err, "could not serialize viz frame")

	s.options.Viz.Broadcast(frame)
}

func (s *Server) endEpisode(result arena.StepResult, summary *Summary) {
	if result.Outcome == nil {
		return
	}

	outcome := *result.Outcome

	summary.Episodes++
	if outcome.HasWinner {
		summary.Wins[outcome.Winner]++
	} else {
		summary.Draws++
	}

	ticks := result.Tick
	if episode, ok := s.game.Episode(); ok {
		ticks -= episode.StartTick
	}

	if s.options.Metrics != nil {
		winner := outcome.WinnerName()
		if winner == "" {
			winner = "none"
		}

		err := s.options.Metrics.WriteAppMetric("episode", map[string]string{
			"arena":  s.options.ArenaID,
			"winner": winner,
			"reason": string(outcome.Reason),
		}, map[string]interface{}{
			"episode":      result.Episode,
			"duration":     outcome.Duration,
			"ticks":        ticks,
			"banked_noxus": outcome.Banked[arena.Noxus],
			"banked_ionia": outcome.Banked[arena.Ionia],
		})
		if err != nil {
			s.warn(err)
		}
	}

	returns := s.returns
	s.returns = make(map[arena.AgentKey]float64)

	utils.Debug("arenaserver", s.timing.String())
	s.timing = utils.MakeStopwatch("episode timing")

	delivered := s.emit(EventEpisodeEnd{
		Episode:   result.Episode,
		EpisodeID: result.EpisodeID.String(),
		Outcome:   outcome,
		Ticks:     ticks,
		Returns:   returns,
	})

	if !delivered {
		utils.Debug("arenaserver", "episode "+strconv.Itoa(result.Episode)+" ended: "+describe(outcome))
	}
}

// emit never blocks the tick loop; events nobody drains are logged instead.
func (s *Server) emit(event interface{}) bool {
	select {
	case s.events <- event:
		return true
	default:
		return false
	}
}

func (s *Server) warn(err error) {
	if !s.emit(EventWarn{Err: err}) {
		utils.Warn("arenaserver", err.Error())
	}
}

// log never blocks the tick loop; the line is dropped when nobody listens.
func (s *Server) log(value string) {
	select {
	case s.events <- EventLog{Value: value}:
	default:
		utils.Debug("arenaserver", value)
	}
}
