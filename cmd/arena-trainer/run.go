package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jasontodev/NoxusIoniaRL/agents/scripted"
	"github.com/jasontodev/NoxusIoniaRL/arenaserver"
	"github.com/jasontodev/NoxusIoniaRL/arenaserver/comm"
	"github.com/jasontodev/NoxusIoniaRL/common/healthcheck"
	"github.com/jasontodev/NoxusIoniaRL/common/influxdb"
	"github.com/jasontodev/NoxusIoniaRL/common/recording"
	"github.com/jasontodev/NoxusIoniaRL/common/utils"
	"github.com/jasontodev/NoxusIoniaRL/common/utils/vector"
	"github.com/jasontodev/NoxusIoniaRL/config"
	"github.com/jasontodev/NoxusIoniaRL/game/arena"
	"github.com/jasontodev/NoxusIoniaRL/physics/box2dworld"
	"github.com/jasontodev/NoxusIoniaRL/vizserver"
	"github.com/pkg/errors"
	"github.com/skratchdot/open-golang/open"
)

const (
	TIME_BEFORE_FORCE_QUIT = 10 * time.Second
	METRICS_INTERVAL       = 10 * time.Second
	ARENA_ID               = "1"
	ATTRACTOR_RADIUS       = 5.0
)

type runOptions struct {
	open  bool
	debug bool
}

func usesRemote(conf config.Config) bool {
	for _, team := range arena.Teams {
		if conf.Server.Policies.For(team) == config.PolicyRemote {
			return true
		}
	}

	return false
}

// pinCenter is the point scripted attractors orbit around.
func pinCenter(layout arena.Layout) vector.Vector2 {
	if layout.Bounds == nil {
		return vector.MakeNullVector2()
	}

	return layout.Bounds.Min.Vector().Add(layout.Bounds.Max.Vector()).DivScalar(2)
}

func makePolicies(conf config.Config, commserver *comm.CommServer) ([2]arenaserver.Policy, error) {
	var policies [2]arenaserver.Policy

	for _, team := range arena.Teams {
		switch conf.Server.Policies.For(team) {
		case config.PolicyIdle:
			policies[team] = arenaserver.Idle
		case config.PolicyRandom:
			policies[team] = arenaserver.PerAgent(scripted.NewRandom(conf.Arena, conf.Server.Seed+int64(team)))
		case config.PolicyAttractor:
			policies[team] = arenaserver.PerAgent(scripted.NewAttractor(conf.Arena, pinCenter(conf.Arena.Layout), ATTRACTOR_RADIUS))
		case config.PolicyRemote:
			if commserver == nil {
				return policies, errors.Errorf("%s is remote but no comm server is listening", team.String())
			}
			policies[team] = commserver.Policy(team)
		default:
			return policies, errors.Errorf("unknown policy %q for %s", conf.Server.Policies.For(team), team.String())
		}
	}

	return policies, nil
}

func runAction(conf config.Config, opts runOptions) error {
	if opts.debug {
		utils.LogFn = func(service, message string) {
			fmt.Println(service, message)
		}
	} else {
		utils.LogFn = func(service, message string) {}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	metrics, err := influxdb.NewClient("arena-trainer", conf.Server.Metrics, METRICS_INTERVAL)
	if err != nil {
		return err
	}
	defer metrics.TearDown()

	var recorder recording.Recorder = recording.MakeEmptyRecorder()
	var archive *recording.SingleArenaRecorder
	if conf.Server.RecordFile != "" {
		archive = recording.MakeSingleArenaRecorder(conf.Server.RecordFile)
		recorder = archive
	}
	defer recorder.Stop()

	worldOptions := box2dworld.DefaultOptions()
	worldOptions.Bounds = conf.Arena.Layout.Bounds
	world := box2dworld.NewWorld(worldOptions)

	health := healthcheck.NewHealthCheck()

	var commserver *comm.CommServer
	if usesRemote(conf) {
		commserver = comm.NewCommServer(conf.Server.CommAddr, comm.SessionInfo{
			Agents:          [2]int{conf.Arena.AgentsPerTeam, conf.Arena.AgentsPerTeam},
			ObservationSize: conf.Arena.ObservationSize(),
		})

		if err := commserver.Listen(); err != nil {
			return err
		}
		defer commserver.Close()

		go printCommEvents(commserver.Events())
	}

	policies, err := makePolicies(conf, commserver)
	if err != nil {
		return err
	}

	var viz arenaserver.Broadcaster
	var vizservice *vizserver.VizService

	if conf.Server.VizAddr != "" {
		vizservice = vizserver.NewVizService(conf.Server.VizAddr, health)
		viz = vizservice.AddArena(ARENA_ID, "Noxus vs Ionia", conf.Server.Tps, conf.Arena)

		if err := vizservice.Start(); err != nil {
			return err
		}

		defer func() {
			stopctx, stopcancel := context.WithTimeout(context.Background(), time.Second)
			defer stopcancel()
			vizservice.Stop(stopctx)
		}()
	}

	srv, err := arenaserver.NewServer(conf.Arena, world, policies, arenaserver.Options{
		ArenaID:         ARENA_ID,
		Tps:             conf.Server.Tps,
		Realtime:        conf.Server.Realtime,
		DecisionTimeout: conf.Server.DecisionTimeout,
		Recorder:        recorder,
		Metrics:         metrics,
		Viz:             viz,
	})
	if err != nil {
		return err
	}

	health.Register("arena", func() error {
		if !srv.IsRunning() {
			return errors.New("arena is not running")
		}
		return nil
	})

	if commserver != nil {
		for _, team := range arena.Teams {
			if conf.Server.Policies.For(team) != config.PolicyRemote {
				continue
			}

			remote := commserver.Policy(team)
			health.Register(team.String(), func() error {
				if !remote.IsConnected() {
					return errors.Errorf("%s policy is not connected", remote.GetTeam().String())
				}
				return nil
			})
		}
	}

	if vizservice != nil {
		url := "http://" + vizservice.Addr() + "/arena/" + ARENA_ID
		if opts.open {
			open.Run(url)
		}

		printInfo("Arena running at " + url)
	}

	if commserver != nil {
		for _, team := range arena.Teams {
			if conf.Server.Policies.For(team) != config.PolicyRemote {
				continue
			}

			printInfo("Waiting for the " + team.String() + " policy on " + commserver.Addr().String())
			if err := commserver.Policy(team).WaitConnected(ctx); err != nil {
				return errors.Wrapf(err, "%s policy never connected", team.String())
			}
		}
	}

	output := newOutput(conf.Server.Episodes, opts.debug)
	done := make(chan struct{})

	go func() {
		defer close(done)
		output.consume(srv.Events())
	}()

	// Force quit if the episodes do not wind down after a shutdown request
	go func() {
		<-ctx.Done()
		select {
		case <-done:
		case <-time.After(TIME_BEFORE_FORCE_QUIT):
			utils.FailWith(errors.New("forced shutdown"))
		}
	}()

	summary, err := srv.Run(ctx, conf.Server.Episodes)
	<-done

	output.finish(summary)

	if err != nil {
		return err
	}

	if archive != nil {
		printInfo("Recording written to " + archive.GetFilename())
	}

	return nil
}
