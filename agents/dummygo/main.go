package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/jasontodev/NoxusIoniaRL/agents/scripted"
	"github.com/jasontodev/NoxusIoniaRL/arenaserver"
	"github.com/jasontodev/NoxusIoniaRL/arenaserver/comm"
	"github.com/jasontodev/NoxusIoniaRL/arenaserver/protocol"
	"github.com/jasontodev/NoxusIoniaRL/common/utils"
	"github.com/jasontodev/NoxusIoniaRL/config"
	"github.com/jasontodev/NoxusIoniaRL/game/arena"
	"github.com/pkg/errors"
)

func env(key string, def string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}

	return def
}

// dummygo plays one team with random actions over the comm protocol.
func main() {
	team, err := arena.ParseTeam(env("TEAM", "ionia"))
	if err != nil {
		utils.FailWith(err)
	}

	conf, err := config.Load(env("CONFIG", ""))
	if err != nil {
		utils.FailWith(err)
	}

	seed, err := strconv.ParseInt(env("SEED", "1"), 10, 64)
	if err != nil {
		utils.FailWith(errors.Wrap(err, "invalid SEED"))
	}

	client, err := comm.NewClient(env("SERVER", conf.Server.CommAddr), team, env("CODEC", conf.Server.Codec))
	if err != nil {
		utils.FailWith(err)
	}

	client.Greetings = "Hello from dummygo !"

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := client.Connect(ctx); err != nil {
		utils.FailWith(err)
	}
	defer client.Close()

	ack := client.GetAck()
	utils.Debug("dummygo", "connected as "+ack.Team+" (session "+ack.Session+")")

	if ack.ObservationSize != conf.Arena.ObservationSize() {
		utils.FailWith(errors.Errorf(
			"observation size mismatch: server sends %d, local configuration expects %d",
			ack.ObservationSize, conf.Arena.ObservationSize(),
		))
	}

	policy := arenaserver.PerAgent(scripted.NewRandom(conf.Arena, seed))

	err = client.Serve(ctx, func(batch protocol.PerceptionBatch) protocol.ActionBatch {
		if batch.Final {
			utils.Debug("dummygo", "episode "+strconv.Itoa(batch.Episode)+" over")
		}

		actions, err := policy.Act(ctx, batch)
		if err != nil {
			utils.Warn("dummygo", err.Error())
		}

		return actions
	})

	if err != nil {
		utils.FailWith(err)
	}
}
