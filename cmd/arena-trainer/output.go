package main

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"

	"github.com/cheggaaa/pb"
	"github.com/jasontodev/NoxusIoniaRL/arenaserver"
	"github.com/jasontodev/NoxusIoniaRL/arenaserver/comm"
	"github.com/jasontodev/NoxusIoniaRL/common/utils"
	"github.com/jasontodev/NoxusIoniaRL/game/arena"
	"github.com/ttacon/chalk"
)

func printInfo(message string) {
	fmt.Println(chalk.Blue.Color(message))
}

func teamColor(team arena.Team) chalk.Color {
	if team == arena.Noxus {
		return chalk.Red
	}

	return chalk.Cyan
}

// output renders episode results; with a known episode count they feed a progress bar.
type output struct {
	debug bool
	bar   *pb.ProgressBar

	wins  [2]int
	draws int
}

func newOutput(episodes int, debug bool) *output {
	o := &output{debug: debug}

	if episodes > 0 && !debug {
		o.bar = pb.New(episodes)
		o.bar.SetWidth(80)
		o.bar.ShowTimeLeft = true
		o.bar.Prefix(o.score())
		o.bar.Start()
	}

	return o
}

func (o *output) score() string {
	return "Noxus " + strconv.Itoa(o.wins[arena.Noxus]) +
		" | Ionia " + strconv.Itoa(o.wins[arena.Ionia]) +
		" | Draws " + strconv.Itoa(o.draws) + " "
}

func describeOutcome(outcome arena.Outcome) string {
	if !outcome.HasWinner {
		return chalk.Yellow.Color("draw")
	}

	return teamColor(outcome.Winner).Color(outcome.Winner.String() + " wins")
}

func describeEpisode(e arenaserver.EventEpisodeEnd) string {
	line := fmt.Sprintf("Episode %d %s by %s after %.1fs (%d ticks)",
		e.Episode, describeOutcome(e.Outcome), string(e.Outcome.Reason), e.Outcome.Duration, e.Ticks,
	)

	if e.Outcome.Banked[arena.Noxus] > 0 || e.Outcome.Banked[arena.Ionia] > 0 {
		line += fmt.Sprintf(", banked %d / %d", e.Outcome.Banked[arena.Noxus], e.Outcome.Banked[arena.Ionia])
	}

	keys := make([]arena.AgentKey, 0, len(e.Returns))
	for key := range e.Returns {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Team != keys[j].Team {
			return keys[i].Team < keys[j].Team
		}
		return keys[i].ID < keys[j].ID
	})

	for _, key := range keys {
		line += fmt.Sprintf("\n  %s %+.2f", teamColor(key.Team).Color(key.String()), e.Returns[key])
	}

	return line
}

func (o *output) consume(events <-chan interface{}) {
	for msg := range events {
		switch t := msg.(type) {
		case arenaserver.EventEpisodeEnd:
			if t.Outcome.HasWinner {
				o.wins[t.Outcome.Winner]++
			} else {
				o.draws++
			}

			if o.bar != nil {
				o.bar.Prefix(o.score())
				o.bar.Increment()
			} else {
				fmt.Println(describeEpisode(t))
			}

		case arenaserver.EventLog:
			utils.Debug("arena", t.Value)

		case arenaserver.EventWarn:
			if o.bar == nil {
				utils.WarnWith(t.Err)
			} else {
				utils.Debug("arena", t.Err.Error())
			}

		default:
			utils.Debug("arena", fmt.Sprintf("Unsupported message of type %s", reflect.TypeOf(msg)))
		}
	}
}

func (o *output) finish(summary arenaserver.Summary) {
	if o.bar != nil {
		o.bar.Finish()
	}

	fmt.Println("")
	fmt.Println(chalk.Bold.TextStyle(fmt.Sprintf("%d episodes, %d ticks in %s", summary.Episodes, summary.Ticks, summary.Duration)))
	fmt.Println(teamColor(arena.Noxus).Color(fmt.Sprintf("  Noxus %d", summary.Wins[arena.Noxus])))
	fmt.Println(teamColor(arena.Ionia).Color(fmt.Sprintf("  Ionia %d", summary.Wins[arena.Ionia])))
	fmt.Println(chalk.Yellow.Color(fmt.Sprintf("  Draws %d", summary.Draws)))
}

func printCommEvents(events <-chan interface{}) {
	for msg := range events {
		switch t := msg.(type) {
		case comm.EventConnConnected:
			printInfo(t.Team.String() + " policy connected (session " + t.Session + ")")
		case comm.EventConnDisconnected:
			if t.Err != nil {
				utils.Warn("comm", t.Team.String()+" policy disconnected: "+t.Err.Error())
			} else {
				utils.Warn("comm", t.Team.String()+" policy disconnected")
			}
		case comm.EventWarn:
			utils.Warn("comm", t.Err.Error())
		case comm.EventLog:
			utils.Debug("comm", t.Value)
		}
	}
}
