package main

import (
	"fmt"

	"github.com/jasontodev/NoxusIoniaRL/common/replay"
	"github.com/jasontodev/NoxusIoniaRL/game/arena"
	"github.com/ttacon/chalk"
)

func describeEvent(event arena.Event) string {
	switch event.Type {
	case arena.EventAttack:
		return fmt.Sprintf("%s hits %s for %d", event.Agent, event.Target, event.Damage)
	case arena.EventDeath:
		return fmt.Sprintf("%s killed by %s", event.Agent, event.Killer)
	case arena.EventPickup:
		return fmt.Sprintf("%s picks up %d mana", event.Agent, event.Amount)
	case arena.EventDeposit:
		return fmt.Sprintf("%s banks %d mana", event.Agent, event.Amount)
	case arena.EventSignal:
		intent := 0
		if event.Intent != nil {
			intent = *event.Intent
		}
		return fmt.Sprintf("%s signals %d", event.Agent, intent)
	case arena.EventEpisodeStart:
		return "start"
	case arena.EventEpisodeEnd:
		if event.Winner == "" {
			return fmt.Sprintf("draw by %s after %.1fs", string(event.Reason), event.Duration)
		}
		return fmt.Sprintf("%s wins by %s after %.1fs", event.Winner, string(event.Reason), event.Duration)
	}

	return string(event.Type)
}

func replayAction(filename string, all bool) error {
	replayer, err := replay.NewReplayer(filename)
	if err != nil {
		return err
	}
	defer replayer.Close()

	metadata := replayer.Metadata()
	printInfo("Arena " + metadata.ArenaID + " recorded " + metadata.Date)

	wins := map[string]int{}
	episodes := 0

	err = replayer.Read(func(event arena.Event) error {
		if event.Type == arena.EventEpisodeEnd {
			episodes++
			wins[event.Winner]++
		}

		if all || event.Type == arena.EventEpisodeEnd {
			fmt.Printf("[%d:%d] %s\n", event.Episode, event.Tick, describeEvent(event))
		}

		return nil
	})
	if err != nil {
		return err
	}

	fmt.Println("")
	fmt.Println(chalk.Bold.TextStyle(fmt.Sprintf("%d episodes", episodes)))
	fmt.Println(teamColor(arena.Noxus).Color(fmt.Sprintf("  Noxus %d", wins[arena.Noxus.String()])))
	fmt.Println(teamColor(arena.Ionia).Color(fmt.Sprintf("  Ionia %d", wins[arena.Ionia.String()])))
	fmt.Println(chalk.Yellow.Color(fmt.Sprintf("  Draws %d", wins[""])))

	return nil
}
