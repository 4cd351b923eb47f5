package main

import (
	"fmt"
	"os"

	"github.com/jasontodev/NoxusIoniaRL/common/utils"
	"github.com/jasontodev/NoxusIoniaRL/config"
	"github.com/jasontodev/NoxusIoniaRL/game/arena"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

func main() {
	app := makeapp()

	if err := app.Run(os.Args); err != nil {
		utils.FailWith(err)
	}
}

func makeapp() *cli.App {
	app := cli.NewApp()
	app.Description = "Noxus vs Ionia arena trainer"
	app.Name = "arena-trainer"
	app.Usage = "Run Noxus vs Ionia training episodes"

	configFlag := cli.StringFlag{Name: "config, c", Value: "", Usage: "YAML configuration file"}

	app.Commands = []cli.Command{
		{
			Name:    "run",
			Aliases: []string{"r"},
			Usage:   "Run training episodes",
			Flags: []cli.Flag{
				configFlag,
				cli.IntFlag{Name: "episodes, e", Usage: "Number of episodes to play; 0 plays until interrupted"},
				cli.IntFlag{Name: "tps", Usage: "Number of ticks per second"},
				cli.BoolFlag{Name: "realtime", Usage: "Pace ticks on the wall clock"},
				cli.StringFlag{Name: "record-file", Usage: "Destination file for recording the episodes"},
				cli.StringFlag{Name: "viz", Usage: "Address serving the visualization, eg 127.0.0.1:8081"},
				cli.BoolFlag{Name: "open", Usage: "Open the visualization in the browser"},
				cli.StringSliceFlag{Name: "remote", Usage: "Team played by a remote policy (noxus, ionia)"},
				cli.Int64Flag{Name: "seed", Usage: "Seed of the scripted policies"},
				cli.BoolFlag{Name: "debug", Usage: "Enable debug logging"},
			},
			Action: func(c *cli.Context) error {
				conf, err := config.Load(c.String("config"))
				if err != nil {
					return err
				}

				if err := applyFlags(c, &conf); err != nil {
					return err
				}

				return runAction(conf, runOptions{
					open:  c.Bool("open"),
					debug: c.Bool("debug"),
				})
			},
		},
		{
			Name:      "replay",
			Usage:     "Summarize a recorded archive",
			ArgsUsage: "<record-file>",
			Flags: []cli.Flag{
				cli.BoolFlag{Name: "all", Usage: "Print every recorded event"},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() != 1 {
					return errors.New("replay expects one record file")
				}

				return replayAction(c.Args().First(), c.Bool("all"))
			},
		},
		{
			Name:  "config",
			Usage: "Print the effective configuration",
			Flags: []cli.Flag{configFlag},
			Action: func(c *cli.Context) error {
				conf, err := config.Load(c.String("config"))
				if err != nil {
					return err
				}

				data, err := conf.YAML()
				if err != nil {
					return err
				}

				fmt.Print(string(data))
				return nil
			},
		},
	}

	return app
}

func applyFlags(c *cli.Context, conf *config.Config) error {
	if c.IsSet("episodes") {
		conf.Server.Episodes = c.Int("episodes")
	}

	if c.IsSet("tps") {
		conf.Server.Tps = c.Int("tps")
	}

	if c.IsSet("realtime") {
		conf.Server.Realtime = c.Bool("realtime")
	}

	if c.IsSet("record-file") {
		conf.Server.RecordFile = c.String("record-file")
	}

	if c.IsSet("viz") {
		conf.Server.VizAddr = c.String("viz")
	}

	if c.IsSet("seed") {
		conf.Server.Seed = c.Int64("seed")
	}

	for _, name := range c.StringSlice("remote") {
		team, err := arena.ParseTeam(name)
		if err != nil {
			return err
		}

		if team == arena.Noxus {
			conf.Server.Policies.Noxus = config.PolicyRemote
		} else {
			conf.Server.Policies.Ionia = config.PolicyRemote
		}
	}

	return conf.Validate()
}
