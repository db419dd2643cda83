package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/efa-tools/efadm/pkg/config"
	"github.com/efa-tools/efadm/pkg/efa"
	"github.com/efa-tools/efadm/pkg/monitor"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	_ "time/tzdata"
)

const version = "1.0.0"

func main() {
	if os.Getenv("EFADM_LOG_FORMAT") != "JSON" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if os.Getenv("EFADM_DEBUG") == "YES" {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version and exit",
	}

	app := &cli.App{
		Name:            "efadm",
		Usage:           "Departure monitor for EFA public transit services",
		Version:         version,
		ArgsUsage:       "<city> [<type>:]<name>",
		HideHelpCommand: true,

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "date",
				Aliases: []string{"d"},
				Usage:   "departure date (dd.mm.yyyy)",
			},
			&cli.StringFlag{
				Name:    "time",
				Aliases: []string{"t"},
				Usage:   "departure time (hh:mm)",
			},
			&cli.StringSliceFlag{
				Name:    "line",
				Aliases: []string{"l"},
				Usage:   "only show departures of these lines (comma separated, repeatable)",
			},
			&cli.BoolFlag{
				Name:    "linelist",
				Aliases: []string{"L"},
				Usage:   "list the lines serving the stop instead of departures",
			},
			&cli.StringSliceFlag{
				Name:    "platform",
				Aliases: []string{"p"},
				Usage:   "only show departures from these platforms (comma separated, repeatable)",
			},
			&cli.BoolFlag{
				Name:    "relative",
				Aliases: []string{"r"},
				Usage:   "show countdowns instead of absolute departure times",
			},
			&cli.StringFlag{
				Name:    "efa-url",
				Aliases: []string{"u"},
				Usage:   "EFA service endpoint",
			},
		},

		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 2 {
		cli.ShowAppHelp(c)

		return cli.Exit("efadm: exactly two arguments required: <city> [<type>:]<name>", 1)
	}

	endpoint := c.String("efa-url")
	if endpoint == "" {
		endpoint = os.Getenv("EFADM_EFA_URL")
	}
	if endpoint == "" {
		endpoint = config.Load().EFAURL
	}

	opts := monitor.Options{
		Place: c.Args().Get(0),
		Name:  c.Args().Get(1),

		Date:       c.String("date"),
		Time:       c.String("time"),
		ServiceURL: endpoint,

		LineFilters:     c.StringSlice("line"),
		PlatformFilters: c.StringSlice("platform"),

		ListLines: c.Bool("linelist"),
		Relative:  c.Bool("relative"),
	}

	err := monitor.Run(efa.NewClient(endpoint), opts, os.Stdout)

	var requestErr *monitor.RequestError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &requestErr):
		return cli.Exit(err.Error(), 2)
	case errors.Is(err, monitor.ErrUsage):
		cli.ShowAppHelp(c)

		return cli.Exit("efadm: "+err.Error(), 1)
	default:
		// covers ErrNothingToShow
		return cli.Exit(err.Error(), 1)
	}
}
