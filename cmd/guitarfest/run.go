package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli"
	"github.com/viant/afs"
	"github.com/viant/guitarfest"
	"github.com/viant/guitarfest/service/messaging"
	"github.com/viant/guitarfest/tracing"
)

var commonFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "report-format",
		Usage: "report format: text, json or yaml `FORMAT`",
	},
	cli.StringFlag{
		Name:  "output, o",
		Usage: "report destination `URL`, stdout when empty",
	},
	cli.StringFlag{
		Name:  "events-url",
		Usage: "publish run events to a file queue at `URL`",
	},
	cli.StringFlag{
		Name:  "log-level",
		Value: "info",
		Usage: "minimum log `LEVEL`",
	},
	cli.StringFlag{
		Name:  "trace-file",
		Usage: "write OpenTelemetry spans to `FILE`",
	},
}

func runCommand(logger *zerolog.Logger) cli.Command {
	return cli.Command{
		Name:      "run",
		Usage:     "allocate items from a preference document",
		ArgsUsage: "[PREFERENCES_URL]",
		Flags: append([]cli.Flag{
			cli.StringFlag{
				Name:  "config, c",
				Usage: "YAML configuration `URL`",
			},
			cli.StringFlag{
				Name:  "preferences, p",
				Usage: "preference document `URL`",
			},
			cli.StringFlag{
				Name:  "format",
				Usage: "preference document format: csv, tsv or yaml, inferred from the extension when empty",
			},
			cli.BoolFlag{
				Name:  "header",
				Usage: "skip the first row of a csv or tsv document",
			},
			cli.StringSliceFlag{
				Name:  "vip",
				Usage: "person served before everyone else, repeatable, in order",
			},
			cli.Int64Flag{
				Name:  "seed",
				Usage: "priority shuffle seed, random when 0",
			},
			cli.StringFlag{
				Name:  "round-two-scope",
				Usage: "choices removed before round two: pairs or claimed",
			},
			cli.IntFlag{
				Name:  "max-ranking",
				Usage: "longest accepted preference list, 0 for no bound",
			},
		}, commonFlags...),
		Action: func(c *cli.Context) error {
			ctx := context.Background()
			fs := afs.New()
			config, err := guitarfest.LoadConfig(ctx, fs, c.String("config"))
			if err != nil {
				return err
			}
			applyFlags(c, config)
			return execute(ctx, c, logger, config, guitarfest.WithFs(fs))
		},
	}
}

func applyFlags(c *cli.Context, config *guitarfest.Config) {
	if url := c.Args().First(); url != "" {
		config.Preferences.URL = url
	}
	if c.IsSet("preferences") {
		config.Preferences.URL = c.String("preferences")
	}
	if c.IsSet("format") {
		config.Preferences.Format = c.String("format")
	}
	if c.IsSet("header") {
		config.Preferences.Header = c.Bool("header")
	}
	if c.IsSet("vip") {
		config.Priority.VIPs = c.StringSlice("vip")
	}
	if c.IsSet("seed") {
		config.Priority.Seed = c.Int64("seed")
	}
	if c.IsSet("round-two-scope") {
		config.Allocation.RoundTwoScope = c.String("round-two-scope")
	}
	if c.IsSet("max-ranking") {
		config.Allocation.MaxRanking = c.Int("max-ranking")
	}
	if c.IsSet("report-format") {
		config.Report.Format = c.String("report-format")
	}
	if c.IsSet("output") {
		config.Report.URL = c.String("output")
	}
	if c.IsSet("events-url") {
		config.Events.Vendor = string(messaging.VendorFs)
		config.Events.URL = c.String("events-url")
	}
}

// execute runs one allocation and emits the report; nothing is written when
// the run fails.
func execute(ctx context.Context, c *cli.Context, logger *zerolog.Logger, config *guitarfest.Config, options ...guitarfest.Option) error {
	level, err := zerolog.ParseLevel(c.String("log-level"))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	runLogger := logger.Level(level)

	if traceFile := c.String("trace-file"); traceFile != "" {
		if err = tracing.Init("guitarfest", Version, traceFile); err != nil {
			return fmt.Errorf("failed to init tracing: %w", err)
		}
	}

	options = append(options, guitarfest.WithConfig(config), guitarfest.WithLogger(runLogger))
	srv, err := guitarfest.New(options...)
	if err != nil {
		return err
	}
	run, err := srv.Run(ctx)
	if err != nil {
		return err
	}
	data, err := srv.Report(ctx, run)
	if err != nil {
		return err
	}
	if config.Report.URL == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	runLogger.Info().Str("run", run.ID).Str("url", config.Report.URL).Msg("report written")
	return nil
}
