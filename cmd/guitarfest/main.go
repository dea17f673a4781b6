package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli"
)

// Version is set at build time.
var Version = "dev"

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	app := cli.NewApp()
	app.Name = "guitarfest"
	app.Version = Version
	app.Usage = "allocate unique items to persons from ranked preferences in two rounds"
	app.Commands = []cli.Command{
		runCommand(&logger),
		demoCommand(&logger),
		eventsCommand(&logger),
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error().Err(err).Msg("guitarfest failed")
		os.Exit(1)
	}
}
