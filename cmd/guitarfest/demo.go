package main

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/urfave/cli"
	"github.com/viant/guitarfest"
	"github.com/viant/guitarfest/model"
	"github.com/viant/guitarfest/service/priority"
)

var demoPreferences = model.Preferences{
	{Person: "ty", Items: []model.Item{"guitar_1", "guitar_2", "guitar_3"}},
	{Person: "helene", Items: []model.Item{"guitar_1", "guitar_2", "guitar_4"}},
	{Person: "alex", Items: []model.Item{"guitar_2", "guitar_3", "guitar_4"}},
	{Person: "dominique", Items: []model.Item{"guitar_4", "guitar_1", "guitar_2"}},
}

var demoOrder = priority.Fixed{"ty", "helene", "alex", "dominique"}

func demoCommand(logger *zerolog.Logger) cli.Command {
	return cli.Command{
		Name:  "demo",
		Usage: "allocate a built-in four person festival",
		Flags: commonFlags,
		Action: func(c *cli.Context) error {
			config := guitarfest.DefaultConfig()
			applyFlags(c, config)
			return execute(context.Background(), c, logger, config,
				guitarfest.WithPreferences(demoPreferences),
				guitarfest.WithPriorityProvider(demoOrder))
		},
	}
}
