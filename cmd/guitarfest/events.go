package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli"
	"github.com/viant/afs"
	"github.com/viant/guitarfest/service/event"
	"github.com/viant/guitarfest/service/messaging"
)

func eventsCommand(logger *zerolog.Logger) cli.Command {
	return cli.Command{
		Name:      "events",
		Usage:     "print and acknowledge the pending run events of a file queue",
		ArgsUsage: "QUEUE_URL",
		Action: func(c *cli.Context) error {
			URL := c.Args().First()
			if URL == "" {
				return fmt.Errorf("queue URL was empty")
			}
			ctx := context.Background()
			publisher, err := event.PublisherOf[event.Notice](ctx, afs.New(), &event.Config{
				Vendor: string(messaging.VendorFs),
				URL:    URL,
			})
			if err != nil {
				return err
			}
			encoder := json.NewEncoder(os.Stdout)
			count, err := publisher.Drain(ctx, func(e *event.Event[event.Notice]) error {
				return encoder.Encode(e)
			})
			logger.Info().Int("events", count).Str("url", URL).Msg("events drained")
			return err
		},
	}
}
