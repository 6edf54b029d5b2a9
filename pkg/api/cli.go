package api

import (
	"context"

	"github.com/metroplan/metroplan/pkg/dataaggregator"
	"github.com/metroplan/metroplan/pkg/database"
	"github.com/metroplan/metroplan/pkg/datastore"
	"github.com/metroplan/metroplan/pkg/planner"
	"github.com/metroplan/metroplan/pkg/redis_client"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the core web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					if err := redis_client.Connect(); err != nil {
						// Plans are still served without the results cache
						log.Warn().Err(err).Msg("Failed to connect to Redis, plan caching disabled")
					} else {
						SetupPlanCache()
					}

					planner.GlobalSetup()
					dataaggregator.GlobalSetup()

					if err := datastore.RebuildEngine(context.Background()); err != nil {
						return err
					}

					return SetupServer(c.String("listen"))
				},
			},
		},
	}
}
