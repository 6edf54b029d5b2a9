package datastore

import (
	"context"

	"github.com/kr/pretty"
	"github.com/metroplan/metroplan/pkg/database"
	"github.com/metroplan/metroplan/pkg/mndf"
	"github.com/metroplan/metroplan/pkg/planner"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "planner-debug",
		Usage: "Run a single journey plan against the stored network and dump it",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "origin",
				Usage:    "origin station identifier",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "destination",
				Usage:    "destination station identifier",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "preference",
				Value: string(mndf.PreferenceFastest),
				Usage: "fastest, cheapest or fewest-transfers",
			},
		},
		Action: func(c *cli.Context) error {
			if err := database.Connect(); err != nil {
				return err
			}

			planner.GlobalSetup()

			if err := RebuildEngine(context.Background()); err != nil {
				return err
			}

			planResults, err := planner.GlobalEngine.Plan(planner.PlanRequest{
				Origin:      c.String("origin"),
				Destination: c.String("destination"),
				Preference:  mndf.Preference(c.String("preference")),
			})
			if err != nil {
				return err
			}

			pretty.Println(planResults)

			return nil
		},
	}
}
