package dataimporter

import (
	"context"

	"github.com/metroplan/metroplan/pkg/database"
	"github.com/urfave/cli/v2"
)

const bundledDatasetPath = "data/bangkok.yaml"

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "data-importer",
		Usage: "Import network topology & fare datasets",
		Subcommands: []*cli.Command{
			{
				Name:      "file",
				Usage:     "import a YAML network dataset file",
				ArgsUsage: "<dataset path>",
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					path := c.Args().First()
					if path == "" {
						path = bundledDatasetPath
					}

					dataset, err := LoadDataset(path)
					if err != nil {
						return err
					}

					return ImportDataset(context.Background(), dataset)
				},
			},
			{
				Name:  "seed",
				Usage: "import the bundled demo network dataset",
				Action: func(c *cli.Context) error {
					if err := database.Connect(); err != nil {
						return err
					}

					dataset, err := LoadDataset(bundledDatasetPath)
					if err != nil {
						return err
					}

					return ImportDataset(context.Background(), dataset)
				},
			},
		},
	}
}
