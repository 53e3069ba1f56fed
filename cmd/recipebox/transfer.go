package main

import (
	"fmt"
	"os"

	"github.com/poiesic/recipebox"
	"github.com/poiesic/recipebox/transfer"
	"github.com/urfave/cli/v2"
)

func importCommand() *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "Import recipes from a YAML recipe book",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "batch-size",
				Usage: "Number of recipes to save in each batch",
				Value: transfer.DefaultBatchSize,
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "Don't report progress",
			},
		},
		Action: withBox(func(c *cli.Context, box *recipebox.Box) error {
			if err := requireArgs(c, 1, "FILE"); err != nil {
				return err
			}
			f, err := os.Open(c.Args().First())
			if err != nil {
				return err
			}
			defer f.Close()

			progress := c.App.ErrWriter
			if c.Bool("quiet") {
				progress = nil
			}
			importer, err := box.NewImporter(progress, transfer.WithBatchSize(c.Int("batch-size")))
			if err != nil {
				return err
			}
			result, err := importer.Import(c.Context, f)
			if result != nil {
				fmt.Fprintf(c.App.Writer, "Imported %d recipes, skipped %d\n", result.Imported, result.Skipped)
				for _, warning := range result.Warnings {
					fmt.Fprintf(c.App.ErrWriter, "warning: %s\n", warning)
				}
			}
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}
			return nil
		}),
	}
}

func exportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Export every recipe as a YAML recipe book",
		ArgsUsage: "[FILE]",
		Action: withBox(func(c *cli.Context, box *recipebox.Box) error {
			exporter, err := box.NewExporter()
			if err != nil {
				return err
			}

			w := c.App.Writer
			if c.NArg() > 0 {
				f, err := os.Create(c.Args().First())
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}

			n, err := exporter.Export(c.Context, w)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			if c.NArg() > 0 {
				fmt.Fprintf(c.App.Writer, "Exported %d recipes to %s\n", n, c.Args().First())
			}
			return nil
		}),
	}
}
