package main

import (
	"fmt"

	"github.com/poiesic/recipebox"
	"github.com/urfave/cli/v2"
)

func videoCommand() *cli.Command {
	return &cli.Command{
		Name:  "video",
		Usage: "Look up and link recipe videos",
		Subcommands: []*cli.Command{
			{
				Name:      "lookup",
				Usage:     "Resolve video links to metadata without storing them",
				ArgsUsage: "URL...",
				Action: withBox(func(c *cli.Context, box *recipebox.Box) error {
					if err := requireArgs(c, 1, "URL..."); err != nil {
						return err
					}
					videos, err := box.Videos().LookupAll(c.Context, c.Args().Slice())
					for i, v := range videos {
						if v == nil {
							fmt.Fprintf(c.App.Writer, "%s: invalid video link\n", c.Args().Get(i))
							continue
						}
						fmt.Fprintf(c.App.Writer, "%s  %s (%s)\n", v.VideoId, v.Title, v.ChannelTitle)
					}
					return err
				}),
			},
			{
				Name:      "link",
				Usage:     "Link a video to a recipe",
				ArgsUsage: "RECIPE_ID URL",
				Action: withBox(func(c *cli.Context, box *recipebox.Box) error {
					if err := requireArgs(c, 2, "RECIPE_ID URL"); err != nil {
						return err
					}
					recipeID := c.Args().Get(0)
					if _, err := box.Recipes().GetRecipe(c.Context, recipeID); err != nil {
						return err
					}
					v, err := box.Videos().Lookup(c.Context, c.Args().Get(1))
					if err != nil {
						return err
					}
					linked, err := box.Videos().LinkToRecipe(c.Context, recipeID, v)
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "Linked %s (%s)\n", linked.Title, linked.Id)
					return nil
				}),
			},
			{
				Name:      "list",
				Usage:     "List the videos linked to a recipe",
				ArgsUsage: "RECIPE_ID",
				Action: withBox(func(c *cli.Context, box *recipebox.Box) error {
					if err := requireArgs(c, 1, "RECIPE_ID"); err != nil {
						return err
					}
					videos, err := box.Videos().LinkedVideos(c.Context, c.Args().First())
					if err != nil {
						return err
					}
					for _, v := range videos {
						fmt.Fprintf(c.App.Writer, "%s  %s  %s\n", v.Id, v.Title, v.WatchURL())
					}
					return nil
				}),
			},
			{
				Name:      "unlink",
				Usage:     "Remove a video from a recipe",
				ArgsUsage: "RECIPE_ID VIDEO_ID",
				Action: withBox(func(c *cli.Context, box *recipebox.Box) error {
					if err := requireArgs(c, 2, "RECIPE_ID VIDEO_ID"); err != nil {
						return err
					}
					removed, err := box.Videos().RemoveFromRecipe(c.Context, c.Args().Get(0), c.Args().Get(1))
					if err != nil {
						return err
					}
					if !removed {
						fmt.Fprintln(c.App.Writer, "Video is not linked to that recipe")
						return nil
					}
					fmt.Fprintf(c.App.Writer, "Removed %s\n", c.Args().Get(1))
					return nil
				}),
			},
		},
	}
}
