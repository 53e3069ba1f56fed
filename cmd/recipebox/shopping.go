package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/poiesic/recipebox"
	"github.com/urfave/cli/v2"
)

func shoppingCommand() *cli.Command {
	return &cli.Command{
		Name:  "shopping",
		Usage: "Build shopping lists from recipes",
		Subcommands: []*cli.Command{
			{
				Name:      "create",
				Usage:     "Create a shopping list from the ingredients of recipes",
				ArgsUsage: "RECIPE_ID...",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "List name", Required: true},
				},
				Action: withBox(func(c *cli.Context, box *recipebox.Box) error {
					list, err := box.Shopping().CreateList(c.Context, c.String("name"), c.Args().Slice()...)
					if err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "Created %s (%s)\n", list.Name, list.Id)
					return nil
				}),
			},
			{
				Name:  "lists",
				Usage: "List shopping lists, newest first",
				Action: withBox(func(c *cli.Context, box *recipebox.Box) error {
					lists, err := box.Shopping().Lists(c.Context)
					if err != nil {
						return err
					}
					for _, list := range lists {
						fmt.Fprintf(c.App.Writer, "%s  %s  %s\n", list.Id, list.Name, list.CreatedAt.Local().Format("2006-01-02 15:04"))
					}
					return nil
				}),
			},
			{
				Name:      "items",
				Usage:     "Show the items of a shopping list",
				ArgsUsage: "LIST_ID",
				Action: withBox(func(c *cli.Context, box *recipebox.Box) error {
					if err := requireArgs(c, 1, "LIST_ID"); err != nil {
						return err
					}
					items, err := box.Shopping().Items(c.Context, c.Args().First())
					if err != nil {
						return err
					}
					for _, item := range items {
						check := "[ ]"
						if item.Checked {
							check = "[x]"
						}
						amount := ""
						if item.Amount > 0 {
							amount = strconv.FormatFloat(item.Amount, 'f', -1, 64)
						}
						line := strings.Join(strings.Fields(strings.Join([]string{amount, item.Unit, item.Name}, " ")), " ")
						fmt.Fprintf(c.App.Writer, "%s %s  %s\n", check, item.Id, line)
					}
					return nil
				}),
			},
			{
				Name:      "toggle",
				Usage:     "Check or uncheck a shopping item",
				ArgsUsage: "ITEM_ID",
				Action: withBox(func(c *cli.Context, box *recipebox.Box) error {
					if err := requireArgs(c, 1, "ITEM_ID"); err != nil {
						return err
					}
					item, err := box.Shopping().ToggleItem(c.Context, c.Args().First())
					if err != nil {
						return err
					}
					state := "unchecked"
					if item.Checked {
						state = "checked"
					}
					fmt.Fprintf(c.App.Writer, "%s %s\n", item.Name, state)
					return nil
				}),
			},
			{
				Name:      "delete",
				Usage:     "Delete a shopping list and its items",
				ArgsUsage: "LIST_ID",
				Action: withBox(func(c *cli.Context, box *recipebox.Box) error {
					if err := requireArgs(c, 1, "LIST_ID"); err != nil {
						return err
					}
					if err := box.Shopping().DeleteList(c.Context, c.Args().First()); err != nil {
						return err
					}
					fmt.Fprintf(c.App.Writer, "Deleted %s\n", c.Args().First())
					return nil
				}),
			},
		},
	}
}
