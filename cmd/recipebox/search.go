package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/poiesic/recipebox"
	"github.com/poiesic/recipebox/core"
	"github.com/poiesic/recipebox/search"
	"github.com/urfave/cli/v2"
)

var errUnknownName = errors.New("no such name")

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Find recipes by text, ingredient, category, tag, favorite or cook time",
		ArgsUsage: "[QUERY]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "ingredient", Aliases: []string{"i"}, Usage: "Recipes using an ingredient whose name contains this text"},
			&cli.StringFlag{Name: "category", Aliases: []string{"c"}, Usage: "Only recipes in this category"},
			&cli.StringFlag{Name: "tag", Usage: "Only recipes with this tag"},
			&cli.BoolFlag{Name: "favorites", Aliases: []string{"f"}, Usage: "Only favorite recipes"},
			&cli.IntFlag{Name: "max-cook", Usage: "Only recipes cooking in at most this many minutes"},
			&cli.BoolFlag{Name: "explain", Usage: "Print how each filter narrows the result to stderr"},
		},
		Action: withBox(searchRecipes),
	}
}

func searchRecipes(c *cli.Context, box *recipebox.Box) error {
	searcher := box.Searcher()

	if ingredient := c.String("ingredient"); ingredient != "" {
		recipes, err := searcher.FilterByIngredient(c.Context, ingredient)
		if err != nil {
			return err
		}
		printRecipes(c.App.Writer, recipes)
		return nil
	}

	criteria := search.Criteria{
		Query:         strings.Join(c.Args().Slice(), " "),
		OnlyFavorites: c.Bool("favorites"),
		MaxCookTime:   c.Int("max-cook"),
	}
	if name := c.String("category"); name != "" {
		categories, err := box.Recipes().Categories(c.Context)
		if err != nil {
			return err
		}
		id, ok := findByName(categories, name, func(x *core.Category) (string, string) { return x.Id, x.Name })
		if !ok {
			return fmt.Errorf("category %q: %w", name, errUnknownName)
		}
		criteria.CategoryId = id
	}
	if name := c.String("tag"); name != "" {
		tags, err := box.Recipes().Tags(c.Context)
		if err != nil {
			return err
		}
		id, ok := findByName(tags, name, func(x *core.Tag) (string, string) { return x.Id, x.Name })
		if !ok {
			return fmt.Errorf("tag %q: %w", name, errUnknownName)
		}
		criteria.TagId = id
	}

	var monitor search.FilterMonitor
	if c.Bool("explain") {
		monitor = &explainMonitor{w: c.App.ErrWriter}
	}
	recipes, err := searcher.FilterByCriteriaWithMonitor(c.Context, criteria, monitor)
	if err != nil {
		return err
	}
	printRecipes(c.App.Writer, recipes)
	return nil
}

func findByName[T any](items []T, name string, fields func(T) (string, string)) (string, bool) {
	for _, item := range items {
		id, itemName := fields(item)
		if strings.EqualFold(strings.TrimSpace(itemName), strings.TrimSpace(name)) {
			return id, true
		}
	}
	return "", false
}

// explainMonitor prints every filtering stage.
type explainMonitor struct {
	w io.Writer
}

var _ search.FilterMonitor = (*explainMonitor)(nil)

func (m *explainMonitor) Start(criteria search.Criteria) {
	if criteria.IsEmpty() {
		fmt.Fprintln(m.w, "no criteria, listing every recipe")
	}
}

func (m *explainMonitor) AfterScan(total int) {
	fmt.Fprintf(m.w, "scanned %d recipes\n", total)
}

func (m *explainMonitor) AfterPredicate(name string, remaining int) {
	fmt.Fprintf(m.w, "  %-10s -> %d\n", name, remaining)
}

func (m *explainMonitor) Finish(results []*core.Recipe) {
	fmt.Fprintf(m.w, "%d matching\n", len(results))
}
