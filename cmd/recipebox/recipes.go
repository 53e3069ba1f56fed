package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/poiesic/recipebox"
	"github.com/poiesic/recipebox/core"
	"github.com/poiesic/recipebox/recipe"
	"github.com/urfave/cli/v2"
)

func addCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add a recipe",
		ArgsUsage: " ",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "Recipe title", Required: true},
			&cli.StringFlag{Name: "description", Usage: "Recipe description"},
			&cli.IntFlag{Name: "servings", Usage: "Number of servings", Value: core.DefaultServings},
			&cli.IntFlag{Name: "prep", Usage: "Preparation time in minutes"},
			&cli.IntFlag{Name: "cook", Usage: "Cooking time in minutes"},
			&cli.BoolFlag{Name: "favorite", Usage: "Mark the recipe as a favorite"},
			&cli.StringSliceFlag{Name: "category", Aliases: []string{"c"}, Usage: "Category name (repeatable, created when missing)"},
			&cli.StringSliceFlag{Name: "tag", Usage: "Tag name (repeatable, created when missing)"},
			&cli.StringSliceFlag{Name: "ingredient", Aliases: []string{"i"}, Usage: "Ingredient as NAME[,AMOUNT[,UNIT]] (repeatable)"},
			&cli.StringSliceFlag{Name: "step", Aliases: []string{"s"}, Usage: "Cooking step instruction (repeatable, in order)"},
			&cli.StringSliceFlag{Name: "video", Usage: "Video link (repeatable)"},
		},
		Action: withBox(addRecipe),
	}
}

func addRecipe(c *cli.Context, box *recipebox.Box) error {
	recipes := box.Recipes()

	categoryIds, err := recipes.ResolveCategories(c.Context, c.StringSlice("category"))
	if err != nil {
		return err
	}
	tagIds, err := recipes.ResolveTags(c.Context, c.StringSlice("tag"))
	if err != nil {
		return err
	}

	details := &core.RecipeDetails{
		Recipe: &core.Recipe{
			Title:       c.String("title"),
			Description: c.String("description"),
			Servings:    c.Int("servings"),
			PrepTime:    c.Int("prep"),
			CookTime:    c.Int("cook"),
			Favorite:    c.Bool("favorite"),
			CategoryIds: categoryIds,
			TagIds:      tagIds,
		},
	}
	for _, raw := range c.StringSlice("ingredient") {
		ingredient, err := parseIngredient(raw)
		if err != nil {
			return err
		}
		details.Ingredients = append(details.Ingredients, ingredient)
	}
	for _, instruction := range c.StringSlice("step") {
		details.Steps = append(details.Steps, &core.CookingStep{Instruction: instruction})
	}

	links := c.StringSlice("video")
	if len(links) > 0 {
		videos, err := box.Videos().LookupAll(c.Context, links)
		if err != nil {
			return err
		}
		details.Videos = videos
	}

	saved, err := recipes.SaveRecipeWithRelated(c.Context, details)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Added %s (%s)\n", saved.Recipe.Title, saved.Recipe.Id)
	return nil
}

// parseIngredient parses NAME[,AMOUNT[,UNIT]].
func parseIngredient(raw string) (*core.Ingredient, error) {
	parts := strings.SplitN(raw, ",", 3)
	ingredient := &core.Ingredient{Name: strings.TrimSpace(parts[0])}
	if ingredient.Name == "" {
		return nil, fmt.Errorf("invalid ingredient %q: name is required", raw)
	}
	if len(parts) > 1 && strings.TrimSpace(parts[1]) != "" {
		amount, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ingredient %q: %w", raw, err)
		}
		ingredient.Amount = amount
	}
	if len(parts) > 2 {
		ingredient.Unit = strings.TrimSpace(parts[2])
	}
	return ingredient, nil
}

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List recipes by title",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "favorites", Aliases: []string{"f"}, Usage: "Only list favorites"},
		},
		Action: withBox(func(c *cli.Context, box *recipebox.Box) error {
			var (
				recipes []*core.Recipe
				err     error
			)
			if c.Bool("favorites") {
				recipes, err = box.Recipes().ListFavorites(c.Context)
			} else {
				recipes, err = box.Recipes().ListRecipes(c.Context)
			}
			if err != nil {
				return err
			}
			printRecipes(c.App.Writer, recipes)
			return nil
		}),
	}
}

func printRecipes(w io.Writer, recipes []*core.Recipe) {
	if len(recipes) == 0 {
		fmt.Fprintln(w, "No recipes found")
		return
	}
	for _, r := range recipes {
		star := " "
		if r.Favorite {
			star = "*"
		}
		fmt.Fprintf(w, "%s %s  %s  (%s)\n", star, r.Id, r.Title, core.FormatMinutes(r.TotalTime()))
	}
}

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show a recipe with its ingredients, steps and videos",
		ArgsUsage: "RECIPE_ID",
		Action: withBox(func(c *cli.Context, box *recipebox.Box) error {
			if err := requireArgs(c, 1, "RECIPE_ID"); err != nil {
				return err
			}
			details, err := box.Recipes().GetRecipeWithRelatedData(c.Context, c.Args().First())
			if err != nil {
				return err
			}
			categories, err := box.Recipes().Categories(c.Context)
			if err != nil {
				return err
			}
			tags, err := box.Recipes().Tags(c.Context)
			if err != nil {
				return err
			}
			printDetails(c.App.Writer, details, categoryNames(categories), tagNames(tags))
			return nil
		}),
	}
}

func categoryNames(categories []*core.Category) map[string]string {
	names := make(map[string]string, len(categories))
	for _, category := range categories {
		names[category.Id] = category.Name
	}
	return names
}

func tagNames(tags []*core.Tag) map[string]string {
	names := make(map[string]string, len(tags))
	for _, tag := range tags {
		names[tag.Id] = tag.Name
	}
	return names
}

func namesOf(ids []string, names map[string]string) string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := names[id]; ok {
			out = append(out, name)
		}
	}
	return strings.Join(out, ", ")
}

func printDetails(w io.Writer, d *core.RecipeDetails, categories, tags map[string]string) {
	r := d.Recipe
	fmt.Fprintln(w, r.Title)
	if r.Favorite {
		fmt.Fprintln(w, "Favorite")
	}
	if r.Description != "" {
		fmt.Fprintln(w, r.Description)
	}
	fmt.Fprintf(w, "Serves %d, prep %s, cook %s\n", r.Servings, core.FormatMinutes(r.PrepTime), core.FormatMinutes(r.CookTime))
	if s := namesOf(r.CategoryIds, categories); s != "" {
		fmt.Fprintf(w, "Categories: %s\n", s)
	}
	if s := namesOf(r.TagIds, tags); s != "" {
		fmt.Fprintf(w, "Tags: %s\n", s)
	}

	if len(d.Ingredients) > 0 {
		fmt.Fprintln(w, "\nIngredients:")
		for _, i := range d.Ingredients {
			line := i.Name
			if i.Amount > 0 {
				line = strings.Join(strings.Fields(strconv.FormatFloat(i.Amount, 'f', -1, 64)+" "+i.Unit+" "+i.Name), " ")
			}
			if i.Note != "" {
				line += " (" + i.Note + ")"
			}
			fmt.Fprintf(w, "  - %s\n", line)
		}
	}

	if len(d.Steps) > 0 {
		fmt.Fprintln(w, "\nSteps:")
		for _, s := range d.Steps {
			fmt.Fprintf(w, "  %d. %s", s.StepNumber, s.Instruction)
			if s.TimerDuration > 0 {
				fmt.Fprintf(w, " [timer %s]", core.FormatMinutes(s.TimerDuration))
			}
			fmt.Fprintln(w)
		}
	}

	if len(d.Videos) > 0 {
		fmt.Fprintln(w, "\nVideos:")
		for _, v := range d.Videos {
			fmt.Fprintf(w, "  - %s (%s) %s\n", v.Title, v.ChannelTitle, v.WatchURL())
		}
	}
}

func editCommand() *cli.Command {
	return &cli.Command{
		Name:      "edit",
		Usage:     "Change fields of a recipe",
		ArgsUsage: "RECIPE_ID",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Aliases: []string{"t"}, Usage: "New title"},
			&cli.StringFlag{Name: "description", Usage: "New description"},
			&cli.IntFlag{Name: "servings", Usage: "New number of servings"},
			&cli.IntFlag{Name: "prep", Usage: "New preparation time in minutes"},
			&cli.IntFlag{Name: "cook", Usage: "New cooking time in minutes"},
			&cli.StringSliceFlag{Name: "category", Aliases: []string{"c"}, Usage: "Replace categories (repeatable)"},
			&cli.StringSliceFlag{Name: "tag", Usage: "Replace tags (repeatable)"},
		},
		Action: withBox(editRecipe),
	}
}

func editRecipe(c *cli.Context, box *recipebox.Box) error {
	if err := requireArgs(c, 1, "RECIPE_ID"); err != nil {
		return err
	}

	var patch recipe.RecipePatch
	if c.IsSet("title") {
		patch.Title = ptr(c.String("title"))
	}
	if c.IsSet("description") {
		patch.Description = ptr(c.String("description"))
	}
	if c.IsSet("servings") {
		patch.Servings = ptr(c.Int("servings"))
	}
	if c.IsSet("prep") {
		patch.PrepTime = ptr(c.Int("prep"))
	}
	if c.IsSet("cook") {
		patch.CookTime = ptr(c.Int("cook"))
	}
	if c.IsSet("category") {
		ids, err := box.Recipes().ResolveCategories(c.Context, c.StringSlice("category"))
		if err != nil {
			return err
		}
		patch.CategoryIds = ids
	}
	if c.IsSet("tag") {
		ids, err := box.Recipes().ResolveTags(c.Context, c.StringSlice("tag"))
		if err != nil {
			return err
		}
		patch.TagIds = ids
	}

	updated, err := box.Recipes().UpdateRecipe(c.Context, c.Args().First(), patch)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Updated %s (%s)\n", updated.Title, updated.Id)
	return nil
}

func ptr[T any](v T) *T {
	return &v
}

func deleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete a recipe with its ingredients, steps and videos",
		ArgsUsage: "RECIPE_ID",
		Action: withBox(func(c *cli.Context, box *recipebox.Box) error {
			if err := requireArgs(c, 1, "RECIPE_ID"); err != nil {
				return err
			}
			id := c.Args().First()
			if err := box.Recipes().DeleteRecipe(c.Context, id); err != nil {
				return err
			}
			fmt.Fprintf(c.App.Writer, "Deleted %s\n", id)
			return nil
		}),
	}
}

func favoriteCommand() *cli.Command {
	return &cli.Command{
		Name:      "favorite",
		Usage:     "Toggle the favorite flag of a recipe",
		ArgsUsage: "RECIPE_ID",
		Action: withBox(func(c *cli.Context, box *recipebox.Box) error {
			if err := requireArgs(c, 1, "RECIPE_ID"); err != nil {
				return err
			}
			r, err := box.Recipes().ToggleFavorite(c.Context, c.Args().First())
			if err != nil {
				return err
			}
			state := "no longer a favorite"
			if r.Favorite {
				state = "now a favorite"
			}
			fmt.Fprintf(c.App.Writer, "%s is %s\n", r.Title, state)
			return nil
		}),
	}
}

func categoriesCommand() *cli.Command {
	return &cli.Command{
		Name:  "categories",
		Usage: "List or add categories",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "add", Usage: "Add a category with this name"},
			&cli.StringFlag{Name: "color", Usage: "Color of the added category", Value: core.DefaultCategoryColor},
			&cli.StringFlag{Name: "icon", Usage: "Icon of the added category", Value: core.DefaultCategoryIcon},
		},
		Action: withBox(func(c *cli.Context, box *recipebox.Box) error {
			if name := c.String("add"); name != "" {
				if _, err := box.Recipes().SaveCategory(c.Context, &core.Category{
					Name:  name,
					Color: c.String("color"),
					Icon:  c.String("icon"),
				}); err != nil {
					return err
				}
			}
			categories, err := box.Recipes().Categories(c.Context)
			if err != nil {
				return err
			}
			for _, category := range categories {
				fmt.Fprintf(c.App.Writer, "%s  %s  %s %s\n", category.Id, category.Name, category.Color, category.Icon)
			}
			return nil
		}),
	}
}

func tagsCommand() *cli.Command {
	return &cli.Command{
		Name:  "tags",
		Usage: "List or add tags",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "add", Usage: "Add a tag with this name"},
		},
		Action: withBox(func(c *cli.Context, box *recipebox.Box) error {
			if name := c.String("add"); name != "" {
				if _, err := box.Recipes().SaveTag(c.Context, &core.Tag{Name: name}); err != nil {
					return err
				}
			}
			tags, err := box.Recipes().Tags(c.Context)
			if err != nil {
				return err
			}
			for _, tag := range tags {
				fmt.Fprintf(c.App.Writer, "%s  %s\n", tag.Id, tag.Name)
			}
			return nil
		}),
	}
}
