package transfer

import (
	"context"
	"io"
	"log/slog"

	"github.com/poiesic/recipebox/core"
	"github.com/poiesic/recipebox/recipe"
)

// Exporter writes the database's recipes as a recipe book.
type Exporter struct {
	recipes *recipe.Service
	logger  *slog.Logger
}

// NewExporter creates an exporter reading through recipes.
func NewExporter(recipes *recipe.Service, logger *slog.Logger) (*Exporter, error) {
	if recipes == nil {
		return nil, ErrRecipeServiceRequired
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{recipes: recipes, logger: logger}, nil
}

// Export writes every recipe, ordered by title, with its related data to w and
// returns how many recipes were written.
func (e *Exporter) Export(ctx context.Context, w io.Writer) (int, error) {
	book, err := e.Book(ctx)
	if err != nil {
		return 0, err
	}
	if err := WriteBook(w, book); err != nil {
		return 0, err
	}
	e.logger.Info("export complete", "recipes", len(book.Recipes))
	return len(book.Recipes), nil
}

// Book builds the recipe book Export writes.
func (e *Exporter) Book(ctx context.Context) (*Book, error) {
	categories, err := e.recipes.Categories(ctx)
	if err != nil {
		return nil, err
	}
	categoryNames := make(map[string]string, len(categories))
	for _, c := range categories {
		categoryNames[c.Id] = c.Name
	}
	tags, err := e.recipes.Tags(ctx)
	if err != nil {
		return nil, err
	}
	tagNames := make(map[string]string, len(tags))
	for _, t := range tags {
		tagNames[t.Id] = t.Name
	}

	recipes, err := e.recipes.ListRecipes(ctx)
	if err != nil {
		return nil, err
	}

	book := &Book{
		Version:    BookVersion,
		ExportedAt: core.Now(),
		Recipes:    make([]BookRecipe, 0, len(recipes)),
	}
	for _, r := range recipes {
		details, err := e.recipes.GetRecipeWithRelatedData(ctx, r.Id)
		if err != nil {
			return nil, err
		}
		book.Recipes = append(book.Recipes, toBookRecipe(details, categoryNames, tagNames))
	}
	return book, nil
}

func toBookRecipe(d *core.RecipeDetails, categoryNames, tagNames map[string]string) BookRecipe {
	br := BookRecipe{
		Title:       d.Recipe.Title,
		Description: d.Recipe.Description,
		Servings:    d.Recipe.Servings,
		PrepTime:    d.Recipe.PrepTime,
		CookTime:    d.Recipe.CookTime,
		Favorite:    d.Recipe.Favorite,
		Categories:  lookupNames(d.Recipe.CategoryIds, categoryNames),
		Tags:        lookupNames(d.Recipe.TagIds, tagNames),
	}
	for _, i := range d.Ingredients {
		br.Ingredients = append(br.Ingredients, BookIngredient{
			Name:   i.Name,
			Amount: i.Amount,
			Unit:   i.Unit,
			Note:   i.Note,
		})
	}
	for _, s := range d.Steps {
		var images []string
		if len(s.ImageUrls) > 0 {
			images = s.ImageUrls
		}
		br.Steps = append(br.Steps, BookStep{
			Instruction: s.Instruction,
			Timer:       s.TimerDuration,
			Images:      images,
		})
	}
	for _, v := range d.Videos {
		br.Videos = append(br.Videos, v.WatchURL())
	}
	return br
}

// lookupNames maps ids to names, dropping ids whose record no longer exists.
func lookupNames(ids []string, names map[string]string) []string {
	var out []string
	for _, id := range ids {
		if name, ok := names[id]; ok {
			out = append(out, name)
		}
	}
	return out
}
