package transfer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/poiesic/recipebox/core"
	"github.com/poiesic/recipebox/recipe"
	"github.com/poiesic/recipebox/video"
)

// DefaultBatchSize is how many recipes Import resolves and saves per batch.
const DefaultBatchSize = 50

// ImportResult summarizes an import.
type ImportResult struct {
	Imported int
	Skipped  int      // recipes rejected by validation
	Warnings []string // per-recipe problems that did not stop the import
}

// Importer loads recipe books into the database.
type Importer struct {
	recipes   *recipe.Service
	videos    *video.Service
	batchSize int
	progress  io.Writer
	logger    *slog.Logger
}

// ImporterOption configures an Importer.
type ImporterOption func(*Importer) error

// WithBatchSize sets how many recipes are processed per batch.
func WithBatchSize(size int) ImporterOption {
	return func(i *Importer) error {
		if size < 1 {
			return ErrInvalidBatchSize
		}
		i.batchSize = size
		return nil
	}
}

// WithProgress writes progress updates to w. Default is no progress output.
func WithProgress(w io.Writer) ImporterOption {
	return func(i *Importer) error {
		i.progress = w
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) ImporterOption {
	return func(i *Importer) error {
		if logger == nil {
			logger = slog.Default()
		}
		i.logger = logger
		return nil
	}
}

// NewImporter creates an importer saving through recipes and resolving video links through videos.
func NewImporter(recipes *recipe.Service, videos *video.Service, opts ...ImporterOption) (*Importer, error) {
	if recipes == nil {
		return nil, ErrRecipeServiceRequired
	}
	if videos == nil {
		return nil, ErrVideoServiceRequired
	}

	i := &Importer{
		recipes:   recipes,
		videos:    videos,
		batchSize: DefaultBatchSize,
		progress:  io.Discard,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, err
		}
	}
	return i, nil
}

// Import reads a recipe book from r and saves every recipe in it as a new recipe.
// Category and tag names are matched case-insensitively, creating missing ones.
// Recipes that fail validation are skipped and counted; storage errors abort the
// import, leaving the batches saved so far in place.
func (i *Importer) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	book, err := ReadBook(r)
	if err != nil {
		return nil, err
	}
	return i.ImportBook(ctx, book)
}

// ImportBook saves every recipe of an already decoded book. See Import.
func (i *Importer) ImportBook(ctx context.Context, book *Book) (*ImportResult, error) {
	if book.Version > BookVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, book.Version)
	}

	result := &ImportResult{}
	tracker := NewProgressTracker(i.progress, "recipes", len(book.Recipes), i.batchSize)
	tracker.Start()
	defer tracker.Finish()

	for start := 0; start < len(book.Recipes); start += i.batchSize {
		end := min(start+i.batchSize, len(book.Recipes))
		if err := i.importBatch(ctx, book.Recipes[start:end], result); err != nil {
			return result, err
		}
		tracker.Increment(end - start)
	}

	i.logger.Info("import complete",
		"imported", result.Imported,
		"skipped", result.Skipped,
		"elapsed", tracker.Elapsed())
	return result, nil
}

func (i *Importer) importBatch(ctx context.Context, batch []BookRecipe, result *ImportResult) error {
	// Resolve every video link of the batch in one concurrent pass.
	var urls []string
	for _, br := range batch {
		urls = append(urls, br.Videos...)
	}
	videos, lookupErr := i.videos.LookupAll(ctx, urls)
	if err := ctx.Err(); err != nil {
		return err
	}
	if lookupErr != nil {
		i.logger.Warn("some video links could not be resolved", "err", lookupErr)
	}

	offset := 0
	for _, br := range batch {
		details, err := i.toDetails(ctx, br)
		if err != nil {
			if isValidationError(err) {
				offset += len(br.Videos)
				result.Skipped++
				result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v", br.Title, err))
				continue
			}
			return err
		}
		for n, url := range br.Videos {
			v := videos[offset+n]
			if v == nil {
				result.Warnings = append(result.Warnings, fmt.Sprintf("%s: skipped video %q", br.Title, url))
				continue
			}
			details.Videos = append(details.Videos, v)
		}
		offset += len(br.Videos)

		if _, err := i.recipes.SaveRecipeWithRelated(ctx, details); err != nil {
			if isValidationError(err) {
				result.Skipped++
				result.Warnings = append(result.Warnings, fmt.Sprintf("%s: %v", br.Title, err))
				continue
			}
			return err
		}
		result.Imported++
	}
	return nil
}

// toDetails converts a book recipe. The recipe is validated before category and
// tag names are resolved, so a skipped recipe creates no vocabulary.
func (i *Importer) toDetails(ctx context.Context, br BookRecipe) (*core.RecipeDetails, error) {
	recipe := &core.Recipe{
		Title:       br.Title,
		Description: br.Description,
		Servings:    br.Servings,
		PrepTime:    br.PrepTime,
		CookTime:    br.CookTime,
		Favorite:    br.Favorite,
	}
	candidate := *recipe
	core.ApplyRecipeDefaults(&candidate)
	if err := core.ValidateRecipe(&candidate); err != nil {
		return nil, err
	}

	var err error
	if recipe.CategoryIds, err = i.recipes.ResolveCategories(ctx, br.Categories); err != nil {
		return nil, err
	}
	if recipe.TagIds, err = i.recipes.ResolveTags(ctx, br.Tags); err != nil {
		return nil, err
	}

	details := &core.RecipeDetails{
		Recipe:      recipe,
		Ingredients: make([]*core.Ingredient, 0, len(br.Ingredients)),
		Steps:       make([]*core.CookingStep, 0, len(br.Steps)),
	}
	for _, bi := range br.Ingredients {
		details.Ingredients = append(details.Ingredients, &core.Ingredient{
			Name:   bi.Name,
			Amount: bi.Amount,
			Unit:   bi.Unit,
			Note:   bi.Note,
		})
	}
	for _, bs := range br.Steps {
		details.Steps = append(details.Steps, &core.CookingStep{
			Instruction:   bs.Instruction,
			ImageUrls:     bs.Images,
			TimerDuration: bs.Timer,
		})
	}
	return details, nil
}

func isValidationError(err error) bool {
	for _, target := range []error{
		core.ErrInvalidRecipe,
		core.ErrInvalidIngredient,
		core.ErrInvalidStep,
		core.ErrInvalidVideo,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
