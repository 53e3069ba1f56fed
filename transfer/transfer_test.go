package transfer

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/poiesic/recipebox/recipe"
	"github.com/poiesic/recipebox/storage/badger"
	"github.com/poiesic/recipebox/video"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBook = `version: 1
recipes:
  - title: Omelette
    description: Quick breakfast
    servings: 1
    cook_time: 10
    favorite: true
    categories: [Main dish]
    tags: [Quick, Brunch]
    ingredients:
      - {name: Egg, amount: 3, unit: pc}
      - {name: Butter, amount: 10, unit: g, note: unsalted}
    steps:
      - instruction: Whisk the eggs
      - instruction: Fry
        timer: 4
    videos:
      - https://youtu.be/dQw4w9WgXcQ
      - not a video
  - title: "   "
  - title: Tomato soup
    prep_time: 10
    cook_time: 30
    categories: [soup]
    steps:
      - instruction: Simmer
`

type fixture struct {
	recipes *recipe.Service
	videos  *video.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gw, backend, err := badger.NewMemoryGateway()
	require.NoError(t, err)
	recipes, err := recipe.NewService(gw)
	require.NoError(t, err)
	require.NoError(t, recipes.Initialize(context.Background()))
	videos, err := video.NewService(gw, video.WithPoolSize(2))
	require.NoError(t, err)
	t.Cleanup(func() {
		videos.Release()
		gw.Close()
		backend.Close()
	})
	return &fixture{recipes: recipes, videos: videos}
}

func TestNewImporter_Requirements(t *testing.T) {
	f := newFixture(t)

	_, err := NewImporter(nil, f.videos)
	assert.ErrorIs(t, err, ErrRecipeServiceRequired)
	_, err = NewImporter(f.recipes, nil)
	assert.ErrorIs(t, err, ErrVideoServiceRequired)
	_, err = NewImporter(f.recipes, f.videos, WithBatchSize(0))
	assert.ErrorIs(t, err, ErrInvalidBatchSize)
	_, err = NewExporter(nil, nil)
	assert.ErrorIs(t, err, ErrRecipeServiceRequired)
}

func TestImport(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	var progress bytes.Buffer
	importer, err := NewImporter(f.recipes, f.videos, WithBatchSize(2), WithProgress(&progress))
	require.NoError(t, err)

	result, err := importer.Import(ctx, strings.NewReader(sampleBook))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Equal(t, 1, result.Skipped)
	assert.Len(t, result.Warnings, 2, "one skipped video, one skipped recipe")
	assert.Contains(t, progress.String(), "3/3")

	recipes, err := f.recipes.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 2)

	omelette := recipes[0]
	assert.Equal(t, "Omelette", omelette.Title)
	assert.True(t, omelette.Favorite)
	assert.Len(t, omelette.CategoryIds, 1)
	assert.Len(t, omelette.TagIds, 2)

	details, err := f.recipes.GetRecipeWithRelatedData(ctx, omelette.Id)
	require.NoError(t, err)
	assert.Len(t, details.Ingredients, 2)
	require.Len(t, details.Steps, 2)
	assert.Equal(t, "Fry", details.Steps[1].Instruction)
	assert.Equal(t, 4, details.Steps[1].TimerDuration)
	require.Len(t, details.Videos, 1)
	assert.Equal(t, "dQw4w9WgXcQ", details.Videos[0].VideoId)

	// "Brunch" did not exist and was created; "soup" matched the seeded "Soup".
	tags, err := f.recipes.Tags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 6)
	categories, err := f.recipes.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 5)
}

func TestImport_UnsupportedVersion(t *testing.T) {
	f := newFixture(t)
	importer, err := NewImporter(f.recipes, f.videos)
	require.NoError(t, err)

	_, err = importer.Import(context.Background(), strings.NewReader("version: 99\nrecipes: []\n"))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestImportBook(t *testing.T) {
	f := newFixture(t)
	importer, err := NewImporter(f.recipes, f.videos)
	require.NoError(t, err)
	ctx := context.Background()

	result, err := importer.ImportBook(ctx, &Book{
		Version: BookVersion,
		Recipes: []BookRecipe{
			{Title: "Toast", Steps: []BookStep{{Instruction: "Toast the bread"}}},
			{Title: "   "},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Skipped)

	_, err = importer.ImportBook(ctx, &Book{Version: BookVersion + 1})
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestImport_SkippedRecipeCreatesNoVocabulary(t *testing.T) {
	f := newFixture(t)
	importer, err := NewImporter(f.recipes, f.videos)
	require.NoError(t, err)
	ctx := context.Background()

	result, err := importer.ImportBook(ctx, &Book{
		Version: BookVersion,
		Recipes: []BookRecipe{
			{
				Title:      "",
				Categories: []string{"Leftovers"},
				Tags:       []string{"Midnight"},
				Videos:     []string{"https://youtu.be/dQw4w9WgXcQ"},
			},
			{Title: "Toast", Videos: []string{"https://youtu.be/dQw4w9WgXcQ"}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Imported)
	assert.Equal(t, 1, result.Skipped)

	categories, err := f.recipes.Categories(ctx)
	require.NoError(t, err)
	for _, c := range categories {
		assert.NotEqual(t, "Leftovers", c.Name)
	}
	tags, err := f.recipes.Tags(ctx)
	require.NoError(t, err)
	for _, tag := range tags {
		assert.NotEqual(t, "Midnight", tag.Name)
	}

	// The skipped recipe's video links don't shift onto the next recipe.
	recipes, err := f.recipes.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	details, err := f.recipes.GetRecipeWithRelatedData(ctx, recipes[0].Id)
	require.NoError(t, err)
	assert.Len(t, details.Videos, 1)
}

func TestImport_MalformedYAML(t *testing.T) {
	f := newFixture(t)
	importer, err := NewImporter(f.recipes, f.videos)
	require.NoError(t, err)

	_, err = importer.Import(context.Background(), strings.NewReader("recipes: [unterminated"))
	assert.Error(t, err)
}

func TestImport_EmptyInput(t *testing.T) {
	f := newFixture(t)
	importer, err := NewImporter(f.recipes, f.videos)
	require.NoError(t, err)

	result, err := importer.Import(context.Background(), strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, 0, result.Imported)
}

func TestExportImportRoundTrip(t *testing.T) {
	source := newFixture(t)
	ctx := context.Background()

	importer, err := NewImporter(source.recipes, source.videos)
	require.NoError(t, err)
	_, err = importer.Import(ctx, strings.NewReader(sampleBook))
	require.NoError(t, err)

	exporter, err := NewExporter(source.recipes, nil)
	require.NoError(t, err)
	var out bytes.Buffer
	n, err := exporter.Export(ctx, &out)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	book, err := ReadBook(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	require.Len(t, book.Recipes, 2)
	assert.Equal(t, "Omelette", book.Recipes[0].Title)
	assert.ElementsMatch(t, []string{"Quick", "Brunch"}, book.Recipes[0].Tags)
	assert.Equal(t, []string{"https://www.youtube.com/watch?v=dQw4w9WgXcQ"}, book.Recipes[0].Videos)
	assert.Equal(t, []string{"Soup"}, book.Recipes[1].Categories)

	target := newFixture(t)
	importer, err = NewImporter(target.recipes, target.videos)
	require.NoError(t, err)
	result, err := importer.Import(ctx, bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 2, result.Imported)
	assert.Empty(t, result.Warnings)

	again, err := NewExporter(target.recipes, nil)
	require.NoError(t, err)
	copied, err := again.Book(ctx)
	require.NoError(t, err)
	assert.Equal(t, book.Recipes, copied.Recipes)
}

func TestWriteBook(t *testing.T) {
	var out bytes.Buffer
	err := WriteBook(&out, &Book{
		Version: BookVersion,
		Recipes: []BookRecipe{{
			Title:       "Toast",
			Ingredients: []BookIngredient{{Name: "Bread", Amount: 1, Unit: "slice"}},
		}},
	})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "title: Toast")
	assert.Contains(t, out.String(), "unit: slice")
	assert.NotContains(t, out.String(), "favorite")
}

func TestProgressTracker(t *testing.T) {
	var buf bytes.Buffer
	tracker := NewProgressTracker(&buf, "recipes", 100, 10)

	tracker.Increment(5)
	assert.Equal(t, 0, tracker.Current(), "ignored before Start")

	tracker.Start()
	tracker.Increment(25)
	tracker.Increment(100)
	assert.Equal(t, 100, tracker.Current(), "capped at total")
	tracker.Finish()

	output := buf.String()
	assert.Contains(t, output, "100/100")
	assert.Contains(t, output, "100.0%")
	assert.Contains(t, output, "recipes/s")
	assert.True(t, strings.HasSuffix(output, "\n"))
}
