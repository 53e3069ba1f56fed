package recipe

import (
	"context"
	"testing"

	"github.com/poiesic/recipebox/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize_SeedsVocabulary(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Initialize(ctx))

	categories, err := svc.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 5)
	byName := make(map[string]*core.Category)
	for _, c := range categories {
		byName[c.Name] = c
	}
	require.Contains(t, byName, "Soup")
	assert.Equal(t, "#F59E0B", byName["Soup"].Color)
	assert.Equal(t, "beaker", byName["Soup"].Icon)
	assert.Equal(t, "#EF4444", byName["Main dish"].Color)

	tags, err := svc.Tags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 5)
}

func TestInitialize_Idempotent(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Initialize(ctx))
	require.NoError(t, svc.Initialize(ctx))

	categories, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 5)
	tags, err := svc.Tags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 5)
}

func TestInitialize_SkipsNonEmptyCollections(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SaveCategory(ctx, &core.Category{Name: "Breakfast"})
	require.NoError(t, err)

	require.NoError(t, svc.Initialize(ctx))

	categories, err := svc.Categories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Breakfast", categories[0].Name)

	tags, err := svc.Tags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 5)
}

func TestDefaultIDsAreStable(t *testing.T) {
	first := DefaultCategories()
	second := DefaultCategories()
	for i := range first {
		assert.Equal(t, first[i].Id, second[i].Id)
	}
	assert.NotEqual(t, DefaultTags()[0].Id, DefaultTags()[1].Id)
}

func TestSaveCategory_Defaults(t *testing.T) {
	svc, _ := newTestService(t)

	c, err := svc.SaveCategory(context.Background(), &core.Category{Name: "Snacks"})
	require.NoError(t, err)
	assert.NotEmpty(t, c.Id)
	assert.Equal(t, core.DefaultCategoryColor, c.Color)
	assert.Equal(t, core.DefaultCategoryIcon, c.Icon)

	_, err = svc.SaveCategory(context.Background(), &core.Category{})
	assert.ErrorIs(t, err, core.ErrInvalidCategory)
	_, err = svc.SaveTag(context.Background(), &core.Tag{Name: " "})
	assert.ErrorIs(t, err, core.ErrInvalidTag)
}

func TestResolveCategoriesAndTags(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	require.NoError(t, svc.Initialize(ctx))

	ids, err := svc.ResolveCategories(ctx, []string{"soup", "Brunch", "", "SOUP"})
	require.NoError(t, err)
	require.Len(t, ids, 2)
	assert.Equal(t, categoryID("Soup"), ids[0])

	categories, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.Len(t, categories, 6)

	tagIDs, err := svc.ResolveTags(ctx, []string{"Quick", "Vegan"})
	require.NoError(t, err)
	require.Len(t, tagIDs, 2)
	assert.Equal(t, tagID("quick"), tagIDs[0])

	tags, err := svc.Tags(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 6)

	empty, err := svc.ResolveTags(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
