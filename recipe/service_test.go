package recipe

import (
	"context"
	"testing"

	"github.com/poiesic/recipebox/core"
	"github.com/poiesic/recipebox/storage"
	"github.com/poiesic/recipebox/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, storage.Gateway) {
	t.Helper()
	gw, backend, err := badger.NewMemoryGateway()
	require.NoError(t, err)
	t.Cleanup(func() {
		gw.Close()
		backend.Close()
	})
	svc, err := NewService(gw)
	require.NoError(t, err)
	return svc, gw
}

func ptr[T any](v T) *T {
	return &v
}

func TestNewService_RequiresGateway(t *testing.T) {
	_, err := NewService(nil)
	assert.ErrorIs(t, err, ErrGatewayRequired)
}

func TestNewService_NilLogger(t *testing.T) {
	gw, backend, err := badger.NewMemoryGateway()
	require.NoError(t, err)
	defer backend.Close()

	svc, err := NewService(gw, WithLogger(nil))
	require.NoError(t, err)
	assert.NotNil(t, svc.logger)
}

func TestCreateRecipe_GetRecipe(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	input := &core.Recipe{
		Title:       "Omelette",
		Description: "Quick breakfast",
		Servings:    2,
		PrepTime:    5,
		CookTime:    5,
		CategoryIds: []string{"c1"},
		TagIds:      []string{"t1", "t2"},
	}
	created, err := svc.CreateRecipe(ctx, input)
	require.NoError(t, err)
	require.NotEmpty(t, created.Id)
	assert.Empty(t, input.Id, "input is not modified")
	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)

	got, err := svc.GetRecipe(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, input.Title, got.Title)
	assert.Equal(t, input.Description, got.Description)
	assert.Equal(t, input.Servings, got.Servings)
	assert.Equal(t, input.PrepTime, got.PrepTime)
	assert.Equal(t, input.CookTime, got.CookTime)
	assert.Equal(t, input.CategoryIds, got.CategoryIds)
	assert.Equal(t, input.TagIds, got.TagIds)
	assert.Equal(t, 10, got.TotalTime())
}

func TestCreateRecipe_Defaults(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateRecipe(context.Background(), &core.Recipe{Title: "Toast"})
	require.NoError(t, err)
	assert.Equal(t, 1, created.Servings)
	assert.Equal(t, 0, created.PrepTime)
	assert.Equal(t, 0, created.CookTime)
	assert.False(t, created.Favorite)
	assert.Equal(t, []string{}, created.CategoryIds)
	assert.Equal(t, []string{}, created.TagIds)
}

func TestCreateRecipe_KeepsGivenID(t *testing.T) {
	svc, _ := newTestService(t)

	created, err := svc.CreateRecipe(context.Background(), &core.Recipe{Id: "fixed", Title: "Toast"})
	require.NoError(t, err)
	assert.Equal(t, "fixed", created.Id)
}

func TestCreateRecipe_Invalid(t *testing.T) {
	svc, gw := newTestService(t)
	ctx := context.Background()

	tests := []struct {
		name   string
		recipe *core.Recipe
		want   error
	}{
		{"nil recipe", nil, core.ErrInvalidRecipe},
		{"blank title", &core.Recipe{Title: "  "}, core.ErrEmptyTitle},
		{"negative servings", &core.Recipe{Title: "x", Servings: -1}, core.ErrInvalidServings},
		{"negative cook time", &core.Recipe{Title: "x", CookTime: -5}, core.ErrNegativeDuration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateRecipe(ctx, tt.recipe)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	all, err := gw.GetAll(ctx, storage.Recipes)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestUpdateRecipe(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateRecipe(ctx, &core.Recipe{Title: "Soup", CookTime: 30, TagIds: []string{"t1"}})
	require.NoError(t, err)

	updated, err := svc.UpdateRecipe(ctx, created.Id, RecipePatch{
		Title:    ptr("Tomato soup"),
		CookTime: ptr(25),
		TagIds:   []string{},
	})
	require.NoError(t, err)
	assert.Equal(t, created.Id, updated.Id)
	assert.Equal(t, "Tomato soup", updated.Title)
	assert.Equal(t, 25, updated.CookTime)
	assert.Equal(t, []string{}, updated.TagIds)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

	got, err := svc.GetRecipe(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUpdateRecipe_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.UpdateRecipe(context.Background(), "missing", RecipePatch{Title: ptr("x")})
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdateRecipe_InvalidPatchIsNotStored(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateRecipe(ctx, &core.Recipe{Title: "Soup"})
	require.NoError(t, err)

	_, err = svc.UpdateRecipe(ctx, created.Id, RecipePatch{Title: ptr("")})
	assert.ErrorIs(t, err, core.ErrEmptyTitle)

	got, err := svc.GetRecipe(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, "Soup", got.Title)
}

func TestDeleteRecipe_Cascades(t *testing.T) {
	svc, gw := newTestService(t)
	ctx := context.Background()

	keep, err := svc.CreateRecipe(ctx, &core.Recipe{Title: "Keep"})
	require.NoError(t, err)
	doomed, err := svc.CreateRecipe(ctx, &core.Recipe{Title: "Doomed"})
	require.NoError(t, err)

	for _, id := range []string{keep.Id, doomed.Id} {
		_, err = svc.SaveIngredient(ctx, &core.Ingredient{RecipeId: id, Name: "Egg", Amount: 2})
		require.NoError(t, err)
		_, err = svc.SaveStep(ctx, &core.CookingStep{RecipeId: id, StepNumber: 1, Instruction: "Crack"})
		require.NoError(t, err)
		_, err = gw.Set(ctx, storage.Videos, &core.Video{Id: core.NewID(), RecipeId: id, VideoId: "dQw4w9WgXcQ"})
		require.NoError(t, err)
	}

	require.NoError(t, svc.DeleteRecipe(ctx, doomed.Id))

	_, err = svc.GetRecipe(ctx, doomed.Id)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	for _, c := range []storage.Collection{storage.Ingredients, storage.Steps, storage.Videos} {
		orphans, err := gw.Query(ctx, c, storage.ByRecipe(doomed.Id))
		require.NoError(t, err)
		assert.Empty(t, orphans, c)

		kept, err := gw.Query(ctx, c, storage.ByRecipe(keep.Id))
		require.NoError(t, err)
		assert.Len(t, kept, 1, c)
	}
}

func TestDeleteRecipe_Missing(t *testing.T) {
	svc, gw := newTestService(t)
	ctx := context.Background()

	// Orphaned children of a recipe that no longer exists are swept as well.
	_, err := gw.Set(ctx, storage.Ingredients, &core.Ingredient{Id: "i1", RecipeId: "gone", Name: "Salt"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteRecipe(ctx, "gone"))

	orphans, err := gw.Query(ctx, storage.Ingredients, storage.ByRecipe("gone"))
	require.NoError(t, err)
	assert.Empty(t, orphans)
}

func TestToggleFavorite(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateRecipe(ctx, &core.Recipe{Title: "Omelette"})
	require.NoError(t, err)
	require.False(t, created.Favorite)

	toggled, err := svc.ToggleFavorite(ctx, created.Id)
	require.NoError(t, err)
	assert.True(t, toggled.Favorite)
	assert.Equal(t, created.Title, toggled.Title)

	favorites, err := svc.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, created.Id, favorites[0].Id)

	toggled, err = svc.ToggleFavorite(ctx, created.Id)
	require.NoError(t, err)
	assert.False(t, toggled.Favorite)

	got, err := svc.GetRecipe(ctx, created.Id)
	require.NoError(t, err)
	assert.False(t, got.Favorite)
	got.UpdatedAt = created.UpdatedAt
	assert.Equal(t, created, got)
}

func TestToggleFavorite_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.ToggleFavorite(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestListRecipes_SortedByTitle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	for _, title := range []string{"soup", "Bread", "apple pie"} {
		_, err := svc.CreateRecipe(ctx, &core.Recipe{Title: title})
		require.NoError(t, err)
	}

	recipes, err := svc.ListRecipes(ctx)
	require.NoError(t, err)
	require.Len(t, recipes, 3)
	assert.Equal(t, "apple pie", recipes[0].Title)
	assert.Equal(t, "Bread", recipes[1].Title)
	assert.Equal(t, "soup", recipes[2].Title)
}

func TestListRecipes_Empty(t *testing.T) {
	svc, _ := newTestService(t)

	recipes, err := svc.ListRecipes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, recipes)
}
