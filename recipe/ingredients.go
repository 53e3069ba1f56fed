package recipe

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/poiesic/recipebox/core"
	"github.com/poiesic/recipebox/storage"
)

// IngredientsForRecipe returns the ingredients of a recipe ordered by name.
func (s *Service) IngredientsForRecipe(ctx context.Context, recipeID string) ([]*core.Ingredient, error) {
	return ingredientsForRecipe(ctx, s.gateway, recipeID)
}

func ingredientsForRecipe(ctx context.Context, r storage.Reader, recipeID string) ([]*core.Ingredient, error) {
	ingredients, err := storage.QueryAs(ctx, r, storage.Ingredients, func(i *core.Ingredient) bool {
		return i.RecipeId == recipeID
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(ingredients, func(a, b *core.Ingredient) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			strings.Compare(a.Id, b.Id),
		)
	})
	return ingredients, nil
}

// SaveIngredient upserts an ingredient, generating an id when it has none.
func (s *Service) SaveIngredient(ctx context.Context, ingredient *core.Ingredient) (*core.Ingredient, error) {
	if err := core.ValidateIngredient(ingredient); err != nil {
		return nil, err
	}
	i := *ingredient
	if i.Id == "" {
		i.Id = core.NewID()
	}
	if _, err := s.gateway.Set(ctx, storage.Ingredients, &i); err != nil {
		s.logger.Error("error saving ingredient", "recipe", i.RecipeId, "err", err)
		return nil, err
	}
	return &i, nil
}

// DeleteIngredient removes an ingredient. Removing a missing ingredient is not an error.
func (s *Service) DeleteIngredient(ctx context.Context, id string) error {
	if err := s.gateway.Remove(ctx, storage.Ingredients, id); err != nil {
		s.logger.Error("error deleting ingredient", "id", id, "err", err)
		return err
	}
	return nil
}
