package recipe

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"github.com/poiesic/recipebox/core"
	"github.com/poiesic/recipebox/storage"
)

// RecipePatch holds the fields UpdateRecipe changes. Nil fields keep their stored value.
// To clear CategoryIds or TagIds pass an empty, non-nil slice.
type RecipePatch struct {
	Title       *string
	Description *string
	Servings    *int
	PrepTime    *int
	CookTime    *int
	Favorite    *bool
	CategoryIds []string
	TagIds      []string
}

func (p RecipePatch) apply(r *core.Recipe) {
	if p.Title != nil {
		r.Title = *p.Title
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Servings != nil {
		r.Servings = *p.Servings
	}
	if p.PrepTime != nil {
		r.PrepTime = *p.PrepTime
	}
	if p.CookTime != nil {
		r.CookTime = *p.CookTime
	}
	if p.Favorite != nil {
		r.Favorite = *p.Favorite
	}
	if p.CategoryIds != nil {
		r.CategoryIds = slices.Clone(p.CategoryIds)
	}
	if p.TagIds != nil {
		r.TagIds = slices.Clone(p.TagIds)
	}
}

// CreateRecipe stores a new recipe and returns the stored copy.
// An id is generated when the recipe has none. Defaults are applied and the
// timestamps are stamped; a CreatedAt already set on the input is kept.
func (s *Service) CreateRecipe(ctx context.Context, recipe *core.Recipe) (*core.Recipe, error) {
	if recipe == nil {
		return nil, core.ValidateRecipe(nil)
	}
	r := prepareNew(recipe)
	if err := core.ValidateRecipe(r); err != nil {
		return nil, err
	}
	if _, err := s.gateway.Set(ctx, storage.Recipes, r); err != nil {
		s.logger.Error("error creating recipe", "title", r.Title, "err", err)
		return nil, err
	}
	s.logger.Debug("created recipe", "id", r.Id, "title", r.Title)
	return r, nil
}

// prepareNew copies recipe and fills what a new record needs.
func prepareNew(recipe *core.Recipe) *core.Recipe {
	r := cloneRecipe(recipe)
	if r.Id == "" {
		r.Id = core.NewID()
	}
	core.ApplyRecipeDefaults(r)
	now := core.Now()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	r.UpdatedAt = now
	return r
}

// UpdateRecipe merges patch into the stored recipe. The id never changes and
// UpdatedAt is stamped. Returns storage.ErrNotFound when the recipe doesn't exist.
func (s *Service) UpdateRecipe(ctx context.Context, id string, patch RecipePatch) (*core.Recipe, error) {
	var updated *core.Recipe
	err := s.gateway.Update(ctx, func(tx storage.Tx) error {
		r, err := storage.GetAs[*core.Recipe](ctx, tx, storage.Recipes, id)
		if err != nil {
			return err
		}
		patch.apply(r)
		r.Id = id
		core.ApplyRecipeDefaults(r)
		r.UpdatedAt = core.Now()
		if err := core.ValidateRecipe(r); err != nil {
			return err
		}
		if _, err := tx.Set(ctx, storage.Recipes, r); err != nil {
			return err
		}
		updated = r
		return nil
	})
	if err != nil {
		s.logger.Error("error updating recipe", "id", id, "err", err)
		return nil, err
	}
	return updated, nil
}

// DeleteRecipe removes a recipe together with every ingredient, step and video
// referencing it. Deleting a missing recipe still sweeps orphaned children and succeeds.
func (s *Service) DeleteRecipe(ctx context.Context, id string) error {
	removed := 0
	err := s.gateway.Update(ctx, func(tx storage.Tx) error {
		var err error
		if removed, err = removeChildren(ctx, tx, id); err != nil {
			return err
		}
		return tx.Remove(ctx, storage.Recipes, id)
	})
	if err != nil {
		s.logger.Error("error deleting recipe", "id", id, "err", err)
		return err
	}
	s.logger.Debug("deleted recipe", "id", id, "children", removed)
	return nil
}

// ToggleFavorite flips the recipe's favorite flag and returns the updated recipe.
func (s *Service) ToggleFavorite(ctx context.Context, id string) (*core.Recipe, error) {
	var updated *core.Recipe
	err := s.gateway.Update(ctx, func(tx storage.Tx) error {
		r, err := storage.GetAs[*core.Recipe](ctx, tx, storage.Recipes, id)
		if err != nil {
			return err
		}
		r.Favorite = !r.Favorite
		r.UpdatedAt = core.Now()
		if _, err := tx.Set(ctx, storage.Recipes, r); err != nil {
			return err
		}
		updated = r
		return nil
	})
	if err != nil {
		s.logger.Error("error toggling favorite", "id", id, "err", err)
		return nil, err
	}
	return updated, nil
}

// GetRecipe retrieves a recipe by id.
func (s *Service) GetRecipe(ctx context.Context, id string) (*core.Recipe, error) {
	return storage.GetAs[*core.Recipe](ctx, s.gateway, storage.Recipes, id)
}

// ListRecipes returns every recipe ordered by title.
func (s *Service) ListRecipes(ctx context.Context) ([]*core.Recipe, error) {
	recipes, err := storage.AllAs[*core.Recipe](ctx, s.gateway, storage.Recipes)
	if err != nil {
		return nil, err
	}
	SortByTitle(recipes)
	return recipes, nil
}

// ListFavorites returns the favorite recipes ordered by title.
func (s *Service) ListFavorites(ctx context.Context) ([]*core.Recipe, error) {
	recipes, err := storage.QueryAs(ctx, s.gateway, storage.Recipes, func(r *core.Recipe) bool {
		return r.Favorite
	})
	if err != nil {
		return nil, err
	}
	SortByTitle(recipes)
	return recipes, nil
}

// SortByTitle orders recipes by case-insensitive title, then id.
func SortByTitle(recipes []*core.Recipe) {
	slices.SortFunc(recipes, func(a, b *core.Recipe) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title)),
			strings.Compare(a.Id, b.Id),
		)
	})
}

func cloneRecipe(r *core.Recipe) *core.Recipe {
	c := *r
	c.CategoryIds = slices.Clone(r.CategoryIds)
	c.TagIds = slices.Clone(r.TagIds)
	return &c
}
