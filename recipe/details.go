package recipe

import (
	"context"

	"github.com/poiesic/recipebox/core"
	"github.com/poiesic/recipebox/storage"
)

// GetRecipeWithRelatedData loads a recipe with its ingredients, steps and videos
// from one consistent snapshot. Steps are ordered by step number.
// Returns storage.ErrNotFound when the recipe doesn't exist.
func (s *Service) GetRecipeWithRelatedData(ctx context.Context, id string) (*core.RecipeDetails, error) {
	var details *core.RecipeDetails
	err := s.gateway.View(ctx, func(tx storage.Tx) error {
		var err error
		details, err = loadDetails(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return details, nil
}

func loadDetails(ctx context.Context, r storage.Reader, id string) (*core.RecipeDetails, error) {
	recipe, err := storage.GetAs[*core.Recipe](ctx, r, storage.Recipes, id)
	if err != nil {
		return nil, err
	}
	ingredients, err := ingredientsForRecipe(ctx, r, id)
	if err != nil {
		return nil, err
	}
	steps, err := stepsForRecipe(ctx, r, id)
	if err != nil {
		return nil, err
	}
	videos, err := storage.QueryAs(ctx, r, storage.Videos, func(v *core.Video) bool {
		return v.RecipeId == id
	})
	if err != nil {
		return nil, err
	}
	return &core.RecipeDetails{
		Recipe:      recipe,
		Ingredients: ingredients,
		Steps:       steps,
		Videos:      videos,
	}, nil
}

// SaveRecipeWithRelated creates or updates a recipe and replaces all of its
// ingredients, steps and videos in one transaction. Steps are renumbered 1..N in
// the order given. A recipe whose id is empty or unknown is created.
func (s *Service) SaveRecipeWithRelated(ctx context.Context, details *core.RecipeDetails) (*core.RecipeDetails, error) {
	if details == nil || details.Recipe == nil {
		return nil, ErrDetailsRequired
	}

	var saved *core.RecipeDetails
	err := s.gateway.Update(ctx, func(tx storage.Tx) error {
		recipe, err := s.upsertRecipe(ctx, tx, details.Recipe)
		if err != nil {
			return err
		}
		if _, err := removeChildren(ctx, tx, recipe.Id); err != nil {
			return err
		}

		out := &core.RecipeDetails{
			Recipe:      recipe,
			Ingredients: make([]*core.Ingredient, 0, len(details.Ingredients)),
			Steps:       make([]*core.CookingStep, 0, len(details.Steps)),
			Videos:      make([]*core.Video, 0, len(details.Videos)),
		}
		for _, ingredient := range details.Ingredients {
			if ingredient == nil {
				continue
			}
			i := *ingredient
			if i.Id, err = childID(ctx, tx, storage.Ingredients, i.Id, recipe.Id); err != nil {
				return err
			}
			i.RecipeId = recipe.Id
			if err := core.ValidateIngredient(&i); err != nil {
				return err
			}
			if _, err := tx.Set(ctx, storage.Ingredients, &i); err != nil {
				return err
			}
			out.Ingredients = append(out.Ingredients, &i)
		}
		for _, step := range details.Steps {
			if step == nil {
				continue
			}
			st := cloneStep(step)
			if st.Id, err = childID(ctx, tx, storage.Steps, st.Id, recipe.Id); err != nil {
				return err
			}
			st.RecipeId = recipe.Id
			st.StepNumber = len(out.Steps) + 1
			core.ApplyStepDefaults(st)
			if err := core.ValidateStep(st); err != nil {
				return err
			}
			if _, err := tx.Set(ctx, storage.Steps, st); err != nil {
				return err
			}
			out.Steps = append(out.Steps, st)
		}
		for _, video := range details.Videos {
			if video == nil {
				continue
			}
			v := *video
			if v.Id, err = childID(ctx, tx, storage.Videos, v.Id, recipe.Id); err != nil {
				return err
			}
			v.RecipeId = recipe.Id
			if err := core.ValidateVideo(&v); err != nil {
				return err
			}
			if _, err := tx.Set(ctx, storage.Videos, &v); err != nil {
				return err
			}
			out.Videos = append(out.Videos, &v)
		}
		saved = out
		return nil
	})
	if err != nil {
		s.logger.Error("error saving recipe with related data", "title", details.Recipe.Title, "err", err)
		return nil, err
	}
	s.logger.Debug("saved recipe with related data",
		"id", saved.Recipe.Id,
		"ingredients", len(saved.Ingredients),
		"steps", len(saved.Steps),
		"videos", len(saved.Videos))
	return saved, nil
}

// upsertRecipe writes recipe inside tx, keeping CreatedAt of an existing record.
func (s *Service) upsertRecipe(ctx context.Context, tx storage.Tx, recipe *core.Recipe) (*core.Recipe, error) {
	var existing *core.Recipe
	if recipe.Id != "" {
		found, err := storage.GetAs[*core.Recipe](ctx, tx, storage.Recipes, recipe.Id)
		switch {
		case err == nil:
			existing = found
		case !storage.IsNotFound(err):
			return nil, err
		}
	}

	var r *core.Recipe
	if existing == nil {
		r = prepareNew(recipe)
	} else {
		r = cloneRecipe(recipe)
		core.ApplyRecipeDefaults(r)
		r.CreatedAt = existing.CreatedAt
		r.UpdatedAt = core.Now()
	}
	if err := core.ValidateRecipe(r); err != nil {
		return nil, err
	}
	if _, err := tx.Set(ctx, storage.Recipes, r); err != nil {
		return nil, err
	}
	return r, nil
}

// childID returns the id a child record is stored under. An empty id, or one
// held by a record of another recipe, is replaced by a fresh id so copying a
// recipe never moves children off the original.
func childID(ctx context.Context, r storage.Reader, c storage.Collection, id, recipeID string) (string, error) {
	if id == "" {
		return core.NewID(), nil
	}
	existing, err := r.Get(ctx, c, id)
	if storage.IsNotFound(err) {
		return id, nil
	}
	if err != nil {
		return "", err
	}
	if ownerOf(existing) != recipeID {
		return core.NewID(), nil
	}
	return id, nil
}

func ownerOf(record core.Record) string {
	switch v := record.(type) {
	case *core.Ingredient:
		return v.RecipeId
	case *core.CookingStep:
		return v.RecipeId
	case *core.Video:
		return v.RecipeId
	}
	return ""
}

// removeChildren deletes every ingredient, step and video of a recipe and returns how many.
func removeChildren(ctx context.Context, tx storage.Tx, recipeID string) (int, error) {
	removed := 0
	for _, c := range []storage.Collection{storage.Ingredients, storage.Steps, storage.Videos} {
		children, err := tx.Query(ctx, c, storage.ByRecipe(recipeID))
		if err != nil {
			return removed, err
		}
		for _, child := range children {
			if err := tx.Remove(ctx, c, child.RecordID()); err != nil {
				return removed, err
			}
		}
		removed += len(children)
	}
	return removed, nil
}
