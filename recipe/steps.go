package recipe

import (
	"context"
	"slices"

	"github.com/poiesic/recipebox/core"
	"github.com/poiesic/recipebox/storage"
)

// StepsForRecipe returns the steps of a recipe ordered by step number.
func (s *Service) StepsForRecipe(ctx context.Context, recipeID string) ([]*core.CookingStep, error) {
	return stepsForRecipe(ctx, s.gateway, recipeID)
}

func stepsForRecipe(ctx context.Context, r storage.Reader, recipeID string) ([]*core.CookingStep, error) {
	steps, err := storage.QueryAs(ctx, r, storage.Steps, func(st *core.CookingStep) bool {
		return st.RecipeId == recipeID
	})
	if err != nil {
		return nil, err
	}
	core.SortSteps(steps)
	return steps, nil
}

// SaveStep upserts a cooking step, generating an id when it has none.
// StepNumber defaults to 1.
func (s *Service) SaveStep(ctx context.Context, step *core.CookingStep) (*core.CookingStep, error) {
	if step == nil {
		return nil, core.ValidateStep(nil)
	}
	st := cloneStep(step)
	if st.Id == "" {
		st.Id = core.NewID()
	}
	core.ApplyStepDefaults(st)
	if err := core.ValidateStep(st); err != nil {
		return nil, err
	}
	if _, err := s.gateway.Set(ctx, storage.Steps, st); err != nil {
		s.logger.Error("error saving step", "recipe", st.RecipeId, "err", err)
		return nil, err
	}
	return st, nil
}

// DeleteStep removes a step and renumbers the remaining steps of its recipe to 1..N-1.
// Removing a missing step is not an error.
func (s *Service) DeleteStep(ctx context.Context, id string) error {
	err := s.gateway.Update(ctx, func(tx storage.Tx) error {
		step, err := storage.GetAs[*core.CookingStep](ctx, tx, storage.Steps, id)
		if storage.IsNotFound(err) {
			return nil
		}
		if err != nil {
			return err
		}
		if err := tx.Remove(ctx, storage.Steps, id); err != nil {
			return err
		}

		steps, err := stepsForRecipe(ctx, tx, step.RecipeId)
		if err != nil {
			return err
		}
		before := make(map[string]int, len(steps))
		for _, st := range steps {
			before[st.Id] = st.StepNumber
		}
		for _, st := range core.RemoveStep(steps, id) {
			if before[st.Id] == st.StepNumber {
				continue
			}
			if _, err := tx.Set(ctx, storage.Steps, st); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("error deleting step", "id", id, "err", err)
		return err
	}
	return nil
}

func cloneStep(step *core.CookingStep) *core.CookingStep {
	c := *step
	c.ImageUrls = slices.Clone(step.ImageUrls)
	return &c
}
