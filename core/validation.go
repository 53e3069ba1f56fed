// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.



package core

import (
	"fmt"
	"slices"
	"strings"
)

// Defaults applied to records that leave fields unset.
const (
	DefaultServings      = 1
	DefaultCategoryColor = "#6366F1"
	DefaultCategoryIcon  = "tag"
)

// ValidateRecipe validates a Recipe according to domain rules.
//
// Validation rules:
//   - Title must not be blank
//   - Servings must be at least 1
//   - PrepTime and CookTime must not be negative
//
// NOT validated:
//   - Id (assigned by the recipe service when empty)
//   - CategoryIds/TagIds (weak references, never enforced)
func ValidateRecipe(recipe *Recipe) error {
	if recipe == nil {
		return fmt.Errorf("%w: recipe is nil", ErrInvalidRecipe)
	}

	if strings.TrimSpace(recipe.Title) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecipe, ErrEmptyTitle)
	}

	if recipe.Servings < 1 {
		return fmt.Errorf("%w: %w", ErrInvalidRecipe, ErrInvalidServings)
	}

	if recipe.PrepTime < 0 || recipe.CookTime < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRecipe, ErrNegativeDuration)
	}

	return nil
}

// ValidateIngredient validates an Ingredient according to domain rules.
func ValidateIngredient(ingredient *Ingredient) error {
	if ingredient == nil {
		return fmt.Errorf("%w: ingredient is nil", ErrInvalidIngredient)
	}

	if ingredient.RecipeId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidIngredient, ErrMissingRecipeID)
	}

	if strings.TrimSpace(ingredient.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidIngredient, ErrEmptyName)
	}

	if ingredient.Amount < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidIngredient, ErrNegativeAmount)
	}

	return nil
}

// ValidateStep validates a CookingStep according to domain rules.
// An empty instruction is allowed; the form saves placeholder steps.
func ValidateStep(step *CookingStep) error {
	if step == nil {
		return fmt.Errorf("%w: step is nil", ErrInvalidStep)
	}

	if step.RecipeId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidStep, ErrMissingRecipeID)
	}

	if step.StepNumber < 1 {
		return fmt.Errorf("%w: %w", ErrInvalidStep, ErrInvalidStepNumber)
	}

	if step.TimerDuration < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidStep, ErrNegativeDuration)
	}

	return nil
}

// ValidateCategory validates a Category according to domain rules.
func ValidateCategory(category *Category) error {
	if category == nil {
		return fmt.Errorf("%w: category is nil", ErrInvalidCategory)
	}
	if strings.TrimSpace(category.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidCategory, ErrEmptyName)
	}
	return nil
}

// ValidateTag validates a Tag according to domain rules.
func ValidateTag(tag *Tag) error {
	if tag == nil {
		return fmt.Errorf("%w: tag is nil", ErrInvalidTag)
	}
	if strings.TrimSpace(tag.Name) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidTag, ErrEmptyName)
	}
	return nil
}

// ValidateVideo validates a Video according to domain rules.
func ValidateVideo(video *Video) error {
	if video == nil {
		return fmt.Errorf("%w: video is nil", ErrInvalidVideo)
	}
	if video.VideoId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidVideo, ErrInvalidVideoURL)
	}
	return nil
}

// ApplyRecipeDefaults fills unset recipe fields the same way a new, empty recipe starts out.
func ApplyRecipeDefaults(recipe *Recipe) {
	if recipe.Servings == 0 {
		recipe.Servings = DefaultServings
	}
	if recipe.CategoryIds == nil {
		recipe.CategoryIds = []string{}
	}
	if recipe.TagIds == nil {
		recipe.TagIds = []string{}
	}
}

// ApplyStepDefaults fills unset step fields.
func ApplyStepDefaults(step *CookingStep) {
	if step.StepNumber == 0 {
		step.StepNumber = 1
	}
	if step.ImageUrls == nil {
		step.ImageUrls = []string{}
	}
}

// ApplyCategoryDefaults fills unset category fields.
func ApplyCategoryDefaults(category *Category) {
	if category.Color == "" {
		category.Color = DefaultCategoryColor
	}
	if category.Icon == "" {
		category.Icon = DefaultCategoryIcon
	}
}

// SortSteps orders steps by StepNumber ascending, in place.
func SortSteps(steps []*CookingStep) {
	slices.SortStableFunc(steps, func(a, b *CookingStep) int {
		return a.StepNumber - b.StepNumber
	})
}

// RenumberSteps assigns StepNumber 1..N following the current slice order.
// It returns the steps whose number changed.
func RenumberSteps(steps []*CookingStep) []*CookingStep {
	var changed []*CookingStep
	for i, step := range steps {
		if step.StepNumber != i+1 {
			step.StepNumber = i + 1
			changed = append(changed, step)
		}
	}
	return changed
}

// RemoveStep removes the step with the given id from an ordered step list and renumbers
// the remainder so numbering stays dense. The slice is copied; the remaining
// step records are renumbered in place.
func RemoveStep(steps []*CookingStep, id string) []*CookingStep {
	remaining := make([]*CookingStep, 0, len(steps))
	for _, step := range steps {
		if step.Id != id {
			remaining = append(remaining, step)
		}
	}
	RenumberSteps(remaining)
	return remaining
}
