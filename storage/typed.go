package storage

import (
	"context"
	"fmt"

	"github.com/poiesic/recipebox/core"
)

// GetAs retrieves a record and asserts its concrete type.
func GetAs[T core.Record](ctx context.Context, r Reader, c Collection, id string) (T, error) {
	var zero T
	record, err := r.Get(ctx, c, id)
	if err != nil {
		return zero, err
	}
	typed, ok := record.(T)
	if !ok {
		return zero, Wrap("get", c, fmt.Errorf("%w: got %T", ErrRecordTypeMismatch, record))
	}
	return typed, nil
}

// AllAs retrieves every record of a collection as concrete types.
func AllAs[T core.Record](ctx context.Context, r Reader, c Collection) ([]T, error) {
	return QueryAs[T](ctx, r, c, nil)
}

// QueryAs retrieves the records of a collection matching a typed predicate.
// A nil predicate matches everything.
func QueryAs[T core.Record](ctx context.Context, r Reader, c Collection, pred func(T) bool) ([]T, error) {
	records, err := r.Query(ctx, c, func(record core.Record) bool {
		typed, ok := record.(T)
		return ok && (pred == nil || pred(typed))
	})
	if err != nil {
		return nil, err
	}
	result := make([]T, 0, len(records))
	for _, record := range records {
		result = append(result, record.(T))
	}
	return result, nil
}

// ByRecipe returns a predicate selecting child records pointing at recipeID.
func ByRecipe(recipeID string) Predicate {
	return func(record core.Record) bool {
		switch r := record.(type) {
		case *core.Ingredient:
			return r.RecipeId == recipeID
		case *core.CookingStep:
			return r.RecipeId == recipeID
		case *core.Video:
			return r.RecipeId == recipeID
		}
		return false
	}
}
