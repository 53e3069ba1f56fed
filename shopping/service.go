// Package shopping builds shopping lists from recipe ingredients.
//
// A list is a snapshot: items are copied from the ingredients when the list is
// created and do not follow later recipe edits.
package shopping

import (
	"cmp"
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/poiesic/recipebox/core"
	"github.com/poiesic/recipebox/storage"
)

var (
	// ErrGatewayRequired is returned when a storage gateway is not provided.
	ErrGatewayRequired = errors.New("storage gateway required")

	// ErrEmptyListName is returned when a list is created without a name.
	ErrEmptyListName = errors.New("shopping list name cannot be empty")
)

// Service manages shopping lists and their items.
type Service struct {
	gateway storage.Gateway
	logger  *slog.Logger
}

// Option configures a Service.
type Option func(*Service) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewService creates a shopping list service.
func NewService(gateway storage.Gateway, opts ...Option) (*Service, error) {
	if gateway == nil {
		return nil, ErrGatewayRequired
	}
	s := &Service{
		gateway: gateway,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	s.logger = s.logger.With("component", "shopping")
	return s, nil
}

// itemKey identifies ingredients that merge into one item.
type itemKey struct {
	name string
	unit string
}

func keyOf(name, unit string) itemKey {
	return itemKey{
		name: strings.ToLower(strings.TrimSpace(name)),
		unit: strings.ToLower(strings.TrimSpace(unit)),
	}
}

// CreateList creates a list holding the ingredients of the given recipes.
// Ingredients with the same name and unit, compared case-insensitively, become
// one item with the amounts summed. Such a merged item keeps a RecipeId only when
// all of its ingredients come from the same recipe. Missing recipes are skipped.
func (s *Service) CreateList(ctx context.Context, name string, recipeIDs ...string) (*core.ShoppingList, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyListName
	}

	var list *core.ShoppingList
	err := s.gateway.Update(ctx, func(tx storage.Tx) error {
		list = &core.ShoppingList{
			Id:        core.NewID(),
			Name:      name,
			RecipeIds: []string{},
			CreatedAt: core.Now(),
		}

		var items []*core.ShoppingItem
		byKey := make(map[itemKey]*core.ShoppingItem)
		for _, recipeID := range recipeIDs {
			if slices.Contains(list.RecipeIds, recipeID) {
				continue
			}
			if _, err := tx.Get(ctx, storage.Recipes, recipeID); err != nil {
				if storage.IsNotFound(err) {
					s.logger.Debug("skipping missing recipe", "recipe", recipeID)
					continue
				}
				return err
			}
			list.RecipeIds = append(list.RecipeIds, recipeID)

			ingredients, err := storage.QueryAs(ctx, tx, storage.Ingredients, func(i *core.Ingredient) bool {
				return i.RecipeId == recipeID
			})
			if err != nil {
				return err
			}
			slices.SortFunc(ingredients, func(a, b *core.Ingredient) int {
				return strings.Compare(a.Id, b.Id)
			})
			for _, ing := range ingredients {
				k := keyOf(ing.Name, ing.Unit)
				if item, ok := byKey[k]; ok {
					item.Amount += ing.Amount
					if item.RecipeId != recipeID {
						item.RecipeId = ""
					}
					continue
				}
				item := &core.ShoppingItem{
					Id:       core.NewID(),
					ListId:   list.Id,
					RecipeId: recipeID,
					Name:     strings.TrimSpace(ing.Name),
					Amount:   ing.Amount,
					Unit:     strings.TrimSpace(ing.Unit),
				}
				byKey[k] = item
				items = append(items, item)
			}
		}

		if _, err := tx.Set(ctx, storage.ShoppingLists, list); err != nil {
			return err
		}
		for _, item := range items {
			if _, err := tx.Set(ctx, storage.ShoppingItems, item); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("error creating shopping list", "name", name, "err", err)
		return nil, err
	}
	s.logger.Debug("created shopping list", "id", list.Id, "recipes", len(list.RecipeIds))
	return list, nil
}

// Lists returns every shopping list, newest first.
func (s *Service) Lists(ctx context.Context) ([]*core.ShoppingList, error) {
	lists, err := storage.AllAs[*core.ShoppingList](ctx, s.gateway, storage.ShoppingLists)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(lists, func(a, b *core.ShoppingList) int {
		return cmp.Or(b.CreatedAt.Compare(a.CreatedAt), strings.Compare(a.Id, b.Id))
	})
	return lists, nil
}

// GetList retrieves a shopping list by id.
func (s *Service) GetList(ctx context.Context, id string) (*core.ShoppingList, error) {
	return storage.GetAs[*core.ShoppingList](ctx, s.gateway, storage.ShoppingLists, id)
}

// Items returns the items of a list ordered by name, then unit.
func (s *Service) Items(ctx context.Context, listID string) ([]*core.ShoppingItem, error) {
	items, err := storage.QueryAs(ctx, s.gateway, storage.ShoppingItems, func(i *core.ShoppingItem) bool {
		return i.ListId == listID
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(items, func(a, b *core.ShoppingItem) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)),
			strings.Compare(a.Unit, b.Unit),
		)
	})
	return items, nil
}

// ToggleItem flips an item's checked state and returns the updated item.
func (s *Service) ToggleItem(ctx context.Context, itemID string) (*core.ShoppingItem, error) {
	var updated *core.ShoppingItem
	err := s.gateway.Update(ctx, func(tx storage.Tx) error {
		item, err := storage.GetAs[*core.ShoppingItem](ctx, tx, storage.ShoppingItems, itemID)
		if err != nil {
			return err
		}
		item.Checked = !item.Checked
		if _, err := tx.Set(ctx, storage.ShoppingItems, item); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		s.logger.Error("error toggling shopping item", "id", itemID, "err", err)
		return nil, err
	}
	return updated, nil
}

// DeleteList removes a list and all of its items. Deleting a missing list is not an error.
func (s *Service) DeleteList(ctx context.Context, listID string) error {
	err := s.gateway.Update(ctx, func(tx storage.Tx) error {
		items, err := tx.Query(ctx, storage.ShoppingItems, func(r core.Record) bool {
			item, ok := r.(*core.ShoppingItem)
			return ok && item.ListId == listID
		})
		if err != nil {
			return err
		}
		for _, item := range items {
			if err := tx.Remove(ctx, storage.ShoppingItems, item.RecordID()); err != nil {
				return err
			}
		}
		return tx.Remove(ctx, storage.ShoppingLists, listID)
	})
	if err != nil {
		s.logger.Error("error deleting shopping list", "id", listID, "err", err)
		return err
	}
	return nil
}
