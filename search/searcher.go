package search

import (
	"context"
	"log/slog"

	"github.com/poiesic/recipebox/core"
	"github.com/poiesic/recipebox/recipe"
	"github.com/poiesic/recipebox/storage"
)

// Criteria combines optional recipe filters. Zero values leave a filter unset.
type Criteria struct {
	Query         string
	CategoryId    string
	TagId         string
	OnlyFavorites bool
	MaxCookTime   int // minutes of prep plus cooking
}

// IsEmpty reports whether no filter is set.
func (c Criteria) IsEmpty() bool {
	return normalizeQuery(c.Query) == "" && c.CategoryId == "" && c.TagId == "" &&
		!c.OnlyFavorites && c.MaxCookTime <= 0
}

// Searcher filters the recipes stored behind a gateway.
type Searcher struct {
	gateway storage.Gateway
	logger  *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(gateway storage.Gateway, opts ...Option) (*Searcher, error) {
	if gateway == nil {
		return nil, ErrGatewayRequired
	}

	s := &Searcher{
		gateway: gateway,
		logger:  slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// SearchRecipes returns the recipes whose title or description contains query,
// ignoring case. A blank query returns no recipes.
func (s *Searcher) SearchRecipes(ctx context.Context, query string) ([]*core.Recipe, error) {
	needle := normalizeQuery(query)
	if needle == "" {
		return []*core.Recipe{}, nil
	}
	return s.query(ctx, func(r *core.Recipe) bool {
		return matchesText(r, needle)
	})
}

// FilterByIngredient returns the recipes having an ingredient whose name contains
// name, ignoring case. Recipes appear in the order their first matching ingredient
// was found; ingredients of deleted recipes are skipped. A blank name returns no recipes.
func (s *Searcher) FilterByIngredient(ctx context.Context, name string) ([]*core.Recipe, error) {
	needle := normalizeQuery(name)
	if needle == "" {
		return []*core.Recipe{}, nil
	}

	recipes := make([]*core.Recipe, 0)
	err := s.gateway.View(ctx, func(tx storage.Tx) error {
		ingredients, err := storage.QueryAs(ctx, tx, storage.Ingredients, func(i *core.Ingredient) bool {
			return containsFold(i.Name, needle)
		})
		if err != nil {
			return err
		}

		seen := make(map[string]bool, len(ingredients))
		for _, ingredient := range ingredients {
			if seen[ingredient.RecipeId] {
				continue
			}
			seen[ingredient.RecipeId] = true

			r, err := storage.GetAs[*core.Recipe](ctx, tx, storage.Recipes, ingredient.RecipeId)
			if storage.IsNotFound(err) {
				s.logger.Debug("skipping orphaned ingredient", "ingredient", ingredient.Id, "recipe", ingredient.RecipeId)
				continue
			}
			if err != nil {
				return err
			}
			recipes = append(recipes, r)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("error filtering by ingredient", "name", name, "err", err)
		return nil, err
	}
	return recipes, nil
}

// FilterByCookTime returns the recipes whose prep plus cooking time is at most
// maxMinutes. A non-positive limit returns no recipes.
func (s *Searcher) FilterByCookTime(ctx context.Context, maxMinutes int) ([]*core.Recipe, error) {
	if maxMinutes <= 0 {
		return []*core.Recipe{}, nil
	}
	return s.query(ctx, func(r *core.Recipe) bool {
		return r.TotalTime() <= maxMinutes
	})
}

// FilterByCriteria returns the recipes satisfying every filter set in criteria.
// Empty criteria return every recipe.
func (s *Searcher) FilterByCriteria(ctx context.Context, criteria Criteria) ([]*core.Recipe, error) {
	return s.FilterByCriteriaWithMonitor(ctx, criteria, nil)
}

// FilterByCriteriaWithMonitor is FilterByCriteria reporting each stage to monitor.
// Predicates run in the order query, category, tag, favorites, cook time.
func (s *Searcher) FilterByCriteriaWithMonitor(ctx context.Context, criteria Criteria, monitor FilterMonitor) ([]*core.Recipe, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(criteria)

	results, err := s.query(ctx, nil)
	if err != nil {
		return nil, err
	}
	monitor.AfterScan(len(results))

	for _, p := range criteria.predicates() {
		results = filter(results, p.match)
		monitor.AfterPredicate(p.name, len(results))
	}

	monitor.Finish(results)
	return results, nil
}

type predicate struct {
	name  string
	match func(*core.Recipe) bool
}

// predicates returns the filters set in c, in evaluation order.
func (c Criteria) predicates() []predicate {
	var preds []predicate
	if needle := normalizeQuery(c.Query); needle != "" {
		preds = append(preds, predicate{"query", func(r *core.Recipe) bool {
			return matchesText(r, needle)
		}})
	}
	if c.CategoryId != "" {
		preds = append(preds, predicate{"category", func(r *core.Recipe) bool {
			return r.HasCategory(c.CategoryId)
		}})
	}
	if c.TagId != "" {
		preds = append(preds, predicate{"tag", func(r *core.Recipe) bool {
			return r.HasTag(c.TagId)
		}})
	}
	if c.OnlyFavorites {
		preds = append(preds, predicate{"favorites", func(r *core.Recipe) bool {
			return r.Favorite
		}})
	}
	if c.MaxCookTime > 0 {
		preds = append(preds, predicate{"cook time", func(r *core.Recipe) bool {
			return r.TotalTime() <= c.MaxCookTime
		}})
	}
	return preds
}

// query scans the recipes collection and returns matches ordered by title.
func (s *Searcher) query(ctx context.Context, pred func(*core.Recipe) bool) ([]*core.Recipe, error) {
	recipes, err := storage.QueryAs(ctx, s.gateway, storage.Recipes, pred)
	if err != nil {
		s.logger.Error("error scanning recipes", "err", err)
		return nil, err
	}
	recipe.SortByTitle(recipes)
	return recipes, nil
}

func filter(recipes []*core.Recipe, keep func(*core.Recipe) bool) []*core.Recipe {
	out := recipes[:0]
	for _, r := range recipes {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
