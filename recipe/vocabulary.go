package recipe

import (
	"context"
	"slices"
	"strings"

	"github.com/poiesic/recipebox/core"
	"github.com/poiesic/recipebox/storage"
)

// DefaultCategories returns the categories seeded into an empty database.
// Ids are derived from the names so every database shares them.
func DefaultCategories() []*core.Category {
	seed := []struct{ name, color, icon string }{
		{"Main dish", "#EF4444", "fire"},
		{"Side dish", "#10B981", "leaf"},
		{"Soup", "#F59E0B", "beaker"},
		{"Dessert", "#EC4899", "cake"},
		{"Bread & bakery", "#8B5CF6", "bread"},
	}
	categories := make([]*core.Category, 0, len(seed))
	for _, c := range seed {
		categories = append(categories, &core.Category{
			Id:    categoryID(c.name),
			Name:  c.name,
			Color: c.color,
			Icon:  c.icon,
		})
	}
	return categories
}

// DefaultTags returns the tags seeded into an empty database.
func DefaultTags() []*core.Tag {
	names := []string{"Easy", "Quick", "Healthy", "Party", "Kid-friendly"}
	tags := make([]*core.Tag, 0, len(names))
	for _, name := range names {
		tags = append(tags, &core.Tag{Id: tagID(name), Name: name})
	}
	return tags
}

func categoryID(name string) string {
	return core.IDFromContent("category:" + strings.ToLower(strings.TrimSpace(name)))
}

func tagID(name string) string {
	return core.IDFromContent("tag:" + strings.ToLower(strings.TrimSpace(name)))
}

// Initialize seeds the default categories when none exist and the default tags
// when none exist. Calling it again changes nothing.
func (s *Service) Initialize(ctx context.Context) error {
	err := s.gateway.Update(ctx, func(tx storage.Tx) error {
		categories, err := tx.GetAll(ctx, storage.Categories)
		if err != nil {
			return err
		}
		if len(categories) == 0 {
			for _, c := range DefaultCategories() {
				if _, err := tx.Set(ctx, storage.Categories, c); err != nil {
					return err
				}
			}
			s.logger.Info("seeded default categories")
		}

		tags, err := tx.GetAll(ctx, storage.Tags)
		if err != nil {
			return err
		}
		if len(tags) == 0 {
			for _, t := range DefaultTags() {
				if _, err := tx.Set(ctx, storage.Tags, t); err != nil {
					return err
				}
			}
			s.logger.Info("seeded default tags")
		}
		return nil
	})
	if err != nil {
		s.logger.Error("error seeding vocabulary", "err", err)
		return err
	}
	return nil
}

// Categories returns every category ordered by name.
func (s *Service) Categories(ctx context.Context) ([]*core.Category, error) {
	categories, err := storage.AllAs[*core.Category](ctx, s.gateway, storage.Categories)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(categories, func(a, b *core.Category) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return categories, nil
}

// Tags returns every tag ordered by name.
func (s *Service) Tags(ctx context.Context) ([]*core.Tag, error) {
	tags, err := storage.AllAs[*core.Tag](ctx, s.gateway, storage.Tags)
	if err != nil {
		return nil, err
	}
	slices.SortFunc(tags, func(a, b *core.Tag) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return tags, nil
}

// SaveCategory upserts a category. A category without an id gets one derived
// from its name; color and icon default when unset.
func (s *Service) SaveCategory(ctx context.Context, category *core.Category) (*core.Category, error) {
	if err := core.ValidateCategory(category); err != nil {
		return nil, err
	}
	c := *category
	if c.Id == "" {
		c.Id = categoryID(c.Name)
	}
	core.ApplyCategoryDefaults(&c)
	if _, err := s.gateway.Set(ctx, storage.Categories, &c); err != nil {
		s.logger.Error("error saving category", "name", c.Name, "err", err)
		return nil, err
	}
	return &c, nil
}

// SaveTag upserts a tag. A tag without an id gets one derived from its name.
func (s *Service) SaveTag(ctx context.Context, tag *core.Tag) (*core.Tag, error) {
	if err := core.ValidateTag(tag); err != nil {
		return nil, err
	}
	t := *tag
	if t.Id == "" {
		t.Id = tagID(t.Name)
	}
	if _, err := s.gateway.Set(ctx, storage.Tags, &t); err != nil {
		s.logger.Error("error saving tag", "name", t.Name, "err", err)
		return nil, err
	}
	return &t, nil
}

// ResolveCategories maps category names to ids, matching case-insensitively and
// creating the categories that don't exist yet. Blank names are skipped.
func (s *Service) ResolveCategories(ctx context.Context, names []string) ([]string, error) {
	if len(names) == 0 {
		return []string{}, nil
	}
	ids := make([]string, 0, len(names))
	err := s.gateway.Update(ctx, func(tx storage.Tx) error {
		ids = ids[:0]
		existing, err := storage.AllAs[*core.Category](ctx, tx, storage.Categories)
		if err != nil {
			return err
		}
		byName := make(map[string]string, len(existing))
		for _, c := range existing {
			byName[strings.ToLower(c.Name)] = c.Id
		}
		for _, name := range names {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			key := strings.ToLower(name)
			id, ok := byName[key]
			if !ok {
				c := &core.Category{Id: categoryID(name), Name: name}
				core.ApplyCategoryDefaults(c)
				if _, err := tx.Set(ctx, storage.Categories, c); err != nil {
					return err
				}
				id = c.Id
				byName[key] = id
			}
			if !slices.Contains(ids, id) {
				ids = append(ids, id)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// ResolveTags maps tag names to ids, matching case-insensitively and creating
// the tags that don't exist yet. Blank names are skipped.
func (s *Service) ResolveTags(ctx context.Context, names []string) ([]string, error) {
	if len(names) == 0 {
		return []string{}, nil
	}
	ids := make([]string, 0, len(names))
	err := s.gateway.Update(ctx, func(tx storage.Tx) error {
		ids = ids[:0]
		existing, err := storage.AllAs[*core.Tag](ctx, tx, storage.Tags)
		if err != nil {
			return err
		}
		byName := make(map[string]string, len(existing))
		for _, t := range existing {
			byName[strings.ToLower(t.Name)] = t.Id
		}
		for _, name := range names {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			key := strings.ToLower(name)
			id, ok := byName[key]
			if !ok {
				t := &core.Tag{Id: tagID(name), Name: name}
				if _, err := tx.Set(ctx, storage.Tags, t); err != nil {
					return err
				}
				id = t.Id
				byName[key] = id
			}
			if !slices.Contains(ids, id) {
				ids = append(ids, id)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
