package store

import (
	"context"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

// Categories returns a copy of the category mirror.
func (s *Store) Categories() []models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// RefreshCategories replaces the mirror with the server's current
// collection. Failures are reported but not re-raised; the mirror keeps
// its previous contents.
func (s *Store) RefreshCategories(ctx context.Context) {
	gen := s.session.Generation()
	list, err := s.client.ListCategories(ctx)
	if err != nil {
		s.report(ctx, err, "list categories")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.current(gen) {
		return
	}
	s.categories = list
}

func (s *Store) AddCategory(ctx context.Context, c models.Category) error {
	if err := s.client.CreateCategory(ctx, c); err != nil {
		s.report(ctx, err, "add category")
		return err
	}
	s.notify.Success("Category added.")
	s.RefreshCategories(ctx)
	return nil
}

func (s *Store) UpdateCategory(ctx context.Context, c models.Category) error {
	if err := s.client.UpdateCategory(ctx, c); err != nil {
		s.report(ctx, err, "update category")
		return err
	}
	s.notify.Success("Category updated.")
	s.RefreshCategories(ctx)
	return nil
}

// DeleteCategory refuses locally, without a network call, while any
// mirrored product still references the category.
func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	inUse := false
	for _, p := range s.products {
		if p.CategoryID == id {
			inUse = true
			break
		}
	}
	s.mu.Unlock()

	if inUse {
		s.notify.Error("Cannot delete this category: it has associated products.")
		return ErrCategoryInUse
	}

	if err := s.client.DeleteCategory(ctx, id); err != nil {
		s.report(ctx, err, "delete category")
		return err
	}
	s.notify.Success("Category deleted.")
	s.RefreshCategories(ctx)
	return nil
}
