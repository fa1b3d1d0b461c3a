package store

import (
	"context"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

// Products returns a copy of the product mirror.
func (s *Store) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) RefreshProducts(ctx context.Context) {
	gen := s.session.Generation()
	list, err := s.client.ListProducts(ctx)
	if err != nil {
		s.report(ctx, err, "list products")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.current(gen) {
		return
	}
	s.products = list
}

func (s *Store) AddProduct(ctx context.Context, p models.Product) error {
	if err := s.client.CreateProduct(ctx, p); err != nil {
		s.report(ctx, err, "add product")
		return err
	}
	s.notify.Success("Product added.")
	s.RefreshProducts(ctx)
	return nil
}

func (s *Store) UpdateProduct(ctx context.Context, p models.Product) error {
	if err := s.client.UpdateProduct(ctx, p); err != nil {
		s.report(ctx, err, "update product")
		return err
	}
	s.notify.Success("Product updated.")
	s.RefreshProducts(ctx)
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	if err := s.client.DeleteProduct(ctx, id); err != nil {
		s.report(ctx, err, "delete product")
		return err
	}
	s.notify.Success("Product deleted.")
	s.RefreshProducts(ctx)
	return nil
}
