package store

import "github.com/dmitrijs2005/storeadmin/internal/client/models"

// Selection slots are single-item, in-memory markers set by a list view
// before a detail/edit view runs, and cleared when it completes. They
// never touch the network.

func (s *Store) SetEditingCategory(c *models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingCategory = c
}

func (s *Store) EditingCategory() *models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingCategory
}

func (s *Store) SetEditingProduct(p *models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingProduct = p
}

func (s *Store) EditingProduct() *models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingProduct
}

func (s *Store) SetEditingEmployee(e *models.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingEmployee = e
}

func (s *Store) EditingEmployee() *models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingEmployee
}

func (s *Store) SetSalaryEmployee(e *models.Employee) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.salaryEmployee = e
}

func (s *Store) SalaryEmployee() *models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.salaryEmployee
}
