package store

import (
	"context"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

// Employees returns a copy of the employee mirror. Password is never
// populated here; the server does not return it and the wire mapping
// does not carry it.
func (s *Store) Employees() []models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Employee, len(s.employees))
	copy(out, s.employees)
	return out
}

func (s *Store) RefreshEmployees(ctx context.Context) {
	gen := s.session.Generation()
	list, err := s.client.ListEmployees(ctx)
	if err != nil {
		s.report(ctx, err, "list employees")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.current(gen) {
		return
	}
	s.employees = list
}

func (s *Store) AddEmployee(ctx context.Context, e models.Employee) error {
	if err := s.client.CreateEmployee(ctx, e); err != nil {
		s.report(ctx, err, "add employee")
		return err
	}
	s.notify.Success("Employee added.")
	s.RefreshEmployees(ctx)
	return nil
}

func (s *Store) UpdateEmployee(ctx context.Context, e models.Employee) error {
	if err := s.client.UpdateEmployee(ctx, e); err != nil {
		s.report(ctx, err, "update employee")
		return err
	}
	s.notify.Success("Employee updated.")
	s.RefreshEmployees(ctx)
	return nil
}

func (s *Store) DeleteEmployee(ctx context.Context, id string) error {
	if err := s.client.DeleteEmployee(ctx, id); err != nil {
		s.report(ctx, err, "delete employee")
		return err
	}
	s.notify.Success("Employee deleted.")
	s.RefreshEmployees(ctx)
	return nil
}
