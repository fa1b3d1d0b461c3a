package store

import (
	"context"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

// Salaries returns a copy of the salary mirror together with the id of
// the employee whose history it holds.
func (s *Store) Salaries() ([]models.SalaryRecord, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.SalaryRecord, len(s.salaries))
	copy(out, s.salaries)
	return out, s.salaryEmployeeID
}

// AddEmployeeSalary creates a payroll record. It does not refresh the
// salary mirror; a caller viewing history afterwards re-fetches
// explicitly.
func (s *Store) AddEmployeeSalary(ctx context.Context, r models.SalaryRecord) error {
	if err := s.client.CreateSalary(ctx, r); err != nil {
		s.report(ctx, err, "add salary record")
		return err
	}
	s.notify.Success("Salary record added.")
	return nil
}

// FetchEmployeeSalaries replaces the salary mirror with the full history
// of one employee. On failure the mirror is cleared rather than left
// holding another employee's records.
func (s *Store) FetchEmployeeSalaries(ctx context.Context, employeeID string) {
	gen := s.session.Generation()
	list, err := s.client.ListSalaries(ctx, employeeID)

	s.mu.Lock()
	if !s.current(gen) {
		s.mu.Unlock()
		return
	}
	if err != nil {
		s.salaries = nil
		s.salaryEmployeeID = ""
		s.mu.Unlock()
		s.report(ctx, err, "list salary records")
		return
	}
	s.salaries = list
	s.salaryEmployeeID = employeeID
	s.mu.Unlock()
}
