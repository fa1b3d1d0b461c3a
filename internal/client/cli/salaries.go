package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

const salaryDateLayout = "2006-01-02"

type salaryForm struct {
	EmployeeID string  `validate:"required"`
	Advance    float64 `validate:"gte=0"`
	Note       string
}

// Salaries shows the payroll history of one employee. The fetch fully
// replaces the salary mirror, so switching employees never leaves
// records of the previous one behind.
func (a *App) Salaries(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}

	id, err := getSimpleText(a.reader, "Employee id", os.Stdout)
	if err != nil {
		return err
	}
	target := findEmployee(a.store.Employees(), id)
	if target == nil {
		printlnFn("No employee with id", id)
		return nil
	}

	a.store.SetSalaryEmployee(target)
	defer a.store.SetSalaryEmployee(nil)

	a.store.FetchEmployeeSalaries(ctx, target.ID)
	records, owner := a.store.Salaries()
	if owner != target.ID {
		// Fetch failed; the toast already reported it.
		return nil
	}

	printlnFn(fmt.Sprintf("Salary history for %s (%d records):", target.Name, len(records)))
	for _, r := range records {
		printlnFn(fmt.Sprintf("  %-6d %s  advance %10.2f  others %10.2f  net %10.2f  %s",
			r.ID, r.Date.Format(salaryDateLayout), r.Advance, r.Others, r.NetAmount, r.Note))
	}
	return nil
}

// AddSalary records a payroll entry for an employee. The net amount is
// computed by the server; the history view re-fetches explicitly.
func (a *App) AddSalary(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}

	id, err := getSimpleText(a.reader, "Employee id", os.Stdout)
	if err != nil {
		return err
	}
	target := findEmployee(a.store.Employees(), id)
	if target == nil {
		printlnFn("No employee with id", id)
		return nil
	}

	a.store.SetSalaryEmployee(target)
	defer a.store.SetSalaryEmployee(nil)

	dateText, err := getTextWithDefault(a.reader, "Date (YYYY-MM-DD)", time.Now().Format(salaryDateLayout), os.Stdout)
	if err != nil {
		return err
	}
	date, err := time.Parse(salaryDateLayout, dateText)
	if err != nil {
		printlnFn("Unrecognized date:", dateText)
		return err
	}
	advance, err := GetFloat(a.reader, "Advance", 0, os.Stdout)
	if err != nil {
		return err
	}
	// Others is a signed adjustment, deductions go in as negatives.
	others, err := GetFloat(a.reader, "Others", 0, os.Stdout)
	if err != nil {
		return err
	}
	note, err := getSimpleText(a.reader, "Note", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.validate.Struct(salaryForm{EmployeeID: target.ID, Advance: advance, Note: note}); err != nil {
		a.notify.Error("Advance must be non-negative.")
		return err
	}

	return a.store.AddEmployeeSalary(ctx, models.SalaryRecord{
		EmployeeID: target.ID,
		Date:       date,
		Advance:    advance,
		Others:     others,
		Note:       note,
	})
}
