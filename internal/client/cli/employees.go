package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

type employeeCreateForm struct {
	Name     string  `validate:"required"`
	Email    string  `validate:"required,email"`
	Mobile   string  `validate:"required"`
	Salary   float64 `validate:"gte=0"`
	Password string  `validate:"required,min=6"`
}

type employeeUpdateForm struct {
	Name     string  `validate:"required"`
	Email    string  `validate:"required,email"`
	Mobile   string  `validate:"required"`
	Salary   float64 `validate:"gte=0"`
	Password string  `validate:"omitempty,min=6"`
}

func (a *App) Employees(ctx context.Context, page int) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}
	emps := a.store.Employees()
	lo, hi, page, total := pageBounds(len(emps), page, a.config.PageSize)

	printlnFn(fmt.Sprintf("Employees (page %d/%d, %d total):", page, total, len(emps)))
	for _, e := range emps[lo:hi] {
		printlnFn(fmt.Sprintf("  %-6s %-20s %-25s %-14s %10.2f %s",
			e.ID, e.Name, e.Email, e.Mobile, e.Salary, e.Status))
	}
	return nil
}

func (a *App) AddEmployee(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}

	name, err := getSimpleText(a.reader, "Name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	mobile, err := getSimpleText(a.reader, "Mobile", os.Stdout)
	if err != nil {
		return err
	}
	salary, err := GetFloat(a.reader, "Monthly salary", 0, os.Stdout)
	if err != nil {
		return err
	}
	status, err := GetStatus(a.reader, models.StatusActive, os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "Password")
	if err != nil {
		return err
	}

	form := employeeCreateForm{Name: name, Email: email, Mobile: mobile, Salary: salary, Password: password}
	if err := a.validate.Struct(form); err != nil {
		a.notify.Error("Check the employee fields: name, valid email, mobile, non-negative salary and a password of at least 6 characters are required.")
		return err
	}

	return a.store.AddEmployee(ctx, models.Employee{
		Name:     name,
		Email:    email,
		Mobile:   mobile,
		Salary:   salary,
		Status:   status,
		Password: password,
	})
}

// EditEmployee submits a full-field update; leaving the password empty
// keeps the current one.
func (a *App) EditEmployee(ctx context.Context) error {
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

	a.store.SetEditingEmployee(target)
	defer a.store.SetEditingEmployee(nil)

	name, err := getTextWithDefault(a.reader, "Name", target.Name, os.Stdout)
	if err != nil {
		return err
	}
	email, err := getTextWithDefault(a.reader, "Email", target.Email, os.Stdout)
	if err != nil {
		return err
	}
	mobile, err := getTextWithDefault(a.reader, "Mobile", target.Mobile, os.Stdout)
	if err != nil {
		return err
	}
	salary, err := GetFloat(a.reader, "Monthly salary", target.Salary, os.Stdout)
	if err != nil {
		return err
	}
	status, err := GetStatus(a.reader, target.Status, os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout, "New password (empty keeps current)")
	if err != nil {
		return err
	}

	form := employeeUpdateForm{Name: name, Email: email, Mobile: mobile, Salary: salary, Password: password}
	if err := a.validate.Struct(form); err != nil {
		a.notify.Error("Check the employee fields: name, valid email, mobile and non-negative salary are required.")
		return err
	}

	return a.store.UpdateEmployee(ctx, models.Employee{
		ID:       target.ID,
		Name:     name,
		Email:    email,
		Mobile:   mobile,
		Salary:   salary,
		Status:   status,
		Password: password,
	})
}

func (a *App) DeleteEmployee(ctx context.Context) error {
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

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete employee %q?", target.Name), os.Stdout)
	if err != nil || !ok {
		return err
	}
	return a.store.DeleteEmployee(ctx, target.ID)
}

func findEmployee(emps []models.Employee, id string) *models.Employee {
	for _, e := range emps {
		if e.ID == id {
			return &e
		}
	}
	return nil
}
