package api

import (
	"time"

	"github.com/spf13/cast"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

// The server encodes ids as JSON numbers and statuses as 1/0. Rows are
// decoded into loose shapes and coerced into the local models here, so
// the rest of the client never sees wire encodings.

const wireDateLayout = "2006-01-02"

func statusFromWire(v any) models.Status {
	if cast.ToInt(v) == 1 {
		return models.StatusActive
	}
	return models.StatusInactive
}

func statusToWire(s models.Status) string {
	if s == models.StatusActive {
		return "1"
	}
	return "0"
}

type categoryRow struct {
	ID     any    `json:"id"`
	Name   string `json:"name"`
	Status any    `json:"status"`
}

func (r categoryRow) toModel() models.Category {
	return models.Category{
		ID:     cast.ToString(r.ID),
		Name:   r.Name,
		Status: statusFromWire(r.Status),
	}
}

type productRow struct {
	ID         any    `json:"id"`
	Name       string `json:"name"`
	CategoryID any    `json:"category_id"`
	Status     any    `json:"status"`
}

func (r productRow) toModel() models.Product {
	return models.Product{
		ID:         cast.ToString(r.ID),
		Name:       r.Name,
		CategoryID: cast.ToString(r.CategoryID),
		Status:     statusFromWire(r.Status),
	}
}

type employeeRow struct {
	ID     any    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile"`
	Salary any    `json:"salary"`
	Status any    `json:"status"`
}

// toModel never populates Password; the field is write-only.
func (r employeeRow) toModel() models.Employee {
	return models.Employee{
		ID:     cast.ToString(r.ID),
		Name:   r.Name,
		Email:  r.Email,
		Mobile: r.Mobile,
		Salary: cast.ToFloat64(r.Salary),
		Status: statusFromWire(r.Status),
	}
}

type salaryRow struct {
	ID         any    `json:"id"`
	EmployeeID any    `json:"employee_id"`
	SalDate    string `json:"sal_date"`
	Advance    any    `json:"advance"`
	Others     any    `json:"others"`
	NetAmount  any    `json:"netamount"`
	Note       string `json:"note"`
}

func (r salaryRow) toModel() models.SalaryRecord {
	date, err := time.Parse(wireDateLayout, r.SalDate)
	if err != nil {
		// Some deployments return full timestamps.
		date, _ = time.Parse(time.RFC3339, r.SalDate)
	}
	return models.SalaryRecord{
		ID:         cast.ToInt64(r.ID),
		EmployeeID: cast.ToString(r.EmployeeID),
		Date:       date,
		Advance:    cast.ToFloat64(r.Advance),
		Others:     cast.ToFloat64(r.Others),
		NetAmount:  cast.ToFloat64(r.NetAmount),
		Note:       r.Note,
	}
}

type userRow struct {
	ID       any    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"usertype"`
}

func (r userRow) toModel() models.User {
	return models.User{
		ID:       cast.ToString(r.ID),
		Name:     r.Name,
		Email:    r.Email,
		UserType: r.UserType,
	}
}

type loginData struct {
	Token string  `json:"token"`
	User  userRow `json:"user"`
}
