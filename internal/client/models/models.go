// Package models defines the catalog and payroll entities mirrored by the
// console client. The remote service owns the authoritative copies; these
// types are the local shapes after wire mapping.
package models

import "time"

// Status classifies whether a catalog or roster entity is in use.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Category groups products. A category with products referencing it
// cannot be deleted.
type Category struct {
	ID     string
	Name   string
	Status Status
}

// Product belongs to exactly one category via CategoryID.
type Product struct {
	ID         string
	Name       string
	CategoryID string
	Status     Status
}

// Employee is a roster entry. Password is write-only: it is sent on
// create (required) and on update only when non-empty, and is never
// populated from server reads.
type Employee struct {
	ID       string
	Name     string
	Email    string
	Mobile   string
	Salary   float64
	Status   Status
	Password string
}

// SalaryRecord is one payroll entry for an employee. Records are
// append-only from the client's point of view; NetAmount is computed
// by the server.
type SalaryRecord struct {
	ID         int64
	EmployeeID string
	Date       time.Time
	Advance    float64
	Others     float64
	NetAmount  float64
	Note       string
}

// User is the account attached to the active session.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	UserType string `json:"usertype"`
}
