package api

import (
	"context"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

type Client interface {
	SetToken(token string)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	UpdateProfile(ctx context.Context, email, password string) error

	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, c models.Category) error
	UpdateCategory(ctx context.Context, c models.Category) error
	DeleteCategory(ctx context.Context, id string) error

	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, p models.Product) error
	UpdateProduct(ctx context.Context, p models.Product) error
	DeleteProduct(ctx context.Context, id string) error

	ListEmployees(ctx context.Context) ([]models.Employee, error)
	CreateEmployee(ctx context.Context, e models.Employee) error
	UpdateEmployee(ctx context.Context, e models.Employee) error
	DeleteEmployee(ctx context.Context, id string) error

	CreateSalary(ctx context.Context, r models.SalaryRecord) error
	ListSalaries(ctx context.Context, employeeID string) ([]models.SalaryRecord, error)
}
