package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

type productForm struct {
	Name       string `validate:"required"`
	CategoryID string `validate:"required"`
}

// Products renders one page of the product mirror, with category names
// resolved from the category mirror.
func (a *App) Products(ctx context.Context, page int) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}
	prods := a.store.Products()
	lo, hi, page, total := pageBounds(len(prods), page, a.config.PageSize)

	catNames := make(map[string]string)
	for _, c := range a.store.Categories() {
		catNames[c.ID] = c.Name
	}

	printlnFn(fmt.Sprintf("Products (page %d/%d, %d total):", page, total, len(prods)))
	for _, p := range prods[lo:hi] {
		printlnFn(fmt.Sprintf("  %-6s %-25s %-20s %s", p.ID, p.Name, catNames[p.CategoryID], p.Status))
	}
	return nil
}

// chooseCategory lists the mirrored categories and reads a selection.
// The data layer does not verify the reference; keeping the choice
// within the mirror is the form's job.
func (a *App) chooseCategory() (string, error) {
	cats := a.store.Categories()
	if len(cats) == 0 {
		printlnFn("No categories available. Add a category first.")
		return "", nil
	}
	printlnFn("Categories:")
	for _, c := range cats {
		printlnFn(fmt.Sprintf("  %-6s %s", c.ID, c.Name))
	}
	id, err := getSimpleText(a.reader, "Category id", os.Stdout)
	if err != nil {
		return "", err
	}
	if findCategory(cats, id) == nil {
		printlnFn("No category with id", id)
		return "", nil
	}
	return id, nil
}

func (a *App) AddProduct(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}

	name, err := getSimpleText(a.reader, "Product name", os.Stdout)
	if err != nil {
		return err
	}
	categoryID, err := a.chooseCategory()
	if err != nil || categoryID == "" {
		return err
	}
	status, err := GetStatus(a.reader, models.StatusActive, os.Stdout)
	if err != nil {
		return err
	}

	if err := a.validate.Struct(productForm{Name: name, CategoryID: categoryID}); err != nil {
		a.notify.Error("Product name and category are required.")
		return err
	}

	return a.store.AddProduct(ctx, models.Product{Name: name, CategoryID: categoryID, Status: status})
}

func (a *App) EditProduct(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}

	id, err := getSimpleText(a.reader, "Product id", os.Stdout)
	if err != nil {
		return err
	}
	target := findProduct(a.store.Products(), id)
	if target == nil {
		printlnFn("No product with id", id)
		return nil
	}

	a.store.SetEditingProduct(target)
	defer a.store.SetEditingProduct(nil)

	name, err := getTextWithDefault(a.reader, "Name", target.Name, os.Stdout)
	if err != nil {
		return err
	}
	categoryID, err := getTextWithDefault(a.reader, "Category id", target.CategoryID, os.Stdout)
	if err != nil {
		return err
	}
	if findCategory(a.store.Categories(), categoryID) == nil {
		printlnFn("No category with id", categoryID)
		return nil
	}
	status, err := GetStatus(a.reader, target.Status, os.Stdout)
	if err != nil {
		return err
	}

	if err := a.validate.Struct(productForm{Name: name, CategoryID: categoryID}); err != nil {
		a.notify.Error("Product name and category are required.")
		return err
	}

	return a.store.UpdateProduct(ctx, models.Product{
		ID:         target.ID,
		Name:       name,
		CategoryID: categoryID,
		Status:     status,
	})
}

func (a *App) DeleteProduct(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}

	id, err := getSimpleText(a.reader, "Product id", os.Stdout)
	if err != nil {
		return err
	}
	target := findProduct(a.store.Products(), id)
	if target == nil {
		printlnFn("No product with id", id)
		return nil
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete product %q?", target.Name), os.Stdout)
	if err != nil || !ok {
		return err
	}
	return a.store.DeleteProduct(ctx, target.ID)
}

func findProduct(prods []models.Product, id string) *models.Product {
	for _, p := range prods {
		if p.ID == id {
			return &p
		}
	}
	return nil
}
