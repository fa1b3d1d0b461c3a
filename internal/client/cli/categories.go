package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/storeadmin/internal/client/models"
)

type categoryForm struct {
	Name string `validate:"required"`
}

// Categories renders one page of the category mirror.
func (a *App) Categories(ctx context.Context, page int) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}
	cats := a.store.Categories()
	lo, hi, page, total := pageBounds(len(cats), page, a.config.PageSize)

	printlnFn(fmt.Sprintf("Categories (page %d/%d, %d total):", page, total, len(cats)))
	for _, c := range cats[lo:hi] {
		printlnFn(fmt.Sprintf("  %-6s %-25s %s", c.ID, c.Name, c.Status))
	}
	return nil
}

func (a *App) AddCategory(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}

	name, err := getSimpleText(a.reader, "Category name", os.Stdout)
	if err != nil {
		return err
	}
	status, err := GetStatus(a.reader, models.StatusActive, os.Stdout)
	if err != nil {
		return err
	}

	if err := a.validate.Struct(categoryForm{Name: name}); err != nil {
		a.notify.Error("Category name is required.")
		return err
	}

	return a.store.AddCategory(ctx, models.Category{Name: name, Status: status})
}

// EditCategory resolves the target by id, parks it in the editing slot
// for the duration of the form, and submits a full-field update.
func (a *App) EditCategory(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}

	id, err := getSimpleText(a.reader, "Category id", os.Stdout)
	if err != nil {
		return err
	}
	target := findCategory(a.store.Categories(), id)
	if target == nil {
		printlnFn("No category with id", id)
		return nil
	}

	a.store.SetEditingCategory(target)
	defer a.store.SetEditingCategory(nil)

	name, err := getTextWithDefault(a.reader, "Name", target.Name, os.Stdout)
	if err != nil {
		return err
	}
	status, err := GetStatus(a.reader, target.Status, os.Stdout)
	if err != nil {
		return err
	}

	if err := a.validate.Struct(categoryForm{Name: name}); err != nil {
		a.notify.Error("Category name is required.")
		return err
	}

	return a.store.UpdateCategory(ctx, models.Category{ID: target.ID, Name: name, Status: status})
}

func (a *App) DeleteCategory(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("Not logged in.")
		return nil
	}

	id, err := getSimpleText(a.reader, "Category id", os.Stdout)
	if err != nil {
		return err
	}
	target := findCategory(a.store.Categories(), id)
	if target == nil {
		printlnFn("No category with id", id)
		return nil
	}

	ok, err := Confirm(a.reader, fmt.Sprintf("Delete category %q?", target.Name), os.Stdout)
	if err != nil || !ok {
		return err
	}
	return a.store.DeleteCategory(ctx, target.ID)
}

func findCategory(cats []models.Category, id string) *models.Category {
	for _, c := range cats {
		if c.ID == id {
			return &c
		}
	}
	return nil
}
