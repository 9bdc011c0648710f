package financeapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/theCrudify/kpin-approval/internal/core/domain"
)

// ListUsers fetches the flat users list.
func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ListDepartments fetches the flat departments list.
func (c *Client) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	var departments []domain.Department
	if err := c.do(ctx, http.MethodGet, "/departments", nil, &departments); err != nil {
		return nil, err
	}
	return departments, nil
}

// ListExpenseCategories fetches the expense taxonomy, optionally filtered by
// a search term the backend interprets.
func (c *Client) ListExpenseCategories(ctx context.Context, search string) ([]domain.ExpenseCategory, error) {
	path := "/expense-categories"
	if search != "" {
		path += "?search=" + url.QueryEscape(search)
	}
	var categories []domain.ExpenseCategory
	if err := c.do(ctx, http.MethodGet, path, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
