package mapping

import (
	"github.com/theCrudify/kpin-approval/internal/core/domain"
	"github.com/theCrudify/kpin-approval/internal/dto"
)

// UsersToResponse maps the users reference list.
func UsersToResponse(users []domain.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{
			UserID:       u.UserID,
			Name:         u.Name,
			Role:         u.Role,
			DepartmentID: u.DepartmentID,
		})
	}
	return out
}

// DepartmentsToResponse maps the departments reference list.
func DepartmentsToResponse(departments []domain.Department) []dto.DepartmentResponse {
	out := make([]dto.DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, dto.DepartmentResponse{
			DepartmentID: d.DepartmentID,
			Name:         d.Name,
		})
	}
	return out
}

// ExpenseCategoriesToResponse maps the expense category taxonomy.
func ExpenseCategoriesToResponse(categories []domain.ExpenseCategory) []dto.ExpenseCategoryResponse {
	out := make([]dto.ExpenseCategoryResponse, 0, len(categories))
	for _, c := range categories {
		out = append(out, dto.ExpenseCategoryResponse{
			CategoryID: c.CategoryID,
			Name:       c.Name,
			Active:     c.Active,
		})
	}
	return out
}
