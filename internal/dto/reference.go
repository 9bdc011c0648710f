package dto

// UserResponse is one entry of the users reference list.
type UserResponse struct {
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	DepartmentID string `json:"departmentID"`
}

// DepartmentResponse is one entry of the departments reference list.
type DepartmentResponse struct {
	DepartmentID string `json:"departmentID"`
	Name         string `json:"name"`
}

// ExpenseCategoryResponse is one entry of the expense category taxonomy.
type ExpenseCategoryResponse struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	Active     bool   `json:"active"`
}
