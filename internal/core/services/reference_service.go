package services

import (
	"context"
	"fmt"

	portsclients "github.com/theCrudify/kpin-approval/internal/core/ports/clients"
	portssvc "github.com/theCrudify/kpin-approval/internal/core/ports/services"
	"github.com/theCrudify/kpin-approval/internal/dto"
	"github.com/theCrudify/kpin-approval/internal/utils/mapping"
)

// referenceService passes the reference lists through from the finance
// backend. Lists are fetched on every call; the backend owns the data and
// nothing here may go stale.
type referenceService struct {
	client portsclients.ReferenceData
}

// NewReferenceService creates a new ReferenceSvcFacade.
func NewReferenceService(client portsclients.ReferenceData) portssvc.ReferenceSvcFacade {
	return &referenceService{client: client}
}

var _ portssvc.ReferenceSvcFacade = (*referenceService)(nil)

func (s *referenceService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.client.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return mapping.UsersToResponse(users), nil
}

func (s *referenceService) ListDepartments(ctx context.Context) ([]dto.DepartmentResponse, error) {
	departments, err := s.client.ListDepartments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return mapping.DepartmentsToResponse(departments), nil
}

func (s *referenceService) ListExpenseCategories(ctx context.Context, search string) ([]dto.ExpenseCategoryResponse, error) {
	categories, err := s.client.ListExpenseCategories(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list expense categories: %w", err)
	}
	return mapping.ExpenseCategoriesToResponse(categories), nil
}

// ResolveUserNames maps user IDs to display names via one users fetch.
func (s *referenceService) ResolveUserNames(ctx context.Context, userIDs []string) (map[string]string, error) {
	if len(userIDs) == 0 {
		return map[string]string{}, nil
	}
	users, err := s.client.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve user names: %w", err)
	}
	wanted := make(map[string]struct{}, len(userIDs))
	for _, id := range userIDs {
		if id != "" {
			wanted[id] = struct{}{}
		}
	}
	names := make(map[string]string, len(wanted))
	for _, u := range users {
		if _, ok := wanted[u.UserID]; ok {
			names[u.UserID] = u.Name
		}
	}
	return names, nil
}

func (s *referenceService) ResolveDepartmentName(ctx context.Context, departmentID string) (string, error) {
	if departmentID == "" {
		return "", nil
	}
	departments, err := s.client.ListDepartments(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to resolve department name: %w", err)
	}
	for _, d := range departments {
		if d.DepartmentID == departmentID {
			return d.Name, nil
		}
	}
	return "", nil
}
