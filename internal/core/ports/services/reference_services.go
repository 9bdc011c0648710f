package services

import (
	"context"

	"github.com/theCrudify/kpin-approval/internal/dto"
)

// ReferenceSvcFacade serves the reference lists and resolves display names.
// Lists come straight from the finance backend on every call; nothing is
// cached across requests.
type ReferenceSvcFacade interface {
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
	ListDepartments(ctx context.Context) ([]dto.DepartmentResponse, error)
	ListExpenseCategories(ctx context.Context, search string) ([]dto.ExpenseCategoryResponse, error)

	// ResolveUserNames maps user IDs to display names. Unknown IDs are
	// simply absent from the result.
	ResolveUserNames(ctx context.Context, userIDs []string) (map[string]string, error)

	// ResolveDepartmentName maps one department ID to its name, empty when
	// unknown.
	ResolveDepartmentName(ctx context.Context, departmentID string) (string, error)
}

// AttachmentSvcFacade tracks the files queued client-side for handoff to the
// external storage service, capped at five per document. Upload, listing and
// viewing of stored files stays entirely with that service.
type AttachmentSvcFacade interface {
	ListPending(documentID string) *dto.PendingAttachmentsResponse
	AddPending(documentID, fileName string) (*dto.PendingAttachmentsResponse, error)
	RemovePending(documentID string, index int) (*dto.PendingAttachmentsResponse, error)
}
