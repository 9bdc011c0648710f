package clients

import (
	"context"

	"github.com/theCrudify/kpin-approval/internal/core/domain"
)

// TransitionPayload is the body of the status-update call on the finance
// backend, the sole mutation surface this service uses.
type TransitionPayload struct {
	UserID   string            `json:"userId"`
	StatusAt domain.Stage      `json:"statusAt"`
	Action   domain.ActionType `json:"action"`
	Remarks  string            `json:"remarks"`
}

// DocumentReader fetches documents from the finance backend. The backend is
// the single source of truth; results are never cached across requests.
type DocumentReader interface {
	GetDocument(ctx context.Context, documentID string) (*domain.Document, error)
}

// TransitionSender posts one approval action to the finance backend. A nil
// error means the backend acknowledged the transition; failures are
// *apperrors.RemoteError or *apperrors.TransportError.
type TransitionSender interface {
	SendTransition(ctx context.Context, documentID string, payload TransitionPayload) error
}

// ReferenceData serves the flat lists used to resolve display names and
// line-item taxonomy.
type ReferenceData interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	ListDepartments(ctx context.Context) ([]domain.Department, error)
	ListExpenseCategories(ctx context.Context, search string) ([]domain.ExpenseCategory, error)
}

// FinanceClient combines all finance backend operations.
type FinanceClient interface {
	DocumentReader
	TransitionSender
	ReferenceData
}
