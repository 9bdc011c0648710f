package services

import (
	"context"

	"github.com/theCrudify/kpin-approval/internal/core/domain"
	"github.com/theCrudify/kpin-approval/internal/dto"
)

// DocumentSvcFacade composes the read-side view an approval page renders.
type DocumentSvcFacade interface {
	// GetDocumentView fetches the document from the finance backend and
	// returns it together with resolved participant names, field directives
	// and the caller's allowed actions.
	GetDocumentView(ctx context.Context, documentID string, view domain.ViewContext) (*dto.DocumentViewResponse, error)
}

// TransitionSvcFacade validates and executes approval actions against the
// finance backend's status-update endpoint.
type TransitionSvcFacade interface {
	// Execute runs one approval action end to end: local validation, the
	// in-flight guard, authorization, the backend call and outcome mapping.
	// On success it returns the status the document moved to.
	Execute(ctx context.Context, action domain.ApprovalAction, actingRole string) (domain.DocumentStatus, error)
}
