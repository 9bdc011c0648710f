package services

import (
	"context"

	"github.com/theCrudify/kpin-approval/internal/core/domain"
	"github.com/theCrudify/kpin-approval/internal/dto"
)

// RevisionSvcFacade manages the pending revision drafts of each document and
// turns them into a single revise submission.
type RevisionSvcFacade interface {
	// AddDraft opens a draft pre-populated with the author's protected prefix.
	AddDraft(documentID string, req dto.AddDraftRequest) (*dto.DraftResponse, error)

	// EditDraft replaces a draft's text, repairing the protected prefix.
	EditDraft(documentID, draftID, text string) (*dto.DraftResponse, error)

	// RemoveDraft deletes a draft after verifying ownership by prefix match.
	RemoveDraft(documentID, draftID, authorName, authorRole string) error

	// ListDrafts returns the pending drafts, the readiness flag and the
	// compiled remarks preview.
	ListDrafts(documentID string) *dto.DraftListResponse

	// SubmitRevision compiles the drafts and executes a revise action at the
	// given stage. On success the pending drafts are cleared.
	SubmitRevision(ctx context.Context, documentID, actingUserID, actingRole string, stage domain.Stage) (domain.DocumentStatus, error)
}
