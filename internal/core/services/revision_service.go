package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/theCrudify/kpin-approval/internal/apperrors"
	"github.com/theCrudify/kpin-approval/internal/core/domain"
	portssvc "github.com/theCrudify/kpin-approval/internal/core/ports/services"
	"github.com/theCrudify/kpin-approval/internal/dto"
)

// revisionService keys one draft accumulator per document. Accumulators are
// transient view state: they live only as long as the process and are never
// written to the finance backend until SubmitRevision compiles them.
type revisionService struct {
	transitionSvc portssvc.TransitionSvcFacade

	mu       sync.Mutex
	sessions map[string]*domain.RevisionDrafts
}

// NewRevisionService creates a new RevisionSvcFacade.
func NewRevisionService(transitionSvc portssvc.TransitionSvcFacade) portssvc.RevisionSvcFacade {
	return &revisionService{
		transitionSvc: transitionSvc,
		sessions:      make(map[string]*domain.RevisionDrafts),
	}
}

var _ portssvc.RevisionSvcFacade = (*revisionService)(nil)

func (s *revisionService) session(documentID string) *domain.RevisionDrafts {
	if _, ok := s.sessions[documentID]; !ok {
		s.sessions[documentID] = domain.NewRevisionDrafts()
	}
	return s.sessions[documentID]
}

// AddDraft opens a revision draft for the author.
func (s *revisionService) AddDraft(documentID string, req dto.AddDraftRequest) (*dto.DraftResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, err := s.session(documentID).AddDraft(req.AuthorName, req.AuthorRole, domain.Stage(req.Stage))
	if err != nil {
		return nil, err
	}
	resp := draftToResponse(draft)
	return &resp, nil
}

// EditDraft replaces a draft's text with the prefix repaired.
func (s *revisionService) EditDraft(documentID, draftID, text string) (*dto.DraftResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.session(documentID)
	if err := session.EditDraft(draftID, text); err != nil {
		return nil, err
	}
	for _, d := range session.Drafts() {
		if d.DraftID == draftID {
			resp := draftToResponse(d)
			return &resp, nil
		}
	}
	return nil, fmt.Errorf("%w: draft %s", apperrors.ErrNotFound, draftID)
}

// RemoveDraft deletes a draft after the prefix-match ownership check.
func (s *revisionService) RemoveDraft(documentID, draftID, authorName, authorRole string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.session(documentID).RemoveDraft(draftID, authorName, authorRole)
}

// ListDrafts returns the pending drafts with readiness and compiled preview.
func (s *revisionService) ListDrafts(documentID string) *dto.DraftListResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.session(documentID)
	resp := &dto.DraftListResponse{
		Drafts:        make([]dto.DraftResponse, 0, session.Len()),
		ReadyToSubmit: session.IsReadyToSubmit(),
		Compiled:      session.Compile(),
	}
	for _, d := range session.Drafts() {
		resp.Drafts = append(resp.Drafts, draftToResponse(d))
	}
	return resp
}

// SubmitRevision compiles the pending drafts into one revise action and
// executes it. Drafts are only cleared after the backend accepts.
func (s *revisionService) SubmitRevision(ctx context.Context, documentID, actingUserID, actingRole string, stage domain.Stage) (domain.DocumentStatus, error) {
	s.mu.Lock()
	session := s.session(documentID)
	if !session.IsReadyToSubmit() {
		s.mu.Unlock()
		return "", fmt.Errorf("%w: every draft needs content beyond its prefix", apperrors.ErrMissingRemarks)
	}
	remarks := session.Compile()
	s.mu.Unlock()

	status, err := s.transitionSvc.Execute(ctx, domain.ApprovalAction{
		DocumentID:   documentID,
		ActingUserID: actingUserID,
		Stage:        stage,
		Action:       domain.ActionRevise,
		Remarks:      remarks,
	}, actingRole)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	delete(s.sessions, documentID)
	s.mu.Unlock()
	return status, nil
}

func draftToResponse(d *domain.RevisionDraft) dto.DraftResponse {
	return dto.DraftResponse{
		DraftID:    d.DraftID,
		AuthorName: d.AuthorName,
		AuthorRole: d.AuthorRole,
		Stage:      string(d.Stage),
		Text:       d.Text,
		CreatedAt:  d.CreatedAt,
	}
}
