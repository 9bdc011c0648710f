package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/theCrudify/kpin-approval/internal/apperrors"
	"github.com/theCrudify/kpin-approval/internal/core/domain"
	portsclients "github.com/theCrudify/kpin-approval/internal/core/ports/clients"
	portssvc "github.com/theCrudify/kpin-approval/internal/core/ports/services"
	"github.com/theCrudify/kpin-approval/internal/middleware"
)

// transitionService validates and executes approval actions against the
// finance backend. It owns the double-submit guard: while one action for a
// (documentID, actingUserID) pair is in flight, further submissions for the
// same pair fail immediately with ErrAlreadyProcessing.
type transitionService struct {
	docReader portsclients.DocumentReader
	sender    portsclients.TransitionSender
	authSvc   portssvc.AuthorizationSvcFacade

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewTransitionService creates a new TransitionSvcFacade.
func NewTransitionService(docReader portsclients.DocumentReader, sender portsclients.TransitionSender, authSvc portssvc.AuthorizationSvcFacade) portssvc.TransitionSvcFacade {
	return &transitionService{
		docReader: docReader,
		sender:    sender,
		authSvc:   authSvc,
		inFlight:  make(map[string]struct{}),
	}
}

var _ portssvc.TransitionSvcFacade = (*transitionService)(nil)

func inFlightKey(documentID, userID string) string {
	return documentID + "|" + userID
}

// Execute runs one approval action. All validation errors surface before any
// network call; Remote and Transport errors only after the round-trip. The
// action is never retried automatically.
func (s *transitionService) Execute(ctx context.Context, action domain.ApprovalAction, actingRole string) (domain.DocumentStatus, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if action.DocumentID == "" {
		return "", fmt.Errorf("%w: document id is required", apperrors.ErrValidation)
	}
	if action.ActingUserID == "" {
		return "", apperrors.ErrUnauthenticated
	}
	if action.Action == domain.ActionReject || action.Action == domain.ActionRevise {
		if strings.TrimSpace(action.Remarks) == "" {
			return "", apperrors.ErrMissingRemarks
		}
	}

	key := inFlightKey(action.DocumentID, action.ActingUserID)
	s.mu.Lock()
	if _, busy := s.inFlight[key]; busy {
		s.mu.Unlock()
		logger.Warn("Duplicate submission rejected",
			slog.String("document_id", action.DocumentID),
			slog.String("user_id", action.ActingUserID))
		return "", apperrors.ErrAlreadyProcessing
	}
	s.inFlight[key] = struct{}{}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.inFlight, key)
		s.mu.Unlock()
	}()

	doc, err := s.docReader.GetDocument(ctx, action.DocumentID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch document %s: %w", action.DocumentID, err)
	}

	if !s.authSvc.CanAct(action.ActingUserID, actingRole, doc, action.Stage, action.Action) {
		// Distinguish the wrong-predecessor case so the page can tell the
		// operator the document has already moved on.
		if predecessor, ok := domain.PredecessorStatus(action.Stage); ok && doc.Status != predecessor {
			return "", fmt.Errorf("%w: stage %s expects status %s, document %s is %s",
				apperrors.ErrInvalidTransition, action.Stage, predecessor, doc.DocumentID, doc.Status)
		}
		return "", fmt.Errorf("%w: user %s may not %s at stage %s",
			apperrors.ErrValidation, action.ActingUserID, action.Action, action.Stage)
	}

	var next domain.DocumentStatus
	switch action.Action {
	case domain.ActionApprove:
		next, err = domain.NextStatus(doc.Status, action.Stage)
		if err != nil {
			return "", err
		}
	case domain.ActionReject:
		next = domain.StatusRejected
	case domain.ActionRevise:
		next = domain.StatusRevision
	default:
		return "", fmt.Errorf("%w: unknown action %q", apperrors.ErrValidation, action.Action)
	}

	payload := portsclients.TransitionPayload{
		UserID:   action.ActingUserID,
		StatusAt: action.Stage,
		Action:   action.Action,
		Remarks:  action.Remarks,
	}
	if err := s.sender.SendTransition(ctx, action.DocumentID, payload); err != nil {
		logger.Warn("Transition submission failed",
			slog.String("document_id", action.DocumentID),
			slog.String("stage", string(action.Stage)),
			slog.String("action", string(action.Action)),
			slog.String("error", err.Error()))
		return "", err
	}

	logger.Info("Transition accepted",
		slog.String("document_id", action.DocumentID),
		slog.String("stage", string(action.Stage)),
		slog.String("action", string(action.Action)),
		slog.String("next_status", string(next)))
	return next, nil
}
