package services

import (
	"context"
	"fmt"

	"github.com/theCrudify/kpin-approval/internal/apperrors"
	"github.com/theCrudify/kpin-approval/internal/core/domain"
	portsclients "github.com/theCrudify/kpin-approval/internal/core/ports/clients"
	portssvc "github.com/theCrudify/kpin-approval/internal/core/ports/services"
	"github.com/theCrudify/kpin-approval/internal/dto"
	"github.com/theCrudify/kpin-approval/internal/utils/mapping"
)

// documentService composes the view payload an approval page renders.
type documentService struct {
	docReader     portsclients.DocumentReader
	referenceSvc  portssvc.ReferenceSvcFacade
	visibilitySvc portssvc.VisibilitySvcFacade
	authSvc       portssvc.AuthorizationSvcFacade
}

// NewDocumentService creates a new DocumentSvcFacade.
func NewDocumentService(
	docReader portsclients.DocumentReader,
	referenceSvc portssvc.ReferenceSvcFacade,
	visibilitySvc portssvc.VisibilitySvcFacade,
	authSvc portssvc.AuthorizationSvcFacade,
) portssvc.DocumentSvcFacade {
	return &documentService{
		docReader:     docReader,
		referenceSvc:  referenceSvc,
		visibilitySvc: visibilitySvc,
		authSvc:       authSvc,
	}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

// GetDocumentView fetches the document and assembles names, directives and
// allowed actions. The reference lists must be resolved before participant
// names can be filled in, so the document fetch is sequenced first and the
// name resolution after it; nothing else orders the calls.
func (s *documentService) GetDocumentView(ctx context.Context, documentID string, view domain.ViewContext) (*dto.DocumentViewResponse, error) {
	if documentID == "" {
		return nil, fmt.Errorf("%w: document id is required", apperrors.ErrValidation)
	}

	doc, err := s.docReader.GetDocument(ctx, documentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch document %s: %w", documentID, err)
	}

	participantIDs := []string{
		doc.Participants.PreparedBy,
		doc.Participants.CheckedBy,
		doc.Participants.AcknowledgedBy,
		doc.Participants.ApprovedBy,
		doc.Participants.ReceivedBy,
		doc.Participants.ClosedBy,
	}
	names, err := s.referenceSvc.ResolveUserNames(ctx, participantIDs)
	if err != nil {
		return nil, err
	}
	departmentName, err := s.referenceSvc.ResolveDepartmentName(ctx, doc.DepartmentID)
	if err != nil {
		return nil, err
	}

	resp := mapping.DocumentToViewResponse(doc, names, departmentName)
	resp.Fields = mapping.DirectivesToResponse(s.visibilitySvc.Resolve(doc, view))
	for _, action := range s.authSvc.AllowedActions(view.ViewerID, view.ViewerRole, doc) {
		resp.AllowedActions = append(resp.AllowedActions, string(action))
	}
	// Historical tabs never offer actions, whatever the viewer could do on
	// the live tab.
	if view.HistoricalView {
		resp.AllowedActions = nil
	}
	return resp, nil
}
