package services

import (
	"github.com/theCrudify/kpin-approval/internal/core/domain"
	portssvc "github.com/theCrudify/kpin-approval/internal/core/ports/services"
)

// visibilityService resolves the render directives for the fixed field
// schema. It owns no state beyond the authorization resolver it consults for
// the action buttons.
type visibilityService struct {
	authSvc portssvc.AuthorizationSvcFacade
}

// NewVisibilityService creates a new VisibilitySvcFacade.
func NewVisibilityService(authSvc portssvc.AuthorizationSvcFacade) portssvc.VisibilitySvcFacade {
	return &visibilityService{authSvc: authSvc}
}

var _ portssvc.VisibilitySvcFacade = (*visibilityService)(nil)

// Resolve computes the directive for every field category. Approval pages
// are read-only snapshots for every status except Revision, where the
// original preparer regains edit access to the document body; participant
// pickers stay read-only at revision time unless the document type's
// configuration allows reassignment.
func (s *visibilityService) Resolve(doc *domain.Document, view domain.ViewContext) domain.FieldDirectives {
	directives := domain.FieldDirectives{
		domain.FieldCoreDocument:       domain.ReadOnly,
		domain.FieldLineItems:          domain.ReadOnly,
		domain.FieldParticipantPickers: domain.ReadOnly,
		domain.FieldAttachmentUpload:   domain.Hidden,
		domain.FieldRowControls:        domain.Hidden,
		domain.FieldApproveButton:      domain.Hidden,
		domain.FieldRejectButton:       domain.Hidden,
		domain.FieldReviseButton:       domain.Hidden,
	}
	if doc == nil {
		return directives
	}

	if doc.Status == domain.StatusRevision && view.ViewerID == doc.Participants.PreparedBy {
		directives[domain.FieldCoreDocument] = domain.Editable
		directives[domain.FieldLineItems] = domain.Editable
		directives[domain.FieldRowControls] = domain.Editable
		directives[domain.FieldAttachmentUpload] = domain.Editable
		if cfg, ok := domain.ConfigFor(doc.DocumentType); ok && cfg.AllowParticipantReassign {
			directives[domain.FieldParticipantPickers] = domain.Editable
		}
	}

	// Action buttons stay hidden on historical tabs regardless of what the
	// viewer could otherwise do.
	if view.HistoricalView {
		return directives
	}

	stage, ok := domain.StageForStatus(doc.Status)
	if !ok {
		return directives
	}
	if s.authSvc.CanAct(view.ViewerID, view.ViewerRole, doc, stage, domain.ActionApprove) {
		directives[domain.FieldApproveButton] = domain.Editable
	}
	if s.authSvc.CanAct(view.ViewerID, view.ViewerRole, doc, stage, domain.ActionReject) {
		directives[domain.FieldRejectButton] = domain.Editable
	}
	if s.authSvc.CanAct(view.ViewerID, view.ViewerRole, doc, stage, domain.ActionRevise) {
		directives[domain.FieldReviseButton] = domain.Editable
	}
	return directives
}
