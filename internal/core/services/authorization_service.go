package services

import (
	"github.com/theCrudify/kpin-approval/internal/core/domain"
	portssvc "github.com/theCrudify/kpin-approval/internal/core/ports/services"
)

// authorizationService decides which stage actions a user may submit.
type authorizationService struct {
	adminRole string
}

// NewAuthorizationService creates a new AuthorizationSvcFacade. adminRole is
// the administrative override role name; holders may act at any due stage
// regardless of participant assignment.
func NewAuthorizationService(adminRole string) portssvc.AuthorizationSvcFacade {
	if adminRole == "" {
		adminRole = domain.RoleAdministrator
	}
	return &authorizationService{adminRole: adminRole}
}

var _ portssvc.AuthorizationSvcFacade = (*authorizationService)(nil)

// CanAct implements the stage authorization rules. A document in Revision or
// a terminal status admits no stage action at all; otherwise the action is
// valid only at the stage whose predecessor matches the current status, by
// that stage's assigned participant or an administrator.
func (s *authorizationService) CanAct(userID, role string, doc *domain.Document, stage domain.Stage, action domain.ActionType) bool {
	if doc == nil || userID == "" {
		return false
	}
	if domain.IsTerminal(doc.Status) || domain.AllowsReRoute(doc.Status) {
		return false
	}
	cfg, ok := domain.ConfigFor(doc.DocumentType)
	if !ok || !cfg.HasStage(stage) {
		return false
	}
	predecessor, ok := domain.PredecessorStatus(stage)
	if !ok || doc.Status != predecessor {
		return false
	}
	if action == domain.ActionRevise && !cfg.AllowsRevise(stage) {
		return false
	}

	switch action {
	case domain.ActionApprove, domain.ActionReject, domain.ActionRevise:
		return doc.Participants.ForStage(stage) == userID || role == s.adminRole
	}
	return false
}

// AllowedActions lists the actions the user may currently submit. At most
// one stage is ever due, so the result is the permitted action set for that
// stage or empty.
func (s *authorizationService) AllowedActions(userID, role string, doc *domain.Document) []domain.ActionType {
	if doc == nil {
		return nil
	}
	stage, ok := domain.StageForStatus(doc.Status)
	if !ok {
		return nil
	}
	var allowed []domain.ActionType
	for _, action := range []domain.ActionType{domain.ActionApprove, domain.ActionReject, domain.ActionRevise} {
		if s.CanAct(userID, role, doc, stage, action) {
			allowed = append(allowed, action)
		}
	}
	return allowed
}
