package services

import (
	"github.com/theCrudify/kpin-approval/internal/core/domain"
)

// AuthorizationSvcFacade decides whether a user may perform a stage action on
// a document in its current status. Pure decisions; executing the transition
// is the TransitionSvcFacade's job.
type AuthorizationSvcFacade interface {
	// CanAct reports whether the user/role may submit the given action at the
	// given stage for the document as it currently stands.
	CanAct(userID, role string, doc *domain.Document, stage domain.Stage, action domain.ActionType) bool

	// AllowedActions lists every action the user may currently submit,
	// paired with the stage it would act at.
	AllowedActions(userID, role string, doc *domain.Document) []domain.ActionType
}

// VisibilitySvcFacade computes render directives for the fixed field schema.
type VisibilitySvcFacade interface {
	// Resolve returns the directive for every field category given the
	// document status and the viewer. Pure function of its inputs.
	Resolve(doc *domain.Document, view domain.ViewContext) domain.FieldDirectives
}
