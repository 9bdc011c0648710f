package services

import (
	portsclients "github.com/theCrudify/kpin-approval/internal/core/ports/clients"
	portssvc "github.com/theCrudify/kpin-approval/internal/core/ports/services"
)

// NewContainer creates the service container with properly initialized
// dependencies. The authorization resolver has no dependencies and seeds the
// rest; the transition executor feeds the revision service.
func NewContainer(client portsclients.FinanceClient, adminRole string) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Authorization = NewAuthorizationService(adminRole)
	container.Visibility = NewVisibilityService(container.Authorization)
	container.Reference = NewReferenceService(client)
	container.Document = NewDocumentService(client, container.Reference, container.Visibility, container.Authorization)
	container.Transition = NewTransitionService(client, client, container.Authorization)
	container.Revision = NewRevisionService(container.Transition)
	container.Attachment = NewAttachmentService()

	return container
}

// Compile-time interface checks for the service implementations.
var (
	_ portssvc.AuthorizationSvcFacade = (*authorizationService)(nil)
	_ portssvc.VisibilitySvcFacade    = (*visibilityService)(nil)
	_ portssvc.DocumentSvcFacade      = (*documentService)(nil)
	_ portssvc.TransitionSvcFacade    = (*transitionService)(nil)
	_ portssvc.RevisionSvcFacade      = (*revisionService)(nil)
	_ portssvc.ReferenceSvcFacade     = (*referenceService)(nil)
	_ portssvc.AttachmentSvcFacade    = (*attachmentService)(nil)
)
