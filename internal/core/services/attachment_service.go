package services

import (
	"fmt"
	"sync"

	"github.com/theCrudify/kpin-approval/internal/apperrors"
	portssvc "github.com/theCrudify/kpin-approval/internal/core/ports/services"
	"github.com/theCrudify/kpin-approval/internal/dto"
)

// maxPendingAttachments caps the files queued per document before handoff to
// the external storage service.
const maxPendingAttachments = 5

// attachmentService tracks the client-side pending upload list per document.
// The storage service itself (upload, listing, viewing) is external.
type attachmentService struct {
	mu      sync.Mutex
	pending map[string][]string
}

// NewAttachmentService creates a new AttachmentSvcFacade.
func NewAttachmentService() portssvc.AttachmentSvcFacade {
	return &attachmentService{pending: make(map[string][]string)}
}

var _ portssvc.AttachmentSvcFacade = (*attachmentService)(nil)

func (s *attachmentService) ListPending(documentID string) *dto.PendingAttachmentsResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.response(documentID)
}

func (s *attachmentService) AddPending(documentID, fileName string) (*dto.PendingAttachmentsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.pending[documentID]) >= maxPendingAttachments {
		return nil, fmt.Errorf("%w: at most %d files per document", apperrors.ErrLimitReached, maxPendingAttachments)
	}
	s.pending[documentID] = append(s.pending[documentID], fileName)
	return s.response(documentID), nil
}

func (s *attachmentService) RemovePending(documentID string, index int) (*dto.PendingAttachmentsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	files := s.pending[documentID]
	if index < 0 || index >= len(files) {
		return nil, fmt.Errorf("%w: no pending file at index %d", apperrors.ErrNotFound, index)
	}
	s.pending[documentID] = append(files[:index], files[index+1:]...)
	return s.response(documentID), nil
}

func (s *attachmentService) response(documentID string) *dto.PendingAttachmentsResponse {
	files := s.pending[documentID]
	out := make([]string, len(files))
	copy(out, files)
	return &dto.PendingAttachmentsResponse{
		Files:     out,
		Remaining: maxPendingAttachments - len(files),
	}
}
