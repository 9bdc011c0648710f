package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrInvalidTransition indicates that the requested stage action does not
// match the document's current status (wrong predecessor).
var ErrInvalidTransition = errors.New("invalid status transition")

// ErrMissingRemarks indicates a reject or revise action was submitted with
// empty or whitespace-only remarks.
var ErrMissingRemarks = errors.New("remarks are required")

// ErrUnauthenticated indicates the acting user could not be resolved from the
// request token.
var ErrUnauthenticated = errors.New("unable to resolve user from token")

// ErrAlreadyProcessing indicates a transition for the same document and user
// is still in flight.
var ErrAlreadyProcessing = errors.New("a submission for this document is already being processed")

// ErrLimitReached indicates a bounded collection (revision drafts, pending
// attachments) is already at its cap.
var ErrLimitReached = errors.New("limit reached")

// ErrDuplicateAuthor indicates the author already has a revision draft for
// this document.
var ErrDuplicateAuthor = errors.New("author already has a revision draft")

// ErrNotOwner indicates the caller does not own the revision draft it tried
// to remove.
var ErrNotOwner = errors.New("draft is owned by another author")

// RemoteError is a failure reported by the finance backend after a completed
// round-trip. Message is the server-supplied text and is safe to display.
type RemoteError struct {
	StatusCode int
	Message    string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("finance backend rejected the request (%d): %s", e.StatusCode, e.Message)
}

// TransportError is a failure to complete the round-trip at all (connection
// refused, timeout). The action is never retried automatically.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("finance backend unreachable: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}
