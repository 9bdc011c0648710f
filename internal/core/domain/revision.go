package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/theCrudify/kpin-approval/internal/apperrors"
)

// MaxRevisionDrafts caps the pending revision remarks per document.
const MaxRevisionDrafts = 4

// RevisionPrefix builds the protected remark prefix for an author.
func RevisionPrefix(authorName, authorRole string) string {
	return fmt.Sprintf("[%s - %s]: ", authorName, authorRole)
}

// RevisionDraft is one in-progress revision remark owned by a single author.
// Text always begins with the author's prefix; prefixLen memorizes the exact
// prefix length at creation so edits can never shorten it.
type RevisionDraft struct {
	DraftID    string
	AuthorName string
	AuthorRole string
	Stage      Stage
	Text       string
	CreatedAt  time.Time

	prefix string
}

// Prefix returns the protected prefix of this draft.
func (d RevisionDraft) Prefix() string {
	return d.prefix
}

// Body returns the free text after the protected prefix.
func (d RevisionDraft) Body() string {
	return d.Text[len(d.prefix):]
}

// RevisionDrafts accumulates the pending revision remarks for one document
// before they are compiled into a single revise submission. Insertion order
// is preserved. Not safe for concurrent use; the owning service serializes
// access.
type RevisionDrafts struct {
	drafts []*RevisionDraft
}

// NewRevisionDrafts returns an empty accumulator.
func NewRevisionDrafts() *RevisionDrafts {
	return &RevisionDrafts{}
}

// AddDraft creates a draft pre-populated with the author's prefix. It fails
// with ErrLimitReached at the cap and ErrDuplicateAuthor when the author
// already has a draft (one revision per user per document).
func (r *RevisionDrafts) AddDraft(authorName, authorRole string, stage Stage) (*RevisionDraft, error) {
	if len(r.drafts) >= MaxRevisionDrafts {
		return nil, fmt.Errorf("%w: at most %d revision remarks per document", apperrors.ErrLimitReached, MaxRevisionDrafts)
	}
	prefix := RevisionPrefix(authorName, authorRole)
	for _, d := range r.drafts {
		if d.AuthorName == authorName && d.AuthorRole == authorRole {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrDuplicateAuthor, strings.TrimSuffix(prefix, ": "))
		}
	}
	draft := &RevisionDraft{
		DraftID:    uuid.NewString(),
		AuthorName: authorName,
		AuthorRole: authorRole,
		Stage:      stage,
		Text:       prefix,
		CreatedAt:  time.Now().UTC(),
		prefix:     prefix,
	}
	r.drafts = append(r.drafts, draft)
	return draft, nil
}

// EditDraft replaces the draft text, repairing any damage to the protected
// prefix. When the new text no longer starts with the full prefix, the part
// of it that overlaps the original prefix is dropped and the prefix
// re-inserted, so the stored text always begins with the exact original
// prefix no matter what the edit did.
func (r *RevisionDrafts) EditDraft(draftID, newText string) error {
	draft := r.find(draftID)
	if draft == nil {
		return fmt.Errorf("%w: draft %s", apperrors.ErrNotFound, draftID)
	}
	if strings.HasPrefix(newText, draft.prefix) {
		draft.Text = newText
		return nil
	}
	// Prefix was edited. Keep whatever follows the longest run of characters
	// still matching the original prefix and re-prepend the prefix.
	overlap := 0
	for overlap < len(newText) && overlap < len(draft.prefix) && newText[overlap] == draft.prefix[overlap] {
		overlap++
	}
	draft.Text = draft.prefix + newText[overlap:]
	return nil
}

// RemoveDraft deletes a draft. Ownership is verified by prefix match against
// the requesting author: the stored text must still begin with the exact
// prefix that author would have. This mirrors the original behavior and is a
// deliberate simplification, not a security boundary; real identity lives in
// the external auth system.
func (r *RevisionDrafts) RemoveDraft(draftID, requestingName, requestingRole string) error {
	for i, d := range r.drafts {
		if d.DraftID != draftID {
			continue
		}
		if !strings.HasPrefix(d.Text, RevisionPrefix(requestingName, requestingRole)) {
			return fmt.Errorf("%w: draft %s", apperrors.ErrNotOwner, draftID)
		}
		r.drafts = append(r.drafts[:i], r.drafts[i+1:]...)
		return nil
	}
	return fmt.Errorf("%w: draft %s", apperrors.ErrNotFound, draftID)
}

// IsReadyToSubmit reports whether at least one draft exists and every draft
// carries real content beyond its own prefix.
func (r *RevisionDrafts) IsReadyToSubmit() bool {
	if len(r.drafts) == 0 {
		return false
	}
	for _, d := range r.drafts {
		if len(strings.TrimSpace(d.Text)) <= len(d.prefix) {
			return false
		}
	}
	return true
}

// Compile joins all draft texts, prefixes included, with a blank line in
// insertion order. The result is the remarks payload of the revise action.
func (r *RevisionDrafts) Compile() string {
	parts := make([]string, 0, len(r.drafts))
	for _, d := range r.drafts {
		parts = append(parts, d.Text)
	}
	return strings.Join(parts, "\n\n")
}

// Drafts returns the drafts in insertion order.
func (r *RevisionDrafts) Drafts() []*RevisionDraft {
	return r.drafts
}

// Len returns the number of pending drafts.
func (r *RevisionDrafts) Len() int {
	return len(r.drafts)
}

func (r *RevisionDrafts) find(draftID string) *RevisionDraft {
	for _, d := range r.drafts {
		if d.DraftID == draftID {
			return d
		}
	}
	return nil
}
