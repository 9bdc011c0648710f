package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theCrudify/kpin-approval/internal/apperrors"
	"github.com/theCrudify/kpin-approval/internal/core/domain"
)

func TestRevisionDrafts_AddDraft_PrefixPrePopulated(t *testing.T) {
	drafts := domain.NewRevisionDrafts()

	draft, err := drafts.AddDraft("Alice", "Checker", domain.StageReceive)
	require.NoError(t, err)
	assert.Equal(t, "[Alice - Checker]: ", draft.Text)
	assert.Equal(t, "[Alice - Checker]: ", draft.Prefix())
	assert.NotEmpty(t, draft.DraftID)
}

func TestRevisionDrafts_DuplicateAuthorFails(t *testing.T) {
	drafts := domain.NewRevisionDrafts()

	_, err := drafts.AddDraft("Alice", "Checker", domain.StageReceive)
	require.NoError(t, err)

	_, err = drafts.AddDraft("Alice", "Checker", domain.StageReceive)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateAuthor)

	// Same name under a different role is a different author.
	_, err = drafts.AddDraft("Alice", "Receiver", domain.StageReceive)
	assert.NoError(t, err)
}

func TestRevisionDrafts_LimitReached(t *testing.T) {
	drafts := domain.NewRevisionDrafts()
	for _, name := range []string{"A", "B", "C", "D"} {
		_, err := drafts.AddDraft(name, "Checker", domain.StageReceive)
		require.NoError(t, err)
	}

	_, err := drafts.AddDraft("E", "Checker", domain.StageReceive)
	assert.ErrorIs(t, err, apperrors.ErrLimitReached)
	assert.Equal(t, 4, drafts.Len())
}

func TestRevisionDrafts_EditDraft_KeepsPrefix(t *testing.T) {
	drafts := domain.NewRevisionDrafts()
	draft, err := drafts.AddDraft("Alice", "Checker", domain.StageReceive)
	require.NoError(t, err)
	prefix := draft.Prefix()

	// Ordinary edit after the prefix round-trips unchanged.
	require.NoError(t, drafts.EditDraft(draft.DraftID, prefix+"please fix the totals"))
	assert.Equal(t, prefix+"please fix the totals", draft.Text)
	assert.Equal(t, "please fix the totals", draft.Body())
}

func TestRevisionDrafts_EditDraft_RepairsDamagedPrefix(t *testing.T) {
	drafts := domain.NewRevisionDrafts()
	draft, err := drafts.AddDraft("Alice", "Checker", domain.StageReceive)
	require.NoError(t, err)
	prefix := draft.Prefix()

	// Any sequence of edits that deletes or overwrites characters inside the
	// prefix still leaves text starting with the exact original prefix.
	attempts := []string{
		"",                               // wiped everything
		"[Alice - Checker]",              // truncated the prefix tail
		"Alice - Checker]: sneaky",       // deleted the leading bracket
		"[alice - checker]: lowercased",  // overwrote within the prefix
		prefix[:4] + "tampered",          // cut mid-prefix
		"completely unrelated text",      // replaced wholesale
		prefix + prefix + "doubled up",   // pasted the prefix twice
	}
	for _, attempt := range attempts {
		require.NoError(t, drafts.EditDraft(draft.DraftID, attempt))
		assert.True(t, strings.HasPrefix(draft.Text, prefix), "after edit %q got %q", attempt, draft.Text)
	}
}

func TestRevisionDrafts_EditDraft_NotFound(t *testing.T) {
	drafts := domain.NewRevisionDrafts()
	err := drafts.EditDraft("missing", "text")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRevisionDrafts_RemoveDraft_OwnershipByPrefix(t *testing.T) {
	drafts := domain.NewRevisionDrafts()
	draft, err := drafts.AddDraft("Alice", "Checker", domain.StageReceive)
	require.NoError(t, err)

	err = drafts.RemoveDraft(draft.DraftID, "Bob", "Checker")
	assert.ErrorIs(t, err, apperrors.ErrNotOwner)
	assert.Equal(t, 1, drafts.Len())

	require.NoError(t, drafts.RemoveDraft(draft.DraftID, "Alice", "Checker"))
	assert.Equal(t, 0, drafts.Len())

	err = drafts.RemoveDraft(draft.DraftID, "Alice", "Checker")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestRevisionDrafts_ReadinessAndCompile(t *testing.T) {
	drafts := domain.NewRevisionDrafts()
	assert.False(t, drafts.IsReadyToSubmit(), "empty accumulator is never ready")

	alice, err := drafts.AddDraft("Alice", "Checker", domain.StageReceive)
	require.NoError(t, err)
	bob, err := drafts.AddDraft("Bob", "Checker", domain.StageReceive)
	require.NoError(t, err)

	// Prefix-only drafts carry no real content.
	assert.False(t, drafts.IsReadyToSubmit())

	require.NoError(t, drafts.EditDraft(alice.DraftID, alice.Prefix()+"missing receipt"))
	assert.False(t, drafts.IsReadyToSubmit(), "one draft still empty")

	// Whitespace beyond the prefix does not count as content.
	require.NoError(t, drafts.EditDraft(bob.DraftID, bob.Prefix()+"   "))
	assert.False(t, drafts.IsReadyToSubmit())

	require.NoError(t, drafts.EditDraft(bob.DraftID, bob.Prefix()+"wrong category"))
	assert.True(t, drafts.IsReadyToSubmit())

	compiled := drafts.Compile()
	assert.Equal(t, "[Alice - Checker]: missing receipt\n\n[Bob - Checker]: wrong category", compiled)
}
