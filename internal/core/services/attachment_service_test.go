package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theCrudify/kpin-approval/internal/apperrors"
	"github.com/theCrudify/kpin-approval/internal/core/services"
)

func TestAttachmentService_CapAtFive(t *testing.T) {
	svc := services.NewAttachmentService()

	for i := 0; i < 5; i++ {
		resp, err := svc.AddPending("D1", fmt.Sprintf("receipt-%d.pdf", i))
		require.NoError(t, err)
		assert.Equal(t, 4-i, resp.Remaining)
	}

	_, err := svc.AddPending("D1", "one-too-many.pdf")
	assert.ErrorIs(t, err, apperrors.ErrLimitReached)

	// Other documents have their own queue.
	_, err = svc.AddPending("D2", "fresh.pdf")
	assert.NoError(t, err)
}

func TestAttachmentService_RemoveByIndex(t *testing.T) {
	svc := services.NewAttachmentService()
	_, err := svc.AddPending("D1", "a.pdf")
	require.NoError(t, err)
	_, err = svc.AddPending("D1", "b.pdf")
	require.NoError(t, err)

	resp, err := svc.RemovePending("D1", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"b.pdf"}, resp.Files)

	_, err = svc.RemovePending("D1", 5)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
