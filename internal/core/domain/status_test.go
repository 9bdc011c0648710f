package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theCrudify/kpin-approval/internal/apperrors"
	"github.com/theCrudify/kpin-approval/internal/core/domain"
)

func TestNextStatus_ForwardPath(t *testing.T) {
	cases := []struct {
		current domain.DocumentStatus
		stage   domain.Stage
		want    domain.DocumentStatus
	}{
		{domain.StatusPrepared, domain.StageCheck, domain.StatusChecked},
		{domain.StatusChecked, domain.StageAcknowledge, domain.StatusAcknowledged},
		{domain.StatusAcknowledged, domain.StageApprove, domain.StatusApproved},
		{domain.StatusApproved, domain.StageReceive, domain.StatusReceived},
		{domain.StatusReceived, domain.StageClose, domain.StatusClosed},
	}
	for _, tc := range cases {
		got, err := domain.NextStatus(tc.current, tc.stage)
		require.NoError(t, err, "stage %s from %s", tc.stage, tc.current)
		assert.Equal(t, tc.want, got)
	}
}

func TestNextStatus_WrongPredecessorFails(t *testing.T) {
	allStatuses := []domain.DocumentStatus{
		domain.StatusPrepared, domain.StatusChecked, domain.StatusAcknowledged,
		domain.StatusApproved, domain.StatusReceived, domain.StatusClosed,
		domain.StatusRejected, domain.StatusRevision,
	}
	allStages := []domain.Stage{
		domain.StageCheck, domain.StageAcknowledge, domain.StageApprove,
		domain.StageReceive, domain.StageClose,
	}

	// Every (status, stage) pair either yields the single correct successor
	// or fails with ErrInvalidTransition; nothing silently no-ops.
	for _, status := range allStatuses {
		for _, stage := range allStages {
			expected, ok := domain.PredecessorStatus(stage)
			require.True(t, ok)
			got, err := domain.NextStatus(status, stage)
			if status == expected {
				require.NoError(t, err)
				assert.NotEqual(t, status, got)
			} else {
				assert.ErrorIs(t, err, apperrors.ErrInvalidTransition, "stage %s from %s", stage, status)
			}
		}
	}
}

func TestNextStatus_ApproveOnPreparedFails(t *testing.T) {
	_, err := domain.NextStatus(domain.StatusPrepared, domain.StageApprove)
	assert.ErrorIs(t, err, apperrors.ErrInvalidTransition)
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, domain.IsTerminal(domain.StatusClosed))
	assert.True(t, domain.IsTerminal(domain.StatusRejected))
	assert.False(t, domain.IsTerminal(domain.StatusRevision))
	assert.False(t, domain.IsTerminal(domain.StatusPrepared))
	assert.False(t, domain.IsTerminal(domain.StatusReceived))
}

func TestAllowsReRoute(t *testing.T) {
	assert.True(t, domain.AllowsReRoute(domain.StatusRevision))
	assert.False(t, domain.AllowsReRoute(domain.StatusRejected))
	assert.False(t, domain.AllowsReRoute(domain.StatusPrepared))
}

func TestCompareForward_TotalOrder(t *testing.T) {
	order := []domain.DocumentStatus{
		domain.StatusPrepared, domain.StatusChecked, domain.StatusAcknowledged,
		domain.StatusApproved, domain.StatusReceived, domain.StatusClosed,
	}
	for i := range order {
		for j := range order {
			cmp, ok := domain.CompareForward(order[i], order[j])
			require.True(t, ok)
			switch {
			case i < j:
				assert.Negative(t, cmp)
			case i > j:
				assert.Positive(t, cmp)
			default:
				assert.Zero(t, cmp)
			}
		}
	}

	_, ok := domain.CompareForward(domain.StatusRevision, domain.StatusPrepared)
	assert.False(t, ok)
}

func TestStageForStatus(t *testing.T) {
	stage, ok := domain.StageForStatus(domain.StatusChecked)
	require.True(t, ok)
	assert.Equal(t, domain.StageAcknowledge, stage)

	for _, status := range []domain.DocumentStatus{domain.StatusClosed, domain.StatusRejected, domain.StatusRevision} {
		_, ok := domain.StageForStatus(status)
		assert.False(t, ok, "no stage should be due for %s", status)
	}
}
