package domain

import (
	"fmt"

	"github.com/theCrudify/kpin-approval/internal/apperrors"
)

// DocumentStatus is the persisted workflow state of a document.
type DocumentStatus string

const (
	StatusPrepared     DocumentStatus = "PREPARED"
	StatusChecked      DocumentStatus = "CHECKED"
	StatusAcknowledged DocumentStatus = "ACKNOWLEDGED"
	StatusApproved     DocumentStatus = "APPROVED"
	StatusReceived     DocumentStatus = "RECEIVED"
	StatusClosed       DocumentStatus = "CLOSED"
	StatusRejected     DocumentStatus = "REJECTED"
	StatusRevision     DocumentStatus = "REVISION"
)

// Stage is one reviewing step in the approval pipeline. Each stage owns
// exactly one forward transition.
type Stage string

const (
	StageCheck       Stage = "CHECK"
	StageAcknowledge Stage = "ACKNOWLEDGE"
	StageApprove     Stage = "APPROVE"
	StageReceive     Stage = "RECEIVE"
	StageClose       Stage = "CLOSE"
)

// forwardOrder is the fixed total order of the forward pipeline. The
// authorization rules depend on this ordering being stable.
var forwardOrder = map[DocumentStatus]int{
	StatusPrepared:     0,
	StatusChecked:      1,
	StatusAcknowledged: 2,
	StatusApproved:     3,
	StatusReceived:     4,
	StatusClosed:       5,
}

// stageTransitions maps each stage to its expected predecessor status and
// the status a successful approval produces.
var stageTransitions = map[Stage]struct {
	predecessor DocumentStatus
	successor   DocumentStatus
}{
	StageCheck:       {StatusPrepared, StatusChecked},
	StageAcknowledge: {StatusChecked, StatusAcknowledged},
	StageApprove:     {StatusAcknowledged, StatusApproved},
	StageReceive:     {StatusApproved, StatusReceived},
	StageClose:       {StatusReceived, StatusClosed},
}

// NextStatus returns the status produced by a successful approval at stage.
// It fails with ErrInvalidTransition when current is not the stage's expected
// predecessor, so a wrong-stage action can never silently no-op.
func NextStatus(current DocumentStatus, stage Stage) (DocumentStatus, error) {
	t, ok := stageTransitions[stage]
	if !ok {
		return "", fmt.Errorf("%w: unknown stage %q", apperrors.ErrInvalidTransition, stage)
	}
	if current != t.predecessor {
		return "", fmt.Errorf("%w: stage %s expects status %s, document is %s",
			apperrors.ErrInvalidTransition, stage, t.predecessor, current)
	}
	return t.successor, nil
}

// PredecessorStatus returns the status a document must hold for the given
// stage to act on it.
func PredecessorStatus(stage Stage) (DocumentStatus, bool) {
	t, ok := stageTransitions[stage]
	return t.predecessor, ok
}

// StageForStatus returns the stage whose action is currently due for the
// given status, i.e. the stage whose predecessor it is. There is none for
// Closed, Rejected and Revision.
func StageForStatus(status DocumentStatus) (Stage, bool) {
	for stage, t := range stageTransitions {
		if t.predecessor == status {
			return stage, true
		}
	}
	return "", false
}

// IsTerminal reports whether no further stage action is possible.
func IsTerminal(status DocumentStatus) bool {
	return status == StatusClosed || status == StatusRejected
}

// AllowsReRoute reports whether the document must re-enter the pipeline at
// Prepared before any stage can act on it again.
func AllowsReRoute(status DocumentStatus) bool {
	return status == StatusRevision
}

// CompareForward orders two forward-pipeline statuses; it returns a negative
// value when a precedes b, zero when equal, positive when a follows b. The
// boolean is false when either status is not on the forward path.
func CompareForward(a, b DocumentStatus) (int, bool) {
	ai, aok := forwardOrder[a]
	bi, bok := forwardOrder[b]
	if !aok || !bok {
		return 0, false
	}
	return ai - bi, true
}

// ValidStatus reports whether s is one of the eight enumerated statuses.
func ValidStatus(s DocumentStatus) bool {
	if _, ok := forwardOrder[s]; ok {
		return true
	}
	return s == StatusRejected || s == StatusRevision
}

// ValidStage reports whether s is one of the five reviewing stages.
func ValidStage(s Stage) bool {
	_, ok := stageTransitions[s]
	return ok
}
