package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/theCrudify/kpin-approval/internal/apperrors"
	"github.com/theCrudify/kpin-approval/internal/core/domain"
	portssvc "github.com/theCrudify/kpin-approval/internal/core/ports/services"
	"github.com/theCrudify/kpin-approval/internal/core/services"
	"github.com/theCrudify/kpin-approval/internal/dto"
)

// --- Mock TransitionService ---

type MockTransitionService struct {
	mock.Mock
}

func (m *MockTransitionService) Execute(ctx context.Context, action domain.ApprovalAction, actingRole string) (domain.DocumentStatus, error) {
	args := m.Called(ctx, action, actingRole)
	return args.Get(0).(domain.DocumentStatus), args.Error(1)
}

var _ portssvc.TransitionSvcFacade = (*MockTransitionService)(nil)

// --- Test Suite ---

type RevisionServiceTestSuite struct {
	suite.Suite
	mockTransition *MockTransitionService
	service        portssvc.RevisionSvcFacade
}

func (suite *RevisionServiceTestSuite) SetupTest() {
	suite.mockTransition = new(MockTransitionService)
	suite.service = services.NewRevisionService(suite.mockTransition)
}

func (suite *RevisionServiceTestSuite) addDraft(name, role string) *dto.DraftResponse {
	draft, err := suite.service.AddDraft("D1", dto.AddDraftRequest{
		AuthorName: name,
		AuthorRole: role,
		Stage:      string(domain.StageReceive),
	})
	suite.Require().NoError(err)
	return draft
}

func (suite *RevisionServiceTestSuite) TestAddDraft_SessionsAreIndependentPerDocument() {
	suite.addDraft("Alice", "Checker")

	// Same author on another document is fine.
	_, err := suite.service.AddDraft("D2", dto.AddDraftRequest{
		AuthorName: "Alice", AuthorRole: "Checker", Stage: string(domain.StageReceive),
	})
	suite.NoError(err)

	// But not twice on the same document.
	_, err = suite.service.AddDraft("D1", dto.AddDraftRequest{
		AuthorName: "Alice", AuthorRole: "Checker", Stage: string(domain.StageReceive),
	})
	suite.ErrorIs(err, apperrors.ErrDuplicateAuthor)
}

func (suite *RevisionServiceTestSuite) TestEditAndList() {
	draft := suite.addDraft("Alice", "Checker")

	updated, err := suite.service.EditDraft("D1", draft.DraftID, draft.Text+"wrong amounts")
	suite.Require().NoError(err)
	suite.Equal("[Alice - Checker]: wrong amounts", updated.Text)

	list := suite.service.ListDrafts("D1")
	suite.Len(list.Drafts, 1)
	suite.True(list.ReadyToSubmit)
	suite.Equal("[Alice - Checker]: wrong amounts", list.Compiled)
}

func (suite *RevisionServiceTestSuite) TestRemoveDraft_Ownership() {
	draft := suite.addDraft("Alice", "Checker")

	err := suite.service.RemoveDraft("D1", draft.DraftID, "Bob", "Checker")
	suite.ErrorIs(err, apperrors.ErrNotOwner)

	suite.NoError(suite.service.RemoveDraft("D1", draft.DraftID, "Alice", "Checker"))
	suite.Empty(suite.service.ListDrafts("D1").Drafts)
}

func (suite *RevisionServiceTestSuite) TestSubmitRevision_NotReadyFails() {
	suite.addDraft("Alice", "Checker")

	_, err := suite.service.SubmitRevision(context.Background(), "D1", "user-rec", "Staff", domain.StageReceive)
	suite.ErrorIs(err, apperrors.ErrMissingRemarks)
	suite.mockTransition.AssertNotCalled(suite.T(), "Execute", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RevisionServiceTestSuite) TestSubmitRevision_CompilesAndClears() {
	alice := suite.addDraft("Alice", "Checker")
	bob := suite.addDraft("Bob", "Receiver")

	_, err := suite.service.EditDraft("D1", alice.DraftID, alice.Text+"missing receipt")
	suite.Require().NoError(err)
	_, err = suite.service.EditDraft("D1", bob.DraftID, bob.Text+"wrong category")
	suite.Require().NoError(err)

	expectedRemarks := "[Alice - Checker]: missing receipt\n\n[Bob - Receiver]: wrong category"
	suite.mockTransition.On("Execute", mock.Anything, mock.MatchedBy(func(a domain.ApprovalAction) bool {
		return a.DocumentID == "D1" &&
			a.ActingUserID == "user-rec" &&
			a.Stage == domain.StageReceive &&
			a.Action == domain.ActionRevise &&
			a.Remarks == expectedRemarks
	}), "Staff").Return(domain.StatusRevision, nil).Once()

	status, err := suite.service.SubmitRevision(context.Background(), "D1", "user-rec", "Staff", domain.StageReceive)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusRevision, status)
	suite.Empty(suite.service.ListDrafts("D1").Drafts, "accepted submission clears the session")
	suite.mockTransition.AssertExpectations(suite.T())
}

func (suite *RevisionServiceTestSuite) TestSubmitRevision_KeepsDraftsOnFailure() {
	alice := suite.addDraft("Alice", "Checker")
	_, err := suite.service.EditDraft("D1", alice.DraftID, alice.Text+"missing receipt")
	suite.Require().NoError(err)

	suite.mockTransition.On("Execute", mock.Anything, mock.AnythingOfType("domain.ApprovalAction"), "Staff").
		Return(domain.DocumentStatus(""), &apperrors.TransportError{Cause: context.DeadlineExceeded}).Once()

	_, err = suite.service.SubmitRevision(context.Background(), "D1", "user-rec", "Staff", domain.StageReceive)

	suite.Require().Error(err)
	suite.Len(suite.service.ListDrafts("D1").Drafts, 1, "drafts survive a failed submission for resubmit")
}

func TestRevisionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RevisionServiceTestSuite))
}
