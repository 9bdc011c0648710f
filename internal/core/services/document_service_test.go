package services_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/theCrudify/kpin-approval/internal/core/domain"
	portsclients "github.com/theCrudify/kpin-approval/internal/core/ports/clients"
	portssvc "github.com/theCrudify/kpin-approval/internal/core/ports/services"
	"github.com/theCrudify/kpin-approval/internal/core/services"
)

// --- Mock ReferenceData client ---

type MockReferenceData struct {
	mock.Mock
}

func (m *MockReferenceData) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockReferenceData) ListDepartments(ctx context.Context) ([]domain.Department, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Department), args.Error(1)
}

func (m *MockReferenceData) ListExpenseCategories(ctx context.Context, search string) ([]domain.ExpenseCategory, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExpenseCategory), args.Error(1)
}

var _ portsclients.ReferenceData = (*MockReferenceData)(nil)

// --- Test Suite ---

type DocumentServiceTestSuite struct {
	suite.Suite
	mockReader *MockDocumentReader
	mockRef    *MockReferenceData
	service    portssvc.DocumentSvcFacade
}

func (suite *DocumentServiceTestSuite) SetupTest() {
	suite.mockReader = new(MockDocumentReader)
	suite.mockRef = new(MockReferenceData)
	authSvc := services.NewAuthorizationService(domain.RoleAdministrator)
	suite.service = services.NewDocumentService(
		suite.mockReader,
		services.NewReferenceService(suite.mockRef),
		services.NewVisibilityService(authSvc),
		authSvc,
	)
}

func (suite *DocumentServiceTestSuite) TestGetDocumentView_ComposesNamesDirectivesAndActions() {
	ctx := context.Background()
	doc := testDocument(domain.StatusChecked)
	doc.DepartmentID = "dept-1"
	doc.LineItems = []domain.LineItem{
		{LineItemID: "L1", Amount: decimal.NewFromInt(150)},
		{LineItemID: "L2", Amount: decimal.NewFromInt(50)},
	}

	suite.mockReader.On("GetDocument", ctx, "D1").Return(doc, nil).Once()
	suite.mockRef.On("ListUsers", ctx).Return([]domain.User{
		{UserID: "user-prep", Name: "Prya"},
		{UserID: "user-ack", Name: "Andi"},
	}, nil).Once()
	suite.mockRef.On("ListDepartments", ctx).Return([]domain.Department{
		{DepartmentID: "dept-1", Name: "Procurement"},
	}, nil).Once()

	view, err := suite.service.GetDocumentView(ctx, "D1", domain.ViewContext{ViewerID: "user-ack", ViewerRole: "Head"})

	suite.Require().NoError(err)
	suite.Equal("Prya", view.Participants.PreparedBy.Name)
	suite.Equal("Andi", view.Participants.AcknowledgedBy.Name)
	suite.Empty(view.Participants.CheckedBy.Name, "unknown IDs resolve to empty names")
	suite.Equal("Procurement", view.DepartmentName)
	suite.True(decimal.NewFromInt(200).Equal(view.TotalAmount))
	suite.Equal(string(domain.ReadOnly), view.Fields[string(domain.FieldCoreDocument)])
	suite.ElementsMatch(view.AllowedActions, []string{"approve", "reject"})

	suite.mockReader.AssertExpectations(suite.T())
	suite.mockRef.AssertExpectations(suite.T())
}

func (suite *DocumentServiceTestSuite) TestGetDocumentView_HistoricalTabOffersNoActions() {
	ctx := context.Background()
	doc := testDocument(domain.StatusChecked)
	suite.mockReader.On("GetDocument", ctx, "D1").Return(doc, nil).Once()
	suite.mockRef.On("ListUsers", ctx).Return([]domain.User{}, nil).Once()
	suite.mockRef.On("ListDepartments", ctx).Return([]domain.Department{}, nil).Maybe()

	view, err := suite.service.GetDocumentView(ctx, "D1", domain.ViewContext{
		ViewerID: "user-ack", ViewerRole: "Head", HistoricalView: true,
	})

	suite.Require().NoError(err)
	suite.Empty(view.AllowedActions)
	suite.Equal(string(domain.Hidden), view.Fields[string(domain.FieldApproveButton)])
}

func TestDocumentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}
