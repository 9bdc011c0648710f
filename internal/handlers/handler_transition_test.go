package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/theCrudify/kpin-approval/internal/apperrors"
	"github.com/theCrudify/kpin-approval/internal/core/domain"
	portssvc "github.com/theCrudify/kpin-approval/internal/core/ports/services"
	"github.com/theCrudify/kpin-approval/internal/dto"
	"github.com/theCrudify/kpin-approval/internal/handlers"
	"github.com/theCrudify/kpin-approval/internal/middleware"
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
type TransitionHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockTransitionService
	jwtSecret   string
}

// generateTestToken creates a signed JWT carrying the subject and role.
func (suite *TransitionHandlerTestSuite) generateTestToken(userID, role string) string {
	claims := middleware.AppClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "kpin-test",
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *TransitionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	handlers.RegisterValidations()
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockService = new(MockTransitionService)

	v1 := suite.router.Group("/api/v1")
	noRateLimit := func(c *gin.Context) { c.Next() }
	handlers.RegisterTransitionRoutes(v1, suite.mockService, noRateLimit)
}

// submit posts the body to the transition route with the given token.
func (suite *TransitionHandlerTestSuite) submit(documentID, token string, body any) *httptest.ResponseRecorder {
	encoded, err := json.Marshal(body)
	suite.Require().NoError(err)

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/documents/"+documentID+"/status", bytes.NewReader(encoded))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *TransitionHandlerTestSuite) TestSubmitTransition_Success() {
	suite.mockService.On("Execute",
		mock.Anything,
		mock.MatchedBy(func(a domain.ApprovalAction) bool {
			return a.DocumentID == "D1" &&
				a.ActingUserID == "user-check" &&
				a.Stage == domain.StageCheck &&
				a.Action == domain.ActionApprove
		}),
		"Staff",
	).Return(domain.StatusChecked, nil).Once()

	token := suite.generateTestToken("user-check", "Staff")
	w := suite.submit("D1", token, dto.SubmitTransitionRequest{
		Stage:  string(domain.StageCheck),
		Action: string(domain.ActionApprove),
	})

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.TransitionResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("D1", resp.DocumentID)
	suite.Equal(string(domain.StatusChecked), resp.Status)

	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransitionHandlerTestSuite) TestSubmitTransition_AlreadyProcessing() {
	suite.mockService.On("Execute", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.DocumentStatus(""), apperrors.ErrAlreadyProcessing).Once()

	token := suite.generateTestToken("user-check", "Staff")
	w := suite.submit("D1", token, dto.SubmitTransitionRequest{
		Stage:  string(domain.StageCheck),
		Action: string(domain.ActionApprove),
	})

	suite.Equal(http.StatusConflict, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransitionHandlerTestSuite) TestSubmitTransition_MissingRemarks() {
	suite.mockService.On("Execute", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.DocumentStatus(""), apperrors.ErrMissingRemarks).Once()

	token := suite.generateTestToken("user-check", "Staff")
	w := suite.submit("D1", token, dto.SubmitTransitionRequest{
		Stage:  string(domain.StageCheck),
		Action: string(domain.ActionReject),
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *TransitionHandlerTestSuite) TestSubmitTransition_InvalidStageRejectedByBinding() {
	token := suite.generateTestToken("user-check", "Staff")
	w := suite.submit("D1", token, dto.SubmitTransitionRequest{
		Stage:  "NOT_A_STAGE",
		Action: string(domain.ActionApprove),
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Execute")
}

func (suite *TransitionHandlerTestSuite) TestSubmitTransition_NoToken() {
	w := suite.submit("D1", "", dto.SubmitTransitionRequest{
		Stage:  string(domain.StageCheck),
		Action: string(domain.ActionApprove),
	})

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "Execute")
}

func (suite *TransitionHandlerTestSuite) TestSubmitTransition_BackendRejected() {
	suite.mockService.On("Execute", mock.Anything, mock.Anything, mock.Anything).
		Return(domain.DocumentStatus(""), &apperrors.RemoteError{
			StatusCode: http.StatusConflict,
			Message:    "document status has already changed",
		}).Once()

	token := suite.generateTestToken("user-rec", "Staff")
	w := suite.submit("D1", token, dto.SubmitTransitionRequest{
		Stage:  string(domain.StageReceive),
		Action: string(domain.ActionApprove),
	})

	suite.Equal(http.StatusBadGateway, w.Code)

	var body map[string]string
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	suite.Equal("document status has already changed", body["error"])
	suite.mockService.AssertExpectations(suite.T())
}

// --- Run Test Suite ---
func TestTransitionHandler(t *testing.T) {
	suite.Run(t, new(TransitionHandlerTestSuite))
}
