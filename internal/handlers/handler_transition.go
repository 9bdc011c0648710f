package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theCrudify/kpin-approval/internal/core/domain"
	portssvc "github.com/theCrudify/kpin-approval/internal/core/ports/services"
	"github.com/theCrudify/kpin-approval/internal/dto"
	"github.com/theCrudify/kpin-approval/internal/middleware"
)

// transitionHandler handles approval action submissions.
type transitionHandler struct {
	transitionService portssvc.TransitionSvcFacade
}

func newTransitionHandler(ts portssvc.TransitionSvcFacade) *transitionHandler {
	return &transitionHandler{transitionService: ts}
}

// RegisterTransitionRoutes registers the status submission route. rateLimit
// guards against rapid resubmission on top of the in-flight guard.
func RegisterTransitionRoutes(rg *gin.RouterGroup, transitionService portssvc.TransitionSvcFacade, rateLimit gin.HandlerFunc) {
	h := newTransitionHandler(transitionService)
	rg.POST("/documents/:documentID/status", rateLimit, h.submitTransition)
}

// submitTransition godoc
// @Summary Submit an approval action
// @Description Validates and executes one approve, reject or revise action for the acting user
// @Tags documents
// @Accept json
// @Produce json
// @Param documentID path string true "Document ID"
// @Param action body dto.SubmitTransitionRequest true "Action details"
// @Success 200 {object} dto.TransitionResponse
// @Failure 400 {object} map[string]string "Invalid transition or missing remarks"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Submission already in flight"
// @Failure 502 {object} map[string]string "Finance backend rejected the action"
// @Failure 504 {object} map[string]string "Finance backend unreachable"
// @Security BearerAuth
// @Router /documents/{documentID}/status [post]
func (h *transitionHandler) submitTransition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SubmitTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitTransition", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Acting user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unable to get user id from token"})
		return
	}

	documentID := c.Param("documentID")
	action := domain.ApprovalAction{
		DocumentID:   documentID,
		ActingUserID: userID,
		Stage:        domain.Stage(req.Stage),
		Action:       domain.ActionType(req.Action),
		Remarks:      req.Remarks,
	}

	status, err := h.transitionService.Execute(c.Request.Context(), action, middleware.GetUserRoleFromContext(c))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransitionResponse{
		DocumentID: documentID,
		Status:     string(status),
	})
}
