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

// revisionHandler handles the pending revision drafts of a document.
type revisionHandler struct {
	revisionService portssvc.RevisionSvcFacade
}

func newRevisionHandler(rs portssvc.RevisionSvcFacade) *revisionHandler {
	return &revisionHandler{revisionService: rs}
}

// registerRevisionRoutes registers draft management and revision submission.
func registerRevisionRoutes(rg *gin.RouterGroup, revisionService portssvc.RevisionSvcFacade) {
	h := newRevisionHandler(revisionService)

	revisions := rg.Group("/documents/:documentID/revisions")
	{
		revisions.GET("/drafts", h.listDrafts)
		revisions.POST("/drafts", h.addDraft)
		revisions.PUT("/drafts/:draftID", h.editDraft)
		revisions.DELETE("/drafts/:draftID", h.removeDraft)
		revisions.POST("/submit", h.submitRevision)
	}
}

// listDrafts godoc
// @Summary List pending revision drafts
// @Tags revisions
// @Produce json
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.DraftListResponse
// @Security BearerAuth
// @Router /documents/{documentID}/revisions/drafts [get]
func (h *revisionHandler) listDrafts(c *gin.Context) {
	c.JSON(http.StatusOK, h.revisionService.ListDrafts(c.Param("documentID")))
}

// addDraft godoc
// @Summary Open a revision draft
// @Description Creates a draft pre-populated with the author's protected prefix. One draft per author, at most four per document.
// @Tags revisions
// @Accept json
// @Produce json
// @Param documentID path string true "Document ID"
// @Param draft body dto.AddDraftRequest true "Draft author"
// @Success 201 {object} dto.DraftResponse
// @Failure 409 {object} map[string]string "Limit reached or duplicate author"
// @Security BearerAuth
// @Router /documents/{documentID}/revisions/drafts [post]
func (h *revisionHandler) addDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddDraft", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	draft, err := h.revisionService.AddDraft(c.Param("documentID"), req)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, draft)
}

// editDraft godoc
// @Summary Edit a revision draft
// @Description Replaces the draft text. Any edit that damages the protected prefix is repaired server-side.
// @Tags revisions
// @Accept json
// @Produce json
// @Param documentID path string true "Document ID"
// @Param draftID path string true "Draft ID"
// @Param draft body dto.EditDraftRequest true "New text"
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} map[string]string "Draft not found"
// @Security BearerAuth
// @Router /documents/{documentID}/revisions/drafts/{draftID} [put]
func (h *revisionHandler) editDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.EditDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for EditDraft", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	draft, err := h.revisionService.EditDraft(c.Param("documentID"), c.Param("draftID"), req.Text)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// removeDraft godoc
// @Summary Remove a revision draft
// @Description Deletes the draft when its text still begins with the requesting author's prefix
// @Tags revisions
// @Accept json
// @Produce json
// @Param documentID path string true "Document ID"
// @Param draftID path string true "Draft ID"
// @Param author body dto.RemoveDraftRequest true "Requesting author"
// @Success 204 "Removed"
// @Failure 403 {object} map[string]string "Owned by another author"
// @Failure 404 {object} map[string]string "Draft not found"
// @Security BearerAuth
// @Router /documents/{documentID}/revisions/drafts/{draftID} [delete]
func (h *revisionHandler) removeDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.RemoveDraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RemoveDraft", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.revisionService.RemoveDraft(c.Param("documentID"), c.Param("draftID"), req.AuthorName, req.AuthorRole); err != nil {
		respondWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// submitRevision godoc
// @Summary Submit the compiled revision
// @Description Joins every pending draft into one remarks payload and executes a revise action at the given stage
// @Tags revisions
// @Accept json
// @Produce json
// @Param documentID path string true "Document ID"
// @Param submission body dto.SubmitRevisionRequest true "Submitting stage"
// @Success 200 {object} dto.TransitionResponse
// @Failure 400 {object} map[string]string "Drafts not ready"
// @Failure 409 {object} map[string]string "Submission already in flight"
// @Security BearerAuth
// @Router /documents/{documentID}/revisions/submit [post]
func (h *revisionHandler) submitRevision(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SubmitRevisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SubmitRevision", slog.String("error", err.Error()))
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
	status, err := h.revisionService.SubmitRevision(c.Request.Context(), documentID, userID, middleware.GetUserRoleFromContext(c), domain.Stage(req.Stage))
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TransitionResponse{DocumentID: documentID, Status: string(status)})
}
