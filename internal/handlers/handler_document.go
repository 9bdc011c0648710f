package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/theCrudify/kpin-approval/internal/core/domain"
	portssvc "github.com/theCrudify/kpin-approval/internal/core/ports/services"
	"github.com/theCrudify/kpin-approval/internal/middleware"
)

// documentHandler handles HTTP requests for the composed document view.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

func newDocumentHandler(ds portssvc.DocumentSvcFacade) *documentHandler {
	return &documentHandler{documentService: ds}
}

// registerDocumentRoutes registers the document view route.
func registerDocumentRoutes(rg *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := newDocumentHandler(documentService)
	rg.GET("/documents/:documentID", h.getDocumentView)
}

// getDocumentView godoc
// @Summary Get the approval view of a document
// @Description Returns the document with resolved participant names, field directives for the caller and the caller's allowed actions
// @Tags documents
// @Produce json
// @Param documentID path string true "Document ID"
// @Param historical query bool false "Open as a historical (read-only) tab"
// @Success 200 {object} dto.DocumentViewResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 502 {object} map[string]string "Finance backend error"
// @Security BearerAuth
// @Router /documents/{documentID} [get]
func (h *documentHandler) getDocumentView(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	view := domain.ViewContext{
		ViewerID:       userID,
		ViewerRole:     middleware.GetUserRoleFromContext(c),
		HistoricalView: c.Query("historical") == "true",
	}

	resp, err := h.documentService.GetDocumentView(c.Request.Context(), c.Param("documentID"), view)
	if err != nil {
		logger.Warn("Failed to build document view", slog.String("document_id", c.Param("documentID")), slog.String("error", err.Error()))
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
