package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/theCrudify/kpin-approval/internal/core/ports/services"
	"github.com/theCrudify/kpin-approval/internal/dto"
	"github.com/theCrudify/kpin-approval/internal/middleware"
)

// attachmentHandler manages the pending upload queue; stored attachments
// live entirely in the external storage service.
type attachmentHandler struct {
	attachmentService portssvc.AttachmentSvcFacade
}

func newAttachmentHandler(as portssvc.AttachmentSvcFacade) *attachmentHandler {
	return &attachmentHandler{attachmentService: as}
}

// registerAttachmentRoutes registers the pending attachment routes.
func registerAttachmentRoutes(rg *gin.RouterGroup, attachmentService portssvc.AttachmentSvcFacade) {
	h := newAttachmentHandler(attachmentService)

	pending := rg.Group("/documents/:documentID/attachments/pending")
	{
		pending.GET("", h.listPending)
		pending.POST("", h.addPending)
		pending.DELETE("/:index", h.removePending)
	}
}

// listPending godoc
// @Summary List files queued for upload
// @Tags attachments
// @Produce json
// @Param documentID path string true "Document ID"
// @Success 200 {object} dto.PendingAttachmentsResponse
// @Security BearerAuth
// @Router /documents/{documentID}/attachments/pending [get]
func (h *attachmentHandler) listPending(c *gin.Context) {
	c.JSON(http.StatusOK, h.attachmentService.ListPending(c.Param("documentID")))
}

// addPending godoc
// @Summary Queue a file for upload
// @Description At most five files may be queued per document
// @Tags attachments
// @Accept json
// @Produce json
// @Param documentID path string true "Document ID"
// @Param file body dto.AddPendingAttachmentRequest true "File name"
// @Success 201 {object} dto.PendingAttachmentsResponse
// @Failure 409 {object} map[string]string "File limit reached"
// @Security BearerAuth
// @Router /documents/{documentID}/attachments/pending [post]
func (h *attachmentHandler) addPending(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddPendingAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddPendingAttachment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.attachmentService.AddPending(c.Param("documentID"), req.FileName)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// removePending godoc
// @Summary Remove a queued file
// @Tags attachments
// @Produce json
// @Param documentID path string true "Document ID"
// @Param index path int true "Queue index"
// @Success 200 {object} dto.PendingAttachmentsResponse
// @Failure 404 {object} map[string]string "No file at index"
// @Security BearerAuth
// @Router /documents/{documentID}/attachments/pending/{index} [delete]
func (h *attachmentHandler) removePending(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid index: " + c.Param("index")})
		return
	}

	resp, err := h.attachmentService.RemovePending(c.Param("documentID"), index)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
