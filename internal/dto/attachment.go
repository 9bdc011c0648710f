package dto

// AddPendingAttachmentRequest registers one file awaiting handoff to the
// external storage service.
type AddPendingAttachmentRequest struct {
	FileName string `json:"fileName" binding:"required"`
}

// PendingAttachmentsResponse lists the files queued for upload.
type PendingAttachmentsResponse struct {
	Files     []string `json:"files"`
	Remaining int      `json:"remaining"`
}
