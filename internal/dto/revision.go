package dto

import "time"

// AddDraftRequest opens a new revision draft for the acting reviewer.
type AddDraftRequest struct {
	AuthorName string `json:"authorName" binding:"required"`
	AuthorRole string `json:"authorRole" binding:"required"`
	Stage      string `json:"stage" binding:"required,stage"`
}

// EditDraftRequest replaces a draft's text. The protected prefix is repaired
// server-side on every edit, so clients may send whatever the textarea holds.
type EditDraftRequest struct {
	Text string `json:"text" binding:"required"`
}

// RemoveDraftRequest identifies the author requesting removal.
type RemoveDraftRequest struct {
	AuthorName string `json:"authorName" binding:"required"`
	AuthorRole string `json:"authorRole" binding:"required"`
}

// SubmitRevisionRequest names the stage the compiled revision is submitted
// from.
type SubmitRevisionRequest struct {
	Stage string `json:"stage" binding:"required,stage"`
}

// DraftResponse is one pending revision draft.
type DraftResponse struct {
	DraftID    string    `json:"draftID"`
	AuthorName string    `json:"authorName"`
	AuthorRole string    `json:"authorRole"`
	Stage      string    `json:"stage"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"createdAt"`
}

// DraftListResponse lists the pending drafts with the submit-readiness flag
// and the compiled remarks preview.
type DraftListResponse struct {
	Drafts        []DraftResponse `json:"drafts"`
	ReadyToSubmit bool            `json:"readyToSubmit"`
	Compiled      string          `json:"compiled"`
}
