package domain

// Visibility is the render directive for one field category.
type Visibility string

const (
	Editable Visibility = "EDITABLE"
	ReadOnly Visibility = "READ_ONLY"
	Hidden   Visibility = "HIDDEN"
)

// FieldID identifies one category of form fields on an approval page. The
// schema is fixed; per-type detail columns all fall under FieldLineItems.
type FieldID string

const (
	FieldCoreDocument       FieldID = "coreDocument"
	FieldLineItems          FieldID = "lineItems"
	FieldParticipantPickers FieldID = "participantPickers"
	FieldAttachmentUpload   FieldID = "attachmentUpload"
	FieldRowControls        FieldID = "rowControls"
	FieldApproveButton      FieldID = "approveButton"
	FieldRejectButton       FieldID = "rejectButton"
	FieldReviseButton       FieldID = "reviseButton"
)

// FieldDirectives maps every field category to its render directive.
type FieldDirectives map[FieldID]Visibility

// ViewContext carries who is looking at a document and how the page was
// opened. HistoricalView is an explicit caller flag (a history tab showing an
// already-decided document), never derived from status.
type ViewContext struct {
	ViewerID       string
	ViewerRole     string
	HistoricalView bool
}
