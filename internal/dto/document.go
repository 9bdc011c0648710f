package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ParticipantView pairs a participant user ID with its resolved display
// name. Name is empty when the reference lists do not know the ID.
type ParticipantView struct {
	UserID string `json:"userID"`
	Name   string `json:"name,omitempty"`
}

// ParticipantsResponse lists the assigned reviewer for each stage.
type ParticipantsResponse struct {
	PreparedBy     ParticipantView  `json:"preparedBy"`
	CheckedBy      ParticipantView  `json:"checkedBy"`
	AcknowledgedBy ParticipantView  `json:"acknowledgedBy"`
	ApprovedBy     ParticipantView  `json:"approvedBy"`
	ReceivedBy     ParticipantView  `json:"receivedBy"`
	ClosedBy       *ParticipantView `json:"closedBy,omitempty"`
}

// LineItemResponse is one detail row of the document view.
type LineItemResponse struct {
	LineItemID  string          `json:"lineItemID"`
	Description string          `json:"description"`
	CategoryID  string          `json:"categoryID,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}

// RevisionResponse is one submitted revision remark.
type RevisionResponse struct {
	Stage      string    `json:"stage"`
	AuthorName string    `json:"authorName"`
	AuthorRole string    `json:"authorRole"`
	Remarks    string    `json:"remarks"`
	CreatedAt  time.Time `json:"createdAt"`
}

// DocumentViewResponse is the composed payload an approval page renders:
// the document itself, resolved participant names, the field directives for
// the caller and the actions the caller may submit.
type DocumentViewResponse struct {
	DocumentID     string               `json:"documentID"`
	DocumentNo     string               `json:"documentNo"`
	DocumentType   string               `json:"documentType"`
	Status         string               `json:"status"`
	DepartmentID   string               `json:"departmentID"`
	DepartmentName string               `json:"departmentName,omitempty"`
	Description    string               `json:"description"`
	Participants   ParticipantsResponse `json:"participants"`
	LineItems      []LineItemResponse   `json:"lineItems"`
	Revisions      []RevisionResponse   `json:"revisions"`
	Attachments    []string             `json:"attachments"`
	TotalAmount    decimal.Decimal      `json:"totalAmount"`
	Fields         map[string]string    `json:"fields"`
	AllowedActions []string             `json:"allowedActions"`
}
