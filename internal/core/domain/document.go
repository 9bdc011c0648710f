package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType distinguishes the four workflow transaction types. Stage
// lists and revise rules vary per type, see WorkflowConfig.
type DocumentType string

const (
	TypeCashAdvance     DocumentType = "CASH_ADVANCE"
	TypePurchaseRequest DocumentType = "PURCHASE_REQUEST"
	TypeReimbursement   DocumentType = "REIMBURSEMENT"
	TypeSettlement      DocumentType = "SETTLEMENT"
)

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// Participants maps each pipeline role to the user ID assigned to it.
// ClosedBy is only populated for document types whose pipeline includes the
// Close stage.
type Participants struct {
	PreparedBy     string `json:"preparedBy"`
	CheckedBy      string `json:"checkedBy"`
	AcknowledgedBy string `json:"acknowledgedBy"`
	ApprovedBy     string `json:"approvedBy"`
	ReceivedBy     string `json:"receivedBy"`
	ClosedBy       string `json:"closedBy,omitempty"`
}

// ForStage returns the user ID assigned to act at the given stage.
func (p Participants) ForStage(stage Stage) string {
	switch stage {
	case StageCheck:
		return p.CheckedBy
	case StageAcknowledge:
		return p.AcknowledgedBy
	case StageApprove:
		return p.ApprovedBy
	case StageReceive:
		return p.ReceivedBy
	case StageClose:
		return p.ClosedBy
	}
	return ""
}

// LineItem is one detail row of a document. The full detail schema varies by
// document type; only the fields the approval pages display are modelled.
type LineItem struct {
	LineItemID  string          `json:"lineItemID"`
	Description string          `json:"description"`
	CategoryID  string          `json:"categoryID,omitempty"`
	Quantity    decimal.Decimal `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unitPrice"`
	Amount      decimal.Decimal `json:"amount"`
}

// Revision is one submitted revision remark. Remarks always begins with the
// literal "[authorName - authorRole]: " prefix; nothing strips it after
// submission.
type Revision struct {
	Stage      Stage     `json:"stage"`
	AuthorName string    `json:"authorName"`
	AuthorRole string    `json:"authorRole"`
	Remarks    string    `json:"remarks"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Document is one workflow instance as served by the finance backend. It is
// created and persisted externally; this service only reads it and submits
// status transitions against it.
type Document struct {
	DocumentID   string         `json:"documentID"`
	DocumentNo   string         `json:"documentNo"`
	DocumentType DocumentType   `json:"documentType"`
	Status       DocumentStatus `json:"status"`
	DepartmentID string         `json:"departmentID"`
	Description  string         `json:"description"`
	Participants Participants   `json:"participants"`
	Revisions    []Revision     `json:"revisions"`
	LineItems    []LineItem     `json:"lineItems"`
	Attachments  []string       `json:"attachments"`
	AuditFields
}

// TotalAmount sums the line item amounts.
func (d Document) TotalAmount() decimal.Decimal {
	total := decimal.Zero
	for _, li := range d.LineItems {
		total = total.Add(li.Amount)
	}
	return total
}

// ApprovalAction is one submitted decision. It is constructed, sent and
// discarded per call; nothing persists it locally.
type ApprovalAction struct {
	DocumentID   string
	ActingUserID string
	Stage        Stage
	Action       ActionType
	Remarks      string
}

// ActionType is the kind of decision a reviewer submits.
type ActionType string

const (
	ActionApprove ActionType = "approve"
	ActionReject  ActionType = "reject"
	ActionRevise  ActionType = "revise"
)

// User is a reference-data entry used to resolve participant display names.
type User struct {
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	DepartmentID string `json:"departmentID"`
}

// Department is a reference-data entry.
type Department struct {
	DepartmentID string `json:"departmentID"`
	Name         string `json:"name"`
}

// ExpenseCategory is a reference-data entry for line-item taxonomy.
type ExpenseCategory struct {
	CategoryID string `json:"categoryID"`
	Name       string `json:"name"`
	Active     bool   `json:"active"`
}
