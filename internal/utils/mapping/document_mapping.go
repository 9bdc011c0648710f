package mapping

import (
	"github.com/theCrudify/kpin-approval/internal/core/domain"
	"github.com/theCrudify/kpin-approval/internal/dto"
)

// DocumentToViewResponse maps a domain document to its view payload, filling
// participant display names from the resolved name map.
func DocumentToViewResponse(doc *domain.Document, names map[string]string, departmentName string) *dto.DocumentViewResponse {
	resp := &dto.DocumentViewResponse{
		DocumentID:     doc.DocumentID,
		DocumentNo:     doc.DocumentNo,
		DocumentType:   string(doc.DocumentType),
		Status:         string(doc.Status),
		DepartmentID:   doc.DepartmentID,
		DepartmentName: departmentName,
		Description:    doc.Description,
		Participants: dto.ParticipantsResponse{
			PreparedBy:     participantView(doc.Participants.PreparedBy, names),
			CheckedBy:      participantView(doc.Participants.CheckedBy, names),
			AcknowledgedBy: participantView(doc.Participants.AcknowledgedBy, names),
			ApprovedBy:     participantView(doc.Participants.ApprovedBy, names),
			ReceivedBy:     participantView(doc.Participants.ReceivedBy, names),
		},
		LineItems:   make([]dto.LineItemResponse, 0, len(doc.LineItems)),
		Revisions:   make([]dto.RevisionResponse, 0, len(doc.Revisions)),
		Attachments: doc.Attachments,
		TotalAmount: doc.TotalAmount(),
	}
	if doc.Participants.ClosedBy != "" {
		closedBy := participantView(doc.Participants.ClosedBy, names)
		resp.Participants.ClosedBy = &closedBy
	}
	for _, li := range doc.LineItems {
		resp.LineItems = append(resp.LineItems, dto.LineItemResponse{
			LineItemID:  li.LineItemID,
			Description: li.Description,
			CategoryID:  li.CategoryID,
			Quantity:    li.Quantity,
			UnitPrice:   li.UnitPrice,
			Amount:      li.Amount,
		})
	}
	for _, rev := range doc.Revisions {
		resp.Revisions = append(resp.Revisions, dto.RevisionResponse{
			Stage:      string(rev.Stage),
			AuthorName: rev.AuthorName,
			AuthorRole: rev.AuthorRole,
			Remarks:    rev.Remarks,
			CreatedAt:  rev.CreatedAt,
		})
	}
	return resp
}

func participantView(userID string, names map[string]string) dto.ParticipantView {
	return dto.ParticipantView{UserID: userID, Name: names[userID]}
}

// DirectivesToResponse flattens field directives for the JSON payload.
func DirectivesToResponse(directives domain.FieldDirectives) map[string]string {
	out := make(map[string]string, len(directives))
	for field, visibility := range directives {
		out[string(field)] = string(visibility)
	}
	return out
}
