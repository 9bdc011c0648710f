package dto

// SubmitTransitionRequest is the body of a status submission. Stage uses the
// custom "stage" validation registered at startup; remarks requirements for
// reject and revise are enforced by the transition service, not here.
type SubmitTransitionRequest struct {
	Stage   string `json:"stage" binding:"required,stage"`
	Action  string `json:"action" binding:"required,oneof=approve reject revise"`
	Remarks string `json:"remarks"`
}

// TransitionResponse reports the status the document moved to.
type TransitionResponse struct {
	DocumentID string `json:"documentID"`
	Status     string `json:"status"`
}
