package domain

// RoleAdministrator is the default administrative override role. Holders may
// act at any stage regardless of participant assignment; the real
// authorization model behind the role lives in the external identity system.
const RoleAdministrator = "ADMINISTRATOR"

// WorkflowConfig parameterizes the generic engine for one document type:
// which stages its pipeline contains and which of them may request a
// revision. Supplying these as data replaces the per-page copies of the same
// rules in the original system.
type WorkflowConfig struct {
	DocumentType DocumentType
	// Stages in pipeline order.
	Stages []Stage
	// ReviseStages are the stages allowed to submit a revise action.
	ReviseStages []Stage
	// AllowParticipantReassign permits the preparer to change participant
	// assignments while the document is in Revision.
	AllowParticipantReassign bool
}

// HasStage reports whether the pipeline for this type includes stage.
func (c WorkflowConfig) HasStage(stage Stage) bool {
	for _, s := range c.Stages {
		if s == stage {
			return true
		}
	}
	return false
}

// AllowsRevise reports whether stage may request a revision for this type.
func (c WorkflowConfig) AllowsRevise(stage Stage) bool {
	for _, s := range c.ReviseStages {
		if s == stage {
			return true
		}
	}
	return false
}

var fullPipeline = []Stage{StageCheck, StageAcknowledge, StageApprove, StageReceive, StageClose}
var shortPipeline = []Stage{StageCheck, StageAcknowledge, StageApprove, StageReceive}

// workflowConfigs holds the per-type configuration. Cash advances and
// settlements carry the Close stage; purchase requests and reimbursements
// end at Received.
var workflowConfigs = map[DocumentType]WorkflowConfig{
	TypeCashAdvance: {
		DocumentType: TypeCashAdvance,
		Stages:       fullPipeline,
		ReviseStages: []Stage{StageReceive},
	},
	TypePurchaseRequest: {
		DocumentType: TypePurchaseRequest,
		Stages:       shortPipeline,
		ReviseStages: []Stage{StageCheck, StageReceive},
	},
	TypeReimbursement: {
		DocumentType: TypeReimbursement,
		Stages:       shortPipeline,
		ReviseStages: []Stage{StageReceive},
	},
	TypeSettlement: {
		DocumentType: TypeSettlement,
		Stages:       fullPipeline,
		ReviseStages: []Stage{StageReceive},
	},
}

// ConfigFor returns the workflow configuration for a document type.
func ConfigFor(docType DocumentType) (WorkflowConfig, bool) {
	cfg, ok := workflowConfigs[docType]
	return cfg, ok
}
