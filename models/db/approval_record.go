package dbmodels

import (
	"proposal-approval-backend/models"

	"github.com/lib/pq"
)

// ApprovalRecord is one ledger entry of a proposal's approval history.
// Records are append-only: they are never updated, and deleted only when the
// proposer resubmits a rejected proposal.
type ApprovalRecord struct {
	BaseModel
	ProposalID string          `gorm:"type:varchar(36);index"`
	ActorID    string          `gorm:"type:varchar(36)"`
	ActorName  string          `gorm:"type:varchar(150)"`
	ActorRole  models.UserRole `gorm:"type:varchar(50)"`
	// Status the transition left the proposal in.
	Status  models.ProposalStatus `gorm:"type:varchar(50)"`
	Comment string                `gorm:"type:text"`
	// FileNames lists attachments submitted together with the decision.
	FileNames pq.StringArray `gorm:"type:text[]"`
}
