package dbmodels

import (
	"proposal-approval-backend/models"
	"time"
)

type Proposal struct {
	BaseModel
	Title         string `gorm:"type:varchar(255)"`
	ProposerID    string `gorm:"type:varchar(36);index"`
	Proposer      *User  `gorm:"foreignKey:ProposerID"`
	Dept          string `gorm:"type:varchar(150)"`
	SubmittedDate time.Time
	Summary       string `gorm:"type:text"`
	FullText      string `gorm:"type:text"`
	// Budget in whole VND.
	Budget int64
	Type   models.ProposalType   `gorm:"type:varchar(50)"`
	Status models.ProposalStatus `gorm:"type:varchar(50);index"`
	// RejectionReason is set if and only if Status is a rejection.
	RejectionReason string           `gorm:"type:text"`
	Records         []ApprovalRecord `gorm:"foreignKey:ProposalID"`
	Attachments     []Attachment     `gorm:"foreignKey:ProposalID"`
}
