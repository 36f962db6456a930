package approvalhistorystore

import (
	"gorm.io/gorm"

	dbmodels "proposal-approval-backend/models/db"
)

// Records are stored in insertion order, which is chronological. The store
// offers no update: the ledger is append-only, removed only as a whole when
// a proposal is resubmitted.
type Provider interface {
	Create(rec dbmodels.ApprovalRecord) (id string, err error)
	List(proposalID string) (list []dbmodels.ApprovalRecord, err error)
	DeleteByProposal(proposalID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.ApprovalRecord) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(proposalID string) (list []dbmodels.ApprovalRecord, err error) {
	list = []dbmodels.ApprovalRecord{}
	err = i.db.
		Where("proposal_id = ?", proposalID).
		Order("created_at ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) DeleteByProposal(proposalID string) error {
	rec := dbmodels.ApprovalRecord{}
	err := i.db.Model(&dbmodels.ApprovalRecord{}).
		Where("proposal_id = ?", proposalID).
		Delete(&rec).Error
	if err != nil {
		return err
	}
	return nil
}
