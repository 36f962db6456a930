package proposalstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"proposal-approval-backend/models"
	dbmodels "proposal-approval-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Proposal) (id string, err error)
	GetByID(id string) (rec *dbmodels.Proposal, err error)
	List() (list []dbmodels.Proposal, err error)
	// UpdateStatusCAS updates the proposal only while its status still equals
	// observed. Returns false when another transition got there first.
	UpdateStatusCAS(id string, observed models.ProposalStatus, updMap map[string]interface{}) (updated bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Proposal) (id string, err error) {
	err = i.db.
		Omit("Proposer").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Proposal, error) {
	rec := dbmodels.Proposal{}
	err := i.db.
		Where("id = ?", id).
		Preload("Proposer").
		Preload("Records", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Attachments").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) List() (list []dbmodels.Proposal, err error) {
	list = []dbmodels.Proposal{}
	err = i.db.
		Order("submitted_date DESC").
		Preload("Proposer").
		Preload("Records", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Attachments").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) UpdateStatusCAS(id string, observed models.ProposalStatus, updMap map[string]interface{}) (bool, error) {
	tx := i.db.
		Model(&dbmodels.Proposal{}).
		Where("id = ?", id).
		Where("status = ?", observed).
		Updates(updMap)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
