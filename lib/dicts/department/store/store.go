package departmentstore

import (
	"gorm.io/gorm"

	dbmodels "proposal-approval-backend/models/db"
)

type Provider interface {
	Add(rec dbmodels.Department, ignoreConflict bool) error
	List() (list []dbmodels.Department, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Add(rec dbmodels.Department, ignoreConflict bool) error {
	tx := i.db
	if ignoreConflict {
		tx = tx.Where("name = ?", rec.Name)
		var count int64
		if err := tx.Model(&dbmodels.Department{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
	}
	return i.db.Create(&rec).Error
}

func (i impl) List() (list []dbmodels.Department, err error) {
	list = []dbmodels.Department{}
	err = i.db.
		Order("name ASC").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
