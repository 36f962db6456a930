package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "proposal-approval-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "failed to migrate User")
	}
	if err := DB.AutoMigrate(&dbmodels.Department{}); err != nil {
		return errors.Wrap(err, "failed to migrate Department")
	}
	if err := DB.AutoMigrate(&dbmodels.Proposal{}); err != nil {
		return errors.Wrap(err, "failed to migrate Proposal")
	}
	if err := DB.AutoMigrate(&dbmodels.ApprovalRecord{}); err != nil {
		return errors.Wrap(err, "failed to migrate ApprovalRecord")
	}
	if err := DB.AutoMigrate(&dbmodels.Attachment{}); err != nil {
		return errors.Wrap(err, "failed to migrate Attachment")
	}
	log.Info("migrations finished")
	return nil
}
