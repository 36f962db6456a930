package initializers

import (
	"context"
	"proposal-approval-backend/config"
	"proposal-approval-backend/fiberlog"
	approvalhistoryhandler "proposal-approval-backend/lib/approval-history"
	attachmenthandler "proposal-approval-backend/lib/attachment"
	authhandler "proposal-approval-backend/lib/auth"
	departmentprovider "proposal-approval-backend/lib/dicts/department"
	filestorage "proposal-approval-backend/lib/file-storage"
	"proposal-approval-backend/lib/notification"
	proposalhandler "proposal-approval-backend/lib/proposal"
	usershandler "proposal-approval-backend/lib/users"
	s3client "proposal-approval-backend/s3"

	log "github.com/sirupsen/logrus"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	filestorage.NewHandler(s3client.Client)
	if s3client.Client != nil {
		if err := filestorage.Instance.EnsureBucket(ctx); err != nil {
			log.WithError(err).Error("failed to ensure attachment bucket")
		}
	}
	departmentprovider.NewHandler()
	usershandler.NewHandler()
	authhandler.NewHandler()
	notification.NewHandler()
	approvalhistoryhandler.NewHandler()
	proposalhandler.NewHandler()
	attachmenthandler.NewHandler()
}
