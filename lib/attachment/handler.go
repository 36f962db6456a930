package attachmenthandler

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"proposal-approval-backend/db"
	attachmentgate "proposal-approval-backend/lib/attachment-gate"
	attachmentstore "proposal-approval-backend/lib/attachment/store"
	filestorage "proposal-approval-backend/lib/file-storage"
	proposalstore "proposal-approval-backend/lib/proposal/store"
	"proposal-approval-backend/lib/utils/lock"
	"proposal-approval-backend/lib/workflow"
	attachmentapimodels "proposal-approval-backend/models/api/attachment"
	dbmodels "proposal-approval-backend/models/db"
)

// uploadWait caps how long an upload waits for a concurrent upload or
// transition holding the same proposal.
const uploadWait = 3 * time.Second

type FileData struct {
	Name        string
	ContentType string
	Body        []byte
}

type Provider interface {
	Upload(ctx context.Context, proposalID, uploaderID string, files []FileData) (result *attachmentapimodels.UploadResult, hMsg string, err error)
	ListByProposal(proposalID string) ([]attachmentapimodels.AttachmentView, error)
	Download(ctx context.Context, attachmentID string) (rec *dbmodels.Attachment, body []byte, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:         attachmentstore.NewInstance(db.DB),
		proposalStore: proposalstore.NewInstance(db.DB),
		inTx:          runInTransaction,
	}
}

type impl struct {
	store         attachmentstore.Provider
	proposalStore proposalstore.Provider
	// inTx runs fn with the store bound to one transaction; all rows commit
	// or none do.
	inTx func(fn func(txStore attachmentstore.Provider) error) error
}

func runInTransaction(fn func(txStore attachmentstore.Provider) error) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		return fn(attachmentstore.NewInstance(tx))
	})
}

// Upload validates the whole batch against the attachment rules, stages every
// object, then writes the metadata rows in one transaction: a failed batch
// stores no metadata. The count check and the writes run under the proposal
// lock so concurrent uploads cannot slip past the file limit together.
func (i impl) Upload(ctx context.Context, proposalID, uploaderID string, files []FileData) (*attachmentapimodels.UploadResult, string, error) {
	if len(files) == 0 {
		return nil, "không có file đính kèm", nil
	}
	proposal, err := i.proposalStore.GetByID(proposalID)
	if err != nil {
		return nil, "", err
	}
	if proposal == nil {
		return nil, "không tìm thấy đề xuất", nil
	}

	logger := log.
		WithField("proposal_id", proposalID).
		WithField("uploader_id", uploaderID)

	var result *attachmentapimodels.UploadResult
	success, err := lock.WithDelay(ctx, lockKey(proposalID), uploadWait, func() error {
		existing, err := i.store.CountByProposal(proposalID)
		if err != nil {
			return err
		}

		batch := make([]attachmentgate.FileInfo, 0, len(files))
		for _, file := range files {
			batch = append(batch, attachmentgate.FileInfo{Name: file.Name, Size: int64(len(file.Body))})
		}
		if err = attachmentgate.Validate(batch, int(existing)); err != nil {
			return err
		}

		recs := make([]dbmodels.Attachment, 0, len(files))
		for _, file := range files {
			objectKey, err := filestorage.Instance.UploadProposalFile(ctx, proposalID, file.Name, file.ContentType, file.Body)
			if err != nil {
				logger.WithField("file", file.Name).WithError(err).Error("failed to store attachment object")
				return errors.Wrap(err, "failed to store attachment")
			}
			recs = append(recs, dbmodels.Attachment{
				ProposalID:  proposalID,
				Name:        file.Name,
				Size:        int64(len(file.Body)),
				ContentType: file.ContentType,
				ObjectKey:   objectKey,
				UploaderID:  uploaderID,
			})
		}

		res := attachmentapimodels.UploadResult{ProposalID: proposalID}
		err = i.inTx(func(txStore attachmentstore.Provider) error {
			for idx := range recs {
				id, err := txStore.Create(recs[idx])
				if err != nil {
					logger.WithField("file", recs[idx].Name).WithError(err).Error("failed to store attachment metadata")
					return err
				}
				recs[idx].ID = id
				res.Attachments = append(res.Attachments, attachmentapimodels.AttachmentConvert(recs[idx], downloadURL(id)))
			}
			return nil
		})
		if err != nil {
			return err
		}
		result = &res
		return nil
	})
	if err != nil {
		return nil, "", err
	}
	if !success {
		return nil, "", workflow.ErrConcurrentModification
	}
	logger.WithField("count", len(files)).Info("attachments uploaded")
	return result, "", nil
}

func (i impl) ListByProposal(proposalID string) ([]attachmentapimodels.AttachmentView, error) {
	list, err := i.store.ListByProposal(proposalID)
	if err != nil {
		return nil, err
	}
	result := make([]attachmentapimodels.AttachmentView, 0, len(list))
	for _, rec := range list {
		result = append(result, attachmentapimodels.AttachmentConvert(rec, downloadURL(rec.ID)))
	}
	return result, nil
}

func (i impl) Download(ctx context.Context, attachmentID string) (*dbmodels.Attachment, []byte, error) {
	rec, err := i.store.GetByID(attachmentID)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, nil
	}
	body, err := filestorage.Instance.GetFile(ctx, rec.ObjectKey)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to fetch attachment object")
	}
	return rec, body, nil
}

func lockKey(proposalID string) string {
	return "proposal:" + proposalID
}

func downloadURL(attachmentID string) string {
	return fmt.Sprintf("/api/v1/attachment/download/%s", attachmentID)
}
