package attachmenthandler

import (
	"context"
	"fmt"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	attachmentgate "proposal-approval-backend/lib/attachment-gate"
	attachmentstore "proposal-approval-backend/lib/attachment/store"
	filestorage "proposal-approval-backend/lib/file-storage"
	"proposal-approval-backend/models"
	dbmodels "proposal-approval-backend/models/db"
)

type fakeAttachmentStore struct {
	existing int64
	created  []dbmodels.Attachment
}

func (f *fakeAttachmentStore) Create(rec dbmodels.Attachment) (string, error) {
	f.created = append(f.created, rec)
	return fmt.Sprintf("att-%d", len(f.created)), nil
}

func (f *fakeAttachmentStore) GetByID(id string) (*dbmodels.Attachment, error) {
	return nil, nil
}

func (f *fakeAttachmentStore) ListByProposal(proposalID string) ([]dbmodels.Attachment, error) {
	return nil, nil
}

func (f *fakeAttachmentStore) CountByProposal(proposalID string) (int64, error) {
	return f.existing, nil
}

type fakeProposalLookup struct {
	rec *dbmodels.Proposal
}

func (f *fakeProposalLookup) Create(rec dbmodels.Proposal) (string, error) { return "", nil }
func (f *fakeProposalLookup) GetByID(id string) (*dbmodels.Proposal, error) {
	if f.rec == nil || f.rec.ID != id {
		return nil, nil
	}
	return f.rec, nil
}
func (f *fakeProposalLookup) List() ([]dbmodels.Proposal, error) { return nil, nil }
func (f *fakeProposalLookup) UpdateStatusCAS(id string, observed models.ProposalStatus, updMap map[string]interface{}) (bool, error) {
	return false, nil
}

type fakeFileStorage struct {
	uploads []string
	// failAt makes the upload with that ordinal (1-based) fail.
	failAt int
}

func (f *fakeFileStorage) UploadProposalFile(ctx context.Context, proposalID, fileName, contentType string, body []byte) (string, error) {
	if f.failAt > 0 && len(f.uploads)+1 == f.failAt {
		return "", errors.New("connection reset")
	}
	key := fmt.Sprintf("proposals/%s/%s", proposalID, fileName)
	f.uploads = append(f.uploads, key)
	return key, nil
}

func (f *fakeFileStorage) GetFile(ctx context.Context, objectKey string) ([]byte, error) {
	return nil, nil
}

func (f *fakeFileStorage) EnsureBucket(ctx context.Context) error { return nil }

func newUploadHandler(store *fakeAttachmentStore, proposals *fakeProposalLookup) impl {
	return impl{
		store:         store,
		proposalStore: proposals,
		inTx: func(fn func(txStore attachmentstore.Provider) error) error {
			return fn(store)
		},
	}
}

func swapFileStorage(t *testing.T, fake filestorage.Provider) {
	prev := filestorage.Instance
	filestorage.Instance = fake
	t.Cleanup(func() { filestorage.Instance = prev })
}

func TestUpload(t *testing.T) {
	ctx := context.Background()
	proposals := &fakeProposalLookup{rec: &dbmodels.Proposal{
		BaseModel: dbmodels.BaseModel{ID: "prop-1"},
		Title:     "Mua máy chủ",
	}}

	t.Run(`stores every file of a valid batch`, func(t *testing.T) {
		store := &fakeAttachmentStore{}
		storage := &fakeFileStorage{}
		swapFileStorage(t, storage)
		h := newUploadHandler(store, proposals)

		result, hMsg, err := h.Upload(ctx, "prop-1", "user-1", []FileData{
			{Name: "báo giá.pdf", ContentType: "application/pdf", Body: []byte("pdf")},
			{Name: "kế hoạch.docx", Body: []byte("doc")},
		})
		require.Nil(t, err)
		require.Equal(t, "", hMsg)
		require.NotNil(t, result)
		require.Len(t, result.Attachments, 2)
		require.Len(t, store.created, 2)
		require.Equal(t, "prop-1", store.created[0].ProposalID)
		require.Equal(t, "user-1", store.created[0].UploaderID)
		require.Equal(t, storage.uploads[0], store.created[0].ObjectKey)
	})

	t.Run(`storage failure mid-batch stores no metadata`, func(t *testing.T) {
		store := &fakeAttachmentStore{}
		storage := &fakeFileStorage{failAt: 2}
		swapFileStorage(t, storage)
		h := newUploadHandler(store, proposals)

		_, _, err := h.Upload(ctx, "prop-1", "user-1", []FileData{
			{Name: "a.pdf", Body: []byte("a")},
			{Name: "b.pdf", Body: []byte("b")},
			{Name: "c.pdf", Body: []byte("c")},
		})
		require.NotNil(t, err)
		require.Empty(t, store.created)
	})

	t.Run(`file limit counts already stored attachments`, func(t *testing.T) {
		store := &fakeAttachmentStore{existing: int64(models.MaxFilesPerProposal - 1)}
		storage := &fakeFileStorage{}
		swapFileStorage(t, storage)
		h := newUploadHandler(store, proposals)

		_, _, err := h.Upload(ctx, "prop-1", "user-1", []FileData{
			{Name: "a.pdf", Body: []byte("a")},
			{Name: "b.pdf", Body: []byte("b")},
		})
		var gateErr *attachmentgate.Error
		require.ErrorAs(t, err, &gateErr)
		require.Equal(t, attachmentgate.CodeTooManyFiles, gateErr.Code)
		require.Empty(t, storage.uploads)
		require.Empty(t, store.created)
	})

	t.Run(`unknown proposal`, func(t *testing.T) {
		store := &fakeAttachmentStore{}
		swapFileStorage(t, &fakeFileStorage{})
		h := newUploadHandler(store, proposals)

		_, hMsg, err := h.Upload(ctx, "missing", "user-1", []FileData{
			{Name: "a.pdf", Body: []byte("a")},
		})
		require.Nil(t, err)
		require.Equal(t, "không tìm thấy đề xuất", hMsg)
	})

	t.Run(`empty batch`, func(t *testing.T) {
		store := &fakeAttachmentStore{}
		h := newUploadHandler(store, proposals)

		_, hMsg, err := h.Upload(ctx, "prop-1", "user-1", nil)
		require.Nil(t, err)
		require.Equal(t, "không có file đính kèm", hMsg)
	})
}
