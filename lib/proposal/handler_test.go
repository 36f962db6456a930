package proposalhandler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	approvalhistorystore "proposal-approval-backend/lib/approval-history/store"
	"proposal-approval-backend/lib/notification"
	proposalstore "proposal-approval-backend/lib/proposal/store"
	"proposal-approval-backend/lib/workflow"
	"proposal-approval-backend/models"
	proposalapimodels "proposal-approval-backend/models/api/proposal"
	dbmodels "proposal-approval-backend/models/db"
)

type casCall struct {
	id       string
	observed models.ProposalStatus
	updMap   map[string]interface{}
}

type fakeProposalStore struct {
	rec        *dbmodels.Proposal
	casUpdated bool
	casCalls   []casCall
}

func (f *fakeProposalStore) Create(rec dbmodels.Proposal) (string, error) { return "", nil }

func (f *fakeProposalStore) GetByID(id string) (*dbmodels.Proposal, error) {
	if f.rec == nil || f.rec.ID != id {
		return nil, nil
	}
	cp := *f.rec
	return &cp, nil
}

func (f *fakeProposalStore) List() ([]dbmodels.Proposal, error) { return nil, nil }

func (f *fakeProposalStore) UpdateStatusCAS(id string, observed models.ProposalStatus, updMap map[string]interface{}) (bool, error) {
	f.casCalls = append(f.casCalls, casCall{id: id, observed: observed, updMap: updMap})
	if f.casUpdated {
		f.rec.Status = updMap["status"].(models.ProposalStatus)
		f.rec.RejectionReason = updMap["rejection_reason"].(string)
	}
	return f.casUpdated, nil
}

type fakeHistoryStore struct {
	created []dbmodels.ApprovalRecord
	deleted []string
}

func (f *fakeHistoryStore) Create(rec dbmodels.ApprovalRecord) (string, error) {
	f.created = append(f.created, rec)
	return "record-1", nil
}

func (f *fakeHistoryStore) List(proposalID string) ([]dbmodels.ApprovalRecord, error) {
	return nil, nil
}

func (f *fakeHistoryStore) DeleteByProposal(proposalID string) error {
	f.deleted = append(f.deleted, proposalID)
	return nil
}

type fakeUsersStore struct {
	users map[string]dbmodels.User
}

func (f *fakeUsersStore) Create(rec dbmodels.User) (string, error)      { return "", nil }
func (f *fakeUsersStore) GetByEmail(email string) (*dbmodels.User, error) { return nil, nil }
func (f *fakeUsersStore) ExistByEmail(email string) (bool, error)       { return false, nil }
func (f *fakeUsersStore) Update(id string, updMap map[string]interface{}) error { return nil }
func (f *fakeUsersStore) Delete(id string) error                        { return nil }
func (f *fakeUsersStore) List() ([]dbmodels.User, error)                { return nil, nil }
func (f *fakeUsersStore) ListByRole(role models.UserRole) ([]dbmodels.User, error) {
	return nil, nil
}
func (f *fakeUsersStore) SetLastLogin(id string) error { return nil }

func (f *fakeUsersStore) GetByID(id string) (*dbmodels.User, error) {
	rec, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

type fakeNotifier struct {
	transitions []models.ProposalStatus
}

func (f *fakeNotifier) OnTransition(proposal dbmodels.Proposal, newStatus models.ProposalStatus, actorName string) {
	f.transitions = append(f.transitions, newStatus)
}

func newTestHandler(store *fakeProposalStore, history *fakeHistoryStore, users *fakeUsersStore) impl {
	return impl{
		store:      store,
		usersStore: users,
		inTx: func(fn func(txStore proposalstore.Provider, txHistory approvalhistorystore.Provider) error) error {
			return fn(store, history)
		},
	}
}

func rejectedProposal() *dbmodels.Proposal {
	return &dbmodels.Proposal{
		BaseModel:       dbmodels.BaseModel{ID: "prop-1"},
		Title:           "Mua máy chủ",
		ProposerID:      "user-1",
		Budget:          40_000_000,
		Status:          models.ManagerRejected,
		RejectionReason: "thiếu báo giá",
	}
}

func TestResubmit(t *testing.T) {
	ctx := context.Background()

	t.Run(`resets status, clears ledger and rejection reason`, func(t *testing.T) {
		store := &fakeProposalStore{rec: rejectedProposal(), casUpdated: true}
		history := &fakeHistoryStore{}
		h := newTestHandler(store, history, nil)

		hMsg, err := h.Resubmit(ctx, "prop-1", "user-1")
		require.Nil(t, err)
		require.Equal(t, "", hMsg)

		require.Len(t, store.casCalls, 1)
		call := store.casCalls[0]
		require.Equal(t, "prop-1", call.id)
		require.Equal(t, models.ManagerRejected, call.observed)
		require.Equal(t, models.InitialStatus, call.updMap["status"])
		require.Equal(t, "", call.updMap["rejection_reason"])
		require.Equal(t, []string{"prop-1"}, history.deleted)
	})

	t.Run(`only the proposer may resubmit`, func(t *testing.T) {
		store := &fakeProposalStore{rec: rejectedProposal(), casUpdated: true}
		history := &fakeHistoryStore{}
		h := newTestHandler(store, history, nil)

		hMsg, err := h.Resubmit(ctx, "prop-1", "user-2")
		require.Nil(t, err)
		require.Equal(t, "chỉ người đề xuất mới có thể gửi lại", hMsg)
		require.Empty(t, store.casCalls)
		require.Empty(t, history.deleted)
	})

	t.Run(`only a rejected proposal may be resubmitted`, func(t *testing.T) {
		rec := rejectedProposal()
		rec.Status = models.ManagerReview
		rec.RejectionReason = ""
		store := &fakeProposalStore{rec: rec, casUpdated: true}
		history := &fakeHistoryStore{}
		h := newTestHandler(store, history, nil)

		hMsg, err := h.Resubmit(ctx, "prop-1", "user-1")
		require.Nil(t, err)
		require.Equal(t, "chỉ đề xuất bị từ chối mới có thể gửi lại", hMsg)
		require.Empty(t, store.casCalls)
		require.Empty(t, history.deleted)
	})

	t.Run(`unknown proposal`, func(t *testing.T) {
		store := &fakeProposalStore{}
		h := newTestHandler(store, &fakeHistoryStore{}, nil)

		hMsg, err := h.Resubmit(ctx, "missing", "user-1")
		require.Nil(t, err)
		require.Equal(t, "không tìm thấy đề xuất", hMsg)
	})

	t.Run(`lost race surfaces as concurrent modification`, func(t *testing.T) {
		store := &fakeProposalStore{rec: rejectedProposal(), casUpdated: false}
		history := &fakeHistoryStore{}
		h := newTestHandler(store, history, nil)

		_, err := h.Resubmit(ctx, "prop-1", "user-1")
		require.ErrorIs(t, err, workflow.ErrConcurrentModification)
		require.Empty(t, history.deleted)
	})
}

func TestProcessPersistsDecision(t *testing.T) {
	prevNotifier := notification.Instance
	notifier := &fakeNotifier{}
	notification.Instance = notifier
	defer func() { notification.Instance = prevNotifier }()

	rec := rejectedProposal()
	rec.Status = models.AccountantReview
	rec.RejectionReason = ""
	store := &fakeProposalStore{rec: rec, casUpdated: true}
	history := &fakeHistoryStore{}
	users := &fakeUsersStore{users: map[string]dbmodels.User{
		"user-9": {BaseModel: dbmodels.BaseModel{ID: "user-9"}, Name: "Mai", Role: models.AccountantRole},
	}}
	h := newTestHandler(store, history, users)

	view, hMsg, err := h.Process(context.Background(), "user-9", proposalapimodels.ProcessRequest{
		Request: proposalapimodels.ApprovalAction{
			ProposalID: "prop-1",
			Action:     models.ActionApprove,
			Comment:    "đủ chứng từ",
		},
	})
	require.Nil(t, err)
	require.Equal(t, "", hMsg)
	require.NotNil(t, view)
	require.Equal(t, models.ManagerReview, view.Status)

	require.Len(t, history.created, 1)
	record := history.created[0]
	require.Equal(t, "user-9", record.ActorID)
	require.Equal(t, models.ManagerReview, record.Status)
	require.False(t, record.CreatedAt.IsZero())
	require.Equal(t, []models.ProposalStatus{models.ManagerReview}, notifier.transitions)
}
