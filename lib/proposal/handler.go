package proposalhandler

import (
	"context"
	"time"

	"github.com/lib/pq"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"proposal-approval-backend/db"
	approvalhistorystore "proposal-approval-backend/lib/approval-history/store"
	"proposal-approval-backend/lib/notification"
	proposalstore "proposal-approval-backend/lib/proposal/store"
	usersstore "proposal-approval-backend/lib/users/store"
	"proposal-approval-backend/lib/utils/lock"
	"proposal-approval-backend/lib/workflow"
	"proposal-approval-backend/models"
	proposalapimodels "proposal-approval-backend/models/api/proposal"
	dbmodels "proposal-approval-backend/models/db"
)

// processWait caps how long a transition waits for a concurrent one on the
// same proposal before giving up.
const processWait = 3 * time.Second

var errProposalNotFound = errors.New("proposal not found")

type Provider interface {
	Create(proposerID string, data proposalapimodels.CreateProposalData) (id string, hMsg string, err error)
	List() ([]proposalapimodels.ProposalView, error)
	GetByID(id string) (*proposalapimodels.ProposalView, error)
	Process(ctx context.Context, actorID string, payload proposalapimodels.ProcessRequest) (view *proposalapimodels.ProposalView, hMsg string, err error)
	Resubmit(ctx context.Context, proposalID, actorID string) (hMsg string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:      proposalstore.NewInstance(db.DB),
		usersStore: usersstore.NewInstance(db.DB),
		inTx:       runInTransaction,
	}
}

type impl struct {
	store      proposalstore.Provider
	usersStore usersstore.Provider
	// inTx runs fn with stores bound to one transaction; both commit or
	// neither does.
	inTx func(fn func(store proposalstore.Provider, history approvalhistorystore.Provider) error) error
}

func runInTransaction(fn func(store proposalstore.Provider, history approvalhistorystore.Provider) error) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		return fn(proposalstore.NewInstance(tx), approvalhistorystore.NewInstance(tx))
	})
}

func (i impl) GetLogger(proposalID string) *log.Entry {
	return log.WithField("proposal_id", proposalID)
}

func (i impl) Create(proposerID string, data proposalapimodels.CreateProposalData) (id string, hMsg string, err error) {
	proposer, err := i.usersStore.GetByID(proposerID)
	if err != nil {
		return "", "", err
	}
	if proposer == nil {
		return "", "người dùng không tồn tại", nil
	}
	if proposer.IsGuest {
		return "", "tài khoản khách không thể tạo đề xuất", nil
	}
	dept := data.Dept
	if dept == "" {
		dept = proposer.Dept
	}
	rec := dbmodels.Proposal{
		Title:         data.Title,
		ProposerID:    proposerID,
		Dept:          dept,
		SubmittedDate: time.Now(),
		Summary:       data.Summary,
		FullText:      data.FullText,
		Budget:        data.Budget,
		Type:          data.Type,
		Status:        models.InitialStatus,
	}
	id, err = i.store.Create(rec)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to create proposal")
	}
	i.GetLogger(id).
		WithField("proposer_id", proposerID).
		Info("proposal created")
	return id, "", nil
}

func (i impl) List() ([]proposalapimodels.ProposalView, error) {
	list, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]proposalapimodels.ProposalView, 0, len(list))
	for _, rec := range list {
		result = append(result, proposalapimodels.ProposalConvert(rec))
	}
	return result, nil
}

func (i impl) GetByID(id string) (*proposalapimodels.ProposalView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := proposalapimodels.ProposalConvert(*rec)
	return &view, nil
}

// Process applies one approve/reject decision to a proposal. The actor is
// resolved from storage (never trusted from the payload), the policy decides
// the outcome, and the status update plus ledger append happen in one
// transaction guarded both by a per-proposal lock and a compare-and-swap on
// the observed status.
func (i impl) Process(ctx context.Context, actorID string, payload proposalapimodels.ProcessRequest) (*proposalapimodels.ProposalView, string, error) {
	actor, err := i.usersStore.GetByID(actorID)
	if err != nil {
		return nil, "", err
	}
	if actor == nil {
		return nil, "người dùng không tồn tại", nil
	}

	proposalID := payload.Request.ProposalID
	logger := i.GetLogger(proposalID).
		WithField("actor_id", actorID).
		WithField("action", payload.Request.Action)

	var decision workflow.Decision
	success, err := lock.WithDelay(ctx, lockKey(proposalID), processWait, func() error {
		rec, err := i.store.GetByID(proposalID)
		if err != nil {
			return err
		}
		if rec == nil {
			return errProposalNotFound
		}

		decision, err = workflow.Decide(workflow.Input{
			ProposalStatus: rec.Status,
			ProposerID:     rec.ProposerID,
			Budget:         rec.Budget,
			Actor: workflow.Actor{
				ID:            actor.ID,
				Name:          actor.Name,
				Role:          actor.Role,
				ApprovalLimit: actor.ApprovalLimit,
			},
			Action:  payload.Request.Action,
			Comment: payload.Request.Comment,
		})
		if err != nil {
			return err
		}

		return i.inTx(func(txStore proposalstore.Provider, txHistory approvalhistorystore.Provider) error {
			updated, err := txStore.UpdateStatusCAS(proposalID, rec.Status, map[string]interface{}{
				"status":           decision.NewStatus,
				"rejection_reason": decision.RejectionReason,
			})
			if err != nil {
				return err
			}
			if !updated {
				return workflow.ErrConcurrentModification
			}
			_, err = txHistory.Create(dbmodels.ApprovalRecord{
				BaseModel:  dbmodels.BaseModel{CreatedAt: decision.Record.Timestamp},
				ProposalID: proposalID,
				ActorID:    decision.Record.ActorID,
				ActorName:  decision.Record.ActorName,
				ActorRole:  decision.Record.ActorRole,
				Status:     decision.Record.Status,
				Comment:    decision.Record.Comment,
				FileNames:  pq.StringArray(payload.Request.Files),
			})
			return errors.Wrap(err, "failed to append approval record")
		})
	})
	if err != nil {
		if errors.Is(err, errProposalNotFound) {
			return nil, "không tìm thấy đề xuất", nil
		}
		return nil, "", err
	}
	if !success {
		return nil, "", workflow.ErrConcurrentModification
	}

	logger.WithField("new_status", decision.NewStatus).Info("proposal processed")

	updated, err := i.store.GetByID(proposalID)
	if err != nil || updated == nil {
		return nil, "", errors.Wrap(err, "failed to reload proposal")
	}
	notification.Instance.OnTransition(*updated, decision.NewStatus, actor.Name)

	view := proposalapimodels.ProposalConvert(*updated)
	return &view, "", nil
}

// Resubmit resets a rejected proposal back to the start of the chain. Only
// the proposer may do it; the ledger and the rejection reason are cleared in
// the same transaction.
func (i impl) Resubmit(ctx context.Context, proposalID, actorID string) (hMsg string, err error) {
	success, err := lock.WithDelay(ctx, lockKey(proposalID), processWait, func() error {
		rec, err := i.store.GetByID(proposalID)
		if err != nil {
			return err
		}
		if rec == nil {
			return errProposalNotFound
		}
		if rec.ProposerID != actorID {
			return errors.WithStack(errNotProposer)
		}
		if !rec.Status.IsRejection() {
			return errors.WithStack(errNotRejected)
		}

		return i.inTx(func(txStore proposalstore.Provider, txHistory approvalhistorystore.Provider) error {
			updated, err := txStore.UpdateStatusCAS(proposalID, rec.Status, map[string]interface{}{
				"status":           models.InitialStatus,
				"rejection_reason": "",
			})
			if err != nil {
				return err
			}
			if !updated {
				return workflow.ErrConcurrentModification
			}
			return txHistory.DeleteByProposal(proposalID)
		})
	})
	if err != nil {
		switch {
		case errors.Is(err, errProposalNotFound):
			return "không tìm thấy đề xuất", nil
		case errors.Is(err, errNotProposer):
			return "chỉ người đề xuất mới có thể gửi lại", nil
		case errors.Is(err, errNotRejected):
			return "chỉ đề xuất bị từ chối mới có thể gửi lại", nil
		}
		return "", err
	}
	if !success {
		return "", workflow.ErrConcurrentModification
	}
	i.GetLogger(proposalID).WithField("actor_id", actorID).Info("proposal resubmitted")
	return "", nil
}

var (
	errNotProposer = errors.New("actor is not the proposer")
	errNotRejected = errors.New("proposal is not rejected")
)

func lockKey(proposalID string) string {
	return "proposal:" + proposalID
}
