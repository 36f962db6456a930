package approvalhistoryhandler

import (
	"sort"

	"proposal-approval-backend/db"
	approvalhistorystore "proposal-approval-backend/lib/approval-history/store"
	proposalapimodels "proposal-approval-backend/models/api/proposal"
)

type Provider interface {
	History(proposalID string) ([]proposalapimodels.ApprovalRecordView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: approvalhistorystore.NewInstance(db.DB),
	}
}

type impl struct {
	store approvalhistorystore.Provider
}

// History returns the ledger newest-first. Ordering is a read-time concern
// only, storage stays chronological.
func (i impl) History(proposalID string) ([]proposalapimodels.ApprovalRecordView, error) {
	list, err := i.store.List(proposalID)
	if err != nil {
		return nil, err
	}
	result := make([]proposalapimodels.ApprovalRecordView, 0, len(list))
	for _, rec := range list {
		result = append(result, proposalapimodels.ApprovalRecordConvert(rec))
	}
	sort.SliceStable(result, func(a, b int) bool {
		return result[a].Date.After(result[b].Date)
	})
	return result, nil
}
