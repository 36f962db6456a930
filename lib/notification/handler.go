package notification

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"proposal-approval-backend/db"
	"proposal-approval-backend/lib/smtp"
	usersstore "proposal-approval-backend/lib/users/store"
	"proposal-approval-backend/models"
	dbmodels "proposal-approval-backend/models/db"
)

// Best-effort email notifications around workflow transitions. Failures are
// logged and never fail the transition itself.
type Provider interface {
	OnTransition(proposal dbmodels.Proposal, newStatus models.ProposalStatus, actorName string)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		usersStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	usersStore usersstore.Provider
}

func (i impl) OnTransition(proposal dbmodels.Proposal, newStatus models.ProposalStatus, actorName string) {
	if !smtp.Instance.IsConfigured() {
		return
	}
	logger := log.
		WithField("proposal_id", proposal.ID).
		WithField("status", newStatus)

	if newStatus.IsTerminal() {
		i.notifyProposer(logger, proposal, newStatus)
		return
	}
	role, ok := reviewerRoleFor(newStatus)
	if !ok {
		return
	}
	reviewers, err := i.usersStore.ListByRole(role)
	if err != nil {
		logger.WithError(err).Error("failed to resolve reviewers to notify")
		return
	}
	subject := "Đề xuất chờ duyệt"
	message := fmt.Sprintf("Đề xuất \"%s\" (ngân sách %d VND) đang chờ bạn xử lý.", proposal.Title, proposal.Budget)
	for _, reviewer := range reviewers {
		if reviewer.ID == proposal.ProposerID {
			continue
		}
		if err := smtp.Instance.SendEMail(reviewer.Email, message, subject); err != nil {
			logger.WithField("recipient", reviewer.Email).WithError(err).Error("failed to notify reviewer")
		}
	}
}

func (i impl) notifyProposer(logger *log.Entry, proposal dbmodels.Proposal, newStatus models.ProposalStatus) {
	proposer, err := i.usersStore.GetByID(proposal.ProposerID)
	if err != nil || proposer == nil {
		logger.WithError(err).Error("failed to resolve proposer to notify")
		return
	}
	var subject, message string
	if newStatus == models.StatusApproved {
		subject = "Đề xuất đã được duyệt"
		message = fmt.Sprintf("Đề xuất \"%s\" của bạn đã được phê duyệt.", proposal.Title)
	} else {
		subject = "Đề xuất bị từ chối"
		message = fmt.Sprintf("Đề xuất \"%s\" của bạn đã bị từ chối. Lý do: %s", proposal.Title, proposal.RejectionReason)
	}
	if err := smtp.Instance.SendEMail(proposer.Email, message, subject); err != nil {
		logger.WithField("recipient", proposer.Email).WithError(err).Error("failed to notify proposer")
	}
}

func reviewerRoleFor(status models.ProposalStatus) (models.UserRole, bool) {
	switch status {
	case models.AccountantReview:
		return models.AccountantRole, true
	case models.ManagerReview:
		return models.ManagerRole, true
	case models.DirectorReview:
		return models.DirectorRole, true
	}
	return "", false
}
