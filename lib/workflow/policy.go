// Package workflow holds the transition policy of the proposal review chain:
// which action an actor may apply to a proposal in its current status, and
// what the outcome is. Eligibility, self-approval and budget-authority rules
// all live here so the HTTP layer and the UI stay rule-free.
package workflow

import (
	"strings"
	"time"

	"proposal-approval-backend/models"
)

// Actor is the acting user as supplied by the authentication layer,
// identity, role and approval limit resolved atomically per request.
type Actor struct {
	ID            string
	Name          string
	Role          models.UserRole
	ApprovalLimit *int64
}

// Input is one requested transition.
type Input struct {
	ProposalStatus models.ProposalStatus
	ProposerID     string
	Budget         int64
	Actor          Actor
	Action         models.ActionType
	Comment        string
}

// Record is the ledger entry a successful transition appends.
type Record struct {
	ActorID   string
	ActorName string
	ActorRole models.UserRole
	Status    models.ProposalStatus
	Comment   string
	Timestamp time.Time
}

// Decision is the outcome of a permitted transition.
type Decision struct {
	NewStatus models.ProposalStatus
	// RejectionReason is non-empty exactly when NewStatus is a rejection.
	RejectionReason string
	Record          Record
}

// Decide validates the requested transition and computes its outcome.
// It never mutates anything; failures are *Error values with a user-facing
// message. Callers must re-validate the proposal status on write (see
// ErrConcurrentModification).
func Decide(in Input) (Decision, error) {
	if in.Actor.ID == in.ProposerID {
		return Decision{}, ErrSelfApproval
	}

	required, actsInChain := models.ReviewStatusFor(in.Actor.Role)
	if !actsInChain {
		return Decision{}, ErrInvalidState
	}
	if in.ProposalStatus != required {
		return Decision{}, ErrInvalidState
	}

	if in.Actor.Role.RequiresApprovalLimit() {
		if in.Actor.ApprovalLimit == nil || in.Budget > *in.Actor.ApprovalLimit {
			return Decision{}, ErrInsufficientAuthority
		}
	}

	var newStatus models.ProposalStatus
	var reason string
	switch in.Action {
	case models.ActionApprove:
		next, ok := in.ProposalStatus.NextOnApprove()
		if !ok {
			return Decision{}, ErrInvalidState
		}
		newStatus = next
	case models.ActionReject:
		if strings.TrimSpace(in.Comment) == "" {
			return Decision{}, ErrMissingReason
		}
		next, ok := in.ProposalStatus.NextOnReject()
		if !ok {
			return Decision{}, ErrInvalidState
		}
		newStatus = next
		reason = in.Comment
	default:
		return Decision{}, ErrInvalidState
	}

	return Decision{
		NewStatus:       newStatus,
		RejectionReason: reason,
		Record: Record{
			ActorID:   in.Actor.ID,
			ActorName: in.Actor.Name,
			ActorRole: in.Actor.Role,
			Status:    newStatus,
			Comment:   in.Comment,
			Timestamp: time.Now(),
		},
	}, nil
}

// CanAct reports whether the actor currently has any permitted action on the
// proposal. The dashboard uses it to enable or hide action buttons; Decide
// re-checks everything regardless.
func CanAct(status models.ProposalStatus, proposerID string, budget int64, actor Actor) bool {
	_, err := Decide(Input{
		ProposalStatus: status,
		ProposerID:     proposerID,
		Budget:         budget,
		Actor:          actor,
		Action:         models.ActionApprove,
	})
	return err == nil
}
