package models

type ProposalStatus string

// Statuses of the review chain. Each tier has a Review state and two
// sub-states (Reviewed/Rejected). The Reviewed values are audit labels kept
// for wire compatibility with older records, a live proposal never rests on
// them: approving a tier moves the proposal straight to the next tier's
// Review state (or to Approved).
const (
	AccountantReview   ProposalStatus = "Accountant_Review"
	AccountantReviewed ProposalStatus = "Accountant_Reviewed"
	AccountantRejected ProposalStatus = "Accountant_Rejected"
	ManagerReview      ProposalStatus = "Manager_Review"
	ManagerReviewed    ProposalStatus = "Manager_Reviewed"
	ManagerRejected    ProposalStatus = "Manager_Rejected"
	DirectorReview     ProposalStatus = "Director_Review"
	DirectorReviewed   ProposalStatus = "Director_Reviewed"
	DirectorRejected   ProposalStatus = "Director_Rejected"
	StatusApproved     ProposalStatus = "Approved"
	StatusRejected     ProposalStatus = "Rejected"
)

// InitialStatus is the state of a new or resubmitted proposal.
const InitialStatus = AccountantReview

var statusHumanName = map[ProposalStatus]string{
	AccountantReview:   "Kế toán",
	AccountantReviewed: "Kế toán đã duyệt",
	AccountantRejected: "Kế toán từ chối",
	ManagerReview:      "Manager",
	ManagerReviewed:    "Manager đã duyệt",
	ManagerRejected:    "Manager từ chối",
	DirectorReview:     "BOD",
	DirectorReviewed:   "BOD đã duyệt",
	DirectorRejected:   "BOD từ chối",
	StatusApproved:     "Đã duyệt",
	StatusRejected:     "Đã từ chối",
}

func (s ProposalStatus) ToHuman() string {
	if human, exist := statusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ProposalStatus) IsValid() bool {
	_, exist := statusHumanName[s]
	return exist
}

func (s ProposalStatus) IsRejection() bool {
	switch s {
	case AccountantRejected, ManagerRejected, DirectorRejected, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether no action-driven transition is possible from s.
// Rejections allow resubmission only.
func (s ProposalStatus) IsTerminal() bool {
	return s == StatusApproved || s.IsRejection()
}

// IsResting reports whether a live proposal may carry s as its current status.
func (s ProposalStatus) IsResting() bool {
	switch s {
	case AccountantReviewed, ManagerReviewed, DirectorReviewed:
		return false
	}
	return s.IsValid()
}

// ReviewStatusFor returns the Review state the given role acts on.
func ReviewStatusFor(role UserRole) (ProposalStatus, bool) {
	switch role {
	case AccountantRole:
		return AccountantReview, true
	case ManagerRole:
		return ManagerReview, true
	case DirectorRole:
		return DirectorReview, true
	}
	return "", false
}

// NextOnApprove returns the status an approval at s advances the proposal to.
func (s ProposalStatus) NextOnApprove() (ProposalStatus, bool) {
	switch s {
	case AccountantReview:
		return ManagerReview, true
	case ManagerReview:
		return DirectorReview, true
	case DirectorReview:
		return StatusApproved, true
	}
	return "", false
}

// NextOnReject returns the tier rejection status for s.
func (s ProposalStatus) NextOnReject() (ProposalStatus, bool) {
	switch s {
	case AccountantReview:
		return AccountantRejected, true
	case ManagerReview:
		return ManagerRejected, true
	case DirectorReview:
		return DirectorRejected, true
	}
	return "", false
}
