package models

type ProposalType string

// Budget categories. The Vietnamese labels are the wire values used by the
// dashboard.
const (
	TypeSalaryBonus ProposalType = "Lương Thưởng"
	TypeMarketing   ProposalType = "Marketing"
	TypeSupplies    ProposalType = "Vật Tư"
	TypeMachinery   ProposalType = "Máy & Dụng Cụ"
	TypeOffice      ProposalType = "Văn Phòng"
	TypeOther       ProposalType = "Khác"
)

func (t ProposalType) IsValid() bool {
	switch t {
	case TypeSalaryBonus, TypeMarketing, TypeSupplies, TypeMachinery, TypeOffice, TypeOther:
		return true
	}
	return false
}

type ActionType string

const (
	ActionApprove ActionType = "approve"
	ActionReject  ActionType = "reject"
)

func (a ActionType) IsValid() bool {
	return a == ActionApprove || a == ActionReject
}
