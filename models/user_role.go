package models

type UserRole string

const (
	StaffRole      UserRole = "Staff"
	AccountantRole UserRole = "Accountant"
	ManagerRole    UserRole = "Manager"
	DirectorRole   UserRole = "Director"
)

var roleHumanName = map[UserRole]string{
	StaffRole:      "Nhân viên",
	AccountantRole: "Kế toán",
	ManagerRole:    "Quản lý",
	DirectorRole:   "BOD",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsValid() bool {
	_, exist := roleHumanName[r]
	return exist
}

func (r UserRole) IsDirector() bool {
	return r == DirectorRole
}

// IsReviewer reports whether the role takes part in the review chain.
func (r UserRole) IsReviewer() bool {
	return r == AccountantRole || r == ManagerRole || r == DirectorRole
}

// RequiresApprovalLimit reports whether the role may only approve proposals
// within a personal budget limit.
func (r UserRole) RequiresApprovalLimit() bool {
	return r == ManagerRole || r == DirectorRole
}
