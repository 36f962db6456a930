package userapimodels

import (
	"strings"

	"github.com/pkg/errors"

	"proposal-approval-backend/models"
	dbmodels "proposal-approval-backend/models/db"
)

type UserView struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Role          string `json:"role"`
	RoleName      string `json:"roleName"`
	Dept          string `json:"dept"`
	ApprovalLimit *int64 `json:"approvalLimit,omitempty"`
}

func UserConvert(rec dbmodels.User) UserView {
	return UserView{
		ID:            rec.ID,
		Name:          rec.Name,
		Email:         rec.Email,
		Role:          string(rec.Role),
		RoleName:      rec.Role.ToHuman(),
		Dept:          rec.Dept,
		ApprovalLimit: rec.ApprovalLimit,
	}
}

type CreateUserData struct {
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Password      string          `json:"password"`
	Role          models.UserRole `json:"role"`
	Dept          string          `json:"dept"`
	ApprovalLimit *int64          `json:"approvalLimit"`
}

func (r CreateUserData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("tên không được để trống")
	}
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email không được để trống")
	}
	if r.Password == "" {
		return errors.New("mật khẩu không được để trống")
	}
	if !r.Role.IsValid() {
		return errors.Errorf("vai trò không hợp lệ: %v", r.Role)
	}
	if r.Role.RequiresApprovalLimit() && (r.ApprovalLimit == nil || *r.ApprovalLimit <= 0) {
		return errors.New("vai trò duyệt cần hạn mức phê duyệt")
	}
	return nil
}

type UpdateUserData struct {
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Role          models.UserRole `json:"role"`
	Dept          string          `json:"dept"`
	ApprovalLimit *int64          `json:"approvalLimit"`
}

func (r UpdateUserData) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return errors.New("tên không được để trống")
	}
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email không được để trống")
	}
	if !r.Role.IsValid() {
		return errors.Errorf("vai trò không hợp lệ: %v", r.Role)
	}
	if r.Role.RequiresApprovalLimit() && (r.ApprovalLimit == nil || *r.ApprovalLimit <= 0) {
		return errors.New("vai trò duyệt cần hạn mức phê duyệt")
	}
	return nil
}
