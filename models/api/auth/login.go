package authapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email không được để trống")
	}
	if r.Password == "" {
		return errors.New("mật khẩu không được để trống")
	}
	return nil
}

type JWTResponse struct {
	AccessToken string `json:"access_token"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (r ChangePasswordRequest) Validate() error {
	if r.CurrentPassword == "" || r.NewPassword == "" {
		return errors.New("mật khẩu không được để trống")
	}
	if len(r.NewPassword) < 6 {
		return errors.New("mật khẩu mới phải có ít nhất 6 ký tự")
	}
	return nil
}
