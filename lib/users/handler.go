package usershandler

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"proposal-approval-backend/db"
	usersstore "proposal-approval-backend/lib/users/store"
	authutils "proposal-approval-backend/lib/utils/auth-utils"
	userapimodels "proposal-approval-backend/models/api/user"
	dbmodels "proposal-approval-backend/models/db"
)

type Provider interface {
	CreateUser(request userapimodels.CreateUserData) (hMsg string, err error)
	UpdateUser(userID string, request userapimodels.UpdateUserData) (hMsg string, err error)
	DeleteUser(userID string) error
	ListUsers() (usersList []userapimodels.UserView, err error)
	GetByID(userID string) (user *userapimodels.UserView, err error)
	ChangePassword(userID, currentPassword, newPassword string) (hMsg string, err error)
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

func (i impl) GetByID(userID string) (*userapimodels.UserView, error) {
	userDB, err := i.usersStore.GetByID(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("failed to find user")
		return nil, err
	}
	if userDB == nil {
		return nil, nil
	}
	view := userapimodels.UserConvert(*userDB)
	return &view, nil
}

func (i impl) CreateUser(request userapimodels.CreateUserData) (hMsg string, err error) {
	userExist, err := i.usersStore.ExistByEmail(request.Email)
	if err != nil {
		log.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("failed to check for an existing user")
		return "", err
	}
	if userExist {
		return "người dùng với email này đã tồn tại", nil
	}
	rec := dbmodels.User{
		Password:      authutils.GetMD5Hash(request.Password),
		Name:          request.Name,
		Email:         request.Email,
		Role:          request.Role,
		Dept:          request.Dept,
		ApprovalLimit: request.ApprovalLimit,
		IsActive:      true,
	}
	_, err = i.usersStore.Create(rec)
	if err != nil {
		log.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("failed to create user")
		return "", err
	}
	return "", nil
}

func (i impl) UpdateUser(userID string, request userapimodels.UpdateUserData) (hMsg string, err error) {
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "người dùng không tồn tại", nil
	}
	if user.Email != request.Email {
		emailTaken, err := i.usersStore.ExistByEmail(request.Email)
		if err != nil {
			return "", err
		}
		if emailTaken {
			return "người dùng với email này đã tồn tại", nil
		}
	}
	updMap := map[string]interface{}{
		"name":           request.Name,
		"email":          request.Email,
		"role":           request.Role,
		"dept":           request.Dept,
		"approval_limit": request.ApprovalLimit,
	}
	err = i.usersStore.Update(userID, updMap)
	if err != nil {
		log.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("failed to update user")
		return "", err
	}
	return "", nil
}

func (i impl) DeleteUser(userID string) error {
	err := i.usersStore.Delete(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("failed to delete user")
		return err
	}
	return nil
}

func (i impl) ListUsers() (usersList []userapimodels.UserView, err error) {
	list, err := i.usersStore.List()
	if err != nil {
		log.WithError(err).Error("failed to list users")
		return nil, err
	}
	usersList = make([]userapimodels.UserView, 0, len(list))
	for _, user := range list {
		usersList = append(usersList, userapimodels.UserConvert(user))
	}
	return usersList, nil
}

func (i impl) ChangePassword(userID, currentPassword, newPassword string) (hMsg string, err error) {
	user, err := i.usersStore.GetByID(userID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "người dùng không tồn tại", nil
	}
	if user.Password != authutils.GetMD5Hash(currentPassword) {
		return "mật khẩu hiện tại không đúng", nil
	}
	err = i.usersStore.Update(userID, map[string]interface{}{
		"password": authutils.GetMD5Hash(newPassword),
	})
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("failed to change password")
		return "", err
	}
	return "", nil
}
