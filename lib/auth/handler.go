package authhandler

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"proposal-approval-backend/db"
	usersstore "proposal-approval-backend/lib/users/store"
	authutils "proposal-approval-backend/lib/utils/auth-utils"
	authapimodels "proposal-approval-backend/models/api/auth"
)

type Provider interface {
	Login(email, password string) (*authapimodels.JWTResponse, error)
	GuestLogin() (*authapimodels.JWTResponse, error)
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

func (i impl) Login(email, password string) (*authapimodels.JWTResponse, error) {
	user, err := i.usersStore.GetByEmail(email)
	if err != nil {
		log.WithField("email", email).WithError(err).Error("login failed")
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, errors.New("invalid credentials")
	}
	if user.Password != authutils.GetMD5Hash(password) {
		return nil, errors.New("invalid credentials")
	}
	token, err := authutils.GetToken(user.ID, user.Name, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token")
	}
	if err = i.usersStore.SetLastLogin(user.ID); err != nil {
		log.WithField("user_id", user.ID).WithError(err).Error("failed to store last login")
	}
	return &authapimodels.JWTResponse{AccessToken: token}, nil
}

// GuestLogin issues a view-only token bound to the seeded guest account.
func (i impl) GuestLogin() (*authapimodels.JWTResponse, error) {
	user, err := i.usersStore.GetByEmail(db.GuestEmail)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New("guest account is not provisioned")
	}
	token, err := authutils.GetToken(user.ID, user.Name, user.Role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign token")
	}
	return &authapimodels.JWTResponse{AccessToken: token}, nil
}
