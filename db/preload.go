package db

import (
	"proposal-approval-backend/config"
	departmentstore "proposal-approval-backend/lib/dicts/department/store"
	usersstore "proposal-approval-backend/lib/users/store"
	authutils "proposal-approval-backend/lib/utils/auth-utils"
	"proposal-approval-backend/models"
	dbmodels "proposal-approval-backend/models/db"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// GuestEmail identifies the seeded view-only account used by guest logins.
const GuestEmail = "guest@proposals.local"

func InitPreload() {
	fillDepartments()
	addGuestUser()
	addDirector()
}

func fillDepartments() {
	store := departmentstore.NewInstance(DB)
	names := []string{
		"Ban Giám Đốc",
		"Kế Toán",
		"Hành Chính Nhân Sự",
		"Kinh Doanh",
		"Marketing",
		"Kỹ Thuật",
		"Vật Tư",
	}
	for _, name := range names {
		if err := store.Add(dbmodels.Department{Name: name}, true); err != nil {
			log.WithError(err).Error("failed to seed department")
			return
		}
	}
}

func addGuestUser() {
	store := usersstore.NewInstance(DB)
	exist, err := store.ExistByEmail(GuestEmail)
	if err != nil {
		log.WithError(err).Error("failed to seed guest account")
		return
	}
	if exist {
		return
	}
	rec := dbmodels.User{
		Name:     "Khách",
		Email:    GuestEmail,
		Role:     models.StaffRole,
		Password: authutils.GetMD5Hash(uuid.NewString()),
		IsActive: true,
		IsGuest:  true,
	}
	if _, err = store.Create(rec); err != nil {
		log.WithError(err).Error("failed to seed guest account")
	}
}

func addDirector() {
	if config.Conf.Admin.Email == "" {
		log.Warn("director account not seeded, ADMIN_EMAIL is not set")
		return
	}
	store := usersstore.NewInstance(DB)
	exist, err := store.ExistByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("failed to seed director account")
		return
	}
	if exist {
		return
	}
	limit := config.Conf.Admin.ApprovalLimit
	rec := dbmodels.User{
		Name:          config.Conf.Admin.Name,
		Email:         config.Conf.Admin.Email,
		Role:          models.DirectorRole,
		Password:      authutils.GetMD5Hash(config.Conf.Admin.Password),
		Dept:          "Ban Giám Đốc",
		ApprovalLimit: &limit,
		IsActive:      true,
	}
	if _, err = store.Create(rec); err != nil {
		log.WithError(err).Error("failed to seed director account")
	}
}
