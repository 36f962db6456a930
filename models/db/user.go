package dbmodels

import (
	"proposal-approval-backend/models"
	"time"
)

type User struct {
	BaseModel
	Password string `gorm:"type:varchar(128)"`
	Name     string `gorm:"type:varchar(150)"`
	Email    string `gorm:"type:varchar(255);uniqueIndex"`
	Role     models.UserRole `gorm:"type:varchar(50)"`
	Dept     string `gorm:"type:varchar(150)"`
	// ApprovalLimit is the maximum budget (VND) the user may approve at their
	// tier. Unset for roles outside the review chain and for accountants.
	ApprovalLimit *int64
	IsActive      bool
	IsGuest       bool
	LastLogin     time.Time
}
