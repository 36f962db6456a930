package dbmodels

type Attachment struct {
	BaseModel
	ProposalID  string `gorm:"type:varchar(36);index"`
	Name        string `gorm:"type:varchar(255)"`
	Size        int64
	ContentType string `gorm:"type:varchar(150)"`
	// ObjectKey is the S3 object the file body is stored under.
	ObjectKey  string `gorm:"type:varchar(255)"`
	UploaderID string `gorm:"type:varchar(36)"`
	Uploader   *User  `gorm:"foreignKey:UploaderID"`
}
