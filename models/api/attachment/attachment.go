package attachmentapimodels

import (
	dbmodels "proposal-approval-backend/models/db"
)

type AttachmentView struct {
	FileID   string `json:"filedId"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
	FileType string `json:"fileType"`
	Uploader string `json:"uploader"`
	URL      string `json:"url"`
}

func AttachmentConvert(rec dbmodels.Attachment, url string) AttachmentView {
	view := AttachmentView{
		FileID:   rec.ID,
		FileName: rec.Name,
		FileSize: rec.Size,
		FileType: rec.ContentType,
		URL:      url,
	}
	if rec.Uploader != nil {
		view.Uploader = rec.Uploader.Name
	}
	return view
}

type UploadResult struct {
	ProposalID  string           `json:"proposalId"`
	Attachments []AttachmentView `json:"attachments"`
}
