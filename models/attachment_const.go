package models

// Attachment limits shared with the dashboard client. These literals are part
// of the wire contract and must stay in sync with the client constants.
const (
	MaxFilesPerProposal = 4
	MaxFileSizeBytes    = 10 * 1024 * 1024
	MaxBatchSizeBytes   = 20 * 1024 * 1024
)

// AllowedFileExtensions is the attachment extension allow-list
// (Excel, Word, PDF, images, PowerPoint). Extensions are matched
// case-insensitively, with the leading dot.
var AllowedFileExtensions = []string{
	".xls", ".xlsx", ".xlsm", ".xlsb",
	".doc", ".docx",
	".pdf",
	".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".webp",
	".ppt", ".pptx", ".pps", ".ppsx",
}
