// Package attachmentgate validates attachment batches before any upload side
// effect is attempted. The limits are part of the wire contract with the
// dashboard client and must not drift.
package attachmentgate

import (
	"fmt"
	"path/filepath"
	"strings"

	"proposal-approval-backend/models"
)

type ErrorCode string

const (
	CodeUnsupportedType   ErrorCode = "UNSUPPORTED_TYPE"
	CodeTooManyFiles      ErrorCode = "TOO_MANY_FILES"
	CodeFileTooLarge      ErrorCode = "FILE_TOO_LARGE"
	CodeTotalSizeExceeded ErrorCode = "TOTAL_SIZE_EXCEEDED"
)

type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrUnsupportedType   = &Error{Code: CodeUnsupportedType, Message: "các định dạng cho phép file Excel, Word, PDF hoặc ảnh"}
	ErrTooManyFiles      = &Error{Code: CodeTooManyFiles, Message: fmt.Sprintf("đính kèm tối đa %d file", models.MaxFilesPerProposal)}
	ErrFileTooLarge      = &Error{Code: CodeFileTooLarge, Message: fmt.Sprintf("dung lượng file tối đa %dMB", models.MaxFileSizeBytes/(1024*1024))}
	ErrTotalSizeExceeded = &Error{Code: CodeTotalSizeExceeded, Message: fmt.Sprintf("tổng dung lượng tối đa %dMB", models.MaxBatchSizeBytes/(1024*1024))}
)

type FileInfo struct {
	Name string
	Size int64
}

// Validate checks a new batch of files against the attachment rules, in
// order: extension allow-list, total count including already stored files,
// per-file size, batch size. First failure wins. Pure, no side effects.
func Validate(files []FileInfo, existingCount int) error {
	for _, file := range files {
		if !ExtensionAllowed(file.Name) {
			return ErrUnsupportedType
		}
	}
	if existingCount+len(files) > models.MaxFilesPerProposal {
		return ErrTooManyFiles
	}
	var total int64
	for _, file := range files {
		if file.Size > models.MaxFileSizeBytes {
			return ErrFileTooLarge
		}
		total += file.Size
	}
	if total > models.MaxBatchSizeBytes {
		return ErrTotalSizeExceeded
	}
	return nil
}

func ExtensionAllowed(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		return false
	}
	for _, allowed := range models.AllowedFileExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}
