package workflow

type ErrorCode string

const (
	CodeInvalidState           ErrorCode = "INVALID_STATE"
	CodeSelfApproval           ErrorCode = "SELF_APPROVAL"
	CodeInsufficientAuthority  ErrorCode = "INSUFFICIENT_AUTHORITY"
	CodeMissingReason          ErrorCode = "MISSING_REASON"
	CodeConcurrentModification ErrorCode = "CONCURRENT_MODIFICATION"
)

// Error is a policy refusal. Message is safe to show to the user.
type Error struct {
	Code    ErrorCode
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrInvalidState           = &Error{Code: CodeInvalidState, Message: "đề xuất không ở trạng thái cho phép xử lý"}
	ErrSelfApproval           = &Error{Code: CodeSelfApproval, Message: "không thể tự duyệt đề xuất của chính mình"}
	ErrInsufficientAuthority  = &Error{Code: CodeInsufficientAuthority, Message: "ngân sách vượt quá hạn mức phê duyệt"}
	ErrMissingReason          = &Error{Code: CodeMissingReason, Message: "vui lòng nhập lý do từ chối"}
	ErrConcurrentModification = &Error{Code: CodeConcurrentModification, Message: "đề xuất vừa được người khác xử lý, vui lòng tải lại"}
)
