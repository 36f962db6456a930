package proposalapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	"proposal-approval-backend/models"
	userapimodels "proposal-approval-backend/models/api/user"
	dbmodels "proposal-approval-backend/models/db"
)

type ProposalView struct {
	ID              string                  `json:"id"`
	ProposalID      string                  `json:"proposalId"`
	Title           string                  `json:"title"`
	ProposerID      string                  `json:"proposerId"`
	Proposer        *userapimodels.UserView `json:"proposer,omitempty"`
	Dept            string                  `json:"dept"`
	SubmittedDate   time.Time               `json:"submittedDate"`
	Summary         string                  `json:"summary"`
	FullText        string                  `json:"fullText"`
	Status          models.ProposalStatus   `json:"status"`
	StatusName      string                  `json:"statusName"`
	Budget          int64                   `json:"budget"`
	Type            models.ProposalType     `json:"type"`
	RejectionReason string                  `json:"rejectionReason,omitempty"`
	ApprovalHistory ApprovalHistoryView     `json:"approvalHistory"`
	Attachments     []AttachmentShortView   `json:"attachments,omitempty"`
}

// ApprovalHistoryView wraps the ledger records the way the dashboard consumes
// them ({data: [...]}).
type ApprovalHistoryView struct {
	Data []ApprovalRecordView `json:"data"`
}

type ApprovalRecordView struct {
	Status   models.ProposalStatus `json:"status"`
	Reviewer string                `json:"reviewer"`
	Role     string                `json:"role"`
	Comment  string                `json:"comment,omitempty"`
	Files    []string              `json:"files,omitempty"`
	Date     time.Time             `json:"date"`
}

type AttachmentShortView struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	Type string `json:"type"`
}

func ApprovalRecordConvert(rec dbmodels.ApprovalRecord) ApprovalRecordView {
	return ApprovalRecordView{
		Status:   rec.Status,
		Reviewer: rec.ActorName,
		Role:     rec.ActorRole.ToHuman(),
		Comment:  rec.Comment,
		Files:    []string(rec.FileNames),
		Date:     rec.CreatedAt,
	}
}

func ProposalConvert(rec dbmodels.Proposal) ProposalView {
	view := ProposalView{
		ID:              rec.ID,
		ProposalID:      rec.ID,
		Title:           rec.Title,
		ProposerID:      rec.ProposerID,
		Dept:            rec.Dept,
		SubmittedDate:   rec.SubmittedDate,
		Summary:         rec.Summary,
		FullText:        rec.FullText,
		Status:          rec.Status,
		StatusName:      rec.Status.ToHuman(),
		Budget:          rec.Budget,
		Type:            rec.Type,
		RejectionReason: rec.RejectionReason,
		ApprovalHistory: ApprovalHistoryView{Data: []ApprovalRecordView{}},
	}
	if rec.Proposer != nil {
		proposer := userapimodels.UserConvert(*rec.Proposer)
		view.Proposer = &proposer
	}
	for _, record := range rec.Records {
		view.ApprovalHistory.Data = append(view.ApprovalHistory.Data, ApprovalRecordConvert(record))
	}
	for _, attachment := range rec.Attachments {
		view.Attachments = append(view.Attachments, AttachmentShortView{
			Name: attachment.Name,
			Size: attachment.Size,
			Type: attachment.ContentType,
		})
	}
	return view
}

type CreateProposalData struct {
	Title    string              `json:"title"`
	Dept     string              `json:"dept"`
	Summary  string              `json:"summary"`
	FullText string              `json:"fullText"`
	Budget   int64               `json:"budget"`
	Type     models.ProposalType `json:"type"`
}

func (r CreateProposalData) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("tiêu đề không được để trống")
	}
	if r.Budget <= 0 {
		return errors.New("ngân sách phải lớn hơn 0")
	}
	if !r.Type.IsValid() {
		return errors.Errorf("loại đề xuất không hợp lệ: %v", r.Type)
	}
	return nil
}

// ProcessRequest is the decision payload submitted by the dashboard. Actor
// identity is always resolved from the access token; the name/role fields are
// kept for wire compatibility and informational logging only.
type ProcessRequest struct {
	Name     string         `json:"name"`
	RoleName string         `json:"roleName"`
	UserID   string         `json:"userId"`
	Request  ApprovalAction `json:"request"`
}

type ApprovalAction struct {
	ProposalID string            `json:"proposalId"`
	Action     models.ActionType `json:"action"`
	Comment    string            `json:"comment"`
	Files      []string          `json:"files,omitempty"`
}

func (r ProcessRequest) Validate() error {
	if r.Request.ProposalID == "" {
		return errors.New("thiếu mã đề xuất")
	}
	if !r.Request.Action.IsValid() {
		return errors.Errorf("hành động không hợp lệ: %v", r.Request.Action)
	}
	return nil
}
