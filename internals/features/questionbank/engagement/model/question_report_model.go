// file: internals/features/questionbank/engagement/model/question_report_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	cmodel "kpsc_backend/internals/features/questionbank/catalog/model"
)

type ReportStatus string

const (
	ReportStatusPending  ReportStatus = "pending"
	ReportStatusResolved ReportStatus = "resolved"
)

// QuestionReportModel is a user-filed complaint about a question (wrong
// answer key, typo, duplicate). Admins review and resolve them.
type QuestionReportModel struct {
	QuestionReportID         uuid.UUID `gorm:"column:question_report_id;type:uuid;primaryKey" json:"question_report_id"`
	QuestionReportUserID     uuid.UUID `gorm:"column:question_report_user_id;type:uuid;not null;index" json:"question_report_user_id"`
	QuestionReportQuestionID uuid.UUID `gorm:"column:question_report_question_id;type:uuid;not null;index" json:"question_report_question_id"`

	QuestionReportReason string       `gorm:"column:question_report_reason;type:text;not null" json:"question_report_reason"`
	QuestionReportStatus ReportStatus `gorm:"column:question_report_status;type:varchar(20);not null;default:'pending'" json:"question_report_status"`

	Question *cmodel.QuestionModel `gorm:"foreignKey:QuestionReportQuestionID;references:QuestionID" json:"question,omitempty"`

	QuestionReportCreatedAt time.Time `gorm:"column:question_report_created_at;autoCreateTime" json:"question_report_created_at"`
	QuestionReportUpdatedAt time.Time `gorm:"column:question_report_updated_at;autoUpdateTime" json:"question_report_updated_at"`
}

func (QuestionReportModel) TableName() string { return "question_reports" }

func (m *QuestionReportModel) BeforeCreate(tx *gorm.DB) error {
	if m.QuestionReportID == uuid.Nil {
		m.QuestionReportID = uuid.New()
	}
	if m.QuestionReportStatus == "" {
		m.QuestionReportStatus = ReportStatusPending
	}
	return nil
}
